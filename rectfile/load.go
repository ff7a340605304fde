package rectfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/spatial/rect"
)

// ErrSyntax is wrapped by every error flagging a malformed record.
var ErrSyntax = errors.New("rectfile: syntax error")

// ErrNotRegular is returned when loading something other than a regular file.
var ErrNotRegular = errors.New("rectfile: not a regular file")

// Record is a rectangle read from a file, together with its optional label.
type Record struct {
	Rect  rect.Rect
	Label string
}

func (rec Record) String() string {
	if rec.Label == "" {
		return rec.Rect.String()
	}
	return rec.Rect.String() + " " + rec.Label
}

// Rects extracts the rectangles of a list of records.
func Rects(records []Record) []rect.Rect {
	rects := make([]rect.Rect, len(records))
	for i, rec := range records {
		rects[i] = rec.Rect
	}
	return rects
}

// Load reads a file, which must be a regular text file, and parses its records.
func Load(name string) ([]Record, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	records, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	tracer().Infof("loaded %d rectangles from %s", len(records), name)
	return records, nil
}

// Parse reads records from r, one per line. Blank lines and comments are
// skipped. Errors name the offending line number and wrap ErrSyntax.
func Parse(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	tracer().Debugf("parsed %d records from %d lines", len(records), lineno)
	return records, nil
}

const separators = " \t,"

// parseRecord splits off four coordinate tokens and takes the remainder of
// the line as the label.
func parseRecord(line string) (Record, error) {
	var coords [4]string
	rest := line
	for i := range coords {
		rest = strings.TrimLeft(rest, separators)
		end := strings.IndexAny(rest, separators)
		if end < 0 {
			end = len(rest)
		}
		if end == 0 {
			return Record{}, fmt.Errorf("%w: expected 4 coordinates, have %d", ErrSyntax, i)
		}
		coords[i], rest = rest[:end], rest[end:]
	}
	r, err := rect.Parse(strings.Join(coords[:], " "))
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return Record{
		Rect:  r,
		Label: strings.TrimSpace(strings.TrimLeft(rest, separators)),
	}, nil
}
