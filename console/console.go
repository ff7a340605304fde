package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/spatial"
	"github.com/npillmayer/spatial/rectfile"
	"github.com/npillmayer/spatial/rtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds the parameters for console output.
type Config struct {
	LineWidth int            // lines are cut to this width in ‘en’s; 0 means no limit
	Context   *uax11.Context // context for measuring display width; nil means Latin
	Palette   *Palette       // colors; nil means DefaultPalette
}

// Palette is the set of colors used for printing.
type Palette struct {
	Levels []*color.Color // directory nodes, by depth (cycled)
	Leaf   *color.Color   // leaf nodes
	Item   *color.Color   // stored rectangles
	Insert *color.Color   // insertion events
	Remove *color.Color   // removal events
}

// DefaultPalette returns the palette used if a Config does not name one.
func DefaultPalette() *Palette {
	return &Palette{
		Levels: []*color.Color{
			color.New(color.FgBlue, color.Bold),
			color.New(color.FgMagenta),
			color.New(color.FgCyan),
		},
		Leaf:   color.New(color.FgYellow),
		Item:   color.New(color.FgWhite),
		Insert: color.New(color.FgGreen),
		Remove: color.New(color.FgRed),
	}
}

var setupGraphemes sync.Once

func (config *Config) normalized() *Config {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	c := Config{}
	if config != nil {
		c = *config
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if c.Palette == nil {
		c.Palette = DefaultPalette()
	}
	if c.LineWidth < 0 {
		c.LineWidth = 0
	}
	return &c
}

// --- Output ----------------------------------------------------------------

// printer collects the first write error.
type printer struct {
	w      io.Writer
	config *Config
	err    error
}

func (p *printer) line(c *color.Color, s string) {
	if p.err != nil {
		return
	}
	s = truncate(s, p.config.LineWidth, p.config.Context)
	if c != nil {
		_, p.err = c.Fprint(p.w, s)
	} else {
		_, p.err = io.WriteString(p.w, s)
	}
	if p.err == nil {
		_, p.err = io.WriteString(p.w, "\n")
	}
}

// PrintTree outputs an indented outline of tree t to w. Directory nodes are
// colored by depth. If parameter config is nil, Latin context and the default
// palette without line width limit are used.
func PrintTree(w io.Writer, t *rtree.Tree, config *Config) error {
	config = config.normalized()
	p := &printer{w: w, config: config}
	p.line(nil, t.String())
	pal := config.Palette
	t.Walk(func(n rtree.NodeInfo) bool {
		indent := strings.Repeat("  ", n.Depth)
		if n.Leaf {
			p.line(pal.Leaf, fmt.Sprintf("%sleaf %v [%d items]", indent, n.MBR, n.Entries))
			for _, item := range n.Items {
				p.line(pal.Item, indent+"  "+item.String())
			}
			return p.err == nil
		}
		var c *color.Color
		if len(pal.Levels) > 0 {
			c = pal.Levels[n.Depth%len(pal.Levels)]
		}
		p.line(c, fmt.Sprintf("%snode %v [%d entries]", indent, n.MBR, n.Entries))
		return p.err == nil
	})
	return p.err
}

// PrintResults outputs a numbered table of records to w. Labels are padded to
// a common display width, so the rectangle column lines up even for labels in
// wide scripts.
func PrintResults(w io.Writer, records []rectfile.Record, config *Config) error {
	config = config.normalized()
	p := &printer{w: w, config: config}
	labels := make([]string, len(records))
	widths := make([]int, len(records))
	maxw := 0
	for i, rec := range records {
		labels[i] = rec.Label
		if labels[i] == "" {
			labels[i] = "-"
		}
		widths[i] = Width(labels[i], config.Context)
		if widths[i] > maxw {
			maxw = widths[i]
		}
	}
	for i, rec := range records {
		pad := strings.Repeat(" ", maxw-widths[i])
		p.line(nil, fmt.Sprintf("%3d  %s%s  %v", i+1, labels[i], pad, rec.Rect))
	}
	T().P("format", "console").Debugf("printed %d results, label column %d en", len(records), maxw)
	return p.err
}

// PrintEvent outputs a single index change event to w, colored by operation.
func PrintEvent(w io.Writer, e spatial.Event, config *Config) error {
	config = config.normalized()
	p := &printer{w: w, config: config}
	c := config.Palette.Insert
	if e.Op == spatial.OpRemove {
		c = config.Palette.Remove
	}
	p.line(c, fmt.Sprintf("%-6s %v", e.Op, e.Rect))
	return p.err
}

// --- Display width ---------------------------------------------------------

// Width returns the display width of s in fixed-width ‘en’s.
//
// Printable ASCII counts 1 en per character and ASCII control characters
// count 0. Everything else is measured by UAX#11, one run of non-ASCII text
// at a time, so combining marks stay attached to their base characters.
func Width(s string, context *uax11.Context) int {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	if context == nil {
		context = uax11.LatinContext
	}
	w, start := 0, -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			w += uax11.StringWidth(grapheme.StringFromString(s[start:i]), context)
			start = -1
		}
		if c >= 0x20 && c != 0x7f {
			w++
		}
	}
	if start >= 0 {
		w += uax11.StringWidth(grapheme.StringFromString(s[start:]), context)
	}
	return w
}

// truncate cuts s to at most width ‘en’s, marking the cut with "...".
// A width of 0 leaves s untouched.
func truncate(s string, width int, context *uax11.Context) string {
	if width <= 0 || Width(s, context) <= width {
		return s
	}
	const ellipsis = "..."
	if width <= len(ellipsis) {
		return ellipsis[:width]
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := Width(string(r), context)
		if w+rw > width-len(ellipsis) {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	b.WriteString(ellipsis)
	return b.String()
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a console Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Config.Context is
// created by heuristics from the user environment.
func ConfigFromTerminal() *Config {
	config := &Config{
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 80
		} else if w > 10 {
			config.LineWidth = w - 1
		} else {
			config.LineWidth = 10
		}
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
