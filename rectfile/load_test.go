package rectfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/spatial/rect"
)

func TestMain(m *testing.M) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	os.Exit(m.Run())
}

const sample = `# reference scenario
0, 0, 10, 10   map extent

5 5 6 6
1,1,3,3,small one   # trailing comment
7	7	8	8
`

func TestParse(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	records, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected Parse error: %v", err)
	}
	expected := []Record{
		{rect.New(0, 0, 10, 10), "map extent"},
		{rect.New(5, 5, 6, 6), ""},
		{rect.New(1, 1, 3, 3), "small one"},
		{rect.New(7, 7, 8, 8), ""},
	}
	if len(records) != len(expected) {
		t.Fatalf("expected %d records, got %d", len(expected), len(records))
	}
	for i, rec := range records {
		if rec != expected[i] {
			t.Errorf("record #%d: expected %v, got %v", i, expected[i], rec)
		}
	}
	if rs := Rects(records); len(rs) != 4 || rs[2] != rect.New(1, 1, 3, 3) {
		t.Errorf("unexpected rectangles %v", rs)
	}
}

func TestParseNormalizesCorners(t *testing.T) {
	records, err := Parse(strings.NewReader("10 10 0 0 swapped"))
	if err != nil {
		t.Fatalf("unexpected Parse error: %v", err)
	}
	if records[0].Rect != rect.New(0, 0, 10, 10) {
		t.Errorf("expected normalized rectangle, got %v", records[0].Rect)
	}
}

func TestParseErrorsNameTheLine(t *testing.T) {
	for _, input := range []string{
		"0 0 1 1\n\n1 2 3",
		"0 0 1 1\n# c\n1 2 x 4",
		"0 0 1 1\n\n1 2 NaN 4",
	} {
		_, err := Parse(strings.NewReader(input))
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: expected ErrSyntax, got %v", input, err)
			continue
		}
		if !strings.Contains(err.Error(), "line 3") {
			t.Errorf("%q: expected error to name line 3, got %v", input, err)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	records, err := Parse(strings.NewReader("\n# nothing here\n   \n"))
	if err != nil || len(records) != 0 {
		t.Errorf("expected no records and no error, got %v, %v", records, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "rects.txt")
	if err := os.WriteFile(name, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	records, err := Load(name)
	if err != nil {
		t.Fatalf("unexpected Load error: %v", err)
	}
	if len(records) != 4 {
		t.Errorf("expected 4 records, got %d", len(records))
	}
	if _, err := Load(dir); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular for a directory, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestRecordString(t *testing.T) {
	rec := Record{Rect: rect.New(0, 0, 1, 1), Label: "unit"}
	if rec.String() != "(0,0,1,1) unit" {
		t.Errorf("unexpected record string %q", rec.String())
	}
}
