package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/spatial/console"
	"github.com/npillmayer/spatial/rect"
	"github.com/npillmayer/spatial/rtree"
)

func TestMain(m *testing.M) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	color.NoColor = true
	os.Exit(m.Run())
}

// queryBlock returns the result lines printed after the header line of a query.
func queryBlock(out, header string) []string {
	i := strings.Index(out, header)
	if i < 0 {
		return nil
	}
	var lines []string
	for _, l := range strings.Split(out[i+len(header):], "\n") {
		if !strings.HasPrefix(l, "  ") {
			break
		}
		lines = append(lines, strings.TrimSpace(l[5:]))
	}
	sort.Strings(lines)
	return lines
}

func TestReferenceScenario(t *testing.T) {
	var buf bytes.Buffer
	if err := run(options{}, &buf, &console.Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, expected := range []string{
		"insert (1,1,3,3)\n",
		"insert (2,2,4,4)\n",
		"insert (5,5,6,6)\n",
		"insert (7,7,9,9)\n",
		"remove (5,5,6,6)\n",
		"query (2,2,5,5): 3 result(s)\n",
		"remove (5,5,6,6): removed\n",
		"query (2,2,5,5): 2 result(s)\n",
		"rtree<len=3 height=1 max=4 min=2>\n",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected output to contain %q, have\n%s", expected, out)
		}
	}
	if strings.Count(out, "insert ") != 4 {
		t.Errorf("expected 4 insertion events")
	}
	header := "query (2,2,5,5): 3 result(s)\n"
	first := queryBlock(out, header)
	want := []string{
		"lower left   (1,1,3,3)",
		"middle       (5,5,6,6)",
		"overlapping  (2,2,4,4)",
	}
	if strings.Join(first, "|") != strings.Join(want, "|") {
		t.Errorf("first query: expected %q, got %q", want, first)
	}
	second := queryBlock(out, "query (2,2,5,5): 2 result(s)\n")
	want = []string{
		"lower left   (1,1,3,3)",
		"overlapping  (2,2,4,4)",
	}
	if strings.Join(second, "|") != strings.Join(want, "|") {
		t.Errorf("second query: expected %q, got %q", want, second)
	}
}

func TestFileScenario(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "rects.txt")
	content := "0 0 1 1 a\n2 2 3 3 b\n4 4 5 5 c\n6 6 7 7 d\n8 8 9 9 e\n"
	if err := os.WriteFile(input, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := options{
		input: input,
		steps: []step{
			{remove: true, rect: rect.New(4, 4, 5, 5)},
			{remove: true, rect: rect.New(40, 40, 50, 50)},
			{rect: rect.New(0, 0, 9, 9)},
		},
		dotFile:  filepath.Join(dir, "tree.dot"),
		htmlFile: filepath.Join(dir, "tree.html"),
	}
	var buf bytes.Buffer
	if err := run(opts, &buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, expected := range []string{
		"remove (4,4,5,5): removed\n",
		"remove (40,40,50,50): not found\n",
		"query (0,0,9,9): 4 result(s)\n",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected output to contain %q, have\n%s", expected, out)
		}
	}
	for _, name := range []string{opts.dotFile, opts.htmlFile} {
		if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
			t.Errorf("expected non-empty output file %s", name)
		}
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	var buf bytes.Buffer
	if err := run(options{cfg: rtree.Config{MaxEntries: 1}}, &buf, nil); err == nil {
		t.Errorf("expected invalid configuration to be rejected")
	}
	if err := run(options{input: filepath.Join(t.TempDir(), "missing")}, &buf, nil); err == nil {
		t.Errorf("expected missing input file to be rejected")
	}
}

func TestStepFlag(t *testing.T) {
	var list []step
	q, rm := stepFlag{list: &list}, stepFlag{list: &list, remove: true}
	if err := q.Set("1,1,2,2"); err != nil {
		t.Fatal(err)
	}
	if err := rm.Set("3 3 4 4"); err != nil {
		t.Fatal(err)
	}
	if err := q.Set("1,2,3"); err == nil {
		t.Errorf("expected malformed rectangle to be rejected")
	}
	if len(list) != 2 || list[0].remove || !list[1].remove {
		t.Fatalf("unexpected steps %v", list)
	}
	if q.String() != "(1,1,2,2)" || rm.String() != "(3,3,4,4)" {
		t.Errorf("unexpected flag values %q, %q", q.String(), rm.String())
	}
}
