/*
Command rtreedemo builds an R-tree index and runs queries against it.

Without input file, the command runs a small reference scenario: four
rectangles are inserted, a window query is run, one rectangle is removed and the
query is repeated. With an input file (see package rectfile for the format),
every record is inserted, then removals and queries given by flags are
executed in turn.

	rtreedemo -f rects.txt -q 2,2,5,5 -rm 5,5,6,6 -q 2,2,5,5 -html tree.html

Flags -q and -rm may be repeated.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/spatial"
	"github.com/npillmayer/spatial/console"
	"github.com/npillmayer/spatial/html"
	"github.com/npillmayer/spatial/rect"
	"github.com/npillmayer/spatial/rectfile"
	"github.com/npillmayer/spatial/rtree"
)

// step is a query or a removal, in command line order.
type step struct {
	remove bool
	rect   rect.Rect
}

// stepFlag collects -q and -rm flags.
type stepFlag struct {
	list   *[]step
	remove bool
}

func (s stepFlag) String() string {
	if s.list == nil {
		return ""
	}
	var parts []string
	for _, st := range *s.list {
		if st.remove == s.remove {
			parts = append(parts, st.rect.String())
		}
	}
	return strings.Join(parts, " ")
}

func (s stepFlag) Set(v string) error {
	r, err := rect.Parse(v)
	if err != nil {
		return err
	}
	*s.list = append(*s.list, step{remove: s.remove, rect: r})
	return nil
}

type options struct {
	cfg      rtree.Config
	input    string
	steps    []step
	dotFile  string
	htmlFile string
}

// referenceScenario is run if no input file is given.
var referenceScenario = struct {
	records []rectfile.Record
	steps   []step
}{
	records: []rectfile.Record{
		{Rect: rect.New(1, 1, 3, 3), Label: "lower left"},
		{Rect: rect.New(2, 2, 4, 4), Label: "overlapping"},
		{Rect: rect.New(5, 5, 6, 6), Label: "middle"},
		{Rect: rect.New(7, 7, 9, 9), Label: "upper right"},
	},
	steps: []step{
		{rect: rect.New(2, 2, 5, 5)},
		{remove: true, rect: rect.New(5, 5, 6, 6)},
		{rect: rect.New(2, 2, 5, 5)},
	},
}

func main() {
	var opts options
	var tracelevel string
	flag.IntVar(&opts.cfg.MaxEntries, "max", rtree.DefaultMaxEntries, "Maximum number of entries per node")
	flag.IntVar(&opts.cfg.MinEntries, "min", 0, "Minimum number of entries per non-root node [0 = max/2]")
	flag.Float64Var(&opts.cfg.Tolerance, "tol", 0, "Coordinate tolerance for removals")
	flag.StringVar(&opts.input, "f", "", "Input file with rectangle records")
	flag.Var(stepFlag{list: &opts.steps}, "q", "Query window x1,y1,x2,y2 (repeatable)")
	flag.Var(stepFlag{list: &opts.steps, remove: true}, "rm", "Rectangle x1,y1,x2,y2 to remove (repeatable)")
	flag.StringVar(&opts.dotFile, "dot", "", "Write tree structure in Graphviz DOT format to file")
	flag.StringVar(&opts.htmlFile, "html", "", "Write tree as SVG drawing to HTML file")
	flag.StringVar(&tracelevel, "trace", "error", "Trace level [error,info,debug]")
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	switch strings.ToLower(tracelevel) {
	default:
		fmt.Fprintf(os.Stderr, "invalid trace level '%v'\n", tracelevel)
		os.Exit(1)
	case "error":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}
	if err := run(opts, os.Stdout, console.ConfigFromTerminal()); err != nil {
		fmt.Fprintf(os.Stderr, "rtreedemo: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, w io.Writer, conf *console.Config) error {
	records, plan := referenceScenario.records, referenceScenario.steps
	if opts.input != "" {
		var err error
		if records, err = rectfile.Load(opts.input); err != nil {
			return err
		}
		plan = opts.steps
	} else if len(opts.steps) > 0 {
		plan = opts.steps
	}
	idx, err := spatial.NewIndex(opts.cfg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := idx.Subscribe(ctx, 16)
	if err != nil {
		return err
	}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() { // print index events as they arrive
		defer wg.Done()
		for e := range events {
			console.PrintEvent(w, e, conf)
		}
	}()
	labels := make(map[rect.Rect]string, len(records))
	for _, rec := range records {
		if _, ok := labels[rec.Rect]; !ok {
			labels[rec.Rect] = rec.Label
		}
		idx.Insert(rec.Rect)
	}
	results := make([][]rectfile.Record, 0, len(plan))
	var removed []bool
	for _, st := range plan {
		if st.remove {
			removed = append(removed, idx.Remove(st.rect))
			continue
		}
		found := idx.Search(st.rect)
		recs := make([]rectfile.Record, len(found))
		for i, r := range found {
			recs[i] = rectfile.Record{Rect: r, Label: labels[r]}
		}
		results = append(results, recs)
	}
	idx.Close() // closes the event channel once all events are delivered
	wg.Wait()
	//
	q, rm := 0, 0
	for _, st := range plan {
		if st.remove {
			status := "removed"
			if !removed[rm] {
				status = "not found"
			}
			fmt.Fprintf(w, "remove %v: %s\n", st.rect, status)
			rm++
			continue
		}
		fmt.Fprintf(w, "query %v: %d result(s)\n", st.rect, len(results[q]))
		if err := console.PrintResults(w, results[q], conf); err != nil {
			return err
		}
		q++
	}
	if err := console.PrintTree(w, idx.Tree(), conf); err != nil {
		return err
	}
	if err := idx.Tree().Check(); err != nil {
		return err
	}
	if opts.dotFile != "" {
		if err := writeFile(opts.dotFile, func(f io.Writer) error {
			return rtree.ToDot(idx.Tree(), f)
		}); err != nil {
			return err
		}
	}
	if opts.htmlFile != "" {
		if err := writeFile(opts.htmlFile, func(f io.Writer) error {
			return html.Render(f, idx.Tree(), nil)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
