package html

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/npillmayer/spatial/rect"
	"github.com/npillmayer/spatial/rtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Options control the drawing.
type Options struct {
	Width, Height int    // size of the drawing in pixels; 0 means 600
	Margin        int    // space around the drawing in pixels
	Title         string // page title; empty means the tree's description
}

func (opts *Options) normalized() Options {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.Width <= 0 {
		o.Width = 600
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.Margin < 0 || 2*o.Margin >= o.Width || 2*o.Margin >= o.Height {
		o.Margin = 0
	}
	return o
}

// stylesheet holds the colors for up to four directory levels; deeper levels
// reuse the last one.
const stylesheet = `
rect.dir { fill: none; stroke-width: 1.5; }
rect.level-0 { stroke: #1f4e79; stroke-width: 3; }
rect.level-1 { stroke: #7b2c8f; stroke-dasharray: 6 3; }
rect.level-2 { stroke: #2e8b57; stroke-dasharray: 3 3; }
rect.level-3 { stroke: #b8860b; stroke-dasharray: 1 2; }
rect.item { fill: #f4a460; fill-opacity: 0.5; stroke: #8b4513; stroke-width: 0.5; }
`

const maxStyledLevel = 3

// Render writes an HTML page to w, showing tree t as an SVG image.
// If parameter opts is nil, defaults are used.
func Render(w io.Writer, t *rtree.Tree, opts *Options) error {
	o := opts.normalized()
	title := o.Title
	if title == "" {
		title = t.String()
	}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html)
	doc.AppendChild(root)
	head := element(atom.Head)
	root.AppendChild(head)
	head.AppendChild(withText(element(atom.Title), title))
	head.AppendChild(withText(element(atom.Style), stylesheet))
	body := element(atom.Body)
	root.AppendChild(body)
	body.AppendChild(withText(element(atom.H1), title))
	body.AppendChild(SVG(t, &o))
	return html.Render(w, doc)
}

// SVG creates an <svg> element node showing tree t. Empty trees yield an
// empty drawing.
func SVG(t *rtree.Tree, opts *Options) *html.Node {
	o := opts.normalized()
	svg := &html.Node{
		Type:      html.ElementNode,
		Data:      "svg",
		Namespace: "svg",
		Attr: []html.Attribute{
			{Key: "xmlns", Val: "http://www.w3.org/2000/svg"},
			{Key: "width", Val: strconv.Itoa(o.Width)},
			{Key: "height", Val: strconv.Itoa(o.Height)},
		},
	}
	bounds, ok := t.Bounds()
	if !ok {
		return svg
	}
	tr := newTransform(bounds, o)
	items := 0
	t.Walk(func(n rtree.NodeInfo) bool {
		level := min(n.Depth, maxStyledLevel)
		svg.AppendChild(rectNode(tr.apply(n.MBR), fmt.Sprintf("dir level-%d", level)))
		for _, item := range n.Items {
			svg.AppendChild(rectNode(tr.apply(item), "item"))
			items++
		}
		return true
	})
	T().Debugf("html: rendered %d items as SVG", items)
	return svg
}

// transform maps tree coordinates onto SVG pixel coordinates. The y-axis is
// flipped, as SVG coordinates grow downwards.
type transform struct {
	bounds rect.Rect
	scale  float64
	margin float64
}

func newTransform(bounds rect.Rect, o Options) transform {
	w := float64(o.Width - 2*o.Margin)
	h := float64(o.Height - 2*o.Margin)
	scale := 1.0
	if bounds.Width() > 0 || bounds.Height() > 0 {
		scale = math.Inf(1)
		if bounds.Width() > 0 {
			scale = w / bounds.Width()
		}
		if bounds.Height() > 0 {
			scale = math.Min(scale, h/bounds.Height())
		}
	}
	return transform{bounds: bounds, scale: scale, margin: float64(o.Margin)}
}

func (tr transform) apply(r rect.Rect) rect.Rect {
	x := tr.margin + (r.XMin-tr.bounds.XMin)*tr.scale
	y := tr.margin + (tr.bounds.YMax-r.YMax)*tr.scale
	return rect.New(x, y, x+r.Width()*tr.scale, y+r.Height()*tr.scale)
}

// --- Node construction -----------------------------------------------------

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

func rectNode(r rect.Rect, class string) *html.Node {
	return &html.Node{
		Type:      html.ElementNode,
		Data:      "rect",
		Namespace: "svg",
		Attr: []html.Attribute{
			{Key: "x", Val: ftoa(r.XMin)},
			{Key: "y", Val: ftoa(r.YMin)},
			{Key: "width", Val: ftoa(r.Width())},
			{Key: "height", Val: ftoa(r.Height())},
			{Key: "class", Val: class},
		},
	}
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
