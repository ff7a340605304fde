/*
Package rect provides axis-aligned rectangles, the geometry primitive of the
spatial index.

Rectangles are immutable values. All operations return new rectangles and
never modify the receiver.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rect

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rect is an axis-aligned rectangle. A Rect created with New is normalized,
// i.e. XMin ≤ XMax and YMin ≤ YMax.
//
// Degenerate rectangles (zero width or height) are valid.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// Zero is the degenerate rectangle at the origin. It is what an empty fold of
// rectangles produces and must not be read as a covered region.
var Zero = Rect{}

// New creates a normalized rectangle from two corner points.
func New(x1, y1, x2, y2 float64) Rect {
	return Rect{
		XMin: math.Min(x1, x2),
		YMin: math.Min(y1, y2),
		XMax: math.Max(x1, x2),
		YMax: math.Max(y1, y2),
	}
}

// Width returns the extent along the x-axis.
func (r Rect) Width() float64 { return r.XMax - r.XMin }

// Height returns the extent along the y-axis.
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// Area returns the area of r.
func (r Rect) Area() float64 {
	return (r.XMax - r.XMin) * (r.YMax - r.YMin)
}

// Intersects reports whether r and o overlap. Rectangles touching at an edge
// or a corner intersect.
func (r Rect) Intersects(o Rect) bool {
	return !(r.XMax < o.XMin || r.XMin > o.XMax ||
		r.YMax < o.YMin || r.YMin > o.YMax)
}

// Contains reports whether o lies completely inside r (boundaries included).
func (r Rect) Contains(o Rect) bool {
	return r.XMin <= o.XMin && r.YMin <= o.YMin &&
		r.XMax >= o.XMax && r.YMax >= o.YMax
}

// ExpandToInclude returns the minimum bounding rectangle covering r and o.
func (r Rect) ExpandToInclude(o Rect) Rect {
	return Rect{
		XMin: math.Min(r.XMin, o.XMin),
		YMin: math.Min(r.YMin, o.YMin),
		XMax: math.Max(r.XMax, o.XMax),
		YMax: math.Max(r.YMax, o.YMax),
	}
}

// Enlargement returns how much area r would have to grow by to accommodate o.
func (r Rect) Enlargement(o Rect) float64 {
	return r.ExpandToInclude(o).Area() - r.Area()
}

// Buffer grows r by d on every side. Negative values of d are treated as 0.
func (r Rect) Buffer(d float64) Rect {
	if d <= 0 {
		return r
	}
	return Rect{XMin: r.XMin - d, YMin: r.YMin - d, XMax: r.XMax + d, YMax: r.YMax + d}
}

// ApproxEqual reports whether all four coordinates of r and o differ by less
// than tol. A tolerance ≤ 0 asks for exact equality.
func (r Rect) ApproxEqual(o Rect, tol float64) bool {
	if tol <= 0 {
		return r == o
	}
	return math.Abs(r.XMin-o.XMin) < tol &&
		math.Abs(r.YMin-o.YMin) < tol &&
		math.Abs(r.XMax-o.XMax) < tol &&
		math.Abs(r.YMax-o.YMax) < tol
}

// Union folds ExpandToInclude over rs. It returns Zero for an empty argument list.
func Union(rs ...Rect) Rect {
	if len(rs) == 0 {
		return Zero
	}
	mbr := rs[0]
	for _, r := range rs[1:] {
		mbr = mbr.ExpandToInclude(r)
	}
	return mbr
}

func (r Rect) String() string {
	return fmt.Sprintf("(%s,%s,%s,%s)", ftoa(r.XMin), ftoa(r.YMin), ftoa(r.XMax), ftoa(r.YMax))
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Parse reads a rectangle from four numbers, separated by commas and/or
// white space. Surrounding parentheses are allowed, so Parse accepts the
// output of Rect.String. The result is normalized.
func Parse(s string) (Rect, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	fields := strings.FieldsFunc(s, func(c rune) bool {
		return c == ',' || c == ' ' || c == '\t'
	})
	if len(fields) != 4 {
		return Zero, fmt.Errorf("%w: expected 4 coordinates, have %d", ErrSyntax, len(fields))
	}
	var c [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Zero, fmt.Errorf("%w: %q is not a number", ErrSyntax, f)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Zero, fmt.Errorf("%w: coordinate %q is not finite", ErrSyntax, f)
		}
		c[i] = v
	}
	return New(c[0], c[1], c[2], c[3]), nil
}
