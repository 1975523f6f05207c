package svg

import "io"

// Circle is an SVG circle element.
type Circle struct {
	attrs
	center Point
	radius float64
}

// NewCircle returns a circle centered at (0,0) with radius 0 and the
// default styling.
func NewCircle() *Circle {
	return &Circle{attrs: newAttrs()}
}

// SetFillColor sets the fill paint. Like every setter it mutates the
// circle in place and returns it for chaining.
func (c *Circle) SetFillColor(color Color) *Circle {
	c.fill = color
	return c
}

// SetFillColorName is shorthand for SetFillColor(KeywordColor(name)).
func (c *Circle) SetFillColorName(name string) *Circle {
	c.fill = KeywordColor(name)
	return c
}

// SetStrokeColor sets the stroke paint.
func (c *Circle) SetStrokeColor(color Color) *Circle {
	c.stroke = color
	return c
}

// SetStrokeWidth sets the stroke width. The value is not range-checked;
// whatever is passed ends up in the output verbatim.
func (c *Circle) SetStrokeWidth(width float64) *Circle {
	c.strokeWidth = width
	return c
}

// SetStrokeLineCap sets the stroke-linecap attribute. The value is not
// checked against the vocabulary SVG accepts (butt, round, square).
func (c *Circle) SetStrokeLineCap(lineCap string) *Circle {
	c.lineCap = &lineCap
	return c
}

// SetStrokeLineJoin sets the stroke-linejoin attribute.
func (c *Circle) SetStrokeLineJoin(lineJoin string) *Circle {
	c.lineJoin = &lineJoin
	return c
}

// SetCenter moves the circle's center.
func (c *Circle) SetCenter(center Point) *Circle {
	c.center = center
	return c
}

// SetRadius sets the circle's radius.
func (c *Circle) SetRadius(r float64) *Circle {
	c.radius = r
	return c
}

// Render writes the circle as a self-closing <circle/> element.
func (c *Circle) Render(w io.Writer) error {
	ew := &elemWriter{w: w}
	ew.printf(`<circle cx="%g" cy="%g" r="%g" `, c.center.X, c.center.Y, c.radius)
	c.paint(ew)
	c.width(ew)
	c.capJoin(ew)
	ew.printf("/>")
	return ew.err
}
