package svg

import "io"

// Polyline is an SVG polyline element: an ordered list of vertices
// connected by line segments.
type Polyline struct {
	attrs
	points []Point
}

// NewPolyline returns a polyline with no vertices and the default
// styling. An empty polyline is legal and renders an empty point list.
func NewPolyline() *Polyline {
	return &Polyline{attrs: newAttrs()}
}

// AddPoint appends a vertex. Vertices render in insertion order;
// duplicates are allowed.
func (p *Polyline) AddPoint(point Point) *Polyline {
	p.points = append(p.points, point)
	return p
}

// SetFillColor sets the fill paint.
func (p *Polyline) SetFillColor(color Color) *Polyline {
	p.fill = color
	return p
}

// SetFillColorName is shorthand for SetFillColor(KeywordColor(name)).
func (p *Polyline) SetFillColorName(name string) *Polyline {
	p.fill = KeywordColor(name)
	return p
}

// SetStrokeColor sets the stroke paint.
func (p *Polyline) SetStrokeColor(color Color) *Polyline {
	p.stroke = color
	return p
}

// SetStrokeWidth sets the stroke width.
func (p *Polyline) SetStrokeWidth(width float64) *Polyline {
	p.strokeWidth = width
	return p
}

// SetStrokeLineCap sets the stroke-linecap attribute.
func (p *Polyline) SetStrokeLineCap(lineCap string) *Polyline {
	p.lineCap = &lineCap
	return p
}

// SetStrokeLineJoin sets the stroke-linejoin attribute.
func (p *Polyline) SetStrokeLineJoin(lineJoin string) *Polyline {
	p.lineJoin = &lineJoin
	return p
}

// Render writes the polyline as a self-closing <polyline/> element.
// Every vertex is followed by a single space, the last one included.
func (p *Polyline) Render(w io.Writer) error {
	ew := &elemWriter{w: w}
	ew.printf(`<polyline points="`)
	for _, pt := range p.points {
		ew.printf("%g,%g ", pt.X, pt.Y)
	}
	ew.printf(`" `)
	p.paint(ew)
	p.width(ew)
	p.capJoin(ew)
	ew.printf("/>")
	return ew.err
}
