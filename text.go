package svg

import "io"

// Text is an SVG text element: a content string anchored at a point,
// with an optional dx/dy offset and font styling.
type Text struct {
	attrs
	point      Point
	offset     Point
	fontSize   uint32
	fontFamily *string
	data       string
}

// NewText returns an empty text element at (0,0) with font size 1 and
// the default styling.
func NewText() *Text {
	return &Text{attrs: newAttrs(), fontSize: 1}
}

// SetFillColor sets the fill paint.
func (t *Text) SetFillColor(color Color) *Text {
	t.fill = color
	return t
}

// SetFillColorName is shorthand for SetFillColor(KeywordColor(name)).
func (t *Text) SetFillColorName(name string) *Text {
	t.fill = KeywordColor(name)
	return t
}

// SetStrokeColor sets the stroke paint.
func (t *Text) SetStrokeColor(color Color) *Text {
	t.stroke = color
	return t
}

// SetStrokeWidth sets the stroke width.
func (t *Text) SetStrokeWidth(width float64) *Text {
	t.strokeWidth = width
	return t
}

// SetStrokeLineCap sets the stroke-linecap attribute.
func (t *Text) SetStrokeLineCap(lineCap string) *Text {
	t.lineCap = &lineCap
	return t
}

// SetStrokeLineJoin sets the stroke-linejoin attribute.
func (t *Text) SetStrokeLineJoin(lineJoin string) *Text {
	t.lineJoin = &lineJoin
	return t
}

// SetPoint sets the anchor point (the x/y attributes).
func (t *Text) SetPoint(point Point) *Text {
	t.point = point
	return t
}

// SetOffset sets the dx/dy offset from the anchor point.
func (t *Text) SetOffset(offset Point) *Text {
	t.offset = offset
	return t
}

// SetFontSize sets the font size.
func (t *Text) SetFontSize(size uint32) *Text {
	t.fontSize = size
	return t
}

// SetFontFamily sets the font-family attribute, which is omitted from
// output until set.
func (t *Text) SetFontFamily(family string) *Text {
	t.fontFamily = &family
	return t
}

// SetData sets the text content. The content is written between the
// tags verbatim, with no XML escaping.
func (t *Text) SetData(data string) *Text {
	t.data = data
	return t
}

// Render writes the text as an open/close <text> element pair with the
// content between them.
func (t *Text) Render(w io.Writer) error {
	ew := &elemWriter{w: w}
	ew.printf(`<text x="%g" y="%g" dx="%g" dy="%g" `, t.point.X, t.point.Y, t.offset.X, t.offset.Y)
	t.paint(ew)
	ew.printf(`font-size="%d" `, t.fontSize)
	t.width(ew)
	if t.fontFamily != nil {
		ew.printf(`font-family="%s" `, *t.fontFamily)
	}
	t.capJoin(ew)
	ew.printf(">%s</text>", t.data)
	return ew.err
}
