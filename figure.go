package svg

import (
	"fmt"
	"io"
)

// Point is an X,Y coordinate pair.
type Point struct {
	X float64
	Y float64
}

// Figure is a single renderable SVG element. All figure types implement
// this interface. Render writes the figure as one markup element to w;
// the only errors it can return come from the writer itself, passed
// through unchanged.
type Figure interface {
	Render(w io.Writer) error
}

// attrs is the styling state shared by every figure type. Fill and
// stroke default to the absent color, stroke width to 1.0, and the line
// cap/join attributes are omitted from output until set.
type attrs struct {
	fill        Color
	stroke      Color
	strokeWidth float64
	lineCap     *string
	lineJoin    *string
}

func newAttrs() attrs {
	return attrs{strokeWidth: 1.0}
}

// paint writes the fill/stroke attribute pair common to every figure.
func (a *attrs) paint(ew *elemWriter) {
	ew.printf(`fill="%s" stroke="%s" `, a.fill, a.stroke)
}

func (a *attrs) width(ew *elemWriter) {
	ew.printf(`stroke-width="%g" `, a.strokeWidth)
}

// capJoin writes stroke-linecap and stroke-linejoin, each only if it
// was set.
func (a *attrs) capJoin(ew *elemWriter) {
	if a.lineCap != nil {
		ew.printf(`stroke-linecap="%s" `, *a.lineCap)
	}
	if a.lineJoin != nil {
		ew.printf(`stroke-linejoin="%s" `, *a.lineJoin)
	}
}

// elemWriter writes markup fragments to an io.Writer, keeping the first
// write error and turning every later write into a no-op.
type elemWriter struct {
	w   io.Writer
	err error
}

func (ew *elemWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
