// Package svg builds SVG markup in memory. Callers construct figures
// (Circle, Polyline, Text) with chained setters, collect them into a
// Document and render the document as markup text. The package writes
// markup only; it does not parse, lay out or validate anything.
package svg

import "io"

// Markup envelope around the rendered figures. Fixed text, reproduced
// byte for byte for compatibility with downstream consumers.
const (
	header = `<?xml version="1.0" encoding="UTF-8" ?>` +
		`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">`
	footer = `</svg>`
)

// Document is an ordered, append-only collection of figures plus the
// markup envelope emitted around them. The zero value is an empty
// document, ready to use.
//
// A Document owns the figures added to it: build a figure with chained
// setters, hand it to Add and leave it alone afterwards. Neither the
// document nor the figures carry any locking, so concurrent use needs
// external synchronization.
type Document struct {
	figures []Figure
}

// Add appends a figure to the document. It always succeeds; there is no
// capacity limit and no duplicate detection. Figures render in the
// order they were added.
func (d *Document) Add(figure Figure) {
	d.figures = append(d.figures, figure)
}

// Render writes the whole document to w: the XML declaration and the
// opening svg tag, every figure in insertion order, then the closing
// tag. The only errors returned are those of the writer itself, passed
// through unchanged; rendering stops at the first failed write.
func (d *Document) Render(w io.Writer) error {
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	for _, figure := range d.figures {
		if err := figure.Render(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, footer)
	return err
}
