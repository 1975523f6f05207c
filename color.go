package svg

import "fmt"

// RGB is an explicit red/green/blue triple. Channels are 16-bit range,
// though SVG renderers expect 0-255.
type RGB struct {
	Red   uint16
	Green uint16
	Blue  uint16
}

// String formats the triple as an SVG rgb() token.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.Red, c.Green, c.Blue)
}

// Color is an optional SVG paint value: absent, a keyword such as
// "white", or an explicit RGB triple. The zero value is the absent
// state, which serializes as "none". Colors are immutable and may be
// copied freely.
type Color struct {
	keyword string
	rgb     RGB
	kind    colorKind
}

type colorKind int

const (
	colorNone colorKind = iota
	colorKeyword
	colorRGB
)

// KeywordColor returns a Color holding the given keyword verbatim. The
// keyword is not validated or escaped; SVG itself is just as permissive,
// so invalid names are the caller's responsibility.
func KeywordColor(name string) Color {
	return Color{keyword: name, kind: colorKeyword}
}

// RGBColor returns a Color holding an explicit rgb triple.
func RGBColor(red, green, blue uint16) Color {
	return Color{rgb: RGB{Red: red, Green: green, Blue: blue}, kind: colorRGB}
}

// String implements fmt.Stringer.
func (c Color) String() string {
	switch c.kind {
	case colorKeyword:
		return c.keyword
	case colorRGB:
		return c.rgb.String()
	default:
		return "none"
	}
}
