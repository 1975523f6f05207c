package svg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// renderString renders a single figure, failing the test on any error.
func renderString(t *testing.T, f Figure) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	return buf.String()
}

func TestFigureRendering(t *testing.T) {
	tests := []struct {
		description string
		figure      Figure
		expected    string
	}{
		{
			"circle with defaults only",
			NewCircle(),
			`<circle cx="0" cy="0" r="0" fill="none" stroke="none" stroke-width="1" />`,
		},
		{
			"white circle at 50,50",
			NewCircle().SetFillColorName("white").SetRadius(6).SetCenter(Point{X: 50, Y: 50}),
			`<circle cx="50" cy="50" r="6" fill="white" stroke="none" stroke-width="1" />`,
		},
		{
			"circle with every attribute set",
			NewCircle().
				SetCenter(Point{X: 1.5, Y: -2.5}).
				SetRadius(0.25).
				SetFillColor(RGBColor(1, 2, 3)).
				SetStrokeColor(KeywordColor("red")).
				SetStrokeWidth(2).
				SetStrokeLineCap("butt").
				SetStrokeLineJoin("miter"),
			`<circle cx="1.5" cy="-2.5" r="0.25" fill="rgb(1,2,3)" stroke="red" stroke-width="2" stroke-linecap="butt" stroke-linejoin="miter" />`,
		},
		{
			"polyline with two points and a round cap",
			NewPolyline().
				SetStrokeColor(RGBColor(255, 198, 63)).
				SetStrokeWidth(16).
				SetStrokeLineCap("round").
				AddPoint(Point{X: 50, Y: 50}).
				AddPoint(Point{X: 250, Y: 250}),
			`<polyline points="50,50 250,250 " fill="none" stroke="rgb(255,198,63)" stroke-width="16" stroke-linecap="round" />`,
		},
		{
			"polyline with no points",
			NewPolyline(),
			`<polyline points="" fill="none" stroke="none" stroke-width="1" />`,
		},
		{
			"polyline allows duplicate points",
			NewPolyline().AddPoint(Point{X: 1, Y: 1}).AddPoint(Point{X: 1, Y: 1}),
			`<polyline points="1,1 1,1 " fill="none" stroke="none" stroke-width="1" />`,
		},
		{
			"text with defaults only",
			NewText(),
			`<text x="0" y="0" dx="0" dy="0" fill="none" stroke="none" font-size="1" stroke-width="1" ></text>`,
		},
		{
			"text with font family and offset",
			NewText().
				SetPoint(Point{X: 50, Y: 50}).
				SetOffset(Point{X: 10, Y: -10}).
				SetFontSize(20).
				SetFontFamily("Verdana").
				SetFillColorName("black").
				SetData("label"),
			`<text x="50" y="50" dx="10" dy="-10" fill="black" stroke="none" font-size="20" stroke-width="1" font-family="Verdana" >label</text>`,
		},
		{
			"text content is not escaped",
			NewText().SetData("a < b & c"),
			`<text x="0" y="0" dx="0" dy="0" fill="none" stroke="none" font-size="1" stroke-width="1" >a < b & c</text>`,
		},
		{
			"negative stroke width passes through",
			NewCircle().SetStrokeWidth(-3.5),
			`<circle cx="0" cy="0" r="0" fill="none" stroke="none" stroke-width="-3.5" />`,
		},
	}

	for _, test := range tests {
		require.Equal(t, test.expected, renderString(t, test.figure), test.description)
	}
}

func TestSettersOverwrite(t *testing.T) {
	// only the last value per field matters
	c := NewCircle().
		SetRadius(1).
		SetFillColorName("red").
		SetRadius(6).
		SetFillColorName("white").
		SetCenter(Point{X: 9, Y: 9}).
		SetCenter(Point{X: 50, Y: 50})

	require.Equal(t,
		`<circle cx="50" cy="50" r="6" fill="white" stroke="none" stroke-width="1" />`,
		renderString(t, c))
}

func TestSetterOrderIrrelevant(t *testing.T) {
	a := NewCircle().SetRadius(6).SetCenter(Point{X: 50, Y: 50}).SetFillColorName("white")
	b := NewCircle().SetFillColorName("white").SetCenter(Point{X: 50, Y: 50}).SetRadius(6)

	require.Equal(t, renderString(t, a), renderString(t, b))
}

func TestRenderIsRepeatable(t *testing.T) {
	f := NewPolyline().
		SetStrokeColor(RGBColor(255, 198, 63)).
		SetStrokeWidth(16).
		SetStrokeLineCap("round").
		AddPoint(Point{X: 50, Y: 50}).
		AddPoint(Point{X: 250, Y: 250})

	require.Equal(t, renderString(t, f), renderString(t, f))
}
