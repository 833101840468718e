package canvas

import (
	"fmt"
	"math"
	"strings"
)

const ipeHeader = `<?xml version="1.0"?>
<!DOCTYPE ipe SYSTEM "ipe.dtd">
<ipe version="70206" creator="Ipe 7.2.7">
<info created="D:20170719160807" modified="D:20170719160807"/>
<ipestyle name="basic">
</ipestyle>
<page>
<layer name="alpha"/>
<view layers="alpha" active="alpha"/>
`

// IpeRepresentation returns the contents of an Ipe file that represents the
// current canvas.
func (c *Canvas) IpeRepresentation() string {
	var b strings.Builder
	b.WriteString(ipeHeader)

	for _, mark := range c.Marks {
		b.WriteString(ipeCircleRepresentation(mark, c.Scale))
	}
	for _, path := range c.Paths {
		b.WriteString(ipePathRepresentation(path, c.Scale))
	}

	b.WriteString("</page>\n</ipe>")
	return b.String()
}

func ipePathRepresentation(path Path, scale float64) string {
	if path.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString("<path stroke=\"black\">\n")

	point := EucFromPol(path.Points[0], scale)
	fmt.Fprintf(&b, "%f %f m\n", point.X, point.Y)

	for _, p := range path.Points[1:] {
		point = EucFromPol(p, scale)
		fmt.Fprintf(&b, "%f %f l\n", point.X, point.Y)
	}

	if path.IsClosed {
		b.WriteString("h\n")
	}
	b.WriteString("</path>\n")
	return b.String()
}

func ipeCircleRepresentation(circle Circle, scale float64) string {
	center := EucFromPol(circle.Center, scale)

	var b strings.Builder
	b.WriteString("<path stroke=\"black\"")
	if circle.IsFilled {
		b.WriteString(" fill=\"black\"")
	}
	fmt.Fprintf(&b, ">\n%f 0 0 %f %f %f e\n</path>\n",
		circle.Radius, circle.Radius, center.X, center.Y)
	return b.String()
}

// SVGRepresentation returns the contents of an SVG file that represents the
// current canvas. The y-axis is flipped so figures keep their mathematical
// orientation.
func (c *Canvas) SVGRepresentation() string {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	include := func(x, y, margin float64) {
		minX = math.Min(minX, x-margin)
		minY = math.Min(minY, y-margin)
		maxX = math.Max(maxX, x+margin)
		maxY = math.Max(maxY, y+margin)
	}

	for _, path := range c.Paths {
		for _, p := range path.Points {
			point := EucFromPol(p, c.Scale)
			include(point.X, -point.Y, 0)
		}
	}
	for _, mark := range c.Marks {
		center := EucFromPol(mark.Center, c.Scale)
		include(center.X, -center.Y, mark.Radius)
	}

	if minX > maxX {
		// Empty canvas.
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	const padding = 4.0
	minX -= padding
	minY -= padding
	width := maxX - minX + padding
	height := maxY - minY + padding

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&b,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%f %f %f %f\">\n",
		minX, minY, width, height)

	for _, path := range c.Paths {
		b.WriteString(svgPathRepresentation(path, c.Scale))
	}
	for _, mark := range c.Marks {
		b.WriteString(svgCircleRepresentation(mark, c.Scale))
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func svgPathRepresentation(path Path, scale float64) string {
	if path.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString("<path fill=\"none\" stroke=\"black\" d=\"")

	point := EucFromPol(path.Points[0], scale)
	fmt.Fprintf(&b, "M %f %f", point.X, -point.Y)

	for _, p := range path.Points[1:] {
		point = EucFromPol(p, scale)
		fmt.Fprintf(&b, " L %f %f", point.X, -point.Y)
	}

	if path.IsClosed {
		b.WriteString(" Z")
	}
	b.WriteString("\"/>\n")
	return b.String()
}

func svgCircleRepresentation(circle Circle, scale float64) string {
	center := EucFromPol(circle.Center, scale)
	fill := "none"
	if circle.IsFilled {
		fill = "black"
	}
	return fmt.Sprintf(
		"<circle cx=\"%f\" cy=\"%f\" r=\"%f\" stroke=\"black\" fill=\"%s\"/>\n",
		center.X, -center.Y, circle.Radius, fill)
}
