package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/heatcurve/internal/series"
)

// svg layout margins in px
const (
	marginLeft   = 48
	marginRight  = 16
	marginTop    = 16
	marginBottom = 32
)

// SeriesToSVG draws the curve as a filled line chart. The x axis runs from
// the warm end on the left to the cold end on the right.
func SeriesToSVG(s series.Series, width, height int, strokeColor string) string {
	if len(s) < 2 {
		return ""
	}
	strokeColor = html.EscapeString(strokeColor)

	xFirst, xLast := s[0].OutsideTemp, s[len(s)-1].OutsideTemp
	lo, hi := s.Bounds()
	minY, maxY := math.Floor(lo/5)*5, math.Ceil(hi/5)*5
	if maxY == minY {
		maxY = minY + 5
	}

	plotW := float64(width - marginLeft - marginRight)
	plotH := float64(height - marginTop - marginBottom)
	px := func(x float64) float64 {
		return marginLeft + (x-xFirst)/(xLast-xFirst)*plotW
	}
	py := func(y float64) float64 {
		return marginTop + plotH - (y-minY)/(maxY-minY)*plotH
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif" font-size="10">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	// grid and tick labels
	sb.WriteString(`<g stroke="#e5e5e5" stroke-width="1">` + "\n")
	for x := xFirst; x >= xLast; x -= 5 {
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%d" x2="%.1f" y2="%.1f"/>`+"\n", px(x), marginTop, px(x), marginTop+plotH))
	}
	for y := minY; y <= maxY; y += 5 {
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", marginLeft, py(y), marginLeft+plotW, py(y)))
	}
	sb.WriteString("</g>\n<g fill=\"#525252\">\n")
	for x := xFirst; x >= xLast; x -= 5 {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle">%g°C</text>`+"\n", px(x), marginTop+plotH+16, x))
	}
	for y := minY; y <= maxY; y += 5 {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%.1f" text-anchor="end">%g°C</text>`+"\n", marginLeft-6, py(y)+3, y))
	}
	sb.WriteString("</g>\n")

	var path strings.Builder
	for i, p := range s {
		if i == 0 {
			path.WriteString(fmt.Sprintf("M%.1f,%.1f", px(p.OutsideTemp), py(p.FlowTemp)))
		} else {
			path.WriteString(fmt.Sprintf(" L%.1f,%.1f", px(p.OutsideTemp), py(p.FlowTemp)))
		}
	}
	line := path.String()
	area := fmt.Sprintf("%s L%.1f,%.1f L%.1f,%.1f Z", line, px(xLast), py(minY), px(xFirst), py(minY))

	sb.WriteString(fmt.Sprintf(`<path fill="%s" fill-opacity="0.15" stroke="none" d="%s"/>`+"\n", strokeColor, area))
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="2" d="%s"/>`+"\n", strokeColor, line))
	sb.WriteString(`</svg>`)
	return sb.String()
}
