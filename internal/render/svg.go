// Package render draws daily log sheets and route sketches as SVG.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"eldlog/internal/duty"
)

var (
	ErrNoSheets   = errors.New("no log sheets to render")
	ErrNoGeometry = errors.New("route has fewer than 2 points")
)

// rowPlaceholder is drawn on a status row whose events could not be laid out.
const rowPlaceholder = "timestamp unavailable"

// sheetBox is the pixel frame of one log sheet.
type sheetBox struct {
	x, y       int
	width      int
	chartX     int
	chartWidth int
	rowsY      int
	rowHeight  float64
}

func (c Config) sheetHeight() int {
	return c.Layout.TitleHeight + c.Layout.HeaderHeight + int(float64(len(duty.Statuses()))*c.Layout.RowHeight+0.5)
}

// LogSheets writes one SVG document holding every sheet, stacked top to
// bottom in the order given. A row that fails to lay out is drawn with a
// placeholder and does not stop the other rows or sheets.
func LogSheets(w io.Writer, sheets []duty.LogSheet, config Config) error {
	if len(sheets) == 0 {
		return ErrNoSheets
	}

	sheetH := config.sheetHeight()
	height := 2*config.Layout.Margin + len(sheets)*sheetH + (len(sheets)-1)*config.Layout.SheetGap

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.title-text { font-family: %s; font-size: %dpx; font-weight: bold; fill: %s; }
.tag-text { font-family: %s; font-size: %dpx; fill: %s; }
.hour-text { font-family: %s; font-size: %dpx; font-weight: bold; fill: %s; }
.status-text { font-family: %s; font-size: %dpx; font-weight: bold; fill: %s; }
.total-text { font-family: %s; font-size: %dpx; fill: %s; }
.error-text { font-family: %s; font-size: %dpx; font-style: italic; fill: %s; }
</style>
</defs>
`, config.Layout.Width, height, config.Colors.Background,
		config.Font.Family, config.Font.Size+4, config.Colors.Text,
		config.Font.Family, config.Font.Size, config.Colors.MutedText,
		config.Font.Family, config.Font.Size-2, config.Colors.Text,
		config.Font.Family, config.Font.Size, config.Colors.Text,
		config.Font.Family, config.Font.Size, config.Colors.MutedText,
		config.Font.Family, config.Font.Size-1, config.Colors.Error))

	width := config.Layout.Width - 2*config.Layout.Margin
	for i, sheet := range sheets {
		box := sheetBox{
			x:         config.Layout.Margin,
			y:         config.Layout.Margin + i*(sheetH+config.Layout.SheetGap),
			width:     width,
			chartX:    config.Layout.Margin + config.Layout.LabelWidth,
			rowHeight: config.Layout.RowHeight,
		}
		box.chartWidth = width - config.Layout.LabelWidth - config.Layout.TotalsWidth
		box.rowsY = box.y + config.Layout.TitleHeight + config.Layout.HeaderHeight
		drawSheet(&svg, sheet, i, box, config)
	}

	svg.WriteString("</svg>\n")
	_, err := io.WriteString(w, svg.String())
	return err
}

func drawSheet(svg *strings.Builder, sheet duty.LogSheet, index int, box sheetBox, config Config) {
	sheetH := config.sheetHeight()
	svg.WriteString(fmt.Sprintf(`<g class="log-sheet" data-index="%d">`+"\n", index+1))
	svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s"/>`+"\n",
		box.x, box.y, box.width, sheetH, config.Colors.Sheet, config.Colors.Border))

	// Title band
	titleY := box.y + config.Layout.TitleHeight*2/3
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="title-text">Date: %s</text>`+"\n",
		box.x+8, titleY, escapeXML(sheet.Date)))
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="end" class="tag-text">Log Sheet #%d</text>`+"\n",
		box.x+box.width-8, titleY, index+1))

	drawHourHeader(svg, box, config)

	for r, row := range duty.LayoutSheet(sheet, box.rowHeight) {
		rowY := float64(box.rowsY) + float64(r)*box.rowHeight
		drawStatusRow(svg, row, duty.TotalHours(sheet.Events, row.Status), rowY, box, config)
	}

	svg.WriteString("</g>\n")
}

// drawHourHeader writes the Midnight, 1..11, Noon, 1..11, Midnight labels
// above the chart, one per hour line.
func drawHourHeader(svg *strings.Builder, box sheetBox, config Config) {
	headerY := box.y + config.Layout.TitleHeight
	svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s"/>`+"\n",
		box.x, headerY, box.width, config.Layout.HeaderHeight, config.Colors.HeaderFill, config.Colors.Border))
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" class="hour-text">Status</text>`+"\n",
		box.x+config.Layout.LabelWidth/2, headerY+config.Layout.HeaderHeight*2/3))
	if config.Layout.TotalsWidth > 0 {
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" class="hour-text">Total</text>`+"\n",
			box.chartX+box.chartWidth+config.Layout.TotalsWidth/2, headerY+config.Layout.HeaderHeight*2/3))
	}

	for h := 0; h <= int(duty.HoursPerDay); h++ {
		x := float64(box.chartX) + duty.HourToX(float64(h))/duty.AxisMax*float64(box.chartWidth)
		svg.WriteString(fmt.Sprintf(`<text x="%s" y="%d" text-anchor="middle" class="hour-text">%s</text>`+"\n",
			num(x), headerY+config.Layout.HeaderHeight*2/3, hourLabel(h)))
	}
}

func hourLabel(h int) string {
	switch {
	case h == 0 || h == 24:
		return "Midnight"
	case h == 12:
		return "Noon"
	case h > 12:
		return strconv.Itoa(h - 12)
	}
	return strconv.Itoa(h)
}

// drawStatusRow draws the label cell, the grid, the segments and the totals
// cell of one row. The chart is a nested SVG whose viewBox is the engine's
// normalized coordinate space, so segments and grid are used unscaled.
func drawStatusRow(svg *strings.Builder, row duty.Row, total float64, rowY float64, box sheetBox, config Config) {
	rh := box.rowHeight
	svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%s" width="%d" height="%s" fill="%s" stroke="%s"/>`+"\n",
		box.x, num(rowY), config.Layout.LabelWidth, num(rh), config.Colors.HeaderFill, config.Colors.Border))
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%s" text-anchor="middle" dominant-baseline="middle" class="status-text">%s</text>`+"\n",
		box.x+config.Layout.LabelWidth/2, num(rowY+rh/2), escapeXML(row.Status.Label())))

	svg.WriteString(fmt.Sprintf(`<svg x="%d" y="%s" width="%d" height="%s" viewBox="0 0 %s %s" preserveAspectRatio="none" class="status-row" data-status="%s">`+"\n",
		box.chartX, num(rowY), box.chartWidth, num(rh), num(duty.AxisMax), num(rh), row.Status.Key()))
	svg.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
		config.Colors.Border, num(config.Layout.GridStroke)))

	grid := duty.Grid(rh)
	drawLine(svg, grid.Baseline, config.Colors.Baseline, config.Layout.GridStroke, "")
	for _, l := range grid.Hours {
		drawLine(svg, l, config.Colors.HourLine, config.Layout.GridStroke, "")
	}
	for _, l := range grid.Quarters {
		drawLine(svg, l, config.Colors.QuarterLine, config.Layout.GridStroke*0.4, "")
	}

	if row.Err != nil {
		svg.WriteString("</svg>\n")
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%s" text-anchor="middle" dominant-baseline="middle" class="error-text">%s</text>`+"\n",
			box.chartX+box.chartWidth/2, num(rowY+rh/2), rowPlaceholder))
	} else {
		for _, s := range row.Segments {
			drawLine(svg, duty.Line(s), config.Colors.Segment, config.Layout.SegmentStroke, ` stroke-linecap="round" class="segment"`)
		}
		svg.WriteString("</svg>\n")
	}

	if config.Layout.TotalsWidth > 0 {
		tx := box.chartX + box.chartWidth
		svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%s" width="%d" height="%s" fill="none" stroke="%s"/>`+"\n",
			tx, num(rowY), config.Layout.TotalsWidth, num(rh), config.Colors.Border))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%s" text-anchor="middle" dominant-baseline="middle" class="total-text">%.1f</text>`+"\n",
			tx+config.Layout.TotalsWidth/2, num(rowY+rh/2), total))
	}
}

func drawLine(svg *strings.Builder, l duty.Line, stroke string, width float64, extra string) {
	svg.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"%s/>`+"\n",
		num(l.X1), num(l.Y1), num(l.X2), num(l.Y2), stroke, num(width), extra))
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// escapeXML escapes the XML special characters so text can be embedded in SVG.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
