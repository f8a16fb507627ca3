package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"eldlog/internal/trip"
)

// Route writes a sketch of the route geometry: the [lon, lat] path fitted
// into the configured box with an equirectangular projection, plus start and
// end markers. No base map is drawn.
func Route(w io.Writer, route trip.RouteData, config Config) error {
	if len(route.Geometry) < 2 {
		return ErrNoGeometry
	}

	rc := config.Route
	points := projectRoute(route.Geometry, rc.Width, rc.Height, rc.Padding)

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
`, rc.Width, rc.Height, config.Colors.Background))

	var path strings.Builder
	for i, p := range points {
		if i > 0 {
			path.WriteByte(' ')
		}
		path.WriteString(num(p[0]) + "," + num(p[1]))
	}
	svg.WriteString(fmt.Sprintf(`<polyline points="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linejoin="round" stroke-linecap="round"/>`+"\n",
		path.String(), rc.Stroke, num(rc.StrokeWidth)))

	start, end := points[0], points[len(points)-1]
	svg.WriteString(fmt.Sprintf(`<circle cx="%s" cy="%s" r="%d" fill="%s" class="route-start"/>`+"\n",
		num(start[0]), num(start[1]), rc.MarkerSize, rc.StartColor))
	svg.WriteString(fmt.Sprintf(`<circle cx="%s" cy="%s" r="%d" fill="%s" class="route-end"/>`+"\n",
		num(end[0]), num(end[1]), rc.MarkerSize, rc.EndColor))

	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-family="%s" font-size="%dpx" fill="%s">%.1f miles</text>`+"\n",
		rc.Padding, rc.Height-rc.Padding/2, escapeXML(config.Font.Family), config.Font.Size, config.Colors.Text, route.Miles()))

	svg.WriteString("</svg>\n")
	_, err := io.WriteString(w, svg.String())
	return err
}

// projectRoute maps [lon, lat] pairs to pixel positions. Longitude is scaled
// by the cosine of the mean latitude and the aspect ratio is preserved, with
// the path centered in the padded box. North is up.
func projectRoute(geometry [][2]float64, width, height, padding int) [][2]float64 {
	minLon, maxLon := math.Inf(1), math.Inf(-1)
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	for _, p := range geometry {
		minLon, maxLon = math.Min(minLon, p[0]), math.Max(maxLon, p[0])
		minLat, maxLat = math.Min(minLat, p[1]), math.Max(maxLat, p[1])
	}

	k := math.Cos((minLat + maxLat) / 2 * math.Pi / 180)
	spanX := (maxLon - minLon) * k
	spanY := maxLat - minLat

	innerW := float64(width - 2*padding)
	innerH := float64(height - 2*padding)

	scale := math.Inf(1)
	if spanX > 0 {
		scale = innerW / spanX
	}
	if spanY > 0 {
		scale = math.Min(scale, innerH/spanY)
	}
	if math.IsInf(scale, 1) {
		// every point is the same position
		scale = 0
	}

	offX := float64(padding) + (innerW-spanX*scale)/2
	offY := float64(padding) + (innerH-spanY*scale)/2

	out := make([][2]float64, len(geometry))
	for i, p := range geometry {
		out[i] = [2]float64{
			offX + (p[0]-minLon)*k*scale,
			offY + (maxLat-p[1])*scale,
		}
	}
	return out
}
