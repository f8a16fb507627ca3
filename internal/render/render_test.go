package render

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"eldlog/internal/duty"
	"eldlog/internal/trip"
)

func sampleSheets() []duty.LogSheet {
	return []duty.LogSheet{
		{
			Date: "2024-01-01",
			Events: []duty.Event{
				{Type: duty.OffDuty, StartTime: "2024-01-01T00:00:00", Duration: 6},
				{Type: duty.Driving, StartTime: "2024-01-01T06:00:00", Duration: 2},
				{Type: duty.Driving, StartTime: "2024-01-01T10:00:00", Duration: 1},
				{Type: duty.OnDuty, StartTime: "2024-01-01T08:00:00", Duration: 2},
			},
		},
		{
			Date: "2024-01-02 <R&D>",
			Events: []duty.Event{
				{Type: duty.SleeperBerth, StartTime: "2024-01-02T00:00:00", Duration: 10},
				{Type: duty.Driving, StartTime: "bad", Duration: 4},
			},
		},
	}
}

func renderSheets(t *testing.T, sheets []duty.LogSheet, config Config) string {
	t.Helper()
	var buf bytes.Buffer
	if err := LogSheets(&buf, sheets, config); err != nil {
		t.Fatalf("LogSheets: %v", err)
	}
	return buf.String()
}

func TestLogSheetsStructure(t *testing.T) {
	out := renderSheets(t, sampleSheets(), DefaultConfig())

	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) || !strings.HasSuffix(out, "</svg>\n") {
		t.Fatal("output is not a complete SVG document")
	}
	if got := strings.Count(out, `class="log-sheet"`); got != 2 {
		t.Errorf("expected 2 sheets, got %d", got)
	}
	if got := strings.Count(out, `class="status-row"`); got != 8 {
		t.Errorf("expected 8 status rows, got %d", got)
	}
	for _, want := range []string{"Date: 2024-01-01", "Log Sheet #1", "Log Sheet #2", ">Midnight<", ">Noon<", ">Sleeper Berth<", ">On Duty<"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if got := strings.Count(out, ">Midnight<"); got != 4 {
		t.Errorf("expected 2 midnight labels per sheet, got %d", got)
	}
}

func TestLogSheetsSegments(t *testing.T) {
	out := renderSheets(t, sampleSheets()[:1], DefaultConfig())

	// Driving: 06:00 for 2h and 10:00 for 1h, spread over a 50 unit row.
	for _, want := range []string{
		`<line x1="25" y1="16.67" x2="33.33" y2="16.67" stroke="#000000" stroke-width="4" stroke-linecap="round" class="segment"/>`,
		`<line x1="41.67" y1="33.33" x2="45.83" y2="33.33" stroke="#000000" stroke-width="4" stroke-linecap="round" class="segment"/>`,
		`viewBox="0 0 100 50" preserveAspectRatio="none"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s", want)
		}
	}
	if got := strings.Count(out, `class="segment"`); got != 4 {
		t.Errorf("expected 4 segments, got %d", got)
	}
	if strings.Contains(out, rowPlaceholder) {
		t.Error("unexpected placeholder on a valid sheet")
	}
}

func TestLogSheetsMalformedRowPlaceholder(t *testing.T) {
	out := renderSheets(t, sampleSheets()[1:], DefaultConfig())

	if got := strings.Count(out, rowPlaceholder); got != 1 {
		t.Errorf("expected 1 placeholder, got %d", got)
	}
	// The sleeper berth row still renders.
	if got := strings.Count(out, `class="segment"`); got != 1 {
		t.Errorf("expected 1 segment, got %d", got)
	}
	if !strings.Contains(out, "Date: 2024-01-02 &lt;R&amp;D&gt;") {
		t.Error("date label was not escaped")
	}
}

func TestLogSheetsTotals(t *testing.T) {
	out := renderSheets(t, sampleSheets()[:1], DefaultConfig())
	for _, want := range []string{`class="total-text">6.0<`, `class="total-text">0.0<`, `class="total-text">3.0<`, `class="total-text">2.0<`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing total %s", want)
		}
	}

	config := DefaultConfig()
	config.Layout.TotalsWidth = 0
	out = renderSheets(t, sampleSheets()[:1], config)
	if strings.Contains(out, "total-text\">") {
		t.Error("totals drawn with totals column disabled")
	}
}

func TestLogSheetsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := LogSheets(&buf, nil, DefaultConfig()); !errors.Is(err, ErrNoSheets) {
		t.Errorf("expected ErrNoSheets, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("expected no output")
	}
}

func TestHourLabel(t *testing.T) {
	tests := map[int]string{0: "Midnight", 1: "1", 11: "11", 12: "Noon", 13: "1", 23: "11", 24: "Midnight"}
	for h, want := range tests {
		if got := hourLabel(h); got != want {
			t.Errorf("hourLabel(%d) = %q, want %q", h, got, want)
		}
	}
}

func TestNum(t *testing.T) {
	tests := map[float64]string{0: "0", 25: "25", 100.0 / 3: "33.33", 12.5: "12.5", -0.001: "0", 2.0 / 3: "0.67"}
	for v, want := range tests {
		if got := num(v); got != want {
			t.Errorf("num(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestRoute(t *testing.T) {
	route := trip.RouteData{
		Distance: 160934,
		Geometry: [][2]float64{{-87.6, 41.9}, {-90.0, 40.0}, {-104.9, 39.7}},
	}

	var buf bytes.Buffer
	if err := Route(&buf, route, DefaultConfig()); err != nil {
		t.Fatalf("Route: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<polyline", `class="route-start"`, `class="route-end"`, "100.0 miles"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRouteNoGeometry(t *testing.T) {
	var buf bytes.Buffer
	err := Route(&buf, trip.RouteData{Geometry: [][2]float64{{1, 2}}}, DefaultConfig())
	if !errors.Is(err, ErrNoGeometry) {
		t.Errorf("expected ErrNoGeometry, got %v", err)
	}
}

func TestProjectRouteFitsBox(t *testing.T) {
	geometry := [][2]float64{{-87.6, 41.9}, {-104.9, 39.7}, {-95.0, 45.0}}
	points := projectRoute(geometry, 800, 500, 20)

	for i, p := range points {
		if p[0] < 20-1e-9 || p[0] > 780+1e-9 || p[1] < 20-1e-9 || p[1] > 480+1e-9 {
			t.Errorf("point %d %v outside padded box", i, p)
		}
	}
	// Westernmost point on the left edge, northernmost at the top.
	if math.Abs(points[1][0]-20) > 1e-6 && math.Abs(points[0][0]-780) > 1e-6 {
		t.Errorf("path does not span the box horizontally: %v", points)
	}
	if points[2][1] > points[0][1] {
		t.Errorf("north should be up: %v", points)
	}
}

func TestProjectRouteSinglePosition(t *testing.T) {
	points := projectRoute([][2]float64{{-90, 40}, {-90, 40}}, 100, 100, 10)
	for _, p := range points {
		if p != [2]float64{50, 50} {
			t.Errorf("degenerate route should sit in the center, got %v", p)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Layout.RowHeight != duty.DefaultRowHeight {
		t.Errorf("default row height = %v", config.Layout.RowHeight)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlData := "layout:\n  row_height: 80\n  width: 1400\ncolors:\n  segment: \"#ff0000\"\n"
	if err := os.WriteFile(path, []byte(yamlData), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	config, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Layout.RowHeight != 80 || config.Layout.Width != 1400 || config.Colors.Segment != "#ff0000" {
		t.Errorf("overrides not applied: %+v", config.Layout)
	}
	if config.Layout.LabelWidth != 100 || config.Font.Family != "Arial, sans-serif" {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("layout: [1, 2"), 0644)
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	zero := filepath.Join(dir, "zero.yaml")
	os.WriteFile(zero, []byte("layout:\n  row_height: 0\n"), 0644)
	if _, err := LoadConfig(zero); err == nil {
		t.Error("expected error for zero row height")
	}
}
