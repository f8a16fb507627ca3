package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"eldlog/internal/duty"
)

// Config controls the appearance of the rendered log sheets and route sketch.
// It maps directly to a YAML file; keys left out of the file keep their
// default values.
type Config struct {
	Font   FontConfig   `yaml:"font"`
	Colors ColorConfig  `yaml:"colors"`
	Layout LayoutConfig `yaml:"layout"`
	Route  RouteConfig  `yaml:"route"`
}

// FontConfig sets the text of every label on the sheet.
type FontConfig struct {
	Family string `yaml:"family"` // e.g. "Arial, sans-serif"
	Size   int    `yaml:"size"`   // base size in pixels; titles are drawn larger
}

// ColorConfig holds hex color codes.
type ColorConfig struct {
	Background  string `yaml:"background"`
	Sheet       string `yaml:"sheet"`       // card behind each log sheet
	Border      string `yaml:"border"`      // row and cell borders
	HeaderFill  string `yaml:"header_fill"` // hour header and status label cells
	Text        string `yaml:"text"`
	MutedText   string `yaml:"muted_text"` // "Log Sheet #n" and totals
	Baseline    string `yaml:"baseline"`   // centered line across each row
	HourLine    string `yaml:"hour_line"`
	QuarterLine string `yaml:"quarter_line"`
	Segment     string `yaml:"segment"`
	Error       string `yaml:"error"` // placeholder for rows that failed to lay out
}

// LayoutConfig sets sizes in pixels, except RowHeight, which is also the
// unit the layout engine stacks segments in.
type LayoutConfig struct {
	Width         int     `yaml:"width"`
	Margin        int     `yaml:"margin"`
	SheetGap      int     `yaml:"sheet_gap"` // vertical space between sheets
	TitleHeight   int     `yaml:"title_height"`
	HeaderHeight  int     `yaml:"header_height"`
	LabelWidth    int     `yaml:"label_width"`  // status label cell
	TotalsWidth   int     `yaml:"totals_width"` // 0 hides the totals column
	RowHeight     float64 `yaml:"row_height"`
	SegmentStroke float64 `yaml:"segment_stroke"` // in row units
	GridStroke    float64 `yaml:"grid_stroke"`
}

// RouteConfig sizes the route sketch.
type RouteConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Padding     int     `yaml:"padding"`
	Stroke      string  `yaml:"stroke"`
	StrokeWidth float64 `yaml:"stroke_width"`
	StartColor  string  `yaml:"start_color"`
	EndColor    string  `yaml:"end_color"`
	MarkerSize  int     `yaml:"marker_size"`
}

// DefaultConfig returns settings that reproduce the standard paper log layout:
// a 1000px wide sheet with 50 unit status rows and a 100px label column.
func DefaultConfig() Config {
	return Config{
		Font: FontConfig{
			Family: "Arial, sans-serif",
			Size:   12,
		},
		Colors: ColorConfig{
			Background:  "#f9fafb",
			Sheet:       "#ffffff",
			Border:      "#9ca3af",
			HeaderFill:  "#e5e7eb",
			Text:        "#1f2937",
			MutedText:   "#6b7280",
			Baseline:    "#cccccc",
			HourLine:    "#dddddd",
			QuarterLine: "#eeeeee",
			Segment:     "#000000",
			Error:       "#b91c1c",
		},
		Layout: LayoutConfig{
			Width:         1000,
			Margin:        20,
			SheetGap:      30,
			TitleHeight:   36,
			HeaderHeight:  28,
			LabelWidth:    100,
			TotalsWidth:   60,
			RowHeight:     duty.DefaultRowHeight,
			SegmentStroke: 4,
			GridStroke:    0.5,
		},
		Route: RouteConfig{
			Width:       800,
			Height:      500,
			Padding:     20,
			Stroke:      "#2563eb",
			StrokeWidth: 3,
			StartColor:  "#16a34a",
			EndColor:    "#dc2626",
			MarkerSize:  6,
		},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the defaults.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file: %w", err)
	}
	return config, nil
}

func (c Config) validate() error {
	switch {
	case c.Layout.RowHeight <= 0:
		return fmt.Errorf("layout.row_height must be positive, got %v", c.Layout.RowHeight)
	case c.Layout.Width <= c.Layout.LabelWidth+c.Layout.TotalsWidth+2*c.Layout.Margin:
		return fmt.Errorf("layout.width %d leaves no room for the chart", c.Layout.Width)
	case c.Route.Width <= 2*c.Route.Padding || c.Route.Height <= 2*c.Route.Padding:
		return fmt.Errorf("route size %dx%d is smaller than its padding", c.Route.Width, c.Route.Height)
	}
	return nil
}
