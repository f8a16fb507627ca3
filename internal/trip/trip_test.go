package trip

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"eldlog/internal/duty"
)

const sampleTrip = `{
	"id": 7,
	"current_location": "Chicago, IL",
	"pickup_location": "Gary, IN",
	"dropoff_location": "Denver, CO",
	"current_cycle_used_hrs": 12.5,
	"route_data": {
		"distance": 160934,
		"duration": 19800,
		"geometry": [[-87.6, 41.9], [-87.3, 41.6], [-104.9, 39.7]],
		"legs": [{"duration": 3600, "distance": 40000}, {"duration": 16200, "distance": 120934}]
	},
	"eld_logs_data": [
		{"date": "2024-01-01", "events": [
			{"type": "off_duty", "start_time": "2024-01-01T00:00:00", "duration": 6},
			{"type": "driving", "start_time": "2024-01-01T06:00:00", "duration": 2}
		]}
	],
	"created_at": "2024-01-01T00:00:00Z"
}`

func TestDecode(t *testing.T) {
	d, err := Decode(strings.NewReader(sampleTrip))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.ID != 7 || d.PickupLocation != "Gary, IN" || d.CurrentCycleUsedHrs != 12.5 {
		t.Errorf("unexpected header fields: %+v", d)
	}
	if len(d.RouteData.Geometry) != 3 || d.RouteData.Geometry[2] != [2]float64{-104.9, 39.7} {
		t.Errorf("unexpected geometry: %v", d.RouteData.Geometry)
	}
	if len(d.RouteData.Legs) != 2 {
		t.Errorf("expected 2 legs, got %d", len(d.RouteData.Legs))
	}
	if len(d.LogSheets) != 1 || len(d.LogSheets[0].Events) != 2 {
		t.Fatalf("unexpected log sheets: %+v", d.LogSheets)
	}
	if d.LogSheets[0].Events[1].Type != duty.Driving {
		t.Errorf("event type = %v, want Driving", d.LogSheets[0].Events[1].Type)
	}
	if math.Abs(d.RouteData.Miles()-100) > 0.01 {
		t.Errorf("miles = %v, want 100", d.RouteData.Miles())
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"id": "x"`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.json")
	if err := os.WriteFile(path, []byte(sampleTrip), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	d, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if d.DropoffLocation != "Denver, CO" {
		t.Errorf("dropoff = %q", d.DropoffLocation)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0 min"},
		{60, "1 min"},
		{45 * 60, "45 mins"},
		{3600, "1 hr, 0 min"},
		{3600 + 60, "1 hr, 1 min"},
		{5*3600 + 30*60, "5 hrs, 30 mins"},
		{2*3600 + 89, "2 hrs, 1 min"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestInputsValidate(t *testing.T) {
	valid := Inputs{
		CurrentLocation:     "Chicago, IL",
		PickupLocation:      "Gary, IN",
		DropoffLocation:     "Denver, CO",
		CurrentCycleUsedHrs: 10,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid inputs rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Inputs)
	}{
		{"missing current", func(in *Inputs) { in.CurrentLocation = "" }},
		{"blank pickup", func(in *Inputs) { in.PickupLocation = "   " }},
		{"missing dropoff", func(in *Inputs) { in.DropoffLocation = "" }},
		{"negative cycle", func(in *Inputs) { in.CurrentCycleUsedHrs = -1 }},
		{"cycle over limit", func(in *Inputs) { in.CurrentCycleUsedHrs = 70.5 }},
		{"cycle NaN", func(in *Inputs) { in.CurrentCycleUsedHrs = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if err := in.Validate(); !errors.Is(err, ErrInvalidInputs) {
				t.Errorf("expected ErrInvalidInputs, got %v", err)
			}
		})
	}
}
