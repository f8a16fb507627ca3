package ui

import (
	"strings"
	"testing"

	"eldlog/internal/duty"
	"eldlog/internal/trip"
)

func TestSummary(t *testing.T) {
	d := &trip.Data{
		PickupLocation:      "Gary, IN",
		DropoffLocation:     "Denver, CO",
		CurrentCycleUsedHrs: 12.5,
		RouteData:           trip.RouteData{Distance: 160934, Duration: 5*3600 + 30*60},
		LogSheets: []duty.LogSheet{{
			Date: "2024-01-01",
			Events: []duty.Event{
				{Type: duty.Driving, StartTime: "2024-01-01T06:00", Duration: 2},
				{Type: duty.Driving, StartTime: "2024-01-01T10:00", Duration: 1},
			},
		}},
	}

	out := Summary(d)
	for _, want := range []string{
		"Trip Summary",
		"Gary, IN",
		"Denver, CO",
		"100.0 miles",
		"5 hrs, 30 mins",
		"12.5 hrs",
		"#1 2024-01-01",
		"Driving 3.0h",
		"Sleeper Berth 0.0h",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryWithoutSheets(t *testing.T) {
	out := Summary(&trip.Data{PickupLocation: "A", DropoffLocation: "B"})
	if strings.Contains(out, "Daily Log Sheets") {
		t.Error("sheet section should be omitted when there are no sheets")
	}
}
