// Package trip holds the trip-planning backend's request and result types
// and the client that talks to it.
package trip

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"eldlog/internal/duty"
)

// MetersPerMile converts route distances to miles for display.
const MetersPerMile = 1609.34

// MaxCycleHours is the 70 hour / 8 day hours-of-service cycle limit.
const MaxCycleHours = 70.0

var ErrInvalidInputs = errors.New("invalid trip inputs")

// Inputs are the trip parameters submitted to the backend.
type Inputs struct {
	CurrentLocation     string  `json:"current_location"`
	PickupLocation      string  `json:"pickup_location"`
	DropoffLocation     string  `json:"dropoff_location"`
	CurrentCycleUsedHrs float64 `json:"current_cycle_used_hrs"`
}

// Validate checks that all locations are given and the cycle hours are in range.
func (in Inputs) Validate() error {
	var missing []string
	if strings.TrimSpace(in.CurrentLocation) == "" {
		missing = append(missing, "current location")
	}
	if strings.TrimSpace(in.PickupLocation) == "" {
		missing = append(missing, "pickup location")
	}
	if strings.TrimSpace(in.DropoffLocation) == "" {
		missing = append(missing, "dropoff location")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrInvalidInputs, strings.Join(missing, ", "))
	}
	if math.IsNaN(in.CurrentCycleUsedHrs) || in.CurrentCycleUsedHrs < 0 || in.CurrentCycleUsedHrs > MaxCycleHours {
		return fmt.Errorf("%w: cycle used must be between 0 and %g hours, got %g",
			ErrInvalidInputs, MaxCycleHours, in.CurrentCycleUsedHrs)
	}
	return nil
}

// Leg is one leg of the route.
type Leg struct {
	Duration float64 `json:"duration"` // seconds
	Distance float64 `json:"distance"` // meters
}

// RouteData is the routed path between the trip's stops.
type RouteData struct {
	Distance float64      `json:"distance"` // meters
	Duration float64      `json:"duration"` // seconds
	Geometry [][2]float64 `json:"geometry"` // [lon, lat] pairs
	Legs     []Leg        `json:"legs"`
}

// Miles returns the route distance in miles.
func (r RouteData) Miles() float64 {
	return r.Distance / MetersPerMile
}

// Data is a computed trip as returned by the backend.
type Data struct {
	ID                  int             `json:"id"`
	CurrentLocation     string          `json:"current_location"`
	PickupLocation      string          `json:"pickup_location"`
	DropoffLocation     string          `json:"dropoff_location"`
	CurrentCycleUsedHrs float64         `json:"current_cycle_used_hrs"`
	RouteData           RouteData       `json:"route_data"`
	LogSheets           []duty.LogSheet `json:"eld_logs_data"`
	CreatedAt           string          `json:"created_at"`
}

// Decode reads one trip result from r.
func Decode(r io.Reader) (*Data, error) {
	var d Data
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("error decoding trip data: %w", err)
	}
	return &d, nil
}

// LoadFile reads a saved trip result.
func LoadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening trip file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// FormatDuration renders seconds as e.g. "5 hrs, 30 mins" or "45 mins".
func FormatDuration(seconds float64) string {
	hours := int(math.Floor(seconds / 3600))
	minutes := int(math.Round(math.Mod(seconds, 3600) / 60))
	if hours > 0 {
		return fmt.Sprintf("%d %s, %d %s", hours, plural(hours, "hr"), minutes, plural(minutes, "min"))
	}
	return fmt.Sprintf("%d %s", minutes, plural(minutes, "min"))
}

func plural(n int, unit string) string {
	if n > 1 {
		return unit + "s"
	}
	return unit
}

// Encode writes d as indented JSON in the backend's schema.
func Encode(w io.Writer, d *Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("error encoding trip data: %w", err)
	}
	return nil
}
