/*
Package duty lays out a driver's duty-status events on the 24-hour grid of a
daily log sheet.

Positions are expressed on a normalized horizontal axis where 0 is midnight
at the start of the day and 100 is midnight at its end, so a drawing surface
can scale them to any width. Vertical positions are in the units of the row
height passed by the caller.
*/
package duty

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// HoursPerDay is the span of one log sheet.
	HoursPerDay = 24.0

	// AxisMax is the normalized x of the end of the day.
	AxisMax = 100.0

	// DefaultRowHeight is the row height used by the renderer when none is configured.
	DefaultRowHeight = 50.0

	// MinSegmentHours is the shortest span a segment is widened to. Zero means
	// zero-length segments are kept as they are and drawn as dots.
	MinSegmentHours = 0.0
)

var (
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrInvalidCategory    = errors.New("invalid duty status category")
	ErrInvalidRowHeight   = errors.New("row height must be positive")
)

// MalformedTimestampError reports the event whose start time could not be read.
type MalformedTimestampError struct {
	Index int // position in the input slice
	Value string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("event %d: malformed timestamp %q", e.Index, e.Value)
}

func (e *MalformedTimestampError) Is(target error) bool {
	return target == ErrMalformedTimestamp
}

// Event is one interval of duty status.
type Event struct {
	Type      DutyStatus `json:"type"`
	StartTime string     `json:"start_time"`
	Duration  float64    `json:"duration"` // hours
}

// LogSheet is one calendar day of events.
type LogSheet struct {
	Date   string  `json:"date"`
	Events []Event `json:"events"`
}

// Segment is a horizontal line on a status row. Y1 always equals Y2.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Row is the layout of one status row of a sheet. Err is set when the row
// could not be laid out, in which case Segments is nil.
type Row struct {
	Status   DutyStatus
	Segments []Segment
	Err      error
}

// timestampFormats lists the start_time layouts accepted from the backend.
var timestampFormats = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// parseStartHour returns the wall-clock hour of day of v as written,
// without converting between zones.
func parseStartHour(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	for _, format := range timestampFormats {
		t, err := time.Parse(format, v)
		if err == nil {
			return float64(t.Hour()) + float64(t.Minute())/60, true
		}
	}
	return 0, false
}

// roundTenth rounds half up to one decimal place.
func roundTenth(h float64) float64 {
	return math.Floor(h*10+0.5) / 10
}

func clampHours(h float64) float64 {
	return math.Max(0, math.Min(HoursPerDay, h))
}

// HourToX projects an hour of day onto the normalized axis.
func HourToX(hour float64) float64 {
	return hour / HoursPerDay * AxisMax
}

// RowY returns the vertical offset of the i-th (1-based) of n segments in a
// row of the given height.
func RowY(i, n int, rowHeight float64) float64 {
	if n <= 1 {
		return rowHeight / 2
	}
	return rowHeight / float64(n+1) * float64(i)
}

// LayoutRow computes the segments to draw on the row for status. Events of
// other categories are ignored. Segments are returned in input order and the
// y offsets are index based, spreading n segments evenly over the row.
//
// Hours past midnight are clamped to the end of the day and a negative
// duration yields a zero-length segment.
func LayoutRow(events []Event, status DutyStatus, rowHeight float64) ([]Segment, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCategory, int(status))
	}
	if rowHeight <= 0 || math.IsNaN(rowHeight) || math.IsInf(rowHeight, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRowHeight, rowHeight)
	}

	type span struct{ start, end float64 }
	var spans []span
	for i, ev := range events {
		if ev.Type != status {
			continue
		}
		start, ok := parseStartHour(ev.StartTime)
		if !ok {
			return nil, &MalformedTimestampError{Index: i, Value: ev.StartTime}
		}
		end := start + ev.Duration

		s := clampHours(roundTenth(start))
		e := clampHours(roundTenth(end))
		if e < s+MinSegmentHours {
			e = math.Min(HoursPerDay, s+MinSegmentHours)
		}
		spans = append(spans, span{s, e})
	}

	if len(spans) == 0 {
		return []Segment{}, nil
	}

	segments := make([]Segment, len(spans))
	for i, sp := range spans {
		y := RowY(i+1, len(spans), rowHeight)
		segments[i] = Segment{
			X1: HourToX(sp.start),
			Y1: y,
			X2: HourToX(sp.end),
			Y2: y,
		}
	}
	return segments, nil
}

// LayoutSheet lays out every status row of sheet in log sheet order. A
// failing row carries its error and does not affect the others.
func LayoutSheet(sheet LogSheet, rowHeight float64) []Row {
	rows := make([]Row, 0, len(statusOrder))
	for _, status := range statusOrder {
		segments, err := LayoutRow(sheet.Events, status, rowHeight)
		if err != nil {
			segments = nil
		}
		rows = append(rows, Row{Status: status, Segments: segments, Err: err})
	}
	return rows
}

// TotalHours sums the durations of the events of one status. Negative
// durations count as zero.
func TotalHours(events []Event, status DutyStatus) float64 {
	var total float64
	for _, ev := range events {
		if ev.Type == status && ev.Duration > 0 {
			total += ev.Duration
		}
	}
	return total
}
