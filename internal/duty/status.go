package duty

import (
	"encoding/json"
	"strings"
)

// DutyStatus is one of the four regulatory duty-status categories.
// The zero value Unknown is never a valid layout request.
type DutyStatus int

const (
	Unknown DutyStatus = iota
	OffDuty
	SleeperBerth
	Driving
	OnDuty
)

// statusOrder is the row order of a paper log sheet, top to bottom.
var statusOrder = []DutyStatus{OffDuty, SleeperBerth, Driving, OnDuty}

// Statuses returns the four categories in log sheet row order.
func Statuses() []DutyStatus {
	out := make([]DutyStatus, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// Valid reports whether s is one of the four categories.
func (s DutyStatus) Valid() bool {
	return s >= OffDuty && s <= OnDuty
}

// Key returns the backend wire key, e.g. "sleeper_berth".
func (s DutyStatus) Key() string {
	switch s {
	case OffDuty:
		return "off_duty"
	case SleeperBerth:
		return "sleeper_berth"
	case Driving:
		return "driving"
	case OnDuty:
		return "on_duty"
	}
	return "unknown"
}

// Label returns the display label used on the sheet, e.g. "Sleeper Berth".
func (s DutyStatus) Label() string {
	switch s {
	case OffDuty:
		return "Off Duty"
	case SleeperBerth:
		return "Sleeper Berth"
	case Driving:
		return "Driving"
	case OnDuty:
		return "On Duty"
	}
	return "Unknown"
}

func (s DutyStatus) String() string { return s.Label() }

// ParseStatus maps a wire key or display label to a DutyStatus.
// Matching ignores case and surrounding space. Anything else yields
// Unknown and false.
func ParseStatus(v string) (DutyStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "off_duty", "off duty":
		return OffDuty, true
	case "sleeper_berth", "sleeper berth":
		return SleeperBerth, true
	case "driving":
		return Driving, true
	case "on_duty", "on duty":
		return OnDuty, true
	}
	return Unknown, false
}

// MarshalJSON writes the wire key.
func (s DutyStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Key())
}

// UnmarshalJSON accepts any string. Unrecognized types decode to Unknown
// so that one odd event does not reject a whole trip result.
func (s *DutyStatus) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s, _ = ParseStatus(v)
	return nil
}
