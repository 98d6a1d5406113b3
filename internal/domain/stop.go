package domain

import (
	"unicode"
	"unicode/utf8"
)

type StopKind string

const (
	StopStart   StopKind = "start"
	StopPickup  StopKind = "pickup"
	StopFuel    StopKind = "fuel"
	StopDropoff StopKind = "dropoff"
)

// Title is the kind as shown in the stop timeline: first letter
// upper-cased, the rest as received.
func (k StopKind) Title() string {
	r, size := utf8.DecodeRuneInString(string(k))
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + string(k)[size:]
}

// Represents one waypoint of a planned trip, as returned by the
// calculation service. Coords and Duration are optional.
type Stop struct {
	Type     StopKind     `json:"type"`
	Location string       `json:"location"`
	Coords   *Coordinates `json:"coords,omitempty"`
	Duration *float64     `json:"duration,omitempty"`
}
