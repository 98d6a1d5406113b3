package domain

import (
	"math"
	"strconv"
	"strings"
)

// TripForm holds the four trip inputs exactly as typed by the user.
type TripForm struct {
	CurrentLocation  string `json:"currentLocation"`
	PickupLocation   string `json:"pickupLocation"`
	DropoffLocation  string `json:"dropoffLocation"`
	CurrentCycleUsed string `json:"currentCycleUsed"`
}

// TripRequest is the body sent to the calculation service.
// CurrentCycleUsed is nil when the form value is not a finite number,
// which encodes as JSON null.
type TripRequest struct {
	CurrentLocation  string   `json:"currentLocation"`
	PickupLocation   string   `json:"pickupLocation"`
	DropoffLocation  string   `json:"dropoffLocation"`
	CurrentCycleUsed *float64 `json:"currentCycleUsed"`
}

// Request converts the form into a TripRequest. Fields are sent as typed:
// no trimming, no bounds check. Cycle hours follow browser number
// conversion: blank is 0, garbage is null.
func (f TripForm) Request() TripRequest {
	return TripRequest{
		CurrentLocation:  f.CurrentLocation,
		PickupLocation:   f.PickupLocation,
		DropoffLocation:  f.DropoffLocation,
		CurrentCycleUsed: parseHours(f.CurrentCycleUsed),
	}
}

func parseHours(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		zero := 0.0
		return &zero
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// TripResult is the plan computed by the calculation service. It is
// consumed verbatim and replaced as a whole, never edited.
type TripResult struct {
	TotalDistance  float64 `json:"totalDistance"`
	DrivingTime    float64 `json:"drivingTime"`
	TotalTripTime  float64 `json:"totalTripTime"`
	FuelStops      float64 `json:"fuelStops"`
	RestBreaks     float64 `json:"restBreaks"`
	HoursAvailable float64 `json:"hoursAvailable"`
	TotalHoursUsed float64 `json:"totalHoursUsed"`
	Compliant      bool    `json:"compliant"`
	MapURL         string  `json:"mapUrl"`
	ELDLogURL      string  `json:"eldLogUrl"`
	Stops          []Stop  `json:"stops"`
}

// LogDocument is the answer of the log-resolution endpoint.
type LogDocument struct {
	PDFURL string `json:"pdfUrl"`
}
