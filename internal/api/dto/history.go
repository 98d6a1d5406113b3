package dto

import (
	"eld-trip-planner/internal/ports"
	"time"
)

// HistoryEntryResponse is one recorded submission, shared by the JSON and
// CSV listings. Session ids are never exposed.
type HistoryEntryResponse struct {
	ID               string    `json:"id" csv:"id"`
	CreatedAt        time.Time `json:"created_at" csv:"created_at"`
	CurrentLocation  string    `json:"current_location" csv:"current_location"`
	PickupLocation   string    `json:"pickup_location" csv:"pickup_location"`
	DropoffLocation  string    `json:"dropoff_location" csv:"dropoff_location"`
	CurrentCycleUsed *float64  `json:"current_cycle_used" csv:"current_cycle_used"`
	Succeeded        bool      `json:"succeeded" csv:"succeeded"`
	Message          string    `json:"message,omitempty" csv:"message"`
	TotalDistance    float64   `json:"total_distance" csv:"total_distance"`
	TotalTripTime    float64   `json:"total_trip_time" csv:"total_trip_time"`
	Compliant        bool      `json:"compliant" csv:"compliant"`
}

type ListHistoryResponse struct {
	Trips []HistoryEntryResponse `json:"trips"`
}

func NewHistoryEntries(entries []ports.HistoryEntry) []HistoryEntryResponse {
	res := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, HistoryEntryResponse{
			ID:               e.ID,
			CreatedAt:        e.CreatedAt,
			CurrentLocation:  e.CurrentLocation,
			PickupLocation:   e.PickupLocation,
			DropoffLocation:  e.DropoffLocation,
			CurrentCycleUsed: e.CurrentCycleUsed,
			Succeeded:        e.Succeeded,
			Message:          e.Message,
			TotalDistance:    e.TotalDistance,
			TotalTripTime:    e.TotalTripTime,
			Compliant:        e.Compliant,
		})
	}
	return res
}
