package dto

import "eld-trip-planner/internal/domain"

// TripFormRequest is the posted trip form. No field is required: empty
// inputs are sent to the calculation service as typed.
type TripFormRequest struct {
	CurrentLocation  string `form:"currentLocation"`
	PickupLocation   string `form:"pickupLocation"`
	DropoffLocation  string `form:"dropoffLocation"`
	CurrentCycleUsed string `form:"currentCycleUsed"`
}

func (r TripFormRequest) Form() domain.TripForm {
	return domain.TripForm{
		CurrentLocation:  r.CurrentLocation,
		PickupLocation:   r.PickupLocation,
		DropoffLocation:  r.DropoffLocation,
		CurrentCycleUsed: r.CurrentCycleUsed,
	}
}

// LogLinkResponse is the resolved ELD log address.
type LogLinkResponse struct {
	URL string `json:"url"`
}
