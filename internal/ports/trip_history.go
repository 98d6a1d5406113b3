package ports

import (
	"context"
	"time"
)

// HistoryEntry records the outcome of one trip submission.
type HistoryEntry struct {
	ID               string
	SessionID        string
	CreatedAt        time.Time
	CurrentLocation  string
	PickupLocation   string
	DropoffLocation  string
	CurrentCycleUsed *float64
	Succeeded        bool
	Message          string
	TotalDistance    float64
	TotalTripTime    float64
	Compliant        bool
}

// Port: an append-only record of trip submissions.
type TripHistory interface {
	Record(ctx context.Context, e HistoryEntry) error
	// Return at most limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]HistoryEntry, error)
}
