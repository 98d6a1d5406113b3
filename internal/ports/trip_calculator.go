package ports

import (
	"context"
	"eld-trip-planner/internal/domain"
	"fmt"
)

// Contract for the external trip-calculation service.
type TripCalculator interface {
	// Compute a trip plan for the request.
	CalculateTrip(ctx context.Context, req domain.TripRequest) (domain.TripResult, error)
	// Resolve the log locator of a trip result into a document locator.
	ResolveLog(ctx context.Context, locator string) (domain.LogDocument, error)
}

// BackendError is a non-success answer from the calculation service.
// Message is the body's "error" field and may be empty.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend status %d", e.Status)
	}
	return fmt.Sprintf("backend status %d: %s", e.Status, e.Message)
}
