package tripapi

import (
	"context"
	"eld-trip-planner/internal/domain"
	"errors"
	"sync"
)

// MockCalculator is an in-memory TripCalculator returning canned answers
// and counting calls.
type MockCalculator struct {
	mu sync.Mutex

	Result    domain.TripResult
	Err       error
	Documents map[string]domain.LogDocument
	LogErr    error

	TripCalls int
	LogCalls  int
	Requests  []domain.TripRequest
}

func (m *MockCalculator) CalculateTrip(ctx context.Context, req domain.TripRequest) (domain.TripResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TripCalls++
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return domain.TripResult{}, m.Err
	}
	return m.Result, nil
}

func (m *MockCalculator) ResolveLog(ctx context.Context, locator string) (domain.LogDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LogCalls++
	if m.LogErr != nil {
		return domain.LogDocument{}, m.LogErr
	}

	doc, ok := m.Documents[locator]
	if !ok {
		return domain.LogDocument{}, errors.New("mock: unknown log locator " + locator)
	}
	return doc, nil
}

// Calls returns the number of trip and log calls made so far.
func (m *MockCalculator) Calls() (trips, logs int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.TripCalls, m.LogCalls
}
