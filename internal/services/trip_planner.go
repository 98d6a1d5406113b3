package services

import (
	"context"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/ports"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Messages shown to the user.
const (
	MsgCalculationFailed = "Failed to calculate trip"
	MsgLogNotAvailable   = "ELD log URL not available"
	MsgLogFailed         = "Failed to generate ELD log"
)

var (
	// ErrBusy is returned by Submit while the session already has a
	// calculation in flight.
	ErrBusy = errors.New("trip calculation already in progress")
	// ErrLogUnavailable matches every *LogError.
	ErrLogUnavailable = errors.New("ELD log unavailable")
)

// LogError is returned by a failed OpenLog. Message is the text shown to
// the user.
type LogError struct {
	Message string
}

func (e *LogError) Error() string { return ErrLogUnavailable.Error() + ": " + e.Message }

func (e *LogError) Is(target error) bool { return target == ErrLogUnavailable }

// DocumentResolver turns a document locator from the backend into the
// address opened in the browser.
type DocumentResolver interface {
	DocumentURL(locator string) string
}

// TripPlanner runs the two user operations of the trip form against the
// calculation service and keeps each browser's held state in a SessionStore.
//
// At most one calculation per session is in flight at a time; the guard is
// held in process memory. Log resolution is not guarded: overlapping calls
// each resolve independently.
type TripPlanner struct {
	calc    ports.TripCalculator
	store   ports.SessionStore
	links   DocumentResolver
	history ports.TripHistory

	now   func() time.Time
	newID func() string

	// locks serializes read-modify-write of one stored session.
	locks *sessionLocks

	// mu guards inflight only; it is never held across store I/O.
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewTripPlanner wires a planner. history may be nil.
func NewTripPlanner(
	calc ports.TripCalculator,
	store ports.SessionStore,
	links DocumentResolver,
	history ports.TripHistory,
) *TripPlanner {
	return &TripPlanner{
		calc:     calc,
		store:    store,
		links:    links,
		history:  history,
		now:      time.Now,
		newID:    uuid.NewString,
		locks:    newSessionLocks(),
		inflight: make(map[string]struct{}),
	}
}

// Session returns the held state for id; unknown ids get a fresh session.
func (p *TripPlanner) Session(ctx context.Context, id string) (domain.Session, error) {
	s, err := p.store.Get(ctx, id)
	if errors.Is(err, ports.ErrSessionNotFound) {
		return domain.NewSession(), nil
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	return s, nil
}

// State is the session as rendered. A stored Submitting status with no
// calculation in flight in this process is left over from a restart and
// reads as Idle.
func (p *TripPlanner) State(ctx context.Context, id string) (domain.Session, error) {
	s, err := p.Session(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	if s.Submitting() && !p.Submitting(id) {
		s.Status = domain.StatusIdle
	}
	return s, nil
}

// Submit sends the form to the calculation service and records the outcome
// in the session. A calculation failure is part of the returned session,
// not an error; errors are reserved for ErrBusy and storage failures.
//
// The call is detached from ctx cancellation: once issued, it settles.
func (p *TripPlanner) Submit(ctx context.Context, id string, form domain.TripForm) (domain.Session, error) {
	ctx = context.WithoutCancel(ctx)

	if !p.acquire(id) {
		s, err := p.Session(ctx, id)
		if err != nil {
			return domain.Session{}, fmt.Errorf("submit trip: %w", err)
		}
		return s, ErrBusy
	}
	defer p.release(id)

	if _, err := p.update(ctx, id, func(s domain.Session) domain.Session {
		return s.Begin(form)
	}); err != nil {
		return domain.Session{}, fmt.Errorf("submit trip: begin: %w", err)
	}

	req := form.Request()
	result, calcErr := p.calc.CalculateTrip(ctx, req)

	var msg string
	if calcErr != nil {
		msg = failureMessage(calcErr, MsgCalculationFailed)
		log.Printf("session=%s calculate trip failed: %v", id, calcErr)
	}

	s, err := p.update(ctx, id, func(s domain.Session) domain.Session {
		if calcErr != nil {
			return s.Fail(msg)
		}
		return s.Succeed(result)
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("submit trip: settle: %w", err)
	}

	p.record(ctx, id, req, result, msg, calcErr == nil)

	return s, nil
}

// OpenLog resolves the ELD log document of the held result and returns the
// address to open. Without a held log locator it fails immediately and
// issues no request. Every failure is also stored as the session's message.
func (p *TripPlanner) OpenLog(ctx context.Context, id string) (string, error) {
	s, err := p.Session(ctx, id)
	if err != nil {
		return "", fmt.Errorf("open log: %w", err)
	}

	if s.Result == nil || s.Result.ELDLogURL == "" {
		return "", p.failLog(ctx, id, MsgLogNotAvailable)
	}

	doc, err := p.calc.ResolveLog(ctx, s.Result.ELDLogURL)
	if err != nil {
		log.Printf("session=%s resolve log failed: %v", id, err)
		return "", p.failLog(ctx, id, failureMessage(err, MsgLogFailed))
	}

	return p.links.DocumentURL(doc.PDFURL), nil
}

func (p *TripPlanner) failLog(ctx context.Context, id string, msg string) error {
	if _, err := p.update(ctx, id, func(s domain.Session) domain.Session {
		return s.FailLog(msg)
	}); err != nil {
		return fmt.Errorf("open log: store failure: %w", err)
	}
	return &LogError{Message: msg}
}

// Reset drops the held state of id: form, result and message. It is
// rejected with ErrBusy while a calculation is in flight.
func (p *TripPlanner) Reset(ctx context.Context, id string) error {
	if !p.acquire(id) {
		return ErrBusy
	}
	defer p.release(id)

	unlock := p.locks.lock(id)
	defer unlock()

	if err := p.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	return nil
}

// Submitting reports whether a calculation is in flight for id.
func (p *TripPlanner) Submitting(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.inflight[id]
	return ok
}

func (p *TripPlanner) acquire(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.inflight[id]; ok {
		return false
	}
	p.inflight[id] = struct{}{}
	return true
}

func (p *TripPlanner) release(id string) {
	p.mu.Lock()
	delete(p.inflight, id)
	p.mu.Unlock()
}

// update applies fn to the freshest stored session and stores the result.
func (p *TripPlanner) update(
	ctx context.Context,
	id string,
	fn func(domain.Session) domain.Session,
) (domain.Session, error) {
	unlock := p.locks.lock(id)
	defer unlock()

	s, err := p.Session(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}

	s = fn(s)
	if err := p.store.Put(ctx, id, s); err != nil {
		return domain.Session{}, fmt.Errorf("store session: %w", err)
	}
	return s, nil
}

func (p *TripPlanner) record(
	ctx context.Context,
	id string,
	req domain.TripRequest,
	result domain.TripResult,
	msg string,
	ok bool,
) {
	if p.history == nil {
		return
	}

	e := ports.HistoryEntry{
		ID:               p.newID(),
		SessionID:        id,
		CreatedAt:        p.now().UTC(),
		CurrentLocation:  req.CurrentLocation,
		PickupLocation:   req.PickupLocation,
		DropoffLocation:  req.DropoffLocation,
		CurrentCycleUsed: req.CurrentCycleUsed,
		Succeeded:        ok,
		Message:          msg,
	}
	if ok {
		e.TotalDistance = result.TotalDistance
		e.TotalTripTime = result.TotalTripTime
		e.Compliant = result.Compliant
	}

	if err := p.history.Record(ctx, e); err != nil {
		log.Printf("trip history write failed: %v", err)
	}
}

// failureMessage prefers the backend's own error text and falls back to
// the generic message otherwise.
func failureMessage(err error, fallback string) string {
	var be *ports.BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return fallback
}
