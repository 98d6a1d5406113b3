package ports

import (
	"context"
	"eld-trip-planner/internal/domain"
	"errors"
)

var ErrSessionNotFound = errors.New("session not found")

// Port: storage for the held UI state of each browser session.
type SessionStore interface {
	// Return the session, or ErrSessionNotFound.
	Get(ctx context.Context, id string) (domain.Session, error)
	// Store the session, replacing any previous value.
	Put(ctx context.Context, id string, s domain.Session) error
	Delete(ctx context.Context, id string) error
}
