package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/bank-api/internal/domain"
)

// SessionStore defines the interface for session record persistence.
type SessionStore interface {
	// Create saves a new session to the store.
	Create(ctx context.Context, session *domain.Session) error

	// GetByID retrieves a session by its unique ID.
	// Returns ErrSessionNotFound if the session does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)

	// Delete removes a session from the store by its ID.
	// Returns ErrSessionNotFound if the session does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUserID removes every session belonging to the given user and
	// returns the number of sessions deleted. Deleting zero sessions is not
	// an error.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// WithTx returns a new SessionStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) SessionStore
}
