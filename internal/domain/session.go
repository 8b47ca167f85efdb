package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Session.
var (
	ErrEmptySessionID     = errors.New("session ID cannot be empty")
	ErrEmptySessionUserID = errors.New("session user ID cannot be empty")
	ErrZeroSessionExpiry  = errors.New("session expiry cannot be zero")
)

// Session is the server-side record backing an issued authentication token.
// Deleting the record immediately invalidates any token that references it,
// regardless of the token's own expiry.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewSession creates a new Session for the given user with the given
// lifetime. Returns an error if validation fails.
func NewSession(userID uuid.UUID, lifetime time.Duration) (*Session, error) {
	now := time.Now().UTC()
	session := &Session{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(lifetime),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the Session has valid data.
// Returns an error if any field fails validation.
func (s *Session) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptySessionID
	}

	if s.UserID == uuid.Nil {
		return ErrEmptySessionUserID
	}

	if s.ExpiresAt.IsZero() {
		return ErrZeroSessionExpiry
	}

	return nil
}

// ExpiredAt reports whether the session is expired at the given time.
func (s *Session) ExpiredAt(t time.Time) bool {
	return t.After(s.ExpiresAt)
}
