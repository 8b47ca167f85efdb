package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenService defines operations for managing signed session tokens.
// A token is only half of an authenticated context: it must also resolve to
// a live server-side session record (see Service.VerifyToken).
type TokenService interface {
	// GenerateToken creates a signed token binding the user to the given
	// session record. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID, sessionID uuid.UUID) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns the claims if the signature verifies and the token is
	// not expired, or an error otherwise. It does NOT consult the session
	// store; callers needing revocation semantics use Service.VerifyToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of a session token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// SessionID identifies the server-side session record backing the token.
	// Deleting that record invalidates the token regardless of expiry.
	SessionID uuid.UUID `json:"jti,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
}
