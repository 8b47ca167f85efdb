package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidCredentials indicates the email/password pair did not match
	// a known user. The error is identical whether the email is unknown or
	// the password is wrong, to avoid user enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken indicates a user with the normalized email already exists.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrInvalidToken indicates the token format is invalid, the signature
	// doesn't match, or the backing session has been revoked.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token or its backing session has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future).
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrWrongTokenType indicates the token is valid but not a session token.
	ErrWrongTokenType = errors.New("wrong token type")
)
