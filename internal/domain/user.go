package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for User.
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrEmptyEncryptedSSN   = errors.New("encrypted SSN cannot be empty")
	ErrEmptyPhoneNumber    = errors.New("phone number cannot be empty")
	ErrZeroDateOfBirth     = errors.New("date of birth cannot be zero")
)

// User represents a registered account holder. The SSN is carried only in
// its encrypted form; the plaintext identifier never appears on this struct.
// Personal fields are stored normalized: email lowercased, phone in E.164,
// state as an uppercase two-letter code.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	PhoneNumber    string    `json:"phone_number"`
	DateOfBirth    time.Time `json:"date_of_birth"`
	EncryptedSSN   string    `json:"-"` // Ciphertext only; never expose in JSON
	Address        string    `json:"address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	ZipCode        string    `json:"zip_code"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUserParams carries the already-normalized, already-protected fields
// needed to construct a User. The password must be hashed and the SSN
// encrypted before this point; the domain layer never sees either secret
// in plaintext.
type NewUserParams struct {
	Email          string
	HashedPassword string
	FirstName      string
	LastName       string
	PhoneNumber    string
	DateOfBirth    time.Time
	EncryptedSSN   string
	Address        string
	City           string
	State          string
	ZipCode        string
}

// NewUser creates a new User from the given params.
// It generates a new UUID for the user ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewUser(p NewUserParams) (*User, error) {
	user := &User{
		ID:             uuid.New(),
		Email:          strings.ToLower(p.Email),
		HashedPassword: p.HashedPassword,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		PhoneNumber:    p.PhoneNumber,
		DateOfBirth:    p.DateOfBirth,
		EncryptedSSN:   p.EncryptedSSN,
		Address:        p.Address,
		City:           p.City,
		State:          p.State,
		ZipCode:        p.ZipCode,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	if u.FirstName == "" || u.LastName == "" {
		return ErrEmptyName
	}

	if u.PhoneNumber == "" {
		return ErrEmptyPhoneNumber
	}

	if u.DateOfBirth.IsZero() {
		return ErrZeroDateOfBirth
	}

	if u.EncryptedSSN == "" {
		return ErrEmptyEncryptedSSN
	}

	return nil
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
