package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func validUserParams() NewUserParams {
	return NewUserParams{
		Email:          "jane.doe@example.com",
		HashedPassword: "$2a$10$hashedpassword",
		FirstName:      "Jane",
		LastName:       "Doe",
		PhoneNumber:    "+12125551234",
		DateOfBirth:    time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		EncryptedSSN:   "deadbeef",
		Address:        "1 Main St",
		City:           "New York",
		State:          "NY",
		ZipCode:        "10001",
	}
}

func TestNewUser(t *testing.T) {
	user, err := NewUser(validUserParams())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Email != "jane.doe@example.com" {
		t.Errorf("Expected normalized email, got %s", user.Email)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Email is lowercased by the constructor
	p := validUserParams()
	p.Email = "Jane.Doe@Example.COM"
	user, err = NewUser(p)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Email != "jane.doe@example.com" {
		t.Errorf("Expected lowercased email, got %s", user.Email)
	}
}

func TestNewUserValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *NewUserParams)
		want   error
	}{
		{"empty email", func(p *NewUserParams) { p.Email = "" }, ErrEmptyEmail},
		{"empty hashed password", func(p *NewUserParams) { p.HashedPassword = "" }, ErrEmptyHashedPassword},
		{"empty first name", func(p *NewUserParams) { p.FirstName = "" }, ErrEmptyName},
		{"empty last name", func(p *NewUserParams) { p.LastName = "" }, ErrEmptyName},
		{"empty phone number", func(p *NewUserParams) { p.PhoneNumber = "" }, ErrEmptyPhoneNumber},
		{"zero date of birth", func(p *NewUserParams) { p.DateOfBirth = time.Time{} }, ErrZeroDateOfBirth},
		{"empty encrypted SSN", func(p *NewUserParams) { p.EncryptedSSN = "" }, ErrEmptyEncryptedSSN},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validUserParams()
			tc.mutate(&p)
			_, err := NewUser(p)
			if err != tc.want {
				t.Errorf("Expected error %v, got %v", tc.want, err)
			}
		})
	}
}

func TestUserFullName(t *testing.T) {
	user, err := NewUser(validUserParams())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got := user.FullName(); got != "Jane Doe" {
		t.Errorf("Expected full name %q, got %q", "Jane Doe", got)
	}
}
