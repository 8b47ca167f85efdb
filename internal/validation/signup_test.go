package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validSignupRequest returns a request that passes every rule, for tests to
// break one field at a time.
func validSignupRequest() SignupRequest {
	return SignupRequest{
		Email:           "Jane.Doe@example.com",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
		FirstName:       "Jane",
		LastName:        "Doe",
		PhoneNumber:     "+12125551234",
		DateOfBirth:     "1990-06-15",
		SSN:             "123456789",
		Address:         "1 Main St",
		City:            "New York",
		State:           "ny",
		ZipCode:         "10001",
	}
}

func TestValidateSignupNormalizes(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	data, err := ValidateSignupAt(validSignupRequest(), now)
	require.NoError(t, err)

	assert.Equal(t, "jane.doe@example.com", data.Email)
	assert.Equal(t, "NY", data.State)
	assert.Equal(t, "+12125551234", data.PhoneNumber)
	assert.Equal(t, time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), data.DateOfBirth)
}

func TestValidateSignupFieldRules(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		mutate  func(r *SignupRequest)
		field   string
		message string
	}{
		{
			name:    "malformed email",
			mutate:  func(r *SignupRequest) { r.Email = "not-an-email" },
			field:   "email",
			message: "Invalid email format",
		},
		{
			name:    "email with one-letter tld",
			mutate:  func(r *SignupRequest) { r.Email = "jane@example.c" },
			field:   "email",
			message: "Invalid email format",
		},
		{
			name:    "short password",
			mutate:  func(r *SignupRequest) { r.Password = "S1!a"; r.ConfirmPassword = "S1!a" },
			field:   "password",
			message: "Password must be at least 8 characters long",
		},
		{
			name:    "password without uppercase",
			mutate:  func(r *SignupRequest) { r.Password = "str0ng!pass"; r.ConfirmPassword = "str0ng!pass" },
			field:   "password",
			message: "Password must contain at least one uppercase letter",
		},
		{
			name:    "password without lowercase",
			mutate:  func(r *SignupRequest) { r.Password = "STR0NG!PASS"; r.ConfirmPassword = "STR0NG!PASS" },
			field:   "password",
			message: "Password must contain at least one lowercase letter",
		},
		{
			name:    "password without digit",
			mutate:  func(r *SignupRequest) { r.Password = "Strong!pass"; r.ConfirmPassword = "Strong!pass" },
			field:   "password",
			message: "Password must contain at least one number",
		},
		{
			name:    "password without special character",
			mutate:  func(r *SignupRequest) { r.Password = "Str0ngpass"; r.ConfirmPassword = "Str0ngpass" },
			field:   "password",
			message: "Password must contain at least one special character",
		},
		{
			name:    "password mismatch",
			mutate:  func(r *SignupRequest) { r.ConfirmPassword = "Different1!" },
			field:   "confirmPassword",
			message: "Passwords do not match",
		},
		{
			name:    "blank first name",
			mutate:  func(r *SignupRequest) { r.FirstName = "   " },
			field:   "firstName",
			message: "First Name is required",
		},
		{
			name:    "blank last name",
			mutate:  func(r *SignupRequest) { r.LastName = "" },
			field:   "lastName",
			message: "Last Name is required",
		},
		{
			name:    "invalid phone number",
			mutate:  func(r *SignupRequest) { r.PhoneNumber = "555-0100" },
			field:   "phoneNumber",
			message: "Must be valid phone number",
		},
		{
			name:    "unparseable date of birth",
			mutate:  func(r *SignupRequest) { r.DateOfBirth = "06/15/1990" },
			field:   "dateOfBirth",
			message: "Must be a valid date",
		},
		{
			name:    "date of birth in the future",
			mutate:  func(r *SignupRequest) { r.DateOfBirth = "2030-01-01" },
			field:   "dateOfBirth",
			message: "Date of birth must be in the past",
		},
		{
			name:    "ssn with wrong length",
			mutate:  func(r *SignupRequest) { r.SSN = "12345678" },
			field:   "ssn",
			message: "Must be valid 9 digit SSN",
		},
		{
			name:    "ssn with non-digits",
			mutate:  func(r *SignupRequest) { r.SSN = "12345678a" },
			field:   "ssn",
			message: "Must be valid 9 digit SSN",
		},
		{
			name:    "blank address",
			mutate:  func(r *SignupRequest) { r.Address = "" },
			field:   "address",
			message: "Address is required",
		},
		{
			name:    "blank city",
			mutate:  func(r *SignupRequest) { r.City = "" },
			field:   "city",
			message: "City is required",
		},
		{
			name:    "unknown state code",
			mutate:  func(r *SignupRequest) { r.State = "ZZ" },
			field:   "state",
			message: "Must be a valid two-letter US state code",
		},
		{
			name:    "zip code with wrong length",
			mutate:  func(r *SignupRequest) { r.ZipCode = "1234" },
			field:   "zipCode",
			message: "Must be valid 5 digit zip code",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignupRequest()
			tc.mutate(&req)

			_, err := ValidateSignupAt(req, now)
			require.Error(t, err)

			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Violations, FieldViolation{Field: tc.field, Message: tc.message})
		})
	}
}

func TestValidateSignupAgeBoundary(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("turns 18 today", func(t *testing.T) {
		req := validSignupRequest()
		req.DateOfBirth = "2006-03-10"

		_, err := ValidateSignupAt(req, now)
		assert.NoError(t, err)
	})

	t.Run("turns 18 tomorrow", func(t *testing.T) {
		req := validSignupRequest()
		req.DateOfBirth = "2006-03-11"

		_, err := ValidateSignupAt(req, now)
		require.Error(t, err)

		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations, FieldViolation{
			Field:   "dateOfBirth",
			Message: "You must be at least 18 years old to sign up",
		})
	})
}

func TestValidateSignupCollectsAllViolations(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	req := validSignupRequest()
	req.Email = "bad"
	req.SSN = "nope"
	req.ZipCode = "abcde"

	_, err := ValidateSignupAt(req, now)
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 3)
}
