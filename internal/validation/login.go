package validation

import "strings"

// LoginRequest is the raw, untyped login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginData is the typed, normalized result of validating a LoginRequest.
// The password format is not re-validated at login; any non-empty string is
// accepted and compared against the stored hash.
type LoginData struct {
	Email    string
	Password string
}

// ValidateLogin evaluates the login rule set against the request.
// Returns the normalized data, or a *Error listing every violation.
func ValidateLogin(req LoginRequest) (*LoginData, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	rules := []Rule{
		{
			Field:   "email",
			Message: "Invalid email format",
			Valid:   func() bool { return validEmail(email) },
		},
		{
			Field:   "password",
			Message: "Password is required",
			Valid:   func() bool { return req.Password != "" },
		},
	}

	if err := evaluate(rules); err != nil {
		return nil, err
	}

	return &LoginData{Email: email, Password: req.Password}, nil
}
