package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

// emailPattern is the structural email check. The top-level domain segment
// must be at least two characters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)

// defaultPhoneRegion is assumed when a phone number carries no country code.
const defaultPhoneRegion = "US"

// minSignupAgeYears is the minimum age, in calendar years, required to open
// an account.
const minSignupAgeYears = 18

// dateLayout is the accepted wire format for dates.
const dateLayout = "2006-01-02"

// SignupRequest is the raw, untyped signup payload as received from the
// transport layer.
type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	PhoneNumber     string `json:"phoneNumber"`
	DateOfBirth     string `json:"dateOfBirth"`
	SSN             string `json:"ssn"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	ZipCode         string `json:"zipCode"`
}

// SignupData is the typed, normalized result of validating a SignupRequest:
// email lowercased, phone in E.164 form, state uppercased, date of birth
// parsed.
type SignupData struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	DateOfBirth time.Time
	SSN         string
	Address     string
	City        string
	State       string
	ZipCode     string
}

// ValidateSignup evaluates the signup rule set against the request.
// Returns the normalized data, or a *Error listing every violation.
func ValidateSignup(req SignupRequest) (*SignupData, error) {
	return ValidateSignupAt(req, time.Now())
}

// ValidateSignupAt is ValidateSignup with an injectable current time, used
// for age-boundary checks. Age is computed by calendar-year difference
// against now, not elapsed seconds, so boundary days match local calendar
// semantics.
func ValidateSignupAt(req SignupRequest, now time.Time) (*SignupData, error) {
	var (
		phoneE164 string
		dob       time.Time
		dobParsed bool
	)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	state := strings.ToUpper(strings.TrimSpace(req.State))

	rules := []Rule{
		{
			Field:   "email",
			Message: "Invalid email format",
			Valid:   func() bool { return validEmail(email) },
		},
		{
			Field:   "password",
			Message: "Password must be at least 8 characters long",
			Valid:   func() bool { return len(req.Password) >= 8 },
		},
		{
			Field:   "password",
			Message: "Password must contain at least one uppercase letter",
			Valid:   func() bool { return containsClass(req.Password, unicode.IsUpper) },
		},
		{
			Field:   "password",
			Message: "Password must contain at least one lowercase letter",
			Valid:   func() bool { return containsClass(req.Password, unicode.IsLower) },
		},
		{
			Field:   "password",
			Message: "Password must contain at least one number",
			Valid:   func() bool { return containsClass(req.Password, unicode.IsDigit) },
		},
		{
			Field:   "password",
			Message: "Password must contain at least one special character",
			Valid: func() bool {
				return containsClass(req.Password, func(r rune) bool {
					return !unicode.IsLetter(r) && !unicode.IsDigit(r)
				})
			},
		},
		{
			Field:   "confirmPassword",
			Message: "Passwords do not match",
			Valid:   func() bool { return req.Password == req.ConfirmPassword },
		},
		{
			Field:   "firstName",
			Message: "First Name is required",
			Valid:   func() bool { return required(req.FirstName) },
		},
		{
			Field:   "lastName",
			Message: "Last Name is required",
			Valid:   func() bool { return required(req.LastName) },
		},
		{
			Field:   "phoneNumber",
			Message: "Must be valid phone number",
			Valid: func() bool {
				parsed, err := phonenumbers.Parse(req.PhoneNumber, defaultPhoneRegion)
				if err != nil || !phonenumbers.IsValidNumber(parsed) {
					return false
				}
				phoneE164 = phonenumbers.Format(parsed, phonenumbers.E164)
				return true
			},
		},
		{
			Field:   "dateOfBirth",
			Message: "Must be a valid date",
			Valid: func() bool {
				parsed, err := time.Parse(dateLayout, strings.TrimSpace(req.DateOfBirth))
				if err != nil {
					return false
				}
				dob = parsed
				dobParsed = true
				return true
			},
		},
		{
			Field:   "dateOfBirth",
			Message: "Date of birth must be in the past",
			Valid: func() bool {
				if !dobParsed {
					return true // parse rule already reported
				}
				return dob.Before(now)
			},
		},
		{
			Field:   "dateOfBirth",
			Message: "You must be at least 18 years old to sign up",
			Valid: func() bool {
				if !dobParsed {
					return true // parse rule already reported
				}
				return oldEnough(dob, now)
			},
		},
		{
			Field:   "ssn",
			Message: "Must be valid 9 digit SSN",
			Valid:   func() bool { return len(req.SSN) == 9 && digitsOnly(req.SSN) },
		},
		{
			Field:   "address",
			Message: "Address is required",
			Valid:   func() bool { return required(req.Address) },
		},
		{
			Field:   "city",
			Message: "City is required",
			Valid:   func() bool { return required(req.City) },
		},
		{
			Field:   "state",
			Message: "Must be a valid two-letter US state code",
			Valid:   func() bool { return validState(state) },
		},
		{
			Field:   "zipCode",
			Message: "Must be valid 5 digit zip code",
			Valid:   func() bool { return len(req.ZipCode) == 5 && digitsOnly(req.ZipCode) },
		},
	}

	if err := evaluate(rules); err != nil {
		return nil, err
	}

	return &SignupData{
		Email:       email,
		Password:    req.Password,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		PhoneNumber: phoneE164,
		DateOfBirth: dob,
		SSN:         req.SSN,
		Address:     strings.TrimSpace(req.Address),
		City:        strings.TrimSpace(req.City),
		State:       state,
		ZipCode:     req.ZipCode,
	}, nil
}

// validEmail checks the structural pattern and requires a top-level domain
// segment of at least two characters.
func validEmail(email string) bool {
	if !emailPattern.MatchString(email) {
		return false
	}
	segments := strings.Split(email, ".")
	tld := segments[len(segments)-1]
	return len(tld) >= 2
}

// containsClass reports whether any rune in s satisfies the predicate.
func containsClass(s string, class func(rune) bool) bool {
	for _, r := range s {
		if class(r) {
			return true
		}
	}
	return false
}

// oldEnough reports whether someone born on dob has reached the minimum
// signup age as of now, using calendar-year arithmetic: the cutoff is the
// same month and day minSignupAgeYears earlier.
func oldEnough(dob, now time.Time) bool {
	cutoff := time.Date(now.Year()-minSignupAgeYears, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	birth := time.Date(dob.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	return !birth.After(cutoff)
}
