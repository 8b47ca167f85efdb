package validation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FundingSourceType tags the kind of external source a funding request draws
// from. Funding sources are validated per request and never stored.
type FundingSourceType string

// Possible funding source types.
const (
	FundingSourceCard FundingSourceType = "card"
	FundingSourceBank FundingSourceType = "bank"
)

// cardNumberLength is the PAN length accepted for card funding sources.
const cardNumberLength = 16

// FundingRequest is the raw, untyped funding payload. Amount is a decimal
// string in major units (e.g. "100.50"); it is converted exactly to integer
// cents during validation so balance arithmetic never drifts.
type FundingRequest struct {
	Amount        string            `json:"amount"`
	SourceType    FundingSourceType `json:"sourceType"`
	AccountNumber string            `json:"accountNumber"`
	RoutingNumber string            `json:"routingNumber"`
	Description   string            `json:"description,omitempty"`
}

// FundingData is the typed result of validating a FundingRequest.
type FundingData struct {
	AmountCents   int64
	SourceType    FundingSourceType
	AccountNumber string
	RoutingNumber string
	Description   string
}

// ValidateFunding evaluates the funding rule set against the request.
// Returns the typed data, or a *Error listing every violation.
func ValidateFunding(req FundingRequest) (*FundingData, error) {
	var (
		amount         decimal.Decimal
		amountCents    int64
		amountPositive bool
		wholeCents     bool
	)

	rules := []Rule{
		{
			Field:   "amount",
			Message: "Amount must be a positive number",
			Valid: func() bool {
				parsed, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
				if err != nil || !parsed.IsPositive() {
					return false
				}
				amount = parsed
				amountPositive = true
				return true
			},
		},
		{
			Field:   "amount",
			Message: "Amount cannot have more than 2 decimal places",
			Valid: func() bool {
				if !amountPositive {
					return true // positivity rule already reported
				}
				if !amount.Shift(2).IsInteger() {
					return false
				}
				wholeCents = true
				return true
			},
		},
		{
			Field:   "amount",
			Message: "Amount is too large",
			Valid: func() bool {
				if !wholeCents {
					return true // earlier amount rules already reported
				}
				// Reject cent values outside int64 rather than letting
				// them wrap silently through Int64 truncation.
				cents := amount.Shift(2).BigInt()
				if !cents.IsInt64() {
					return false
				}
				amountCents = cents.Int64()
				return true
			},
		},
		{
			Field:   "sourceType",
			Message: "Funding source must be card or bank",
			Valid: func() bool {
				return req.SourceType == FundingSourceCard || req.SourceType == FundingSourceBank
			},
		},
		{
			Field:   "accountNumber",
			Message: "Must be a valid card number",
			Valid: func() bool {
				if req.SourceType != FundingSourceCard {
					return true
				}
				return len(req.AccountNumber) == cardNumberLength && luhnValid(req.AccountNumber)
			},
		},
		{
			Field:   "accountNumber",
			Message: "Account number is required",
			Valid: func() bool {
				if req.SourceType != FundingSourceBank {
					return true
				}
				return required(req.AccountNumber)
			},
		},
		{
			Field:   "routingNumber",
			Message: "Routing number is required",
			Valid: func() bool {
				if req.SourceType != FundingSourceBank {
					return true
				}
				return required(req.RoutingNumber)
			},
		},
	}

	if err := evaluate(rules); err != nil {
		return nil, err
	}

	return &FundingData{
		AmountCents:   amountCents,
		SourceType:    req.SourceType,
		AccountNumber: req.AccountNumber,
		RoutingNumber: req.RoutingNumber,
		Description:   strings.TrimSpace(req.Description),
	}, nil
}
