package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AccountType identifies the product type of an account.
type AccountType string

// Possible account types. A user may hold at most one account of each type.
const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
)

// AccountStatus represents the lifecycle state of an account.
type AccountStatus string

// Possible account status values.
const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
	AccountStatusClosed   AccountStatus = "closed"
)

// Common validation errors for Account.
var (
	ErrEmptyAccountID       = errors.New("account ID cannot be empty")
	ErrEmptyAccountUserID   = errors.New("account user ID cannot be empty")
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrInvalidAccountStatus = errors.New("invalid account status")
	ErrEmptyAccountNumber   = errors.New("account number cannot be empty")
	ErrNegativeBalance      = errors.New("account balance cannot be negative")
)

// Account represents a single bank account owned by a user.
// The balance is held in integer minor units (cents) to keep arithmetic
// exact under repeated funding operations.
type Account struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"user_id"`
	AccountType   AccountType   `json:"account_type"`
	AccountNumber string        `json:"account_number"`
	Status        AccountStatus `json:"status"`
	BalanceCents  int64         `json:"balance_cents"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// NewAccount creates a new active Account with a zero balance for the given
// user, type, and system-generated account number.
// Returns an error if validation fails.
func NewAccount(userID uuid.UUID, accountType AccountType, accountNumber string) (*Account, error) {
	account := &Account{
		ID:            uuid.New(),
		UserID:        userID,
		AccountType:   accountType,
		AccountNumber: accountNumber,
		Status:        AccountStatusActive,
		BalanceCents:  0,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAccountID
	}

	if a.UserID == uuid.Nil {
		return ErrEmptyAccountUserID
	}

	switch a.AccountType {
	case AccountTypeChecking, AccountTypeSavings:
	default:
		return ErrInvalidAccountType
	}

	switch a.Status {
	case AccountStatusActive, AccountStatusInactive, AccountStatusClosed:
	default:
		return ErrInvalidAccountStatus
	}

	if a.AccountNumber == "" {
		return ErrEmptyAccountNumber
	}

	if a.BalanceCents < 0 {
		return ErrNegativeBalance
	}

	return nil
}

// IsActive reports whether the account can accept funding operations.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}
