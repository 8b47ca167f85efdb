package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TransactionType identifies the direction of a ledger entry.
type TransactionType string

// Possible transaction types.
const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// TransactionStatus represents the settlement state of a transaction.
type TransactionStatus string

// Possible transaction status values.
const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
)

// Common validation errors for Transaction.
var (
	ErrEmptyTransactionID        = errors.New("transaction ID cannot be empty")
	ErrEmptyTransactionAccountID = errors.New("transaction account ID cannot be empty")
	ErrInvalidTransactionType    = errors.New("invalid transaction type")
	ErrInvalidTransactionStatus  = errors.New("invalid transaction status")
	ErrNonPositiveAmount         = errors.New("transaction amount must be positive")
)

// Transaction is an immutable, append-only ledger entry recorded against an
// account. Amounts are integer minor units (cents); the Type field carries
// the direction rather than a signed amount.
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	AccountID   uuid.UUID         `json:"account_id"`
	Type        TransactionType   `json:"type"`
	AmountCents int64             `json:"amount_cents"`
	Description string            `json:"description,omitempty"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// NewDeposit creates a completed deposit Transaction against the given
// account. Returns an error if validation fails.
func NewDeposit(accountID uuid.UUID, amountCents int64, description string) (*Transaction, error) {
	tx := &Transaction{
		ID:          uuid.New(),
		AccountID:   accountID,
		Type:        TransactionTypeDeposit,
		AmountCents: amountCents,
		Description: description,
		Status:      TransactionStatusCompleted,
		CreatedAt:   time.Now().UTC(),
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	return tx, nil
}

// Validate checks if the Transaction has valid data.
// Returns an error if any field fails validation.
func (t *Transaction) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTransactionID
	}

	if t.AccountID == uuid.Nil {
		return ErrEmptyTransactionAccountID
	}

	switch t.Type {
	case TransactionTypeDeposit, TransactionTypeWithdrawal:
	default:
		return ErrInvalidTransactionType
	}

	switch t.Status {
	case TransactionStatusCompleted, TransactionStatusPending:
	default:
		return ErrInvalidTransactionStatus
	}

	if t.AmountCents <= 0 {
		return ErrNonPositiveAmount
	}

	return nil
}
