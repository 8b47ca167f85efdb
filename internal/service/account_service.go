package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/google/uuid"
	"github.com/phrazzld/bank-api/internal/domain"
	"github.com/phrazzld/bank-api/internal/store"
	"github.com/phrazzld/bank-api/internal/validation"
)

// Account number generation bounds: uniform random 10-digit numbers.
var (
	accountNumberMin = big.NewInt(1_000_000_000)
	accountNumberMax = big.NewInt(10_000_000_000)
)

// Transaction listing limits.
const (
	defaultTransactionPageSize = 10
	maxTransactionPageSize     = 100
)

// TransactionItem is a ledger entry annotated with the owning account's type
// for display purposes.
type TransactionItem struct {
	*domain.Transaction
	AccountType domain.AccountType `json:"account_type"`
}

// TransactionPage is one page of an account's transaction history, newest
// first. NextCursor carries the offset of the next page when a further page
// may exist, and is nil once the result set is exhausted below the page
// size.
type TransactionPage struct {
	Items      []TransactionItem `json:"items"`
	NextCursor *int              `json:"next_cursor,omitempty"`
}

// AccountService manages account lifecycle, funding, and transaction
// history. All state changes go through the store interfaces; funding's
// ledger insert and balance increment execute inside a single database
// transaction.
type AccountService struct {
	tx       store.Transactor
	accounts store.AccountStore
	ledger   store.TransactionStore
	logger   *slog.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	tx store.Transactor,
	accounts store.AccountStore,
	ledger store.TransactionStore,
	logger *slog.Logger,
) *AccountService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{
		tx:       tx,
		accounts: accounts,
		ledger:   ledger,
		logger:   logger.With("component", "account_service"),
	}
}

// CreateAccount opens a new active account of the given type for the user.
// Returns ErrDuplicateAccount if the user already holds an account of that
// type. The generated account number is re-drawn until it is globally
// unique; the loop is bounded only by persistence round-trips and aborts
// promptly if the context is canceled.
func (s *AccountService) CreateAccount(
	ctx context.Context,
	userID uuid.UUID,
	accountType domain.AccountType,
) (*domain.Account, error) {
	exists, err := s.accounts.ExistsByUserAndType(ctx, userID, accountType)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if exists {
		return nil, ErrDuplicateAccount
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		number, err := generateAccountNumber()
		if err != nil {
			return nil, err
		}

		taken, err := s.accounts.ExistsByNumber(ctx, number)
		if err != nil {
			return nil, fmt.Errorf("failed to check account number: %w", err)
		}
		if taken {
			s.logger.Debug("account number collision, regenerating",
				"user_id", userID)
			continue
		}

		account, err := domain.NewAccount(userID, accountType, number)
		if err != nil {
			return nil, fmt.Errorf("failed to construct account: %w", err)
		}

		err = s.accounts.Create(ctx, account)
		if err == nil {
			s.logger.Info("account created",
				"account_id", account.ID,
				"user_id", userID,
				"account_type", accountType)
			return account, nil
		}
		if errors.Is(err, store.ErrAccountNumberExists) {
			// Lost a race on the number; draw again.
			continue
		}
		if errors.Is(err, store.ErrAccountTypeExists) {
			// Lost a race on the (user, type) pair.
			return nil, ErrDuplicateAccount
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
}

// ListAccounts returns the user's accounts in creation order. A user with no
// accounts gets an empty slice, not an error.
func (s *AccountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	accounts, err := s.accounts.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// FundAccount validates the funding request, then records a completed
// deposit and increments the account balance as a single unit of work.
// Validation happens before any persistence access; a *validation.Error is
// returned without side effects. Returns ErrAccountNotFound for missing or
// foreign accounts and ErrAccountInactive when the account cannot accept
// deposits.
func (s *AccountService) FundAccount(
	ctx context.Context,
	userID, accountID uuid.UUID,
	req validation.FundingRequest,
) (*domain.Transaction, error) {
	data, err := validation.ValidateFunding(req)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account.UserID != userID {
		return nil, ErrAccountNotFound
	}
	if !account.IsActive() {
		return nil, ErrAccountInactive
	}

	deposit, err := domain.NewDeposit(account.ID, data.AmountCents, depositDescription(data))
	if err != nil {
		return nil, fmt.Errorf("failed to construct deposit: %w", err)
	}

	err = s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.ledger.WithTx(tx).Create(ctx, deposit); err != nil {
			return fmt.Errorf("failed to record deposit: %w", err)
		}
		if err := s.accounts.WithTx(tx).IncrementBalance(ctx, account.ID, data.AmountCents); err != nil {
			return fmt.Errorf("failed to update balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("account funded",
		"account_id", account.ID,
		"user_id", userID,
		"amount_cents", data.AmountCents,
		"source_type", data.SourceType)
	return deposit, nil
}

// ListTransactions returns one page of the account's transaction history,
// newest first, starting at offset cursor. Each item carries the owning
// account's type. Returns ErrAccountNotFound for missing or foreign
// accounts.
func (s *AccountService) ListTransactions(
	ctx context.Context,
	userID, accountID uuid.UUID,
	limit, cursor int,
) (*TransactionPage, error) {
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}
	if limit > maxTransactionPageSize {
		limit = maxTransactionPageSize
	}
	if cursor < 0 {
		cursor = 0
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account.UserID != userID {
		return nil, ErrAccountNotFound
	}

	transactions, err := s.ledger.ListByAccountID(ctx, accountID, limit, cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	page := &TransactionPage{
		Items: make([]TransactionItem, len(transactions)),
	}
	for i, tx := range transactions {
		page.Items[i] = TransactionItem{Transaction: tx, AccountType: account.AccountType}
	}

	// A full page means a further page may exist; an exactly-full final page
	// costs the caller one extra empty probe rather than a COUNT query here.
	if len(transactions) == limit {
		next := cursor + len(transactions)
		page.NextCursor = &next
	}

	return page, nil
}

// depositDescription returns the caller-provided description, or a readable
// default naming the funding source.
func depositDescription(data *validation.FundingData) string {
	if data.Description != "" {
		return data.Description
	}
	if data.SourceType == validation.FundingSourceBank {
		return "Deposit from bank account"
	}
	return "Deposit from card"
}

// generateAccountNumber draws a uniform random 10-digit account number using
// crypto/rand.
func generateAccountNumber() (string, error) {
	span := new(big.Int).Sub(accountNumberMax, accountNumberMin)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", fmt.Errorf("failed to generate account number: %w", err)
	}
	return new(big.Int).Add(n, accountNumberMin).String(), nil
}
