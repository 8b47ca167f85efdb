package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/bank-api/internal/domain"
	"github.com/phrazzld/bank-api/internal/mocks"
	"github.com/phrazzld/bank-api/internal/store"
	"github.com/phrazzld/bank-api/internal/validation"
)

func newTestAccountService() (*AccountService, *mocks.MockAccountStore, *mocks.MockTransactionStore, *mocks.MockTransactor) {
	accounts := mocks.NewMockAccountStore()
	ledger := mocks.NewMockTransactionStore()
	tx := mocks.NewMockTransactor()
	svc := NewAccountService(tx, accounts, ledger, nil)
	return svc, accounts, ledger, tx
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("creates active account with ten-digit number", func(t *testing.T) {
		svc, accounts, _, _ := newTestAccountService()
		userID := uuid.New()

		account, err := svc.CreateAccount(ctx, userID, domain.AccountTypeChecking)
		require.NoError(t, err)

		assert.Equal(t, userID, account.UserID)
		assert.Equal(t, domain.AccountTypeChecking, account.AccountType)
		assert.Equal(t, domain.AccountStatusActive, account.Status)
		assert.Equal(t, int64(0), account.BalanceCents)
		assert.Len(t, account.AccountNumber, 10)
		assert.Len(t, accounts.Accounts, 1)
	})

	t.Run("allows one checking and one savings", func(t *testing.T) {
		svc, _, _, _ := newTestAccountService()
		userID := uuid.New()

		_, err := svc.CreateAccount(ctx, userID, domain.AccountTypeChecking)
		require.NoError(t, err)
		_, err = svc.CreateAccount(ctx, userID, domain.AccountTypeSavings)
		require.NoError(t, err)
	})

	t.Run("rejects second account of same type", func(t *testing.T) {
		svc, _, _, _ := newTestAccountService()
		userID := uuid.New()

		_, err := svc.CreateAccount(ctx, userID, domain.AccountTypeSavings)
		require.NoError(t, err)

		_, err = svc.CreateAccount(ctx, userID, domain.AccountTypeSavings)
		assert.ErrorIs(t, err, ErrDuplicateAccount)
	})

	t.Run("maps racing type conflict to ErrDuplicateAccount", func(t *testing.T) {
		svc, accounts, _, _ := newTestAccountService()

		accounts.CreateFn = func(ctx context.Context, account *domain.Account) error {
			return store.ErrAccountTypeExists
		}

		_, err := svc.CreateAccount(ctx, uuid.New(), domain.AccountTypeChecking)
		assert.ErrorIs(t, err, ErrDuplicateAccount)
	})

	t.Run("redraws number on collision", func(t *testing.T) {
		svc, accounts, _, _ := newTestAccountService()

		checks := 0
		accounts.ExistsByNumberFn = func(ctx context.Context, number string) (bool, error) {
			checks++
			// First draw collides, second is free.
			return checks == 1, nil
		}

		account, err := svc.CreateAccount(ctx, uuid.New(), domain.AccountTypeChecking)
		require.NoError(t, err)
		assert.Equal(t, 2, checks)
		assert.Len(t, account.AccountNumber, 10)
	})

	t.Run("redraws number when insert loses the race", func(t *testing.T) {
		svc, accounts, _, _ := newTestAccountService()

		creates := 0
		accounts.CreateFn = func(ctx context.Context, account *domain.Account) error {
			creates++
			if creates == 1 {
				return store.ErrAccountNumberExists
			}
			return nil
		}

		_, err := svc.CreateAccount(ctx, uuid.New(), domain.AccountTypeChecking)
		require.NoError(t, err)
		assert.Equal(t, 2, creates)
	})

	t.Run("aborts when context is canceled", func(t *testing.T) {
		svc, accounts, _, _ := newTestAccountService()

		canceledCtx, cancel := context.WithCancel(ctx)
		accounts.ExistsByNumberFn = func(ctx context.Context, number string) (bool, error) {
			cancel()
			return true, nil // keep colliding so only cancellation can stop the loop
		}

		_, err := svc.CreateAccount(canceledCtx, uuid.New(), domain.AccountTypeChecking)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestListAccounts(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestAccountService()
	userID := uuid.New()

	accountsList, err := svc.ListAccounts(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, accountsList)

	_, err = svc.CreateAccount(ctx, userID, domain.AccountTypeChecking)
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, userID, domain.AccountTypeSavings)
	require.NoError(t, err)

	// Another user's account must not leak into the listing.
	_, err = svc.CreateAccount(ctx, uuid.New(), domain.AccountTypeChecking)
	require.NoError(t, err)

	accountsList, err = svc.ListAccounts(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, accountsList, 2)
}

func validFundingRequest() validation.FundingRequest {
	return validation.FundingRequest{
		Amount:        "100.50",
		SourceType:    validation.FundingSourceCard,
		AccountNumber: "4242424242424242",
	}
}

func TestFundAccount(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*AccountService, *mocks.MockAccountStore, *mocks.MockTransactionStore, *domain.Account, uuid.UUID) {
		svc, accounts, ledger, _ := newTestAccountService()
		userID := uuid.New()
		account, err := svc.CreateAccount(ctx, userID, domain.AccountTypeChecking)
		require.NoError(t, err)
		return svc, accounts, ledger, account, userID
	}

	t.Run("records deposit and increments balance", func(t *testing.T) {
		svc, _, ledger, account, userID := setup(t)

		deposit, err := svc.FundAccount(ctx, userID, account.ID, validFundingRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(10050), deposit.AmountCents)
		assert.Equal(t, domain.TransactionTypeDeposit, deposit.Type)
		assert.Equal(t, domain.TransactionStatusCompleted, deposit.Status)
		assert.Equal(t, "Deposit from card", deposit.Description)
		assert.Equal(t, int64(10050), account.BalanceCents)
		assert.Len(t, ledger.Transactions, 1)
	})

	t.Run("repeated funding accumulates exactly", func(t *testing.T) {
		svc, _, _, account, userID := setup(t)

		for i := 0; i < 3; i++ {
			_, err := svc.FundAccount(ctx, userID, account.ID, validation.FundingRequest{
				Amount:        "0.10",
				SourceType:    validation.FundingSourceCard,
				AccountNumber: "4242424242424242",
			})
			require.NoError(t, err)
		}

		assert.Equal(t, int64(30), account.BalanceCents)
	})

	t.Run("uses caller description when provided", func(t *testing.T) {
		svc, _, _, account, userID := setup(t)

		req := validFundingRequest()
		req.Description = "Opening deposit"
		deposit, err := svc.FundAccount(ctx, userID, account.ID, req)
		require.NoError(t, err)
		assert.Equal(t, "Opening deposit", deposit.Description)
	})

	t.Run("defaults bank description", func(t *testing.T) {
		svc, _, _, account, userID := setup(t)

		deposit, err := svc.FundAccount(ctx, userID, account.ID, validation.FundingRequest{
			Amount:        "10",
			SourceType:    validation.FundingSourceBank,
			AccountNumber: "000123456789",
			RoutingNumber: "110000000",
		})
		require.NoError(t, err)
		assert.Equal(t, "Deposit from bank account", deposit.Description)
	})

	t.Run("invalid request leaves no trace", func(t *testing.T) {
		svc, _, ledger, account, userID := setup(t)

		req := validFundingRequest()
		req.Amount = "-5"
		_, err := svc.FundAccount(ctx, userID, account.ID, req)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Empty(t, ledger.Transactions)
		assert.Equal(t, int64(0), account.BalanceCents)
	})

	t.Run("unknown account", func(t *testing.T) {
		svc, _, _, _, userID := setup(t)

		_, err := svc.FundAccount(ctx, userID, uuid.New(), validFundingRequest())
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("account owned by someone else", func(t *testing.T) {
		svc, _, ledger, account, _ := setup(t)

		_, err := svc.FundAccount(ctx, uuid.New(), account.ID, validFundingRequest())
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.Empty(t, ledger.Transactions)
	})

	t.Run("inactive account", func(t *testing.T) {
		svc, _, _, account, userID := setup(t)
		account.Status = domain.AccountStatusInactive

		_, err := svc.FundAccount(ctx, userID, account.ID, validFundingRequest())
		assert.ErrorIs(t, err, ErrAccountInactive)
	})

	t.Run("failed balance update fails the whole unit of work", func(t *testing.T) {
		svc, accounts, _, account, userID := setup(t)

		accounts.IncrementBalanceFn = func(ctx context.Context, id uuid.UUID, amountCents int64) error {
			return fmt.Errorf("increment failed: %w", errors.New("connection reset"))
		}

		_, err := svc.FundAccount(ctx, userID, account.ID, validFundingRequest())
		require.Error(t, err)
		assert.Equal(t, int64(0), account.BalanceCents)
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, deposits int) (*AccountService, *domain.Account, uuid.UUID) {
		svc, _, _, _ := newTestAccountService()
		userID := uuid.New()
		account, err := svc.CreateAccount(ctx, userID, domain.AccountTypeChecking)
		require.NoError(t, err)

		for i := 0; i < deposits; i++ {
			req := validFundingRequest()
			req.Description = fmt.Sprintf("deposit %d", i+1)
			_, err := svc.FundAccount(ctx, userID, account.ID, req)
			require.NoError(t, err)
		}
		return svc, account, userID
	}

	t.Run("returns newest first with account type", func(t *testing.T) {
		svc, account, userID := setup(t, 3)

		page, err := svc.ListTransactions(ctx, userID, account.ID, 10, 0)
		require.NoError(t, err)

		require.Len(t, page.Items, 3)
		assert.Equal(t, "deposit 3", page.Items[0].Description)
		assert.Equal(t, "deposit 1", page.Items[2].Description)
		assert.Equal(t, domain.AccountTypeChecking, page.Items[0].AccountType)
		assert.Nil(t, page.NextCursor)
	})

	t.Run("full page sets next cursor", func(t *testing.T) {
		svc, account, userID := setup(t, 3)

		page, err := svc.ListTransactions(ctx, userID, account.ID, 2, 0)
		require.NoError(t, err)

		require.Len(t, page.Items, 2)
		require.NotNil(t, page.NextCursor)
		assert.Equal(t, 2, *page.NextCursor)

		page, err = svc.ListTransactions(ctx, userID, account.ID, 2, *page.NextCursor)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "deposit 1", page.Items[0].Description)
		assert.Nil(t, page.NextCursor)
	})

	t.Run("limit one pages through single items", func(t *testing.T) {
		svc, account, userID := setup(t, 2)

		page, err := svc.ListTransactions(ctx, userID, account.ID, 1, 0)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		require.NotNil(t, page.NextCursor)
		assert.Equal(t, 1, *page.NextCursor)
	})

	t.Run("exactly full final page probes empty", func(t *testing.T) {
		svc, account, userID := setup(t, 2)

		page, err := svc.ListTransactions(ctx, userID, account.ID, 2, 0)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		require.NotNil(t, page.NextCursor)

		page, err = svc.ListTransactions(ctx, userID, account.ID, 2, *page.NextCursor)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Nil(t, page.NextCursor)
	})

	t.Run("clamps limit to bounds", func(t *testing.T) {
		svc, account, userID := setup(t, 12)

		// Zero limit falls back to the default page size of 10.
		page, err := svc.ListTransactions(ctx, userID, account.ID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, page.Items, 10)

		// Oversized limits clamp to the max, which still covers all 12 here.
		page, err = svc.ListTransactions(ctx, userID, account.ID, 1000, 0)
		require.NoError(t, err)
		assert.Len(t, page.Items, 12)
	})

	t.Run("unknown or foreign account", func(t *testing.T) {
		svc, account, _ := setup(t, 1)

		_, err := svc.ListTransactions(ctx, uuid.New(), account.ID, 10, 0)
		assert.ErrorIs(t, err, ErrAccountNotFound)

		_, err = svc.ListTransactions(ctx, account.UserID, uuid.New(), 10, 0)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}
