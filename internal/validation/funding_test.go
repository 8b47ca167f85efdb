package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFundingCard(t *testing.T) {
	data, err := ValidateFunding(FundingRequest{
		Amount:        "100.50",
		SourceType:    FundingSourceCard,
		AccountNumber: "4242424242424242",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10050), data.AmountCents)
	assert.Equal(t, FundingSourceCard, data.SourceType)
}

func TestValidateFundingBank(t *testing.T) {
	data, err := ValidateFunding(FundingRequest{
		Amount:        "25",
		SourceType:    FundingSourceBank,
		AccountNumber: "000123456789",
		RoutingNumber: "110000000",
		Description:   "  payroll  ",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2500), data.AmountCents)
	assert.Equal(t, "payroll", data.Description)
}

func TestValidateFundingAmountRules(t *testing.T) {
	cases := []struct {
		name    string
		amount  string
		message string
	}{
		{"not a number", "abc", "Amount must be a positive number"},
		{"zero", "0", "Amount must be a positive number"},
		{"negative", "-5.00", "Amount must be a positive number"},
		{"three decimal places", "100.123", "Amount cannot have more than 2 decimal places"},
		{"cents exceed int64", "184467440737095517.16", "Amount is too large"},
		{"absurdly large", "1e30", "Amount is too large"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateFunding(FundingRequest{
				Amount:        tc.amount,
				SourceType:    FundingSourceCard,
				AccountNumber: "4242424242424242",
			})
			require.Error(t, err)

			var verr *Error
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Violations, 1)
			assert.Equal(t, "amount", verr.Violations[0].Field)
			assert.Equal(t, tc.message, verr.Violations[0].Message)
		})
	}
}

func TestValidateFundingLargestRepresentableAmount(t *testing.T) {
	// math.MaxInt64 cents is the largest amount the ledger can carry.
	data, err := ValidateFunding(FundingRequest{
		Amount:        "92233720368547758.07",
		SourceType:    FundingSourceCard,
		AccountNumber: "4242424242424242",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), data.AmountCents)
}

func TestValidateFundingSourceRules(t *testing.T) {
	t.Run("unknown source type", func(t *testing.T) {
		_, err := ValidateFunding(FundingRequest{
			Amount:     "10",
			SourceType: "wire",
		})
		require.Error(t, err)

		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations, FieldViolation{
			Field:   "sourceType",
			Message: "Funding source must be card or bank",
		})
	})

	t.Run("card number failing checksum", func(t *testing.T) {
		_, err := ValidateFunding(FundingRequest{
			Amount:        "10",
			SourceType:    FundingSourceCard,
			AccountNumber: "1234567890123456",
		})
		require.Error(t, err)

		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations, FieldViolation{
			Field:   "accountNumber",
			Message: "Must be a valid card number",
		})
	})

	t.Run("card number with wrong length", func(t *testing.T) {
		_, err := ValidateFunding(FundingRequest{
			Amount:        "10",
			SourceType:    FundingSourceCard,
			AccountNumber: "42424242424242",
		})
		require.Error(t, err)
	})

	t.Run("bank source missing numbers", func(t *testing.T) {
		_, err := ValidateFunding(FundingRequest{
			Amount:     "10",
			SourceType: FundingSourceBank,
		})
		require.Error(t, err)

		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations, FieldViolation{
			Field:   "accountNumber",
			Message: "Account number is required",
		})
		assert.Contains(t, verr.Violations, FieldViolation{
			Field:   "routingNumber",
			Message: "Routing number is required",
		})
	})
}

func TestLuhnValid(t *testing.T) {
	assert.True(t, luhnValid("4242424242424242"))
	assert.True(t, luhnValid("4111111111111111"))
	assert.False(t, luhnValid("4242424242424241"))
	assert.False(t, luhnValid("1234567890123456"))
	assert.False(t, luhnValid(""))
	assert.False(t, luhnValid("4242-4242"))
}
