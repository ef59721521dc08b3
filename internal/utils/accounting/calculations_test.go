package accounting_test

import (
	"testing"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(accountID string, amount string, side domain.TransactionType) domain.Transaction {
	return domain.Transaction{
		AccountID:       accountID,
		Amount:          decimal.RequireFromString(amount),
		TransactionType: side,
	}
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name   string
		side   domain.TransactionType
		normal domain.NormalBalance
		want   string
	}{
		{"debit line on debit-normal account", domain.Debit, domain.DebitNormal, "100"},
		{"credit line on debit-normal account", domain.Credit, domain.DebitNormal, "-100"},
		{"debit line on credit-normal account", domain.Debit, domain.CreditNormal, "-100"},
		{"credit line on credit-normal account", domain.Credit, domain.CreditNormal, "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.SignedAmount(txn("a1", "100", tt.side), tt.normal)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestAccountBalance(t *testing.T) {
	account := domain.Account{AccountID: "cash", AccountType: domain.Asset, NormalBalance: domain.DebitNormal}
	lines := []domain.Transaction{
		txn("cash", "1000.00", domain.Debit),
		txn("cash", "300.00", domain.Credit),
		txn("cash", "0.01", domain.Debit),
	}

	balance := accounting.AccountBalance(account, lines)
	assert.True(t, balance.Equal(decimal.RequireFromString("700.01")), "got %s", balance)
}

func TestAccountBalance_OrderIndependent(t *testing.T) {
	account := domain.Account{AccountID: "rev", AccountType: domain.Revenue, NormalBalance: domain.CreditNormal}
	lines := []domain.Transaction{
		txn("rev", "500.00", domain.Credit),
		txn("rev", "120.50", domain.Credit),
		txn("rev", "20.50", domain.Debit),
	}
	reversed := []domain.Transaction{lines[2], lines[1], lines[0]}

	assert.True(t, accounting.AccountBalance(account, lines).Equal(accounting.AccountBalance(account, reversed)))
}

func TestAccountBalance_Empty(t *testing.T) {
	account := domain.Account{AccountID: "cash", NormalBalance: domain.DebitNormal}
	assert.True(t, accounting.AccountBalance(account, nil).IsZero())
}

func TestValidateJournalBalance_Success(t *testing.T) {
	lines := []domain.Transaction{
		txn("cash", "500.00", domain.Debit),
		txn("rev", "499.99", domain.Credit),
		txn("rev", "0.01", domain.Credit),
	}
	assert.NoError(t, accounting.ValidateJournalBalance(lines))
}

func TestValidateJournalBalance_MinEntries(t *testing.T) {
	lines := []domain.Transaction{txn("cash", "500.00", domain.Debit)}
	err := accounting.ValidateJournalBalance(lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrJournalMinEntries)
}

func TestValidateJournalBalance_Unbalanced(t *testing.T) {
	lines := []domain.Transaction{
		txn("cash", "500", domain.Debit),
		txn("rev", "499", domain.Credit),
	}
	err := accounting.ValidateJournalBalance(lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrJournalUnbalanced)
}

func TestValidateJournalBalance_OffByOneCent(t *testing.T) {
	lines := []domain.Transaction{
		txn("cash", "100.00", domain.Debit),
		txn("rev", "99.99", domain.Credit),
	}
	err := accounting.ValidateJournalBalance(lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrJournalUnbalanced)
}

func TestValidateJournalBalance_NonPositiveAmount(t *testing.T) {
	lines := []domain.Transaction{
		txn("cash", "0", domain.Debit),
		txn("rev", "0", domain.Credit),
	}
	err := accounting.ValidateJournalBalance(lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateJournalBalance_TooManyDecimalPlaces(t *testing.T) {
	lines := []domain.Transaction{
		txn("cash", "10.005", domain.Debit),
		txn("rev", "10.005", domain.Credit),
	}
	err := accounting.ValidateJournalBalance(lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
