package services

import (
	"context"
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingService builds financial statements from posted transactions.
// All operations are read-only and safe to run concurrently.
type ReportingService interface {
	// IncomeStatement reports revenue and expense activity for [from, to].
	IncomeStatement(ctx context.Context, ownerID string, from, to time.Time) (*domain.IncomeStatement, error)

	// BalanceSheet reports financial position as of a date, including the
	// synthetic Retained Earnings equity line.
	BalanceSheet(ctx context.Context, ownerID string, asOf time.Time) (*domain.BalanceSheet, error)

	// OwnersEquity reports the capital roll-forward for [from, to].
	OwnersEquity(ctx context.Context, ownerID string, from, to time.Time) (*domain.OwnersEquityStatement, error)

	// CashFlow reports classified cash movement for [from, to].
	CashFlow(ctx context.Context, ownerID string, from, to time.Time) (*domain.CashFlowStatement, error)

	// TrialBalance reports per-account debit and credit totals as of a date.
	TrialBalance(ctx context.Context, ownerID string, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// AccountBalance computes one account's signed balance. A nil from means
	// cumulative from ledger inception through asOf; otherwise the result is
	// the net change over [from, asOf].
	AccountBalance(ctx context.Context, ownerID string, accountID string, from *time.Time, asOf time.Time) (decimal.Decimal, error)
}

// ServiceContainer bundles the services handed to the HTTP layer.
type ServiceContainer struct {
	Account   AccountService
	Journal   JournalService
	Reporting ReportingService
}
