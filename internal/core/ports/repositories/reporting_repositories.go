package repositories

import (
	"context"
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// ReportingRepository supplies windowed, owner-scoped transaction lines to
// the statement builders. Each call is a single snapshot-consistent query;
// the balance folding itself happens in the accounting package, not in SQL.
type ReportingRepository interface {
	// FindTransactionsThroughDate retrieves all posted lines for an owner from
	// ledger inception through asOf inclusive.
	FindTransactionsThroughDate(ctx context.Context, ownerID string, asOf time.Time) ([]domain.Transaction, error)

	// FindTransactionsInWindow retrieves all posted lines for an owner with
	// journal dates in [from, to] inclusive.
	FindTransactionsInWindow(ctx context.Context, ownerID string, from, to time.Time) ([]domain.Transaction, error)

	// FindJournalsForAccountInWindow retrieves the whole journals (with all
	// their lines) that touch the given account in [from, to] inclusive. The
	// cash-flow builder needs complete journals to classify each cash line by
	// its counterpart accounts.
	FindJournalsForAccountInWindow(ctx context.Context, ownerID string, accountID string, from, to time.Time) ([]domain.Journal, error)
}
