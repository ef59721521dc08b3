package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for report queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

const reportingTxnColumns = `t.transaction_id, t.journal_id, t.account_id, t.amount, t.transaction_type, t.notes, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by`

func (r *PgxReportingRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query report transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report transaction row: %w", err)
		}
		transactions = append(transactions, txn)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating report transaction rows: %w", rows.Err())
	}

	return transactions, nil
}

// FindTransactionsThroughDate retrieves all posted lines for an owner from
// ledger inception through asOf inclusive.
func (r *PgxReportingRepository) FindTransactionsThroughDate(ctx context.Context, ownerID string, asOf time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + reportingTxnColumns + `
		FROM transactions t
		JOIN journals j ON j.journal_id = t.journal_id
		WHERE j.owner_id = $1 AND j.status = $2 AND j.journal_date <= $3;
	`
	return r.queryTransactions(ctx, query, ownerID, domain.Posted, asOf)
}

// FindTransactionsInWindow retrieves all posted lines for an owner with
// journal dates in [from, to] inclusive.
func (r *PgxReportingRepository) FindTransactionsInWindow(ctx context.Context, ownerID string, from, to time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + reportingTxnColumns + `
		FROM transactions t
		JOIN journals j ON j.journal_id = t.journal_id
		WHERE j.owner_id = $1 AND j.status = $2 AND j.journal_date BETWEEN $3 AND $4;
	`
	return r.queryTransactions(ctx, query, ownerID, domain.Posted, from, to)
}

// FindJournalsForAccountInWindow retrieves the whole journals, with all their
// lines, that touch the given account in [from, to] inclusive.
func (r *PgxReportingRepository) FindJournalsForAccountInWindow(ctx context.Context, ownerID string, accountID string, from, to time.Time) ([]domain.Journal, error) {
	journalQuery := `
		SELECT ` + journalColumns + `
		FROM journals
		WHERE owner_id = $1 AND status = $2 AND journal_date BETWEEN $3 AND $4
		  AND journal_id IN (SELECT journal_id FROM transactions WHERE account_id = $5)
		ORDER BY journal_date, journal_id;
	`

	rows, err := r.Pool.Query(ctx, journalQuery, ownerID, domain.Posted, from, to, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals for account %s: %w", accountID, err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	journalIDs := []string{}
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal row for account %s: %w", accountID, err)
		}
		journals = append(journals, j)
		journalIDs = append(journalIDs, j.JournalID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal rows for account %s: %w", accountID, rows.Err())
	}
	rows.Close()

	if len(journals) == 0 {
		return journals, nil
	}

	lineQuery := `
		SELECT ` + reportingTxnColumns + `
		FROM transactions t
		WHERE t.journal_id = ANY($1);
	`
	lines, err := r.queryTransactions(ctx, lineQuery, journalIDs)
	if err != nil {
		return nil, err
	}

	linesByJournal := make(map[string][]domain.Transaction, len(journals))
	for _, txn := range lines {
		linesByJournal[txn.JournalID] = append(linesByJournal[txn.JournalID], txn)
	}
	for i := range journals {
		journals[i].Transactions = linesByJournal[journals[i].JournalID]
	}

	return journals, nil
}
