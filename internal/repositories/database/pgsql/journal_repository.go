package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const journalColumns = `journal_id, owner_id, journal_number, journal_date, description, status, created_at, created_by, last_updated_at, last_updated_by`

const transactionColumns = `transaction_id, journal_id, account_id, amount, transaction_type, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal and transaction data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepository
var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

func scanJournal(row pgx.Row) (domain.Journal, error) {
	var j domain.Journal
	err := row.Scan(
		&j.JournalID,
		&j.OwnerID,
		&j.JournalNumber,
		&j.JournalDate,
		&j.Description,
		&j.Status,
		&j.CreatedAt,
		&j.CreatedBy,
		&j.LastUpdatedAt,
		&j.LastUpdatedBy,
	)
	return j, err
}

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.JournalID,
		&txn.AccountID,
		&txn.Amount,
		&txn.TransactionType,
		&txn.Notes,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	return txn, err
}

// SaveJournal persists a journal and its transaction lines within one DB
// transaction. The poster has already validated the journal; this layer only
// guarantees atomicity.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits successfully
	defer r.Rollback(ctx, tx)

	journalQuery := `
		INSERT INTO journals (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, journalQuery,
		journal.JournalID,
		journal.OwnerID,
		journal.JournalNumber,
		journal.JournalDate,
		journal.Description,
		journal.Status,
		journal.CreatedAt,
		journal.CreatedBy,
		journal.LastUpdatedAt,
		journal.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal "+journal.JournalID, err)
	}

	batch := &pgx.Batch{}
	txnQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, txn := range transactions {
		batch.Queue(txnQuery,
			txn.TransactionID,
			txn.JournalID,
			txn.AccountID,
			txn.Amount,
			txn.TransactionType,
			txn.Notes,
			txn.CreatedAt,
			txn.CreatedBy,
			txn.LastUpdatedAt,
			txn.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to insert transaction %s: %w", transactions[i].TransactionID, err)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close transaction insert batch: %w", err)
	}
	if batchErr != nil {
		return apperrors.NewAppError(500, "failed to insert journal lines", batchErr)
	}

	return r.Commit(ctx, tx)
}

// FindJournalByID retrieves a journal by its ID, without its lines.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`

	j, err := scanJournal(r.Pool.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}
	return &j, nil
}

// ListJournalsByOwner retrieves a paginated list of journals, newest first.
func (r *PgxJournalRepository) ListJournalsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Journal, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + journalColumns + `
		FROM journals
		WHERE owner_id = $1
		ORDER BY journal_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`

	rows, err := r.Pool.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal row for owner %s: %w", ownerID, err)
		}
		journals = append(journals, j)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal rows for owner %s: %w", ownerID, rows.Err())
	}

	return journals, nil
}

// FindTransactionsByJournalID retrieves all lines of a single journal.
func (r *PgxJournalRepository) FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE journal_id = $1 ORDER BY transaction_id;`

	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for journal %s: %w", journalID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for journal %s: %w", journalID, err)
		}
		transactions = append(transactions, txn)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows for journal %s: %w", journalID, rows.Err())
	}

	return transactions, nil
}
