package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindJournalByID retrieves a specific journal by its unique identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournalsByOwner retrieves a paginated list of journals for an owner,
	// newest first.
	ListJournalsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Journal, error)
}

// JournalWriter defines write operations for journal data.
type JournalWriter interface {
	// SaveJournal persists a journal and its transaction lines atomically:
	// either all rows are written or none are.
	SaveJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error
}

// TransactionReader defines read operations for transaction line data.
type TransactionReader interface {
	// FindTransactionsByJournalID retrieves all lines of a single journal.
	FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error)
}

// JournalRepository combines all journal repository operations.
type JournalRepository interface {
	JournalReader
	JournalWriter
	TransactionReader
}
