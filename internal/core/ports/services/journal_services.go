package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// JournalService is the single posting gate of the ledger. Every workflow
// that wants to write to the books constructs a candidate journal and hands
// it here; nothing else mutates ledger state.
type JournalService interface {
	// CreateJournal validates and posts a journal entry. See
	// internal/apperrors for the closed set of rejection reasons.
	CreateJournal(ctx context.Context, ownerID string, req dto.CreateJournalRequest) (*domain.Journal, error)

	// GetJournalByID retrieves a journal with its transaction lines.
	GetJournalByID(ctx context.Context, ownerID string, journalID string) (*domain.Journal, error)

	// ListJournals retrieves a paginated list of journals for an owner.
	ListJournals(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Journal, error)
}
