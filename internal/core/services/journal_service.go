package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
)

// journalService is the only gate that protects the books' integrity. It
// holds no mutable state and is safely callable concurrently for different
// owners; atomicity of the write itself is the repository's concern.
type journalService struct {
	accountSvc  portssvc.AccountService
	journalRepo portsrepo.JournalRepository
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountSvc portssvc.AccountService) portssvc.JournalService {
	return &journalService{
		accountSvc:  accountSvc,
		journalRepo: journalRepo,
	}
}

// Ensure journalService implements the JournalService interface
var _ portssvc.JournalService = (*journalService)(nil)

// CreateJournal validates and posts a new journal entry with its transactions.
func (s *journalService) CreateJournal(ctx context.Context, ownerID string, req dto.CreateJournalRequest) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Transactions) < 2 {
		return nil, apperrors.ErrJournalMinEntries
	}

	journalDate, err := time.Parse(dto.JournalDateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid %s date", apperrors.ErrInvalidJournalDate, req.Date, dto.JournalDateFormat)
	}

	now := time.Now().UTC()
	journalID := uuid.NewString()

	domainTransactions := make([]domain.Transaction, len(req.Transactions))
	accountIDs := make([]string, 0, len(req.Transactions))
	for i, txnReq := range req.Transactions {
		domainTransactions[i] = domain.Transaction{
			TransactionID:   uuid.NewString(),
			JournalID:       journalID,
			AccountID:       txnReq.AccountID,
			Amount:          txnReq.Amount,
			TransactionType: txnReq.TransactionType,
			Notes:           txnReq.Notes,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     ownerID,
				LastUpdatedAt: now,
				LastUpdatedBy: ownerID,
			},
		}
		accountIDs = append(accountIDs, txnReq.AccountID)
	}

	// Double-entry check: debits equal credits, compared in integer cents
	if err := accounting.ValidateJournalBalance(domainTransactions); err != nil {
		return nil, err
	}

	// Every line's account must exist and belong to the posting owner
	uniqueAccountIDs := uniqueStrings(accountIDs)
	accountsMap, err := s.accountSvc.GetAccountByIDs(ctx, ownerID, uniqueAccountIDs)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: journal references an account outside owner %s", apperrors.ErrAccountNotFound, ownerID)
		}
		logger.Error("Failed to fetch accounts for journal creation", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range uniqueAccountIDs {
		if _, found := accountsMap[id]; !found {
			return nil, fmt.Errorf("%w: ID %s", apperrors.ErrAccountNotFound, id)
		}
	}

	domainJournal := domain.Journal{
		JournalID:     journalID,
		OwnerID:       ownerID,
		JournalNumber: req.JournalNumber,
		JournalDate:   journalDate,
		Description:   req.Description,
		Status:        domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	// Hand the validated journal to storage unmodified; the repository
	// persists journal and lines in one database transaction.
	if err := s.journalRepo.SaveJournal(ctx, domainJournal, domainTransactions); err != nil {
		logger.Error("Failed to save journal", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	logger.Info("Journal posted successfully",
		slog.String("journal_id", domainJournal.JournalID),
		slog.String("owner_id", ownerID),
		slog.Int("line_count", len(domainTransactions)))

	domainJournal.Transactions = domainTransactions
	return &domainJournal, nil
}

// GetJournalByID retrieves a specific journal entry with its transactions.
func (s *journalService) GetJournalByID(ctx context.Context, ownerID string, journalID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal by ID", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}

	// Obscure existence from other owners
	if journal.OwnerID != ownerID {
		logger.Warn("Journal found but belongs to different owner",
			slog.String("journal_id", journalID),
			slog.String("journal_owner", journal.OwnerID),
			slog.String("requested_owner", ownerID))
		return nil, apperrors.ErrNotFound
	}

	transactions, err := s.journalRepo.FindTransactionsByJournalID(ctx, journalID)
	if err != nil {
		logger.Error("Failed to fetch transactions for journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to retrieve transactions for journal %s: %w", journalID, apperrors.ErrInternal)
	}
	journal.Transactions = transactions

	return journal, nil
}

// ListJournals retrieves a paginated list of journals for an owner.
func (s *journalService) ListJournals(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Journal, error) {
	journals, err := s.journalRepo.ListJournalsByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list journals from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve journals: %w", err)
	}
	if journals == nil {
		return []domain.Journal{}, nil
	}
	return journals, nil
}

func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	out := make([]string, 0, len(input))
	for _, v := range input {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
