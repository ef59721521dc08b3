package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountService interface. It is pure
// identity/metadata management for the owner's chart of accounts; no balance
// logic lives here.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepository) portssvc.AccountService {
	return &accountService{accountRepo: repo}
}

// Ensure accountService implements the AccountService interface
var _ portssvc.AccountService = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	normal := req.NormalBalance
	if normal == "" {
		normal = domain.DefaultNormalBalance(req.AccountType)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:     uuid.NewString(),
		OwnerID:       ownerID,
		Code:          req.Code,
		Name:          req.Name,
		AccountType:   req.AccountType,
		NormalBalance: normal,
		Description:   req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateAccountCode) {
			s.LogDebug(ctx, "Account code already taken",
				slog.String("owner_id", ownerID),
				slog.String("code", req.Code))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID),
			slog.String("owner_id", ownerID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("owner_id", ownerID),
		slog.String("code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}

	// Return NotFound to obscure existence from other owners
	if account.OwnerID != ownerID {
		s.LogDebug(ctx, "Account found but belongs to different owner",
			slog.String("account_id", accountID),
			slog.String("account_owner", account.OwnerID),
			slog.String("requested_owner", ownerID))
		return nil, apperrors.ErrNotFound
	}

	return account, nil
}

func (s *accountService) GetAccountByCode(ctx context.Context, ownerID string, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, ownerID, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code",
				slog.String("owner_id", ownerID),
				slog.String("code", code))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountByIDs(ctx context.Context, ownerID string, accountIDs []string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to find accounts by IDs",
			slog.String("account_ids", fmt.Sprintf("%v", accountIDs)))
		return nil, err
	}

	for _, account := range accounts {
		if account.OwnerID != ownerID {
			s.LogDebug(ctx, "Account found but belongs to different owner",
				slog.String("account_id", account.AccountID),
				slog.String("account_owner", account.OwnerID),
				slog.String("requested_owner", ownerID))
			return nil, apperrors.ErrNotFound
		}
	}

	return accounts, nil
}

func (s *accountService) ListAccounts(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, ownerID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.String("owner_id", ownerID),
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts for owner %s: %w", ownerID, err)
	}

	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, ownerID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, ownerID, accountID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for account update",
			slog.String("account_id", accountID))
		return account, nil
	}

	now := time.Now().UTC()
	account.LastUpdatedAt = now
	account.LastUpdatedBy = ownerID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully",
		slog.String("account_id", account.AccountID),
		slog.String("owner_id", ownerID))
	return account, nil
}
