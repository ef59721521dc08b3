package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// AccountService defines operations on an owner's chart of accounts.
type AccountService interface {
	// CreateAccount registers a new account. Fails with
	// apperrors.ErrDuplicateAccountCode if the code is taken within the owner.
	CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves an account, scoped to the owner.
	GetAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error)

	// GetAccountByCode retrieves an account by chart-of-accounts code.
	GetAccountByCode(ctx context.Context, ownerID string, code string) (*domain.Account, error)

	// GetAccountByIDs retrieves multiple accounts, all scoped to the owner.
	GetAccountByIDs(ctx context.Context, ownerID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves accounts for an owner.
	ListAccounts(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Account, error)

	// UpdateAccount updates the mutable fields of an account (name, description).
	UpdateAccount(ctx context.Context, ownerID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
}
