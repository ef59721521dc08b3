package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its chart-of-accounts code within an owner.
	FindAccountByCode(ctx context.Context, ownerID string, code string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves accounts for an owner. limit <= 0 means no limit.
	ListAccounts(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount persists a new account. Returns ErrDuplicateAccountCode when
	// the (owner, code) pair is already taken.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates the mutable fields of an existing account (name,
	// description).
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepository combines all account repository operations.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
