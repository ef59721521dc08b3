package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// NormalBalance is the side on which an account naturally increases.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DEBIT"
	CreditNormal NormalBalance = "CREDIT"
)

// DefaultNormalBalance returns the conventional normal balance for an account
// type: Asset/Expense increase on debit, Liability/Equity/Revenue on credit.
func DefaultNormalBalance(t AccountType) NormalBalance {
	switch t {
	case Asset, Expense:
		return DebitNormal
	default:
		return CreditNormal
	}
}

// Account represents one entry of an owner's chart of accounts.
// Code is unique within an owner. Everything except Name and Description is
// immutable after creation.
type Account struct {
	AccountID     string        `json:"accountID"`     // Primary Key (UUID)
	OwnerID       string        `json:"ownerID"`       // Owning user reference (NON-NULL)
	Code          string        `json:"code"`          // Chart-of-accounts code, unique per owner
	Name          string        `json:"name"`          // User-defined name
	AccountType   AccountType   `json:"accountType"`   // ASSET, LIABILITY, etc.
	NormalBalance NormalBalance `json:"normalBalance"` // DEBIT or CREDIT
	Description   string        `json:"description"`   // Nullable user description
	AuditFields
}
