package domain

import "github.com/shopspring/decimal"

// TransactionType indicates whether a transaction line is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Transaction represents a single line item within a Journal, affecting one
// account. Amount is strictly positive with at most two decimal places; the
// sign of its effect on a balance comes from TransactionType and the
// account's normal balance. Lines belong to exactly one journal and are
// immutable once posted.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`   // Primary Key (UUID)
	JournalID       string          `json:"journalID"`       // FK -> Journal.journalID (Not Null)
	AccountID       string          `json:"accountID"`       // FK -> Account.accountID (Not Null)
	Amount          decimal.Decimal `json:"amount"`          // Positive value, max two decimal places
	TransactionType TransactionType `json:"transactionType"` // DEBIT or CREDIT (Not Null)
	Notes           string          `json:"notes"`           // Nullable
	AuditFields
}
