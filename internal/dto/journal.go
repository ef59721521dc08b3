package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalDateFormat is the wire format for journal and report dates.
const JournalDateFormat = "2006-01-02"

// CreateTransactionRequest defines a single line of a candidate journal.
type CreateTransactionRequest struct {
	AccountID       string                 `json:"accountID" binding:"required"`
	Amount          decimal.Decimal        `json:"amount" binding:"required,gt=0"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=DEBIT CREDIT"`
	Notes           string                 `json:"notes"`
}

// CreateJournalRequest defines the data needed to post a journal entry.
// Date is kept as a string so the poster itself can reject an invalid
// calendar date rather than the JSON binding layer.
type CreateJournalRequest struct {
	JournalNumber string                     `json:"journalNumber"` // Optional human-readable number
	Description   string                     `json:"description" binding:"required"`
	Date          string                     `json:"date" binding:"required"` // YYYY-MM-DD
	Transactions  []CreateTransactionRequest `json:"transactions" binding:"required,dive"`
}

// TransactionResponse defines the data returned for a transaction line.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	AccountID       string                 `json:"accountID"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Notes           string                 `json:"notes,omitempty"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID     string                `json:"journalID"`
	JournalNumber string                `json:"journalNumber,omitempty"`
	Date          time.Time             `json:"date"`
	Description   string                `json:"description"`
	Status        domain.JournalStatus  `json:"status"`
	Transactions  []TransactionResponse `json:"transactions,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// ListJournalsParams defines query parameters for listing journals.
type ListJournalsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListJournalsResponse wraps the list of journals.
type ListJournalsResponse struct {
	Journals []JournalResponse `json:"journals"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		AccountID:       txn.AccountID,
		Amount:          txn.Amount,
		TransactionType: txn.TransactionType,
		Notes:           txn.Notes,
	}
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:     j.JournalID,
		JournalNumber: j.JournalNumber,
		Date:          j.JournalDate,
		Description:   j.Description,
		Status:        j.Status,
		CreatedAt:     j.CreatedAt,
	}
	if len(j.Transactions) > 0 {
		resp.Transactions = make([]TransactionResponse, len(j.Transactions))
		for i, txn := range j.Transactions {
			resp.Transactions[i] = ToTransactionResponse(&txn)
		}
	}
	return resp
}

// ToListJournalsResponse converts a slice of domain.Journal to a list response.
func ToListJournalsResponse(journals []domain.Journal) ListJournalsResponse {
	resp := ListJournalsResponse{Journals: make([]JournalResponse, len(journals))}
	for i, j := range journals {
		resp.Journals[i] = ToJournalResponse(&j)
	}
	return resp
}
