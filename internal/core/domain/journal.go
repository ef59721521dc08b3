package domain

import "time"

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Posted JournalStatus = "POSTED"
)

// Journal represents a single, balanced financial event composed of at least
// two transaction lines. Once posted it is never amended in place;
// corrections are new journals.
type Journal struct {
	JournalID     string        `json:"journalID"`     // Primary Key (UUID)
	OwnerID       string        `json:"ownerID"`       // Owning user reference (NON-NULL)
	JournalNumber string        `json:"journalNumber"` // Optional human-readable number
	JournalDate   time.Time     `json:"journalDate"`   // Date the event occurred
	Description   string        `json:"description"`
	Status        JournalStatus `json:"status"` // Default: Posted
	Transactions  []Transaction `json:"transactions,omitempty"`
	AuditFields
}
