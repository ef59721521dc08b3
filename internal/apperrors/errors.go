package apperrors

import "errors"

// Generic error kinds. Handlers map these onto HTTP status codes.

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// Ledger business-rule violations. This is a closed set: every rule the
// engine enforces has exactly one sentinel here, so callers can dispatch
// with errors.Is instead of string comparison.
var (
	// ErrJournalMinEntries is returned when a journal carries fewer than two lines.
	ErrJournalMinEntries = errors.New("journal must have at least two transaction entries")

	// ErrJournalUnbalanced is returned when the debit lines of a journal do not
	// sum to its credit lines, compared in integer cents.
	ErrJournalUnbalanced = errors.New("journal entries do not balance")

	// ErrAccountNotFound is returned when a journal line references an account
	// that does not exist or belongs to a different owner.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccountCode is returned when an account code is already taken
	// within the owner's chart of accounts.
	ErrDuplicateAccountCode = errors.New("account code already exists for owner")

	// ErrInvalidJournalDate is returned when a journal date is missing or not a
	// valid calendar date. Future dates are not rejected here.
	ErrInvalidJournalDate = errors.New("invalid journal entry date")

	// ErrInvalidDateRange is returned when a reporting period starts after it ends.
	ErrInvalidDateRange = errors.New("start date must not be after end date")

	// ErrAccountingEquation is returned when a balance sheet fails
	// assets = liabilities + equity beyond cent-rounding tolerance.
	ErrAccountingEquation = errors.New("accounting equation violated")

	// ErrMissingCapitalAccount is returned when the owner's chart of accounts has
	// no capital account for the owner's equity statement.
	ErrMissingCapitalAccount = errors.New("capital account not found")

	// ErrMissingDrawingAccount is returned when the owner's chart of accounts has
	// no drawing account for the owner's equity statement.
	ErrMissingDrawingAccount = errors.New("drawing account not found")

	// ErrCashAccountNotFound is returned when no cash account exists for the
	// statement of cash flows.
	ErrCashAccountNotFound = errors.New("cash account not found")
)

// AppError carries an HTTP-ish status code alongside a wrapped cause.
// Repositories use it to surface storage failures without losing the cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
