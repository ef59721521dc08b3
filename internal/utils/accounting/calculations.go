package accounting

import (
	"fmt"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the correct sign to a transaction amount based on the
// account's normal balance.
// DEBIT line on a DEBIT-normal account  -> Positive (+)
// CREDIT line on a DEBIT-normal account -> Negative (-)
// DEBIT line on a CREDIT-normal account  -> Negative (-)
// CREDIT line on a CREDIT-normal account -> Positive (+)
func SignedAmount(txn domain.Transaction, normal domain.NormalBalance) decimal.Decimal {
	isDebit := txn.TransactionType == domain.Debit
	if (isDebit && normal == domain.DebitNormal) || (!isDebit && normal == domain.CreditNormal) {
		return txn.Amount
	}
	return txn.Amount.Neg()
}

// AccountBalance folds the signed amounts of the given lines into a single
// balance for the account. The caller chooses the window by choosing the
// lines: everything through an as-of date yields a cumulative balance, a
// [start, end] slice yields the period delta. Pure summation, so the result
// is independent of line order and exact for cent amounts.
func AccountBalance(account domain.Account, txns []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range txns {
		balance = balance.Add(SignedAmount(txn, account.NormalBalance))
	}
	return balance
}

// HasCentPrecision reports whether d has at most two decimal places.
func HasCentPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

// Cents returns d as an exact integer number of cents. Callers must have
// validated HasCentPrecision first.
func Cents(d decimal.Decimal) int64 {
	return d.Shift(2).IntPart()
}

// ValidateJournalBalance checks that a set of journal lines is admissible:
// at least two lines, every amount strictly positive with cent precision,
// and total debits equal to total credits. Sums are compared as integer
// cents, never as floats.
func ValidateJournalBalance(transactions []domain.Transaction) error {
	if len(transactions) < 2 {
		return apperrors.ErrJournalMinEntries
	}

	var debitCents, creditCents int64
	for _, txn := range transactions {
		if txn.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: transaction amount must be positive for account %s", apperrors.ErrValidation, txn.AccountID)
		}
		if !HasCentPrecision(txn.Amount) {
			return fmt.Errorf("%w: transaction amount %s has more than two decimal places", apperrors.ErrValidation, txn.Amount.String())
		}
		if txn.TransactionType == domain.Debit {
			debitCents += Cents(txn.Amount)
		} else {
			creditCents += Cents(txn.Amount)
		}
	}

	if debitCents != creditCents {
		return fmt.Errorf("%w: debits sum is %d cents and credits sum is %d cents",
			apperrors.ErrJournalUnbalanced, debitCents, creditCents)
	}

	return nil
}
