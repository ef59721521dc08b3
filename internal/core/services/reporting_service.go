package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	BaseService
	accountRepo   portsrepo.AccountReader
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(accountRepo portsrepo.AccountReader, reportingRepo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func validateDateRange(from, to time.Time) error {
	if to.Before(from) {
		return fmt.Errorf("%w: from %s is after to %s",
			apperrors.ErrInvalidDateRange, from.Format(dto.JournalDateFormat), to.Format(dto.JournalDateFormat))
	}
	return nil
}

// IncomeStatement reports revenue and expense activity for [from, to].
func (s *reportingService) IncomeStatement(ctx context.Context, ownerID string, from, to time.Time) (*domain.IncomeStatement, error) {
	if err := validateDateRange(from, to); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, ownerID, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "failed to list accounts for income statement", "ownerID", ownerID)
		return nil, err
	}
	txns, err := s.reportingRepo.FindTransactionsInWindow(ctx, ownerID, from, to)
	if err != nil {
		s.LogError(ctx, err, "failed to fetch transactions for income statement", "ownerID", ownerID)
		return nil, err
	}

	report := BuildIncomeStatement(accounts, txns, from, to)
	s.LogDebug(ctx, "built income statement", "ownerID", ownerID, "netIncome", report.NetIncome.String())
	return report, nil
}

// BalanceSheet reports financial position as of a date.
func (s *reportingService) BalanceSheet(ctx context.Context, ownerID string, asOf time.Time) (*domain.BalanceSheet, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, ownerID, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "failed to list accounts for balance sheet", "ownerID", ownerID)
		return nil, err
	}
	txns, err := s.reportingRepo.FindTransactionsThroughDate(ctx, ownerID, asOf)
	if err != nil {
		s.LogError(ctx, err, "failed to fetch transactions for balance sheet", "ownerID", ownerID)
		return nil, err
	}

	report, err := BuildBalanceSheet(accounts, txns, asOf)
	if err != nil {
		s.LogError(ctx, err, "balance sheet failed integrity check", "ownerID", ownerID, "asOf", asOf.Format(dto.JournalDateFormat))
		return nil, err
	}
	return report, nil
}

// OwnersEquity reports the capital roll-forward for [from, to]. It requires
// the owner's chart of accounts to carry the standard capital and drawing
// accounts under their well-known codes.
func (s *reportingService) OwnersEquity(ctx context.Context, ownerID string, from, to time.Time) (*domain.OwnersEquityStatement, error) {
	if err := validateDateRange(from, to); err != nil {
		return nil, err
	}

	capitalAccount, err := s.accountRepo.FindAccountByCode(ctx, ownerID, CapitalAccountCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no account with code %s", apperrors.ErrMissingCapitalAccount, CapitalAccountCode)
		}
		s.LogError(ctx, err, "failed to find capital account", "ownerID", ownerID)
		return nil, err
	}
	drawingAccount, err := s.accountRepo.FindAccountByCode(ctx, ownerID, DrawingAccountCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no account with code %s", apperrors.ErrMissingDrawingAccount, DrawingAccountCode)
		}
		s.LogError(ctx, err, "failed to find drawing account", "ownerID", ownerID)
		return nil, err
	}

	priorTxns, err := s.reportingRepo.FindTransactionsThroughDate(ctx, ownerID, from.AddDate(0, 0, -1))
	if err != nil {
		s.LogError(ctx, err, "failed to fetch opening balances for owner's equity", "ownerID", ownerID)
		return nil, err
	}
	windowTxns, err := s.reportingRepo.FindTransactionsInWindow(ctx, ownerID, from, to)
	if err != nil {
		s.LogError(ctx, err, "failed to fetch period transactions for owner's equity", "ownerID", ownerID)
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, ownerID, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "failed to list accounts for owner's equity", "ownerID", ownerID)
		return nil, err
	}

	// Beginning capital is the capital account's cumulative balance at period
	// start; contributions and drawings are period deltas on their accounts.
	beginningCapital := accounting.AccountBalance(*capitalAccount, transactionsForAccount(priorTxns, capitalAccount.AccountID))
	contributions := accounting.AccountBalance(*capitalAccount, transactionsForAccount(windowTxns, capitalAccount.AccountID))
	drawings := accounting.AccountBalance(*drawingAccount, transactionsForAccount(windowTxns, drawingAccount.AccountID))
	netIncome := netIncomeOf(accounts, windowTxns)

	return BuildOwnersEquity(beginningCapital, contributions, netIncome, drawings, from, to), nil
}

// CashFlow reports classified cash movement for [from, to].
func (s *reportingService) CashFlow(ctx context.Context, ownerID string, from, to time.Time) (*domain.CashFlowStatement, error) {
	if err := validateDateRange(from, to); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, ownerID, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "failed to list accounts for cash flow statement", "ownerID", ownerID)
		return nil, err
	}

	cashAccount, ok := findCashAccount(accounts)
	if !ok {
		return nil, fmt.Errorf("%w: no asset account resembling cash for owner", apperrors.ErrCashAccountNotFound)
	}

	priorTxns, err := s.reportingRepo.FindTransactionsThroughDate(ctx, ownerID, from.AddDate(0, 0, -1))
	if err != nil {
		s.LogError(ctx, err, "failed to fetch opening cash balance", "ownerID", ownerID)
		return nil, err
	}
	beginningCash := accounting.AccountBalance(cashAccount, transactionsForAccount(priorTxns, cashAccount.AccountID))

	journals, err := s.reportingRepo.FindJournalsForAccountInWindow(ctx, ownerID, cashAccount.AccountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "failed to fetch cash journals", "ownerID", ownerID)
		return nil, err
	}

	accountsByID := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		accountsByID[acc.AccountID] = acc
	}

	report := BuildCashFlowStatement(cashAccount, journals, accountsByID, beginningCash, from, to)
	s.LogDebug(ctx, "built cash flow statement", "ownerID", ownerID, "netCashChange", report.NetCashChange.String())
	return report, nil
}

// TrialBalance reports per-account debit and credit totals as of a date.
func (s *reportingService) TrialBalance(ctx context.Context, ownerID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, ownerID, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "failed to list accounts for trial balance", "ownerID", ownerID)
		return nil, err
	}
	txns, err := s.reportingRepo.FindTransactionsThroughDate(ctx, ownerID, asOf)
	if err != nil {
		s.LogError(ctx, err, "failed to fetch transactions for trial balance", "ownerID", ownerID)
		return nil, err
	}
	return BuildTrialBalance(accounts, txns), nil
}

// AccountBalance computes one account's signed balance, cumulative through
// asOf when from is nil or as a period delta over [from, asOf].
func (s *reportingService) AccountBalance(ctx context.Context, ownerID string, accountID string, from *time.Time, asOf time.Time) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	if account.OwnerID != ownerID {
		// Hide accounts belonging to other owners.
		return decimal.Zero, apperrors.ErrNotFound
	}

	var txns []domain.Transaction
	if from == nil {
		txns, err = s.reportingRepo.FindTransactionsThroughDate(ctx, ownerID, asOf)
	} else {
		if err := validateDateRange(*from, asOf); err != nil {
			return decimal.Zero, err
		}
		txns, err = s.reportingRepo.FindTransactionsInWindow(ctx, ownerID, *from, asOf)
	}
	if err != nil {
		s.LogError(ctx, err, "failed to fetch transactions for account balance", "ownerID", ownerID, "accountID", accountID)
		return decimal.Zero, err
	}

	return accounting.AccountBalance(*account, transactionsForAccount(txns, accountID)), nil
}

// findCashAccount picks the lowest-coded asset account whose name mentions
// cash. Chart-of-accounts conventions put the primary cash account first.
func findCashAccount(accounts []domain.Account) (domain.Account, bool) {
	var best domain.Account
	found := false
	for _, acc := range accounts {
		if acc.AccountType != domain.Asset {
			continue
		}
		if !strings.Contains(strings.ToLower(acc.Name), "cash") {
			continue
		}
		if !found || acc.Code < best.Code {
			best = acc
			found = true
		}
	}
	return best, found
}

func transactionsForAccount(txns []domain.Transaction, accountID string) []domain.Transaction {
	var matched []domain.Transaction
	for _, txn := range txns {
		if txn.AccountID == accountID {
			matched = append(matched, txn)
		}
	}
	return matched
}

func netIncomeOf(accounts []domain.Account, txns []domain.Transaction) decimal.Decimal {
	grouped := groupByAccount(txns)
	net := decimal.Zero
	for _, acc := range accounts {
		switch acc.AccountType {
		case domain.Revenue:
			net = net.Add(accounting.AccountBalance(acc, grouped[acc.AccountID]))
		case domain.Expense:
			net = net.Sub(accounting.AccountBalance(acc, grouped[acc.AccountID]))
		}
	}
	return net
}
