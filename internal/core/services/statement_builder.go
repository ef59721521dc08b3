package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Well-known chart-of-accounts codes required by the owner's equity statement.
const (
	CapitalAccountCode = "301"
	DrawingAccountCode = "302"
)

// accountingEquationTolerance absorbs cent-level rounding only. It is
// intentionally tiny relative to typical amounts so it can never mask a
// genuinely unbalanced ledger.
var accountingEquationTolerance = decimal.NewFromFloat(0.01)

// isContraAsset reports whether an asset account offsets its category's
// total, e.g. Accumulated Depreciation. Name-based heuristic.
func isContraAsset(a domain.Account) bool {
	name := strings.ToLower(a.Name)
	return strings.Contains(name, "accumulated") || strings.Contains(name, "depreciation")
}

// groupByAccount indexes transaction lines by their account ID.
func groupByAccount(txns []domain.Transaction) map[string][]domain.Transaction {
	grouped := make(map[string][]domain.Transaction)
	for _, txn := range txns {
		grouped[txn.AccountID] = append(grouped[txn.AccountID], txn)
	}
	return grouped
}

func sortStatementLines(lines []domain.StatementLine) {
	sort.Slice(lines, func(i, j int) bool { return lines[i].Code < lines[j].Code })
}

// BuildIncomeStatement composes revenue and expense period balances into an
// income statement. The lines must already be windowed to [from, to]; the
// function itself is pure. Zero-balance accounts are dropped.
func BuildIncomeStatement(accounts []domain.Account, txns []domain.Transaction, from, to time.Time) *domain.IncomeStatement {
	grouped := groupByAccount(txns)

	report := &domain.IncomeStatement{
		FromDate: from,
		ToDate:   to,
		Revenue:  []domain.StatementLine{},
		Expenses: []domain.StatementLine{},
	}

	totalRevenue := decimal.Zero
	totalExpenses := decimal.Zero
	for _, acc := range accounts {
		if acc.AccountType != domain.Revenue && acc.AccountType != domain.Expense {
			continue
		}
		balance := accounting.AccountBalance(acc, grouped[acc.AccountID])
		if balance.IsZero() {
			continue
		}
		line := domain.StatementLine{AccountID: acc.AccountID, Code: acc.Code, Name: acc.Name, Amount: balance}
		if acc.AccountType == domain.Revenue {
			report.Revenue = append(report.Revenue, line)
			totalRevenue = totalRevenue.Add(balance)
		} else {
			report.Expenses = append(report.Expenses, line)
			totalExpenses = totalExpenses.Add(balance)
		}
	}

	sortStatementLines(report.Revenue)
	sortStatementLines(report.Expenses)

	report.TotalRevenue = totalRevenue
	report.TotalExpenses = totalExpenses
	report.NetIncome = totalRevenue.Sub(totalExpenses)
	return report
}

// BuildBalanceSheet composes cumulative balances (through asOf) into a
// balance sheet. Cumulative net income appears as a synthetic Retained
// Earnings equity line rather than a persisted account; this keeps the
// revenue/expense history as the single source of truth for equity.
// Fails with ErrAccountingEquation when assets do not equal liabilities
// plus equity within cent-rounding tolerance.
func BuildBalanceSheet(accounts []domain.Account, txns []domain.Transaction, asOf time.Time) (*domain.BalanceSheet, error) {
	grouped := groupByAccount(txns)

	report := &domain.BalanceSheet{
		AsOf:        asOf,
		Assets:      []domain.StatementLine{},
		Liabilities: []domain.StatementLine{},
		Equity:      []domain.StatementLine{},
	}

	totalAssets := decimal.Zero
	totalLiabilities := decimal.Zero
	totalEquity := decimal.Zero
	retainedEarnings := decimal.Zero

	for _, acc := range accounts {
		balance := accounting.AccountBalance(acc, grouped[acc.AccountID])
		line := domain.StatementLine{AccountID: acc.AccountID, Code: acc.Code, Name: acc.Name, Amount: balance}

		switch acc.AccountType {
		case domain.Asset:
			if isContraAsset(acc) {
				line.Amount = balance.Neg()
			}
			report.Assets = append(report.Assets, line)
			totalAssets = totalAssets.Add(line.Amount)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, line)
			totalLiabilities = totalLiabilities.Add(line.Amount)
		case domain.Equity:
			// Contra-equity (debit-normal, e.g. owner drawings) reduces equity
			if acc.NormalBalance == domain.DebitNormal {
				line.Amount = balance.Neg()
			}
			report.Equity = append(report.Equity, line)
			totalEquity = totalEquity.Add(line.Amount)
		case domain.Revenue:
			retainedEarnings = retainedEarnings.Add(balance)
		case domain.Expense:
			retainedEarnings = retainedEarnings.Sub(balance)
		}
	}

	sortStatementLines(report.Assets)
	sortStatementLines(report.Liabilities)
	sortStatementLines(report.Equity)

	report.Equity = append(report.Equity, domain.StatementLine{
		Name:   "Retained Earnings",
		Amount: retainedEarnings,
	})
	totalEquity = totalEquity.Add(retainedEarnings)

	report.TotalAssets = totalAssets
	report.TotalLiabilities = totalLiabilities
	report.TotalEquity = totalEquity

	difference := totalAssets.Sub(totalLiabilities.Add(totalEquity)).Abs()
	if difference.GreaterThan(accountingEquationTolerance) {
		return nil, fmt.Errorf("%w: assets %s, liabilities %s, equity %s",
			apperrors.ErrAccountingEquation, totalAssets.String(), totalLiabilities.String(), totalEquity.String())
	}

	return report, nil
}

// BuildOwnersEquity computes the capital roll-forward for a period. The
// inputs are balances the caller has already derived; the formula is exact:
// ending = beginning + contributions + netIncome - drawings.
func BuildOwnersEquity(beginningCapital, contributions, netIncome, drawings decimal.Decimal, from, to time.Time) *domain.OwnersEquityStatement {
	return &domain.OwnersEquityStatement{
		FromDate:         from,
		ToDate:           to,
		BeginningCapital: beginningCapital,
		Contributions:    contributions,
		NetIncome:        netIncome,
		Drawings:         drawings,
		EndingCapital:    beginningCapital.Add(contributions).Add(netIncome).Sub(drawings),
	}
}

// BuildCashFlowStatement classifies each journal touching the cash account
// by the account types of its counterpart (non-cash) lines:
// revenue/expense counterparts mean operating activity, non-cash asset
// counterparts investing, liability/equity counterparts financing. A journal
// mixing buckets is classified by the largest counterpart amount, with
// operating winning ties. Requires whole journals, not just the cash lines,
// which is why the reporting repository joins them in.
func BuildCashFlowStatement(cashAccount domain.Account, journals []domain.Journal, accountsByID map[string]domain.Account, beginningCash decimal.Decimal, from, to time.Time) *domain.CashFlowStatement {
	report := &domain.CashFlowStatement{
		FromDate:  from,
		ToDate:    to,
		Operating: []domain.CashFlowLine{},
		Investing: []domain.CashFlowLine{},
		Financing: []domain.CashFlowLine{},
	}

	sorted := make([]domain.Journal, len(journals))
	copy(sorted, journals)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].JournalDate.Equal(sorted[j].JournalDate) {
			return sorted[i].JournalDate.Before(sorted[j].JournalDate)
		}
		return sorted[i].JournalID < sorted[j].JournalID
	})

	totalOperating := decimal.Zero
	totalInvesting := decimal.Zero
	totalFinancing := decimal.Zero

	for _, journal := range sorted {
		cashEffect := decimal.Zero
		operatingWeight := decimal.Zero
		investingWeight := decimal.Zero
		financingWeight := decimal.Zero

		for _, txn := range journal.Transactions {
			if txn.AccountID == cashAccount.AccountID {
				cashEffect = cashEffect.Add(accounting.SignedAmount(txn, cashAccount.NormalBalance))
				continue
			}
			counterpart, ok := accountsByID[txn.AccountID]
			if !ok {
				continue
			}
			switch counterpart.AccountType {
			case domain.Revenue, domain.Expense:
				operatingWeight = operatingWeight.Add(txn.Amount)
			case domain.Asset:
				investingWeight = investingWeight.Add(txn.Amount)
			case domain.Liability, domain.Equity:
				financingWeight = financingWeight.Add(txn.Amount)
			}
		}

		if cashEffect.IsZero() {
			continue
		}

		line := domain.CashFlowLine{
			JournalID:   journal.JournalID,
			Date:        journal.JournalDate,
			Description: journal.Description,
			Amount:      cashEffect,
		}

		switch {
		case operatingWeight.GreaterThanOrEqual(investingWeight) && operatingWeight.GreaterThanOrEqual(financingWeight):
			report.Operating = append(report.Operating, line)
			totalOperating = totalOperating.Add(cashEffect)
		case investingWeight.GreaterThanOrEqual(financingWeight):
			report.Investing = append(report.Investing, line)
			totalInvesting = totalInvesting.Add(cashEffect)
		default:
			report.Financing = append(report.Financing, line)
			totalFinancing = totalFinancing.Add(cashEffect)
		}
	}

	report.TotalOperating = totalOperating
	report.TotalInvesting = totalInvesting
	report.TotalFinancing = totalFinancing
	report.NetCashChange = totalOperating.Add(totalInvesting).Add(totalFinancing)
	report.BeginningCash = beginningCash
	report.EndingCash = beginningCash.Add(report.NetCashChange)
	return report
}

// BuildTrialBalance sums debit and credit columns per account. Accounts with
// no activity in the window are omitted, matching the grouped ledger query a
// SQL implementation would produce.
func BuildTrialBalance(accounts []domain.Account, txns []domain.Transaction) []domain.TrialBalanceRow {
	grouped := groupByAccount(txns)

	rows := make([]domain.TrialBalanceRow, 0, len(accounts))
	for _, acc := range accounts {
		lines, ok := grouped[acc.AccountID]
		if !ok {
			continue
		}
		debit := decimal.Zero
		credit := decimal.Zero
		for _, txn := range lines {
			if txn.TransactionType == domain.Debit {
				debit = debit.Add(txn.Amount)
			} else {
				credit = credit.Add(txn.Amount)
			}
		}
		rows = append(rows, domain.TrialBalanceRow{
			AccountID:   acc.AccountID,
			Code:        acc.Code,
			AccountName: acc.Name,
			AccountType: acc.AccountType,
			Debit:       debit,
			Credit:      credit,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Code < rows[j].Code })
	return rows
}
