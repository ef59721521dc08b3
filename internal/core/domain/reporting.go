package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is an account with its signed balance as it appears on a
// financial statement. Synthetic lines (e.g. Retained Earnings) carry an
// empty AccountID.
type StatementLine struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// IncomeStatement reports revenue and expense activity over a period.
type IncomeStatement struct {
	FromDate      time.Time       `json:"fromDate"`
	ToDate        time.Time       `json:"toDate"`
	Revenue       []StatementLine `json:"revenue"`
	Expenses      []StatementLine `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// BalanceSheet reports financial position as of a date. Equity includes a
// synthetic Retained Earnings line equal to cumulative net income; the
// builder guarantees TotalAssets = TotalLiabilities + TotalEquity within a
// cent-rounding tolerance.
type BalanceSheet struct {
	AsOf             time.Time       `json:"asOf"`
	Assets           []StatementLine `json:"assets"`
	Liabilities      []StatementLine `json:"liabilities"`
	Equity           []StatementLine `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// OwnersEquityStatement reports the capital roll-forward over a period:
// EndingCapital = BeginningCapital + Contributions + NetIncome - Drawings.
type OwnersEquityStatement struct {
	FromDate         time.Time       `json:"fromDate"`
	ToDate           time.Time       `json:"toDate"`
	BeginningCapital decimal.Decimal `json:"beginningCapital"`
	Contributions    decimal.Decimal `json:"contributions"`
	NetIncome        decimal.Decimal `json:"netIncome"`
	Drawings         decimal.Decimal `json:"drawings"`
	EndingCapital    decimal.Decimal `json:"endingCapital"`
}

// CashFlowLine is one journal's net effect on cash within an activity bucket.
type CashFlowLine struct {
	JournalID   string          `json:"journalID"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // Signed cash effect: inflow positive
}

// CashFlowStatement reports cash movement over a period, classified by the
// counterpart accounts of each cash-affecting journal.
type CashFlowStatement struct {
	FromDate       time.Time       `json:"fromDate"`
	ToDate         time.Time       `json:"toDate"`
	Operating      []CashFlowLine  `json:"operating"`
	Investing      []CashFlowLine  `json:"investing"`
	Financing      []CashFlowLine  `json:"financing"`
	TotalOperating decimal.Decimal `json:"totalOperating"`
	TotalInvesting decimal.Decimal `json:"totalInvesting"`
	TotalFinancing decimal.Decimal `json:"totalFinancing"`
	NetCashChange  decimal.Decimal `json:"netCashChange"`
	BeginningCash  decimal.Decimal `json:"beginningCash"`
	EndingCash     decimal.Decimal `json:"endingCash"`
}

// TrialBalanceRow represents a single row in a trial balance report.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}
