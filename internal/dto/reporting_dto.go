package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementLineResponse represents an account line on a financial statement.
type StatementLineResponse struct {
	AccountID string          `json:"accountID,omitempty"`
	Code      string          `json:"code,omitempty"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// IncomeStatementResponse represents the income statement report response.
type IncomeStatementResponse struct {
	FromDate string                  `json:"fromDate"`
	ToDate   string                  `json:"toDate"`
	Revenue  []StatementLineResponse `json:"revenue"`
	Expenses []StatementLineResponse `json:"expenses"`
	Summary  struct {
		TotalRevenue  decimal.Decimal `json:"totalRevenue"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		NetIncome     decimal.Decimal `json:"netIncome"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report response.
type BalanceSheetResponse struct {
	AsOf        string                  `json:"asOf"`
	Assets      []StatementLineResponse `json:"assets"`
	Liabilities []StatementLineResponse `json:"liabilities"`
	Equity      []StatementLineResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
	} `json:"summary"`
}

// OwnersEquityResponse represents the statement of owner's equity response.
type OwnersEquityResponse struct {
	FromDate         string          `json:"fromDate"`
	ToDate           string          `json:"toDate"`
	BeginningCapital decimal.Decimal `json:"beginningCapital"`
	Contributions    decimal.Decimal `json:"contributions"`
	NetIncome        decimal.Decimal `json:"netIncome"`
	Drawings         decimal.Decimal `json:"drawings"`
	EndingCapital    decimal.Decimal `json:"endingCapital"`
}

// CashFlowLineResponse represents one journal's cash effect in a bucket.
type CashFlowLineResponse struct {
	JournalID   string          `json:"journalID"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CashFlowResponse represents the statement of cash flows response.
type CashFlowResponse struct {
	FromDate  string                 `json:"fromDate"`
	ToDate    string                 `json:"toDate"`
	Operating []CashFlowLineResponse `json:"operating"`
	Investing []CashFlowLineResponse `json:"investing"`
	Financing []CashFlowLineResponse `json:"financing"`
	Summary   struct {
		TotalOperating decimal.Decimal `json:"totalOperating"`
		TotalInvesting decimal.Decimal `json:"totalInvesting"`
		TotalFinancing decimal.Decimal `json:"totalFinancing"`
		NetCashChange  decimal.Decimal `json:"netCashChange"`
		BeginningCash  decimal.Decimal `json:"beginningCash"`
		EndingCash     decimal.Decimal `json:"endingCash"`
	} `json:"summary"`
}

// TrialBalanceRowResponse represents a row in the trial balance response.
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response.
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

func toStatementLineResponses(lines []domain.StatementLine) []StatementLineResponse {
	res := make([]StatementLineResponse, len(lines))
	for i, l := range lines {
		res[i] = StatementLineResponse{
			AccountID: l.AccountID,
			Code:      l.Code,
			Name:      l.Name,
			Amount:    l.Amount,
		}
	}
	return res
}

// ToIncomeStatementResponse converts a domain income statement to a DTO response.
func ToIncomeStatementResponse(report *domain.IncomeStatement) IncomeStatementResponse {
	response := IncomeStatementResponse{
		FromDate: report.FromDate.Format(JournalDateFormat),
		ToDate:   report.ToDate.Format(JournalDateFormat),
		Revenue:  toStatementLineResponses(report.Revenue),
		Expenses: toStatementLineResponses(report.Expenses),
	}
	response.Summary.TotalRevenue = report.TotalRevenue
	response.Summary.TotalExpenses = report.TotalExpenses
	response.Summary.NetIncome = report.NetIncome
	return response
}

// ToBalanceSheetResponse converts a domain balance sheet to a DTO response.
func ToBalanceSheetResponse(report *domain.BalanceSheet) BalanceSheetResponse {
	response := BalanceSheetResponse{
		AsOf:        report.AsOf.Format(JournalDateFormat),
		Assets:      toStatementLineResponses(report.Assets),
		Liabilities: toStatementLineResponses(report.Liabilities),
		Equity:      toStatementLineResponses(report.Equity),
	}
	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	return response
}

// ToOwnersEquityResponse converts a domain owner's equity statement to a DTO response.
func ToOwnersEquityResponse(report *domain.OwnersEquityStatement) OwnersEquityResponse {
	return OwnersEquityResponse{
		FromDate:         report.FromDate.Format(JournalDateFormat),
		ToDate:           report.ToDate.Format(JournalDateFormat),
		BeginningCapital: report.BeginningCapital,
		Contributions:    report.Contributions,
		NetIncome:        report.NetIncome,
		Drawings:         report.Drawings,
		EndingCapital:    report.EndingCapital,
	}
}

func toCashFlowLineResponses(lines []domain.CashFlowLine) []CashFlowLineResponse {
	res := make([]CashFlowLineResponse, len(lines))
	for i, l := range lines {
		res[i] = CashFlowLineResponse{
			JournalID:   l.JournalID,
			Date:        l.Date.Format(JournalDateFormat),
			Description: l.Description,
			Amount:      l.Amount,
		}
	}
	return res
}

// ToCashFlowResponse converts a domain cash flow statement to a DTO response.
func ToCashFlowResponse(report *domain.CashFlowStatement) CashFlowResponse {
	response := CashFlowResponse{
		FromDate:  report.FromDate.Format(JournalDateFormat),
		ToDate:    report.ToDate.Format(JournalDateFormat),
		Operating: toCashFlowLineResponses(report.Operating),
		Investing: toCashFlowLineResponses(report.Investing),
		Financing: toCashFlowLineResponses(report.Financing),
	}
	response.Summary.TotalOperating = report.TotalOperating
	response.Summary.TotalInvesting = report.TotalInvesting
	response.Summary.TotalFinancing = report.TotalFinancing
	response.Summary.NetCashChange = report.NetCashChange
	response.Summary.BeginningCash = report.BeginningCash
	response.Summary.EndingCash = report.EndingCash
	return response
}

// ToTrialBalanceResponse converts domain trial balance rows to a DTO response.
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow, asOf time.Time) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf: asOf.Format(JournalDateFormat),
		Rows: make([]TrialBalanceRowResponse, len(rows)),
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, row := range rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			Code:        row.Code,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}

	response.Totals.Debit = totalDebit
	response.Totals.Credit = totalCredit
	return response
}
