package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial statements.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial statements.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/owners-equity", h.getOwnersEquity)
		reports.GET("/cash-flow", h.getCashFlow)
		reports.GET("/trial-balance", h.getTrialBalance)
	}
}

// parsePeriod reads fromDate/toDate query params, defaulting to the current
// month-to-date. Returns false after writing a 400 response on bad input.
func parsePeriod(c *gin.Context, logger *slog.Logger) (time.Time, time.Time, bool) {
	now := time.Now()
	firstDayOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	fromStr := c.DefaultQuery("fromDate", firstDayOfMonth.Format(dto.JournalDateFormat))
	from, err := time.Parse(dto.JournalDateFormat, fromStr)
	if err != nil {
		logger.Warn("Invalid fromDate format", slog.String("fromDate", fromStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fromDate format. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}

	toStr := c.DefaultQuery("toDate", now.Format(dto.JournalDateFormat))
	to, err := time.Parse(dto.JournalDateFormat, toStr)
	if err != nil {
		logger.Warn("Invalid toDate format", slog.String("toDate", toStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid toDate format. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}

	return from, to, true
}

// parseAsOf reads the asOf query param, defaulting to today. Returns false
// after writing a 400 response on bad input.
func parseAsOf(c *gin.Context, logger *slog.Logger) (time.Time, bool) {
	asOfStr := c.DefaultQuery("asOf", time.Now().Format(dto.JournalDateFormat))
	asOf, err := time.Parse(dto.JournalDateFormat, asOfStr)
	if err != nil {
		logger.Warn("Invalid asOf date format", slog.String("asOf", asOfStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return asOf, true
}

// getIncomeStatement godoc
// @Summary Generate income statement
// @Description Generates the income statement for a specific period
// @Tags reports
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /owners/{owner_id}/reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("owner_id")

	from, to, ok := parsePeriod(c, logger)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("owner_id", ownerID),
		slog.String("fromDate", from.Format(dto.JournalDateFormat)),
		slog.String("toDate", to.Format(dto.JournalDateFormat)),
	)
	logger.Info("Received request to generate income statement")

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), ownerID, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateRange) {
			logger.Warn("Invalid date range for income statement", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate income statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate income statement"})
		}
		return
	}

	logger.Info("Income statement generated successfully",
		slog.Int("revenue_accounts", len(report.Revenue)),
		slog.Int("expense_accounts", len(report.Expenses)))
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(report))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet
// @Description Generates the balance sheet as of a specific date
// @Tags reports
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Ledger violates the accounting equation or report failed"
// @Router /owners/{owner_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("owner_id")

	asOf, ok := parseAsOf(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("owner_id", ownerID), slog.String("asOf", asOf.Format(dto.JournalDateFormat)))
	logger.Info("Received request to generate balance sheet")

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), ownerID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountingEquation) {
			logger.Error("Balance sheet violates the accounting equation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate balance sheet", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate balance sheet"})
		}
		return
	}

	logger.Info("Balance sheet generated successfully",
		slog.Int("asset_accounts", len(report.Assets)),
		slog.Int("liability_accounts", len(report.Liabilities)),
		slog.Int("equity_accounts", len(report.Equity)))
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// getOwnersEquity godoc
// @Summary Generate statement of owner's equity
// @Description Generates the capital roll-forward for a specific period
// @Tags reports
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.OwnersEquityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Chart of accounts is missing the capital or drawing account"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /owners/{owner_id}/reports/owners-equity [get]
func (h *reportingHandler) getOwnersEquity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("owner_id")

	from, to, ok := parsePeriod(c, logger)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("owner_id", ownerID),
		slog.String("fromDate", from.Format(dto.JournalDateFormat)),
		slog.String("toDate", to.Format(dto.JournalDateFormat)),
	)
	logger.Info("Received request to generate owner's equity statement")

	report, err := h.reportingService.OwnersEquity(c.Request.Context(), ownerID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidDateRange):
			logger.Warn("Invalid date range for owner's equity statement", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrMissingCapitalAccount),
			errors.Is(err, apperrors.ErrMissingDrawingAccount):
			logger.Warn("Chart of accounts incomplete for owner's equity statement", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to generate owner's equity statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate owner's equity statement"})
		}
		return
	}

	logger.Info("Owner's equity statement generated successfully")
	c.JSON(http.StatusOK, dto.ToOwnersEquityResponse(report))
}

// getCashFlow godoc
// @Summary Generate statement of cash flows
// @Description Generates classified cash movement for a specific period
// @Tags reports
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Chart of accounts has no cash account"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /owners/{owner_id}/reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("owner_id")

	from, to, ok := parsePeriod(c, logger)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("owner_id", ownerID),
		slog.String("fromDate", from.Format(dto.JournalDateFormat)),
		slog.String("toDate", to.Format(dto.JournalDateFormat)),
	)
	logger.Info("Received request to generate cash flow statement")

	report, err := h.reportingService.CashFlow(c.Request.Context(), ownerID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidDateRange):
			logger.Warn("Invalid date range for cash flow statement", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrCashAccountNotFound):
			logger.Warn("No cash account for cash flow statement", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to generate cash flow statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate cash flow statement"})
		}
		return
	}

	logger.Info("Cash flow statement generated successfully",
		slog.Int("operating_lines", len(report.Operating)),
		slog.Int("investing_lines", len(report.Investing)),
		slog.Int("financing_lines", len(report.Financing)))
	c.JSON(http.StatusOK, dto.ToCashFlowResponse(report))
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Generates a trial balance report as of a specific date
// @Tags reports
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /owners/{owner_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("owner_id")

	asOf, ok := parseAsOf(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("owner_id", ownerID), slog.String("asOf", asOf.Format(dto.JournalDateFormat)))
	logger.Info("Received request to generate trial balance report")

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), ownerID, asOf)
	if err != nil {
		logger.Error("Failed to generate trial balance report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate trial balance report"})
		return
	}

	logger.Info("Trial balance report generated successfully", slog.Int("row_count", len(rows)))
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows, asOf))
}
