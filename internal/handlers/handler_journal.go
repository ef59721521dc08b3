package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var journalsPostedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "finbooks_journals_posted_total",
	Help: "Number of journal entries accepted by the poster.",
})

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalService
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalService) *journalHandler {
	return &journalHandler{
		journalService: js,
	}
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalService) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journal_id", h.getJournal)
	}
}

// createJournal godoc
// @Summary Post a journal entry
// @Description Validates and posts a balanced journal entry to the ledger
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Param   journal body dto.CreateJournalRequest true "Journal entry details"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid input format or date"
// @Failure 404 {object} map[string]string "Referenced account not found"
// @Failure 422 {object} map[string]string "Journal entry violates a posting rule"
// @Failure 500 {object} map[string]string "Failed to post journal entry"
// @Router /owners/{owner_id}/journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("owner_id")

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("owner_id", ownerID), slog.String("journal_date", req.Date))
	logger.Info("Received request to post journal entry", slog.Int("line_count", len(req.Transactions)))

	journal, err := h.journalService.CreateJournal(c.Request.Context(), ownerID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidJournalDate):
			logger.Warn("Invalid journal date", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrAccountNotFound):
			logger.Warn("Journal references unknown account", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrJournalMinEntries),
			errors.Is(err, apperrors.ErrJournalUnbalanced):
			logger.Warn("Journal entry rejected by posting rules", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error posting journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to post journal entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post journal entry"})
		}
		return
	}

	journalsPostedTotal.Inc()
	logger.Info("Journal entry posted successfully", slog.String("journal_id", journal.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// getJournal godoc
// @Summary Get a journal entry by ID
// @Description Retrieves a journal entry and its transaction lines
// @Tags journals
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Param   journal_id path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal"
// @Router /owners/{owner_id}/journals/{journal_id} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("owner_id")
	journalID := c.Param("journal_id")

	logger = logger.With(slog.String("owner_id", ownerID), slog.String("target_journal_id", journalID))
	logger.Info("Received request to get journal entry")

	journal, err := h.journalService.GetJournalByID(c.Request.Context(), ownerID, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		} else {
			logger.Error("Failed to get journal from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// listJournals godoc
// @Summary List journal entries
// @Description Retrieves a paginated list of the owner's journal entries
// @Tags journals
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list journals"
// @Router /owners/{owner_id}/journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("owner_id")

	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListJournals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("owner_id", ownerID))
	logger.Info("Received request to list journal entries", slog.Int("limit", params.Limit), slog.Int("offset", params.Offset))

	journals, err := h.journalService.ListJournals(c.Request.Context(), ownerID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list journals from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journals"})
		return
	}

	logger.Info("Journals listed successfully", slog.Int("count", len(journals)))
	c.JSON(http.StatusOK, dto.ToListJournalsResponse(journals))
}
