package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parishbooks/church_finance_app/internal/apperrors"
	portssvc "github.com/parishbooks/church_finance_app/internal/core/ports/services"
	"github.com/parishbooks/church_finance_app/internal/core/services"
	"github.com/parishbooks/church_finance_app/internal/dto"
	"github.com/parishbooks/church_finance_app/internal/middleware"
)

// journalHandler handles read and reversal operations on committed journals.
type journalHandler struct {
	journalSvc portssvc.JournalSvcFacade
	postingSvc portssvc.PostingSvcFacade
	auditSvc   portssvc.AuditSvcFacade
}

// registerJournalRoutes registers routes related to journals.
func registerJournalRoutes(rg *gin.RouterGroup, journalSvc portssvc.JournalSvcFacade, postingSvc portssvc.PostingSvcFacade, auditSvc portssvc.AuditSvcFacade) {
	h := &journalHandler{journalSvc: journalSvc, postingSvc: postingSvc, auditSvc: auditSvc}

	journals := rg.Group("/journals")
	{
		journals.GET("", h.listJournals)
		journals.GET("/:id", h.getJournal)
		journals.POST("/:id/reverse", h.reverseJournal)
		journals.GET("/:id/audit-trail", h.getAuditTrail)
	}
}

// writeReversalError maps reversal failures to HTTP responses. Shared with the
// event void endpoint, which delegates to the same reversal flow.
func writeReversalError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrAlreadyReversed),
		errors.Is(err, services.ErrReversalOfReversal),
		errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		logger.Error("Ledger store unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Ledger temporarily unavailable, retry later"})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

// listJournals godoc
// @Summary List journals
// @Description Retrieves a paginated list of journals, newest first
// @Tags journals
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token"
// @Param   includeReversals query bool false "Include reversing journals" default(true)
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 500 {object} map[string]string "Failed to list journals"
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	journals, nextToken, err := h.journalSvc.ListJournals(c.Request.Context(), params.Limit, params.NextToken, params.IncludeReversals)
	if err != nil {
		logger.Error("Failed to list journals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListJournalsResponse(journals, nextToken))
}

// getJournal godoc
// @Summary Get a journal by ID
// @Description Retrieves a journal entry with all of its lines
// @Tags journals
// @Produce  json
// @Param   id path string true "Journal ID"
// @Success 200 {object} dto.GetJournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal"
// @Security BearerAuth
// @Router /journals/{id} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("id")

	journal, err := h.journalSvc.GetJournalByID(c.Request.Context(), journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		} else {
			logger.Error("Failed to get journal from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.GetJournalResponse{
		Journal:      dto.ToJournalResponse(journal),
		Transactions: dto.ToTransactionResponses(journal.Transactions),
	})
}

// reverseJournal godoc
// @Summary Reverse a posted journal
// @Description Posts a mirrored reversing journal; the original lines stay untouched
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   id path string true "Journal ID"
// @Param   reversal body dto.ReverseJournalRequest true "Reversal reason"
// @Success 201 {object} dto.JournalResponse "The reversing journal"
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 409 {object} map[string]string "Journal already reversed or is itself a reversal"
// @Failure 500 {object} map[string]string "Failed to reverse journal"
// @Security BearerAuth
// @Router /journals/{id}/reverse [post]
func (h *journalHandler) reverseJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("id")

	var req dto.ReverseJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reversing, err := h.postingSvc.ReverseJournal(c.Request.Context(), userID, journalID, req.Reason)
	if err != nil {
		writeReversalError(c, logger, err, "Failed to reverse journal")
		return
	}

	logger.Info("Journal reversed", slog.String("journal_id", journalID), slog.String("reversing_journal_id", reversing.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(reversing))
}

// getAuditTrail godoc
// @Summary Get the audit trail of a journal
// @Description Retrieves every audit record that references the journal, oldest first
// @Tags journals
// @Produce  json
// @Param   id path string true "Journal ID"
// @Success 200 {object} dto.ListAuditRecordsResponse
// @Failure 500 {object} map[string]string "Failed to retrieve audit trail"
// @Security BearerAuth
// @Router /journals/{id}/audit-trail [get]
func (h *journalHandler) getAuditTrail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("id")

	records, err := h.auditSvc.GetAuditTrailForJournal(c.Request.Context(), journalID)
	if err != nil {
		logger.Error("Failed to get audit trail", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve audit trail"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAuditRecordsResponse(records, nil))
}
