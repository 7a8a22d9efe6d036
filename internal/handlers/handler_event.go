package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parishbooks/church_finance_app/internal/apperrors"
	"github.com/parishbooks/church_finance_app/internal/core/domain"
	portssvc "github.com/parishbooks/church_finance_app/internal/core/ports/services"
	"github.com/parishbooks/church_finance_app/internal/dto"
	"github.com/parishbooks/church_finance_app/internal/middleware"
)

// eventHandler handles read and void operations on recorded business events.
type eventHandler struct {
	postingSvc portssvc.PostingSvcFacade
	journalSvc portssvc.JournalSvcFacade
}

// registerEventRoutes registers routes related to business events.
func registerEventRoutes(rg *gin.RouterGroup, postingSvc portssvc.PostingSvcFacade, journalSvc portssvc.JournalSvcFacade) {
	h := &eventHandler{postingSvc: postingSvc, journalSvc: journalSvc}

	events := rg.Group("/events")
	{
		events.GET("", h.listEvents)
		events.GET("/:id", h.getEvent)
		events.GET("/:id/entries", h.getEventEntries)
		events.POST("/:id/void", h.voidEvent)
	}
}

// listEvents godoc
// @Summary List business events
// @Description Retrieves a paginated list of business events, optionally filtered by kind
// @Tags events
// @Produce  json
// @Param   kind query string false "Event kind filter"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListEventsResponse
// @Failure 500 {object} map[string]string "Failed to list events"
// @Security BearerAuth
// @Router /events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var kind *domain.EventKind
	if params.Kind != nil && *params.Kind != "" {
		k := domain.EventKind(*params.Kind)
		kind = &k
	}

	events, nextToken, err := h.postingSvc.ListEvents(c.Request.Context(), kind, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list events", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEventsResponse(events, nextToken))
}

// getEvent godoc
// @Summary Get a business event by ID
// @Description Retrieves a single business event
// @Tags events
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to retrieve event"
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	event, err := h.postingSvc.GetEventByID(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			logger.Error("Failed to get event from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve event"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// getEventEntries godoc
// @Summary Get the ledger entries of an event
// @Description Retrieves every journal line the event produced, including reversal lines
// @Tags events
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entries"
// @Security BearerAuth
// @Router /events/{id}/entries [get]
func (h *eventHandler) getEventEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	transactions, err := h.journalSvc.EntriesForReference(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			logger.Error("Failed to get event entries", slog.String("error", err.Error()), slog.String("event_id", eventID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entries"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(transactions)})
}

// voidEvent godoc
// @Summary Void a business event
// @Description Voids a recorded event by posting a reversing journal; history is never mutated
// @Tags events
// @Accept  json
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   void body dto.VoidEventRequest true "Void reason"
// @Success 201 {object} dto.JournalResponse "The reversing journal"
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 409 {object} map[string]string "Event already voided"
// @Failure 500 {object} map[string]string "Failed to void event"
// @Security BearerAuth
// @Router /events/{id}/void [post]
func (h *eventHandler) voidEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	var req dto.VoidEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reversing, err := h.postingSvc.VoidEvent(c.Request.Context(), userID, eventID, req.Reason)
	if err != nil {
		writeReversalError(c, logger, err, "Failed to void event")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalResponse(reversing))
}
