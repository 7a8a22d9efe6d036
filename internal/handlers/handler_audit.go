package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/parishbooks/church_finance_app/internal/core/ports/services"
	"github.com/parishbooks/church_finance_app/internal/dto"
	"github.com/parishbooks/church_finance_app/internal/middleware"
)

// auditHandler exposes the append-only audit log for review.
type auditHandler struct {
	auditSvc portssvc.AuditSvcFacade
}

// registerAuditRoutes registers the audit log routes.
func registerAuditRoutes(rg *gin.RouterGroup, auditSvc portssvc.AuditSvcFacade) {
	h := &auditHandler{auditSvc: auditSvc}

	rg.GET("/audit-logs", h.listAuditRecords)
}

// listAuditRecords godoc
// @Summary List audit records
// @Description Retrieves a paginated list of audit records, newest first
// @Tags audit
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListAuditRecordsResponse
// @Failure 500 {object} map[string]string "Failed to list audit records"
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *auditHandler) listAuditRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAuditRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, nextToken, err := h.auditSvc.ListAuditRecords(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list audit records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAuditRecordsResponse(records, nextToken))
}
