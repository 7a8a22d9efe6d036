package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parishbooks/church_finance_app/internal/apperrors"
	portssvc "github.com/parishbooks/church_finance_app/internal/core/ports/services"
	"github.com/parishbooks/church_finance_app/internal/dto"
	"github.com/parishbooks/church_finance_app/internal/middleware"
)

// reportingHandler handles the financial report endpoints.
type reportingHandler struct {
	reportingSvc portssvc.ReportingService
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingSvc portssvc.ReportingService) {
	h := &reportingHandler{reportingSvc: reportingSvc}

	rg.POST("/budgets", h.setBudget)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/fund-summary", h.getFundSummary)
		reports.GET("/budget-vs-actuals", h.getBudgetVsActuals)
	}
}

// getTrialBalance godoc
// @Summary Get the trial balance
// @Description Lists every account with activity and its debit/credit totals as of a date; the two totals always agree
// @Tags reports
// @Produce  json
// @Param   asOf query string false "Report cutoff date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to generate trial balance"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TrialBalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	asOf := time.Now().UTC()
	if params.AsOf != nil {
		asOf = *params.AsOf
	}

	rows, err := h.reportingSvc.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to generate trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate trial balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(asOf, rows))
}

// getFundSummary godoc
// @Summary Get the giving summary per fund
// @Description Aggregates donation income per fund over a reporting period
// @Tags reports
// @Produce  json
// @Param   from query string true "Period start (YYYY-MM-DD)"
// @Param   to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.FundSummaryResponse
// @Failure 400 {object} map[string]string "Invalid or missing period parameters"
// @Failure 500 {object} map[string]string "Failed to generate fund summary"
// @Security BearerAuth
// @Router /reports/fund-summary [get]
func (h *reportingHandler) getFundSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.FundSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if params.To.Before(params.From) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Period end is before period start"})
		return
	}

	rows, err := h.reportingSvc.FundSummary(c.Request.Context(), params.From, params.To)
	if err != nil {
		logger.Error("Failed to generate fund summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate fund summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFundSummaryResponse(params.From, params.To, rows))
}

// setBudget godoc
// @Summary Set a budget for an expense account
// @Description Records a budget allocation for an expense account over a period; a repeat for the same account and period replaces the amount
// @Tags reports
// @Accept  json
// @Produce  json
// @Param   budget body dto.CreateBudgetRequest true "Budget allocation"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to save budget"
// @Security BearerAuth
// @Router /budgets [post]
func (h *reportingHandler) setBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.reportingSvc.SetBudget(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		default:
			logger.Error("Failed to save budget", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save budget"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// getBudgetVsActuals godoc
// @Summary Get the budget vs actuals report
// @Description Compares budget allocations for expense accounts to their ledger spend over a period
// @Tags reports
// @Produce  json
// @Param   from query string true "Period start (YYYY-MM-DD)"
// @Param   to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.BudgetVsActualsResponse
// @Failure 400 {object} map[string]string "Invalid or missing period parameters"
// @Failure 500 {object} map[string]string "Failed to generate budget vs actuals report"
// @Security BearerAuth
// @Router /reports/budget-vs-actuals [get]
func (h *reportingHandler) getBudgetVsActuals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.BudgetVsActualsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if params.To.Before(params.From) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Period end is before period start"})
		return
	}

	rows, err := h.reportingSvc.BudgetVsActuals(c.Request.Context(), params.From, params.To)
	if err != nil {
		logger.Error("Failed to generate budget vs actuals report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate budget vs actuals report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetVsActualsResponse(params.From, params.To, rows))
}
