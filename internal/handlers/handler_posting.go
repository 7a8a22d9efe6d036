package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parishbooks/church_finance_app/internal/apperrors"
	"github.com/parishbooks/church_finance_app/internal/core/domain"
	portssvc "github.com/parishbooks/church_finance_app/internal/core/ports/services"
	"github.com/parishbooks/church_finance_app/internal/core/services"
	"github.com/parishbooks/church_finance_app/internal/dto"
	"github.com/parishbooks/church_finance_app/internal/middleware"
)

// postingHandler handles the endpoints that record business events and turn
// them into ledger postings.
type postingHandler struct {
	postingSvc portssvc.PostingSvcFacade
}

// registerPostingRoutes registers the event recording routes.
func registerPostingRoutes(rg *gin.RouterGroup, postingSvc portssvc.PostingSvcFacade) {
	h := &postingHandler{postingSvc: postingSvc}

	rg.POST("/donations", h.recordDonation)
	rg.POST("/expenses", h.recordExpense)
	rg.POST("/bills", h.recordBill)
	rg.POST("/bills/payments", h.payBill)
	rg.POST("/invoices", h.issueInvoice)
	rg.POST("/invoices/collections", h.collectInvoice)
	rg.POST("/payroll-runs", h.runPayroll)
}

// postEvent runs the shared post-and-respond flow for every event endpoint.
// A first-time posting answers 201; an idempotent replay answers 200 with the
// original posting and duplicate=true.
func (h *postingHandler) postEvent(c *gin.Context, event domain.BusinessEvent) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.postingSvc.PostEvent(c.Request.Context(), userID, event)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingIdempotencyKey),
			errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUnknownAccount),
			errors.Is(err, services.ErrCurrencyMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrAccountInactive):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrStoreUnavailable):
			logger.Error("Ledger store unavailable", slog.String("error", err.Error()), slog.String("kind", string(event.Kind)))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Ledger temporarily unavailable, retry with the same idempotency key"})
		default:
			logger.Error("Failed to post event", slog.String("error", err.Error()), slog.String("kind", string(event.Kind)))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post event"})
		}
		return
	}

	if result.Duplicate {
		c.JSON(http.StatusOK, dto.ToPostingResponse(result))
		return
	}
	c.JSON(http.StatusCreated, dto.ToPostingResponse(result))
}

// recordDonation godoc
// @Summary Record a donation
// @Description Records a member donation to a fund and posts it to the ledger
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   donation body dto.RecordDonationRequest true "Donation details"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse "Idempotent replay of an earlier posting"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 422 {object} map[string]string "Fund has no ledger account"
// @Failure 500 {object} map[string]string "Failed to post event"
// @Security BearerAuth
// @Router /donations [post]
func (h *postingHandler) recordDonation(c *gin.Context) {
	var req dto.RecordDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.postEvent(c, domain.BusinessEvent{
		Kind:           domain.DonationReceived,
		IdempotencyKey: req.IdempotencyKey,
		Amount:         req.Amount,
		FundOrCategory: req.Fund,
		PartyName:      req.MemberName,
		Description:    req.Description,
		OccurredAt:     req.Date,
	})
}

// recordExpense godoc
// @Summary Record a cash expense
// @Description Records an expense paid in cash and posts it to the ledger
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   expense body dto.RecordExpenseRequest true "Expense details"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse "Idempotent replay of an earlier posting"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 422 {object} map[string]string "Category has no ledger account"
// @Failure 500 {object} map[string]string "Failed to post event"
// @Security BearerAuth
// @Router /expenses [post]
func (h *postingHandler) recordExpense(c *gin.Context) {
	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.postEvent(c, domain.BusinessEvent{
		Kind:           domain.ExpensePaid,
		IdempotencyKey: req.IdempotencyKey,
		Amount:         req.Amount,
		FundOrCategory: req.Category,
		PartyName:      req.Payee,
		Description:    req.Description,
		OccurredAt:     req.Date,
	})
}

// recordBill godoc
// @Summary Record a vendor bill
// @Description Records a bill received on credit; the expense is recognized now, cash moves on payment
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   bill body dto.RecordBillRequest true "Bill details"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse "Idempotent replay of an earlier posting"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 422 {object} map[string]string "Category has no ledger account"
// @Failure 500 {object} map[string]string "Failed to post event"
// @Security BearerAuth
// @Router /bills [post]
func (h *postingHandler) recordBill(c *gin.Context) {
	var req dto.RecordBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.postEvent(c, domain.BusinessEvent{
		Kind:           domain.BillRecorded,
		IdempotencyKey: req.IdempotencyKey,
		Amount:         req.Amount,
		FundOrCategory: req.Category,
		PartyName:      req.Vendor,
		Description:    req.Description,
		OccurredAt:     req.Date,
	})
}

// payBill godoc
// @Summary Record a bill payment
// @Description Records settlement of a previously recorded vendor bill
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   payment body dto.PayBillRequest true "Payment details"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse "Idempotent replay of an earlier posting"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to post event"
// @Security BearerAuth
// @Router /bills/payments [post]
func (h *postingHandler) payBill(c *gin.Context) {
	var req dto.PayBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.postEvent(c, domain.BusinessEvent{
		Kind:           domain.BillPaid,
		IdempotencyKey: req.IdempotencyKey,
		Amount:         req.Amount,
		PartyName:      req.Vendor,
		Description:    req.Description,
		OccurredAt:     req.Date,
	})
}

// issueInvoice godoc
// @Summary Record an issued invoice
// @Description Records an invoice issued to a customer as a receivable
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   invoice body dto.IssueInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse "Idempotent replay of an earlier posting"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to post event"
// @Security BearerAuth
// @Router /invoices [post]
func (h *postingHandler) issueInvoice(c *gin.Context) {
	var req dto.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.postEvent(c, domain.BusinessEvent{
		Kind:           domain.InvoiceIssued,
		IdempotencyKey: req.IdempotencyKey,
		Amount:         req.Amount,
		PartyName:      req.Customer,
		Description:    req.Description,
		OccurredAt:     req.Date,
	})
}

// collectInvoice godoc
// @Summary Record invoice collection
// @Description Records cash collected against a previously issued invoice
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   collection body dto.CollectInvoiceRequest true "Collection details"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse "Idempotent replay of an earlier posting"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to post event"
// @Security BearerAuth
// @Router /invoices/collections [post]
func (h *postingHandler) collectInvoice(c *gin.Context) {
	var req dto.CollectInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.postEvent(c, domain.BusinessEvent{
		Kind:           domain.InvoiceCollected,
		IdempotencyKey: req.IdempotencyKey,
		Amount:         req.Amount,
		PartyName:      req.Customer,
		Description:    req.Description,
		OccurredAt:     req.Date,
	})
}

// runPayroll godoc
// @Summary Post a payroll run
// @Description Posts all employee salary lines of a payroll run as a single journal
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   payroll body dto.RunPayrollRequest true "Payroll run details"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse "Idempotent replay of an earlier posting"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to post event"
// @Security BearerAuth
// @Router /payroll-runs [post]
func (h *postingHandler) runPayroll(c *gin.Context) {
	var req dto.RunPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	lines := make([]domain.PayrollLine, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = domain.PayrollLine{EmployeeName: line.EmployeeName, Amount: line.Amount}
	}

	h.postEvent(c, domain.BusinessEvent{
		Kind:           domain.PayrollRun,
		IdempotencyKey: req.IdempotencyKey,
		Description:    req.Description,
		OccurredAt:     req.Date,
		PayrollLines:   lines,
	})
}
