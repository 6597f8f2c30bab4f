package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/construction_billing_app/internal/core/ports/services"
	"github.com/SscSPs/construction_billing_app/internal/dto"
	"github.com/SscSPs/construction_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// billHandler handles HTTP requests related to bills.
type billHandler struct {
	billService    portssvc.BillSvcFacade
	paymentService portssvc.PaymentSvcFacade
}

// newBillHandler creates a new billHandler.
func newBillHandler(bs portssvc.BillSvcFacade, ps portssvc.PaymentSvcFacade) *billHandler {
	return &billHandler{
		billService:    bs,
		paymentService: ps,
	}
}

// registerBillRoutes registers routes related to bills.
func registerBillRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := newBillHandler(billService, paymentService)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.GET("/:id", h.getBill)
		bills.DELETE("/:id", h.deleteBill)
		bills.GET("/:id/ledger", h.getBillLedger)
		bills.POST("/:id/approve/pm", h.approvePM)
		bills.POST("/:id/approve/qc", h.approveQC)
		bills.POST("/:id/approve/billing", h.approveBilling)
	}
}

// createBill godoc
// @Summary Raise a new bill
// @Description Creates a bill at Pending PM. The total is unitPrice x quantity.
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Role may not raise bills"
// @Failure 500 {object} dto.ErrorResponse "Failed to create bill"
// @Security BearerAuth
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create bill")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

// listBills godoc
// @Summary List bills
// @Description Lists bills newest first with cursor pagination
// @Tags bills
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from a previous page"
// @Param   status query string false "Filter by status" Enums(Pending PM, Pending QC, Pending Billing, Approved, Rejected)
// @Param   project query string false "Filter by project"
// @Param   contractor query string false "Filter by contractor"
// @Success 200 {object} dto.ListBillsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list bills"
// @Security BearerAuth
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListUnitsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListBills", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if _, ok := actorID(c); !ok {
		return
	}

	resp, err := h.billService.ListBills(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list bills")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getBill godoc
// @Summary Get a bill by ID
// @Tags bills
// @Produce  json
// @Param   id path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Bill not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve bill"
// @Security BearerAuth
// @Router /bills/{id} [get]
func (h *billHandler) getBill(c *gin.Context) {
	if _, ok := actorID(c); !ok {
		return
	}
	bill, err := h.billService.GetBillByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// getBillLedger godoc
// @Summary Get the settlement ledger of a bill
// @Description Returns the bill total, the amount paid so far and the live balance
// @Tags bills
// @Produce  json
// @Param   id path string true "Bill ID"
// @Success 200 {object} domain.Ledger
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Bill not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve ledger"
// @Security BearerAuth
// @Router /bills/{id}/ledger [get]
func (h *billHandler) getBillLedger(c *gin.Context) {
	if _, ok := actorID(c); !ok {
		return
	}
	ledger, err := h.paymentService.GetBillLedger(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve ledger")
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// deleteBill godoc
// @Summary Delete a bill
// @Description Requires the admin role and the shared deletion secret
// @Tags bills
// @Param   id path string true "Bill ID"
// @Param   X-Deletion-Secret header string true "Shared deletion secret"
// @Success 204
// @Failure 401 {object} dto.ErrorResponse "Wrong deletion secret"
// @Failure 403 {object} dto.ErrorResponse "Role may not delete"
// @Failure 404 {object} dto.ErrorResponse "Bill not found"
// @Failure 409 {object} dto.ErrorResponse "Bill has payments"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete bill"
// @Security BearerAuth
// @Router /bills/{id} [delete]
func (h *billHandler) deleteBill(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.billService.DeleteBill(c.Request.Context(), c.Param("id"), c.GetHeader(deletionSecretHeader), userID); err != nil {
		respondError(c, err, "Failed to delete bill")
		return
	}
	c.Status(http.StatusNoContent)
}

// approvePM godoc
// @Summary Record the PM decision on a bill
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   id path string true "Bill ID"
// @Param   decision body dto.StageApprovalRequest true "Decision and optional debit"
// @Success 200 {object} dto.BillApprovalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Role may not approve at this stage"
// @Failure 404 {object} dto.ErrorResponse "Bill not found"
// @Failure 409 {object} dto.ErrorResponse "Stage out of order"
// @Security BearerAuth
// @Router /bills/{id}/approve/pm [post]
func (h *billHandler) approvePM(c *gin.Context) {
	h.approveStage(c, "PM", h.billService.ApproveBillPM)
}

// approveQC godoc
// @Summary Record the QC decision on a bill
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   id path string true "Bill ID"
// @Param   decision body dto.StageApprovalRequest true "Decision and optional debit"
// @Success 200 {object} dto.BillApprovalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Role may not approve at this stage"
// @Failure 404 {object} dto.ErrorResponse "Bill not found"
// @Failure 409 {object} dto.ErrorResponse "Stage out of order"
// @Security BearerAuth
// @Router /bills/{id}/approve/qc [post]
func (h *billHandler) approveQC(c *gin.Context) {
	h.approveStage(c, "QC", h.billService.ApproveBillQC)
}

// billStageFunc is one of the PM or QC approval calls of the bill service.
type billStageFunc func(ctx context.Context, billID string, req dto.StageApprovalRequest, actorID string) (*domain.Bill, []string, error)

func (h *billHandler) approveStage(c *gin.Context, stage string, approve billStageFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.StageApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bill approval", slog.String("stage", stage), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	bill, warnings, err := approve(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record approval")
		return
	}
	c.JSON(http.StatusOK, dto.BillApprovalResponse{Bill: dto.ToBillResponse(bill), Warnings: warnings})
}

// approveBilling godoc
// @Summary Record the final billing decision on a bill
// @Description On approval the final amount is frozen, optionally replaced by a rounding correction
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   id path string true "Bill ID"
// @Param   decision body dto.BillingApprovalRequest true "Decision and optional final amount"
// @Success 200 {object} dto.BillApprovalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Role may not approve at this stage"
// @Failure 404 {object} dto.ErrorResponse "Bill not found"
// @Failure 409 {object} dto.ErrorResponse "Stage out of order"
// @Security BearerAuth
// @Router /bills/{id}/approve/billing [post]
func (h *billHandler) approveBilling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BillingApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bill billing approval", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	bill, warnings, err := h.billService.ApproveBillBilling(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record approval")
		return
	}
	c.JSON(http.StatusOK, dto.BillApprovalResponse{Bill: dto.ToBillResponse(bill), Warnings: warnings})
}
