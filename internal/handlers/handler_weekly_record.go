package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/construction_billing_app/internal/core/ports/services"
	"github.com/SscSPs/construction_billing_app/internal/dto"
	"github.com/SscSPs/construction_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type weeklyRecordHandler struct {
	recordService portssvc.WeeklyRecordSvcFacade
}

func newWeeklyRecordHandler(rs portssvc.WeeklyRecordSvcFacade) *weeklyRecordHandler {
	return &weeklyRecordHandler{recordService: rs}
}

// registerWeeklyRecordRoutes registers the NMR routes.
func registerWeeklyRecordRoutes(rg *gin.RouterGroup, recordService portssvc.WeeklyRecordSvcFacade) {
	h := newWeeklyRecordHandler(recordService)

	records := rg.Group("/weekly-records")
	{
		records.POST("", h.createWeeklyRecord)
		records.GET("", h.listWeeklyRecords)
		records.GET("/:id", h.getWeeklyRecord)
		records.DELETE("/:id", h.deleteWeeklyRecord)
		records.POST("/:id/approve/:stage", h.approveWeeklyRecord)
	}
}

// createWeeklyRecord godoc
// @Summary Raise a weekly labour record (NMR)
// @Description Line amounts are recomputed as persons x rate x hours. At least one entry is required.
// @Tags weekly-records
// @Accept  json
// @Produce  json
// @Param   record body dto.CreateWeeklyRecordRequest true "Weekly record details"
// @Success 201 {object} dto.WeeklyRecordResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or empty entry set"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Role may not raise records"
// @Failure 500 {object} dto.ErrorResponse "Failed to create weekly record"
// @Security BearerAuth
// @Router /weekly-records [post]
func (h *weeklyRecordHandler) createWeeklyRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWeeklyRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWeeklyRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	record, err := h.recordService.CreateWeeklyRecord(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create weekly record")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWeeklyRecordResponse(record))
}

// listWeeklyRecords godoc
// @Summary List weekly records
// @Tags weekly-records
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from a previous page"
// @Param   status query string false "Filter by status"
// @Param   project query string false "Filter by project"
// @Param   contractor query string false "Filter by contractor"
// @Success 200 {object} dto.ListWeeklyRecordsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list weekly records"
// @Security BearerAuth
// @Router /weekly-records [get]
func (h *weeklyRecordHandler) listWeeklyRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListUnitsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListWeeklyRecords", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if _, ok := actorID(c); !ok {
		return
	}

	resp, err := h.recordService.ListWeeklyRecords(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list weekly records")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getWeeklyRecord godoc
// @Summary Get a weekly record by ID
// @Tags weekly-records
// @Produce  json
// @Param   id path string true "Weekly record ID"
// @Success 200 {object} dto.WeeklyRecordResponse
// @Failure 404 {object} dto.ErrorResponse "Weekly record not found"
// @Security BearerAuth
// @Router /weekly-records/{id} [get]
func (h *weeklyRecordHandler) getWeeklyRecord(c *gin.Context) {
	if _, ok := actorID(c); !ok {
		return
	}
	record, err := h.recordService.GetWeeklyRecordByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve weekly record")
		return
	}
	c.JSON(http.StatusOK, dto.ToWeeklyRecordResponse(record))
}

// deleteWeeklyRecord godoc
// @Summary Delete a weekly record
// @Tags weekly-records
// @Param   id path string true "Weekly record ID"
// @Param   X-Deletion-Secret header string true "Shared deletion secret"
// @Success 204
// @Failure 401 {object} dto.ErrorResponse "Wrong deletion secret"
// @Failure 403 {object} dto.ErrorResponse "Role may not delete"
// @Failure 404 {object} dto.ErrorResponse "Weekly record not found"
// @Security BearerAuth
// @Router /weekly-records/{id} [delete]
func (h *weeklyRecordHandler) deleteWeeklyRecord(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.recordService.DeleteWeeklyRecord(c.Request.Context(), c.Param("id"), c.GetHeader(deletionSecretHeader), userID); err != nil {
		respondError(c, err, "Failed to delete weekly record")
		return
	}
	c.Status(http.StatusNoContent)
}

// approveWeeklyRecord godoc
// @Summary Record a stage decision on a weekly record
// @Description stage is pm, qc or billing. The billing stage accepts dto.BillingApprovalRequest.
// @Tags weekly-records
// @Accept  json
// @Produce  json
// @Param   id path string true "Weekly record ID"
// @Param   stage path string true "Approval stage" Enums(pm, qc, billing)
// @Param   decision body dto.StageApprovalRequest true "Decision and optional debit"
// @Success 200 {object} dto.WeeklyRecordApprovalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Role may not approve at this stage"
// @Failure 404 {object} dto.ErrorResponse "Weekly record or stage not found"
// @Failure 409 {object} dto.ErrorResponse "Stage out of order"
// @Security BearerAuth
// @Router /weekly-records/{id}/approve/{stage} [post]
func (h *weeklyRecordHandler) approveWeeklyRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stage := c.Param("stage")
	if stage != "pm" && stage != "qc" && stage != "billing" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown approval stage: " + stage})
		return
	}

	var (
		stageReq   dto.StageApprovalRequest
		billingReq dto.BillingApprovalRequest
		bindErr    error
	)
	if stage == "billing" {
		bindErr = c.ShouldBindJSON(&billingReq)
	} else {
		bindErr = c.ShouldBindJSON(&stageReq)
	}
	if bindErr != nil {
		logger.Warn("Failed to bind JSON for weekly record approval", slog.String("stage", stage), slog.String("error", bindErr.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + bindErr.Error()})
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	var resp dto.WeeklyRecordApprovalResponse
	switch stage {
	case "pm":
		record, warnings, err := h.recordService.ApproveWeeklyRecordPM(ctx, id, stageReq, userID)
		if err != nil {
			respondError(c, err, "Failed to record approval")
			return
		}
		resp = dto.WeeklyRecordApprovalResponse{WeeklyRecord: dto.ToWeeklyRecordResponse(record), Warnings: warnings}
	case "qc":
		record, warnings, err := h.recordService.ApproveWeeklyRecordQC(ctx, id, stageReq, userID)
		if err != nil {
			respondError(c, err, "Failed to record approval")
			return
		}
		resp = dto.WeeklyRecordApprovalResponse{WeeklyRecord: dto.ToWeeklyRecordResponse(record), Warnings: warnings}
	default:
		record, warnings, err := h.recordService.ApproveWeeklyRecordBilling(ctx, id, billingReq, userID)
		if err != nil {
			respondError(c, err, "Failed to record approval")
			return
		}
		resp = dto.WeeklyRecordApprovalResponse{WeeklyRecord: dto.ToWeeklyRecordResponse(record), Warnings: warnings}
	}
	c.JSON(http.StatusOK, resp)
}
