package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/construction_billing_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := &reportingHandler{reportingService: reportingService}
	rg.GET("/reports/summary", h.getSummary)
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Counts and totals of bills and NMRs by status, plus settlement totals
// @Tags reports
// @Produce  json
// @Success 200 {object} domain.Summary
// @Failure 500 {object} dto.ErrorResponse "Failed to build summary"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	if _, ok := actorID(c); !ok {
		return
	}
	summary, err := h.reportingService.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
