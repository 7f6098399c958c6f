package handlers

import (
	"net/http"

	portssvc "github.com/mcbank/mc_bank_app/internal/core/ports/services"
	"github.com/mcbank/mc_bank_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for derived aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// registerReportingRoutes registers the summary route.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvc) {
	h := &reportingHandler{reportingService: rs}
	rg.GET("/summary", h.getSummary)
}

// getSummary godoc
// @Summary Bank-wide aggregates with per-account activity
// @Tags reporting
// @Produce json
// @Router /summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	ctx := c.Request.Context()
	summary := h.reportingService.Summary(ctx)
	rows := h.reportingService.AccountActivity(ctx)
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary, rows))
}
