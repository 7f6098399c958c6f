package handlers

import (
	"fmt"
	"net/http"

	portssvc "github.com/mcbank/mc_bank_app/internal/core/ports/services"
	"github.com/mcbank/mc_bank_app/internal/core/services"
	"github.com/gin-gonic/gin"
)

// exportHandler serves the downloadable CSV document.
type exportHandler struct {
	exportService portssvc.ExportSvc
}

// registerExportRoutes registers the export route.
func registerExportRoutes(rg *gin.RouterGroup, es portssvc.ExportSvc) {
	h := &exportHandler{exportService: es}
	rg.GET("/export", h.exportCSV)
}

// exportCSV godoc
// @Summary Download accounts and transactions as CSV
// @Tags export
// @Produce text/csv
// @Router /export [get]
func (h *exportHandler) exportCSV(c *gin.Context) {
	doc := h.exportService.ExportCSV(c.Request.Context())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ExportFilename))
	c.Data(http.StatusOK, "text/csv", []byte(doc))
}
