package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SohamBhandary/MoneyFrontend/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves spreadsheet exports of a ledger.
type ExportHandler struct {
	ledgers *services.Ledgers
	exports services.ExportServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(ledgers *services.Ledgers, exports services.ExportServicer) *ExportHandler {
	return &ExportHandler{ledgers: ledgers, exports: exports}
}

// Download proxies the upstream spreadsheet export as a file attachment.
// On upstream failure nothing is served and the error passes through.
func (h *ExportHandler) Download(c *gin.Context) {
	svc, ok := ledgerFromPath(c, h.ledgers)
	if !ok {
		return
	}

	export, err := h.exports.Download(c.Request.Context(), svc.Type())
	if err != nil {
		abortWith(c, err)
		return
	}

	serveExport(c, export)
}

// Snapshot builds a workbook locally from the ledger's cached transactions
// and categories, so an export stays available when the upstream exporter
// is not.
func (h *ExportHandler) Snapshot(c *gin.Context) {
	svc, ok := ledgerFromPath(c, h.ledgers)
	if !ok {
		return
	}

	export, err := h.exports.BuildSnapshot(svc.Type(), svc.Transactions(), svc.Categories())
	if err != nil {
		abortWith(c, err)
		return
	}

	serveExport(c, export)
}

func serveExport(c *gin.Context, export *services.Export) {
	c.Header("Content-Disposition", `attachment; filename=`+export.Filename)
	c.Data(http.StatusOK, xlsxContentType, export.Data)
}
