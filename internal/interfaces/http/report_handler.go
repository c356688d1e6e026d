package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaoqi-icu/negoprep/internal/domain/negotiation"
	"github.com/zaoqi-icu/negoprep/internal/export"
	"github.com/zaoqi-icu/negoprep/internal/logging"
	"github.com/zaoqi-icu/negoprep/internal/planning"
	"github.com/zaoqi-icu/negoprep/internal/reporting"
)

// Exporter captures rendered report HTML into a file artifact. Satisfied by
// the export package.
type Exporter interface {
	Export(ctx context.Context, html string, format negotiation.ExportFormat) (*export.Result, error)
}

// ReportHandler renders and exports the preparation report.
type ReportHandler struct {
	store    *planning.Store
	gen      *reporting.Generator
	exporter Exporter
	log      logging.Logger
}

// NewReportHandler returns a ReportHandler.
func NewReportHandler(store *planning.Store, gen *reporting.Generator, exporter Exporter, log logging.Logger) *ReportHandler {
	return &ReportHandler{store: store, gen: gen, exporter: exporter, log: log.Named("http.report")}
}

// getReport returns the rendered report as an HTML document.
func (h *ReportHandler) getReport(c *gin.Context) {
	html, err := h.gen.Render(h.store.Get())
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

type exportRequest struct {
	// Format overrides the stored report setting when non-empty.
	Format string `json:"format"`
}

// postExport renders the report and captures it as a PNG or PDF file.
func (h *ReportHandler) postExport(c *gin.Context) {
	var req exportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeInvalidBody(c, err)
			return
		}
	}

	data := h.store.Get()
	format := data.ReportSettings.Format
	if req.Format != "" {
		format = negotiation.ExportFormat(req.Format)
	}

	html, err := h.gen.Render(data)
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := h.exporter.Export(c.Request.Context(), html, format)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
