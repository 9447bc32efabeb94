package controllers

import (
	"log/slog"
	"net/http"

	"groupsignup/internal/delivery/http/helpers"
)

// Exporter saves the registration report to a file.
type Exporter interface {
	SaveToFile(path string) error
}

// ExportController triggers an on-demand export of the registration report.
type ExportController struct {
	logger   *slog.Logger
	exporter Exporter
	path     string
}

// NewExportController creates an ExportController writing to path.
func NewExportController(logger *slog.Logger, exporter Exporter, path string) *ExportController {
	return &ExportController{logger: logger, exporter: exporter, path: path}
}

// Export handles POST /admin/export. A write failure is reported to the
// caller; committed registrations stay intact in memory either way.
func (c *ExportController) Export(w http.ResponseWriter, r *http.Request) {
	if err := c.exporter.SaveToFile(c.path); err != nil {
		c.logger.Error("export failed", "file", c.path, "error", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeExportFailed, "could not write the registration report")
		return
	}
	c.logger.Info("registrations exported", "file", c.path)
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"file": c.path})
}
