package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aiat-sdml/attendance-api/store"
)

type ReportHandler struct {
	store *store.Store
}

func NewReportHandler(st *store.Store) *ReportHandler { return &ReportHandler{store: st} }

// GET /api/student_report?query=<name or roll no fragment>
// "No match" is a successful empty result: student comes back null with an
// empty rows array.
func (h *ReportHandler) StudentReport(c echo.Context) error {
	report, err := h.store.StudentHistory(c.QueryParam("query"))
	if err != nil {
		return failFromStore(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"ok":      true,
		"student": report.Student,
		"rows":    report.Rows,
	})
}
