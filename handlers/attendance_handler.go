package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aiat-sdml/attendance-api/store"
)

type AttendanceHandler struct {
	store *store.Store
}

func NewAttendanceHandler(st *store.Store) *AttendanceHandler { return &AttendanceHandler{store: st} }

type markPayload struct {
	StudentID uint   `json:"student_id"`
	Status    string `json:"status"`
}

type saveAttendancePayload struct {
	Date      string        `json:"date"`
	SubjectID uint          `json:"subject_id"`
	Marks     []markPayload `json:"marks"`
}

// POST /api/save_attendance
// Body: { "date":"dd-mm-yyyy", "subject_id":1, "marks":[{student_id,status},...] }
// The store checks the batch in a fixed order and commits all marks or none;
// error precedence (bad date before missing subject, per-mark order for
// status/student) lives there, not here.
func (h *AttendanceHandler) Save(c echo.Context) error {
	var p saveAttendancePayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid payload")
	}

	marks := make([]store.Mark, 0, len(p.Marks))
	for _, m := range p.Marks {
		marks = append(marks, store.Mark{StudentID: m.StudentID, Status: m.Status})
	}
	if err := h.store.SaveSession(p.Date, p.SubjectID, marks); err != nil {
		return failFromStore(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// GET /api/get_attendance?subject_id=&date=dd-mm-yyyy
// Returns one record per roster student; students without a saved mark come
// back as "Absent".
func (h *AttendanceHandler) Get(c echo.Context) error {
	subjectID := atoiOr(c.QueryParam("subject_id"), 0)
	date := c.QueryParam("date")

	records, err := h.store.Session(uint(subjectID), date)
	if err != nil {
		return failFromStore(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "records": records})
}
