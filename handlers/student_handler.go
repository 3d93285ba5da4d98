package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aiat-sdml/attendance-api/store"
)

type StudentHandler struct {
	store *store.Store
}

func NewStudentHandler(st *store.Store) *StudentHandler { return &StudentHandler{store: st} }

type studentPayload struct {
	RollNo string `json:"roll_no" validate:"required,max=30"`
	Name   string `json:"name"    validate:"required,max=100"`
}

func (p *studentPayload) normalize() {
	p.RollNo = strings.TrimSpace(p.RollNo)
	p.Name = strings.Join(strings.Fields(p.Name), " ")
}

// GET /api/students — full roster, name ascending.
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.store.Students()
	if err != nil {
		return failFromStore(c, err)
	}
	return c.JSON(http.StatusOK, students)
}

// POST /api/students
func (h *StudentHandler) Create(c echo.Context) error {
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid payload")
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return fail(c, http.StatusBadRequest, "Roll no and name are required")
	}
	student, err := h.store.CreateStudent(p.RollNo, p.Name)
	if err != nil {
		return failFromStore(c, err)
	}
	return c.JSON(http.StatusCreated, student)
}

// DELETE /api/students/:id — dependent attendance rows go with the student.
func (h *StudentHandler) Delete(c echo.Context) error {
	id := atoiOr(c.Param("id"), 0)
	if id <= 0 {
		return fail(c, http.StatusBadRequest, "Invalid student id")
	}
	if err := h.store.DeleteStudent(uint(id)); err != nil {
		return failFromStore(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
