package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aiat-sdml/attendance-api/store"
)

type SubjectHandler struct {
	store *store.Store
}

func NewSubjectHandler(st *store.Store) *SubjectHandler { return &SubjectHandler{store: st} }

type subjectPayload struct {
	Name string `json:"name" validate:"required,max=100"`
}

// GET /api/subjects
func (h *SubjectHandler) List(c echo.Context) error {
	subjects, err := h.store.Subjects()
	if err != nil {
		return failFromStore(c, err)
	}
	return c.JSON(http.StatusOK, subjects)
}

// POST /api/subjects
func (h *SubjectHandler) Create(c echo.Context) error {
	var p subjectPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid payload")
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := validate.Struct(&p); err != nil {
		return fail(c, http.StatusBadRequest, "Subject name is required")
	}
	subject, err := h.store.CreateSubject(p.Name)
	if err != nil {
		return failFromStore(c, err)
	}
	return c.JSON(http.StatusCreated, subject)
}

// DELETE /api/subjects/:id — dependent attendance rows go with the subject.
func (h *SubjectHandler) Delete(c echo.Context) error {
	id := atoiOr(c.Param("id"), 0)
	if id <= 0 {
		return fail(c, http.StatusBadRequest, "Invalid subject id")
	}
	if err := h.store.DeleteSubject(uint(id)); err != nil {
		return failFromStore(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
