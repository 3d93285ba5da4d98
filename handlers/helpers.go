package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/aiat-sdml/attendance-api/store"
)

var validate = validator.New()

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]any{"ok": false, "error": msg})
}

// failFromStore maps a store error to the wire shape: not-found kinds are
// 404, validation kinds are 400, anything else is a 500.
func failFromStore(c echo.Context, err error) error {
	var snf *store.StudentNotFoundError
	switch {
	case errors.Is(err, store.ErrSubjectNotFound), errors.As(err, &snf):
		return fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrInvalidDate),
		errors.Is(err, store.ErrMissingInput),
		errors.Is(err, store.ErrInvalidStatus),
		errors.Is(err, store.ErrMissingQuery):
		return fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrDuplicateRollNo), errors.Is(err, store.ErrDuplicateSubject):
		return fail(c, http.StatusConflict, err.Error())
	}
	return fail(c, http.StatusInternalServerError, err.Error())
}
