package main

import (
	"net/http"

	"github.com/ThanhAnUp/ArtisanHaven/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// writeError maps the service error taxonomy onto HTTP statuses.
// Internal causes are logged, never returned to the client.
func writeError(c echo.Context, err error) error {
	var status int
	msg := err.Error()

	switch apperr.CodeOf(err) {
	case apperr.CodeNotFound:
		status = http.StatusNotFound
	case apperr.CodeInvalid, apperr.CodeEmptyCart:
		status = http.StatusBadRequest
	case apperr.CodeConflict:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
		logrus.WithError(err).Error("internal error")
		msg = "internal error"
	}
	return c.JSON(status, map[string]string{"error": msg})
}
