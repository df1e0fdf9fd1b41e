package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ThanhAnUp/ArtisanHaven/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		body   string
	}{
		{apperr.NotFound("product not found"), http.StatusNotFound, `{"error":"product not found"}`},
		{apperr.Invalid("quantity must be a positive integer"), http.StatusBadRequest, `{"error":"quantity must be a positive integer"}`},
		{apperr.EmptyCart("cart is empty"), http.StatusBadRequest, `{"error":"cart is empty"}`},
		{apperr.Conflict("already exists"), http.StatusConflict, `{"error":"already exists"}`},
		{apperr.Internal(errors.New("pq: connection refused")), http.StatusInternalServerError, `{"error":"internal error"}`},
		{errors.New("unexpected"), http.StatusInternalServerError, `{"error":"internal error"}`},
	}

	e := echo.New()
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, writeError(c, tc.err))
		assert.Equal(t, tc.status, rec.Code)
		assert.JSONEq(t, tc.body, rec.Body.String())
	}
}
