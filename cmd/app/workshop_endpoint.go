package main

import (
	"net/http"
	"strconv"

	"github.com/ThanhAnUp/ArtisanHaven/internal/services"

	"github.com/labstack/echo/v4"
)

func registerWorkshopRoutes(g *echo.Group, ws *services.WorkshopService) {
	g.GET("/workshops", func(c echo.Context) error {
		list, err := ws.List(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/workshops/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid workshop id"})
		}
		w, serr := ws.Get(c.Request().Context(), id)
		if serr != nil {
			return writeError(c, serr)
		}
		return c.JSON(http.StatusOK, w)
	})
}
