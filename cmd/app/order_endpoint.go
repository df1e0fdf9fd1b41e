package main

import (
	"net/http"
	"strconv"

	"github.com/ThanhAnUp/ArtisanHaven/internal/middleware"
	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
	"github.com/ThanhAnUp/ArtisanHaven/internal/services"

	"github.com/labstack/echo/v4"
)

func registerOrderRoutes(g *echo.Group, os *services.OrderService) {
	p := g.Group("/orders")

	// PLACE order from the session's cart
	p.POST("", func(c echo.Context) error {
		req := new(model.ShippingDetails)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		order, err := os.Place(c.Request().Context(), middleware.SessionID(c), *req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, order)
	})

	// LIST the session's orders
	p.GET("", func(c echo.Context) error {
		list, err := os.ListBySession(c.Request().Context(), middleware.SessionID(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	// GET one order with its snapshot items
	p.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid order id"})
		}
		order, serr := os.Get(c.Request().Context(), id)
		if serr != nil {
			return writeError(c, serr)
		}
		return c.JSON(http.StatusOK, order)
	})
}
