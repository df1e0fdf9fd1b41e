package main

import (
	"net/http"
	"strconv"

	"github.com/ThanhAnUp/ArtisanHaven/internal/middleware"
	"github.com/ThanhAnUp/ArtisanHaven/internal/services"

	"github.com/labstack/echo/v4"
)

type addCartRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")

	// GET cart with derived totals
	p.GET("", func(c echo.Context) error {
		cart, err := cs.Get(c.Request().Context(), middleware.SessionID(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, cart)
	})

	// ADD item (merges into an existing line for the same product)
	p.POST("", func(c echo.Context) error {
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		item, err := cs.Add(c.Request().Context(), middleware.SessionID(c), req.ProductID, req.Quantity)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, item)
	})

	// UPDATE quantity (replaces)
	p.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid cart item id"})
		}
		req := new(updateCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		item, serr := cs.UpdateQuantity(c.Request().Context(), id, req.Quantity)
		if serr != nil {
			return writeError(c, serr)
		}
		return c.JSON(http.StatusOK, item)
	})

	// REMOVE item
	p.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid cart item id"})
		}
		if serr := cs.Remove(c.Request().Context(), id); serr != nil {
			return writeError(c, serr)
		}
		return c.NoContent(http.StatusNoContent)
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		if err := cs.Clear(c.Request().Context(), middleware.SessionID(c)); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
