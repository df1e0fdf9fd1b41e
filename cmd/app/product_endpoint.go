package main

import (
	"net/http"
	"strconv"

	"github.com/ThanhAnUp/ArtisanHaven/internal/services"

	"github.com/labstack/echo/v4"
)

// registerProductRoutes mounts the catalog endpoints.
//
//	GET /products                     -> full catalog
//	GET /products/featured            -> featured selection
//	GET /products/category/:category  -> filter by category
//	GET /products/search?q=           -> substring search over name+description
//	GET /products/:id                 -> single product
func registerProductRoutes(g *echo.Group, ps *services.ProductService) {
	g.GET("/products", func(c echo.Context) error {
		list, err := ps.List(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/products/featured", func(c echo.Context) error {
		list, err := ps.ListFeatured(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/products/category/:category", func(c echo.Context) error {
		list, err := ps.ListByCategory(c.Request().Context(), c.Param("category"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/products/search", func(c echo.Context) error {
		list, err := ps.Search(c.Request().Context(), c.QueryParam("q"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		}
		p, serr := ps.Get(c.Request().Context(), id)
		if serr != nil {
			return writeError(c, serr)
		}
		return c.JSON(http.StatusOK, p)
	})
}
