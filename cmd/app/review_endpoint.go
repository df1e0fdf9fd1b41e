package main

import (
	"net/http"
	"strconv"

	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
	"github.com/ThanhAnUp/ArtisanHaven/internal/services"

	"github.com/labstack/echo/v4"
)

type addReviewRequest struct {
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
	Rating   int     `json:"rating"`
	Comment  string  `json:"comment"`
}

func registerReviewRoutes(g *echo.Group, rs *services.ReviewService) {
	g.GET("/products/:id/reviews", func(c echo.Context) error {
		productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		}
		list, serr := rs.ListByProduct(c.Request().Context(), productID)
		if serr != nil {
			return writeError(c, serr)
		}
		return c.JSON(http.StatusOK, list)
	})

	g.POST("/products/:id/reviews", func(c echo.Context) error {
		productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		}
		req := new(addReviewRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		review := &model.Review{
			Name:     req.Name,
			Location: req.Location,
			Rating:   req.Rating,
			Comment:  req.Comment,
		}
		created, serr := rs.Add(c.Request().Context(), productID, review)
		if serr != nil {
			return writeError(c, serr)
		}
		return c.JSON(http.StatusCreated, created)
	})
}
