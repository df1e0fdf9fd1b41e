package main

import (
	"net/http"

	"github.com/ThanhAnUp/ArtisanHaven/internal/services"

	"github.com/labstack/echo/v4"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

func registerNewsletterRoutes(g *echo.Group, ns *services.NewsletterService) {
	g.POST("/newsletter", func(c echo.Context) error {
		req := new(subscribeRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		sub, err := ns.Subscribe(c.Request().Context(), req.Email)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, sub)
	})
}
