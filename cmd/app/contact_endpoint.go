package main

import (
	"net/http"

	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
	"github.com/ThanhAnUp/ArtisanHaven/internal/services"

	"github.com/labstack/echo/v4"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func registerContactRoutes(g *echo.Group, cs *services.ContactService) {
	g.POST("/contact", func(c echo.Context) error {
		req := new(contactRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		submission, err := cs.Submit(c.Request().Context(), &model.Contact{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, submission)
	})
}
