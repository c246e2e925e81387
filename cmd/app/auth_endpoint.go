package main

import (
	"net/http"

	"GameCatalogAPI/internal/services"
	"GameCatalogAPI/internal/validation"

	"github.com/labstack/echo/v4"
)

func registerAuthRoutes(e *echo.Echo, authSvc *services.AuthService) {
	e.GET("/", welcomeHandler())
	e.POST("/auth", loginHandler(authSvc))
}

func welcomeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "welcome to the game catalog API"})
	}
}

func loginHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req validation.LoginPayload
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
		}
		signed, err := authSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, echo.Map{"token": signed})
	}
}
