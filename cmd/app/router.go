package main

import (
	"log/slog"

	"GameCatalogAPI/internal/config"
	"GameCatalogAPI/internal/services"
	"GameCatalogAPI/internal/token"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// maxBodySize caps request bodies; anything larger is rejected with 413
// before validation runs.
const maxBodySize = "1M"

func newRouter(cfg *config.Config, logger *slog.Logger, authSvc *services.AuthService,
	gameSvc *services.GameService, tokens *token.Service) *echo.Echo {

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = newHTTPErrorHandler(logger)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.AllowedOrigins}))
	e.Use(echomw.BodyLimit(maxBodySize))

	registerAuthRoutes(e, authSvc)
	registerGameRoutes(e, gameSvc, tokens)

	return e
}
