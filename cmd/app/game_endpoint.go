package main

import (
	"fmt"
	"net/http"
	"strconv"

	"GameCatalogAPI/internal/apperr"
	"GameCatalogAPI/internal/middleware"
	"GameCatalogAPI/internal/repository"
	"GameCatalogAPI/internal/services"
	"GameCatalogAPI/internal/token"
	"GameCatalogAPI/internal/validation"

	"github.com/labstack/echo/v4"
)

// registerGameRoutes mounts the catalog endpoints. All of them require a
// valid bearer token:
//
//	GET    /games     -> list (pagination + filters via query params)
//	GET    /game/:id  -> get
//	POST   /game      -> create
//	PUT    /game/:id  -> partial update
//	DELETE /game/:id  -> delete
func registerGameRoutes(e *echo.Echo, gs *services.GameService, tokens *token.Service) {
	g := e.Group("", middleware.JWTAuth(tokens))
	g.GET("/games", listGamesHandler(gs))
	g.GET("/game/:id", getGameHandler(gs))
	g.POST("/game", createGameHandler(gs))
	g.PUT("/game/:id", updateGameHandler(gs))
	g.DELETE("/game/:id", deleteGameHandler(gs))
}

func listGamesHandler(gs *services.GameService) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter, page, perPage, err := parseListQuery(c)
		if err != nil {
			return err
		}
		res, err := gs.List(c.Request().Context(), filter, page, perPage)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, res)
	}
}

// parseListQuery reads pagination and filter params. Filter params must
// parse to their declared type; page and per_page silently fall back to the
// defaults when malformed.
func parseListQuery(c echo.Context) (repository.ListFilter, int, int, error) {
	var f repository.ListFilter

	f.Title = c.QueryParam("title")
	if v := c.QueryParam("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return f, 0, 0, fmt.Errorf("%w: year must be an integer", apperr.ErrInvalidParameter)
		}
		f.Year = &year
	}
	if v := c.QueryParam("min_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, 0, 0, fmt.Errorf("%w: min_price must be a number", apperr.ErrInvalidParameter)
		}
		f.MinPrice = &price
	}
	if v := c.QueryParam("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, 0, 0, fmt.Errorf("%w: max_price must be a number", apperr.ErrInvalidParameter)
		}
		f.MaxPrice = &price
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	return f, page, perPage, nil
}

func getGameHandler(gs *services.GameService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}
		g, err := gs.Get(c.Request().Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, g)
	}
}

func createGameHandler(gs *services.GameService) echo.HandlerFunc {
	return func(c echo.Context) error {
		if middleware.GetClaims(c) == nil {
			return apperr.ErrInvalidToken
		}
		var p validation.GamePayload
		if err := c.Bind(&p); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
		}
		id, err := gs.Create(c.Request().Context(), p)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, echo.Map{"id": id})
	}
}

func updateGameHandler(gs *services.GameService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}
		var p validation.GamePayload
		if err := c.Bind(&p); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
		}
		if err := gs.Update(c.Request().Context(), id, p); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "game updated"})
	}
}

func deleteGameHandler(gs *services.GameService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}
		if err := gs.Delete(c.Request().Context(), id); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "game deleted"})
	}
}

func parseIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
