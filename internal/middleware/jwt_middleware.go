package middleware

import (
	"net/http"
	"strings"

	"GameCatalogAPI/internal/token"

	"github.com/labstack/echo/v4"
)

// invalidTokenMessage is the single message returned for every
// authentication failure. The gate never reveals whether the token was
// missing, malformed, expired or signed with the wrong key.
const invalidTokenMessage = "invalid or missing token"

const claimsContextKey = "auth_claims"

// JWTAuth returns an Echo middleware that requires a valid bearer token.
// The Authorization header must be exactly "Bearer <token>". On success the
// verified claims are stored in the request context for handlers to read
// via GetClaims.
func JWTAuth(svc *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			parts := strings.Split(auth, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": invalidTokenMessage})
			}
			claims, err := svc.Verify(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": invalidTokenMessage})
			}
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// GetClaims extracts the verified claims set by JWTAuth, or nil when the
// request did not pass through the middleware.
func GetClaims(c echo.Context) *token.Claims {
	v := c.Get(claimsContextKey)
	if v == nil {
		return nil
	}
	if cl, ok := v.(*token.Claims); ok {
		return cl
	}
	return nil
}
