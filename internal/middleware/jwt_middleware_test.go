package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"GameCatalogAPI/internal/token"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(svc *token.Service) *echo.Echo {
	e := echo.New()
	g := e.Group("", JWTAuth(svc))
	g.GET("/protected", func(c echo.Context) error {
		claims := GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no claims"})
		}
		return c.JSON(http.StatusOK, echo.Map{"email": claims.Email})
	})
	return e
}

func TestJWTAuthRejectsBadHeadersWithIdenticalBody(t *testing.T) {
	svc := token.NewService([]byte("test-secret"), time.Hour)
	e := newTestEcho(svc)

	expired := token.NewService([]byte("test-secret"), -time.Hour)
	expiredToken, err := expired.Issue(1, "diego@email.com")
	require.NoError(t, err)

	wrongKey := token.NewService([]byte("other-secret"), time.Hour)
	foreignToken, err := wrongKey.Issue(1, "diego@email.com")
	require.NoError(t, err)

	headers := map[string]string{
		"missing header":    "",
		"no scheme":         "sometoken",
		"wrong scheme":      "Token abc",
		"lowercase scheme":  "bearer abc",
		"empty token":       "Bearer ",
		"extra separator":   "Bearer a b",
		"garbage token":     "Bearer not-a-jwt",
		"expired token":     "Bearer " + expiredToken,
		"wrong signing key": "Bearer " + foreignToken,
	}

	for name, value := range headers {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if value != "" {
				req.Header.Set("Authorization", value)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, invalidTokenMessage, body["error"])
		})
	}
}

func TestJWTAuthAcceptsValidTokenAndExposesClaims(t *testing.T) {
	svc := token.NewService([]byte("test-secret"), time.Hour)
	e := newTestEcho(svc)

	signed, err := svc.Issue(7, "diego@email.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "diego@email.com", body["email"])
}

func TestGetClaimsOutsideMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Nil(t, GetClaims(c))
}
