package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/config"
	"app/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "mw-test-secret"

type mwResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func mustMakeJWT(t *testing.T, secret string, sub string, role string, method jwt.SigningMethod) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"iat":  1,
		"exp":  9999999999,
	}
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	return s
}

func newAuthTestEcho() *echo.Echo {
	cfg := config.Config{JWTSecret: testSecret}
	e := echo.New()

	e.GET("/private", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"user_id": c.Get(middleware.CtxUserIDKey),
			"role":    c.Get(middleware.CtxUserRoleKey),
		})
	}, middleware.AuthJWT(cfg))

	e.GET("/admin-only", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, middleware.AuthJWT(cfg), middleware.AdminRoleGuard())

	return e
}

func runRequest(t *testing.T, e *echo.Echo, path string, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	e := newAuthTestEcho()

	rec := runRequest(t, e, "/private", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var r mwResponse
	_ = json.NewDecoder(rec.Body).Decode(&r)
	assert.Equal(t, "error", r.Status)
}

func TestAuthJWT_MalformedScheme(t *testing.T) {
	e := newAuthTestEcho()
	token := mustMakeJWT(t, testSecret, "1", "USER", jwt.SigningMethodHS256)

	rec := runRequest(t, e, "/private", "Basic "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	e := newAuthTestEcho()
	token := mustMakeJWT(t, "other-secret", "1", "USER", jwt.SigningMethodHS256)

	rec := runRequest(t, e, "/private", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ValidTokenSetsContext(t *testing.T) {
	e := newAuthTestEcho()
	token := mustMakeJWT(t, testSecret, "42", "USER", jwt.SigningMethodHS256)

	rec := runRequest(t, e, "/private", "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	_ = json.NewDecoder(rec.Body).Decode(&body)
	assert.Equal(t, float64(42), body["user_id"])
	assert.Equal(t, "USER", body["role"])
}

// USERは403、ADMINは通す
func TestAdminRoleGuard(t *testing.T) {
	e := newAuthTestEcho()

	userToken := mustMakeJWT(t, testSecret, "1", "USER", jwt.SigningMethodHS256)
	rec := runRequest(t, e, "/admin-only", "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := mustMakeJWT(t, testSecret, "2", "ADMIN", jwt.SigningMethodHS256)
	rec = runRequest(t, e, "/admin-only", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}
