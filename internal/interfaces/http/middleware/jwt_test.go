package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartrade/backend/internal/infrastructure/auth"
	"github.com/cartrade/backend/internal/infrastructure/config"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key",
		AccessTokenExpiration:  time.Hour,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "cartrade-test",
		MaxRefreshCount:        10,
	})
}

func authedRouter(t *testing.T, svc *auth.JWTService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID(), JWTAuthMiddleware(svc))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  GetJWTUserID(c),
			"username": GetJWTUsername(c),
			"role":     GetJWTRole(c),
		})
	})
	return r
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	svc := testJWTService()
	r := authedRouter(t, svc)

	userID := uuid.New()
	pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   userID,
		Username: "karim",
		Role:     "trader",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+pair.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "trader")
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	r := authedRouter(t, testJWTService())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	r := authedRouter(t, testJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthHeaderKey, "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	svc := testJWTService()
	r := authedRouter(t, svc)

	pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "karim",
		Role:     "trader",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+pair.RefreshToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_SkipPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(JWTAuthMiddlewareWithConfig(JWTMiddlewareConfig{
		JWTService: testJWTService(),
		SkipPaths:  []string{"/health"},
	}))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
