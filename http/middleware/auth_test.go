package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeremi16/synify-be/config"
	"github.com/Jeremi16/synify-be/entity"
	"github.com/Jeremi16/synify-be/utils"
)

func testEnvConfig() *config.EnvConfig {
	cfg := &config.EnvConfig{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.Expire = 3600
	return cfg
}

func signedToken(t *testing.T, cfg *config.EnvConfig, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(&entity.User{
		ID:    uuid.New(),
		Email: "listener@example.com",
		Role:  role,
	}, cfg)
	require.NoError(t, err)
	return token
}

func newAuthRouter(cfg *config.EnvConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	r.GET("/admin", AuthMiddleware(cfg), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/open", OptionalAuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := newAuthRouter(testEnvConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	r := newAuthRouter(testEnvConfig())

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	cfg := testEnvConfig()
	r := newAuthRouter(cfg)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, cfg, entity.RoleUser))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user_id")
}

func TestAdminMiddlewareRejectsUserRole(t *testing.T) {
	cfg := testEnvConfig()
	r := newAuthRouter(cfg)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, cfg, entity.RoleUser))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddlewareAcceptsAdminRole(t *testing.T) {
	cfg := testEnvConfig()
	r := newAuthRouter(cfg)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, cfg, entity.RoleAdmin))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuthPassesAnonymous(t *testing.T) {
	r := newAuthRouter(testEnvConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/open", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}

func TestOptionalAuthInjectsIdentityWhenPresent(t *testing.T) {
	cfg := testEnvConfig()
	r := newAuthRouter(cfg)

	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, cfg, entity.RoleUser))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"user_id":""`)
}
