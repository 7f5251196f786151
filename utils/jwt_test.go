package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeremi16/synify-be/config"
	"github.com/Jeremi16/synify-be/entity"
)

func testJWTConfig() *config.EnvConfig {
	cfg := &config.EnvConfig{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.Expire = 3600
	return cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	cfg := testJWTConfig()
	user := &entity.User{
		ID:    uuid.New(),
		Email: "listener@example.com",
		Role:  entity.RoleUser,
	}

	tokenString, err := GenerateToken(user, cfg)
	require.NoError(t, err)

	token, err := ParseToken(tokenString, cfg)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, entity.RoleUser, claims["role"])
}

func TestParseTokenWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	user := &entity.User{ID: uuid.New(), Email: "a@b.c", Role: entity.RoleUser}

	tokenString, err := GenerateToken(user, cfg)
	require.NoError(t, err)

	other := testJWTConfig()
	other.JWT.SecretKey = "different-secret"
	_, err = ParseToken(tokenString, other)
	assert.Error(t, err)
}

func TestExtractTokenFromBearerHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Authorization", "Bearer abc123")

	assert.Equal(t, "abc123", ExtractToken(c))
}

func TestExtractTokenPrefersCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
	c.Request.Header.Set("Authorization", "Bearer header-token")

	assert.Equal(t, "cookie-token", ExtractToken(c))
}

func TestExtractTokenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)

	assert.Equal(t, "", ExtractToken(c))
}

func TestInjectClaimsToContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	userID := uuid.New()
	err := InjectClaimsToContext(c, jwt.MapClaims{
		"user_id": userID.String(),
		"email":   "listener@example.com",
		"role":    entity.RoleAdmin,
	})
	require.NoError(t, err)

	assert.Equal(t, userID.String(), c.GetString("user_id"))
	assert.Equal(t, entity.RoleAdmin, c.GetString("role"))

	got, err := GetUserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestInjectClaimsRejectsBadUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	err := InjectClaimsToContext(c, jwt.MapClaims{"user_id": "not-a-uuid"})
	assert.Error(t, err)
}
