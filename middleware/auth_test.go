package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petcare-api/config"
	"petcare-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, role models.UserRole) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  uint(7),
		"username": "tester",
		"role":     role,
		"exp":      now.Add(time.Hour).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret)
	assert.NoError(t, err)
	return token
}

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	protected := router.Group("/")
	protected.Use(AuthMiddleware())
	protected.GET("/me", func(c *gin.Context) {
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	protected.GET("/moderation",
		RequireRole(models.RoleModerator, models.RoleAdmin, models.RoleVetPartner),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	return router
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := setupProtectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedToken(t *testing.T) {
	router := setupProtectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	router := setupProtectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleOwner))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "owner")
}

func TestRequireRoleForbidsOwners(t *testing.T) {
	router := setupProtectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/moderation", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleOwner))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAllowsModerators(t *testing.T) {
	router := setupProtectedRouter()

	for _, role := range []models.UserRole{models.RoleModerator, models.RoleAdmin, models.RoleVetPartner} {
		req := httptest.NewRequest(http.MethodGet, "/moderation", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, role))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "role %s should reach moderation routes", role)
	}
}
