package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SaiSindhuSubbisetty/CatalogService/middlewares"
	"github.com/SaiSindhuSubbisetty/CatalogService/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/protected", middlewares.AuthMiddleware(secret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})
	return r
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingToken(t *testing.T) {
	r := protectedRouter("admin")
	assert.Equal(t, http.StatusUnauthorized, request(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, request(r, "Basic abc").Code)
}

func TestGarbageToken(t *testing.T) {
	r := protectedRouter("admin")
	assert.Equal(t, http.StatusUnauthorized, request(r, "Bearer not-a-jwt").Code)
}

func TestWrongSecretRejected(t *testing.T) {
	r := protectedRouter("admin")
	token, err := utils.GenerateToken(1, "admin", "other-secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, request(r, "Bearer "+token).Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	r := protectedRouter("admin")
	token, err := utils.GenerateToken(1, "admin", secret, -time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, request(r, "Bearer "+token).Code)
}

func TestRoleEnforced(t *testing.T) {
	r := protectedRouter("admin")

	token, err := utils.GenerateToken(2, "customer", secret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, request(r, "Bearer "+token).Code)

	token, err = utils.GenerateToken(1, "admin", secret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, request(r, "Bearer "+token).Code)
}

func TestNoRolesRequiredAcceptsAnyValidToken(t *testing.T) {
	r := protectedRouter()
	token, err := utils.GenerateToken(2, "customer", secret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, request(r, "Bearer "+token).Code)
}
