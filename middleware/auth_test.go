package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayhub-backend/models"
	"stayhub-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := services.NewAuthService(nil, "test-secret", time.Hour, zerolog.Nop())

	r := gin.New()
	r.GET("/me", RequireAuth(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c), "role": CurrentRole(c)})
	})

	user := &models.User{FullName: "Staff", Role: models.RoleManager}
	user.ID = 42
	token, err := auth.IssueToken(user)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":42`)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := services.NewAuthService(nil, "other-secret", time.Hour, zerolog.Nop())
		forged, err := other.IssueToken(user)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCurrentClaimsUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, CurrentClaims(c))
	assert.Equal(t, uint(0), CurrentUserID(c))
	assert.Equal(t, models.UserRole(""), CurrentRole(c))
}
