package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolomonAgyire/Gallery/auth"
	"github.com/SolomonAgyire/Gallery/models"
)

const testSecret = "test-secret"

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/user", ValidateToken(testSecret), func(c *gin.Context) {
		id, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func TestValidateTokenMissingHeader(t *testing.T) {
	r := protectedRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenGarbage(t *testing.T) {
	r := protectedRouter()
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := auth.IssueToken(&models.User{ID: "u1", Email: "a@x.com"}, "other-secret")
	require.NoError(t, err)

	r := protectedRouter()
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenAccepted(t *testing.T) {
	u := &models.User{ID: "u1", Email: "a@x.com", LastLoginAt: time.Now()}
	token, err := auth.IssueToken(u, testSecret)
	require.NoError(t, err)

	r := protectedRouter()
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}
