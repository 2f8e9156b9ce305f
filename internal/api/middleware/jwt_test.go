package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtTestRouter(signingKey []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(signingKey))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  GetUserID(c.Request.Context()),
			"username": GetUsername(c.Request.Context()),
		})
	})
	return r
}

func TestJWTAuth_ValidToken(t *testing.T) {
	cfg := JWTConfig{
		SigningKey: []byte("test-signing-key-1234567890123456"),
		Issuer:     "routesmith",
		ExpiresIn:  time.Hour,
	}
	token, _, err := GenerateToken(cfg, "u-1", "alice", []string{"planner"}, []string{PermissionTemplateRead})
	require.NoError(t, err)

	r := jwtTestRouter(cfg.SigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u-1"`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	r := jwtTestRouter([]byte("test-signing-key-1234567890123456"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing authorization header")
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	r := jwtTestRouter([]byte("test-signing-key-1234567890123456"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_WrongKey(t *testing.T) {
	token, _, err := GenerateToken(JWTConfig{
		SigningKey: []byte("one-signing-key-12345678901234567"),
		Issuer:     "routesmith",
		ExpiresIn:  time.Hour,
	}, "u-1", "alice", nil, nil)
	require.NoError(t, err)

	r := jwtTestRouter([]byte("another-signing-key-1234567890123"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	cfg := JWTConfig{
		SigningKey: []byte("test-signing-key-1234567890123456"),
		Issuer:     "routesmith",
		ExpiresIn:  -time.Minute,
	}
	token, _, err := GenerateToken(cfg, "u-1", "alice", nil, nil)
	require.NoError(t, err)

	r := jwtTestRouter(cfg.SigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token expired")
}
