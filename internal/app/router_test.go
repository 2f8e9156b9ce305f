package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestBuildCORSConfig_DefaultsWhenOriginsEmpty(t *testing.T) {
	got := buildCORSConfig(nil)
	if len(got.AllowOrigins) != 1 || got.AllowOrigins[0] != "http://localhost:5173" {
		t.Fatalf("AllowOrigins = %#v, want local editor fallback", got.AllowOrigins)
	}
}

func TestBuildCORSConfig_KeepsConfiguredOrigins(t *testing.T) {
	got := buildCORSConfig([]string{"https://routing.plant.example"})
	if len(got.AllowOrigins) != 1 || got.AllowOrigins[0] != "https://routing.plant.example" {
		t.Fatalf("AllowOrigins = %#v", got.AllowOrigins)
	}

	var hasAuth bool
	for _, h := range got.AllowHeaders {
		if h == "Authorization" {
			hasAuth = true
		}
	}
	if !hasAuth {
		t.Fatalf("AllowHeaders = %#v, missing Authorization", got.AllowHeaders)
	}
}

func TestJWTSkipPublic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(jwtSkipPublic([]byte("test-signing-key")))
	router.GET("/api/v1/health/live", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/v1/templates", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Health endpoints bypass auth.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", w.Code)
	}

	// Everything else requires a bearer token.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("templates status = %d, want 401", w.Code)
	}
}
