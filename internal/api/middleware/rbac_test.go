package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rbacTestRouter(permissions interface{}, required string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if permissions != nil {
			c.Set("permissions", permissions)
		}
		c.Next()
	})
	r.Use(RequirePermission(required))
	r.GET("/t", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name        string
		permissions interface{}
		want        int
	}{
		{"has permission", []string{PermissionTemplateWrite}, http.StatusNoContent},
		{"platform admin bypasses", []string{PermissionPlatformAdmin}, http.StatusNoContent},
		{"lacks permission", []string{PermissionTemplateRead}, http.StatusForbidden},
		{"no permissions in context", nil, http.StatusForbidden},
		{"wrong type", "template:write", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rbacTestRouter(tt.permissions, PermissionTemplateWrite)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
