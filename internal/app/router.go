package app

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"routesmith.io/routesmith/internal/api/handlers"
	"routesmith.io/routesmith/internal/api/middleware"
	"routesmith.io/routesmith/internal/config"
)

// Public routes that do NOT require JWT authentication.
var publicPrefixes = []string{
	"/api/v1/health/",
}

func newRouter(cfg *config.Config, server *handlers.Server, signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(corsMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(jwtSkipPublic(signingKey))

	registerRoutes(router, server)
	return router
}

// registerRoutes wires the template API under /api/v1 with per-route
// permission checks.
func registerRoutes(router *gin.Engine, server *handlers.Server) {
	v1 := router.Group("/api/v1")

	v1.GET("/health/live", server.GetLiveness)
	v1.GET("/health/ready", server.GetReadiness)

	read := middleware.RequirePermission(middleware.PermissionTemplateRead)
	write := middleware.RequirePermission(middleware.PermissionTemplateWrite)
	activate := middleware.RequirePermission(middleware.PermissionTemplateActivate)
	del := middleware.RequirePermission(middleware.PermissionTemplateDelete)

	templates := v1.Group("/templates")
	templates.GET("", read, server.ListTemplates)
	templates.POST("", write, server.CreateTemplate)
	templates.GET("/:template_id", read, server.GetTemplate)
	templates.PUT("/:template_id", write, server.UpdateTemplate)
	templates.DELETE("/:template_id", del, server.DeleteTemplate)
	templates.POST("/:template_id/activate", activate, server.ActivateTemplate)
	templates.POST("/:template_id/deactivate", activate, server.DeactivateTemplate)
	templates.GET("/:template_id/versions", read, server.ListTemplateVersions)
	templates.POST("/:template_id/versions", write, server.CreateTemplateVersion)
}

// corsMiddleware allows the routing editor frontend origin.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(buildCORSConfig(allowedOrigins))
}

// buildCORSConfig falls back to the local editor dev server when no
// origins are configured, so cors.New never sees an empty allowlist.
func buildCORSConfig(allowedOrigins []string) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173"}
	}
	corsCfg.AllowOrigins = allowedOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, middleware.RequestIDHeader)
	return corsCfg
}

// jwtSkipPublic returns middleware that applies JWT auth only on non-public routes.
func jwtSkipPublic(signingKey []byte) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(signingKey)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		jwtMw(c)
	}
}
