// Package handlers implements the HTTP handlers for the template API.
//
// Route registration happens in internal/app; handlers do NOT register
// their own routes.
package handlers

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"routesmith.io/routesmith/ent"
	"routesmith.io/routesmith/internal/api/middleware"
	"routesmith.io/routesmith/internal/governance/audit"
	"routesmith.io/routesmith/internal/service"
	"routesmith.io/routesmith/internal/usecase"
)

// Server implements all API handlers.
type Server struct {
	client      *ent.Client
	pool        *pgxpool.Pool
	jwtCfg      middleware.JWTConfig
	audit       *audit.Logger
	templates   *service.TemplateService
	activation  *usecase.ActivationWriter
	forker      *usecase.VersionForker
	riverClient *river.Client[pgx.Tx]
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	JWTCfg      middleware.JWTConfig
	Audit       *audit.Logger
	Templates   *service.TemplateService
	Activation  *usecase.ActivationWriter
	Forker      *usecase.VersionForker
	RiverClient *river.Client[pgx.Tx]
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:      deps.EntClient,
		pool:        deps.Pool,
		jwtCfg:      deps.JWTCfg,
		audit:       deps.Audit,
		templates:   deps.Templates,
		activation:  deps.Activation,
		forker:      deps.Forker,
		riverClient: deps.RiverClient,
	}
}

// actorFromCtx extracts the authenticated user ID from the request context.
// All handlers use this instead of hardcoded "anonymous".
func actorFromCtx(c interface{ GetString(any) string }) string {
	if uid := c.GetString("user_id"); uid != "" {
		return uid
	}
	return "anonymous"
}
