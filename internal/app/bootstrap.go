// Package app is the composition root. Bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"routesmith.io/routesmith/internal/api/handlers"
	"routesmith.io/routesmith/internal/api/middleware"
	"routesmith.io/routesmith/internal/config"
	"routesmith.io/routesmith/internal/domain"
	"routesmith.io/routesmith/internal/governance/audit"
	"routesmith.io/routesmith/internal/infrastructure"
	"routesmith.io/routesmith/internal/jobs"
	"routesmith.io/routesmith/internal/pkg/logger"
	"routesmith.io/routesmith/internal/pkg/worker"
	"routesmith.io/routesmith/internal/service"
	"routesmith.io/routesmith/internal/usecase"
)

// Application holds composed application dependencies.
type Application struct {
	Config     *config.Config
	Router     *gin.Engine
	DB         *infrastructure.DatabaseClients
	Pools      *worker.Pools
	Dispatcher *domain.EventDispatcher
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database clients: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		AuditPoolSize:   cfg.Worker.AuditPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	dispatcher := domain.NewEventDispatcher()
	auditLog := audit.NewLogger(db.EntClient, pools)
	templateService := service.NewTemplateService(db.EntClient, dispatcher)
	activation := usecase.NewActivationWriter(db.Pool, dispatcher, auditLog)
	forker := usecase.NewVersionForker(db.EntClient, dispatcher, auditLog)

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewEffectivitySweepWorker(db.EntClient, dispatcher))
	if err := db.InitRiverClient(workers, cfg.River); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river client: %w", err)
	}

	// Effectivity sweep: retire ACTIVE templates whose window closed.
	// Runs once on startup and then on the configured interval.
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.River.SweepInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.EffectivitySweepArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)

	jwtCfg := middleware.JWTConfig{
		SigningKey: []byte(cfg.Security.JWTSigningKey),
		Issuer:     cfg.Security.JWTIssuer,
	}

	server := handlers.NewServer(handlers.ServerDeps{
		EntClient:   db.EntClient,
		Pool:        db.Pool,
		JWTCfg:      jwtCfg,
		Audit:       auditLog,
		Templates:   templateService,
		Activation:  activation,
		Forker:      forker,
		RiverClient: db.RiverClient,
	})

	logger.Info("Application bootstrapped")
	return &Application{
		Config:     cfg,
		Router:     newRouter(cfg, server, jwtCfg.SigningKey),
		DB:         db,
		Pools:      pools,
		Dispatcher: dispatcher,
	}, nil
}
