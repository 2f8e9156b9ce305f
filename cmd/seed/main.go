// Package main provides routing catalog seeding for RouteSmith.
//
// Reads a YAML catalog of process templates and creates any that do not
// exist yet. Idempotent: templates are matched by code, existing ones are
// left untouched.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"routesmith.io/routesmith/ent/processtemplate"
	"routesmith.io/routesmith/internal/config"
	"routesmith.io/routesmith/internal/domain"
	"routesmith.io/routesmith/internal/infrastructure"
	"routesmith.io/routesmith/internal/pkg/logger"
	"routesmith.io/routesmith/internal/service"
)

const defaultCatalogPath = "seed/templates.yaml"

// catalog is the YAML document root.
type catalog struct {
	Templates []catalogTemplate `yaml:"templates"`
}

type catalogTemplate struct {
	Code          string        `yaml:"code"`
	Name          string        `yaml:"name"`
	Description   string        `yaml:"description"`
	ProductSKU    string        `yaml:"product_sku"`
	Version       string        `yaml:"version"`
	EffectiveFrom *time.Time    `yaml:"effective_from"`
	EffectiveTo   *time.Time    `yaml:"effective_to"`
	Steps         []catalogStep `yaml:"steps"`
}

type catalogStep struct {
	OperationName            string   `yaml:"operation_name"`
	OperationType            string   `yaml:"operation_type"`
	OperationCode            string   `yaml:"operation_code"`
	Description              string   `yaml:"description"`
	TargetQty                *float64 `yaml:"target_qty"`
	EstimatedDurationMinutes *int     `yaml:"estimated_duration_minutes"`
	IsParallel               bool     `yaml:"is_parallel"`
	Optional                 bool     `yaml:"optional"`
	ProducesOutputBatch      bool     `yaml:"produces_output_batch"`
	AllowsSplit              bool     `yaml:"allows_split"`
	AllowsMerge              bool     `yaml:"allows_merge"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	path := defaultCatalogPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cat, err := loadCatalog(path)
	if err != nil {
		return fmt.Errorf("load catalog %s: %w", path, err)
	}

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	templates := service.NewTemplateService(db.EntClient, nil)

	logger.Info("Starting catalog seeding...", zap.String("catalog", path))

	var created, skipped int
	for _, tpl := range cat.Templates {
		exists, err := db.EntClient.ProcessTemplate.Query().
			Where(processtemplate.CodeEQ(tpl.Code)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check template %s: %w", tpl.Code, err)
		}
		if exists {
			skipped++
			continue
		}

		if _, err := templates.Create(ctx, specFromCatalog(tpl), "seed"); err != nil {
			return fmt.Errorf("create template %s: %w", tpl.Code, err)
		}
		created++
		logger.Info("Template seeded", zap.String("code", tpl.Code), zap.String("name", tpl.Name))
	}

	logger.Info("Catalog seeding completed",
		zap.Int("created", created),
		zap.Int("skipped", skipped),
	)
	return nil
}

func loadCatalog(path string) (*catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	for i, tpl := range cat.Templates {
		if tpl.Code == "" {
			return nil, fmt.Errorf("templates[%d]: code is required for idempotent seeding", i)
		}
	}
	return &cat, nil
}

func specFromCatalog(tpl catalogTemplate) domain.TemplateSpec {
	version := tpl.Version
	if version == "" {
		version = domain.DefaultVersionLabel
	}
	steps := make([]domain.StepSpec, len(tpl.Steps))
	for i, s := range tpl.Steps {
		steps[i] = domain.StepSpec{
			SequenceNumber:           i + 1,
			OperationName:            s.OperationName,
			OperationType:            domain.OperationType(s.OperationType),
			OperationCode:            s.OperationCode,
			Description:              s.Description,
			TargetQty:                s.TargetQty,
			EstimatedDurationMinutes: s.EstimatedDurationMinutes,
			IsParallel:               s.IsParallel,
			Mandatory:                !s.Optional,
			ProducesOutputBatch:      s.ProducesOutputBatch,
			AllowsSplit:              s.AllowsSplit,
			AllowsMerge:              s.AllowsMerge,
		}
	}
	return domain.TemplateSpec{
		Code:          tpl.Code,
		Name:          tpl.Name,
		Description:   tpl.Description,
		ProductSKU:    tpl.ProductSKU,
		Version:       version,
		EffectiveFrom: tpl.EffectiveFrom,
		EffectiveTo:   tpl.EffectiveTo,
		Steps:         steps,
	}
}
