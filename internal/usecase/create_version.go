package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"routesmith.io/routesmith/ent"
	"routesmith.io/routesmith/ent/processtemplate"
	"routesmith.io/routesmith/ent/routingstep"
	"routesmith.io/routesmith/internal/domain"
	"routesmith.io/routesmith/internal/governance/audit"
	apperrors "routesmith.io/routesmith/internal/pkg/errors"
	"routesmith.io/routesmith/internal/pkg/logger"
)

// VersionForker creates a new DRAFT version from an existing template.
// Any status may be forked; the fork always starts as DRAFT with freshly
// copied step rows and a predecessor link back to its source.
type VersionForker struct {
	client     *ent.Client
	dispatcher *domain.EventDispatcher
	auditLog   *audit.Logger
}

// NewVersionForker creates a new VersionForker.
func NewVersionForker(client *ent.Client, dispatcher *domain.EventDispatcher, auditLog *audit.Logger) *VersionForker {
	return &VersionForker{
		client:     client,
		dispatcher: dispatcher,
		auditLog:   auditLog,
	}
}

// Fork copies source template fields and steps into a new DRAFT template.
// versionLabel overrides the generated label when non-empty; otherwise the
// source label is bumped ("1.0" becomes "2.0").
func (f *VersionForker) Fork(ctx context.Context, sourceID int, versionLabel, actor string) (*ent.ProcessTemplate, error) {
	tx, err := f.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin fork tx: %w", err)
	}

	// Read the source inside the transaction so a concurrent edit cannot
	// slip between the snapshot and the commit.
	source, err := tx.ProcessTemplate.Query().
		Where(processtemplate.ID(sourceID)).
		WithSteps(func(q *ent.RoutingStepQuery) {
			q.Order(ent.Asc(routingstep.FieldSequenceNumber))
		}).
		Only(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrTemplateNotFoundf(sourceID)
		}
		return nil, fmt.Errorf("get source template %d: %w", sourceID, err)
	}

	newLabel := versionLabel
	if newLabel == "" {
		newLabel = domain.NextVersionLabel(source.Version)
	}

	steps := domain.CloneSteps(stepSpecsFromEnt(source.Edges.Steps))

	create := tx.ProcessTemplate.Create().
		SetName(source.Name).
		SetVersion(newLabel).
		SetStatus(processtemplate.StatusDRAFT).
		SetCreatedBy(actor).
		SetPredecessorID(source.ID)
	if source.Description != "" {
		create.SetDescription(source.Description)
	}
	if source.ProductSku != "" {
		create.SetProductSku(source.ProductSku)
	}

	// Code stays unique across templates, so the fork does not inherit it.
	forked, err := create.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("create version fork of template %d: %w", sourceID, err)
	}

	if len(steps) > 0 {
		builders := make([]*ent.RoutingStepCreate, len(steps))
		for i, step := range steps {
			builder := tx.RoutingStep.Create().
				SetTemplateID(forked.ID).
				SetSequenceNumber(step.SequenceNumber).
				SetOperationName(step.OperationName).
				SetOperationType(routingstep.OperationType(step.OperationType)).
				SetIsParallel(step.IsParallel).
				SetMandatory(step.Mandatory).
				SetProducesOutputBatch(step.ProducesOutputBatch).
				SetAllowsSplit(step.AllowsSplit).
				SetAllowsMerge(step.AllowsMerge).
				SetDisplayStatus(string(domain.StatusDraft))
			if step.OperationCode != "" {
				builder.SetOperationCode(step.OperationCode)
			}
			if step.Description != "" {
				builder.SetDescription(step.Description)
			}
			if step.TargetQty != nil {
				builder.SetTargetQty(*step.TargetQty)
			}
			if step.EstimatedDurationMinutes != nil {
				builder.SetEstimatedDurationMinutes(*step.EstimatedDurationMinutes)
			}
			builders[i] = builder
		}
		if _, err := tx.RoutingStep.CreateBulk(builders...).Save(ctx); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("copy %d steps to fork %d: %w", len(steps), forked.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit fork tx: %w", err)
	}

	logger.Info("Template version created",
		zap.Int("source_id", sourceID),
		zap.Int("new_id", forked.ID),
		zap.String("source_version", source.Version),
		zap.String("new_version", newLabel),
	)

	if f.auditLog != nil {
		f.auditLog.LogTemplateOperationAsync("version_create", forked.ID, actor, map[string]interface{}{
			"source_template_id": sourceID,
			"source_version":     source.Version,
			"new_version":        newLabel,
		})
	}
	f.dispatchVersionEvent(ctx, source, forked, len(steps), actor)

	return f.client.ProcessTemplate.Query().
		Where(processtemplate.ID(forked.ID)).
		WithSteps(func(q *ent.RoutingStepQuery) {
			q.Order(ent.Asc(routingstep.FieldSequenceNumber))
		}).
		Only(ctx)
}

func (f *VersionForker) dispatchVersionEvent(ctx context.Context, source, forked *ent.ProcessTemplate, stepCount int, actor string) {
	if f.dispatcher == nil {
		return
	}
	payload, err := domain.TemplateVersionPayload{
		SourceTemplateID: source.ID,
		NewTemplateID:    forked.ID,
		SourceVersion:    source.Version,
		NewVersion:       forked.Version,
		StepCount:        stepCount,
		Actor:            actor,
	}.ToJSON()
	if err != nil {
		logger.Error("Failed to encode version event payload", zap.Error(err))
		return
	}
	_ = f.dispatcher.Dispatch(ctx, &domain.DomainEvent{
		EventID:       uuid.NewString(),
		EventType:     domain.EventTemplateVersionCreated,
		AggregateType: "process_template",
		AggregateID:   fmt.Sprintf("%d", forked.ID),
		Payload:       payload,
		CreatedBy:     actor,
		CreatedAt:     time.Now().UTC(),
	})
}

// stepSpecsFromEnt converts persisted step rows into editable specs.
func stepSpecsFromEnt(steps []*ent.RoutingStep) []domain.StepSpec {
	specs := make([]domain.StepSpec, len(steps))
	for i, s := range steps {
		specs[i] = domain.StepSpec{
			ID:                       s.ID,
			SequenceNumber:           s.SequenceNumber,
			OperationName:            s.OperationName,
			OperationType:            domain.OperationType(s.OperationType),
			OperationCode:            s.OperationCode,
			Description:              s.Description,
			TargetQty:                s.TargetQty,
			EstimatedDurationMinutes: s.EstimatedDurationMinutes,
			IsParallel:               s.IsParallel,
			Mandatory:                s.Mandatory,
			ProducesOutputBatch:      s.ProducesOutputBatch,
			AllowsSplit:              s.AllowsSplit,
			AllowsMerge:              s.AllowsMerge,
		}
	}
	return specs
}
