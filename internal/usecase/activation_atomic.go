// Package usecase provides application use cases for RouteSmith.
//
// Activation is the one operation that touches multiple template rows at
// once, so it runs as a single pgx transaction on the shared pool with a
// per-SKU advisory lock. Everything else goes through the service layer.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"routesmith.io/routesmith/internal/domain"
	"routesmith.io/routesmith/internal/governance/audit"
	apperrors "routesmith.io/routesmith/internal/pkg/errors"
	"routesmith.io/routesmith/internal/pkg/logger"
)

// ActivationResult reports what an exclusive activation changed.
type ActivationResult struct {
	TemplateID     int
	ProductSKU     string
	Version        string
	FromStatus     string
	SupersededIDs  []int
	DeactivatedIDs []int
}

// ActivationWriter executes template lifecycle transitions atomically.
//
// Exclusivity invariant: at most one ACTIVE template per product SKU. The
// writer serializes activations per SKU with pg_advisory_xact_lock and
// re-checks the invariant before commit.
type ActivationWriter struct {
	pool       *pgxpool.Pool
	dispatcher *domain.EventDispatcher
	auditLog   *audit.Logger
}

// NewActivationWriter creates a new ActivationWriter.
func NewActivationWriter(pool *pgxpool.Pool, dispatcher *domain.EventDispatcher, auditLog *audit.Logger) *ActivationWriter {
	return &ActivationWriter{
		pool:       pool,
		dispatcher: dispatcher,
		auditLog:   auditLog,
	}
}

// ActivateOptions controls a single activation.
type ActivateOptions struct {
	// EffectiveFrom overrides the effectivity start. Nil keeps the stored
	// value, or stamps now() when none was set.
	EffectiveFrom *time.Time
	// DeactivateOthers demotes every other ACTIVE template on the same
	// product SKU in the same transaction: the direct predecessor becomes
	// SUPERSEDED, all others INACTIVE. When false, an existing ACTIVE
	// sibling makes the activation fail with a conflict instead.
	DeactivateOthers bool
}

// Activate promotes a DRAFT or INACTIVE template to ACTIVE.
func (w *ActivationWriter) Activate(ctx context.Context, templateID int, actor string, opts ActivateOptions) (*ActivationResult, error) {
	if w.pool == nil {
		return nil, fmt.Errorf("activation writer is not initialized")
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin activation tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		productSKU    *string
		status        string
		version       string
		predecessorID *int
	)
	err = tx.QueryRow(ctx,
		`SELECT product_sku, status, version, predecessor_id
		 FROM process_templates WHERE id = $1 FOR UPDATE`,
		templateID,
	).Scan(&productSKU, &status, &version, &predecessorID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTemplateNotFoundf(templateID)
		}
		return nil, fmt.Errorf("lock template %d: %w", templateID, err)
	}

	if !domain.Status(status).CanActivate() {
		return nil, apperrors.ErrInvalidTransitionf(templateID, status, string(domain.StatusActive))
	}

	sku := ""
	if productSKU != nil {
		sku = *productSKU
	}

	result := &ActivationResult{
		TemplateID: templateID,
		ProductSKU: sku,
		Version:    version,
		FromStatus: status,
	}

	if sku != "" {
		// Serialize activations per SKU. hashtext gives a stable 32-bit
		// key for the advisory lock namespace.
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, sku); err != nil {
			return nil, fmt.Errorf("acquire activation lock for sku %s: %w", sku, err)
		}

		if !opts.DeactivateOthers {
			var siblingID int
			err := tx.QueryRow(ctx,
				`SELECT id FROM process_templates
				 WHERE product_sku = $1 AND status = 'ACTIVE' AND id <> $2
				 LIMIT 1`,
				sku, templateID,
			).Scan(&siblingID)
			switch {
			case err == nil:
				return nil, apperrors.Conflict(apperrors.CodeActiveSiblingExists,
					"another template is already active for this product").
					WithParams(map[string]interface{}{
						"product_sku":        sku,
						"active_template_id": siblingID,
					})
			case err != pgx.ErrNoRows:
				return nil, fmt.Errorf("check active sibling for sku %s: %w", sku, err)
			}
		}
	}

	if sku != "" && opts.DeactivateOthers {
		// Demote the current ACTIVE siblings inside the same lock.
		predecessor := 0
		if predecessorID != nil {
			predecessor = *predecessorID
		}
		rows, err := tx.Query(ctx,
			`UPDATE process_templates
			 SET status = CASE WHEN id = $1 THEN 'SUPERSEDED' ELSE 'INACTIVE' END,
			     updated_at = now()
			 WHERE product_sku = $2 AND status = 'ACTIVE' AND id <> $3
			 RETURNING id, status`,
			predecessor, sku, templateID,
		)
		if err != nil {
			return nil, fmt.Errorf("demote active templates for sku %s: %w", sku, err)
		}
		for rows.Next() {
			var demotedID int
			var newStatus string
			if err := rows.Scan(&demotedID, &newStatus); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan demoted template: %w", err)
			}
			if newStatus == string(domain.StatusSuperseded) {
				result.SupersededIDs = append(result.SupersededIDs, demotedID)
			} else {
				result.DeactivatedIDs = append(result.DeactivatedIDs, demotedID)
			}
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("demote active templates for sku %s: %w", sku, err)
		}
	}

	tag, err := tx.Exec(ctx,
		`UPDATE process_templates
		 SET status = 'ACTIVE',
		     effective_from = COALESCE($2, effective_from, now()),
		     updated_at = now()
		 WHERE id = $1 AND status IN ('DRAFT', 'INACTIVE')`,
		templateID, opts.EffectiveFrom,
	)
	if err != nil {
		return nil, fmt.Errorf("activate template %d: %w", templateID, err)
	}
	if tag.RowsAffected() != 1 {
		return nil, apperrors.Conflict(apperrors.CodeExclusivityRace, "template changed status during activation").
			WithParams(map[string]interface{}{"template_id": templateID})
	}

	if sku != "" {
		// Invariant re-check before commit.
		var activeCount int
		err = tx.QueryRow(ctx,
			`SELECT count(*) FROM process_templates WHERE product_sku = $1 AND status = 'ACTIVE'`,
			sku,
		).Scan(&activeCount)
		if err != nil {
			return nil, fmt.Errorf("recount active templates for sku %s: %w", sku, err)
		}
		if activeCount != 1 {
			return nil, apperrors.Conflict(apperrors.CodeExclusivityRace, "concurrent activation detected").
				WithParams(map[string]interface{}{"product_sku": sku, "active_count": activeCount})
		}
	}

	if err := w.syncStepDisplayStatus(ctx, tx, append(append([]int{templateID}, result.SupersededIDs...), result.DeactivatedIDs...)); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit activation tx: %w", err)
	}

	logger.Info("Template activated",
		zap.Int("template_id", templateID),
		zap.String("product_sku", sku),
		zap.Ints("superseded_ids", result.SupersededIDs),
		zap.Ints("deactivated_ids", result.DeactivatedIDs),
	)

	w.afterTransition(ctx, domain.EventTemplateActivated, "activate", actor, result, string(domain.StatusActive))
	return result, nil
}

// Deactivate retires an ACTIVE template to INACTIVE. The product may be left
// without a live routing; that is an explicit operator decision.
func (w *ActivationWriter) Deactivate(ctx context.Context, templateID int, actor string) (*ActivationResult, error) {
	if w.pool == nil {
		return nil, fmt.Errorf("activation writer is not initialized")
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin deactivation tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		productSKU *string
		status     string
		version    string
	)
	err = tx.QueryRow(ctx,
		`SELECT product_sku, status, version
		 FROM process_templates WHERE id = $1 FOR UPDATE`,
		templateID,
	).Scan(&productSKU, &status, &version)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTemplateNotFoundf(templateID)
		}
		return nil, fmt.Errorf("lock template %d: %w", templateID, err)
	}

	if !domain.Status(status).CanDeactivate() {
		return nil, apperrors.ErrInvalidTransitionf(templateID, status, string(domain.StatusInactive))
	}

	if _, err := tx.Exec(ctx,
		`UPDATE process_templates SET status = 'INACTIVE', updated_at = now() WHERE id = $1`,
		templateID,
	); err != nil {
		return nil, fmt.Errorf("deactivate template %d: %w", templateID, err)
	}

	if err := w.syncStepDisplayStatus(ctx, tx, []int{templateID}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit deactivation tx: %w", err)
	}

	sku := ""
	if productSKU != nil {
		sku = *productSKU
	}
	result := &ActivationResult{
		TemplateID: templateID,
		ProductSKU: sku,
		Version:    version,
		FromStatus: status,
	}

	logger.Info("Template deactivated",
		zap.Int("template_id", templateID),
		zap.String("product_sku", sku),
	)

	w.afterTransition(ctx, domain.EventTemplateDeactivated, "deactivate", actor, result, string(domain.StatusInactive))
	return result, nil
}

// syncStepDisplayStatus mirrors the template lifecycle onto the denormalized
// display_status column of each template's steps.
func (w *ActivationWriter) syncStepDisplayStatus(ctx context.Context, tx pgx.Tx, templateIDs []int) error {
	if len(templateIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx,
		`UPDATE routing_steps rs
		 SET display_status = pt.status, updated_at = now()
		 FROM process_templates pt
		 WHERE rs.process_template_steps = pt.id AND pt.id = ANY($1)`,
		templateIDs,
	)
	if err != nil {
		return fmt.Errorf("sync step display status: %w", err)
	}
	return nil
}

// afterTransition emits the domain event and audit record for a committed
// transition. Both are best-effort.
func (w *ActivationWriter) afterTransition(ctx context.Context, eventType domain.EventType, operation, actor string, result *ActivationResult, toStatus string) {
	if w.auditLog != nil {
		w.auditLog.LogTemplateOperationAsync(operation, result.TemplateID, actor, map[string]interface{}{
			"product_sku":     result.ProductSKU,
			"from_status":     result.FromStatus,
			"to_status":       toStatus,
			"superseded_ids":  result.SupersededIDs,
			"deactivated_ids": result.DeactivatedIDs,
		})
	}

	if w.dispatcher == nil {
		return
	}
	payload, err := domain.TemplateLifecyclePayload{
		TemplateID:     result.TemplateID,
		ProductSKU:     result.ProductSKU,
		Version:        result.Version,
		FromStatus:     result.FromStatus,
		ToStatus:       toStatus,
		Actor:          actor,
		SupersededIDs:  result.SupersededIDs,
		DeactivatedIDs: result.DeactivatedIDs,
	}.ToJSON()
	if err != nil {
		logger.Error("Failed to encode lifecycle event payload", zap.Error(err))
		return
	}
	_ = w.dispatcher.Dispatch(ctx, &domain.DomainEvent{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		AggregateType: "process_template",
		AggregateID:   fmt.Sprintf("%d", result.TemplateID),
		Payload:       payload,
		CreatedBy:     actor,
		CreatedAt:     time.Now().UTC(),
	})
}
