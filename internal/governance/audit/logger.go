// Package audit implements the audit logging service.
//
// Audit logs are append-only compliance records. Hard-delete is NOT allowed.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"routesmith.io/routesmith/ent"
	"routesmith.io/routesmith/internal/pkg/logger"
	"routesmith.io/routesmith/internal/pkg/worker"
)

// Logger writes audit records to the database.
type Logger struct {
	client *ent.Client
	pools  *worker.Pools
}

// NewLogger creates a new audit Logger. pools may be nil, in which case
// LogActionAsync degrades to a synchronous write.
func NewLogger(client *ent.Client, pools *worker.Pools) *Logger {
	return &Logger{client: client, pools: pools}
}

// LogAction records an auditable action.
func (l *Logger) LogAction(ctx context.Context, action, resourceType, resourceID, actor string, details map[string]interface{}) error {
	_, err := l.client.AuditLog.Create().
		SetID(generateAuditID()).
		SetAction(action).
		SetResourceType(resourceType).
		SetResourceID(resourceID).
		SetActor(actor).
		SetDetails(details).
		Save(ctx)
	if err != nil {
		logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// LogActionAsync records an auditable action off the request path using the
// audit worker pool. Failures are logged, never surfaced to callers.
func (l *Logger) LogActionAsync(action, resourceType, resourceID, actor string, details map[string]interface{}) {
	if l.pools == nil {
		_ = l.LogAction(context.Background(), action, resourceType, resourceID, actor, details)
		return
	}
	l.pools.SubmitDetached("audit", func(ctx context.Context) {
		_ = l.LogAction(ctx, action, resourceType, resourceID, actor, details)
	})
}

// LogTemplateOperation records a routing template operation.
func (l *Logger) LogTemplateOperation(ctx context.Context, operation string, templateID int, actor string, details map[string]interface{}) error {
	return l.LogAction(ctx, "template."+operation, "process_template", fmt.Sprintf("%d", templateID), actor, details)
}

// LogTemplateOperationAsync is the detached variant of LogTemplateOperation.
func (l *Logger) LogTemplateOperationAsync(operation string, templateID int, actor string, details map[string]interface{}) {
	l.LogActionAsync("template."+operation, "process_template", fmt.Sprintf("%d", templateID), actor, details)
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("audit-%s", id.String())
}
