// Package jobs contains River background jobs.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"routesmith.io/routesmith/ent"
	"routesmith.io/routesmith/ent/processtemplate"
	"routesmith.io/routesmith/ent/routingstep"
	"routesmith.io/routesmith/internal/domain"
	"routesmith.io/routesmith/internal/pkg/logger"
)

// EffectivitySweepArgs is a periodic maintenance job that retires ACTIVE
// templates whose effectivity window has closed.
type EffectivitySweepArgs struct{}

// Kind returns the job kind identifier for the effectivity sweep.
func (EffectivitySweepArgs) Kind() string { return "effectivity_sweep" }

// InsertOpts ensures at most one sweep is enqueued within the same hour.
func (EffectivitySweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// EffectivitySweepWorker marks ACTIVE templates with an elapsed effective_to
// as INACTIVE. The window is half-open, so a template expires the moment
// now >= effective_to.
type EffectivitySweepWorker struct {
	river.WorkerDefaults[EffectivitySweepArgs]
	entClient  *ent.Client
	dispatcher *domain.EventDispatcher
}

// NewEffectivitySweepWorker creates a sweep worker. dispatcher may be nil.
func NewEffectivitySweepWorker(entClient *ent.Client, dispatcher *domain.EventDispatcher) *EffectivitySweepWorker {
	return &EffectivitySweepWorker{
		entClient:  entClient,
		dispatcher: dispatcher,
	}
}

// Work retires expired templates.
func (w *EffectivitySweepWorker) Work(ctx context.Context, _ *river.Job[EffectivitySweepArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("effectivity sweep worker is not initialized")
	}

	now := time.Now().UTC()

	expired, err := w.entClient.ProcessTemplate.Query().
		Where(
			processtemplate.StatusEQ(processtemplate.StatusACTIVE),
			processtemplate.EffectiveToNotNil(),
			processtemplate.EffectiveToLTE(now),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query expired templates at %s: %w", now.Format(time.RFC3339), err)
	}
	if len(expired) == 0 {
		logger.Debug("effectivity sweep: nothing expired")
		return nil
	}

	// Guard each retirement on status so a concurrent transition is not
	// overwritten, and remember which rows this sweep actually retired.
	retired := make([]*ent.ProcessTemplate, 0, len(expired))
	retiredIDs := make([]int, 0, len(expired))
	for _, t := range expired {
		n, err := w.entClient.ProcessTemplate.Update().
			Where(
				processtemplate.IDEQ(t.ID),
				processtemplate.StatusEQ(processtemplate.StatusACTIVE),
			).
			SetStatus(processtemplate.StatusINACTIVE).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("retire expired template %d: %w", t.ID, err)
		}
		if n == 1 {
			retired = append(retired, t)
			retiredIDs = append(retiredIDs, t.ID)
		}
	}
	if len(retiredIDs) == 0 {
		logger.Debug("effectivity sweep: all candidates transitioned concurrently")
		return nil
	}

	if _, err := w.entClient.RoutingStep.Update().
		Where(routingstep.HasTemplateWith(processtemplate.IDIn(retiredIDs...))).
		SetDisplayStatus(string(domain.StatusInactive)).
		Save(ctx); err != nil {
		return fmt.Errorf("sync step display status for expired templates: %w", err)
	}

	logger.Info("effectivity sweep completed",
		zap.Int("retired", len(retiredIDs)),
		zap.Ints("template_ids", retiredIDs),
		zap.String("as_of", now.Format(time.RFC3339)),
	)

	w.dispatchExpired(ctx, retired)
	return nil
}

func (w *EffectivitySweepWorker) dispatchExpired(ctx context.Context, expired []*ent.ProcessTemplate) {
	if w.dispatcher == nil {
		return
	}
	for _, t := range expired {
		payload, err := domain.TemplateLifecyclePayload{
			TemplateID: t.ID,
			ProductSKU: t.ProductSku,
			Version:    t.Version,
			FromStatus: string(domain.StatusActive),
			ToStatus:   string(domain.StatusInactive),
			Actor:      "system",
		}.ToJSON()
		if err != nil {
			logger.Error("Failed to encode expiry event payload", zap.Error(err))
			continue
		}
		_ = w.dispatcher.Dispatch(ctx, &domain.DomainEvent{
			EventID:       newEventID(),
			EventType:     domain.EventTemplateExpired,
			AggregateType: "process_template",
			AggregateID:   fmt.Sprintf("%d", t.ID),
			Payload:       payload,
			CreatedBy:     "system",
			CreatedAt:     time.Now().UTC(),
		})
	}
}
