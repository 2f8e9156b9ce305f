package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"

	"routesmith.io/routesmith/ent/processtemplate"
	"routesmith.io/routesmith/ent/routingstep"
	"routesmith.io/routesmith/internal/domain"
	"routesmith.io/routesmith/internal/pkg/logger"
	"routesmith.io/routesmith/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestEffectivitySweepArgsKind(t *testing.T) {
	t.Parallel()

	if got := (EffectivitySweepArgs{}).Kind(); got != "effectivity_sweep" {
		t.Fatalf("Kind() = %q, want %q", got, "effectivity_sweep")
	}
}

func TestEffectivitySweepArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (EffectivitySweepArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, time.Hour)
	}
	if !opts.UniqueOpts.ByQueue {
		t.Fatal("UniqueOpts.ByQueue = false, want true")
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
}

func TestEffectivitySweepWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var w *EffectivitySweepWorker
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("nil ent client", func(t *testing.T) {
		w := &EffectivitySweepWorker{}
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})
}

func TestEffectivitySweepWorker_RetiresExpired(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "sweep")
	ctx := context.Background()

	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	expired, err := client.ProcessTemplate.Create().
		SetName("Expired routing").
		SetProductSku("HR-COIL-2MM").
		SetVersion("1.0").
		SetStatus(processtemplate.StatusACTIVE).
		SetEffectiveTo(past).
		SetCreatedBy("planner-1").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed expired: %v", err)
	}
	current, err := client.ProcessTemplate.Create().
		SetName("Current routing").
		SetProductSku("CM-SHEET-1MM").
		SetVersion("1.0").
		SetStatus(processtemplate.StatusACTIVE).
		SetEffectiveTo(future).
		SetCreatedBy("planner-1").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed current: %v", err)
	}
	openEnded, err := client.ProcessTemplate.Create().
		SetName("Open-ended routing").
		SetProductSku("AL-BAR-5MM").
		SetVersion("1.0").
		SetStatus(processtemplate.StatusACTIVE).
		SetCreatedBy("planner-1").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed open-ended: %v", err)
	}

	dispatcher := domain.NewEventDispatcher()
	var expiredEvents int
	dispatcher.Register(domain.EventTemplateExpired, func(ctx context.Context, e *domain.DomainEvent) error {
		expiredEvents++
		return nil
	})

	w := NewEffectivitySweepWorker(client, dispatcher)
	if err := w.Work(ctx, nil); err != nil {
		t.Fatalf("Work() error = %v", err)
	}

	reloaded, err := client.ProcessTemplate.Get(ctx, expired.ID)
	if err != nil {
		t.Fatalf("reload expired: %v", err)
	}
	if reloaded.Status != processtemplate.StatusINACTIVE {
		t.Errorf("expired template status = %s, want INACTIVE", reloaded.Status)
	}

	for _, id := range []int{current.ID, openEnded.ID} {
		reloaded, err := client.ProcessTemplate.Get(ctx, id)
		if err != nil {
			t.Fatalf("reload %d: %v", id, err)
		}
		if reloaded.Status != processtemplate.StatusACTIVE {
			t.Errorf("template %d status = %s, want ACTIVE", id, reloaded.Status)
		}
	}

	if expiredEvents != 1 {
		t.Errorf("TEMPLATE_EXPIRED events = %d, want 1", expiredEvents)
	}

	// Second sweep is a no-op.
	if err := w.Work(ctx, nil); err != nil {
		t.Fatalf("second Work() error = %v", err)
	}
	if expiredEvents != 1 {
		t.Errorf("second sweep dispatched more events: %d", expiredEvents)
	}
}

func TestEffectivitySweepWorker_SyncsOnlyRetiredSteps(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "sweepsteps")
	ctx := context.Background()

	now := time.Now().UTC()

	expired, err := client.ProcessTemplate.Create().
		SetName("Expired routing").
		SetProductSku("HR-COIL-2MM").
		SetVersion("1.0").
		SetStatus(processtemplate.StatusACTIVE).
		SetEffectiveTo(now.Add(-time.Hour)).
		SetCreatedBy("planner-1").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed expired: %v", err)
	}
	current, err := client.ProcessTemplate.Create().
		SetName("Current routing").
		SetProductSku("CM-SHEET-1MM").
		SetVersion("1.0").
		SetStatus(processtemplate.StatusACTIVE).
		SetEffectiveTo(now.Add(time.Hour)).
		SetCreatedBy("planner-1").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed current: %v", err)
	}

	for _, tpl := range []int{expired.ID, current.ID} {
		if _, err := client.RoutingStep.Create().
			SetTemplateID(tpl).
			SetSequenceNumber(1).
			SetOperationName("Slitting").
			SetDisplayStatus(string(domain.StatusActive)).
			Save(ctx); err != nil {
			t.Fatalf("seed step for %d: %v", tpl, err)
		}
	}

	w := NewEffectivitySweepWorker(client, nil)
	if err := w.Work(ctx, nil); err != nil {
		t.Fatalf("Work() error = %v", err)
	}

	expiredStep, err := client.RoutingStep.Query().
		Where(routingstep.HasTemplateWith(processtemplate.IDEQ(expired.ID))).
		Only(ctx)
	if err != nil {
		t.Fatalf("query expired step: %v", err)
	}
	if expiredStep.DisplayStatus != string(domain.StatusInactive) {
		t.Errorf("expired step display_status = %q, want INACTIVE", expiredStep.DisplayStatus)
	}

	currentStep, err := client.RoutingStep.Query().
		Where(routingstep.HasTemplateWith(processtemplate.IDEQ(current.ID))).
		Only(ctx)
	if err != nil {
		t.Fatalf("query current step: %v", err)
	}
	if currentStep.DisplayStatus != string(domain.StatusActive) {
		t.Errorf("current step display_status = %q, want ACTIVE", currentStep.DisplayStatus)
	}
}
