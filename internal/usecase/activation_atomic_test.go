package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"routesmith.io/routesmith/ent"
	"routesmith.io/routesmith/ent/processtemplate"
	"routesmith.io/routesmith/internal/domain"
	apperrors "routesmith.io/routesmith/internal/pkg/errors"
	"routesmith.io/routesmith/internal/pkg/logger"
	"routesmith.io/routesmith/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func seedTemplate(t *testing.T, client *ent.Client, name, sku, version string, status processtemplate.Status) *ent.ProcessTemplate {
	t.Helper()
	tpl, err := client.ProcessTemplate.Create().
		SetName(name).
		SetProductSku(sku).
		SetVersion(version).
		SetStatus(status).
		SetCreatedBy("planner-1").
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed template %s: %v", name, err)
	}
	return tpl
}

func TestActivationWriter_ActivateDraft(t *testing.T) {
	client, pool := testutil.OpenEntPostgresWithPool(t, "act_draft")
	writer := NewActivationWriter(pool, domain.NewEventDispatcher(), nil)
	ctx := context.Background()

	draft := seedTemplate(t, client, "Routing A", "HR-COIL-2MM", "1.0", processtemplate.StatusDRAFT)

	result, err := writer.Activate(ctx, draft.ID, "planner-1", ActivateOptions{})
	if err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if result.FromStatus != "DRAFT" {
		t.Errorf("FromStatus = %s, want DRAFT", result.FromStatus)
	}
	if len(result.SupersededIDs) != 0 || len(result.DeactivatedIDs) != 0 {
		t.Errorf("first activation should demote nothing, got %+v", result)
	}

	got, err := client.ProcessTemplate.Get(ctx, draft.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != processtemplate.StatusACTIVE {
		t.Errorf("status = %s, want ACTIVE", got.Status)
	}
	if got.EffectiveFrom == nil {
		t.Error("effective_from should be stamped on activation")
	}
}

func TestActivationWriter_PredecessorSuperseded(t *testing.T) {
	client, pool := testutil.OpenEntPostgresWithPool(t, "act_supersede")
	writer := NewActivationWriter(pool, domain.NewEventDispatcher(), nil)
	ctx := context.Background()

	v1 := seedTemplate(t, client, "Routing A", "HR-COIL-2MM", "1.0", processtemplate.StatusACTIVE)
	v2, err := client.ProcessTemplate.Create().
		SetName("Routing A").
		SetProductSku("HR-COIL-2MM").
		SetVersion("2.0").
		SetStatus(processtemplate.StatusDRAFT).
		SetCreatedBy("planner-1").
		SetPredecessorID(v1.ID).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed v2: %v", err)
	}

	result, err := writer.Activate(ctx, v2.ID, "planner-1", ActivateOptions{DeactivateOthers: true})
	if err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if len(result.SupersededIDs) != 1 || result.SupersededIDs[0] != v1.ID {
		t.Errorf("SupersededIDs = %v, want [%d]", result.SupersededIDs, v1.ID)
	}

	reloaded, err := client.ProcessTemplate.Get(ctx, v1.ID)
	if err != nil {
		t.Fatalf("reload v1: %v", err)
	}
	if reloaded.Status != processtemplate.StatusSUPERSEDED {
		t.Errorf("predecessor status = %s, want SUPERSEDED", reloaded.Status)
	}
}

func TestActivationWriter_UnrelatedActiveDeactivated(t *testing.T) {
	client, pool := testutil.OpenEntPostgresWithPool(t, "act_demote")
	writer := NewActivationWriter(pool, domain.NewEventDispatcher(), nil)
	ctx := context.Background()

	// ACTIVE for the same SKU but not the predecessor of the new template.
	other := seedTemplate(t, client, "Routing old", "HR-COIL-2MM", "1.0", processtemplate.StatusACTIVE)
	draft := seedTemplate(t, client, "Routing new", "HR-COIL-2MM", "1.0", processtemplate.StatusDRAFT)

	result, err := writer.Activate(ctx, draft.ID, "planner-1", ActivateOptions{DeactivateOthers: true})
	if err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if len(result.DeactivatedIDs) != 1 || result.DeactivatedIDs[0] != other.ID {
		t.Errorf("DeactivatedIDs = %v, want [%d]", result.DeactivatedIDs, other.ID)
	}

	reloaded, err := client.ProcessTemplate.Get(ctx, other.ID)
	if err != nil {
		t.Fatalf("reload other: %v", err)
	}
	if reloaded.Status != processtemplate.StatusINACTIVE {
		t.Errorf("unrelated sibling status = %s, want INACTIVE", reloaded.Status)
	}

	// The exclusivity invariant holds after the swap.
	active, err := client.ProcessTemplate.Query().
		Where(
			processtemplate.ProductSkuEQ("HR-COIL-2MM"),
			processtemplate.StatusEQ(processtemplate.StatusACTIVE),
		).
		Count(ctx)
	if err != nil {
		t.Fatalf("count active: %v", err)
	}
	if active != 1 {
		t.Errorf("active count = %d, want exactly 1", active)
	}
}

func TestActivationWriter_DifferentSKUsUntouched(t *testing.T) {
	client, pool := testutil.OpenEntPostgresWithPool(t, "act_other_sku")
	writer := NewActivationWriter(pool, domain.NewEventDispatcher(), nil)
	ctx := context.Background()

	otherSKU := seedTemplate(t, client, "Cold Milling", "CM-SHEET-1MM", "1.0", processtemplate.StatusACTIVE)
	draft := seedTemplate(t, client, "Hot Rolling", "HR-COIL-2MM", "1.0", processtemplate.StatusDRAFT)

	if _, err := writer.Activate(ctx, draft.ID, "planner-1", ActivateOptions{DeactivateOthers: true}); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}

	reloaded, err := client.ProcessTemplate.Get(ctx, otherSKU.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != processtemplate.StatusACTIVE {
		t.Errorf("other SKU status = %s, want untouched ACTIVE", reloaded.Status)
	}
}

func TestActivationWriter_RejectsActiveSiblingWithoutDemotion(t *testing.T) {
	client, pool := testutil.OpenEntPostgresWithPool(t, "act_no_demote")
	writer := NewActivationWriter(pool, domain.NewEventDispatcher(), nil)
	ctx := context.Background()

	active := seedTemplate(t, client, "Routing old", "HR-COIL-2MM", "1.0", processtemplate.StatusACTIVE)
	draft := seedTemplate(t, client, "Routing new", "HR-COIL-2MM", "1.0", processtemplate.StatusDRAFT)

	_, err := writer.Activate(ctx, draft.ID, "planner-1", ActivateOptions{})
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeActiveSiblingExists {
		t.Fatalf("Activate() error = %v, want %s", err, apperrors.CodeActiveSiblingExists)
	}

	// Neither template changed.
	for _, tc := range []struct {
		id   int
		want processtemplate.Status
	}{
		{active.ID, processtemplate.StatusACTIVE},
		{draft.ID, processtemplate.StatusDRAFT},
	} {
		reloaded, err := client.ProcessTemplate.Get(ctx, tc.id)
		if err != nil {
			t.Fatalf("reload %d: %v", tc.id, err)
		}
		if reloaded.Status != tc.want {
			t.Errorf("template %d status = %s, want %s", tc.id, reloaded.Status, tc.want)
		}
	}
}

func TestActivationWriter_ConcurrentActivationsSameSKU(t *testing.T) {
	client, pool := testutil.OpenEntPostgresWithPool(t, "act_race")
	writer := NewActivationWriter(pool, domain.NewEventDispatcher(), nil)
	ctx := context.Background()

	activeCount := func(sku string) int {
		t.Helper()
		n, err := client.ProcessTemplate.Query().
			Where(
				processtemplate.ProductSkuEQ(sku),
				processtemplate.StatusEQ(processtemplate.StatusACTIVE),
			).
			Count(ctx)
		if err != nil {
			t.Fatalf("count active: %v", err)
		}
		return n
	}

	race := func(t *testing.T, sku string, opts ActivateOptions) []error {
		t.Helper()
		a := seedTemplate(t, client, "Routing A", sku, "1.0", processtemplate.StatusDRAFT)
		b := seedTemplate(t, client, "Routing B", sku, "1.0", processtemplate.StatusDRAFT)

		errs := make([]error, 2)
		var wg sync.WaitGroup
		for i, id := range []int{a.ID, b.ID} {
			wg.Add(1)
			go func(i, id int) {
				defer wg.Done()
				_, errs[i] = writer.Activate(ctx, id, "planner-1", opts)
			}(i, id)
		}
		wg.Wait()
		return errs
	}

	t.Run("without demotion one wins", func(t *testing.T) {
		errs := race(t, "HR-COIL-2MM", ActivateOptions{})

		var failures int
		for _, err := range errs {
			if err == nil {
				continue
			}
			failures++
			appErr, ok := apperrors.IsAppError(err)
			if !ok || appErr.Code != apperrors.CodeActiveSiblingExists {
				t.Errorf("loser error = %v, want %s", err, apperrors.CodeActiveSiblingExists)
			}
		}
		if failures != 1 {
			t.Errorf("failed activations = %d, want exactly 1", failures)
		}
		if n := activeCount("HR-COIL-2MM"); n != 1 {
			t.Errorf("active count = %d, want exactly 1", n)
		}
	})

	t.Run("with demotion last writer wins", func(t *testing.T) {
		for _, err := range race(t, "CM-SHEET-1MM", ActivateOptions{DeactivateOthers: true}) {
			if err != nil {
				t.Errorf("Activate() error = %v", err)
			}
		}
		if n := activeCount("CM-SHEET-1MM"); n != 1 {
			t.Errorf("active count = %d, want exactly 1", n)
		}
	})
}

func TestActivationWriter_InvalidTransitions(t *testing.T) {
	client, pool := testutil.OpenEntPostgresWithPool(t, "act_invalid")
	writer := NewActivationWriter(pool, domain.NewEventDispatcher(), nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		status processtemplate.Status
	}{
		{"already active", processtemplate.StatusACTIVE},
		{"superseded is terminal", processtemplate.StatusSUPERSEDED},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := seedTemplate(t, client, "Routing "+tt.name, "SKU-"+string(tt.status), "1.0", tt.status)
			_, err := writer.Activate(ctx, tpl.ID, "planner-1", ActivateOptions{})
			appErr, ok := apperrors.IsAppError(err)
			if !ok || appErr.Code != apperrors.CodeInvalidTransition {
				t.Fatalf("Activate(%s) error = %v, want %s", tt.status, err, apperrors.CodeInvalidTransition)
			}
		})
	}
}

func TestActivationWriter_ReactivateInactive(t *testing.T) {
	client, pool := testutil.OpenEntPostgresWithPool(t, "act_reuse")
	writer := NewActivationWriter(pool, domain.NewEventDispatcher(), nil)
	ctx := context.Background()

	inactive := seedTemplate(t, client, "Routing A", "HR-COIL-2MM", "1.0", processtemplate.StatusINACTIVE)

	from := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)
	result, err := writer.Activate(ctx, inactive.ID, "planner-1", ActivateOptions{EffectiveFrom: &from})
	if err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if result.FromStatus != "INACTIVE" {
		t.Errorf("FromStatus = %s, want INACTIVE", result.FromStatus)
	}

	reloaded, err := client.ProcessTemplate.Get(ctx, inactive.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.EffectiveFrom == nil || !reloaded.EffectiveFrom.Equal(from) {
		t.Errorf("effective_from = %v, want %v", reloaded.EffectiveFrom, from)
	}
}

func TestActivationWriter_NotFound(t *testing.T) {
	_, pool := testutil.OpenEntPostgresWithPool(t, "act_missing")
	writer := NewActivationWriter(pool, domain.NewEventDispatcher(), nil)

	_, err := writer.Activate(context.Background(), 424242, "planner-1", ActivateOptions{})
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeTemplateNotFound {
		t.Fatalf("Activate(missing) error = %v, want %s", err, apperrors.CodeTemplateNotFound)
	}
}

func TestActivationWriter_Deactivate(t *testing.T) {
	client, pool := testutil.OpenEntPostgresWithPool(t, "deact")
	writer := NewActivationWriter(pool, domain.NewEventDispatcher(), nil)
	ctx := context.Background()

	active := seedTemplate(t, client, "Routing A", "HR-COIL-2MM", "1.0", processtemplate.StatusACTIVE)

	result, err := writer.Deactivate(ctx, active.ID, "planner-1")
	if err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}
	if result.FromStatus != "ACTIVE" {
		t.Errorf("FromStatus = %s, want ACTIVE", result.FromStatus)
	}

	reloaded, err := client.ProcessTemplate.Get(ctx, active.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != processtemplate.StatusINACTIVE {
		t.Errorf("status = %s, want INACTIVE", reloaded.Status)
	}

	// Only ACTIVE templates can be deactivated.
	_, err = writer.Deactivate(ctx, active.ID, "planner-1")
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeInvalidTransition {
		t.Fatalf("second Deactivate() error = %v, want %s", err, apperrors.CodeInvalidTransition)
	}
}

func TestActivationWriter_EmitsLifecycleEvent(t *testing.T) {
	client, pool := testutil.OpenEntPostgresWithPool(t, "act_event")
	dispatcher := domain.NewEventDispatcher()
	writer := NewActivationWriter(pool, dispatcher, nil)
	ctx := context.Background()

	var received *domain.DomainEvent
	dispatcher.Register(domain.EventTemplateActivated, func(ctx context.Context, e *domain.DomainEvent) error {
		received = e
		return nil
	})

	draft := seedTemplate(t, client, "Routing A", "HR-COIL-2MM", "1.0", processtemplate.StatusDRAFT)
	if _, err := writer.Activate(ctx, draft.ID, "planner-1", ActivateOptions{}); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}

	if received == nil {
		t.Fatal("no TEMPLATE_ACTIVATED event dispatched")
	}
	if received.CreatedBy != "planner-1" || received.AggregateType != "process_template" {
		t.Errorf("event = %+v", received)
	}
}
