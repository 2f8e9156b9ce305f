package usecase

import (
	"context"
	"testing"

	"routesmith.io/routesmith/ent"
	"routesmith.io/routesmith/ent/processtemplate"
	"routesmith.io/routesmith/internal/domain"
	apperrors "routesmith.io/routesmith/internal/pkg/errors"
	"routesmith.io/routesmith/internal/testutil"
)

func seedTemplateWithSteps(t *testing.T, client *ent.Client, status processtemplate.Status) *ent.ProcessTemplate {
	t.Helper()
	ctx := context.Background()

	tpl, err := client.ProcessTemplate.Create().
		SetCode("RM-HR-COIL").
		SetName("Hot Rolling - Coil").
		SetProductSku("HR-COIL-2MM").
		SetVersion("1.0").
		SetStatus(status).
		SetCreatedBy("planner-1").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed template: %v", err)
	}

	qty := 25.5
	for i, name := range []string{"Melt", "Cast", "Inspect"} {
		create := client.RoutingStep.Create().
			SetTemplateID(tpl.ID).
			SetSequenceNumber(i + 1).
			SetOperationName(name).
			SetMandatory(true)
		if i == 0 {
			create.SetTargetQty(qty)
		}
		if _, err := create.Save(ctx); err != nil {
			t.Fatalf("seed step %s: %v", name, err)
		}
	}
	return tpl
}

func TestVersionForker_Fork(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "fork_basic")
	forker := NewVersionForker(client, domain.NewEventDispatcher(), nil)
	ctx := context.Background()

	source := seedTemplateWithSteps(t, client, processtemplate.StatusACTIVE)

	forked, err := forker.Fork(ctx, source.ID, "", "planner-2")
	if err != nil {
		t.Fatalf("Fork() error = %v", err)
	}

	if forked.Status != processtemplate.StatusDRAFT {
		t.Errorf("fork status = %s, want DRAFT", forked.Status)
	}
	if forked.Version != "2.0" {
		t.Errorf("fork version = %s, want 2.0", forked.Version)
	}
	if forked.PredecessorID == nil || *forked.PredecessorID != source.ID {
		t.Errorf("fork predecessor = %v, want %d", forked.PredecessorID, source.ID)
	}
	if forked.CreatedBy != "planner-2" {
		t.Errorf("fork CreatedBy = %q", forked.CreatedBy)
	}
	if forked.Code != "" {
		t.Errorf("fork must not inherit the unique code, got %q", forked.Code)
	}

	steps := forked.Edges.Steps
	if len(steps) != 3 {
		t.Fatalf("fork step count = %d, want 3", len(steps))
	}
	for i, step := range steps {
		if step.SequenceNumber != i+1 {
			t.Errorf("fork steps[%d].SequenceNumber = %d", i, step.SequenceNumber)
		}
	}
	if steps[0].TargetQty == nil || *steps[0].TargetQty != 25.5 {
		t.Errorf("fork steps[0].TargetQty = %v, want 25.5", steps[0].TargetQty)
	}

	// The source is untouched by the fork.
	reloaded, err := client.ProcessTemplate.Get(ctx, source.ID)
	if err != nil {
		t.Fatalf("reload source: %v", err)
	}
	if reloaded.Status != processtemplate.StatusACTIVE || reloaded.Version != "1.0" {
		t.Errorf("source mutated by fork: %s %s", reloaded.Status, reloaded.Version)
	}
}

func TestVersionForker_ExplicitLabel(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "fork_label")
	forker := NewVersionForker(client, domain.NewEventDispatcher(), nil)

	source := seedTemplateWithSteps(t, client, processtemplate.StatusDRAFT)

	forked, err := forker.Fork(context.Background(), source.ID, "1.1-trial", "planner-1")
	if err != nil {
		t.Fatalf("Fork() error = %v", err)
	}
	if forked.Version != "1.1-trial" {
		t.Errorf("fork version = %s, want explicit 1.1-trial", forked.Version)
	}
}

func TestVersionForker_SourceNotFound(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "fork_missing")
	forker := NewVersionForker(client, domain.NewEventDispatcher(), nil)

	_, err := forker.Fork(context.Background(), 424242, "", "planner-1")
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeTemplateNotFound {
		t.Fatalf("Fork(missing) error = %v, want %s", err, apperrors.CodeTemplateNotFound)
	}
}

func TestVersionForker_EmitsVersionEvent(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "fork_event")
	dispatcher := domain.NewEventDispatcher()
	forker := NewVersionForker(client, dispatcher, nil)

	var received *domain.DomainEvent
	dispatcher.Register(domain.EventTemplateVersionCreated, func(ctx context.Context, e *domain.DomainEvent) error {
		received = e
		return nil
	})

	source := seedTemplateWithSteps(t, client, processtemplate.StatusACTIVE)
	if _, err := forker.Fork(context.Background(), source.ID, "", "planner-1"); err != nil {
		t.Fatalf("Fork() error = %v", err)
	}
	if received == nil {
		t.Fatal("no TEMPLATE_VERSION_CREATED event dispatched")
	}
}
