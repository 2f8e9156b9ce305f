package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"routesmith.io/routesmith/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestEventDispatcher_DispatchesToAllHandlers(t *testing.T) {
	d := NewEventDispatcher()
	var calls []string

	d.Register(EventTemplateActivated, func(ctx context.Context, e *DomainEvent) error {
		calls = append(calls, "audit")
		return nil
	})
	d.Register(EventTemplateActivated, func(ctx context.Context, e *DomainEvent) error {
		calls = append(calls, "notify")
		return nil
	})

	err := d.Dispatch(context.Background(), &DomainEvent{
		EventID:   "evt-1",
		EventType: EventTemplateActivated,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"audit", "notify"}, calls)
}

func TestEventDispatcher_BestEffortOnHandlerError(t *testing.T) {
	d := NewEventDispatcher()
	var secondRan bool

	d.Register(EventTemplateDeleted, func(ctx context.Context, e *DomainEvent) error {
		return errors.New("sink unavailable")
	})
	d.Register(EventTemplateDeleted, func(ctx context.Context, e *DomainEvent) error {
		secondRan = true
		return nil
	})

	err := d.Dispatch(context.Background(), &DomainEvent{
		EventID:   "evt-2",
		EventType: EventTemplateDeleted,
	})
	require.Error(t, err)
	require.True(t, secondRan, "remaining handlers must still run")
}

func TestEventDispatcher_NoHandlersIsNotAnError(t *testing.T) {
	d := NewEventDispatcher()
	require.NoError(t, d.Dispatch(context.Background(), &DomainEvent{
		EventID:   "evt-3",
		EventType: EventTemplateUpdated,
	}))
}

func TestTemplateLifecyclePayload_ToJSON(t *testing.T) {
	payload := TemplateLifecyclePayload{
		TemplateID:     7,
		ProductSKU:     "HR-COIL-2MM",
		Version:        "2.0",
		FromStatus:     string(StatusDraft),
		ToStatus:       string(StatusActive),
		Actor:          "user-1",
		SupersededIDs:  []int{3},
		DeactivatedIDs: []int{5, 6},
	}

	data, err := payload.ToJSON()
	require.NoError(t, err)

	var decoded TemplateLifecyclePayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, payload, decoded)
}

func TestTemplateVersionPayload_ToJSON(t *testing.T) {
	payload := TemplateVersionPayload{
		SourceTemplateID: 1,
		NewTemplateID:    2,
		SourceVersion:    "1.0",
		NewVersion:       "2.0",
		StepCount:        4,
		Actor:            "user-2",
	}

	data, err := payload.ToJSON()
	require.NoError(t, err)

	var decoded TemplateVersionPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, payload, decoded)
}
