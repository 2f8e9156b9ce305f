package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validSpec() TemplateSpec {
	qty := 120.0
	return TemplateSpec{
		Name:       "Melt-Cast",
		Version:    "1.0",
		ProductSKU: "HR-COIL-2MM",
		Steps: []StepSpec{
			{OperationName: "Melt", OperationType: OperationProcessing, SequenceNumber: 1, Mandatory: true, TargetQty: &qty},
			{OperationName: "Cast", OperationType: OperationProcessing, SequenceNumber: 2, Mandatory: true},
		},
	}
}

func TestTemplateSpec_Validate_OK(t *testing.T) {
	require.Empty(t, validSpec().Validate())
}

func TestTemplateSpec_Validate_NameRules(t *testing.T) {
	spec := validSpec()
	spec.Name = ""
	errs := spec.Validate()
	require.Len(t, errs, 1)
	require.Equal(t, "name", errs[0].Field)
	require.Equal(t, "REQUIRED", errs[0].Code)

	spec.Name = strings.Repeat("x", MaxNameLen+1)
	errs = spec.Validate()
	require.Len(t, errs, 1)
	require.Equal(t, "TOO_LONG", errs[0].Code)
}

func TestTemplateSpec_Validate_VersionRequired(t *testing.T) {
	spec := validSpec()
	spec.Version = ""
	errs := spec.Validate()
	require.Len(t, errs, 1)
	require.Equal(t, "version", errs[0].Field)
}

func TestTemplateSpec_Validate_EffectivityWindow(t *testing.T) {
	spec := validSpec()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)
	spec.EffectiveFrom = &from
	spec.EffectiveTo = &to
	errs := spec.Validate()
	require.Len(t, errs, 1)
	require.Equal(t, "effective_to", errs[0].Field)
}

func TestTemplateSpec_Validate_StepRules(t *testing.T) {
	spec := validSpec()
	neg := -1.0
	spec.Steps[0].OperationName = ""
	spec.Steps[1].TargetQty = &neg
	spec.Steps = append(spec.Steps, StepSpec{
		OperationName: "Sort", OperationType: OperationType("SORTING"), SequenceNumber: 3,
	})

	errs := spec.Validate()
	require.Len(t, errs, 3)
	require.Equal(t, "steps[0].operation_name", errs[0].Field)
	require.Equal(t, "steps[1].target_qty", errs[1].Field)
	require.Equal(t, "steps[2].operation_type", errs[2].Field)
}

func TestCloneSteps_ClearsIdentityAndDetachesPointers(t *testing.T) {
	qty := 50.0
	dur := 30
	src := []StepSpec{
		{ID: 11, OperationName: "Melt", SequenceNumber: 1, TargetQty: &qty, EstimatedDurationMinutes: &dur},
		{ID: 12, OperationName: "Cast", SequenceNumber: 2},
	}

	cloned := CloneSteps(src)
	require.Len(t, cloned, 2)
	require.Zero(t, cloned[0].ID)
	require.Zero(t, cloned[1].ID)
	require.Equal(t, 1, cloned[0].SequenceNumber)
	require.Equal(t, 2, cloned[1].SequenceNumber)

	// Mutating the clone's numeric pointers must not touch the source.
	*cloned[0].TargetQty = 99
	require.Equal(t, 50.0, qty)
	*cloned[0].EstimatedDurationMinutes = 5
	require.Equal(t, 30, dur)
}

func TestStatus_Gates(t *testing.T) {
	require.True(t, StatusDraft.Editable())
	require.True(t, StatusDraft.Deletable())
	for _, s := range []Status{StatusActive, StatusInactive, StatusSuperseded} {
		require.False(t, s.Editable(), "status %s", s)
		require.False(t, s.Deletable(), "status %s", s)
	}

	require.True(t, StatusDraft.CanActivate())
	require.True(t, StatusInactive.CanActivate())
	require.False(t, StatusActive.CanActivate())
	require.False(t, StatusSuperseded.CanActivate())

	require.True(t, StatusActive.CanDeactivate())
	require.False(t, StatusDraft.CanDeactivate())
}

func TestStatus_IsEffective(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	require.True(t, StatusActive.IsEffective(nil, nil, now))
	require.True(t, StatusActive.IsEffective(&before, &after, now))
	require.False(t, StatusActive.IsEffective(&after, nil, now))
	// Half-open window: effective_to itself is excluded.
	require.False(t, StatusActive.IsEffective(&before, &now, now))
	require.False(t, StatusInactive.IsEffective(&before, &after, now))
	require.False(t, StatusSuperseded.IsEffective(nil, nil, now))
}

func TestOperationType_Valid(t *testing.T) {
	require.True(t, OperationInspection.Valid())
	require.False(t, OperationType("WELDING").Valid())
}
