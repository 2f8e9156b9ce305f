package domain

import (
	"fmt"
	"time"

	apperrors "routesmith.io/routesmith/internal/pkg/errors"
)

// Field length limits shared by create and update validation.
const (
	MaxNameLen        = 100
	MaxDescriptionLen = 500
)

// StepSpec is one routing step as submitted by the editor. ID is zero for
// steps that have not been persisted yet; persisted ids are never reused
// across templates.
type StepSpec struct {
	ID                       int
	SequenceNumber           int
	OperationName            string
	OperationType            OperationType
	OperationCode            string
	Description              string
	TargetQty                *float64
	EstimatedDurationMinutes *int
	IsParallel               bool
	Mandatory                bool
	ProducesOutputBatch      bool
	AllowsSplit              bool
	AllowsMerge              bool
}

// TemplateSpec is the full set of mutable template fields plus the complete
// step list. The editor accumulates step edits client-side and submits the
// whole spec atomically; the store performs a full replace, never a diff.
type TemplateSpec struct {
	Code          string
	Name          string
	Description   string
	ProductSKU    string
	Version       string
	EffectiveFrom *time.Time
	EffectiveTo   *time.Time
	Steps         []StepSpec
}

// Validate checks per-field constraints and returns one FieldError per
// violation. An empty result means the spec is persistable.
func (s TemplateSpec) Validate() []apperrors.FieldError {
	var fieldErrs []apperrors.FieldError

	if s.Name == "" {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field: "name", Code: "REQUIRED", Message: "name is required",
		})
	} else if len(s.Name) > MaxNameLen {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field: "name", Code: "TOO_LONG",
			Message: fmt.Sprintf("name exceeds %d characters", MaxNameLen),
		})
	}

	if len(s.Description) > MaxDescriptionLen {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field: "description", Code: "TOO_LONG",
			Message: fmt.Sprintf("description exceeds %d characters", MaxDescriptionLen),
		})
	}

	if s.Version == "" {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field: "version", Code: "REQUIRED", Message: "version label is required",
		})
	}

	if s.EffectiveFrom != nil && s.EffectiveTo != nil && !s.EffectiveTo.After(*s.EffectiveFrom) {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field: "effective_to", Code: "INVALID_WINDOW",
			Message: "effective_to must be after effective_from",
		})
	}

	for i, step := range s.Steps {
		fieldErrs = append(fieldErrs, step.validate(i)...)
	}

	return fieldErrs
}

func (s StepSpec) validate(index int) []apperrors.FieldError {
	var fieldErrs []apperrors.FieldError
	prefix := fmt.Sprintf("steps[%d].", index)

	if s.OperationName == "" {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field: prefix + "operation_name", Code: "REQUIRED",
			Message: "operation name is required",
		})
	} else if len(s.OperationName) > MaxNameLen {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field: prefix + "operation_name", Code: "TOO_LONG",
			Message: fmt.Sprintf("operation name exceeds %d characters", MaxNameLen),
		})
	}

	if len(s.Description) > MaxDescriptionLen {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field: prefix + "description", Code: "TOO_LONG",
			Message: fmt.Sprintf("description exceeds %d characters", MaxDescriptionLen),
		})
	}

	if s.OperationType != "" && !s.OperationType.Valid() {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field: prefix + "operation_type", Code: "INVALID_ENUM",
			Message: fmt.Sprintf("unknown operation type %q", s.OperationType),
		})
	}

	if s.TargetQty != nil && *s.TargetQty < 0 {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field: prefix + "target_qty", Code: "NEGATIVE",
			Message: "target quantity must not be negative",
		})
	}

	if s.EstimatedDurationMinutes != nil && *s.EstimatedDurationMinutes < 0 {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field: prefix + "estimated_duration_minutes", Code: "NEGATIVE",
			Message: "estimated duration must not be negative",
		})
	}

	return fieldErrs
}

// CloneSteps deep-copies a step list with persisted identities cleared, so
// persisting the copy creates new step rows. Sequence numbers are preserved.
// Used by version forking.
func CloneSteps(steps []StepSpec) []StepSpec {
	cloned := make([]StepSpec, len(steps))
	for i, step := range steps {
		step.ID = 0
		if step.TargetQty != nil {
			qty := *step.TargetQty
			step.TargetQty = &qty
		}
		if step.EstimatedDurationMinutes != nil {
			dur := *step.EstimatedDurationMinutes
			step.EstimatedDurationMinutes = &dur
		}
		cloned[i] = step
	}
	return cloned
}
