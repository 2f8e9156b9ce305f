// Package domain holds the process-routing domain model: template and step
// specifications, the lifecycle status machine, step sequencing rules, and
// lifecycle domain events.
package domain

import "time"

// Status is the lifecycle state of a process template.
//
// DRAFT is the only mutable state. ACTIVE templates are the live routing
// definition for their product. INACTIVE templates were retired by choice,
// SUPERSEDED templates were replaced by a newer version.
type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusActive     Status = "ACTIVE"
	StatusInactive   Status = "INACTIVE"
	StatusSuperseded Status = "SUPERSEDED"
)

// Valid reports whether s is a known lifecycle status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusInactive, StatusSuperseded:
		return true
	}
	return false
}

// Editable reports whether a template in this status accepts field and
// step-list mutations. Everything except DRAFT is immutable apart from
// status transitions.
func (s Status) Editable() bool {
	return s == StatusDraft
}

// Deletable reports whether a template in this status may be deleted.
func (s Status) Deletable() bool {
	return s == StatusDraft
}

// CanActivate reports whether the status machine has an edge from s to
// ACTIVE. SUPERSEDED is terminal; re-activating an ACTIVE template is
// rejected rather than treated as a no-op.
func (s Status) CanActivate() bool {
	return s == StatusDraft || s == StatusInactive
}

// CanDeactivate reports whether the status machine has an edge from s to
// INACTIVE via an explicit deactivation.
func (s Status) CanDeactivate() bool {
	return s == StatusActive
}

// IsEffective reports whether a template with this status and effectivity
// window is the live definition at instant now. The window is half-open:
// [effectiveFrom, effectiveTo). A nil bound is unbounded on that side.
func (s Status) IsEffective(effectiveFrom, effectiveTo *time.Time, now time.Time) bool {
	if s != StatusActive {
		return false
	}
	if effectiveFrom != nil && now.Before(*effectiveFrom) {
		return false
	}
	if effectiveTo != nil && !now.Before(*effectiveTo) {
		return false
	}
	return true
}

// OperationType is the enumerated category of a routing step.
type OperationType string

const (
	OperationProcessing OperationType = "PROCESSING"
	OperationInspection OperationType = "INSPECTION"
	OperationAssembly   OperationType = "ASSEMBLY"
	OperationTransport  OperationType = "TRANSPORT"
	OperationPackaging  OperationType = "PACKAGING"
	OperationRework     OperationType = "REWORK"
)

// Valid reports whether t is a known operation type.
func (t OperationType) Valid() bool {
	switch t {
	case OperationProcessing, OperationInspection, OperationAssembly,
		OperationTransport, OperationPackaging, OperationRework:
		return true
	}
	return false
}
