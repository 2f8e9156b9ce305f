package domain

import (
	"encoding/json"
	"time"
)

// EventType defines the type of domain event.
type EventType string

const (
	// Template CRUD events
	EventTemplateCreated EventType = "TEMPLATE_CREATED"
	EventTemplateUpdated EventType = "TEMPLATE_UPDATED"
	EventTemplateDeleted EventType = "TEMPLATE_DELETED"

	// Lifecycle transition events
	EventTemplateActivated   EventType = "TEMPLATE_ACTIVATED"
	EventTemplateDeactivated EventType = "TEMPLATE_DEACTIVATED"
	EventTemplateExpired     EventType = "TEMPLATE_EXPIRED"

	// Version management events
	EventTemplateVersionCreated EventType = "TEMPLATE_VERSION_CREATED"
)

// DomainEvent represents an immutable lifecycle event on a template.
type DomainEvent struct {
	EventID       string    `json:"event_id"`
	EventType     EventType `json:"event_type"`
	AggregateType string    `json:"aggregate_type"`
	AggregateID   string    `json:"aggregate_id"`
	Payload       []byte    `json:"payload"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// TemplateLifecyclePayload describes a template status transition.
type TemplateLifecyclePayload struct {
	TemplateID int    `json:"template_id"`
	ProductSKU string `json:"product_sku,omitempty"`
	Version    string `json:"version"`
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status"`
	Actor      string `json:"actor"`

	// DeactivatedIDs / SupersededIDs list siblings retired as part of an
	// exclusive activation.
	DeactivatedIDs []int `json:"deactivated_ids,omitempty"`
	SupersededIDs  []int `json:"superseded_ids,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p TemplateLifecyclePayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// TemplateChangePayload describes a create, update or delete of a template
// aggregate.
type TemplateChangePayload struct {
	TemplateID int    `json:"template_id"`
	Code       string `json:"code,omitempty"`
	Name       string `json:"name"`
	ProductSKU string `json:"product_sku,omitempty"`
	Version    string `json:"version"`
	StepCount  int    `json:"step_count"`
	Actor      string `json:"actor"`
}

// ToJSON converts payload to JSON bytes.
func (p TemplateChangePayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// TemplateVersionPayload describes a version fork.
type TemplateVersionPayload struct {
	SourceTemplateID int    `json:"source_template_id"`
	NewTemplateID    int    `json:"new_template_id"`
	SourceVersion    string `json:"source_version"`
	NewVersion       string `json:"new_version"`
	StepCount        int    `json:"step_count"`
	Actor            string `json:"actor"`
}

// ToJSON converts payload to JSON bytes.
func (p TemplateVersionPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}
