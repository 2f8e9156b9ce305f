package handlers

import "time"

// Hand-written request/response DTOs for the template API.

// StepPayload is one routing step in a create/update request. Mandatory
// defaults to true when omitted; sequence numbers are renumbered server-side
// to dense 1..n in list order.
type StepPayload struct {
	SequenceNumber           int      `json:"sequence_number"`
	OperationName            string   `json:"operation_name"`
	OperationType            string   `json:"operation_type,omitempty"`
	OperationCode            string   `json:"operation_code,omitempty"`
	Description              string   `json:"description,omitempty"`
	TargetQty                *float64 `json:"target_qty,omitempty"`
	EstimatedDurationMinutes *int     `json:"estimated_duration_minutes,omitempty"`
	IsParallel               bool     `json:"is_parallel"`
	Mandatory                *bool    `json:"mandatory,omitempty"`
	ProducesOutputBatch      bool     `json:"produces_output_batch"`
	AllowsSplit              bool     `json:"allows_split"`
	AllowsMerge              bool     `json:"allows_merge"`
}

// CreateTemplateRequest is the body for POST /templates.
type CreateTemplateRequest struct {
	Code          string        `json:"code,omitempty"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	ProductSKU    string        `json:"product_sku,omitempty"`
	Version       string        `json:"version,omitempty"`
	EffectiveFrom *time.Time    `json:"effective_from,omitempty"`
	EffectiveTo   *time.Time    `json:"effective_to,omitempty"`
	Steps         []StepPayload `json:"steps"`
}

// UpdateTemplateRequest is the body for PUT /templates/{id}. The step list
// replaces the stored one entirely.
type UpdateTemplateRequest struct {
	Code          string        `json:"code,omitempty"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	ProductSKU    string        `json:"product_sku,omitempty"`
	Version       string        `json:"version"`
	EffectiveFrom *time.Time    `json:"effective_from,omitempty"`
	EffectiveTo   *time.Time    `json:"effective_to,omitempty"`
	Steps         []StepPayload `json:"steps"`
}

// ActivateRequest is the body for POST /templates/{id}/activate.
type ActivateRequest struct {
	EffectiveFrom    *time.Time `json:"effective_from,omitempty"`
	DeactivateOthers bool       `json:"deactivate_others,omitempty"`
}

// NewVersionRequest is the body for POST /templates/{id}/versions. An empty
// version bumps the source label mechanically.
type NewVersionRequest struct {
	Version string `json:"version,omitempty"`
}

// StepResponse is one routing step in API responses.
type StepResponse struct {
	ID                       int      `json:"id"`
	SequenceNumber           int      `json:"sequence_number"`
	OperationName            string   `json:"operation_name"`
	OperationType            string   `json:"operation_type"`
	OperationCode            string   `json:"operation_code,omitempty"`
	Description              string   `json:"description,omitempty"`
	TargetQty                *float64 `json:"target_qty,omitempty"`
	EstimatedDurationMinutes *int     `json:"estimated_duration_minutes,omitempty"`
	IsParallel               bool     `json:"is_parallel"`
	Mandatory                bool     `json:"mandatory"`
	ProducesOutputBatch      bool     `json:"produces_output_batch"`
	AllowsSplit              bool     `json:"allows_split"`
	AllowsMerge              bool     `json:"allows_merge"`
	DisplayStatus            string   `json:"display_status,omitempty"`
}

// TemplateResponse is the full template representation with steps.
type TemplateResponse struct {
	ID            int            `json:"id"`
	Code          string         `json:"code,omitempty"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	ProductSKU    string         `json:"product_sku,omitempty"`
	Status        string         `json:"status"`
	Version       string         `json:"version"`
	EffectiveFrom *time.Time     `json:"effective_from,omitempty"`
	EffectiveTo   *time.Time     `json:"effective_to,omitempty"`
	PredecessorID *int           `json:"predecessor_id,omitempty"`
	CreatedBy     string         `json:"created_by"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	StepCount     int            `json:"step_count"`
	Steps         []StepResponse `json:"steps"`
}

// TemplateSummary is the list representation without the step list.
type TemplateSummary struct {
	ID            int        `json:"id"`
	Code          string     `json:"code,omitempty"`
	Name          string     `json:"name"`
	ProductSKU    string     `json:"product_sku,omitempty"`
	Status        string     `json:"status"`
	Version       string     `json:"version"`
	EffectiveFrom *time.Time `json:"effective_from,omitempty"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
	PredecessorID *int       `json:"predecessor_id,omitempty"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	StepCount     int        `json:"step_count"`
}

// Pagination carries list paging metadata.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// StatusSummary is the global per-status count for sidebar badges.
type StatusSummary struct {
	Draft      int `json:"draft"`
	Active     int `json:"active"`
	Inactive   int `json:"inactive"`
	Superseded int `json:"superseded"`
}

// TemplateList is the response for GET /templates.
type TemplateList struct {
	Items      []TemplateSummary `json:"items"`
	Pagination Pagination        `json:"pagination"`
	Summary    StatusSummary     `json:"summary"`
}

// VersionList is the response for GET /templates/{id}/versions.
type VersionList struct {
	Items []TemplateSummary `json:"items"`
}

// ActivationResponse reports a committed lifecycle transition.
type ActivationResponse struct {
	TemplateID     int    `json:"template_id"`
	ProductSKU     string `json:"product_sku,omitempty"`
	Status         string `json:"status"`
	SupersededIDs  []int  `json:"superseded_ids,omitempty"`
	DeactivatedIDs []int  `json:"deactivated_ids,omitempty"`
}
