// Package service provides business logic services for RouteSmith.
//
// Services own the template aggregate: a template row plus its ordered step
// rows, always written in one Ent transaction. Multi-template lifecycle
// transitions (activation) live in the usecase layer instead, because they
// need raw SQL and advisory locks on the shared pool.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"routesmith.io/routesmith/ent"
	"routesmith.io/routesmith/ent/processtemplate"
	"routesmith.io/routesmith/ent/routingstep"
	"routesmith.io/routesmith/internal/domain"
	apperrors "routesmith.io/routesmith/internal/pkg/errors"
	"routesmith.io/routesmith/internal/pkg/logger"
)

// TemplateService handles process template CRUD and queries.
type TemplateService struct {
	client     *ent.Client
	dispatcher *domain.EventDispatcher
}

// NewTemplateService creates a new TemplateService. dispatcher may be nil;
// change events are then skipped.
func NewTemplateService(client *ent.Client, dispatcher *domain.EventDispatcher) *TemplateService {
	return &TemplateService{client: client, dispatcher: dispatcher}
}

// Create persists a new DRAFT template with its full step list.
// Incoming steps are renumbered to dense 1..n in list order before writing.
func (s *TemplateService) Create(ctx context.Context, spec domain.TemplateSpec, createdBy string) (*ent.ProcessTemplate, error) {
	if fieldErrs := spec.Validate(); len(fieldErrs) > 0 {
		return nil, apperrors.ErrValidationFailedf(fieldErrs)
	}

	steps := domain.Resequence(spec.Steps)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	create := tx.ProcessTemplate.Create().
		SetName(spec.Name).
		SetVersion(spec.Version).
		SetStatus(processtemplate.StatusDRAFT).
		SetCreatedBy(createdBy)
	if spec.Code != "" {
		create.SetCode(spec.Code)
	}
	if spec.Description != "" {
		create.SetDescription(spec.Description)
	}
	if spec.ProductSKU != "" {
		create.SetProductSku(spec.ProductSKU)
	}
	if spec.EffectiveFrom != nil {
		create.SetEffectiveFrom(*spec.EffectiveFrom)
	}
	if spec.EffectiveTo != nil {
		create.SetEffectiveTo(*spec.EffectiveTo)
	}

	t, err := create.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsConstraintError(err) {
			return nil, apperrors.Conflict(apperrors.CodeTemplateCodeExists, "template code already exists").
				WithParams(map[string]interface{}{"code": spec.Code})
		}
		return nil, fmt.Errorf("create template: %w", err)
	}

	if err := createSteps(ctx, tx, t.ID, steps, string(t.Status)); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create: %w", err)
	}

	logger.Info("Template created",
		zap.Int("template_id", t.ID),
		zap.String("name", t.Name),
		zap.String("version", t.Version),
		zap.Int("steps", len(steps)),
	)
	s.dispatchChange(ctx, domain.EventTemplateCreated, t, len(steps), createdBy)
	return s.Get(ctx, t.ID)
}

// Update performs a full replace of a DRAFT template's fields and step list.
// Non-DRAFT templates are immutable apart from lifecycle transitions.
func (s *TemplateService) Update(ctx context.Context, templateID int, spec domain.TemplateSpec, actor string) (*ent.ProcessTemplate, error) {
	if fieldErrs := spec.Validate(); len(fieldErrs) > 0 {
		return nil, apperrors.ErrValidationFailedf(fieldErrs)
	}

	steps := domain.Resequence(spec.Steps)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	t, err := tx.ProcessTemplate.Get(ctx, templateID)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrTemplateNotFoundf(templateID)
		}
		return nil, fmt.Errorf("get template %d: %w", templateID, err)
	}
	if !domain.Status(t.Status).Editable() {
		_ = tx.Rollback()
		return nil, apperrors.ErrTemplateNotDraftf(templateID, string(t.Status))
	}

	update := t.Update().
		SetName(spec.Name).
		SetVersion(spec.Version)
	if spec.Code != "" {
		update.SetCode(spec.Code)
	} else {
		update.ClearCode()
	}
	if spec.Description != "" {
		update.SetDescription(spec.Description)
	} else {
		update.ClearDescription()
	}
	if spec.ProductSKU != "" {
		update.SetProductSku(spec.ProductSKU)
	} else {
		update.ClearProductSku()
	}
	if spec.EffectiveFrom != nil {
		update.SetEffectiveFrom(*spec.EffectiveFrom)
	} else {
		update.ClearEffectiveFrom()
	}
	if spec.EffectiveTo != nil {
		update.SetEffectiveTo(*spec.EffectiveTo)
	} else {
		update.ClearEffectiveTo()
	}

	if _, err := update.Save(ctx); err != nil {
		_ = tx.Rollback()
		if ent.IsConstraintError(err) {
			return nil, apperrors.Conflict(apperrors.CodeTemplateCodeExists, "template code already exists").
				WithParams(map[string]interface{}{"code": spec.Code})
		}
		return nil, fmt.Errorf("update template %d: %w", templateID, err)
	}

	// Full step replace: the editor submits the complete list, never a diff.
	if _, err := tx.RoutingStep.Delete().
		Where(routingstep.HasTemplateWith(processtemplate.ID(templateID))).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("delete steps of template %d: %w", templateID, err)
	}
	if err := createSteps(ctx, tx, templateID, steps, string(t.Status)); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}

	logger.Info("Template updated",
		zap.Int("template_id", templateID),
		zap.Int("steps", len(steps)),
	)
	updated, err := s.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}
	s.dispatchChange(ctx, domain.EventTemplateUpdated, updated, len(steps), actor)
	return updated, nil
}

// Get returns a template with its steps ordered by sequence number.
func (s *TemplateService) Get(ctx context.Context, templateID int) (*ent.ProcessTemplate, error) {
	t, err := s.client.ProcessTemplate.Query().
		Where(processtemplate.ID(templateID)).
		WithSteps(func(q *ent.RoutingStepQuery) {
			q.Order(ent.Asc(routingstep.FieldSequenceNumber))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrTemplateNotFoundf(templateID)
		}
		return nil, fmt.Errorf("get template %d: %w", templateID, err)
	}
	return t, nil
}

// Delete removes a DRAFT template and its steps. Templates that have left
// DRAFT are part of the production record and cannot be deleted.
func (s *TemplateService) Delete(ctx context.Context, templateID int, actor string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	t, err := tx.ProcessTemplate.Get(ctx, templateID)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return apperrors.ErrTemplateNotFoundf(templateID)
		}
		return fmt.Errorf("get template %d: %w", templateID, err)
	}
	if !domain.Status(t.Status).Deletable() {
		_ = tx.Rollback()
		return apperrors.ErrTemplateNotDraftf(templateID, string(t.Status))
	}

	if _, err := tx.RoutingStep.Delete().
		Where(routingstep.HasTemplateWith(processtemplate.ID(templateID))).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete steps of template %d: %w", templateID, err)
	}
	if err := tx.ProcessTemplate.DeleteOneID(templateID).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete template %d: %w", templateID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}

	logger.Info("Template deleted", zap.Int("template_id", templateID))
	s.dispatchChange(ctx, domain.EventTemplateDeleted, t, 0, actor)
	return nil
}

// dispatchChange emits a best-effort CRUD event after a committed change.
func (s *TemplateService) dispatchChange(ctx context.Context, eventType domain.EventType, t *ent.ProcessTemplate, stepCount int, actor string) {
	if s.dispatcher == nil {
		return
	}
	payload, err := domain.TemplateChangePayload{
		TemplateID: t.ID,
		Code:       t.Code,
		Name:       t.Name,
		ProductSKU: t.ProductSku,
		Version:    t.Version,
		StepCount:  stepCount,
		Actor:      actor,
	}.ToJSON()
	if err != nil {
		logger.Error("Failed to encode template change payload", zap.Error(err))
		return
	}
	_ = s.dispatcher.Dispatch(ctx, &domain.DomainEvent{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		AggregateType: "process_template",
		AggregateID:   fmt.Sprintf("%d", t.ID),
		Payload:       payload,
		CreatedBy:     actor,
		CreatedAt:     time.Now().UTC(),
	})
}

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	Status     string
	ProductSKU string
	Search     string // matches name or code, case-insensitive
	SortBy     string // one of sortableFields, default created_at
	SortDir    string // asc or desc, default desc
	Page       int
	PerPage    int
}

// sortableFields whitelists the columns the list endpoint may sort by.
var sortableFields = map[string]string{
	"created_at": processtemplate.FieldCreatedAt,
	"updated_at": processtemplate.FieldUpdatedAt,
	"name":       processtemplate.FieldName,
	"code":       processtemplate.FieldCode,
	"version":    processtemplate.FieldVersion,
	"status":     processtemplate.FieldStatus,
}

// StatusSummary carries per-status template counts for the editor's status
// badges. Counts honor the search and product SKU filters but not the
// status filter or pagination, so the badges stay meaningful while the user
// flips between statuses.
type StatusSummary struct {
	Draft      int `json:"draft"`
	Active     int `json:"active"`
	Inactive   int `json:"inactive"`
	Superseded int `json:"superseded"`
}

// ListResult is a page of templates plus pagination and summary metadata.
type ListResult struct {
	Items      []*ent.ProcessTemplate
	Total      int
	Page       int
	PerPage    int
	TotalPages int
	Summary    StatusSummary
}

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// List returns a filtered, paginated template page, newest-first unless the
// filter picks another sort.
func (s *TemplateService) List(ctx context.Context, filter ListFilter) (*ListResult, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	sortField := processtemplate.FieldCreatedAt
	if filter.SortBy != "" {
		field, ok := sortableFields[filter.SortBy]
		if !ok {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField, "unknown sort field").
				WithParams(map[string]interface{}{"sort_by": filter.SortBy})
		}
		sortField = field
	}
	order := ent.Desc(sortField)
	switch filter.SortDir {
	case "", "desc":
	case "asc":
		order = ent.Asc(sortField)
	default:
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField, "sort direction must be asc or desc").
			WithParams(map[string]interface{}{"sort_dir": filter.SortDir})
	}

	query := s.scopedQuery(filter)
	if filter.Status != "" {
		if !domain.Status(filter.Status).Valid() {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField, "unknown status filter").
				WithParams(map[string]interface{}{"status": filter.Status})
		}
		query = query.Where(processtemplate.StatusEQ(processtemplate.Status(filter.Status)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count templates: %w", err)
	}

	items, err := query.
		Order(order).
		Offset((page - 1) * perPage).
		Limit(perPage).
		WithSteps(func(q *ent.RoutingStepQuery) {
			q.Order(ent.Asc(routingstep.FieldSequenceNumber))
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	summary, err := s.statusSummary(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := (total + perPage - 1) / perPage
	return &ListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		Summary:    summary,
	}, nil
}

// scopedQuery applies the search and product SKU filters. The status filter
// and pagination are layered on top by List only.
func (s *TemplateService) scopedQuery(filter ListFilter) *ent.ProcessTemplateQuery {
	query := s.client.ProcessTemplate.Query()
	if filter.ProductSKU != "" {
		query = query.Where(processtemplate.ProductSkuEQ(filter.ProductSKU))
	}
	if filter.Search != "" {
		query = query.Where(processtemplate.Or(
			processtemplate.NameContainsFold(filter.Search),
			processtemplate.CodeContainsFold(filter.Search),
		))
	}
	return query
}

// statusSummary computes per-status counts over the filtered collection.
func (s *TemplateService) statusSummary(ctx context.Context, filter ListFilter) (StatusSummary, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.scopedQuery(filter).
		GroupBy(processtemplate.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return StatusSummary{}, fmt.Errorf("status summary: %w", err)
	}

	var summary StatusSummary
	for _, row := range rows {
		switch domain.Status(row.Status) {
		case domain.StatusDraft:
			summary.Draft = row.Count
		case domain.StatusActive:
			summary.Active = row.Count
		case domain.StatusInactive:
			summary.Inactive = row.Count
		case domain.StatusSuperseded:
			summary.Superseded = row.Count
		}
	}
	return summary, nil
}

// VersionChain returns the full version lineage of a template: the root
// ancestor, every fork descending from it, and the template itself, ordered
// oldest-first by creation time.
func (s *TemplateService) VersionChain(ctx context.Context, templateID int) ([]*ent.ProcessTemplate, error) {
	t, err := s.client.ProcessTemplate.Get(ctx, templateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrTemplateNotFoundf(templateID)
		}
		return nil, fmt.Errorf("get template %d: %w", templateID, err)
	}

	// Walk predecessor links to the lineage root.
	root := t
	seen := map[int]bool{t.ID: true}
	for root.PredecessorID != nil {
		prev, err := s.client.ProcessTemplate.Get(ctx, *root.PredecessorID)
		if err != nil {
			if ent.IsNotFound(err) {
				break // Dangling link: treat current node as root
			}
			return nil, fmt.Errorf("get predecessor %d: %w", *root.PredecessorID, err)
		}
		if seen[prev.ID] {
			break
		}
		seen[prev.ID] = true
		root = prev
	}

	// Collect the whole lineage tree from the root, breadth-first.
	chain := []*ent.ProcessTemplate{root}
	frontier := []int{root.ID}
	visited := map[int]bool{root.ID: true}
	for len(frontier) > 0 {
		successors, err := s.client.ProcessTemplate.Query().
			Where(processtemplate.PredecessorIDIn(frontier...)).
			Order(ent.Asc(processtemplate.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("query successors: %w", err)
		}
		frontier = frontier[:0]
		for _, succ := range successors {
			if visited[succ.ID] {
				continue
			}
			visited[succ.ID] = true
			chain = append(chain, succ)
			frontier = append(frontier, succ.ID)
		}
	}

	return chain, nil
}

// createSteps bulk-inserts a resequenced step list for a template.
func createSteps(ctx context.Context, tx *ent.Tx, templateID int, steps []domain.StepSpec, displayStatus string) error {
	if len(steps) == 0 {
		return nil
	}
	builders := make([]*ent.RoutingStepCreate, len(steps))
	for i, step := range steps {
		opType := step.OperationType
		if opType == "" {
			opType = domain.OperationProcessing
		}
		builder := tx.RoutingStep.Create().
			SetTemplateID(templateID).
			SetSequenceNumber(step.SequenceNumber).
			SetOperationName(step.OperationName).
			SetOperationType(routingstep.OperationType(opType)).
			SetIsParallel(step.IsParallel).
			SetMandatory(step.Mandatory).
			SetProducesOutputBatch(step.ProducesOutputBatch).
			SetAllowsSplit(step.AllowsSplit).
			SetAllowsMerge(step.AllowsMerge).
			SetDisplayStatus(displayStatus)
		if step.OperationCode != "" {
			builder.SetOperationCode(step.OperationCode)
		}
		if step.Description != "" {
			builder.SetDescription(step.Description)
		}
		if step.TargetQty != nil {
			builder.SetTargetQty(*step.TargetQty)
		}
		if step.EstimatedDurationMinutes != nil {
			builder.SetEstimatedDurationMinutes(*step.EstimatedDurationMinutes)
		}
		builders[i] = builder
	}
	if _, err := tx.RoutingStep.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("create %d steps for template %d: %w", len(steps), templateID, err)
	}
	return nil
}
