package handlers

import (
	"routesmith.io/routesmith/ent"
	"routesmith.io/routesmith/internal/domain"
)

// Converters between Ent entities, domain specs, and API DTOs.

func stepSpecsFromPayload(payloads []StepPayload) []domain.StepSpec {
	specs := make([]domain.StepSpec, len(payloads))
	for i, p := range payloads {
		mandatory := true
		if p.Mandatory != nil {
			mandatory = *p.Mandatory
		}
		specs[i] = domain.StepSpec{
			SequenceNumber:           p.SequenceNumber,
			OperationName:            p.OperationName,
			OperationType:            domain.OperationType(p.OperationType),
			OperationCode:            p.OperationCode,
			Description:              p.Description,
			TargetQty:                p.TargetQty,
			EstimatedDurationMinutes: p.EstimatedDurationMinutes,
			IsParallel:               p.IsParallel,
			Mandatory:                mandatory,
			ProducesOutputBatch:      p.ProducesOutputBatch,
			AllowsSplit:              p.AllowsSplit,
			AllowsMerge:              p.AllowsMerge,
		}
	}
	return specs
}

func templateSpecFromCreate(req CreateTemplateRequest) domain.TemplateSpec {
	version := req.Version
	if version == "" {
		version = domain.DefaultVersionLabel
	}
	return domain.TemplateSpec{
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		ProductSKU:    req.ProductSKU,
		Version:       version,
		EffectiveFrom: req.EffectiveFrom,
		EffectiveTo:   req.EffectiveTo,
		Steps:         stepSpecsFromPayload(req.Steps),
	}
}

func templateSpecFromUpdate(req UpdateTemplateRequest) domain.TemplateSpec {
	return domain.TemplateSpec{
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		ProductSKU:    req.ProductSKU,
		Version:       req.Version,
		EffectiveFrom: req.EffectiveFrom,
		EffectiveTo:   req.EffectiveTo,
		Steps:         stepSpecsFromPayload(req.Steps),
	}
}

func stepToAPI(s *ent.RoutingStep) StepResponse {
	return StepResponse{
		ID:                       s.ID,
		SequenceNumber:           s.SequenceNumber,
		OperationName:            s.OperationName,
		OperationType:            s.OperationType.String(),
		OperationCode:            s.OperationCode,
		Description:              s.Description,
		TargetQty:                s.TargetQty,
		EstimatedDurationMinutes: s.EstimatedDurationMinutes,
		IsParallel:               s.IsParallel,
		Mandatory:                s.Mandatory,
		ProducesOutputBatch:      s.ProducesOutputBatch,
		AllowsSplit:              s.AllowsSplit,
		AllowsMerge:              s.AllowsMerge,
		DisplayStatus:            s.DisplayStatus,
	}
}

func templateToAPI(t *ent.ProcessTemplate) TemplateResponse {
	steps := make([]StepResponse, 0, len(t.Edges.Steps))
	for _, s := range t.Edges.Steps {
		steps = append(steps, stepToAPI(s))
	}
	return TemplateResponse{
		ID:            t.ID,
		Code:          t.Code,
		Name:          t.Name,
		Description:   t.Description,
		ProductSKU:    t.ProductSku,
		Status:        t.Status.String(),
		Version:       t.Version,
		EffectiveFrom: t.EffectiveFrom,
		EffectiveTo:   t.EffectiveTo,
		PredecessorID: t.PredecessorID,
		CreatedBy:     t.CreatedBy,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
		StepCount:     len(steps),
		Steps:         steps,
	}
}

func templateToSummary(t *ent.ProcessTemplate) TemplateSummary {
	return TemplateSummary{
		ID:            t.ID,
		Code:          t.Code,
		Name:          t.Name,
		ProductSKU:    t.ProductSku,
		Status:        t.Status.String(),
		Version:       t.Version,
		EffectiveFrom: t.EffectiveFrom,
		EffectiveTo:   t.EffectiveTo,
		PredecessorID: t.PredecessorID,
		CreatedBy:     t.CreatedBy,
		CreatedAt:     t.CreatedAt,
		StepCount:     len(t.Edges.Steps),
	}
}
