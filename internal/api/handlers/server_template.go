package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "routesmith.io/routesmith/internal/pkg/errors"
	"routesmith.io/routesmith/internal/service"
	"routesmith.io/routesmith/internal/usecase"
)

// templateIDParam parses the :template_id path parameter.
func templateIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("template_id"))
	if err != nil || id <= 0 {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "template id must be a positive integer"))
		return 0, false
	}
	return id, true
}

// CreateTemplate handles POST /templates.
func (s *Server) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeInvalidRequestField, "invalid request body", http.StatusBadRequest))
		return
	}

	actor := actorFromCtx(c)
	created, err := s.templates.Create(c.Request.Context(), templateSpecFromCreate(req), actor)
	if err != nil {
		_ = c.Error(err)
		return
	}

	s.audit.LogTemplateOperationAsync("create", created.ID, actor, map[string]interface{}{
		"name":    created.Name,
		"version": created.Version,
		"steps":   len(created.Edges.Steps),
	})
	c.JSON(http.StatusCreated, templateToAPI(created))
}

// GetTemplate handles GET /templates/{template_id}.
func (s *Server) GetTemplate(c *gin.Context) {
	id, ok := templateIDParam(c)
	if !ok {
		return
	}
	t, err := s.templates.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, templateToAPI(t))
}

// ListTemplates handles GET /templates.
func (s *Server) ListTemplates(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	result, err := s.templates.List(c.Request.Context(), service.ListFilter{
		Status:     c.Query("status"),
		ProductSKU: c.Query("product_sku"),
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortDir:    c.Query("sort_dir"),
		Page:       page,
		PerPage:    perPage,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]TemplateSummary, 0, len(result.Items))
	for _, t := range result.Items {
		items = append(items, templateToSummary(t))
	}
	c.JSON(http.StatusOK, TemplateList{
		Items: items,
		Pagination: Pagination{
			Page:       result.Page,
			PerPage:    result.PerPage,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
		Summary: StatusSummary{
			Draft:      result.Summary.Draft,
			Active:     result.Summary.Active,
			Inactive:   result.Summary.Inactive,
			Superseded: result.Summary.Superseded,
		},
	})
}

// UpdateTemplate handles PUT /templates/{template_id}.
func (s *Server) UpdateTemplate(c *gin.Context) {
	id, ok := templateIDParam(c)
	if !ok {
		return
	}
	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeInvalidRequestField, "invalid request body", http.StatusBadRequest))
		return
	}

	updated, err := s.templates.Update(c.Request.Context(), id, templateSpecFromUpdate(req), actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	s.audit.LogTemplateOperationAsync("update", id, actorFromCtx(c), map[string]interface{}{
		"name":  updated.Name,
		"steps": len(updated.Edges.Steps),
	})
	c.JSON(http.StatusOK, templateToAPI(updated))
}

// DeleteTemplate handles DELETE /templates/{template_id}.
func (s *Server) DeleteTemplate(c *gin.Context) {
	id, ok := templateIDParam(c)
	if !ok {
		return
	}
	if err := s.templates.Delete(c.Request.Context(), id, actorFromCtx(c)); err != nil {
		_ = c.Error(err)
		return
	}

	s.audit.LogTemplateOperationAsync("delete", id, actorFromCtx(c), nil)
	c.Status(http.StatusNoContent)
}

// ActivateTemplate handles POST /templates/{template_id}/activate.
func (s *Server) ActivateTemplate(c *gin.Context) {
	id, ok := templateIDParam(c)
	if !ok {
		return
	}
	var req ActivateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(apperrors.Wrap(err, apperrors.CodeInvalidRequestField, "invalid request body", http.StatusBadRequest))
			return
		}
	}

	result, err := s.activation.Activate(c.Request.Context(), id, actorFromCtx(c), usecase.ActivateOptions{
		EffectiveFrom:    req.EffectiveFrom,
		DeactivateOthers: req.DeactivateOthers,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ActivationResponse{
		TemplateID:     result.TemplateID,
		ProductSKU:     result.ProductSKU,
		Status:         "ACTIVE",
		SupersededIDs:  result.SupersededIDs,
		DeactivatedIDs: result.DeactivatedIDs,
	})
}

// DeactivateTemplate handles POST /templates/{template_id}/deactivate.
func (s *Server) DeactivateTemplate(c *gin.Context) {
	id, ok := templateIDParam(c)
	if !ok {
		return
	}
	result, err := s.activation.Deactivate(c.Request.Context(), id, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ActivationResponse{
		TemplateID: result.TemplateID,
		ProductSKU: result.ProductSKU,
		Status:     "INACTIVE",
	})
}

// ListTemplateVersions handles GET /templates/{template_id}/versions.
func (s *Server) ListTemplateVersions(c *gin.Context) {
	id, ok := templateIDParam(c)
	if !ok {
		return
	}
	chain, err := s.templates.VersionChain(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]TemplateSummary, 0, len(chain))
	for _, t := range chain {
		items = append(items, templateToSummary(t))
	}
	c.JSON(http.StatusOK, VersionList{Items: items})
}

// CreateTemplateVersion handles POST /templates/{template_id}/versions.
func (s *Server) CreateTemplateVersion(c *gin.Context) {
	id, ok := templateIDParam(c)
	if !ok {
		return
	}
	var req NewVersionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(apperrors.Wrap(err, apperrors.CodeInvalidRequestField, "invalid request body", http.StatusBadRequest))
			return
		}
	}

	forked, err := s.forker.Fork(c.Request.Context(), id, req.Version, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, templateToAPI(forked))
}
