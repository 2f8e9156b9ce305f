package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"

	"routesmith.io/routesmith/ent"
	"routesmith.io/routesmith/internal/api/middleware"
	"routesmith.io/routesmith/internal/domain"
	"routesmith.io/routesmith/internal/governance/audit"
	apperrors "routesmith.io/routesmith/internal/pkg/errors"
	"routesmith.io/routesmith/internal/pkg/logger"
	"routesmith.io/routesmith/internal/service"
	"routesmith.io/routesmith/internal/testutil"
	"routesmith.io/routesmith/internal/usecase"
)

func init() {
	_ = logger.Init("error", "json")
}

// newBehaviorTestServer builds a router with real Postgres-backed handlers
// and auth middleware stubbed to a fixed user.
func newBehaviorTestServer(t *testing.T, prefix string) (*gin.Engine, *ent.Client) {
	t.Helper()
	client, pool := testutil.OpenEntPostgresWithPool(t, prefix)

	dispatcher := domain.NewEventDispatcher()
	auditLog := audit.NewLogger(client, nil)
	srv := NewServer(ServerDeps{
		EntClient:  client,
		Pool:       pool,
		Audit:      auditLog,
		Templates:  service.NewTemplateService(client, dispatcher),
		Activation: usecase.NewActivationWriter(pool, dispatcher, auditLog),
		Forker:     usecase.NewVersionForker(client, dispatcher, auditLog),
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "planner-1")
		c.Next()
	})

	v1 := router.Group("/api/v1")
	templates := v1.Group("/templates")
	templates.GET("", srv.ListTemplates)
	templates.POST("", srv.CreateTemplate)
	templates.GET("/:template_id", srv.GetTemplate)
	templates.PUT("/:template_id", srv.UpdateTemplate)
	templates.DELETE("/:template_id", srv.DeleteTemplate)
	templates.POST("/:template_id/activate", srv.ActivateTemplate)
	templates.POST("/:template_id/deactivate", srv.DeactivateTemplate)
	templates.GET("/:template_id/versions", srv.ListTemplateVersions)
	templates.POST("/:template_id/versions", srv.CreateTemplateVersion)
	v1.GET("/health/ready", srv.GetReadiness)

	return router, client
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createTemplateRequest() CreateTemplateRequest {
	return CreateTemplateRequest{
		Code:       "RM-HR-COIL",
		Name:       "Hot Rolling - Coil",
		ProductSKU: "HR-COIL-2MM",
		Steps: []StepPayload{
			{SequenceNumber: 1, OperationName: "Melt", OperationType: "PROCESSING"},
			{SequenceNumber: 2, OperationName: "Cast", OperationType: "PROCESSING"},
		},
	}
}

func TestTemplateHandler_CreateAndGet(t *testing.T) {
	router, _ := newBehaviorTestServer(t, "h_create")

	w := doJSON(t, router, http.MethodPost, "/api/v1/templates", createTemplateRequest())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d body=%s", w.Code, w.Body.String())
	}

	var created TemplateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Status != "DRAFT" {
		t.Errorf("status = %s, want DRAFT", created.Status)
	}
	if created.Version != "1.0" {
		t.Errorf("version = %s, want default 1.0", created.Version)
	}
	if created.StepCount != 2 || len(created.Steps) != 2 {
		t.Errorf("steps = %d/%d, want 2", created.StepCount, len(created.Steps))
	}
	if created.CreatedBy != "planner-1" {
		t.Errorf("created_by = %q", created.CreatedBy)
	}

	get := doJSON(t, router, http.MethodGet, "/api/v1/templates/"+itoa(created.ID), nil)
	if get.Code != http.StatusOK {
		t.Fatalf("get status = %d body=%s", get.Code, get.Body.String())
	}
}

func TestTemplateHandler_Create_ValidationErrorShape(t *testing.T) {
	router, _ := newBehaviorTestServer(t, "h_invalid")

	req := createTemplateRequest()
	req.Name = ""
	w := doJSON(t, router, http.MethodPost, "/api/v1/templates", req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Code        string                 `json:"code"`
		FieldErrors []apperrors.FieldError `json:"field_errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Code != apperrors.CodeValidationFailed {
		t.Errorf("code = %s, want %s", resp.Code, apperrors.CodeValidationFailed)
	}
	if len(resp.FieldErrors) == 0 || resp.FieldErrors[0].Field != "name" {
		t.Errorf("field_errors = %+v", resp.FieldErrors)
	}
}

func TestTemplateHandler_Lifecycle(t *testing.T) {
	router, _ := newBehaviorTestServer(t, "h_lifecycle")

	w := doJSON(t, router, http.MethodPost, "/api/v1/templates", createTemplateRequest())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d body=%s", w.Code, w.Body.String())
	}
	var created TemplateResponse
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	id := itoa(created.ID)

	// Activate
	act := doJSON(t, router, http.MethodPost, "/api/v1/templates/"+id+"/activate", nil)
	if act.Code != http.StatusOK {
		t.Fatalf("activate status = %d body=%s", act.Code, act.Body.String())
	}
	var actResp ActivationResponse
	_ = json.Unmarshal(act.Body.Bytes(), &actResp)
	if actResp.Status != "ACTIVE" {
		t.Errorf("activation status = %s", actResp.Status)
	}

	// Mutating an ACTIVE template is rejected.
	upd := doJSON(t, router, http.MethodPut, "/api/v1/templates/"+id, UpdateTemplateRequest{
		Name:    "changed",
		Version: "1.0",
	})
	if upd.Code != http.StatusConflict {
		t.Fatalf("update of active status = %d, want 409 body=%s", upd.Code, upd.Body.String())
	}
	del := doJSON(t, router, http.MethodDelete, "/api/v1/templates/"+id, nil)
	if del.Code != http.StatusConflict {
		t.Fatalf("delete of active status = %d, want 409", del.Code)
	}

	// Deactivated templates stay read-only but can be re-activated.
	deact := doJSON(t, router, http.MethodPost, "/api/v1/templates/"+id+"/deactivate", nil)
	if deact.Code != http.StatusOK {
		t.Fatalf("deactivate status = %d body=%s", deact.Code, deact.Body.String())
	}
	react := doJSON(t, router, http.MethodPost, "/api/v1/templates/"+id+"/activate", nil)
	if react.Code != http.StatusOK {
		t.Fatalf("reactivate status = %d body=%s", react.Code, react.Body.String())
	}
}

func TestTemplateHandler_ActivationSwapsSiblings(t *testing.T) {
	router, _ := newBehaviorTestServer(t, "h_swap")

	w1 := doJSON(t, router, http.MethodPost, "/api/v1/templates", createTemplateRequest())
	var v1 TemplateResponse
	_ = json.Unmarshal(w1.Body.Bytes(), &v1)
	if act := doJSON(t, router, http.MethodPost, "/api/v1/templates/"+itoa(v1.ID)+"/activate", nil); act.Code != http.StatusOK {
		t.Fatalf("activate v1 status = %d", act.Code)
	}

	// Fork v1 and activate the fork: v1 must come back SUPERSEDED.
	fork := doJSON(t, router, http.MethodPost, "/api/v1/templates/"+itoa(v1.ID)+"/versions", NewVersionRequest{})
	if fork.Code != http.StatusCreated {
		t.Fatalf("fork status = %d body=%s", fork.Code, fork.Body.String())
	}
	var v2 TemplateResponse
	_ = json.Unmarshal(fork.Body.Bytes(), &v2)
	if v2.Version != "2.0" || v2.Status != "DRAFT" {
		t.Errorf("fork = %s %s, want DRAFT 2.0", v2.Status, v2.Version)
	}

	act := doJSON(t, router, http.MethodPost, "/api/v1/templates/"+itoa(v2.ID)+"/activate",
		ActivateRequest{DeactivateOthers: true})
	if act.Code != http.StatusOK {
		t.Fatalf("activate v2 status = %d body=%s", act.Code, act.Body.String())
	}
	var actResp ActivationResponse
	_ = json.Unmarshal(act.Body.Bytes(), &actResp)
	if len(actResp.SupersededIDs) != 1 || actResp.SupersededIDs[0] != v1.ID {
		t.Errorf("superseded_ids = %v, want [%d]", actResp.SupersededIDs, v1.ID)
	}

	// Version chain lists both, oldest first.
	chain := doJSON(t, router, http.MethodGet, "/api/v1/templates/"+itoa(v1.ID)+"/versions", nil)
	if chain.Code != http.StatusOK {
		t.Fatalf("versions status = %d", chain.Code)
	}
	var versions VersionList
	_ = json.Unmarshal(chain.Body.Bytes(), &versions)
	if len(versions.Items) != 2 || versions.Items[0].ID != v1.ID || versions.Items[1].ID != v2.ID {
		t.Errorf("version chain = %+v", versions.Items)
	}
}

func TestTemplateHandler_ListWithSummary(t *testing.T) {
	router, _ := newBehaviorTestServer(t, "h_list")

	for _, code := range []string{"RM-1", "RM-2"} {
		req := createTemplateRequest()
		req.Code = code
		req.ProductSKU = "SKU-" + code
		if w := doJSON(t, router, http.MethodPost, "/api/v1/templates", req); w.Code != http.StatusCreated {
			t.Fatalf("create %s status = %d", code, w.Code)
		}
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/templates?page=1&per_page=10", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d body=%s", w.Code, w.Body.String())
	}
	var list TemplateList
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Pagination.Total != 2 || len(list.Items) != 2 {
		t.Errorf("total = %d items = %d, want 2", list.Pagination.Total, len(list.Items))
	}
	if list.Summary.Draft != 2 {
		t.Errorf("summary.draft = %d, want 2", list.Summary.Draft)
	}
	if list.Items[0].StepCount != 2 {
		t.Errorf("items[0].step_count = %d, want 2", list.Items[0].StepCount)
	}
}

func TestTemplateHandler_NotFoundAndBadID(t *testing.T) {
	router, _ := newBehaviorTestServer(t, "h_notfound")

	if w := doJSON(t, router, http.MethodGet, "/api/v1/templates/424242", nil); w.Code != http.StatusNotFound {
		t.Errorf("missing template status = %d, want 404", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, "/api/v1/templates/abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", w.Code)
	}
}

func TestHealthReady(t *testing.T) {
	router, _ := newBehaviorTestServer(t, "h_health")

	w := doJSON(t, router, http.MethodGet, "/api/v1/health/ready", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ready status = %d body=%s", w.Code, w.Body.String())
	}
	var health Health
	_ = json.Unmarshal(w.Body.Bytes(), &health)
	if health.Status != "ok" || health.Checks["database"] != "ok" {
		t.Errorf("health = %+v", health)
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
