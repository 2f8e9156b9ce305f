package service

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"routesmith.io/routesmith/ent/processtemplate"
	"routesmith.io/routesmith/internal/domain"
	apperrors "routesmith.io/routesmith/internal/pkg/errors"
	"routesmith.io/routesmith/internal/pkg/logger"
	"routesmith.io/routesmith/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func rollingMillSpec() domain.TemplateSpec {
	return domain.TemplateSpec{
		Code:       "RM-HR-COIL",
		Name:       "Hot Rolling - Coil",
		ProductSKU: "HR-COIL-2MM",
		Version:    "1.0",
		Steps: []domain.StepSpec{
			{SequenceNumber: 1, OperationName: "Melt", OperationType: domain.OperationProcessing, Mandatory: true},
			{SequenceNumber: 2, OperationName: "Cast", OperationType: domain.OperationProcessing, Mandatory: true},
			{SequenceNumber: 3, OperationName: "Inspect", OperationType: domain.OperationInspection, Mandatory: true},
		},
	}
}

func TestTemplateService_CreateAndGet(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "tplsvc_create")
	svc := NewTemplateService(client, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, rollingMillSpec(), "planner-1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Status != "DRAFT" {
		t.Errorf("new template status = %s, want DRAFT", created.Status)
	}
	if created.CreatedBy != "planner-1" {
		t.Errorf("CreatedBy = %q, want planner-1", created.CreatedBy)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	steps := got.Edges.Steps
	if len(steps) != 3 {
		t.Fatalf("step count = %d, want 3", len(steps))
	}
	for i, step := range steps {
		if step.SequenceNumber != i+1 {
			t.Errorf("steps[%d].SequenceNumber = %d, want %d", i, step.SequenceNumber, i+1)
		}
	}
	if steps[0].OperationName != "Melt" || steps[2].OperationName != "Inspect" {
		t.Errorf("unexpected step order: %s..%s", steps[0].OperationName, steps[2].OperationName)
	}
}

func TestTemplateService_Create_ResequencesSparseInput(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "tplsvc_reseq")
	svc := NewTemplateService(client, nil)
	ctx := context.Background()

	spec := rollingMillSpec()
	spec.Code = "RM-SPARSE"
	spec.Steps[0].SequenceNumber = 10
	spec.Steps[1].SequenceNumber = 20
	spec.Steps[2].SequenceNumber = 30

	created, err := svc.Create(ctx, spec, "planner-1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	for i, step := range created.Edges.Steps {
		if step.SequenceNumber != i+1 {
			t.Errorf("steps[%d].SequenceNumber = %d, want dense %d", i, step.SequenceNumber, i+1)
		}
	}
}

func TestTemplateService_Create_ValidationFailure(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "tplsvc_invalid")
	svc := NewTemplateService(client, nil)

	spec := rollingMillSpec()
	spec.Name = ""
	spec.Steps[1].OperationName = ""

	_, err := svc.Create(context.Background(), spec, "planner-1")
	appErr, ok := apperrors.IsAppError(err)
	if !ok {
		t.Fatalf("Create() error = %v, want AppError", err)
	}
	if appErr.Code != apperrors.CodeValidationFailed {
		t.Errorf("code = %s, want %s", appErr.Code, apperrors.CodeValidationFailed)
	}
	if len(appErr.FieldErrors) != 2 {
		t.Errorf("field errors = %d, want 2", len(appErr.FieldErrors))
	}
}

func TestTemplateService_Create_DuplicateCode(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "tplsvc_dupcode")
	svc := NewTemplateService(client, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, rollingMillSpec(), "planner-1"); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	_, err := svc.Create(ctx, rollingMillSpec(), "planner-2")
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeTemplateCodeExists {
		t.Fatalf("duplicate code error = %v, want %s", err, apperrors.CodeTemplateCodeExists)
	}
}

func TestTemplateService_Update_FullStepReplace(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "tplsvc_update")
	svc := NewTemplateService(client, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, rollingMillSpec(), "planner-1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	spec := rollingMillSpec()
	spec.Name = "Hot Rolling - Coil rev B"
	spec.Steps = []domain.StepSpec{
		{SequenceNumber: 1, OperationName: "Cast", Mandatory: true},
		{SequenceNumber: 2, OperationName: "Melt", Mandatory: true},
	}

	updated, err := svc.Update(ctx, created.ID, spec, "planner-2")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "Hot Rolling - Coil rev B" {
		t.Errorf("Name = %q after update", updated.Name)
	}
	steps := updated.Edges.Steps
	if len(steps) != 2 {
		t.Fatalf("step count after replace = %d, want 2", len(steps))
	}
	if steps[0].OperationName != "Cast" || steps[1].OperationName != "Melt" {
		t.Errorf("step order after replace = %s,%s", steps[0].OperationName, steps[1].OperationName)
	}
}

func TestTemplateService_Update_RejectsNonDraft(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "tplsvc_upd_active")
	svc := NewTemplateService(client, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, rollingMillSpec(), "planner-1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := client.ProcessTemplate.UpdateOneID(created.ID).SetStatus("ACTIVE").Save(ctx); err != nil {
		t.Fatalf("force ACTIVE: %v", err)
	}

	_, err = svc.Update(ctx, created.ID, rollingMillSpec(), "planner-2")
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeTemplateNotDraft {
		t.Fatalf("update of ACTIVE template error = %v, want %s", err, apperrors.CodeTemplateNotDraft)
	}
}

func TestTemplateService_Delete(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "tplsvc_delete")
	svc := NewTemplateService(client, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, rollingMillSpec(), "planner-1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := svc.Delete(ctx, created.ID, "planner-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err = svc.Get(ctx, created.ID)
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeTemplateNotFound {
		t.Fatalf("Get() after delete = %v, want %s", err, apperrors.CodeTemplateNotFound)
	}

	count, err := client.RoutingStep.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count steps: %v", err)
	}
	if count != 0 {
		t.Errorf("orphan steps left after delete: %d", count)
	}
}

func TestTemplateService_Delete_RejectsNonDraft(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "tplsvc_del_active")
	svc := NewTemplateService(client, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, rollingMillSpec(), "planner-1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := client.ProcessTemplate.UpdateOneID(created.ID).SetStatus("ACTIVE").Save(ctx); err != nil {
		t.Fatalf("force ACTIVE: %v", err)
	}

	err = svc.Delete(ctx, created.ID, "planner-1")
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeTemplateNotDraft {
		t.Fatalf("delete of ACTIVE template error = %v, want %s", err, apperrors.CodeTemplateNotDraft)
	}
}

func TestTemplateService_EmitsChangeEvents(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "tplsvc_events")
	dispatcher := domain.NewEventDispatcher()
	svc := NewTemplateService(client, dispatcher)
	ctx := context.Background()

	received := make(map[domain.EventType][]*domain.DomainEvent)
	for _, et := range []domain.EventType{
		domain.EventTemplateCreated,
		domain.EventTemplateUpdated,
		domain.EventTemplateDeleted,
	} {
		et := et
		dispatcher.Register(et, func(ctx context.Context, e *domain.DomainEvent) error {
			received[et] = append(received[et], e)
			return nil
		})
	}

	created, err := svc.Create(ctx, rollingMillSpec(), "planner-1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Update(ctx, created.ID, rollingMillSpec(), "planner-2"); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if err := svc.Delete(ctx, created.ID, "planner-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	for _, tc := range []struct {
		eventType domain.EventType
		actor     string
	}{
		{domain.EventTemplateCreated, "planner-1"},
		{domain.EventTemplateUpdated, "planner-2"},
		{domain.EventTemplateDeleted, "planner-1"},
	} {
		events := received[tc.eventType]
		if len(events) != 1 {
			t.Fatalf("%s events = %d, want 1", tc.eventType, len(events))
		}
		e := events[0]
		if e.CreatedBy != tc.actor {
			t.Errorf("%s CreatedBy = %q, want %q", tc.eventType, e.CreatedBy, tc.actor)
		}
		if e.AggregateID != strconv.Itoa(created.ID) {
			t.Errorf("%s AggregateID = %q, want %d", tc.eventType, e.AggregateID, created.ID)
		}
	}

	var payload domain.TemplateChangePayload
	if err := json.Unmarshal(received[domain.EventTemplateCreated][0].Payload, &payload); err != nil {
		t.Fatalf("decode created payload: %v", err)
	}
	if payload.Code != "RM-HR-COIL" || payload.StepCount != 3 {
		t.Errorf("created payload = %+v, want code RM-HR-COIL with 3 steps", payload)
	}
}

func TestTemplateService_List_FiltersAndSummary(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "tplsvc_list")
	svc := NewTemplateService(client, nil)
	ctx := context.Background()

	specs := []struct {
		code, name, sku, status string
	}{
		{"RM-1", "Hot Rolling A", "HR-COIL-2MM", "DRAFT"},
		{"RM-2", "Hot Rolling B", "HR-COIL-2MM", "ACTIVE"},
		{"CM-1", "Cold Milling", "CM-SHEET-1MM", "INACTIVE"},
	}
	for _, s := range specs {
		spec := domain.TemplateSpec{Code: s.code, Name: s.name, ProductSKU: s.sku, Version: "1.0"}
		created, err := svc.Create(ctx, spec, "planner-1")
		if err != nil {
			t.Fatalf("Create(%s) error = %v", s.code, err)
		}
		if s.status != "DRAFT" {
			if _, err := client.ProcessTemplate.UpdateOneID(created.ID).SetStatus(processtemplate.Status(s.status)).Save(ctx); err != nil {
				t.Fatalf("force status %s: %v", s.status, err)
			}
		}
	}

	all, err := svc.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if all.Total != 3 {
		t.Errorf("Total = %d, want 3", all.Total)
	}
	if all.Summary.Draft != 1 || all.Summary.Active != 1 || all.Summary.Inactive != 1 {
		t.Errorf("Summary = %+v, want 1/1/1/0", all.Summary)
	}

	bySKU, err := svc.List(ctx, ListFilter{ProductSKU: "HR-COIL-2MM"})
	if err != nil {
		t.Fatalf("List(sku) error = %v", err)
	}
	if bySKU.Total != 2 {
		t.Errorf("sku filter Total = %d, want 2", bySKU.Total)
	}
	// Summary honors the SKU filter: the cold milling INACTIVE template
	// falls out of the counts.
	if bySKU.Summary.Draft != 1 || bySKU.Summary.Active != 1 || bySKU.Summary.Inactive != 0 {
		t.Errorf("filtered Summary = %+v, want 1/1/0/0", bySKU.Summary)
	}

	// The status filter does not narrow the summary, only the page.
	activeOnly, err := svc.List(ctx, ListFilter{Status: "ACTIVE", ProductSKU: "HR-COIL-2MM"})
	if err != nil {
		t.Fatalf("List(status+sku) error = %v", err)
	}
	if activeOnly.Total != 1 || activeOnly.Summary.Draft != 1 {
		t.Errorf("Total = %d Summary = %+v, want Total 1 with Draft 1 in summary", activeOnly.Total, activeOnly.Summary)
	}

	byStatus, err := svc.List(ctx, ListFilter{Status: "ACTIVE"})
	if err != nil {
		t.Fatalf("List(status) error = %v", err)
	}
	if byStatus.Total != 1 || byStatus.Items[0].Code != "RM-2" {
		t.Errorf("status filter returned %d items", byStatus.Total)
	}

	bySearch, err := svc.List(ctx, ListFilter{Search: "rolling"})
	if err != nil {
		t.Fatalf("List(search) error = %v", err)
	}
	if bySearch.Total != 2 {
		t.Errorf("search Total = %d, want 2", bySearch.Total)
	}

	if _, err := svc.List(ctx, ListFilter{Status: "BOGUS"}); err == nil {
		t.Error("List() should reject an unknown status filter")
	}

	byName, err := svc.List(ctx, ListFilter{SortBy: "name", SortDir: "asc"})
	if err != nil {
		t.Fatalf("List(sort) error = %v", err)
	}
	if byName.Items[0].Name != "Cold Milling" {
		t.Errorf("sorted Items[0].Name = %s, want Cold Milling", byName.Items[0].Name)
	}

	if _, err := svc.List(ctx, ListFilter{SortBy: "product_sku"}); err == nil {
		t.Error("List() should reject a non-sortable field")
	}
	if _, err := svc.List(ctx, ListFilter{SortDir: "sideways"}); err == nil {
		t.Error("List() should reject an unknown sort direction")
	}
}

func TestTemplateService_List_Pagination(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "tplsvc_page")
	svc := NewTemplateService(client, nil)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		spec := domain.TemplateSpec{
			Name:    "Routing",
			Version: "1.0",
		}
		if _, err := svc.Create(ctx, spec, "planner-1"); err != nil {
			t.Fatalf("Create(#%d) error = %v", i, err)
		}
	}

	page, err := svc.List(ctx, ListFilter{Page: 2, PerPage: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if page.Total != 5 || page.TotalPages != 3 || len(page.Items) != 2 {
		t.Errorf("page = total %d, pages %d, items %d; want 5/3/2", page.Total, page.TotalPages, len(page.Items))
	}
}

func TestTemplateService_VersionChain(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "tplsvc_chain")
	svc := NewTemplateService(client, nil)
	ctx := context.Background()

	v1, err := svc.Create(ctx, domain.TemplateSpec{Name: "Routing", Version: "1.0"}, "planner-1")
	if err != nil {
		t.Fatalf("Create(v1) error = %v", err)
	}
	v2, err := client.ProcessTemplate.Create().
		SetName("Routing").
		SetVersion("2.0").
		SetCreatedBy("planner-1").
		SetPredecessorID(v1.ID).
		Save(ctx)
	if err != nil {
		t.Fatalf("create v2: %v", err)
	}
	v3, err := client.ProcessTemplate.Create().
		SetName("Routing").
		SetVersion("3.0").
		SetCreatedBy("planner-1").
		SetPredecessorID(v2.ID).
		Save(ctx)
	if err != nil {
		t.Fatalf("create v3: %v", err)
	}

	// The chain is the same regardless of the entry point.
	for _, entry := range []int{v1.ID, v2.ID, v3.ID} {
		chain, err := svc.VersionChain(ctx, entry)
		if err != nil {
			t.Fatalf("VersionChain(%d) error = %v", entry, err)
		}
		if len(chain) != 3 {
			t.Fatalf("VersionChain(%d) length = %d, want 3", entry, len(chain))
		}
		if chain[0].ID != v1.ID || chain[2].ID != v3.ID {
			t.Errorf("VersionChain(%d) order = %d..%d, want %d..%d", entry, chain[0].ID, chain[2].ID, v1.ID, v3.ID)
		}
	}
}
