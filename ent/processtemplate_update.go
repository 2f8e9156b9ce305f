// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"routesmith.io/routesmith/ent/predicate"
	"routesmith.io/routesmith/ent/processtemplate"
	"routesmith.io/routesmith/ent/routingstep"
)

// ProcessTemplateUpdate is the builder for updating ProcessTemplate entities.
type ProcessTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessTemplateMutation
}

// Where appends a list predicates to the ProcessTemplateUpdate builder.
func (_u *ProcessTemplateUpdate) Where(ps ...predicate.ProcessTemplate) *ProcessTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessTemplateUpdate) SetUpdatedAt(v time.Time) *ProcessTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCode sets the "code" field.
func (_u *ProcessTemplateUpdate) SetCode(v string) *ProcessTemplateUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *ProcessTemplateUpdate) SetNillableCode(v *string) *ProcessTemplateUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// ClearCode clears the value of the "code" field.
func (_u *ProcessTemplateUpdate) ClearCode() *ProcessTemplateUpdate {
	_u.mutation.ClearCode()
	return _u
}

// SetName sets the "name" field.
func (_u *ProcessTemplateUpdate) SetName(v string) *ProcessTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProcessTemplateUpdate) SetNillableName(v *string) *ProcessTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProcessTemplateUpdate) SetDescription(v string) *ProcessTemplateUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProcessTemplateUpdate) SetNillableDescription(v *string) *ProcessTemplateUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProcessTemplateUpdate) ClearDescription() *ProcessTemplateUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetProductSku sets the "product_sku" field.
func (_u *ProcessTemplateUpdate) SetProductSku(v string) *ProcessTemplateUpdate {
	_u.mutation.SetProductSku(v)
	return _u
}

// SetNillableProductSku sets the "product_sku" field if the given value is not nil.
func (_u *ProcessTemplateUpdate) SetNillableProductSku(v *string) *ProcessTemplateUpdate {
	if v != nil {
		_u.SetProductSku(*v)
	}
	return _u
}

// ClearProductSku clears the value of the "product_sku" field.
func (_u *ProcessTemplateUpdate) ClearProductSku() *ProcessTemplateUpdate {
	_u.mutation.ClearProductSku()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessTemplateUpdate) SetStatus(v processtemplate.Status) *ProcessTemplateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessTemplateUpdate) SetNillableStatus(v *processtemplate.Status) *ProcessTemplateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProcessTemplateUpdate) SetVersion(v string) *ProcessTemplateUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProcessTemplateUpdate) SetNillableVersion(v *string) *ProcessTemplateUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetEffectiveFrom sets the "effective_from" field.
func (_u *ProcessTemplateUpdate) SetEffectiveFrom(v time.Time) *ProcessTemplateUpdate {
	_u.mutation.SetEffectiveFrom(v)
	return _u
}

// SetNillableEffectiveFrom sets the "effective_from" field if the given value is not nil.
func (_u *ProcessTemplateUpdate) SetNillableEffectiveFrom(v *time.Time) *ProcessTemplateUpdate {
	if v != nil {
		_u.SetEffectiveFrom(*v)
	}
	return _u
}

// ClearEffectiveFrom clears the value of the "effective_from" field.
func (_u *ProcessTemplateUpdate) ClearEffectiveFrom() *ProcessTemplateUpdate {
	_u.mutation.ClearEffectiveFrom()
	return _u
}

// SetEffectiveTo sets the "effective_to" field.
func (_u *ProcessTemplateUpdate) SetEffectiveTo(v time.Time) *ProcessTemplateUpdate {
	_u.mutation.SetEffectiveTo(v)
	return _u
}

// SetNillableEffectiveTo sets the "effective_to" field if the given value is not nil.
func (_u *ProcessTemplateUpdate) SetNillableEffectiveTo(v *time.Time) *ProcessTemplateUpdate {
	if v != nil {
		_u.SetEffectiveTo(*v)
	}
	return _u
}

// ClearEffectiveTo clears the value of the "effective_to" field.
func (_u *ProcessTemplateUpdate) ClearEffectiveTo() *ProcessTemplateUpdate {
	_u.mutation.ClearEffectiveTo()
	return _u
}

// SetPredecessorID sets the "predecessor_id" field.
func (_u *ProcessTemplateUpdate) SetPredecessorID(v int) *ProcessTemplateUpdate {
	_u.mutation.SetPredecessorID(v)
	return _u
}

// SetNillablePredecessorID sets the "predecessor_id" field if the given value is not nil.
func (_u *ProcessTemplateUpdate) SetNillablePredecessorID(v *int) *ProcessTemplateUpdate {
	if v != nil {
		_u.SetPredecessorID(*v)
	}
	return _u
}

// ClearPredecessorID clears the value of the "predecessor_id" field.
func (_u *ProcessTemplateUpdate) ClearPredecessorID() *ProcessTemplateUpdate {
	_u.mutation.ClearPredecessorID()
	return _u
}

// AddStepIDs adds the "steps" edge to the RoutingStep entity by IDs.
func (_u *ProcessTemplateUpdate) AddStepIDs(ids ...int) *ProcessTemplateUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the RoutingStep entity.
func (_u *ProcessTemplateUpdate) AddSteps(v ...*RoutingStep) *ProcessTemplateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// SetPredecessor sets the "predecessor" edge to the ProcessTemplate entity.
func (_u *ProcessTemplateUpdate) SetPredecessor(v *ProcessTemplate) *ProcessTemplateUpdate {
	return _u.SetPredecessorID(v.ID)
}

// AddSuccessorIDs adds the "successors" edge to the ProcessTemplate entity by IDs.
func (_u *ProcessTemplateUpdate) AddSuccessorIDs(ids ...int) *ProcessTemplateUpdate {
	_u.mutation.AddSuccessorIDs(ids...)
	return _u
}

// AddSuccessors adds the "successors" edges to the ProcessTemplate entity.
func (_u *ProcessTemplateUpdate) AddSuccessors(v ...*ProcessTemplate) *ProcessTemplateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuccessorIDs(ids...)
}

// Mutation returns the ProcessTemplateMutation object of the builder.
func (_u *ProcessTemplateUpdate) Mutation() *ProcessTemplateMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the RoutingStep entity.
func (_u *ProcessTemplateUpdate) ClearSteps() *ProcessTemplateUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to RoutingStep entities by IDs.
func (_u *ProcessTemplateUpdate) RemoveStepIDs(ids ...int) *ProcessTemplateUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to RoutingStep entities.
func (_u *ProcessTemplateUpdate) RemoveSteps(v ...*RoutingStep) *ProcessTemplateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearPredecessor clears the "predecessor" edge to the ProcessTemplate entity.
func (_u *ProcessTemplateUpdate) ClearPredecessor() *ProcessTemplateUpdate {
	_u.mutation.ClearPredecessor()
	return _u
}

// ClearSuccessors clears all "successors" edges to the ProcessTemplate entity.
func (_u *ProcessTemplateUpdate) ClearSuccessors() *ProcessTemplateUpdate {
	_u.mutation.ClearSuccessors()
	return _u
}

// RemoveSuccessorIDs removes the "successors" edge to ProcessTemplate entities by IDs.
func (_u *ProcessTemplateUpdate) RemoveSuccessorIDs(ids ...int) *ProcessTemplateUpdate {
	_u.mutation.RemoveSuccessorIDs(ids...)
	return _u
}

// RemoveSuccessors removes "successors" edges to ProcessTemplate entities.
func (_u *ProcessTemplateUpdate) RemoveSuccessors(v ...*ProcessTemplate) *ProcessTemplateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuccessorIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessTemplateUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := processtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ProcessTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := processtemplate.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "ProcessTemplate.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processtemplate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessTemplate.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := processtemplate.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ProcessTemplate.version": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processtemplate.Table, processtemplate.Columns, sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(processtemplate.FieldCode, field.TypeString, value)
	}
	if _u.mutation.CodeCleared() {
		_spec.ClearField(processtemplate.FieldCode, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(processtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(processtemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(processtemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ProductSku(); ok {
		_spec.SetField(processtemplate.FieldProductSku, field.TypeString, value)
	}
	if _u.mutation.ProductSkuCleared() {
		_spec.ClearField(processtemplate.FieldProductSku, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processtemplate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(processtemplate.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.EffectiveFrom(); ok {
		_spec.SetField(processtemplate.FieldEffectiveFrom, field.TypeTime, value)
	}
	if _u.mutation.EffectiveFromCleared() {
		_spec.ClearField(processtemplate.FieldEffectiveFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.EffectiveTo(); ok {
		_spec.SetField(processtemplate.FieldEffectiveTo, field.TypeTime, value)
	}
	if _u.mutation.EffectiveToCleared() {
		_spec.ClearField(processtemplate.FieldEffectiveTo, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processtemplate.StepsTable,
			Columns: []string{processtemplate.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(routingstep.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processtemplate.StepsTable,
			Columns: []string{processtemplate.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(routingstep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processtemplate.StepsTable,
			Columns: []string{processtemplate.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(routingstep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PredecessorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processtemplate.PredecessorTable,
			Columns: []string{processtemplate.PredecessorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PredecessorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processtemplate.PredecessorTable,
			Columns: []string{processtemplate.PredecessorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuccessorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processtemplate.SuccessorsTable,
			Columns: []string{processtemplate.SuccessorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuccessorsIDs(); len(nodes) > 0 && !_u.mutation.SuccessorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processtemplate.SuccessorsTable,
			Columns: []string{processtemplate.SuccessorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuccessorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processtemplate.SuccessorsTable,
			Columns: []string{processtemplate.SuccessorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessTemplateUpdateOne is the builder for updating a single ProcessTemplate entity.
type ProcessTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessTemplateMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessTemplateUpdateOne) SetUpdatedAt(v time.Time) *ProcessTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCode sets the "code" field.
func (_u *ProcessTemplateUpdateOne) SetCode(v string) *ProcessTemplateUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *ProcessTemplateUpdateOne) SetNillableCode(v *string) *ProcessTemplateUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// ClearCode clears the value of the "code" field.
func (_u *ProcessTemplateUpdateOne) ClearCode() *ProcessTemplateUpdateOne {
	_u.mutation.ClearCode()
	return _u
}

// SetName sets the "name" field.
func (_u *ProcessTemplateUpdateOne) SetName(v string) *ProcessTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProcessTemplateUpdateOne) SetNillableName(v *string) *ProcessTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProcessTemplateUpdateOne) SetDescription(v string) *ProcessTemplateUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProcessTemplateUpdateOne) SetNillableDescription(v *string) *ProcessTemplateUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProcessTemplateUpdateOne) ClearDescription() *ProcessTemplateUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetProductSku sets the "product_sku" field.
func (_u *ProcessTemplateUpdateOne) SetProductSku(v string) *ProcessTemplateUpdateOne {
	_u.mutation.SetProductSku(v)
	return _u
}

// SetNillableProductSku sets the "product_sku" field if the given value is not nil.
func (_u *ProcessTemplateUpdateOne) SetNillableProductSku(v *string) *ProcessTemplateUpdateOne {
	if v != nil {
		_u.SetProductSku(*v)
	}
	return _u
}

// ClearProductSku clears the value of the "product_sku" field.
func (_u *ProcessTemplateUpdateOne) ClearProductSku() *ProcessTemplateUpdateOne {
	_u.mutation.ClearProductSku()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessTemplateUpdateOne) SetStatus(v processtemplate.Status) *ProcessTemplateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessTemplateUpdateOne) SetNillableStatus(v *processtemplate.Status) *ProcessTemplateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProcessTemplateUpdateOne) SetVersion(v string) *ProcessTemplateUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProcessTemplateUpdateOne) SetNillableVersion(v *string) *ProcessTemplateUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetEffectiveFrom sets the "effective_from" field.
func (_u *ProcessTemplateUpdateOne) SetEffectiveFrom(v time.Time) *ProcessTemplateUpdateOne {
	_u.mutation.SetEffectiveFrom(v)
	return _u
}

// SetNillableEffectiveFrom sets the "effective_from" field if the given value is not nil.
func (_u *ProcessTemplateUpdateOne) SetNillableEffectiveFrom(v *time.Time) *ProcessTemplateUpdateOne {
	if v != nil {
		_u.SetEffectiveFrom(*v)
	}
	return _u
}

// ClearEffectiveFrom clears the value of the "effective_from" field.
func (_u *ProcessTemplateUpdateOne) ClearEffectiveFrom() *ProcessTemplateUpdateOne {
	_u.mutation.ClearEffectiveFrom()
	return _u
}

// SetEffectiveTo sets the "effective_to" field.
func (_u *ProcessTemplateUpdateOne) SetEffectiveTo(v time.Time) *ProcessTemplateUpdateOne {
	_u.mutation.SetEffectiveTo(v)
	return _u
}

// SetNillableEffectiveTo sets the "effective_to" field if the given value is not nil.
func (_u *ProcessTemplateUpdateOne) SetNillableEffectiveTo(v *time.Time) *ProcessTemplateUpdateOne {
	if v != nil {
		_u.SetEffectiveTo(*v)
	}
	return _u
}

// ClearEffectiveTo clears the value of the "effective_to" field.
func (_u *ProcessTemplateUpdateOne) ClearEffectiveTo() *ProcessTemplateUpdateOne {
	_u.mutation.ClearEffectiveTo()
	return _u
}

// SetPredecessorID sets the "predecessor_id" field.
func (_u *ProcessTemplateUpdateOne) SetPredecessorID(v int) *ProcessTemplateUpdateOne {
	_u.mutation.SetPredecessorID(v)
	return _u
}

// SetNillablePredecessorID sets the "predecessor_id" field if the given value is not nil.
func (_u *ProcessTemplateUpdateOne) SetNillablePredecessorID(v *int) *ProcessTemplateUpdateOne {
	if v != nil {
		_u.SetPredecessorID(*v)
	}
	return _u
}

// ClearPredecessorID clears the value of the "predecessor_id" field.
func (_u *ProcessTemplateUpdateOne) ClearPredecessorID() *ProcessTemplateUpdateOne {
	_u.mutation.ClearPredecessorID()
	return _u
}

// AddStepIDs adds the "steps" edge to the RoutingStep entity by IDs.
func (_u *ProcessTemplateUpdateOne) AddStepIDs(ids ...int) *ProcessTemplateUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the RoutingStep entity.
func (_u *ProcessTemplateUpdateOne) AddSteps(v ...*RoutingStep) *ProcessTemplateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// SetPredecessor sets the "predecessor" edge to the ProcessTemplate entity.
func (_u *ProcessTemplateUpdateOne) SetPredecessor(v *ProcessTemplate) *ProcessTemplateUpdateOne {
	return _u.SetPredecessorID(v.ID)
}

// AddSuccessorIDs adds the "successors" edge to the ProcessTemplate entity by IDs.
func (_u *ProcessTemplateUpdateOne) AddSuccessorIDs(ids ...int) *ProcessTemplateUpdateOne {
	_u.mutation.AddSuccessorIDs(ids...)
	return _u
}

// AddSuccessors adds the "successors" edges to the ProcessTemplate entity.
func (_u *ProcessTemplateUpdateOne) AddSuccessors(v ...*ProcessTemplate) *ProcessTemplateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuccessorIDs(ids...)
}

// Mutation returns the ProcessTemplateMutation object of the builder.
func (_u *ProcessTemplateUpdateOne) Mutation() *ProcessTemplateMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the RoutingStep entity.
func (_u *ProcessTemplateUpdateOne) ClearSteps() *ProcessTemplateUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to RoutingStep entities by IDs.
func (_u *ProcessTemplateUpdateOne) RemoveStepIDs(ids ...int) *ProcessTemplateUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to RoutingStep entities.
func (_u *ProcessTemplateUpdateOne) RemoveSteps(v ...*RoutingStep) *ProcessTemplateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearPredecessor clears the "predecessor" edge to the ProcessTemplate entity.
func (_u *ProcessTemplateUpdateOne) ClearPredecessor() *ProcessTemplateUpdateOne {
	_u.mutation.ClearPredecessor()
	return _u
}

// ClearSuccessors clears all "successors" edges to the ProcessTemplate entity.
func (_u *ProcessTemplateUpdateOne) ClearSuccessors() *ProcessTemplateUpdateOne {
	_u.mutation.ClearSuccessors()
	return _u
}

// RemoveSuccessorIDs removes the "successors" edge to ProcessTemplate entities by IDs.
func (_u *ProcessTemplateUpdateOne) RemoveSuccessorIDs(ids ...int) *ProcessTemplateUpdateOne {
	_u.mutation.RemoveSuccessorIDs(ids...)
	return _u
}

// RemoveSuccessors removes "successors" edges to ProcessTemplate entities.
func (_u *ProcessTemplateUpdateOne) RemoveSuccessors(v ...*ProcessTemplate) *ProcessTemplateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuccessorIDs(ids...)
}

// Where appends a list predicates to the ProcessTemplateUpdate builder.
func (_u *ProcessTemplateUpdateOne) Where(ps ...predicate.ProcessTemplate) *ProcessTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessTemplateUpdateOne) Select(field string, fields ...string) *ProcessTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessTemplate entity.
func (_u *ProcessTemplateUpdateOne) Save(ctx context.Context) (*ProcessTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessTemplateUpdateOne) SaveX(ctx context.Context) *ProcessTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := processtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ProcessTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := processtemplate.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "ProcessTemplate.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processtemplate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessTemplate.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := processtemplate.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ProcessTemplate.version": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessTemplateUpdateOne) sqlSave(ctx context.Context) (_node *ProcessTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processtemplate.Table, processtemplate.Columns, sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processtemplate.FieldID)
		for _, f := range fields {
			if !processtemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processtemplate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(processtemplate.FieldCode, field.TypeString, value)
	}
	if _u.mutation.CodeCleared() {
		_spec.ClearField(processtemplate.FieldCode, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(processtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(processtemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(processtemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ProductSku(); ok {
		_spec.SetField(processtemplate.FieldProductSku, field.TypeString, value)
	}
	if _u.mutation.ProductSkuCleared() {
		_spec.ClearField(processtemplate.FieldProductSku, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processtemplate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(processtemplate.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.EffectiveFrom(); ok {
		_spec.SetField(processtemplate.FieldEffectiveFrom, field.TypeTime, value)
	}
	if _u.mutation.EffectiveFromCleared() {
		_spec.ClearField(processtemplate.FieldEffectiveFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.EffectiveTo(); ok {
		_spec.SetField(processtemplate.FieldEffectiveTo, field.TypeTime, value)
	}
	if _u.mutation.EffectiveToCleared() {
		_spec.ClearField(processtemplate.FieldEffectiveTo, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processtemplate.StepsTable,
			Columns: []string{processtemplate.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(routingstep.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processtemplate.StepsTable,
			Columns: []string{processtemplate.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(routingstep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processtemplate.StepsTable,
			Columns: []string{processtemplate.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(routingstep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PredecessorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processtemplate.PredecessorTable,
			Columns: []string{processtemplate.PredecessorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PredecessorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processtemplate.PredecessorTable,
			Columns: []string{processtemplate.PredecessorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuccessorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processtemplate.SuccessorsTable,
			Columns: []string{processtemplate.SuccessorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuccessorsIDs(); len(nodes) > 0 && !_u.mutation.SuccessorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processtemplate.SuccessorsTable,
			Columns: []string{processtemplate.SuccessorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuccessorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processtemplate.SuccessorsTable,
			Columns: []string{processtemplate.SuccessorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProcessTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
