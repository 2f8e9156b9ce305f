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

// RoutingStepUpdate is the builder for updating RoutingStep entities.
type RoutingStepUpdate struct {
	config
	hooks    []Hook
	mutation *RoutingStepMutation
}

// Where appends a list predicates to the RoutingStepUpdate builder.
func (_u *RoutingStepUpdate) Where(ps ...predicate.RoutingStep) *RoutingStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoutingStepUpdate) SetUpdatedAt(v time.Time) *RoutingStepUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *RoutingStepUpdate) SetSequenceNumber(v int) *RoutingStepUpdate {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *RoutingStepUpdate) SetNillableSequenceNumber(v *int) *RoutingStepUpdate {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *RoutingStepUpdate) AddSequenceNumber(v int) *RoutingStepUpdate {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetOperationName sets the "operation_name" field.
func (_u *RoutingStepUpdate) SetOperationName(v string) *RoutingStepUpdate {
	_u.mutation.SetOperationName(v)
	return _u
}

// SetNillableOperationName sets the "operation_name" field if the given value is not nil.
func (_u *RoutingStepUpdate) SetNillableOperationName(v *string) *RoutingStepUpdate {
	if v != nil {
		_u.SetOperationName(*v)
	}
	return _u
}

// SetOperationType sets the "operation_type" field.
func (_u *RoutingStepUpdate) SetOperationType(v routingstep.OperationType) *RoutingStepUpdate {
	_u.mutation.SetOperationType(v)
	return _u
}

// SetNillableOperationType sets the "operation_type" field if the given value is not nil.
func (_u *RoutingStepUpdate) SetNillableOperationType(v *routingstep.OperationType) *RoutingStepUpdate {
	if v != nil {
		_u.SetOperationType(*v)
	}
	return _u
}

// SetOperationCode sets the "operation_code" field.
func (_u *RoutingStepUpdate) SetOperationCode(v string) *RoutingStepUpdate {
	_u.mutation.SetOperationCode(v)
	return _u
}

// SetNillableOperationCode sets the "operation_code" field if the given value is not nil.
func (_u *RoutingStepUpdate) SetNillableOperationCode(v *string) *RoutingStepUpdate {
	if v != nil {
		_u.SetOperationCode(*v)
	}
	return _u
}

// ClearOperationCode clears the value of the "operation_code" field.
func (_u *RoutingStepUpdate) ClearOperationCode() *RoutingStepUpdate {
	_u.mutation.ClearOperationCode()
	return _u
}

// SetDescription sets the "description" field.
func (_u *RoutingStepUpdate) SetDescription(v string) *RoutingStepUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RoutingStepUpdate) SetNillableDescription(v *string) *RoutingStepUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RoutingStepUpdate) ClearDescription() *RoutingStepUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetTargetQty sets the "target_qty" field.
func (_u *RoutingStepUpdate) SetTargetQty(v float64) *RoutingStepUpdate {
	_u.mutation.ResetTargetQty()
	_u.mutation.SetTargetQty(v)
	return _u
}

// SetNillableTargetQty sets the "target_qty" field if the given value is not nil.
func (_u *RoutingStepUpdate) SetNillableTargetQty(v *float64) *RoutingStepUpdate {
	if v != nil {
		_u.SetTargetQty(*v)
	}
	return _u
}

// AddTargetQty adds value to the "target_qty" field.
func (_u *RoutingStepUpdate) AddTargetQty(v float64) *RoutingStepUpdate {
	_u.mutation.AddTargetQty(v)
	return _u
}

// ClearTargetQty clears the value of the "target_qty" field.
func (_u *RoutingStepUpdate) ClearTargetQty() *RoutingStepUpdate {
	_u.mutation.ClearTargetQty()
	return _u
}

// SetEstimatedDurationMinutes sets the "estimated_duration_minutes" field.
func (_u *RoutingStepUpdate) SetEstimatedDurationMinutes(v int) *RoutingStepUpdate {
	_u.mutation.ResetEstimatedDurationMinutes()
	_u.mutation.SetEstimatedDurationMinutes(v)
	return _u
}

// SetNillableEstimatedDurationMinutes sets the "estimated_duration_minutes" field if the given value is not nil.
func (_u *RoutingStepUpdate) SetNillableEstimatedDurationMinutes(v *int) *RoutingStepUpdate {
	if v != nil {
		_u.SetEstimatedDurationMinutes(*v)
	}
	return _u
}

// AddEstimatedDurationMinutes adds value to the "estimated_duration_minutes" field.
func (_u *RoutingStepUpdate) AddEstimatedDurationMinutes(v int) *RoutingStepUpdate {
	_u.mutation.AddEstimatedDurationMinutes(v)
	return _u
}

// ClearEstimatedDurationMinutes clears the value of the "estimated_duration_minutes" field.
func (_u *RoutingStepUpdate) ClearEstimatedDurationMinutes() *RoutingStepUpdate {
	_u.mutation.ClearEstimatedDurationMinutes()
	return _u
}

// SetIsParallel sets the "is_parallel" field.
func (_u *RoutingStepUpdate) SetIsParallel(v bool) *RoutingStepUpdate {
	_u.mutation.SetIsParallel(v)
	return _u
}

// SetNillableIsParallel sets the "is_parallel" field if the given value is not nil.
func (_u *RoutingStepUpdate) SetNillableIsParallel(v *bool) *RoutingStepUpdate {
	if v != nil {
		_u.SetIsParallel(*v)
	}
	return _u
}

// SetMandatory sets the "mandatory" field.
func (_u *RoutingStepUpdate) SetMandatory(v bool) *RoutingStepUpdate {
	_u.mutation.SetMandatory(v)
	return _u
}

// SetNillableMandatory sets the "mandatory" field if the given value is not nil.
func (_u *RoutingStepUpdate) SetNillableMandatory(v *bool) *RoutingStepUpdate {
	if v != nil {
		_u.SetMandatory(*v)
	}
	return _u
}

// SetProducesOutputBatch sets the "produces_output_batch" field.
func (_u *RoutingStepUpdate) SetProducesOutputBatch(v bool) *RoutingStepUpdate {
	_u.mutation.SetProducesOutputBatch(v)
	return _u
}

// SetNillableProducesOutputBatch sets the "produces_output_batch" field if the given value is not nil.
func (_u *RoutingStepUpdate) SetNillableProducesOutputBatch(v *bool) *RoutingStepUpdate {
	if v != nil {
		_u.SetProducesOutputBatch(*v)
	}
	return _u
}

// SetAllowsSplit sets the "allows_split" field.
func (_u *RoutingStepUpdate) SetAllowsSplit(v bool) *RoutingStepUpdate {
	_u.mutation.SetAllowsSplit(v)
	return _u
}

// SetNillableAllowsSplit sets the "allows_split" field if the given value is not nil.
func (_u *RoutingStepUpdate) SetNillableAllowsSplit(v *bool) *RoutingStepUpdate {
	if v != nil {
		_u.SetAllowsSplit(*v)
	}
	return _u
}

// SetAllowsMerge sets the "allows_merge" field.
func (_u *RoutingStepUpdate) SetAllowsMerge(v bool) *RoutingStepUpdate {
	_u.mutation.SetAllowsMerge(v)
	return _u
}

// SetNillableAllowsMerge sets the "allows_merge" field if the given value is not nil.
func (_u *RoutingStepUpdate) SetNillableAllowsMerge(v *bool) *RoutingStepUpdate {
	if v != nil {
		_u.SetAllowsMerge(*v)
	}
	return _u
}

// SetDisplayStatus sets the "display_status" field.
func (_u *RoutingStepUpdate) SetDisplayStatus(v string) *RoutingStepUpdate {
	_u.mutation.SetDisplayStatus(v)
	return _u
}

// SetNillableDisplayStatus sets the "display_status" field if the given value is not nil.
func (_u *RoutingStepUpdate) SetNillableDisplayStatus(v *string) *RoutingStepUpdate {
	if v != nil {
		_u.SetDisplayStatus(*v)
	}
	return _u
}

// ClearDisplayStatus clears the value of the "display_status" field.
func (_u *RoutingStepUpdate) ClearDisplayStatus() *RoutingStepUpdate {
	_u.mutation.ClearDisplayStatus()
	return _u
}

// SetTemplateID sets the "template" edge to the ProcessTemplate entity by ID.
func (_u *RoutingStepUpdate) SetTemplateID(id int) *RoutingStepUpdate {
	_u.mutation.SetTemplateID(id)
	return _u
}

// SetTemplate sets the "template" edge to the ProcessTemplate entity.
func (_u *RoutingStepUpdate) SetTemplate(v *ProcessTemplate) *RoutingStepUpdate {
	return _u.SetTemplateID(v.ID)
}

// Mutation returns the RoutingStepMutation object of the builder.
func (_u *RoutingStepUpdate) Mutation() *RoutingStepMutation {
	return _u.mutation
}

// ClearTemplate clears the "template" edge to the ProcessTemplate entity.
func (_u *RoutingStepUpdate) ClearTemplate() *RoutingStepUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoutingStepUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutingStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoutingStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutingStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoutingStepUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := routingstep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutingStepUpdate) check() error {
	if v, ok := _u.mutation.SequenceNumber(); ok {
		if err := routingstep.SequenceNumberValidator(v); err != nil {
			return &ValidationError{Name: "sequence_number", err: fmt.Errorf(`ent: validator failed for field "RoutingStep.sequence_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OperationName(); ok {
		if err := routingstep.OperationNameValidator(v); err != nil {
			return &ValidationError{Name: "operation_name", err: fmt.Errorf(`ent: validator failed for field "RoutingStep.operation_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OperationType(); ok {
		if err := routingstep.OperationTypeValidator(v); err != nil {
			return &ValidationError{Name: "operation_type", err: fmt.Errorf(`ent: validator failed for field "RoutingStep.operation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := routingstep.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "RoutingStep.description": %w`, err)}
		}
	}
	if _u.mutation.TemplateCleared() && len(_u.mutation.TemplateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoutingStep.template"`)
	}
	return nil
}

func (_u *RoutingStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routingstep.Table, routingstep.Columns, sqlgraph.NewFieldSpec(routingstep.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(routingstep.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(routingstep.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(routingstep.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OperationName(); ok {
		_spec.SetField(routingstep.FieldOperationName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OperationType(); ok {
		_spec.SetField(routingstep.FieldOperationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OperationCode(); ok {
		_spec.SetField(routingstep.FieldOperationCode, field.TypeString, value)
	}
	if _u.mutation.OperationCodeCleared() {
		_spec.ClearField(routingstep.FieldOperationCode, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(routingstep.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(routingstep.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TargetQty(); ok {
		_spec.SetField(routingstep.FieldTargetQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetQty(); ok {
		_spec.AddField(routingstep.FieldTargetQty, field.TypeFloat64, value)
	}
	if _u.mutation.TargetQtyCleared() {
		_spec.ClearField(routingstep.FieldTargetQty, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EstimatedDurationMinutes(); ok {
		_spec.SetField(routingstep.FieldEstimatedDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedDurationMinutes(); ok {
		_spec.AddField(routingstep.FieldEstimatedDurationMinutes, field.TypeInt, value)
	}
	if _u.mutation.EstimatedDurationMinutesCleared() {
		_spec.ClearField(routingstep.FieldEstimatedDurationMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.IsParallel(); ok {
		_spec.SetField(routingstep.FieldIsParallel, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Mandatory(); ok {
		_spec.SetField(routingstep.FieldMandatory, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProducesOutputBatch(); ok {
		_spec.SetField(routingstep.FieldProducesOutputBatch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowsSplit(); ok {
		_spec.SetField(routingstep.FieldAllowsSplit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowsMerge(); ok {
		_spec.SetField(routingstep.FieldAllowsMerge, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DisplayStatus(); ok {
		_spec.SetField(routingstep.FieldDisplayStatus, field.TypeString, value)
	}
	if _u.mutation.DisplayStatusCleared() {
		_spec.ClearField(routingstep.FieldDisplayStatus, field.TypeString)
	}
	if _u.mutation.TemplateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   routingstep.TemplateTable,
			Columns: []string{routingstep.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   routingstep.TemplateTable,
			Columns: []string{routingstep.TemplateColumn},
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
			err = &NotFoundError{routingstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoutingStepUpdateOne is the builder for updating a single RoutingStep entity.
type RoutingStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoutingStepMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoutingStepUpdateOne) SetUpdatedAt(v time.Time) *RoutingStepUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *RoutingStepUpdateOne) SetSequenceNumber(v int) *RoutingStepUpdateOne {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *RoutingStepUpdateOne) SetNillableSequenceNumber(v *int) *RoutingStepUpdateOne {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *RoutingStepUpdateOne) AddSequenceNumber(v int) *RoutingStepUpdateOne {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetOperationName sets the "operation_name" field.
func (_u *RoutingStepUpdateOne) SetOperationName(v string) *RoutingStepUpdateOne {
	_u.mutation.SetOperationName(v)
	return _u
}

// SetNillableOperationName sets the "operation_name" field if the given value is not nil.
func (_u *RoutingStepUpdateOne) SetNillableOperationName(v *string) *RoutingStepUpdateOne {
	if v != nil {
		_u.SetOperationName(*v)
	}
	return _u
}

// SetOperationType sets the "operation_type" field.
func (_u *RoutingStepUpdateOne) SetOperationType(v routingstep.OperationType) *RoutingStepUpdateOne {
	_u.mutation.SetOperationType(v)
	return _u
}

// SetNillableOperationType sets the "operation_type" field if the given value is not nil.
func (_u *RoutingStepUpdateOne) SetNillableOperationType(v *routingstep.OperationType) *RoutingStepUpdateOne {
	if v != nil {
		_u.SetOperationType(*v)
	}
	return _u
}

// SetOperationCode sets the "operation_code" field.
func (_u *RoutingStepUpdateOne) SetOperationCode(v string) *RoutingStepUpdateOne {
	_u.mutation.SetOperationCode(v)
	return _u
}

// SetNillableOperationCode sets the "operation_code" field if the given value is not nil.
func (_u *RoutingStepUpdateOne) SetNillableOperationCode(v *string) *RoutingStepUpdateOne {
	if v != nil {
		_u.SetOperationCode(*v)
	}
	return _u
}

// ClearOperationCode clears the value of the "operation_code" field.
func (_u *RoutingStepUpdateOne) ClearOperationCode() *RoutingStepUpdateOne {
	_u.mutation.ClearOperationCode()
	return _u
}

// SetDescription sets the "description" field.
func (_u *RoutingStepUpdateOne) SetDescription(v string) *RoutingStepUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RoutingStepUpdateOne) SetNillableDescription(v *string) *RoutingStepUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RoutingStepUpdateOne) ClearDescription() *RoutingStepUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetTargetQty sets the "target_qty" field.
func (_u *RoutingStepUpdateOne) SetTargetQty(v float64) *RoutingStepUpdateOne {
	_u.mutation.ResetTargetQty()
	_u.mutation.SetTargetQty(v)
	return _u
}

// SetNillableTargetQty sets the "target_qty" field if the given value is not nil.
func (_u *RoutingStepUpdateOne) SetNillableTargetQty(v *float64) *RoutingStepUpdateOne {
	if v != nil {
		_u.SetTargetQty(*v)
	}
	return _u
}

// AddTargetQty adds value to the "target_qty" field.
func (_u *RoutingStepUpdateOne) AddTargetQty(v float64) *RoutingStepUpdateOne {
	_u.mutation.AddTargetQty(v)
	return _u
}

// ClearTargetQty clears the value of the "target_qty" field.
func (_u *RoutingStepUpdateOne) ClearTargetQty() *RoutingStepUpdateOne {
	_u.mutation.ClearTargetQty()
	return _u
}

// SetEstimatedDurationMinutes sets the "estimated_duration_minutes" field.
func (_u *RoutingStepUpdateOne) SetEstimatedDurationMinutes(v int) *RoutingStepUpdateOne {
	_u.mutation.ResetEstimatedDurationMinutes()
	_u.mutation.SetEstimatedDurationMinutes(v)
	return _u
}

// SetNillableEstimatedDurationMinutes sets the "estimated_duration_minutes" field if the given value is not nil.
func (_u *RoutingStepUpdateOne) SetNillableEstimatedDurationMinutes(v *int) *RoutingStepUpdateOne {
	if v != nil {
		_u.SetEstimatedDurationMinutes(*v)
	}
	return _u
}

// AddEstimatedDurationMinutes adds value to the "estimated_duration_minutes" field.
func (_u *RoutingStepUpdateOne) AddEstimatedDurationMinutes(v int) *RoutingStepUpdateOne {
	_u.mutation.AddEstimatedDurationMinutes(v)
	return _u
}

// ClearEstimatedDurationMinutes clears the value of the "estimated_duration_minutes" field.
func (_u *RoutingStepUpdateOne) ClearEstimatedDurationMinutes() *RoutingStepUpdateOne {
	_u.mutation.ClearEstimatedDurationMinutes()
	return _u
}

// SetIsParallel sets the "is_parallel" field.
func (_u *RoutingStepUpdateOne) SetIsParallel(v bool) *RoutingStepUpdateOne {
	_u.mutation.SetIsParallel(v)
	return _u
}

// SetNillableIsParallel sets the "is_parallel" field if the given value is not nil.
func (_u *RoutingStepUpdateOne) SetNillableIsParallel(v *bool) *RoutingStepUpdateOne {
	if v != nil {
		_u.SetIsParallel(*v)
	}
	return _u
}

// SetMandatory sets the "mandatory" field.
func (_u *RoutingStepUpdateOne) SetMandatory(v bool) *RoutingStepUpdateOne {
	_u.mutation.SetMandatory(v)
	return _u
}

// SetNillableMandatory sets the "mandatory" field if the given value is not nil.
func (_u *RoutingStepUpdateOne) SetNillableMandatory(v *bool) *RoutingStepUpdateOne {
	if v != nil {
		_u.SetMandatory(*v)
	}
	return _u
}

// SetProducesOutputBatch sets the "produces_output_batch" field.
func (_u *RoutingStepUpdateOne) SetProducesOutputBatch(v bool) *RoutingStepUpdateOne {
	_u.mutation.SetProducesOutputBatch(v)
	return _u
}

// SetNillableProducesOutputBatch sets the "produces_output_batch" field if the given value is not nil.
func (_u *RoutingStepUpdateOne) SetNillableProducesOutputBatch(v *bool) *RoutingStepUpdateOne {
	if v != nil {
		_u.SetProducesOutputBatch(*v)
	}
	return _u
}

// SetAllowsSplit sets the "allows_split" field.
func (_u *RoutingStepUpdateOne) SetAllowsSplit(v bool) *RoutingStepUpdateOne {
	_u.mutation.SetAllowsSplit(v)
	return _u
}

// SetNillableAllowsSplit sets the "allows_split" field if the given value is not nil.
func (_u *RoutingStepUpdateOne) SetNillableAllowsSplit(v *bool) *RoutingStepUpdateOne {
	if v != nil {
		_u.SetAllowsSplit(*v)
	}
	return _u
}

// SetAllowsMerge sets the "allows_merge" field.
func (_u *RoutingStepUpdateOne) SetAllowsMerge(v bool) *RoutingStepUpdateOne {
	_u.mutation.SetAllowsMerge(v)
	return _u
}

// SetNillableAllowsMerge sets the "allows_merge" field if the given value is not nil.
func (_u *RoutingStepUpdateOne) SetNillableAllowsMerge(v *bool) *RoutingStepUpdateOne {
	if v != nil {
		_u.SetAllowsMerge(*v)
	}
	return _u
}

// SetDisplayStatus sets the "display_status" field.
func (_u *RoutingStepUpdateOne) SetDisplayStatus(v string) *RoutingStepUpdateOne {
	_u.mutation.SetDisplayStatus(v)
	return _u
}

// SetNillableDisplayStatus sets the "display_status" field if the given value is not nil.
func (_u *RoutingStepUpdateOne) SetNillableDisplayStatus(v *string) *RoutingStepUpdateOne {
	if v != nil {
		_u.SetDisplayStatus(*v)
	}
	return _u
}

// ClearDisplayStatus clears the value of the "display_status" field.
func (_u *RoutingStepUpdateOne) ClearDisplayStatus() *RoutingStepUpdateOne {
	_u.mutation.ClearDisplayStatus()
	return _u
}

// SetTemplateID sets the "template" edge to the ProcessTemplate entity by ID.
func (_u *RoutingStepUpdateOne) SetTemplateID(id int) *RoutingStepUpdateOne {
	_u.mutation.SetTemplateID(id)
	return _u
}

// SetTemplate sets the "template" edge to the ProcessTemplate entity.
func (_u *RoutingStepUpdateOne) SetTemplate(v *ProcessTemplate) *RoutingStepUpdateOne {
	return _u.SetTemplateID(v.ID)
}

// Mutation returns the RoutingStepMutation object of the builder.
func (_u *RoutingStepUpdateOne) Mutation() *RoutingStepMutation {
	return _u.mutation
}

// ClearTemplate clears the "template" edge to the ProcessTemplate entity.
func (_u *RoutingStepUpdateOne) ClearTemplate() *RoutingStepUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// Where appends a list predicates to the RoutingStepUpdate builder.
func (_u *RoutingStepUpdateOne) Where(ps ...predicate.RoutingStep) *RoutingStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoutingStepUpdateOne) Select(field string, fields ...string) *RoutingStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoutingStep entity.
func (_u *RoutingStepUpdateOne) Save(ctx context.Context) (*RoutingStep, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutingStepUpdateOne) SaveX(ctx context.Context) *RoutingStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoutingStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutingStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoutingStepUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := routingstep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutingStepUpdateOne) check() error {
	if v, ok := _u.mutation.SequenceNumber(); ok {
		if err := routingstep.SequenceNumberValidator(v); err != nil {
			return &ValidationError{Name: "sequence_number", err: fmt.Errorf(`ent: validator failed for field "RoutingStep.sequence_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OperationName(); ok {
		if err := routingstep.OperationNameValidator(v); err != nil {
			return &ValidationError{Name: "operation_name", err: fmt.Errorf(`ent: validator failed for field "RoutingStep.operation_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OperationType(); ok {
		if err := routingstep.OperationTypeValidator(v); err != nil {
			return &ValidationError{Name: "operation_type", err: fmt.Errorf(`ent: validator failed for field "RoutingStep.operation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := routingstep.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "RoutingStep.description": %w`, err)}
		}
	}
	if _u.mutation.TemplateCleared() && len(_u.mutation.TemplateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoutingStep.template"`)
	}
	return nil
}

func (_u *RoutingStepUpdateOne) sqlSave(ctx context.Context) (_node *RoutingStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routingstep.Table, routingstep.Columns, sqlgraph.NewFieldSpec(routingstep.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoutingStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, routingstep.FieldID)
		for _, f := range fields {
			if !routingstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != routingstep.FieldID {
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
		_spec.SetField(routingstep.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(routingstep.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(routingstep.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OperationName(); ok {
		_spec.SetField(routingstep.FieldOperationName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OperationType(); ok {
		_spec.SetField(routingstep.FieldOperationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OperationCode(); ok {
		_spec.SetField(routingstep.FieldOperationCode, field.TypeString, value)
	}
	if _u.mutation.OperationCodeCleared() {
		_spec.ClearField(routingstep.FieldOperationCode, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(routingstep.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(routingstep.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TargetQty(); ok {
		_spec.SetField(routingstep.FieldTargetQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetQty(); ok {
		_spec.AddField(routingstep.FieldTargetQty, field.TypeFloat64, value)
	}
	if _u.mutation.TargetQtyCleared() {
		_spec.ClearField(routingstep.FieldTargetQty, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EstimatedDurationMinutes(); ok {
		_spec.SetField(routingstep.FieldEstimatedDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedDurationMinutes(); ok {
		_spec.AddField(routingstep.FieldEstimatedDurationMinutes, field.TypeInt, value)
	}
	if _u.mutation.EstimatedDurationMinutesCleared() {
		_spec.ClearField(routingstep.FieldEstimatedDurationMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.IsParallel(); ok {
		_spec.SetField(routingstep.FieldIsParallel, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Mandatory(); ok {
		_spec.SetField(routingstep.FieldMandatory, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProducesOutputBatch(); ok {
		_spec.SetField(routingstep.FieldProducesOutputBatch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowsSplit(); ok {
		_spec.SetField(routingstep.FieldAllowsSplit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowsMerge(); ok {
		_spec.SetField(routingstep.FieldAllowsMerge, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DisplayStatus(); ok {
		_spec.SetField(routingstep.FieldDisplayStatus, field.TypeString, value)
	}
	if _u.mutation.DisplayStatusCleared() {
		_spec.ClearField(routingstep.FieldDisplayStatus, field.TypeString)
	}
	if _u.mutation.TemplateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   routingstep.TemplateTable,
			Columns: []string{routingstep.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   routingstep.TemplateTable,
			Columns: []string{routingstep.TemplateColumn},
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
	_node = &RoutingStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routingstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
