// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"routesmith.io/routesmith/ent/processtemplate"
	"routesmith.io/routesmith/ent/routingstep"
)

// RoutingStepCreate is the builder for creating a RoutingStep entity.
type RoutingStepCreate struct {
	config
	mutation *RoutingStepMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoutingStepCreate) SetCreatedAt(v time.Time) *RoutingStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoutingStepCreate) SetNillableCreatedAt(v *time.Time) *RoutingStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RoutingStepCreate) SetUpdatedAt(v time.Time) *RoutingStepCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RoutingStepCreate) SetNillableUpdatedAt(v *time.Time) *RoutingStepCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *RoutingStepCreate) SetSequenceNumber(v int) *RoutingStepCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetOperationName sets the "operation_name" field.
func (_c *RoutingStepCreate) SetOperationName(v string) *RoutingStepCreate {
	_c.mutation.SetOperationName(v)
	return _c
}

// SetOperationType sets the "operation_type" field.
func (_c *RoutingStepCreate) SetOperationType(v routingstep.OperationType) *RoutingStepCreate {
	_c.mutation.SetOperationType(v)
	return _c
}

// SetNillableOperationType sets the "operation_type" field if the given value is not nil.
func (_c *RoutingStepCreate) SetNillableOperationType(v *routingstep.OperationType) *RoutingStepCreate {
	if v != nil {
		_c.SetOperationType(*v)
	}
	return _c
}

// SetOperationCode sets the "operation_code" field.
func (_c *RoutingStepCreate) SetOperationCode(v string) *RoutingStepCreate {
	_c.mutation.SetOperationCode(v)
	return _c
}

// SetNillableOperationCode sets the "operation_code" field if the given value is not nil.
func (_c *RoutingStepCreate) SetNillableOperationCode(v *string) *RoutingStepCreate {
	if v != nil {
		_c.SetOperationCode(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *RoutingStepCreate) SetDescription(v string) *RoutingStepCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RoutingStepCreate) SetNillableDescription(v *string) *RoutingStepCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetTargetQty sets the "target_qty" field.
func (_c *RoutingStepCreate) SetTargetQty(v float64) *RoutingStepCreate {
	_c.mutation.SetTargetQty(v)
	return _c
}

// SetNillableTargetQty sets the "target_qty" field if the given value is not nil.
func (_c *RoutingStepCreate) SetNillableTargetQty(v *float64) *RoutingStepCreate {
	if v != nil {
		_c.SetTargetQty(*v)
	}
	return _c
}

// SetEstimatedDurationMinutes sets the "estimated_duration_minutes" field.
func (_c *RoutingStepCreate) SetEstimatedDurationMinutes(v int) *RoutingStepCreate {
	_c.mutation.SetEstimatedDurationMinutes(v)
	return _c
}

// SetNillableEstimatedDurationMinutes sets the "estimated_duration_minutes" field if the given value is not nil.
func (_c *RoutingStepCreate) SetNillableEstimatedDurationMinutes(v *int) *RoutingStepCreate {
	if v != nil {
		_c.SetEstimatedDurationMinutes(*v)
	}
	return _c
}

// SetIsParallel sets the "is_parallel" field.
func (_c *RoutingStepCreate) SetIsParallel(v bool) *RoutingStepCreate {
	_c.mutation.SetIsParallel(v)
	return _c
}

// SetNillableIsParallel sets the "is_parallel" field if the given value is not nil.
func (_c *RoutingStepCreate) SetNillableIsParallel(v *bool) *RoutingStepCreate {
	if v != nil {
		_c.SetIsParallel(*v)
	}
	return _c
}

// SetMandatory sets the "mandatory" field.
func (_c *RoutingStepCreate) SetMandatory(v bool) *RoutingStepCreate {
	_c.mutation.SetMandatory(v)
	return _c
}

// SetNillableMandatory sets the "mandatory" field if the given value is not nil.
func (_c *RoutingStepCreate) SetNillableMandatory(v *bool) *RoutingStepCreate {
	if v != nil {
		_c.SetMandatory(*v)
	}
	return _c
}

// SetProducesOutputBatch sets the "produces_output_batch" field.
func (_c *RoutingStepCreate) SetProducesOutputBatch(v bool) *RoutingStepCreate {
	_c.mutation.SetProducesOutputBatch(v)
	return _c
}

// SetNillableProducesOutputBatch sets the "produces_output_batch" field if the given value is not nil.
func (_c *RoutingStepCreate) SetNillableProducesOutputBatch(v *bool) *RoutingStepCreate {
	if v != nil {
		_c.SetProducesOutputBatch(*v)
	}
	return _c
}

// SetAllowsSplit sets the "allows_split" field.
func (_c *RoutingStepCreate) SetAllowsSplit(v bool) *RoutingStepCreate {
	_c.mutation.SetAllowsSplit(v)
	return _c
}

// SetNillableAllowsSplit sets the "allows_split" field if the given value is not nil.
func (_c *RoutingStepCreate) SetNillableAllowsSplit(v *bool) *RoutingStepCreate {
	if v != nil {
		_c.SetAllowsSplit(*v)
	}
	return _c
}

// SetAllowsMerge sets the "allows_merge" field.
func (_c *RoutingStepCreate) SetAllowsMerge(v bool) *RoutingStepCreate {
	_c.mutation.SetAllowsMerge(v)
	return _c
}

// SetNillableAllowsMerge sets the "allows_merge" field if the given value is not nil.
func (_c *RoutingStepCreate) SetNillableAllowsMerge(v *bool) *RoutingStepCreate {
	if v != nil {
		_c.SetAllowsMerge(*v)
	}
	return _c
}

// SetDisplayStatus sets the "display_status" field.
func (_c *RoutingStepCreate) SetDisplayStatus(v string) *RoutingStepCreate {
	_c.mutation.SetDisplayStatus(v)
	return _c
}

// SetNillableDisplayStatus sets the "display_status" field if the given value is not nil.
func (_c *RoutingStepCreate) SetNillableDisplayStatus(v *string) *RoutingStepCreate {
	if v != nil {
		_c.SetDisplayStatus(*v)
	}
	return _c
}

// SetTemplateID sets the "template" edge to the ProcessTemplate entity by ID.
func (_c *RoutingStepCreate) SetTemplateID(id int) *RoutingStepCreate {
	_c.mutation.SetTemplateID(id)
	return _c
}

// SetTemplate sets the "template" edge to the ProcessTemplate entity.
func (_c *RoutingStepCreate) SetTemplate(v *ProcessTemplate) *RoutingStepCreate {
	return _c.SetTemplateID(v.ID)
}

// Mutation returns the RoutingStepMutation object of the builder.
func (_c *RoutingStepCreate) Mutation() *RoutingStepMutation {
	return _c.mutation
}

// Save creates the RoutingStep in the database.
func (_c *RoutingStepCreate) Save(ctx context.Context) (*RoutingStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoutingStepCreate) SaveX(ctx context.Context) *RoutingStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutingStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutingStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoutingStepCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := routingstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := routingstep.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.OperationType(); !ok {
		v := routingstep.DefaultOperationType
		_c.mutation.SetOperationType(v)
	}
	if _, ok := _c.mutation.IsParallel(); !ok {
		v := routingstep.DefaultIsParallel
		_c.mutation.SetIsParallel(v)
	}
	if _, ok := _c.mutation.Mandatory(); !ok {
		v := routingstep.DefaultMandatory
		_c.mutation.SetMandatory(v)
	}
	if _, ok := _c.mutation.ProducesOutputBatch(); !ok {
		v := routingstep.DefaultProducesOutputBatch
		_c.mutation.SetProducesOutputBatch(v)
	}
	if _, ok := _c.mutation.AllowsSplit(); !ok {
		v := routingstep.DefaultAllowsSplit
		_c.mutation.SetAllowsSplit(v)
	}
	if _, ok := _c.mutation.AllowsMerge(); !ok {
		v := routingstep.DefaultAllowsMerge
		_c.mutation.SetAllowsMerge(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoutingStepCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RoutingStep.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RoutingStep.updated_at"`)}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "RoutingStep.sequence_number"`)}
	}
	if v, ok := _c.mutation.SequenceNumber(); ok {
		if err := routingstep.SequenceNumberValidator(v); err != nil {
			return &ValidationError{Name: "sequence_number", err: fmt.Errorf(`ent: validator failed for field "RoutingStep.sequence_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OperationName(); !ok {
		return &ValidationError{Name: "operation_name", err: errors.New(`ent: missing required field "RoutingStep.operation_name"`)}
	}
	if v, ok := _c.mutation.OperationName(); ok {
		if err := routingstep.OperationNameValidator(v); err != nil {
			return &ValidationError{Name: "operation_name", err: fmt.Errorf(`ent: validator failed for field "RoutingStep.operation_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OperationType(); !ok {
		return &ValidationError{Name: "operation_type", err: errors.New(`ent: missing required field "RoutingStep.operation_type"`)}
	}
	if v, ok := _c.mutation.OperationType(); ok {
		if err := routingstep.OperationTypeValidator(v); err != nil {
			return &ValidationError{Name: "operation_type", err: fmt.Errorf(`ent: validator failed for field "RoutingStep.operation_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := routingstep.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "RoutingStep.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsParallel(); !ok {
		return &ValidationError{Name: "is_parallel", err: errors.New(`ent: missing required field "RoutingStep.is_parallel"`)}
	}
	if _, ok := _c.mutation.Mandatory(); !ok {
		return &ValidationError{Name: "mandatory", err: errors.New(`ent: missing required field "RoutingStep.mandatory"`)}
	}
	if _, ok := _c.mutation.ProducesOutputBatch(); !ok {
		return &ValidationError{Name: "produces_output_batch", err: errors.New(`ent: missing required field "RoutingStep.produces_output_batch"`)}
	}
	if _, ok := _c.mutation.AllowsSplit(); !ok {
		return &ValidationError{Name: "allows_split", err: errors.New(`ent: missing required field "RoutingStep.allows_split"`)}
	}
	if _, ok := _c.mutation.AllowsMerge(); !ok {
		return &ValidationError{Name: "allows_merge", err: errors.New(`ent: missing required field "RoutingStep.allows_merge"`)}
	}
	if len(_c.mutation.TemplateIDs()) == 0 {
		return &ValidationError{Name: "template", err: errors.New(`ent: missing required edge "RoutingStep.template"`)}
	}
	return nil
}

func (_c *RoutingStepCreate) sqlSave(ctx context.Context) (*RoutingStep, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoutingStepCreate) createSpec() (*RoutingStep, *sqlgraph.CreateSpec) {
	var (
		_node = &RoutingStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(routingstep.Table, sqlgraph.NewFieldSpec(routingstep.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(routingstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(routingstep.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(routingstep.FieldSequenceNumber, field.TypeInt, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.OperationName(); ok {
		_spec.SetField(routingstep.FieldOperationName, field.TypeString, value)
		_node.OperationName = value
	}
	if value, ok := _c.mutation.OperationType(); ok {
		_spec.SetField(routingstep.FieldOperationType, field.TypeEnum, value)
		_node.OperationType = value
	}
	if value, ok := _c.mutation.OperationCode(); ok {
		_spec.SetField(routingstep.FieldOperationCode, field.TypeString, value)
		_node.OperationCode = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(routingstep.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.TargetQty(); ok {
		_spec.SetField(routingstep.FieldTargetQty, field.TypeFloat64, value)
		_node.TargetQty = &value
	}
	if value, ok := _c.mutation.EstimatedDurationMinutes(); ok {
		_spec.SetField(routingstep.FieldEstimatedDurationMinutes, field.TypeInt, value)
		_node.EstimatedDurationMinutes = &value
	}
	if value, ok := _c.mutation.IsParallel(); ok {
		_spec.SetField(routingstep.FieldIsParallel, field.TypeBool, value)
		_node.IsParallel = value
	}
	if value, ok := _c.mutation.Mandatory(); ok {
		_spec.SetField(routingstep.FieldMandatory, field.TypeBool, value)
		_node.Mandatory = value
	}
	if value, ok := _c.mutation.ProducesOutputBatch(); ok {
		_spec.SetField(routingstep.FieldProducesOutputBatch, field.TypeBool, value)
		_node.ProducesOutputBatch = value
	}
	if value, ok := _c.mutation.AllowsSplit(); ok {
		_spec.SetField(routingstep.FieldAllowsSplit, field.TypeBool, value)
		_node.AllowsSplit = value
	}
	if value, ok := _c.mutation.AllowsMerge(); ok {
		_spec.SetField(routingstep.FieldAllowsMerge, field.TypeBool, value)
		_node.AllowsMerge = value
	}
	if value, ok := _c.mutation.DisplayStatus(); ok {
		_spec.SetField(routingstep.FieldDisplayStatus, field.TypeString, value)
		_node.DisplayStatus = value
	}
	if nodes := _c.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_node.process_template_steps = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RoutingStepCreateBulk is the builder for creating many RoutingStep entities in bulk.
type RoutingStepCreateBulk struct {
	config
	err      error
	builders []*RoutingStepCreate
}

// Save creates the RoutingStep entities in the database.
func (_c *RoutingStepCreateBulk) Save(ctx context.Context) ([]*RoutingStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoutingStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoutingStepMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RoutingStepCreateBulk) SaveX(ctx context.Context) []*RoutingStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutingStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutingStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
