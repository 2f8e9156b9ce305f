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

// ProcessTemplateCreate is the builder for creating a ProcessTemplate entity.
type ProcessTemplateCreate struct {
	config
	mutation *ProcessTemplateMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcessTemplateCreate) SetCreatedAt(v time.Time) *ProcessTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcessTemplateCreate) SetNillableCreatedAt(v *time.Time) *ProcessTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProcessTemplateCreate) SetUpdatedAt(v time.Time) *ProcessTemplateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProcessTemplateCreate) SetNillableUpdatedAt(v *time.Time) *ProcessTemplateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCode sets the "code" field.
func (_c *ProcessTemplateCreate) SetCode(v string) *ProcessTemplateCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_c *ProcessTemplateCreate) SetNillableCode(v *string) *ProcessTemplateCreate {
	if v != nil {
		_c.SetCode(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ProcessTemplateCreate) SetName(v string) *ProcessTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ProcessTemplateCreate) SetDescription(v string) *ProcessTemplateCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ProcessTemplateCreate) SetNillableDescription(v *string) *ProcessTemplateCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetProductSku sets the "product_sku" field.
func (_c *ProcessTemplateCreate) SetProductSku(v string) *ProcessTemplateCreate {
	_c.mutation.SetProductSku(v)
	return _c
}

// SetNillableProductSku sets the "product_sku" field if the given value is not nil.
func (_c *ProcessTemplateCreate) SetNillableProductSku(v *string) *ProcessTemplateCreate {
	if v != nil {
		_c.SetProductSku(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessTemplateCreate) SetStatus(v processtemplate.Status) *ProcessTemplateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProcessTemplateCreate) SetNillableStatus(v *processtemplate.Status) *ProcessTemplateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ProcessTemplateCreate) SetVersion(v string) *ProcessTemplateCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ProcessTemplateCreate) SetNillableVersion(v *string) *ProcessTemplateCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetEffectiveFrom sets the "effective_from" field.
func (_c *ProcessTemplateCreate) SetEffectiveFrom(v time.Time) *ProcessTemplateCreate {
	_c.mutation.SetEffectiveFrom(v)
	return _c
}

// SetNillableEffectiveFrom sets the "effective_from" field if the given value is not nil.
func (_c *ProcessTemplateCreate) SetNillableEffectiveFrom(v *time.Time) *ProcessTemplateCreate {
	if v != nil {
		_c.SetEffectiveFrom(*v)
	}
	return _c
}

// SetEffectiveTo sets the "effective_to" field.
func (_c *ProcessTemplateCreate) SetEffectiveTo(v time.Time) *ProcessTemplateCreate {
	_c.mutation.SetEffectiveTo(v)
	return _c
}

// SetNillableEffectiveTo sets the "effective_to" field if the given value is not nil.
func (_c *ProcessTemplateCreate) SetNillableEffectiveTo(v *time.Time) *ProcessTemplateCreate {
	if v != nil {
		_c.SetEffectiveTo(*v)
	}
	return _c
}

// SetPredecessorID sets the "predecessor_id" field.
func (_c *ProcessTemplateCreate) SetPredecessorID(v int) *ProcessTemplateCreate {
	_c.mutation.SetPredecessorID(v)
	return _c
}

// SetNillablePredecessorID sets the "predecessor_id" field if the given value is not nil.
func (_c *ProcessTemplateCreate) SetNillablePredecessorID(v *int) *ProcessTemplateCreate {
	if v != nil {
		_c.SetPredecessorID(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ProcessTemplateCreate) SetCreatedBy(v string) *ProcessTemplateCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// AddStepIDs adds the "steps" edge to the RoutingStep entity by IDs.
func (_c *ProcessTemplateCreate) AddStepIDs(ids ...int) *ProcessTemplateCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the RoutingStep entity.
func (_c *ProcessTemplateCreate) AddSteps(v ...*RoutingStep) *ProcessTemplateCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// SetPredecessor sets the "predecessor" edge to the ProcessTemplate entity.
func (_c *ProcessTemplateCreate) SetPredecessor(v *ProcessTemplate) *ProcessTemplateCreate {
	return _c.SetPredecessorID(v.ID)
}

// AddSuccessorIDs adds the "successors" edge to the ProcessTemplate entity by IDs.
func (_c *ProcessTemplateCreate) AddSuccessorIDs(ids ...int) *ProcessTemplateCreate {
	_c.mutation.AddSuccessorIDs(ids...)
	return _c
}

// AddSuccessors adds the "successors" edges to the ProcessTemplate entity.
func (_c *ProcessTemplateCreate) AddSuccessors(v ...*ProcessTemplate) *ProcessTemplateCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSuccessorIDs(ids...)
}

// Mutation returns the ProcessTemplateMutation object of the builder.
func (_c *ProcessTemplateCreate) Mutation() *ProcessTemplateMutation {
	return _c.mutation
}

// Save creates the ProcessTemplate in the database.
func (_c *ProcessTemplateCreate) Save(ctx context.Context) (*ProcessTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessTemplateCreate) SaveX(ctx context.Context) *ProcessTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessTemplateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := processtemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := processtemplate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := processtemplate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := processtemplate.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessTemplateCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProcessTemplate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProcessTemplate.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ProcessTemplate.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := processtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ProcessTemplate.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := processtemplate.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "ProcessTemplate.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessTemplate.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processtemplate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessTemplate.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ProcessTemplate.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := processtemplate.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ProcessTemplate.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "ProcessTemplate.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := processtemplate.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "ProcessTemplate.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *ProcessTemplateCreate) sqlSave(ctx context.Context) (*ProcessTemplate, error) {
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

func (_c *ProcessTemplateCreate) createSpec() (*ProcessTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processtemplate.Table, sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(processtemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(processtemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(processtemplate.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(processtemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(processtemplate.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ProductSku(); ok {
		_spec.SetField(processtemplate.FieldProductSku, field.TypeString, value)
		_node.ProductSku = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processtemplate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(processtemplate.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.EffectiveFrom(); ok {
		_spec.SetField(processtemplate.FieldEffectiveFrom, field.TypeTime, value)
		_node.EffectiveFrom = &value
	}
	if value, ok := _c.mutation.EffectiveTo(); ok {
		_spec.SetField(processtemplate.FieldEffectiveTo, field.TypeTime, value)
		_node.EffectiveTo = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(processtemplate.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PredecessorIDs(); len(nodes) > 0 {
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
		_node.PredecessorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SuccessorsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProcessTemplateCreateBulk is the builder for creating many ProcessTemplate entities in bulk.
type ProcessTemplateCreateBulk struct {
	config
	err      error
	builders []*ProcessTemplateCreate
}

// Save creates the ProcessTemplate entities in the database.
func (_c *ProcessTemplateCreateBulk) Save(ctx context.Context) ([]*ProcessTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessTemplateMutation)
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
func (_c *ProcessTemplateCreateBulk) SaveX(ctx context.Context) []*ProcessTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
