// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"routesmith.io/routesmith/ent/predicate"
	"routesmith.io/routesmith/ent/processtemplate"
	"routesmith.io/routesmith/ent/routingstep"
)

// ProcessTemplateQuery is the builder for querying ProcessTemplate entities.
type ProcessTemplateQuery struct {
	config
	ctx             *QueryContext
	order           []processtemplate.OrderOption
	inters          []Interceptor
	predicates      []predicate.ProcessTemplate
	withSteps       *RoutingStepQuery
	withPredecessor *ProcessTemplateQuery
	withSuccessors  *ProcessTemplateQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ProcessTemplateQuery builder.
func (_q *ProcessTemplateQuery) Where(ps ...predicate.ProcessTemplate) *ProcessTemplateQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ProcessTemplateQuery) Limit(limit int) *ProcessTemplateQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ProcessTemplateQuery) Offset(offset int) *ProcessTemplateQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ProcessTemplateQuery) Unique(unique bool) *ProcessTemplateQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ProcessTemplateQuery) Order(o ...processtemplate.OrderOption) *ProcessTemplateQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySteps chains the current query on the "steps" edge.
func (_q *ProcessTemplateQuery) QuerySteps() *RoutingStepQuery {
	query := (&RoutingStepClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(processtemplate.Table, processtemplate.FieldID, selector),
			sqlgraph.To(routingstep.Table, routingstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, processtemplate.StepsTable, processtemplate.StepsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPredecessor chains the current query on the "predecessor" edge.
func (_q *ProcessTemplateQuery) QueryPredecessor() *ProcessTemplateQuery {
	query := (&ProcessTemplateClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(processtemplate.Table, processtemplate.FieldID, selector),
			sqlgraph.To(processtemplate.Table, processtemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processtemplate.PredecessorTable, processtemplate.PredecessorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySuccessors chains the current query on the "successors" edge.
func (_q *ProcessTemplateQuery) QuerySuccessors() *ProcessTemplateQuery {
	query := (&ProcessTemplateClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(processtemplate.Table, processtemplate.FieldID, selector),
			sqlgraph.To(processtemplate.Table, processtemplate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, processtemplate.SuccessorsTable, processtemplate.SuccessorsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ProcessTemplate entity from the query.
// Returns a *NotFoundError when no ProcessTemplate was found.
func (_q *ProcessTemplateQuery) First(ctx context.Context) (*ProcessTemplate, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{processtemplate.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ProcessTemplateQuery) FirstX(ctx context.Context) *ProcessTemplate {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ProcessTemplate ID from the query.
// Returns a *NotFoundError when no ProcessTemplate ID was found.
func (_q *ProcessTemplateQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{processtemplate.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ProcessTemplateQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ProcessTemplate entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ProcessTemplate entity is found.
// Returns a *NotFoundError when no ProcessTemplate entities are found.
func (_q *ProcessTemplateQuery) Only(ctx context.Context) (*ProcessTemplate, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{processtemplate.Label}
	default:
		return nil, &NotSingularError{processtemplate.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ProcessTemplateQuery) OnlyX(ctx context.Context) *ProcessTemplate {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ProcessTemplate ID in the query.
// Returns a *NotSingularError when more than one ProcessTemplate ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ProcessTemplateQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{processtemplate.Label}
	default:
		err = &NotSingularError{processtemplate.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ProcessTemplateQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ProcessTemplates.
func (_q *ProcessTemplateQuery) All(ctx context.Context) ([]*ProcessTemplate, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ProcessTemplate, *ProcessTemplateQuery]()
	return withInterceptors[[]*ProcessTemplate](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ProcessTemplateQuery) AllX(ctx context.Context) []*ProcessTemplate {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ProcessTemplate IDs.
func (_q *ProcessTemplateQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(processtemplate.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ProcessTemplateQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ProcessTemplateQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ProcessTemplateQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ProcessTemplateQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ProcessTemplateQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ProcessTemplateQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ProcessTemplateQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ProcessTemplateQuery) Clone() *ProcessTemplateQuery {
	if _q == nil {
		return nil
	}
	return &ProcessTemplateQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]processtemplate.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.ProcessTemplate{}, _q.predicates...),
		withSteps:       _q.withSteps.Clone(),
		withPredecessor: _q.withPredecessor.Clone(),
		withSuccessors:  _q.withSuccessors.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSteps tells the query-builder to eager-load the nodes that are connected to
// the "steps" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ProcessTemplateQuery) WithSteps(opts ...func(*RoutingStepQuery)) *ProcessTemplateQuery {
	query := (&RoutingStepClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSteps = query
	return _q
}

// WithPredecessor tells the query-builder to eager-load the nodes that are connected to
// the "predecessor" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ProcessTemplateQuery) WithPredecessor(opts ...func(*ProcessTemplateQuery)) *ProcessTemplateQuery {
	query := (&ProcessTemplateClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPredecessor = query
	return _q
}

// WithSuccessors tells the query-builder to eager-load the nodes that are connected to
// the "successors" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ProcessTemplateQuery) WithSuccessors(opts ...func(*ProcessTemplateQuery)) *ProcessTemplateQuery {
	query := (&ProcessTemplateClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSuccessors = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ProcessTemplate.Query().
//		GroupBy(processtemplate.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ProcessTemplateQuery) GroupBy(field string, fields ...string) *ProcessTemplateGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ProcessTemplateGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = processtemplate.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.ProcessTemplate.Query().
//		Select(processtemplate.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *ProcessTemplateQuery) Select(fields ...string) *ProcessTemplateSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ProcessTemplateSelect{ProcessTemplateQuery: _q}
	sbuild.label = processtemplate.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ProcessTemplateSelect configured with the given aggregations.
func (_q *ProcessTemplateQuery) Aggregate(fns ...AggregateFunc) *ProcessTemplateSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ProcessTemplateQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !processtemplate.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ProcessTemplateQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ProcessTemplate, error) {
	var (
		nodes       = []*ProcessTemplate{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withSteps != nil,
			_q.withPredecessor != nil,
			_q.withSuccessors != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ProcessTemplate).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ProcessTemplate{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSteps; query != nil {
		if err := _q.loadSteps(ctx, query, nodes,
			func(n *ProcessTemplate) { n.Edges.Steps = []*RoutingStep{} },
			func(n *ProcessTemplate, e *RoutingStep) { n.Edges.Steps = append(n.Edges.Steps, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPredecessor; query != nil {
		if err := _q.loadPredecessor(ctx, query, nodes, nil,
			func(n *ProcessTemplate, e *ProcessTemplate) { n.Edges.Predecessor = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSuccessors; query != nil {
		if err := _q.loadSuccessors(ctx, query, nodes,
			func(n *ProcessTemplate) { n.Edges.Successors = []*ProcessTemplate{} },
			func(n *ProcessTemplate, e *ProcessTemplate) { n.Edges.Successors = append(n.Edges.Successors, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ProcessTemplateQuery) loadSteps(ctx context.Context, query *RoutingStepQuery, nodes []*ProcessTemplate, init func(*ProcessTemplate), assign func(*ProcessTemplate, *RoutingStep)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ProcessTemplate)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.RoutingStep(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(processtemplate.StepsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.process_template_steps
		if fk == nil {
			return fmt.Errorf(`foreign-key "process_template_steps" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "process_template_steps" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ProcessTemplateQuery) loadPredecessor(ctx context.Context, query *ProcessTemplateQuery, nodes []*ProcessTemplate, init func(*ProcessTemplate), assign func(*ProcessTemplate, *ProcessTemplate)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ProcessTemplate)
	for i := range nodes {
		if nodes[i].PredecessorID == nil {
			continue
		}
		fk := *nodes[i].PredecessorID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(processtemplate.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "predecessor_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ProcessTemplateQuery) loadSuccessors(ctx context.Context, query *ProcessTemplateQuery, nodes []*ProcessTemplate, init func(*ProcessTemplate), assign func(*ProcessTemplate, *ProcessTemplate)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ProcessTemplate)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(processtemplate.FieldPredecessorID)
	}
	query.Where(predicate.ProcessTemplate(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(processtemplate.SuccessorsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PredecessorID
		if fk == nil {
			return fmt.Errorf(`foreign-key "predecessor_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "predecessor_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ProcessTemplateQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ProcessTemplateQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(processtemplate.Table, processtemplate.Columns, sqlgraph.NewFieldSpec(processtemplate.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processtemplate.FieldID)
		for i := range fields {
			if fields[i] != processtemplate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPredecessor != nil {
			_spec.Node.AddColumnOnce(processtemplate.FieldPredecessorID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ProcessTemplateQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(processtemplate.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = processtemplate.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ProcessTemplateGroupBy is the group-by builder for ProcessTemplate entities.
type ProcessTemplateGroupBy struct {
	selector
	build *ProcessTemplateQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ProcessTemplateGroupBy) Aggregate(fns ...AggregateFunc) *ProcessTemplateGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ProcessTemplateGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProcessTemplateQuery, *ProcessTemplateGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ProcessTemplateGroupBy) sqlScan(ctx context.Context, root *ProcessTemplateQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ProcessTemplateSelect is the builder for selecting fields of ProcessTemplate entities.
type ProcessTemplateSelect struct {
	*ProcessTemplateQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ProcessTemplateSelect) Aggregate(fns ...AggregateFunc) *ProcessTemplateSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ProcessTemplateSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProcessTemplateQuery, *ProcessTemplateSelect](ctx, _s.ProcessTemplateQuery, _s, _s.inters, v)
}

func (_s *ProcessTemplateSelect) sqlScan(ctx context.Context, root *ProcessTemplateQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
