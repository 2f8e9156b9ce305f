// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"routesmith.io/routesmith/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"routesmith.io/routesmith/ent/auditlog"
	"routesmith.io/routesmith/ent/processtemplate"
	"routesmith.io/routesmith/ent/routingstep"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// ProcessTemplate is the client for interacting with the ProcessTemplate builders.
	ProcessTemplate *ProcessTemplateClient
	// RoutingStep is the client for interacting with the RoutingStep builders.
	RoutingStep *RoutingStepClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditLog = NewAuditLogClient(c.config)
	c.ProcessTemplate = NewProcessTemplateClient(c.config)
	c.RoutingStep = NewRoutingStepClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AuditLog:        NewAuditLogClient(cfg),
		ProcessTemplate: NewProcessTemplateClient(cfg),
		RoutingStep:     NewRoutingStepClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AuditLog:        NewAuditLogClient(cfg),
		ProcessTemplate: NewProcessTemplateClient(cfg),
		RoutingStep:     NewRoutingStepClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditLog.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AuditLog.Use(hooks...)
	c.ProcessTemplate.Use(hooks...)
	c.RoutingStep.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AuditLog.Intercept(interceptors...)
	c.ProcessTemplate.Intercept(interceptors...)
	c.RoutingStep.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *ProcessTemplateMutation:
		return c.ProcessTemplate.mutate(ctx, m)
	case *RoutingStepMutation:
		return c.RoutingStep.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id string) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id string) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id string) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id string) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// ProcessTemplateClient is a client for the ProcessTemplate schema.
type ProcessTemplateClient struct {
	config
}

// NewProcessTemplateClient returns a client for the ProcessTemplate from the given config.
func NewProcessTemplateClient(c config) *ProcessTemplateClient {
	return &ProcessTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processtemplate.Hooks(f(g(h())))`.
func (c *ProcessTemplateClient) Use(hooks ...Hook) {
	c.hooks.ProcessTemplate = append(c.hooks.ProcessTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processtemplate.Intercept(f(g(h())))`.
func (c *ProcessTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessTemplate = append(c.inters.ProcessTemplate, interceptors...)
}

// Create returns a builder for creating a ProcessTemplate entity.
func (c *ProcessTemplateClient) Create() *ProcessTemplateCreate {
	mutation := newProcessTemplateMutation(c.config, OpCreate)
	return &ProcessTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessTemplate entities.
func (c *ProcessTemplateClient) CreateBulk(builders ...*ProcessTemplateCreate) *ProcessTemplateCreateBulk {
	return &ProcessTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessTemplateClient) MapCreateBulk(slice any, setFunc func(*ProcessTemplateCreate, int)) *ProcessTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessTemplateCreateBulk{err: fmt.Errorf("calling to ProcessTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessTemplate.
func (c *ProcessTemplateClient) Update() *ProcessTemplateUpdate {
	mutation := newProcessTemplateMutation(c.config, OpUpdate)
	return &ProcessTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessTemplateClient) UpdateOne(_m *ProcessTemplate) *ProcessTemplateUpdateOne {
	mutation := newProcessTemplateMutation(c.config, OpUpdateOne, withProcessTemplate(_m))
	return &ProcessTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessTemplateClient) UpdateOneID(id int) *ProcessTemplateUpdateOne {
	mutation := newProcessTemplateMutation(c.config, OpUpdateOne, withProcessTemplateID(id))
	return &ProcessTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessTemplate.
func (c *ProcessTemplateClient) Delete() *ProcessTemplateDelete {
	mutation := newProcessTemplateMutation(c.config, OpDelete)
	return &ProcessTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessTemplateClient) DeleteOne(_m *ProcessTemplate) *ProcessTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessTemplateClient) DeleteOneID(id int) *ProcessTemplateDeleteOne {
	builder := c.Delete().Where(processtemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessTemplateDeleteOne{builder}
}

// Query returns a query builder for ProcessTemplate.
func (c *ProcessTemplateClient) Query() *ProcessTemplateQuery {
	return &ProcessTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessTemplate entity by its id.
func (c *ProcessTemplateClient) Get(ctx context.Context, id int) (*ProcessTemplate, error) {
	return c.Query().Where(processtemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessTemplateClient) GetX(ctx context.Context, id int) *ProcessTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a ProcessTemplate.
func (c *ProcessTemplateClient) QuerySteps(_m *ProcessTemplate) *RoutingStepQuery {
	query := (&RoutingStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processtemplate.Table, processtemplate.FieldID, id),
			sqlgraph.To(routingstep.Table, routingstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, processtemplate.StepsTable, processtemplate.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPredecessor queries the predecessor edge of a ProcessTemplate.
func (c *ProcessTemplateClient) QueryPredecessor(_m *ProcessTemplate) *ProcessTemplateQuery {
	query := (&ProcessTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processtemplate.Table, processtemplate.FieldID, id),
			sqlgraph.To(processtemplate.Table, processtemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processtemplate.PredecessorTable, processtemplate.PredecessorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySuccessors queries the successors edge of a ProcessTemplate.
func (c *ProcessTemplateClient) QuerySuccessors(_m *ProcessTemplate) *ProcessTemplateQuery {
	query := (&ProcessTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processtemplate.Table, processtemplate.FieldID, id),
			sqlgraph.To(processtemplate.Table, processtemplate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, processtemplate.SuccessorsTable, processtemplate.SuccessorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessTemplateClient) Hooks() []Hook {
	return c.hooks.ProcessTemplate
}

// Interceptors returns the client interceptors.
func (c *ProcessTemplateClient) Interceptors() []Interceptor {
	return c.inters.ProcessTemplate
}

func (c *ProcessTemplateClient) mutate(ctx context.Context, m *ProcessTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessTemplate mutation op: %q", m.Op())
	}
}

// RoutingStepClient is a client for the RoutingStep schema.
type RoutingStepClient struct {
	config
}

// NewRoutingStepClient returns a client for the RoutingStep from the given config.
func NewRoutingStepClient(c config) *RoutingStepClient {
	return &RoutingStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `routingstep.Hooks(f(g(h())))`.
func (c *RoutingStepClient) Use(hooks ...Hook) {
	c.hooks.RoutingStep = append(c.hooks.RoutingStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `routingstep.Intercept(f(g(h())))`.
func (c *RoutingStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.RoutingStep = append(c.inters.RoutingStep, interceptors...)
}

// Create returns a builder for creating a RoutingStep entity.
func (c *RoutingStepClient) Create() *RoutingStepCreate {
	mutation := newRoutingStepMutation(c.config, OpCreate)
	return &RoutingStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RoutingStep entities.
func (c *RoutingStepClient) CreateBulk(builders ...*RoutingStepCreate) *RoutingStepCreateBulk {
	return &RoutingStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoutingStepClient) MapCreateBulk(slice any, setFunc func(*RoutingStepCreate, int)) *RoutingStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoutingStepCreateBulk{err: fmt.Errorf("calling to RoutingStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoutingStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoutingStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RoutingStep.
func (c *RoutingStepClient) Update() *RoutingStepUpdate {
	mutation := newRoutingStepMutation(c.config, OpUpdate)
	return &RoutingStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoutingStepClient) UpdateOne(_m *RoutingStep) *RoutingStepUpdateOne {
	mutation := newRoutingStepMutation(c.config, OpUpdateOne, withRoutingStep(_m))
	return &RoutingStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoutingStepClient) UpdateOneID(id int) *RoutingStepUpdateOne {
	mutation := newRoutingStepMutation(c.config, OpUpdateOne, withRoutingStepID(id))
	return &RoutingStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RoutingStep.
func (c *RoutingStepClient) Delete() *RoutingStepDelete {
	mutation := newRoutingStepMutation(c.config, OpDelete)
	return &RoutingStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoutingStepClient) DeleteOne(_m *RoutingStep) *RoutingStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoutingStepClient) DeleteOneID(id int) *RoutingStepDeleteOne {
	builder := c.Delete().Where(routingstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoutingStepDeleteOne{builder}
}

// Query returns a query builder for RoutingStep.
func (c *RoutingStepClient) Query() *RoutingStepQuery {
	return &RoutingStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoutingStep},
		inters: c.Interceptors(),
	}
}

// Get returns a RoutingStep entity by its id.
func (c *RoutingStepClient) Get(ctx context.Context, id int) (*RoutingStep, error) {
	return c.Query().Where(routingstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoutingStepClient) GetX(ctx context.Context, id int) *RoutingStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTemplate queries the template edge of a RoutingStep.
func (c *RoutingStepClient) QueryTemplate(_m *RoutingStep) *ProcessTemplateQuery {
	query := (&ProcessTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(routingstep.Table, routingstep.FieldID, id),
			sqlgraph.To(processtemplate.Table, processtemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, routingstep.TemplateTable, routingstep.TemplateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RoutingStepClient) Hooks() []Hook {
	return c.hooks.RoutingStep
}

// Interceptors returns the client interceptors.
func (c *RoutingStepClient) Interceptors() []Interceptor {
	return c.inters.RoutingStep
}

func (c *RoutingStepClient) mutate(ctx context.Context, m *RoutingStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoutingStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoutingStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoutingStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoutingStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RoutingStep mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditLog, ProcessTemplate, RoutingStep []ent.Hook
	}
	inters struct {
		AuditLog, ProcessTemplate, RoutingStep []ent.Interceptor
	}
)
