// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"routesmith.io/routesmith/ent/auditlog"
	"routesmith.io/routesmith/ent/predicate"
	"routesmith.io/routesmith/ent/processtemplate"
	"routesmith.io/routesmith/ent/routingstep"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog        = "AuditLog"
	TypeProcessTemplate = "ProcessTemplate"
	TypeRoutingStep     = "RoutingStep"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	action        *string
	resource_type *string
	resource_id   *string
	actor         *string
	details       *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetResourceType sets the "resource_type" field.
func (m *AuditLogMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *AuditLogMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *AuditLogMutation) ResetResourceType() {
	m.resource_type = nil
}

// SetResourceID sets the "resource_id" field.
func (m *AuditLogMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *AuditLogMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *AuditLogMutation) ResetResourceID() {
	m.resource_id = nil
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
}

// SetDetails sets the "details" field.
func (m *AuditLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AuditLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[auditlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, auditlog.FieldDetails)
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.resource_type != nil {
		fields = append(fields, auditlog.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.details != nil {
		fields = append(fields, auditlog.FieldDetails)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldResourceType:
		return m.ResourceType()
	case auditlog.FieldResourceID:
		return m.ResourceID()
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldDetails:
		return m.Details()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldResourceType:
		return m.OldResourceType(ctx)
	case auditlog.FieldResourceID:
		return m.OldResourceID(ctx)
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldDetails:
		return m.OldDetails(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case auditlog.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldDetails) {
		fields = append(fields, auditlog.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldResourceType:
		m.ResetResourceType()
		return nil
	case auditlog.FieldResourceID:
		m.ResetResourceID()
		return nil
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldDetails:
		m.ResetDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// ProcessTemplateMutation represents an operation that mutates the ProcessTemplate nodes in the graph.
type ProcessTemplateMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	created_at         *time.Time
	updated_at         *time.Time
	code               *string
	name               *string
	description        *string
	product_sku        *string
	status             *processtemplate.Status
	version            *string
	effective_from     *time.Time
	effective_to       *time.Time
	created_by         *string
	clearedFields      map[string]struct{}
	steps              map[int]struct{}
	removedsteps       map[int]struct{}
	clearedsteps       bool
	predecessor        *int
	clearedpredecessor bool
	successors         map[int]struct{}
	removedsuccessors  map[int]struct{}
	clearedsuccessors  bool
	done               bool
	oldValue           func(context.Context) (*ProcessTemplate, error)
	predicates         []predicate.ProcessTemplate
}

var _ ent.Mutation = (*ProcessTemplateMutation)(nil)

// processtemplateOption allows management of the mutation configuration using functional options.
type processtemplateOption func(*ProcessTemplateMutation)

// newProcessTemplateMutation creates new mutation for the ProcessTemplate entity.
func newProcessTemplateMutation(c config, op Op, opts ...processtemplateOption) *ProcessTemplateMutation {
	m := &ProcessTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessTemplateID sets the ID field of the mutation.
func withProcessTemplateID(id int) processtemplateOption {
	return func(m *ProcessTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessTemplate
		)
		m.oldValue = func(ctx context.Context) (*ProcessTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessTemplate sets the old ProcessTemplate of the mutation.
func withProcessTemplate(node *ProcessTemplate) processtemplateOption {
	return func(m *ProcessTemplateMutation) {
		m.oldValue = func(context.Context) (*ProcessTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessTemplateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessTemplateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessTemplate entity.
// If the ProcessTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProcessTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProcessTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProcessTemplate entity.
// If the ProcessTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProcessTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCode sets the "code" field.
func (m *ProcessTemplateMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *ProcessTemplateMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the ProcessTemplate entity.
// If the ProcessTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTemplateMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ClearCode clears the value of the "code" field.
func (m *ProcessTemplateMutation) ClearCode() {
	m.code = nil
	m.clearedFields[processtemplate.FieldCode] = struct{}{}
}

// CodeCleared returns if the "code" field was cleared in this mutation.
func (m *ProcessTemplateMutation) CodeCleared() bool {
	_, ok := m.clearedFields[processtemplate.FieldCode]
	return ok
}

// ResetCode resets all changes to the "code" field.
func (m *ProcessTemplateMutation) ResetCode() {
	m.code = nil
	delete(m.clearedFields, processtemplate.FieldCode)
}

// SetName sets the "name" field.
func (m *ProcessTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProcessTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ProcessTemplate entity.
// If the ProcessTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProcessTemplateMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProcessTemplateMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProcessTemplateMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ProcessTemplate entity.
// If the ProcessTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTemplateMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProcessTemplateMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[processtemplate.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProcessTemplateMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[processtemplate.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProcessTemplateMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, processtemplate.FieldDescription)
}

// SetProductSku sets the "product_sku" field.
func (m *ProcessTemplateMutation) SetProductSku(s string) {
	m.product_sku = &s
}

// ProductSku returns the value of the "product_sku" field in the mutation.
func (m *ProcessTemplateMutation) ProductSku() (r string, exists bool) {
	v := m.product_sku
	if v == nil {
		return
	}
	return *v, true
}

// OldProductSku returns the old "product_sku" field's value of the ProcessTemplate entity.
// If the ProcessTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTemplateMutation) OldProductSku(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductSku is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductSku requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductSku: %w", err)
	}
	return oldValue.ProductSku, nil
}

// ClearProductSku clears the value of the "product_sku" field.
func (m *ProcessTemplateMutation) ClearProductSku() {
	m.product_sku = nil
	m.clearedFields[processtemplate.FieldProductSku] = struct{}{}
}

// ProductSkuCleared returns if the "product_sku" field was cleared in this mutation.
func (m *ProcessTemplateMutation) ProductSkuCleared() bool {
	_, ok := m.clearedFields[processtemplate.FieldProductSku]
	return ok
}

// ResetProductSku resets all changes to the "product_sku" field.
func (m *ProcessTemplateMutation) ResetProductSku() {
	m.product_sku = nil
	delete(m.clearedFields, processtemplate.FieldProductSku)
}

// SetStatus sets the "status" field.
func (m *ProcessTemplateMutation) SetStatus(pr processtemplate.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessTemplateMutation) Status() (r processtemplate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessTemplate entity.
// If the ProcessTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTemplateMutation) OldStatus(ctx context.Context) (v processtemplate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessTemplateMutation) ResetStatus() {
	m.status = nil
}

// SetVersion sets the "version" field.
func (m *ProcessTemplateMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *ProcessTemplateMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ProcessTemplate entity.
// If the ProcessTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTemplateMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ResetVersion resets all changes to the "version" field.
func (m *ProcessTemplateMutation) ResetVersion() {
	m.version = nil
}

// SetEffectiveFrom sets the "effective_from" field.
func (m *ProcessTemplateMutation) SetEffectiveFrom(t time.Time) {
	m.effective_from = &t
}

// EffectiveFrom returns the value of the "effective_from" field in the mutation.
func (m *ProcessTemplateMutation) EffectiveFrom() (r time.Time, exists bool) {
	v := m.effective_from
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveFrom returns the old "effective_from" field's value of the ProcessTemplate entity.
// If the ProcessTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTemplateMutation) OldEffectiveFrom(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveFrom: %w", err)
	}
	return oldValue.EffectiveFrom, nil
}

// ClearEffectiveFrom clears the value of the "effective_from" field.
func (m *ProcessTemplateMutation) ClearEffectiveFrom() {
	m.effective_from = nil
	m.clearedFields[processtemplate.FieldEffectiveFrom] = struct{}{}
}

// EffectiveFromCleared returns if the "effective_from" field was cleared in this mutation.
func (m *ProcessTemplateMutation) EffectiveFromCleared() bool {
	_, ok := m.clearedFields[processtemplate.FieldEffectiveFrom]
	return ok
}

// ResetEffectiveFrom resets all changes to the "effective_from" field.
func (m *ProcessTemplateMutation) ResetEffectiveFrom() {
	m.effective_from = nil
	delete(m.clearedFields, processtemplate.FieldEffectiveFrom)
}

// SetEffectiveTo sets the "effective_to" field.
func (m *ProcessTemplateMutation) SetEffectiveTo(t time.Time) {
	m.effective_to = &t
}

// EffectiveTo returns the value of the "effective_to" field in the mutation.
func (m *ProcessTemplateMutation) EffectiveTo() (r time.Time, exists bool) {
	v := m.effective_to
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveTo returns the old "effective_to" field's value of the ProcessTemplate entity.
// If the ProcessTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTemplateMutation) OldEffectiveTo(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveTo: %w", err)
	}
	return oldValue.EffectiveTo, nil
}

// ClearEffectiveTo clears the value of the "effective_to" field.
func (m *ProcessTemplateMutation) ClearEffectiveTo() {
	m.effective_to = nil
	m.clearedFields[processtemplate.FieldEffectiveTo] = struct{}{}
}

// EffectiveToCleared returns if the "effective_to" field was cleared in this mutation.
func (m *ProcessTemplateMutation) EffectiveToCleared() bool {
	_, ok := m.clearedFields[processtemplate.FieldEffectiveTo]
	return ok
}

// ResetEffectiveTo resets all changes to the "effective_to" field.
func (m *ProcessTemplateMutation) ResetEffectiveTo() {
	m.effective_to = nil
	delete(m.clearedFields, processtemplate.FieldEffectiveTo)
}

// SetPredecessorID sets the "predecessor_id" field.
func (m *ProcessTemplateMutation) SetPredecessorID(i int) {
	m.predecessor = &i
}

// PredecessorID returns the value of the "predecessor_id" field in the mutation.
func (m *ProcessTemplateMutation) PredecessorID() (r int, exists bool) {
	v := m.predecessor
	if v == nil {
		return
	}
	return *v, true
}

// OldPredecessorID returns the old "predecessor_id" field's value of the ProcessTemplate entity.
// If the ProcessTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTemplateMutation) OldPredecessorID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredecessorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredecessorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredecessorID: %w", err)
	}
	return oldValue.PredecessorID, nil
}

// ClearPredecessorID clears the value of the "predecessor_id" field.
func (m *ProcessTemplateMutation) ClearPredecessorID() {
	m.predecessor = nil
	m.clearedFields[processtemplate.FieldPredecessorID] = struct{}{}
}

// PredecessorIDCleared returns if the "predecessor_id" field was cleared in this mutation.
func (m *ProcessTemplateMutation) PredecessorIDCleared() bool {
	_, ok := m.clearedFields[processtemplate.FieldPredecessorID]
	return ok
}

// ResetPredecessorID resets all changes to the "predecessor_id" field.
func (m *ProcessTemplateMutation) ResetPredecessorID() {
	m.predecessor = nil
	delete(m.clearedFields, processtemplate.FieldPredecessorID)
}

// SetCreatedBy sets the "created_by" field.
func (m *ProcessTemplateMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ProcessTemplateMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the ProcessTemplate entity.
// If the ProcessTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTemplateMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ProcessTemplateMutation) ResetCreatedBy() {
	m.created_by = nil
}

// AddStepIDs adds the "steps" edge to the RoutingStep entity by ids.
func (m *ProcessTemplateMutation) AddStepIDs(ids ...int) {
	if m.steps == nil {
		m.steps = make(map[int]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the RoutingStep entity.
func (m *ProcessTemplateMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the RoutingStep entity was cleared.
func (m *ProcessTemplateMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the RoutingStep entity by IDs.
func (m *ProcessTemplateMutation) RemoveStepIDs(ids ...int) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the RoutingStep entity.
func (m *ProcessTemplateMutation) RemovedStepsIDs() (ids []int) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *ProcessTemplateMutation) StepsIDs() (ids []int) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *ProcessTemplateMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// ClearPredecessor clears the "predecessor" edge to the ProcessTemplate entity.
func (m *ProcessTemplateMutation) ClearPredecessor() {
	m.clearedpredecessor = true
	m.clearedFields[processtemplate.FieldPredecessorID] = struct{}{}
}

// PredecessorCleared reports if the "predecessor" edge to the ProcessTemplate entity was cleared.
func (m *ProcessTemplateMutation) PredecessorCleared() bool {
	return m.PredecessorIDCleared() || m.clearedpredecessor
}

// PredecessorIDs returns the "predecessor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PredecessorID instead. It exists only for internal usage by the builders.
func (m *ProcessTemplateMutation) PredecessorIDs() (ids []int) {
	if id := m.predecessor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPredecessor resets all changes to the "predecessor" edge.
func (m *ProcessTemplateMutation) ResetPredecessor() {
	m.predecessor = nil
	m.clearedpredecessor = false
}

// AddSuccessorIDs adds the "successors" edge to the ProcessTemplate entity by ids.
func (m *ProcessTemplateMutation) AddSuccessorIDs(ids ...int) {
	if m.successors == nil {
		m.successors = make(map[int]struct{})
	}
	for i := range ids {
		m.successors[ids[i]] = struct{}{}
	}
}

// ClearSuccessors clears the "successors" edge to the ProcessTemplate entity.
func (m *ProcessTemplateMutation) ClearSuccessors() {
	m.clearedsuccessors = true
}

// SuccessorsCleared reports if the "successors" edge to the ProcessTemplate entity was cleared.
func (m *ProcessTemplateMutation) SuccessorsCleared() bool {
	return m.clearedsuccessors
}

// RemoveSuccessorIDs removes the "successors" edge to the ProcessTemplate entity by IDs.
func (m *ProcessTemplateMutation) RemoveSuccessorIDs(ids ...int) {
	if m.removedsuccessors == nil {
		m.removedsuccessors = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.successors, ids[i])
		m.removedsuccessors[ids[i]] = struct{}{}
	}
}

// RemovedSuccessors returns the removed IDs of the "successors" edge to the ProcessTemplate entity.
func (m *ProcessTemplateMutation) RemovedSuccessorsIDs() (ids []int) {
	for id := range m.removedsuccessors {
		ids = append(ids, id)
	}
	return
}

// SuccessorsIDs returns the "successors" edge IDs in the mutation.
func (m *ProcessTemplateMutation) SuccessorsIDs() (ids []int) {
	for id := range m.successors {
		ids = append(ids, id)
	}
	return
}

// ResetSuccessors resets all changes to the "successors" edge.
func (m *ProcessTemplateMutation) ResetSuccessors() {
	m.successors = nil
	m.clearedsuccessors = false
	m.removedsuccessors = nil
}

// Where appends a list predicates to the ProcessTemplateMutation builder.
func (m *ProcessTemplateMutation) Where(ps ...predicate.ProcessTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessTemplate).
func (m *ProcessTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessTemplateMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, processtemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, processtemplate.FieldUpdatedAt)
	}
	if m.code != nil {
		fields = append(fields, processtemplate.FieldCode)
	}
	if m.name != nil {
		fields = append(fields, processtemplate.FieldName)
	}
	if m.description != nil {
		fields = append(fields, processtemplate.FieldDescription)
	}
	if m.product_sku != nil {
		fields = append(fields, processtemplate.FieldProductSku)
	}
	if m.status != nil {
		fields = append(fields, processtemplate.FieldStatus)
	}
	if m.version != nil {
		fields = append(fields, processtemplate.FieldVersion)
	}
	if m.effective_from != nil {
		fields = append(fields, processtemplate.FieldEffectiveFrom)
	}
	if m.effective_to != nil {
		fields = append(fields, processtemplate.FieldEffectiveTo)
	}
	if m.predecessor != nil {
		fields = append(fields, processtemplate.FieldPredecessorID)
	}
	if m.created_by != nil {
		fields = append(fields, processtemplate.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processtemplate.FieldCreatedAt:
		return m.CreatedAt()
	case processtemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	case processtemplate.FieldCode:
		return m.Code()
	case processtemplate.FieldName:
		return m.Name()
	case processtemplate.FieldDescription:
		return m.Description()
	case processtemplate.FieldProductSku:
		return m.ProductSku()
	case processtemplate.FieldStatus:
		return m.Status()
	case processtemplate.FieldVersion:
		return m.Version()
	case processtemplate.FieldEffectiveFrom:
		return m.EffectiveFrom()
	case processtemplate.FieldEffectiveTo:
		return m.EffectiveTo()
	case processtemplate.FieldPredecessorID:
		return m.PredecessorID()
	case processtemplate.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processtemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case processtemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case processtemplate.FieldCode:
		return m.OldCode(ctx)
	case processtemplate.FieldName:
		return m.OldName(ctx)
	case processtemplate.FieldDescription:
		return m.OldDescription(ctx)
	case processtemplate.FieldProductSku:
		return m.OldProductSku(ctx)
	case processtemplate.FieldStatus:
		return m.OldStatus(ctx)
	case processtemplate.FieldVersion:
		return m.OldVersion(ctx)
	case processtemplate.FieldEffectiveFrom:
		return m.OldEffectiveFrom(ctx)
	case processtemplate.FieldEffectiveTo:
		return m.OldEffectiveTo(ctx)
	case processtemplate.FieldPredecessorID:
		return m.OldPredecessorID(ctx)
	case processtemplate.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processtemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case processtemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case processtemplate.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case processtemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case processtemplate.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case processtemplate.FieldProductSku:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductSku(v)
		return nil
	case processtemplate.FieldStatus:
		v, ok := value.(processtemplate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processtemplate.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case processtemplate.FieldEffectiveFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveFrom(v)
		return nil
	case processtemplate.FieldEffectiveTo:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveTo(v)
		return nil
	case processtemplate.FieldPredecessorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredecessorID(v)
		return nil
	case processtemplate.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessTemplateMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessTemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProcessTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processtemplate.FieldCode) {
		fields = append(fields, processtemplate.FieldCode)
	}
	if m.FieldCleared(processtemplate.FieldDescription) {
		fields = append(fields, processtemplate.FieldDescription)
	}
	if m.FieldCleared(processtemplate.FieldProductSku) {
		fields = append(fields, processtemplate.FieldProductSku)
	}
	if m.FieldCleared(processtemplate.FieldEffectiveFrom) {
		fields = append(fields, processtemplate.FieldEffectiveFrom)
	}
	if m.FieldCleared(processtemplate.FieldEffectiveTo) {
		fields = append(fields, processtemplate.FieldEffectiveTo)
	}
	if m.FieldCleared(processtemplate.FieldPredecessorID) {
		fields = append(fields, processtemplate.FieldPredecessorID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessTemplateMutation) ClearField(name string) error {
	switch name {
	case processtemplate.FieldCode:
		m.ClearCode()
		return nil
	case processtemplate.FieldDescription:
		m.ClearDescription()
		return nil
	case processtemplate.FieldProductSku:
		m.ClearProductSku()
		return nil
	case processtemplate.FieldEffectiveFrom:
		m.ClearEffectiveFrom()
		return nil
	case processtemplate.FieldEffectiveTo:
		m.ClearEffectiveTo()
		return nil
	case processtemplate.FieldPredecessorID:
		m.ClearPredecessorID()
		return nil
	}
	return fmt.Errorf("unknown ProcessTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessTemplateMutation) ResetField(name string) error {
	switch name {
	case processtemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case processtemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case processtemplate.FieldCode:
		m.ResetCode()
		return nil
	case processtemplate.FieldName:
		m.ResetName()
		return nil
	case processtemplate.FieldDescription:
		m.ResetDescription()
		return nil
	case processtemplate.FieldProductSku:
		m.ResetProductSku()
		return nil
	case processtemplate.FieldStatus:
		m.ResetStatus()
		return nil
	case processtemplate.FieldVersion:
		m.ResetVersion()
		return nil
	case processtemplate.FieldEffectiveFrom:
		m.ResetEffectiveFrom()
		return nil
	case processtemplate.FieldEffectiveTo:
		m.ResetEffectiveTo()
		return nil
	case processtemplate.FieldPredecessorID:
		m.ResetPredecessorID()
		return nil
	case processtemplate.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown ProcessTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.steps != nil {
		edges = append(edges, processtemplate.EdgeSteps)
	}
	if m.predecessor != nil {
		edges = append(edges, processtemplate.EdgePredecessor)
	}
	if m.successors != nil {
		edges = append(edges, processtemplate.EdgeSuccessors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processtemplate.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case processtemplate.EdgePredecessor:
		if id := m.predecessor; id != nil {
			return []ent.Value{*id}
		}
	case processtemplate.EdgeSuccessors:
		ids := make([]ent.Value, 0, len(m.successors))
		for id := range m.successors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsteps != nil {
		edges = append(edges, processtemplate.EdgeSteps)
	}
	if m.removedsuccessors != nil {
		edges = append(edges, processtemplate.EdgeSuccessors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessTemplateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case processtemplate.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case processtemplate.EdgeSuccessors:
		ids := make([]ent.Value, 0, len(m.removedsuccessors))
		for id := range m.removedsuccessors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsteps {
		edges = append(edges, processtemplate.EdgeSteps)
	}
	if m.clearedpredecessor {
		edges = append(edges, processtemplate.EdgePredecessor)
	}
	if m.clearedsuccessors {
		edges = append(edges, processtemplate.EdgeSuccessors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case processtemplate.EdgeSteps:
		return m.clearedsteps
	case processtemplate.EdgePredecessor:
		return m.clearedpredecessor
	case processtemplate.EdgeSuccessors:
		return m.clearedsuccessors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessTemplateMutation) ClearEdge(name string) error {
	switch name {
	case processtemplate.EdgePredecessor:
		m.ClearPredecessor()
		return nil
	}
	return fmt.Errorf("unknown ProcessTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessTemplateMutation) ResetEdge(name string) error {
	switch name {
	case processtemplate.EdgeSteps:
		m.ResetSteps()
		return nil
	case processtemplate.EdgePredecessor:
		m.ResetPredecessor()
		return nil
	case processtemplate.EdgeSuccessors:
		m.ResetSuccessors()
		return nil
	}
	return fmt.Errorf("unknown ProcessTemplate edge %s", name)
}

// RoutingStepMutation represents an operation that mutates the RoutingStep nodes in the graph.
type RoutingStepMutation struct {
	config
	op                            Op
	typ                           string
	id                            *int
	created_at                    *time.Time
	updated_at                    *time.Time
	sequence_number               *int
	addsequence_number            *int
	operation_name                *string
	operation_type                *routingstep.OperationType
	operation_code                *string
	description                   *string
	target_qty                    *float64
	addtarget_qty                 *float64
	estimated_duration_minutes    *int
	addestimated_duration_minutes *int
	is_parallel                   *bool
	mandatory                     *bool
	produces_output_batch         *bool
	allows_split                  *bool
	allows_merge                  *bool
	display_status                *string
	clearedFields                 map[string]struct{}
	template                      *int
	clearedtemplate               bool
	done                          bool
	oldValue                      func(context.Context) (*RoutingStep, error)
	predicates                    []predicate.RoutingStep
}

var _ ent.Mutation = (*RoutingStepMutation)(nil)

// routingstepOption allows management of the mutation configuration using functional options.
type routingstepOption func(*RoutingStepMutation)

// newRoutingStepMutation creates new mutation for the RoutingStep entity.
func newRoutingStepMutation(c config, op Op, opts ...routingstepOption) *RoutingStepMutation {
	m := &RoutingStepMutation{
		config:        c,
		op:            op,
		typ:           TypeRoutingStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoutingStepID sets the ID field of the mutation.
func withRoutingStepID(id int) routingstepOption {
	return func(m *RoutingStepMutation) {
		var (
			err   error
			once  sync.Once
			value *RoutingStep
		)
		m.oldValue = func(ctx context.Context) (*RoutingStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoutingStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoutingStep sets the old RoutingStep of the mutation.
func withRoutingStep(node *RoutingStep) routingstepOption {
	return func(m *RoutingStepMutation) {
		m.oldValue = func(context.Context) (*RoutingStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoutingStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoutingStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoutingStepMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoutingStepMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoutingStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RoutingStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoutingStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RoutingStep entity.
// If the RoutingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoutingStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RoutingStepMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RoutingStepMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RoutingStep entity.
// If the RoutingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingStepMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RoutingStepMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *RoutingStepMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *RoutingStepMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the RoutingStep entity.
// If the RoutingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingStepMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *RoutingStepMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *RoutingStepMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *RoutingStepMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetOperationName sets the "operation_name" field.
func (m *RoutingStepMutation) SetOperationName(s string) {
	m.operation_name = &s
}

// OperationName returns the value of the "operation_name" field in the mutation.
func (m *RoutingStepMutation) OperationName() (r string, exists bool) {
	v := m.operation_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationName returns the old "operation_name" field's value of the RoutingStep entity.
// If the RoutingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingStepMutation) OldOperationName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationName: %w", err)
	}
	return oldValue.OperationName, nil
}

// ResetOperationName resets all changes to the "operation_name" field.
func (m *RoutingStepMutation) ResetOperationName() {
	m.operation_name = nil
}

// SetOperationType sets the "operation_type" field.
func (m *RoutingStepMutation) SetOperationType(rt routingstep.OperationType) {
	m.operation_type = &rt
}

// OperationType returns the value of the "operation_type" field in the mutation.
func (m *RoutingStepMutation) OperationType() (r routingstep.OperationType, exists bool) {
	v := m.operation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationType returns the old "operation_type" field's value of the RoutingStep entity.
// If the RoutingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingStepMutation) OldOperationType(ctx context.Context) (v routingstep.OperationType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationType: %w", err)
	}
	return oldValue.OperationType, nil
}

// ResetOperationType resets all changes to the "operation_type" field.
func (m *RoutingStepMutation) ResetOperationType() {
	m.operation_type = nil
}

// SetOperationCode sets the "operation_code" field.
func (m *RoutingStepMutation) SetOperationCode(s string) {
	m.operation_code = &s
}

// OperationCode returns the value of the "operation_code" field in the mutation.
func (m *RoutingStepMutation) OperationCode() (r string, exists bool) {
	v := m.operation_code
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationCode returns the old "operation_code" field's value of the RoutingStep entity.
// If the RoutingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingStepMutation) OldOperationCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationCode: %w", err)
	}
	return oldValue.OperationCode, nil
}

// ClearOperationCode clears the value of the "operation_code" field.
func (m *RoutingStepMutation) ClearOperationCode() {
	m.operation_code = nil
	m.clearedFields[routingstep.FieldOperationCode] = struct{}{}
}

// OperationCodeCleared returns if the "operation_code" field was cleared in this mutation.
func (m *RoutingStepMutation) OperationCodeCleared() bool {
	_, ok := m.clearedFields[routingstep.FieldOperationCode]
	return ok
}

// ResetOperationCode resets all changes to the "operation_code" field.
func (m *RoutingStepMutation) ResetOperationCode() {
	m.operation_code = nil
	delete(m.clearedFields, routingstep.FieldOperationCode)
}

// SetDescription sets the "description" field.
func (m *RoutingStepMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RoutingStepMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the RoutingStep entity.
// If the RoutingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingStepMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *RoutingStepMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[routingstep.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RoutingStepMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[routingstep.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RoutingStepMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, routingstep.FieldDescription)
}

// SetTargetQty sets the "target_qty" field.
func (m *RoutingStepMutation) SetTargetQty(f float64) {
	m.target_qty = &f
	m.addtarget_qty = nil
}

// TargetQty returns the value of the "target_qty" field in the mutation.
func (m *RoutingStepMutation) TargetQty() (r float64, exists bool) {
	v := m.target_qty
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetQty returns the old "target_qty" field's value of the RoutingStep entity.
// If the RoutingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingStepMutation) OldTargetQty(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetQty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetQty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetQty: %w", err)
	}
	return oldValue.TargetQty, nil
}

// AddTargetQty adds f to the "target_qty" field.
func (m *RoutingStepMutation) AddTargetQty(f float64) {
	if m.addtarget_qty != nil {
		*m.addtarget_qty += f
	} else {
		m.addtarget_qty = &f
	}
}

// AddedTargetQty returns the value that was added to the "target_qty" field in this mutation.
func (m *RoutingStepMutation) AddedTargetQty() (r float64, exists bool) {
	v := m.addtarget_qty
	if v == nil {
		return
	}
	return *v, true
}

// ClearTargetQty clears the value of the "target_qty" field.
func (m *RoutingStepMutation) ClearTargetQty() {
	m.target_qty = nil
	m.addtarget_qty = nil
	m.clearedFields[routingstep.FieldTargetQty] = struct{}{}
}

// TargetQtyCleared returns if the "target_qty" field was cleared in this mutation.
func (m *RoutingStepMutation) TargetQtyCleared() bool {
	_, ok := m.clearedFields[routingstep.FieldTargetQty]
	return ok
}

// ResetTargetQty resets all changes to the "target_qty" field.
func (m *RoutingStepMutation) ResetTargetQty() {
	m.target_qty = nil
	m.addtarget_qty = nil
	delete(m.clearedFields, routingstep.FieldTargetQty)
}

// SetEstimatedDurationMinutes sets the "estimated_duration_minutes" field.
func (m *RoutingStepMutation) SetEstimatedDurationMinutes(i int) {
	m.estimated_duration_minutes = &i
	m.addestimated_duration_minutes = nil
}

// EstimatedDurationMinutes returns the value of the "estimated_duration_minutes" field in the mutation.
func (m *RoutingStepMutation) EstimatedDurationMinutes() (r int, exists bool) {
	v := m.estimated_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedDurationMinutes returns the old "estimated_duration_minutes" field's value of the RoutingStep entity.
// If the RoutingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingStepMutation) OldEstimatedDurationMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedDurationMinutes: %w", err)
	}
	return oldValue.EstimatedDurationMinutes, nil
}

// AddEstimatedDurationMinutes adds i to the "estimated_duration_minutes" field.
func (m *RoutingStepMutation) AddEstimatedDurationMinutes(i int) {
	if m.addestimated_duration_minutes != nil {
		*m.addestimated_duration_minutes += i
	} else {
		m.addestimated_duration_minutes = &i
	}
}

// AddedEstimatedDurationMinutes returns the value that was added to the "estimated_duration_minutes" field in this mutation.
func (m *RoutingStepMutation) AddedEstimatedDurationMinutes() (r int, exists bool) {
	v := m.addestimated_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearEstimatedDurationMinutes clears the value of the "estimated_duration_minutes" field.
func (m *RoutingStepMutation) ClearEstimatedDurationMinutes() {
	m.estimated_duration_minutes = nil
	m.addestimated_duration_minutes = nil
	m.clearedFields[routingstep.FieldEstimatedDurationMinutes] = struct{}{}
}

// EstimatedDurationMinutesCleared returns if the "estimated_duration_minutes" field was cleared in this mutation.
func (m *RoutingStepMutation) EstimatedDurationMinutesCleared() bool {
	_, ok := m.clearedFields[routingstep.FieldEstimatedDurationMinutes]
	return ok
}

// ResetEstimatedDurationMinutes resets all changes to the "estimated_duration_minutes" field.
func (m *RoutingStepMutation) ResetEstimatedDurationMinutes() {
	m.estimated_duration_minutes = nil
	m.addestimated_duration_minutes = nil
	delete(m.clearedFields, routingstep.FieldEstimatedDurationMinutes)
}

// SetIsParallel sets the "is_parallel" field.
func (m *RoutingStepMutation) SetIsParallel(b bool) {
	m.is_parallel = &b
}

// IsParallel returns the value of the "is_parallel" field in the mutation.
func (m *RoutingStepMutation) IsParallel() (r bool, exists bool) {
	v := m.is_parallel
	if v == nil {
		return
	}
	return *v, true
}

// OldIsParallel returns the old "is_parallel" field's value of the RoutingStep entity.
// If the RoutingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingStepMutation) OldIsParallel(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsParallel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsParallel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsParallel: %w", err)
	}
	return oldValue.IsParallel, nil
}

// ResetIsParallel resets all changes to the "is_parallel" field.
func (m *RoutingStepMutation) ResetIsParallel() {
	m.is_parallel = nil
}

// SetMandatory sets the "mandatory" field.
func (m *RoutingStepMutation) SetMandatory(b bool) {
	m.mandatory = &b
}

// Mandatory returns the value of the "mandatory" field in the mutation.
func (m *RoutingStepMutation) Mandatory() (r bool, exists bool) {
	v := m.mandatory
	if v == nil {
		return
	}
	return *v, true
}

// OldMandatory returns the old "mandatory" field's value of the RoutingStep entity.
// If the RoutingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingStepMutation) OldMandatory(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMandatory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMandatory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMandatory: %w", err)
	}
	return oldValue.Mandatory, nil
}

// ResetMandatory resets all changes to the "mandatory" field.
func (m *RoutingStepMutation) ResetMandatory() {
	m.mandatory = nil
}

// SetProducesOutputBatch sets the "produces_output_batch" field.
func (m *RoutingStepMutation) SetProducesOutputBatch(b bool) {
	m.produces_output_batch = &b
}

// ProducesOutputBatch returns the value of the "produces_output_batch" field in the mutation.
func (m *RoutingStepMutation) ProducesOutputBatch() (r bool, exists bool) {
	v := m.produces_output_batch
	if v == nil {
		return
	}
	return *v, true
}

// OldProducesOutputBatch returns the old "produces_output_batch" field's value of the RoutingStep entity.
// If the RoutingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingStepMutation) OldProducesOutputBatch(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProducesOutputBatch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProducesOutputBatch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProducesOutputBatch: %w", err)
	}
	return oldValue.ProducesOutputBatch, nil
}

// ResetProducesOutputBatch resets all changes to the "produces_output_batch" field.
func (m *RoutingStepMutation) ResetProducesOutputBatch() {
	m.produces_output_batch = nil
}

// SetAllowsSplit sets the "allows_split" field.
func (m *RoutingStepMutation) SetAllowsSplit(b bool) {
	m.allows_split = &b
}

// AllowsSplit returns the value of the "allows_split" field in the mutation.
func (m *RoutingStepMutation) AllowsSplit() (r bool, exists bool) {
	v := m.allows_split
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowsSplit returns the old "allows_split" field's value of the RoutingStep entity.
// If the RoutingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingStepMutation) OldAllowsSplit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowsSplit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowsSplit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowsSplit: %w", err)
	}
	return oldValue.AllowsSplit, nil
}

// ResetAllowsSplit resets all changes to the "allows_split" field.
func (m *RoutingStepMutation) ResetAllowsSplit() {
	m.allows_split = nil
}

// SetAllowsMerge sets the "allows_merge" field.
func (m *RoutingStepMutation) SetAllowsMerge(b bool) {
	m.allows_merge = &b
}

// AllowsMerge returns the value of the "allows_merge" field in the mutation.
func (m *RoutingStepMutation) AllowsMerge() (r bool, exists bool) {
	v := m.allows_merge
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowsMerge returns the old "allows_merge" field's value of the RoutingStep entity.
// If the RoutingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingStepMutation) OldAllowsMerge(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowsMerge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowsMerge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowsMerge: %w", err)
	}
	return oldValue.AllowsMerge, nil
}

// ResetAllowsMerge resets all changes to the "allows_merge" field.
func (m *RoutingStepMutation) ResetAllowsMerge() {
	m.allows_merge = nil
}

// SetDisplayStatus sets the "display_status" field.
func (m *RoutingStepMutation) SetDisplayStatus(s string) {
	m.display_status = &s
}

// DisplayStatus returns the value of the "display_status" field in the mutation.
func (m *RoutingStepMutation) DisplayStatus() (r string, exists bool) {
	v := m.display_status
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayStatus returns the old "display_status" field's value of the RoutingStep entity.
// If the RoutingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingStepMutation) OldDisplayStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayStatus: %w", err)
	}
	return oldValue.DisplayStatus, nil
}

// ClearDisplayStatus clears the value of the "display_status" field.
func (m *RoutingStepMutation) ClearDisplayStatus() {
	m.display_status = nil
	m.clearedFields[routingstep.FieldDisplayStatus] = struct{}{}
}

// DisplayStatusCleared returns if the "display_status" field was cleared in this mutation.
func (m *RoutingStepMutation) DisplayStatusCleared() bool {
	_, ok := m.clearedFields[routingstep.FieldDisplayStatus]
	return ok
}

// ResetDisplayStatus resets all changes to the "display_status" field.
func (m *RoutingStepMutation) ResetDisplayStatus() {
	m.display_status = nil
	delete(m.clearedFields, routingstep.FieldDisplayStatus)
}

// SetTemplateID sets the "template" edge to the ProcessTemplate entity by id.
func (m *RoutingStepMutation) SetTemplateID(id int) {
	m.template = &id
}

// ClearTemplate clears the "template" edge to the ProcessTemplate entity.
func (m *RoutingStepMutation) ClearTemplate() {
	m.clearedtemplate = true
}

// TemplateCleared reports if the "template" edge to the ProcessTemplate entity was cleared.
func (m *RoutingStepMutation) TemplateCleared() bool {
	return m.clearedtemplate
}

// TemplateID returns the "template" edge ID in the mutation.
func (m *RoutingStepMutation) TemplateID() (id int, exists bool) {
	if m.template != nil {
		return *m.template, true
	}
	return
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *RoutingStepMutation) TemplateIDs() (ids []int) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *RoutingStepMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// Where appends a list predicates to the RoutingStepMutation builder.
func (m *RoutingStepMutation) Where(ps ...predicate.RoutingStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoutingStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoutingStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoutingStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoutingStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoutingStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoutingStep).
func (m *RoutingStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoutingStepMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, routingstep.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, routingstep.FieldUpdatedAt)
	}
	if m.sequence_number != nil {
		fields = append(fields, routingstep.FieldSequenceNumber)
	}
	if m.operation_name != nil {
		fields = append(fields, routingstep.FieldOperationName)
	}
	if m.operation_type != nil {
		fields = append(fields, routingstep.FieldOperationType)
	}
	if m.operation_code != nil {
		fields = append(fields, routingstep.FieldOperationCode)
	}
	if m.description != nil {
		fields = append(fields, routingstep.FieldDescription)
	}
	if m.target_qty != nil {
		fields = append(fields, routingstep.FieldTargetQty)
	}
	if m.estimated_duration_minutes != nil {
		fields = append(fields, routingstep.FieldEstimatedDurationMinutes)
	}
	if m.is_parallel != nil {
		fields = append(fields, routingstep.FieldIsParallel)
	}
	if m.mandatory != nil {
		fields = append(fields, routingstep.FieldMandatory)
	}
	if m.produces_output_batch != nil {
		fields = append(fields, routingstep.FieldProducesOutputBatch)
	}
	if m.allows_split != nil {
		fields = append(fields, routingstep.FieldAllowsSplit)
	}
	if m.allows_merge != nil {
		fields = append(fields, routingstep.FieldAllowsMerge)
	}
	if m.display_status != nil {
		fields = append(fields, routingstep.FieldDisplayStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoutingStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case routingstep.FieldCreatedAt:
		return m.CreatedAt()
	case routingstep.FieldUpdatedAt:
		return m.UpdatedAt()
	case routingstep.FieldSequenceNumber:
		return m.SequenceNumber()
	case routingstep.FieldOperationName:
		return m.OperationName()
	case routingstep.FieldOperationType:
		return m.OperationType()
	case routingstep.FieldOperationCode:
		return m.OperationCode()
	case routingstep.FieldDescription:
		return m.Description()
	case routingstep.FieldTargetQty:
		return m.TargetQty()
	case routingstep.FieldEstimatedDurationMinutes:
		return m.EstimatedDurationMinutes()
	case routingstep.FieldIsParallel:
		return m.IsParallel()
	case routingstep.FieldMandatory:
		return m.Mandatory()
	case routingstep.FieldProducesOutputBatch:
		return m.ProducesOutputBatch()
	case routingstep.FieldAllowsSplit:
		return m.AllowsSplit()
	case routingstep.FieldAllowsMerge:
		return m.AllowsMerge()
	case routingstep.FieldDisplayStatus:
		return m.DisplayStatus()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoutingStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case routingstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case routingstep.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case routingstep.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case routingstep.FieldOperationName:
		return m.OldOperationName(ctx)
	case routingstep.FieldOperationType:
		return m.OldOperationType(ctx)
	case routingstep.FieldOperationCode:
		return m.OldOperationCode(ctx)
	case routingstep.FieldDescription:
		return m.OldDescription(ctx)
	case routingstep.FieldTargetQty:
		return m.OldTargetQty(ctx)
	case routingstep.FieldEstimatedDurationMinutes:
		return m.OldEstimatedDurationMinutes(ctx)
	case routingstep.FieldIsParallel:
		return m.OldIsParallel(ctx)
	case routingstep.FieldMandatory:
		return m.OldMandatory(ctx)
	case routingstep.FieldProducesOutputBatch:
		return m.OldProducesOutputBatch(ctx)
	case routingstep.FieldAllowsSplit:
		return m.OldAllowsSplit(ctx)
	case routingstep.FieldAllowsMerge:
		return m.OldAllowsMerge(ctx)
	case routingstep.FieldDisplayStatus:
		return m.OldDisplayStatus(ctx)
	}
	return nil, fmt.Errorf("unknown RoutingStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutingStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case routingstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case routingstep.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case routingstep.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case routingstep.FieldOperationName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationName(v)
		return nil
	case routingstep.FieldOperationType:
		v, ok := value.(routingstep.OperationType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationType(v)
		return nil
	case routingstep.FieldOperationCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationCode(v)
		return nil
	case routingstep.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case routingstep.FieldTargetQty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetQty(v)
		return nil
	case routingstep.FieldEstimatedDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedDurationMinutes(v)
		return nil
	case routingstep.FieldIsParallel:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsParallel(v)
		return nil
	case routingstep.FieldMandatory:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMandatory(v)
		return nil
	case routingstep.FieldProducesOutputBatch:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProducesOutputBatch(v)
		return nil
	case routingstep.FieldAllowsSplit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowsSplit(v)
		return nil
	case routingstep.FieldAllowsMerge:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowsMerge(v)
		return nil
	case routingstep.FieldDisplayStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayStatus(v)
		return nil
	}
	return fmt.Errorf("unknown RoutingStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoutingStepMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, routingstep.FieldSequenceNumber)
	}
	if m.addtarget_qty != nil {
		fields = append(fields, routingstep.FieldTargetQty)
	}
	if m.addestimated_duration_minutes != nil {
		fields = append(fields, routingstep.FieldEstimatedDurationMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoutingStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case routingstep.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	case routingstep.FieldTargetQty:
		return m.AddedTargetQty()
	case routingstep.FieldEstimatedDurationMinutes:
		return m.AddedEstimatedDurationMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutingStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case routingstep.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	case routingstep.FieldTargetQty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetQty(v)
		return nil
	case routingstep.FieldEstimatedDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedDurationMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown RoutingStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoutingStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(routingstep.FieldOperationCode) {
		fields = append(fields, routingstep.FieldOperationCode)
	}
	if m.FieldCleared(routingstep.FieldDescription) {
		fields = append(fields, routingstep.FieldDescription)
	}
	if m.FieldCleared(routingstep.FieldTargetQty) {
		fields = append(fields, routingstep.FieldTargetQty)
	}
	if m.FieldCleared(routingstep.FieldEstimatedDurationMinutes) {
		fields = append(fields, routingstep.FieldEstimatedDurationMinutes)
	}
	if m.FieldCleared(routingstep.FieldDisplayStatus) {
		fields = append(fields, routingstep.FieldDisplayStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoutingStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoutingStepMutation) ClearField(name string) error {
	switch name {
	case routingstep.FieldOperationCode:
		m.ClearOperationCode()
		return nil
	case routingstep.FieldDescription:
		m.ClearDescription()
		return nil
	case routingstep.FieldTargetQty:
		m.ClearTargetQty()
		return nil
	case routingstep.FieldEstimatedDurationMinutes:
		m.ClearEstimatedDurationMinutes()
		return nil
	case routingstep.FieldDisplayStatus:
		m.ClearDisplayStatus()
		return nil
	}
	return fmt.Errorf("unknown RoutingStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoutingStepMutation) ResetField(name string) error {
	switch name {
	case routingstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case routingstep.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case routingstep.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case routingstep.FieldOperationName:
		m.ResetOperationName()
		return nil
	case routingstep.FieldOperationType:
		m.ResetOperationType()
		return nil
	case routingstep.FieldOperationCode:
		m.ResetOperationCode()
		return nil
	case routingstep.FieldDescription:
		m.ResetDescription()
		return nil
	case routingstep.FieldTargetQty:
		m.ResetTargetQty()
		return nil
	case routingstep.FieldEstimatedDurationMinutes:
		m.ResetEstimatedDurationMinutes()
		return nil
	case routingstep.FieldIsParallel:
		m.ResetIsParallel()
		return nil
	case routingstep.FieldMandatory:
		m.ResetMandatory()
		return nil
	case routingstep.FieldProducesOutputBatch:
		m.ResetProducesOutputBatch()
		return nil
	case routingstep.FieldAllowsSplit:
		m.ResetAllowsSplit()
		return nil
	case routingstep.FieldAllowsMerge:
		m.ResetAllowsMerge()
		return nil
	case routingstep.FieldDisplayStatus:
		m.ResetDisplayStatus()
		return nil
	}
	return fmt.Errorf("unknown RoutingStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoutingStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.template != nil {
		edges = append(edges, routingstep.EdgeTemplate)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoutingStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case routingstep.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoutingStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoutingStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoutingStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtemplate {
		edges = append(edges, routingstep.EdgeTemplate)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoutingStepMutation) EdgeCleared(name string) bool {
	switch name {
	case routingstep.EdgeTemplate:
		return m.clearedtemplate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoutingStepMutation) ClearEdge(name string) error {
	switch name {
	case routingstep.EdgeTemplate:
		m.ClearTemplate()
		return nil
	}
	return fmt.Errorf("unknown RoutingStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoutingStepMutation) ResetEdge(name string) error {
	switch name {
	case routingstep.EdgeTemplate:
		m.ResetTemplate()
		return nil
	}
	return fmt.Errorf("unknown RoutingStep edge %s", name)
}
