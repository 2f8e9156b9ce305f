// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"routesmith.io/routesmith/ent/processtemplate"
)

// ProcessTemplate is the model entity for the ProcessTemplate schema.
type ProcessTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Code holds the value of the "code" field.
	Code string `json:"code,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// ProductSku holds the value of the "product_sku" field.
	ProductSku string `json:"product_sku,omitempty"`
	// Status holds the value of the "status" field.
	Status processtemplate.Status `json:"status,omitempty"`
	// Version holds the value of the "version" field.
	Version string `json:"version,omitempty"`
	// EffectiveFrom holds the value of the "effective_from" field.
	EffectiveFrom *time.Time `json:"effective_from,omitempty"`
	// EffectiveTo holds the value of the "effective_to" field.
	EffectiveTo *time.Time `json:"effective_to,omitempty"`
	// PredecessorID holds the value of the "predecessor_id" field.
	PredecessorID *int `json:"predecessor_id,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProcessTemplateQuery when eager-loading is set.
	Edges        ProcessTemplateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProcessTemplateEdges holds the relations/edges for other nodes in the graph.
type ProcessTemplateEdges struct {
	// Steps holds the value of the steps edge.
	Steps []*RoutingStep `json:"steps,omitempty"`
	// Predecessor holds the value of the predecessor edge.
	Predecessor *ProcessTemplate `json:"predecessor,omitempty"`
	// Successors holds the value of the successors edge.
	Successors []*ProcessTemplate `json:"successors,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e ProcessTemplateEdges) StepsOrErr() ([]*RoutingStep, error) {
	if e.loadedTypes[0] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// PredecessorOrErr returns the Predecessor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProcessTemplateEdges) PredecessorOrErr() (*ProcessTemplate, error) {
	if e.Predecessor != nil {
		return e.Predecessor, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: processtemplate.Label}
	}
	return nil, &NotLoadedError{edge: "predecessor"}
}

// SuccessorsOrErr returns the Successors value or an error if the edge
// was not loaded in eager-loading.
func (e ProcessTemplateEdges) SuccessorsOrErr() ([]*ProcessTemplate, error) {
	if e.loadedTypes[2] {
		return e.Successors, nil
	}
	return nil, &NotLoadedError{edge: "successors"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processtemplate.FieldID, processtemplate.FieldPredecessorID:
			values[i] = new(sql.NullInt64)
		case processtemplate.FieldCode, processtemplate.FieldName, processtemplate.FieldDescription, processtemplate.FieldProductSku, processtemplate.FieldStatus, processtemplate.FieldVersion, processtemplate.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case processtemplate.FieldCreatedAt, processtemplate.FieldUpdatedAt, processtemplate.FieldEffectiveFrom, processtemplate.FieldEffectiveTo:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessTemplate fields.
func (_m *ProcessTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processtemplate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case processtemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case processtemplate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case processtemplate.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case processtemplate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case processtemplate.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case processtemplate.FieldProductSku:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_sku", values[i])
			} else if value.Valid {
				_m.ProductSku = value.String
			}
		case processtemplate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = processtemplate.Status(value.String)
			}
		case processtemplate.FieldVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.String
			}
		case processtemplate.FieldEffectiveFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field effective_from", values[i])
			} else if value.Valid {
				_m.EffectiveFrom = new(time.Time)
				*_m.EffectiveFrom = value.Time
			}
		case processtemplate.FieldEffectiveTo:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field effective_to", values[i])
			} else if value.Valid {
				_m.EffectiveTo = new(time.Time)
				*_m.EffectiveTo = value.Time
			}
		case processtemplate.FieldPredecessorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field predecessor_id", values[i])
			} else if value.Valid {
				_m.PredecessorID = new(int)
				*_m.PredecessorID = int(value.Int64)
			}
		case processtemplate.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySteps queries the "steps" edge of the ProcessTemplate entity.
func (_m *ProcessTemplate) QuerySteps() *RoutingStepQuery {
	return NewProcessTemplateClient(_m.config).QuerySteps(_m)
}

// QueryPredecessor queries the "predecessor" edge of the ProcessTemplate entity.
func (_m *ProcessTemplate) QueryPredecessor() *ProcessTemplateQuery {
	return NewProcessTemplateClient(_m.config).QueryPredecessor(_m)
}

// QuerySuccessors queries the "successors" edge of the ProcessTemplate entity.
func (_m *ProcessTemplate) QuerySuccessors() *ProcessTemplateQuery {
	return NewProcessTemplateClient(_m.config).QuerySuccessors(_m)
}

// Update returns a builder for updating this ProcessTemplate.
// Note that you need to call ProcessTemplate.Unwrap() before calling this method if this ProcessTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessTemplate) Update() *ProcessTemplateUpdateOne {
	return NewProcessTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessTemplate) Unwrap() *ProcessTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("product_sku=")
	builder.WriteString(_m.ProductSku)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(_m.Version)
	builder.WriteString(", ")
	if v := _m.EffectiveFrom; v != nil {
		builder.WriteString("effective_from=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EffectiveTo; v != nil {
		builder.WriteString("effective_to=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PredecessorID; v != nil {
		builder.WriteString("predecessor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// ProcessTemplates is a parsable slice of ProcessTemplate.
type ProcessTemplates []*ProcessTemplate
