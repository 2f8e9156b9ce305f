// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"routesmith.io/routesmith/ent/processtemplate"
	"routesmith.io/routesmith/ent/routingstep"
)

// RoutingStep is the model entity for the RoutingStep schema.
type RoutingStep struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SequenceNumber holds the value of the "sequence_number" field.
	SequenceNumber int `json:"sequence_number,omitempty"`
	// OperationName holds the value of the "operation_name" field.
	OperationName string `json:"operation_name,omitempty"`
	// OperationType holds the value of the "operation_type" field.
	OperationType routingstep.OperationType `json:"operation_type,omitempty"`
	// OperationCode holds the value of the "operation_code" field.
	OperationCode string `json:"operation_code,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// TargetQty holds the value of the "target_qty" field.
	TargetQty *float64 `json:"target_qty,omitempty"`
	// EstimatedDurationMinutes holds the value of the "estimated_duration_minutes" field.
	EstimatedDurationMinutes *int `json:"estimated_duration_minutes,omitempty"`
	// IsParallel holds the value of the "is_parallel" field.
	IsParallel bool `json:"is_parallel,omitempty"`
	// Mandatory holds the value of the "mandatory" field.
	Mandatory bool `json:"mandatory,omitempty"`
	// ProducesOutputBatch holds the value of the "produces_output_batch" field.
	ProducesOutputBatch bool `json:"produces_output_batch,omitempty"`
	// AllowsSplit holds the value of the "allows_split" field.
	AllowsSplit bool `json:"allows_split,omitempty"`
	// AllowsMerge holds the value of the "allows_merge" field.
	AllowsMerge bool `json:"allows_merge,omitempty"`
	// DisplayStatus holds the value of the "display_status" field.
	DisplayStatus string `json:"display_status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RoutingStepQuery when eager-loading is set.
	Edges                  RoutingStepEdges `json:"edges"`
	process_template_steps *int
	selectValues           sql.SelectValues
}

// RoutingStepEdges holds the relations/edges for other nodes in the graph.
type RoutingStepEdges struct {
	// Template holds the value of the template edge.
	Template *ProcessTemplate `json:"template,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TemplateOrErr returns the Template value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RoutingStepEdges) TemplateOrErr() (*ProcessTemplate, error) {
	if e.Template != nil {
		return e.Template, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: processtemplate.Label}
	}
	return nil, &NotLoadedError{edge: "template"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoutingStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case routingstep.FieldIsParallel, routingstep.FieldMandatory, routingstep.FieldProducesOutputBatch, routingstep.FieldAllowsSplit, routingstep.FieldAllowsMerge:
			values[i] = new(sql.NullBool)
		case routingstep.FieldTargetQty:
			values[i] = new(sql.NullFloat64)
		case routingstep.FieldID, routingstep.FieldSequenceNumber, routingstep.FieldEstimatedDurationMinutes:
			values[i] = new(sql.NullInt64)
		case routingstep.FieldOperationName, routingstep.FieldOperationType, routingstep.FieldOperationCode, routingstep.FieldDescription, routingstep.FieldDisplayStatus:
			values[i] = new(sql.NullString)
		case routingstep.FieldCreatedAt, routingstep.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case routingstep.ForeignKeys[0]: // process_template_steps
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoutingStep fields.
func (_m *RoutingStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case routingstep.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case routingstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case routingstep.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case routingstep.FieldSequenceNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_number", values[i])
			} else if value.Valid {
				_m.SequenceNumber = int(value.Int64)
			}
		case routingstep.FieldOperationName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation_name", values[i])
			} else if value.Valid {
				_m.OperationName = value.String
			}
		case routingstep.FieldOperationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation_type", values[i])
			} else if value.Valid {
				_m.OperationType = routingstep.OperationType(value.String)
			}
		case routingstep.FieldOperationCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation_code", values[i])
			} else if value.Valid {
				_m.OperationCode = value.String
			}
		case routingstep.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case routingstep.FieldTargetQty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field target_qty", values[i])
			} else if value.Valid {
				_m.TargetQty = new(float64)
				*_m.TargetQty = value.Float64
			}
		case routingstep.FieldEstimatedDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_duration_minutes", values[i])
			} else if value.Valid {
				_m.EstimatedDurationMinutes = new(int)
				*_m.EstimatedDurationMinutes = int(value.Int64)
			}
		case routingstep.FieldIsParallel:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_parallel", values[i])
			} else if value.Valid {
				_m.IsParallel = value.Bool
			}
		case routingstep.FieldMandatory:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field mandatory", values[i])
			} else if value.Valid {
				_m.Mandatory = value.Bool
			}
		case routingstep.FieldProducesOutputBatch:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field produces_output_batch", values[i])
			} else if value.Valid {
				_m.ProducesOutputBatch = value.Bool
			}
		case routingstep.FieldAllowsSplit:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allows_split", values[i])
			} else if value.Valid {
				_m.AllowsSplit = value.Bool
			}
		case routingstep.FieldAllowsMerge:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allows_merge", values[i])
			} else if value.Valid {
				_m.AllowsMerge = value.Bool
			}
		case routingstep.FieldDisplayStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_status", values[i])
			} else if value.Valid {
				_m.DisplayStatus = value.String
			}
		case routingstep.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field process_template_steps", value)
			} else if value.Valid {
				_m.process_template_steps = new(int)
				*_m.process_template_steps = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RoutingStep.
// This includes values selected through modifiers, order, etc.
func (_m *RoutingStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTemplate queries the "template" edge of the RoutingStep entity.
func (_m *RoutingStep) QueryTemplate() *ProcessTemplateQuery {
	return NewRoutingStepClient(_m.config).QueryTemplate(_m)
}

// Update returns a builder for updating this RoutingStep.
// Note that you need to call RoutingStep.Unwrap() before calling this method if this RoutingStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoutingStep) Update() *RoutingStepUpdateOne {
	return NewRoutingStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoutingStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoutingStep) Unwrap() *RoutingStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoutingStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoutingStep) String() string {
	var builder strings.Builder
	builder.WriteString("RoutingStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("sequence_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceNumber))
	builder.WriteString(", ")
	builder.WriteString("operation_name=")
	builder.WriteString(_m.OperationName)
	builder.WriteString(", ")
	builder.WriteString("operation_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.OperationType))
	builder.WriteString(", ")
	builder.WriteString("operation_code=")
	builder.WriteString(_m.OperationCode)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.TargetQty; v != nil {
		builder.WriteString("target_qty=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EstimatedDurationMinutes; v != nil {
		builder.WriteString("estimated_duration_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_parallel=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsParallel))
	builder.WriteString(", ")
	builder.WriteString("mandatory=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mandatory))
	builder.WriteString(", ")
	builder.WriteString("produces_output_batch=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProducesOutputBatch))
	builder.WriteString(", ")
	builder.WriteString("allows_split=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowsSplit))
	builder.WriteString(", ")
	builder.WriteString("allows_merge=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowsMerge))
	builder.WriteString(", ")
	builder.WriteString("display_status=")
	builder.WriteString(_m.DisplayStatus)
	builder.WriteByte(')')
	return builder.String()
}

// RoutingSteps is a parsable slice of RoutingStep.
type RoutingSteps []*RoutingStep
