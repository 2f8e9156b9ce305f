// Code generated by ent, DO NOT EDIT.

package routingstep

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the routingstep type in the database.
	Label = "routing_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSequenceNumber holds the string denoting the sequence_number field in the database.
	FieldSequenceNumber = "sequence_number"
	// FieldOperationName holds the string denoting the operation_name field in the database.
	FieldOperationName = "operation_name"
	// FieldOperationType holds the string denoting the operation_type field in the database.
	FieldOperationType = "operation_type"
	// FieldOperationCode holds the string denoting the operation_code field in the database.
	FieldOperationCode = "operation_code"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldTargetQty holds the string denoting the target_qty field in the database.
	FieldTargetQty = "target_qty"
	// FieldEstimatedDurationMinutes holds the string denoting the estimated_duration_minutes field in the database.
	FieldEstimatedDurationMinutes = "estimated_duration_minutes"
	// FieldIsParallel holds the string denoting the is_parallel field in the database.
	FieldIsParallel = "is_parallel"
	// FieldMandatory holds the string denoting the mandatory field in the database.
	FieldMandatory = "mandatory"
	// FieldProducesOutputBatch holds the string denoting the produces_output_batch field in the database.
	FieldProducesOutputBatch = "produces_output_batch"
	// FieldAllowsSplit holds the string denoting the allows_split field in the database.
	FieldAllowsSplit = "allows_split"
	// FieldAllowsMerge holds the string denoting the allows_merge field in the database.
	FieldAllowsMerge = "allows_merge"
	// FieldDisplayStatus holds the string denoting the display_status field in the database.
	FieldDisplayStatus = "display_status"
	// EdgeTemplate holds the string denoting the template edge name in mutations.
	EdgeTemplate = "template"
	// Table holds the table name of the routingstep in the database.
	Table = "routing_steps"
	// TemplateTable is the table that holds the template relation/edge.
	TemplateTable = "routing_steps"
	// TemplateInverseTable is the table name for the ProcessTemplate entity.
	// It exists in this package in order to avoid circular dependency with the "processtemplate" package.
	TemplateInverseTable = "process_templates"
	// TemplateColumn is the table column denoting the template relation/edge.
	TemplateColumn = "process_template_steps"
)

// Columns holds all SQL columns for routingstep fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSequenceNumber,
	FieldOperationName,
	FieldOperationType,
	FieldOperationCode,
	FieldDescription,
	FieldTargetQty,
	FieldEstimatedDurationMinutes,
	FieldIsParallel,
	FieldMandatory,
	FieldProducesOutputBatch,
	FieldAllowsSplit,
	FieldAllowsMerge,
	FieldDisplayStatus,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "routing_steps"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"process_template_steps",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// SequenceNumberValidator is a validator for the "sequence_number" field. It is called by the builders before save.
	SequenceNumberValidator func(int) error
	// OperationNameValidator is a validator for the "operation_name" field. It is called by the builders before save.
	OperationNameValidator func(string) error
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// DefaultIsParallel holds the default value on creation for the "is_parallel" field.
	DefaultIsParallel bool
	// DefaultMandatory holds the default value on creation for the "mandatory" field.
	DefaultMandatory bool
	// DefaultProducesOutputBatch holds the default value on creation for the "produces_output_batch" field.
	DefaultProducesOutputBatch bool
	// DefaultAllowsSplit holds the default value on creation for the "allows_split" field.
	DefaultAllowsSplit bool
	// DefaultAllowsMerge holds the default value on creation for the "allows_merge" field.
	DefaultAllowsMerge bool
)

// OperationType defines the type for the "operation_type" enum field.
type OperationType string

// OperationTypePROCESSING is the default value of the OperationType enum.
const DefaultOperationType = OperationTypePROCESSING

// OperationType values.
const (
	OperationTypePROCESSING OperationType = "PROCESSING"
	OperationTypeINSPECTION OperationType = "INSPECTION"
	OperationTypeASSEMBLY   OperationType = "ASSEMBLY"
	OperationTypeTRANSPORT  OperationType = "TRANSPORT"
	OperationTypePACKAGING  OperationType = "PACKAGING"
	OperationTypeREWORK     OperationType = "REWORK"
)

func (ot OperationType) String() string {
	return string(ot)
}

// OperationTypeValidator is a validator for the "operation_type" field enum values. It is called by the builders before save.
func OperationTypeValidator(ot OperationType) error {
	switch ot {
	case OperationTypePROCESSING, OperationTypeINSPECTION, OperationTypeASSEMBLY, OperationTypeTRANSPORT, OperationTypePACKAGING, OperationTypeREWORK:
		return nil
	default:
		return fmt.Errorf("routingstep: invalid enum value for operation_type field: %q", ot)
	}
}

// OrderOption defines the ordering options for the RoutingStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySequenceNumber orders the results by the sequence_number field.
func BySequenceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceNumber, opts...).ToFunc()
}

// ByOperationName orders the results by the operation_name field.
func ByOperationName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperationName, opts...).ToFunc()
}

// ByOperationType orders the results by the operation_type field.
func ByOperationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperationType, opts...).ToFunc()
}

// ByOperationCode orders the results by the operation_code field.
func ByOperationCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperationCode, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByTargetQty orders the results by the target_qty field.
func ByTargetQty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetQty, opts...).ToFunc()
}

// ByEstimatedDurationMinutes orders the results by the estimated_duration_minutes field.
func ByEstimatedDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedDurationMinutes, opts...).ToFunc()
}

// ByIsParallel orders the results by the is_parallel field.
func ByIsParallel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsParallel, opts...).ToFunc()
}

// ByMandatory orders the results by the mandatory field.
func ByMandatory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMandatory, opts...).ToFunc()
}

// ByProducesOutputBatch orders the results by the produces_output_batch field.
func ByProducesOutputBatch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProducesOutputBatch, opts...).ToFunc()
}

// ByAllowsSplit orders the results by the allows_split field.
func ByAllowsSplit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowsSplit, opts...).ToFunc()
}

// ByAllowsMerge orders the results by the allows_merge field.
func ByAllowsMerge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowsMerge, opts...).ToFunc()
}

// ByDisplayStatus orders the results by the display_status field.
func ByDisplayStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayStatus, opts...).ToFunc()
}

// ByTemplateField orders the results by template field.
func ByTemplateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTemplateStep(), sql.OrderByField(field, opts...))
	}
}
func newTemplateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TemplateInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TemplateTable, TemplateColumn),
	)
}
