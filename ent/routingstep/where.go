// Code generated by ent, DO NOT EDIT.

package routingstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"routesmith.io/routesmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// SequenceNumber applies equality check predicate on the "sequence_number" field. It's identical to SequenceNumberEQ.
func SequenceNumber(v int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldSequenceNumber, v))
}

// OperationName applies equality check predicate on the "operation_name" field. It's identical to OperationNameEQ.
func OperationName(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldOperationName, v))
}

// OperationCode applies equality check predicate on the "operation_code" field. It's identical to OperationCodeEQ.
func OperationCode(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldOperationCode, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldDescription, v))
}

// TargetQty applies equality check predicate on the "target_qty" field. It's identical to TargetQtyEQ.
func TargetQty(v float64) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldTargetQty, v))
}

// EstimatedDurationMinutes applies equality check predicate on the "estimated_duration_minutes" field. It's identical to EstimatedDurationMinutesEQ.
func EstimatedDurationMinutes(v int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldEstimatedDurationMinutes, v))
}

// IsParallel applies equality check predicate on the "is_parallel" field. It's identical to IsParallelEQ.
func IsParallel(v bool) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldIsParallel, v))
}

// Mandatory applies equality check predicate on the "mandatory" field. It's identical to MandatoryEQ.
func Mandatory(v bool) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldMandatory, v))
}

// ProducesOutputBatch applies equality check predicate on the "produces_output_batch" field. It's identical to ProducesOutputBatchEQ.
func ProducesOutputBatch(v bool) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldProducesOutputBatch, v))
}

// AllowsSplit applies equality check predicate on the "allows_split" field. It's identical to AllowsSplitEQ.
func AllowsSplit(v bool) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldAllowsSplit, v))
}

// AllowsMerge applies equality check predicate on the "allows_merge" field. It's identical to AllowsMergeEQ.
func AllowsMerge(v bool) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldAllowsMerge, v))
}

// DisplayStatus applies equality check predicate on the "display_status" field. It's identical to DisplayStatusEQ.
func DisplayStatus(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldDisplayStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLTE(FieldUpdatedAt, v))
}

// SequenceNumberEQ applies the EQ predicate on the "sequence_number" field.
func SequenceNumberEQ(v int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldSequenceNumber, v))
}

// SequenceNumberNEQ applies the NEQ predicate on the "sequence_number" field.
func SequenceNumberNEQ(v int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldSequenceNumber, v))
}

// SequenceNumberIn applies the In predicate on the "sequence_number" field.
func SequenceNumberIn(vs ...int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIn(FieldSequenceNumber, vs...))
}

// SequenceNumberNotIn applies the NotIn predicate on the "sequence_number" field.
func SequenceNumberNotIn(vs ...int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotIn(FieldSequenceNumber, vs...))
}

// SequenceNumberGT applies the GT predicate on the "sequence_number" field.
func SequenceNumberGT(v int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGT(FieldSequenceNumber, v))
}

// SequenceNumberGTE applies the GTE predicate on the "sequence_number" field.
func SequenceNumberGTE(v int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGTE(FieldSequenceNumber, v))
}

// SequenceNumberLT applies the LT predicate on the "sequence_number" field.
func SequenceNumberLT(v int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLT(FieldSequenceNumber, v))
}

// SequenceNumberLTE applies the LTE predicate on the "sequence_number" field.
func SequenceNumberLTE(v int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLTE(FieldSequenceNumber, v))
}

// OperationNameEQ applies the EQ predicate on the "operation_name" field.
func OperationNameEQ(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldOperationName, v))
}

// OperationNameNEQ applies the NEQ predicate on the "operation_name" field.
func OperationNameNEQ(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldOperationName, v))
}

// OperationNameIn applies the In predicate on the "operation_name" field.
func OperationNameIn(vs ...string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIn(FieldOperationName, vs...))
}

// OperationNameNotIn applies the NotIn predicate on the "operation_name" field.
func OperationNameNotIn(vs ...string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotIn(FieldOperationName, vs...))
}

// OperationNameGT applies the GT predicate on the "operation_name" field.
func OperationNameGT(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGT(FieldOperationName, v))
}

// OperationNameGTE applies the GTE predicate on the "operation_name" field.
func OperationNameGTE(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGTE(FieldOperationName, v))
}

// OperationNameLT applies the LT predicate on the "operation_name" field.
func OperationNameLT(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLT(FieldOperationName, v))
}

// OperationNameLTE applies the LTE predicate on the "operation_name" field.
func OperationNameLTE(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLTE(FieldOperationName, v))
}

// OperationNameContains applies the Contains predicate on the "operation_name" field.
func OperationNameContains(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldContains(FieldOperationName, v))
}

// OperationNameHasPrefix applies the HasPrefix predicate on the "operation_name" field.
func OperationNameHasPrefix(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldHasPrefix(FieldOperationName, v))
}

// OperationNameHasSuffix applies the HasSuffix predicate on the "operation_name" field.
func OperationNameHasSuffix(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldHasSuffix(FieldOperationName, v))
}

// OperationNameEqualFold applies the EqualFold predicate on the "operation_name" field.
func OperationNameEqualFold(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEqualFold(FieldOperationName, v))
}

// OperationNameContainsFold applies the ContainsFold predicate on the "operation_name" field.
func OperationNameContainsFold(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldContainsFold(FieldOperationName, v))
}

// OperationTypeEQ applies the EQ predicate on the "operation_type" field.
func OperationTypeEQ(v OperationType) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldOperationType, v))
}

// OperationTypeNEQ applies the NEQ predicate on the "operation_type" field.
func OperationTypeNEQ(v OperationType) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldOperationType, v))
}

// OperationTypeIn applies the In predicate on the "operation_type" field.
func OperationTypeIn(vs ...OperationType) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIn(FieldOperationType, vs...))
}

// OperationTypeNotIn applies the NotIn predicate on the "operation_type" field.
func OperationTypeNotIn(vs ...OperationType) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotIn(FieldOperationType, vs...))
}

// OperationCodeEQ applies the EQ predicate on the "operation_code" field.
func OperationCodeEQ(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldOperationCode, v))
}

// OperationCodeNEQ applies the NEQ predicate on the "operation_code" field.
func OperationCodeNEQ(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldOperationCode, v))
}

// OperationCodeIn applies the In predicate on the "operation_code" field.
func OperationCodeIn(vs ...string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIn(FieldOperationCode, vs...))
}

// OperationCodeNotIn applies the NotIn predicate on the "operation_code" field.
func OperationCodeNotIn(vs ...string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotIn(FieldOperationCode, vs...))
}

// OperationCodeGT applies the GT predicate on the "operation_code" field.
func OperationCodeGT(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGT(FieldOperationCode, v))
}

// OperationCodeGTE applies the GTE predicate on the "operation_code" field.
func OperationCodeGTE(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGTE(FieldOperationCode, v))
}

// OperationCodeLT applies the LT predicate on the "operation_code" field.
func OperationCodeLT(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLT(FieldOperationCode, v))
}

// OperationCodeLTE applies the LTE predicate on the "operation_code" field.
func OperationCodeLTE(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLTE(FieldOperationCode, v))
}

// OperationCodeContains applies the Contains predicate on the "operation_code" field.
func OperationCodeContains(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldContains(FieldOperationCode, v))
}

// OperationCodeHasPrefix applies the HasPrefix predicate on the "operation_code" field.
func OperationCodeHasPrefix(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldHasPrefix(FieldOperationCode, v))
}

// OperationCodeHasSuffix applies the HasSuffix predicate on the "operation_code" field.
func OperationCodeHasSuffix(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldHasSuffix(FieldOperationCode, v))
}

// OperationCodeIsNil applies the IsNil predicate on the "operation_code" field.
func OperationCodeIsNil() predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIsNull(FieldOperationCode))
}

// OperationCodeNotNil applies the NotNil predicate on the "operation_code" field.
func OperationCodeNotNil() predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotNull(FieldOperationCode))
}

// OperationCodeEqualFold applies the EqualFold predicate on the "operation_code" field.
func OperationCodeEqualFold(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEqualFold(FieldOperationCode, v))
}

// OperationCodeContainsFold applies the ContainsFold predicate on the "operation_code" field.
func OperationCodeContainsFold(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldContainsFold(FieldOperationCode, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldContainsFold(FieldDescription, v))
}

// TargetQtyEQ applies the EQ predicate on the "target_qty" field.
func TargetQtyEQ(v float64) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldTargetQty, v))
}

// TargetQtyNEQ applies the NEQ predicate on the "target_qty" field.
func TargetQtyNEQ(v float64) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldTargetQty, v))
}

// TargetQtyIn applies the In predicate on the "target_qty" field.
func TargetQtyIn(vs ...float64) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIn(FieldTargetQty, vs...))
}

// TargetQtyNotIn applies the NotIn predicate on the "target_qty" field.
func TargetQtyNotIn(vs ...float64) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotIn(FieldTargetQty, vs...))
}

// TargetQtyGT applies the GT predicate on the "target_qty" field.
func TargetQtyGT(v float64) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGT(FieldTargetQty, v))
}

// TargetQtyGTE applies the GTE predicate on the "target_qty" field.
func TargetQtyGTE(v float64) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGTE(FieldTargetQty, v))
}

// TargetQtyLT applies the LT predicate on the "target_qty" field.
func TargetQtyLT(v float64) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLT(FieldTargetQty, v))
}

// TargetQtyLTE applies the LTE predicate on the "target_qty" field.
func TargetQtyLTE(v float64) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLTE(FieldTargetQty, v))
}

// TargetQtyIsNil applies the IsNil predicate on the "target_qty" field.
func TargetQtyIsNil() predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIsNull(FieldTargetQty))
}

// TargetQtyNotNil applies the NotNil predicate on the "target_qty" field.
func TargetQtyNotNil() predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotNull(FieldTargetQty))
}

// EstimatedDurationMinutesEQ applies the EQ predicate on the "estimated_duration_minutes" field.
func EstimatedDurationMinutesEQ(v int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldEstimatedDurationMinutes, v))
}

// EstimatedDurationMinutesNEQ applies the NEQ predicate on the "estimated_duration_minutes" field.
func EstimatedDurationMinutesNEQ(v int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldEstimatedDurationMinutes, v))
}

// EstimatedDurationMinutesIn applies the In predicate on the "estimated_duration_minutes" field.
func EstimatedDurationMinutesIn(vs ...int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIn(FieldEstimatedDurationMinutes, vs...))
}

// EstimatedDurationMinutesNotIn applies the NotIn predicate on the "estimated_duration_minutes" field.
func EstimatedDurationMinutesNotIn(vs ...int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotIn(FieldEstimatedDurationMinutes, vs...))
}

// EstimatedDurationMinutesGT applies the GT predicate on the "estimated_duration_minutes" field.
func EstimatedDurationMinutesGT(v int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGT(FieldEstimatedDurationMinutes, v))
}

// EstimatedDurationMinutesGTE applies the GTE predicate on the "estimated_duration_minutes" field.
func EstimatedDurationMinutesGTE(v int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGTE(FieldEstimatedDurationMinutes, v))
}

// EstimatedDurationMinutesLT applies the LT predicate on the "estimated_duration_minutes" field.
func EstimatedDurationMinutesLT(v int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLT(FieldEstimatedDurationMinutes, v))
}

// EstimatedDurationMinutesLTE applies the LTE predicate on the "estimated_duration_minutes" field.
func EstimatedDurationMinutesLTE(v int) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLTE(FieldEstimatedDurationMinutes, v))
}

// EstimatedDurationMinutesIsNil applies the IsNil predicate on the "estimated_duration_minutes" field.
func EstimatedDurationMinutesIsNil() predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIsNull(FieldEstimatedDurationMinutes))
}

// EstimatedDurationMinutesNotNil applies the NotNil predicate on the "estimated_duration_minutes" field.
func EstimatedDurationMinutesNotNil() predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotNull(FieldEstimatedDurationMinutes))
}

// IsParallelEQ applies the EQ predicate on the "is_parallel" field.
func IsParallelEQ(v bool) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldIsParallel, v))
}

// IsParallelNEQ applies the NEQ predicate on the "is_parallel" field.
func IsParallelNEQ(v bool) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldIsParallel, v))
}

// MandatoryEQ applies the EQ predicate on the "mandatory" field.
func MandatoryEQ(v bool) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldMandatory, v))
}

// MandatoryNEQ applies the NEQ predicate on the "mandatory" field.
func MandatoryNEQ(v bool) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldMandatory, v))
}

// ProducesOutputBatchEQ applies the EQ predicate on the "produces_output_batch" field.
func ProducesOutputBatchEQ(v bool) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldProducesOutputBatch, v))
}

// ProducesOutputBatchNEQ applies the NEQ predicate on the "produces_output_batch" field.
func ProducesOutputBatchNEQ(v bool) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldProducesOutputBatch, v))
}

// AllowsSplitEQ applies the EQ predicate on the "allows_split" field.
func AllowsSplitEQ(v bool) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldAllowsSplit, v))
}

// AllowsSplitNEQ applies the NEQ predicate on the "allows_split" field.
func AllowsSplitNEQ(v bool) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldAllowsSplit, v))
}

// AllowsMergeEQ applies the EQ predicate on the "allows_merge" field.
func AllowsMergeEQ(v bool) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldAllowsMerge, v))
}

// AllowsMergeNEQ applies the NEQ predicate on the "allows_merge" field.
func AllowsMergeNEQ(v bool) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldAllowsMerge, v))
}

// DisplayStatusEQ applies the EQ predicate on the "display_status" field.
func DisplayStatusEQ(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEQ(FieldDisplayStatus, v))
}

// DisplayStatusNEQ applies the NEQ predicate on the "display_status" field.
func DisplayStatusNEQ(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNEQ(FieldDisplayStatus, v))
}

// DisplayStatusIn applies the In predicate on the "display_status" field.
func DisplayStatusIn(vs ...string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIn(FieldDisplayStatus, vs...))
}

// DisplayStatusNotIn applies the NotIn predicate on the "display_status" field.
func DisplayStatusNotIn(vs ...string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotIn(FieldDisplayStatus, vs...))
}

// DisplayStatusGT applies the GT predicate on the "display_status" field.
func DisplayStatusGT(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGT(FieldDisplayStatus, v))
}

// DisplayStatusGTE applies the GTE predicate on the "display_status" field.
func DisplayStatusGTE(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldGTE(FieldDisplayStatus, v))
}

// DisplayStatusLT applies the LT predicate on the "display_status" field.
func DisplayStatusLT(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLT(FieldDisplayStatus, v))
}

// DisplayStatusLTE applies the LTE predicate on the "display_status" field.
func DisplayStatusLTE(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldLTE(FieldDisplayStatus, v))
}

// DisplayStatusContains applies the Contains predicate on the "display_status" field.
func DisplayStatusContains(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldContains(FieldDisplayStatus, v))
}

// DisplayStatusHasPrefix applies the HasPrefix predicate on the "display_status" field.
func DisplayStatusHasPrefix(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldHasPrefix(FieldDisplayStatus, v))
}

// DisplayStatusHasSuffix applies the HasSuffix predicate on the "display_status" field.
func DisplayStatusHasSuffix(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldHasSuffix(FieldDisplayStatus, v))
}

// DisplayStatusIsNil applies the IsNil predicate on the "display_status" field.
func DisplayStatusIsNil() predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldIsNull(FieldDisplayStatus))
}

// DisplayStatusNotNil applies the NotNil predicate on the "display_status" field.
func DisplayStatusNotNil() predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldNotNull(FieldDisplayStatus))
}

// DisplayStatusEqualFold applies the EqualFold predicate on the "display_status" field.
func DisplayStatusEqualFold(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldEqualFold(FieldDisplayStatus, v))
}

// DisplayStatusContainsFold applies the ContainsFold predicate on the "display_status" field.
func DisplayStatusContainsFold(v string) predicate.RoutingStep {
	return predicate.RoutingStep(sql.FieldContainsFold(FieldDisplayStatus, v))
}

// HasTemplate applies the HasEdge predicate on the "template" edge.
func HasTemplate() predicate.RoutingStep {
	return predicate.RoutingStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TemplateTable, TemplateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTemplateWith applies the HasEdge predicate on the "template" edge with a given conditions (other predicates).
func HasTemplateWith(preds ...predicate.ProcessTemplate) predicate.RoutingStep {
	return predicate.RoutingStep(func(s *sql.Selector) {
		step := newTemplateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoutingStep) predicate.RoutingStep {
	return predicate.RoutingStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoutingStep) predicate.RoutingStep {
	return predicate.RoutingStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoutingStep) predicate.RoutingStep {
	return predicate.RoutingStep(sql.NotPredicates(p))
}
