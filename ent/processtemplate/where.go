// Code generated by ent, DO NOT EDIT.

package processtemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"routesmith.io/routesmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldCode, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldDescription, v))
}

// ProductSku applies equality check predicate on the "product_sku" field. It's identical to ProductSkuEQ.
func ProductSku(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldProductSku, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldVersion, v))
}

// EffectiveFrom applies equality check predicate on the "effective_from" field. It's identical to EffectiveFromEQ.
func EffectiveFrom(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldEffectiveFrom, v))
}

// EffectiveTo applies equality check predicate on the "effective_to" field. It's identical to EffectiveToEQ.
func EffectiveTo(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldEffectiveTo, v))
}

// PredecessorID applies equality check predicate on the "predecessor_id" field. It's identical to PredecessorIDEQ.
func PredecessorID(v int) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldPredecessorID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLTE(FieldUpdatedAt, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldHasSuffix(FieldCode, v))
}

// CodeIsNil applies the IsNil predicate on the "code" field.
func CodeIsNil() predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIsNull(FieldCode))
}

// CodeNotNil applies the NotNil predicate on the "code" field.
func CodeNotNil() predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotNull(FieldCode))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldContainsFold(FieldCode, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldContainsFold(FieldDescription, v))
}

// ProductSkuEQ applies the EQ predicate on the "product_sku" field.
func ProductSkuEQ(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldProductSku, v))
}

// ProductSkuNEQ applies the NEQ predicate on the "product_sku" field.
func ProductSkuNEQ(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNEQ(FieldProductSku, v))
}

// ProductSkuIn applies the In predicate on the "product_sku" field.
func ProductSkuIn(vs ...string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIn(FieldProductSku, vs...))
}

// ProductSkuNotIn applies the NotIn predicate on the "product_sku" field.
func ProductSkuNotIn(vs ...string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotIn(FieldProductSku, vs...))
}

// ProductSkuGT applies the GT predicate on the "product_sku" field.
func ProductSkuGT(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGT(FieldProductSku, v))
}

// ProductSkuGTE applies the GTE predicate on the "product_sku" field.
func ProductSkuGTE(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGTE(FieldProductSku, v))
}

// ProductSkuLT applies the LT predicate on the "product_sku" field.
func ProductSkuLT(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLT(FieldProductSku, v))
}

// ProductSkuLTE applies the LTE predicate on the "product_sku" field.
func ProductSkuLTE(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLTE(FieldProductSku, v))
}

// ProductSkuContains applies the Contains predicate on the "product_sku" field.
func ProductSkuContains(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldContains(FieldProductSku, v))
}

// ProductSkuHasPrefix applies the HasPrefix predicate on the "product_sku" field.
func ProductSkuHasPrefix(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldHasPrefix(FieldProductSku, v))
}

// ProductSkuHasSuffix applies the HasSuffix predicate on the "product_sku" field.
func ProductSkuHasSuffix(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldHasSuffix(FieldProductSku, v))
}

// ProductSkuIsNil applies the IsNil predicate on the "product_sku" field.
func ProductSkuIsNil() predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIsNull(FieldProductSku))
}

// ProductSkuNotNil applies the NotNil predicate on the "product_sku" field.
func ProductSkuNotNil() predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotNull(FieldProductSku))
}

// ProductSkuEqualFold applies the EqualFold predicate on the "product_sku" field.
func ProductSkuEqualFold(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEqualFold(FieldProductSku, v))
}

// ProductSkuContainsFold applies the ContainsFold predicate on the "product_sku" field.
func ProductSkuContainsFold(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldContainsFold(FieldProductSku, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotIn(FieldStatus, vs...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLTE(FieldVersion, v))
}

// VersionContains applies the Contains predicate on the "version" field.
func VersionContains(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldContains(FieldVersion, v))
}

// VersionHasPrefix applies the HasPrefix predicate on the "version" field.
func VersionHasPrefix(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldHasPrefix(FieldVersion, v))
}

// VersionHasSuffix applies the HasSuffix predicate on the "version" field.
func VersionHasSuffix(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldHasSuffix(FieldVersion, v))
}

// VersionEqualFold applies the EqualFold predicate on the "version" field.
func VersionEqualFold(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEqualFold(FieldVersion, v))
}

// VersionContainsFold applies the ContainsFold predicate on the "version" field.
func VersionContainsFold(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldContainsFold(FieldVersion, v))
}

// EffectiveFromEQ applies the EQ predicate on the "effective_from" field.
func EffectiveFromEQ(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldEffectiveFrom, v))
}

// EffectiveFromNEQ applies the NEQ predicate on the "effective_from" field.
func EffectiveFromNEQ(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNEQ(FieldEffectiveFrom, v))
}

// EffectiveFromIn applies the In predicate on the "effective_from" field.
func EffectiveFromIn(vs ...time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIn(FieldEffectiveFrom, vs...))
}

// EffectiveFromNotIn applies the NotIn predicate on the "effective_from" field.
func EffectiveFromNotIn(vs ...time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotIn(FieldEffectiveFrom, vs...))
}

// EffectiveFromGT applies the GT predicate on the "effective_from" field.
func EffectiveFromGT(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGT(FieldEffectiveFrom, v))
}

// EffectiveFromGTE applies the GTE predicate on the "effective_from" field.
func EffectiveFromGTE(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGTE(FieldEffectiveFrom, v))
}

// EffectiveFromLT applies the LT predicate on the "effective_from" field.
func EffectiveFromLT(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLT(FieldEffectiveFrom, v))
}

// EffectiveFromLTE applies the LTE predicate on the "effective_from" field.
func EffectiveFromLTE(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLTE(FieldEffectiveFrom, v))
}

// EffectiveFromIsNil applies the IsNil predicate on the "effective_from" field.
func EffectiveFromIsNil() predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIsNull(FieldEffectiveFrom))
}

// EffectiveFromNotNil applies the NotNil predicate on the "effective_from" field.
func EffectiveFromNotNil() predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotNull(FieldEffectiveFrom))
}

// EffectiveToEQ applies the EQ predicate on the "effective_to" field.
func EffectiveToEQ(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldEffectiveTo, v))
}

// EffectiveToNEQ applies the NEQ predicate on the "effective_to" field.
func EffectiveToNEQ(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNEQ(FieldEffectiveTo, v))
}

// EffectiveToIn applies the In predicate on the "effective_to" field.
func EffectiveToIn(vs ...time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIn(FieldEffectiveTo, vs...))
}

// EffectiveToNotIn applies the NotIn predicate on the "effective_to" field.
func EffectiveToNotIn(vs ...time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotIn(FieldEffectiveTo, vs...))
}

// EffectiveToGT applies the GT predicate on the "effective_to" field.
func EffectiveToGT(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGT(FieldEffectiveTo, v))
}

// EffectiveToGTE applies the GTE predicate on the "effective_to" field.
func EffectiveToGTE(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGTE(FieldEffectiveTo, v))
}

// EffectiveToLT applies the LT predicate on the "effective_to" field.
func EffectiveToLT(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLT(FieldEffectiveTo, v))
}

// EffectiveToLTE applies the LTE predicate on the "effective_to" field.
func EffectiveToLTE(v time.Time) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLTE(FieldEffectiveTo, v))
}

// EffectiveToIsNil applies the IsNil predicate on the "effective_to" field.
func EffectiveToIsNil() predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIsNull(FieldEffectiveTo))
}

// EffectiveToNotNil applies the NotNil predicate on the "effective_to" field.
func EffectiveToNotNil() predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotNull(FieldEffectiveTo))
}

// PredecessorIDEQ applies the EQ predicate on the "predecessor_id" field.
func PredecessorIDEQ(v int) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldPredecessorID, v))
}

// PredecessorIDNEQ applies the NEQ predicate on the "predecessor_id" field.
func PredecessorIDNEQ(v int) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNEQ(FieldPredecessorID, v))
}

// PredecessorIDIn applies the In predicate on the "predecessor_id" field.
func PredecessorIDIn(vs ...int) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIn(FieldPredecessorID, vs...))
}

// PredecessorIDNotIn applies the NotIn predicate on the "predecessor_id" field.
func PredecessorIDNotIn(vs ...int) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotIn(FieldPredecessorID, vs...))
}

// PredecessorIDIsNil applies the IsNil predicate on the "predecessor_id" field.
func PredecessorIDIsNil() predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIsNull(FieldPredecessorID))
}

// PredecessorIDNotNil applies the NotNil predicate on the "predecessor_id" field.
func PredecessorIDNotNil() predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotNull(FieldPredecessorID))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.FieldContainsFold(FieldCreatedBy, v))
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.ProcessTemplate {
	return predicate.ProcessTemplate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.RoutingStep) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPredecessor applies the HasEdge predicate on the "predecessor" edge.
func HasPredecessor() predicate.ProcessTemplate {
	return predicate.ProcessTemplate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PredecessorTable, PredecessorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPredecessorWith applies the HasEdge predicate on the "predecessor" edge with a given conditions (other predicates).
func HasPredecessorWith(preds ...predicate.ProcessTemplate) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(func(s *sql.Selector) {
		step := newPredecessorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSuccessors applies the HasEdge predicate on the "successors" edge.
func HasSuccessors() predicate.ProcessTemplate {
	return predicate.ProcessTemplate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SuccessorsTable, SuccessorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSuccessorsWith applies the HasEdge predicate on the "successors" edge with a given conditions (other predicates).
func HasSuccessorsWith(preds ...predicate.ProcessTemplate) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(func(s *sql.Selector) {
		step := newSuccessorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessTemplate) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessTemplate) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessTemplate) predicate.ProcessTemplate {
	return predicate.ProcessTemplate(sql.NotPredicates(p))
}
