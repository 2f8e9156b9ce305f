// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"routesmith.io/routesmith/ent/auditlog"
	"routesmith.io/routesmith/ent/processtemplate"
	"routesmith.io/routesmith/ent/routingstep"
	"routesmith.io/routesmith/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[2].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[3].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	processtemplateMixin := schema.ProcessTemplate{}.Mixin()
	processtemplateMixinFields0 := processtemplateMixin[0].Fields()
	_ = processtemplateMixinFields0
	processtemplateFields := schema.ProcessTemplate{}.Fields()
	_ = processtemplateFields
	// processtemplateDescCreatedAt is the schema descriptor for created_at field.
	processtemplateDescCreatedAt := processtemplateMixinFields0[0].Descriptor()
	// processtemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	processtemplate.DefaultCreatedAt = processtemplateDescCreatedAt.Default.(func() time.Time)
	// processtemplateDescUpdatedAt is the schema descriptor for updated_at field.
	processtemplateDescUpdatedAt := processtemplateMixinFields0[1].Descriptor()
	// processtemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	processtemplate.DefaultUpdatedAt = processtemplateDescUpdatedAt.Default.(func() time.Time)
	// processtemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	processtemplate.UpdateDefaultUpdatedAt = processtemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// processtemplateDescName is the schema descriptor for name field.
	processtemplateDescName := processtemplateFields[1].Descriptor()
	// processtemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	processtemplate.NameValidator = func() func(string) error {
		validators := processtemplateDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processtemplateDescDescription is the schema descriptor for description field.
	processtemplateDescDescription := processtemplateFields[2].Descriptor()
	// processtemplate.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	processtemplate.DescriptionValidator = processtemplateDescDescription.Validators[0].(func(string) error)
	// processtemplateDescVersion is the schema descriptor for version field.
	processtemplateDescVersion := processtemplateFields[5].Descriptor()
	// processtemplate.DefaultVersion holds the default value on creation for the version field.
	processtemplate.DefaultVersion = processtemplateDescVersion.Default.(string)
	// processtemplate.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	processtemplate.VersionValidator = processtemplateDescVersion.Validators[0].(func(string) error)
	// processtemplateDescCreatedBy is the schema descriptor for created_by field.
	processtemplateDescCreatedBy := processtemplateFields[9].Descriptor()
	// processtemplate.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	processtemplate.CreatedByValidator = processtemplateDescCreatedBy.Validators[0].(func(string) error)
	routingstepMixin := schema.RoutingStep{}.Mixin()
	routingstepMixinFields0 := routingstepMixin[0].Fields()
	_ = routingstepMixinFields0
	routingstepFields := schema.RoutingStep{}.Fields()
	_ = routingstepFields
	// routingstepDescCreatedAt is the schema descriptor for created_at field.
	routingstepDescCreatedAt := routingstepMixinFields0[0].Descriptor()
	// routingstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	routingstep.DefaultCreatedAt = routingstepDescCreatedAt.Default.(func() time.Time)
	// routingstepDescUpdatedAt is the schema descriptor for updated_at field.
	routingstepDescUpdatedAt := routingstepMixinFields0[1].Descriptor()
	// routingstep.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	routingstep.DefaultUpdatedAt = routingstepDescUpdatedAt.Default.(func() time.Time)
	// routingstep.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	routingstep.UpdateDefaultUpdatedAt = routingstepDescUpdatedAt.UpdateDefault.(func() time.Time)
	// routingstepDescSequenceNumber is the schema descriptor for sequence_number field.
	routingstepDescSequenceNumber := routingstepFields[0].Descriptor()
	// routingstep.SequenceNumberValidator is a validator for the "sequence_number" field. It is called by the builders before save.
	routingstep.SequenceNumberValidator = routingstepDescSequenceNumber.Validators[0].(func(int) error)
	// routingstepDescOperationName is the schema descriptor for operation_name field.
	routingstepDescOperationName := routingstepFields[1].Descriptor()
	// routingstep.OperationNameValidator is a validator for the "operation_name" field. It is called by the builders before save.
	routingstep.OperationNameValidator = func() func(string) error {
		validators := routingstepDescOperationName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(operation_name string) error {
			for _, fn := range fns {
				if err := fn(operation_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// routingstepDescDescription is the schema descriptor for description field.
	routingstepDescDescription := routingstepFields[4].Descriptor()
	// routingstep.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	routingstep.DescriptionValidator = routingstepDescDescription.Validators[0].(func(string) error)
	// routingstepDescIsParallel is the schema descriptor for is_parallel field.
	routingstepDescIsParallel := routingstepFields[7].Descriptor()
	// routingstep.DefaultIsParallel holds the default value on creation for the is_parallel field.
	routingstep.DefaultIsParallel = routingstepDescIsParallel.Default.(bool)
	// routingstepDescMandatory is the schema descriptor for mandatory field.
	routingstepDescMandatory := routingstepFields[8].Descriptor()
	// routingstep.DefaultMandatory holds the default value on creation for the mandatory field.
	routingstep.DefaultMandatory = routingstepDescMandatory.Default.(bool)
	// routingstepDescProducesOutputBatch is the schema descriptor for produces_output_batch field.
	routingstepDescProducesOutputBatch := routingstepFields[9].Descriptor()
	// routingstep.DefaultProducesOutputBatch holds the default value on creation for the produces_output_batch field.
	routingstep.DefaultProducesOutputBatch = routingstepDescProducesOutputBatch.Default.(bool)
	// routingstepDescAllowsSplit is the schema descriptor for allows_split field.
	routingstepDescAllowsSplit := routingstepFields[10].Descriptor()
	// routingstep.DefaultAllowsSplit holds the default value on creation for the allows_split field.
	routingstep.DefaultAllowsSplit = routingstepDescAllowsSplit.Default.(bool)
	// routingstepDescAllowsMerge is the schema descriptor for allows_merge field.
	routingstepDescAllowsMerge := routingstepFields[11].Descriptor()
	// routingstep.DefaultAllowsMerge holds the default value on creation for the allows_merge field.
	routingstep.DefaultAllowsMerge = routingstepDescAllowsMerge.Default.(bool)
}
