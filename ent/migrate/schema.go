// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// ProcessTemplatesColumns holds the columns for the "process_templates" table.
	ProcessTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "code", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "product_sku", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"DRAFT", "ACTIVE", "INACTIVE", "SUPERSEDED"}, Default: "DRAFT"},
		{Name: "version", Type: field.TypeString, Default: "1.0"},
		{Name: "effective_from", Type: field.TypeTime, Nullable: true},
		{Name: "effective_to", Type: field.TypeTime, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "predecessor_id", Type: field.TypeInt, Nullable: true},
	}
	// ProcessTemplatesTable holds the schema information for the "process_templates" table.
	ProcessTemplatesTable = &schema.Table{
		Name:       "process_templates",
		Columns:    ProcessTemplatesColumns,
		PrimaryKey: []*schema.Column{ProcessTemplatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "process_templates_process_templates_successors",
				Columns:    []*schema.Column{ProcessTemplatesColumns[12]},
				RefColumns: []*schema.Column{ProcessTemplatesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processtemplate_product_sku_status",
				Unique:  false,
				Columns: []*schema.Column{ProcessTemplatesColumns[6], ProcessTemplatesColumns[7]},
			},
			{
				Name:    "processtemplate_status",
				Unique:  false,
				Columns: []*schema.Column{ProcessTemplatesColumns[7]},
			},
			{
				Name:    "processtemplate_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessTemplatesColumns[1]},
			},
		},
	}
	// RoutingStepsColumns holds the columns for the "routing_steps" table.
	RoutingStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "operation_name", Type: field.TypeString, Size: 100},
		{Name: "operation_type", Type: field.TypeEnum, Enums: []string{"PROCESSING", "INSPECTION", "ASSEMBLY", "TRANSPORT", "PACKAGING", "REWORK"}, Default: "PROCESSING"},
		{Name: "operation_code", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "target_qty", Type: field.TypeFloat64, Nullable: true},
		{Name: "estimated_duration_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "is_parallel", Type: field.TypeBool, Default: false},
		{Name: "mandatory", Type: field.TypeBool, Default: true},
		{Name: "produces_output_batch", Type: field.TypeBool, Default: false},
		{Name: "allows_split", Type: field.TypeBool, Default: false},
		{Name: "allows_merge", Type: field.TypeBool, Default: false},
		{Name: "display_status", Type: field.TypeString, Nullable: true},
		{Name: "process_template_steps", Type: field.TypeInt},
	}
	// RoutingStepsTable holds the schema information for the "routing_steps" table.
	RoutingStepsTable = &schema.Table{
		Name:       "routing_steps",
		Columns:    RoutingStepsColumns,
		PrimaryKey: []*schema.Column{RoutingStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "routing_steps_process_templates_steps",
				Columns:    []*schema.Column{RoutingStepsColumns[16]},
				RefColumns: []*schema.Column{ProcessTemplatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "routingstep_sequence_number_process_template_steps",
				Unique:  true,
				Columns: []*schema.Column{RoutingStepsColumns[3], RoutingStepsColumns[16]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		ProcessTemplatesTable,
		RoutingStepsTable,
	}
)

func init() {
	ProcessTemplatesTable.ForeignKeys[0].RefTable = ProcessTemplatesTable
	RoutingStepsTable.ForeignKeys[0].RefTable = ProcessTemplatesTable
}
