package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoutingStep holds the schema definition for the RoutingStep entity.
// One ordered operation within a process template. Steps are owned
// exclusively by their template; no two templates share step rows.
type RoutingStep struct {
	ent.Schema
}

// Mixin of the RoutingStep.
func (RoutingStep) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the RoutingStep.
func (RoutingStep) Fields() []ent.Field {
	return []ent.Field{
		field.Int("sequence_number").
			Positive(), // Dense 1-based position within the template
		field.String("operation_name").
			NotEmpty().
			MaxLen(100), // Duplicates allowed: the same operation may repeat in a routing
		field.Enum("operation_type").
			Values("PROCESSING", "INSPECTION", "ASSEMBLY", "TRANSPORT", "PACKAGING", "REWORK").
			Default("PROCESSING"),
		field.String("operation_code").
			Optional(),
		field.String("description").
			Optional().
			MaxLen(500),
		field.Float("target_qty").
			Optional().
			Nillable(),
		field.Int("estimated_duration_minutes").
			Optional().
			Nillable(),
		field.Bool("is_parallel").
			Default(false),
		field.Bool("mandatory").
			Default(true),
		field.Bool("produces_output_batch").
			Default(false),
		field.Bool("allows_split").
			Default(false),
		field.Bool("allows_merge").
			Default(false),
		field.String("display_status").
			Optional(), // Mirrors the template lifecycle for list rendering
	}
}

// Edges of the RoutingStep.
func (RoutingStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("template", ProcessTemplate.Type).
			Ref("steps").
			Unique().
			Required(),
	}
}

// Indexes of the RoutingStep.
func (RoutingStep) Indexes() []ent.Index {
	return []ent.Index{
		// Invariant: sequence numbers are unique within one template.
		index.Fields("sequence_number").
			Edges("template").
			Unique(),
	}
}
