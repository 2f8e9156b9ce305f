package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessTemplate holds the schema definition for the ProcessTemplate entity.
// A template is the design-time, versioned definition of a manufacturing
// process: an ordered routing of operations for a product.
type ProcessTemplate struct {
	ent.Schema
}

// Mixin of the ProcessTemplate.
func (ProcessTemplate) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ProcessTemplate.
func (ProcessTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("code").
			Optional().
			Unique(), // Human-assigned template code, e.g. "RT-MELT-CAST"
		field.String("name").
			NotEmpty().
			MaxLen(100),
		field.String("description").
			Optional().
			MaxLen(500),
		field.String("product_sku").
			Optional(), // Product this routing produces, e.g. "HR-COIL-2MM"
		field.Enum("status").
			Values("DRAFT", "ACTIVE", "INACTIVE", "SUPERSEDED").
			Default("DRAFT"),
		field.String("version").
			NotEmpty().
			Default("1.0"),
		field.Time("effective_from").
			Optional().
			Nillable(),
		field.Time("effective_to").
			Optional().
			Nillable(),
		field.Int("predecessor_id").
			Optional().
			Nillable(), // Lineage: template this version was forked from
		field.String("created_by").
			NotEmpty().
			Immutable(),
	}
}

// Edges of the ProcessTemplate.
func (ProcessTemplate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", RoutingStep.Type),
		edge.To("successors", ProcessTemplate.Type).
			From("predecessor").
			Unique().
			Field("predecessor_id"),
	}
}

// Indexes of the ProcessTemplate.
func (ProcessTemplate) Indexes() []ent.Index {
	return []ent.Index{
		// Activation exclusivity lookups: siblings for a product in a given status.
		index.Fields("product_sku", "status"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
