// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// ProcessTemplate is the predicate function for processtemplate builders.
type ProcessTemplate func(*sql.Selector)

// RoutingStep is the predicate function for routingstep builders.
type RoutingStep func(*sql.Selector)
