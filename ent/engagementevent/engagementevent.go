// Code generated by ent, DO NOT EDIT.

package engagementevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the engagementevent type in the database.
	Label = "engagement_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldEngagementID holds the string denoting the engagement_id field in the database.
	FieldEngagementID = "engagement_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldActorRole holds the string denoting the actor_role field in the database.
	FieldActorRole = "actor_role"
	// FieldActorID holds the string denoting the actor_id field in the database.
	FieldActorID = "actor_id"
	// FieldFromStatus holds the string denoting the from_status field in the database.
	FieldFromStatus = "from_status"
	// FieldToStatus holds the string denoting the to_status field in the database.
	FieldToStatus = "to_status"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeEngagement holds the string denoting the engagement edge name in mutations.
	EdgeEngagement = "engagement"
	// EngagementFieldID holds the string denoting the ID field of the Engagement.
	EngagementFieldID = "engagement_id"
	// Table holds the table name of the engagementevent in the database.
	Table = "engagement_events"
	// EngagementTable is the table that holds the engagement relation/edge.
	EngagementTable = "engagement_events"
	// EngagementInverseTable is the table name for the Engagement entity.
	// It exists in this package in order to avoid circular dependency with the "engagement" package.
	EngagementInverseTable = "engagements"
	// EngagementColumn is the table column denoting the engagement relation/edge.
	EngagementColumn = "engagement_id"
)

// Columns holds all SQL columns for engagementevent fields.
var Columns = []string{
	FieldID,
	FieldEngagementID,
	FieldEventType,
	FieldActorRole,
	FieldActorID,
	FieldFromStatus,
	FieldToStatus,
	FieldMetadata,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	EventTypeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ActorRole defines the type for the "actor_role" enum field.
type ActorRole string

// ActorRole values.
const (
	ActorRoleBuyer    ActorRole = "buyer"
	ActorRoleSupplier ActorRole = "supplier"
	ActorRoleAdmin    ActorRole = "admin"
	ActorRoleSystem   ActorRole = "system"
)

func (ar ActorRole) String() string {
	return string(ar)
}

// ActorRoleValidator is a validator for the "actor_role" field enum values. It is called by the builders before save.
func ActorRoleValidator(ar ActorRole) error {
	switch ar {
	case ActorRoleBuyer, ActorRoleSupplier, ActorRoleAdmin, ActorRoleSystem:
		return nil
	default:
		return fmt.Errorf("engagementevent: invalid enum value for actor_role field: %q", ar)
	}
}

// OrderOption defines the ordering options for the EngagementEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEngagementID orders the results by the engagement_id field.
func ByEngagementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByActorRole orders the results by the actor_role field.
func ByActorRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorRole, opts...).ToFunc()
}

// ByActorID orders the results by the actor_id field.
func ByActorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorID, opts...).ToFunc()
}

// ByFromStatus orders the results by the from_status field.
func ByFromStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromStatus, opts...).ToFunc()
}

// ByToStatus orders the results by the to_status field.
func ByToStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEngagementField orders the results by engagement field.
func ByEngagementField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEngagementStep(), sql.OrderByField(field, opts...))
	}
}
func newEngagementStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EngagementInverseTable, EngagementFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EngagementTable, EngagementColumn),
	)
}
