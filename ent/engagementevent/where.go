// Code generated by ent, DO NOT EDIT.

package engagementevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldContainsFold(FieldID, id))
}

// EngagementID applies equality check predicate on the "engagement_id" field. It's identical to EngagementIDEQ.
func EngagementID(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldEngagementID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldEventType, v))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldActorID, v))
}

// FromStatus applies equality check predicate on the "from_status" field. It's identical to FromStatusEQ.
func FromStatus(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldFromStatus, v))
}

// ToStatus applies equality check predicate on the "to_status" field. It's identical to ToStatusEQ.
func ToStatus(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldToStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// EngagementIDEQ applies the EQ predicate on the "engagement_id" field.
func EngagementIDEQ(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldEngagementID, v))
}

// EngagementIDNEQ applies the NEQ predicate on the "engagement_id" field.
func EngagementIDNEQ(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNEQ(FieldEngagementID, v))
}

// EngagementIDIn applies the In predicate on the "engagement_id" field.
func EngagementIDIn(vs ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIn(FieldEngagementID, vs...))
}

// EngagementIDNotIn applies the NotIn predicate on the "engagement_id" field.
func EngagementIDNotIn(vs ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotIn(FieldEngagementID, vs...))
}

// EngagementIDGT applies the GT predicate on the "engagement_id" field.
func EngagementIDGT(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGT(FieldEngagementID, v))
}

// EngagementIDGTE applies the GTE predicate on the "engagement_id" field.
func EngagementIDGTE(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGTE(FieldEngagementID, v))
}

// EngagementIDLT applies the LT predicate on the "engagement_id" field.
func EngagementIDLT(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLT(FieldEngagementID, v))
}

// EngagementIDLTE applies the LTE predicate on the "engagement_id" field.
func EngagementIDLTE(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLTE(FieldEngagementID, v))
}

// EngagementIDContains applies the Contains predicate on the "engagement_id" field.
func EngagementIDContains(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldContains(FieldEngagementID, v))
}

// EngagementIDHasPrefix applies the HasPrefix predicate on the "engagement_id" field.
func EngagementIDHasPrefix(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldHasPrefix(FieldEngagementID, v))
}

// EngagementIDHasSuffix applies the HasSuffix predicate on the "engagement_id" field.
func EngagementIDHasSuffix(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldHasSuffix(FieldEngagementID, v))
}

// EngagementIDEqualFold applies the EqualFold predicate on the "engagement_id" field.
func EngagementIDEqualFold(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEqualFold(FieldEngagementID, v))
}

// EngagementIDContainsFold applies the ContainsFold predicate on the "engagement_id" field.
func EngagementIDContainsFold(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldContainsFold(FieldEngagementID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldContainsFold(FieldEventType, v))
}

// ActorRoleEQ applies the EQ predicate on the "actor_role" field.
func ActorRoleEQ(v ActorRole) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldActorRole, v))
}

// ActorRoleNEQ applies the NEQ predicate on the "actor_role" field.
func ActorRoleNEQ(v ActorRole) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNEQ(FieldActorRole, v))
}

// ActorRoleIn applies the In predicate on the "actor_role" field.
func ActorRoleIn(vs ...ActorRole) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIn(FieldActorRole, vs...))
}

// ActorRoleNotIn applies the NotIn predicate on the "actor_role" field.
func ActorRoleNotIn(vs ...ActorRole) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotIn(FieldActorRole, vs...))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLTE(FieldActorID, v))
}

// ActorIDContains applies the Contains predicate on the "actor_id" field.
func ActorIDContains(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldContains(FieldActorID, v))
}

// ActorIDHasPrefix applies the HasPrefix predicate on the "actor_id" field.
func ActorIDHasPrefix(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldHasPrefix(FieldActorID, v))
}

// ActorIDHasSuffix applies the HasSuffix predicate on the "actor_id" field.
func ActorIDHasSuffix(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldHasSuffix(FieldActorID, v))
}

// ActorIDIsNil applies the IsNil predicate on the "actor_id" field.
func ActorIDIsNil() predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIsNull(FieldActorID))
}

// ActorIDNotNil applies the NotNil predicate on the "actor_id" field.
func ActorIDNotNil() predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotNull(FieldActorID))
}

// ActorIDEqualFold applies the EqualFold predicate on the "actor_id" field.
func ActorIDEqualFold(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEqualFold(FieldActorID, v))
}

// ActorIDContainsFold applies the ContainsFold predicate on the "actor_id" field.
func ActorIDContainsFold(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldContainsFold(FieldActorID, v))
}

// FromStatusEQ applies the EQ predicate on the "from_status" field.
func FromStatusEQ(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldFromStatus, v))
}

// FromStatusNEQ applies the NEQ predicate on the "from_status" field.
func FromStatusNEQ(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNEQ(FieldFromStatus, v))
}

// FromStatusIn applies the In predicate on the "from_status" field.
func FromStatusIn(vs ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIn(FieldFromStatus, vs...))
}

// FromStatusNotIn applies the NotIn predicate on the "from_status" field.
func FromStatusNotIn(vs ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotIn(FieldFromStatus, vs...))
}

// FromStatusGT applies the GT predicate on the "from_status" field.
func FromStatusGT(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGT(FieldFromStatus, v))
}

// FromStatusGTE applies the GTE predicate on the "from_status" field.
func FromStatusGTE(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGTE(FieldFromStatus, v))
}

// FromStatusLT applies the LT predicate on the "from_status" field.
func FromStatusLT(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLT(FieldFromStatus, v))
}

// FromStatusLTE applies the LTE predicate on the "from_status" field.
func FromStatusLTE(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLTE(FieldFromStatus, v))
}

// FromStatusContains applies the Contains predicate on the "from_status" field.
func FromStatusContains(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldContains(FieldFromStatus, v))
}

// FromStatusHasPrefix applies the HasPrefix predicate on the "from_status" field.
func FromStatusHasPrefix(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldHasPrefix(FieldFromStatus, v))
}

// FromStatusHasSuffix applies the HasSuffix predicate on the "from_status" field.
func FromStatusHasSuffix(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldHasSuffix(FieldFromStatus, v))
}

// FromStatusIsNil applies the IsNil predicate on the "from_status" field.
func FromStatusIsNil() predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIsNull(FieldFromStatus))
}

// FromStatusNotNil applies the NotNil predicate on the "from_status" field.
func FromStatusNotNil() predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotNull(FieldFromStatus))
}

// FromStatusEqualFold applies the EqualFold predicate on the "from_status" field.
func FromStatusEqualFold(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEqualFold(FieldFromStatus, v))
}

// FromStatusContainsFold applies the ContainsFold predicate on the "from_status" field.
func FromStatusContainsFold(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldContainsFold(FieldFromStatus, v))
}

// ToStatusEQ applies the EQ predicate on the "to_status" field.
func ToStatusEQ(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldToStatus, v))
}

// ToStatusNEQ applies the NEQ predicate on the "to_status" field.
func ToStatusNEQ(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNEQ(FieldToStatus, v))
}

// ToStatusIn applies the In predicate on the "to_status" field.
func ToStatusIn(vs ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIn(FieldToStatus, vs...))
}

// ToStatusNotIn applies the NotIn predicate on the "to_status" field.
func ToStatusNotIn(vs ...string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotIn(FieldToStatus, vs...))
}

// ToStatusGT applies the GT predicate on the "to_status" field.
func ToStatusGT(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGT(FieldToStatus, v))
}

// ToStatusGTE applies the GTE predicate on the "to_status" field.
func ToStatusGTE(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGTE(FieldToStatus, v))
}

// ToStatusLT applies the LT predicate on the "to_status" field.
func ToStatusLT(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLT(FieldToStatus, v))
}

// ToStatusLTE applies the LTE predicate on the "to_status" field.
func ToStatusLTE(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLTE(FieldToStatus, v))
}

// ToStatusContains applies the Contains predicate on the "to_status" field.
func ToStatusContains(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldContains(FieldToStatus, v))
}

// ToStatusHasPrefix applies the HasPrefix predicate on the "to_status" field.
func ToStatusHasPrefix(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldHasPrefix(FieldToStatus, v))
}

// ToStatusHasSuffix applies the HasSuffix predicate on the "to_status" field.
func ToStatusHasSuffix(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldHasSuffix(FieldToStatus, v))
}

// ToStatusIsNil applies the IsNil predicate on the "to_status" field.
func ToStatusIsNil() predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIsNull(FieldToStatus))
}

// ToStatusNotNil applies the NotNil predicate on the "to_status" field.
func ToStatusNotNil() predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotNull(FieldToStatus))
}

// ToStatusEqualFold applies the EqualFold predicate on the "to_status" field.
func ToStatusEqualFold(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEqualFold(FieldToStatus, v))
}

// ToStatusContainsFold applies the ContainsFold predicate on the "to_status" field.
func ToStatusContainsFold(v string) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldContainsFold(FieldToStatus, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasEngagement applies the HasEdge predicate on the "engagement" edge.
func HasEngagement() predicate.EngagementEvent {
	return predicate.EngagementEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EngagementTable, EngagementColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEngagementWith applies the HasEdge predicate on the "engagement" edge with a given conditions (other predicates).
func HasEngagementWith(preds ...predicate.Engagement) predicate.EngagementEvent {
	return predicate.EngagementEvent(func(s *sql.Selector) {
		step := newEngagementStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EngagementEvent) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EngagementEvent) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EngagementEvent) predicate.EngagementEvent {
	return predicate.EngagementEvent(sql.NotPredicates(p))
}
