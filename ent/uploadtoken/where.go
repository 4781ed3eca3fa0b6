// Code generated by ent, DO NOT EDIT.

package uploadtoken

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldContainsFold(FieldID, id))
}

// Token applies equality check predicate on the "token" field. It's identical to TokenEQ.
func Token(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldToken, v))
}

// EngagementID applies equality check predicate on the "engagement_id" field. It's identical to EngagementIDEQ.
func EngagementID(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldEngagementID, v))
}

// UploadedFileURL applies equality check predicate on the "uploaded_file_url" field. It's identical to UploadedFileURLEQ.
func UploadedFileURL(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldUploadedFileURL, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldExpiresAt, v))
}

// UsedAt applies equality check predicate on the "used_at" field. It's identical to UsedAtEQ.
func UsedAt(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldUsedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldCreatedAt, v))
}

// TokenEQ applies the EQ predicate on the "token" field.
func TokenEQ(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldToken, v))
}

// TokenNEQ applies the NEQ predicate on the "token" field.
func TokenNEQ(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNEQ(FieldToken, v))
}

// TokenIn applies the In predicate on the "token" field.
func TokenIn(vs ...string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldIn(FieldToken, vs...))
}

// TokenNotIn applies the NotIn predicate on the "token" field.
func TokenNotIn(vs ...string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNotIn(FieldToken, vs...))
}

// TokenGT applies the GT predicate on the "token" field.
func TokenGT(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldGT(FieldToken, v))
}

// TokenGTE applies the GTE predicate on the "token" field.
func TokenGTE(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldGTE(FieldToken, v))
}

// TokenLT applies the LT predicate on the "token" field.
func TokenLT(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldLT(FieldToken, v))
}

// TokenLTE applies the LTE predicate on the "token" field.
func TokenLTE(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldLTE(FieldToken, v))
}

// TokenContains applies the Contains predicate on the "token" field.
func TokenContains(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldContains(FieldToken, v))
}

// TokenHasPrefix applies the HasPrefix predicate on the "token" field.
func TokenHasPrefix(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldHasPrefix(FieldToken, v))
}

// TokenHasSuffix applies the HasSuffix predicate on the "token" field.
func TokenHasSuffix(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldHasSuffix(FieldToken, v))
}

// TokenEqualFold applies the EqualFold predicate on the "token" field.
func TokenEqualFold(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEqualFold(FieldToken, v))
}

// TokenContainsFold applies the ContainsFold predicate on the "token" field.
func TokenContainsFold(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldContainsFold(FieldToken, v))
}

// EngagementIDEQ applies the EQ predicate on the "engagement_id" field.
func EngagementIDEQ(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldEngagementID, v))
}

// EngagementIDNEQ applies the NEQ predicate on the "engagement_id" field.
func EngagementIDNEQ(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNEQ(FieldEngagementID, v))
}

// EngagementIDIn applies the In predicate on the "engagement_id" field.
func EngagementIDIn(vs ...string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldIn(FieldEngagementID, vs...))
}

// EngagementIDNotIn applies the NotIn predicate on the "engagement_id" field.
func EngagementIDNotIn(vs ...string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNotIn(FieldEngagementID, vs...))
}

// EngagementIDGT applies the GT predicate on the "engagement_id" field.
func EngagementIDGT(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldGT(FieldEngagementID, v))
}

// EngagementIDGTE applies the GTE predicate on the "engagement_id" field.
func EngagementIDGTE(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldGTE(FieldEngagementID, v))
}

// EngagementIDLT applies the LT predicate on the "engagement_id" field.
func EngagementIDLT(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldLT(FieldEngagementID, v))
}

// EngagementIDLTE applies the LTE predicate on the "engagement_id" field.
func EngagementIDLTE(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldLTE(FieldEngagementID, v))
}

// EngagementIDContains applies the Contains predicate on the "engagement_id" field.
func EngagementIDContains(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldContains(FieldEngagementID, v))
}

// EngagementIDHasPrefix applies the HasPrefix predicate on the "engagement_id" field.
func EngagementIDHasPrefix(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldHasPrefix(FieldEngagementID, v))
}

// EngagementIDHasSuffix applies the HasSuffix predicate on the "engagement_id" field.
func EngagementIDHasSuffix(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldHasSuffix(FieldEngagementID, v))
}

// EngagementIDEqualFold applies the EqualFold predicate on the "engagement_id" field.
func EngagementIDEqualFold(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEqualFold(FieldEngagementID, v))
}

// EngagementIDContainsFold applies the ContainsFold predicate on the "engagement_id" field.
func EngagementIDContainsFold(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldContainsFold(FieldEngagementID, v))
}

// PurposeEQ applies the EQ predicate on the "purpose" field.
func PurposeEQ(v Purpose) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldPurpose, v))
}

// PurposeNEQ applies the NEQ predicate on the "purpose" field.
func PurposeNEQ(v Purpose) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNEQ(FieldPurpose, v))
}

// PurposeIn applies the In predicate on the "purpose" field.
func PurposeIn(vs ...Purpose) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldIn(FieldPurpose, vs...))
}

// PurposeNotIn applies the NotIn predicate on the "purpose" field.
func PurposeNotIn(vs ...Purpose) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNotIn(FieldPurpose, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNotIn(FieldStatus, vs...))
}

// UploadedFileURLEQ applies the EQ predicate on the "uploaded_file_url" field.
func UploadedFileURLEQ(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldUploadedFileURL, v))
}

// UploadedFileURLNEQ applies the NEQ predicate on the "uploaded_file_url" field.
func UploadedFileURLNEQ(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNEQ(FieldUploadedFileURL, v))
}

// UploadedFileURLIn applies the In predicate on the "uploaded_file_url" field.
func UploadedFileURLIn(vs ...string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldIn(FieldUploadedFileURL, vs...))
}

// UploadedFileURLNotIn applies the NotIn predicate on the "uploaded_file_url" field.
func UploadedFileURLNotIn(vs ...string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNotIn(FieldUploadedFileURL, vs...))
}

// UploadedFileURLGT applies the GT predicate on the "uploaded_file_url" field.
func UploadedFileURLGT(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldGT(FieldUploadedFileURL, v))
}

// UploadedFileURLGTE applies the GTE predicate on the "uploaded_file_url" field.
func UploadedFileURLGTE(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldGTE(FieldUploadedFileURL, v))
}

// UploadedFileURLLT applies the LT predicate on the "uploaded_file_url" field.
func UploadedFileURLLT(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldLT(FieldUploadedFileURL, v))
}

// UploadedFileURLLTE applies the LTE predicate on the "uploaded_file_url" field.
func UploadedFileURLLTE(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldLTE(FieldUploadedFileURL, v))
}

// UploadedFileURLContains applies the Contains predicate on the "uploaded_file_url" field.
func UploadedFileURLContains(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldContains(FieldUploadedFileURL, v))
}

// UploadedFileURLHasPrefix applies the HasPrefix predicate on the "uploaded_file_url" field.
func UploadedFileURLHasPrefix(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldHasPrefix(FieldUploadedFileURL, v))
}

// UploadedFileURLHasSuffix applies the HasSuffix predicate on the "uploaded_file_url" field.
func UploadedFileURLHasSuffix(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldHasSuffix(FieldUploadedFileURL, v))
}

// UploadedFileURLIsNil applies the IsNil predicate on the "uploaded_file_url" field.
func UploadedFileURLIsNil() predicate.UploadToken {
	return predicate.UploadToken(sql.FieldIsNull(FieldUploadedFileURL))
}

// UploadedFileURLNotNil applies the NotNil predicate on the "uploaded_file_url" field.
func UploadedFileURLNotNil() predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNotNull(FieldUploadedFileURL))
}

// UploadedFileURLEqualFold applies the EqualFold predicate on the "uploaded_file_url" field.
func UploadedFileURLEqualFold(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEqualFold(FieldUploadedFileURL, v))
}

// UploadedFileURLContainsFold applies the ContainsFold predicate on the "uploaded_file_url" field.
func UploadedFileURLContainsFold(v string) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldContainsFold(FieldUploadedFileURL, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldLTE(FieldExpiresAt, v))
}

// UsedAtEQ applies the EQ predicate on the "used_at" field.
func UsedAtEQ(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldUsedAt, v))
}

// UsedAtNEQ applies the NEQ predicate on the "used_at" field.
func UsedAtNEQ(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNEQ(FieldUsedAt, v))
}

// UsedAtIn applies the In predicate on the "used_at" field.
func UsedAtIn(vs ...time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldIn(FieldUsedAt, vs...))
}

// UsedAtNotIn applies the NotIn predicate on the "used_at" field.
func UsedAtNotIn(vs ...time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNotIn(FieldUsedAt, vs...))
}

// UsedAtGT applies the GT predicate on the "used_at" field.
func UsedAtGT(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldGT(FieldUsedAt, v))
}

// UsedAtGTE applies the GTE predicate on the "used_at" field.
func UsedAtGTE(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldGTE(FieldUsedAt, v))
}

// UsedAtLT applies the LT predicate on the "used_at" field.
func UsedAtLT(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldLT(FieldUsedAt, v))
}

// UsedAtLTE applies the LTE predicate on the "used_at" field.
func UsedAtLTE(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldLTE(FieldUsedAt, v))
}

// UsedAtIsNil applies the IsNil predicate on the "used_at" field.
func UsedAtIsNil() predicate.UploadToken {
	return predicate.UploadToken(sql.FieldIsNull(FieldUsedAt))
}

// UsedAtNotNil applies the NotNil predicate on the "used_at" field.
func UsedAtNotNil() predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNotNull(FieldUsedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UploadToken {
	return predicate.UploadToken(sql.FieldLTE(FieldCreatedAt, v))
}

// HasEngagement applies the HasEdge predicate on the "engagement" edge.
func HasEngagement() predicate.UploadToken {
	return predicate.UploadToken(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EngagementTable, EngagementColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEngagementWith applies the HasEdge predicate on the "engagement" edge with a given conditions (other predicates).
func HasEngagementWith(preds ...predicate.Engagement) predicate.UploadToken {
	return predicate.UploadToken(func(s *sql.Selector) {
		step := newEngagementStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UploadToken) predicate.UploadToken {
	return predicate.UploadToken(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UploadToken) predicate.UploadToken {
	return predicate.UploadToken(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UploadToken) predicate.UploadToken {
	return predicate.UploadToken(sql.NotPredicates(p))
}
