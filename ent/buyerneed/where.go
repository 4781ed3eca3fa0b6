// Code generated by ent, DO NOT EDIT.

package buyerneed

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldContainsFold(FieldID, id))
}

// BuyerID applies equality check predicate on the "buyer_id" field. It's identical to BuyerIDEQ.
func BuyerID(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldBuyerID, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldPhone, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldCity, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldState, v))
}

// Lat applies equality check predicate on the "lat" field. It's identical to LatEQ.
func Lat(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldLat, v))
}

// Lng applies equality check predicate on the "lng" field. It's identical to LngEQ.
func Lng(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldLng, v))
}

// RadiusMiles applies equality check predicate on the "radius_miles" field. It's identical to RadiusMilesEQ.
func RadiusMiles(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldRadiusMiles, v))
}

// MinSqft applies equality check predicate on the "min_sqft" field. It's identical to MinSqftEQ.
func MinSqft(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldMinSqft, v))
}

// MaxSqft applies equality check predicate on the "max_sqft" field. It's identical to MaxSqftEQ.
func MaxSqft(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldMaxSqft, v))
}

// UseType applies equality check predicate on the "use_type" field. It's identical to UseTypeEQ.
func UseType(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldUseType, v))
}

// NeededFrom applies equality check predicate on the "needed_from" field. It's identical to NeededFromEQ.
func NeededFrom(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldNeededFrom, v))
}

// DurationMonths applies equality check predicate on the "duration_months" field. It's identical to DurationMonthsEQ.
func DurationMonths(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldDurationMonths, v))
}

// MaxBudgetPerSqft applies equality check predicate on the "max_budget_per_sqft" field. It's identical to MaxBudgetPerSqftEQ.
func MaxBudgetPerSqft(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldMaxBudgetPerSqft, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldUpdatedAt, v))
}

// BuyerIDEQ applies the EQ predicate on the "buyer_id" field.
func BuyerIDEQ(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldBuyerID, v))
}

// BuyerIDNEQ applies the NEQ predicate on the "buyer_id" field.
func BuyerIDNEQ(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldBuyerID, v))
}

// BuyerIDIn applies the In predicate on the "buyer_id" field.
func BuyerIDIn(vs ...string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldBuyerID, vs...))
}

// BuyerIDNotIn applies the NotIn predicate on the "buyer_id" field.
func BuyerIDNotIn(vs ...string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldBuyerID, vs...))
}

// BuyerIDGT applies the GT predicate on the "buyer_id" field.
func BuyerIDGT(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldBuyerID, v))
}

// BuyerIDGTE applies the GTE predicate on the "buyer_id" field.
func BuyerIDGTE(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldBuyerID, v))
}

// BuyerIDLT applies the LT predicate on the "buyer_id" field.
func BuyerIDLT(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldBuyerID, v))
}

// BuyerIDLTE applies the LTE predicate on the "buyer_id" field.
func BuyerIDLTE(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldBuyerID, v))
}

// BuyerIDContains applies the Contains predicate on the "buyer_id" field.
func BuyerIDContains(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldContains(FieldBuyerID, v))
}

// BuyerIDHasPrefix applies the HasPrefix predicate on the "buyer_id" field.
func BuyerIDHasPrefix(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldHasPrefix(FieldBuyerID, v))
}

// BuyerIDHasSuffix applies the HasSuffix predicate on the "buyer_id" field.
func BuyerIDHasSuffix(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldHasSuffix(FieldBuyerID, v))
}

// BuyerIDIsNil applies the IsNil predicate on the "buyer_id" field.
func BuyerIDIsNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIsNull(FieldBuyerID))
}

// BuyerIDNotNil applies the NotNil predicate on the "buyer_id" field.
func BuyerIDNotNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotNull(FieldBuyerID))
}

// BuyerIDEqualFold applies the EqualFold predicate on the "buyer_id" field.
func BuyerIDEqualFold(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEqualFold(FieldBuyerID, v))
}

// BuyerIDContainsFold applies the ContainsFold predicate on the "buyer_id" field.
func BuyerIDContainsFold(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldContainsFold(FieldBuyerID, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldContainsFold(FieldPhone, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldHasSuffix(FieldCity, v))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldContainsFold(FieldCity, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldContainsFold(FieldState, v))
}

// LatEQ applies the EQ predicate on the "lat" field.
func LatEQ(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldLat, v))
}

// LatNEQ applies the NEQ predicate on the "lat" field.
func LatNEQ(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldLat, v))
}

// LatIn applies the In predicate on the "lat" field.
func LatIn(vs ...float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldLat, vs...))
}

// LatNotIn applies the NotIn predicate on the "lat" field.
func LatNotIn(vs ...float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldLat, vs...))
}

// LatGT applies the GT predicate on the "lat" field.
func LatGT(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldLat, v))
}

// LatGTE applies the GTE predicate on the "lat" field.
func LatGTE(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldLat, v))
}

// LatLT applies the LT predicate on the "lat" field.
func LatLT(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldLat, v))
}

// LatLTE applies the LTE predicate on the "lat" field.
func LatLTE(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldLat, v))
}

// LatIsNil applies the IsNil predicate on the "lat" field.
func LatIsNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIsNull(FieldLat))
}

// LatNotNil applies the NotNil predicate on the "lat" field.
func LatNotNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotNull(FieldLat))
}

// LngEQ applies the EQ predicate on the "lng" field.
func LngEQ(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldLng, v))
}

// LngNEQ applies the NEQ predicate on the "lng" field.
func LngNEQ(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldLng, v))
}

// LngIn applies the In predicate on the "lng" field.
func LngIn(vs ...float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldLng, vs...))
}

// LngNotIn applies the NotIn predicate on the "lng" field.
func LngNotIn(vs ...float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldLng, vs...))
}

// LngGT applies the GT predicate on the "lng" field.
func LngGT(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldLng, v))
}

// LngGTE applies the GTE predicate on the "lng" field.
func LngGTE(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldLng, v))
}

// LngLT applies the LT predicate on the "lng" field.
func LngLT(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldLng, v))
}

// LngLTE applies the LTE predicate on the "lng" field.
func LngLTE(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldLng, v))
}

// LngIsNil applies the IsNil predicate on the "lng" field.
func LngIsNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIsNull(FieldLng))
}

// LngNotNil applies the NotNil predicate on the "lng" field.
func LngNotNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotNull(FieldLng))
}

// RadiusMilesEQ applies the EQ predicate on the "radius_miles" field.
func RadiusMilesEQ(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldRadiusMiles, v))
}

// RadiusMilesNEQ applies the NEQ predicate on the "radius_miles" field.
func RadiusMilesNEQ(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldRadiusMiles, v))
}

// RadiusMilesIn applies the In predicate on the "radius_miles" field.
func RadiusMilesIn(vs ...float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldRadiusMiles, vs...))
}

// RadiusMilesNotIn applies the NotIn predicate on the "radius_miles" field.
func RadiusMilesNotIn(vs ...float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldRadiusMiles, vs...))
}

// RadiusMilesGT applies the GT predicate on the "radius_miles" field.
func RadiusMilesGT(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldRadiusMiles, v))
}

// RadiusMilesGTE applies the GTE predicate on the "radius_miles" field.
func RadiusMilesGTE(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldRadiusMiles, v))
}

// RadiusMilesLT applies the LT predicate on the "radius_miles" field.
func RadiusMilesLT(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldRadiusMiles, v))
}

// RadiusMilesLTE applies the LTE predicate on the "radius_miles" field.
func RadiusMilesLTE(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldRadiusMiles, v))
}

// MinSqftEQ applies the EQ predicate on the "min_sqft" field.
func MinSqftEQ(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldMinSqft, v))
}

// MinSqftNEQ applies the NEQ predicate on the "min_sqft" field.
func MinSqftNEQ(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldMinSqft, v))
}

// MinSqftIn applies the In predicate on the "min_sqft" field.
func MinSqftIn(vs ...int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldMinSqft, vs...))
}

// MinSqftNotIn applies the NotIn predicate on the "min_sqft" field.
func MinSqftNotIn(vs ...int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldMinSqft, vs...))
}

// MinSqftGT applies the GT predicate on the "min_sqft" field.
func MinSqftGT(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldMinSqft, v))
}

// MinSqftGTE applies the GTE predicate on the "min_sqft" field.
func MinSqftGTE(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldMinSqft, v))
}

// MinSqftLT applies the LT predicate on the "min_sqft" field.
func MinSqftLT(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldMinSqft, v))
}

// MinSqftLTE applies the LTE predicate on the "min_sqft" field.
func MinSqftLTE(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldMinSqft, v))
}

// MaxSqftEQ applies the EQ predicate on the "max_sqft" field.
func MaxSqftEQ(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldMaxSqft, v))
}

// MaxSqftNEQ applies the NEQ predicate on the "max_sqft" field.
func MaxSqftNEQ(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldMaxSqft, v))
}

// MaxSqftIn applies the In predicate on the "max_sqft" field.
func MaxSqftIn(vs ...int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldMaxSqft, vs...))
}

// MaxSqftNotIn applies the NotIn predicate on the "max_sqft" field.
func MaxSqftNotIn(vs ...int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldMaxSqft, vs...))
}

// MaxSqftGT applies the GT predicate on the "max_sqft" field.
func MaxSqftGT(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldMaxSqft, v))
}

// MaxSqftGTE applies the GTE predicate on the "max_sqft" field.
func MaxSqftGTE(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldMaxSqft, v))
}

// MaxSqftLT applies the LT predicate on the "max_sqft" field.
func MaxSqftLT(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldMaxSqft, v))
}

// MaxSqftLTE applies the LTE predicate on the "max_sqft" field.
func MaxSqftLTE(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldMaxSqft, v))
}

// UseTypeEQ applies the EQ predicate on the "use_type" field.
func UseTypeEQ(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldUseType, v))
}

// UseTypeNEQ applies the NEQ predicate on the "use_type" field.
func UseTypeNEQ(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldUseType, v))
}

// UseTypeIn applies the In predicate on the "use_type" field.
func UseTypeIn(vs ...string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldUseType, vs...))
}

// UseTypeNotIn applies the NotIn predicate on the "use_type" field.
func UseTypeNotIn(vs ...string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldUseType, vs...))
}

// UseTypeGT applies the GT predicate on the "use_type" field.
func UseTypeGT(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldUseType, v))
}

// UseTypeGTE applies the GTE predicate on the "use_type" field.
func UseTypeGTE(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldUseType, v))
}

// UseTypeLT applies the LT predicate on the "use_type" field.
func UseTypeLT(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldUseType, v))
}

// UseTypeLTE applies the LTE predicate on the "use_type" field.
func UseTypeLTE(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldUseType, v))
}

// UseTypeContains applies the Contains predicate on the "use_type" field.
func UseTypeContains(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldContains(FieldUseType, v))
}

// UseTypeHasPrefix applies the HasPrefix predicate on the "use_type" field.
func UseTypeHasPrefix(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldHasPrefix(FieldUseType, v))
}

// UseTypeHasSuffix applies the HasSuffix predicate on the "use_type" field.
func UseTypeHasSuffix(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldHasSuffix(FieldUseType, v))
}

// UseTypeEqualFold applies the EqualFold predicate on the "use_type" field.
func UseTypeEqualFold(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEqualFold(FieldUseType, v))
}

// UseTypeContainsFold applies the ContainsFold predicate on the "use_type" field.
func UseTypeContainsFold(v string) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldContainsFold(FieldUseType, v))
}

// NeededFromEQ applies the EQ predicate on the "needed_from" field.
func NeededFromEQ(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldNeededFrom, v))
}

// NeededFromNEQ applies the NEQ predicate on the "needed_from" field.
func NeededFromNEQ(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldNeededFrom, v))
}

// NeededFromIn applies the In predicate on the "needed_from" field.
func NeededFromIn(vs ...time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldNeededFrom, vs...))
}

// NeededFromNotIn applies the NotIn predicate on the "needed_from" field.
func NeededFromNotIn(vs ...time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldNeededFrom, vs...))
}

// NeededFromGT applies the GT predicate on the "needed_from" field.
func NeededFromGT(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldNeededFrom, v))
}

// NeededFromGTE applies the GTE predicate on the "needed_from" field.
func NeededFromGTE(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldNeededFrom, v))
}

// NeededFromLT applies the LT predicate on the "needed_from" field.
func NeededFromLT(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldNeededFrom, v))
}

// NeededFromLTE applies the LTE predicate on the "needed_from" field.
func NeededFromLTE(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldNeededFrom, v))
}

// NeededFromIsNil applies the IsNil predicate on the "needed_from" field.
func NeededFromIsNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIsNull(FieldNeededFrom))
}

// NeededFromNotNil applies the NotNil predicate on the "needed_from" field.
func NeededFromNotNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotNull(FieldNeededFrom))
}

// DurationMonthsEQ applies the EQ predicate on the "duration_months" field.
func DurationMonthsEQ(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldDurationMonths, v))
}

// DurationMonthsNEQ applies the NEQ predicate on the "duration_months" field.
func DurationMonthsNEQ(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldDurationMonths, v))
}

// DurationMonthsIn applies the In predicate on the "duration_months" field.
func DurationMonthsIn(vs ...int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldDurationMonths, vs...))
}

// DurationMonthsNotIn applies the NotIn predicate on the "duration_months" field.
func DurationMonthsNotIn(vs ...int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldDurationMonths, vs...))
}

// DurationMonthsGT applies the GT predicate on the "duration_months" field.
func DurationMonthsGT(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldDurationMonths, v))
}

// DurationMonthsGTE applies the GTE predicate on the "duration_months" field.
func DurationMonthsGTE(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldDurationMonths, v))
}

// DurationMonthsLT applies the LT predicate on the "duration_months" field.
func DurationMonthsLT(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldDurationMonths, v))
}

// DurationMonthsLTE applies the LTE predicate on the "duration_months" field.
func DurationMonthsLTE(v int) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldDurationMonths, v))
}

// DurationMonthsIsNil applies the IsNil predicate on the "duration_months" field.
func DurationMonthsIsNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIsNull(FieldDurationMonths))
}

// DurationMonthsNotNil applies the NotNil predicate on the "duration_months" field.
func DurationMonthsNotNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotNull(FieldDurationMonths))
}

// MaxBudgetPerSqftEQ applies the EQ predicate on the "max_budget_per_sqft" field.
func MaxBudgetPerSqftEQ(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldMaxBudgetPerSqft, v))
}

// MaxBudgetPerSqftNEQ applies the NEQ predicate on the "max_budget_per_sqft" field.
func MaxBudgetPerSqftNEQ(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldMaxBudgetPerSqft, v))
}

// MaxBudgetPerSqftIn applies the In predicate on the "max_budget_per_sqft" field.
func MaxBudgetPerSqftIn(vs ...float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldMaxBudgetPerSqft, vs...))
}

// MaxBudgetPerSqftNotIn applies the NotIn predicate on the "max_budget_per_sqft" field.
func MaxBudgetPerSqftNotIn(vs ...float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldMaxBudgetPerSqft, vs...))
}

// MaxBudgetPerSqftGT applies the GT predicate on the "max_budget_per_sqft" field.
func MaxBudgetPerSqftGT(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldMaxBudgetPerSqft, v))
}

// MaxBudgetPerSqftGTE applies the GTE predicate on the "max_budget_per_sqft" field.
func MaxBudgetPerSqftGTE(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldMaxBudgetPerSqft, v))
}

// MaxBudgetPerSqftLT applies the LT predicate on the "max_budget_per_sqft" field.
func MaxBudgetPerSqftLT(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldMaxBudgetPerSqft, v))
}

// MaxBudgetPerSqftLTE applies the LTE predicate on the "max_budget_per_sqft" field.
func MaxBudgetPerSqftLTE(v float64) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldMaxBudgetPerSqft, v))
}

// MaxBudgetPerSqftIsNil applies the IsNil predicate on the "max_budget_per_sqft" field.
func MaxBudgetPerSqftIsNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIsNull(FieldMaxBudgetPerSqft))
}

// MaxBudgetPerSqftNotNil applies the NotNil predicate on the "max_budget_per_sqft" field.
func MaxBudgetPerSqftNotNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotNull(FieldMaxBudgetPerSqft))
}

// RequirementsIsNil applies the IsNil predicate on the "requirements" field.
func RequirementsIsNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIsNull(FieldRequirements))
}

// RequirementsNotNil applies the NotNil predicate on the "requirements" field.
func RequirementsNotNil() predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotNull(FieldRequirements))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBuyer applies the HasEdge predicate on the "buyer" edge.
func HasBuyer() predicate.BuyerNeed {
	return predicate.BuyerNeed(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BuyerTable, BuyerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBuyerWith applies the HasEdge predicate on the "buyer" edge with a given conditions (other predicates).
func HasBuyerWith(preds ...predicate.User) predicate.BuyerNeed {
	return predicate.BuyerNeed(func(s *sql.Selector) {
		step := newBuyerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMatches applies the HasEdge predicate on the "matches" edge.
func HasMatches() predicate.BuyerNeed {
	return predicate.BuyerNeed(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatchesWith applies the HasEdge predicate on the "matches" edge with a given conditions (other predicates).
func HasMatchesWith(preds ...predicate.Match) predicate.BuyerNeed {
	return predicate.BuyerNeed(func(s *sql.Selector) {
		step := newMatchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDlaTokens applies the HasEdge predicate on the "dla_tokens" edge.
func HasDlaTokens() predicate.BuyerNeed {
	return predicate.BuyerNeed(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DlaTokensTable, DlaTokensColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDlaTokensWith applies the HasEdge predicate on the "dla_tokens" edge with a given conditions (other predicates).
func HasDlaTokensWith(preds ...predicate.DLAToken) predicate.BuyerNeed {
	return predicate.BuyerNeed(func(s *sql.Selector) {
		step := newDlaTokensStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BuyerNeed) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BuyerNeed) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BuyerNeed) predicate.BuyerNeed {
	return predicate.BuyerNeed(sql.NotPredicates(p))
}
