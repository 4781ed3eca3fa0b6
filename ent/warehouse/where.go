// Code generated by ent, DO NOT EDIT.

package warehouse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContainsFold(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldCompanyID, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldAddress, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldCity, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldState, v))
}

// Zip applies equality check predicate on the "zip" field. It's identical to ZipEQ.
func Zip(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldZip, v))
}

// Lat applies equality check predicate on the "lat" field. It's identical to LatEQ.
func Lat(v float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldLat, v))
}

// Lng applies equality check predicate on the "lng" field. It's identical to LngEQ.
func Lng(v float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldLng, v))
}

// BuildingSqft applies equality check predicate on the "building_sqft" field. It's identical to BuildingSqftEQ.
func BuildingSqft(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldBuildingSqft, v))
}

// YearBuilt applies equality check predicate on the "year_built" field. It's identical to YearBuiltEQ.
func YearBuilt(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldYearBuilt, v))
}

// ConstructionType applies equality check predicate on the "construction_type" field. It's identical to ConstructionTypeEQ.
func ConstructionType(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldConstructionType, v))
}

// ContactPhone applies equality check predicate on the "contact_phone" field. It's identical to ContactPhoneEQ.
func ContactPhone(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldContactPhone, v))
}

// LastOutreachAt applies equality check predicate on the "last_outreach_at" field. It's identical to LastOutreachAtEQ.
func LastOutreachAt(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldLastOutreachAt, v))
}

// OutreachCount applies equality check predicate on the "outreach_count" field. It's identical to OutreachCountEQ.
func OutreachCount(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldOutreachCount, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContainsFold(FieldCompanyID, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContainsFold(FieldAddress, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasSuffix(FieldCity, v))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContainsFold(FieldCity, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContainsFold(FieldState, v))
}

// ZipEQ applies the EQ predicate on the "zip" field.
func ZipEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldZip, v))
}

// ZipNEQ applies the NEQ predicate on the "zip" field.
func ZipNEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldZip, v))
}

// ZipIn applies the In predicate on the "zip" field.
func ZipIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldZip, vs...))
}

// ZipNotIn applies the NotIn predicate on the "zip" field.
func ZipNotIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldZip, vs...))
}

// ZipGT applies the GT predicate on the "zip" field.
func ZipGT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldZip, v))
}

// ZipGTE applies the GTE predicate on the "zip" field.
func ZipGTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldZip, v))
}

// ZipLT applies the LT predicate on the "zip" field.
func ZipLT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldZip, v))
}

// ZipLTE applies the LTE predicate on the "zip" field.
func ZipLTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldZip, v))
}

// ZipContains applies the Contains predicate on the "zip" field.
func ZipContains(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContains(FieldZip, v))
}

// ZipHasPrefix applies the HasPrefix predicate on the "zip" field.
func ZipHasPrefix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasPrefix(FieldZip, v))
}

// ZipHasSuffix applies the HasSuffix predicate on the "zip" field.
func ZipHasSuffix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasSuffix(FieldZip, v))
}

// ZipIsNil applies the IsNil predicate on the "zip" field.
func ZipIsNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIsNull(FieldZip))
}

// ZipNotNil applies the NotNil predicate on the "zip" field.
func ZipNotNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotNull(FieldZip))
}

// ZipEqualFold applies the EqualFold predicate on the "zip" field.
func ZipEqualFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEqualFold(FieldZip, v))
}

// ZipContainsFold applies the ContainsFold predicate on the "zip" field.
func ZipContainsFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContainsFold(FieldZip, v))
}

// LatEQ applies the EQ predicate on the "lat" field.
func LatEQ(v float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldLat, v))
}

// LatNEQ applies the NEQ predicate on the "lat" field.
func LatNEQ(v float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldLat, v))
}

// LatIn applies the In predicate on the "lat" field.
func LatIn(vs ...float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldLat, vs...))
}

// LatNotIn applies the NotIn predicate on the "lat" field.
func LatNotIn(vs ...float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldLat, vs...))
}

// LatGT applies the GT predicate on the "lat" field.
func LatGT(v float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldLat, v))
}

// LatGTE applies the GTE predicate on the "lat" field.
func LatGTE(v float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldLat, v))
}

// LatLT applies the LT predicate on the "lat" field.
func LatLT(v float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldLat, v))
}

// LatLTE applies the LTE predicate on the "lat" field.
func LatLTE(v float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldLat, v))
}

// LatIsNil applies the IsNil predicate on the "lat" field.
func LatIsNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIsNull(FieldLat))
}

// LatNotNil applies the NotNil predicate on the "lat" field.
func LatNotNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotNull(FieldLat))
}

// LngEQ applies the EQ predicate on the "lng" field.
func LngEQ(v float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldLng, v))
}

// LngNEQ applies the NEQ predicate on the "lng" field.
func LngNEQ(v float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldLng, v))
}

// LngIn applies the In predicate on the "lng" field.
func LngIn(vs ...float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldLng, vs...))
}

// LngNotIn applies the NotIn predicate on the "lng" field.
func LngNotIn(vs ...float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldLng, vs...))
}

// LngGT applies the GT predicate on the "lng" field.
func LngGT(v float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldLng, v))
}

// LngGTE applies the GTE predicate on the "lng" field.
func LngGTE(v float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldLng, v))
}

// LngLT applies the LT predicate on the "lng" field.
func LngLT(v float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldLng, v))
}

// LngLTE applies the LTE predicate on the "lng" field.
func LngLTE(v float64) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldLng, v))
}

// LngIsNil applies the IsNil predicate on the "lng" field.
func LngIsNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIsNull(FieldLng))
}

// LngNotNil applies the NotNil predicate on the "lng" field.
func LngNotNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotNull(FieldLng))
}

// BuildingSqftEQ applies the EQ predicate on the "building_sqft" field.
func BuildingSqftEQ(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldBuildingSqft, v))
}

// BuildingSqftNEQ applies the NEQ predicate on the "building_sqft" field.
func BuildingSqftNEQ(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldBuildingSqft, v))
}

// BuildingSqftIn applies the In predicate on the "building_sqft" field.
func BuildingSqftIn(vs ...int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldBuildingSqft, vs...))
}

// BuildingSqftNotIn applies the NotIn predicate on the "building_sqft" field.
func BuildingSqftNotIn(vs ...int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldBuildingSqft, vs...))
}

// BuildingSqftGT applies the GT predicate on the "building_sqft" field.
func BuildingSqftGT(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldBuildingSqft, v))
}

// BuildingSqftGTE applies the GTE predicate on the "building_sqft" field.
func BuildingSqftGTE(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldBuildingSqft, v))
}

// BuildingSqftLT applies the LT predicate on the "building_sqft" field.
func BuildingSqftLT(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldBuildingSqft, v))
}

// BuildingSqftLTE applies the LTE predicate on the "building_sqft" field.
func BuildingSqftLTE(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldBuildingSqft, v))
}

// BuildingSqftIsNil applies the IsNil predicate on the "building_sqft" field.
func BuildingSqftIsNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIsNull(FieldBuildingSqft))
}

// BuildingSqftNotNil applies the NotNil predicate on the "building_sqft" field.
func BuildingSqftNotNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotNull(FieldBuildingSqft))
}

// YearBuiltEQ applies the EQ predicate on the "year_built" field.
func YearBuiltEQ(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldYearBuilt, v))
}

// YearBuiltNEQ applies the NEQ predicate on the "year_built" field.
func YearBuiltNEQ(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldYearBuilt, v))
}

// YearBuiltIn applies the In predicate on the "year_built" field.
func YearBuiltIn(vs ...int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldYearBuilt, vs...))
}

// YearBuiltNotIn applies the NotIn predicate on the "year_built" field.
func YearBuiltNotIn(vs ...int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldYearBuilt, vs...))
}

// YearBuiltGT applies the GT predicate on the "year_built" field.
func YearBuiltGT(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldYearBuilt, v))
}

// YearBuiltGTE applies the GTE predicate on the "year_built" field.
func YearBuiltGTE(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldYearBuilt, v))
}

// YearBuiltLT applies the LT predicate on the "year_built" field.
func YearBuiltLT(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldYearBuilt, v))
}

// YearBuiltLTE applies the LTE predicate on the "year_built" field.
func YearBuiltLTE(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldYearBuilt, v))
}

// YearBuiltIsNil applies the IsNil predicate on the "year_built" field.
func YearBuiltIsNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIsNull(FieldYearBuilt))
}

// YearBuiltNotNil applies the NotNil predicate on the "year_built" field.
func YearBuiltNotNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotNull(FieldYearBuilt))
}

// ConstructionTypeEQ applies the EQ predicate on the "construction_type" field.
func ConstructionTypeEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldConstructionType, v))
}

// ConstructionTypeNEQ applies the NEQ predicate on the "construction_type" field.
func ConstructionTypeNEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldConstructionType, v))
}

// ConstructionTypeIn applies the In predicate on the "construction_type" field.
func ConstructionTypeIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldConstructionType, vs...))
}

// ConstructionTypeNotIn applies the NotIn predicate on the "construction_type" field.
func ConstructionTypeNotIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldConstructionType, vs...))
}

// ConstructionTypeGT applies the GT predicate on the "construction_type" field.
func ConstructionTypeGT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldConstructionType, v))
}

// ConstructionTypeGTE applies the GTE predicate on the "construction_type" field.
func ConstructionTypeGTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldConstructionType, v))
}

// ConstructionTypeLT applies the LT predicate on the "construction_type" field.
func ConstructionTypeLT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldConstructionType, v))
}

// ConstructionTypeLTE applies the LTE predicate on the "construction_type" field.
func ConstructionTypeLTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldConstructionType, v))
}

// ConstructionTypeContains applies the Contains predicate on the "construction_type" field.
func ConstructionTypeContains(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContains(FieldConstructionType, v))
}

// ConstructionTypeHasPrefix applies the HasPrefix predicate on the "construction_type" field.
func ConstructionTypeHasPrefix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasPrefix(FieldConstructionType, v))
}

// ConstructionTypeHasSuffix applies the HasSuffix predicate on the "construction_type" field.
func ConstructionTypeHasSuffix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasSuffix(FieldConstructionType, v))
}

// ConstructionTypeIsNil applies the IsNil predicate on the "construction_type" field.
func ConstructionTypeIsNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIsNull(FieldConstructionType))
}

// ConstructionTypeNotNil applies the NotNil predicate on the "construction_type" field.
func ConstructionTypeNotNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotNull(FieldConstructionType))
}

// ConstructionTypeEqualFold applies the EqualFold predicate on the "construction_type" field.
func ConstructionTypeEqualFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEqualFold(FieldConstructionType, v))
}

// ConstructionTypeContainsFold applies the ContainsFold predicate on the "construction_type" field.
func ConstructionTypeContainsFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContainsFold(FieldConstructionType, v))
}

// GalleryIsNil applies the IsNil predicate on the "gallery" field.
func GalleryIsNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIsNull(FieldGallery))
}

// GalleryNotNil applies the NotNil predicate on the "gallery" field.
func GalleryNotNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotNull(FieldGallery))
}

// ContactPhoneEQ applies the EQ predicate on the "contact_phone" field.
func ContactPhoneEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldContactPhone, v))
}

// ContactPhoneNEQ applies the NEQ predicate on the "contact_phone" field.
func ContactPhoneNEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldContactPhone, v))
}

// ContactPhoneIn applies the In predicate on the "contact_phone" field.
func ContactPhoneIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldContactPhone, vs...))
}

// ContactPhoneNotIn applies the NotIn predicate on the "contact_phone" field.
func ContactPhoneNotIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldContactPhone, vs...))
}

// ContactPhoneGT applies the GT predicate on the "contact_phone" field.
func ContactPhoneGT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldContactPhone, v))
}

// ContactPhoneGTE applies the GTE predicate on the "contact_phone" field.
func ContactPhoneGTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldContactPhone, v))
}

// ContactPhoneLT applies the LT predicate on the "contact_phone" field.
func ContactPhoneLT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldContactPhone, v))
}

// ContactPhoneLTE applies the LTE predicate on the "contact_phone" field.
func ContactPhoneLTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldContactPhone, v))
}

// ContactPhoneContains applies the Contains predicate on the "contact_phone" field.
func ContactPhoneContains(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContains(FieldContactPhone, v))
}

// ContactPhoneHasPrefix applies the HasPrefix predicate on the "contact_phone" field.
func ContactPhoneHasPrefix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasPrefix(FieldContactPhone, v))
}

// ContactPhoneHasSuffix applies the HasSuffix predicate on the "contact_phone" field.
func ContactPhoneHasSuffix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasSuffix(FieldContactPhone, v))
}

// ContactPhoneIsNil applies the IsNil predicate on the "contact_phone" field.
func ContactPhoneIsNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIsNull(FieldContactPhone))
}

// ContactPhoneNotNil applies the NotNil predicate on the "contact_phone" field.
func ContactPhoneNotNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotNull(FieldContactPhone))
}

// ContactPhoneEqualFold applies the EqualFold predicate on the "contact_phone" field.
func ContactPhoneEqualFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEqualFold(FieldContactPhone, v))
}

// ContactPhoneContainsFold applies the ContainsFold predicate on the "contact_phone" field.
func ContactPhoneContainsFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContainsFold(FieldContactPhone, v))
}

// SupplierStatusEQ applies the EQ predicate on the "supplier_status" field.
func SupplierStatusEQ(v SupplierStatus) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldSupplierStatus, v))
}

// SupplierStatusNEQ applies the NEQ predicate on the "supplier_status" field.
func SupplierStatusNEQ(v SupplierStatus) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldSupplierStatus, v))
}

// SupplierStatusIn applies the In predicate on the "supplier_status" field.
func SupplierStatusIn(vs ...SupplierStatus) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldSupplierStatus, vs...))
}

// SupplierStatusNotIn applies the NotIn predicate on the "supplier_status" field.
func SupplierStatusNotIn(vs ...SupplierStatus) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldSupplierStatus, vs...))
}

// LastOutreachAtEQ applies the EQ predicate on the "last_outreach_at" field.
func LastOutreachAtEQ(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldLastOutreachAt, v))
}

// LastOutreachAtNEQ applies the NEQ predicate on the "last_outreach_at" field.
func LastOutreachAtNEQ(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldLastOutreachAt, v))
}

// LastOutreachAtIn applies the In predicate on the "last_outreach_at" field.
func LastOutreachAtIn(vs ...time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldLastOutreachAt, vs...))
}

// LastOutreachAtNotIn applies the NotIn predicate on the "last_outreach_at" field.
func LastOutreachAtNotIn(vs ...time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldLastOutreachAt, vs...))
}

// LastOutreachAtGT applies the GT predicate on the "last_outreach_at" field.
func LastOutreachAtGT(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldLastOutreachAt, v))
}

// LastOutreachAtGTE applies the GTE predicate on the "last_outreach_at" field.
func LastOutreachAtGTE(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldLastOutreachAt, v))
}

// LastOutreachAtLT applies the LT predicate on the "last_outreach_at" field.
func LastOutreachAtLT(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldLastOutreachAt, v))
}

// LastOutreachAtLTE applies the LTE predicate on the "last_outreach_at" field.
func LastOutreachAtLTE(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldLastOutreachAt, v))
}

// LastOutreachAtIsNil applies the IsNil predicate on the "last_outreach_at" field.
func LastOutreachAtIsNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIsNull(FieldLastOutreachAt))
}

// LastOutreachAtNotNil applies the NotNil predicate on the "last_outreach_at" field.
func LastOutreachAtNotNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotNull(FieldLastOutreachAt))
}

// OutreachCountEQ applies the EQ predicate on the "outreach_count" field.
func OutreachCountEQ(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldOutreachCount, v))
}

// OutreachCountNEQ applies the NEQ predicate on the "outreach_count" field.
func OutreachCountNEQ(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldOutreachCount, v))
}

// OutreachCountIn applies the In predicate on the "outreach_count" field.
func OutreachCountIn(vs ...int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldOutreachCount, vs...))
}

// OutreachCountNotIn applies the NotIn predicate on the "outreach_count" field.
func OutreachCountNotIn(vs ...int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldOutreachCount, vs...))
}

// OutreachCountGT applies the GT predicate on the "outreach_count" field.
func OutreachCountGT(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldOutreachCount, v))
}

// OutreachCountGTE applies the GTE predicate on the "outreach_count" field.
func OutreachCountGTE(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldOutreachCount, v))
}

// OutreachCountLT applies the LT predicate on the "outreach_count" field.
func OutreachCountLT(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldOutreachCount, v))
}

// OutreachCountLTE applies the LTE predicate on the "outreach_count" field.
func OutreachCountLTE(v int) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldOutreachCount, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Warehouse {
	return predicate.Warehouse(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTruthCore applies the HasEdge predicate on the "truth_core" edge.
func HasTruthCore() predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, TruthCoreTable, TruthCoreColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTruthCoreWith applies the HasEdge predicate on the "truth_core" edge with a given conditions (other predicates).
func HasTruthCoreWith(preds ...predicate.TruthCore) predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := newTruthCoreStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMatches applies the HasEdge predicate on the "matches" edge.
func HasMatches() predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatchesWith applies the HasEdge predicate on the "matches" edge with a given conditions (other predicates).
func HasMatchesWith(preds ...predicate.Match) predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := newMatchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMemories applies the HasEdge predicate on the "memories" edge.
func HasMemories() predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MemoriesTable, MemoriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMemoriesWith applies the HasEdge predicate on the "memories" edge with a given conditions (other predicates).
func HasMemoriesWith(preds ...predicate.ContextualMemory) predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := newMemoriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.PropertyQuestion) predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasKnowledge applies the HasEdge predicate on the "knowledge" edge.
func HasKnowledge() predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, KnowledgeTable, KnowledgeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKnowledgeWith applies the HasEdge predicate on the "knowledge" edge with a given conditions (other predicates).
func HasKnowledgeWith(preds ...predicate.PropertyKnowledge) predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := newKnowledgeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDlaTokens applies the HasEdge predicate on the "dla_tokens" edge.
func HasDlaTokens() predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DlaTokensTable, DlaTokensColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDlaTokensWith applies the HasEdge predicate on the "dla_tokens" edge with a given conditions (other predicates).
func HasDlaTokensWith(preds ...predicate.DLAToken) predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := newDlaTokensStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasToggleHistory applies the HasEdge predicate on the "toggle_history" edge.
func HasToggleHistory() predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ToggleHistoryTable, ToggleHistoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasToggleHistoryWith applies the HasEdge predicate on the "toggle_history" edge with a given conditions (other predicates).
func HasToggleHistoryWith(preds ...predicate.ToggleHistory) predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := newToggleHistoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSupplierAgreements applies the HasEdge predicate on the "supplier_agreements" edge.
func HasSupplierAgreements() predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SupplierAgreementsTable, SupplierAgreementsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSupplierAgreementsWith applies the HasEdge predicate on the "supplier_agreements" edge with a given conditions (other predicates).
func HasSupplierAgreementsWith(preds ...predicate.SupplierAgreement) predicate.Warehouse {
	return predicate.Warehouse(func(s *sql.Selector) {
		step := newSupplierAgreementsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Warehouse) predicate.Warehouse {
	return predicate.Warehouse(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Warehouse) predicate.Warehouse {
	return predicate.Warehouse(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Warehouse) predicate.Warehouse {
	return predicate.Warehouse(sql.NotPredicates(p))
}
