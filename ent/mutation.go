// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/warehouse-exchange/wex/ent/buyerneed"
	"github.com/warehouse-exchange/wex/ent/company"
	"github.com/warehouse-exchange/wex/ent/contextualmemory"
	"github.com/warehouse-exchange/wex/ent/conversation"
	"github.com/warehouse-exchange/wex/ent/dlatoken"
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementagreement"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
	"github.com/warehouse-exchange/wex/ent/inboundmessage"
	"github.com/warehouse-exchange/wex/ent/instantbookscore"
	"github.com/warehouse-exchange/wex/ent/marketrate"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/notification"
	"github.com/warehouse-exchange/wex/ent/paymentrecord"
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/ent/propertyknowledge"
	"github.com/warehouse-exchange/wex/ent/propertyquestion"
	"github.com/warehouse-exchange/wex/ent/searchsession"
	"github.com/warehouse-exchange/wex/ent/supplieragreement"
	"github.com/warehouse-exchange/wex/ent/togglehistory"
	"github.com/warehouse-exchange/wex/ent/truthcore"
	"github.com/warehouse-exchange/wex/ent/uploadtoken"
	"github.com/warehouse-exchange/wex/ent/user"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBuyerNeed           = "BuyerNeed"
	TypeCompany             = "Company"
	TypeContextualMemory    = "ContextualMemory"
	TypeConversation        = "Conversation"
	TypeDLAToken            = "DLAToken"
	TypeEngagement          = "Engagement"
	TypeEngagementAgreement = "EngagementAgreement"
	TypeEngagementEvent     = "EngagementEvent"
	TypeInboundMessage      = "InboundMessage"
	TypeInstantBookScore    = "InstantBookScore"
	TypeMarketRate          = "MarketRate"
	TypeMatch               = "Match"
	TypeNotification        = "Notification"
	TypePaymentRecord       = "PaymentRecord"
	TypePropertyKnowledge   = "PropertyKnowledge"
	TypePropertyQuestion    = "PropertyQuestion"
	TypeSearchSession       = "SearchSession"
	TypeSupplierAgreement   = "SupplierAgreement"
	TypeToggleHistory       = "ToggleHistory"
	TypeTruthCore           = "TruthCore"
	TypeUploadToken         = "UploadToken"
	TypeUser                = "User"
	TypeWarehouse           = "Warehouse"
)

// BuyerNeedMutation represents an operation that mutates the BuyerNeed nodes in the graph.
type BuyerNeedMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	phone                  *string
	city                   *string
	state                  *string
	lat                    *float64
	addlat                 *float64
	lng                    *float64
	addlng                 *float64
	radius_miles           *float64
	addradius_miles        *float64
	min_sqft               *int
	addmin_sqft            *int
	max_sqft               *int
	addmax_sqft            *int
	use_type               *string
	needed_from            *time.Time
	duration_months        *int
	addduration_months     *int
	max_budget_per_sqft    *float64
	addmax_budget_per_sqft *float64
	requirements           *map[string]interface{}
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	buyer                  *string
	clearedbuyer           bool
	matches                map[string]struct{}
	removedmatches         map[string]struct{}
	clearedmatches         bool
	dla_tokens             map[string]struct{}
	removeddla_tokens      map[string]struct{}
	cleareddla_tokens      bool
	done                   bool
	oldValue               func(context.Context) (*BuyerNeed, error)
	predicates             []predicate.BuyerNeed
}

var _ ent.Mutation = (*BuyerNeedMutation)(nil)

// buyerneedOption allows management of the mutation configuration using functional options.
type buyerneedOption func(*BuyerNeedMutation)

// newBuyerNeedMutation creates new mutation for the BuyerNeed entity.
func newBuyerNeedMutation(c config, op Op, opts ...buyerneedOption) *BuyerNeedMutation {
	m := &BuyerNeedMutation{
		config:        c,
		op:            op,
		typ:           TypeBuyerNeed,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBuyerNeedID sets the ID field of the mutation.
func withBuyerNeedID(id string) buyerneedOption {
	return func(m *BuyerNeedMutation) {
		var (
			err   error
			once  sync.Once
			value *BuyerNeed
		)
		m.oldValue = func(ctx context.Context) (*BuyerNeed, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BuyerNeed.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBuyerNeed sets the old BuyerNeed of the mutation.
func withBuyerNeed(node *BuyerNeed) buyerneedOption {
	return func(m *BuyerNeedMutation) {
		m.oldValue = func(context.Context) (*BuyerNeed, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BuyerNeedMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BuyerNeedMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BuyerNeed entities.
func (m *BuyerNeedMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BuyerNeedMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BuyerNeedMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BuyerNeed.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBuyerID sets the "buyer_id" field.
func (m *BuyerNeedMutation) SetBuyerID(s string) {
	m.buyer = &s
}

// BuyerID returns the value of the "buyer_id" field in the mutation.
func (m *BuyerNeedMutation) BuyerID() (r string, exists bool) {
	v := m.buyer
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerID returns the old "buyer_id" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldBuyerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerID: %w", err)
	}
	return oldValue.BuyerID, nil
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (m *BuyerNeedMutation) ClearBuyerID() {
	m.buyer = nil
	m.clearedFields[buyerneed.FieldBuyerID] = struct{}{}
}

// BuyerIDCleared returns if the "buyer_id" field was cleared in this mutation.
func (m *BuyerNeedMutation) BuyerIDCleared() bool {
	_, ok := m.clearedFields[buyerneed.FieldBuyerID]
	return ok
}

// ResetBuyerID resets all changes to the "buyer_id" field.
func (m *BuyerNeedMutation) ResetBuyerID() {
	m.buyer = nil
	delete(m.clearedFields, buyerneed.FieldBuyerID)
}

// SetPhone sets the "phone" field.
func (m *BuyerNeedMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *BuyerNeedMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *BuyerNeedMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[buyerneed.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *BuyerNeedMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[buyerneed.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *BuyerNeedMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, buyerneed.FieldPhone)
}

// SetCity sets the "city" field.
func (m *BuyerNeedMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *BuyerNeedMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ResetCity resets all changes to the "city" field.
func (m *BuyerNeedMutation) ResetCity() {
	m.city = nil
}

// SetState sets the "state" field.
func (m *BuyerNeedMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *BuyerNeedMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *BuyerNeedMutation) ResetState() {
	m.state = nil
}

// SetLat sets the "lat" field.
func (m *BuyerNeedMutation) SetLat(f float64) {
	m.lat = &f
	m.addlat = nil
}

// Lat returns the value of the "lat" field in the mutation.
func (m *BuyerNeedMutation) Lat() (r float64, exists bool) {
	v := m.lat
	if v == nil {
		return
	}
	return *v, true
}

// OldLat returns the old "lat" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldLat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLat: %w", err)
	}
	return oldValue.Lat, nil
}

// AddLat adds f to the "lat" field.
func (m *BuyerNeedMutation) AddLat(f float64) {
	if m.addlat != nil {
		*m.addlat += f
	} else {
		m.addlat = &f
	}
}

// AddedLat returns the value that was added to the "lat" field in this mutation.
func (m *BuyerNeedMutation) AddedLat() (r float64, exists bool) {
	v := m.addlat
	if v == nil {
		return
	}
	return *v, true
}

// ClearLat clears the value of the "lat" field.
func (m *BuyerNeedMutation) ClearLat() {
	m.lat = nil
	m.addlat = nil
	m.clearedFields[buyerneed.FieldLat] = struct{}{}
}

// LatCleared returns if the "lat" field was cleared in this mutation.
func (m *BuyerNeedMutation) LatCleared() bool {
	_, ok := m.clearedFields[buyerneed.FieldLat]
	return ok
}

// ResetLat resets all changes to the "lat" field.
func (m *BuyerNeedMutation) ResetLat() {
	m.lat = nil
	m.addlat = nil
	delete(m.clearedFields, buyerneed.FieldLat)
}

// SetLng sets the "lng" field.
func (m *BuyerNeedMutation) SetLng(f float64) {
	m.lng = &f
	m.addlng = nil
}

// Lng returns the value of the "lng" field in the mutation.
func (m *BuyerNeedMutation) Lng() (r float64, exists bool) {
	v := m.lng
	if v == nil {
		return
	}
	return *v, true
}

// OldLng returns the old "lng" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldLng(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLng is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLng requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLng: %w", err)
	}
	return oldValue.Lng, nil
}

// AddLng adds f to the "lng" field.
func (m *BuyerNeedMutation) AddLng(f float64) {
	if m.addlng != nil {
		*m.addlng += f
	} else {
		m.addlng = &f
	}
}

// AddedLng returns the value that was added to the "lng" field in this mutation.
func (m *BuyerNeedMutation) AddedLng() (r float64, exists bool) {
	v := m.addlng
	if v == nil {
		return
	}
	return *v, true
}

// ClearLng clears the value of the "lng" field.
func (m *BuyerNeedMutation) ClearLng() {
	m.lng = nil
	m.addlng = nil
	m.clearedFields[buyerneed.FieldLng] = struct{}{}
}

// LngCleared returns if the "lng" field was cleared in this mutation.
func (m *BuyerNeedMutation) LngCleared() bool {
	_, ok := m.clearedFields[buyerneed.FieldLng]
	return ok
}

// ResetLng resets all changes to the "lng" field.
func (m *BuyerNeedMutation) ResetLng() {
	m.lng = nil
	m.addlng = nil
	delete(m.clearedFields, buyerneed.FieldLng)
}

// SetRadiusMiles sets the "radius_miles" field.
func (m *BuyerNeedMutation) SetRadiusMiles(f float64) {
	m.radius_miles = &f
	m.addradius_miles = nil
}

// RadiusMiles returns the value of the "radius_miles" field in the mutation.
func (m *BuyerNeedMutation) RadiusMiles() (r float64, exists bool) {
	v := m.radius_miles
	if v == nil {
		return
	}
	return *v, true
}

// OldRadiusMiles returns the old "radius_miles" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldRadiusMiles(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRadiusMiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRadiusMiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRadiusMiles: %w", err)
	}
	return oldValue.RadiusMiles, nil
}

// AddRadiusMiles adds f to the "radius_miles" field.
func (m *BuyerNeedMutation) AddRadiusMiles(f float64) {
	if m.addradius_miles != nil {
		*m.addradius_miles += f
	} else {
		m.addradius_miles = &f
	}
}

// AddedRadiusMiles returns the value that was added to the "radius_miles" field in this mutation.
func (m *BuyerNeedMutation) AddedRadiusMiles() (r float64, exists bool) {
	v := m.addradius_miles
	if v == nil {
		return
	}
	return *v, true
}

// ResetRadiusMiles resets all changes to the "radius_miles" field.
func (m *BuyerNeedMutation) ResetRadiusMiles() {
	m.radius_miles = nil
	m.addradius_miles = nil
}

// SetMinSqft sets the "min_sqft" field.
func (m *BuyerNeedMutation) SetMinSqft(i int) {
	m.min_sqft = &i
	m.addmin_sqft = nil
}

// MinSqft returns the value of the "min_sqft" field in the mutation.
func (m *BuyerNeedMutation) MinSqft() (r int, exists bool) {
	v := m.min_sqft
	if v == nil {
		return
	}
	return *v, true
}

// OldMinSqft returns the old "min_sqft" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldMinSqft(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinSqft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinSqft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinSqft: %w", err)
	}
	return oldValue.MinSqft, nil
}

// AddMinSqft adds i to the "min_sqft" field.
func (m *BuyerNeedMutation) AddMinSqft(i int) {
	if m.addmin_sqft != nil {
		*m.addmin_sqft += i
	} else {
		m.addmin_sqft = &i
	}
}

// AddedMinSqft returns the value that was added to the "min_sqft" field in this mutation.
func (m *BuyerNeedMutation) AddedMinSqft() (r int, exists bool) {
	v := m.addmin_sqft
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinSqft resets all changes to the "min_sqft" field.
func (m *BuyerNeedMutation) ResetMinSqft() {
	m.min_sqft = nil
	m.addmin_sqft = nil
}

// SetMaxSqft sets the "max_sqft" field.
func (m *BuyerNeedMutation) SetMaxSqft(i int) {
	m.max_sqft = &i
	m.addmax_sqft = nil
}

// MaxSqft returns the value of the "max_sqft" field in the mutation.
func (m *BuyerNeedMutation) MaxSqft() (r int, exists bool) {
	v := m.max_sqft
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxSqft returns the old "max_sqft" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldMaxSqft(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxSqft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxSqft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxSqft: %w", err)
	}
	return oldValue.MaxSqft, nil
}

// AddMaxSqft adds i to the "max_sqft" field.
func (m *BuyerNeedMutation) AddMaxSqft(i int) {
	if m.addmax_sqft != nil {
		*m.addmax_sqft += i
	} else {
		m.addmax_sqft = &i
	}
}

// AddedMaxSqft returns the value that was added to the "max_sqft" field in this mutation.
func (m *BuyerNeedMutation) AddedMaxSqft() (r int, exists bool) {
	v := m.addmax_sqft
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxSqft resets all changes to the "max_sqft" field.
func (m *BuyerNeedMutation) ResetMaxSqft() {
	m.max_sqft = nil
	m.addmax_sqft = nil
}

// SetUseType sets the "use_type" field.
func (m *BuyerNeedMutation) SetUseType(s string) {
	m.use_type = &s
}

// UseType returns the value of the "use_type" field in the mutation.
func (m *BuyerNeedMutation) UseType() (r string, exists bool) {
	v := m.use_type
	if v == nil {
		return
	}
	return *v, true
}

// OldUseType returns the old "use_type" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldUseType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseType: %w", err)
	}
	return oldValue.UseType, nil
}

// ResetUseType resets all changes to the "use_type" field.
func (m *BuyerNeedMutation) ResetUseType() {
	m.use_type = nil
}

// SetNeededFrom sets the "needed_from" field.
func (m *BuyerNeedMutation) SetNeededFrom(t time.Time) {
	m.needed_from = &t
}

// NeededFrom returns the value of the "needed_from" field in the mutation.
func (m *BuyerNeedMutation) NeededFrom() (r time.Time, exists bool) {
	v := m.needed_from
	if v == nil {
		return
	}
	return *v, true
}

// OldNeededFrom returns the old "needed_from" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldNeededFrom(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeededFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeededFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeededFrom: %w", err)
	}
	return oldValue.NeededFrom, nil
}

// ClearNeededFrom clears the value of the "needed_from" field.
func (m *BuyerNeedMutation) ClearNeededFrom() {
	m.needed_from = nil
	m.clearedFields[buyerneed.FieldNeededFrom] = struct{}{}
}

// NeededFromCleared returns if the "needed_from" field was cleared in this mutation.
func (m *BuyerNeedMutation) NeededFromCleared() bool {
	_, ok := m.clearedFields[buyerneed.FieldNeededFrom]
	return ok
}

// ResetNeededFrom resets all changes to the "needed_from" field.
func (m *BuyerNeedMutation) ResetNeededFrom() {
	m.needed_from = nil
	delete(m.clearedFields, buyerneed.FieldNeededFrom)
}

// SetDurationMonths sets the "duration_months" field.
func (m *BuyerNeedMutation) SetDurationMonths(i int) {
	m.duration_months = &i
	m.addduration_months = nil
}

// DurationMonths returns the value of the "duration_months" field in the mutation.
func (m *BuyerNeedMutation) DurationMonths() (r int, exists bool) {
	v := m.duration_months
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMonths returns the old "duration_months" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldDurationMonths(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMonths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMonths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMonths: %w", err)
	}
	return oldValue.DurationMonths, nil
}

// AddDurationMonths adds i to the "duration_months" field.
func (m *BuyerNeedMutation) AddDurationMonths(i int) {
	if m.addduration_months != nil {
		*m.addduration_months += i
	} else {
		m.addduration_months = &i
	}
}

// AddedDurationMonths returns the value that was added to the "duration_months" field in this mutation.
func (m *BuyerNeedMutation) AddedDurationMonths() (r int, exists bool) {
	v := m.addduration_months
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMonths clears the value of the "duration_months" field.
func (m *BuyerNeedMutation) ClearDurationMonths() {
	m.duration_months = nil
	m.addduration_months = nil
	m.clearedFields[buyerneed.FieldDurationMonths] = struct{}{}
}

// DurationMonthsCleared returns if the "duration_months" field was cleared in this mutation.
func (m *BuyerNeedMutation) DurationMonthsCleared() bool {
	_, ok := m.clearedFields[buyerneed.FieldDurationMonths]
	return ok
}

// ResetDurationMonths resets all changes to the "duration_months" field.
func (m *BuyerNeedMutation) ResetDurationMonths() {
	m.duration_months = nil
	m.addduration_months = nil
	delete(m.clearedFields, buyerneed.FieldDurationMonths)
}

// SetMaxBudgetPerSqft sets the "max_budget_per_sqft" field.
func (m *BuyerNeedMutation) SetMaxBudgetPerSqft(f float64) {
	m.max_budget_per_sqft = &f
	m.addmax_budget_per_sqft = nil
}

// MaxBudgetPerSqft returns the value of the "max_budget_per_sqft" field in the mutation.
func (m *BuyerNeedMutation) MaxBudgetPerSqft() (r float64, exists bool) {
	v := m.max_budget_per_sqft
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxBudgetPerSqft returns the old "max_budget_per_sqft" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldMaxBudgetPerSqft(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxBudgetPerSqft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxBudgetPerSqft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxBudgetPerSqft: %w", err)
	}
	return oldValue.MaxBudgetPerSqft, nil
}

// AddMaxBudgetPerSqft adds f to the "max_budget_per_sqft" field.
func (m *BuyerNeedMutation) AddMaxBudgetPerSqft(f float64) {
	if m.addmax_budget_per_sqft != nil {
		*m.addmax_budget_per_sqft += f
	} else {
		m.addmax_budget_per_sqft = &f
	}
}

// AddedMaxBudgetPerSqft returns the value that was added to the "max_budget_per_sqft" field in this mutation.
func (m *BuyerNeedMutation) AddedMaxBudgetPerSqft() (r float64, exists bool) {
	v := m.addmax_budget_per_sqft
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxBudgetPerSqft clears the value of the "max_budget_per_sqft" field.
func (m *BuyerNeedMutation) ClearMaxBudgetPerSqft() {
	m.max_budget_per_sqft = nil
	m.addmax_budget_per_sqft = nil
	m.clearedFields[buyerneed.FieldMaxBudgetPerSqft] = struct{}{}
}

// MaxBudgetPerSqftCleared returns if the "max_budget_per_sqft" field was cleared in this mutation.
func (m *BuyerNeedMutation) MaxBudgetPerSqftCleared() bool {
	_, ok := m.clearedFields[buyerneed.FieldMaxBudgetPerSqft]
	return ok
}

// ResetMaxBudgetPerSqft resets all changes to the "max_budget_per_sqft" field.
func (m *BuyerNeedMutation) ResetMaxBudgetPerSqft() {
	m.max_budget_per_sqft = nil
	m.addmax_budget_per_sqft = nil
	delete(m.clearedFields, buyerneed.FieldMaxBudgetPerSqft)
}

// SetRequirements sets the "requirements" field.
func (m *BuyerNeedMutation) SetRequirements(value map[string]interface{}) {
	m.requirements = &value
}

// Requirements returns the value of the "requirements" field in the mutation.
func (m *BuyerNeedMutation) Requirements() (r map[string]interface{}, exists bool) {
	v := m.requirements
	if v == nil {
		return
	}
	return *v, true
}

// OldRequirements returns the old "requirements" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldRequirements(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequirements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequirements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequirements: %w", err)
	}
	return oldValue.Requirements, nil
}

// ClearRequirements clears the value of the "requirements" field.
func (m *BuyerNeedMutation) ClearRequirements() {
	m.requirements = nil
	m.clearedFields[buyerneed.FieldRequirements] = struct{}{}
}

// RequirementsCleared returns if the "requirements" field was cleared in this mutation.
func (m *BuyerNeedMutation) RequirementsCleared() bool {
	_, ok := m.clearedFields[buyerneed.FieldRequirements]
	return ok
}

// ResetRequirements resets all changes to the "requirements" field.
func (m *BuyerNeedMutation) ResetRequirements() {
	m.requirements = nil
	delete(m.clearedFields, buyerneed.FieldRequirements)
}

// SetCreatedAt sets the "created_at" field.
func (m *BuyerNeedMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BuyerNeedMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BuyerNeedMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BuyerNeedMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BuyerNeedMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BuyerNeed entity.
// If the BuyerNeed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerNeedMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BuyerNeedMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBuyer clears the "buyer" edge to the User entity.
func (m *BuyerNeedMutation) ClearBuyer() {
	m.clearedbuyer = true
	m.clearedFields[buyerneed.FieldBuyerID] = struct{}{}
}

// BuyerCleared reports if the "buyer" edge to the User entity was cleared.
func (m *BuyerNeedMutation) BuyerCleared() bool {
	return m.BuyerIDCleared() || m.clearedbuyer
}

// BuyerIDs returns the "buyer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BuyerID instead. It exists only for internal usage by the builders.
func (m *BuyerNeedMutation) BuyerIDs() (ids []string) {
	if id := m.buyer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBuyer resets all changes to the "buyer" edge.
func (m *BuyerNeedMutation) ResetBuyer() {
	m.buyer = nil
	m.clearedbuyer = false
}

// AddMatchIDs adds the "matches" edge to the Match entity by ids.
func (m *BuyerNeedMutation) AddMatchIDs(ids ...string) {
	if m.matches == nil {
		m.matches = make(map[string]struct{})
	}
	for i := range ids {
		m.matches[ids[i]] = struct{}{}
	}
}

// ClearMatches clears the "matches" edge to the Match entity.
func (m *BuyerNeedMutation) ClearMatches() {
	m.clearedmatches = true
}

// MatchesCleared reports if the "matches" edge to the Match entity was cleared.
func (m *BuyerNeedMutation) MatchesCleared() bool {
	return m.clearedmatches
}

// RemoveMatchIDs removes the "matches" edge to the Match entity by IDs.
func (m *BuyerNeedMutation) RemoveMatchIDs(ids ...string) {
	if m.removedmatches == nil {
		m.removedmatches = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.matches, ids[i])
		m.removedmatches[ids[i]] = struct{}{}
	}
}

// RemovedMatches returns the removed IDs of the "matches" edge to the Match entity.
func (m *BuyerNeedMutation) RemovedMatchesIDs() (ids []string) {
	for id := range m.removedmatches {
		ids = append(ids, id)
	}
	return
}

// MatchesIDs returns the "matches" edge IDs in the mutation.
func (m *BuyerNeedMutation) MatchesIDs() (ids []string) {
	for id := range m.matches {
		ids = append(ids, id)
	}
	return
}

// ResetMatches resets all changes to the "matches" edge.
func (m *BuyerNeedMutation) ResetMatches() {
	m.matches = nil
	m.clearedmatches = false
	m.removedmatches = nil
}

// AddDlaTokenIDs adds the "dla_tokens" edge to the DLAToken entity by ids.
func (m *BuyerNeedMutation) AddDlaTokenIDs(ids ...string) {
	if m.dla_tokens == nil {
		m.dla_tokens = make(map[string]struct{})
	}
	for i := range ids {
		m.dla_tokens[ids[i]] = struct{}{}
	}
}

// ClearDlaTokens clears the "dla_tokens" edge to the DLAToken entity.
func (m *BuyerNeedMutation) ClearDlaTokens() {
	m.cleareddla_tokens = true
}

// DlaTokensCleared reports if the "dla_tokens" edge to the DLAToken entity was cleared.
func (m *BuyerNeedMutation) DlaTokensCleared() bool {
	return m.cleareddla_tokens
}

// RemoveDlaTokenIDs removes the "dla_tokens" edge to the DLAToken entity by IDs.
func (m *BuyerNeedMutation) RemoveDlaTokenIDs(ids ...string) {
	if m.removeddla_tokens == nil {
		m.removeddla_tokens = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.dla_tokens, ids[i])
		m.removeddla_tokens[ids[i]] = struct{}{}
	}
}

// RemovedDlaTokens returns the removed IDs of the "dla_tokens" edge to the DLAToken entity.
func (m *BuyerNeedMutation) RemovedDlaTokensIDs() (ids []string) {
	for id := range m.removeddla_tokens {
		ids = append(ids, id)
	}
	return
}

// DlaTokensIDs returns the "dla_tokens" edge IDs in the mutation.
func (m *BuyerNeedMutation) DlaTokensIDs() (ids []string) {
	for id := range m.dla_tokens {
		ids = append(ids, id)
	}
	return
}

// ResetDlaTokens resets all changes to the "dla_tokens" edge.
func (m *BuyerNeedMutation) ResetDlaTokens() {
	m.dla_tokens = nil
	m.cleareddla_tokens = false
	m.removeddla_tokens = nil
}

// Where appends a list predicates to the BuyerNeedMutation builder.
func (m *BuyerNeedMutation) Where(ps ...predicate.BuyerNeed) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BuyerNeedMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BuyerNeedMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BuyerNeed, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BuyerNeedMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BuyerNeedMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BuyerNeed).
func (m *BuyerNeedMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BuyerNeedMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.buyer != nil {
		fields = append(fields, buyerneed.FieldBuyerID)
	}
	if m.phone != nil {
		fields = append(fields, buyerneed.FieldPhone)
	}
	if m.city != nil {
		fields = append(fields, buyerneed.FieldCity)
	}
	if m.state != nil {
		fields = append(fields, buyerneed.FieldState)
	}
	if m.lat != nil {
		fields = append(fields, buyerneed.FieldLat)
	}
	if m.lng != nil {
		fields = append(fields, buyerneed.FieldLng)
	}
	if m.radius_miles != nil {
		fields = append(fields, buyerneed.FieldRadiusMiles)
	}
	if m.min_sqft != nil {
		fields = append(fields, buyerneed.FieldMinSqft)
	}
	if m.max_sqft != nil {
		fields = append(fields, buyerneed.FieldMaxSqft)
	}
	if m.use_type != nil {
		fields = append(fields, buyerneed.FieldUseType)
	}
	if m.needed_from != nil {
		fields = append(fields, buyerneed.FieldNeededFrom)
	}
	if m.duration_months != nil {
		fields = append(fields, buyerneed.FieldDurationMonths)
	}
	if m.max_budget_per_sqft != nil {
		fields = append(fields, buyerneed.FieldMaxBudgetPerSqft)
	}
	if m.requirements != nil {
		fields = append(fields, buyerneed.FieldRequirements)
	}
	if m.created_at != nil {
		fields = append(fields, buyerneed.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, buyerneed.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BuyerNeedMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case buyerneed.FieldBuyerID:
		return m.BuyerID()
	case buyerneed.FieldPhone:
		return m.Phone()
	case buyerneed.FieldCity:
		return m.City()
	case buyerneed.FieldState:
		return m.State()
	case buyerneed.FieldLat:
		return m.Lat()
	case buyerneed.FieldLng:
		return m.Lng()
	case buyerneed.FieldRadiusMiles:
		return m.RadiusMiles()
	case buyerneed.FieldMinSqft:
		return m.MinSqft()
	case buyerneed.FieldMaxSqft:
		return m.MaxSqft()
	case buyerneed.FieldUseType:
		return m.UseType()
	case buyerneed.FieldNeededFrom:
		return m.NeededFrom()
	case buyerneed.FieldDurationMonths:
		return m.DurationMonths()
	case buyerneed.FieldMaxBudgetPerSqft:
		return m.MaxBudgetPerSqft()
	case buyerneed.FieldRequirements:
		return m.Requirements()
	case buyerneed.FieldCreatedAt:
		return m.CreatedAt()
	case buyerneed.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BuyerNeedMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case buyerneed.FieldBuyerID:
		return m.OldBuyerID(ctx)
	case buyerneed.FieldPhone:
		return m.OldPhone(ctx)
	case buyerneed.FieldCity:
		return m.OldCity(ctx)
	case buyerneed.FieldState:
		return m.OldState(ctx)
	case buyerneed.FieldLat:
		return m.OldLat(ctx)
	case buyerneed.FieldLng:
		return m.OldLng(ctx)
	case buyerneed.FieldRadiusMiles:
		return m.OldRadiusMiles(ctx)
	case buyerneed.FieldMinSqft:
		return m.OldMinSqft(ctx)
	case buyerneed.FieldMaxSqft:
		return m.OldMaxSqft(ctx)
	case buyerneed.FieldUseType:
		return m.OldUseType(ctx)
	case buyerneed.FieldNeededFrom:
		return m.OldNeededFrom(ctx)
	case buyerneed.FieldDurationMonths:
		return m.OldDurationMonths(ctx)
	case buyerneed.FieldMaxBudgetPerSqft:
		return m.OldMaxBudgetPerSqft(ctx)
	case buyerneed.FieldRequirements:
		return m.OldRequirements(ctx)
	case buyerneed.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case buyerneed.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BuyerNeed field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuyerNeedMutation) SetField(name string, value ent.Value) error {
	switch name {
	case buyerneed.FieldBuyerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerID(v)
		return nil
	case buyerneed.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case buyerneed.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case buyerneed.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case buyerneed.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLat(v)
		return nil
	case buyerneed.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLng(v)
		return nil
	case buyerneed.FieldRadiusMiles:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRadiusMiles(v)
		return nil
	case buyerneed.FieldMinSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinSqft(v)
		return nil
	case buyerneed.FieldMaxSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxSqft(v)
		return nil
	case buyerneed.FieldUseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseType(v)
		return nil
	case buyerneed.FieldNeededFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeededFrom(v)
		return nil
	case buyerneed.FieldDurationMonths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMonths(v)
		return nil
	case buyerneed.FieldMaxBudgetPerSqft:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxBudgetPerSqft(v)
		return nil
	case buyerneed.FieldRequirements:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequirements(v)
		return nil
	case buyerneed.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case buyerneed.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BuyerNeed field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BuyerNeedMutation) AddedFields() []string {
	var fields []string
	if m.addlat != nil {
		fields = append(fields, buyerneed.FieldLat)
	}
	if m.addlng != nil {
		fields = append(fields, buyerneed.FieldLng)
	}
	if m.addradius_miles != nil {
		fields = append(fields, buyerneed.FieldRadiusMiles)
	}
	if m.addmin_sqft != nil {
		fields = append(fields, buyerneed.FieldMinSqft)
	}
	if m.addmax_sqft != nil {
		fields = append(fields, buyerneed.FieldMaxSqft)
	}
	if m.addduration_months != nil {
		fields = append(fields, buyerneed.FieldDurationMonths)
	}
	if m.addmax_budget_per_sqft != nil {
		fields = append(fields, buyerneed.FieldMaxBudgetPerSqft)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BuyerNeedMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case buyerneed.FieldLat:
		return m.AddedLat()
	case buyerneed.FieldLng:
		return m.AddedLng()
	case buyerneed.FieldRadiusMiles:
		return m.AddedRadiusMiles()
	case buyerneed.FieldMinSqft:
		return m.AddedMinSqft()
	case buyerneed.FieldMaxSqft:
		return m.AddedMaxSqft()
	case buyerneed.FieldDurationMonths:
		return m.AddedDurationMonths()
	case buyerneed.FieldMaxBudgetPerSqft:
		return m.AddedMaxBudgetPerSqft()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuyerNeedMutation) AddField(name string, value ent.Value) error {
	switch name {
	case buyerneed.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLat(v)
		return nil
	case buyerneed.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLng(v)
		return nil
	case buyerneed.FieldRadiusMiles:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRadiusMiles(v)
		return nil
	case buyerneed.FieldMinSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinSqft(v)
		return nil
	case buyerneed.FieldMaxSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxSqft(v)
		return nil
	case buyerneed.FieldDurationMonths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMonths(v)
		return nil
	case buyerneed.FieldMaxBudgetPerSqft:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxBudgetPerSqft(v)
		return nil
	}
	return fmt.Errorf("unknown BuyerNeed numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BuyerNeedMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(buyerneed.FieldBuyerID) {
		fields = append(fields, buyerneed.FieldBuyerID)
	}
	if m.FieldCleared(buyerneed.FieldPhone) {
		fields = append(fields, buyerneed.FieldPhone)
	}
	if m.FieldCleared(buyerneed.FieldLat) {
		fields = append(fields, buyerneed.FieldLat)
	}
	if m.FieldCleared(buyerneed.FieldLng) {
		fields = append(fields, buyerneed.FieldLng)
	}
	if m.FieldCleared(buyerneed.FieldNeededFrom) {
		fields = append(fields, buyerneed.FieldNeededFrom)
	}
	if m.FieldCleared(buyerneed.FieldDurationMonths) {
		fields = append(fields, buyerneed.FieldDurationMonths)
	}
	if m.FieldCleared(buyerneed.FieldMaxBudgetPerSqft) {
		fields = append(fields, buyerneed.FieldMaxBudgetPerSqft)
	}
	if m.FieldCleared(buyerneed.FieldRequirements) {
		fields = append(fields, buyerneed.FieldRequirements)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BuyerNeedMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BuyerNeedMutation) ClearField(name string) error {
	switch name {
	case buyerneed.FieldBuyerID:
		m.ClearBuyerID()
		return nil
	case buyerneed.FieldPhone:
		m.ClearPhone()
		return nil
	case buyerneed.FieldLat:
		m.ClearLat()
		return nil
	case buyerneed.FieldLng:
		m.ClearLng()
		return nil
	case buyerneed.FieldNeededFrom:
		m.ClearNeededFrom()
		return nil
	case buyerneed.FieldDurationMonths:
		m.ClearDurationMonths()
		return nil
	case buyerneed.FieldMaxBudgetPerSqft:
		m.ClearMaxBudgetPerSqft()
		return nil
	case buyerneed.FieldRequirements:
		m.ClearRequirements()
		return nil
	}
	return fmt.Errorf("unknown BuyerNeed nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BuyerNeedMutation) ResetField(name string) error {
	switch name {
	case buyerneed.FieldBuyerID:
		m.ResetBuyerID()
		return nil
	case buyerneed.FieldPhone:
		m.ResetPhone()
		return nil
	case buyerneed.FieldCity:
		m.ResetCity()
		return nil
	case buyerneed.FieldState:
		m.ResetState()
		return nil
	case buyerneed.FieldLat:
		m.ResetLat()
		return nil
	case buyerneed.FieldLng:
		m.ResetLng()
		return nil
	case buyerneed.FieldRadiusMiles:
		m.ResetRadiusMiles()
		return nil
	case buyerneed.FieldMinSqft:
		m.ResetMinSqft()
		return nil
	case buyerneed.FieldMaxSqft:
		m.ResetMaxSqft()
		return nil
	case buyerneed.FieldUseType:
		m.ResetUseType()
		return nil
	case buyerneed.FieldNeededFrom:
		m.ResetNeededFrom()
		return nil
	case buyerneed.FieldDurationMonths:
		m.ResetDurationMonths()
		return nil
	case buyerneed.FieldMaxBudgetPerSqft:
		m.ResetMaxBudgetPerSqft()
		return nil
	case buyerneed.FieldRequirements:
		m.ResetRequirements()
		return nil
	case buyerneed.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case buyerneed.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BuyerNeed field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BuyerNeedMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.buyer != nil {
		edges = append(edges, buyerneed.EdgeBuyer)
	}
	if m.matches != nil {
		edges = append(edges, buyerneed.EdgeMatches)
	}
	if m.dla_tokens != nil {
		edges = append(edges, buyerneed.EdgeDlaTokens)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BuyerNeedMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case buyerneed.EdgeBuyer:
		if id := m.buyer; id != nil {
			return []ent.Value{*id}
		}
	case buyerneed.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.matches))
		for id := range m.matches {
			ids = append(ids, id)
		}
		return ids
	case buyerneed.EdgeDlaTokens:
		ids := make([]ent.Value, 0, len(m.dla_tokens))
		for id := range m.dla_tokens {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BuyerNeedMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmatches != nil {
		edges = append(edges, buyerneed.EdgeMatches)
	}
	if m.removeddla_tokens != nil {
		edges = append(edges, buyerneed.EdgeDlaTokens)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BuyerNeedMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case buyerneed.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.removedmatches))
		for id := range m.removedmatches {
			ids = append(ids, id)
		}
		return ids
	case buyerneed.EdgeDlaTokens:
		ids := make([]ent.Value, 0, len(m.removeddla_tokens))
		for id := range m.removeddla_tokens {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BuyerNeedMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedbuyer {
		edges = append(edges, buyerneed.EdgeBuyer)
	}
	if m.clearedmatches {
		edges = append(edges, buyerneed.EdgeMatches)
	}
	if m.cleareddla_tokens {
		edges = append(edges, buyerneed.EdgeDlaTokens)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BuyerNeedMutation) EdgeCleared(name string) bool {
	switch name {
	case buyerneed.EdgeBuyer:
		return m.clearedbuyer
	case buyerneed.EdgeMatches:
		return m.clearedmatches
	case buyerneed.EdgeDlaTokens:
		return m.cleareddla_tokens
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BuyerNeedMutation) ClearEdge(name string) error {
	switch name {
	case buyerneed.EdgeBuyer:
		m.ClearBuyer()
		return nil
	}
	return fmt.Errorf("unknown BuyerNeed unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BuyerNeedMutation) ResetEdge(name string) error {
	switch name {
	case buyerneed.EdgeBuyer:
		m.ResetBuyer()
		return nil
	case buyerneed.EdgeMatches:
		m.ResetMatches()
		return nil
	case buyerneed.EdgeDlaTokens:
		m.ResetDlaTokens()
		return nil
	}
	return fmt.Errorf("unknown BuyerNeed edge %s", name)
}

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op                Op
	typ               string
	id                *string
	name              *string
	phone             *string
	billing_email     *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	users             map[string]struct{}
	removedusers      map[string]struct{}
	clearedusers      bool
	warehouses        map[string]struct{}
	removedwarehouses map[string]struct{}
	clearedwarehouses bool
	done              bool
	oldValue          func(context.Context) (*Company, error)
	predicates        []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id string) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetPhone sets the "phone" field.
func (m *CompanyMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *CompanyMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *CompanyMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[company.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *CompanyMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[company.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *CompanyMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, company.FieldPhone)
}

// SetBillingEmail sets the "billing_email" field.
func (m *CompanyMutation) SetBillingEmail(s string) {
	m.billing_email = &s
}

// BillingEmail returns the value of the "billing_email" field in the mutation.
func (m *CompanyMutation) BillingEmail() (r string, exists bool) {
	v := m.billing_email
	if v == nil {
		return
	}
	return *v, true
}

// OldBillingEmail returns the old "billing_email" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldBillingEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillingEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillingEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillingEmail: %w", err)
	}
	return oldValue.BillingEmail, nil
}

// ClearBillingEmail clears the value of the "billing_email" field.
func (m *CompanyMutation) ClearBillingEmail() {
	m.billing_email = nil
	m.clearedFields[company.FieldBillingEmail] = struct{}{}
}

// BillingEmailCleared returns if the "billing_email" field was cleared in this mutation.
func (m *CompanyMutation) BillingEmailCleared() bool {
	_, ok := m.clearedFields[company.FieldBillingEmail]
	return ok
}

// ResetBillingEmail resets all changes to the "billing_email" field.
func (m *CompanyMutation) ResetBillingEmail() {
	m.billing_email = nil
	delete(m.clearedFields, company.FieldBillingEmail)
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompanyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompanyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompanyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddUserIDs adds the "users" edge to the User entity by ids.
func (m *CompanyMutation) AddUserIDs(ids ...string) {
	if m.users == nil {
		m.users = make(map[string]struct{})
	}
	for i := range ids {
		m.users[ids[i]] = struct{}{}
	}
}

// ClearUsers clears the "users" edge to the User entity.
func (m *CompanyMutation) ClearUsers() {
	m.clearedusers = true
}

// UsersCleared reports if the "users" edge to the User entity was cleared.
func (m *CompanyMutation) UsersCleared() bool {
	return m.clearedusers
}

// RemoveUserIDs removes the "users" edge to the User entity by IDs.
func (m *CompanyMutation) RemoveUserIDs(ids ...string) {
	if m.removedusers == nil {
		m.removedusers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.users, ids[i])
		m.removedusers[ids[i]] = struct{}{}
	}
}

// RemovedUsers returns the removed IDs of the "users" edge to the User entity.
func (m *CompanyMutation) RemovedUsersIDs() (ids []string) {
	for id := range m.removedusers {
		ids = append(ids, id)
	}
	return
}

// UsersIDs returns the "users" edge IDs in the mutation.
func (m *CompanyMutation) UsersIDs() (ids []string) {
	for id := range m.users {
		ids = append(ids, id)
	}
	return
}

// ResetUsers resets all changes to the "users" edge.
func (m *CompanyMutation) ResetUsers() {
	m.users = nil
	m.clearedusers = false
	m.removedusers = nil
}

// AddWarehouseIDs adds the "warehouses" edge to the Warehouse entity by ids.
func (m *CompanyMutation) AddWarehouseIDs(ids ...string) {
	if m.warehouses == nil {
		m.warehouses = make(map[string]struct{})
	}
	for i := range ids {
		m.warehouses[ids[i]] = struct{}{}
	}
}

// ClearWarehouses clears the "warehouses" edge to the Warehouse entity.
func (m *CompanyMutation) ClearWarehouses() {
	m.clearedwarehouses = true
}

// WarehousesCleared reports if the "warehouses" edge to the Warehouse entity was cleared.
func (m *CompanyMutation) WarehousesCleared() bool {
	return m.clearedwarehouses
}

// RemoveWarehouseIDs removes the "warehouses" edge to the Warehouse entity by IDs.
func (m *CompanyMutation) RemoveWarehouseIDs(ids ...string) {
	if m.removedwarehouses == nil {
		m.removedwarehouses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.warehouses, ids[i])
		m.removedwarehouses[ids[i]] = struct{}{}
	}
}

// RemovedWarehouses returns the removed IDs of the "warehouses" edge to the Warehouse entity.
func (m *CompanyMutation) RemovedWarehousesIDs() (ids []string) {
	for id := range m.removedwarehouses {
		ids = append(ids, id)
	}
	return
}

// WarehousesIDs returns the "warehouses" edge IDs in the mutation.
func (m *CompanyMutation) WarehousesIDs() (ids []string) {
	for id := range m.warehouses {
		ids = append(ids, id)
	}
	return
}

// ResetWarehouses resets all changes to the "warehouses" edge.
func (m *CompanyMutation) ResetWarehouses() {
	m.warehouses = nil
	m.clearedwarehouses = false
	m.removedwarehouses = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.phone != nil {
		fields = append(fields, company.FieldPhone)
	}
	if m.billing_email != nil {
		fields = append(fields, company.FieldBillingEmail)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, company.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldName:
		return m.Name()
	case company.FieldPhone:
		return m.Phone()
	case company.FieldBillingEmail:
		return m.BillingEmail()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	case company.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldPhone:
		return m.OldPhone(ctx)
	case company.FieldBillingEmail:
		return m.OldBillingEmail(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case company.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case company.FieldBillingEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillingEmail(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case company.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(company.FieldPhone) {
		fields = append(fields, company.FieldPhone)
	}
	if m.FieldCleared(company.FieldBillingEmail) {
		fields = append(fields, company.FieldBillingEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	switch name {
	case company.FieldPhone:
		m.ClearPhone()
		return nil
	case company.FieldBillingEmail:
		m.ClearBillingEmail()
		return nil
	}
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldPhone:
		m.ResetPhone()
		return nil
	case company.FieldBillingEmail:
		m.ResetBillingEmail()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case company.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.users != nil {
		edges = append(edges, company.EdgeUsers)
	}
	if m.warehouses != nil {
		edges = append(edges, company.EdgeWarehouses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.users))
		for id := range m.users {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeWarehouses:
		ids := make([]ent.Value, 0, len(m.warehouses))
		for id := range m.warehouses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedusers != nil {
		edges = append(edges, company.EdgeUsers)
	}
	if m.removedwarehouses != nil {
		edges = append(edges, company.EdgeWarehouses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.removedusers))
		for id := range m.removedusers {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeWarehouses:
		ids := make([]ent.Value, 0, len(m.removedwarehouses))
		for id := range m.removedwarehouses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedusers {
		edges = append(edges, company.EdgeUsers)
	}
	if m.clearedwarehouses {
		edges = append(edges, company.EdgeWarehouses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeUsers:
		return m.clearedusers
	case company.EdgeWarehouses:
		return m.clearedwarehouses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeUsers:
		m.ResetUsers()
		return nil
	case company.EdgeWarehouses:
		m.ResetWarehouses()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// ContextualMemoryMutation represents an operation that mutates the ContextualMemory nodes in the graph.
type ContextualMemoryMutation struct {
	config
	op               Op
	typ              string
	id               *string
	category         *contextualmemory.Category
	content          *string
	source           *contextualmemory.Source
	recorded_by      *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	warehouse        *string
	clearedwarehouse bool
	done             bool
	oldValue         func(context.Context) (*ContextualMemory, error)
	predicates       []predicate.ContextualMemory
}

var _ ent.Mutation = (*ContextualMemoryMutation)(nil)

// contextualmemoryOption allows management of the mutation configuration using functional options.
type contextualmemoryOption func(*ContextualMemoryMutation)

// newContextualMemoryMutation creates new mutation for the ContextualMemory entity.
func newContextualMemoryMutation(c config, op Op, opts ...contextualmemoryOption) *ContextualMemoryMutation {
	m := &ContextualMemoryMutation{
		config:        c,
		op:            op,
		typ:           TypeContextualMemory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContextualMemoryID sets the ID field of the mutation.
func withContextualMemoryID(id string) contextualmemoryOption {
	return func(m *ContextualMemoryMutation) {
		var (
			err   error
			once  sync.Once
			value *ContextualMemory
		)
		m.oldValue = func(ctx context.Context) (*ContextualMemory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContextualMemory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContextualMemory sets the old ContextualMemory of the mutation.
func withContextualMemory(node *ContextualMemory) contextualmemoryOption {
	return func(m *ContextualMemoryMutation) {
		m.oldValue = func(context.Context) (*ContextualMemory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContextualMemoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContextualMemoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContextualMemory entities.
func (m *ContextualMemoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContextualMemoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContextualMemoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContextualMemory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWarehouseID sets the "warehouse_id" field.
func (m *ContextualMemoryMutation) SetWarehouseID(s string) {
	m.warehouse = &s
}

// WarehouseID returns the value of the "warehouse_id" field in the mutation.
func (m *ContextualMemoryMutation) WarehouseID() (r string, exists bool) {
	v := m.warehouse
	if v == nil {
		return
	}
	return *v, true
}

// OldWarehouseID returns the old "warehouse_id" field's value of the ContextualMemory entity.
// If the ContextualMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextualMemoryMutation) OldWarehouseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarehouseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarehouseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarehouseID: %w", err)
	}
	return oldValue.WarehouseID, nil
}

// ResetWarehouseID resets all changes to the "warehouse_id" field.
func (m *ContextualMemoryMutation) ResetWarehouseID() {
	m.warehouse = nil
}

// SetCategory sets the "category" field.
func (m *ContextualMemoryMutation) SetCategory(c contextualmemory.Category) {
	m.category = &c
}

// Category returns the value of the "category" field in the mutation.
func (m *ContextualMemoryMutation) Category() (r contextualmemory.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ContextualMemory entity.
// If the ContextualMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextualMemoryMutation) OldCategory(ctx context.Context) (v contextualmemory.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ContextualMemoryMutation) ResetCategory() {
	m.category = nil
}

// SetContent sets the "content" field.
func (m *ContextualMemoryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ContextualMemoryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ContextualMemory entity.
// If the ContextualMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextualMemoryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ContextualMemoryMutation) ResetContent() {
	m.content = nil
}

// SetSource sets the "source" field.
func (m *ContextualMemoryMutation) SetSource(c contextualmemory.Source) {
	m.source = &c
}

// Source returns the value of the "source" field in the mutation.
func (m *ContextualMemoryMutation) Source() (r contextualmemory.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ContextualMemory entity.
// If the ContextualMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextualMemoryMutation) OldSource(ctx context.Context) (v contextualmemory.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ContextualMemoryMutation) ResetSource() {
	m.source = nil
}

// SetRecordedBy sets the "recorded_by" field.
func (m *ContextualMemoryMutation) SetRecordedBy(s string) {
	m.recorded_by = &s
}

// RecordedBy returns the value of the "recorded_by" field in the mutation.
func (m *ContextualMemoryMutation) RecordedBy() (r string, exists bool) {
	v := m.recorded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedBy returns the old "recorded_by" field's value of the ContextualMemory entity.
// If the ContextualMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextualMemoryMutation) OldRecordedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedBy: %w", err)
	}
	return oldValue.RecordedBy, nil
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (m *ContextualMemoryMutation) ClearRecordedBy() {
	m.recorded_by = nil
	m.clearedFields[contextualmemory.FieldRecordedBy] = struct{}{}
}

// RecordedByCleared returns if the "recorded_by" field was cleared in this mutation.
func (m *ContextualMemoryMutation) RecordedByCleared() bool {
	_, ok := m.clearedFields[contextualmemory.FieldRecordedBy]
	return ok
}

// ResetRecordedBy resets all changes to the "recorded_by" field.
func (m *ContextualMemoryMutation) ResetRecordedBy() {
	m.recorded_by = nil
	delete(m.clearedFields, contextualmemory.FieldRecordedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContextualMemoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContextualMemoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContextualMemory entity.
// If the ContextualMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextualMemoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContextualMemoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (m *ContextualMemoryMutation) ClearWarehouse() {
	m.clearedwarehouse = true
	m.clearedFields[contextualmemory.FieldWarehouseID] = struct{}{}
}

// WarehouseCleared reports if the "warehouse" edge to the Warehouse entity was cleared.
func (m *ContextualMemoryMutation) WarehouseCleared() bool {
	return m.clearedwarehouse
}

// WarehouseIDs returns the "warehouse" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WarehouseID instead. It exists only for internal usage by the builders.
func (m *ContextualMemoryMutation) WarehouseIDs() (ids []string) {
	if id := m.warehouse; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWarehouse resets all changes to the "warehouse" edge.
func (m *ContextualMemoryMutation) ResetWarehouse() {
	m.warehouse = nil
	m.clearedwarehouse = false
}

// Where appends a list predicates to the ContextualMemoryMutation builder.
func (m *ContextualMemoryMutation) Where(ps ...predicate.ContextualMemory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContextualMemoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContextualMemoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContextualMemory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContextualMemoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContextualMemoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContextualMemory).
func (m *ContextualMemoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContextualMemoryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.warehouse != nil {
		fields = append(fields, contextualmemory.FieldWarehouseID)
	}
	if m.category != nil {
		fields = append(fields, contextualmemory.FieldCategory)
	}
	if m.content != nil {
		fields = append(fields, contextualmemory.FieldContent)
	}
	if m.source != nil {
		fields = append(fields, contextualmemory.FieldSource)
	}
	if m.recorded_by != nil {
		fields = append(fields, contextualmemory.FieldRecordedBy)
	}
	if m.created_at != nil {
		fields = append(fields, contextualmemory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContextualMemoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contextualmemory.FieldWarehouseID:
		return m.WarehouseID()
	case contextualmemory.FieldCategory:
		return m.Category()
	case contextualmemory.FieldContent:
		return m.Content()
	case contextualmemory.FieldSource:
		return m.Source()
	case contextualmemory.FieldRecordedBy:
		return m.RecordedBy()
	case contextualmemory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContextualMemoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contextualmemory.FieldWarehouseID:
		return m.OldWarehouseID(ctx)
	case contextualmemory.FieldCategory:
		return m.OldCategory(ctx)
	case contextualmemory.FieldContent:
		return m.OldContent(ctx)
	case contextualmemory.FieldSource:
		return m.OldSource(ctx)
	case contextualmemory.FieldRecordedBy:
		return m.OldRecordedBy(ctx)
	case contextualmemory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContextualMemory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextualMemoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contextualmemory.FieldWarehouseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarehouseID(v)
		return nil
	case contextualmemory.FieldCategory:
		v, ok := value.(contextualmemory.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case contextualmemory.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case contextualmemory.FieldSource:
		v, ok := value.(contextualmemory.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case contextualmemory.FieldRecordedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedBy(v)
		return nil
	case contextualmemory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContextualMemory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContextualMemoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContextualMemoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextualMemoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContextualMemory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContextualMemoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contextualmemory.FieldRecordedBy) {
		fields = append(fields, contextualmemory.FieldRecordedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContextualMemoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContextualMemoryMutation) ClearField(name string) error {
	switch name {
	case contextualmemory.FieldRecordedBy:
		m.ClearRecordedBy()
		return nil
	}
	return fmt.Errorf("unknown ContextualMemory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContextualMemoryMutation) ResetField(name string) error {
	switch name {
	case contextualmemory.FieldWarehouseID:
		m.ResetWarehouseID()
		return nil
	case contextualmemory.FieldCategory:
		m.ResetCategory()
		return nil
	case contextualmemory.FieldContent:
		m.ResetContent()
		return nil
	case contextualmemory.FieldSource:
		m.ResetSource()
		return nil
	case contextualmemory.FieldRecordedBy:
		m.ResetRecordedBy()
		return nil
	case contextualmemory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContextualMemory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContextualMemoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.warehouse != nil {
		edges = append(edges, contextualmemory.EdgeWarehouse)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContextualMemoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contextualmemory.EdgeWarehouse:
		if id := m.warehouse; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContextualMemoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContextualMemoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContextualMemoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwarehouse {
		edges = append(edges, contextualmemory.EdgeWarehouse)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContextualMemoryMutation) EdgeCleared(name string) bool {
	switch name {
	case contextualmemory.EdgeWarehouse:
		return m.clearedwarehouse
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContextualMemoryMutation) ClearEdge(name string) error {
	switch name {
	case contextualmemory.EdgeWarehouse:
		m.ClearWarehouse()
		return nil
	}
	return fmt.Errorf("unknown ContextualMemory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContextualMemoryMutation) ResetEdge(name string) error {
	switch name {
	case contextualmemory.EdgeWarehouse:
		m.ResetWarehouse()
		return nil
	}
	return fmt.Errorf("unknown ContextualMemory edge %s", name)
}

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	phone                     *string
	persona                   *conversation.Persona
	phase                     *conversation.Phase
	turn_count                *int
	addturn_count             *int
	criteria                  *map[string]interface{}
	presented_matches         *[]string
	appendpresented_matches   []string
	focused_match_id          *string
	renter_first_name         *string
	renter_last_name          *string
	buyer_email               *string
	name_status               *conversation.NameStatus
	name_requested_at_turn    *int
	addname_requested_at_turn *int
	user_id                   *string
	buyer_need_id             *string
	warehouse_id              *string
	engagement_id             *string
	guarantee_link_token      *string
	search_session_token      *string
	status                    *conversation.Status
	reengagement_stage        *int
	addreengagement_stage     *int
	next_reengagement_at      *time.Time
	last_inbound_at           *time.Time
	last_outbound_at          *time.Time
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	messages                  map[string]struct{}
	removedmessages           map[string]struct{}
	clearedmessages           bool
	done                      bool
	oldValue                  func(context.Context) (*Conversation, error)
	predicates                []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id string) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Conversation entities.
func (m *ConversationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPhone sets the "phone" field.
func (m *ConversationMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ConversationMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *ConversationMutation) ResetPhone() {
	m.phone = nil
}

// SetPersona sets the "persona" field.
func (m *ConversationMutation) SetPersona(c conversation.Persona) {
	m.persona = &c
}

// Persona returns the value of the "persona" field in the mutation.
func (m *ConversationMutation) Persona() (r conversation.Persona, exists bool) {
	v := m.persona
	if v == nil {
		return
	}
	return *v, true
}

// OldPersona returns the old "persona" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldPersona(ctx context.Context) (v conversation.Persona, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersona is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersona requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersona: %w", err)
	}
	return oldValue.Persona, nil
}

// ResetPersona resets all changes to the "persona" field.
func (m *ConversationMutation) ResetPersona() {
	m.persona = nil
}

// SetPhase sets the "phase" field.
func (m *ConversationMutation) SetPhase(c conversation.Phase) {
	m.phase = &c
}

// Phase returns the value of the "phase" field in the mutation.
func (m *ConversationMutation) Phase() (r conversation.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldPhase(ctx context.Context) (v conversation.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *ConversationMutation) ResetPhase() {
	m.phase = nil
}

// SetTurnCount sets the "turn_count" field.
func (m *ConversationMutation) SetTurnCount(i int) {
	m.turn_count = &i
	m.addturn_count = nil
}

// TurnCount returns the value of the "turn_count" field in the mutation.
func (m *ConversationMutation) TurnCount() (r int, exists bool) {
	v := m.turn_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnCount returns the old "turn_count" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTurnCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnCount: %w", err)
	}
	return oldValue.TurnCount, nil
}

// AddTurnCount adds i to the "turn_count" field.
func (m *ConversationMutation) AddTurnCount(i int) {
	if m.addturn_count != nil {
		*m.addturn_count += i
	} else {
		m.addturn_count = &i
	}
}

// AddedTurnCount returns the value that was added to the "turn_count" field in this mutation.
func (m *ConversationMutation) AddedTurnCount() (r int, exists bool) {
	v := m.addturn_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnCount resets all changes to the "turn_count" field.
func (m *ConversationMutation) ResetTurnCount() {
	m.turn_count = nil
	m.addturn_count = nil
}

// SetCriteria sets the "criteria" field.
func (m *ConversationMutation) SetCriteria(value map[string]interface{}) {
	m.criteria = &value
}

// Criteria returns the value of the "criteria" field in the mutation.
func (m *ConversationMutation) Criteria() (r map[string]interface{}, exists bool) {
	v := m.criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldCriteria returns the old "criteria" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCriteria(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriteria: %w", err)
	}
	return oldValue.Criteria, nil
}

// ClearCriteria clears the value of the "criteria" field.
func (m *ConversationMutation) ClearCriteria() {
	m.criteria = nil
	m.clearedFields[conversation.FieldCriteria] = struct{}{}
}

// CriteriaCleared returns if the "criteria" field was cleared in this mutation.
func (m *ConversationMutation) CriteriaCleared() bool {
	_, ok := m.clearedFields[conversation.FieldCriteria]
	return ok
}

// ResetCriteria resets all changes to the "criteria" field.
func (m *ConversationMutation) ResetCriteria() {
	m.criteria = nil
	delete(m.clearedFields, conversation.FieldCriteria)
}

// SetPresentedMatches sets the "presented_matches" field.
func (m *ConversationMutation) SetPresentedMatches(s []string) {
	m.presented_matches = &s
	m.appendpresented_matches = nil
}

// PresentedMatches returns the value of the "presented_matches" field in the mutation.
func (m *ConversationMutation) PresentedMatches() (r []string, exists bool) {
	v := m.presented_matches
	if v == nil {
		return
	}
	return *v, true
}

// OldPresentedMatches returns the old "presented_matches" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldPresentedMatches(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPresentedMatches is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPresentedMatches requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPresentedMatches: %w", err)
	}
	return oldValue.PresentedMatches, nil
}

// AppendPresentedMatches adds s to the "presented_matches" field.
func (m *ConversationMutation) AppendPresentedMatches(s []string) {
	m.appendpresented_matches = append(m.appendpresented_matches, s...)
}

// AppendedPresentedMatches returns the list of values that were appended to the "presented_matches" field in this mutation.
func (m *ConversationMutation) AppendedPresentedMatches() ([]string, bool) {
	if len(m.appendpresented_matches) == 0 {
		return nil, false
	}
	return m.appendpresented_matches, true
}

// ClearPresentedMatches clears the value of the "presented_matches" field.
func (m *ConversationMutation) ClearPresentedMatches() {
	m.presented_matches = nil
	m.appendpresented_matches = nil
	m.clearedFields[conversation.FieldPresentedMatches] = struct{}{}
}

// PresentedMatchesCleared returns if the "presented_matches" field was cleared in this mutation.
func (m *ConversationMutation) PresentedMatchesCleared() bool {
	_, ok := m.clearedFields[conversation.FieldPresentedMatches]
	return ok
}

// ResetPresentedMatches resets all changes to the "presented_matches" field.
func (m *ConversationMutation) ResetPresentedMatches() {
	m.presented_matches = nil
	m.appendpresented_matches = nil
	delete(m.clearedFields, conversation.FieldPresentedMatches)
}

// SetFocusedMatchID sets the "focused_match_id" field.
func (m *ConversationMutation) SetFocusedMatchID(s string) {
	m.focused_match_id = &s
}

// FocusedMatchID returns the value of the "focused_match_id" field in the mutation.
func (m *ConversationMutation) FocusedMatchID() (r string, exists bool) {
	v := m.focused_match_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFocusedMatchID returns the old "focused_match_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldFocusedMatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFocusedMatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFocusedMatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFocusedMatchID: %w", err)
	}
	return oldValue.FocusedMatchID, nil
}

// ClearFocusedMatchID clears the value of the "focused_match_id" field.
func (m *ConversationMutation) ClearFocusedMatchID() {
	m.focused_match_id = nil
	m.clearedFields[conversation.FieldFocusedMatchID] = struct{}{}
}

// FocusedMatchIDCleared returns if the "focused_match_id" field was cleared in this mutation.
func (m *ConversationMutation) FocusedMatchIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldFocusedMatchID]
	return ok
}

// ResetFocusedMatchID resets all changes to the "focused_match_id" field.
func (m *ConversationMutation) ResetFocusedMatchID() {
	m.focused_match_id = nil
	delete(m.clearedFields, conversation.FieldFocusedMatchID)
}

// SetRenterFirstName sets the "renter_first_name" field.
func (m *ConversationMutation) SetRenterFirstName(s string) {
	m.renter_first_name = &s
}

// RenterFirstName returns the value of the "renter_first_name" field in the mutation.
func (m *ConversationMutation) RenterFirstName() (r string, exists bool) {
	v := m.renter_first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRenterFirstName returns the old "renter_first_name" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldRenterFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRenterFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRenterFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRenterFirstName: %w", err)
	}
	return oldValue.RenterFirstName, nil
}

// ClearRenterFirstName clears the value of the "renter_first_name" field.
func (m *ConversationMutation) ClearRenterFirstName() {
	m.renter_first_name = nil
	m.clearedFields[conversation.FieldRenterFirstName] = struct{}{}
}

// RenterFirstNameCleared returns if the "renter_first_name" field was cleared in this mutation.
func (m *ConversationMutation) RenterFirstNameCleared() bool {
	_, ok := m.clearedFields[conversation.FieldRenterFirstName]
	return ok
}

// ResetRenterFirstName resets all changes to the "renter_first_name" field.
func (m *ConversationMutation) ResetRenterFirstName() {
	m.renter_first_name = nil
	delete(m.clearedFields, conversation.FieldRenterFirstName)
}

// SetRenterLastName sets the "renter_last_name" field.
func (m *ConversationMutation) SetRenterLastName(s string) {
	m.renter_last_name = &s
}

// RenterLastName returns the value of the "renter_last_name" field in the mutation.
func (m *ConversationMutation) RenterLastName() (r string, exists bool) {
	v := m.renter_last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRenterLastName returns the old "renter_last_name" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldRenterLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRenterLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRenterLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRenterLastName: %w", err)
	}
	return oldValue.RenterLastName, nil
}

// ClearRenterLastName clears the value of the "renter_last_name" field.
func (m *ConversationMutation) ClearRenterLastName() {
	m.renter_last_name = nil
	m.clearedFields[conversation.FieldRenterLastName] = struct{}{}
}

// RenterLastNameCleared returns if the "renter_last_name" field was cleared in this mutation.
func (m *ConversationMutation) RenterLastNameCleared() bool {
	_, ok := m.clearedFields[conversation.FieldRenterLastName]
	return ok
}

// ResetRenterLastName resets all changes to the "renter_last_name" field.
func (m *ConversationMutation) ResetRenterLastName() {
	m.renter_last_name = nil
	delete(m.clearedFields, conversation.FieldRenterLastName)
}

// SetBuyerEmail sets the "buyer_email" field.
func (m *ConversationMutation) SetBuyerEmail(s string) {
	m.buyer_email = &s
}

// BuyerEmail returns the value of the "buyer_email" field in the mutation.
func (m *ConversationMutation) BuyerEmail() (r string, exists bool) {
	v := m.buyer_email
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerEmail returns the old "buyer_email" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldBuyerEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerEmail: %w", err)
	}
	return oldValue.BuyerEmail, nil
}

// ClearBuyerEmail clears the value of the "buyer_email" field.
func (m *ConversationMutation) ClearBuyerEmail() {
	m.buyer_email = nil
	m.clearedFields[conversation.FieldBuyerEmail] = struct{}{}
}

// BuyerEmailCleared returns if the "buyer_email" field was cleared in this mutation.
func (m *ConversationMutation) BuyerEmailCleared() bool {
	_, ok := m.clearedFields[conversation.FieldBuyerEmail]
	return ok
}

// ResetBuyerEmail resets all changes to the "buyer_email" field.
func (m *ConversationMutation) ResetBuyerEmail() {
	m.buyer_email = nil
	delete(m.clearedFields, conversation.FieldBuyerEmail)
}

// SetNameStatus sets the "name_status" field.
func (m *ConversationMutation) SetNameStatus(cs conversation.NameStatus) {
	m.name_status = &cs
}

// NameStatus returns the value of the "name_status" field in the mutation.
func (m *ConversationMutation) NameStatus() (r conversation.NameStatus, exists bool) {
	v := m.name_status
	if v == nil {
		return
	}
	return *v, true
}

// OldNameStatus returns the old "name_status" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldNameStatus(ctx context.Context) (v conversation.NameStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameStatus: %w", err)
	}
	return oldValue.NameStatus, nil
}

// ResetNameStatus resets all changes to the "name_status" field.
func (m *ConversationMutation) ResetNameStatus() {
	m.name_status = nil
}

// SetNameRequestedAtTurn sets the "name_requested_at_turn" field.
func (m *ConversationMutation) SetNameRequestedAtTurn(i int) {
	m.name_requested_at_turn = &i
	m.addname_requested_at_turn = nil
}

// NameRequestedAtTurn returns the value of the "name_requested_at_turn" field in the mutation.
func (m *ConversationMutation) NameRequestedAtTurn() (r int, exists bool) {
	v := m.name_requested_at_turn
	if v == nil {
		return
	}
	return *v, true
}

// OldNameRequestedAtTurn returns the old "name_requested_at_turn" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldNameRequestedAtTurn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameRequestedAtTurn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameRequestedAtTurn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameRequestedAtTurn: %w", err)
	}
	return oldValue.NameRequestedAtTurn, nil
}

// AddNameRequestedAtTurn adds i to the "name_requested_at_turn" field.
func (m *ConversationMutation) AddNameRequestedAtTurn(i int) {
	if m.addname_requested_at_turn != nil {
		*m.addname_requested_at_turn += i
	} else {
		m.addname_requested_at_turn = &i
	}
}

// AddedNameRequestedAtTurn returns the value that was added to the "name_requested_at_turn" field in this mutation.
func (m *ConversationMutation) AddedNameRequestedAtTurn() (r int, exists bool) {
	v := m.addname_requested_at_turn
	if v == nil {
		return
	}
	return *v, true
}

// ClearNameRequestedAtTurn clears the value of the "name_requested_at_turn" field.
func (m *ConversationMutation) ClearNameRequestedAtTurn() {
	m.name_requested_at_turn = nil
	m.addname_requested_at_turn = nil
	m.clearedFields[conversation.FieldNameRequestedAtTurn] = struct{}{}
}

// NameRequestedAtTurnCleared returns if the "name_requested_at_turn" field was cleared in this mutation.
func (m *ConversationMutation) NameRequestedAtTurnCleared() bool {
	_, ok := m.clearedFields[conversation.FieldNameRequestedAtTurn]
	return ok
}

// ResetNameRequestedAtTurn resets all changes to the "name_requested_at_turn" field.
func (m *ConversationMutation) ResetNameRequestedAtTurn() {
	m.name_requested_at_turn = nil
	m.addname_requested_at_turn = nil
	delete(m.clearedFields, conversation.FieldNameRequestedAtTurn)
}

// SetUserID sets the "user_id" field.
func (m *ConversationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ConversationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ConversationMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[conversation.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ConversationMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ConversationMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, conversation.FieldUserID)
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (m *ConversationMutation) SetBuyerNeedID(s string) {
	m.buyer_need_id = &s
}

// BuyerNeedID returns the value of the "buyer_need_id" field in the mutation.
func (m *ConversationMutation) BuyerNeedID() (r string, exists bool) {
	v := m.buyer_need_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerNeedID returns the old "buyer_need_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldBuyerNeedID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerNeedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerNeedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerNeedID: %w", err)
	}
	return oldValue.BuyerNeedID, nil
}

// ClearBuyerNeedID clears the value of the "buyer_need_id" field.
func (m *ConversationMutation) ClearBuyerNeedID() {
	m.buyer_need_id = nil
	m.clearedFields[conversation.FieldBuyerNeedID] = struct{}{}
}

// BuyerNeedIDCleared returns if the "buyer_need_id" field was cleared in this mutation.
func (m *ConversationMutation) BuyerNeedIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldBuyerNeedID]
	return ok
}

// ResetBuyerNeedID resets all changes to the "buyer_need_id" field.
func (m *ConversationMutation) ResetBuyerNeedID() {
	m.buyer_need_id = nil
	delete(m.clearedFields, conversation.FieldBuyerNeedID)
}

// SetWarehouseID sets the "warehouse_id" field.
func (m *ConversationMutation) SetWarehouseID(s string) {
	m.warehouse_id = &s
}

// WarehouseID returns the value of the "warehouse_id" field in the mutation.
func (m *ConversationMutation) WarehouseID() (r string, exists bool) {
	v := m.warehouse_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWarehouseID returns the old "warehouse_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldWarehouseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarehouseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarehouseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarehouseID: %w", err)
	}
	return oldValue.WarehouseID, nil
}

// ClearWarehouseID clears the value of the "warehouse_id" field.
func (m *ConversationMutation) ClearWarehouseID() {
	m.warehouse_id = nil
	m.clearedFields[conversation.FieldWarehouseID] = struct{}{}
}

// WarehouseIDCleared returns if the "warehouse_id" field was cleared in this mutation.
func (m *ConversationMutation) WarehouseIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldWarehouseID]
	return ok
}

// ResetWarehouseID resets all changes to the "warehouse_id" field.
func (m *ConversationMutation) ResetWarehouseID() {
	m.warehouse_id = nil
	delete(m.clearedFields, conversation.FieldWarehouseID)
}

// SetEngagementID sets the "engagement_id" field.
func (m *ConversationMutation) SetEngagementID(s string) {
	m.engagement_id = &s
}

// EngagementID returns the value of the "engagement_id" field in the mutation.
func (m *ConversationMutation) EngagementID() (r string, exists bool) {
	v := m.engagement_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementID returns the old "engagement_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldEngagementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementID: %w", err)
	}
	return oldValue.EngagementID, nil
}

// ClearEngagementID clears the value of the "engagement_id" field.
func (m *ConversationMutation) ClearEngagementID() {
	m.engagement_id = nil
	m.clearedFields[conversation.FieldEngagementID] = struct{}{}
}

// EngagementIDCleared returns if the "engagement_id" field was cleared in this mutation.
func (m *ConversationMutation) EngagementIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldEngagementID]
	return ok
}

// ResetEngagementID resets all changes to the "engagement_id" field.
func (m *ConversationMutation) ResetEngagementID() {
	m.engagement_id = nil
	delete(m.clearedFields, conversation.FieldEngagementID)
}

// SetGuaranteeLinkToken sets the "guarantee_link_token" field.
func (m *ConversationMutation) SetGuaranteeLinkToken(s string) {
	m.guarantee_link_token = &s
}

// GuaranteeLinkToken returns the value of the "guarantee_link_token" field in the mutation.
func (m *ConversationMutation) GuaranteeLinkToken() (r string, exists bool) {
	v := m.guarantee_link_token
	if v == nil {
		return
	}
	return *v, true
}

// OldGuaranteeLinkToken returns the old "guarantee_link_token" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldGuaranteeLinkToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuaranteeLinkToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuaranteeLinkToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuaranteeLinkToken: %w", err)
	}
	return oldValue.GuaranteeLinkToken, nil
}

// ClearGuaranteeLinkToken clears the value of the "guarantee_link_token" field.
func (m *ConversationMutation) ClearGuaranteeLinkToken() {
	m.guarantee_link_token = nil
	m.clearedFields[conversation.FieldGuaranteeLinkToken] = struct{}{}
}

// GuaranteeLinkTokenCleared returns if the "guarantee_link_token" field was cleared in this mutation.
func (m *ConversationMutation) GuaranteeLinkTokenCleared() bool {
	_, ok := m.clearedFields[conversation.FieldGuaranteeLinkToken]
	return ok
}

// ResetGuaranteeLinkToken resets all changes to the "guarantee_link_token" field.
func (m *ConversationMutation) ResetGuaranteeLinkToken() {
	m.guarantee_link_token = nil
	delete(m.clearedFields, conversation.FieldGuaranteeLinkToken)
}

// SetSearchSessionToken sets the "search_session_token" field.
func (m *ConversationMutation) SetSearchSessionToken(s string) {
	m.search_session_token = &s
}

// SearchSessionToken returns the value of the "search_session_token" field in the mutation.
func (m *ConversationMutation) SearchSessionToken() (r string, exists bool) {
	v := m.search_session_token
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchSessionToken returns the old "search_session_token" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldSearchSessionToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchSessionToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchSessionToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchSessionToken: %w", err)
	}
	return oldValue.SearchSessionToken, nil
}

// ClearSearchSessionToken clears the value of the "search_session_token" field.
func (m *ConversationMutation) ClearSearchSessionToken() {
	m.search_session_token = nil
	m.clearedFields[conversation.FieldSearchSessionToken] = struct{}{}
}

// SearchSessionTokenCleared returns if the "search_session_token" field was cleared in this mutation.
func (m *ConversationMutation) SearchSessionTokenCleared() bool {
	_, ok := m.clearedFields[conversation.FieldSearchSessionToken]
	return ok
}

// ResetSearchSessionToken resets all changes to the "search_session_token" field.
func (m *ConversationMutation) ResetSearchSessionToken() {
	m.search_session_token = nil
	delete(m.clearedFields, conversation.FieldSearchSessionToken)
}

// SetStatus sets the "status" field.
func (m *ConversationMutation) SetStatus(c conversation.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConversationMutation) Status() (r conversation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldStatus(ctx context.Context) (v conversation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConversationMutation) ResetStatus() {
	m.status = nil
}

// SetReengagementStage sets the "reengagement_stage" field.
func (m *ConversationMutation) SetReengagementStage(i int) {
	m.reengagement_stage = &i
	m.addreengagement_stage = nil
}

// ReengagementStage returns the value of the "reengagement_stage" field in the mutation.
func (m *ConversationMutation) ReengagementStage() (r int, exists bool) {
	v := m.reengagement_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldReengagementStage returns the old "reengagement_stage" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldReengagementStage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReengagementStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReengagementStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReengagementStage: %w", err)
	}
	return oldValue.ReengagementStage, nil
}

// AddReengagementStage adds i to the "reengagement_stage" field.
func (m *ConversationMutation) AddReengagementStage(i int) {
	if m.addreengagement_stage != nil {
		*m.addreengagement_stage += i
	} else {
		m.addreengagement_stage = &i
	}
}

// AddedReengagementStage returns the value that was added to the "reengagement_stage" field in this mutation.
func (m *ConversationMutation) AddedReengagementStage() (r int, exists bool) {
	v := m.addreengagement_stage
	if v == nil {
		return
	}
	return *v, true
}

// ResetReengagementStage resets all changes to the "reengagement_stage" field.
func (m *ConversationMutation) ResetReengagementStage() {
	m.reengagement_stage = nil
	m.addreengagement_stage = nil
}

// SetNextReengagementAt sets the "next_reengagement_at" field.
func (m *ConversationMutation) SetNextReengagementAt(t time.Time) {
	m.next_reengagement_at = &t
}

// NextReengagementAt returns the value of the "next_reengagement_at" field in the mutation.
func (m *ConversationMutation) NextReengagementAt() (r time.Time, exists bool) {
	v := m.next_reengagement_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReengagementAt returns the old "next_reengagement_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldNextReengagementAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReengagementAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReengagementAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReengagementAt: %w", err)
	}
	return oldValue.NextReengagementAt, nil
}

// ClearNextReengagementAt clears the value of the "next_reengagement_at" field.
func (m *ConversationMutation) ClearNextReengagementAt() {
	m.next_reengagement_at = nil
	m.clearedFields[conversation.FieldNextReengagementAt] = struct{}{}
}

// NextReengagementAtCleared returns if the "next_reengagement_at" field was cleared in this mutation.
func (m *ConversationMutation) NextReengagementAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldNextReengagementAt]
	return ok
}

// ResetNextReengagementAt resets all changes to the "next_reengagement_at" field.
func (m *ConversationMutation) ResetNextReengagementAt() {
	m.next_reengagement_at = nil
	delete(m.clearedFields, conversation.FieldNextReengagementAt)
}

// SetLastInboundAt sets the "last_inbound_at" field.
func (m *ConversationMutation) SetLastInboundAt(t time.Time) {
	m.last_inbound_at = &t
}

// LastInboundAt returns the value of the "last_inbound_at" field in the mutation.
func (m *ConversationMutation) LastInboundAt() (r time.Time, exists bool) {
	v := m.last_inbound_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInboundAt returns the old "last_inbound_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldLastInboundAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInboundAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInboundAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInboundAt: %w", err)
	}
	return oldValue.LastInboundAt, nil
}

// ClearLastInboundAt clears the value of the "last_inbound_at" field.
func (m *ConversationMutation) ClearLastInboundAt() {
	m.last_inbound_at = nil
	m.clearedFields[conversation.FieldLastInboundAt] = struct{}{}
}

// LastInboundAtCleared returns if the "last_inbound_at" field was cleared in this mutation.
func (m *ConversationMutation) LastInboundAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldLastInboundAt]
	return ok
}

// ResetLastInboundAt resets all changes to the "last_inbound_at" field.
func (m *ConversationMutation) ResetLastInboundAt() {
	m.last_inbound_at = nil
	delete(m.clearedFields, conversation.FieldLastInboundAt)
}

// SetLastOutboundAt sets the "last_outbound_at" field.
func (m *ConversationMutation) SetLastOutboundAt(t time.Time) {
	m.last_outbound_at = &t
}

// LastOutboundAt returns the value of the "last_outbound_at" field in the mutation.
func (m *ConversationMutation) LastOutboundAt() (r time.Time, exists bool) {
	v := m.last_outbound_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastOutboundAt returns the old "last_outbound_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldLastOutboundAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastOutboundAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastOutboundAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastOutboundAt: %w", err)
	}
	return oldValue.LastOutboundAt, nil
}

// ClearLastOutboundAt clears the value of the "last_outbound_at" field.
func (m *ConversationMutation) ClearLastOutboundAt() {
	m.last_outbound_at = nil
	m.clearedFields[conversation.FieldLastOutboundAt] = struct{}{}
}

// LastOutboundAtCleared returns if the "last_outbound_at" field was cleared in this mutation.
func (m *ConversationMutation) LastOutboundAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldLastOutboundAt]
	return ok
}

// ResetLastOutboundAt resets all changes to the "last_outbound_at" field.
func (m *ConversationMutation) ResetLastOutboundAt() {
	m.last_outbound_at = nil
	delete(m.clearedFields, conversation.FieldLastOutboundAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMessageIDs adds the "messages" edge to the InboundMessage entity by ids.
func (m *ConversationMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the InboundMessage entity.
func (m *ConversationMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the InboundMessage entity was cleared.
func (m *ConversationMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the InboundMessage entity by IDs.
func (m *ConversationMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the InboundMessage entity.
func (m *ConversationMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ConversationMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ConversationMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 25)
	if m.phone != nil {
		fields = append(fields, conversation.FieldPhone)
	}
	if m.persona != nil {
		fields = append(fields, conversation.FieldPersona)
	}
	if m.phase != nil {
		fields = append(fields, conversation.FieldPhase)
	}
	if m.turn_count != nil {
		fields = append(fields, conversation.FieldTurnCount)
	}
	if m.criteria != nil {
		fields = append(fields, conversation.FieldCriteria)
	}
	if m.presented_matches != nil {
		fields = append(fields, conversation.FieldPresentedMatches)
	}
	if m.focused_match_id != nil {
		fields = append(fields, conversation.FieldFocusedMatchID)
	}
	if m.renter_first_name != nil {
		fields = append(fields, conversation.FieldRenterFirstName)
	}
	if m.renter_last_name != nil {
		fields = append(fields, conversation.FieldRenterLastName)
	}
	if m.buyer_email != nil {
		fields = append(fields, conversation.FieldBuyerEmail)
	}
	if m.name_status != nil {
		fields = append(fields, conversation.FieldNameStatus)
	}
	if m.name_requested_at_turn != nil {
		fields = append(fields, conversation.FieldNameRequestedAtTurn)
	}
	if m.user_id != nil {
		fields = append(fields, conversation.FieldUserID)
	}
	if m.buyer_need_id != nil {
		fields = append(fields, conversation.FieldBuyerNeedID)
	}
	if m.warehouse_id != nil {
		fields = append(fields, conversation.FieldWarehouseID)
	}
	if m.engagement_id != nil {
		fields = append(fields, conversation.FieldEngagementID)
	}
	if m.guarantee_link_token != nil {
		fields = append(fields, conversation.FieldGuaranteeLinkToken)
	}
	if m.search_session_token != nil {
		fields = append(fields, conversation.FieldSearchSessionToken)
	}
	if m.status != nil {
		fields = append(fields, conversation.FieldStatus)
	}
	if m.reengagement_stage != nil {
		fields = append(fields, conversation.FieldReengagementStage)
	}
	if m.next_reengagement_at != nil {
		fields = append(fields, conversation.FieldNextReengagementAt)
	}
	if m.last_inbound_at != nil {
		fields = append(fields, conversation.FieldLastInboundAt)
	}
	if m.last_outbound_at != nil {
		fields = append(fields, conversation.FieldLastOutboundAt)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldPhone:
		return m.Phone()
	case conversation.FieldPersona:
		return m.Persona()
	case conversation.FieldPhase:
		return m.Phase()
	case conversation.FieldTurnCount:
		return m.TurnCount()
	case conversation.FieldCriteria:
		return m.Criteria()
	case conversation.FieldPresentedMatches:
		return m.PresentedMatches()
	case conversation.FieldFocusedMatchID:
		return m.FocusedMatchID()
	case conversation.FieldRenterFirstName:
		return m.RenterFirstName()
	case conversation.FieldRenterLastName:
		return m.RenterLastName()
	case conversation.FieldBuyerEmail:
		return m.BuyerEmail()
	case conversation.FieldNameStatus:
		return m.NameStatus()
	case conversation.FieldNameRequestedAtTurn:
		return m.NameRequestedAtTurn()
	case conversation.FieldUserID:
		return m.UserID()
	case conversation.FieldBuyerNeedID:
		return m.BuyerNeedID()
	case conversation.FieldWarehouseID:
		return m.WarehouseID()
	case conversation.FieldEngagementID:
		return m.EngagementID()
	case conversation.FieldGuaranteeLinkToken:
		return m.GuaranteeLinkToken()
	case conversation.FieldSearchSessionToken:
		return m.SearchSessionToken()
	case conversation.FieldStatus:
		return m.Status()
	case conversation.FieldReengagementStage:
		return m.ReengagementStage()
	case conversation.FieldNextReengagementAt:
		return m.NextReengagementAt()
	case conversation.FieldLastInboundAt:
		return m.LastInboundAt()
	case conversation.FieldLastOutboundAt:
		return m.LastOutboundAt()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldPhone:
		return m.OldPhone(ctx)
	case conversation.FieldPersona:
		return m.OldPersona(ctx)
	case conversation.FieldPhase:
		return m.OldPhase(ctx)
	case conversation.FieldTurnCount:
		return m.OldTurnCount(ctx)
	case conversation.FieldCriteria:
		return m.OldCriteria(ctx)
	case conversation.FieldPresentedMatches:
		return m.OldPresentedMatches(ctx)
	case conversation.FieldFocusedMatchID:
		return m.OldFocusedMatchID(ctx)
	case conversation.FieldRenterFirstName:
		return m.OldRenterFirstName(ctx)
	case conversation.FieldRenterLastName:
		return m.OldRenterLastName(ctx)
	case conversation.FieldBuyerEmail:
		return m.OldBuyerEmail(ctx)
	case conversation.FieldNameStatus:
		return m.OldNameStatus(ctx)
	case conversation.FieldNameRequestedAtTurn:
		return m.OldNameRequestedAtTurn(ctx)
	case conversation.FieldUserID:
		return m.OldUserID(ctx)
	case conversation.FieldBuyerNeedID:
		return m.OldBuyerNeedID(ctx)
	case conversation.FieldWarehouseID:
		return m.OldWarehouseID(ctx)
	case conversation.FieldEngagementID:
		return m.OldEngagementID(ctx)
	case conversation.FieldGuaranteeLinkToken:
		return m.OldGuaranteeLinkToken(ctx)
	case conversation.FieldSearchSessionToken:
		return m.OldSearchSessionToken(ctx)
	case conversation.FieldStatus:
		return m.OldStatus(ctx)
	case conversation.FieldReengagementStage:
		return m.OldReengagementStage(ctx)
	case conversation.FieldNextReengagementAt:
		return m.OldNextReengagementAt(ctx)
	case conversation.FieldLastInboundAt:
		return m.OldLastInboundAt(ctx)
	case conversation.FieldLastOutboundAt:
		return m.OldLastOutboundAt(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case conversation.FieldPersona:
		v, ok := value.(conversation.Persona)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersona(v)
		return nil
	case conversation.FieldPhase:
		v, ok := value.(conversation.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case conversation.FieldTurnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnCount(v)
		return nil
	case conversation.FieldCriteria:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriteria(v)
		return nil
	case conversation.FieldPresentedMatches:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPresentedMatches(v)
		return nil
	case conversation.FieldFocusedMatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFocusedMatchID(v)
		return nil
	case conversation.FieldRenterFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRenterFirstName(v)
		return nil
	case conversation.FieldRenterLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRenterLastName(v)
		return nil
	case conversation.FieldBuyerEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerEmail(v)
		return nil
	case conversation.FieldNameStatus:
		v, ok := value.(conversation.NameStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameStatus(v)
		return nil
	case conversation.FieldNameRequestedAtTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameRequestedAtTurn(v)
		return nil
	case conversation.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case conversation.FieldBuyerNeedID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerNeedID(v)
		return nil
	case conversation.FieldWarehouseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarehouseID(v)
		return nil
	case conversation.FieldEngagementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementID(v)
		return nil
	case conversation.FieldGuaranteeLinkToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuaranteeLinkToken(v)
		return nil
	case conversation.FieldSearchSessionToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchSessionToken(v)
		return nil
	case conversation.FieldStatus:
		v, ok := value.(conversation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case conversation.FieldReengagementStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReengagementStage(v)
		return nil
	case conversation.FieldNextReengagementAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReengagementAt(v)
		return nil
	case conversation.FieldLastInboundAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInboundAt(v)
		return nil
	case conversation.FieldLastOutboundAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastOutboundAt(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	var fields []string
	if m.addturn_count != nil {
		fields = append(fields, conversation.FieldTurnCount)
	}
	if m.addname_requested_at_turn != nil {
		fields = append(fields, conversation.FieldNameRequestedAtTurn)
	}
	if m.addreengagement_stage != nil {
		fields = append(fields, conversation.FieldReengagementStage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldTurnCount:
		return m.AddedTurnCount()
	case conversation.FieldNameRequestedAtTurn:
		return m.AddedNameRequestedAtTurn()
	case conversation.FieldReengagementStage:
		return m.AddedReengagementStage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldTurnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnCount(v)
		return nil
	case conversation.FieldNameRequestedAtTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNameRequestedAtTurn(v)
		return nil
	case conversation.FieldReengagementStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReengagementStage(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldCriteria) {
		fields = append(fields, conversation.FieldCriteria)
	}
	if m.FieldCleared(conversation.FieldPresentedMatches) {
		fields = append(fields, conversation.FieldPresentedMatches)
	}
	if m.FieldCleared(conversation.FieldFocusedMatchID) {
		fields = append(fields, conversation.FieldFocusedMatchID)
	}
	if m.FieldCleared(conversation.FieldRenterFirstName) {
		fields = append(fields, conversation.FieldRenterFirstName)
	}
	if m.FieldCleared(conversation.FieldRenterLastName) {
		fields = append(fields, conversation.FieldRenterLastName)
	}
	if m.FieldCleared(conversation.FieldBuyerEmail) {
		fields = append(fields, conversation.FieldBuyerEmail)
	}
	if m.FieldCleared(conversation.FieldNameRequestedAtTurn) {
		fields = append(fields, conversation.FieldNameRequestedAtTurn)
	}
	if m.FieldCleared(conversation.FieldUserID) {
		fields = append(fields, conversation.FieldUserID)
	}
	if m.FieldCleared(conversation.FieldBuyerNeedID) {
		fields = append(fields, conversation.FieldBuyerNeedID)
	}
	if m.FieldCleared(conversation.FieldWarehouseID) {
		fields = append(fields, conversation.FieldWarehouseID)
	}
	if m.FieldCleared(conversation.FieldEngagementID) {
		fields = append(fields, conversation.FieldEngagementID)
	}
	if m.FieldCleared(conversation.FieldGuaranteeLinkToken) {
		fields = append(fields, conversation.FieldGuaranteeLinkToken)
	}
	if m.FieldCleared(conversation.FieldSearchSessionToken) {
		fields = append(fields, conversation.FieldSearchSessionToken)
	}
	if m.FieldCleared(conversation.FieldNextReengagementAt) {
		fields = append(fields, conversation.FieldNextReengagementAt)
	}
	if m.FieldCleared(conversation.FieldLastInboundAt) {
		fields = append(fields, conversation.FieldLastInboundAt)
	}
	if m.FieldCleared(conversation.FieldLastOutboundAt) {
		fields = append(fields, conversation.FieldLastOutboundAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldCriteria:
		m.ClearCriteria()
		return nil
	case conversation.FieldPresentedMatches:
		m.ClearPresentedMatches()
		return nil
	case conversation.FieldFocusedMatchID:
		m.ClearFocusedMatchID()
		return nil
	case conversation.FieldRenterFirstName:
		m.ClearRenterFirstName()
		return nil
	case conversation.FieldRenterLastName:
		m.ClearRenterLastName()
		return nil
	case conversation.FieldBuyerEmail:
		m.ClearBuyerEmail()
		return nil
	case conversation.FieldNameRequestedAtTurn:
		m.ClearNameRequestedAtTurn()
		return nil
	case conversation.FieldUserID:
		m.ClearUserID()
		return nil
	case conversation.FieldBuyerNeedID:
		m.ClearBuyerNeedID()
		return nil
	case conversation.FieldWarehouseID:
		m.ClearWarehouseID()
		return nil
	case conversation.FieldEngagementID:
		m.ClearEngagementID()
		return nil
	case conversation.FieldGuaranteeLinkToken:
		m.ClearGuaranteeLinkToken()
		return nil
	case conversation.FieldSearchSessionToken:
		m.ClearSearchSessionToken()
		return nil
	case conversation.FieldNextReengagementAt:
		m.ClearNextReengagementAt()
		return nil
	case conversation.FieldLastInboundAt:
		m.ClearLastInboundAt()
		return nil
	case conversation.FieldLastOutboundAt:
		m.ClearLastOutboundAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldPhone:
		m.ResetPhone()
		return nil
	case conversation.FieldPersona:
		m.ResetPersona()
		return nil
	case conversation.FieldPhase:
		m.ResetPhase()
		return nil
	case conversation.FieldTurnCount:
		m.ResetTurnCount()
		return nil
	case conversation.FieldCriteria:
		m.ResetCriteria()
		return nil
	case conversation.FieldPresentedMatches:
		m.ResetPresentedMatches()
		return nil
	case conversation.FieldFocusedMatchID:
		m.ResetFocusedMatchID()
		return nil
	case conversation.FieldRenterFirstName:
		m.ResetRenterFirstName()
		return nil
	case conversation.FieldRenterLastName:
		m.ResetRenterLastName()
		return nil
	case conversation.FieldBuyerEmail:
		m.ResetBuyerEmail()
		return nil
	case conversation.FieldNameStatus:
		m.ResetNameStatus()
		return nil
	case conversation.FieldNameRequestedAtTurn:
		m.ResetNameRequestedAtTurn()
		return nil
	case conversation.FieldUserID:
		m.ResetUserID()
		return nil
	case conversation.FieldBuyerNeedID:
		m.ResetBuyerNeedID()
		return nil
	case conversation.FieldWarehouseID:
		m.ResetWarehouseID()
		return nil
	case conversation.FieldEngagementID:
		m.ResetEngagementID()
		return nil
	case conversation.FieldGuaranteeLinkToken:
		m.ResetGuaranteeLinkToken()
		return nil
	case conversation.FieldSearchSessionToken:
		m.ResetSearchSessionToken()
		return nil
	case conversation.FieldStatus:
		m.ResetStatus()
		return nil
	case conversation.FieldReengagementStage:
		m.ResetReengagementStage()
		return nil
	case conversation.FieldNextReengagementAt:
		m.ResetNextReengagementAt()
		return nil
	case conversation.FieldLastInboundAt:
		m.ResetLastInboundAt()
		return nil
	case conversation.FieldLastOutboundAt:
		m.ResetLastOutboundAt()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.messages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmessages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmessages {
		edges = append(edges, conversation.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case conversation.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	switch name {
	case conversation.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// DLATokenMutation represents an operation that mutates the DLAToken nodes in the graph.
type DLATokenMutation struct {
	config
	op                Op
	typ               string
	id                *string
	token             *string
	status            *dlatoken.Status
	suggested_rate    *float64
	addsuggested_rate *float64
	final_rate        *float64
	addfinal_rate     *float64
	proposed_sqft     *int
	addproposed_sqft  *int
	expires_at        *time.Time
	confirmed_at      *time.Time
	responded_at      *time.Time
	outcome_note      *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	warehouse         *string
	clearedwarehouse  bool
	buyer_need        *string
	clearedbuyer_need bool
	done              bool
	oldValue          func(context.Context) (*DLAToken, error)
	predicates        []predicate.DLAToken
}

var _ ent.Mutation = (*DLATokenMutation)(nil)

// dlatokenOption allows management of the mutation configuration using functional options.
type dlatokenOption func(*DLATokenMutation)

// newDLATokenMutation creates new mutation for the DLAToken entity.
func newDLATokenMutation(c config, op Op, opts ...dlatokenOption) *DLATokenMutation {
	m := &DLATokenMutation{
		config:        c,
		op:            op,
		typ:           TypeDLAToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDLATokenID sets the ID field of the mutation.
func withDLATokenID(id string) dlatokenOption {
	return func(m *DLATokenMutation) {
		var (
			err   error
			once  sync.Once
			value *DLAToken
		)
		m.oldValue = func(ctx context.Context) (*DLAToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DLAToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDLAToken sets the old DLAToken of the mutation.
func withDLAToken(node *DLAToken) dlatokenOption {
	return func(m *DLATokenMutation) {
		m.oldValue = func(context.Context) (*DLAToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DLATokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DLATokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DLAToken entities.
func (m *DLATokenMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DLATokenMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DLATokenMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DLAToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetToken sets the "token" field.
func (m *DLATokenMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *DLATokenMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the DLAToken entity.
// If the DLAToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLATokenMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *DLATokenMutation) ResetToken() {
	m.token = nil
}

// SetWarehouseID sets the "warehouse_id" field.
func (m *DLATokenMutation) SetWarehouseID(s string) {
	m.warehouse = &s
}

// WarehouseID returns the value of the "warehouse_id" field in the mutation.
func (m *DLATokenMutation) WarehouseID() (r string, exists bool) {
	v := m.warehouse
	if v == nil {
		return
	}
	return *v, true
}

// OldWarehouseID returns the old "warehouse_id" field's value of the DLAToken entity.
// If the DLAToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLATokenMutation) OldWarehouseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarehouseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarehouseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarehouseID: %w", err)
	}
	return oldValue.WarehouseID, nil
}

// ResetWarehouseID resets all changes to the "warehouse_id" field.
func (m *DLATokenMutation) ResetWarehouseID() {
	m.warehouse = nil
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (m *DLATokenMutation) SetBuyerNeedID(s string) {
	m.buyer_need = &s
}

// BuyerNeedID returns the value of the "buyer_need_id" field in the mutation.
func (m *DLATokenMutation) BuyerNeedID() (r string, exists bool) {
	v := m.buyer_need
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerNeedID returns the old "buyer_need_id" field's value of the DLAToken entity.
// If the DLAToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLATokenMutation) OldBuyerNeedID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerNeedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerNeedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerNeedID: %w", err)
	}
	return oldValue.BuyerNeedID, nil
}

// ResetBuyerNeedID resets all changes to the "buyer_need_id" field.
func (m *DLATokenMutation) ResetBuyerNeedID() {
	m.buyer_need = nil
}

// SetStatus sets the "status" field.
func (m *DLATokenMutation) SetStatus(d dlatoken.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DLATokenMutation) Status() (r dlatoken.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DLAToken entity.
// If the DLAToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLATokenMutation) OldStatus(ctx context.Context) (v dlatoken.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DLATokenMutation) ResetStatus() {
	m.status = nil
}

// SetSuggestedRate sets the "suggested_rate" field.
func (m *DLATokenMutation) SetSuggestedRate(f float64) {
	m.suggested_rate = &f
	m.addsuggested_rate = nil
}

// SuggestedRate returns the value of the "suggested_rate" field in the mutation.
func (m *DLATokenMutation) SuggestedRate() (r float64, exists bool) {
	v := m.suggested_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedRate returns the old "suggested_rate" field's value of the DLAToken entity.
// If the DLAToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLATokenMutation) OldSuggestedRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedRate: %w", err)
	}
	return oldValue.SuggestedRate, nil
}

// AddSuggestedRate adds f to the "suggested_rate" field.
func (m *DLATokenMutation) AddSuggestedRate(f float64) {
	if m.addsuggested_rate != nil {
		*m.addsuggested_rate += f
	} else {
		m.addsuggested_rate = &f
	}
}

// AddedSuggestedRate returns the value that was added to the "suggested_rate" field in this mutation.
func (m *DLATokenMutation) AddedSuggestedRate() (r float64, exists bool) {
	v := m.addsuggested_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearSuggestedRate clears the value of the "suggested_rate" field.
func (m *DLATokenMutation) ClearSuggestedRate() {
	m.suggested_rate = nil
	m.addsuggested_rate = nil
	m.clearedFields[dlatoken.FieldSuggestedRate] = struct{}{}
}

// SuggestedRateCleared returns if the "suggested_rate" field was cleared in this mutation.
func (m *DLATokenMutation) SuggestedRateCleared() bool {
	_, ok := m.clearedFields[dlatoken.FieldSuggestedRate]
	return ok
}

// ResetSuggestedRate resets all changes to the "suggested_rate" field.
func (m *DLATokenMutation) ResetSuggestedRate() {
	m.suggested_rate = nil
	m.addsuggested_rate = nil
	delete(m.clearedFields, dlatoken.FieldSuggestedRate)
}

// SetFinalRate sets the "final_rate" field.
func (m *DLATokenMutation) SetFinalRate(f float64) {
	m.final_rate = &f
	m.addfinal_rate = nil
}

// FinalRate returns the value of the "final_rate" field in the mutation.
func (m *DLATokenMutation) FinalRate() (r float64, exists bool) {
	v := m.final_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalRate returns the old "final_rate" field's value of the DLAToken entity.
// If the DLAToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLATokenMutation) OldFinalRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalRate: %w", err)
	}
	return oldValue.FinalRate, nil
}

// AddFinalRate adds f to the "final_rate" field.
func (m *DLATokenMutation) AddFinalRate(f float64) {
	if m.addfinal_rate != nil {
		*m.addfinal_rate += f
	} else {
		m.addfinal_rate = &f
	}
}

// AddedFinalRate returns the value that was added to the "final_rate" field in this mutation.
func (m *DLATokenMutation) AddedFinalRate() (r float64, exists bool) {
	v := m.addfinal_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearFinalRate clears the value of the "final_rate" field.
func (m *DLATokenMutation) ClearFinalRate() {
	m.final_rate = nil
	m.addfinal_rate = nil
	m.clearedFields[dlatoken.FieldFinalRate] = struct{}{}
}

// FinalRateCleared returns if the "final_rate" field was cleared in this mutation.
func (m *DLATokenMutation) FinalRateCleared() bool {
	_, ok := m.clearedFields[dlatoken.FieldFinalRate]
	return ok
}

// ResetFinalRate resets all changes to the "final_rate" field.
func (m *DLATokenMutation) ResetFinalRate() {
	m.final_rate = nil
	m.addfinal_rate = nil
	delete(m.clearedFields, dlatoken.FieldFinalRate)
}

// SetProposedSqft sets the "proposed_sqft" field.
func (m *DLATokenMutation) SetProposedSqft(i int) {
	m.proposed_sqft = &i
	m.addproposed_sqft = nil
}

// ProposedSqft returns the value of the "proposed_sqft" field in the mutation.
func (m *DLATokenMutation) ProposedSqft() (r int, exists bool) {
	v := m.proposed_sqft
	if v == nil {
		return
	}
	return *v, true
}

// OldProposedSqft returns the old "proposed_sqft" field's value of the DLAToken entity.
// If the DLAToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLATokenMutation) OldProposedSqft(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposedSqft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposedSqft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposedSqft: %w", err)
	}
	return oldValue.ProposedSqft, nil
}

// AddProposedSqft adds i to the "proposed_sqft" field.
func (m *DLATokenMutation) AddProposedSqft(i int) {
	if m.addproposed_sqft != nil {
		*m.addproposed_sqft += i
	} else {
		m.addproposed_sqft = &i
	}
}

// AddedProposedSqft returns the value that was added to the "proposed_sqft" field in this mutation.
func (m *DLATokenMutation) AddedProposedSqft() (r int, exists bool) {
	v := m.addproposed_sqft
	if v == nil {
		return
	}
	return *v, true
}

// ResetProposedSqft resets all changes to the "proposed_sqft" field.
func (m *DLATokenMutation) ResetProposedSqft() {
	m.proposed_sqft = nil
	m.addproposed_sqft = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *DLATokenMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *DLATokenMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the DLAToken entity.
// If the DLAToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLATokenMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *DLATokenMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetConfirmedAt sets the "confirmed_at" field.
func (m *DLATokenMutation) SetConfirmedAt(t time.Time) {
	m.confirmed_at = &t
}

// ConfirmedAt returns the value of the "confirmed_at" field in the mutation.
func (m *DLATokenMutation) ConfirmedAt() (r time.Time, exists bool) {
	v := m.confirmed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmedAt returns the old "confirmed_at" field's value of the DLAToken entity.
// If the DLAToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLATokenMutation) OldConfirmedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmedAt: %w", err)
	}
	return oldValue.ConfirmedAt, nil
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (m *DLATokenMutation) ClearConfirmedAt() {
	m.confirmed_at = nil
	m.clearedFields[dlatoken.FieldConfirmedAt] = struct{}{}
}

// ConfirmedAtCleared returns if the "confirmed_at" field was cleared in this mutation.
func (m *DLATokenMutation) ConfirmedAtCleared() bool {
	_, ok := m.clearedFields[dlatoken.FieldConfirmedAt]
	return ok
}

// ResetConfirmedAt resets all changes to the "confirmed_at" field.
func (m *DLATokenMutation) ResetConfirmedAt() {
	m.confirmed_at = nil
	delete(m.clearedFields, dlatoken.FieldConfirmedAt)
}

// SetRespondedAt sets the "responded_at" field.
func (m *DLATokenMutation) SetRespondedAt(t time.Time) {
	m.responded_at = &t
}

// RespondedAt returns the value of the "responded_at" field in the mutation.
func (m *DLATokenMutation) RespondedAt() (r time.Time, exists bool) {
	v := m.responded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedAt returns the old "responded_at" field's value of the DLAToken entity.
// If the DLAToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLATokenMutation) OldRespondedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedAt: %w", err)
	}
	return oldValue.RespondedAt, nil
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (m *DLATokenMutation) ClearRespondedAt() {
	m.responded_at = nil
	m.clearedFields[dlatoken.FieldRespondedAt] = struct{}{}
}

// RespondedAtCleared returns if the "responded_at" field was cleared in this mutation.
func (m *DLATokenMutation) RespondedAtCleared() bool {
	_, ok := m.clearedFields[dlatoken.FieldRespondedAt]
	return ok
}

// ResetRespondedAt resets all changes to the "responded_at" field.
func (m *DLATokenMutation) ResetRespondedAt() {
	m.responded_at = nil
	delete(m.clearedFields, dlatoken.FieldRespondedAt)
}

// SetOutcomeNote sets the "outcome_note" field.
func (m *DLATokenMutation) SetOutcomeNote(s string) {
	m.outcome_note = &s
}

// OutcomeNote returns the value of the "outcome_note" field in the mutation.
func (m *DLATokenMutation) OutcomeNote() (r string, exists bool) {
	v := m.outcome_note
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeNote returns the old "outcome_note" field's value of the DLAToken entity.
// If the DLAToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLATokenMutation) OldOutcomeNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeNote: %w", err)
	}
	return oldValue.OutcomeNote, nil
}

// ClearOutcomeNote clears the value of the "outcome_note" field.
func (m *DLATokenMutation) ClearOutcomeNote() {
	m.outcome_note = nil
	m.clearedFields[dlatoken.FieldOutcomeNote] = struct{}{}
}

// OutcomeNoteCleared returns if the "outcome_note" field was cleared in this mutation.
func (m *DLATokenMutation) OutcomeNoteCleared() bool {
	_, ok := m.clearedFields[dlatoken.FieldOutcomeNote]
	return ok
}

// ResetOutcomeNote resets all changes to the "outcome_note" field.
func (m *DLATokenMutation) ResetOutcomeNote() {
	m.outcome_note = nil
	delete(m.clearedFields, dlatoken.FieldOutcomeNote)
}

// SetCreatedAt sets the "created_at" field.
func (m *DLATokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DLATokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DLAToken entity.
// If the DLAToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLATokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DLATokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DLATokenMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DLATokenMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DLAToken entity.
// If the DLAToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLATokenMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DLATokenMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (m *DLATokenMutation) ClearWarehouse() {
	m.clearedwarehouse = true
	m.clearedFields[dlatoken.FieldWarehouseID] = struct{}{}
}

// WarehouseCleared reports if the "warehouse" edge to the Warehouse entity was cleared.
func (m *DLATokenMutation) WarehouseCleared() bool {
	return m.clearedwarehouse
}

// WarehouseIDs returns the "warehouse" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WarehouseID instead. It exists only for internal usage by the builders.
func (m *DLATokenMutation) WarehouseIDs() (ids []string) {
	if id := m.warehouse; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWarehouse resets all changes to the "warehouse" edge.
func (m *DLATokenMutation) ResetWarehouse() {
	m.warehouse = nil
	m.clearedwarehouse = false
}

// ClearBuyerNeed clears the "buyer_need" edge to the BuyerNeed entity.
func (m *DLATokenMutation) ClearBuyerNeed() {
	m.clearedbuyer_need = true
	m.clearedFields[dlatoken.FieldBuyerNeedID] = struct{}{}
}

// BuyerNeedCleared reports if the "buyer_need" edge to the BuyerNeed entity was cleared.
func (m *DLATokenMutation) BuyerNeedCleared() bool {
	return m.clearedbuyer_need
}

// BuyerNeedIDs returns the "buyer_need" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BuyerNeedID instead. It exists only for internal usage by the builders.
func (m *DLATokenMutation) BuyerNeedIDs() (ids []string) {
	if id := m.buyer_need; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBuyerNeed resets all changes to the "buyer_need" edge.
func (m *DLATokenMutation) ResetBuyerNeed() {
	m.buyer_need = nil
	m.clearedbuyer_need = false
}

// Where appends a list predicates to the DLATokenMutation builder.
func (m *DLATokenMutation) Where(ps ...predicate.DLAToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DLATokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DLATokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DLAToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DLATokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DLATokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DLAToken).
func (m *DLATokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DLATokenMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.token != nil {
		fields = append(fields, dlatoken.FieldToken)
	}
	if m.warehouse != nil {
		fields = append(fields, dlatoken.FieldWarehouseID)
	}
	if m.buyer_need != nil {
		fields = append(fields, dlatoken.FieldBuyerNeedID)
	}
	if m.status != nil {
		fields = append(fields, dlatoken.FieldStatus)
	}
	if m.suggested_rate != nil {
		fields = append(fields, dlatoken.FieldSuggestedRate)
	}
	if m.final_rate != nil {
		fields = append(fields, dlatoken.FieldFinalRate)
	}
	if m.proposed_sqft != nil {
		fields = append(fields, dlatoken.FieldProposedSqft)
	}
	if m.expires_at != nil {
		fields = append(fields, dlatoken.FieldExpiresAt)
	}
	if m.confirmed_at != nil {
		fields = append(fields, dlatoken.FieldConfirmedAt)
	}
	if m.responded_at != nil {
		fields = append(fields, dlatoken.FieldRespondedAt)
	}
	if m.outcome_note != nil {
		fields = append(fields, dlatoken.FieldOutcomeNote)
	}
	if m.created_at != nil {
		fields = append(fields, dlatoken.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dlatoken.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DLATokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dlatoken.FieldToken:
		return m.Token()
	case dlatoken.FieldWarehouseID:
		return m.WarehouseID()
	case dlatoken.FieldBuyerNeedID:
		return m.BuyerNeedID()
	case dlatoken.FieldStatus:
		return m.Status()
	case dlatoken.FieldSuggestedRate:
		return m.SuggestedRate()
	case dlatoken.FieldFinalRate:
		return m.FinalRate()
	case dlatoken.FieldProposedSqft:
		return m.ProposedSqft()
	case dlatoken.FieldExpiresAt:
		return m.ExpiresAt()
	case dlatoken.FieldConfirmedAt:
		return m.ConfirmedAt()
	case dlatoken.FieldRespondedAt:
		return m.RespondedAt()
	case dlatoken.FieldOutcomeNote:
		return m.OutcomeNote()
	case dlatoken.FieldCreatedAt:
		return m.CreatedAt()
	case dlatoken.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DLATokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dlatoken.FieldToken:
		return m.OldToken(ctx)
	case dlatoken.FieldWarehouseID:
		return m.OldWarehouseID(ctx)
	case dlatoken.FieldBuyerNeedID:
		return m.OldBuyerNeedID(ctx)
	case dlatoken.FieldStatus:
		return m.OldStatus(ctx)
	case dlatoken.FieldSuggestedRate:
		return m.OldSuggestedRate(ctx)
	case dlatoken.FieldFinalRate:
		return m.OldFinalRate(ctx)
	case dlatoken.FieldProposedSqft:
		return m.OldProposedSqft(ctx)
	case dlatoken.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case dlatoken.FieldConfirmedAt:
		return m.OldConfirmedAt(ctx)
	case dlatoken.FieldRespondedAt:
		return m.OldRespondedAt(ctx)
	case dlatoken.FieldOutcomeNote:
		return m.OldOutcomeNote(ctx)
	case dlatoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dlatoken.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DLAToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DLATokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dlatoken.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case dlatoken.FieldWarehouseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarehouseID(v)
		return nil
	case dlatoken.FieldBuyerNeedID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerNeedID(v)
		return nil
	case dlatoken.FieldStatus:
		v, ok := value.(dlatoken.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case dlatoken.FieldSuggestedRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedRate(v)
		return nil
	case dlatoken.FieldFinalRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalRate(v)
		return nil
	case dlatoken.FieldProposedSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposedSqft(v)
		return nil
	case dlatoken.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case dlatoken.FieldConfirmedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmedAt(v)
		return nil
	case dlatoken.FieldRespondedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedAt(v)
		return nil
	case dlatoken.FieldOutcomeNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeNote(v)
		return nil
	case dlatoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dlatoken.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DLAToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DLATokenMutation) AddedFields() []string {
	var fields []string
	if m.addsuggested_rate != nil {
		fields = append(fields, dlatoken.FieldSuggestedRate)
	}
	if m.addfinal_rate != nil {
		fields = append(fields, dlatoken.FieldFinalRate)
	}
	if m.addproposed_sqft != nil {
		fields = append(fields, dlatoken.FieldProposedSqft)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DLATokenMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dlatoken.FieldSuggestedRate:
		return m.AddedSuggestedRate()
	case dlatoken.FieldFinalRate:
		return m.AddedFinalRate()
	case dlatoken.FieldProposedSqft:
		return m.AddedProposedSqft()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DLATokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dlatoken.FieldSuggestedRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuggestedRate(v)
		return nil
	case dlatoken.FieldFinalRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalRate(v)
		return nil
	case dlatoken.FieldProposedSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProposedSqft(v)
		return nil
	}
	return fmt.Errorf("unknown DLAToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DLATokenMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dlatoken.FieldSuggestedRate) {
		fields = append(fields, dlatoken.FieldSuggestedRate)
	}
	if m.FieldCleared(dlatoken.FieldFinalRate) {
		fields = append(fields, dlatoken.FieldFinalRate)
	}
	if m.FieldCleared(dlatoken.FieldConfirmedAt) {
		fields = append(fields, dlatoken.FieldConfirmedAt)
	}
	if m.FieldCleared(dlatoken.FieldRespondedAt) {
		fields = append(fields, dlatoken.FieldRespondedAt)
	}
	if m.FieldCleared(dlatoken.FieldOutcomeNote) {
		fields = append(fields, dlatoken.FieldOutcomeNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DLATokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DLATokenMutation) ClearField(name string) error {
	switch name {
	case dlatoken.FieldSuggestedRate:
		m.ClearSuggestedRate()
		return nil
	case dlatoken.FieldFinalRate:
		m.ClearFinalRate()
		return nil
	case dlatoken.FieldConfirmedAt:
		m.ClearConfirmedAt()
		return nil
	case dlatoken.FieldRespondedAt:
		m.ClearRespondedAt()
		return nil
	case dlatoken.FieldOutcomeNote:
		m.ClearOutcomeNote()
		return nil
	}
	return fmt.Errorf("unknown DLAToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DLATokenMutation) ResetField(name string) error {
	switch name {
	case dlatoken.FieldToken:
		m.ResetToken()
		return nil
	case dlatoken.FieldWarehouseID:
		m.ResetWarehouseID()
		return nil
	case dlatoken.FieldBuyerNeedID:
		m.ResetBuyerNeedID()
		return nil
	case dlatoken.FieldStatus:
		m.ResetStatus()
		return nil
	case dlatoken.FieldSuggestedRate:
		m.ResetSuggestedRate()
		return nil
	case dlatoken.FieldFinalRate:
		m.ResetFinalRate()
		return nil
	case dlatoken.FieldProposedSqft:
		m.ResetProposedSqft()
		return nil
	case dlatoken.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case dlatoken.FieldConfirmedAt:
		m.ResetConfirmedAt()
		return nil
	case dlatoken.FieldRespondedAt:
		m.ResetRespondedAt()
		return nil
	case dlatoken.FieldOutcomeNote:
		m.ResetOutcomeNote()
		return nil
	case dlatoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dlatoken.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DLAToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DLATokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.warehouse != nil {
		edges = append(edges, dlatoken.EdgeWarehouse)
	}
	if m.buyer_need != nil {
		edges = append(edges, dlatoken.EdgeBuyerNeed)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DLATokenMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dlatoken.EdgeWarehouse:
		if id := m.warehouse; id != nil {
			return []ent.Value{*id}
		}
	case dlatoken.EdgeBuyerNeed:
		if id := m.buyer_need; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DLATokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DLATokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DLATokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedwarehouse {
		edges = append(edges, dlatoken.EdgeWarehouse)
	}
	if m.clearedbuyer_need {
		edges = append(edges, dlatoken.EdgeBuyerNeed)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DLATokenMutation) EdgeCleared(name string) bool {
	switch name {
	case dlatoken.EdgeWarehouse:
		return m.clearedwarehouse
	case dlatoken.EdgeBuyerNeed:
		return m.clearedbuyer_need
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DLATokenMutation) ClearEdge(name string) error {
	switch name {
	case dlatoken.EdgeWarehouse:
		m.ClearWarehouse()
		return nil
	case dlatoken.EdgeBuyerNeed:
		m.ClearBuyerNeed()
		return nil
	}
	return fmt.Errorf("unknown DLAToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DLATokenMutation) ResetEdge(name string) error {
	switch name {
	case dlatoken.EdgeWarehouse:
		m.ResetWarehouse()
		return nil
	case dlatoken.EdgeBuyerNeed:
		m.ResetBuyerNeed()
		return nil
	}
	return fmt.Errorf("unknown DLAToken edge %s", name)
}

// EngagementMutation represents an operation that mutates the Engagement nodes in the graph.
type EngagementMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	buyer_need_id              *string
	warehouse_id               *string
	buyer_id                   *string
	company_id                 *string
	status                     *engagement.Status
	tier                       *engagement.Tier
	_path                      *engagement.Path
	deal_ping_sent_at          *time.Time
	deal_ping_expires_at       *time.Time
	buyer_accepted_at          *time.Time
	contact_captured_at        *time.Time
	account_created_at         *time.Time
	guarantee_signed_at        *time.Time
	address_revealed_at        *time.Time
	tour_requested_at          *time.Time
	tour_confirmed_at          *time.Time
	tour_scheduled_for         *time.Time
	tour_completed_at          *time.Time
	tour_reschedule_count      *int
	addtour_reschedule_count   *int
	instant_book_requested_at  *time.Time
	instant_book_confirmed_at  *time.Time
	buyer_confirmed_at         *time.Time
	agreement_sent_at          *time.Time
	agreement_signed_at        *time.Time
	lease_start_date           *time.Time
	lease_end_date             *time.Time
	activated_at               *time.Time
	completed_at               *time.Time
	insurance_uploaded         *bool
	company_docs_uploaded      *bool
	payment_method_added       *bool
	sqft                       *int
	addsqft                    *int
	supplier_rate              *float64
	addsupplier_rate           *float64
	buyer_rate                 *float64
	addbuyer_rate              *float64
	monthly_supplier_payout    *float64
	addmonthly_supplier_payout *float64
	monthly_buyer_total        *float64
	addmonthly_buyer_total     *float64
	declined_by                *engagement.DeclinedBy
	decline_reason             *string
	cancel_reason              *string
	decision_timer_paused_at   *time.Time
	admin_flagged              *bool
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	match                      *string
	clearedmatch               bool
	events                     map[string]struct{}
	removedevents              map[string]struct{}
	clearedevents              bool
	agreements                 map[string]struct{}
	removedagreements          map[string]struct{}
	clearedagreements          bool
	payments                   map[string]struct{}
	removedpayments            map[string]struct{}
	clearedpayments            bool
	upload_tokens              map[string]struct{}
	removedupload_tokens       map[string]struct{}
	clearedupload_tokens       bool
	done                       bool
	oldValue                   func(context.Context) (*Engagement, error)
	predicates                 []predicate.Engagement
}

var _ ent.Mutation = (*EngagementMutation)(nil)

// engagementOption allows management of the mutation configuration using functional options.
type engagementOption func(*EngagementMutation)

// newEngagementMutation creates new mutation for the Engagement entity.
func newEngagementMutation(c config, op Op, opts ...engagementOption) *EngagementMutation {
	m := &EngagementMutation{
		config:        c,
		op:            op,
		typ:           TypeEngagement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEngagementID sets the ID field of the mutation.
func withEngagementID(id string) engagementOption {
	return func(m *EngagementMutation) {
		var (
			err   error
			once  sync.Once
			value *Engagement
		)
		m.oldValue = func(ctx context.Context) (*Engagement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Engagement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEngagement sets the old Engagement of the mutation.
func withEngagement(node *Engagement) engagementOption {
	return func(m *EngagementMutation) {
		m.oldValue = func(context.Context) (*Engagement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EngagementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EngagementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Engagement entities.
func (m *EngagementMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EngagementMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EngagementMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Engagement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMatchID sets the "match_id" field.
func (m *EngagementMutation) SetMatchID(s string) {
	m.match = &s
}

// MatchID returns the value of the "match_id" field in the mutation.
func (m *EngagementMutation) MatchID() (r string, exists bool) {
	v := m.match
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchID returns the old "match_id" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldMatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchID: %w", err)
	}
	return oldValue.MatchID, nil
}

// ResetMatchID resets all changes to the "match_id" field.
func (m *EngagementMutation) ResetMatchID() {
	m.match = nil
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (m *EngagementMutation) SetBuyerNeedID(s string) {
	m.buyer_need_id = &s
}

// BuyerNeedID returns the value of the "buyer_need_id" field in the mutation.
func (m *EngagementMutation) BuyerNeedID() (r string, exists bool) {
	v := m.buyer_need_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerNeedID returns the old "buyer_need_id" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldBuyerNeedID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerNeedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerNeedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerNeedID: %w", err)
	}
	return oldValue.BuyerNeedID, nil
}

// ResetBuyerNeedID resets all changes to the "buyer_need_id" field.
func (m *EngagementMutation) ResetBuyerNeedID() {
	m.buyer_need_id = nil
}

// SetWarehouseID sets the "warehouse_id" field.
func (m *EngagementMutation) SetWarehouseID(s string) {
	m.warehouse_id = &s
}

// WarehouseID returns the value of the "warehouse_id" field in the mutation.
func (m *EngagementMutation) WarehouseID() (r string, exists bool) {
	v := m.warehouse_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWarehouseID returns the old "warehouse_id" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldWarehouseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarehouseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarehouseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarehouseID: %w", err)
	}
	return oldValue.WarehouseID, nil
}

// ResetWarehouseID resets all changes to the "warehouse_id" field.
func (m *EngagementMutation) ResetWarehouseID() {
	m.warehouse_id = nil
}

// SetBuyerID sets the "buyer_id" field.
func (m *EngagementMutation) SetBuyerID(s string) {
	m.buyer_id = &s
}

// BuyerID returns the value of the "buyer_id" field in the mutation.
func (m *EngagementMutation) BuyerID() (r string, exists bool) {
	v := m.buyer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerID returns the old "buyer_id" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldBuyerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerID: %w", err)
	}
	return oldValue.BuyerID, nil
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (m *EngagementMutation) ClearBuyerID() {
	m.buyer_id = nil
	m.clearedFields[engagement.FieldBuyerID] = struct{}{}
}

// BuyerIDCleared returns if the "buyer_id" field was cleared in this mutation.
func (m *EngagementMutation) BuyerIDCleared() bool {
	_, ok := m.clearedFields[engagement.FieldBuyerID]
	return ok
}

// ResetBuyerID resets all changes to the "buyer_id" field.
func (m *EngagementMutation) ResetBuyerID() {
	m.buyer_id = nil
	delete(m.clearedFields, engagement.FieldBuyerID)
}

// SetCompanyID sets the "company_id" field.
func (m *EngagementMutation) SetCompanyID(s string) {
	m.company_id = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *EngagementMutation) CompanyID() (r string, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *EngagementMutation) ResetCompanyID() {
	m.company_id = nil
}

// SetStatus sets the "status" field.
func (m *EngagementMutation) SetStatus(e engagement.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EngagementMutation) Status() (r engagement.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldStatus(ctx context.Context) (v engagement.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EngagementMutation) ResetStatus() {
	m.status = nil
}

// SetTier sets the "tier" field.
func (m *EngagementMutation) SetTier(e engagement.Tier) {
	m.tier = &e
}

// Tier returns the value of the "tier" field in the mutation.
func (m *EngagementMutation) Tier() (r engagement.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldTier(ctx context.Context) (v engagement.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *EngagementMutation) ResetTier() {
	m.tier = nil
}

// SetPath sets the "path" field.
func (m *EngagementMutation) SetPath(e engagement.Path) {
	m._path = &e
}

// Path returns the value of the "path" field in the mutation.
func (m *EngagementMutation) Path() (r engagement.Path, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldPath(ctx context.Context) (v *engagement.Path, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ClearPath clears the value of the "path" field.
func (m *EngagementMutation) ClearPath() {
	m._path = nil
	m.clearedFields[engagement.FieldPath] = struct{}{}
}

// PathCleared returns if the "path" field was cleared in this mutation.
func (m *EngagementMutation) PathCleared() bool {
	_, ok := m.clearedFields[engagement.FieldPath]
	return ok
}

// ResetPath resets all changes to the "path" field.
func (m *EngagementMutation) ResetPath() {
	m._path = nil
	delete(m.clearedFields, engagement.FieldPath)
}

// SetDealPingSentAt sets the "deal_ping_sent_at" field.
func (m *EngagementMutation) SetDealPingSentAt(t time.Time) {
	m.deal_ping_sent_at = &t
}

// DealPingSentAt returns the value of the "deal_ping_sent_at" field in the mutation.
func (m *EngagementMutation) DealPingSentAt() (r time.Time, exists bool) {
	v := m.deal_ping_sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDealPingSentAt returns the old "deal_ping_sent_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldDealPingSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDealPingSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDealPingSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDealPingSentAt: %w", err)
	}
	return oldValue.DealPingSentAt, nil
}

// ClearDealPingSentAt clears the value of the "deal_ping_sent_at" field.
func (m *EngagementMutation) ClearDealPingSentAt() {
	m.deal_ping_sent_at = nil
	m.clearedFields[engagement.FieldDealPingSentAt] = struct{}{}
}

// DealPingSentAtCleared returns if the "deal_ping_sent_at" field was cleared in this mutation.
func (m *EngagementMutation) DealPingSentAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldDealPingSentAt]
	return ok
}

// ResetDealPingSentAt resets all changes to the "deal_ping_sent_at" field.
func (m *EngagementMutation) ResetDealPingSentAt() {
	m.deal_ping_sent_at = nil
	delete(m.clearedFields, engagement.FieldDealPingSentAt)
}

// SetDealPingExpiresAt sets the "deal_ping_expires_at" field.
func (m *EngagementMutation) SetDealPingExpiresAt(t time.Time) {
	m.deal_ping_expires_at = &t
}

// DealPingExpiresAt returns the value of the "deal_ping_expires_at" field in the mutation.
func (m *EngagementMutation) DealPingExpiresAt() (r time.Time, exists bool) {
	v := m.deal_ping_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDealPingExpiresAt returns the old "deal_ping_expires_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldDealPingExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDealPingExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDealPingExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDealPingExpiresAt: %w", err)
	}
	return oldValue.DealPingExpiresAt, nil
}

// ClearDealPingExpiresAt clears the value of the "deal_ping_expires_at" field.
func (m *EngagementMutation) ClearDealPingExpiresAt() {
	m.deal_ping_expires_at = nil
	m.clearedFields[engagement.FieldDealPingExpiresAt] = struct{}{}
}

// DealPingExpiresAtCleared returns if the "deal_ping_expires_at" field was cleared in this mutation.
func (m *EngagementMutation) DealPingExpiresAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldDealPingExpiresAt]
	return ok
}

// ResetDealPingExpiresAt resets all changes to the "deal_ping_expires_at" field.
func (m *EngagementMutation) ResetDealPingExpiresAt() {
	m.deal_ping_expires_at = nil
	delete(m.clearedFields, engagement.FieldDealPingExpiresAt)
}

// SetBuyerAcceptedAt sets the "buyer_accepted_at" field.
func (m *EngagementMutation) SetBuyerAcceptedAt(t time.Time) {
	m.buyer_accepted_at = &t
}

// BuyerAcceptedAt returns the value of the "buyer_accepted_at" field in the mutation.
func (m *EngagementMutation) BuyerAcceptedAt() (r time.Time, exists bool) {
	v := m.buyer_accepted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerAcceptedAt returns the old "buyer_accepted_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldBuyerAcceptedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerAcceptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerAcceptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerAcceptedAt: %w", err)
	}
	return oldValue.BuyerAcceptedAt, nil
}

// ClearBuyerAcceptedAt clears the value of the "buyer_accepted_at" field.
func (m *EngagementMutation) ClearBuyerAcceptedAt() {
	m.buyer_accepted_at = nil
	m.clearedFields[engagement.FieldBuyerAcceptedAt] = struct{}{}
}

// BuyerAcceptedAtCleared returns if the "buyer_accepted_at" field was cleared in this mutation.
func (m *EngagementMutation) BuyerAcceptedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldBuyerAcceptedAt]
	return ok
}

// ResetBuyerAcceptedAt resets all changes to the "buyer_accepted_at" field.
func (m *EngagementMutation) ResetBuyerAcceptedAt() {
	m.buyer_accepted_at = nil
	delete(m.clearedFields, engagement.FieldBuyerAcceptedAt)
}

// SetContactCapturedAt sets the "contact_captured_at" field.
func (m *EngagementMutation) SetContactCapturedAt(t time.Time) {
	m.contact_captured_at = &t
}

// ContactCapturedAt returns the value of the "contact_captured_at" field in the mutation.
func (m *EngagementMutation) ContactCapturedAt() (r time.Time, exists bool) {
	v := m.contact_captured_at
	if v == nil {
		return
	}
	return *v, true
}

// OldContactCapturedAt returns the old "contact_captured_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldContactCapturedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactCapturedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactCapturedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactCapturedAt: %w", err)
	}
	return oldValue.ContactCapturedAt, nil
}

// ClearContactCapturedAt clears the value of the "contact_captured_at" field.
func (m *EngagementMutation) ClearContactCapturedAt() {
	m.contact_captured_at = nil
	m.clearedFields[engagement.FieldContactCapturedAt] = struct{}{}
}

// ContactCapturedAtCleared returns if the "contact_captured_at" field was cleared in this mutation.
func (m *EngagementMutation) ContactCapturedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldContactCapturedAt]
	return ok
}

// ResetContactCapturedAt resets all changes to the "contact_captured_at" field.
func (m *EngagementMutation) ResetContactCapturedAt() {
	m.contact_captured_at = nil
	delete(m.clearedFields, engagement.FieldContactCapturedAt)
}

// SetAccountCreatedAt sets the "account_created_at" field.
func (m *EngagementMutation) SetAccountCreatedAt(t time.Time) {
	m.account_created_at = &t
}

// AccountCreatedAt returns the value of the "account_created_at" field in the mutation.
func (m *EngagementMutation) AccountCreatedAt() (r time.Time, exists bool) {
	v := m.account_created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountCreatedAt returns the old "account_created_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldAccountCreatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountCreatedAt: %w", err)
	}
	return oldValue.AccountCreatedAt, nil
}

// ClearAccountCreatedAt clears the value of the "account_created_at" field.
func (m *EngagementMutation) ClearAccountCreatedAt() {
	m.account_created_at = nil
	m.clearedFields[engagement.FieldAccountCreatedAt] = struct{}{}
}

// AccountCreatedAtCleared returns if the "account_created_at" field was cleared in this mutation.
func (m *EngagementMutation) AccountCreatedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldAccountCreatedAt]
	return ok
}

// ResetAccountCreatedAt resets all changes to the "account_created_at" field.
func (m *EngagementMutation) ResetAccountCreatedAt() {
	m.account_created_at = nil
	delete(m.clearedFields, engagement.FieldAccountCreatedAt)
}

// SetGuaranteeSignedAt sets the "guarantee_signed_at" field.
func (m *EngagementMutation) SetGuaranteeSignedAt(t time.Time) {
	m.guarantee_signed_at = &t
}

// GuaranteeSignedAt returns the value of the "guarantee_signed_at" field in the mutation.
func (m *EngagementMutation) GuaranteeSignedAt() (r time.Time, exists bool) {
	v := m.guarantee_signed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGuaranteeSignedAt returns the old "guarantee_signed_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldGuaranteeSignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuaranteeSignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuaranteeSignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuaranteeSignedAt: %w", err)
	}
	return oldValue.GuaranteeSignedAt, nil
}

// ClearGuaranteeSignedAt clears the value of the "guarantee_signed_at" field.
func (m *EngagementMutation) ClearGuaranteeSignedAt() {
	m.guarantee_signed_at = nil
	m.clearedFields[engagement.FieldGuaranteeSignedAt] = struct{}{}
}

// GuaranteeSignedAtCleared returns if the "guarantee_signed_at" field was cleared in this mutation.
func (m *EngagementMutation) GuaranteeSignedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldGuaranteeSignedAt]
	return ok
}

// ResetGuaranteeSignedAt resets all changes to the "guarantee_signed_at" field.
func (m *EngagementMutation) ResetGuaranteeSignedAt() {
	m.guarantee_signed_at = nil
	delete(m.clearedFields, engagement.FieldGuaranteeSignedAt)
}

// SetAddressRevealedAt sets the "address_revealed_at" field.
func (m *EngagementMutation) SetAddressRevealedAt(t time.Time) {
	m.address_revealed_at = &t
}

// AddressRevealedAt returns the value of the "address_revealed_at" field in the mutation.
func (m *EngagementMutation) AddressRevealedAt() (r time.Time, exists bool) {
	v := m.address_revealed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAddressRevealedAt returns the old "address_revealed_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldAddressRevealedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddressRevealedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddressRevealedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddressRevealedAt: %w", err)
	}
	return oldValue.AddressRevealedAt, nil
}

// ClearAddressRevealedAt clears the value of the "address_revealed_at" field.
func (m *EngagementMutation) ClearAddressRevealedAt() {
	m.address_revealed_at = nil
	m.clearedFields[engagement.FieldAddressRevealedAt] = struct{}{}
}

// AddressRevealedAtCleared returns if the "address_revealed_at" field was cleared in this mutation.
func (m *EngagementMutation) AddressRevealedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldAddressRevealedAt]
	return ok
}

// ResetAddressRevealedAt resets all changes to the "address_revealed_at" field.
func (m *EngagementMutation) ResetAddressRevealedAt() {
	m.address_revealed_at = nil
	delete(m.clearedFields, engagement.FieldAddressRevealedAt)
}

// SetTourRequestedAt sets the "tour_requested_at" field.
func (m *EngagementMutation) SetTourRequestedAt(t time.Time) {
	m.tour_requested_at = &t
}

// TourRequestedAt returns the value of the "tour_requested_at" field in the mutation.
func (m *EngagementMutation) TourRequestedAt() (r time.Time, exists bool) {
	v := m.tour_requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTourRequestedAt returns the old "tour_requested_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldTourRequestedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTourRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTourRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTourRequestedAt: %w", err)
	}
	return oldValue.TourRequestedAt, nil
}

// ClearTourRequestedAt clears the value of the "tour_requested_at" field.
func (m *EngagementMutation) ClearTourRequestedAt() {
	m.tour_requested_at = nil
	m.clearedFields[engagement.FieldTourRequestedAt] = struct{}{}
}

// TourRequestedAtCleared returns if the "tour_requested_at" field was cleared in this mutation.
func (m *EngagementMutation) TourRequestedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldTourRequestedAt]
	return ok
}

// ResetTourRequestedAt resets all changes to the "tour_requested_at" field.
func (m *EngagementMutation) ResetTourRequestedAt() {
	m.tour_requested_at = nil
	delete(m.clearedFields, engagement.FieldTourRequestedAt)
}

// SetTourConfirmedAt sets the "tour_confirmed_at" field.
func (m *EngagementMutation) SetTourConfirmedAt(t time.Time) {
	m.tour_confirmed_at = &t
}

// TourConfirmedAt returns the value of the "tour_confirmed_at" field in the mutation.
func (m *EngagementMutation) TourConfirmedAt() (r time.Time, exists bool) {
	v := m.tour_confirmed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTourConfirmedAt returns the old "tour_confirmed_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldTourConfirmedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTourConfirmedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTourConfirmedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTourConfirmedAt: %w", err)
	}
	return oldValue.TourConfirmedAt, nil
}

// ClearTourConfirmedAt clears the value of the "tour_confirmed_at" field.
func (m *EngagementMutation) ClearTourConfirmedAt() {
	m.tour_confirmed_at = nil
	m.clearedFields[engagement.FieldTourConfirmedAt] = struct{}{}
}

// TourConfirmedAtCleared returns if the "tour_confirmed_at" field was cleared in this mutation.
func (m *EngagementMutation) TourConfirmedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldTourConfirmedAt]
	return ok
}

// ResetTourConfirmedAt resets all changes to the "tour_confirmed_at" field.
func (m *EngagementMutation) ResetTourConfirmedAt() {
	m.tour_confirmed_at = nil
	delete(m.clearedFields, engagement.FieldTourConfirmedAt)
}

// SetTourScheduledFor sets the "tour_scheduled_for" field.
func (m *EngagementMutation) SetTourScheduledFor(t time.Time) {
	m.tour_scheduled_for = &t
}

// TourScheduledFor returns the value of the "tour_scheduled_for" field in the mutation.
func (m *EngagementMutation) TourScheduledFor() (r time.Time, exists bool) {
	v := m.tour_scheduled_for
	if v == nil {
		return
	}
	return *v, true
}

// OldTourScheduledFor returns the old "tour_scheduled_for" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldTourScheduledFor(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTourScheduledFor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTourScheduledFor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTourScheduledFor: %w", err)
	}
	return oldValue.TourScheduledFor, nil
}

// ClearTourScheduledFor clears the value of the "tour_scheduled_for" field.
func (m *EngagementMutation) ClearTourScheduledFor() {
	m.tour_scheduled_for = nil
	m.clearedFields[engagement.FieldTourScheduledFor] = struct{}{}
}

// TourScheduledForCleared returns if the "tour_scheduled_for" field was cleared in this mutation.
func (m *EngagementMutation) TourScheduledForCleared() bool {
	_, ok := m.clearedFields[engagement.FieldTourScheduledFor]
	return ok
}

// ResetTourScheduledFor resets all changes to the "tour_scheduled_for" field.
func (m *EngagementMutation) ResetTourScheduledFor() {
	m.tour_scheduled_for = nil
	delete(m.clearedFields, engagement.FieldTourScheduledFor)
}

// SetTourCompletedAt sets the "tour_completed_at" field.
func (m *EngagementMutation) SetTourCompletedAt(t time.Time) {
	m.tour_completed_at = &t
}

// TourCompletedAt returns the value of the "tour_completed_at" field in the mutation.
func (m *EngagementMutation) TourCompletedAt() (r time.Time, exists bool) {
	v := m.tour_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTourCompletedAt returns the old "tour_completed_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldTourCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTourCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTourCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTourCompletedAt: %w", err)
	}
	return oldValue.TourCompletedAt, nil
}

// ClearTourCompletedAt clears the value of the "tour_completed_at" field.
func (m *EngagementMutation) ClearTourCompletedAt() {
	m.tour_completed_at = nil
	m.clearedFields[engagement.FieldTourCompletedAt] = struct{}{}
}

// TourCompletedAtCleared returns if the "tour_completed_at" field was cleared in this mutation.
func (m *EngagementMutation) TourCompletedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldTourCompletedAt]
	return ok
}

// ResetTourCompletedAt resets all changes to the "tour_completed_at" field.
func (m *EngagementMutation) ResetTourCompletedAt() {
	m.tour_completed_at = nil
	delete(m.clearedFields, engagement.FieldTourCompletedAt)
}

// SetTourRescheduleCount sets the "tour_reschedule_count" field.
func (m *EngagementMutation) SetTourRescheduleCount(i int) {
	m.tour_reschedule_count = &i
	m.addtour_reschedule_count = nil
}

// TourRescheduleCount returns the value of the "tour_reschedule_count" field in the mutation.
func (m *EngagementMutation) TourRescheduleCount() (r int, exists bool) {
	v := m.tour_reschedule_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTourRescheduleCount returns the old "tour_reschedule_count" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldTourRescheduleCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTourRescheduleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTourRescheduleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTourRescheduleCount: %w", err)
	}
	return oldValue.TourRescheduleCount, nil
}

// AddTourRescheduleCount adds i to the "tour_reschedule_count" field.
func (m *EngagementMutation) AddTourRescheduleCount(i int) {
	if m.addtour_reschedule_count != nil {
		*m.addtour_reschedule_count += i
	} else {
		m.addtour_reschedule_count = &i
	}
}

// AddedTourRescheduleCount returns the value that was added to the "tour_reschedule_count" field in this mutation.
func (m *EngagementMutation) AddedTourRescheduleCount() (r int, exists bool) {
	v := m.addtour_reschedule_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTourRescheduleCount resets all changes to the "tour_reschedule_count" field.
func (m *EngagementMutation) ResetTourRescheduleCount() {
	m.tour_reschedule_count = nil
	m.addtour_reschedule_count = nil
}

// SetInstantBookRequestedAt sets the "instant_book_requested_at" field.
func (m *EngagementMutation) SetInstantBookRequestedAt(t time.Time) {
	m.instant_book_requested_at = &t
}

// InstantBookRequestedAt returns the value of the "instant_book_requested_at" field in the mutation.
func (m *EngagementMutation) InstantBookRequestedAt() (r time.Time, exists bool) {
	v := m.instant_book_requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldInstantBookRequestedAt returns the old "instant_book_requested_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldInstantBookRequestedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstantBookRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstantBookRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstantBookRequestedAt: %w", err)
	}
	return oldValue.InstantBookRequestedAt, nil
}

// ClearInstantBookRequestedAt clears the value of the "instant_book_requested_at" field.
func (m *EngagementMutation) ClearInstantBookRequestedAt() {
	m.instant_book_requested_at = nil
	m.clearedFields[engagement.FieldInstantBookRequestedAt] = struct{}{}
}

// InstantBookRequestedAtCleared returns if the "instant_book_requested_at" field was cleared in this mutation.
func (m *EngagementMutation) InstantBookRequestedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldInstantBookRequestedAt]
	return ok
}

// ResetInstantBookRequestedAt resets all changes to the "instant_book_requested_at" field.
func (m *EngagementMutation) ResetInstantBookRequestedAt() {
	m.instant_book_requested_at = nil
	delete(m.clearedFields, engagement.FieldInstantBookRequestedAt)
}

// SetInstantBookConfirmedAt sets the "instant_book_confirmed_at" field.
func (m *EngagementMutation) SetInstantBookConfirmedAt(t time.Time) {
	m.instant_book_confirmed_at = &t
}

// InstantBookConfirmedAt returns the value of the "instant_book_confirmed_at" field in the mutation.
func (m *EngagementMutation) InstantBookConfirmedAt() (r time.Time, exists bool) {
	v := m.instant_book_confirmed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldInstantBookConfirmedAt returns the old "instant_book_confirmed_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldInstantBookConfirmedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstantBookConfirmedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstantBookConfirmedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstantBookConfirmedAt: %w", err)
	}
	return oldValue.InstantBookConfirmedAt, nil
}

// ClearInstantBookConfirmedAt clears the value of the "instant_book_confirmed_at" field.
func (m *EngagementMutation) ClearInstantBookConfirmedAt() {
	m.instant_book_confirmed_at = nil
	m.clearedFields[engagement.FieldInstantBookConfirmedAt] = struct{}{}
}

// InstantBookConfirmedAtCleared returns if the "instant_book_confirmed_at" field was cleared in this mutation.
func (m *EngagementMutation) InstantBookConfirmedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldInstantBookConfirmedAt]
	return ok
}

// ResetInstantBookConfirmedAt resets all changes to the "instant_book_confirmed_at" field.
func (m *EngagementMutation) ResetInstantBookConfirmedAt() {
	m.instant_book_confirmed_at = nil
	delete(m.clearedFields, engagement.FieldInstantBookConfirmedAt)
}

// SetBuyerConfirmedAt sets the "buyer_confirmed_at" field.
func (m *EngagementMutation) SetBuyerConfirmedAt(t time.Time) {
	m.buyer_confirmed_at = &t
}

// BuyerConfirmedAt returns the value of the "buyer_confirmed_at" field in the mutation.
func (m *EngagementMutation) BuyerConfirmedAt() (r time.Time, exists bool) {
	v := m.buyer_confirmed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerConfirmedAt returns the old "buyer_confirmed_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldBuyerConfirmedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerConfirmedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerConfirmedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerConfirmedAt: %w", err)
	}
	return oldValue.BuyerConfirmedAt, nil
}

// ClearBuyerConfirmedAt clears the value of the "buyer_confirmed_at" field.
func (m *EngagementMutation) ClearBuyerConfirmedAt() {
	m.buyer_confirmed_at = nil
	m.clearedFields[engagement.FieldBuyerConfirmedAt] = struct{}{}
}

// BuyerConfirmedAtCleared returns if the "buyer_confirmed_at" field was cleared in this mutation.
func (m *EngagementMutation) BuyerConfirmedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldBuyerConfirmedAt]
	return ok
}

// ResetBuyerConfirmedAt resets all changes to the "buyer_confirmed_at" field.
func (m *EngagementMutation) ResetBuyerConfirmedAt() {
	m.buyer_confirmed_at = nil
	delete(m.clearedFields, engagement.FieldBuyerConfirmedAt)
}

// SetAgreementSentAt sets the "agreement_sent_at" field.
func (m *EngagementMutation) SetAgreementSentAt(t time.Time) {
	m.agreement_sent_at = &t
}

// AgreementSentAt returns the value of the "agreement_sent_at" field in the mutation.
func (m *EngagementMutation) AgreementSentAt() (r time.Time, exists bool) {
	v := m.agreement_sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAgreementSentAt returns the old "agreement_sent_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldAgreementSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgreementSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgreementSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgreementSentAt: %w", err)
	}
	return oldValue.AgreementSentAt, nil
}

// ClearAgreementSentAt clears the value of the "agreement_sent_at" field.
func (m *EngagementMutation) ClearAgreementSentAt() {
	m.agreement_sent_at = nil
	m.clearedFields[engagement.FieldAgreementSentAt] = struct{}{}
}

// AgreementSentAtCleared returns if the "agreement_sent_at" field was cleared in this mutation.
func (m *EngagementMutation) AgreementSentAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldAgreementSentAt]
	return ok
}

// ResetAgreementSentAt resets all changes to the "agreement_sent_at" field.
func (m *EngagementMutation) ResetAgreementSentAt() {
	m.agreement_sent_at = nil
	delete(m.clearedFields, engagement.FieldAgreementSentAt)
}

// SetAgreementSignedAt sets the "agreement_signed_at" field.
func (m *EngagementMutation) SetAgreementSignedAt(t time.Time) {
	m.agreement_signed_at = &t
}

// AgreementSignedAt returns the value of the "agreement_signed_at" field in the mutation.
func (m *EngagementMutation) AgreementSignedAt() (r time.Time, exists bool) {
	v := m.agreement_signed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAgreementSignedAt returns the old "agreement_signed_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldAgreementSignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgreementSignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgreementSignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgreementSignedAt: %w", err)
	}
	return oldValue.AgreementSignedAt, nil
}

// ClearAgreementSignedAt clears the value of the "agreement_signed_at" field.
func (m *EngagementMutation) ClearAgreementSignedAt() {
	m.agreement_signed_at = nil
	m.clearedFields[engagement.FieldAgreementSignedAt] = struct{}{}
}

// AgreementSignedAtCleared returns if the "agreement_signed_at" field was cleared in this mutation.
func (m *EngagementMutation) AgreementSignedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldAgreementSignedAt]
	return ok
}

// ResetAgreementSignedAt resets all changes to the "agreement_signed_at" field.
func (m *EngagementMutation) ResetAgreementSignedAt() {
	m.agreement_signed_at = nil
	delete(m.clearedFields, engagement.FieldAgreementSignedAt)
}

// SetLeaseStartDate sets the "lease_start_date" field.
func (m *EngagementMutation) SetLeaseStartDate(t time.Time) {
	m.lease_start_date = &t
}

// LeaseStartDate returns the value of the "lease_start_date" field in the mutation.
func (m *EngagementMutation) LeaseStartDate() (r time.Time, exists bool) {
	v := m.lease_start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseStartDate returns the old "lease_start_date" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldLeaseStartDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseStartDate: %w", err)
	}
	return oldValue.LeaseStartDate, nil
}

// ClearLeaseStartDate clears the value of the "lease_start_date" field.
func (m *EngagementMutation) ClearLeaseStartDate() {
	m.lease_start_date = nil
	m.clearedFields[engagement.FieldLeaseStartDate] = struct{}{}
}

// LeaseStartDateCleared returns if the "lease_start_date" field was cleared in this mutation.
func (m *EngagementMutation) LeaseStartDateCleared() bool {
	_, ok := m.clearedFields[engagement.FieldLeaseStartDate]
	return ok
}

// ResetLeaseStartDate resets all changes to the "lease_start_date" field.
func (m *EngagementMutation) ResetLeaseStartDate() {
	m.lease_start_date = nil
	delete(m.clearedFields, engagement.FieldLeaseStartDate)
}

// SetLeaseEndDate sets the "lease_end_date" field.
func (m *EngagementMutation) SetLeaseEndDate(t time.Time) {
	m.lease_end_date = &t
}

// LeaseEndDate returns the value of the "lease_end_date" field in the mutation.
func (m *EngagementMutation) LeaseEndDate() (r time.Time, exists bool) {
	v := m.lease_end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseEndDate returns the old "lease_end_date" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldLeaseEndDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseEndDate: %w", err)
	}
	return oldValue.LeaseEndDate, nil
}

// ClearLeaseEndDate clears the value of the "lease_end_date" field.
func (m *EngagementMutation) ClearLeaseEndDate() {
	m.lease_end_date = nil
	m.clearedFields[engagement.FieldLeaseEndDate] = struct{}{}
}

// LeaseEndDateCleared returns if the "lease_end_date" field was cleared in this mutation.
func (m *EngagementMutation) LeaseEndDateCleared() bool {
	_, ok := m.clearedFields[engagement.FieldLeaseEndDate]
	return ok
}

// ResetLeaseEndDate resets all changes to the "lease_end_date" field.
func (m *EngagementMutation) ResetLeaseEndDate() {
	m.lease_end_date = nil
	delete(m.clearedFields, engagement.FieldLeaseEndDate)
}

// SetActivatedAt sets the "activated_at" field.
func (m *EngagementMutation) SetActivatedAt(t time.Time) {
	m.activated_at = &t
}

// ActivatedAt returns the value of the "activated_at" field in the mutation.
func (m *EngagementMutation) ActivatedAt() (r time.Time, exists bool) {
	v := m.activated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldActivatedAt returns the old "activated_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldActivatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivatedAt: %w", err)
	}
	return oldValue.ActivatedAt, nil
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (m *EngagementMutation) ClearActivatedAt() {
	m.activated_at = nil
	m.clearedFields[engagement.FieldActivatedAt] = struct{}{}
}

// ActivatedAtCleared returns if the "activated_at" field was cleared in this mutation.
func (m *EngagementMutation) ActivatedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldActivatedAt]
	return ok
}

// ResetActivatedAt resets all changes to the "activated_at" field.
func (m *EngagementMutation) ResetActivatedAt() {
	m.activated_at = nil
	delete(m.clearedFields, engagement.FieldActivatedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *EngagementMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *EngagementMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *EngagementMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[engagement.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *EngagementMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *EngagementMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, engagement.FieldCompletedAt)
}

// SetInsuranceUploaded sets the "insurance_uploaded" field.
func (m *EngagementMutation) SetInsuranceUploaded(b bool) {
	m.insurance_uploaded = &b
}

// InsuranceUploaded returns the value of the "insurance_uploaded" field in the mutation.
func (m *EngagementMutation) InsuranceUploaded() (r bool, exists bool) {
	v := m.insurance_uploaded
	if v == nil {
		return
	}
	return *v, true
}

// OldInsuranceUploaded returns the old "insurance_uploaded" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldInsuranceUploaded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsuranceUploaded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsuranceUploaded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsuranceUploaded: %w", err)
	}
	return oldValue.InsuranceUploaded, nil
}

// ResetInsuranceUploaded resets all changes to the "insurance_uploaded" field.
func (m *EngagementMutation) ResetInsuranceUploaded() {
	m.insurance_uploaded = nil
}

// SetCompanyDocsUploaded sets the "company_docs_uploaded" field.
func (m *EngagementMutation) SetCompanyDocsUploaded(b bool) {
	m.company_docs_uploaded = &b
}

// CompanyDocsUploaded returns the value of the "company_docs_uploaded" field in the mutation.
func (m *EngagementMutation) CompanyDocsUploaded() (r bool, exists bool) {
	v := m.company_docs_uploaded
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyDocsUploaded returns the old "company_docs_uploaded" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldCompanyDocsUploaded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyDocsUploaded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyDocsUploaded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyDocsUploaded: %w", err)
	}
	return oldValue.CompanyDocsUploaded, nil
}

// ResetCompanyDocsUploaded resets all changes to the "company_docs_uploaded" field.
func (m *EngagementMutation) ResetCompanyDocsUploaded() {
	m.company_docs_uploaded = nil
}

// SetPaymentMethodAdded sets the "payment_method_added" field.
func (m *EngagementMutation) SetPaymentMethodAdded(b bool) {
	m.payment_method_added = &b
}

// PaymentMethodAdded returns the value of the "payment_method_added" field in the mutation.
func (m *EngagementMutation) PaymentMethodAdded() (r bool, exists bool) {
	v := m.payment_method_added
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethodAdded returns the old "payment_method_added" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldPaymentMethodAdded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethodAdded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethodAdded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethodAdded: %w", err)
	}
	return oldValue.PaymentMethodAdded, nil
}

// ResetPaymentMethodAdded resets all changes to the "payment_method_added" field.
func (m *EngagementMutation) ResetPaymentMethodAdded() {
	m.payment_method_added = nil
}

// SetSqft sets the "sqft" field.
func (m *EngagementMutation) SetSqft(i int) {
	m.sqft = &i
	m.addsqft = nil
}

// Sqft returns the value of the "sqft" field in the mutation.
func (m *EngagementMutation) Sqft() (r int, exists bool) {
	v := m.sqft
	if v == nil {
		return
	}
	return *v, true
}

// OldSqft returns the old "sqft" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldSqft(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSqft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSqft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSqft: %w", err)
	}
	return oldValue.Sqft, nil
}

// AddSqft adds i to the "sqft" field.
func (m *EngagementMutation) AddSqft(i int) {
	if m.addsqft != nil {
		*m.addsqft += i
	} else {
		m.addsqft = &i
	}
}

// AddedSqft returns the value that was added to the "sqft" field in this mutation.
func (m *EngagementMutation) AddedSqft() (r int, exists bool) {
	v := m.addsqft
	if v == nil {
		return
	}
	return *v, true
}

// ClearSqft clears the value of the "sqft" field.
func (m *EngagementMutation) ClearSqft() {
	m.sqft = nil
	m.addsqft = nil
	m.clearedFields[engagement.FieldSqft] = struct{}{}
}

// SqftCleared returns if the "sqft" field was cleared in this mutation.
func (m *EngagementMutation) SqftCleared() bool {
	_, ok := m.clearedFields[engagement.FieldSqft]
	return ok
}

// ResetSqft resets all changes to the "sqft" field.
func (m *EngagementMutation) ResetSqft() {
	m.sqft = nil
	m.addsqft = nil
	delete(m.clearedFields, engagement.FieldSqft)
}

// SetSupplierRate sets the "supplier_rate" field.
func (m *EngagementMutation) SetSupplierRate(f float64) {
	m.supplier_rate = &f
	m.addsupplier_rate = nil
}

// SupplierRate returns the value of the "supplier_rate" field in the mutation.
func (m *EngagementMutation) SupplierRate() (r float64, exists bool) {
	v := m.supplier_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierRate returns the old "supplier_rate" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldSupplierRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierRate: %w", err)
	}
	return oldValue.SupplierRate, nil
}

// AddSupplierRate adds f to the "supplier_rate" field.
func (m *EngagementMutation) AddSupplierRate(f float64) {
	if m.addsupplier_rate != nil {
		*m.addsupplier_rate += f
	} else {
		m.addsupplier_rate = &f
	}
}

// AddedSupplierRate returns the value that was added to the "supplier_rate" field in this mutation.
func (m *EngagementMutation) AddedSupplierRate() (r float64, exists bool) {
	v := m.addsupplier_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearSupplierRate clears the value of the "supplier_rate" field.
func (m *EngagementMutation) ClearSupplierRate() {
	m.supplier_rate = nil
	m.addsupplier_rate = nil
	m.clearedFields[engagement.FieldSupplierRate] = struct{}{}
}

// SupplierRateCleared returns if the "supplier_rate" field was cleared in this mutation.
func (m *EngagementMutation) SupplierRateCleared() bool {
	_, ok := m.clearedFields[engagement.FieldSupplierRate]
	return ok
}

// ResetSupplierRate resets all changes to the "supplier_rate" field.
func (m *EngagementMutation) ResetSupplierRate() {
	m.supplier_rate = nil
	m.addsupplier_rate = nil
	delete(m.clearedFields, engagement.FieldSupplierRate)
}

// SetBuyerRate sets the "buyer_rate" field.
func (m *EngagementMutation) SetBuyerRate(f float64) {
	m.buyer_rate = &f
	m.addbuyer_rate = nil
}

// BuyerRate returns the value of the "buyer_rate" field in the mutation.
func (m *EngagementMutation) BuyerRate() (r float64, exists bool) {
	v := m.buyer_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerRate returns the old "buyer_rate" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldBuyerRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerRate: %w", err)
	}
	return oldValue.BuyerRate, nil
}

// AddBuyerRate adds f to the "buyer_rate" field.
func (m *EngagementMutation) AddBuyerRate(f float64) {
	if m.addbuyer_rate != nil {
		*m.addbuyer_rate += f
	} else {
		m.addbuyer_rate = &f
	}
}

// AddedBuyerRate returns the value that was added to the "buyer_rate" field in this mutation.
func (m *EngagementMutation) AddedBuyerRate() (r float64, exists bool) {
	v := m.addbuyer_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearBuyerRate clears the value of the "buyer_rate" field.
func (m *EngagementMutation) ClearBuyerRate() {
	m.buyer_rate = nil
	m.addbuyer_rate = nil
	m.clearedFields[engagement.FieldBuyerRate] = struct{}{}
}

// BuyerRateCleared returns if the "buyer_rate" field was cleared in this mutation.
func (m *EngagementMutation) BuyerRateCleared() bool {
	_, ok := m.clearedFields[engagement.FieldBuyerRate]
	return ok
}

// ResetBuyerRate resets all changes to the "buyer_rate" field.
func (m *EngagementMutation) ResetBuyerRate() {
	m.buyer_rate = nil
	m.addbuyer_rate = nil
	delete(m.clearedFields, engagement.FieldBuyerRate)
}

// SetMonthlySupplierPayout sets the "monthly_supplier_payout" field.
func (m *EngagementMutation) SetMonthlySupplierPayout(f float64) {
	m.monthly_supplier_payout = &f
	m.addmonthly_supplier_payout = nil
}

// MonthlySupplierPayout returns the value of the "monthly_supplier_payout" field in the mutation.
func (m *EngagementMutation) MonthlySupplierPayout() (r float64, exists bool) {
	v := m.monthly_supplier_payout
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlySupplierPayout returns the old "monthly_supplier_payout" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldMonthlySupplierPayout(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlySupplierPayout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlySupplierPayout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlySupplierPayout: %w", err)
	}
	return oldValue.MonthlySupplierPayout, nil
}

// AddMonthlySupplierPayout adds f to the "monthly_supplier_payout" field.
func (m *EngagementMutation) AddMonthlySupplierPayout(f float64) {
	if m.addmonthly_supplier_payout != nil {
		*m.addmonthly_supplier_payout += f
	} else {
		m.addmonthly_supplier_payout = &f
	}
}

// AddedMonthlySupplierPayout returns the value that was added to the "monthly_supplier_payout" field in this mutation.
func (m *EngagementMutation) AddedMonthlySupplierPayout() (r float64, exists bool) {
	v := m.addmonthly_supplier_payout
	if v == nil {
		return
	}
	return *v, true
}

// ClearMonthlySupplierPayout clears the value of the "monthly_supplier_payout" field.
func (m *EngagementMutation) ClearMonthlySupplierPayout() {
	m.monthly_supplier_payout = nil
	m.addmonthly_supplier_payout = nil
	m.clearedFields[engagement.FieldMonthlySupplierPayout] = struct{}{}
}

// MonthlySupplierPayoutCleared returns if the "monthly_supplier_payout" field was cleared in this mutation.
func (m *EngagementMutation) MonthlySupplierPayoutCleared() bool {
	_, ok := m.clearedFields[engagement.FieldMonthlySupplierPayout]
	return ok
}

// ResetMonthlySupplierPayout resets all changes to the "monthly_supplier_payout" field.
func (m *EngagementMutation) ResetMonthlySupplierPayout() {
	m.monthly_supplier_payout = nil
	m.addmonthly_supplier_payout = nil
	delete(m.clearedFields, engagement.FieldMonthlySupplierPayout)
}

// SetMonthlyBuyerTotal sets the "monthly_buyer_total" field.
func (m *EngagementMutation) SetMonthlyBuyerTotal(f float64) {
	m.monthly_buyer_total = &f
	m.addmonthly_buyer_total = nil
}

// MonthlyBuyerTotal returns the value of the "monthly_buyer_total" field in the mutation.
func (m *EngagementMutation) MonthlyBuyerTotal() (r float64, exists bool) {
	v := m.monthly_buyer_total
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyBuyerTotal returns the old "monthly_buyer_total" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldMonthlyBuyerTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyBuyerTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyBuyerTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyBuyerTotal: %w", err)
	}
	return oldValue.MonthlyBuyerTotal, nil
}

// AddMonthlyBuyerTotal adds f to the "monthly_buyer_total" field.
func (m *EngagementMutation) AddMonthlyBuyerTotal(f float64) {
	if m.addmonthly_buyer_total != nil {
		*m.addmonthly_buyer_total += f
	} else {
		m.addmonthly_buyer_total = &f
	}
}

// AddedMonthlyBuyerTotal returns the value that was added to the "monthly_buyer_total" field in this mutation.
func (m *EngagementMutation) AddedMonthlyBuyerTotal() (r float64, exists bool) {
	v := m.addmonthly_buyer_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearMonthlyBuyerTotal clears the value of the "monthly_buyer_total" field.
func (m *EngagementMutation) ClearMonthlyBuyerTotal() {
	m.monthly_buyer_total = nil
	m.addmonthly_buyer_total = nil
	m.clearedFields[engagement.FieldMonthlyBuyerTotal] = struct{}{}
}

// MonthlyBuyerTotalCleared returns if the "monthly_buyer_total" field was cleared in this mutation.
func (m *EngagementMutation) MonthlyBuyerTotalCleared() bool {
	_, ok := m.clearedFields[engagement.FieldMonthlyBuyerTotal]
	return ok
}

// ResetMonthlyBuyerTotal resets all changes to the "monthly_buyer_total" field.
func (m *EngagementMutation) ResetMonthlyBuyerTotal() {
	m.monthly_buyer_total = nil
	m.addmonthly_buyer_total = nil
	delete(m.clearedFields, engagement.FieldMonthlyBuyerTotal)
}

// SetDeclinedBy sets the "declined_by" field.
func (m *EngagementMutation) SetDeclinedBy(eb engagement.DeclinedBy) {
	m.declined_by = &eb
}

// DeclinedBy returns the value of the "declined_by" field in the mutation.
func (m *EngagementMutation) DeclinedBy() (r engagement.DeclinedBy, exists bool) {
	v := m.declined_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDeclinedBy returns the old "declined_by" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldDeclinedBy(ctx context.Context) (v *engagement.DeclinedBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeclinedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeclinedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeclinedBy: %w", err)
	}
	return oldValue.DeclinedBy, nil
}

// ClearDeclinedBy clears the value of the "declined_by" field.
func (m *EngagementMutation) ClearDeclinedBy() {
	m.declined_by = nil
	m.clearedFields[engagement.FieldDeclinedBy] = struct{}{}
}

// DeclinedByCleared returns if the "declined_by" field was cleared in this mutation.
func (m *EngagementMutation) DeclinedByCleared() bool {
	_, ok := m.clearedFields[engagement.FieldDeclinedBy]
	return ok
}

// ResetDeclinedBy resets all changes to the "declined_by" field.
func (m *EngagementMutation) ResetDeclinedBy() {
	m.declined_by = nil
	delete(m.clearedFields, engagement.FieldDeclinedBy)
}

// SetDeclineReason sets the "decline_reason" field.
func (m *EngagementMutation) SetDeclineReason(s string) {
	m.decline_reason = &s
}

// DeclineReason returns the value of the "decline_reason" field in the mutation.
func (m *EngagementMutation) DeclineReason() (r string, exists bool) {
	v := m.decline_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldDeclineReason returns the old "decline_reason" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldDeclineReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeclineReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeclineReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeclineReason: %w", err)
	}
	return oldValue.DeclineReason, nil
}

// ClearDeclineReason clears the value of the "decline_reason" field.
func (m *EngagementMutation) ClearDeclineReason() {
	m.decline_reason = nil
	m.clearedFields[engagement.FieldDeclineReason] = struct{}{}
}

// DeclineReasonCleared returns if the "decline_reason" field was cleared in this mutation.
func (m *EngagementMutation) DeclineReasonCleared() bool {
	_, ok := m.clearedFields[engagement.FieldDeclineReason]
	return ok
}

// ResetDeclineReason resets all changes to the "decline_reason" field.
func (m *EngagementMutation) ResetDeclineReason() {
	m.decline_reason = nil
	delete(m.clearedFields, engagement.FieldDeclineReason)
}

// SetCancelReason sets the "cancel_reason" field.
func (m *EngagementMutation) SetCancelReason(s string) {
	m.cancel_reason = &s
}

// CancelReason returns the value of the "cancel_reason" field in the mutation.
func (m *EngagementMutation) CancelReason() (r string, exists bool) {
	v := m.cancel_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelReason returns the old "cancel_reason" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldCancelReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelReason: %w", err)
	}
	return oldValue.CancelReason, nil
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (m *EngagementMutation) ClearCancelReason() {
	m.cancel_reason = nil
	m.clearedFields[engagement.FieldCancelReason] = struct{}{}
}

// CancelReasonCleared returns if the "cancel_reason" field was cleared in this mutation.
func (m *EngagementMutation) CancelReasonCleared() bool {
	_, ok := m.clearedFields[engagement.FieldCancelReason]
	return ok
}

// ResetCancelReason resets all changes to the "cancel_reason" field.
func (m *EngagementMutation) ResetCancelReason() {
	m.cancel_reason = nil
	delete(m.clearedFields, engagement.FieldCancelReason)
}

// SetDecisionTimerPausedAt sets the "decision_timer_paused_at" field.
func (m *EngagementMutation) SetDecisionTimerPausedAt(t time.Time) {
	m.decision_timer_paused_at = &t
}

// DecisionTimerPausedAt returns the value of the "decision_timer_paused_at" field in the mutation.
func (m *EngagementMutation) DecisionTimerPausedAt() (r time.Time, exists bool) {
	v := m.decision_timer_paused_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionTimerPausedAt returns the old "decision_timer_paused_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldDecisionTimerPausedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionTimerPausedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionTimerPausedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionTimerPausedAt: %w", err)
	}
	return oldValue.DecisionTimerPausedAt, nil
}

// ClearDecisionTimerPausedAt clears the value of the "decision_timer_paused_at" field.
func (m *EngagementMutation) ClearDecisionTimerPausedAt() {
	m.decision_timer_paused_at = nil
	m.clearedFields[engagement.FieldDecisionTimerPausedAt] = struct{}{}
}

// DecisionTimerPausedAtCleared returns if the "decision_timer_paused_at" field was cleared in this mutation.
func (m *EngagementMutation) DecisionTimerPausedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldDecisionTimerPausedAt]
	return ok
}

// ResetDecisionTimerPausedAt resets all changes to the "decision_timer_paused_at" field.
func (m *EngagementMutation) ResetDecisionTimerPausedAt() {
	m.decision_timer_paused_at = nil
	delete(m.clearedFields, engagement.FieldDecisionTimerPausedAt)
}

// SetAdminFlagged sets the "admin_flagged" field.
func (m *EngagementMutation) SetAdminFlagged(b bool) {
	m.admin_flagged = &b
}

// AdminFlagged returns the value of the "admin_flagged" field in the mutation.
func (m *EngagementMutation) AdminFlagged() (r bool, exists bool) {
	v := m.admin_flagged
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminFlagged returns the old "admin_flagged" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldAdminFlagged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminFlagged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminFlagged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminFlagged: %w", err)
	}
	return oldValue.AdminFlagged, nil
}

// ResetAdminFlagged resets all changes to the "admin_flagged" field.
func (m *EngagementMutation) ResetAdminFlagged() {
	m.admin_flagged = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EngagementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EngagementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EngagementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EngagementMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EngagementMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EngagementMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearMatch clears the "match" edge to the Match entity.
func (m *EngagementMutation) ClearMatch() {
	m.clearedmatch = true
	m.clearedFields[engagement.FieldMatchID] = struct{}{}
}

// MatchCleared reports if the "match" edge to the Match entity was cleared.
func (m *EngagementMutation) MatchCleared() bool {
	return m.clearedmatch
}

// MatchIDs returns the "match" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MatchID instead. It exists only for internal usage by the builders.
func (m *EngagementMutation) MatchIDs() (ids []string) {
	if id := m.match; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMatch resets all changes to the "match" edge.
func (m *EngagementMutation) ResetMatch() {
	m.match = nil
	m.clearedmatch = false
}

// AddEventIDs adds the "events" edge to the EngagementEvent entity by ids.
func (m *EngagementMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the EngagementEvent entity.
func (m *EngagementMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the EngagementEvent entity was cleared.
func (m *EngagementMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the EngagementEvent entity by IDs.
func (m *EngagementMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the EngagementEvent entity.
func (m *EngagementMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *EngagementMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *EngagementMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddAgreementIDs adds the "agreements" edge to the EngagementAgreement entity by ids.
func (m *EngagementMutation) AddAgreementIDs(ids ...string) {
	if m.agreements == nil {
		m.agreements = make(map[string]struct{})
	}
	for i := range ids {
		m.agreements[ids[i]] = struct{}{}
	}
}

// ClearAgreements clears the "agreements" edge to the EngagementAgreement entity.
func (m *EngagementMutation) ClearAgreements() {
	m.clearedagreements = true
}

// AgreementsCleared reports if the "agreements" edge to the EngagementAgreement entity was cleared.
func (m *EngagementMutation) AgreementsCleared() bool {
	return m.clearedagreements
}

// RemoveAgreementIDs removes the "agreements" edge to the EngagementAgreement entity by IDs.
func (m *EngagementMutation) RemoveAgreementIDs(ids ...string) {
	if m.removedagreements == nil {
		m.removedagreements = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agreements, ids[i])
		m.removedagreements[ids[i]] = struct{}{}
	}
}

// RemovedAgreements returns the removed IDs of the "agreements" edge to the EngagementAgreement entity.
func (m *EngagementMutation) RemovedAgreementsIDs() (ids []string) {
	for id := range m.removedagreements {
		ids = append(ids, id)
	}
	return
}

// AgreementsIDs returns the "agreements" edge IDs in the mutation.
func (m *EngagementMutation) AgreementsIDs() (ids []string) {
	for id := range m.agreements {
		ids = append(ids, id)
	}
	return
}

// ResetAgreements resets all changes to the "agreements" edge.
func (m *EngagementMutation) ResetAgreements() {
	m.agreements = nil
	m.clearedagreements = false
	m.removedagreements = nil
}

// AddPaymentIDs adds the "payments" edge to the PaymentRecord entity by ids.
func (m *EngagementMutation) AddPaymentIDs(ids ...string) {
	if m.payments == nil {
		m.payments = make(map[string]struct{})
	}
	for i := range ids {
		m.payments[ids[i]] = struct{}{}
	}
}

// ClearPayments clears the "payments" edge to the PaymentRecord entity.
func (m *EngagementMutation) ClearPayments() {
	m.clearedpayments = true
}

// PaymentsCleared reports if the "payments" edge to the PaymentRecord entity was cleared.
func (m *EngagementMutation) PaymentsCleared() bool {
	return m.clearedpayments
}

// RemovePaymentIDs removes the "payments" edge to the PaymentRecord entity by IDs.
func (m *EngagementMutation) RemovePaymentIDs(ids ...string) {
	if m.removedpayments == nil {
		m.removedpayments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.payments, ids[i])
		m.removedpayments[ids[i]] = struct{}{}
	}
}

// RemovedPayments returns the removed IDs of the "payments" edge to the PaymentRecord entity.
func (m *EngagementMutation) RemovedPaymentsIDs() (ids []string) {
	for id := range m.removedpayments {
		ids = append(ids, id)
	}
	return
}

// PaymentsIDs returns the "payments" edge IDs in the mutation.
func (m *EngagementMutation) PaymentsIDs() (ids []string) {
	for id := range m.payments {
		ids = append(ids, id)
	}
	return
}

// ResetPayments resets all changes to the "payments" edge.
func (m *EngagementMutation) ResetPayments() {
	m.payments = nil
	m.clearedpayments = false
	m.removedpayments = nil
}

// AddUploadTokenIDs adds the "upload_tokens" edge to the UploadToken entity by ids.
func (m *EngagementMutation) AddUploadTokenIDs(ids ...string) {
	if m.upload_tokens == nil {
		m.upload_tokens = make(map[string]struct{})
	}
	for i := range ids {
		m.upload_tokens[ids[i]] = struct{}{}
	}
}

// ClearUploadTokens clears the "upload_tokens" edge to the UploadToken entity.
func (m *EngagementMutation) ClearUploadTokens() {
	m.clearedupload_tokens = true
}

// UploadTokensCleared reports if the "upload_tokens" edge to the UploadToken entity was cleared.
func (m *EngagementMutation) UploadTokensCleared() bool {
	return m.clearedupload_tokens
}

// RemoveUploadTokenIDs removes the "upload_tokens" edge to the UploadToken entity by IDs.
func (m *EngagementMutation) RemoveUploadTokenIDs(ids ...string) {
	if m.removedupload_tokens == nil {
		m.removedupload_tokens = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.upload_tokens, ids[i])
		m.removedupload_tokens[ids[i]] = struct{}{}
	}
}

// RemovedUploadTokens returns the removed IDs of the "upload_tokens" edge to the UploadToken entity.
func (m *EngagementMutation) RemovedUploadTokensIDs() (ids []string) {
	for id := range m.removedupload_tokens {
		ids = append(ids, id)
	}
	return
}

// UploadTokensIDs returns the "upload_tokens" edge IDs in the mutation.
func (m *EngagementMutation) UploadTokensIDs() (ids []string) {
	for id := range m.upload_tokens {
		ids = append(ids, id)
	}
	return
}

// ResetUploadTokens resets all changes to the "upload_tokens" edge.
func (m *EngagementMutation) ResetUploadTokens() {
	m.upload_tokens = nil
	m.clearedupload_tokens = false
	m.removedupload_tokens = nil
}

// Where appends a list predicates to the EngagementMutation builder.
func (m *EngagementMutation) Where(ps ...predicate.Engagement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EngagementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EngagementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Engagement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EngagementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EngagementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Engagement).
func (m *EngagementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EngagementMutation) Fields() []string {
	fields := make([]string, 0, 44)
	if m.match != nil {
		fields = append(fields, engagement.FieldMatchID)
	}
	if m.buyer_need_id != nil {
		fields = append(fields, engagement.FieldBuyerNeedID)
	}
	if m.warehouse_id != nil {
		fields = append(fields, engagement.FieldWarehouseID)
	}
	if m.buyer_id != nil {
		fields = append(fields, engagement.FieldBuyerID)
	}
	if m.company_id != nil {
		fields = append(fields, engagement.FieldCompanyID)
	}
	if m.status != nil {
		fields = append(fields, engagement.FieldStatus)
	}
	if m.tier != nil {
		fields = append(fields, engagement.FieldTier)
	}
	if m._path != nil {
		fields = append(fields, engagement.FieldPath)
	}
	if m.deal_ping_sent_at != nil {
		fields = append(fields, engagement.FieldDealPingSentAt)
	}
	if m.deal_ping_expires_at != nil {
		fields = append(fields, engagement.FieldDealPingExpiresAt)
	}
	if m.buyer_accepted_at != nil {
		fields = append(fields, engagement.FieldBuyerAcceptedAt)
	}
	if m.contact_captured_at != nil {
		fields = append(fields, engagement.FieldContactCapturedAt)
	}
	if m.account_created_at != nil {
		fields = append(fields, engagement.FieldAccountCreatedAt)
	}
	if m.guarantee_signed_at != nil {
		fields = append(fields, engagement.FieldGuaranteeSignedAt)
	}
	if m.address_revealed_at != nil {
		fields = append(fields, engagement.FieldAddressRevealedAt)
	}
	if m.tour_requested_at != nil {
		fields = append(fields, engagement.FieldTourRequestedAt)
	}
	if m.tour_confirmed_at != nil {
		fields = append(fields, engagement.FieldTourConfirmedAt)
	}
	if m.tour_scheduled_for != nil {
		fields = append(fields, engagement.FieldTourScheduledFor)
	}
	if m.tour_completed_at != nil {
		fields = append(fields, engagement.FieldTourCompletedAt)
	}
	if m.tour_reschedule_count != nil {
		fields = append(fields, engagement.FieldTourRescheduleCount)
	}
	if m.instant_book_requested_at != nil {
		fields = append(fields, engagement.FieldInstantBookRequestedAt)
	}
	if m.instant_book_confirmed_at != nil {
		fields = append(fields, engagement.FieldInstantBookConfirmedAt)
	}
	if m.buyer_confirmed_at != nil {
		fields = append(fields, engagement.FieldBuyerConfirmedAt)
	}
	if m.agreement_sent_at != nil {
		fields = append(fields, engagement.FieldAgreementSentAt)
	}
	if m.agreement_signed_at != nil {
		fields = append(fields, engagement.FieldAgreementSignedAt)
	}
	if m.lease_start_date != nil {
		fields = append(fields, engagement.FieldLeaseStartDate)
	}
	if m.lease_end_date != nil {
		fields = append(fields, engagement.FieldLeaseEndDate)
	}
	if m.activated_at != nil {
		fields = append(fields, engagement.FieldActivatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, engagement.FieldCompletedAt)
	}
	if m.insurance_uploaded != nil {
		fields = append(fields, engagement.FieldInsuranceUploaded)
	}
	if m.company_docs_uploaded != nil {
		fields = append(fields, engagement.FieldCompanyDocsUploaded)
	}
	if m.payment_method_added != nil {
		fields = append(fields, engagement.FieldPaymentMethodAdded)
	}
	if m.sqft != nil {
		fields = append(fields, engagement.FieldSqft)
	}
	if m.supplier_rate != nil {
		fields = append(fields, engagement.FieldSupplierRate)
	}
	if m.buyer_rate != nil {
		fields = append(fields, engagement.FieldBuyerRate)
	}
	if m.monthly_supplier_payout != nil {
		fields = append(fields, engagement.FieldMonthlySupplierPayout)
	}
	if m.monthly_buyer_total != nil {
		fields = append(fields, engagement.FieldMonthlyBuyerTotal)
	}
	if m.declined_by != nil {
		fields = append(fields, engagement.FieldDeclinedBy)
	}
	if m.decline_reason != nil {
		fields = append(fields, engagement.FieldDeclineReason)
	}
	if m.cancel_reason != nil {
		fields = append(fields, engagement.FieldCancelReason)
	}
	if m.decision_timer_paused_at != nil {
		fields = append(fields, engagement.FieldDecisionTimerPausedAt)
	}
	if m.admin_flagged != nil {
		fields = append(fields, engagement.FieldAdminFlagged)
	}
	if m.created_at != nil {
		fields = append(fields, engagement.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, engagement.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EngagementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case engagement.FieldMatchID:
		return m.MatchID()
	case engagement.FieldBuyerNeedID:
		return m.BuyerNeedID()
	case engagement.FieldWarehouseID:
		return m.WarehouseID()
	case engagement.FieldBuyerID:
		return m.BuyerID()
	case engagement.FieldCompanyID:
		return m.CompanyID()
	case engagement.FieldStatus:
		return m.Status()
	case engagement.FieldTier:
		return m.Tier()
	case engagement.FieldPath:
		return m.Path()
	case engagement.FieldDealPingSentAt:
		return m.DealPingSentAt()
	case engagement.FieldDealPingExpiresAt:
		return m.DealPingExpiresAt()
	case engagement.FieldBuyerAcceptedAt:
		return m.BuyerAcceptedAt()
	case engagement.FieldContactCapturedAt:
		return m.ContactCapturedAt()
	case engagement.FieldAccountCreatedAt:
		return m.AccountCreatedAt()
	case engagement.FieldGuaranteeSignedAt:
		return m.GuaranteeSignedAt()
	case engagement.FieldAddressRevealedAt:
		return m.AddressRevealedAt()
	case engagement.FieldTourRequestedAt:
		return m.TourRequestedAt()
	case engagement.FieldTourConfirmedAt:
		return m.TourConfirmedAt()
	case engagement.FieldTourScheduledFor:
		return m.TourScheduledFor()
	case engagement.FieldTourCompletedAt:
		return m.TourCompletedAt()
	case engagement.FieldTourRescheduleCount:
		return m.TourRescheduleCount()
	case engagement.FieldInstantBookRequestedAt:
		return m.InstantBookRequestedAt()
	case engagement.FieldInstantBookConfirmedAt:
		return m.InstantBookConfirmedAt()
	case engagement.FieldBuyerConfirmedAt:
		return m.BuyerConfirmedAt()
	case engagement.FieldAgreementSentAt:
		return m.AgreementSentAt()
	case engagement.FieldAgreementSignedAt:
		return m.AgreementSignedAt()
	case engagement.FieldLeaseStartDate:
		return m.LeaseStartDate()
	case engagement.FieldLeaseEndDate:
		return m.LeaseEndDate()
	case engagement.FieldActivatedAt:
		return m.ActivatedAt()
	case engagement.FieldCompletedAt:
		return m.CompletedAt()
	case engagement.FieldInsuranceUploaded:
		return m.InsuranceUploaded()
	case engagement.FieldCompanyDocsUploaded:
		return m.CompanyDocsUploaded()
	case engagement.FieldPaymentMethodAdded:
		return m.PaymentMethodAdded()
	case engagement.FieldSqft:
		return m.Sqft()
	case engagement.FieldSupplierRate:
		return m.SupplierRate()
	case engagement.FieldBuyerRate:
		return m.BuyerRate()
	case engagement.FieldMonthlySupplierPayout:
		return m.MonthlySupplierPayout()
	case engagement.FieldMonthlyBuyerTotal:
		return m.MonthlyBuyerTotal()
	case engagement.FieldDeclinedBy:
		return m.DeclinedBy()
	case engagement.FieldDeclineReason:
		return m.DeclineReason()
	case engagement.FieldCancelReason:
		return m.CancelReason()
	case engagement.FieldDecisionTimerPausedAt:
		return m.DecisionTimerPausedAt()
	case engagement.FieldAdminFlagged:
		return m.AdminFlagged()
	case engagement.FieldCreatedAt:
		return m.CreatedAt()
	case engagement.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EngagementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case engagement.FieldMatchID:
		return m.OldMatchID(ctx)
	case engagement.FieldBuyerNeedID:
		return m.OldBuyerNeedID(ctx)
	case engagement.FieldWarehouseID:
		return m.OldWarehouseID(ctx)
	case engagement.FieldBuyerID:
		return m.OldBuyerID(ctx)
	case engagement.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case engagement.FieldStatus:
		return m.OldStatus(ctx)
	case engagement.FieldTier:
		return m.OldTier(ctx)
	case engagement.FieldPath:
		return m.OldPath(ctx)
	case engagement.FieldDealPingSentAt:
		return m.OldDealPingSentAt(ctx)
	case engagement.FieldDealPingExpiresAt:
		return m.OldDealPingExpiresAt(ctx)
	case engagement.FieldBuyerAcceptedAt:
		return m.OldBuyerAcceptedAt(ctx)
	case engagement.FieldContactCapturedAt:
		return m.OldContactCapturedAt(ctx)
	case engagement.FieldAccountCreatedAt:
		return m.OldAccountCreatedAt(ctx)
	case engagement.FieldGuaranteeSignedAt:
		return m.OldGuaranteeSignedAt(ctx)
	case engagement.FieldAddressRevealedAt:
		return m.OldAddressRevealedAt(ctx)
	case engagement.FieldTourRequestedAt:
		return m.OldTourRequestedAt(ctx)
	case engagement.FieldTourConfirmedAt:
		return m.OldTourConfirmedAt(ctx)
	case engagement.FieldTourScheduledFor:
		return m.OldTourScheduledFor(ctx)
	case engagement.FieldTourCompletedAt:
		return m.OldTourCompletedAt(ctx)
	case engagement.FieldTourRescheduleCount:
		return m.OldTourRescheduleCount(ctx)
	case engagement.FieldInstantBookRequestedAt:
		return m.OldInstantBookRequestedAt(ctx)
	case engagement.FieldInstantBookConfirmedAt:
		return m.OldInstantBookConfirmedAt(ctx)
	case engagement.FieldBuyerConfirmedAt:
		return m.OldBuyerConfirmedAt(ctx)
	case engagement.FieldAgreementSentAt:
		return m.OldAgreementSentAt(ctx)
	case engagement.FieldAgreementSignedAt:
		return m.OldAgreementSignedAt(ctx)
	case engagement.FieldLeaseStartDate:
		return m.OldLeaseStartDate(ctx)
	case engagement.FieldLeaseEndDate:
		return m.OldLeaseEndDate(ctx)
	case engagement.FieldActivatedAt:
		return m.OldActivatedAt(ctx)
	case engagement.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case engagement.FieldInsuranceUploaded:
		return m.OldInsuranceUploaded(ctx)
	case engagement.FieldCompanyDocsUploaded:
		return m.OldCompanyDocsUploaded(ctx)
	case engagement.FieldPaymentMethodAdded:
		return m.OldPaymentMethodAdded(ctx)
	case engagement.FieldSqft:
		return m.OldSqft(ctx)
	case engagement.FieldSupplierRate:
		return m.OldSupplierRate(ctx)
	case engagement.FieldBuyerRate:
		return m.OldBuyerRate(ctx)
	case engagement.FieldMonthlySupplierPayout:
		return m.OldMonthlySupplierPayout(ctx)
	case engagement.FieldMonthlyBuyerTotal:
		return m.OldMonthlyBuyerTotal(ctx)
	case engagement.FieldDeclinedBy:
		return m.OldDeclinedBy(ctx)
	case engagement.FieldDeclineReason:
		return m.OldDeclineReason(ctx)
	case engagement.FieldCancelReason:
		return m.OldCancelReason(ctx)
	case engagement.FieldDecisionTimerPausedAt:
		return m.OldDecisionTimerPausedAt(ctx)
	case engagement.FieldAdminFlagged:
		return m.OldAdminFlagged(ctx)
	case engagement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case engagement.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Engagement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case engagement.FieldMatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchID(v)
		return nil
	case engagement.FieldBuyerNeedID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerNeedID(v)
		return nil
	case engagement.FieldWarehouseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarehouseID(v)
		return nil
	case engagement.FieldBuyerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerID(v)
		return nil
	case engagement.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case engagement.FieldStatus:
		v, ok := value.(engagement.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case engagement.FieldTier:
		v, ok := value.(engagement.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case engagement.FieldPath:
		v, ok := value.(engagement.Path)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case engagement.FieldDealPingSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDealPingSentAt(v)
		return nil
	case engagement.FieldDealPingExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDealPingExpiresAt(v)
		return nil
	case engagement.FieldBuyerAcceptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerAcceptedAt(v)
		return nil
	case engagement.FieldContactCapturedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactCapturedAt(v)
		return nil
	case engagement.FieldAccountCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountCreatedAt(v)
		return nil
	case engagement.FieldGuaranteeSignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuaranteeSignedAt(v)
		return nil
	case engagement.FieldAddressRevealedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddressRevealedAt(v)
		return nil
	case engagement.FieldTourRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTourRequestedAt(v)
		return nil
	case engagement.FieldTourConfirmedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTourConfirmedAt(v)
		return nil
	case engagement.FieldTourScheduledFor:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTourScheduledFor(v)
		return nil
	case engagement.FieldTourCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTourCompletedAt(v)
		return nil
	case engagement.FieldTourRescheduleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTourRescheduleCount(v)
		return nil
	case engagement.FieldInstantBookRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstantBookRequestedAt(v)
		return nil
	case engagement.FieldInstantBookConfirmedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstantBookConfirmedAt(v)
		return nil
	case engagement.FieldBuyerConfirmedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerConfirmedAt(v)
		return nil
	case engagement.FieldAgreementSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgreementSentAt(v)
		return nil
	case engagement.FieldAgreementSignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgreementSignedAt(v)
		return nil
	case engagement.FieldLeaseStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseStartDate(v)
		return nil
	case engagement.FieldLeaseEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseEndDate(v)
		return nil
	case engagement.FieldActivatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivatedAt(v)
		return nil
	case engagement.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case engagement.FieldInsuranceUploaded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsuranceUploaded(v)
		return nil
	case engagement.FieldCompanyDocsUploaded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyDocsUploaded(v)
		return nil
	case engagement.FieldPaymentMethodAdded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethodAdded(v)
		return nil
	case engagement.FieldSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSqft(v)
		return nil
	case engagement.FieldSupplierRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierRate(v)
		return nil
	case engagement.FieldBuyerRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerRate(v)
		return nil
	case engagement.FieldMonthlySupplierPayout:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlySupplierPayout(v)
		return nil
	case engagement.FieldMonthlyBuyerTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyBuyerTotal(v)
		return nil
	case engagement.FieldDeclinedBy:
		v, ok := value.(engagement.DeclinedBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeclinedBy(v)
		return nil
	case engagement.FieldDeclineReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeclineReason(v)
		return nil
	case engagement.FieldCancelReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelReason(v)
		return nil
	case engagement.FieldDecisionTimerPausedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionTimerPausedAt(v)
		return nil
	case engagement.FieldAdminFlagged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminFlagged(v)
		return nil
	case engagement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case engagement.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Engagement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EngagementMutation) AddedFields() []string {
	var fields []string
	if m.addtour_reschedule_count != nil {
		fields = append(fields, engagement.FieldTourRescheduleCount)
	}
	if m.addsqft != nil {
		fields = append(fields, engagement.FieldSqft)
	}
	if m.addsupplier_rate != nil {
		fields = append(fields, engagement.FieldSupplierRate)
	}
	if m.addbuyer_rate != nil {
		fields = append(fields, engagement.FieldBuyerRate)
	}
	if m.addmonthly_supplier_payout != nil {
		fields = append(fields, engagement.FieldMonthlySupplierPayout)
	}
	if m.addmonthly_buyer_total != nil {
		fields = append(fields, engagement.FieldMonthlyBuyerTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EngagementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case engagement.FieldTourRescheduleCount:
		return m.AddedTourRescheduleCount()
	case engagement.FieldSqft:
		return m.AddedSqft()
	case engagement.FieldSupplierRate:
		return m.AddedSupplierRate()
	case engagement.FieldBuyerRate:
		return m.AddedBuyerRate()
	case engagement.FieldMonthlySupplierPayout:
		return m.AddedMonthlySupplierPayout()
	case engagement.FieldMonthlyBuyerTotal:
		return m.AddedMonthlyBuyerTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case engagement.FieldTourRescheduleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTourRescheduleCount(v)
		return nil
	case engagement.FieldSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSqft(v)
		return nil
	case engagement.FieldSupplierRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSupplierRate(v)
		return nil
	case engagement.FieldBuyerRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBuyerRate(v)
		return nil
	case engagement.FieldMonthlySupplierPayout:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlySupplierPayout(v)
		return nil
	case engagement.FieldMonthlyBuyerTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlyBuyerTotal(v)
		return nil
	}
	return fmt.Errorf("unknown Engagement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EngagementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(engagement.FieldBuyerID) {
		fields = append(fields, engagement.FieldBuyerID)
	}
	if m.FieldCleared(engagement.FieldPath) {
		fields = append(fields, engagement.FieldPath)
	}
	if m.FieldCleared(engagement.FieldDealPingSentAt) {
		fields = append(fields, engagement.FieldDealPingSentAt)
	}
	if m.FieldCleared(engagement.FieldDealPingExpiresAt) {
		fields = append(fields, engagement.FieldDealPingExpiresAt)
	}
	if m.FieldCleared(engagement.FieldBuyerAcceptedAt) {
		fields = append(fields, engagement.FieldBuyerAcceptedAt)
	}
	if m.FieldCleared(engagement.FieldContactCapturedAt) {
		fields = append(fields, engagement.FieldContactCapturedAt)
	}
	if m.FieldCleared(engagement.FieldAccountCreatedAt) {
		fields = append(fields, engagement.FieldAccountCreatedAt)
	}
	if m.FieldCleared(engagement.FieldGuaranteeSignedAt) {
		fields = append(fields, engagement.FieldGuaranteeSignedAt)
	}
	if m.FieldCleared(engagement.FieldAddressRevealedAt) {
		fields = append(fields, engagement.FieldAddressRevealedAt)
	}
	if m.FieldCleared(engagement.FieldTourRequestedAt) {
		fields = append(fields, engagement.FieldTourRequestedAt)
	}
	if m.FieldCleared(engagement.FieldTourConfirmedAt) {
		fields = append(fields, engagement.FieldTourConfirmedAt)
	}
	if m.FieldCleared(engagement.FieldTourScheduledFor) {
		fields = append(fields, engagement.FieldTourScheduledFor)
	}
	if m.FieldCleared(engagement.FieldTourCompletedAt) {
		fields = append(fields, engagement.FieldTourCompletedAt)
	}
	if m.FieldCleared(engagement.FieldInstantBookRequestedAt) {
		fields = append(fields, engagement.FieldInstantBookRequestedAt)
	}
	if m.FieldCleared(engagement.FieldInstantBookConfirmedAt) {
		fields = append(fields, engagement.FieldInstantBookConfirmedAt)
	}
	if m.FieldCleared(engagement.FieldBuyerConfirmedAt) {
		fields = append(fields, engagement.FieldBuyerConfirmedAt)
	}
	if m.FieldCleared(engagement.FieldAgreementSentAt) {
		fields = append(fields, engagement.FieldAgreementSentAt)
	}
	if m.FieldCleared(engagement.FieldAgreementSignedAt) {
		fields = append(fields, engagement.FieldAgreementSignedAt)
	}
	if m.FieldCleared(engagement.FieldLeaseStartDate) {
		fields = append(fields, engagement.FieldLeaseStartDate)
	}
	if m.FieldCleared(engagement.FieldLeaseEndDate) {
		fields = append(fields, engagement.FieldLeaseEndDate)
	}
	if m.FieldCleared(engagement.FieldActivatedAt) {
		fields = append(fields, engagement.FieldActivatedAt)
	}
	if m.FieldCleared(engagement.FieldCompletedAt) {
		fields = append(fields, engagement.FieldCompletedAt)
	}
	if m.FieldCleared(engagement.FieldSqft) {
		fields = append(fields, engagement.FieldSqft)
	}
	if m.FieldCleared(engagement.FieldSupplierRate) {
		fields = append(fields, engagement.FieldSupplierRate)
	}
	if m.FieldCleared(engagement.FieldBuyerRate) {
		fields = append(fields, engagement.FieldBuyerRate)
	}
	if m.FieldCleared(engagement.FieldMonthlySupplierPayout) {
		fields = append(fields, engagement.FieldMonthlySupplierPayout)
	}
	if m.FieldCleared(engagement.FieldMonthlyBuyerTotal) {
		fields = append(fields, engagement.FieldMonthlyBuyerTotal)
	}
	if m.FieldCleared(engagement.FieldDeclinedBy) {
		fields = append(fields, engagement.FieldDeclinedBy)
	}
	if m.FieldCleared(engagement.FieldDeclineReason) {
		fields = append(fields, engagement.FieldDeclineReason)
	}
	if m.FieldCleared(engagement.FieldCancelReason) {
		fields = append(fields, engagement.FieldCancelReason)
	}
	if m.FieldCleared(engagement.FieldDecisionTimerPausedAt) {
		fields = append(fields, engagement.FieldDecisionTimerPausedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EngagementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EngagementMutation) ClearField(name string) error {
	switch name {
	case engagement.FieldBuyerID:
		m.ClearBuyerID()
		return nil
	case engagement.FieldPath:
		m.ClearPath()
		return nil
	case engagement.FieldDealPingSentAt:
		m.ClearDealPingSentAt()
		return nil
	case engagement.FieldDealPingExpiresAt:
		m.ClearDealPingExpiresAt()
		return nil
	case engagement.FieldBuyerAcceptedAt:
		m.ClearBuyerAcceptedAt()
		return nil
	case engagement.FieldContactCapturedAt:
		m.ClearContactCapturedAt()
		return nil
	case engagement.FieldAccountCreatedAt:
		m.ClearAccountCreatedAt()
		return nil
	case engagement.FieldGuaranteeSignedAt:
		m.ClearGuaranteeSignedAt()
		return nil
	case engagement.FieldAddressRevealedAt:
		m.ClearAddressRevealedAt()
		return nil
	case engagement.FieldTourRequestedAt:
		m.ClearTourRequestedAt()
		return nil
	case engagement.FieldTourConfirmedAt:
		m.ClearTourConfirmedAt()
		return nil
	case engagement.FieldTourScheduledFor:
		m.ClearTourScheduledFor()
		return nil
	case engagement.FieldTourCompletedAt:
		m.ClearTourCompletedAt()
		return nil
	case engagement.FieldInstantBookRequestedAt:
		m.ClearInstantBookRequestedAt()
		return nil
	case engagement.FieldInstantBookConfirmedAt:
		m.ClearInstantBookConfirmedAt()
		return nil
	case engagement.FieldBuyerConfirmedAt:
		m.ClearBuyerConfirmedAt()
		return nil
	case engagement.FieldAgreementSentAt:
		m.ClearAgreementSentAt()
		return nil
	case engagement.FieldAgreementSignedAt:
		m.ClearAgreementSignedAt()
		return nil
	case engagement.FieldLeaseStartDate:
		m.ClearLeaseStartDate()
		return nil
	case engagement.FieldLeaseEndDate:
		m.ClearLeaseEndDate()
		return nil
	case engagement.FieldActivatedAt:
		m.ClearActivatedAt()
		return nil
	case engagement.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case engagement.FieldSqft:
		m.ClearSqft()
		return nil
	case engagement.FieldSupplierRate:
		m.ClearSupplierRate()
		return nil
	case engagement.FieldBuyerRate:
		m.ClearBuyerRate()
		return nil
	case engagement.FieldMonthlySupplierPayout:
		m.ClearMonthlySupplierPayout()
		return nil
	case engagement.FieldMonthlyBuyerTotal:
		m.ClearMonthlyBuyerTotal()
		return nil
	case engagement.FieldDeclinedBy:
		m.ClearDeclinedBy()
		return nil
	case engagement.FieldDeclineReason:
		m.ClearDeclineReason()
		return nil
	case engagement.FieldCancelReason:
		m.ClearCancelReason()
		return nil
	case engagement.FieldDecisionTimerPausedAt:
		m.ClearDecisionTimerPausedAt()
		return nil
	}
	return fmt.Errorf("unknown Engagement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EngagementMutation) ResetField(name string) error {
	switch name {
	case engagement.FieldMatchID:
		m.ResetMatchID()
		return nil
	case engagement.FieldBuyerNeedID:
		m.ResetBuyerNeedID()
		return nil
	case engagement.FieldWarehouseID:
		m.ResetWarehouseID()
		return nil
	case engagement.FieldBuyerID:
		m.ResetBuyerID()
		return nil
	case engagement.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case engagement.FieldStatus:
		m.ResetStatus()
		return nil
	case engagement.FieldTier:
		m.ResetTier()
		return nil
	case engagement.FieldPath:
		m.ResetPath()
		return nil
	case engagement.FieldDealPingSentAt:
		m.ResetDealPingSentAt()
		return nil
	case engagement.FieldDealPingExpiresAt:
		m.ResetDealPingExpiresAt()
		return nil
	case engagement.FieldBuyerAcceptedAt:
		m.ResetBuyerAcceptedAt()
		return nil
	case engagement.FieldContactCapturedAt:
		m.ResetContactCapturedAt()
		return nil
	case engagement.FieldAccountCreatedAt:
		m.ResetAccountCreatedAt()
		return nil
	case engagement.FieldGuaranteeSignedAt:
		m.ResetGuaranteeSignedAt()
		return nil
	case engagement.FieldAddressRevealedAt:
		m.ResetAddressRevealedAt()
		return nil
	case engagement.FieldTourRequestedAt:
		m.ResetTourRequestedAt()
		return nil
	case engagement.FieldTourConfirmedAt:
		m.ResetTourConfirmedAt()
		return nil
	case engagement.FieldTourScheduledFor:
		m.ResetTourScheduledFor()
		return nil
	case engagement.FieldTourCompletedAt:
		m.ResetTourCompletedAt()
		return nil
	case engagement.FieldTourRescheduleCount:
		m.ResetTourRescheduleCount()
		return nil
	case engagement.FieldInstantBookRequestedAt:
		m.ResetInstantBookRequestedAt()
		return nil
	case engagement.FieldInstantBookConfirmedAt:
		m.ResetInstantBookConfirmedAt()
		return nil
	case engagement.FieldBuyerConfirmedAt:
		m.ResetBuyerConfirmedAt()
		return nil
	case engagement.FieldAgreementSentAt:
		m.ResetAgreementSentAt()
		return nil
	case engagement.FieldAgreementSignedAt:
		m.ResetAgreementSignedAt()
		return nil
	case engagement.FieldLeaseStartDate:
		m.ResetLeaseStartDate()
		return nil
	case engagement.FieldLeaseEndDate:
		m.ResetLeaseEndDate()
		return nil
	case engagement.FieldActivatedAt:
		m.ResetActivatedAt()
		return nil
	case engagement.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case engagement.FieldInsuranceUploaded:
		m.ResetInsuranceUploaded()
		return nil
	case engagement.FieldCompanyDocsUploaded:
		m.ResetCompanyDocsUploaded()
		return nil
	case engagement.FieldPaymentMethodAdded:
		m.ResetPaymentMethodAdded()
		return nil
	case engagement.FieldSqft:
		m.ResetSqft()
		return nil
	case engagement.FieldSupplierRate:
		m.ResetSupplierRate()
		return nil
	case engagement.FieldBuyerRate:
		m.ResetBuyerRate()
		return nil
	case engagement.FieldMonthlySupplierPayout:
		m.ResetMonthlySupplierPayout()
		return nil
	case engagement.FieldMonthlyBuyerTotal:
		m.ResetMonthlyBuyerTotal()
		return nil
	case engagement.FieldDeclinedBy:
		m.ResetDeclinedBy()
		return nil
	case engagement.FieldDeclineReason:
		m.ResetDeclineReason()
		return nil
	case engagement.FieldCancelReason:
		m.ResetCancelReason()
		return nil
	case engagement.FieldDecisionTimerPausedAt:
		m.ResetDecisionTimerPausedAt()
		return nil
	case engagement.FieldAdminFlagged:
		m.ResetAdminFlagged()
		return nil
	case engagement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case engagement.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Engagement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EngagementMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.match != nil {
		edges = append(edges, engagement.EdgeMatch)
	}
	if m.events != nil {
		edges = append(edges, engagement.EdgeEvents)
	}
	if m.agreements != nil {
		edges = append(edges, engagement.EdgeAgreements)
	}
	if m.payments != nil {
		edges = append(edges, engagement.EdgePayments)
	}
	if m.upload_tokens != nil {
		edges = append(edges, engagement.EdgeUploadTokens)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EngagementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case engagement.EdgeMatch:
		if id := m.match; id != nil {
			return []ent.Value{*id}
		}
	case engagement.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeAgreements:
		ids := make([]ent.Value, 0, len(m.agreements))
		for id := range m.agreements {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgePayments:
		ids := make([]ent.Value, 0, len(m.payments))
		for id := range m.payments {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeUploadTokens:
		ids := make([]ent.Value, 0, len(m.upload_tokens))
		for id := range m.upload_tokens {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EngagementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedevents != nil {
		edges = append(edges, engagement.EdgeEvents)
	}
	if m.removedagreements != nil {
		edges = append(edges, engagement.EdgeAgreements)
	}
	if m.removedpayments != nil {
		edges = append(edges, engagement.EdgePayments)
	}
	if m.removedupload_tokens != nil {
		edges = append(edges, engagement.EdgeUploadTokens)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EngagementMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case engagement.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeAgreements:
		ids := make([]ent.Value, 0, len(m.removedagreements))
		for id := range m.removedagreements {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgePayments:
		ids := make([]ent.Value, 0, len(m.removedpayments))
		for id := range m.removedpayments {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeUploadTokens:
		ids := make([]ent.Value, 0, len(m.removedupload_tokens))
		for id := range m.removedupload_tokens {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EngagementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedmatch {
		edges = append(edges, engagement.EdgeMatch)
	}
	if m.clearedevents {
		edges = append(edges, engagement.EdgeEvents)
	}
	if m.clearedagreements {
		edges = append(edges, engagement.EdgeAgreements)
	}
	if m.clearedpayments {
		edges = append(edges, engagement.EdgePayments)
	}
	if m.clearedupload_tokens {
		edges = append(edges, engagement.EdgeUploadTokens)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EngagementMutation) EdgeCleared(name string) bool {
	switch name {
	case engagement.EdgeMatch:
		return m.clearedmatch
	case engagement.EdgeEvents:
		return m.clearedevents
	case engagement.EdgeAgreements:
		return m.clearedagreements
	case engagement.EdgePayments:
		return m.clearedpayments
	case engagement.EdgeUploadTokens:
		return m.clearedupload_tokens
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EngagementMutation) ClearEdge(name string) error {
	switch name {
	case engagement.EdgeMatch:
		m.ClearMatch()
		return nil
	}
	return fmt.Errorf("unknown Engagement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EngagementMutation) ResetEdge(name string) error {
	switch name {
	case engagement.EdgeMatch:
		m.ResetMatch()
		return nil
	case engagement.EdgeEvents:
		m.ResetEvents()
		return nil
	case engagement.EdgeAgreements:
		m.ResetAgreements()
		return nil
	case engagement.EdgePayments:
		m.ResetPayments()
		return nil
	case engagement.EdgeUploadTokens:
		m.ResetUploadTokens()
		return nil
	}
	return fmt.Errorf("unknown Engagement edge %s", name)
}

// EngagementAgreementMutation represents an operation that mutates the EngagementAgreement nodes in the graph.
type EngagementAgreementMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	agreement_type             *engagementagreement.AgreementType
	version                    *int
	addversion                 *int
	status                     *engagementagreement.Status
	buyer_signed_at            *time.Time
	supplier_signed_at         *time.Time
	expires_at                 *time.Time
	sqft                       *int
	addsqft                    *int
	buyer_rate                 *float64
	addbuyer_rate              *float64
	supplier_rate              *float64
	addsupplier_rate           *float64
	monthly_buyer_total        *float64
	addmonthly_buyer_total     *float64
	monthly_supplier_payout    *float64
	addmonthly_supplier_payout *float64
	external_ref               *string
	document_url               *string
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	engagement                 *string
	clearedengagement          bool
	done                       bool
	oldValue                   func(context.Context) (*EngagementAgreement, error)
	predicates                 []predicate.EngagementAgreement
}

var _ ent.Mutation = (*EngagementAgreementMutation)(nil)

// engagementagreementOption allows management of the mutation configuration using functional options.
type engagementagreementOption func(*EngagementAgreementMutation)

// newEngagementAgreementMutation creates new mutation for the EngagementAgreement entity.
func newEngagementAgreementMutation(c config, op Op, opts ...engagementagreementOption) *EngagementAgreementMutation {
	m := &EngagementAgreementMutation{
		config:        c,
		op:            op,
		typ:           TypeEngagementAgreement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEngagementAgreementID sets the ID field of the mutation.
func withEngagementAgreementID(id string) engagementagreementOption {
	return func(m *EngagementAgreementMutation) {
		var (
			err   error
			once  sync.Once
			value *EngagementAgreement
		)
		m.oldValue = func(ctx context.Context) (*EngagementAgreement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EngagementAgreement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEngagementAgreement sets the old EngagementAgreement of the mutation.
func withEngagementAgreement(node *EngagementAgreement) engagementagreementOption {
	return func(m *EngagementAgreementMutation) {
		m.oldValue = func(context.Context) (*EngagementAgreement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EngagementAgreementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EngagementAgreementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EngagementAgreement entities.
func (m *EngagementAgreementMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EngagementAgreementMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EngagementAgreementMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EngagementAgreement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEngagementID sets the "engagement_id" field.
func (m *EngagementAgreementMutation) SetEngagementID(s string) {
	m.engagement = &s
}

// EngagementID returns the value of the "engagement_id" field in the mutation.
func (m *EngagementAgreementMutation) EngagementID() (r string, exists bool) {
	v := m.engagement
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementID returns the old "engagement_id" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldEngagementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementID: %w", err)
	}
	return oldValue.EngagementID, nil
}

// ResetEngagementID resets all changes to the "engagement_id" field.
func (m *EngagementAgreementMutation) ResetEngagementID() {
	m.engagement = nil
}

// SetAgreementType sets the "agreement_type" field.
func (m *EngagementAgreementMutation) SetAgreementType(et engagementagreement.AgreementType) {
	m.agreement_type = &et
}

// AgreementType returns the value of the "agreement_type" field in the mutation.
func (m *EngagementAgreementMutation) AgreementType() (r engagementagreement.AgreementType, exists bool) {
	v := m.agreement_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgreementType returns the old "agreement_type" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldAgreementType(ctx context.Context) (v engagementagreement.AgreementType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgreementType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgreementType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgreementType: %w", err)
	}
	return oldValue.AgreementType, nil
}

// ResetAgreementType resets all changes to the "agreement_type" field.
func (m *EngagementAgreementMutation) ResetAgreementType() {
	m.agreement_type = nil
}

// SetVersion sets the "version" field.
func (m *EngagementAgreementMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *EngagementAgreementMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *EngagementAgreementMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *EngagementAgreementMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *EngagementAgreementMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetStatus sets the "status" field.
func (m *EngagementAgreementMutation) SetStatus(e engagementagreement.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EngagementAgreementMutation) Status() (r engagementagreement.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldStatus(ctx context.Context) (v engagementagreement.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EngagementAgreementMutation) ResetStatus() {
	m.status = nil
}

// SetBuyerSignedAt sets the "buyer_signed_at" field.
func (m *EngagementAgreementMutation) SetBuyerSignedAt(t time.Time) {
	m.buyer_signed_at = &t
}

// BuyerSignedAt returns the value of the "buyer_signed_at" field in the mutation.
func (m *EngagementAgreementMutation) BuyerSignedAt() (r time.Time, exists bool) {
	v := m.buyer_signed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerSignedAt returns the old "buyer_signed_at" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldBuyerSignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerSignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerSignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerSignedAt: %w", err)
	}
	return oldValue.BuyerSignedAt, nil
}

// ClearBuyerSignedAt clears the value of the "buyer_signed_at" field.
func (m *EngagementAgreementMutation) ClearBuyerSignedAt() {
	m.buyer_signed_at = nil
	m.clearedFields[engagementagreement.FieldBuyerSignedAt] = struct{}{}
}

// BuyerSignedAtCleared returns if the "buyer_signed_at" field was cleared in this mutation.
func (m *EngagementAgreementMutation) BuyerSignedAtCleared() bool {
	_, ok := m.clearedFields[engagementagreement.FieldBuyerSignedAt]
	return ok
}

// ResetBuyerSignedAt resets all changes to the "buyer_signed_at" field.
func (m *EngagementAgreementMutation) ResetBuyerSignedAt() {
	m.buyer_signed_at = nil
	delete(m.clearedFields, engagementagreement.FieldBuyerSignedAt)
}

// SetSupplierSignedAt sets the "supplier_signed_at" field.
func (m *EngagementAgreementMutation) SetSupplierSignedAt(t time.Time) {
	m.supplier_signed_at = &t
}

// SupplierSignedAt returns the value of the "supplier_signed_at" field in the mutation.
func (m *EngagementAgreementMutation) SupplierSignedAt() (r time.Time, exists bool) {
	v := m.supplier_signed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierSignedAt returns the old "supplier_signed_at" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldSupplierSignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierSignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierSignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierSignedAt: %w", err)
	}
	return oldValue.SupplierSignedAt, nil
}

// ClearSupplierSignedAt clears the value of the "supplier_signed_at" field.
func (m *EngagementAgreementMutation) ClearSupplierSignedAt() {
	m.supplier_signed_at = nil
	m.clearedFields[engagementagreement.FieldSupplierSignedAt] = struct{}{}
}

// SupplierSignedAtCleared returns if the "supplier_signed_at" field was cleared in this mutation.
func (m *EngagementAgreementMutation) SupplierSignedAtCleared() bool {
	_, ok := m.clearedFields[engagementagreement.FieldSupplierSignedAt]
	return ok
}

// ResetSupplierSignedAt resets all changes to the "supplier_signed_at" field.
func (m *EngagementAgreementMutation) ResetSupplierSignedAt() {
	m.supplier_signed_at = nil
	delete(m.clearedFields, engagementagreement.FieldSupplierSignedAt)
}

// SetExpiresAt sets the "expires_at" field.
func (m *EngagementAgreementMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *EngagementAgreementMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *EngagementAgreementMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[engagementagreement.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *EngagementAgreementMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[engagementagreement.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *EngagementAgreementMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, engagementagreement.FieldExpiresAt)
}

// SetSqft sets the "sqft" field.
func (m *EngagementAgreementMutation) SetSqft(i int) {
	m.sqft = &i
	m.addsqft = nil
}

// Sqft returns the value of the "sqft" field in the mutation.
func (m *EngagementAgreementMutation) Sqft() (r int, exists bool) {
	v := m.sqft
	if v == nil {
		return
	}
	return *v, true
}

// OldSqft returns the old "sqft" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldSqft(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSqft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSqft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSqft: %w", err)
	}
	return oldValue.Sqft, nil
}

// AddSqft adds i to the "sqft" field.
func (m *EngagementAgreementMutation) AddSqft(i int) {
	if m.addsqft != nil {
		*m.addsqft += i
	} else {
		m.addsqft = &i
	}
}

// AddedSqft returns the value that was added to the "sqft" field in this mutation.
func (m *EngagementAgreementMutation) AddedSqft() (r int, exists bool) {
	v := m.addsqft
	if v == nil {
		return
	}
	return *v, true
}

// ClearSqft clears the value of the "sqft" field.
func (m *EngagementAgreementMutation) ClearSqft() {
	m.sqft = nil
	m.addsqft = nil
	m.clearedFields[engagementagreement.FieldSqft] = struct{}{}
}

// SqftCleared returns if the "sqft" field was cleared in this mutation.
func (m *EngagementAgreementMutation) SqftCleared() bool {
	_, ok := m.clearedFields[engagementagreement.FieldSqft]
	return ok
}

// ResetSqft resets all changes to the "sqft" field.
func (m *EngagementAgreementMutation) ResetSqft() {
	m.sqft = nil
	m.addsqft = nil
	delete(m.clearedFields, engagementagreement.FieldSqft)
}

// SetBuyerRate sets the "buyer_rate" field.
func (m *EngagementAgreementMutation) SetBuyerRate(f float64) {
	m.buyer_rate = &f
	m.addbuyer_rate = nil
}

// BuyerRate returns the value of the "buyer_rate" field in the mutation.
func (m *EngagementAgreementMutation) BuyerRate() (r float64, exists bool) {
	v := m.buyer_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerRate returns the old "buyer_rate" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldBuyerRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerRate: %w", err)
	}
	return oldValue.BuyerRate, nil
}

// AddBuyerRate adds f to the "buyer_rate" field.
func (m *EngagementAgreementMutation) AddBuyerRate(f float64) {
	if m.addbuyer_rate != nil {
		*m.addbuyer_rate += f
	} else {
		m.addbuyer_rate = &f
	}
}

// AddedBuyerRate returns the value that was added to the "buyer_rate" field in this mutation.
func (m *EngagementAgreementMutation) AddedBuyerRate() (r float64, exists bool) {
	v := m.addbuyer_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearBuyerRate clears the value of the "buyer_rate" field.
func (m *EngagementAgreementMutation) ClearBuyerRate() {
	m.buyer_rate = nil
	m.addbuyer_rate = nil
	m.clearedFields[engagementagreement.FieldBuyerRate] = struct{}{}
}

// BuyerRateCleared returns if the "buyer_rate" field was cleared in this mutation.
func (m *EngagementAgreementMutation) BuyerRateCleared() bool {
	_, ok := m.clearedFields[engagementagreement.FieldBuyerRate]
	return ok
}

// ResetBuyerRate resets all changes to the "buyer_rate" field.
func (m *EngagementAgreementMutation) ResetBuyerRate() {
	m.buyer_rate = nil
	m.addbuyer_rate = nil
	delete(m.clearedFields, engagementagreement.FieldBuyerRate)
}

// SetSupplierRate sets the "supplier_rate" field.
func (m *EngagementAgreementMutation) SetSupplierRate(f float64) {
	m.supplier_rate = &f
	m.addsupplier_rate = nil
}

// SupplierRate returns the value of the "supplier_rate" field in the mutation.
func (m *EngagementAgreementMutation) SupplierRate() (r float64, exists bool) {
	v := m.supplier_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierRate returns the old "supplier_rate" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldSupplierRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierRate: %w", err)
	}
	return oldValue.SupplierRate, nil
}

// AddSupplierRate adds f to the "supplier_rate" field.
func (m *EngagementAgreementMutation) AddSupplierRate(f float64) {
	if m.addsupplier_rate != nil {
		*m.addsupplier_rate += f
	} else {
		m.addsupplier_rate = &f
	}
}

// AddedSupplierRate returns the value that was added to the "supplier_rate" field in this mutation.
func (m *EngagementAgreementMutation) AddedSupplierRate() (r float64, exists bool) {
	v := m.addsupplier_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearSupplierRate clears the value of the "supplier_rate" field.
func (m *EngagementAgreementMutation) ClearSupplierRate() {
	m.supplier_rate = nil
	m.addsupplier_rate = nil
	m.clearedFields[engagementagreement.FieldSupplierRate] = struct{}{}
}

// SupplierRateCleared returns if the "supplier_rate" field was cleared in this mutation.
func (m *EngagementAgreementMutation) SupplierRateCleared() bool {
	_, ok := m.clearedFields[engagementagreement.FieldSupplierRate]
	return ok
}

// ResetSupplierRate resets all changes to the "supplier_rate" field.
func (m *EngagementAgreementMutation) ResetSupplierRate() {
	m.supplier_rate = nil
	m.addsupplier_rate = nil
	delete(m.clearedFields, engagementagreement.FieldSupplierRate)
}

// SetMonthlyBuyerTotal sets the "monthly_buyer_total" field.
func (m *EngagementAgreementMutation) SetMonthlyBuyerTotal(f float64) {
	m.monthly_buyer_total = &f
	m.addmonthly_buyer_total = nil
}

// MonthlyBuyerTotal returns the value of the "monthly_buyer_total" field in the mutation.
func (m *EngagementAgreementMutation) MonthlyBuyerTotal() (r float64, exists bool) {
	v := m.monthly_buyer_total
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyBuyerTotal returns the old "monthly_buyer_total" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldMonthlyBuyerTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyBuyerTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyBuyerTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyBuyerTotal: %w", err)
	}
	return oldValue.MonthlyBuyerTotal, nil
}

// AddMonthlyBuyerTotal adds f to the "monthly_buyer_total" field.
func (m *EngagementAgreementMutation) AddMonthlyBuyerTotal(f float64) {
	if m.addmonthly_buyer_total != nil {
		*m.addmonthly_buyer_total += f
	} else {
		m.addmonthly_buyer_total = &f
	}
}

// AddedMonthlyBuyerTotal returns the value that was added to the "monthly_buyer_total" field in this mutation.
func (m *EngagementAgreementMutation) AddedMonthlyBuyerTotal() (r float64, exists bool) {
	v := m.addmonthly_buyer_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearMonthlyBuyerTotal clears the value of the "monthly_buyer_total" field.
func (m *EngagementAgreementMutation) ClearMonthlyBuyerTotal() {
	m.monthly_buyer_total = nil
	m.addmonthly_buyer_total = nil
	m.clearedFields[engagementagreement.FieldMonthlyBuyerTotal] = struct{}{}
}

// MonthlyBuyerTotalCleared returns if the "monthly_buyer_total" field was cleared in this mutation.
func (m *EngagementAgreementMutation) MonthlyBuyerTotalCleared() bool {
	_, ok := m.clearedFields[engagementagreement.FieldMonthlyBuyerTotal]
	return ok
}

// ResetMonthlyBuyerTotal resets all changes to the "monthly_buyer_total" field.
func (m *EngagementAgreementMutation) ResetMonthlyBuyerTotal() {
	m.monthly_buyer_total = nil
	m.addmonthly_buyer_total = nil
	delete(m.clearedFields, engagementagreement.FieldMonthlyBuyerTotal)
}

// SetMonthlySupplierPayout sets the "monthly_supplier_payout" field.
func (m *EngagementAgreementMutation) SetMonthlySupplierPayout(f float64) {
	m.monthly_supplier_payout = &f
	m.addmonthly_supplier_payout = nil
}

// MonthlySupplierPayout returns the value of the "monthly_supplier_payout" field in the mutation.
func (m *EngagementAgreementMutation) MonthlySupplierPayout() (r float64, exists bool) {
	v := m.monthly_supplier_payout
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlySupplierPayout returns the old "monthly_supplier_payout" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldMonthlySupplierPayout(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlySupplierPayout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlySupplierPayout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlySupplierPayout: %w", err)
	}
	return oldValue.MonthlySupplierPayout, nil
}

// AddMonthlySupplierPayout adds f to the "monthly_supplier_payout" field.
func (m *EngagementAgreementMutation) AddMonthlySupplierPayout(f float64) {
	if m.addmonthly_supplier_payout != nil {
		*m.addmonthly_supplier_payout += f
	} else {
		m.addmonthly_supplier_payout = &f
	}
}

// AddedMonthlySupplierPayout returns the value that was added to the "monthly_supplier_payout" field in this mutation.
func (m *EngagementAgreementMutation) AddedMonthlySupplierPayout() (r float64, exists bool) {
	v := m.addmonthly_supplier_payout
	if v == nil {
		return
	}
	return *v, true
}

// ClearMonthlySupplierPayout clears the value of the "monthly_supplier_payout" field.
func (m *EngagementAgreementMutation) ClearMonthlySupplierPayout() {
	m.monthly_supplier_payout = nil
	m.addmonthly_supplier_payout = nil
	m.clearedFields[engagementagreement.FieldMonthlySupplierPayout] = struct{}{}
}

// MonthlySupplierPayoutCleared returns if the "monthly_supplier_payout" field was cleared in this mutation.
func (m *EngagementAgreementMutation) MonthlySupplierPayoutCleared() bool {
	_, ok := m.clearedFields[engagementagreement.FieldMonthlySupplierPayout]
	return ok
}

// ResetMonthlySupplierPayout resets all changes to the "monthly_supplier_payout" field.
func (m *EngagementAgreementMutation) ResetMonthlySupplierPayout() {
	m.monthly_supplier_payout = nil
	m.addmonthly_supplier_payout = nil
	delete(m.clearedFields, engagementagreement.FieldMonthlySupplierPayout)
}

// SetExternalRef sets the "external_ref" field.
func (m *EngagementAgreementMutation) SetExternalRef(s string) {
	m.external_ref = &s
}

// ExternalRef returns the value of the "external_ref" field in the mutation.
func (m *EngagementAgreementMutation) ExternalRef() (r string, exists bool) {
	v := m.external_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalRef returns the old "external_ref" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldExternalRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalRef: %w", err)
	}
	return oldValue.ExternalRef, nil
}

// ClearExternalRef clears the value of the "external_ref" field.
func (m *EngagementAgreementMutation) ClearExternalRef() {
	m.external_ref = nil
	m.clearedFields[engagementagreement.FieldExternalRef] = struct{}{}
}

// ExternalRefCleared returns if the "external_ref" field was cleared in this mutation.
func (m *EngagementAgreementMutation) ExternalRefCleared() bool {
	_, ok := m.clearedFields[engagementagreement.FieldExternalRef]
	return ok
}

// ResetExternalRef resets all changes to the "external_ref" field.
func (m *EngagementAgreementMutation) ResetExternalRef() {
	m.external_ref = nil
	delete(m.clearedFields, engagementagreement.FieldExternalRef)
}

// SetDocumentURL sets the "document_url" field.
func (m *EngagementAgreementMutation) SetDocumentURL(s string) {
	m.document_url = &s
}

// DocumentURL returns the value of the "document_url" field in the mutation.
func (m *EngagementAgreementMutation) DocumentURL() (r string, exists bool) {
	v := m.document_url
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentURL returns the old "document_url" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldDocumentURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentURL: %w", err)
	}
	return oldValue.DocumentURL, nil
}

// ClearDocumentURL clears the value of the "document_url" field.
func (m *EngagementAgreementMutation) ClearDocumentURL() {
	m.document_url = nil
	m.clearedFields[engagementagreement.FieldDocumentURL] = struct{}{}
}

// DocumentURLCleared returns if the "document_url" field was cleared in this mutation.
func (m *EngagementAgreementMutation) DocumentURLCleared() bool {
	_, ok := m.clearedFields[engagementagreement.FieldDocumentURL]
	return ok
}

// ResetDocumentURL resets all changes to the "document_url" field.
func (m *EngagementAgreementMutation) ResetDocumentURL() {
	m.document_url = nil
	delete(m.clearedFields, engagementagreement.FieldDocumentURL)
}

// SetCreatedAt sets the "created_at" field.
func (m *EngagementAgreementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EngagementAgreementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EngagementAgreementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EngagementAgreementMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EngagementAgreementMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EngagementAgreement entity.
// If the EngagementAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementAgreementMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EngagementAgreementMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearEngagement clears the "engagement" edge to the Engagement entity.
func (m *EngagementAgreementMutation) ClearEngagement() {
	m.clearedengagement = true
	m.clearedFields[engagementagreement.FieldEngagementID] = struct{}{}
}

// EngagementCleared reports if the "engagement" edge to the Engagement entity was cleared.
func (m *EngagementAgreementMutation) EngagementCleared() bool {
	return m.clearedengagement
}

// EngagementIDs returns the "engagement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EngagementID instead. It exists only for internal usage by the builders.
func (m *EngagementAgreementMutation) EngagementIDs() (ids []string) {
	if id := m.engagement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEngagement resets all changes to the "engagement" edge.
func (m *EngagementAgreementMutation) ResetEngagement() {
	m.engagement = nil
	m.clearedengagement = false
}

// Where appends a list predicates to the EngagementAgreementMutation builder.
func (m *EngagementAgreementMutation) Where(ps ...predicate.EngagementAgreement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EngagementAgreementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EngagementAgreementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EngagementAgreement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EngagementAgreementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EngagementAgreementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EngagementAgreement).
func (m *EngagementAgreementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EngagementAgreementMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.engagement != nil {
		fields = append(fields, engagementagreement.FieldEngagementID)
	}
	if m.agreement_type != nil {
		fields = append(fields, engagementagreement.FieldAgreementType)
	}
	if m.version != nil {
		fields = append(fields, engagementagreement.FieldVersion)
	}
	if m.status != nil {
		fields = append(fields, engagementagreement.FieldStatus)
	}
	if m.buyer_signed_at != nil {
		fields = append(fields, engagementagreement.FieldBuyerSignedAt)
	}
	if m.supplier_signed_at != nil {
		fields = append(fields, engagementagreement.FieldSupplierSignedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, engagementagreement.FieldExpiresAt)
	}
	if m.sqft != nil {
		fields = append(fields, engagementagreement.FieldSqft)
	}
	if m.buyer_rate != nil {
		fields = append(fields, engagementagreement.FieldBuyerRate)
	}
	if m.supplier_rate != nil {
		fields = append(fields, engagementagreement.FieldSupplierRate)
	}
	if m.monthly_buyer_total != nil {
		fields = append(fields, engagementagreement.FieldMonthlyBuyerTotal)
	}
	if m.monthly_supplier_payout != nil {
		fields = append(fields, engagementagreement.FieldMonthlySupplierPayout)
	}
	if m.external_ref != nil {
		fields = append(fields, engagementagreement.FieldExternalRef)
	}
	if m.document_url != nil {
		fields = append(fields, engagementagreement.FieldDocumentURL)
	}
	if m.created_at != nil {
		fields = append(fields, engagementagreement.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, engagementagreement.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EngagementAgreementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case engagementagreement.FieldEngagementID:
		return m.EngagementID()
	case engagementagreement.FieldAgreementType:
		return m.AgreementType()
	case engagementagreement.FieldVersion:
		return m.Version()
	case engagementagreement.FieldStatus:
		return m.Status()
	case engagementagreement.FieldBuyerSignedAt:
		return m.BuyerSignedAt()
	case engagementagreement.FieldSupplierSignedAt:
		return m.SupplierSignedAt()
	case engagementagreement.FieldExpiresAt:
		return m.ExpiresAt()
	case engagementagreement.FieldSqft:
		return m.Sqft()
	case engagementagreement.FieldBuyerRate:
		return m.BuyerRate()
	case engagementagreement.FieldSupplierRate:
		return m.SupplierRate()
	case engagementagreement.FieldMonthlyBuyerTotal:
		return m.MonthlyBuyerTotal()
	case engagementagreement.FieldMonthlySupplierPayout:
		return m.MonthlySupplierPayout()
	case engagementagreement.FieldExternalRef:
		return m.ExternalRef()
	case engagementagreement.FieldDocumentURL:
		return m.DocumentURL()
	case engagementagreement.FieldCreatedAt:
		return m.CreatedAt()
	case engagementagreement.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EngagementAgreementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case engagementagreement.FieldEngagementID:
		return m.OldEngagementID(ctx)
	case engagementagreement.FieldAgreementType:
		return m.OldAgreementType(ctx)
	case engagementagreement.FieldVersion:
		return m.OldVersion(ctx)
	case engagementagreement.FieldStatus:
		return m.OldStatus(ctx)
	case engagementagreement.FieldBuyerSignedAt:
		return m.OldBuyerSignedAt(ctx)
	case engagementagreement.FieldSupplierSignedAt:
		return m.OldSupplierSignedAt(ctx)
	case engagementagreement.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case engagementagreement.FieldSqft:
		return m.OldSqft(ctx)
	case engagementagreement.FieldBuyerRate:
		return m.OldBuyerRate(ctx)
	case engagementagreement.FieldSupplierRate:
		return m.OldSupplierRate(ctx)
	case engagementagreement.FieldMonthlyBuyerTotal:
		return m.OldMonthlyBuyerTotal(ctx)
	case engagementagreement.FieldMonthlySupplierPayout:
		return m.OldMonthlySupplierPayout(ctx)
	case engagementagreement.FieldExternalRef:
		return m.OldExternalRef(ctx)
	case engagementagreement.FieldDocumentURL:
		return m.OldDocumentURL(ctx)
	case engagementagreement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case engagementagreement.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EngagementAgreement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementAgreementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case engagementagreement.FieldEngagementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementID(v)
		return nil
	case engagementagreement.FieldAgreementType:
		v, ok := value.(engagementagreement.AgreementType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgreementType(v)
		return nil
	case engagementagreement.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case engagementagreement.FieldStatus:
		v, ok := value.(engagementagreement.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case engagementagreement.FieldBuyerSignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerSignedAt(v)
		return nil
	case engagementagreement.FieldSupplierSignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierSignedAt(v)
		return nil
	case engagementagreement.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case engagementagreement.FieldSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSqft(v)
		return nil
	case engagementagreement.FieldBuyerRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerRate(v)
		return nil
	case engagementagreement.FieldSupplierRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierRate(v)
		return nil
	case engagementagreement.FieldMonthlyBuyerTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyBuyerTotal(v)
		return nil
	case engagementagreement.FieldMonthlySupplierPayout:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlySupplierPayout(v)
		return nil
	case engagementagreement.FieldExternalRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalRef(v)
		return nil
	case engagementagreement.FieldDocumentURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentURL(v)
		return nil
	case engagementagreement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case engagementagreement.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EngagementAgreement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EngagementAgreementMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, engagementagreement.FieldVersion)
	}
	if m.addsqft != nil {
		fields = append(fields, engagementagreement.FieldSqft)
	}
	if m.addbuyer_rate != nil {
		fields = append(fields, engagementagreement.FieldBuyerRate)
	}
	if m.addsupplier_rate != nil {
		fields = append(fields, engagementagreement.FieldSupplierRate)
	}
	if m.addmonthly_buyer_total != nil {
		fields = append(fields, engagementagreement.FieldMonthlyBuyerTotal)
	}
	if m.addmonthly_supplier_payout != nil {
		fields = append(fields, engagementagreement.FieldMonthlySupplierPayout)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EngagementAgreementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case engagementagreement.FieldVersion:
		return m.AddedVersion()
	case engagementagreement.FieldSqft:
		return m.AddedSqft()
	case engagementagreement.FieldBuyerRate:
		return m.AddedBuyerRate()
	case engagementagreement.FieldSupplierRate:
		return m.AddedSupplierRate()
	case engagementagreement.FieldMonthlyBuyerTotal:
		return m.AddedMonthlyBuyerTotal()
	case engagementagreement.FieldMonthlySupplierPayout:
		return m.AddedMonthlySupplierPayout()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementAgreementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case engagementagreement.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case engagementagreement.FieldSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSqft(v)
		return nil
	case engagementagreement.FieldBuyerRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBuyerRate(v)
		return nil
	case engagementagreement.FieldSupplierRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSupplierRate(v)
		return nil
	case engagementagreement.FieldMonthlyBuyerTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlyBuyerTotal(v)
		return nil
	case engagementagreement.FieldMonthlySupplierPayout:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlySupplierPayout(v)
		return nil
	}
	return fmt.Errorf("unknown EngagementAgreement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EngagementAgreementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(engagementagreement.FieldBuyerSignedAt) {
		fields = append(fields, engagementagreement.FieldBuyerSignedAt)
	}
	if m.FieldCleared(engagementagreement.FieldSupplierSignedAt) {
		fields = append(fields, engagementagreement.FieldSupplierSignedAt)
	}
	if m.FieldCleared(engagementagreement.FieldExpiresAt) {
		fields = append(fields, engagementagreement.FieldExpiresAt)
	}
	if m.FieldCleared(engagementagreement.FieldSqft) {
		fields = append(fields, engagementagreement.FieldSqft)
	}
	if m.FieldCleared(engagementagreement.FieldBuyerRate) {
		fields = append(fields, engagementagreement.FieldBuyerRate)
	}
	if m.FieldCleared(engagementagreement.FieldSupplierRate) {
		fields = append(fields, engagementagreement.FieldSupplierRate)
	}
	if m.FieldCleared(engagementagreement.FieldMonthlyBuyerTotal) {
		fields = append(fields, engagementagreement.FieldMonthlyBuyerTotal)
	}
	if m.FieldCleared(engagementagreement.FieldMonthlySupplierPayout) {
		fields = append(fields, engagementagreement.FieldMonthlySupplierPayout)
	}
	if m.FieldCleared(engagementagreement.FieldExternalRef) {
		fields = append(fields, engagementagreement.FieldExternalRef)
	}
	if m.FieldCleared(engagementagreement.FieldDocumentURL) {
		fields = append(fields, engagementagreement.FieldDocumentURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EngagementAgreementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EngagementAgreementMutation) ClearField(name string) error {
	switch name {
	case engagementagreement.FieldBuyerSignedAt:
		m.ClearBuyerSignedAt()
		return nil
	case engagementagreement.FieldSupplierSignedAt:
		m.ClearSupplierSignedAt()
		return nil
	case engagementagreement.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case engagementagreement.FieldSqft:
		m.ClearSqft()
		return nil
	case engagementagreement.FieldBuyerRate:
		m.ClearBuyerRate()
		return nil
	case engagementagreement.FieldSupplierRate:
		m.ClearSupplierRate()
		return nil
	case engagementagreement.FieldMonthlyBuyerTotal:
		m.ClearMonthlyBuyerTotal()
		return nil
	case engagementagreement.FieldMonthlySupplierPayout:
		m.ClearMonthlySupplierPayout()
		return nil
	case engagementagreement.FieldExternalRef:
		m.ClearExternalRef()
		return nil
	case engagementagreement.FieldDocumentURL:
		m.ClearDocumentURL()
		return nil
	}
	return fmt.Errorf("unknown EngagementAgreement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EngagementAgreementMutation) ResetField(name string) error {
	switch name {
	case engagementagreement.FieldEngagementID:
		m.ResetEngagementID()
		return nil
	case engagementagreement.FieldAgreementType:
		m.ResetAgreementType()
		return nil
	case engagementagreement.FieldVersion:
		m.ResetVersion()
		return nil
	case engagementagreement.FieldStatus:
		m.ResetStatus()
		return nil
	case engagementagreement.FieldBuyerSignedAt:
		m.ResetBuyerSignedAt()
		return nil
	case engagementagreement.FieldSupplierSignedAt:
		m.ResetSupplierSignedAt()
		return nil
	case engagementagreement.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case engagementagreement.FieldSqft:
		m.ResetSqft()
		return nil
	case engagementagreement.FieldBuyerRate:
		m.ResetBuyerRate()
		return nil
	case engagementagreement.FieldSupplierRate:
		m.ResetSupplierRate()
		return nil
	case engagementagreement.FieldMonthlyBuyerTotal:
		m.ResetMonthlyBuyerTotal()
		return nil
	case engagementagreement.FieldMonthlySupplierPayout:
		m.ResetMonthlySupplierPayout()
		return nil
	case engagementagreement.FieldExternalRef:
		m.ResetExternalRef()
		return nil
	case engagementagreement.FieldDocumentURL:
		m.ResetDocumentURL()
		return nil
	case engagementagreement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case engagementagreement.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EngagementAgreement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EngagementAgreementMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.engagement != nil {
		edges = append(edges, engagementagreement.EdgeEngagement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EngagementAgreementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case engagementagreement.EdgeEngagement:
		if id := m.engagement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EngagementAgreementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EngagementAgreementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EngagementAgreementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedengagement {
		edges = append(edges, engagementagreement.EdgeEngagement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EngagementAgreementMutation) EdgeCleared(name string) bool {
	switch name {
	case engagementagreement.EdgeEngagement:
		return m.clearedengagement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EngagementAgreementMutation) ClearEdge(name string) error {
	switch name {
	case engagementagreement.EdgeEngagement:
		m.ClearEngagement()
		return nil
	}
	return fmt.Errorf("unknown EngagementAgreement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EngagementAgreementMutation) ResetEdge(name string) error {
	switch name {
	case engagementagreement.EdgeEngagement:
		m.ResetEngagement()
		return nil
	}
	return fmt.Errorf("unknown EngagementAgreement edge %s", name)
}

// EngagementEventMutation represents an operation that mutates the EngagementEvent nodes in the graph.
type EngagementEventMutation struct {
	config
	op                Op
	typ               string
	id                *string
	event_type        *string
	actor_role        *engagementevent.ActorRole
	actor_id          *string
	from_status       *string
	to_status         *string
	metadata          *map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	engagement        *string
	clearedengagement bool
	done              bool
	oldValue          func(context.Context) (*EngagementEvent, error)
	predicates        []predicate.EngagementEvent
}

var _ ent.Mutation = (*EngagementEventMutation)(nil)

// engagementeventOption allows management of the mutation configuration using functional options.
type engagementeventOption func(*EngagementEventMutation)

// newEngagementEventMutation creates new mutation for the EngagementEvent entity.
func newEngagementEventMutation(c config, op Op, opts ...engagementeventOption) *EngagementEventMutation {
	m := &EngagementEventMutation{
		config:        c,
		op:            op,
		typ:           TypeEngagementEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEngagementEventID sets the ID field of the mutation.
func withEngagementEventID(id string) engagementeventOption {
	return func(m *EngagementEventMutation) {
		var (
			err   error
			once  sync.Once
			value *EngagementEvent
		)
		m.oldValue = func(ctx context.Context) (*EngagementEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EngagementEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEngagementEvent sets the old EngagementEvent of the mutation.
func withEngagementEvent(node *EngagementEvent) engagementeventOption {
	return func(m *EngagementEventMutation) {
		m.oldValue = func(context.Context) (*EngagementEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EngagementEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EngagementEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EngagementEvent entities.
func (m *EngagementEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EngagementEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EngagementEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EngagementEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEngagementID sets the "engagement_id" field.
func (m *EngagementEventMutation) SetEngagementID(s string) {
	m.engagement = &s
}

// EngagementID returns the value of the "engagement_id" field in the mutation.
func (m *EngagementEventMutation) EngagementID() (r string, exists bool) {
	v := m.engagement
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementID returns the old "engagement_id" field's value of the EngagementEvent entity.
// If the EngagementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementEventMutation) OldEngagementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementID: %w", err)
	}
	return oldValue.EngagementID, nil
}

// ResetEngagementID resets all changes to the "engagement_id" field.
func (m *EngagementEventMutation) ResetEngagementID() {
	m.engagement = nil
}

// SetEventType sets the "event_type" field.
func (m *EngagementEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EngagementEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the EngagementEvent entity.
// If the EngagementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EngagementEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetActorRole sets the "actor_role" field.
func (m *EngagementEventMutation) SetActorRole(er engagementevent.ActorRole) {
	m.actor_role = &er
}

// ActorRole returns the value of the "actor_role" field in the mutation.
func (m *EngagementEventMutation) ActorRole() (r engagementevent.ActorRole, exists bool) {
	v := m.actor_role
	if v == nil {
		return
	}
	return *v, true
}

// OldActorRole returns the old "actor_role" field's value of the EngagementEvent entity.
// If the EngagementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementEventMutation) OldActorRole(ctx context.Context) (v engagementevent.ActorRole, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorRole: %w", err)
	}
	return oldValue.ActorRole, nil
}

// ResetActorRole resets all changes to the "actor_role" field.
func (m *EngagementEventMutation) ResetActorRole() {
	m.actor_role = nil
}

// SetActorID sets the "actor_id" field.
func (m *EngagementEventMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *EngagementEventMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the EngagementEvent entity.
// If the EngagementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementEventMutation) OldActorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ClearActorID clears the value of the "actor_id" field.
func (m *EngagementEventMutation) ClearActorID() {
	m.actor_id = nil
	m.clearedFields[engagementevent.FieldActorID] = struct{}{}
}

// ActorIDCleared returns if the "actor_id" field was cleared in this mutation.
func (m *EngagementEventMutation) ActorIDCleared() bool {
	_, ok := m.clearedFields[engagementevent.FieldActorID]
	return ok
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *EngagementEventMutation) ResetActorID() {
	m.actor_id = nil
	delete(m.clearedFields, engagementevent.FieldActorID)
}

// SetFromStatus sets the "from_status" field.
func (m *EngagementEventMutation) SetFromStatus(s string) {
	m.from_status = &s
}

// FromStatus returns the value of the "from_status" field in the mutation.
func (m *EngagementEventMutation) FromStatus() (r string, exists bool) {
	v := m.from_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFromStatus returns the old "from_status" field's value of the EngagementEvent entity.
// If the EngagementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementEventMutation) OldFromStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromStatus: %w", err)
	}
	return oldValue.FromStatus, nil
}

// ClearFromStatus clears the value of the "from_status" field.
func (m *EngagementEventMutation) ClearFromStatus() {
	m.from_status = nil
	m.clearedFields[engagementevent.FieldFromStatus] = struct{}{}
}

// FromStatusCleared returns if the "from_status" field was cleared in this mutation.
func (m *EngagementEventMutation) FromStatusCleared() bool {
	_, ok := m.clearedFields[engagementevent.FieldFromStatus]
	return ok
}

// ResetFromStatus resets all changes to the "from_status" field.
func (m *EngagementEventMutation) ResetFromStatus() {
	m.from_status = nil
	delete(m.clearedFields, engagementevent.FieldFromStatus)
}

// SetToStatus sets the "to_status" field.
func (m *EngagementEventMutation) SetToStatus(s string) {
	m.to_status = &s
}

// ToStatus returns the value of the "to_status" field in the mutation.
func (m *EngagementEventMutation) ToStatus() (r string, exists bool) {
	v := m.to_status
	if v == nil {
		return
	}
	return *v, true
}

// OldToStatus returns the old "to_status" field's value of the EngagementEvent entity.
// If the EngagementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementEventMutation) OldToStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToStatus: %w", err)
	}
	return oldValue.ToStatus, nil
}

// ClearToStatus clears the value of the "to_status" field.
func (m *EngagementEventMutation) ClearToStatus() {
	m.to_status = nil
	m.clearedFields[engagementevent.FieldToStatus] = struct{}{}
}

// ToStatusCleared returns if the "to_status" field was cleared in this mutation.
func (m *EngagementEventMutation) ToStatusCleared() bool {
	_, ok := m.clearedFields[engagementevent.FieldToStatus]
	return ok
}

// ResetToStatus resets all changes to the "to_status" field.
func (m *EngagementEventMutation) ResetToStatus() {
	m.to_status = nil
	delete(m.clearedFields, engagementevent.FieldToStatus)
}

// SetMetadata sets the "metadata" field.
func (m *EngagementEventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EngagementEventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the EngagementEvent entity.
// If the EngagementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementEventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *EngagementEventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[engagementevent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *EngagementEventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[engagementevent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EngagementEventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, engagementevent.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *EngagementEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EngagementEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EngagementEvent entity.
// If the EngagementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EngagementEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEngagement clears the "engagement" edge to the Engagement entity.
func (m *EngagementEventMutation) ClearEngagement() {
	m.clearedengagement = true
	m.clearedFields[engagementevent.FieldEngagementID] = struct{}{}
}

// EngagementCleared reports if the "engagement" edge to the Engagement entity was cleared.
func (m *EngagementEventMutation) EngagementCleared() bool {
	return m.clearedengagement
}

// EngagementIDs returns the "engagement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EngagementID instead. It exists only for internal usage by the builders.
func (m *EngagementEventMutation) EngagementIDs() (ids []string) {
	if id := m.engagement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEngagement resets all changes to the "engagement" edge.
func (m *EngagementEventMutation) ResetEngagement() {
	m.engagement = nil
	m.clearedengagement = false
}

// Where appends a list predicates to the EngagementEventMutation builder.
func (m *EngagementEventMutation) Where(ps ...predicate.EngagementEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EngagementEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EngagementEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EngagementEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EngagementEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EngagementEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EngagementEvent).
func (m *EngagementEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EngagementEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.engagement != nil {
		fields = append(fields, engagementevent.FieldEngagementID)
	}
	if m.event_type != nil {
		fields = append(fields, engagementevent.FieldEventType)
	}
	if m.actor_role != nil {
		fields = append(fields, engagementevent.FieldActorRole)
	}
	if m.actor_id != nil {
		fields = append(fields, engagementevent.FieldActorID)
	}
	if m.from_status != nil {
		fields = append(fields, engagementevent.FieldFromStatus)
	}
	if m.to_status != nil {
		fields = append(fields, engagementevent.FieldToStatus)
	}
	if m.metadata != nil {
		fields = append(fields, engagementevent.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, engagementevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EngagementEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case engagementevent.FieldEngagementID:
		return m.EngagementID()
	case engagementevent.FieldEventType:
		return m.EventType()
	case engagementevent.FieldActorRole:
		return m.ActorRole()
	case engagementevent.FieldActorID:
		return m.ActorID()
	case engagementevent.FieldFromStatus:
		return m.FromStatus()
	case engagementevent.FieldToStatus:
		return m.ToStatus()
	case engagementevent.FieldMetadata:
		return m.Metadata()
	case engagementevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EngagementEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case engagementevent.FieldEngagementID:
		return m.OldEngagementID(ctx)
	case engagementevent.FieldEventType:
		return m.OldEventType(ctx)
	case engagementevent.FieldActorRole:
		return m.OldActorRole(ctx)
	case engagementevent.FieldActorID:
		return m.OldActorID(ctx)
	case engagementevent.FieldFromStatus:
		return m.OldFromStatus(ctx)
	case engagementevent.FieldToStatus:
		return m.OldToStatus(ctx)
	case engagementevent.FieldMetadata:
		return m.OldMetadata(ctx)
	case engagementevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EngagementEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case engagementevent.FieldEngagementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementID(v)
		return nil
	case engagementevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case engagementevent.FieldActorRole:
		v, ok := value.(engagementevent.ActorRole)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorRole(v)
		return nil
	case engagementevent.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case engagementevent.FieldFromStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromStatus(v)
		return nil
	case engagementevent.FieldToStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToStatus(v)
		return nil
	case engagementevent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case engagementevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EngagementEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EngagementEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EngagementEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EngagementEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EngagementEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(engagementevent.FieldActorID) {
		fields = append(fields, engagementevent.FieldActorID)
	}
	if m.FieldCleared(engagementevent.FieldFromStatus) {
		fields = append(fields, engagementevent.FieldFromStatus)
	}
	if m.FieldCleared(engagementevent.FieldToStatus) {
		fields = append(fields, engagementevent.FieldToStatus)
	}
	if m.FieldCleared(engagementevent.FieldMetadata) {
		fields = append(fields, engagementevent.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EngagementEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EngagementEventMutation) ClearField(name string) error {
	switch name {
	case engagementevent.FieldActorID:
		m.ClearActorID()
		return nil
	case engagementevent.FieldFromStatus:
		m.ClearFromStatus()
		return nil
	case engagementevent.FieldToStatus:
		m.ClearToStatus()
		return nil
	case engagementevent.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown EngagementEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EngagementEventMutation) ResetField(name string) error {
	switch name {
	case engagementevent.FieldEngagementID:
		m.ResetEngagementID()
		return nil
	case engagementevent.FieldEventType:
		m.ResetEventType()
		return nil
	case engagementevent.FieldActorRole:
		m.ResetActorRole()
		return nil
	case engagementevent.FieldActorID:
		m.ResetActorID()
		return nil
	case engagementevent.FieldFromStatus:
		m.ResetFromStatus()
		return nil
	case engagementevent.FieldToStatus:
		m.ResetToStatus()
		return nil
	case engagementevent.FieldMetadata:
		m.ResetMetadata()
		return nil
	case engagementevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EngagementEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EngagementEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.engagement != nil {
		edges = append(edges, engagementevent.EdgeEngagement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EngagementEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case engagementevent.EdgeEngagement:
		if id := m.engagement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EngagementEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EngagementEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EngagementEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedengagement {
		edges = append(edges, engagementevent.EdgeEngagement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EngagementEventMutation) EdgeCleared(name string) bool {
	switch name {
	case engagementevent.EdgeEngagement:
		return m.clearedengagement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EngagementEventMutation) ClearEdge(name string) error {
	switch name {
	case engagementevent.EdgeEngagement:
		m.ClearEngagement()
		return nil
	}
	return fmt.Errorf("unknown EngagementEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EngagementEventMutation) ResetEdge(name string) error {
	switch name {
	case engagementevent.EdgeEngagement:
		m.ResetEngagement()
		return nil
	}
	return fmt.Errorf("unknown EngagementEvent edge %s", name)
}

// InboundMessageMutation represents an operation that mutates the InboundMessage nodes in the graph.
type InboundMessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	phone               *string
	body                *string
	provider_ref        *string
	status              *inboundmessage.Status
	attempts            *int
	addattempts         *int
	claimed_by          *string
	claimed_at          *time.Time
	heartbeat_at        *time.Time
	completed_at        *time.Time
	failure_reason      *string
	received_at         *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*InboundMessage, error)
	predicates          []predicate.InboundMessage
}

var _ ent.Mutation = (*InboundMessageMutation)(nil)

// inboundmessageOption allows management of the mutation configuration using functional options.
type inboundmessageOption func(*InboundMessageMutation)

// newInboundMessageMutation creates new mutation for the InboundMessage entity.
func newInboundMessageMutation(c config, op Op, opts ...inboundmessageOption) *InboundMessageMutation {
	m := &InboundMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeInboundMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInboundMessageID sets the ID field of the mutation.
func withInboundMessageID(id string) inboundmessageOption {
	return func(m *InboundMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *InboundMessage
		)
		m.oldValue = func(ctx context.Context) (*InboundMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InboundMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInboundMessage sets the old InboundMessage of the mutation.
func withInboundMessage(node *InboundMessage) inboundmessageOption {
	return func(m *InboundMessageMutation) {
		m.oldValue = func(context.Context) (*InboundMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InboundMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InboundMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InboundMessage entities.
func (m *InboundMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InboundMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InboundMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InboundMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *InboundMessageMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *InboundMessageMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the InboundMessage entity.
// If the InboundMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundMessageMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *InboundMessageMutation) ResetConversationID() {
	m.conversation = nil
}

// SetPhone sets the "phone" field.
func (m *InboundMessageMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *InboundMessageMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the InboundMessage entity.
// If the InboundMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundMessageMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *InboundMessageMutation) ResetPhone() {
	m.phone = nil
}

// SetBody sets the "body" field.
func (m *InboundMessageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *InboundMessageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the InboundMessage entity.
// If the InboundMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundMessageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *InboundMessageMutation) ResetBody() {
	m.body = nil
}

// SetProviderRef sets the "provider_ref" field.
func (m *InboundMessageMutation) SetProviderRef(s string) {
	m.provider_ref = &s
}

// ProviderRef returns the value of the "provider_ref" field in the mutation.
func (m *InboundMessageMutation) ProviderRef() (r string, exists bool) {
	v := m.provider_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderRef returns the old "provider_ref" field's value of the InboundMessage entity.
// If the InboundMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundMessageMutation) OldProviderRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderRef: %w", err)
	}
	return oldValue.ProviderRef, nil
}

// ClearProviderRef clears the value of the "provider_ref" field.
func (m *InboundMessageMutation) ClearProviderRef() {
	m.provider_ref = nil
	m.clearedFields[inboundmessage.FieldProviderRef] = struct{}{}
}

// ProviderRefCleared returns if the "provider_ref" field was cleared in this mutation.
func (m *InboundMessageMutation) ProviderRefCleared() bool {
	_, ok := m.clearedFields[inboundmessage.FieldProviderRef]
	return ok
}

// ResetProviderRef resets all changes to the "provider_ref" field.
func (m *InboundMessageMutation) ResetProviderRef() {
	m.provider_ref = nil
	delete(m.clearedFields, inboundmessage.FieldProviderRef)
}

// SetStatus sets the "status" field.
func (m *InboundMessageMutation) SetStatus(i inboundmessage.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InboundMessageMutation) Status() (r inboundmessage.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InboundMessage entity.
// If the InboundMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundMessageMutation) OldStatus(ctx context.Context) (v inboundmessage.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InboundMessageMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *InboundMessageMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *InboundMessageMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the InboundMessage entity.
// If the InboundMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundMessageMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *InboundMessageMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *InboundMessageMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *InboundMessageMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetClaimedBy sets the "claimed_by" field.
func (m *InboundMessageMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *InboundMessageMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the InboundMessage entity.
// If the InboundMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundMessageMutation) OldClaimedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *InboundMessageMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[inboundmessage.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *InboundMessageMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[inboundmessage.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *InboundMessageMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, inboundmessage.FieldClaimedBy)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *InboundMessageMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *InboundMessageMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the InboundMessage entity.
// If the InboundMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundMessageMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *InboundMessageMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[inboundmessage.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *InboundMessageMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[inboundmessage.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *InboundMessageMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, inboundmessage.FieldClaimedAt)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *InboundMessageMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *InboundMessageMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the InboundMessage entity.
// If the InboundMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundMessageMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *InboundMessageMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[inboundmessage.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *InboundMessageMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[inboundmessage.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *InboundMessageMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, inboundmessage.FieldHeartbeatAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *InboundMessageMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *InboundMessageMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the InboundMessage entity.
// If the InboundMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundMessageMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *InboundMessageMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[inboundmessage.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *InboundMessageMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[inboundmessage.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *InboundMessageMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, inboundmessage.FieldCompletedAt)
}

// SetFailureReason sets the "failure_reason" field.
func (m *InboundMessageMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *InboundMessageMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the InboundMessage entity.
// If the InboundMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundMessageMutation) OldFailureReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *InboundMessageMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[inboundmessage.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *InboundMessageMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[inboundmessage.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *InboundMessageMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, inboundmessage.FieldFailureReason)
}

// SetReceivedAt sets the "received_at" field.
func (m *InboundMessageMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *InboundMessageMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the InboundMessage entity.
// If the InboundMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundMessageMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *InboundMessageMutation) ResetReceivedAt() {
	m.received_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *InboundMessageMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[inboundmessage.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *InboundMessageMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *InboundMessageMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *InboundMessageMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the InboundMessageMutation builder.
func (m *InboundMessageMutation) Where(ps ...predicate.InboundMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InboundMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InboundMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InboundMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InboundMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InboundMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InboundMessage).
func (m *InboundMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InboundMessageMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.conversation != nil {
		fields = append(fields, inboundmessage.FieldConversationID)
	}
	if m.phone != nil {
		fields = append(fields, inboundmessage.FieldPhone)
	}
	if m.body != nil {
		fields = append(fields, inboundmessage.FieldBody)
	}
	if m.provider_ref != nil {
		fields = append(fields, inboundmessage.FieldProviderRef)
	}
	if m.status != nil {
		fields = append(fields, inboundmessage.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, inboundmessage.FieldAttempts)
	}
	if m.claimed_by != nil {
		fields = append(fields, inboundmessage.FieldClaimedBy)
	}
	if m.claimed_at != nil {
		fields = append(fields, inboundmessage.FieldClaimedAt)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, inboundmessage.FieldHeartbeatAt)
	}
	if m.completed_at != nil {
		fields = append(fields, inboundmessage.FieldCompletedAt)
	}
	if m.failure_reason != nil {
		fields = append(fields, inboundmessage.FieldFailureReason)
	}
	if m.received_at != nil {
		fields = append(fields, inboundmessage.FieldReceivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InboundMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inboundmessage.FieldConversationID:
		return m.ConversationID()
	case inboundmessage.FieldPhone:
		return m.Phone()
	case inboundmessage.FieldBody:
		return m.Body()
	case inboundmessage.FieldProviderRef:
		return m.ProviderRef()
	case inboundmessage.FieldStatus:
		return m.Status()
	case inboundmessage.FieldAttempts:
		return m.Attempts()
	case inboundmessage.FieldClaimedBy:
		return m.ClaimedBy()
	case inboundmessage.FieldClaimedAt:
		return m.ClaimedAt()
	case inboundmessage.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case inboundmessage.FieldCompletedAt:
		return m.CompletedAt()
	case inboundmessage.FieldFailureReason:
		return m.FailureReason()
	case inboundmessage.FieldReceivedAt:
		return m.ReceivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InboundMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inboundmessage.FieldConversationID:
		return m.OldConversationID(ctx)
	case inboundmessage.FieldPhone:
		return m.OldPhone(ctx)
	case inboundmessage.FieldBody:
		return m.OldBody(ctx)
	case inboundmessage.FieldProviderRef:
		return m.OldProviderRef(ctx)
	case inboundmessage.FieldStatus:
		return m.OldStatus(ctx)
	case inboundmessage.FieldAttempts:
		return m.OldAttempts(ctx)
	case inboundmessage.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case inboundmessage.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case inboundmessage.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case inboundmessage.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case inboundmessage.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case inboundmessage.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InboundMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboundMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inboundmessage.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case inboundmessage.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case inboundmessage.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case inboundmessage.FieldProviderRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderRef(v)
		return nil
	case inboundmessage.FieldStatus:
		v, ok := value.(inboundmessage.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case inboundmessage.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case inboundmessage.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case inboundmessage.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case inboundmessage.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case inboundmessage.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case inboundmessage.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case inboundmessage.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InboundMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InboundMessageMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, inboundmessage.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InboundMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case inboundmessage.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboundMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case inboundmessage.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown InboundMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InboundMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(inboundmessage.FieldProviderRef) {
		fields = append(fields, inboundmessage.FieldProviderRef)
	}
	if m.FieldCleared(inboundmessage.FieldClaimedBy) {
		fields = append(fields, inboundmessage.FieldClaimedBy)
	}
	if m.FieldCleared(inboundmessage.FieldClaimedAt) {
		fields = append(fields, inboundmessage.FieldClaimedAt)
	}
	if m.FieldCleared(inboundmessage.FieldHeartbeatAt) {
		fields = append(fields, inboundmessage.FieldHeartbeatAt)
	}
	if m.FieldCleared(inboundmessage.FieldCompletedAt) {
		fields = append(fields, inboundmessage.FieldCompletedAt)
	}
	if m.FieldCleared(inboundmessage.FieldFailureReason) {
		fields = append(fields, inboundmessage.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InboundMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InboundMessageMutation) ClearField(name string) error {
	switch name {
	case inboundmessage.FieldProviderRef:
		m.ClearProviderRef()
		return nil
	case inboundmessage.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case inboundmessage.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case inboundmessage.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	case inboundmessage.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case inboundmessage.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown InboundMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InboundMessageMutation) ResetField(name string) error {
	switch name {
	case inboundmessage.FieldConversationID:
		m.ResetConversationID()
		return nil
	case inboundmessage.FieldPhone:
		m.ResetPhone()
		return nil
	case inboundmessage.FieldBody:
		m.ResetBody()
		return nil
	case inboundmessage.FieldProviderRef:
		m.ResetProviderRef()
		return nil
	case inboundmessage.FieldStatus:
		m.ResetStatus()
		return nil
	case inboundmessage.FieldAttempts:
		m.ResetAttempts()
		return nil
	case inboundmessage.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case inboundmessage.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case inboundmessage.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case inboundmessage.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case inboundmessage.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case inboundmessage.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	}
	return fmt.Errorf("unknown InboundMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InboundMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, inboundmessage.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InboundMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case inboundmessage.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InboundMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InboundMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InboundMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, inboundmessage.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InboundMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case inboundmessage.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InboundMessageMutation) ClearEdge(name string) error {
	switch name {
	case inboundmessage.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown InboundMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InboundMessageMutation) ResetEdge(name string) error {
	switch name {
	case inboundmessage.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown InboundMessage edge %s", name)
}

// InstantBookScoreMutation represents an operation that mutates the InstantBookScore nodes in the graph.
type InstantBookScoreMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	truth_core_completeness    *float64
	addtruth_core_completeness *float64
	contextual_memory_depth    *float64
	addcontextual_memory_depth *float64
	supplier_trust_level       *float64
	addsupplier_trust_level    *float64
	match_specificity          *float64
	addmatch_specificity       *float64
	feature_alignment          *float64
	addfeature_alignment       *float64
	total                      *float64
	addtotal                   *float64
	created_at                 *time.Time
	clearedFields              map[string]struct{}
	match                      *string
	clearedmatch               bool
	done                       bool
	oldValue                   func(context.Context) (*InstantBookScore, error)
	predicates                 []predicate.InstantBookScore
}

var _ ent.Mutation = (*InstantBookScoreMutation)(nil)

// instantbookscoreOption allows management of the mutation configuration using functional options.
type instantbookscoreOption func(*InstantBookScoreMutation)

// newInstantBookScoreMutation creates new mutation for the InstantBookScore entity.
func newInstantBookScoreMutation(c config, op Op, opts ...instantbookscoreOption) *InstantBookScoreMutation {
	m := &InstantBookScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeInstantBookScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInstantBookScoreID sets the ID field of the mutation.
func withInstantBookScoreID(id string) instantbookscoreOption {
	return func(m *InstantBookScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *InstantBookScore
		)
		m.oldValue = func(ctx context.Context) (*InstantBookScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InstantBookScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInstantBookScore sets the old InstantBookScore of the mutation.
func withInstantBookScore(node *InstantBookScore) instantbookscoreOption {
	return func(m *InstantBookScoreMutation) {
		m.oldValue = func(context.Context) (*InstantBookScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InstantBookScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InstantBookScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InstantBookScore entities.
func (m *InstantBookScoreMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InstantBookScoreMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InstantBookScoreMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InstantBookScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMatchID sets the "match_id" field.
func (m *InstantBookScoreMutation) SetMatchID(s string) {
	m.match = &s
}

// MatchID returns the value of the "match_id" field in the mutation.
func (m *InstantBookScoreMutation) MatchID() (r string, exists bool) {
	v := m.match
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchID returns the old "match_id" field's value of the InstantBookScore entity.
// If the InstantBookScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstantBookScoreMutation) OldMatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchID: %w", err)
	}
	return oldValue.MatchID, nil
}

// ResetMatchID resets all changes to the "match_id" field.
func (m *InstantBookScoreMutation) ResetMatchID() {
	m.match = nil
}

// SetTruthCoreCompleteness sets the "truth_core_completeness" field.
func (m *InstantBookScoreMutation) SetTruthCoreCompleteness(f float64) {
	m.truth_core_completeness = &f
	m.addtruth_core_completeness = nil
}

// TruthCoreCompleteness returns the value of the "truth_core_completeness" field in the mutation.
func (m *InstantBookScoreMutation) TruthCoreCompleteness() (r float64, exists bool) {
	v := m.truth_core_completeness
	if v == nil {
		return
	}
	return *v, true
}

// OldTruthCoreCompleteness returns the old "truth_core_completeness" field's value of the InstantBookScore entity.
// If the InstantBookScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstantBookScoreMutation) OldTruthCoreCompleteness(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTruthCoreCompleteness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTruthCoreCompleteness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTruthCoreCompleteness: %w", err)
	}
	return oldValue.TruthCoreCompleteness, nil
}

// AddTruthCoreCompleteness adds f to the "truth_core_completeness" field.
func (m *InstantBookScoreMutation) AddTruthCoreCompleteness(f float64) {
	if m.addtruth_core_completeness != nil {
		*m.addtruth_core_completeness += f
	} else {
		m.addtruth_core_completeness = &f
	}
}

// AddedTruthCoreCompleteness returns the value that was added to the "truth_core_completeness" field in this mutation.
func (m *InstantBookScoreMutation) AddedTruthCoreCompleteness() (r float64, exists bool) {
	v := m.addtruth_core_completeness
	if v == nil {
		return
	}
	return *v, true
}

// ResetTruthCoreCompleteness resets all changes to the "truth_core_completeness" field.
func (m *InstantBookScoreMutation) ResetTruthCoreCompleteness() {
	m.truth_core_completeness = nil
	m.addtruth_core_completeness = nil
}

// SetContextualMemoryDepth sets the "contextual_memory_depth" field.
func (m *InstantBookScoreMutation) SetContextualMemoryDepth(f float64) {
	m.contextual_memory_depth = &f
	m.addcontextual_memory_depth = nil
}

// ContextualMemoryDepth returns the value of the "contextual_memory_depth" field in the mutation.
func (m *InstantBookScoreMutation) ContextualMemoryDepth() (r float64, exists bool) {
	v := m.contextual_memory_depth
	if v == nil {
		return
	}
	return *v, true
}

// OldContextualMemoryDepth returns the old "contextual_memory_depth" field's value of the InstantBookScore entity.
// If the InstantBookScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstantBookScoreMutation) OldContextualMemoryDepth(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextualMemoryDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextualMemoryDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextualMemoryDepth: %w", err)
	}
	return oldValue.ContextualMemoryDepth, nil
}

// AddContextualMemoryDepth adds f to the "contextual_memory_depth" field.
func (m *InstantBookScoreMutation) AddContextualMemoryDepth(f float64) {
	if m.addcontextual_memory_depth != nil {
		*m.addcontextual_memory_depth += f
	} else {
		m.addcontextual_memory_depth = &f
	}
}

// AddedContextualMemoryDepth returns the value that was added to the "contextual_memory_depth" field in this mutation.
func (m *InstantBookScoreMutation) AddedContextualMemoryDepth() (r float64, exists bool) {
	v := m.addcontextual_memory_depth
	if v == nil {
		return
	}
	return *v, true
}

// ResetContextualMemoryDepth resets all changes to the "contextual_memory_depth" field.
func (m *InstantBookScoreMutation) ResetContextualMemoryDepth() {
	m.contextual_memory_depth = nil
	m.addcontextual_memory_depth = nil
}

// SetSupplierTrustLevel sets the "supplier_trust_level" field.
func (m *InstantBookScoreMutation) SetSupplierTrustLevel(f float64) {
	m.supplier_trust_level = &f
	m.addsupplier_trust_level = nil
}

// SupplierTrustLevel returns the value of the "supplier_trust_level" field in the mutation.
func (m *InstantBookScoreMutation) SupplierTrustLevel() (r float64, exists bool) {
	v := m.supplier_trust_level
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierTrustLevel returns the old "supplier_trust_level" field's value of the InstantBookScore entity.
// If the InstantBookScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstantBookScoreMutation) OldSupplierTrustLevel(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierTrustLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierTrustLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierTrustLevel: %w", err)
	}
	return oldValue.SupplierTrustLevel, nil
}

// AddSupplierTrustLevel adds f to the "supplier_trust_level" field.
func (m *InstantBookScoreMutation) AddSupplierTrustLevel(f float64) {
	if m.addsupplier_trust_level != nil {
		*m.addsupplier_trust_level += f
	} else {
		m.addsupplier_trust_level = &f
	}
}

// AddedSupplierTrustLevel returns the value that was added to the "supplier_trust_level" field in this mutation.
func (m *InstantBookScoreMutation) AddedSupplierTrustLevel() (r float64, exists bool) {
	v := m.addsupplier_trust_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetSupplierTrustLevel resets all changes to the "supplier_trust_level" field.
func (m *InstantBookScoreMutation) ResetSupplierTrustLevel() {
	m.supplier_trust_level = nil
	m.addsupplier_trust_level = nil
}

// SetMatchSpecificity sets the "match_specificity" field.
func (m *InstantBookScoreMutation) SetMatchSpecificity(f float64) {
	m.match_specificity = &f
	m.addmatch_specificity = nil
}

// MatchSpecificity returns the value of the "match_specificity" field in the mutation.
func (m *InstantBookScoreMutation) MatchSpecificity() (r float64, exists bool) {
	v := m.match_specificity
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchSpecificity returns the old "match_specificity" field's value of the InstantBookScore entity.
// If the InstantBookScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstantBookScoreMutation) OldMatchSpecificity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchSpecificity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchSpecificity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchSpecificity: %w", err)
	}
	return oldValue.MatchSpecificity, nil
}

// AddMatchSpecificity adds f to the "match_specificity" field.
func (m *InstantBookScoreMutation) AddMatchSpecificity(f float64) {
	if m.addmatch_specificity != nil {
		*m.addmatch_specificity += f
	} else {
		m.addmatch_specificity = &f
	}
}

// AddedMatchSpecificity returns the value that was added to the "match_specificity" field in this mutation.
func (m *InstantBookScoreMutation) AddedMatchSpecificity() (r float64, exists bool) {
	v := m.addmatch_specificity
	if v == nil {
		return
	}
	return *v, true
}

// ResetMatchSpecificity resets all changes to the "match_specificity" field.
func (m *InstantBookScoreMutation) ResetMatchSpecificity() {
	m.match_specificity = nil
	m.addmatch_specificity = nil
}

// SetFeatureAlignment sets the "feature_alignment" field.
func (m *InstantBookScoreMutation) SetFeatureAlignment(f float64) {
	m.feature_alignment = &f
	m.addfeature_alignment = nil
}

// FeatureAlignment returns the value of the "feature_alignment" field in the mutation.
func (m *InstantBookScoreMutation) FeatureAlignment() (r float64, exists bool) {
	v := m.feature_alignment
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureAlignment returns the old "feature_alignment" field's value of the InstantBookScore entity.
// If the InstantBookScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstantBookScoreMutation) OldFeatureAlignment(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureAlignment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureAlignment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureAlignment: %w", err)
	}
	return oldValue.FeatureAlignment, nil
}

// AddFeatureAlignment adds f to the "feature_alignment" field.
func (m *InstantBookScoreMutation) AddFeatureAlignment(f float64) {
	if m.addfeature_alignment != nil {
		*m.addfeature_alignment += f
	} else {
		m.addfeature_alignment = &f
	}
}

// AddedFeatureAlignment returns the value that was added to the "feature_alignment" field in this mutation.
func (m *InstantBookScoreMutation) AddedFeatureAlignment() (r float64, exists bool) {
	v := m.addfeature_alignment
	if v == nil {
		return
	}
	return *v, true
}

// ResetFeatureAlignment resets all changes to the "feature_alignment" field.
func (m *InstantBookScoreMutation) ResetFeatureAlignment() {
	m.feature_alignment = nil
	m.addfeature_alignment = nil
}

// SetTotal sets the "total" field.
func (m *InstantBookScoreMutation) SetTotal(f float64) {
	m.total = &f
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *InstantBookScoreMutation) Total() (r float64, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the InstantBookScore entity.
// If the InstantBookScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstantBookScoreMutation) OldTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds f to the "total" field.
func (m *InstantBookScoreMutation) AddTotal(f float64) {
	if m.addtotal != nil {
		*m.addtotal += f
	} else {
		m.addtotal = &f
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *InstantBookScoreMutation) AddedTotal() (r float64, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *InstantBookScoreMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InstantBookScoreMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InstantBookScoreMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InstantBookScore entity.
// If the InstantBookScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstantBookScoreMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InstantBookScoreMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMatch clears the "match" edge to the Match entity.
func (m *InstantBookScoreMutation) ClearMatch() {
	m.clearedmatch = true
	m.clearedFields[instantbookscore.FieldMatchID] = struct{}{}
}

// MatchCleared reports if the "match" edge to the Match entity was cleared.
func (m *InstantBookScoreMutation) MatchCleared() bool {
	return m.clearedmatch
}

// MatchIDs returns the "match" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MatchID instead. It exists only for internal usage by the builders.
func (m *InstantBookScoreMutation) MatchIDs() (ids []string) {
	if id := m.match; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMatch resets all changes to the "match" edge.
func (m *InstantBookScoreMutation) ResetMatch() {
	m.match = nil
	m.clearedmatch = false
}

// Where appends a list predicates to the InstantBookScoreMutation builder.
func (m *InstantBookScoreMutation) Where(ps ...predicate.InstantBookScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InstantBookScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InstantBookScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InstantBookScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InstantBookScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InstantBookScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InstantBookScore).
func (m *InstantBookScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InstantBookScoreMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.match != nil {
		fields = append(fields, instantbookscore.FieldMatchID)
	}
	if m.truth_core_completeness != nil {
		fields = append(fields, instantbookscore.FieldTruthCoreCompleteness)
	}
	if m.contextual_memory_depth != nil {
		fields = append(fields, instantbookscore.FieldContextualMemoryDepth)
	}
	if m.supplier_trust_level != nil {
		fields = append(fields, instantbookscore.FieldSupplierTrustLevel)
	}
	if m.match_specificity != nil {
		fields = append(fields, instantbookscore.FieldMatchSpecificity)
	}
	if m.feature_alignment != nil {
		fields = append(fields, instantbookscore.FieldFeatureAlignment)
	}
	if m.total != nil {
		fields = append(fields, instantbookscore.FieldTotal)
	}
	if m.created_at != nil {
		fields = append(fields, instantbookscore.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InstantBookScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case instantbookscore.FieldMatchID:
		return m.MatchID()
	case instantbookscore.FieldTruthCoreCompleteness:
		return m.TruthCoreCompleteness()
	case instantbookscore.FieldContextualMemoryDepth:
		return m.ContextualMemoryDepth()
	case instantbookscore.FieldSupplierTrustLevel:
		return m.SupplierTrustLevel()
	case instantbookscore.FieldMatchSpecificity:
		return m.MatchSpecificity()
	case instantbookscore.FieldFeatureAlignment:
		return m.FeatureAlignment()
	case instantbookscore.FieldTotal:
		return m.Total()
	case instantbookscore.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InstantBookScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case instantbookscore.FieldMatchID:
		return m.OldMatchID(ctx)
	case instantbookscore.FieldTruthCoreCompleteness:
		return m.OldTruthCoreCompleteness(ctx)
	case instantbookscore.FieldContextualMemoryDepth:
		return m.OldContextualMemoryDepth(ctx)
	case instantbookscore.FieldSupplierTrustLevel:
		return m.OldSupplierTrustLevel(ctx)
	case instantbookscore.FieldMatchSpecificity:
		return m.OldMatchSpecificity(ctx)
	case instantbookscore.FieldFeatureAlignment:
		return m.OldFeatureAlignment(ctx)
	case instantbookscore.FieldTotal:
		return m.OldTotal(ctx)
	case instantbookscore.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InstantBookScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstantBookScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case instantbookscore.FieldMatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchID(v)
		return nil
	case instantbookscore.FieldTruthCoreCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTruthCoreCompleteness(v)
		return nil
	case instantbookscore.FieldContextualMemoryDepth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextualMemoryDepth(v)
		return nil
	case instantbookscore.FieldSupplierTrustLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierTrustLevel(v)
		return nil
	case instantbookscore.FieldMatchSpecificity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchSpecificity(v)
		return nil
	case instantbookscore.FieldFeatureAlignment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureAlignment(v)
		return nil
	case instantbookscore.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case instantbookscore.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InstantBookScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InstantBookScoreMutation) AddedFields() []string {
	var fields []string
	if m.addtruth_core_completeness != nil {
		fields = append(fields, instantbookscore.FieldTruthCoreCompleteness)
	}
	if m.addcontextual_memory_depth != nil {
		fields = append(fields, instantbookscore.FieldContextualMemoryDepth)
	}
	if m.addsupplier_trust_level != nil {
		fields = append(fields, instantbookscore.FieldSupplierTrustLevel)
	}
	if m.addmatch_specificity != nil {
		fields = append(fields, instantbookscore.FieldMatchSpecificity)
	}
	if m.addfeature_alignment != nil {
		fields = append(fields, instantbookscore.FieldFeatureAlignment)
	}
	if m.addtotal != nil {
		fields = append(fields, instantbookscore.FieldTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InstantBookScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case instantbookscore.FieldTruthCoreCompleteness:
		return m.AddedTruthCoreCompleteness()
	case instantbookscore.FieldContextualMemoryDepth:
		return m.AddedContextualMemoryDepth()
	case instantbookscore.FieldSupplierTrustLevel:
		return m.AddedSupplierTrustLevel()
	case instantbookscore.FieldMatchSpecificity:
		return m.AddedMatchSpecificity()
	case instantbookscore.FieldFeatureAlignment:
		return m.AddedFeatureAlignment()
	case instantbookscore.FieldTotal:
		return m.AddedTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstantBookScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case instantbookscore.FieldTruthCoreCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTruthCoreCompleteness(v)
		return nil
	case instantbookscore.FieldContextualMemoryDepth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContextualMemoryDepth(v)
		return nil
	case instantbookscore.FieldSupplierTrustLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSupplierTrustLevel(v)
		return nil
	case instantbookscore.FieldMatchSpecificity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMatchSpecificity(v)
		return nil
	case instantbookscore.FieldFeatureAlignment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFeatureAlignment(v)
		return nil
	case instantbookscore.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	}
	return fmt.Errorf("unknown InstantBookScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InstantBookScoreMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InstantBookScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InstantBookScoreMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InstantBookScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InstantBookScoreMutation) ResetField(name string) error {
	switch name {
	case instantbookscore.FieldMatchID:
		m.ResetMatchID()
		return nil
	case instantbookscore.FieldTruthCoreCompleteness:
		m.ResetTruthCoreCompleteness()
		return nil
	case instantbookscore.FieldContextualMemoryDepth:
		m.ResetContextualMemoryDepth()
		return nil
	case instantbookscore.FieldSupplierTrustLevel:
		m.ResetSupplierTrustLevel()
		return nil
	case instantbookscore.FieldMatchSpecificity:
		m.ResetMatchSpecificity()
		return nil
	case instantbookscore.FieldFeatureAlignment:
		m.ResetFeatureAlignment()
		return nil
	case instantbookscore.FieldTotal:
		m.ResetTotal()
		return nil
	case instantbookscore.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown InstantBookScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InstantBookScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.match != nil {
		edges = append(edges, instantbookscore.EdgeMatch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InstantBookScoreMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case instantbookscore.EdgeMatch:
		if id := m.match; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InstantBookScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InstantBookScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InstantBookScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmatch {
		edges = append(edges, instantbookscore.EdgeMatch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InstantBookScoreMutation) EdgeCleared(name string) bool {
	switch name {
	case instantbookscore.EdgeMatch:
		return m.clearedmatch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InstantBookScoreMutation) ClearEdge(name string) error {
	switch name {
	case instantbookscore.EdgeMatch:
		m.ClearMatch()
		return nil
	}
	return fmt.Errorf("unknown InstantBookScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InstantBookScoreMutation) ResetEdge(name string) error {
	switch name {
	case instantbookscore.EdgeMatch:
		m.ResetMatch()
		return nil
	}
	return fmt.Errorf("unknown InstantBookScore edge %s", name)
}

// MarketRateMutation represents an operation that mutates the MarketRate nodes in the graph.
type MarketRateMutation struct {
	config
	op            Op
	typ           string
	id            *string
	zip           *string
	state         *string
	rate_low      *float64
	addrate_low   *float64
	rate_high     *float64
	addrate_high  *float64
	source        *marketrate.Source
	fetched_at    *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MarketRate, error)
	predicates    []predicate.MarketRate
}

var _ ent.Mutation = (*MarketRateMutation)(nil)

// marketrateOption allows management of the mutation configuration using functional options.
type marketrateOption func(*MarketRateMutation)

// newMarketRateMutation creates new mutation for the MarketRate entity.
func newMarketRateMutation(c config, op Op, opts ...marketrateOption) *MarketRateMutation {
	m := &MarketRateMutation{
		config:        c,
		op:            op,
		typ:           TypeMarketRate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMarketRateID sets the ID field of the mutation.
func withMarketRateID(id string) marketrateOption {
	return func(m *MarketRateMutation) {
		var (
			err   error
			once  sync.Once
			value *MarketRate
		)
		m.oldValue = func(ctx context.Context) (*MarketRate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MarketRate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMarketRate sets the old MarketRate of the mutation.
func withMarketRate(node *MarketRate) marketrateOption {
	return func(m *MarketRateMutation) {
		m.oldValue = func(context.Context) (*MarketRate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MarketRateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MarketRateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MarketRate entities.
func (m *MarketRateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MarketRateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MarketRateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MarketRate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetZip sets the "zip" field.
func (m *MarketRateMutation) SetZip(s string) {
	m.zip = &s
}

// Zip returns the value of the "zip" field in the mutation.
func (m *MarketRateMutation) Zip() (r string, exists bool) {
	v := m.zip
	if v == nil {
		return
	}
	return *v, true
}

// OldZip returns the old "zip" field's value of the MarketRate entity.
// If the MarketRate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketRateMutation) OldZip(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZip is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZip requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZip: %w", err)
	}
	return oldValue.Zip, nil
}

// ResetZip resets all changes to the "zip" field.
func (m *MarketRateMutation) ResetZip() {
	m.zip = nil
}

// SetState sets the "state" field.
func (m *MarketRateMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *MarketRateMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the MarketRate entity.
// If the MarketRate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketRateMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *MarketRateMutation) ClearState() {
	m.state = nil
	m.clearedFields[marketrate.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *MarketRateMutation) StateCleared() bool {
	_, ok := m.clearedFields[marketrate.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *MarketRateMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, marketrate.FieldState)
}

// SetRateLow sets the "rate_low" field.
func (m *MarketRateMutation) SetRateLow(f float64) {
	m.rate_low = &f
	m.addrate_low = nil
}

// RateLow returns the value of the "rate_low" field in the mutation.
func (m *MarketRateMutation) RateLow() (r float64, exists bool) {
	v := m.rate_low
	if v == nil {
		return
	}
	return *v, true
}

// OldRateLow returns the old "rate_low" field's value of the MarketRate entity.
// If the MarketRate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketRateMutation) OldRateLow(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateLow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateLow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateLow: %w", err)
	}
	return oldValue.RateLow, nil
}

// AddRateLow adds f to the "rate_low" field.
func (m *MarketRateMutation) AddRateLow(f float64) {
	if m.addrate_low != nil {
		*m.addrate_low += f
	} else {
		m.addrate_low = &f
	}
}

// AddedRateLow returns the value that was added to the "rate_low" field in this mutation.
func (m *MarketRateMutation) AddedRateLow() (r float64, exists bool) {
	v := m.addrate_low
	if v == nil {
		return
	}
	return *v, true
}

// ResetRateLow resets all changes to the "rate_low" field.
func (m *MarketRateMutation) ResetRateLow() {
	m.rate_low = nil
	m.addrate_low = nil
}

// SetRateHigh sets the "rate_high" field.
func (m *MarketRateMutation) SetRateHigh(f float64) {
	m.rate_high = &f
	m.addrate_high = nil
}

// RateHigh returns the value of the "rate_high" field in the mutation.
func (m *MarketRateMutation) RateHigh() (r float64, exists bool) {
	v := m.rate_high
	if v == nil {
		return
	}
	return *v, true
}

// OldRateHigh returns the old "rate_high" field's value of the MarketRate entity.
// If the MarketRate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketRateMutation) OldRateHigh(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateHigh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateHigh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateHigh: %w", err)
	}
	return oldValue.RateHigh, nil
}

// AddRateHigh adds f to the "rate_high" field.
func (m *MarketRateMutation) AddRateHigh(f float64) {
	if m.addrate_high != nil {
		*m.addrate_high += f
	} else {
		m.addrate_high = &f
	}
}

// AddedRateHigh returns the value that was added to the "rate_high" field in this mutation.
func (m *MarketRateMutation) AddedRateHigh() (r float64, exists bool) {
	v := m.addrate_high
	if v == nil {
		return
	}
	return *v, true
}

// ResetRateHigh resets all changes to the "rate_high" field.
func (m *MarketRateMutation) ResetRateHigh() {
	m.rate_high = nil
	m.addrate_high = nil
}

// SetSource sets the "source" field.
func (m *MarketRateMutation) SetSource(value marketrate.Source) {
	m.source = &value
}

// Source returns the value of the "source" field in the mutation.
func (m *MarketRateMutation) Source() (r marketrate.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the MarketRate entity.
// If the MarketRate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketRateMutation) OldSource(ctx context.Context) (v marketrate.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *MarketRateMutation) ResetSource() {
	m.source = nil
}

// SetFetchedAt sets the "fetched_at" field.
func (m *MarketRateMutation) SetFetchedAt(t time.Time) {
	m.fetched_at = &t
}

// FetchedAt returns the value of the "fetched_at" field in the mutation.
func (m *MarketRateMutation) FetchedAt() (r time.Time, exists bool) {
	v := m.fetched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFetchedAt returns the old "fetched_at" field's value of the MarketRate entity.
// If the MarketRate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketRateMutation) OldFetchedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFetchedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFetchedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFetchedAt: %w", err)
	}
	return oldValue.FetchedAt, nil
}

// ResetFetchedAt resets all changes to the "fetched_at" field.
func (m *MarketRateMutation) ResetFetchedAt() {
	m.fetched_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MarketRateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MarketRateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MarketRate entity.
// If the MarketRate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketRateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MarketRateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MarketRateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MarketRateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MarketRate entity.
// If the MarketRate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketRateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MarketRateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MarketRateMutation builder.
func (m *MarketRateMutation) Where(ps ...predicate.MarketRate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MarketRateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MarketRateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MarketRate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MarketRateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MarketRateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MarketRate).
func (m *MarketRateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MarketRateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.zip != nil {
		fields = append(fields, marketrate.FieldZip)
	}
	if m.state != nil {
		fields = append(fields, marketrate.FieldState)
	}
	if m.rate_low != nil {
		fields = append(fields, marketrate.FieldRateLow)
	}
	if m.rate_high != nil {
		fields = append(fields, marketrate.FieldRateHigh)
	}
	if m.source != nil {
		fields = append(fields, marketrate.FieldSource)
	}
	if m.fetched_at != nil {
		fields = append(fields, marketrate.FieldFetchedAt)
	}
	if m.created_at != nil {
		fields = append(fields, marketrate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, marketrate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MarketRateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case marketrate.FieldZip:
		return m.Zip()
	case marketrate.FieldState:
		return m.State()
	case marketrate.FieldRateLow:
		return m.RateLow()
	case marketrate.FieldRateHigh:
		return m.RateHigh()
	case marketrate.FieldSource:
		return m.Source()
	case marketrate.FieldFetchedAt:
		return m.FetchedAt()
	case marketrate.FieldCreatedAt:
		return m.CreatedAt()
	case marketrate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MarketRateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case marketrate.FieldZip:
		return m.OldZip(ctx)
	case marketrate.FieldState:
		return m.OldState(ctx)
	case marketrate.FieldRateLow:
		return m.OldRateLow(ctx)
	case marketrate.FieldRateHigh:
		return m.OldRateHigh(ctx)
	case marketrate.FieldSource:
		return m.OldSource(ctx)
	case marketrate.FieldFetchedAt:
		return m.OldFetchedAt(ctx)
	case marketrate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case marketrate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MarketRate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MarketRateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case marketrate.FieldZip:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZip(v)
		return nil
	case marketrate.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case marketrate.FieldRateLow:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateLow(v)
		return nil
	case marketrate.FieldRateHigh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateHigh(v)
		return nil
	case marketrate.FieldSource:
		v, ok := value.(marketrate.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case marketrate.FieldFetchedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFetchedAt(v)
		return nil
	case marketrate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case marketrate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MarketRate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MarketRateMutation) AddedFields() []string {
	var fields []string
	if m.addrate_low != nil {
		fields = append(fields, marketrate.FieldRateLow)
	}
	if m.addrate_high != nil {
		fields = append(fields, marketrate.FieldRateHigh)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MarketRateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case marketrate.FieldRateLow:
		return m.AddedRateLow()
	case marketrate.FieldRateHigh:
		return m.AddedRateHigh()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MarketRateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case marketrate.FieldRateLow:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRateLow(v)
		return nil
	case marketrate.FieldRateHigh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRateHigh(v)
		return nil
	}
	return fmt.Errorf("unknown MarketRate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MarketRateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(marketrate.FieldState) {
		fields = append(fields, marketrate.FieldState)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MarketRateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MarketRateMutation) ClearField(name string) error {
	switch name {
	case marketrate.FieldState:
		m.ClearState()
		return nil
	}
	return fmt.Errorf("unknown MarketRate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MarketRateMutation) ResetField(name string) error {
	switch name {
	case marketrate.FieldZip:
		m.ResetZip()
		return nil
	case marketrate.FieldState:
		m.ResetState()
		return nil
	case marketrate.FieldRateLow:
		m.ResetRateLow()
		return nil
	case marketrate.FieldRateHigh:
		m.ResetRateHigh()
		return nil
	case marketrate.FieldSource:
		m.ResetSource()
		return nil
	case marketrate.FieldFetchedAt:
		m.ResetFetchedAt()
		return nil
	case marketrate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case marketrate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MarketRate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MarketRateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MarketRateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MarketRateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MarketRateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MarketRateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MarketRateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MarketRateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MarketRate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MarketRateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MarketRate edge %s", name)
}

// MatchMutation represents an operation that mutates the Match nodes in the graph.
type MatchMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	composite_score           *float64
	addcomposite_score        *float64
	location_score            *float64
	addlocation_score         *float64
	size_score                *float64
	addsize_score             *float64
	use_type_score            *float64
	adduse_type_score         *float64
	feature_score             *float64
	addfeature_score          *float64
	timing_score              *float64
	addtiming_score           *float64
	budget_score              *float64
	addbudget_score           *float64
	distance_miles            *float64
	adddistance_miles         *float64
	reasoning                 *string
	callouts                  *[]string
	appendcallouts            []string
	instant_book_eligible     *bool
	within_budget             *bool
	buyer_rate                *float64
	addbuyer_rate             *float64
	status                    *match.Status
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	buyer_need                *string
	clearedbuyer_need         bool
	warehouse                 *string
	clearedwarehouse          bool
	instant_book_score        *string
	clearedinstant_book_score bool
	engagement                *string
	clearedengagement         bool
	done                      bool
	oldValue                  func(context.Context) (*Match, error)
	predicates                []predicate.Match
}

var _ ent.Mutation = (*MatchMutation)(nil)

// matchOption allows management of the mutation configuration using functional options.
type matchOption func(*MatchMutation)

// newMatchMutation creates new mutation for the Match entity.
func newMatchMutation(c config, op Op, opts ...matchOption) *MatchMutation {
	m := &MatchMutation{
		config:        c,
		op:            op,
		typ:           TypeMatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMatchID sets the ID field of the mutation.
func withMatchID(id string) matchOption {
	return func(m *MatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Match
		)
		m.oldValue = func(ctx context.Context) (*Match, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Match.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMatch sets the old Match of the mutation.
func withMatch(node *Match) matchOption {
	return func(m *MatchMutation) {
		m.oldValue = func(context.Context) (*Match, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Match entities.
func (m *MatchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MatchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MatchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Match.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (m *MatchMutation) SetBuyerNeedID(s string) {
	m.buyer_need = &s
}

// BuyerNeedID returns the value of the "buyer_need_id" field in the mutation.
func (m *MatchMutation) BuyerNeedID() (r string, exists bool) {
	v := m.buyer_need
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerNeedID returns the old "buyer_need_id" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldBuyerNeedID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerNeedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerNeedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerNeedID: %w", err)
	}
	return oldValue.BuyerNeedID, nil
}

// ResetBuyerNeedID resets all changes to the "buyer_need_id" field.
func (m *MatchMutation) ResetBuyerNeedID() {
	m.buyer_need = nil
}

// SetWarehouseID sets the "warehouse_id" field.
func (m *MatchMutation) SetWarehouseID(s string) {
	m.warehouse = &s
}

// WarehouseID returns the value of the "warehouse_id" field in the mutation.
func (m *MatchMutation) WarehouseID() (r string, exists bool) {
	v := m.warehouse
	if v == nil {
		return
	}
	return *v, true
}

// OldWarehouseID returns the old "warehouse_id" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldWarehouseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarehouseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarehouseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarehouseID: %w", err)
	}
	return oldValue.WarehouseID, nil
}

// ResetWarehouseID resets all changes to the "warehouse_id" field.
func (m *MatchMutation) ResetWarehouseID() {
	m.warehouse = nil
}

// SetCompositeScore sets the "composite_score" field.
func (m *MatchMutation) SetCompositeScore(f float64) {
	m.composite_score = &f
	m.addcomposite_score = nil
}

// CompositeScore returns the value of the "composite_score" field in the mutation.
func (m *MatchMutation) CompositeScore() (r float64, exists bool) {
	v := m.composite_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCompositeScore returns the old "composite_score" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldCompositeScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompositeScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompositeScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompositeScore: %w", err)
	}
	return oldValue.CompositeScore, nil
}

// AddCompositeScore adds f to the "composite_score" field.
func (m *MatchMutation) AddCompositeScore(f float64) {
	if m.addcomposite_score != nil {
		*m.addcomposite_score += f
	} else {
		m.addcomposite_score = &f
	}
}

// AddedCompositeScore returns the value that was added to the "composite_score" field in this mutation.
func (m *MatchMutation) AddedCompositeScore() (r float64, exists bool) {
	v := m.addcomposite_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompositeScore resets all changes to the "composite_score" field.
func (m *MatchMutation) ResetCompositeScore() {
	m.composite_score = nil
	m.addcomposite_score = nil
}

// SetLocationScore sets the "location_score" field.
func (m *MatchMutation) SetLocationScore(f float64) {
	m.location_score = &f
	m.addlocation_score = nil
}

// LocationScore returns the value of the "location_score" field in the mutation.
func (m *MatchMutation) LocationScore() (r float64, exists bool) {
	v := m.location_score
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationScore returns the old "location_score" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldLocationScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationScore: %w", err)
	}
	return oldValue.LocationScore, nil
}

// AddLocationScore adds f to the "location_score" field.
func (m *MatchMutation) AddLocationScore(f float64) {
	if m.addlocation_score != nil {
		*m.addlocation_score += f
	} else {
		m.addlocation_score = &f
	}
}

// AddedLocationScore returns the value that was added to the "location_score" field in this mutation.
func (m *MatchMutation) AddedLocationScore() (r float64, exists bool) {
	v := m.addlocation_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetLocationScore resets all changes to the "location_score" field.
func (m *MatchMutation) ResetLocationScore() {
	m.location_score = nil
	m.addlocation_score = nil
}

// SetSizeScore sets the "size_score" field.
func (m *MatchMutation) SetSizeScore(f float64) {
	m.size_score = &f
	m.addsize_score = nil
}

// SizeScore returns the value of the "size_score" field in the mutation.
func (m *MatchMutation) SizeScore() (r float64, exists bool) {
	v := m.size_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeScore returns the old "size_score" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldSizeScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeScore: %w", err)
	}
	return oldValue.SizeScore, nil
}

// AddSizeScore adds f to the "size_score" field.
func (m *MatchMutation) AddSizeScore(f float64) {
	if m.addsize_score != nil {
		*m.addsize_score += f
	} else {
		m.addsize_score = &f
	}
}

// AddedSizeScore returns the value that was added to the "size_score" field in this mutation.
func (m *MatchMutation) AddedSizeScore() (r float64, exists bool) {
	v := m.addsize_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeScore resets all changes to the "size_score" field.
func (m *MatchMutation) ResetSizeScore() {
	m.size_score = nil
	m.addsize_score = nil
}

// SetUseTypeScore sets the "use_type_score" field.
func (m *MatchMutation) SetUseTypeScore(f float64) {
	m.use_type_score = &f
	m.adduse_type_score = nil
}

// UseTypeScore returns the value of the "use_type_score" field in the mutation.
func (m *MatchMutation) UseTypeScore() (r float64, exists bool) {
	v := m.use_type_score
	if v == nil {
		return
	}
	return *v, true
}

// OldUseTypeScore returns the old "use_type_score" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldUseTypeScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseTypeScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseTypeScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseTypeScore: %w", err)
	}
	return oldValue.UseTypeScore, nil
}

// AddUseTypeScore adds f to the "use_type_score" field.
func (m *MatchMutation) AddUseTypeScore(f float64) {
	if m.adduse_type_score != nil {
		*m.adduse_type_score += f
	} else {
		m.adduse_type_score = &f
	}
}

// AddedUseTypeScore returns the value that was added to the "use_type_score" field in this mutation.
func (m *MatchMutation) AddedUseTypeScore() (r float64, exists bool) {
	v := m.adduse_type_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetUseTypeScore resets all changes to the "use_type_score" field.
func (m *MatchMutation) ResetUseTypeScore() {
	m.use_type_score = nil
	m.adduse_type_score = nil
}

// SetFeatureScore sets the "feature_score" field.
func (m *MatchMutation) SetFeatureScore(f float64) {
	m.feature_score = &f
	m.addfeature_score = nil
}

// FeatureScore returns the value of the "feature_score" field in the mutation.
func (m *MatchMutation) FeatureScore() (r float64, exists bool) {
	v := m.feature_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureScore returns the old "feature_score" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldFeatureScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureScore: %w", err)
	}
	return oldValue.FeatureScore, nil
}

// AddFeatureScore adds f to the "feature_score" field.
func (m *MatchMutation) AddFeatureScore(f float64) {
	if m.addfeature_score != nil {
		*m.addfeature_score += f
	} else {
		m.addfeature_score = &f
	}
}

// AddedFeatureScore returns the value that was added to the "feature_score" field in this mutation.
func (m *MatchMutation) AddedFeatureScore() (r float64, exists bool) {
	v := m.addfeature_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetFeatureScore resets all changes to the "feature_score" field.
func (m *MatchMutation) ResetFeatureScore() {
	m.feature_score = nil
	m.addfeature_score = nil
}

// SetTimingScore sets the "timing_score" field.
func (m *MatchMutation) SetTimingScore(f float64) {
	m.timing_score = &f
	m.addtiming_score = nil
}

// TimingScore returns the value of the "timing_score" field in the mutation.
func (m *MatchMutation) TimingScore() (r float64, exists bool) {
	v := m.timing_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTimingScore returns the old "timing_score" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldTimingScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimingScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimingScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimingScore: %w", err)
	}
	return oldValue.TimingScore, nil
}

// AddTimingScore adds f to the "timing_score" field.
func (m *MatchMutation) AddTimingScore(f float64) {
	if m.addtiming_score != nil {
		*m.addtiming_score += f
	} else {
		m.addtiming_score = &f
	}
}

// AddedTimingScore returns the value that was added to the "timing_score" field in this mutation.
func (m *MatchMutation) AddedTimingScore() (r float64, exists bool) {
	v := m.addtiming_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimingScore resets all changes to the "timing_score" field.
func (m *MatchMutation) ResetTimingScore() {
	m.timing_score = nil
	m.addtiming_score = nil
}

// SetBudgetScore sets the "budget_score" field.
func (m *MatchMutation) SetBudgetScore(f float64) {
	m.budget_score = &f
	m.addbudget_score = nil
}

// BudgetScore returns the value of the "budget_score" field in the mutation.
func (m *MatchMutation) BudgetScore() (r float64, exists bool) {
	v := m.budget_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetScore returns the old "budget_score" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldBudgetScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetScore: %w", err)
	}
	return oldValue.BudgetScore, nil
}

// AddBudgetScore adds f to the "budget_score" field.
func (m *MatchMutation) AddBudgetScore(f float64) {
	if m.addbudget_score != nil {
		*m.addbudget_score += f
	} else {
		m.addbudget_score = &f
	}
}

// AddedBudgetScore returns the value that was added to the "budget_score" field in this mutation.
func (m *MatchMutation) AddedBudgetScore() (r float64, exists bool) {
	v := m.addbudget_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetBudgetScore resets all changes to the "budget_score" field.
func (m *MatchMutation) ResetBudgetScore() {
	m.budget_score = nil
	m.addbudget_score = nil
}

// SetDistanceMiles sets the "distance_miles" field.
func (m *MatchMutation) SetDistanceMiles(f float64) {
	m.distance_miles = &f
	m.adddistance_miles = nil
}

// DistanceMiles returns the value of the "distance_miles" field in the mutation.
func (m *MatchMutation) DistanceMiles() (r float64, exists bool) {
	v := m.distance_miles
	if v == nil {
		return
	}
	return *v, true
}

// OldDistanceMiles returns the old "distance_miles" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldDistanceMiles(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistanceMiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistanceMiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistanceMiles: %w", err)
	}
	return oldValue.DistanceMiles, nil
}

// AddDistanceMiles adds f to the "distance_miles" field.
func (m *MatchMutation) AddDistanceMiles(f float64) {
	if m.adddistance_miles != nil {
		*m.adddistance_miles += f
	} else {
		m.adddistance_miles = &f
	}
}

// AddedDistanceMiles returns the value that was added to the "distance_miles" field in this mutation.
func (m *MatchMutation) AddedDistanceMiles() (r float64, exists bool) {
	v := m.adddistance_miles
	if v == nil {
		return
	}
	return *v, true
}

// ClearDistanceMiles clears the value of the "distance_miles" field.
func (m *MatchMutation) ClearDistanceMiles() {
	m.distance_miles = nil
	m.adddistance_miles = nil
	m.clearedFields[match.FieldDistanceMiles] = struct{}{}
}

// DistanceMilesCleared returns if the "distance_miles" field was cleared in this mutation.
func (m *MatchMutation) DistanceMilesCleared() bool {
	_, ok := m.clearedFields[match.FieldDistanceMiles]
	return ok
}

// ResetDistanceMiles resets all changes to the "distance_miles" field.
func (m *MatchMutation) ResetDistanceMiles() {
	m.distance_miles = nil
	m.adddistance_miles = nil
	delete(m.clearedFields, match.FieldDistanceMiles)
}

// SetReasoning sets the "reasoning" field.
func (m *MatchMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *MatchMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *MatchMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[match.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *MatchMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[match.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *MatchMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, match.FieldReasoning)
}

// SetCallouts sets the "callouts" field.
func (m *MatchMutation) SetCallouts(s []string) {
	m.callouts = &s
	m.appendcallouts = nil
}

// Callouts returns the value of the "callouts" field in the mutation.
func (m *MatchMutation) Callouts() (r []string, exists bool) {
	v := m.callouts
	if v == nil {
		return
	}
	return *v, true
}

// OldCallouts returns the old "callouts" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldCallouts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallouts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallouts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallouts: %w", err)
	}
	return oldValue.Callouts, nil
}

// AppendCallouts adds s to the "callouts" field.
func (m *MatchMutation) AppendCallouts(s []string) {
	m.appendcallouts = append(m.appendcallouts, s...)
}

// AppendedCallouts returns the list of values that were appended to the "callouts" field in this mutation.
func (m *MatchMutation) AppendedCallouts() ([]string, bool) {
	if len(m.appendcallouts) == 0 {
		return nil, false
	}
	return m.appendcallouts, true
}

// ClearCallouts clears the value of the "callouts" field.
func (m *MatchMutation) ClearCallouts() {
	m.callouts = nil
	m.appendcallouts = nil
	m.clearedFields[match.FieldCallouts] = struct{}{}
}

// CalloutsCleared returns if the "callouts" field was cleared in this mutation.
func (m *MatchMutation) CalloutsCleared() bool {
	_, ok := m.clearedFields[match.FieldCallouts]
	return ok
}

// ResetCallouts resets all changes to the "callouts" field.
func (m *MatchMutation) ResetCallouts() {
	m.callouts = nil
	m.appendcallouts = nil
	delete(m.clearedFields, match.FieldCallouts)
}

// SetInstantBookEligible sets the "instant_book_eligible" field.
func (m *MatchMutation) SetInstantBookEligible(b bool) {
	m.instant_book_eligible = &b
}

// InstantBookEligible returns the value of the "instant_book_eligible" field in the mutation.
func (m *MatchMutation) InstantBookEligible() (r bool, exists bool) {
	v := m.instant_book_eligible
	if v == nil {
		return
	}
	return *v, true
}

// OldInstantBookEligible returns the old "instant_book_eligible" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldInstantBookEligible(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstantBookEligible is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstantBookEligible requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstantBookEligible: %w", err)
	}
	return oldValue.InstantBookEligible, nil
}

// ResetInstantBookEligible resets all changes to the "instant_book_eligible" field.
func (m *MatchMutation) ResetInstantBookEligible() {
	m.instant_book_eligible = nil
}

// SetWithinBudget sets the "within_budget" field.
func (m *MatchMutation) SetWithinBudget(b bool) {
	m.within_budget = &b
}

// WithinBudget returns the value of the "within_budget" field in the mutation.
func (m *MatchMutation) WithinBudget() (r bool, exists bool) {
	v := m.within_budget
	if v == nil {
		return
	}
	return *v, true
}

// OldWithinBudget returns the old "within_budget" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldWithinBudget(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWithinBudget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWithinBudget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWithinBudget: %w", err)
	}
	return oldValue.WithinBudget, nil
}

// ResetWithinBudget resets all changes to the "within_budget" field.
func (m *MatchMutation) ResetWithinBudget() {
	m.within_budget = nil
}

// SetBuyerRate sets the "buyer_rate" field.
func (m *MatchMutation) SetBuyerRate(f float64) {
	m.buyer_rate = &f
	m.addbuyer_rate = nil
}

// BuyerRate returns the value of the "buyer_rate" field in the mutation.
func (m *MatchMutation) BuyerRate() (r float64, exists bool) {
	v := m.buyer_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerRate returns the old "buyer_rate" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldBuyerRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerRate: %w", err)
	}
	return oldValue.BuyerRate, nil
}

// AddBuyerRate adds f to the "buyer_rate" field.
func (m *MatchMutation) AddBuyerRate(f float64) {
	if m.addbuyer_rate != nil {
		*m.addbuyer_rate += f
	} else {
		m.addbuyer_rate = &f
	}
}

// AddedBuyerRate returns the value that was added to the "buyer_rate" field in this mutation.
func (m *MatchMutation) AddedBuyerRate() (r float64, exists bool) {
	v := m.addbuyer_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetBuyerRate resets all changes to the "buyer_rate" field.
func (m *MatchMutation) ResetBuyerRate() {
	m.buyer_rate = nil
	m.addbuyer_rate = nil
}

// SetStatus sets the "status" field.
func (m *MatchMutation) SetStatus(value match.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MatchMutation) Status() (r match.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldStatus(ctx context.Context) (v match.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MatchMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MatchMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MatchMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MatchMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBuyerNeed clears the "buyer_need" edge to the BuyerNeed entity.
func (m *MatchMutation) ClearBuyerNeed() {
	m.clearedbuyer_need = true
	m.clearedFields[match.FieldBuyerNeedID] = struct{}{}
}

// BuyerNeedCleared reports if the "buyer_need" edge to the BuyerNeed entity was cleared.
func (m *MatchMutation) BuyerNeedCleared() bool {
	return m.clearedbuyer_need
}

// BuyerNeedIDs returns the "buyer_need" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BuyerNeedID instead. It exists only for internal usage by the builders.
func (m *MatchMutation) BuyerNeedIDs() (ids []string) {
	if id := m.buyer_need; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBuyerNeed resets all changes to the "buyer_need" edge.
func (m *MatchMutation) ResetBuyerNeed() {
	m.buyer_need = nil
	m.clearedbuyer_need = false
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (m *MatchMutation) ClearWarehouse() {
	m.clearedwarehouse = true
	m.clearedFields[match.FieldWarehouseID] = struct{}{}
}

// WarehouseCleared reports if the "warehouse" edge to the Warehouse entity was cleared.
func (m *MatchMutation) WarehouseCleared() bool {
	return m.clearedwarehouse
}

// WarehouseIDs returns the "warehouse" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WarehouseID instead. It exists only for internal usage by the builders.
func (m *MatchMutation) WarehouseIDs() (ids []string) {
	if id := m.warehouse; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWarehouse resets all changes to the "warehouse" edge.
func (m *MatchMutation) ResetWarehouse() {
	m.warehouse = nil
	m.clearedwarehouse = false
}

// SetInstantBookScoreID sets the "instant_book_score" edge to the InstantBookScore entity by id.
func (m *MatchMutation) SetInstantBookScoreID(id string) {
	m.instant_book_score = &id
}

// ClearInstantBookScore clears the "instant_book_score" edge to the InstantBookScore entity.
func (m *MatchMutation) ClearInstantBookScore() {
	m.clearedinstant_book_score = true
}

// InstantBookScoreCleared reports if the "instant_book_score" edge to the InstantBookScore entity was cleared.
func (m *MatchMutation) InstantBookScoreCleared() bool {
	return m.clearedinstant_book_score
}

// InstantBookScoreID returns the "instant_book_score" edge ID in the mutation.
func (m *MatchMutation) InstantBookScoreID() (id string, exists bool) {
	if m.instant_book_score != nil {
		return *m.instant_book_score, true
	}
	return
}

// InstantBookScoreIDs returns the "instant_book_score" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InstantBookScoreID instead. It exists only for internal usage by the builders.
func (m *MatchMutation) InstantBookScoreIDs() (ids []string) {
	if id := m.instant_book_score; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInstantBookScore resets all changes to the "instant_book_score" edge.
func (m *MatchMutation) ResetInstantBookScore() {
	m.instant_book_score = nil
	m.clearedinstant_book_score = false
}

// SetEngagementID sets the "engagement" edge to the Engagement entity by id.
func (m *MatchMutation) SetEngagementID(id string) {
	m.engagement = &id
}

// ClearEngagement clears the "engagement" edge to the Engagement entity.
func (m *MatchMutation) ClearEngagement() {
	m.clearedengagement = true
}

// EngagementCleared reports if the "engagement" edge to the Engagement entity was cleared.
func (m *MatchMutation) EngagementCleared() bool {
	return m.clearedengagement
}

// EngagementID returns the "engagement" edge ID in the mutation.
func (m *MatchMutation) EngagementID() (id string, exists bool) {
	if m.engagement != nil {
		return *m.engagement, true
	}
	return
}

// EngagementIDs returns the "engagement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EngagementID instead. It exists only for internal usage by the builders.
func (m *MatchMutation) EngagementIDs() (ids []string) {
	if id := m.engagement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEngagement resets all changes to the "engagement" edge.
func (m *MatchMutation) ResetEngagement() {
	m.engagement = nil
	m.clearedengagement = false
}

// Where appends a list predicates to the MatchMutation builder.
func (m *MatchMutation) Where(ps ...predicate.Match) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Match, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Match).
func (m *MatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MatchMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.buyer_need != nil {
		fields = append(fields, match.FieldBuyerNeedID)
	}
	if m.warehouse != nil {
		fields = append(fields, match.FieldWarehouseID)
	}
	if m.composite_score != nil {
		fields = append(fields, match.FieldCompositeScore)
	}
	if m.location_score != nil {
		fields = append(fields, match.FieldLocationScore)
	}
	if m.size_score != nil {
		fields = append(fields, match.FieldSizeScore)
	}
	if m.use_type_score != nil {
		fields = append(fields, match.FieldUseTypeScore)
	}
	if m.feature_score != nil {
		fields = append(fields, match.FieldFeatureScore)
	}
	if m.timing_score != nil {
		fields = append(fields, match.FieldTimingScore)
	}
	if m.budget_score != nil {
		fields = append(fields, match.FieldBudgetScore)
	}
	if m.distance_miles != nil {
		fields = append(fields, match.FieldDistanceMiles)
	}
	if m.reasoning != nil {
		fields = append(fields, match.FieldReasoning)
	}
	if m.callouts != nil {
		fields = append(fields, match.FieldCallouts)
	}
	if m.instant_book_eligible != nil {
		fields = append(fields, match.FieldInstantBookEligible)
	}
	if m.within_budget != nil {
		fields = append(fields, match.FieldWithinBudget)
	}
	if m.buyer_rate != nil {
		fields = append(fields, match.FieldBuyerRate)
	}
	if m.status != nil {
		fields = append(fields, match.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, match.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, match.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case match.FieldBuyerNeedID:
		return m.BuyerNeedID()
	case match.FieldWarehouseID:
		return m.WarehouseID()
	case match.FieldCompositeScore:
		return m.CompositeScore()
	case match.FieldLocationScore:
		return m.LocationScore()
	case match.FieldSizeScore:
		return m.SizeScore()
	case match.FieldUseTypeScore:
		return m.UseTypeScore()
	case match.FieldFeatureScore:
		return m.FeatureScore()
	case match.FieldTimingScore:
		return m.TimingScore()
	case match.FieldBudgetScore:
		return m.BudgetScore()
	case match.FieldDistanceMiles:
		return m.DistanceMiles()
	case match.FieldReasoning:
		return m.Reasoning()
	case match.FieldCallouts:
		return m.Callouts()
	case match.FieldInstantBookEligible:
		return m.InstantBookEligible()
	case match.FieldWithinBudget:
		return m.WithinBudget()
	case match.FieldBuyerRate:
		return m.BuyerRate()
	case match.FieldStatus:
		return m.Status()
	case match.FieldCreatedAt:
		return m.CreatedAt()
	case match.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case match.FieldBuyerNeedID:
		return m.OldBuyerNeedID(ctx)
	case match.FieldWarehouseID:
		return m.OldWarehouseID(ctx)
	case match.FieldCompositeScore:
		return m.OldCompositeScore(ctx)
	case match.FieldLocationScore:
		return m.OldLocationScore(ctx)
	case match.FieldSizeScore:
		return m.OldSizeScore(ctx)
	case match.FieldUseTypeScore:
		return m.OldUseTypeScore(ctx)
	case match.FieldFeatureScore:
		return m.OldFeatureScore(ctx)
	case match.FieldTimingScore:
		return m.OldTimingScore(ctx)
	case match.FieldBudgetScore:
		return m.OldBudgetScore(ctx)
	case match.FieldDistanceMiles:
		return m.OldDistanceMiles(ctx)
	case match.FieldReasoning:
		return m.OldReasoning(ctx)
	case match.FieldCallouts:
		return m.OldCallouts(ctx)
	case match.FieldInstantBookEligible:
		return m.OldInstantBookEligible(ctx)
	case match.FieldWithinBudget:
		return m.OldWithinBudget(ctx)
	case match.FieldBuyerRate:
		return m.OldBuyerRate(ctx)
	case match.FieldStatus:
		return m.OldStatus(ctx)
	case match.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case match.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Match field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case match.FieldBuyerNeedID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerNeedID(v)
		return nil
	case match.FieldWarehouseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarehouseID(v)
		return nil
	case match.FieldCompositeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompositeScore(v)
		return nil
	case match.FieldLocationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationScore(v)
		return nil
	case match.FieldSizeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeScore(v)
		return nil
	case match.FieldUseTypeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseTypeScore(v)
		return nil
	case match.FieldFeatureScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureScore(v)
		return nil
	case match.FieldTimingScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimingScore(v)
		return nil
	case match.FieldBudgetScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetScore(v)
		return nil
	case match.FieldDistanceMiles:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistanceMiles(v)
		return nil
	case match.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case match.FieldCallouts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallouts(v)
		return nil
	case match.FieldInstantBookEligible:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstantBookEligible(v)
		return nil
	case match.FieldWithinBudget:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWithinBudget(v)
		return nil
	case match.FieldBuyerRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerRate(v)
		return nil
	case match.FieldStatus:
		v, ok := value.(match.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case match.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case match.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Match field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MatchMutation) AddedFields() []string {
	var fields []string
	if m.addcomposite_score != nil {
		fields = append(fields, match.FieldCompositeScore)
	}
	if m.addlocation_score != nil {
		fields = append(fields, match.FieldLocationScore)
	}
	if m.addsize_score != nil {
		fields = append(fields, match.FieldSizeScore)
	}
	if m.adduse_type_score != nil {
		fields = append(fields, match.FieldUseTypeScore)
	}
	if m.addfeature_score != nil {
		fields = append(fields, match.FieldFeatureScore)
	}
	if m.addtiming_score != nil {
		fields = append(fields, match.FieldTimingScore)
	}
	if m.addbudget_score != nil {
		fields = append(fields, match.FieldBudgetScore)
	}
	if m.adddistance_miles != nil {
		fields = append(fields, match.FieldDistanceMiles)
	}
	if m.addbuyer_rate != nil {
		fields = append(fields, match.FieldBuyerRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case match.FieldCompositeScore:
		return m.AddedCompositeScore()
	case match.FieldLocationScore:
		return m.AddedLocationScore()
	case match.FieldSizeScore:
		return m.AddedSizeScore()
	case match.FieldUseTypeScore:
		return m.AddedUseTypeScore()
	case match.FieldFeatureScore:
		return m.AddedFeatureScore()
	case match.FieldTimingScore:
		return m.AddedTimingScore()
	case match.FieldBudgetScore:
		return m.AddedBudgetScore()
	case match.FieldDistanceMiles:
		return m.AddedDistanceMiles()
	case match.FieldBuyerRate:
		return m.AddedBuyerRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case match.FieldCompositeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompositeScore(v)
		return nil
	case match.FieldLocationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLocationScore(v)
		return nil
	case match.FieldSizeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeScore(v)
		return nil
	case match.FieldUseTypeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUseTypeScore(v)
		return nil
	case match.FieldFeatureScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFeatureScore(v)
		return nil
	case match.FieldTimingScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimingScore(v)
		return nil
	case match.FieldBudgetScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBudgetScore(v)
		return nil
	case match.FieldDistanceMiles:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistanceMiles(v)
		return nil
	case match.FieldBuyerRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBuyerRate(v)
		return nil
	}
	return fmt.Errorf("unknown Match numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(match.FieldDistanceMiles) {
		fields = append(fields, match.FieldDistanceMiles)
	}
	if m.FieldCleared(match.FieldReasoning) {
		fields = append(fields, match.FieldReasoning)
	}
	if m.FieldCleared(match.FieldCallouts) {
		fields = append(fields, match.FieldCallouts)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MatchMutation) ClearField(name string) error {
	switch name {
	case match.FieldDistanceMiles:
		m.ClearDistanceMiles()
		return nil
	case match.FieldReasoning:
		m.ClearReasoning()
		return nil
	case match.FieldCallouts:
		m.ClearCallouts()
		return nil
	}
	return fmt.Errorf("unknown Match nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MatchMutation) ResetField(name string) error {
	switch name {
	case match.FieldBuyerNeedID:
		m.ResetBuyerNeedID()
		return nil
	case match.FieldWarehouseID:
		m.ResetWarehouseID()
		return nil
	case match.FieldCompositeScore:
		m.ResetCompositeScore()
		return nil
	case match.FieldLocationScore:
		m.ResetLocationScore()
		return nil
	case match.FieldSizeScore:
		m.ResetSizeScore()
		return nil
	case match.FieldUseTypeScore:
		m.ResetUseTypeScore()
		return nil
	case match.FieldFeatureScore:
		m.ResetFeatureScore()
		return nil
	case match.FieldTimingScore:
		m.ResetTimingScore()
		return nil
	case match.FieldBudgetScore:
		m.ResetBudgetScore()
		return nil
	case match.FieldDistanceMiles:
		m.ResetDistanceMiles()
		return nil
	case match.FieldReasoning:
		m.ResetReasoning()
		return nil
	case match.FieldCallouts:
		m.ResetCallouts()
		return nil
	case match.FieldInstantBookEligible:
		m.ResetInstantBookEligible()
		return nil
	case match.FieldWithinBudget:
		m.ResetWithinBudget()
		return nil
	case match.FieldBuyerRate:
		m.ResetBuyerRate()
		return nil
	case match.FieldStatus:
		m.ResetStatus()
		return nil
	case match.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case match.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Match field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.buyer_need != nil {
		edges = append(edges, match.EdgeBuyerNeed)
	}
	if m.warehouse != nil {
		edges = append(edges, match.EdgeWarehouse)
	}
	if m.instant_book_score != nil {
		edges = append(edges, match.EdgeInstantBookScore)
	}
	if m.engagement != nil {
		edges = append(edges, match.EdgeEngagement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case match.EdgeBuyerNeed:
		if id := m.buyer_need; id != nil {
			return []ent.Value{*id}
		}
	case match.EdgeWarehouse:
		if id := m.warehouse; id != nil {
			return []ent.Value{*id}
		}
	case match.EdgeInstantBookScore:
		if id := m.instant_book_score; id != nil {
			return []ent.Value{*id}
		}
	case match.EdgeEngagement:
		if id := m.engagement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MatchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedbuyer_need {
		edges = append(edges, match.EdgeBuyerNeed)
	}
	if m.clearedwarehouse {
		edges = append(edges, match.EdgeWarehouse)
	}
	if m.clearedinstant_book_score {
		edges = append(edges, match.EdgeInstantBookScore)
	}
	if m.clearedengagement {
		edges = append(edges, match.EdgeEngagement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MatchMutation) EdgeCleared(name string) bool {
	switch name {
	case match.EdgeBuyerNeed:
		return m.clearedbuyer_need
	case match.EdgeWarehouse:
		return m.clearedwarehouse
	case match.EdgeInstantBookScore:
		return m.clearedinstant_book_score
	case match.EdgeEngagement:
		return m.clearedengagement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MatchMutation) ClearEdge(name string) error {
	switch name {
	case match.EdgeBuyerNeed:
		m.ClearBuyerNeed()
		return nil
	case match.EdgeWarehouse:
		m.ClearWarehouse()
		return nil
	case match.EdgeInstantBookScore:
		m.ClearInstantBookScore()
		return nil
	case match.EdgeEngagement:
		m.ClearEngagement()
		return nil
	}
	return fmt.Errorf("unknown Match unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MatchMutation) ResetEdge(name string) error {
	switch name {
	case match.EdgeBuyerNeed:
		m.ResetBuyerNeed()
		return nil
	case match.EdgeWarehouse:
		m.ResetWarehouse()
		return nil
	case match.EdgeInstantBookScore:
		m.ResetInstantBookScore()
		return nil
	case match.EdgeEngagement:
		m.ResetEngagement()
		return nil
	}
	return fmt.Errorf("unknown Match edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	channel       *notification.Channel
	recipient     *string
	subject       *string
	body          *string
	ref_type      *string
	ref_id        *string
	dedupe_key    *string
	status        *notification.Status
	attempts      *int
	addattempts   *int
	last_error    *string
	scheduled_for *time.Time
	sent_at       *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannel sets the "channel" field.
func (m *NotificationMutation) SetChannel(n notification.Channel) {
	m.channel = &n
}

// Channel returns the value of the "channel" field in the mutation.
func (m *NotificationMutation) Channel() (r notification.Channel, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldChannel(ctx context.Context) (v notification.Channel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *NotificationMutation) ResetChannel() {
	m.channel = nil
}

// SetRecipient sets the "recipient" field.
func (m *NotificationMutation) SetRecipient(s string) {
	m.recipient = &s
}

// Recipient returns the value of the "recipient" field in the mutation.
func (m *NotificationMutation) Recipient() (r string, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipient returns the old "recipient" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRecipient(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipient is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipient requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipient: %w", err)
	}
	return oldValue.Recipient, nil
}

// ResetRecipient resets all changes to the "recipient" field.
func (m *NotificationMutation) ResetRecipient() {
	m.recipient = nil
}

// SetSubject sets the "subject" field.
func (m *NotificationMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *NotificationMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *NotificationMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[notification.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *NotificationMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[notification.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *NotificationMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, notification.FieldSubject)
}

// SetBody sets the "body" field.
func (m *NotificationMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *NotificationMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *NotificationMutation) ResetBody() {
	m.body = nil
}

// SetRefType sets the "ref_type" field.
func (m *NotificationMutation) SetRefType(s string) {
	m.ref_type = &s
}

// RefType returns the value of the "ref_type" field in the mutation.
func (m *NotificationMutation) RefType() (r string, exists bool) {
	v := m.ref_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRefType returns the old "ref_type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRefType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefType: %w", err)
	}
	return oldValue.RefType, nil
}

// ClearRefType clears the value of the "ref_type" field.
func (m *NotificationMutation) ClearRefType() {
	m.ref_type = nil
	m.clearedFields[notification.FieldRefType] = struct{}{}
}

// RefTypeCleared returns if the "ref_type" field was cleared in this mutation.
func (m *NotificationMutation) RefTypeCleared() bool {
	_, ok := m.clearedFields[notification.FieldRefType]
	return ok
}

// ResetRefType resets all changes to the "ref_type" field.
func (m *NotificationMutation) ResetRefType() {
	m.ref_type = nil
	delete(m.clearedFields, notification.FieldRefType)
}

// SetRefID sets the "ref_id" field.
func (m *NotificationMutation) SetRefID(s string) {
	m.ref_id = &s
}

// RefID returns the value of the "ref_id" field in the mutation.
func (m *NotificationMutation) RefID() (r string, exists bool) {
	v := m.ref_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRefID returns the old "ref_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRefID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefID: %w", err)
	}
	return oldValue.RefID, nil
}

// ClearRefID clears the value of the "ref_id" field.
func (m *NotificationMutation) ClearRefID() {
	m.ref_id = nil
	m.clearedFields[notification.FieldRefID] = struct{}{}
}

// RefIDCleared returns if the "ref_id" field was cleared in this mutation.
func (m *NotificationMutation) RefIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldRefID]
	return ok
}

// ResetRefID resets all changes to the "ref_id" field.
func (m *NotificationMutation) ResetRefID() {
	m.ref_id = nil
	delete(m.clearedFields, notification.FieldRefID)
}

// SetDedupeKey sets the "dedupe_key" field.
func (m *NotificationMutation) SetDedupeKey(s string) {
	m.dedupe_key = &s
}

// DedupeKey returns the value of the "dedupe_key" field in the mutation.
func (m *NotificationMutation) DedupeKey() (r string, exists bool) {
	v := m.dedupe_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupeKey returns the old "dedupe_key" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldDedupeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupeKey: %w", err)
	}
	return oldValue.DedupeKey, nil
}

// ClearDedupeKey clears the value of the "dedupe_key" field.
func (m *NotificationMutation) ClearDedupeKey() {
	m.dedupe_key = nil
	m.clearedFields[notification.FieldDedupeKey] = struct{}{}
}

// DedupeKeyCleared returns if the "dedupe_key" field was cleared in this mutation.
func (m *NotificationMutation) DedupeKeyCleared() bool {
	_, ok := m.clearedFields[notification.FieldDedupeKey]
	return ok
}

// ResetDedupeKey resets all changes to the "dedupe_key" field.
func (m *NotificationMutation) ResetDedupeKey() {
	m.dedupe_key = nil
	delete(m.clearedFields, notification.FieldDedupeKey)
}

// SetStatus sets the "status" field.
func (m *NotificationMutation) SetStatus(n notification.Status) {
	m.status = &n
}

// Status returns the value of the "status" field in the mutation.
func (m *NotificationMutation) Status() (r notification.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldStatus(ctx context.Context) (v notification.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *NotificationMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *NotificationMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *NotificationMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *NotificationMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *NotificationMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *NotificationMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastError sets the "last_error" field.
func (m *NotificationMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *NotificationMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *NotificationMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[notification.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *NotificationMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[notification.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *NotificationMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, notification.FieldLastError)
}

// SetScheduledFor sets the "scheduled_for" field.
func (m *NotificationMutation) SetScheduledFor(t time.Time) {
	m.scheduled_for = &t
}

// ScheduledFor returns the value of the "scheduled_for" field in the mutation.
func (m *NotificationMutation) ScheduledFor() (r time.Time, exists bool) {
	v := m.scheduled_for
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledFor returns the old "scheduled_for" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldScheduledFor(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledFor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledFor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledFor: %w", err)
	}
	return oldValue.ScheduledFor, nil
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (m *NotificationMutation) ClearScheduledFor() {
	m.scheduled_for = nil
	m.clearedFields[notification.FieldScheduledFor] = struct{}{}
}

// ScheduledForCleared returns if the "scheduled_for" field was cleared in this mutation.
func (m *NotificationMutation) ScheduledForCleared() bool {
	_, ok := m.clearedFields[notification.FieldScheduledFor]
	return ok
}

// ResetScheduledFor resets all changes to the "scheduled_for" field.
func (m *NotificationMutation) ResetScheduledFor() {
	m.scheduled_for = nil
	delete(m.clearedFields, notification.FieldScheduledFor)
}

// SetSentAt sets the "sent_at" field.
func (m *NotificationMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *NotificationMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *NotificationMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[notification.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *NotificationMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[notification.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *NotificationMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, notification.FieldSentAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.channel != nil {
		fields = append(fields, notification.FieldChannel)
	}
	if m.recipient != nil {
		fields = append(fields, notification.FieldRecipient)
	}
	if m.subject != nil {
		fields = append(fields, notification.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, notification.FieldBody)
	}
	if m.ref_type != nil {
		fields = append(fields, notification.FieldRefType)
	}
	if m.ref_id != nil {
		fields = append(fields, notification.FieldRefID)
	}
	if m.dedupe_key != nil {
		fields = append(fields, notification.FieldDedupeKey)
	}
	if m.status != nil {
		fields = append(fields, notification.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, notification.FieldAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, notification.FieldLastError)
	}
	if m.scheduled_for != nil {
		fields = append(fields, notification.FieldScheduledFor)
	}
	if m.sent_at != nil {
		fields = append(fields, notification.FieldSentAt)
	}
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldChannel:
		return m.Channel()
	case notification.FieldRecipient:
		return m.Recipient()
	case notification.FieldSubject:
		return m.Subject()
	case notification.FieldBody:
		return m.Body()
	case notification.FieldRefType:
		return m.RefType()
	case notification.FieldRefID:
		return m.RefID()
	case notification.FieldDedupeKey:
		return m.DedupeKey()
	case notification.FieldStatus:
		return m.Status()
	case notification.FieldAttempts:
		return m.Attempts()
	case notification.FieldLastError:
		return m.LastError()
	case notification.FieldScheduledFor:
		return m.ScheduledFor()
	case notification.FieldSentAt:
		return m.SentAt()
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldChannel:
		return m.OldChannel(ctx)
	case notification.FieldRecipient:
		return m.OldRecipient(ctx)
	case notification.FieldSubject:
		return m.OldSubject(ctx)
	case notification.FieldBody:
		return m.OldBody(ctx)
	case notification.FieldRefType:
		return m.OldRefType(ctx)
	case notification.FieldRefID:
		return m.OldRefID(ctx)
	case notification.FieldDedupeKey:
		return m.OldDedupeKey(ctx)
	case notification.FieldStatus:
		return m.OldStatus(ctx)
	case notification.FieldAttempts:
		return m.OldAttempts(ctx)
	case notification.FieldLastError:
		return m.OldLastError(ctx)
	case notification.FieldScheduledFor:
		return m.OldScheduledFor(ctx)
	case notification.FieldSentAt:
		return m.OldSentAt(ctx)
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldChannel:
		v, ok := value.(notification.Channel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case notification.FieldRecipient:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipient(v)
		return nil
	case notification.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case notification.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case notification.FieldRefType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefType(v)
		return nil
	case notification.FieldRefID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefID(v)
		return nil
	case notification.FieldDedupeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupeKey(v)
		return nil
	case notification.FieldStatus:
		v, ok := value.(notification.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case notification.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case notification.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case notification.FieldScheduledFor:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledFor(v)
		return nil
	case notification.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, notification.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case notification.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldSubject) {
		fields = append(fields, notification.FieldSubject)
	}
	if m.FieldCleared(notification.FieldRefType) {
		fields = append(fields, notification.FieldRefType)
	}
	if m.FieldCleared(notification.FieldRefID) {
		fields = append(fields, notification.FieldRefID)
	}
	if m.FieldCleared(notification.FieldDedupeKey) {
		fields = append(fields, notification.FieldDedupeKey)
	}
	if m.FieldCleared(notification.FieldLastError) {
		fields = append(fields, notification.FieldLastError)
	}
	if m.FieldCleared(notification.FieldScheduledFor) {
		fields = append(fields, notification.FieldScheduledFor)
	}
	if m.FieldCleared(notification.FieldSentAt) {
		fields = append(fields, notification.FieldSentAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldSubject:
		m.ClearSubject()
		return nil
	case notification.FieldRefType:
		m.ClearRefType()
		return nil
	case notification.FieldRefID:
		m.ClearRefID()
		return nil
	case notification.FieldDedupeKey:
		m.ClearDedupeKey()
		return nil
	case notification.FieldLastError:
		m.ClearLastError()
		return nil
	case notification.FieldScheduledFor:
		m.ClearScheduledFor()
		return nil
	case notification.FieldSentAt:
		m.ClearSentAt()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldChannel:
		m.ResetChannel()
		return nil
	case notification.FieldRecipient:
		m.ResetRecipient()
		return nil
	case notification.FieldSubject:
		m.ResetSubject()
		return nil
	case notification.FieldBody:
		m.ResetBody()
		return nil
	case notification.FieldRefType:
		m.ResetRefType()
		return nil
	case notification.FieldRefID:
		m.ResetRefID()
		return nil
	case notification.FieldDedupeKey:
		m.ResetDedupeKey()
		return nil
	case notification.FieldStatus:
		m.ResetStatus()
		return nil
	case notification.FieldAttempts:
		m.ResetAttempts()
		return nil
	case notification.FieldLastError:
		m.ResetLastError()
		return nil
	case notification.FieldScheduledFor:
		m.ResetScheduledFor()
		return nil
	case notification.FieldSentAt:
		m.ResetSentAt()
		return nil
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// PaymentRecordMutation represents an operation that mutates the PaymentRecord nodes in the graph.
type PaymentRecordMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	period_start       *time.Time
	period_end         *time.Time
	due_date           *time.Time
	buyer_amount       *float64
	addbuyer_amount    *float64
	supplier_amount    *float64
	addsupplier_amount *float64
	wex_amount         *float64
	addwex_amount      *float64
	buyer_status       *paymentrecord.BuyerStatus
	supplier_status    *paymentrecord.SupplierStatus
	buyer_paid_at      *time.Time
	supplier_paid_at   *time.Time
	external_ref       *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	engagement         *string
	clearedengagement  bool
	done               bool
	oldValue           func(context.Context) (*PaymentRecord, error)
	predicates         []predicate.PaymentRecord
}

var _ ent.Mutation = (*PaymentRecordMutation)(nil)

// paymentrecordOption allows management of the mutation configuration using functional options.
type paymentrecordOption func(*PaymentRecordMutation)

// newPaymentRecordMutation creates new mutation for the PaymentRecord entity.
func newPaymentRecordMutation(c config, op Op, opts ...paymentrecordOption) *PaymentRecordMutation {
	m := &PaymentRecordMutation{
		config:        c,
		op:            op,
		typ:           TypePaymentRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaymentRecordID sets the ID field of the mutation.
func withPaymentRecordID(id string) paymentrecordOption {
	return func(m *PaymentRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *PaymentRecord
		)
		m.oldValue = func(ctx context.Context) (*PaymentRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PaymentRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaymentRecord sets the old PaymentRecord of the mutation.
func withPaymentRecord(node *PaymentRecord) paymentrecordOption {
	return func(m *PaymentRecordMutation) {
		m.oldValue = func(context.Context) (*PaymentRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaymentRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaymentRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PaymentRecord entities.
func (m *PaymentRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaymentRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaymentRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PaymentRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEngagementID sets the "engagement_id" field.
func (m *PaymentRecordMutation) SetEngagementID(s string) {
	m.engagement = &s
}

// EngagementID returns the value of the "engagement_id" field in the mutation.
func (m *PaymentRecordMutation) EngagementID() (r string, exists bool) {
	v := m.engagement
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementID returns the old "engagement_id" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldEngagementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementID: %w", err)
	}
	return oldValue.EngagementID, nil
}

// ResetEngagementID resets all changes to the "engagement_id" field.
func (m *PaymentRecordMutation) ResetEngagementID() {
	m.engagement = nil
}

// SetPeriodStart sets the "period_start" field.
func (m *PaymentRecordMutation) SetPeriodStart(t time.Time) {
	m.period_start = &t
}

// PeriodStart returns the value of the "period_start" field in the mutation.
func (m *PaymentRecordMutation) PeriodStart() (r time.Time, exists bool) {
	v := m.period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodStart returns the old "period_start" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldPeriodStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodStart: %w", err)
	}
	return oldValue.PeriodStart, nil
}

// ResetPeriodStart resets all changes to the "period_start" field.
func (m *PaymentRecordMutation) ResetPeriodStart() {
	m.period_start = nil
}

// SetPeriodEnd sets the "period_end" field.
func (m *PaymentRecordMutation) SetPeriodEnd(t time.Time) {
	m.period_end = &t
}

// PeriodEnd returns the value of the "period_end" field in the mutation.
func (m *PaymentRecordMutation) PeriodEnd() (r time.Time, exists bool) {
	v := m.period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodEnd returns the old "period_end" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldPeriodEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodEnd: %w", err)
	}
	return oldValue.PeriodEnd, nil
}

// ResetPeriodEnd resets all changes to the "period_end" field.
func (m *PaymentRecordMutation) ResetPeriodEnd() {
	m.period_end = nil
}

// SetDueDate sets the "due_date" field.
func (m *PaymentRecordMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *PaymentRecordMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldDueDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *PaymentRecordMutation) ResetDueDate() {
	m.due_date = nil
}

// SetBuyerAmount sets the "buyer_amount" field.
func (m *PaymentRecordMutation) SetBuyerAmount(f float64) {
	m.buyer_amount = &f
	m.addbuyer_amount = nil
}

// BuyerAmount returns the value of the "buyer_amount" field in the mutation.
func (m *PaymentRecordMutation) BuyerAmount() (r float64, exists bool) {
	v := m.buyer_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerAmount returns the old "buyer_amount" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldBuyerAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerAmount: %w", err)
	}
	return oldValue.BuyerAmount, nil
}

// AddBuyerAmount adds f to the "buyer_amount" field.
func (m *PaymentRecordMutation) AddBuyerAmount(f float64) {
	if m.addbuyer_amount != nil {
		*m.addbuyer_amount += f
	} else {
		m.addbuyer_amount = &f
	}
}

// AddedBuyerAmount returns the value that was added to the "buyer_amount" field in this mutation.
func (m *PaymentRecordMutation) AddedBuyerAmount() (r float64, exists bool) {
	v := m.addbuyer_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetBuyerAmount resets all changes to the "buyer_amount" field.
func (m *PaymentRecordMutation) ResetBuyerAmount() {
	m.buyer_amount = nil
	m.addbuyer_amount = nil
}

// SetSupplierAmount sets the "supplier_amount" field.
func (m *PaymentRecordMutation) SetSupplierAmount(f float64) {
	m.supplier_amount = &f
	m.addsupplier_amount = nil
}

// SupplierAmount returns the value of the "supplier_amount" field in the mutation.
func (m *PaymentRecordMutation) SupplierAmount() (r float64, exists bool) {
	v := m.supplier_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierAmount returns the old "supplier_amount" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldSupplierAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierAmount: %w", err)
	}
	return oldValue.SupplierAmount, nil
}

// AddSupplierAmount adds f to the "supplier_amount" field.
func (m *PaymentRecordMutation) AddSupplierAmount(f float64) {
	if m.addsupplier_amount != nil {
		*m.addsupplier_amount += f
	} else {
		m.addsupplier_amount = &f
	}
}

// AddedSupplierAmount returns the value that was added to the "supplier_amount" field in this mutation.
func (m *PaymentRecordMutation) AddedSupplierAmount() (r float64, exists bool) {
	v := m.addsupplier_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetSupplierAmount resets all changes to the "supplier_amount" field.
func (m *PaymentRecordMutation) ResetSupplierAmount() {
	m.supplier_amount = nil
	m.addsupplier_amount = nil
}

// SetWexAmount sets the "wex_amount" field.
func (m *PaymentRecordMutation) SetWexAmount(f float64) {
	m.wex_amount = &f
	m.addwex_amount = nil
}

// WexAmount returns the value of the "wex_amount" field in the mutation.
func (m *PaymentRecordMutation) WexAmount() (r float64, exists bool) {
	v := m.wex_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldWexAmount returns the old "wex_amount" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldWexAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWexAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWexAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWexAmount: %w", err)
	}
	return oldValue.WexAmount, nil
}

// AddWexAmount adds f to the "wex_amount" field.
func (m *PaymentRecordMutation) AddWexAmount(f float64) {
	if m.addwex_amount != nil {
		*m.addwex_amount += f
	} else {
		m.addwex_amount = &f
	}
}

// AddedWexAmount returns the value that was added to the "wex_amount" field in this mutation.
func (m *PaymentRecordMutation) AddedWexAmount() (r float64, exists bool) {
	v := m.addwex_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetWexAmount resets all changes to the "wex_amount" field.
func (m *PaymentRecordMutation) ResetWexAmount() {
	m.wex_amount = nil
	m.addwex_amount = nil
}

// SetBuyerStatus sets the "buyer_status" field.
func (m *PaymentRecordMutation) SetBuyerStatus(ps paymentrecord.BuyerStatus) {
	m.buyer_status = &ps
}

// BuyerStatus returns the value of the "buyer_status" field in the mutation.
func (m *PaymentRecordMutation) BuyerStatus() (r paymentrecord.BuyerStatus, exists bool) {
	v := m.buyer_status
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerStatus returns the old "buyer_status" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldBuyerStatus(ctx context.Context) (v paymentrecord.BuyerStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerStatus: %w", err)
	}
	return oldValue.BuyerStatus, nil
}

// ResetBuyerStatus resets all changes to the "buyer_status" field.
func (m *PaymentRecordMutation) ResetBuyerStatus() {
	m.buyer_status = nil
}

// SetSupplierStatus sets the "supplier_status" field.
func (m *PaymentRecordMutation) SetSupplierStatus(ps paymentrecord.SupplierStatus) {
	m.supplier_status = &ps
}

// SupplierStatus returns the value of the "supplier_status" field in the mutation.
func (m *PaymentRecordMutation) SupplierStatus() (r paymentrecord.SupplierStatus, exists bool) {
	v := m.supplier_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierStatus returns the old "supplier_status" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldSupplierStatus(ctx context.Context) (v paymentrecord.SupplierStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierStatus: %w", err)
	}
	return oldValue.SupplierStatus, nil
}

// ResetSupplierStatus resets all changes to the "supplier_status" field.
func (m *PaymentRecordMutation) ResetSupplierStatus() {
	m.supplier_status = nil
}

// SetBuyerPaidAt sets the "buyer_paid_at" field.
func (m *PaymentRecordMutation) SetBuyerPaidAt(t time.Time) {
	m.buyer_paid_at = &t
}

// BuyerPaidAt returns the value of the "buyer_paid_at" field in the mutation.
func (m *PaymentRecordMutation) BuyerPaidAt() (r time.Time, exists bool) {
	v := m.buyer_paid_at
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerPaidAt returns the old "buyer_paid_at" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldBuyerPaidAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerPaidAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerPaidAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerPaidAt: %w", err)
	}
	return oldValue.BuyerPaidAt, nil
}

// ClearBuyerPaidAt clears the value of the "buyer_paid_at" field.
func (m *PaymentRecordMutation) ClearBuyerPaidAt() {
	m.buyer_paid_at = nil
	m.clearedFields[paymentrecord.FieldBuyerPaidAt] = struct{}{}
}

// BuyerPaidAtCleared returns if the "buyer_paid_at" field was cleared in this mutation.
func (m *PaymentRecordMutation) BuyerPaidAtCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldBuyerPaidAt]
	return ok
}

// ResetBuyerPaidAt resets all changes to the "buyer_paid_at" field.
func (m *PaymentRecordMutation) ResetBuyerPaidAt() {
	m.buyer_paid_at = nil
	delete(m.clearedFields, paymentrecord.FieldBuyerPaidAt)
}

// SetSupplierPaidAt sets the "supplier_paid_at" field.
func (m *PaymentRecordMutation) SetSupplierPaidAt(t time.Time) {
	m.supplier_paid_at = &t
}

// SupplierPaidAt returns the value of the "supplier_paid_at" field in the mutation.
func (m *PaymentRecordMutation) SupplierPaidAt() (r time.Time, exists bool) {
	v := m.supplier_paid_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierPaidAt returns the old "supplier_paid_at" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldSupplierPaidAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierPaidAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierPaidAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierPaidAt: %w", err)
	}
	return oldValue.SupplierPaidAt, nil
}

// ClearSupplierPaidAt clears the value of the "supplier_paid_at" field.
func (m *PaymentRecordMutation) ClearSupplierPaidAt() {
	m.supplier_paid_at = nil
	m.clearedFields[paymentrecord.FieldSupplierPaidAt] = struct{}{}
}

// SupplierPaidAtCleared returns if the "supplier_paid_at" field was cleared in this mutation.
func (m *PaymentRecordMutation) SupplierPaidAtCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldSupplierPaidAt]
	return ok
}

// ResetSupplierPaidAt resets all changes to the "supplier_paid_at" field.
func (m *PaymentRecordMutation) ResetSupplierPaidAt() {
	m.supplier_paid_at = nil
	delete(m.clearedFields, paymentrecord.FieldSupplierPaidAt)
}

// SetExternalRef sets the "external_ref" field.
func (m *PaymentRecordMutation) SetExternalRef(s string) {
	m.external_ref = &s
}

// ExternalRef returns the value of the "external_ref" field in the mutation.
func (m *PaymentRecordMutation) ExternalRef() (r string, exists bool) {
	v := m.external_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalRef returns the old "external_ref" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldExternalRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalRef: %w", err)
	}
	return oldValue.ExternalRef, nil
}

// ClearExternalRef clears the value of the "external_ref" field.
func (m *PaymentRecordMutation) ClearExternalRef() {
	m.external_ref = nil
	m.clearedFields[paymentrecord.FieldExternalRef] = struct{}{}
}

// ExternalRefCleared returns if the "external_ref" field was cleared in this mutation.
func (m *PaymentRecordMutation) ExternalRefCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldExternalRef]
	return ok
}

// ResetExternalRef resets all changes to the "external_ref" field.
func (m *PaymentRecordMutation) ResetExternalRef() {
	m.external_ref = nil
	delete(m.clearedFields, paymentrecord.FieldExternalRef)
}

// SetCreatedAt sets the "created_at" field.
func (m *PaymentRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaymentRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PaymentRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PaymentRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PaymentRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PaymentRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearEngagement clears the "engagement" edge to the Engagement entity.
func (m *PaymentRecordMutation) ClearEngagement() {
	m.clearedengagement = true
	m.clearedFields[paymentrecord.FieldEngagementID] = struct{}{}
}

// EngagementCleared reports if the "engagement" edge to the Engagement entity was cleared.
func (m *PaymentRecordMutation) EngagementCleared() bool {
	return m.clearedengagement
}

// EngagementIDs returns the "engagement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EngagementID instead. It exists only for internal usage by the builders.
func (m *PaymentRecordMutation) EngagementIDs() (ids []string) {
	if id := m.engagement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEngagement resets all changes to the "engagement" edge.
func (m *PaymentRecordMutation) ResetEngagement() {
	m.engagement = nil
	m.clearedengagement = false
}

// Where appends a list predicates to the PaymentRecordMutation builder.
func (m *PaymentRecordMutation) Where(ps ...predicate.PaymentRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaymentRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaymentRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PaymentRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaymentRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaymentRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PaymentRecord).
func (m *PaymentRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaymentRecordMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.engagement != nil {
		fields = append(fields, paymentrecord.FieldEngagementID)
	}
	if m.period_start != nil {
		fields = append(fields, paymentrecord.FieldPeriodStart)
	}
	if m.period_end != nil {
		fields = append(fields, paymentrecord.FieldPeriodEnd)
	}
	if m.due_date != nil {
		fields = append(fields, paymentrecord.FieldDueDate)
	}
	if m.buyer_amount != nil {
		fields = append(fields, paymentrecord.FieldBuyerAmount)
	}
	if m.supplier_amount != nil {
		fields = append(fields, paymentrecord.FieldSupplierAmount)
	}
	if m.wex_amount != nil {
		fields = append(fields, paymentrecord.FieldWexAmount)
	}
	if m.buyer_status != nil {
		fields = append(fields, paymentrecord.FieldBuyerStatus)
	}
	if m.supplier_status != nil {
		fields = append(fields, paymentrecord.FieldSupplierStatus)
	}
	if m.buyer_paid_at != nil {
		fields = append(fields, paymentrecord.FieldBuyerPaidAt)
	}
	if m.supplier_paid_at != nil {
		fields = append(fields, paymentrecord.FieldSupplierPaidAt)
	}
	if m.external_ref != nil {
		fields = append(fields, paymentrecord.FieldExternalRef)
	}
	if m.created_at != nil {
		fields = append(fields, paymentrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, paymentrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaymentRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paymentrecord.FieldEngagementID:
		return m.EngagementID()
	case paymentrecord.FieldPeriodStart:
		return m.PeriodStart()
	case paymentrecord.FieldPeriodEnd:
		return m.PeriodEnd()
	case paymentrecord.FieldDueDate:
		return m.DueDate()
	case paymentrecord.FieldBuyerAmount:
		return m.BuyerAmount()
	case paymentrecord.FieldSupplierAmount:
		return m.SupplierAmount()
	case paymentrecord.FieldWexAmount:
		return m.WexAmount()
	case paymentrecord.FieldBuyerStatus:
		return m.BuyerStatus()
	case paymentrecord.FieldSupplierStatus:
		return m.SupplierStatus()
	case paymentrecord.FieldBuyerPaidAt:
		return m.BuyerPaidAt()
	case paymentrecord.FieldSupplierPaidAt:
		return m.SupplierPaidAt()
	case paymentrecord.FieldExternalRef:
		return m.ExternalRef()
	case paymentrecord.FieldCreatedAt:
		return m.CreatedAt()
	case paymentrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaymentRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paymentrecord.FieldEngagementID:
		return m.OldEngagementID(ctx)
	case paymentrecord.FieldPeriodStart:
		return m.OldPeriodStart(ctx)
	case paymentrecord.FieldPeriodEnd:
		return m.OldPeriodEnd(ctx)
	case paymentrecord.FieldDueDate:
		return m.OldDueDate(ctx)
	case paymentrecord.FieldBuyerAmount:
		return m.OldBuyerAmount(ctx)
	case paymentrecord.FieldSupplierAmount:
		return m.OldSupplierAmount(ctx)
	case paymentrecord.FieldWexAmount:
		return m.OldWexAmount(ctx)
	case paymentrecord.FieldBuyerStatus:
		return m.OldBuyerStatus(ctx)
	case paymentrecord.FieldSupplierStatus:
		return m.OldSupplierStatus(ctx)
	case paymentrecord.FieldBuyerPaidAt:
		return m.OldBuyerPaidAt(ctx)
	case paymentrecord.FieldSupplierPaidAt:
		return m.OldSupplierPaidAt(ctx)
	case paymentrecord.FieldExternalRef:
		return m.OldExternalRef(ctx)
	case paymentrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case paymentrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PaymentRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paymentrecord.FieldEngagementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementID(v)
		return nil
	case paymentrecord.FieldPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodStart(v)
		return nil
	case paymentrecord.FieldPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodEnd(v)
		return nil
	case paymentrecord.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case paymentrecord.FieldBuyerAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerAmount(v)
		return nil
	case paymentrecord.FieldSupplierAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierAmount(v)
		return nil
	case paymentrecord.FieldWexAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWexAmount(v)
		return nil
	case paymentrecord.FieldBuyerStatus:
		v, ok := value.(paymentrecord.BuyerStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerStatus(v)
		return nil
	case paymentrecord.FieldSupplierStatus:
		v, ok := value.(paymentrecord.SupplierStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierStatus(v)
		return nil
	case paymentrecord.FieldBuyerPaidAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerPaidAt(v)
		return nil
	case paymentrecord.FieldSupplierPaidAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierPaidAt(v)
		return nil
	case paymentrecord.FieldExternalRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalRef(v)
		return nil
	case paymentrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case paymentrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaymentRecordMutation) AddedFields() []string {
	var fields []string
	if m.addbuyer_amount != nil {
		fields = append(fields, paymentrecord.FieldBuyerAmount)
	}
	if m.addsupplier_amount != nil {
		fields = append(fields, paymentrecord.FieldSupplierAmount)
	}
	if m.addwex_amount != nil {
		fields = append(fields, paymentrecord.FieldWexAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaymentRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paymentrecord.FieldBuyerAmount:
		return m.AddedBuyerAmount()
	case paymentrecord.FieldSupplierAmount:
		return m.AddedSupplierAmount()
	case paymentrecord.FieldWexAmount:
		return m.AddedWexAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paymentrecord.FieldBuyerAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBuyerAmount(v)
		return nil
	case paymentrecord.FieldSupplierAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSupplierAmount(v)
		return nil
	case paymentrecord.FieldWexAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWexAmount(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaymentRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paymentrecord.FieldBuyerPaidAt) {
		fields = append(fields, paymentrecord.FieldBuyerPaidAt)
	}
	if m.FieldCleared(paymentrecord.FieldSupplierPaidAt) {
		fields = append(fields, paymentrecord.FieldSupplierPaidAt)
	}
	if m.FieldCleared(paymentrecord.FieldExternalRef) {
		fields = append(fields, paymentrecord.FieldExternalRef)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaymentRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaymentRecordMutation) ClearField(name string) error {
	switch name {
	case paymentrecord.FieldBuyerPaidAt:
		m.ClearBuyerPaidAt()
		return nil
	case paymentrecord.FieldSupplierPaidAt:
		m.ClearSupplierPaidAt()
		return nil
	case paymentrecord.FieldExternalRef:
		m.ClearExternalRef()
		return nil
	}
	return fmt.Errorf("unknown PaymentRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaymentRecordMutation) ResetField(name string) error {
	switch name {
	case paymentrecord.FieldEngagementID:
		m.ResetEngagementID()
		return nil
	case paymentrecord.FieldPeriodStart:
		m.ResetPeriodStart()
		return nil
	case paymentrecord.FieldPeriodEnd:
		m.ResetPeriodEnd()
		return nil
	case paymentrecord.FieldDueDate:
		m.ResetDueDate()
		return nil
	case paymentrecord.FieldBuyerAmount:
		m.ResetBuyerAmount()
		return nil
	case paymentrecord.FieldSupplierAmount:
		m.ResetSupplierAmount()
		return nil
	case paymentrecord.FieldWexAmount:
		m.ResetWexAmount()
		return nil
	case paymentrecord.FieldBuyerStatus:
		m.ResetBuyerStatus()
		return nil
	case paymentrecord.FieldSupplierStatus:
		m.ResetSupplierStatus()
		return nil
	case paymentrecord.FieldBuyerPaidAt:
		m.ResetBuyerPaidAt()
		return nil
	case paymentrecord.FieldSupplierPaidAt:
		m.ResetSupplierPaidAt()
		return nil
	case paymentrecord.FieldExternalRef:
		m.ResetExternalRef()
		return nil
	case paymentrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case paymentrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PaymentRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaymentRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.engagement != nil {
		edges = append(edges, paymentrecord.EdgeEngagement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaymentRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case paymentrecord.EdgeEngagement:
		if id := m.engagement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaymentRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaymentRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaymentRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedengagement {
		edges = append(edges, paymentrecord.EdgeEngagement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaymentRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case paymentrecord.EdgeEngagement:
		return m.clearedengagement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaymentRecordMutation) ClearEdge(name string) error {
	switch name {
	case paymentrecord.EdgeEngagement:
		m.ClearEngagement()
		return nil
	}
	return fmt.Errorf("unknown PaymentRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaymentRecordMutation) ResetEdge(name string) error {
	switch name {
	case paymentrecord.EdgeEngagement:
		m.ResetEngagement()
		return nil
	}
	return fmt.Errorf("unknown PaymentRecord edge %s", name)
}

// PropertyKnowledgeMutation represents an operation that mutates the PropertyKnowledge nodes in the graph.
type PropertyKnowledgeMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	topic              *string
	content            *string
	source             *propertyknowledge.Source
	source_question_id *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	warehouse          *string
	clearedwarehouse   bool
	done               bool
	oldValue           func(context.Context) (*PropertyKnowledge, error)
	predicates         []predicate.PropertyKnowledge
}

var _ ent.Mutation = (*PropertyKnowledgeMutation)(nil)

// propertyknowledgeOption allows management of the mutation configuration using functional options.
type propertyknowledgeOption func(*PropertyKnowledgeMutation)

// newPropertyKnowledgeMutation creates new mutation for the PropertyKnowledge entity.
func newPropertyKnowledgeMutation(c config, op Op, opts ...propertyknowledgeOption) *PropertyKnowledgeMutation {
	m := &PropertyKnowledgeMutation{
		config:        c,
		op:            op,
		typ:           TypePropertyKnowledge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPropertyKnowledgeID sets the ID field of the mutation.
func withPropertyKnowledgeID(id string) propertyknowledgeOption {
	return func(m *PropertyKnowledgeMutation) {
		var (
			err   error
			once  sync.Once
			value *PropertyKnowledge
		)
		m.oldValue = func(ctx context.Context) (*PropertyKnowledge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PropertyKnowledge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPropertyKnowledge sets the old PropertyKnowledge of the mutation.
func withPropertyKnowledge(node *PropertyKnowledge) propertyknowledgeOption {
	return func(m *PropertyKnowledgeMutation) {
		m.oldValue = func(context.Context) (*PropertyKnowledge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PropertyKnowledgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PropertyKnowledgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PropertyKnowledge entities.
func (m *PropertyKnowledgeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PropertyKnowledgeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PropertyKnowledgeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PropertyKnowledge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWarehouseID sets the "warehouse_id" field.
func (m *PropertyKnowledgeMutation) SetWarehouseID(s string) {
	m.warehouse = &s
}

// WarehouseID returns the value of the "warehouse_id" field in the mutation.
func (m *PropertyKnowledgeMutation) WarehouseID() (r string, exists bool) {
	v := m.warehouse
	if v == nil {
		return
	}
	return *v, true
}

// OldWarehouseID returns the old "warehouse_id" field's value of the PropertyKnowledge entity.
// If the PropertyKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyKnowledgeMutation) OldWarehouseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarehouseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarehouseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarehouseID: %w", err)
	}
	return oldValue.WarehouseID, nil
}

// ResetWarehouseID resets all changes to the "warehouse_id" field.
func (m *PropertyKnowledgeMutation) ResetWarehouseID() {
	m.warehouse = nil
}

// SetTopic sets the "topic" field.
func (m *PropertyKnowledgeMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *PropertyKnowledgeMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the PropertyKnowledge entity.
// If the PropertyKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyKnowledgeMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *PropertyKnowledgeMutation) ResetTopic() {
	m.topic = nil
}

// SetContent sets the "content" field.
func (m *PropertyKnowledgeMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PropertyKnowledgeMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the PropertyKnowledge entity.
// If the PropertyKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyKnowledgeMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PropertyKnowledgeMutation) ResetContent() {
	m.content = nil
}

// SetSource sets the "source" field.
func (m *PropertyKnowledgeMutation) SetSource(pr propertyknowledge.Source) {
	m.source = &pr
}

// Source returns the value of the "source" field in the mutation.
func (m *PropertyKnowledgeMutation) Source() (r propertyknowledge.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the PropertyKnowledge entity.
// If the PropertyKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyKnowledgeMutation) OldSource(ctx context.Context) (v propertyknowledge.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *PropertyKnowledgeMutation) ResetSource() {
	m.source = nil
}

// SetSourceQuestionID sets the "source_question_id" field.
func (m *PropertyKnowledgeMutation) SetSourceQuestionID(s string) {
	m.source_question_id = &s
}

// SourceQuestionID returns the value of the "source_question_id" field in the mutation.
func (m *PropertyKnowledgeMutation) SourceQuestionID() (r string, exists bool) {
	v := m.source_question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceQuestionID returns the old "source_question_id" field's value of the PropertyKnowledge entity.
// If the PropertyKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyKnowledgeMutation) OldSourceQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceQuestionID: %w", err)
	}
	return oldValue.SourceQuestionID, nil
}

// ClearSourceQuestionID clears the value of the "source_question_id" field.
func (m *PropertyKnowledgeMutation) ClearSourceQuestionID() {
	m.source_question_id = nil
	m.clearedFields[propertyknowledge.FieldSourceQuestionID] = struct{}{}
}

// SourceQuestionIDCleared returns if the "source_question_id" field was cleared in this mutation.
func (m *PropertyKnowledgeMutation) SourceQuestionIDCleared() bool {
	_, ok := m.clearedFields[propertyknowledge.FieldSourceQuestionID]
	return ok
}

// ResetSourceQuestionID resets all changes to the "source_question_id" field.
func (m *PropertyKnowledgeMutation) ResetSourceQuestionID() {
	m.source_question_id = nil
	delete(m.clearedFields, propertyknowledge.FieldSourceQuestionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *PropertyKnowledgeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PropertyKnowledgeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PropertyKnowledge entity.
// If the PropertyKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyKnowledgeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PropertyKnowledgeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PropertyKnowledgeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PropertyKnowledgeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PropertyKnowledge entity.
// If the PropertyKnowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyKnowledgeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PropertyKnowledgeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (m *PropertyKnowledgeMutation) ClearWarehouse() {
	m.clearedwarehouse = true
	m.clearedFields[propertyknowledge.FieldWarehouseID] = struct{}{}
}

// WarehouseCleared reports if the "warehouse" edge to the Warehouse entity was cleared.
func (m *PropertyKnowledgeMutation) WarehouseCleared() bool {
	return m.clearedwarehouse
}

// WarehouseIDs returns the "warehouse" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WarehouseID instead. It exists only for internal usage by the builders.
func (m *PropertyKnowledgeMutation) WarehouseIDs() (ids []string) {
	if id := m.warehouse; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWarehouse resets all changes to the "warehouse" edge.
func (m *PropertyKnowledgeMutation) ResetWarehouse() {
	m.warehouse = nil
	m.clearedwarehouse = false
}

// Where appends a list predicates to the PropertyKnowledgeMutation builder.
func (m *PropertyKnowledgeMutation) Where(ps ...predicate.PropertyKnowledge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PropertyKnowledgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PropertyKnowledgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PropertyKnowledge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PropertyKnowledgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PropertyKnowledgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PropertyKnowledge).
func (m *PropertyKnowledgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PropertyKnowledgeMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.warehouse != nil {
		fields = append(fields, propertyknowledge.FieldWarehouseID)
	}
	if m.topic != nil {
		fields = append(fields, propertyknowledge.FieldTopic)
	}
	if m.content != nil {
		fields = append(fields, propertyknowledge.FieldContent)
	}
	if m.source != nil {
		fields = append(fields, propertyknowledge.FieldSource)
	}
	if m.source_question_id != nil {
		fields = append(fields, propertyknowledge.FieldSourceQuestionID)
	}
	if m.created_at != nil {
		fields = append(fields, propertyknowledge.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, propertyknowledge.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PropertyKnowledgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case propertyknowledge.FieldWarehouseID:
		return m.WarehouseID()
	case propertyknowledge.FieldTopic:
		return m.Topic()
	case propertyknowledge.FieldContent:
		return m.Content()
	case propertyknowledge.FieldSource:
		return m.Source()
	case propertyknowledge.FieldSourceQuestionID:
		return m.SourceQuestionID()
	case propertyknowledge.FieldCreatedAt:
		return m.CreatedAt()
	case propertyknowledge.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PropertyKnowledgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case propertyknowledge.FieldWarehouseID:
		return m.OldWarehouseID(ctx)
	case propertyknowledge.FieldTopic:
		return m.OldTopic(ctx)
	case propertyknowledge.FieldContent:
		return m.OldContent(ctx)
	case propertyknowledge.FieldSource:
		return m.OldSource(ctx)
	case propertyknowledge.FieldSourceQuestionID:
		return m.OldSourceQuestionID(ctx)
	case propertyknowledge.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case propertyknowledge.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PropertyKnowledge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PropertyKnowledgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case propertyknowledge.FieldWarehouseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarehouseID(v)
		return nil
	case propertyknowledge.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case propertyknowledge.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case propertyknowledge.FieldSource:
		v, ok := value.(propertyknowledge.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case propertyknowledge.FieldSourceQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceQuestionID(v)
		return nil
	case propertyknowledge.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case propertyknowledge.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PropertyKnowledge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PropertyKnowledgeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PropertyKnowledgeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PropertyKnowledgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PropertyKnowledge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PropertyKnowledgeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(propertyknowledge.FieldSourceQuestionID) {
		fields = append(fields, propertyknowledge.FieldSourceQuestionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PropertyKnowledgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PropertyKnowledgeMutation) ClearField(name string) error {
	switch name {
	case propertyknowledge.FieldSourceQuestionID:
		m.ClearSourceQuestionID()
		return nil
	}
	return fmt.Errorf("unknown PropertyKnowledge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PropertyKnowledgeMutation) ResetField(name string) error {
	switch name {
	case propertyknowledge.FieldWarehouseID:
		m.ResetWarehouseID()
		return nil
	case propertyknowledge.FieldTopic:
		m.ResetTopic()
		return nil
	case propertyknowledge.FieldContent:
		m.ResetContent()
		return nil
	case propertyknowledge.FieldSource:
		m.ResetSource()
		return nil
	case propertyknowledge.FieldSourceQuestionID:
		m.ResetSourceQuestionID()
		return nil
	case propertyknowledge.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case propertyknowledge.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PropertyKnowledge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PropertyKnowledgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.warehouse != nil {
		edges = append(edges, propertyknowledge.EdgeWarehouse)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PropertyKnowledgeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case propertyknowledge.EdgeWarehouse:
		if id := m.warehouse; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PropertyKnowledgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PropertyKnowledgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PropertyKnowledgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwarehouse {
		edges = append(edges, propertyknowledge.EdgeWarehouse)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PropertyKnowledgeMutation) EdgeCleared(name string) bool {
	switch name {
	case propertyknowledge.EdgeWarehouse:
		return m.clearedwarehouse
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PropertyKnowledgeMutation) ClearEdge(name string) error {
	switch name {
	case propertyknowledge.EdgeWarehouse:
		m.ClearWarehouse()
		return nil
	}
	return fmt.Errorf("unknown PropertyKnowledge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PropertyKnowledgeMutation) ResetEdge(name string) error {
	switch name {
	case propertyknowledge.EdgeWarehouse:
		m.ResetWarehouse()
		return nil
	}
	return fmt.Errorf("unknown PropertyKnowledge edge %s", name)
}

// PropertyQuestionMutation represents an operation that mutates the PropertyQuestion nodes in the graph.
type PropertyQuestionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	engagement_id    *string
	asked_by_phone   *string
	asked_by_user_id *string
	question_text    *string
	status           *propertyquestion.Status
	answer_text      *string
	answer_source    *propertyquestion.AnswerSource
	routed_at        *time.Time
	answered_at      *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	warehouse        *string
	clearedwarehouse bool
	done             bool
	oldValue         func(context.Context) (*PropertyQuestion, error)
	predicates       []predicate.PropertyQuestion
}

var _ ent.Mutation = (*PropertyQuestionMutation)(nil)

// propertyquestionOption allows management of the mutation configuration using functional options.
type propertyquestionOption func(*PropertyQuestionMutation)

// newPropertyQuestionMutation creates new mutation for the PropertyQuestion entity.
func newPropertyQuestionMutation(c config, op Op, opts ...propertyquestionOption) *PropertyQuestionMutation {
	m := &PropertyQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypePropertyQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPropertyQuestionID sets the ID field of the mutation.
func withPropertyQuestionID(id string) propertyquestionOption {
	return func(m *PropertyQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *PropertyQuestion
		)
		m.oldValue = func(ctx context.Context) (*PropertyQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PropertyQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPropertyQuestion sets the old PropertyQuestion of the mutation.
func withPropertyQuestion(node *PropertyQuestion) propertyquestionOption {
	return func(m *PropertyQuestionMutation) {
		m.oldValue = func(context.Context) (*PropertyQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PropertyQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PropertyQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PropertyQuestion entities.
func (m *PropertyQuestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PropertyQuestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PropertyQuestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PropertyQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWarehouseID sets the "warehouse_id" field.
func (m *PropertyQuestionMutation) SetWarehouseID(s string) {
	m.warehouse = &s
}

// WarehouseID returns the value of the "warehouse_id" field in the mutation.
func (m *PropertyQuestionMutation) WarehouseID() (r string, exists bool) {
	v := m.warehouse
	if v == nil {
		return
	}
	return *v, true
}

// OldWarehouseID returns the old "warehouse_id" field's value of the PropertyQuestion entity.
// If the PropertyQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyQuestionMutation) OldWarehouseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarehouseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarehouseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarehouseID: %w", err)
	}
	return oldValue.WarehouseID, nil
}

// ResetWarehouseID resets all changes to the "warehouse_id" field.
func (m *PropertyQuestionMutation) ResetWarehouseID() {
	m.warehouse = nil
}

// SetEngagementID sets the "engagement_id" field.
func (m *PropertyQuestionMutation) SetEngagementID(s string) {
	m.engagement_id = &s
}

// EngagementID returns the value of the "engagement_id" field in the mutation.
func (m *PropertyQuestionMutation) EngagementID() (r string, exists bool) {
	v := m.engagement_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementID returns the old "engagement_id" field's value of the PropertyQuestion entity.
// If the PropertyQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyQuestionMutation) OldEngagementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementID: %w", err)
	}
	return oldValue.EngagementID, nil
}

// ClearEngagementID clears the value of the "engagement_id" field.
func (m *PropertyQuestionMutation) ClearEngagementID() {
	m.engagement_id = nil
	m.clearedFields[propertyquestion.FieldEngagementID] = struct{}{}
}

// EngagementIDCleared returns if the "engagement_id" field was cleared in this mutation.
func (m *PropertyQuestionMutation) EngagementIDCleared() bool {
	_, ok := m.clearedFields[propertyquestion.FieldEngagementID]
	return ok
}

// ResetEngagementID resets all changes to the "engagement_id" field.
func (m *PropertyQuestionMutation) ResetEngagementID() {
	m.engagement_id = nil
	delete(m.clearedFields, propertyquestion.FieldEngagementID)
}

// SetAskedByPhone sets the "asked_by_phone" field.
func (m *PropertyQuestionMutation) SetAskedByPhone(s string) {
	m.asked_by_phone = &s
}

// AskedByPhone returns the value of the "asked_by_phone" field in the mutation.
func (m *PropertyQuestionMutation) AskedByPhone() (r string, exists bool) {
	v := m.asked_by_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldAskedByPhone returns the old "asked_by_phone" field's value of the PropertyQuestion entity.
// If the PropertyQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyQuestionMutation) OldAskedByPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAskedByPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAskedByPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAskedByPhone: %w", err)
	}
	return oldValue.AskedByPhone, nil
}

// ClearAskedByPhone clears the value of the "asked_by_phone" field.
func (m *PropertyQuestionMutation) ClearAskedByPhone() {
	m.asked_by_phone = nil
	m.clearedFields[propertyquestion.FieldAskedByPhone] = struct{}{}
}

// AskedByPhoneCleared returns if the "asked_by_phone" field was cleared in this mutation.
func (m *PropertyQuestionMutation) AskedByPhoneCleared() bool {
	_, ok := m.clearedFields[propertyquestion.FieldAskedByPhone]
	return ok
}

// ResetAskedByPhone resets all changes to the "asked_by_phone" field.
func (m *PropertyQuestionMutation) ResetAskedByPhone() {
	m.asked_by_phone = nil
	delete(m.clearedFields, propertyquestion.FieldAskedByPhone)
}

// SetAskedByUserID sets the "asked_by_user_id" field.
func (m *PropertyQuestionMutation) SetAskedByUserID(s string) {
	m.asked_by_user_id = &s
}

// AskedByUserID returns the value of the "asked_by_user_id" field in the mutation.
func (m *PropertyQuestionMutation) AskedByUserID() (r string, exists bool) {
	v := m.asked_by_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAskedByUserID returns the old "asked_by_user_id" field's value of the PropertyQuestion entity.
// If the PropertyQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyQuestionMutation) OldAskedByUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAskedByUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAskedByUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAskedByUserID: %w", err)
	}
	return oldValue.AskedByUserID, nil
}

// ClearAskedByUserID clears the value of the "asked_by_user_id" field.
func (m *PropertyQuestionMutation) ClearAskedByUserID() {
	m.asked_by_user_id = nil
	m.clearedFields[propertyquestion.FieldAskedByUserID] = struct{}{}
}

// AskedByUserIDCleared returns if the "asked_by_user_id" field was cleared in this mutation.
func (m *PropertyQuestionMutation) AskedByUserIDCleared() bool {
	_, ok := m.clearedFields[propertyquestion.FieldAskedByUserID]
	return ok
}

// ResetAskedByUserID resets all changes to the "asked_by_user_id" field.
func (m *PropertyQuestionMutation) ResetAskedByUserID() {
	m.asked_by_user_id = nil
	delete(m.clearedFields, propertyquestion.FieldAskedByUserID)
}

// SetQuestionText sets the "question_text" field.
func (m *PropertyQuestionMutation) SetQuestionText(s string) {
	m.question_text = &s
}

// QuestionText returns the value of the "question_text" field in the mutation.
func (m *PropertyQuestionMutation) QuestionText() (r string, exists bool) {
	v := m.question_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionText returns the old "question_text" field's value of the PropertyQuestion entity.
// If the PropertyQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyQuestionMutation) OldQuestionText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionText: %w", err)
	}
	return oldValue.QuestionText, nil
}

// ResetQuestionText resets all changes to the "question_text" field.
func (m *PropertyQuestionMutation) ResetQuestionText() {
	m.question_text = nil
}

// SetStatus sets the "status" field.
func (m *PropertyQuestionMutation) SetStatus(pr propertyquestion.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *PropertyQuestionMutation) Status() (r propertyquestion.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PropertyQuestion entity.
// If the PropertyQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyQuestionMutation) OldStatus(ctx context.Context) (v propertyquestion.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PropertyQuestionMutation) ResetStatus() {
	m.status = nil
}

// SetAnswerText sets the "answer_text" field.
func (m *PropertyQuestionMutation) SetAnswerText(s string) {
	m.answer_text = &s
}

// AnswerText returns the value of the "answer_text" field in the mutation.
func (m *PropertyQuestionMutation) AnswerText() (r string, exists bool) {
	v := m.answer_text
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerText returns the old "answer_text" field's value of the PropertyQuestion entity.
// If the PropertyQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyQuestionMutation) OldAnswerText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerText: %w", err)
	}
	return oldValue.AnswerText, nil
}

// ClearAnswerText clears the value of the "answer_text" field.
func (m *PropertyQuestionMutation) ClearAnswerText() {
	m.answer_text = nil
	m.clearedFields[propertyquestion.FieldAnswerText] = struct{}{}
}

// AnswerTextCleared returns if the "answer_text" field was cleared in this mutation.
func (m *PropertyQuestionMutation) AnswerTextCleared() bool {
	_, ok := m.clearedFields[propertyquestion.FieldAnswerText]
	return ok
}

// ResetAnswerText resets all changes to the "answer_text" field.
func (m *PropertyQuestionMutation) ResetAnswerText() {
	m.answer_text = nil
	delete(m.clearedFields, propertyquestion.FieldAnswerText)
}

// SetAnswerSource sets the "answer_source" field.
func (m *PropertyQuestionMutation) SetAnswerSource(ps propertyquestion.AnswerSource) {
	m.answer_source = &ps
}

// AnswerSource returns the value of the "answer_source" field in the mutation.
func (m *PropertyQuestionMutation) AnswerSource() (r propertyquestion.AnswerSource, exists bool) {
	v := m.answer_source
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerSource returns the old "answer_source" field's value of the PropertyQuestion entity.
// If the PropertyQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyQuestionMutation) OldAnswerSource(ctx context.Context) (v *propertyquestion.AnswerSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerSource: %w", err)
	}
	return oldValue.AnswerSource, nil
}

// ClearAnswerSource clears the value of the "answer_source" field.
func (m *PropertyQuestionMutation) ClearAnswerSource() {
	m.answer_source = nil
	m.clearedFields[propertyquestion.FieldAnswerSource] = struct{}{}
}

// AnswerSourceCleared returns if the "answer_source" field was cleared in this mutation.
func (m *PropertyQuestionMutation) AnswerSourceCleared() bool {
	_, ok := m.clearedFields[propertyquestion.FieldAnswerSource]
	return ok
}

// ResetAnswerSource resets all changes to the "answer_source" field.
func (m *PropertyQuestionMutation) ResetAnswerSource() {
	m.answer_source = nil
	delete(m.clearedFields, propertyquestion.FieldAnswerSource)
}

// SetRoutedAt sets the "routed_at" field.
func (m *PropertyQuestionMutation) SetRoutedAt(t time.Time) {
	m.routed_at = &t
}

// RoutedAt returns the value of the "routed_at" field in the mutation.
func (m *PropertyQuestionMutation) RoutedAt() (r time.Time, exists bool) {
	v := m.routed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRoutedAt returns the old "routed_at" field's value of the PropertyQuestion entity.
// If the PropertyQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyQuestionMutation) OldRoutedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoutedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoutedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoutedAt: %w", err)
	}
	return oldValue.RoutedAt, nil
}

// ClearRoutedAt clears the value of the "routed_at" field.
func (m *PropertyQuestionMutation) ClearRoutedAt() {
	m.routed_at = nil
	m.clearedFields[propertyquestion.FieldRoutedAt] = struct{}{}
}

// RoutedAtCleared returns if the "routed_at" field was cleared in this mutation.
func (m *PropertyQuestionMutation) RoutedAtCleared() bool {
	_, ok := m.clearedFields[propertyquestion.FieldRoutedAt]
	return ok
}

// ResetRoutedAt resets all changes to the "routed_at" field.
func (m *PropertyQuestionMutation) ResetRoutedAt() {
	m.routed_at = nil
	delete(m.clearedFields, propertyquestion.FieldRoutedAt)
}

// SetAnsweredAt sets the "answered_at" field.
func (m *PropertyQuestionMutation) SetAnsweredAt(t time.Time) {
	m.answered_at = &t
}

// AnsweredAt returns the value of the "answered_at" field in the mutation.
func (m *PropertyQuestionMutation) AnsweredAt() (r time.Time, exists bool) {
	v := m.answered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweredAt returns the old "answered_at" field's value of the PropertyQuestion entity.
// If the PropertyQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyQuestionMutation) OldAnsweredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweredAt: %w", err)
	}
	return oldValue.AnsweredAt, nil
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (m *PropertyQuestionMutation) ClearAnsweredAt() {
	m.answered_at = nil
	m.clearedFields[propertyquestion.FieldAnsweredAt] = struct{}{}
}

// AnsweredAtCleared returns if the "answered_at" field was cleared in this mutation.
func (m *PropertyQuestionMutation) AnsweredAtCleared() bool {
	_, ok := m.clearedFields[propertyquestion.FieldAnsweredAt]
	return ok
}

// ResetAnsweredAt resets all changes to the "answered_at" field.
func (m *PropertyQuestionMutation) ResetAnsweredAt() {
	m.answered_at = nil
	delete(m.clearedFields, propertyquestion.FieldAnsweredAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *PropertyQuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PropertyQuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PropertyQuestion entity.
// If the PropertyQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyQuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PropertyQuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PropertyQuestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PropertyQuestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PropertyQuestion entity.
// If the PropertyQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyQuestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PropertyQuestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (m *PropertyQuestionMutation) ClearWarehouse() {
	m.clearedwarehouse = true
	m.clearedFields[propertyquestion.FieldWarehouseID] = struct{}{}
}

// WarehouseCleared reports if the "warehouse" edge to the Warehouse entity was cleared.
func (m *PropertyQuestionMutation) WarehouseCleared() bool {
	return m.clearedwarehouse
}

// WarehouseIDs returns the "warehouse" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WarehouseID instead. It exists only for internal usage by the builders.
func (m *PropertyQuestionMutation) WarehouseIDs() (ids []string) {
	if id := m.warehouse; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWarehouse resets all changes to the "warehouse" edge.
func (m *PropertyQuestionMutation) ResetWarehouse() {
	m.warehouse = nil
	m.clearedwarehouse = false
}

// Where appends a list predicates to the PropertyQuestionMutation builder.
func (m *PropertyQuestionMutation) Where(ps ...predicate.PropertyQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PropertyQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PropertyQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PropertyQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PropertyQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PropertyQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PropertyQuestion).
func (m *PropertyQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PropertyQuestionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.warehouse != nil {
		fields = append(fields, propertyquestion.FieldWarehouseID)
	}
	if m.engagement_id != nil {
		fields = append(fields, propertyquestion.FieldEngagementID)
	}
	if m.asked_by_phone != nil {
		fields = append(fields, propertyquestion.FieldAskedByPhone)
	}
	if m.asked_by_user_id != nil {
		fields = append(fields, propertyquestion.FieldAskedByUserID)
	}
	if m.question_text != nil {
		fields = append(fields, propertyquestion.FieldQuestionText)
	}
	if m.status != nil {
		fields = append(fields, propertyquestion.FieldStatus)
	}
	if m.answer_text != nil {
		fields = append(fields, propertyquestion.FieldAnswerText)
	}
	if m.answer_source != nil {
		fields = append(fields, propertyquestion.FieldAnswerSource)
	}
	if m.routed_at != nil {
		fields = append(fields, propertyquestion.FieldRoutedAt)
	}
	if m.answered_at != nil {
		fields = append(fields, propertyquestion.FieldAnsweredAt)
	}
	if m.created_at != nil {
		fields = append(fields, propertyquestion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, propertyquestion.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PropertyQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case propertyquestion.FieldWarehouseID:
		return m.WarehouseID()
	case propertyquestion.FieldEngagementID:
		return m.EngagementID()
	case propertyquestion.FieldAskedByPhone:
		return m.AskedByPhone()
	case propertyquestion.FieldAskedByUserID:
		return m.AskedByUserID()
	case propertyquestion.FieldQuestionText:
		return m.QuestionText()
	case propertyquestion.FieldStatus:
		return m.Status()
	case propertyquestion.FieldAnswerText:
		return m.AnswerText()
	case propertyquestion.FieldAnswerSource:
		return m.AnswerSource()
	case propertyquestion.FieldRoutedAt:
		return m.RoutedAt()
	case propertyquestion.FieldAnsweredAt:
		return m.AnsweredAt()
	case propertyquestion.FieldCreatedAt:
		return m.CreatedAt()
	case propertyquestion.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PropertyQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case propertyquestion.FieldWarehouseID:
		return m.OldWarehouseID(ctx)
	case propertyquestion.FieldEngagementID:
		return m.OldEngagementID(ctx)
	case propertyquestion.FieldAskedByPhone:
		return m.OldAskedByPhone(ctx)
	case propertyquestion.FieldAskedByUserID:
		return m.OldAskedByUserID(ctx)
	case propertyquestion.FieldQuestionText:
		return m.OldQuestionText(ctx)
	case propertyquestion.FieldStatus:
		return m.OldStatus(ctx)
	case propertyquestion.FieldAnswerText:
		return m.OldAnswerText(ctx)
	case propertyquestion.FieldAnswerSource:
		return m.OldAnswerSource(ctx)
	case propertyquestion.FieldRoutedAt:
		return m.OldRoutedAt(ctx)
	case propertyquestion.FieldAnsweredAt:
		return m.OldAnsweredAt(ctx)
	case propertyquestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case propertyquestion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PropertyQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PropertyQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case propertyquestion.FieldWarehouseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarehouseID(v)
		return nil
	case propertyquestion.FieldEngagementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementID(v)
		return nil
	case propertyquestion.FieldAskedByPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAskedByPhone(v)
		return nil
	case propertyquestion.FieldAskedByUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAskedByUserID(v)
		return nil
	case propertyquestion.FieldQuestionText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionText(v)
		return nil
	case propertyquestion.FieldStatus:
		v, ok := value.(propertyquestion.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case propertyquestion.FieldAnswerText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerText(v)
		return nil
	case propertyquestion.FieldAnswerSource:
		v, ok := value.(propertyquestion.AnswerSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerSource(v)
		return nil
	case propertyquestion.FieldRoutedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoutedAt(v)
		return nil
	case propertyquestion.FieldAnsweredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweredAt(v)
		return nil
	case propertyquestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case propertyquestion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PropertyQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PropertyQuestionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PropertyQuestionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PropertyQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PropertyQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PropertyQuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(propertyquestion.FieldEngagementID) {
		fields = append(fields, propertyquestion.FieldEngagementID)
	}
	if m.FieldCleared(propertyquestion.FieldAskedByPhone) {
		fields = append(fields, propertyquestion.FieldAskedByPhone)
	}
	if m.FieldCleared(propertyquestion.FieldAskedByUserID) {
		fields = append(fields, propertyquestion.FieldAskedByUserID)
	}
	if m.FieldCleared(propertyquestion.FieldAnswerText) {
		fields = append(fields, propertyquestion.FieldAnswerText)
	}
	if m.FieldCleared(propertyquestion.FieldAnswerSource) {
		fields = append(fields, propertyquestion.FieldAnswerSource)
	}
	if m.FieldCleared(propertyquestion.FieldRoutedAt) {
		fields = append(fields, propertyquestion.FieldRoutedAt)
	}
	if m.FieldCleared(propertyquestion.FieldAnsweredAt) {
		fields = append(fields, propertyquestion.FieldAnsweredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PropertyQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PropertyQuestionMutation) ClearField(name string) error {
	switch name {
	case propertyquestion.FieldEngagementID:
		m.ClearEngagementID()
		return nil
	case propertyquestion.FieldAskedByPhone:
		m.ClearAskedByPhone()
		return nil
	case propertyquestion.FieldAskedByUserID:
		m.ClearAskedByUserID()
		return nil
	case propertyquestion.FieldAnswerText:
		m.ClearAnswerText()
		return nil
	case propertyquestion.FieldAnswerSource:
		m.ClearAnswerSource()
		return nil
	case propertyquestion.FieldRoutedAt:
		m.ClearRoutedAt()
		return nil
	case propertyquestion.FieldAnsweredAt:
		m.ClearAnsweredAt()
		return nil
	}
	return fmt.Errorf("unknown PropertyQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PropertyQuestionMutation) ResetField(name string) error {
	switch name {
	case propertyquestion.FieldWarehouseID:
		m.ResetWarehouseID()
		return nil
	case propertyquestion.FieldEngagementID:
		m.ResetEngagementID()
		return nil
	case propertyquestion.FieldAskedByPhone:
		m.ResetAskedByPhone()
		return nil
	case propertyquestion.FieldAskedByUserID:
		m.ResetAskedByUserID()
		return nil
	case propertyquestion.FieldQuestionText:
		m.ResetQuestionText()
		return nil
	case propertyquestion.FieldStatus:
		m.ResetStatus()
		return nil
	case propertyquestion.FieldAnswerText:
		m.ResetAnswerText()
		return nil
	case propertyquestion.FieldAnswerSource:
		m.ResetAnswerSource()
		return nil
	case propertyquestion.FieldRoutedAt:
		m.ResetRoutedAt()
		return nil
	case propertyquestion.FieldAnsweredAt:
		m.ResetAnsweredAt()
		return nil
	case propertyquestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case propertyquestion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PropertyQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PropertyQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.warehouse != nil {
		edges = append(edges, propertyquestion.EdgeWarehouse)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PropertyQuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case propertyquestion.EdgeWarehouse:
		if id := m.warehouse; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PropertyQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PropertyQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PropertyQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwarehouse {
		edges = append(edges, propertyquestion.EdgeWarehouse)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PropertyQuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case propertyquestion.EdgeWarehouse:
		return m.clearedwarehouse
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PropertyQuestionMutation) ClearEdge(name string) error {
	switch name {
	case propertyquestion.EdgeWarehouse:
		m.ClearWarehouse()
		return nil
	}
	return fmt.Errorf("unknown PropertyQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PropertyQuestionMutation) ResetEdge(name string) error {
	switch name {
	case propertyquestion.EdgeWarehouse:
		m.ResetWarehouse()
		return nil
	}
	return fmt.Errorf("unknown PropertyQuestion edge %s", name)
}

// SearchSessionMutation represents an operation that mutates the SearchSession nodes in the graph.
type SearchSessionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	token                *string
	phone                *string
	buyer_need_id        *string
	criteria             *map[string]interface{}
	result_matches       *[]string
	appendresult_matches []string
	result_count         *int
	addresult_count      *int
	dla_triggered        *bool
	expires_at           *time.Time
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SearchSession, error)
	predicates           []predicate.SearchSession
}

var _ ent.Mutation = (*SearchSessionMutation)(nil)

// searchsessionOption allows management of the mutation configuration using functional options.
type searchsessionOption func(*SearchSessionMutation)

// newSearchSessionMutation creates new mutation for the SearchSession entity.
func newSearchSessionMutation(c config, op Op, opts ...searchsessionOption) *SearchSessionMutation {
	m := &SearchSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSearchSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSearchSessionID sets the ID field of the mutation.
func withSearchSessionID(id string) searchsessionOption {
	return func(m *SearchSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *SearchSession
		)
		m.oldValue = func(ctx context.Context) (*SearchSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SearchSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSearchSession sets the old SearchSession of the mutation.
func withSearchSession(node *SearchSession) searchsessionOption {
	return func(m *SearchSessionMutation) {
		m.oldValue = func(context.Context) (*SearchSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SearchSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SearchSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SearchSession entities.
func (m *SearchSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SearchSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SearchSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SearchSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetToken sets the "token" field.
func (m *SearchSessionMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *SearchSessionMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *SearchSessionMutation) ResetToken() {
	m.token = nil
}

// SetPhone sets the "phone" field.
func (m *SearchSessionMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *SearchSessionMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *SearchSessionMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[searchsession.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *SearchSessionMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *SearchSessionMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, searchsession.FieldPhone)
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (m *SearchSessionMutation) SetBuyerNeedID(s string) {
	m.buyer_need_id = &s
}

// BuyerNeedID returns the value of the "buyer_need_id" field in the mutation.
func (m *SearchSessionMutation) BuyerNeedID() (r string, exists bool) {
	v := m.buyer_need_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerNeedID returns the old "buyer_need_id" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldBuyerNeedID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerNeedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerNeedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerNeedID: %w", err)
	}
	return oldValue.BuyerNeedID, nil
}

// ClearBuyerNeedID clears the value of the "buyer_need_id" field.
func (m *SearchSessionMutation) ClearBuyerNeedID() {
	m.buyer_need_id = nil
	m.clearedFields[searchsession.FieldBuyerNeedID] = struct{}{}
}

// BuyerNeedIDCleared returns if the "buyer_need_id" field was cleared in this mutation.
func (m *SearchSessionMutation) BuyerNeedIDCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldBuyerNeedID]
	return ok
}

// ResetBuyerNeedID resets all changes to the "buyer_need_id" field.
func (m *SearchSessionMutation) ResetBuyerNeedID() {
	m.buyer_need_id = nil
	delete(m.clearedFields, searchsession.FieldBuyerNeedID)
}

// SetCriteria sets the "criteria" field.
func (m *SearchSessionMutation) SetCriteria(value map[string]interface{}) {
	m.criteria = &value
}

// Criteria returns the value of the "criteria" field in the mutation.
func (m *SearchSessionMutation) Criteria() (r map[string]interface{}, exists bool) {
	v := m.criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldCriteria returns the old "criteria" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldCriteria(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriteria: %w", err)
	}
	return oldValue.Criteria, nil
}

// ResetCriteria resets all changes to the "criteria" field.
func (m *SearchSessionMutation) ResetCriteria() {
	m.criteria = nil
}

// SetResultMatches sets the "result_matches" field.
func (m *SearchSessionMutation) SetResultMatches(s []string) {
	m.result_matches = &s
	m.appendresult_matches = nil
}

// ResultMatches returns the value of the "result_matches" field in the mutation.
func (m *SearchSessionMutation) ResultMatches() (r []string, exists bool) {
	v := m.result_matches
	if v == nil {
		return
	}
	return *v, true
}

// OldResultMatches returns the old "result_matches" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldResultMatches(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultMatches is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultMatches requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultMatches: %w", err)
	}
	return oldValue.ResultMatches, nil
}

// AppendResultMatches adds s to the "result_matches" field.
func (m *SearchSessionMutation) AppendResultMatches(s []string) {
	m.appendresult_matches = append(m.appendresult_matches, s...)
}

// AppendedResultMatches returns the list of values that were appended to the "result_matches" field in this mutation.
func (m *SearchSessionMutation) AppendedResultMatches() ([]string, bool) {
	if len(m.appendresult_matches) == 0 {
		return nil, false
	}
	return m.appendresult_matches, true
}

// ClearResultMatches clears the value of the "result_matches" field.
func (m *SearchSessionMutation) ClearResultMatches() {
	m.result_matches = nil
	m.appendresult_matches = nil
	m.clearedFields[searchsession.FieldResultMatches] = struct{}{}
}

// ResultMatchesCleared returns if the "result_matches" field was cleared in this mutation.
func (m *SearchSessionMutation) ResultMatchesCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldResultMatches]
	return ok
}

// ResetResultMatches resets all changes to the "result_matches" field.
func (m *SearchSessionMutation) ResetResultMatches() {
	m.result_matches = nil
	m.appendresult_matches = nil
	delete(m.clearedFields, searchsession.FieldResultMatches)
}

// SetResultCount sets the "result_count" field.
func (m *SearchSessionMutation) SetResultCount(i int) {
	m.result_count = &i
	m.addresult_count = nil
}

// ResultCount returns the value of the "result_count" field in the mutation.
func (m *SearchSessionMutation) ResultCount() (r int, exists bool) {
	v := m.result_count
	if v == nil {
		return
	}
	return *v, true
}

// OldResultCount returns the old "result_count" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldResultCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultCount: %w", err)
	}
	return oldValue.ResultCount, nil
}

// AddResultCount adds i to the "result_count" field.
func (m *SearchSessionMutation) AddResultCount(i int) {
	if m.addresult_count != nil {
		*m.addresult_count += i
	} else {
		m.addresult_count = &i
	}
}

// AddedResultCount returns the value that was added to the "result_count" field in this mutation.
func (m *SearchSessionMutation) AddedResultCount() (r int, exists bool) {
	v := m.addresult_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetResultCount resets all changes to the "result_count" field.
func (m *SearchSessionMutation) ResetResultCount() {
	m.result_count = nil
	m.addresult_count = nil
}

// SetDlaTriggered sets the "dla_triggered" field.
func (m *SearchSessionMutation) SetDlaTriggered(b bool) {
	m.dla_triggered = &b
}

// DlaTriggered returns the value of the "dla_triggered" field in the mutation.
func (m *SearchSessionMutation) DlaTriggered() (r bool, exists bool) {
	v := m.dla_triggered
	if v == nil {
		return
	}
	return *v, true
}

// OldDlaTriggered returns the old "dla_triggered" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldDlaTriggered(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDlaTriggered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDlaTriggered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDlaTriggered: %w", err)
	}
	return oldValue.DlaTriggered, nil
}

// ResetDlaTriggered resets all changes to the "dla_triggered" field.
func (m *SearchSessionMutation) ResetDlaTriggered() {
	m.dla_triggered = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *SearchSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *SearchSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *SearchSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SearchSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SearchSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SearchSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SearchSessionMutation builder.
func (m *SearchSessionMutation) Where(ps ...predicate.SearchSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SearchSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SearchSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SearchSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SearchSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SearchSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SearchSession).
func (m *SearchSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SearchSessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.token != nil {
		fields = append(fields, searchsession.FieldToken)
	}
	if m.phone != nil {
		fields = append(fields, searchsession.FieldPhone)
	}
	if m.buyer_need_id != nil {
		fields = append(fields, searchsession.FieldBuyerNeedID)
	}
	if m.criteria != nil {
		fields = append(fields, searchsession.FieldCriteria)
	}
	if m.result_matches != nil {
		fields = append(fields, searchsession.FieldResultMatches)
	}
	if m.result_count != nil {
		fields = append(fields, searchsession.FieldResultCount)
	}
	if m.dla_triggered != nil {
		fields = append(fields, searchsession.FieldDlaTriggered)
	}
	if m.expires_at != nil {
		fields = append(fields, searchsession.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, searchsession.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SearchSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case searchsession.FieldToken:
		return m.Token()
	case searchsession.FieldPhone:
		return m.Phone()
	case searchsession.FieldBuyerNeedID:
		return m.BuyerNeedID()
	case searchsession.FieldCriteria:
		return m.Criteria()
	case searchsession.FieldResultMatches:
		return m.ResultMatches()
	case searchsession.FieldResultCount:
		return m.ResultCount()
	case searchsession.FieldDlaTriggered:
		return m.DlaTriggered()
	case searchsession.FieldExpiresAt:
		return m.ExpiresAt()
	case searchsession.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SearchSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case searchsession.FieldToken:
		return m.OldToken(ctx)
	case searchsession.FieldPhone:
		return m.OldPhone(ctx)
	case searchsession.FieldBuyerNeedID:
		return m.OldBuyerNeedID(ctx)
	case searchsession.FieldCriteria:
		return m.OldCriteria(ctx)
	case searchsession.FieldResultMatches:
		return m.OldResultMatches(ctx)
	case searchsession.FieldResultCount:
		return m.OldResultCount(ctx)
	case searchsession.FieldDlaTriggered:
		return m.OldDlaTriggered(ctx)
	case searchsession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case searchsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SearchSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case searchsession.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case searchsession.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case searchsession.FieldBuyerNeedID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerNeedID(v)
		return nil
	case searchsession.FieldCriteria:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriteria(v)
		return nil
	case searchsession.FieldResultMatches:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultMatches(v)
		return nil
	case searchsession.FieldResultCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultCount(v)
		return nil
	case searchsession.FieldDlaTriggered:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDlaTriggered(v)
		return nil
	case searchsession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case searchsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SearchSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SearchSessionMutation) AddedFields() []string {
	var fields []string
	if m.addresult_count != nil {
		fields = append(fields, searchsession.FieldResultCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SearchSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case searchsession.FieldResultCount:
		return m.AddedResultCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case searchsession.FieldResultCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResultCount(v)
		return nil
	}
	return fmt.Errorf("unknown SearchSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SearchSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(searchsession.FieldPhone) {
		fields = append(fields, searchsession.FieldPhone)
	}
	if m.FieldCleared(searchsession.FieldBuyerNeedID) {
		fields = append(fields, searchsession.FieldBuyerNeedID)
	}
	if m.FieldCleared(searchsession.FieldResultMatches) {
		fields = append(fields, searchsession.FieldResultMatches)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SearchSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SearchSessionMutation) ClearField(name string) error {
	switch name {
	case searchsession.FieldPhone:
		m.ClearPhone()
		return nil
	case searchsession.FieldBuyerNeedID:
		m.ClearBuyerNeedID()
		return nil
	case searchsession.FieldResultMatches:
		m.ClearResultMatches()
		return nil
	}
	return fmt.Errorf("unknown SearchSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SearchSessionMutation) ResetField(name string) error {
	switch name {
	case searchsession.FieldToken:
		m.ResetToken()
		return nil
	case searchsession.FieldPhone:
		m.ResetPhone()
		return nil
	case searchsession.FieldBuyerNeedID:
		m.ResetBuyerNeedID()
		return nil
	case searchsession.FieldCriteria:
		m.ResetCriteria()
		return nil
	case searchsession.FieldResultMatches:
		m.ResetResultMatches()
		return nil
	case searchsession.FieldResultCount:
		m.ResetResultCount()
		return nil
	case searchsession.FieldDlaTriggered:
		m.ResetDlaTriggered()
		return nil
	case searchsession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case searchsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SearchSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SearchSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SearchSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SearchSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SearchSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SearchSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SearchSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SearchSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SearchSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SearchSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SearchSession edge %s", name)
}

// SupplierAgreementMutation represents an operation that mutates the SupplierAgreement nodes in the graph.
type SupplierAgreementMutation struct {
	config
	op               Op
	typ              string
	id               *string
	status           *supplieragreement.Status
	origin           *supplieragreement.Origin
	external_ref     *string
	signed_at        *time.Time
	terminated_at    *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	warehouse        *string
	clearedwarehouse bool
	done             bool
	oldValue         func(context.Context) (*SupplierAgreement, error)
	predicates       []predicate.SupplierAgreement
}

var _ ent.Mutation = (*SupplierAgreementMutation)(nil)

// supplieragreementOption allows management of the mutation configuration using functional options.
type supplieragreementOption func(*SupplierAgreementMutation)

// newSupplierAgreementMutation creates new mutation for the SupplierAgreement entity.
func newSupplierAgreementMutation(c config, op Op, opts ...supplieragreementOption) *SupplierAgreementMutation {
	m := &SupplierAgreementMutation{
		config:        c,
		op:            op,
		typ:           TypeSupplierAgreement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSupplierAgreementID sets the ID field of the mutation.
func withSupplierAgreementID(id string) supplieragreementOption {
	return func(m *SupplierAgreementMutation) {
		var (
			err   error
			once  sync.Once
			value *SupplierAgreement
		)
		m.oldValue = func(ctx context.Context) (*SupplierAgreement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SupplierAgreement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSupplierAgreement sets the old SupplierAgreement of the mutation.
func withSupplierAgreement(node *SupplierAgreement) supplieragreementOption {
	return func(m *SupplierAgreementMutation) {
		m.oldValue = func(context.Context) (*SupplierAgreement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SupplierAgreementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SupplierAgreementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SupplierAgreement entities.
func (m *SupplierAgreementMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SupplierAgreementMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SupplierAgreementMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SupplierAgreement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWarehouseID sets the "warehouse_id" field.
func (m *SupplierAgreementMutation) SetWarehouseID(s string) {
	m.warehouse = &s
}

// WarehouseID returns the value of the "warehouse_id" field in the mutation.
func (m *SupplierAgreementMutation) WarehouseID() (r string, exists bool) {
	v := m.warehouse
	if v == nil {
		return
	}
	return *v, true
}

// OldWarehouseID returns the old "warehouse_id" field's value of the SupplierAgreement entity.
// If the SupplierAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierAgreementMutation) OldWarehouseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarehouseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarehouseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarehouseID: %w", err)
	}
	return oldValue.WarehouseID, nil
}

// ResetWarehouseID resets all changes to the "warehouse_id" field.
func (m *SupplierAgreementMutation) ResetWarehouseID() {
	m.warehouse = nil
}

// SetStatus sets the "status" field.
func (m *SupplierAgreementMutation) SetStatus(s supplieragreement.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SupplierAgreementMutation) Status() (r supplieragreement.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SupplierAgreement entity.
// If the SupplierAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierAgreementMutation) OldStatus(ctx context.Context) (v supplieragreement.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SupplierAgreementMutation) ResetStatus() {
	m.status = nil
}

// SetOrigin sets the "origin" field.
func (m *SupplierAgreementMutation) SetOrigin(s supplieragreement.Origin) {
	m.origin = &s
}

// Origin returns the value of the "origin" field in the mutation.
func (m *SupplierAgreementMutation) Origin() (r supplieragreement.Origin, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the SupplierAgreement entity.
// If the SupplierAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierAgreementMutation) OldOrigin(ctx context.Context) (v supplieragreement.Origin, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ResetOrigin resets all changes to the "origin" field.
func (m *SupplierAgreementMutation) ResetOrigin() {
	m.origin = nil
}

// SetExternalRef sets the "external_ref" field.
func (m *SupplierAgreementMutation) SetExternalRef(s string) {
	m.external_ref = &s
}

// ExternalRef returns the value of the "external_ref" field in the mutation.
func (m *SupplierAgreementMutation) ExternalRef() (r string, exists bool) {
	v := m.external_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalRef returns the old "external_ref" field's value of the SupplierAgreement entity.
// If the SupplierAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierAgreementMutation) OldExternalRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalRef: %w", err)
	}
	return oldValue.ExternalRef, nil
}

// ClearExternalRef clears the value of the "external_ref" field.
func (m *SupplierAgreementMutation) ClearExternalRef() {
	m.external_ref = nil
	m.clearedFields[supplieragreement.FieldExternalRef] = struct{}{}
}

// ExternalRefCleared returns if the "external_ref" field was cleared in this mutation.
func (m *SupplierAgreementMutation) ExternalRefCleared() bool {
	_, ok := m.clearedFields[supplieragreement.FieldExternalRef]
	return ok
}

// ResetExternalRef resets all changes to the "external_ref" field.
func (m *SupplierAgreementMutation) ResetExternalRef() {
	m.external_ref = nil
	delete(m.clearedFields, supplieragreement.FieldExternalRef)
}

// SetSignedAt sets the "signed_at" field.
func (m *SupplierAgreementMutation) SetSignedAt(t time.Time) {
	m.signed_at = &t
}

// SignedAt returns the value of the "signed_at" field in the mutation.
func (m *SupplierAgreementMutation) SignedAt() (r time.Time, exists bool) {
	v := m.signed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSignedAt returns the old "signed_at" field's value of the SupplierAgreement entity.
// If the SupplierAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierAgreementMutation) OldSignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignedAt: %w", err)
	}
	return oldValue.SignedAt, nil
}

// ClearSignedAt clears the value of the "signed_at" field.
func (m *SupplierAgreementMutation) ClearSignedAt() {
	m.signed_at = nil
	m.clearedFields[supplieragreement.FieldSignedAt] = struct{}{}
}

// SignedAtCleared returns if the "signed_at" field was cleared in this mutation.
func (m *SupplierAgreementMutation) SignedAtCleared() bool {
	_, ok := m.clearedFields[supplieragreement.FieldSignedAt]
	return ok
}

// ResetSignedAt resets all changes to the "signed_at" field.
func (m *SupplierAgreementMutation) ResetSignedAt() {
	m.signed_at = nil
	delete(m.clearedFields, supplieragreement.FieldSignedAt)
}

// SetTerminatedAt sets the "terminated_at" field.
func (m *SupplierAgreementMutation) SetTerminatedAt(t time.Time) {
	m.terminated_at = &t
}

// TerminatedAt returns the value of the "terminated_at" field in the mutation.
func (m *SupplierAgreementMutation) TerminatedAt() (r time.Time, exists bool) {
	v := m.terminated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminatedAt returns the old "terminated_at" field's value of the SupplierAgreement entity.
// If the SupplierAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierAgreementMutation) OldTerminatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminatedAt: %w", err)
	}
	return oldValue.TerminatedAt, nil
}

// ClearTerminatedAt clears the value of the "terminated_at" field.
func (m *SupplierAgreementMutation) ClearTerminatedAt() {
	m.terminated_at = nil
	m.clearedFields[supplieragreement.FieldTerminatedAt] = struct{}{}
}

// TerminatedAtCleared returns if the "terminated_at" field was cleared in this mutation.
func (m *SupplierAgreementMutation) TerminatedAtCleared() bool {
	_, ok := m.clearedFields[supplieragreement.FieldTerminatedAt]
	return ok
}

// ResetTerminatedAt resets all changes to the "terminated_at" field.
func (m *SupplierAgreementMutation) ResetTerminatedAt() {
	m.terminated_at = nil
	delete(m.clearedFields, supplieragreement.FieldTerminatedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SupplierAgreementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SupplierAgreementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SupplierAgreement entity.
// If the SupplierAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierAgreementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SupplierAgreementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SupplierAgreementMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SupplierAgreementMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SupplierAgreement entity.
// If the SupplierAgreement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierAgreementMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SupplierAgreementMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (m *SupplierAgreementMutation) ClearWarehouse() {
	m.clearedwarehouse = true
	m.clearedFields[supplieragreement.FieldWarehouseID] = struct{}{}
}

// WarehouseCleared reports if the "warehouse" edge to the Warehouse entity was cleared.
func (m *SupplierAgreementMutation) WarehouseCleared() bool {
	return m.clearedwarehouse
}

// WarehouseIDs returns the "warehouse" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WarehouseID instead. It exists only for internal usage by the builders.
func (m *SupplierAgreementMutation) WarehouseIDs() (ids []string) {
	if id := m.warehouse; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWarehouse resets all changes to the "warehouse" edge.
func (m *SupplierAgreementMutation) ResetWarehouse() {
	m.warehouse = nil
	m.clearedwarehouse = false
}

// Where appends a list predicates to the SupplierAgreementMutation builder.
func (m *SupplierAgreementMutation) Where(ps ...predicate.SupplierAgreement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SupplierAgreementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SupplierAgreementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SupplierAgreement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SupplierAgreementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SupplierAgreementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SupplierAgreement).
func (m *SupplierAgreementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SupplierAgreementMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.warehouse != nil {
		fields = append(fields, supplieragreement.FieldWarehouseID)
	}
	if m.status != nil {
		fields = append(fields, supplieragreement.FieldStatus)
	}
	if m.origin != nil {
		fields = append(fields, supplieragreement.FieldOrigin)
	}
	if m.external_ref != nil {
		fields = append(fields, supplieragreement.FieldExternalRef)
	}
	if m.signed_at != nil {
		fields = append(fields, supplieragreement.FieldSignedAt)
	}
	if m.terminated_at != nil {
		fields = append(fields, supplieragreement.FieldTerminatedAt)
	}
	if m.created_at != nil {
		fields = append(fields, supplieragreement.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, supplieragreement.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SupplierAgreementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case supplieragreement.FieldWarehouseID:
		return m.WarehouseID()
	case supplieragreement.FieldStatus:
		return m.Status()
	case supplieragreement.FieldOrigin:
		return m.Origin()
	case supplieragreement.FieldExternalRef:
		return m.ExternalRef()
	case supplieragreement.FieldSignedAt:
		return m.SignedAt()
	case supplieragreement.FieldTerminatedAt:
		return m.TerminatedAt()
	case supplieragreement.FieldCreatedAt:
		return m.CreatedAt()
	case supplieragreement.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SupplierAgreementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case supplieragreement.FieldWarehouseID:
		return m.OldWarehouseID(ctx)
	case supplieragreement.FieldStatus:
		return m.OldStatus(ctx)
	case supplieragreement.FieldOrigin:
		return m.OldOrigin(ctx)
	case supplieragreement.FieldExternalRef:
		return m.OldExternalRef(ctx)
	case supplieragreement.FieldSignedAt:
		return m.OldSignedAt(ctx)
	case supplieragreement.FieldTerminatedAt:
		return m.OldTerminatedAt(ctx)
	case supplieragreement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case supplieragreement.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SupplierAgreement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierAgreementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case supplieragreement.FieldWarehouseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarehouseID(v)
		return nil
	case supplieragreement.FieldStatus:
		v, ok := value.(supplieragreement.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case supplieragreement.FieldOrigin:
		v, ok := value.(supplieragreement.Origin)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case supplieragreement.FieldExternalRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalRef(v)
		return nil
	case supplieragreement.FieldSignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignedAt(v)
		return nil
	case supplieragreement.FieldTerminatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminatedAt(v)
		return nil
	case supplieragreement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case supplieragreement.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SupplierAgreement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SupplierAgreementMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SupplierAgreementMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierAgreementMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SupplierAgreement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SupplierAgreementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(supplieragreement.FieldExternalRef) {
		fields = append(fields, supplieragreement.FieldExternalRef)
	}
	if m.FieldCleared(supplieragreement.FieldSignedAt) {
		fields = append(fields, supplieragreement.FieldSignedAt)
	}
	if m.FieldCleared(supplieragreement.FieldTerminatedAt) {
		fields = append(fields, supplieragreement.FieldTerminatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SupplierAgreementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SupplierAgreementMutation) ClearField(name string) error {
	switch name {
	case supplieragreement.FieldExternalRef:
		m.ClearExternalRef()
		return nil
	case supplieragreement.FieldSignedAt:
		m.ClearSignedAt()
		return nil
	case supplieragreement.FieldTerminatedAt:
		m.ClearTerminatedAt()
		return nil
	}
	return fmt.Errorf("unknown SupplierAgreement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SupplierAgreementMutation) ResetField(name string) error {
	switch name {
	case supplieragreement.FieldWarehouseID:
		m.ResetWarehouseID()
		return nil
	case supplieragreement.FieldStatus:
		m.ResetStatus()
		return nil
	case supplieragreement.FieldOrigin:
		m.ResetOrigin()
		return nil
	case supplieragreement.FieldExternalRef:
		m.ResetExternalRef()
		return nil
	case supplieragreement.FieldSignedAt:
		m.ResetSignedAt()
		return nil
	case supplieragreement.FieldTerminatedAt:
		m.ResetTerminatedAt()
		return nil
	case supplieragreement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case supplieragreement.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SupplierAgreement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SupplierAgreementMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.warehouse != nil {
		edges = append(edges, supplieragreement.EdgeWarehouse)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SupplierAgreementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case supplieragreement.EdgeWarehouse:
		if id := m.warehouse; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SupplierAgreementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SupplierAgreementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SupplierAgreementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwarehouse {
		edges = append(edges, supplieragreement.EdgeWarehouse)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SupplierAgreementMutation) EdgeCleared(name string) bool {
	switch name {
	case supplieragreement.EdgeWarehouse:
		return m.clearedwarehouse
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SupplierAgreementMutation) ClearEdge(name string) error {
	switch name {
	case supplieragreement.EdgeWarehouse:
		m.ClearWarehouse()
		return nil
	}
	return fmt.Errorf("unknown SupplierAgreement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SupplierAgreementMutation) ResetEdge(name string) error {
	switch name {
	case supplieragreement.EdgeWarehouse:
		m.ResetWarehouse()
		return nil
	}
	return fmt.Errorf("unknown SupplierAgreement edge %s", name)
}

// ToggleHistoryMutation represents an operation that mutates the ToggleHistory nodes in the graph.
type ToggleHistoryMutation struct {
	config
	op               Op
	typ              string
	id               *string
	new_state        *togglehistory.NewState
	source           *togglehistory.Source
	toggled_by       *string
	reason           *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	warehouse        *string
	clearedwarehouse bool
	done             bool
	oldValue         func(context.Context) (*ToggleHistory, error)
	predicates       []predicate.ToggleHistory
}

var _ ent.Mutation = (*ToggleHistoryMutation)(nil)

// togglehistoryOption allows management of the mutation configuration using functional options.
type togglehistoryOption func(*ToggleHistoryMutation)

// newToggleHistoryMutation creates new mutation for the ToggleHistory entity.
func newToggleHistoryMutation(c config, op Op, opts ...togglehistoryOption) *ToggleHistoryMutation {
	m := &ToggleHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeToggleHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToggleHistoryID sets the ID field of the mutation.
func withToggleHistoryID(id string) togglehistoryOption {
	return func(m *ToggleHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *ToggleHistory
		)
		m.oldValue = func(ctx context.Context) (*ToggleHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToggleHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToggleHistory sets the old ToggleHistory of the mutation.
func withToggleHistory(node *ToggleHistory) togglehistoryOption {
	return func(m *ToggleHistoryMutation) {
		m.oldValue = func(context.Context) (*ToggleHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToggleHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToggleHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToggleHistory entities.
func (m *ToggleHistoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToggleHistoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToggleHistoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToggleHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWarehouseID sets the "warehouse_id" field.
func (m *ToggleHistoryMutation) SetWarehouseID(s string) {
	m.warehouse = &s
}

// WarehouseID returns the value of the "warehouse_id" field in the mutation.
func (m *ToggleHistoryMutation) WarehouseID() (r string, exists bool) {
	v := m.warehouse
	if v == nil {
		return
	}
	return *v, true
}

// OldWarehouseID returns the old "warehouse_id" field's value of the ToggleHistory entity.
// If the ToggleHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToggleHistoryMutation) OldWarehouseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarehouseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarehouseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarehouseID: %w", err)
	}
	return oldValue.WarehouseID, nil
}

// ResetWarehouseID resets all changes to the "warehouse_id" field.
func (m *ToggleHistoryMutation) ResetWarehouseID() {
	m.warehouse = nil
}

// SetNewState sets the "new_state" field.
func (m *ToggleHistoryMutation) SetNewState(ts togglehistory.NewState) {
	m.new_state = &ts
}

// NewState returns the value of the "new_state" field in the mutation.
func (m *ToggleHistoryMutation) NewState() (r togglehistory.NewState, exists bool) {
	v := m.new_state
	if v == nil {
		return
	}
	return *v, true
}

// OldNewState returns the old "new_state" field's value of the ToggleHistory entity.
// If the ToggleHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToggleHistoryMutation) OldNewState(ctx context.Context) (v togglehistory.NewState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewState: %w", err)
	}
	return oldValue.NewState, nil
}

// ResetNewState resets all changes to the "new_state" field.
func (m *ToggleHistoryMutation) ResetNewState() {
	m.new_state = nil
}

// SetSource sets the "source" field.
func (m *ToggleHistoryMutation) SetSource(t togglehistory.Source) {
	m.source = &t
}

// Source returns the value of the "source" field in the mutation.
func (m *ToggleHistoryMutation) Source() (r togglehistory.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ToggleHistory entity.
// If the ToggleHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToggleHistoryMutation) OldSource(ctx context.Context) (v togglehistory.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ToggleHistoryMutation) ResetSource() {
	m.source = nil
}

// SetToggledBy sets the "toggled_by" field.
func (m *ToggleHistoryMutation) SetToggledBy(s string) {
	m.toggled_by = &s
}

// ToggledBy returns the value of the "toggled_by" field in the mutation.
func (m *ToggleHistoryMutation) ToggledBy() (r string, exists bool) {
	v := m.toggled_by
	if v == nil {
		return
	}
	return *v, true
}

// OldToggledBy returns the old "toggled_by" field's value of the ToggleHistory entity.
// If the ToggleHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToggleHistoryMutation) OldToggledBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToggledBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToggledBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToggledBy: %w", err)
	}
	return oldValue.ToggledBy, nil
}

// ClearToggledBy clears the value of the "toggled_by" field.
func (m *ToggleHistoryMutation) ClearToggledBy() {
	m.toggled_by = nil
	m.clearedFields[togglehistory.FieldToggledBy] = struct{}{}
}

// ToggledByCleared returns if the "toggled_by" field was cleared in this mutation.
func (m *ToggleHistoryMutation) ToggledByCleared() bool {
	_, ok := m.clearedFields[togglehistory.FieldToggledBy]
	return ok
}

// ResetToggledBy resets all changes to the "toggled_by" field.
func (m *ToggleHistoryMutation) ResetToggledBy() {
	m.toggled_by = nil
	delete(m.clearedFields, togglehistory.FieldToggledBy)
}

// SetReason sets the "reason" field.
func (m *ToggleHistoryMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ToggleHistoryMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the ToggleHistory entity.
// If the ToggleHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToggleHistoryMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *ToggleHistoryMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[togglehistory.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *ToggleHistoryMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[togglehistory.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *ToggleHistoryMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, togglehistory.FieldReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *ToggleHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToggleHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToggleHistory entity.
// If the ToggleHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToggleHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ToggleHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (m *ToggleHistoryMutation) ClearWarehouse() {
	m.clearedwarehouse = true
	m.clearedFields[togglehistory.FieldWarehouseID] = struct{}{}
}

// WarehouseCleared reports if the "warehouse" edge to the Warehouse entity was cleared.
func (m *ToggleHistoryMutation) WarehouseCleared() bool {
	return m.clearedwarehouse
}

// WarehouseIDs returns the "warehouse" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WarehouseID instead. It exists only for internal usage by the builders.
func (m *ToggleHistoryMutation) WarehouseIDs() (ids []string) {
	if id := m.warehouse; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWarehouse resets all changes to the "warehouse" edge.
func (m *ToggleHistoryMutation) ResetWarehouse() {
	m.warehouse = nil
	m.clearedwarehouse = false
}

// Where appends a list predicates to the ToggleHistoryMutation builder.
func (m *ToggleHistoryMutation) Where(ps ...predicate.ToggleHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToggleHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToggleHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToggleHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToggleHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToggleHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToggleHistory).
func (m *ToggleHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToggleHistoryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.warehouse != nil {
		fields = append(fields, togglehistory.FieldWarehouseID)
	}
	if m.new_state != nil {
		fields = append(fields, togglehistory.FieldNewState)
	}
	if m.source != nil {
		fields = append(fields, togglehistory.FieldSource)
	}
	if m.toggled_by != nil {
		fields = append(fields, togglehistory.FieldToggledBy)
	}
	if m.reason != nil {
		fields = append(fields, togglehistory.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, togglehistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToggleHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case togglehistory.FieldWarehouseID:
		return m.WarehouseID()
	case togglehistory.FieldNewState:
		return m.NewState()
	case togglehistory.FieldSource:
		return m.Source()
	case togglehistory.FieldToggledBy:
		return m.ToggledBy()
	case togglehistory.FieldReason:
		return m.Reason()
	case togglehistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToggleHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case togglehistory.FieldWarehouseID:
		return m.OldWarehouseID(ctx)
	case togglehistory.FieldNewState:
		return m.OldNewState(ctx)
	case togglehistory.FieldSource:
		return m.OldSource(ctx)
	case togglehistory.FieldToggledBy:
		return m.OldToggledBy(ctx)
	case togglehistory.FieldReason:
		return m.OldReason(ctx)
	case togglehistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToggleHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToggleHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case togglehistory.FieldWarehouseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarehouseID(v)
		return nil
	case togglehistory.FieldNewState:
		v, ok := value.(togglehistory.NewState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewState(v)
		return nil
	case togglehistory.FieldSource:
		v, ok := value.(togglehistory.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case togglehistory.FieldToggledBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToggledBy(v)
		return nil
	case togglehistory.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case togglehistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToggleHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToggleHistoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToggleHistoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToggleHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ToggleHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToggleHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(togglehistory.FieldToggledBy) {
		fields = append(fields, togglehistory.FieldToggledBy)
	}
	if m.FieldCleared(togglehistory.FieldReason) {
		fields = append(fields, togglehistory.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToggleHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToggleHistoryMutation) ClearField(name string) error {
	switch name {
	case togglehistory.FieldToggledBy:
		m.ClearToggledBy()
		return nil
	case togglehistory.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown ToggleHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToggleHistoryMutation) ResetField(name string) error {
	switch name {
	case togglehistory.FieldWarehouseID:
		m.ResetWarehouseID()
		return nil
	case togglehistory.FieldNewState:
		m.ResetNewState()
		return nil
	case togglehistory.FieldSource:
		m.ResetSource()
		return nil
	case togglehistory.FieldToggledBy:
		m.ResetToggledBy()
		return nil
	case togglehistory.FieldReason:
		m.ResetReason()
		return nil
	case togglehistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToggleHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToggleHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.warehouse != nil {
		edges = append(edges, togglehistory.EdgeWarehouse)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToggleHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case togglehistory.EdgeWarehouse:
		if id := m.warehouse; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToggleHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToggleHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToggleHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwarehouse {
		edges = append(edges, togglehistory.EdgeWarehouse)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToggleHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case togglehistory.EdgeWarehouse:
		return m.clearedwarehouse
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToggleHistoryMutation) ClearEdge(name string) error {
	switch name {
	case togglehistory.EdgeWarehouse:
		m.ClearWarehouse()
		return nil
	}
	return fmt.Errorf("unknown ToggleHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToggleHistoryMutation) ResetEdge(name string) error {
	switch name {
	case togglehistory.EdgeWarehouse:
		m.ResetWarehouse()
		return nil
	}
	return fmt.Errorf("unknown ToggleHistory edge %s", name)
}

// TruthCoreMutation represents an operation that mutates the TruthCore nodes in the graph.
type TruthCoreMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	min_sqft                  *int
	addmin_sqft               *int
	max_sqft                  *int
	addmax_sqft               *int
	activity_tier             *truthcore.ActivityTier
	available_from            *time.Time
	available_until           *time.Time
	supplier_rate_per_sqft    *float64
	addsupplier_rate_per_sqft *float64
	activation_status         *truthcore.ActivationStatus
	trust_level               *int
	addtrust_level            *int
	dock_doors                *int
	adddock_doors             *int
	clear_height_ft           *float64
	addclear_height_ft        *float64
	has_office_space          *bool
	has_sprinkler             *bool
	power_service             *string
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	warehouse                 *string
	clearedwarehouse          bool
	done                      bool
	oldValue                  func(context.Context) (*TruthCore, error)
	predicates                []predicate.TruthCore
}

var _ ent.Mutation = (*TruthCoreMutation)(nil)

// truthcoreOption allows management of the mutation configuration using functional options.
type truthcoreOption func(*TruthCoreMutation)

// newTruthCoreMutation creates new mutation for the TruthCore entity.
func newTruthCoreMutation(c config, op Op, opts ...truthcoreOption) *TruthCoreMutation {
	m := &TruthCoreMutation{
		config:        c,
		op:            op,
		typ:           TypeTruthCore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTruthCoreID sets the ID field of the mutation.
func withTruthCoreID(id string) truthcoreOption {
	return func(m *TruthCoreMutation) {
		var (
			err   error
			once  sync.Once
			value *TruthCore
		)
		m.oldValue = func(ctx context.Context) (*TruthCore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TruthCore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTruthCore sets the old TruthCore of the mutation.
func withTruthCore(node *TruthCore) truthcoreOption {
	return func(m *TruthCoreMutation) {
		m.oldValue = func(context.Context) (*TruthCore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TruthCoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TruthCoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TruthCore entities.
func (m *TruthCoreMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TruthCoreMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TruthCoreMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TruthCore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWarehouseID sets the "warehouse_id" field.
func (m *TruthCoreMutation) SetWarehouseID(s string) {
	m.warehouse = &s
}

// WarehouseID returns the value of the "warehouse_id" field in the mutation.
func (m *TruthCoreMutation) WarehouseID() (r string, exists bool) {
	v := m.warehouse
	if v == nil {
		return
	}
	return *v, true
}

// OldWarehouseID returns the old "warehouse_id" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldWarehouseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarehouseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarehouseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarehouseID: %w", err)
	}
	return oldValue.WarehouseID, nil
}

// ResetWarehouseID resets all changes to the "warehouse_id" field.
func (m *TruthCoreMutation) ResetWarehouseID() {
	m.warehouse = nil
}

// SetMinSqft sets the "min_sqft" field.
func (m *TruthCoreMutation) SetMinSqft(i int) {
	m.min_sqft = &i
	m.addmin_sqft = nil
}

// MinSqft returns the value of the "min_sqft" field in the mutation.
func (m *TruthCoreMutation) MinSqft() (r int, exists bool) {
	v := m.min_sqft
	if v == nil {
		return
	}
	return *v, true
}

// OldMinSqft returns the old "min_sqft" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldMinSqft(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinSqft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinSqft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinSqft: %w", err)
	}
	return oldValue.MinSqft, nil
}

// AddMinSqft adds i to the "min_sqft" field.
func (m *TruthCoreMutation) AddMinSqft(i int) {
	if m.addmin_sqft != nil {
		*m.addmin_sqft += i
	} else {
		m.addmin_sqft = &i
	}
}

// AddedMinSqft returns the value that was added to the "min_sqft" field in this mutation.
func (m *TruthCoreMutation) AddedMinSqft() (r int, exists bool) {
	v := m.addmin_sqft
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinSqft resets all changes to the "min_sqft" field.
func (m *TruthCoreMutation) ResetMinSqft() {
	m.min_sqft = nil
	m.addmin_sqft = nil
}

// SetMaxSqft sets the "max_sqft" field.
func (m *TruthCoreMutation) SetMaxSqft(i int) {
	m.max_sqft = &i
	m.addmax_sqft = nil
}

// MaxSqft returns the value of the "max_sqft" field in the mutation.
func (m *TruthCoreMutation) MaxSqft() (r int, exists bool) {
	v := m.max_sqft
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxSqft returns the old "max_sqft" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldMaxSqft(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxSqft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxSqft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxSqft: %w", err)
	}
	return oldValue.MaxSqft, nil
}

// AddMaxSqft adds i to the "max_sqft" field.
func (m *TruthCoreMutation) AddMaxSqft(i int) {
	if m.addmax_sqft != nil {
		*m.addmax_sqft += i
	} else {
		m.addmax_sqft = &i
	}
}

// AddedMaxSqft returns the value that was added to the "max_sqft" field in this mutation.
func (m *TruthCoreMutation) AddedMaxSqft() (r int, exists bool) {
	v := m.addmax_sqft
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxSqft resets all changes to the "max_sqft" field.
func (m *TruthCoreMutation) ResetMaxSqft() {
	m.max_sqft = nil
	m.addmax_sqft = nil
}

// SetActivityTier sets the "activity_tier" field.
func (m *TruthCoreMutation) SetActivityTier(tt truthcore.ActivityTier) {
	m.activity_tier = &tt
}

// ActivityTier returns the value of the "activity_tier" field in the mutation.
func (m *TruthCoreMutation) ActivityTier() (r truthcore.ActivityTier, exists bool) {
	v := m.activity_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityTier returns the old "activity_tier" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldActivityTier(ctx context.Context) (v truthcore.ActivityTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityTier: %w", err)
	}
	return oldValue.ActivityTier, nil
}

// ResetActivityTier resets all changes to the "activity_tier" field.
func (m *TruthCoreMutation) ResetActivityTier() {
	m.activity_tier = nil
}

// SetAvailableFrom sets the "available_from" field.
func (m *TruthCoreMutation) SetAvailableFrom(t time.Time) {
	m.available_from = &t
}

// AvailableFrom returns the value of the "available_from" field in the mutation.
func (m *TruthCoreMutation) AvailableFrom() (r time.Time, exists bool) {
	v := m.available_from
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailableFrom returns the old "available_from" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldAvailableFrom(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailableFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailableFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailableFrom: %w", err)
	}
	return oldValue.AvailableFrom, nil
}

// ClearAvailableFrom clears the value of the "available_from" field.
func (m *TruthCoreMutation) ClearAvailableFrom() {
	m.available_from = nil
	m.clearedFields[truthcore.FieldAvailableFrom] = struct{}{}
}

// AvailableFromCleared returns if the "available_from" field was cleared in this mutation.
func (m *TruthCoreMutation) AvailableFromCleared() bool {
	_, ok := m.clearedFields[truthcore.FieldAvailableFrom]
	return ok
}

// ResetAvailableFrom resets all changes to the "available_from" field.
func (m *TruthCoreMutation) ResetAvailableFrom() {
	m.available_from = nil
	delete(m.clearedFields, truthcore.FieldAvailableFrom)
}

// SetAvailableUntil sets the "available_until" field.
func (m *TruthCoreMutation) SetAvailableUntil(t time.Time) {
	m.available_until = &t
}

// AvailableUntil returns the value of the "available_until" field in the mutation.
func (m *TruthCoreMutation) AvailableUntil() (r time.Time, exists bool) {
	v := m.available_until
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailableUntil returns the old "available_until" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldAvailableUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailableUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailableUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailableUntil: %w", err)
	}
	return oldValue.AvailableUntil, nil
}

// ClearAvailableUntil clears the value of the "available_until" field.
func (m *TruthCoreMutation) ClearAvailableUntil() {
	m.available_until = nil
	m.clearedFields[truthcore.FieldAvailableUntil] = struct{}{}
}

// AvailableUntilCleared returns if the "available_until" field was cleared in this mutation.
func (m *TruthCoreMutation) AvailableUntilCleared() bool {
	_, ok := m.clearedFields[truthcore.FieldAvailableUntil]
	return ok
}

// ResetAvailableUntil resets all changes to the "available_until" field.
func (m *TruthCoreMutation) ResetAvailableUntil() {
	m.available_until = nil
	delete(m.clearedFields, truthcore.FieldAvailableUntil)
}

// SetSupplierRatePerSqft sets the "supplier_rate_per_sqft" field.
func (m *TruthCoreMutation) SetSupplierRatePerSqft(f float64) {
	m.supplier_rate_per_sqft = &f
	m.addsupplier_rate_per_sqft = nil
}

// SupplierRatePerSqft returns the value of the "supplier_rate_per_sqft" field in the mutation.
func (m *TruthCoreMutation) SupplierRatePerSqft() (r float64, exists bool) {
	v := m.supplier_rate_per_sqft
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierRatePerSqft returns the old "supplier_rate_per_sqft" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldSupplierRatePerSqft(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierRatePerSqft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierRatePerSqft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierRatePerSqft: %w", err)
	}
	return oldValue.SupplierRatePerSqft, nil
}

// AddSupplierRatePerSqft adds f to the "supplier_rate_per_sqft" field.
func (m *TruthCoreMutation) AddSupplierRatePerSqft(f float64) {
	if m.addsupplier_rate_per_sqft != nil {
		*m.addsupplier_rate_per_sqft += f
	} else {
		m.addsupplier_rate_per_sqft = &f
	}
}

// AddedSupplierRatePerSqft returns the value that was added to the "supplier_rate_per_sqft" field in this mutation.
func (m *TruthCoreMutation) AddedSupplierRatePerSqft() (r float64, exists bool) {
	v := m.addsupplier_rate_per_sqft
	if v == nil {
		return
	}
	return *v, true
}

// ResetSupplierRatePerSqft resets all changes to the "supplier_rate_per_sqft" field.
func (m *TruthCoreMutation) ResetSupplierRatePerSqft() {
	m.supplier_rate_per_sqft = nil
	m.addsupplier_rate_per_sqft = nil
}

// SetActivationStatus sets the "activation_status" field.
func (m *TruthCoreMutation) SetActivationStatus(ts truthcore.ActivationStatus) {
	m.activation_status = &ts
}

// ActivationStatus returns the value of the "activation_status" field in the mutation.
func (m *TruthCoreMutation) ActivationStatus() (r truthcore.ActivationStatus, exists bool) {
	v := m.activation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldActivationStatus returns the old "activation_status" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldActivationStatus(ctx context.Context) (v truthcore.ActivationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivationStatus: %w", err)
	}
	return oldValue.ActivationStatus, nil
}

// ResetActivationStatus resets all changes to the "activation_status" field.
func (m *TruthCoreMutation) ResetActivationStatus() {
	m.activation_status = nil
}

// SetTrustLevel sets the "trust_level" field.
func (m *TruthCoreMutation) SetTrustLevel(i int) {
	m.trust_level = &i
	m.addtrust_level = nil
}

// TrustLevel returns the value of the "trust_level" field in the mutation.
func (m *TruthCoreMutation) TrustLevel() (r int, exists bool) {
	v := m.trust_level
	if v == nil {
		return
	}
	return *v, true
}

// OldTrustLevel returns the old "trust_level" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldTrustLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrustLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrustLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrustLevel: %w", err)
	}
	return oldValue.TrustLevel, nil
}

// AddTrustLevel adds i to the "trust_level" field.
func (m *TruthCoreMutation) AddTrustLevel(i int) {
	if m.addtrust_level != nil {
		*m.addtrust_level += i
	} else {
		m.addtrust_level = &i
	}
}

// AddedTrustLevel returns the value that was added to the "trust_level" field in this mutation.
func (m *TruthCoreMutation) AddedTrustLevel() (r int, exists bool) {
	v := m.addtrust_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrustLevel resets all changes to the "trust_level" field.
func (m *TruthCoreMutation) ResetTrustLevel() {
	m.trust_level = nil
	m.addtrust_level = nil
}

// SetDockDoors sets the "dock_doors" field.
func (m *TruthCoreMutation) SetDockDoors(i int) {
	m.dock_doors = &i
	m.adddock_doors = nil
}

// DockDoors returns the value of the "dock_doors" field in the mutation.
func (m *TruthCoreMutation) DockDoors() (r int, exists bool) {
	v := m.dock_doors
	if v == nil {
		return
	}
	return *v, true
}

// OldDockDoors returns the old "dock_doors" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldDockDoors(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDockDoors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDockDoors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDockDoors: %w", err)
	}
	return oldValue.DockDoors, nil
}

// AddDockDoors adds i to the "dock_doors" field.
func (m *TruthCoreMutation) AddDockDoors(i int) {
	if m.adddock_doors != nil {
		*m.adddock_doors += i
	} else {
		m.adddock_doors = &i
	}
}

// AddedDockDoors returns the value that was added to the "dock_doors" field in this mutation.
func (m *TruthCoreMutation) AddedDockDoors() (r int, exists bool) {
	v := m.adddock_doors
	if v == nil {
		return
	}
	return *v, true
}

// ResetDockDoors resets all changes to the "dock_doors" field.
func (m *TruthCoreMutation) ResetDockDoors() {
	m.dock_doors = nil
	m.adddock_doors = nil
}

// SetClearHeightFt sets the "clear_height_ft" field.
func (m *TruthCoreMutation) SetClearHeightFt(f float64) {
	m.clear_height_ft = &f
	m.addclear_height_ft = nil
}

// ClearHeightFt returns the value of the "clear_height_ft" field in the mutation.
func (m *TruthCoreMutation) ClearHeightFt() (r float64, exists bool) {
	v := m.clear_height_ft
	if v == nil {
		return
	}
	return *v, true
}

// OldClearHeightFt returns the old "clear_height_ft" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldClearHeightFt(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClearHeightFt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClearHeightFt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClearHeightFt: %w", err)
	}
	return oldValue.ClearHeightFt, nil
}

// AddClearHeightFt adds f to the "clear_height_ft" field.
func (m *TruthCoreMutation) AddClearHeightFt(f float64) {
	if m.addclear_height_ft != nil {
		*m.addclear_height_ft += f
	} else {
		m.addclear_height_ft = &f
	}
}

// AddedClearHeightFt returns the value that was added to the "clear_height_ft" field in this mutation.
func (m *TruthCoreMutation) AddedClearHeightFt() (r float64, exists bool) {
	v := m.addclear_height_ft
	if v == nil {
		return
	}
	return *v, true
}

// ClearClearHeightFt clears the value of the "clear_height_ft" field.
func (m *TruthCoreMutation) ClearClearHeightFt() {
	m.clear_height_ft = nil
	m.addclear_height_ft = nil
	m.clearedFields[truthcore.FieldClearHeightFt] = struct{}{}
}

// ClearHeightFtCleared returns if the "clear_height_ft" field was cleared in this mutation.
func (m *TruthCoreMutation) ClearHeightFtCleared() bool {
	_, ok := m.clearedFields[truthcore.FieldClearHeightFt]
	return ok
}

// ResetClearHeightFt resets all changes to the "clear_height_ft" field.
func (m *TruthCoreMutation) ResetClearHeightFt() {
	m.clear_height_ft = nil
	m.addclear_height_ft = nil
	delete(m.clearedFields, truthcore.FieldClearHeightFt)
}

// SetHasOfficeSpace sets the "has_office_space" field.
func (m *TruthCoreMutation) SetHasOfficeSpace(b bool) {
	m.has_office_space = &b
}

// HasOfficeSpace returns the value of the "has_office_space" field in the mutation.
func (m *TruthCoreMutation) HasOfficeSpace() (r bool, exists bool) {
	v := m.has_office_space
	if v == nil {
		return
	}
	return *v, true
}

// OldHasOfficeSpace returns the old "has_office_space" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldHasOfficeSpace(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasOfficeSpace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasOfficeSpace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasOfficeSpace: %w", err)
	}
	return oldValue.HasOfficeSpace, nil
}

// ResetHasOfficeSpace resets all changes to the "has_office_space" field.
func (m *TruthCoreMutation) ResetHasOfficeSpace() {
	m.has_office_space = nil
}

// SetHasSprinkler sets the "has_sprinkler" field.
func (m *TruthCoreMutation) SetHasSprinkler(b bool) {
	m.has_sprinkler = &b
}

// HasSprinkler returns the value of the "has_sprinkler" field in the mutation.
func (m *TruthCoreMutation) HasSprinkler() (r bool, exists bool) {
	v := m.has_sprinkler
	if v == nil {
		return
	}
	return *v, true
}

// OldHasSprinkler returns the old "has_sprinkler" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldHasSprinkler(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasSprinkler is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasSprinkler requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasSprinkler: %w", err)
	}
	return oldValue.HasSprinkler, nil
}

// ResetHasSprinkler resets all changes to the "has_sprinkler" field.
func (m *TruthCoreMutation) ResetHasSprinkler() {
	m.has_sprinkler = nil
}

// SetPowerService sets the "power_service" field.
func (m *TruthCoreMutation) SetPowerService(s string) {
	m.power_service = &s
}

// PowerService returns the value of the "power_service" field in the mutation.
func (m *TruthCoreMutation) PowerService() (r string, exists bool) {
	v := m.power_service
	if v == nil {
		return
	}
	return *v, true
}

// OldPowerService returns the old "power_service" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldPowerService(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPowerService is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPowerService requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPowerService: %w", err)
	}
	return oldValue.PowerService, nil
}

// ClearPowerService clears the value of the "power_service" field.
func (m *TruthCoreMutation) ClearPowerService() {
	m.power_service = nil
	m.clearedFields[truthcore.FieldPowerService] = struct{}{}
}

// PowerServiceCleared returns if the "power_service" field was cleared in this mutation.
func (m *TruthCoreMutation) PowerServiceCleared() bool {
	_, ok := m.clearedFields[truthcore.FieldPowerService]
	return ok
}

// ResetPowerService resets all changes to the "power_service" field.
func (m *TruthCoreMutation) ResetPowerService() {
	m.power_service = nil
	delete(m.clearedFields, truthcore.FieldPowerService)
}

// SetCreatedAt sets the "created_at" field.
func (m *TruthCoreMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TruthCoreMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TruthCoreMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TruthCoreMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TruthCoreMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TruthCore entity.
// If the TruthCore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TruthCoreMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TruthCoreMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (m *TruthCoreMutation) ClearWarehouse() {
	m.clearedwarehouse = true
	m.clearedFields[truthcore.FieldWarehouseID] = struct{}{}
}

// WarehouseCleared reports if the "warehouse" edge to the Warehouse entity was cleared.
func (m *TruthCoreMutation) WarehouseCleared() bool {
	return m.clearedwarehouse
}

// WarehouseIDs returns the "warehouse" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WarehouseID instead. It exists only for internal usage by the builders.
func (m *TruthCoreMutation) WarehouseIDs() (ids []string) {
	if id := m.warehouse; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWarehouse resets all changes to the "warehouse" edge.
func (m *TruthCoreMutation) ResetWarehouse() {
	m.warehouse = nil
	m.clearedwarehouse = false
}

// Where appends a list predicates to the TruthCoreMutation builder.
func (m *TruthCoreMutation) Where(ps ...predicate.TruthCore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TruthCoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TruthCoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TruthCore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TruthCoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TruthCoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TruthCore).
func (m *TruthCoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TruthCoreMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.warehouse != nil {
		fields = append(fields, truthcore.FieldWarehouseID)
	}
	if m.min_sqft != nil {
		fields = append(fields, truthcore.FieldMinSqft)
	}
	if m.max_sqft != nil {
		fields = append(fields, truthcore.FieldMaxSqft)
	}
	if m.activity_tier != nil {
		fields = append(fields, truthcore.FieldActivityTier)
	}
	if m.available_from != nil {
		fields = append(fields, truthcore.FieldAvailableFrom)
	}
	if m.available_until != nil {
		fields = append(fields, truthcore.FieldAvailableUntil)
	}
	if m.supplier_rate_per_sqft != nil {
		fields = append(fields, truthcore.FieldSupplierRatePerSqft)
	}
	if m.activation_status != nil {
		fields = append(fields, truthcore.FieldActivationStatus)
	}
	if m.trust_level != nil {
		fields = append(fields, truthcore.FieldTrustLevel)
	}
	if m.dock_doors != nil {
		fields = append(fields, truthcore.FieldDockDoors)
	}
	if m.clear_height_ft != nil {
		fields = append(fields, truthcore.FieldClearHeightFt)
	}
	if m.has_office_space != nil {
		fields = append(fields, truthcore.FieldHasOfficeSpace)
	}
	if m.has_sprinkler != nil {
		fields = append(fields, truthcore.FieldHasSprinkler)
	}
	if m.power_service != nil {
		fields = append(fields, truthcore.FieldPowerService)
	}
	if m.created_at != nil {
		fields = append(fields, truthcore.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, truthcore.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TruthCoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case truthcore.FieldWarehouseID:
		return m.WarehouseID()
	case truthcore.FieldMinSqft:
		return m.MinSqft()
	case truthcore.FieldMaxSqft:
		return m.MaxSqft()
	case truthcore.FieldActivityTier:
		return m.ActivityTier()
	case truthcore.FieldAvailableFrom:
		return m.AvailableFrom()
	case truthcore.FieldAvailableUntil:
		return m.AvailableUntil()
	case truthcore.FieldSupplierRatePerSqft:
		return m.SupplierRatePerSqft()
	case truthcore.FieldActivationStatus:
		return m.ActivationStatus()
	case truthcore.FieldTrustLevel:
		return m.TrustLevel()
	case truthcore.FieldDockDoors:
		return m.DockDoors()
	case truthcore.FieldClearHeightFt:
		return m.ClearHeightFt()
	case truthcore.FieldHasOfficeSpace:
		return m.HasOfficeSpace()
	case truthcore.FieldHasSprinkler:
		return m.HasSprinkler()
	case truthcore.FieldPowerService:
		return m.PowerService()
	case truthcore.FieldCreatedAt:
		return m.CreatedAt()
	case truthcore.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TruthCoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case truthcore.FieldWarehouseID:
		return m.OldWarehouseID(ctx)
	case truthcore.FieldMinSqft:
		return m.OldMinSqft(ctx)
	case truthcore.FieldMaxSqft:
		return m.OldMaxSqft(ctx)
	case truthcore.FieldActivityTier:
		return m.OldActivityTier(ctx)
	case truthcore.FieldAvailableFrom:
		return m.OldAvailableFrom(ctx)
	case truthcore.FieldAvailableUntil:
		return m.OldAvailableUntil(ctx)
	case truthcore.FieldSupplierRatePerSqft:
		return m.OldSupplierRatePerSqft(ctx)
	case truthcore.FieldActivationStatus:
		return m.OldActivationStatus(ctx)
	case truthcore.FieldTrustLevel:
		return m.OldTrustLevel(ctx)
	case truthcore.FieldDockDoors:
		return m.OldDockDoors(ctx)
	case truthcore.FieldClearHeightFt:
		return m.OldClearHeightFt(ctx)
	case truthcore.FieldHasOfficeSpace:
		return m.OldHasOfficeSpace(ctx)
	case truthcore.FieldHasSprinkler:
		return m.OldHasSprinkler(ctx)
	case truthcore.FieldPowerService:
		return m.OldPowerService(ctx)
	case truthcore.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case truthcore.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TruthCore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TruthCoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case truthcore.FieldWarehouseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarehouseID(v)
		return nil
	case truthcore.FieldMinSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinSqft(v)
		return nil
	case truthcore.FieldMaxSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxSqft(v)
		return nil
	case truthcore.FieldActivityTier:
		v, ok := value.(truthcore.ActivityTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityTier(v)
		return nil
	case truthcore.FieldAvailableFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailableFrom(v)
		return nil
	case truthcore.FieldAvailableUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailableUntil(v)
		return nil
	case truthcore.FieldSupplierRatePerSqft:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierRatePerSqft(v)
		return nil
	case truthcore.FieldActivationStatus:
		v, ok := value.(truthcore.ActivationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivationStatus(v)
		return nil
	case truthcore.FieldTrustLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrustLevel(v)
		return nil
	case truthcore.FieldDockDoors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDockDoors(v)
		return nil
	case truthcore.FieldClearHeightFt:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClearHeightFt(v)
		return nil
	case truthcore.FieldHasOfficeSpace:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasOfficeSpace(v)
		return nil
	case truthcore.FieldHasSprinkler:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasSprinkler(v)
		return nil
	case truthcore.FieldPowerService:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPowerService(v)
		return nil
	case truthcore.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case truthcore.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TruthCore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TruthCoreMutation) AddedFields() []string {
	var fields []string
	if m.addmin_sqft != nil {
		fields = append(fields, truthcore.FieldMinSqft)
	}
	if m.addmax_sqft != nil {
		fields = append(fields, truthcore.FieldMaxSqft)
	}
	if m.addsupplier_rate_per_sqft != nil {
		fields = append(fields, truthcore.FieldSupplierRatePerSqft)
	}
	if m.addtrust_level != nil {
		fields = append(fields, truthcore.FieldTrustLevel)
	}
	if m.adddock_doors != nil {
		fields = append(fields, truthcore.FieldDockDoors)
	}
	if m.addclear_height_ft != nil {
		fields = append(fields, truthcore.FieldClearHeightFt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TruthCoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case truthcore.FieldMinSqft:
		return m.AddedMinSqft()
	case truthcore.FieldMaxSqft:
		return m.AddedMaxSqft()
	case truthcore.FieldSupplierRatePerSqft:
		return m.AddedSupplierRatePerSqft()
	case truthcore.FieldTrustLevel:
		return m.AddedTrustLevel()
	case truthcore.FieldDockDoors:
		return m.AddedDockDoors()
	case truthcore.FieldClearHeightFt:
		return m.AddedClearHeightFt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TruthCoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case truthcore.FieldMinSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinSqft(v)
		return nil
	case truthcore.FieldMaxSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxSqft(v)
		return nil
	case truthcore.FieldSupplierRatePerSqft:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSupplierRatePerSqft(v)
		return nil
	case truthcore.FieldTrustLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrustLevel(v)
		return nil
	case truthcore.FieldDockDoors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDockDoors(v)
		return nil
	case truthcore.FieldClearHeightFt:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClearHeightFt(v)
		return nil
	}
	return fmt.Errorf("unknown TruthCore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TruthCoreMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(truthcore.FieldAvailableFrom) {
		fields = append(fields, truthcore.FieldAvailableFrom)
	}
	if m.FieldCleared(truthcore.FieldAvailableUntil) {
		fields = append(fields, truthcore.FieldAvailableUntil)
	}
	if m.FieldCleared(truthcore.FieldClearHeightFt) {
		fields = append(fields, truthcore.FieldClearHeightFt)
	}
	if m.FieldCleared(truthcore.FieldPowerService) {
		fields = append(fields, truthcore.FieldPowerService)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TruthCoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TruthCoreMutation) ClearField(name string) error {
	switch name {
	case truthcore.FieldAvailableFrom:
		m.ClearAvailableFrom()
		return nil
	case truthcore.FieldAvailableUntil:
		m.ClearAvailableUntil()
		return nil
	case truthcore.FieldClearHeightFt:
		m.ClearClearHeightFt()
		return nil
	case truthcore.FieldPowerService:
		m.ClearPowerService()
		return nil
	}
	return fmt.Errorf("unknown TruthCore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TruthCoreMutation) ResetField(name string) error {
	switch name {
	case truthcore.FieldWarehouseID:
		m.ResetWarehouseID()
		return nil
	case truthcore.FieldMinSqft:
		m.ResetMinSqft()
		return nil
	case truthcore.FieldMaxSqft:
		m.ResetMaxSqft()
		return nil
	case truthcore.FieldActivityTier:
		m.ResetActivityTier()
		return nil
	case truthcore.FieldAvailableFrom:
		m.ResetAvailableFrom()
		return nil
	case truthcore.FieldAvailableUntil:
		m.ResetAvailableUntil()
		return nil
	case truthcore.FieldSupplierRatePerSqft:
		m.ResetSupplierRatePerSqft()
		return nil
	case truthcore.FieldActivationStatus:
		m.ResetActivationStatus()
		return nil
	case truthcore.FieldTrustLevel:
		m.ResetTrustLevel()
		return nil
	case truthcore.FieldDockDoors:
		m.ResetDockDoors()
		return nil
	case truthcore.FieldClearHeightFt:
		m.ResetClearHeightFt()
		return nil
	case truthcore.FieldHasOfficeSpace:
		m.ResetHasOfficeSpace()
		return nil
	case truthcore.FieldHasSprinkler:
		m.ResetHasSprinkler()
		return nil
	case truthcore.FieldPowerService:
		m.ResetPowerService()
		return nil
	case truthcore.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case truthcore.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TruthCore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TruthCoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.warehouse != nil {
		edges = append(edges, truthcore.EdgeWarehouse)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TruthCoreMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case truthcore.EdgeWarehouse:
		if id := m.warehouse; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TruthCoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TruthCoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TruthCoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwarehouse {
		edges = append(edges, truthcore.EdgeWarehouse)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TruthCoreMutation) EdgeCleared(name string) bool {
	switch name {
	case truthcore.EdgeWarehouse:
		return m.clearedwarehouse
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TruthCoreMutation) ClearEdge(name string) error {
	switch name {
	case truthcore.EdgeWarehouse:
		m.ClearWarehouse()
		return nil
	}
	return fmt.Errorf("unknown TruthCore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TruthCoreMutation) ResetEdge(name string) error {
	switch name {
	case truthcore.EdgeWarehouse:
		m.ResetWarehouse()
		return nil
	}
	return fmt.Errorf("unknown TruthCore edge %s", name)
}

// UploadTokenMutation represents an operation that mutates the UploadToken nodes in the graph.
type UploadTokenMutation struct {
	config
	op                Op
	typ               string
	id                *string
	token             *string
	purpose           *uploadtoken.Purpose
	status            *uploadtoken.Status
	uploaded_file_url *string
	expires_at        *time.Time
	used_at           *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	engagement        *string
	clearedengagement bool
	done              bool
	oldValue          func(context.Context) (*UploadToken, error)
	predicates        []predicate.UploadToken
}

var _ ent.Mutation = (*UploadTokenMutation)(nil)

// uploadtokenOption allows management of the mutation configuration using functional options.
type uploadtokenOption func(*UploadTokenMutation)

// newUploadTokenMutation creates new mutation for the UploadToken entity.
func newUploadTokenMutation(c config, op Op, opts ...uploadtokenOption) *UploadTokenMutation {
	m := &UploadTokenMutation{
		config:        c,
		op:            op,
		typ:           TypeUploadToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUploadTokenID sets the ID field of the mutation.
func withUploadTokenID(id string) uploadtokenOption {
	return func(m *UploadTokenMutation) {
		var (
			err   error
			once  sync.Once
			value *UploadToken
		)
		m.oldValue = func(ctx context.Context) (*UploadToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UploadToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUploadToken sets the old UploadToken of the mutation.
func withUploadToken(node *UploadToken) uploadtokenOption {
	return func(m *UploadTokenMutation) {
		m.oldValue = func(context.Context) (*UploadToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UploadTokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UploadTokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UploadToken entities.
func (m *UploadTokenMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UploadTokenMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UploadTokenMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UploadToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetToken sets the "token" field.
func (m *UploadTokenMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *UploadTokenMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the UploadToken entity.
// If the UploadToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadTokenMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *UploadTokenMutation) ResetToken() {
	m.token = nil
}

// SetEngagementID sets the "engagement_id" field.
func (m *UploadTokenMutation) SetEngagementID(s string) {
	m.engagement = &s
}

// EngagementID returns the value of the "engagement_id" field in the mutation.
func (m *UploadTokenMutation) EngagementID() (r string, exists bool) {
	v := m.engagement
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementID returns the old "engagement_id" field's value of the UploadToken entity.
// If the UploadToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadTokenMutation) OldEngagementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementID: %w", err)
	}
	return oldValue.EngagementID, nil
}

// ResetEngagementID resets all changes to the "engagement_id" field.
func (m *UploadTokenMutation) ResetEngagementID() {
	m.engagement = nil
}

// SetPurpose sets the "purpose" field.
func (m *UploadTokenMutation) SetPurpose(u uploadtoken.Purpose) {
	m.purpose = &u
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *UploadTokenMutation) Purpose() (r uploadtoken.Purpose, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the UploadToken entity.
// If the UploadToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadTokenMutation) OldPurpose(ctx context.Context) (v uploadtoken.Purpose, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *UploadTokenMutation) ResetPurpose() {
	m.purpose = nil
}

// SetStatus sets the "status" field.
func (m *UploadTokenMutation) SetStatus(u uploadtoken.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UploadTokenMutation) Status() (r uploadtoken.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UploadToken entity.
// If the UploadToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadTokenMutation) OldStatus(ctx context.Context) (v uploadtoken.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UploadTokenMutation) ResetStatus() {
	m.status = nil
}

// SetUploadedFileURL sets the "uploaded_file_url" field.
func (m *UploadTokenMutation) SetUploadedFileURL(s string) {
	m.uploaded_file_url = &s
}

// UploadedFileURL returns the value of the "uploaded_file_url" field in the mutation.
func (m *UploadTokenMutation) UploadedFileURL() (r string, exists bool) {
	v := m.uploaded_file_url
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedFileURL returns the old "uploaded_file_url" field's value of the UploadToken entity.
// If the UploadToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadTokenMutation) OldUploadedFileURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedFileURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedFileURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedFileURL: %w", err)
	}
	return oldValue.UploadedFileURL, nil
}

// ClearUploadedFileURL clears the value of the "uploaded_file_url" field.
func (m *UploadTokenMutation) ClearUploadedFileURL() {
	m.uploaded_file_url = nil
	m.clearedFields[uploadtoken.FieldUploadedFileURL] = struct{}{}
}

// UploadedFileURLCleared returns if the "uploaded_file_url" field was cleared in this mutation.
func (m *UploadTokenMutation) UploadedFileURLCleared() bool {
	_, ok := m.clearedFields[uploadtoken.FieldUploadedFileURL]
	return ok
}

// ResetUploadedFileURL resets all changes to the "uploaded_file_url" field.
func (m *UploadTokenMutation) ResetUploadedFileURL() {
	m.uploaded_file_url = nil
	delete(m.clearedFields, uploadtoken.FieldUploadedFileURL)
}

// SetExpiresAt sets the "expires_at" field.
func (m *UploadTokenMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *UploadTokenMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the UploadToken entity.
// If the UploadToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadTokenMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *UploadTokenMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetUsedAt sets the "used_at" field.
func (m *UploadTokenMutation) SetUsedAt(t time.Time) {
	m.used_at = &t
}

// UsedAt returns the value of the "used_at" field in the mutation.
func (m *UploadTokenMutation) UsedAt() (r time.Time, exists bool) {
	v := m.used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedAt returns the old "used_at" field's value of the UploadToken entity.
// If the UploadToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadTokenMutation) OldUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedAt: %w", err)
	}
	return oldValue.UsedAt, nil
}

// ClearUsedAt clears the value of the "used_at" field.
func (m *UploadTokenMutation) ClearUsedAt() {
	m.used_at = nil
	m.clearedFields[uploadtoken.FieldUsedAt] = struct{}{}
}

// UsedAtCleared returns if the "used_at" field was cleared in this mutation.
func (m *UploadTokenMutation) UsedAtCleared() bool {
	_, ok := m.clearedFields[uploadtoken.FieldUsedAt]
	return ok
}

// ResetUsedAt resets all changes to the "used_at" field.
func (m *UploadTokenMutation) ResetUsedAt() {
	m.used_at = nil
	delete(m.clearedFields, uploadtoken.FieldUsedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UploadTokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UploadTokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UploadToken entity.
// If the UploadToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadTokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UploadTokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEngagement clears the "engagement" edge to the Engagement entity.
func (m *UploadTokenMutation) ClearEngagement() {
	m.clearedengagement = true
	m.clearedFields[uploadtoken.FieldEngagementID] = struct{}{}
}

// EngagementCleared reports if the "engagement" edge to the Engagement entity was cleared.
func (m *UploadTokenMutation) EngagementCleared() bool {
	return m.clearedengagement
}

// EngagementIDs returns the "engagement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EngagementID instead. It exists only for internal usage by the builders.
func (m *UploadTokenMutation) EngagementIDs() (ids []string) {
	if id := m.engagement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEngagement resets all changes to the "engagement" edge.
func (m *UploadTokenMutation) ResetEngagement() {
	m.engagement = nil
	m.clearedengagement = false
}

// Where appends a list predicates to the UploadTokenMutation builder.
func (m *UploadTokenMutation) Where(ps ...predicate.UploadToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UploadTokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UploadTokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UploadToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UploadTokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UploadTokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UploadToken).
func (m *UploadTokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UploadTokenMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.token != nil {
		fields = append(fields, uploadtoken.FieldToken)
	}
	if m.engagement != nil {
		fields = append(fields, uploadtoken.FieldEngagementID)
	}
	if m.purpose != nil {
		fields = append(fields, uploadtoken.FieldPurpose)
	}
	if m.status != nil {
		fields = append(fields, uploadtoken.FieldStatus)
	}
	if m.uploaded_file_url != nil {
		fields = append(fields, uploadtoken.FieldUploadedFileURL)
	}
	if m.expires_at != nil {
		fields = append(fields, uploadtoken.FieldExpiresAt)
	}
	if m.used_at != nil {
		fields = append(fields, uploadtoken.FieldUsedAt)
	}
	if m.created_at != nil {
		fields = append(fields, uploadtoken.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UploadTokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case uploadtoken.FieldToken:
		return m.Token()
	case uploadtoken.FieldEngagementID:
		return m.EngagementID()
	case uploadtoken.FieldPurpose:
		return m.Purpose()
	case uploadtoken.FieldStatus:
		return m.Status()
	case uploadtoken.FieldUploadedFileURL:
		return m.UploadedFileURL()
	case uploadtoken.FieldExpiresAt:
		return m.ExpiresAt()
	case uploadtoken.FieldUsedAt:
		return m.UsedAt()
	case uploadtoken.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UploadTokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case uploadtoken.FieldToken:
		return m.OldToken(ctx)
	case uploadtoken.FieldEngagementID:
		return m.OldEngagementID(ctx)
	case uploadtoken.FieldPurpose:
		return m.OldPurpose(ctx)
	case uploadtoken.FieldStatus:
		return m.OldStatus(ctx)
	case uploadtoken.FieldUploadedFileURL:
		return m.OldUploadedFileURL(ctx)
	case uploadtoken.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case uploadtoken.FieldUsedAt:
		return m.OldUsedAt(ctx)
	case uploadtoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UploadToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadTokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case uploadtoken.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case uploadtoken.FieldEngagementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementID(v)
		return nil
	case uploadtoken.FieldPurpose:
		v, ok := value.(uploadtoken.Purpose)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case uploadtoken.FieldStatus:
		v, ok := value.(uploadtoken.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case uploadtoken.FieldUploadedFileURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedFileURL(v)
		return nil
	case uploadtoken.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case uploadtoken.FieldUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedAt(v)
		return nil
	case uploadtoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UploadToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UploadTokenMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UploadTokenMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadTokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UploadToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UploadTokenMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(uploadtoken.FieldUploadedFileURL) {
		fields = append(fields, uploadtoken.FieldUploadedFileURL)
	}
	if m.FieldCleared(uploadtoken.FieldUsedAt) {
		fields = append(fields, uploadtoken.FieldUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UploadTokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UploadTokenMutation) ClearField(name string) error {
	switch name {
	case uploadtoken.FieldUploadedFileURL:
		m.ClearUploadedFileURL()
		return nil
	case uploadtoken.FieldUsedAt:
		m.ClearUsedAt()
		return nil
	}
	return fmt.Errorf("unknown UploadToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UploadTokenMutation) ResetField(name string) error {
	switch name {
	case uploadtoken.FieldToken:
		m.ResetToken()
		return nil
	case uploadtoken.FieldEngagementID:
		m.ResetEngagementID()
		return nil
	case uploadtoken.FieldPurpose:
		m.ResetPurpose()
		return nil
	case uploadtoken.FieldStatus:
		m.ResetStatus()
		return nil
	case uploadtoken.FieldUploadedFileURL:
		m.ResetUploadedFileURL()
		return nil
	case uploadtoken.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case uploadtoken.FieldUsedAt:
		m.ResetUsedAt()
		return nil
	case uploadtoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UploadToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UploadTokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.engagement != nil {
		edges = append(edges, uploadtoken.EdgeEngagement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UploadTokenMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case uploadtoken.EdgeEngagement:
		if id := m.engagement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UploadTokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UploadTokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UploadTokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedengagement {
		edges = append(edges, uploadtoken.EdgeEngagement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UploadTokenMutation) EdgeCleared(name string) bool {
	switch name {
	case uploadtoken.EdgeEngagement:
		return m.clearedengagement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UploadTokenMutation) ClearEdge(name string) error {
	switch name {
	case uploadtoken.EdgeEngagement:
		m.ClearEngagement()
		return nil
	}
	return fmt.Errorf("unknown UploadToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UploadTokenMutation) ResetEdge(name string) error {
	switch name {
	case uploadtoken.EdgeEngagement:
		m.ResetEngagement()
		return nil
	}
	return fmt.Errorf("unknown UploadToken edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	email              *string
	phone              *string
	first_name         *string
	last_name          *string
	persona            *user.Persona
	company_role       *user.CompanyRole
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	company            *string
	clearedcompany     bool
	buyer_needs        map[string]struct{}
	removedbuyer_needs map[string]struct{}
	clearedbuyer_needs bool
	done               bool
	oldValue           func(context.Context) (*User, error)
	predicates         []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *UserMutation) SetCompanyID(s string) {
	m.company = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *UserMutation) CompanyID() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *UserMutation) ResetCompanyID() {
	m.company = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *UserMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[user.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *UserMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[user.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, user.FieldPhone)
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *UserMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[user.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *UserMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[user.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, user.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *UserMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *UserMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[user.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *UserMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[user.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, user.FieldLastName)
}

// SetPersona sets the "persona" field.
func (m *UserMutation) SetPersona(u user.Persona) {
	m.persona = &u
}

// Persona returns the value of the "persona" field in the mutation.
func (m *UserMutation) Persona() (r user.Persona, exists bool) {
	v := m.persona
	if v == nil {
		return
	}
	return *v, true
}

// OldPersona returns the old "persona" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPersona(ctx context.Context) (v user.Persona, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersona is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersona requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersona: %w", err)
	}
	return oldValue.Persona, nil
}

// ResetPersona resets all changes to the "persona" field.
func (m *UserMutation) ResetPersona() {
	m.persona = nil
}

// SetCompanyRole sets the "company_role" field.
func (m *UserMutation) SetCompanyRole(ur user.CompanyRole) {
	m.company_role = &ur
}

// CompanyRole returns the value of the "company_role" field in the mutation.
func (m *UserMutation) CompanyRole() (r user.CompanyRole, exists bool) {
	v := m.company_role
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyRole returns the old "company_role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCompanyRole(ctx context.Context) (v user.CompanyRole, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyRole: %w", err)
	}
	return oldValue.CompanyRole, nil
}

// ResetCompanyRole resets all changes to the "company_role" field.
func (m *UserMutation) ResetCompanyRole() {
	m.company_role = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *UserMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[user.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *UserMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *UserMutation) CompanyIDs() (ids []string) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *UserMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddBuyerNeedIDs adds the "buyer_needs" edge to the BuyerNeed entity by ids.
func (m *UserMutation) AddBuyerNeedIDs(ids ...string) {
	if m.buyer_needs == nil {
		m.buyer_needs = make(map[string]struct{})
	}
	for i := range ids {
		m.buyer_needs[ids[i]] = struct{}{}
	}
}

// ClearBuyerNeeds clears the "buyer_needs" edge to the BuyerNeed entity.
func (m *UserMutation) ClearBuyerNeeds() {
	m.clearedbuyer_needs = true
}

// BuyerNeedsCleared reports if the "buyer_needs" edge to the BuyerNeed entity was cleared.
func (m *UserMutation) BuyerNeedsCleared() bool {
	return m.clearedbuyer_needs
}

// RemoveBuyerNeedIDs removes the "buyer_needs" edge to the BuyerNeed entity by IDs.
func (m *UserMutation) RemoveBuyerNeedIDs(ids ...string) {
	if m.removedbuyer_needs == nil {
		m.removedbuyer_needs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.buyer_needs, ids[i])
		m.removedbuyer_needs[ids[i]] = struct{}{}
	}
}

// RemovedBuyerNeeds returns the removed IDs of the "buyer_needs" edge to the BuyerNeed entity.
func (m *UserMutation) RemovedBuyerNeedsIDs() (ids []string) {
	for id := range m.removedbuyer_needs {
		ids = append(ids, id)
	}
	return
}

// BuyerNeedsIDs returns the "buyer_needs" edge IDs in the mutation.
func (m *UserMutation) BuyerNeedsIDs() (ids []string) {
	for id := range m.buyer_needs {
		ids = append(ids, id)
	}
	return
}

// ResetBuyerNeeds resets all changes to the "buyer_needs" edge.
func (m *UserMutation) ResetBuyerNeeds() {
	m.buyer_needs = nil
	m.clearedbuyer_needs = false
	m.removedbuyer_needs = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.company != nil {
		fields = append(fields, user.FieldCompanyID)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, user.FieldLastName)
	}
	if m.persona != nil {
		fields = append(fields, user.FieldPersona)
	}
	if m.company_role != nil {
		fields = append(fields, user.FieldCompanyRole)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCompanyID:
		return m.CompanyID()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldLastName:
		return m.LastName()
	case user.FieldPersona:
		return m.Persona()
	case user.FieldCompanyRole:
		return m.CompanyRole()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldLastName:
		return m.OldLastName(ctx)
	case user.FieldPersona:
		return m.OldPersona(ctx)
	case user.FieldCompanyRole:
		return m.OldCompanyRole(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case user.FieldPersona:
		v, ok := value.(user.Persona)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersona(v)
		return nil
	case user.FieldCompanyRole:
		v, ok := value.(user.CompanyRole)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyRole(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldPhone) {
		fields = append(fields, user.FieldPhone)
	}
	if m.FieldCleared(user.FieldFirstName) {
		fields = append(fields, user.FieldFirstName)
	}
	if m.FieldCleared(user.FieldLastName) {
		fields = append(fields, user.FieldLastName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldPhone:
		m.ClearPhone()
		return nil
	case user.FieldFirstName:
		m.ClearFirstName()
		return nil
	case user.FieldLastName:
		m.ClearLastName()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldLastName:
		m.ResetLastName()
		return nil
	case user.FieldPersona:
		m.ResetPersona()
		return nil
	case user.FieldCompanyRole:
		m.ResetCompanyRole()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.company != nil {
		edges = append(edges, user.EdgeCompany)
	}
	if m.buyer_needs != nil {
		edges = append(edges, user.EdgeBuyerNeeds)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeBuyerNeeds:
		ids := make([]ent.Value, 0, len(m.buyer_needs))
		for id := range m.buyer_needs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedbuyer_needs != nil {
		edges = append(edges, user.EdgeBuyerNeeds)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeBuyerNeeds:
		ids := make([]ent.Value, 0, len(m.removedbuyer_needs))
		for id := range m.removedbuyer_needs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcompany {
		edges = append(edges, user.EdgeCompany)
	}
	if m.clearedbuyer_needs {
		edges = append(edges, user.EdgeBuyerNeeds)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeCompany:
		return m.clearedcompany
	case user.EdgeBuyerNeeds:
		return m.clearedbuyer_needs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeCompany:
		m.ResetCompany()
		return nil
	case user.EdgeBuyerNeeds:
		m.ResetBuyerNeeds()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// WarehouseMutation represents an operation that mutates the Warehouse nodes in the graph.
type WarehouseMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	address                    *string
	city                       *string
	state                      *string
	zip                        *string
	lat                        *float64
	addlat                     *float64
	lng                        *float64
	addlng                     *float64
	building_sqft              *int
	addbuilding_sqft           *int
	year_built                 *int
	addyear_built              *int
	construction_type          *string
	gallery                    *[]string
	appendgallery              []string
	contact_phone              *string
	supplier_status            *warehouse.SupplierStatus
	last_outreach_at           *time.Time
	outreach_count             *int
	addoutreach_count          *int
	created_by                 *string
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	company                    *string
	clearedcompany             bool
	truth_core                 *string
	clearedtruth_core          bool
	matches                    map[string]struct{}
	removedmatches             map[string]struct{}
	clearedmatches             bool
	memories                   map[string]struct{}
	removedmemories            map[string]struct{}
	clearedmemories            bool
	questions                  map[string]struct{}
	removedquestions           map[string]struct{}
	clearedquestions           bool
	knowledge                  map[string]struct{}
	removedknowledge           map[string]struct{}
	clearedknowledge           bool
	dla_tokens                 map[string]struct{}
	removeddla_tokens          map[string]struct{}
	cleareddla_tokens          bool
	toggle_history             map[string]struct{}
	removedtoggle_history      map[string]struct{}
	clearedtoggle_history      bool
	supplier_agreements        map[string]struct{}
	removedsupplier_agreements map[string]struct{}
	clearedsupplier_agreements bool
	done                       bool
	oldValue                   func(context.Context) (*Warehouse, error)
	predicates                 []predicate.Warehouse
}

var _ ent.Mutation = (*WarehouseMutation)(nil)

// warehouseOption allows management of the mutation configuration using functional options.
type warehouseOption func(*WarehouseMutation)

// newWarehouseMutation creates new mutation for the Warehouse entity.
func newWarehouseMutation(c config, op Op, opts ...warehouseOption) *WarehouseMutation {
	m := &WarehouseMutation{
		config:        c,
		op:            op,
		typ:           TypeWarehouse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWarehouseID sets the ID field of the mutation.
func withWarehouseID(id string) warehouseOption {
	return func(m *WarehouseMutation) {
		var (
			err   error
			once  sync.Once
			value *Warehouse
		)
		m.oldValue = func(ctx context.Context) (*Warehouse, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Warehouse.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWarehouse sets the old Warehouse of the mutation.
func withWarehouse(node *Warehouse) warehouseOption {
	return func(m *WarehouseMutation) {
		m.oldValue = func(context.Context) (*Warehouse, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WarehouseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WarehouseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Warehouse entities.
func (m *WarehouseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WarehouseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WarehouseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Warehouse.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *WarehouseMutation) SetCompanyID(s string) {
	m.company = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *WarehouseMutation) CompanyID() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *WarehouseMutation) ResetCompanyID() {
	m.company = nil
}

// SetAddress sets the "address" field.
func (m *WarehouseMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *WarehouseMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ResetAddress resets all changes to the "address" field.
func (m *WarehouseMutation) ResetAddress() {
	m.address = nil
}

// SetCity sets the "city" field.
func (m *WarehouseMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *WarehouseMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ResetCity resets all changes to the "city" field.
func (m *WarehouseMutation) ResetCity() {
	m.city = nil
}

// SetState sets the "state" field.
func (m *WarehouseMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *WarehouseMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *WarehouseMutation) ResetState() {
	m.state = nil
}

// SetZip sets the "zip" field.
func (m *WarehouseMutation) SetZip(s string) {
	m.zip = &s
}

// Zip returns the value of the "zip" field in the mutation.
func (m *WarehouseMutation) Zip() (r string, exists bool) {
	v := m.zip
	if v == nil {
		return
	}
	return *v, true
}

// OldZip returns the old "zip" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldZip(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZip is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZip requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZip: %w", err)
	}
	return oldValue.Zip, nil
}

// ClearZip clears the value of the "zip" field.
func (m *WarehouseMutation) ClearZip() {
	m.zip = nil
	m.clearedFields[warehouse.FieldZip] = struct{}{}
}

// ZipCleared returns if the "zip" field was cleared in this mutation.
func (m *WarehouseMutation) ZipCleared() bool {
	_, ok := m.clearedFields[warehouse.FieldZip]
	return ok
}

// ResetZip resets all changes to the "zip" field.
func (m *WarehouseMutation) ResetZip() {
	m.zip = nil
	delete(m.clearedFields, warehouse.FieldZip)
}

// SetLat sets the "lat" field.
func (m *WarehouseMutation) SetLat(f float64) {
	m.lat = &f
	m.addlat = nil
}

// Lat returns the value of the "lat" field in the mutation.
func (m *WarehouseMutation) Lat() (r float64, exists bool) {
	v := m.lat
	if v == nil {
		return
	}
	return *v, true
}

// OldLat returns the old "lat" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldLat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLat: %w", err)
	}
	return oldValue.Lat, nil
}

// AddLat adds f to the "lat" field.
func (m *WarehouseMutation) AddLat(f float64) {
	if m.addlat != nil {
		*m.addlat += f
	} else {
		m.addlat = &f
	}
}

// AddedLat returns the value that was added to the "lat" field in this mutation.
func (m *WarehouseMutation) AddedLat() (r float64, exists bool) {
	v := m.addlat
	if v == nil {
		return
	}
	return *v, true
}

// ClearLat clears the value of the "lat" field.
func (m *WarehouseMutation) ClearLat() {
	m.lat = nil
	m.addlat = nil
	m.clearedFields[warehouse.FieldLat] = struct{}{}
}

// LatCleared returns if the "lat" field was cleared in this mutation.
func (m *WarehouseMutation) LatCleared() bool {
	_, ok := m.clearedFields[warehouse.FieldLat]
	return ok
}

// ResetLat resets all changes to the "lat" field.
func (m *WarehouseMutation) ResetLat() {
	m.lat = nil
	m.addlat = nil
	delete(m.clearedFields, warehouse.FieldLat)
}

// SetLng sets the "lng" field.
func (m *WarehouseMutation) SetLng(f float64) {
	m.lng = &f
	m.addlng = nil
}

// Lng returns the value of the "lng" field in the mutation.
func (m *WarehouseMutation) Lng() (r float64, exists bool) {
	v := m.lng
	if v == nil {
		return
	}
	return *v, true
}

// OldLng returns the old "lng" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldLng(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLng is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLng requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLng: %w", err)
	}
	return oldValue.Lng, nil
}

// AddLng adds f to the "lng" field.
func (m *WarehouseMutation) AddLng(f float64) {
	if m.addlng != nil {
		*m.addlng += f
	} else {
		m.addlng = &f
	}
}

// AddedLng returns the value that was added to the "lng" field in this mutation.
func (m *WarehouseMutation) AddedLng() (r float64, exists bool) {
	v := m.addlng
	if v == nil {
		return
	}
	return *v, true
}

// ClearLng clears the value of the "lng" field.
func (m *WarehouseMutation) ClearLng() {
	m.lng = nil
	m.addlng = nil
	m.clearedFields[warehouse.FieldLng] = struct{}{}
}

// LngCleared returns if the "lng" field was cleared in this mutation.
func (m *WarehouseMutation) LngCleared() bool {
	_, ok := m.clearedFields[warehouse.FieldLng]
	return ok
}

// ResetLng resets all changes to the "lng" field.
func (m *WarehouseMutation) ResetLng() {
	m.lng = nil
	m.addlng = nil
	delete(m.clearedFields, warehouse.FieldLng)
}

// SetBuildingSqft sets the "building_sqft" field.
func (m *WarehouseMutation) SetBuildingSqft(i int) {
	m.building_sqft = &i
	m.addbuilding_sqft = nil
}

// BuildingSqft returns the value of the "building_sqft" field in the mutation.
func (m *WarehouseMutation) BuildingSqft() (r int, exists bool) {
	v := m.building_sqft
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildingSqft returns the old "building_sqft" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldBuildingSqft(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildingSqft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildingSqft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildingSqft: %w", err)
	}
	return oldValue.BuildingSqft, nil
}

// AddBuildingSqft adds i to the "building_sqft" field.
func (m *WarehouseMutation) AddBuildingSqft(i int) {
	if m.addbuilding_sqft != nil {
		*m.addbuilding_sqft += i
	} else {
		m.addbuilding_sqft = &i
	}
}

// AddedBuildingSqft returns the value that was added to the "building_sqft" field in this mutation.
func (m *WarehouseMutation) AddedBuildingSqft() (r int, exists bool) {
	v := m.addbuilding_sqft
	if v == nil {
		return
	}
	return *v, true
}

// ClearBuildingSqft clears the value of the "building_sqft" field.
func (m *WarehouseMutation) ClearBuildingSqft() {
	m.building_sqft = nil
	m.addbuilding_sqft = nil
	m.clearedFields[warehouse.FieldBuildingSqft] = struct{}{}
}

// BuildingSqftCleared returns if the "building_sqft" field was cleared in this mutation.
func (m *WarehouseMutation) BuildingSqftCleared() bool {
	_, ok := m.clearedFields[warehouse.FieldBuildingSqft]
	return ok
}

// ResetBuildingSqft resets all changes to the "building_sqft" field.
func (m *WarehouseMutation) ResetBuildingSqft() {
	m.building_sqft = nil
	m.addbuilding_sqft = nil
	delete(m.clearedFields, warehouse.FieldBuildingSqft)
}

// SetYearBuilt sets the "year_built" field.
func (m *WarehouseMutation) SetYearBuilt(i int) {
	m.year_built = &i
	m.addyear_built = nil
}

// YearBuilt returns the value of the "year_built" field in the mutation.
func (m *WarehouseMutation) YearBuilt() (r int, exists bool) {
	v := m.year_built
	if v == nil {
		return
	}
	return *v, true
}

// OldYearBuilt returns the old "year_built" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldYearBuilt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearBuilt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearBuilt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearBuilt: %w", err)
	}
	return oldValue.YearBuilt, nil
}

// AddYearBuilt adds i to the "year_built" field.
func (m *WarehouseMutation) AddYearBuilt(i int) {
	if m.addyear_built != nil {
		*m.addyear_built += i
	} else {
		m.addyear_built = &i
	}
}

// AddedYearBuilt returns the value that was added to the "year_built" field in this mutation.
func (m *WarehouseMutation) AddedYearBuilt() (r int, exists bool) {
	v := m.addyear_built
	if v == nil {
		return
	}
	return *v, true
}

// ClearYearBuilt clears the value of the "year_built" field.
func (m *WarehouseMutation) ClearYearBuilt() {
	m.year_built = nil
	m.addyear_built = nil
	m.clearedFields[warehouse.FieldYearBuilt] = struct{}{}
}

// YearBuiltCleared returns if the "year_built" field was cleared in this mutation.
func (m *WarehouseMutation) YearBuiltCleared() bool {
	_, ok := m.clearedFields[warehouse.FieldYearBuilt]
	return ok
}

// ResetYearBuilt resets all changes to the "year_built" field.
func (m *WarehouseMutation) ResetYearBuilt() {
	m.year_built = nil
	m.addyear_built = nil
	delete(m.clearedFields, warehouse.FieldYearBuilt)
}

// SetConstructionType sets the "construction_type" field.
func (m *WarehouseMutation) SetConstructionType(s string) {
	m.construction_type = &s
}

// ConstructionType returns the value of the "construction_type" field in the mutation.
func (m *WarehouseMutation) ConstructionType() (r string, exists bool) {
	v := m.construction_type
	if v == nil {
		return
	}
	return *v, true
}

// OldConstructionType returns the old "construction_type" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldConstructionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstructionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstructionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstructionType: %w", err)
	}
	return oldValue.ConstructionType, nil
}

// ClearConstructionType clears the value of the "construction_type" field.
func (m *WarehouseMutation) ClearConstructionType() {
	m.construction_type = nil
	m.clearedFields[warehouse.FieldConstructionType] = struct{}{}
}

// ConstructionTypeCleared returns if the "construction_type" field was cleared in this mutation.
func (m *WarehouseMutation) ConstructionTypeCleared() bool {
	_, ok := m.clearedFields[warehouse.FieldConstructionType]
	return ok
}

// ResetConstructionType resets all changes to the "construction_type" field.
func (m *WarehouseMutation) ResetConstructionType() {
	m.construction_type = nil
	delete(m.clearedFields, warehouse.FieldConstructionType)
}

// SetGallery sets the "gallery" field.
func (m *WarehouseMutation) SetGallery(s []string) {
	m.gallery = &s
	m.appendgallery = nil
}

// Gallery returns the value of the "gallery" field in the mutation.
func (m *WarehouseMutation) Gallery() (r []string, exists bool) {
	v := m.gallery
	if v == nil {
		return
	}
	return *v, true
}

// OldGallery returns the old "gallery" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldGallery(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGallery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGallery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGallery: %w", err)
	}
	return oldValue.Gallery, nil
}

// AppendGallery adds s to the "gallery" field.
func (m *WarehouseMutation) AppendGallery(s []string) {
	m.appendgallery = append(m.appendgallery, s...)
}

// AppendedGallery returns the list of values that were appended to the "gallery" field in this mutation.
func (m *WarehouseMutation) AppendedGallery() ([]string, bool) {
	if len(m.appendgallery) == 0 {
		return nil, false
	}
	return m.appendgallery, true
}

// ClearGallery clears the value of the "gallery" field.
func (m *WarehouseMutation) ClearGallery() {
	m.gallery = nil
	m.appendgallery = nil
	m.clearedFields[warehouse.FieldGallery] = struct{}{}
}

// GalleryCleared returns if the "gallery" field was cleared in this mutation.
func (m *WarehouseMutation) GalleryCleared() bool {
	_, ok := m.clearedFields[warehouse.FieldGallery]
	return ok
}

// ResetGallery resets all changes to the "gallery" field.
func (m *WarehouseMutation) ResetGallery() {
	m.gallery = nil
	m.appendgallery = nil
	delete(m.clearedFields, warehouse.FieldGallery)
}

// SetContactPhone sets the "contact_phone" field.
func (m *WarehouseMutation) SetContactPhone(s string) {
	m.contact_phone = &s
}

// ContactPhone returns the value of the "contact_phone" field in the mutation.
func (m *WarehouseMutation) ContactPhone() (r string, exists bool) {
	v := m.contact_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldContactPhone returns the old "contact_phone" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldContactPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactPhone: %w", err)
	}
	return oldValue.ContactPhone, nil
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (m *WarehouseMutation) ClearContactPhone() {
	m.contact_phone = nil
	m.clearedFields[warehouse.FieldContactPhone] = struct{}{}
}

// ContactPhoneCleared returns if the "contact_phone" field was cleared in this mutation.
func (m *WarehouseMutation) ContactPhoneCleared() bool {
	_, ok := m.clearedFields[warehouse.FieldContactPhone]
	return ok
}

// ResetContactPhone resets all changes to the "contact_phone" field.
func (m *WarehouseMutation) ResetContactPhone() {
	m.contact_phone = nil
	delete(m.clearedFields, warehouse.FieldContactPhone)
}

// SetSupplierStatus sets the "supplier_status" field.
func (m *WarehouseMutation) SetSupplierStatus(ws warehouse.SupplierStatus) {
	m.supplier_status = &ws
}

// SupplierStatus returns the value of the "supplier_status" field in the mutation.
func (m *WarehouseMutation) SupplierStatus() (r warehouse.SupplierStatus, exists bool) {
	v := m.supplier_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierStatus returns the old "supplier_status" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldSupplierStatus(ctx context.Context) (v warehouse.SupplierStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierStatus: %w", err)
	}
	return oldValue.SupplierStatus, nil
}

// ResetSupplierStatus resets all changes to the "supplier_status" field.
func (m *WarehouseMutation) ResetSupplierStatus() {
	m.supplier_status = nil
}

// SetLastOutreachAt sets the "last_outreach_at" field.
func (m *WarehouseMutation) SetLastOutreachAt(t time.Time) {
	m.last_outreach_at = &t
}

// LastOutreachAt returns the value of the "last_outreach_at" field in the mutation.
func (m *WarehouseMutation) LastOutreachAt() (r time.Time, exists bool) {
	v := m.last_outreach_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastOutreachAt returns the old "last_outreach_at" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldLastOutreachAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastOutreachAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastOutreachAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastOutreachAt: %w", err)
	}
	return oldValue.LastOutreachAt, nil
}

// ClearLastOutreachAt clears the value of the "last_outreach_at" field.
func (m *WarehouseMutation) ClearLastOutreachAt() {
	m.last_outreach_at = nil
	m.clearedFields[warehouse.FieldLastOutreachAt] = struct{}{}
}

// LastOutreachAtCleared returns if the "last_outreach_at" field was cleared in this mutation.
func (m *WarehouseMutation) LastOutreachAtCleared() bool {
	_, ok := m.clearedFields[warehouse.FieldLastOutreachAt]
	return ok
}

// ResetLastOutreachAt resets all changes to the "last_outreach_at" field.
func (m *WarehouseMutation) ResetLastOutreachAt() {
	m.last_outreach_at = nil
	delete(m.clearedFields, warehouse.FieldLastOutreachAt)
}

// SetOutreachCount sets the "outreach_count" field.
func (m *WarehouseMutation) SetOutreachCount(i int) {
	m.outreach_count = &i
	m.addoutreach_count = nil
}

// OutreachCount returns the value of the "outreach_count" field in the mutation.
func (m *WarehouseMutation) OutreachCount() (r int, exists bool) {
	v := m.outreach_count
	if v == nil {
		return
	}
	return *v, true
}

// OldOutreachCount returns the old "outreach_count" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldOutreachCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutreachCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutreachCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutreachCount: %w", err)
	}
	return oldValue.OutreachCount, nil
}

// AddOutreachCount adds i to the "outreach_count" field.
func (m *WarehouseMutation) AddOutreachCount(i int) {
	if m.addoutreach_count != nil {
		*m.addoutreach_count += i
	} else {
		m.addoutreach_count = &i
	}
}

// AddedOutreachCount returns the value that was added to the "outreach_count" field in this mutation.
func (m *WarehouseMutation) AddedOutreachCount() (r int, exists bool) {
	v := m.addoutreach_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutreachCount resets all changes to the "outreach_count" field.
func (m *WarehouseMutation) ResetOutreachCount() {
	m.outreach_count = nil
	m.addoutreach_count = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *WarehouseMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *WarehouseMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *WarehouseMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[warehouse.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *WarehouseMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[warehouse.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *WarehouseMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, warehouse.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *WarehouseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WarehouseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WarehouseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WarehouseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WarehouseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Warehouse entity.
// If the Warehouse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarehouseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WarehouseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *WarehouseMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[warehouse.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *WarehouseMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *WarehouseMutation) CompanyIDs() (ids []string) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *WarehouseMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// SetTruthCoreID sets the "truth_core" edge to the TruthCore entity by id.
func (m *WarehouseMutation) SetTruthCoreID(id string) {
	m.truth_core = &id
}

// ClearTruthCore clears the "truth_core" edge to the TruthCore entity.
func (m *WarehouseMutation) ClearTruthCore() {
	m.clearedtruth_core = true
}

// TruthCoreCleared reports if the "truth_core" edge to the TruthCore entity was cleared.
func (m *WarehouseMutation) TruthCoreCleared() bool {
	return m.clearedtruth_core
}

// TruthCoreID returns the "truth_core" edge ID in the mutation.
func (m *WarehouseMutation) TruthCoreID() (id string, exists bool) {
	if m.truth_core != nil {
		return *m.truth_core, true
	}
	return
}

// TruthCoreIDs returns the "truth_core" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TruthCoreID instead. It exists only for internal usage by the builders.
func (m *WarehouseMutation) TruthCoreIDs() (ids []string) {
	if id := m.truth_core; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTruthCore resets all changes to the "truth_core" edge.
func (m *WarehouseMutation) ResetTruthCore() {
	m.truth_core = nil
	m.clearedtruth_core = false
}

// AddMatchIDs adds the "matches" edge to the Match entity by ids.
func (m *WarehouseMutation) AddMatchIDs(ids ...string) {
	if m.matches == nil {
		m.matches = make(map[string]struct{})
	}
	for i := range ids {
		m.matches[ids[i]] = struct{}{}
	}
}

// ClearMatches clears the "matches" edge to the Match entity.
func (m *WarehouseMutation) ClearMatches() {
	m.clearedmatches = true
}

// MatchesCleared reports if the "matches" edge to the Match entity was cleared.
func (m *WarehouseMutation) MatchesCleared() bool {
	return m.clearedmatches
}

// RemoveMatchIDs removes the "matches" edge to the Match entity by IDs.
func (m *WarehouseMutation) RemoveMatchIDs(ids ...string) {
	if m.removedmatches == nil {
		m.removedmatches = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.matches, ids[i])
		m.removedmatches[ids[i]] = struct{}{}
	}
}

// RemovedMatches returns the removed IDs of the "matches" edge to the Match entity.
func (m *WarehouseMutation) RemovedMatchesIDs() (ids []string) {
	for id := range m.removedmatches {
		ids = append(ids, id)
	}
	return
}

// MatchesIDs returns the "matches" edge IDs in the mutation.
func (m *WarehouseMutation) MatchesIDs() (ids []string) {
	for id := range m.matches {
		ids = append(ids, id)
	}
	return
}

// ResetMatches resets all changes to the "matches" edge.
func (m *WarehouseMutation) ResetMatches() {
	m.matches = nil
	m.clearedmatches = false
	m.removedmatches = nil
}

// AddMemoryIDs adds the "memories" edge to the ContextualMemory entity by ids.
func (m *WarehouseMutation) AddMemoryIDs(ids ...string) {
	if m.memories == nil {
		m.memories = make(map[string]struct{})
	}
	for i := range ids {
		m.memories[ids[i]] = struct{}{}
	}
}

// ClearMemories clears the "memories" edge to the ContextualMemory entity.
func (m *WarehouseMutation) ClearMemories() {
	m.clearedmemories = true
}

// MemoriesCleared reports if the "memories" edge to the ContextualMemory entity was cleared.
func (m *WarehouseMutation) MemoriesCleared() bool {
	return m.clearedmemories
}

// RemoveMemoryIDs removes the "memories" edge to the ContextualMemory entity by IDs.
func (m *WarehouseMutation) RemoveMemoryIDs(ids ...string) {
	if m.removedmemories == nil {
		m.removedmemories = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.memories, ids[i])
		m.removedmemories[ids[i]] = struct{}{}
	}
}

// RemovedMemories returns the removed IDs of the "memories" edge to the ContextualMemory entity.
func (m *WarehouseMutation) RemovedMemoriesIDs() (ids []string) {
	for id := range m.removedmemories {
		ids = append(ids, id)
	}
	return
}

// MemoriesIDs returns the "memories" edge IDs in the mutation.
func (m *WarehouseMutation) MemoriesIDs() (ids []string) {
	for id := range m.memories {
		ids = append(ids, id)
	}
	return
}

// ResetMemories resets all changes to the "memories" edge.
func (m *WarehouseMutation) ResetMemories() {
	m.memories = nil
	m.clearedmemories = false
	m.removedmemories = nil
}

// AddQuestionIDs adds the "questions" edge to the PropertyQuestion entity by ids.
func (m *WarehouseMutation) AddQuestionIDs(ids ...string) {
	if m.questions == nil {
		m.questions = make(map[string]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the PropertyQuestion entity.
func (m *WarehouseMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the PropertyQuestion entity was cleared.
func (m *WarehouseMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the PropertyQuestion entity by IDs.
func (m *WarehouseMutation) RemoveQuestionIDs(ids ...string) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the PropertyQuestion entity.
func (m *WarehouseMutation) RemovedQuestionsIDs() (ids []string) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *WarehouseMutation) QuestionsIDs() (ids []string) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *WarehouseMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// AddKnowledgeIDs adds the "knowledge" edge to the PropertyKnowledge entity by ids.
func (m *WarehouseMutation) AddKnowledgeIDs(ids ...string) {
	if m.knowledge == nil {
		m.knowledge = make(map[string]struct{})
	}
	for i := range ids {
		m.knowledge[ids[i]] = struct{}{}
	}
}

// ClearKnowledge clears the "knowledge" edge to the PropertyKnowledge entity.
func (m *WarehouseMutation) ClearKnowledge() {
	m.clearedknowledge = true
}

// KnowledgeCleared reports if the "knowledge" edge to the PropertyKnowledge entity was cleared.
func (m *WarehouseMutation) KnowledgeCleared() bool {
	return m.clearedknowledge
}

// RemoveKnowledgeIDs removes the "knowledge" edge to the PropertyKnowledge entity by IDs.
func (m *WarehouseMutation) RemoveKnowledgeIDs(ids ...string) {
	if m.removedknowledge == nil {
		m.removedknowledge = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.knowledge, ids[i])
		m.removedknowledge[ids[i]] = struct{}{}
	}
}

// RemovedKnowledge returns the removed IDs of the "knowledge" edge to the PropertyKnowledge entity.
func (m *WarehouseMutation) RemovedKnowledgeIDs() (ids []string) {
	for id := range m.removedknowledge {
		ids = append(ids, id)
	}
	return
}

// KnowledgeIDs returns the "knowledge" edge IDs in the mutation.
func (m *WarehouseMutation) KnowledgeIDs() (ids []string) {
	for id := range m.knowledge {
		ids = append(ids, id)
	}
	return
}

// ResetKnowledge resets all changes to the "knowledge" edge.
func (m *WarehouseMutation) ResetKnowledge() {
	m.knowledge = nil
	m.clearedknowledge = false
	m.removedknowledge = nil
}

// AddDlaTokenIDs adds the "dla_tokens" edge to the DLAToken entity by ids.
func (m *WarehouseMutation) AddDlaTokenIDs(ids ...string) {
	if m.dla_tokens == nil {
		m.dla_tokens = make(map[string]struct{})
	}
	for i := range ids {
		m.dla_tokens[ids[i]] = struct{}{}
	}
}

// ClearDlaTokens clears the "dla_tokens" edge to the DLAToken entity.
func (m *WarehouseMutation) ClearDlaTokens() {
	m.cleareddla_tokens = true
}

// DlaTokensCleared reports if the "dla_tokens" edge to the DLAToken entity was cleared.
func (m *WarehouseMutation) DlaTokensCleared() bool {
	return m.cleareddla_tokens
}

// RemoveDlaTokenIDs removes the "dla_tokens" edge to the DLAToken entity by IDs.
func (m *WarehouseMutation) RemoveDlaTokenIDs(ids ...string) {
	if m.removeddla_tokens == nil {
		m.removeddla_tokens = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.dla_tokens, ids[i])
		m.removeddla_tokens[ids[i]] = struct{}{}
	}
}

// RemovedDlaTokens returns the removed IDs of the "dla_tokens" edge to the DLAToken entity.
func (m *WarehouseMutation) RemovedDlaTokensIDs() (ids []string) {
	for id := range m.removeddla_tokens {
		ids = append(ids, id)
	}
	return
}

// DlaTokensIDs returns the "dla_tokens" edge IDs in the mutation.
func (m *WarehouseMutation) DlaTokensIDs() (ids []string) {
	for id := range m.dla_tokens {
		ids = append(ids, id)
	}
	return
}

// ResetDlaTokens resets all changes to the "dla_tokens" edge.
func (m *WarehouseMutation) ResetDlaTokens() {
	m.dla_tokens = nil
	m.cleareddla_tokens = false
	m.removeddla_tokens = nil
}

// AddToggleHistoryIDs adds the "toggle_history" edge to the ToggleHistory entity by ids.
func (m *WarehouseMutation) AddToggleHistoryIDs(ids ...string) {
	if m.toggle_history == nil {
		m.toggle_history = make(map[string]struct{})
	}
	for i := range ids {
		m.toggle_history[ids[i]] = struct{}{}
	}
}

// ClearToggleHistory clears the "toggle_history" edge to the ToggleHistory entity.
func (m *WarehouseMutation) ClearToggleHistory() {
	m.clearedtoggle_history = true
}

// ToggleHistoryCleared reports if the "toggle_history" edge to the ToggleHistory entity was cleared.
func (m *WarehouseMutation) ToggleHistoryCleared() bool {
	return m.clearedtoggle_history
}

// RemoveToggleHistoryIDs removes the "toggle_history" edge to the ToggleHistory entity by IDs.
func (m *WarehouseMutation) RemoveToggleHistoryIDs(ids ...string) {
	if m.removedtoggle_history == nil {
		m.removedtoggle_history = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.toggle_history, ids[i])
		m.removedtoggle_history[ids[i]] = struct{}{}
	}
}

// RemovedToggleHistory returns the removed IDs of the "toggle_history" edge to the ToggleHistory entity.
func (m *WarehouseMutation) RemovedToggleHistoryIDs() (ids []string) {
	for id := range m.removedtoggle_history {
		ids = append(ids, id)
	}
	return
}

// ToggleHistoryIDs returns the "toggle_history" edge IDs in the mutation.
func (m *WarehouseMutation) ToggleHistoryIDs() (ids []string) {
	for id := range m.toggle_history {
		ids = append(ids, id)
	}
	return
}

// ResetToggleHistory resets all changes to the "toggle_history" edge.
func (m *WarehouseMutation) ResetToggleHistory() {
	m.toggle_history = nil
	m.clearedtoggle_history = false
	m.removedtoggle_history = nil
}

// AddSupplierAgreementIDs adds the "supplier_agreements" edge to the SupplierAgreement entity by ids.
func (m *WarehouseMutation) AddSupplierAgreementIDs(ids ...string) {
	if m.supplier_agreements == nil {
		m.supplier_agreements = make(map[string]struct{})
	}
	for i := range ids {
		m.supplier_agreements[ids[i]] = struct{}{}
	}
}

// ClearSupplierAgreements clears the "supplier_agreements" edge to the SupplierAgreement entity.
func (m *WarehouseMutation) ClearSupplierAgreements() {
	m.clearedsupplier_agreements = true
}

// SupplierAgreementsCleared reports if the "supplier_agreements" edge to the SupplierAgreement entity was cleared.
func (m *WarehouseMutation) SupplierAgreementsCleared() bool {
	return m.clearedsupplier_agreements
}

// RemoveSupplierAgreementIDs removes the "supplier_agreements" edge to the SupplierAgreement entity by IDs.
func (m *WarehouseMutation) RemoveSupplierAgreementIDs(ids ...string) {
	if m.removedsupplier_agreements == nil {
		m.removedsupplier_agreements = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.supplier_agreements, ids[i])
		m.removedsupplier_agreements[ids[i]] = struct{}{}
	}
}

// RemovedSupplierAgreements returns the removed IDs of the "supplier_agreements" edge to the SupplierAgreement entity.
func (m *WarehouseMutation) RemovedSupplierAgreementsIDs() (ids []string) {
	for id := range m.removedsupplier_agreements {
		ids = append(ids, id)
	}
	return
}

// SupplierAgreementsIDs returns the "supplier_agreements" edge IDs in the mutation.
func (m *WarehouseMutation) SupplierAgreementsIDs() (ids []string) {
	for id := range m.supplier_agreements {
		ids = append(ids, id)
	}
	return
}

// ResetSupplierAgreements resets all changes to the "supplier_agreements" edge.
func (m *WarehouseMutation) ResetSupplierAgreements() {
	m.supplier_agreements = nil
	m.clearedsupplier_agreements = false
	m.removedsupplier_agreements = nil
}

// Where appends a list predicates to the WarehouseMutation builder.
func (m *WarehouseMutation) Where(ps ...predicate.Warehouse) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WarehouseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WarehouseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Warehouse, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WarehouseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WarehouseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Warehouse).
func (m *WarehouseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WarehouseMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.company != nil {
		fields = append(fields, warehouse.FieldCompanyID)
	}
	if m.address != nil {
		fields = append(fields, warehouse.FieldAddress)
	}
	if m.city != nil {
		fields = append(fields, warehouse.FieldCity)
	}
	if m.state != nil {
		fields = append(fields, warehouse.FieldState)
	}
	if m.zip != nil {
		fields = append(fields, warehouse.FieldZip)
	}
	if m.lat != nil {
		fields = append(fields, warehouse.FieldLat)
	}
	if m.lng != nil {
		fields = append(fields, warehouse.FieldLng)
	}
	if m.building_sqft != nil {
		fields = append(fields, warehouse.FieldBuildingSqft)
	}
	if m.year_built != nil {
		fields = append(fields, warehouse.FieldYearBuilt)
	}
	if m.construction_type != nil {
		fields = append(fields, warehouse.FieldConstructionType)
	}
	if m.gallery != nil {
		fields = append(fields, warehouse.FieldGallery)
	}
	if m.contact_phone != nil {
		fields = append(fields, warehouse.FieldContactPhone)
	}
	if m.supplier_status != nil {
		fields = append(fields, warehouse.FieldSupplierStatus)
	}
	if m.last_outreach_at != nil {
		fields = append(fields, warehouse.FieldLastOutreachAt)
	}
	if m.outreach_count != nil {
		fields = append(fields, warehouse.FieldOutreachCount)
	}
	if m.created_by != nil {
		fields = append(fields, warehouse.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, warehouse.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, warehouse.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WarehouseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case warehouse.FieldCompanyID:
		return m.CompanyID()
	case warehouse.FieldAddress:
		return m.Address()
	case warehouse.FieldCity:
		return m.City()
	case warehouse.FieldState:
		return m.State()
	case warehouse.FieldZip:
		return m.Zip()
	case warehouse.FieldLat:
		return m.Lat()
	case warehouse.FieldLng:
		return m.Lng()
	case warehouse.FieldBuildingSqft:
		return m.BuildingSqft()
	case warehouse.FieldYearBuilt:
		return m.YearBuilt()
	case warehouse.FieldConstructionType:
		return m.ConstructionType()
	case warehouse.FieldGallery:
		return m.Gallery()
	case warehouse.FieldContactPhone:
		return m.ContactPhone()
	case warehouse.FieldSupplierStatus:
		return m.SupplierStatus()
	case warehouse.FieldLastOutreachAt:
		return m.LastOutreachAt()
	case warehouse.FieldOutreachCount:
		return m.OutreachCount()
	case warehouse.FieldCreatedBy:
		return m.CreatedBy()
	case warehouse.FieldCreatedAt:
		return m.CreatedAt()
	case warehouse.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WarehouseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case warehouse.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case warehouse.FieldAddress:
		return m.OldAddress(ctx)
	case warehouse.FieldCity:
		return m.OldCity(ctx)
	case warehouse.FieldState:
		return m.OldState(ctx)
	case warehouse.FieldZip:
		return m.OldZip(ctx)
	case warehouse.FieldLat:
		return m.OldLat(ctx)
	case warehouse.FieldLng:
		return m.OldLng(ctx)
	case warehouse.FieldBuildingSqft:
		return m.OldBuildingSqft(ctx)
	case warehouse.FieldYearBuilt:
		return m.OldYearBuilt(ctx)
	case warehouse.FieldConstructionType:
		return m.OldConstructionType(ctx)
	case warehouse.FieldGallery:
		return m.OldGallery(ctx)
	case warehouse.FieldContactPhone:
		return m.OldContactPhone(ctx)
	case warehouse.FieldSupplierStatus:
		return m.OldSupplierStatus(ctx)
	case warehouse.FieldLastOutreachAt:
		return m.OldLastOutreachAt(ctx)
	case warehouse.FieldOutreachCount:
		return m.OldOutreachCount(ctx)
	case warehouse.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case warehouse.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case warehouse.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Warehouse field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WarehouseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case warehouse.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case warehouse.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case warehouse.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case warehouse.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case warehouse.FieldZip:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZip(v)
		return nil
	case warehouse.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLat(v)
		return nil
	case warehouse.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLng(v)
		return nil
	case warehouse.FieldBuildingSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildingSqft(v)
		return nil
	case warehouse.FieldYearBuilt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearBuilt(v)
		return nil
	case warehouse.FieldConstructionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstructionType(v)
		return nil
	case warehouse.FieldGallery:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGallery(v)
		return nil
	case warehouse.FieldContactPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactPhone(v)
		return nil
	case warehouse.FieldSupplierStatus:
		v, ok := value.(warehouse.SupplierStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierStatus(v)
		return nil
	case warehouse.FieldLastOutreachAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastOutreachAt(v)
		return nil
	case warehouse.FieldOutreachCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutreachCount(v)
		return nil
	case warehouse.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case warehouse.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case warehouse.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Warehouse field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WarehouseMutation) AddedFields() []string {
	var fields []string
	if m.addlat != nil {
		fields = append(fields, warehouse.FieldLat)
	}
	if m.addlng != nil {
		fields = append(fields, warehouse.FieldLng)
	}
	if m.addbuilding_sqft != nil {
		fields = append(fields, warehouse.FieldBuildingSqft)
	}
	if m.addyear_built != nil {
		fields = append(fields, warehouse.FieldYearBuilt)
	}
	if m.addoutreach_count != nil {
		fields = append(fields, warehouse.FieldOutreachCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WarehouseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case warehouse.FieldLat:
		return m.AddedLat()
	case warehouse.FieldLng:
		return m.AddedLng()
	case warehouse.FieldBuildingSqft:
		return m.AddedBuildingSqft()
	case warehouse.FieldYearBuilt:
		return m.AddedYearBuilt()
	case warehouse.FieldOutreachCount:
		return m.AddedOutreachCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WarehouseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case warehouse.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLat(v)
		return nil
	case warehouse.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLng(v)
		return nil
	case warehouse.FieldBuildingSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBuildingSqft(v)
		return nil
	case warehouse.FieldYearBuilt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYearBuilt(v)
		return nil
	case warehouse.FieldOutreachCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutreachCount(v)
		return nil
	}
	return fmt.Errorf("unknown Warehouse numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WarehouseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(warehouse.FieldZip) {
		fields = append(fields, warehouse.FieldZip)
	}
	if m.FieldCleared(warehouse.FieldLat) {
		fields = append(fields, warehouse.FieldLat)
	}
	if m.FieldCleared(warehouse.FieldLng) {
		fields = append(fields, warehouse.FieldLng)
	}
	if m.FieldCleared(warehouse.FieldBuildingSqft) {
		fields = append(fields, warehouse.FieldBuildingSqft)
	}
	if m.FieldCleared(warehouse.FieldYearBuilt) {
		fields = append(fields, warehouse.FieldYearBuilt)
	}
	if m.FieldCleared(warehouse.FieldConstructionType) {
		fields = append(fields, warehouse.FieldConstructionType)
	}
	if m.FieldCleared(warehouse.FieldGallery) {
		fields = append(fields, warehouse.FieldGallery)
	}
	if m.FieldCleared(warehouse.FieldContactPhone) {
		fields = append(fields, warehouse.FieldContactPhone)
	}
	if m.FieldCleared(warehouse.FieldLastOutreachAt) {
		fields = append(fields, warehouse.FieldLastOutreachAt)
	}
	if m.FieldCleared(warehouse.FieldCreatedBy) {
		fields = append(fields, warehouse.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WarehouseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WarehouseMutation) ClearField(name string) error {
	switch name {
	case warehouse.FieldZip:
		m.ClearZip()
		return nil
	case warehouse.FieldLat:
		m.ClearLat()
		return nil
	case warehouse.FieldLng:
		m.ClearLng()
		return nil
	case warehouse.FieldBuildingSqft:
		m.ClearBuildingSqft()
		return nil
	case warehouse.FieldYearBuilt:
		m.ClearYearBuilt()
		return nil
	case warehouse.FieldConstructionType:
		m.ClearConstructionType()
		return nil
	case warehouse.FieldGallery:
		m.ClearGallery()
		return nil
	case warehouse.FieldContactPhone:
		m.ClearContactPhone()
		return nil
	case warehouse.FieldLastOutreachAt:
		m.ClearLastOutreachAt()
		return nil
	case warehouse.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Warehouse nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WarehouseMutation) ResetField(name string) error {
	switch name {
	case warehouse.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case warehouse.FieldAddress:
		m.ResetAddress()
		return nil
	case warehouse.FieldCity:
		m.ResetCity()
		return nil
	case warehouse.FieldState:
		m.ResetState()
		return nil
	case warehouse.FieldZip:
		m.ResetZip()
		return nil
	case warehouse.FieldLat:
		m.ResetLat()
		return nil
	case warehouse.FieldLng:
		m.ResetLng()
		return nil
	case warehouse.FieldBuildingSqft:
		m.ResetBuildingSqft()
		return nil
	case warehouse.FieldYearBuilt:
		m.ResetYearBuilt()
		return nil
	case warehouse.FieldConstructionType:
		m.ResetConstructionType()
		return nil
	case warehouse.FieldGallery:
		m.ResetGallery()
		return nil
	case warehouse.FieldContactPhone:
		m.ResetContactPhone()
		return nil
	case warehouse.FieldSupplierStatus:
		m.ResetSupplierStatus()
		return nil
	case warehouse.FieldLastOutreachAt:
		m.ResetLastOutreachAt()
		return nil
	case warehouse.FieldOutreachCount:
		m.ResetOutreachCount()
		return nil
	case warehouse.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case warehouse.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case warehouse.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Warehouse field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WarehouseMutation) AddedEdges() []string {
	edges := make([]string, 0, 9)
	if m.company != nil {
		edges = append(edges, warehouse.EdgeCompany)
	}
	if m.truth_core != nil {
		edges = append(edges, warehouse.EdgeTruthCore)
	}
	if m.matches != nil {
		edges = append(edges, warehouse.EdgeMatches)
	}
	if m.memories != nil {
		edges = append(edges, warehouse.EdgeMemories)
	}
	if m.questions != nil {
		edges = append(edges, warehouse.EdgeQuestions)
	}
	if m.knowledge != nil {
		edges = append(edges, warehouse.EdgeKnowledge)
	}
	if m.dla_tokens != nil {
		edges = append(edges, warehouse.EdgeDlaTokens)
	}
	if m.toggle_history != nil {
		edges = append(edges, warehouse.EdgeToggleHistory)
	}
	if m.supplier_agreements != nil {
		edges = append(edges, warehouse.EdgeSupplierAgreements)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WarehouseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case warehouse.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case warehouse.EdgeTruthCore:
		if id := m.truth_core; id != nil {
			return []ent.Value{*id}
		}
	case warehouse.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.matches))
		for id := range m.matches {
			ids = append(ids, id)
		}
		return ids
	case warehouse.EdgeMemories:
		ids := make([]ent.Value, 0, len(m.memories))
		for id := range m.memories {
			ids = append(ids, id)
		}
		return ids
	case warehouse.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	case warehouse.EdgeKnowledge:
		ids := make([]ent.Value, 0, len(m.knowledge))
		for id := range m.knowledge {
			ids = append(ids, id)
		}
		return ids
	case warehouse.EdgeDlaTokens:
		ids := make([]ent.Value, 0, len(m.dla_tokens))
		for id := range m.dla_tokens {
			ids = append(ids, id)
		}
		return ids
	case warehouse.EdgeToggleHistory:
		ids := make([]ent.Value, 0, len(m.toggle_history))
		for id := range m.toggle_history {
			ids = append(ids, id)
		}
		return ids
	case warehouse.EdgeSupplierAgreements:
		ids := make([]ent.Value, 0, len(m.supplier_agreements))
		for id := range m.supplier_agreements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WarehouseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 9)
	if m.removedmatches != nil {
		edges = append(edges, warehouse.EdgeMatches)
	}
	if m.removedmemories != nil {
		edges = append(edges, warehouse.EdgeMemories)
	}
	if m.removedquestions != nil {
		edges = append(edges, warehouse.EdgeQuestions)
	}
	if m.removedknowledge != nil {
		edges = append(edges, warehouse.EdgeKnowledge)
	}
	if m.removeddla_tokens != nil {
		edges = append(edges, warehouse.EdgeDlaTokens)
	}
	if m.removedtoggle_history != nil {
		edges = append(edges, warehouse.EdgeToggleHistory)
	}
	if m.removedsupplier_agreements != nil {
		edges = append(edges, warehouse.EdgeSupplierAgreements)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WarehouseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case warehouse.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.removedmatches))
		for id := range m.removedmatches {
			ids = append(ids, id)
		}
		return ids
	case warehouse.EdgeMemories:
		ids := make([]ent.Value, 0, len(m.removedmemories))
		for id := range m.removedmemories {
			ids = append(ids, id)
		}
		return ids
	case warehouse.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	case warehouse.EdgeKnowledge:
		ids := make([]ent.Value, 0, len(m.removedknowledge))
		for id := range m.removedknowledge {
			ids = append(ids, id)
		}
		return ids
	case warehouse.EdgeDlaTokens:
		ids := make([]ent.Value, 0, len(m.removeddla_tokens))
		for id := range m.removeddla_tokens {
			ids = append(ids, id)
		}
		return ids
	case warehouse.EdgeToggleHistory:
		ids := make([]ent.Value, 0, len(m.removedtoggle_history))
		for id := range m.removedtoggle_history {
			ids = append(ids, id)
		}
		return ids
	case warehouse.EdgeSupplierAgreements:
		ids := make([]ent.Value, 0, len(m.removedsupplier_agreements))
		for id := range m.removedsupplier_agreements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WarehouseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 9)
	if m.clearedcompany {
		edges = append(edges, warehouse.EdgeCompany)
	}
	if m.clearedtruth_core {
		edges = append(edges, warehouse.EdgeTruthCore)
	}
	if m.clearedmatches {
		edges = append(edges, warehouse.EdgeMatches)
	}
	if m.clearedmemories {
		edges = append(edges, warehouse.EdgeMemories)
	}
	if m.clearedquestions {
		edges = append(edges, warehouse.EdgeQuestions)
	}
	if m.clearedknowledge {
		edges = append(edges, warehouse.EdgeKnowledge)
	}
	if m.cleareddla_tokens {
		edges = append(edges, warehouse.EdgeDlaTokens)
	}
	if m.clearedtoggle_history {
		edges = append(edges, warehouse.EdgeToggleHistory)
	}
	if m.clearedsupplier_agreements {
		edges = append(edges, warehouse.EdgeSupplierAgreements)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WarehouseMutation) EdgeCleared(name string) bool {
	switch name {
	case warehouse.EdgeCompany:
		return m.clearedcompany
	case warehouse.EdgeTruthCore:
		return m.clearedtruth_core
	case warehouse.EdgeMatches:
		return m.clearedmatches
	case warehouse.EdgeMemories:
		return m.clearedmemories
	case warehouse.EdgeQuestions:
		return m.clearedquestions
	case warehouse.EdgeKnowledge:
		return m.clearedknowledge
	case warehouse.EdgeDlaTokens:
		return m.cleareddla_tokens
	case warehouse.EdgeToggleHistory:
		return m.clearedtoggle_history
	case warehouse.EdgeSupplierAgreements:
		return m.clearedsupplier_agreements
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WarehouseMutation) ClearEdge(name string) error {
	switch name {
	case warehouse.EdgeCompany:
		m.ClearCompany()
		return nil
	case warehouse.EdgeTruthCore:
		m.ClearTruthCore()
		return nil
	}
	return fmt.Errorf("unknown Warehouse unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WarehouseMutation) ResetEdge(name string) error {
	switch name {
	case warehouse.EdgeCompany:
		m.ResetCompany()
		return nil
	case warehouse.EdgeTruthCore:
		m.ResetTruthCore()
		return nil
	case warehouse.EdgeMatches:
		m.ResetMatches()
		return nil
	case warehouse.EdgeMemories:
		m.ResetMemories()
		return nil
	case warehouse.EdgeQuestions:
		m.ResetQuestions()
		return nil
	case warehouse.EdgeKnowledge:
		m.ResetKnowledge()
		return nil
	case warehouse.EdgeDlaTokens:
		m.ResetDlaTokens()
		return nil
	case warehouse.EdgeToggleHistory:
		m.ResetToggleHistory()
		return nil
	case warehouse.EdgeSupplierAgreements:
		m.ResetSupplierAgreements()
		return nil
	}
	return fmt.Errorf("unknown Warehouse edge %s", name)
}
