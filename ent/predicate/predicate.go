// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BuyerNeed is the predicate function for buyerneed builders.
type BuyerNeed func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// ContextualMemory is the predicate function for contextualmemory builders.
type ContextualMemory func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// DLAToken is the predicate function for dlatoken builders.
type DLAToken func(*sql.Selector)

// Engagement is the predicate function for engagement builders.
type Engagement func(*sql.Selector)

// EngagementAgreement is the predicate function for engagementagreement builders.
type EngagementAgreement func(*sql.Selector)

// EngagementEvent is the predicate function for engagementevent builders.
type EngagementEvent func(*sql.Selector)

// InboundMessage is the predicate function for inboundmessage builders.
type InboundMessage func(*sql.Selector)

// InstantBookScore is the predicate function for instantbookscore builders.
type InstantBookScore func(*sql.Selector)

// MarketRate is the predicate function for marketrate builders.
type MarketRate func(*sql.Selector)

// Match is the predicate function for match builders.
type Match func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// PaymentRecord is the predicate function for paymentrecord builders.
type PaymentRecord func(*sql.Selector)

// PropertyKnowledge is the predicate function for propertyknowledge builders.
type PropertyKnowledge func(*sql.Selector)

// PropertyQuestion is the predicate function for propertyquestion builders.
type PropertyQuestion func(*sql.Selector)

// SearchSession is the predicate function for searchsession builders.
type SearchSession func(*sql.Selector)

// SupplierAgreement is the predicate function for supplieragreement builders.
type SupplierAgreement func(*sql.Selector)

// ToggleHistory is the predicate function for togglehistory builders.
type ToggleHistory func(*sql.Selector)

// TruthCore is the predicate function for truthcore builders.
type TruthCore func(*sql.Selector)

// UploadToken is the predicate function for uploadtoken builders.
type UploadToken func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Warehouse is the predicate function for warehouse builders.
type Warehouse func(*sql.Selector)
