// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/warehouse-exchange/wex/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BuyerNeed is the client for interacting with the BuyerNeed builders.
	BuyerNeed *BuyerNeedClient
	// Company is the client for interacting with the Company builders.
	Company *CompanyClient
	// ContextualMemory is the client for interacting with the ContextualMemory builders.
	ContextualMemory *ContextualMemoryClient
	// Conversation is the client for interacting with the Conversation builders.
	Conversation *ConversationClient
	// DLAToken is the client for interacting with the DLAToken builders.
	DLAToken *DLATokenClient
	// Engagement is the client for interacting with the Engagement builders.
	Engagement *EngagementClient
	// EngagementAgreement is the client for interacting with the EngagementAgreement builders.
	EngagementAgreement *EngagementAgreementClient
	// EngagementEvent is the client for interacting with the EngagementEvent builders.
	EngagementEvent *EngagementEventClient
	// InboundMessage is the client for interacting with the InboundMessage builders.
	InboundMessage *InboundMessageClient
	// InstantBookScore is the client for interacting with the InstantBookScore builders.
	InstantBookScore *InstantBookScoreClient
	// MarketRate is the client for interacting with the MarketRate builders.
	MarketRate *MarketRateClient
	// Match is the client for interacting with the Match builders.
	Match *MatchClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// PaymentRecord is the client for interacting with the PaymentRecord builders.
	PaymentRecord *PaymentRecordClient
	// PropertyKnowledge is the client for interacting with the PropertyKnowledge builders.
	PropertyKnowledge *PropertyKnowledgeClient
	// PropertyQuestion is the client for interacting with the PropertyQuestion builders.
	PropertyQuestion *PropertyQuestionClient
	// SearchSession is the client for interacting with the SearchSession builders.
	SearchSession *SearchSessionClient
	// SupplierAgreement is the client for interacting with the SupplierAgreement builders.
	SupplierAgreement *SupplierAgreementClient
	// ToggleHistory is the client for interacting with the ToggleHistory builders.
	ToggleHistory *ToggleHistoryClient
	// TruthCore is the client for interacting with the TruthCore builders.
	TruthCore *TruthCoreClient
	// UploadToken is the client for interacting with the UploadToken builders.
	UploadToken *UploadTokenClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// Warehouse is the client for interacting with the Warehouse builders.
	Warehouse *WarehouseClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BuyerNeed = NewBuyerNeedClient(c.config)
	c.Company = NewCompanyClient(c.config)
	c.ContextualMemory = NewContextualMemoryClient(c.config)
	c.Conversation = NewConversationClient(c.config)
	c.DLAToken = NewDLATokenClient(c.config)
	c.Engagement = NewEngagementClient(c.config)
	c.EngagementAgreement = NewEngagementAgreementClient(c.config)
	c.EngagementEvent = NewEngagementEventClient(c.config)
	c.InboundMessage = NewInboundMessageClient(c.config)
	c.InstantBookScore = NewInstantBookScoreClient(c.config)
	c.MarketRate = NewMarketRateClient(c.config)
	c.Match = NewMatchClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.PaymentRecord = NewPaymentRecordClient(c.config)
	c.PropertyKnowledge = NewPropertyKnowledgeClient(c.config)
	c.PropertyQuestion = NewPropertyQuestionClient(c.config)
	c.SearchSession = NewSearchSessionClient(c.config)
	c.SupplierAgreement = NewSupplierAgreementClient(c.config)
	c.ToggleHistory = NewToggleHistoryClient(c.config)
	c.TruthCore = NewTruthCoreClient(c.config)
	c.UploadToken = NewUploadTokenClient(c.config)
	c.User = NewUserClient(c.config)
	c.Warehouse = NewWarehouseClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		BuyerNeed:           NewBuyerNeedClient(cfg),
		Company:             NewCompanyClient(cfg),
		ContextualMemory:    NewContextualMemoryClient(cfg),
		Conversation:        NewConversationClient(cfg),
		DLAToken:            NewDLATokenClient(cfg),
		Engagement:          NewEngagementClient(cfg),
		EngagementAgreement: NewEngagementAgreementClient(cfg),
		EngagementEvent:     NewEngagementEventClient(cfg),
		InboundMessage:      NewInboundMessageClient(cfg),
		InstantBookScore:    NewInstantBookScoreClient(cfg),
		MarketRate:          NewMarketRateClient(cfg),
		Match:               NewMatchClient(cfg),
		Notification:        NewNotificationClient(cfg),
		PaymentRecord:       NewPaymentRecordClient(cfg),
		PropertyKnowledge:   NewPropertyKnowledgeClient(cfg),
		PropertyQuestion:    NewPropertyQuestionClient(cfg),
		SearchSession:       NewSearchSessionClient(cfg),
		SupplierAgreement:   NewSupplierAgreementClient(cfg),
		ToggleHistory:       NewToggleHistoryClient(cfg),
		TruthCore:           NewTruthCoreClient(cfg),
		UploadToken:         NewUploadTokenClient(cfg),
		User:                NewUserClient(cfg),
		Warehouse:           NewWarehouseClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		BuyerNeed:           NewBuyerNeedClient(cfg),
		Company:             NewCompanyClient(cfg),
		ContextualMemory:    NewContextualMemoryClient(cfg),
		Conversation:        NewConversationClient(cfg),
		DLAToken:            NewDLATokenClient(cfg),
		Engagement:          NewEngagementClient(cfg),
		EngagementAgreement: NewEngagementAgreementClient(cfg),
		EngagementEvent:     NewEngagementEventClient(cfg),
		InboundMessage:      NewInboundMessageClient(cfg),
		InstantBookScore:    NewInstantBookScoreClient(cfg),
		MarketRate:          NewMarketRateClient(cfg),
		Match:               NewMatchClient(cfg),
		Notification:        NewNotificationClient(cfg),
		PaymentRecord:       NewPaymentRecordClient(cfg),
		PropertyKnowledge:   NewPropertyKnowledgeClient(cfg),
		PropertyQuestion:    NewPropertyQuestionClient(cfg),
		SearchSession:       NewSearchSessionClient(cfg),
		SupplierAgreement:   NewSupplierAgreementClient(cfg),
		ToggleHistory:       NewToggleHistoryClient(cfg),
		TruthCore:           NewTruthCoreClient(cfg),
		UploadToken:         NewUploadTokenClient(cfg),
		User:                NewUserClient(cfg),
		Warehouse:           NewWarehouseClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BuyerNeed.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.BuyerNeed, c.Company, c.ContextualMemory, c.Conversation, c.DLAToken,
		c.Engagement, c.EngagementAgreement, c.EngagementEvent, c.InboundMessage,
		c.InstantBookScore, c.MarketRate, c.Match, c.Notification, c.PaymentRecord,
		c.PropertyKnowledge, c.PropertyQuestion, c.SearchSession, c.SupplierAgreement,
		c.ToggleHistory, c.TruthCore, c.UploadToken, c.User, c.Warehouse,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.BuyerNeed, c.Company, c.ContextualMemory, c.Conversation, c.DLAToken,
		c.Engagement, c.EngagementAgreement, c.EngagementEvent, c.InboundMessage,
		c.InstantBookScore, c.MarketRate, c.Match, c.Notification, c.PaymentRecord,
		c.PropertyKnowledge, c.PropertyQuestion, c.SearchSession, c.SupplierAgreement,
		c.ToggleHistory, c.TruthCore, c.UploadToken, c.User, c.Warehouse,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BuyerNeedMutation:
		return c.BuyerNeed.mutate(ctx, m)
	case *CompanyMutation:
		return c.Company.mutate(ctx, m)
	case *ContextualMemoryMutation:
		return c.ContextualMemory.mutate(ctx, m)
	case *ConversationMutation:
		return c.Conversation.mutate(ctx, m)
	case *DLATokenMutation:
		return c.DLAToken.mutate(ctx, m)
	case *EngagementMutation:
		return c.Engagement.mutate(ctx, m)
	case *EngagementAgreementMutation:
		return c.EngagementAgreement.mutate(ctx, m)
	case *EngagementEventMutation:
		return c.EngagementEvent.mutate(ctx, m)
	case *InboundMessageMutation:
		return c.InboundMessage.mutate(ctx, m)
	case *InstantBookScoreMutation:
		return c.InstantBookScore.mutate(ctx, m)
	case *MarketRateMutation:
		return c.MarketRate.mutate(ctx, m)
	case *MatchMutation:
		return c.Match.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *PaymentRecordMutation:
		return c.PaymentRecord.mutate(ctx, m)
	case *PropertyKnowledgeMutation:
		return c.PropertyKnowledge.mutate(ctx, m)
	case *PropertyQuestionMutation:
		return c.PropertyQuestion.mutate(ctx, m)
	case *SearchSessionMutation:
		return c.SearchSession.mutate(ctx, m)
	case *SupplierAgreementMutation:
		return c.SupplierAgreement.mutate(ctx, m)
	case *ToggleHistoryMutation:
		return c.ToggleHistory.mutate(ctx, m)
	case *TruthCoreMutation:
		return c.TruthCore.mutate(ctx, m)
	case *UploadTokenMutation:
		return c.UploadToken.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WarehouseMutation:
		return c.Warehouse.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BuyerNeedClient is a client for the BuyerNeed schema.
type BuyerNeedClient struct {
	config
}

// NewBuyerNeedClient returns a client for the BuyerNeed from the given config.
func NewBuyerNeedClient(c config) *BuyerNeedClient {
	return &BuyerNeedClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `buyerneed.Hooks(f(g(h())))`.
func (c *BuyerNeedClient) Use(hooks ...Hook) {
	c.hooks.BuyerNeed = append(c.hooks.BuyerNeed, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `buyerneed.Intercept(f(g(h())))`.
func (c *BuyerNeedClient) Intercept(interceptors ...Interceptor) {
	c.inters.BuyerNeed = append(c.inters.BuyerNeed, interceptors...)
}

// Create returns a builder for creating a BuyerNeed entity.
func (c *BuyerNeedClient) Create() *BuyerNeedCreate {
	mutation := newBuyerNeedMutation(c.config, OpCreate)
	return &BuyerNeedCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BuyerNeed entities.
func (c *BuyerNeedClient) CreateBulk(builders ...*BuyerNeedCreate) *BuyerNeedCreateBulk {
	return &BuyerNeedCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BuyerNeedClient) MapCreateBulk(slice any, setFunc func(*BuyerNeedCreate, int)) *BuyerNeedCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BuyerNeedCreateBulk{err: fmt.Errorf("calling to BuyerNeedClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BuyerNeedCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BuyerNeedCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BuyerNeed.
func (c *BuyerNeedClient) Update() *BuyerNeedUpdate {
	mutation := newBuyerNeedMutation(c.config, OpUpdate)
	return &BuyerNeedUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BuyerNeedClient) UpdateOne(_m *BuyerNeed) *BuyerNeedUpdateOne {
	mutation := newBuyerNeedMutation(c.config, OpUpdateOne, withBuyerNeed(_m))
	return &BuyerNeedUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BuyerNeedClient) UpdateOneID(id string) *BuyerNeedUpdateOne {
	mutation := newBuyerNeedMutation(c.config, OpUpdateOne, withBuyerNeedID(id))
	return &BuyerNeedUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BuyerNeed.
func (c *BuyerNeedClient) Delete() *BuyerNeedDelete {
	mutation := newBuyerNeedMutation(c.config, OpDelete)
	return &BuyerNeedDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BuyerNeedClient) DeleteOne(_m *BuyerNeed) *BuyerNeedDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BuyerNeedClient) DeleteOneID(id string) *BuyerNeedDeleteOne {
	builder := c.Delete().Where(buyerneed.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BuyerNeedDeleteOne{builder}
}

// Query returns a query builder for BuyerNeed.
func (c *BuyerNeedClient) Query() *BuyerNeedQuery {
	return &BuyerNeedQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBuyerNeed},
		inters: c.Interceptors(),
	}
}

// Get returns a BuyerNeed entity by its id.
func (c *BuyerNeedClient) Get(ctx context.Context, id string) (*BuyerNeed, error) {
	return c.Query().Where(buyerneed.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BuyerNeedClient) GetX(ctx context.Context, id string) *BuyerNeed {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBuyer queries the buyer edge of a BuyerNeed.
func (c *BuyerNeedClient) QueryBuyer(_m *BuyerNeed) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(buyerneed.Table, buyerneed.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, buyerneed.BuyerTable, buyerneed.BuyerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMatches queries the matches edge of a BuyerNeed.
func (c *BuyerNeedClient) QueryMatches(_m *BuyerNeed) *MatchQuery {
	query := (&MatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(buyerneed.Table, buyerneed.FieldID, id),
			sqlgraph.To(match.Table, match.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, buyerneed.MatchesTable, buyerneed.MatchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDlaTokens queries the dla_tokens edge of a BuyerNeed.
func (c *BuyerNeedClient) QueryDlaTokens(_m *BuyerNeed) *DLATokenQuery {
	query := (&DLATokenClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(buyerneed.Table, buyerneed.FieldID, id),
			sqlgraph.To(dlatoken.Table, dlatoken.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, buyerneed.DlaTokensTable, buyerneed.DlaTokensColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BuyerNeedClient) Hooks() []Hook {
	return c.hooks.BuyerNeed
}

// Interceptors returns the client interceptors.
func (c *BuyerNeedClient) Interceptors() []Interceptor {
	return c.inters.BuyerNeed
}

func (c *BuyerNeedClient) mutate(ctx context.Context, m *BuyerNeedMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BuyerNeedCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BuyerNeedUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BuyerNeedUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BuyerNeedDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BuyerNeed mutation op: %q", m.Op())
	}
}

// CompanyClient is a client for the Company schema.
type CompanyClient struct {
	config
}

// NewCompanyClient returns a client for the Company from the given config.
func NewCompanyClient(c config) *CompanyClient {
	return &CompanyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `company.Hooks(f(g(h())))`.
func (c *CompanyClient) Use(hooks ...Hook) {
	c.hooks.Company = append(c.hooks.Company, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `company.Intercept(f(g(h())))`.
func (c *CompanyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Company = append(c.inters.Company, interceptors...)
}

// Create returns a builder for creating a Company entity.
func (c *CompanyClient) Create() *CompanyCreate {
	mutation := newCompanyMutation(c.config, OpCreate)
	return &CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Company entities.
func (c *CompanyClient) CreateBulk(builders ...*CompanyCreate) *CompanyCreateBulk {
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyClient) MapCreateBulk(slice any, setFunc func(*CompanyCreate, int)) *CompanyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyCreateBulk{err: fmt.Errorf("calling to CompanyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Company.
func (c *CompanyClient) Update() *CompanyUpdate {
	mutation := newCompanyMutation(c.config, OpUpdate)
	return &CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyClient) UpdateOne(_m *Company) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompany(_m))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyClient) UpdateOneID(id string) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompanyID(id))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Company.
func (c *CompanyClient) Delete() *CompanyDelete {
	mutation := newCompanyMutation(c.config, OpDelete)
	return &CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyClient) DeleteOne(_m *Company) *CompanyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyClient) DeleteOneID(id string) *CompanyDeleteOne {
	builder := c.Delete().Where(company.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyDeleteOne{builder}
}

// Query returns a query builder for Company.
func (c *CompanyClient) Query() *CompanyQuery {
	return &CompanyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompany},
		inters: c.Interceptors(),
	}
}

// Get returns a Company entity by its id.
func (c *CompanyClient) Get(ctx context.Context, id string) (*Company, error) {
	return c.Query().Where(company.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyClient) GetX(ctx context.Context, id string) *Company {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUsers queries the users edge of a Company.
func (c *CompanyClient) QueryUsers(_m *Company) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.UsersTable, company.UsersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWarehouses queries the warehouses edge of a Company.
func (c *CompanyClient) QueryWarehouses(_m *Company) *WarehouseQuery {
	query := (&WarehouseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(warehouse.Table, warehouse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.WarehousesTable, company.WarehousesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompanyClient) Hooks() []Hook {
	return c.hooks.Company
}

// Interceptors returns the client interceptors.
func (c *CompanyClient) Interceptors() []Interceptor {
	return c.inters.Company
}

func (c *CompanyClient) mutate(ctx context.Context, m *CompanyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Company mutation op: %q", m.Op())
	}
}

// ContextualMemoryClient is a client for the ContextualMemory schema.
type ContextualMemoryClient struct {
	config
}

// NewContextualMemoryClient returns a client for the ContextualMemory from the given config.
func NewContextualMemoryClient(c config) *ContextualMemoryClient {
	return &ContextualMemoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contextualmemory.Hooks(f(g(h())))`.
func (c *ContextualMemoryClient) Use(hooks ...Hook) {
	c.hooks.ContextualMemory = append(c.hooks.ContextualMemory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contextualmemory.Intercept(f(g(h())))`.
func (c *ContextualMemoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContextualMemory = append(c.inters.ContextualMemory, interceptors...)
}

// Create returns a builder for creating a ContextualMemory entity.
func (c *ContextualMemoryClient) Create() *ContextualMemoryCreate {
	mutation := newContextualMemoryMutation(c.config, OpCreate)
	return &ContextualMemoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContextualMemory entities.
func (c *ContextualMemoryClient) CreateBulk(builders ...*ContextualMemoryCreate) *ContextualMemoryCreateBulk {
	return &ContextualMemoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContextualMemoryClient) MapCreateBulk(slice any, setFunc func(*ContextualMemoryCreate, int)) *ContextualMemoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContextualMemoryCreateBulk{err: fmt.Errorf("calling to ContextualMemoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContextualMemoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContextualMemoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContextualMemory.
func (c *ContextualMemoryClient) Update() *ContextualMemoryUpdate {
	mutation := newContextualMemoryMutation(c.config, OpUpdate)
	return &ContextualMemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContextualMemoryClient) UpdateOne(_m *ContextualMemory) *ContextualMemoryUpdateOne {
	mutation := newContextualMemoryMutation(c.config, OpUpdateOne, withContextualMemory(_m))
	return &ContextualMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContextualMemoryClient) UpdateOneID(id string) *ContextualMemoryUpdateOne {
	mutation := newContextualMemoryMutation(c.config, OpUpdateOne, withContextualMemoryID(id))
	return &ContextualMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContextualMemory.
func (c *ContextualMemoryClient) Delete() *ContextualMemoryDelete {
	mutation := newContextualMemoryMutation(c.config, OpDelete)
	return &ContextualMemoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContextualMemoryClient) DeleteOne(_m *ContextualMemory) *ContextualMemoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContextualMemoryClient) DeleteOneID(id string) *ContextualMemoryDeleteOne {
	builder := c.Delete().Where(contextualmemory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContextualMemoryDeleteOne{builder}
}

// Query returns a query builder for ContextualMemory.
func (c *ContextualMemoryClient) Query() *ContextualMemoryQuery {
	return &ContextualMemoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContextualMemory},
		inters: c.Interceptors(),
	}
}

// Get returns a ContextualMemory entity by its id.
func (c *ContextualMemoryClient) Get(ctx context.Context, id string) (*ContextualMemory, error) {
	return c.Query().Where(contextualmemory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContextualMemoryClient) GetX(ctx context.Context, id string) *ContextualMemory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWarehouse queries the warehouse edge of a ContextualMemory.
func (c *ContextualMemoryClient) QueryWarehouse(_m *ContextualMemory) *WarehouseQuery {
	query := (&WarehouseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contextualmemory.Table, contextualmemory.FieldID, id),
			sqlgraph.To(warehouse.Table, warehouse.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contextualmemory.WarehouseTable, contextualmemory.WarehouseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContextualMemoryClient) Hooks() []Hook {
	return c.hooks.ContextualMemory
}

// Interceptors returns the client interceptors.
func (c *ContextualMemoryClient) Interceptors() []Interceptor {
	return c.inters.ContextualMemory
}

func (c *ContextualMemoryClient) mutate(ctx context.Context, m *ContextualMemoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContextualMemoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContextualMemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContextualMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContextualMemoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContextualMemory mutation op: %q", m.Op())
	}
}

// ConversationClient is a client for the Conversation schema.
type ConversationClient struct {
	config
}

// NewConversationClient returns a client for the Conversation from the given config.
func NewConversationClient(c config) *ConversationClient {
	return &ConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversation.Hooks(f(g(h())))`.
func (c *ConversationClient) Use(hooks ...Hook) {
	c.hooks.Conversation = append(c.hooks.Conversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversation.Intercept(f(g(h())))`.
func (c *ConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversation = append(c.inters.Conversation, interceptors...)
}

// Create returns a builder for creating a Conversation entity.
func (c *ConversationClient) Create() *ConversationCreate {
	mutation := newConversationMutation(c.config, OpCreate)
	return &ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversation entities.
func (c *ConversationClient) CreateBulk(builders ...*ConversationCreate) *ConversationCreateBulk {
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationClient) MapCreateBulk(slice any, setFunc func(*ConversationCreate, int)) *ConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationCreateBulk{err: fmt.Errorf("calling to ConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversation.
func (c *ConversationClient) Update() *ConversationUpdate {
	mutation := newConversationMutation(c.config, OpUpdate)
	return &ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationClient) UpdateOne(_m *Conversation) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversation(_m))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationClient) UpdateOneID(id string) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversationID(id))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversation.
func (c *ConversationClient) Delete() *ConversationDelete {
	mutation := newConversationMutation(c.config, OpDelete)
	return &ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationClient) DeleteOne(_m *Conversation) *ConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationClient) DeleteOneID(id string) *ConversationDeleteOne {
	builder := c.Delete().Where(conversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationDeleteOne{builder}
}

// Query returns a query builder for Conversation.
func (c *ConversationClient) Query() *ConversationQuery {
	return &ConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversation entity by its id.
func (c *ConversationClient) Get(ctx context.Context, id string) (*Conversation, error) {
	return c.Query().Where(conversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationClient) GetX(ctx context.Context, id string) *Conversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessages queries the messages edge of a Conversation.
func (c *ConversationClient) QueryMessages(_m *Conversation) *InboundMessageQuery {
	query := (&InboundMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(inboundmessage.Table, inboundmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversation.MessagesTable, conversation.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationClient) Hooks() []Hook {
	return c.hooks.Conversation
}

// Interceptors returns the client interceptors.
func (c *ConversationClient) Interceptors() []Interceptor {
	return c.inters.Conversation
}

func (c *ConversationClient) mutate(ctx context.Context, m *ConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Conversation mutation op: %q", m.Op())
	}
}

// DLATokenClient is a client for the DLAToken schema.
type DLATokenClient struct {
	config
}

// NewDLATokenClient returns a client for the DLAToken from the given config.
func NewDLATokenClient(c config) *DLATokenClient {
	return &DLATokenClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dlatoken.Hooks(f(g(h())))`.
func (c *DLATokenClient) Use(hooks ...Hook) {
	c.hooks.DLAToken = append(c.hooks.DLAToken, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dlatoken.Intercept(f(g(h())))`.
func (c *DLATokenClient) Intercept(interceptors ...Interceptor) {
	c.inters.DLAToken = append(c.inters.DLAToken, interceptors...)
}

// Create returns a builder for creating a DLAToken entity.
func (c *DLATokenClient) Create() *DLATokenCreate {
	mutation := newDLATokenMutation(c.config, OpCreate)
	return &DLATokenCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DLAToken entities.
func (c *DLATokenClient) CreateBulk(builders ...*DLATokenCreate) *DLATokenCreateBulk {
	return &DLATokenCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DLATokenClient) MapCreateBulk(slice any, setFunc func(*DLATokenCreate, int)) *DLATokenCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DLATokenCreateBulk{err: fmt.Errorf("calling to DLATokenClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DLATokenCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DLATokenCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DLAToken.
func (c *DLATokenClient) Update() *DLATokenUpdate {
	mutation := newDLATokenMutation(c.config, OpUpdate)
	return &DLATokenUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DLATokenClient) UpdateOne(_m *DLAToken) *DLATokenUpdateOne {
	mutation := newDLATokenMutation(c.config, OpUpdateOne, withDLAToken(_m))
	return &DLATokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DLATokenClient) UpdateOneID(id string) *DLATokenUpdateOne {
	mutation := newDLATokenMutation(c.config, OpUpdateOne, withDLATokenID(id))
	return &DLATokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DLAToken.
func (c *DLATokenClient) Delete() *DLATokenDelete {
	mutation := newDLATokenMutation(c.config, OpDelete)
	return &DLATokenDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DLATokenClient) DeleteOne(_m *DLAToken) *DLATokenDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DLATokenClient) DeleteOneID(id string) *DLATokenDeleteOne {
	builder := c.Delete().Where(dlatoken.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DLATokenDeleteOne{builder}
}

// Query returns a query builder for DLAToken.
func (c *DLATokenClient) Query() *DLATokenQuery {
	return &DLATokenQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDLAToken},
		inters: c.Interceptors(),
	}
}

// Get returns a DLAToken entity by its id.
func (c *DLATokenClient) Get(ctx context.Context, id string) (*DLAToken, error) {
	return c.Query().Where(dlatoken.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DLATokenClient) GetX(ctx context.Context, id string) *DLAToken {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWarehouse queries the warehouse edge of a DLAToken.
func (c *DLATokenClient) QueryWarehouse(_m *DLAToken) *WarehouseQuery {
	query := (&WarehouseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dlatoken.Table, dlatoken.FieldID, id),
			sqlgraph.To(warehouse.Table, warehouse.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dlatoken.WarehouseTable, dlatoken.WarehouseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBuyerNeed queries the buyer_need edge of a DLAToken.
func (c *DLATokenClient) QueryBuyerNeed(_m *DLAToken) *BuyerNeedQuery {
	query := (&BuyerNeedClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dlatoken.Table, dlatoken.FieldID, id),
			sqlgraph.To(buyerneed.Table, buyerneed.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dlatoken.BuyerNeedTable, dlatoken.BuyerNeedColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DLATokenClient) Hooks() []Hook {
	return c.hooks.DLAToken
}

// Interceptors returns the client interceptors.
func (c *DLATokenClient) Interceptors() []Interceptor {
	return c.inters.DLAToken
}

func (c *DLATokenClient) mutate(ctx context.Context, m *DLATokenMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DLATokenCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DLATokenUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DLATokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DLATokenDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DLAToken mutation op: %q", m.Op())
	}
}

// EngagementClient is a client for the Engagement schema.
type EngagementClient struct {
	config
}

// NewEngagementClient returns a client for the Engagement from the given config.
func NewEngagementClient(c config) *EngagementClient {
	return &EngagementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `engagement.Hooks(f(g(h())))`.
func (c *EngagementClient) Use(hooks ...Hook) {
	c.hooks.Engagement = append(c.hooks.Engagement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `engagement.Intercept(f(g(h())))`.
func (c *EngagementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Engagement = append(c.inters.Engagement, interceptors...)
}

// Create returns a builder for creating a Engagement entity.
func (c *EngagementClient) Create() *EngagementCreate {
	mutation := newEngagementMutation(c.config, OpCreate)
	return &EngagementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Engagement entities.
func (c *EngagementClient) CreateBulk(builders ...*EngagementCreate) *EngagementCreateBulk {
	return &EngagementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EngagementClient) MapCreateBulk(slice any, setFunc func(*EngagementCreate, int)) *EngagementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EngagementCreateBulk{err: fmt.Errorf("calling to EngagementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EngagementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EngagementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Engagement.
func (c *EngagementClient) Update() *EngagementUpdate {
	mutation := newEngagementMutation(c.config, OpUpdate)
	return &EngagementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EngagementClient) UpdateOne(_m *Engagement) *EngagementUpdateOne {
	mutation := newEngagementMutation(c.config, OpUpdateOne, withEngagement(_m))
	return &EngagementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EngagementClient) UpdateOneID(id string) *EngagementUpdateOne {
	mutation := newEngagementMutation(c.config, OpUpdateOne, withEngagementID(id))
	return &EngagementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Engagement.
func (c *EngagementClient) Delete() *EngagementDelete {
	mutation := newEngagementMutation(c.config, OpDelete)
	return &EngagementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EngagementClient) DeleteOne(_m *Engagement) *EngagementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EngagementClient) DeleteOneID(id string) *EngagementDeleteOne {
	builder := c.Delete().Where(engagement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EngagementDeleteOne{builder}
}

// Query returns a query builder for Engagement.
func (c *EngagementClient) Query() *EngagementQuery {
	return &EngagementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEngagement},
		inters: c.Interceptors(),
	}
}

// Get returns a Engagement entity by its id.
func (c *EngagementClient) Get(ctx context.Context, id string) (*Engagement, error) {
	return c.Query().Where(engagement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EngagementClient) GetX(ctx context.Context, id string) *Engagement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMatch queries the match edge of a Engagement.
func (c *EngagementClient) QueryMatch(_m *Engagement) *MatchQuery {
	query := (&MatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(engagement.Table, engagement.FieldID, id),
			sqlgraph.To(match.Table, match.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, engagement.MatchTable, engagement.MatchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Engagement.
func (c *EngagementClient) QueryEvents(_m *Engagement) *EngagementEventQuery {
	query := (&EngagementEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(engagement.Table, engagement.FieldID, id),
			sqlgraph.To(engagementevent.Table, engagementevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, engagement.EventsTable, engagement.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgreements queries the agreements edge of a Engagement.
func (c *EngagementClient) QueryAgreements(_m *Engagement) *EngagementAgreementQuery {
	query := (&EngagementAgreementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(engagement.Table, engagement.FieldID, id),
			sqlgraph.To(engagementagreement.Table, engagementagreement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, engagement.AgreementsTable, engagement.AgreementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPayments queries the payments edge of a Engagement.
func (c *EngagementClient) QueryPayments(_m *Engagement) *PaymentRecordQuery {
	query := (&PaymentRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(engagement.Table, engagement.FieldID, id),
			sqlgraph.To(paymentrecord.Table, paymentrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, engagement.PaymentsTable, engagement.PaymentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUploadTokens queries the upload_tokens edge of a Engagement.
func (c *EngagementClient) QueryUploadTokens(_m *Engagement) *UploadTokenQuery {
	query := (&UploadTokenClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(engagement.Table, engagement.FieldID, id),
			sqlgraph.To(uploadtoken.Table, uploadtoken.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, engagement.UploadTokensTable, engagement.UploadTokensColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EngagementClient) Hooks() []Hook {
	return c.hooks.Engagement
}

// Interceptors returns the client interceptors.
func (c *EngagementClient) Interceptors() []Interceptor {
	return c.inters.Engagement
}

func (c *EngagementClient) mutate(ctx context.Context, m *EngagementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EngagementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EngagementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EngagementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EngagementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Engagement mutation op: %q", m.Op())
	}
}

// EngagementAgreementClient is a client for the EngagementAgreement schema.
type EngagementAgreementClient struct {
	config
}

// NewEngagementAgreementClient returns a client for the EngagementAgreement from the given config.
func NewEngagementAgreementClient(c config) *EngagementAgreementClient {
	return &EngagementAgreementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `engagementagreement.Hooks(f(g(h())))`.
func (c *EngagementAgreementClient) Use(hooks ...Hook) {
	c.hooks.EngagementAgreement = append(c.hooks.EngagementAgreement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `engagementagreement.Intercept(f(g(h())))`.
func (c *EngagementAgreementClient) Intercept(interceptors ...Interceptor) {
	c.inters.EngagementAgreement = append(c.inters.EngagementAgreement, interceptors...)
}

// Create returns a builder for creating a EngagementAgreement entity.
func (c *EngagementAgreementClient) Create() *EngagementAgreementCreate {
	mutation := newEngagementAgreementMutation(c.config, OpCreate)
	return &EngagementAgreementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EngagementAgreement entities.
func (c *EngagementAgreementClient) CreateBulk(builders ...*EngagementAgreementCreate) *EngagementAgreementCreateBulk {
	return &EngagementAgreementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EngagementAgreementClient) MapCreateBulk(slice any, setFunc func(*EngagementAgreementCreate, int)) *EngagementAgreementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EngagementAgreementCreateBulk{err: fmt.Errorf("calling to EngagementAgreementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EngagementAgreementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EngagementAgreementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EngagementAgreement.
func (c *EngagementAgreementClient) Update() *EngagementAgreementUpdate {
	mutation := newEngagementAgreementMutation(c.config, OpUpdate)
	return &EngagementAgreementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EngagementAgreementClient) UpdateOne(_m *EngagementAgreement) *EngagementAgreementUpdateOne {
	mutation := newEngagementAgreementMutation(c.config, OpUpdateOne, withEngagementAgreement(_m))
	return &EngagementAgreementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EngagementAgreementClient) UpdateOneID(id string) *EngagementAgreementUpdateOne {
	mutation := newEngagementAgreementMutation(c.config, OpUpdateOne, withEngagementAgreementID(id))
	return &EngagementAgreementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EngagementAgreement.
func (c *EngagementAgreementClient) Delete() *EngagementAgreementDelete {
	mutation := newEngagementAgreementMutation(c.config, OpDelete)
	return &EngagementAgreementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EngagementAgreementClient) DeleteOne(_m *EngagementAgreement) *EngagementAgreementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EngagementAgreementClient) DeleteOneID(id string) *EngagementAgreementDeleteOne {
	builder := c.Delete().Where(engagementagreement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EngagementAgreementDeleteOne{builder}
}

// Query returns a query builder for EngagementAgreement.
func (c *EngagementAgreementClient) Query() *EngagementAgreementQuery {
	return &EngagementAgreementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEngagementAgreement},
		inters: c.Interceptors(),
	}
}

// Get returns a EngagementAgreement entity by its id.
func (c *EngagementAgreementClient) Get(ctx context.Context, id string) (*EngagementAgreement, error) {
	return c.Query().Where(engagementagreement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EngagementAgreementClient) GetX(ctx context.Context, id string) *EngagementAgreement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEngagement queries the engagement edge of a EngagementAgreement.
func (c *EngagementAgreementClient) QueryEngagement(_m *EngagementAgreement) *EngagementQuery {
	query := (&EngagementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(engagementagreement.Table, engagementagreement.FieldID, id),
			sqlgraph.To(engagement.Table, engagement.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, engagementagreement.EngagementTable, engagementagreement.EngagementColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EngagementAgreementClient) Hooks() []Hook {
	return c.hooks.EngagementAgreement
}

// Interceptors returns the client interceptors.
func (c *EngagementAgreementClient) Interceptors() []Interceptor {
	return c.inters.EngagementAgreement
}

func (c *EngagementAgreementClient) mutate(ctx context.Context, m *EngagementAgreementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EngagementAgreementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EngagementAgreementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EngagementAgreementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EngagementAgreementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EngagementAgreement mutation op: %q", m.Op())
	}
}

// EngagementEventClient is a client for the EngagementEvent schema.
type EngagementEventClient struct {
	config
}

// NewEngagementEventClient returns a client for the EngagementEvent from the given config.
func NewEngagementEventClient(c config) *EngagementEventClient {
	return &EngagementEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `engagementevent.Hooks(f(g(h())))`.
func (c *EngagementEventClient) Use(hooks ...Hook) {
	c.hooks.EngagementEvent = append(c.hooks.EngagementEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `engagementevent.Intercept(f(g(h())))`.
func (c *EngagementEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.EngagementEvent = append(c.inters.EngagementEvent, interceptors...)
}

// Create returns a builder for creating a EngagementEvent entity.
func (c *EngagementEventClient) Create() *EngagementEventCreate {
	mutation := newEngagementEventMutation(c.config, OpCreate)
	return &EngagementEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EngagementEvent entities.
func (c *EngagementEventClient) CreateBulk(builders ...*EngagementEventCreate) *EngagementEventCreateBulk {
	return &EngagementEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EngagementEventClient) MapCreateBulk(slice any, setFunc func(*EngagementEventCreate, int)) *EngagementEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EngagementEventCreateBulk{err: fmt.Errorf("calling to EngagementEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EngagementEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EngagementEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EngagementEvent.
func (c *EngagementEventClient) Update() *EngagementEventUpdate {
	mutation := newEngagementEventMutation(c.config, OpUpdate)
	return &EngagementEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EngagementEventClient) UpdateOne(_m *EngagementEvent) *EngagementEventUpdateOne {
	mutation := newEngagementEventMutation(c.config, OpUpdateOne, withEngagementEvent(_m))
	return &EngagementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EngagementEventClient) UpdateOneID(id string) *EngagementEventUpdateOne {
	mutation := newEngagementEventMutation(c.config, OpUpdateOne, withEngagementEventID(id))
	return &EngagementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EngagementEvent.
func (c *EngagementEventClient) Delete() *EngagementEventDelete {
	mutation := newEngagementEventMutation(c.config, OpDelete)
	return &EngagementEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EngagementEventClient) DeleteOne(_m *EngagementEvent) *EngagementEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EngagementEventClient) DeleteOneID(id string) *EngagementEventDeleteOne {
	builder := c.Delete().Where(engagementevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EngagementEventDeleteOne{builder}
}

// Query returns a query builder for EngagementEvent.
func (c *EngagementEventClient) Query() *EngagementEventQuery {
	return &EngagementEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEngagementEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a EngagementEvent entity by its id.
func (c *EngagementEventClient) Get(ctx context.Context, id string) (*EngagementEvent, error) {
	return c.Query().Where(engagementevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EngagementEventClient) GetX(ctx context.Context, id string) *EngagementEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEngagement queries the engagement edge of a EngagementEvent.
func (c *EngagementEventClient) QueryEngagement(_m *EngagementEvent) *EngagementQuery {
	query := (&EngagementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(engagementevent.Table, engagementevent.FieldID, id),
			sqlgraph.To(engagement.Table, engagement.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, engagementevent.EngagementTable, engagementevent.EngagementColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EngagementEventClient) Hooks() []Hook {
	return c.hooks.EngagementEvent
}

// Interceptors returns the client interceptors.
func (c *EngagementEventClient) Interceptors() []Interceptor {
	return c.inters.EngagementEvent
}

func (c *EngagementEventClient) mutate(ctx context.Context, m *EngagementEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EngagementEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EngagementEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EngagementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EngagementEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EngagementEvent mutation op: %q", m.Op())
	}
}

// InboundMessageClient is a client for the InboundMessage schema.
type InboundMessageClient struct {
	config
}

// NewInboundMessageClient returns a client for the InboundMessage from the given config.
func NewInboundMessageClient(c config) *InboundMessageClient {
	return &InboundMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inboundmessage.Hooks(f(g(h())))`.
func (c *InboundMessageClient) Use(hooks ...Hook) {
	c.hooks.InboundMessage = append(c.hooks.InboundMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inboundmessage.Intercept(f(g(h())))`.
func (c *InboundMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.InboundMessage = append(c.inters.InboundMessage, interceptors...)
}

// Create returns a builder for creating a InboundMessage entity.
func (c *InboundMessageClient) Create() *InboundMessageCreate {
	mutation := newInboundMessageMutation(c.config, OpCreate)
	return &InboundMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InboundMessage entities.
func (c *InboundMessageClient) CreateBulk(builders ...*InboundMessageCreate) *InboundMessageCreateBulk {
	return &InboundMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InboundMessageClient) MapCreateBulk(slice any, setFunc func(*InboundMessageCreate, int)) *InboundMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InboundMessageCreateBulk{err: fmt.Errorf("calling to InboundMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InboundMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InboundMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InboundMessage.
func (c *InboundMessageClient) Update() *InboundMessageUpdate {
	mutation := newInboundMessageMutation(c.config, OpUpdate)
	return &InboundMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InboundMessageClient) UpdateOne(_m *InboundMessage) *InboundMessageUpdateOne {
	mutation := newInboundMessageMutation(c.config, OpUpdateOne, withInboundMessage(_m))
	return &InboundMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InboundMessageClient) UpdateOneID(id string) *InboundMessageUpdateOne {
	mutation := newInboundMessageMutation(c.config, OpUpdateOne, withInboundMessageID(id))
	return &InboundMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InboundMessage.
func (c *InboundMessageClient) Delete() *InboundMessageDelete {
	mutation := newInboundMessageMutation(c.config, OpDelete)
	return &InboundMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InboundMessageClient) DeleteOne(_m *InboundMessage) *InboundMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InboundMessageClient) DeleteOneID(id string) *InboundMessageDeleteOne {
	builder := c.Delete().Where(inboundmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InboundMessageDeleteOne{builder}
}

// Query returns a query builder for InboundMessage.
func (c *InboundMessageClient) Query() *InboundMessageQuery {
	return &InboundMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInboundMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a InboundMessage entity by its id.
func (c *InboundMessageClient) Get(ctx context.Context, id string) (*InboundMessage, error) {
	return c.Query().Where(inboundmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InboundMessageClient) GetX(ctx context.Context, id string) *InboundMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a InboundMessage.
func (c *InboundMessageClient) QueryConversation(_m *InboundMessage) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(inboundmessage.Table, inboundmessage.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inboundmessage.ConversationTable, inboundmessage.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InboundMessageClient) Hooks() []Hook {
	return c.hooks.InboundMessage
}

// Interceptors returns the client interceptors.
func (c *InboundMessageClient) Interceptors() []Interceptor {
	return c.inters.InboundMessage
}

func (c *InboundMessageClient) mutate(ctx context.Context, m *InboundMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InboundMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InboundMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InboundMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InboundMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InboundMessage mutation op: %q", m.Op())
	}
}

// InstantBookScoreClient is a client for the InstantBookScore schema.
type InstantBookScoreClient struct {
	config
}

// NewInstantBookScoreClient returns a client for the InstantBookScore from the given config.
func NewInstantBookScoreClient(c config) *InstantBookScoreClient {
	return &InstantBookScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `instantbookscore.Hooks(f(g(h())))`.
func (c *InstantBookScoreClient) Use(hooks ...Hook) {
	c.hooks.InstantBookScore = append(c.hooks.InstantBookScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `instantbookscore.Intercept(f(g(h())))`.
func (c *InstantBookScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.InstantBookScore = append(c.inters.InstantBookScore, interceptors...)
}

// Create returns a builder for creating a InstantBookScore entity.
func (c *InstantBookScoreClient) Create() *InstantBookScoreCreate {
	mutation := newInstantBookScoreMutation(c.config, OpCreate)
	return &InstantBookScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InstantBookScore entities.
func (c *InstantBookScoreClient) CreateBulk(builders ...*InstantBookScoreCreate) *InstantBookScoreCreateBulk {
	return &InstantBookScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InstantBookScoreClient) MapCreateBulk(slice any, setFunc func(*InstantBookScoreCreate, int)) *InstantBookScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InstantBookScoreCreateBulk{err: fmt.Errorf("calling to InstantBookScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InstantBookScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InstantBookScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InstantBookScore.
func (c *InstantBookScoreClient) Update() *InstantBookScoreUpdate {
	mutation := newInstantBookScoreMutation(c.config, OpUpdate)
	return &InstantBookScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InstantBookScoreClient) UpdateOne(_m *InstantBookScore) *InstantBookScoreUpdateOne {
	mutation := newInstantBookScoreMutation(c.config, OpUpdateOne, withInstantBookScore(_m))
	return &InstantBookScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InstantBookScoreClient) UpdateOneID(id string) *InstantBookScoreUpdateOne {
	mutation := newInstantBookScoreMutation(c.config, OpUpdateOne, withInstantBookScoreID(id))
	return &InstantBookScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InstantBookScore.
func (c *InstantBookScoreClient) Delete() *InstantBookScoreDelete {
	mutation := newInstantBookScoreMutation(c.config, OpDelete)
	return &InstantBookScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InstantBookScoreClient) DeleteOne(_m *InstantBookScore) *InstantBookScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InstantBookScoreClient) DeleteOneID(id string) *InstantBookScoreDeleteOne {
	builder := c.Delete().Where(instantbookscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InstantBookScoreDeleteOne{builder}
}

// Query returns a query builder for InstantBookScore.
func (c *InstantBookScoreClient) Query() *InstantBookScoreQuery {
	return &InstantBookScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInstantBookScore},
		inters: c.Interceptors(),
	}
}

// Get returns a InstantBookScore entity by its id.
func (c *InstantBookScoreClient) Get(ctx context.Context, id string) (*InstantBookScore, error) {
	return c.Query().Where(instantbookscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InstantBookScoreClient) GetX(ctx context.Context, id string) *InstantBookScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMatch queries the match edge of a InstantBookScore.
func (c *InstantBookScoreClient) QueryMatch(_m *InstantBookScore) *MatchQuery {
	query := (&MatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(instantbookscore.Table, instantbookscore.FieldID, id),
			sqlgraph.To(match.Table, match.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, instantbookscore.MatchTable, instantbookscore.MatchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InstantBookScoreClient) Hooks() []Hook {
	return c.hooks.InstantBookScore
}

// Interceptors returns the client interceptors.
func (c *InstantBookScoreClient) Interceptors() []Interceptor {
	return c.inters.InstantBookScore
}

func (c *InstantBookScoreClient) mutate(ctx context.Context, m *InstantBookScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InstantBookScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InstantBookScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InstantBookScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InstantBookScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InstantBookScore mutation op: %q", m.Op())
	}
}

// MarketRateClient is a client for the MarketRate schema.
type MarketRateClient struct {
	config
}

// NewMarketRateClient returns a client for the MarketRate from the given config.
func NewMarketRateClient(c config) *MarketRateClient {
	return &MarketRateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `marketrate.Hooks(f(g(h())))`.
func (c *MarketRateClient) Use(hooks ...Hook) {
	c.hooks.MarketRate = append(c.hooks.MarketRate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `marketrate.Intercept(f(g(h())))`.
func (c *MarketRateClient) Intercept(interceptors ...Interceptor) {
	c.inters.MarketRate = append(c.inters.MarketRate, interceptors...)
}

// Create returns a builder for creating a MarketRate entity.
func (c *MarketRateClient) Create() *MarketRateCreate {
	mutation := newMarketRateMutation(c.config, OpCreate)
	return &MarketRateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MarketRate entities.
func (c *MarketRateClient) CreateBulk(builders ...*MarketRateCreate) *MarketRateCreateBulk {
	return &MarketRateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MarketRateClient) MapCreateBulk(slice any, setFunc func(*MarketRateCreate, int)) *MarketRateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MarketRateCreateBulk{err: fmt.Errorf("calling to MarketRateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MarketRateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MarketRateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MarketRate.
func (c *MarketRateClient) Update() *MarketRateUpdate {
	mutation := newMarketRateMutation(c.config, OpUpdate)
	return &MarketRateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MarketRateClient) UpdateOne(_m *MarketRate) *MarketRateUpdateOne {
	mutation := newMarketRateMutation(c.config, OpUpdateOne, withMarketRate(_m))
	return &MarketRateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MarketRateClient) UpdateOneID(id string) *MarketRateUpdateOne {
	mutation := newMarketRateMutation(c.config, OpUpdateOne, withMarketRateID(id))
	return &MarketRateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MarketRate.
func (c *MarketRateClient) Delete() *MarketRateDelete {
	mutation := newMarketRateMutation(c.config, OpDelete)
	return &MarketRateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MarketRateClient) DeleteOne(_m *MarketRate) *MarketRateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MarketRateClient) DeleteOneID(id string) *MarketRateDeleteOne {
	builder := c.Delete().Where(marketrate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MarketRateDeleteOne{builder}
}

// Query returns a query builder for MarketRate.
func (c *MarketRateClient) Query() *MarketRateQuery {
	return &MarketRateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMarketRate},
		inters: c.Interceptors(),
	}
}

// Get returns a MarketRate entity by its id.
func (c *MarketRateClient) Get(ctx context.Context, id string) (*MarketRate, error) {
	return c.Query().Where(marketrate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MarketRateClient) GetX(ctx context.Context, id string) *MarketRate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MarketRateClient) Hooks() []Hook {
	return c.hooks.MarketRate
}

// Interceptors returns the client interceptors.
func (c *MarketRateClient) Interceptors() []Interceptor {
	return c.inters.MarketRate
}

func (c *MarketRateClient) mutate(ctx context.Context, m *MarketRateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MarketRateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MarketRateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MarketRateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MarketRateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MarketRate mutation op: %q", m.Op())
	}
}

// MatchClient is a client for the Match schema.
type MatchClient struct {
	config
}

// NewMatchClient returns a client for the Match from the given config.
func NewMatchClient(c config) *MatchClient {
	return &MatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `match.Hooks(f(g(h())))`.
func (c *MatchClient) Use(hooks ...Hook) {
	c.hooks.Match = append(c.hooks.Match, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `match.Intercept(f(g(h())))`.
func (c *MatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.Match = append(c.inters.Match, interceptors...)
}

// Create returns a builder for creating a Match entity.
func (c *MatchClient) Create() *MatchCreate {
	mutation := newMatchMutation(c.config, OpCreate)
	return &MatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Match entities.
func (c *MatchClient) CreateBulk(builders ...*MatchCreate) *MatchCreateBulk {
	return &MatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MatchClient) MapCreateBulk(slice any, setFunc func(*MatchCreate, int)) *MatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MatchCreateBulk{err: fmt.Errorf("calling to MatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Match.
func (c *MatchClient) Update() *MatchUpdate {
	mutation := newMatchMutation(c.config, OpUpdate)
	return &MatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MatchClient) UpdateOne(_m *Match) *MatchUpdateOne {
	mutation := newMatchMutation(c.config, OpUpdateOne, withMatch(_m))
	return &MatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MatchClient) UpdateOneID(id string) *MatchUpdateOne {
	mutation := newMatchMutation(c.config, OpUpdateOne, withMatchID(id))
	return &MatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Match.
func (c *MatchClient) Delete() *MatchDelete {
	mutation := newMatchMutation(c.config, OpDelete)
	return &MatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MatchClient) DeleteOne(_m *Match) *MatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MatchClient) DeleteOneID(id string) *MatchDeleteOne {
	builder := c.Delete().Where(match.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MatchDeleteOne{builder}
}

// Query returns a query builder for Match.
func (c *MatchClient) Query() *MatchQuery {
	return &MatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMatch},
		inters: c.Interceptors(),
	}
}

// Get returns a Match entity by its id.
func (c *MatchClient) Get(ctx context.Context, id string) (*Match, error) {
	return c.Query().Where(match.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MatchClient) GetX(ctx context.Context, id string) *Match {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBuyerNeed queries the buyer_need edge of a Match.
func (c *MatchClient) QueryBuyerNeed(_m *Match) *BuyerNeedQuery {
	query := (&BuyerNeedClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(match.Table, match.FieldID, id),
			sqlgraph.To(buyerneed.Table, buyerneed.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, match.BuyerNeedTable, match.BuyerNeedColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWarehouse queries the warehouse edge of a Match.
func (c *MatchClient) QueryWarehouse(_m *Match) *WarehouseQuery {
	query := (&WarehouseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(match.Table, match.FieldID, id),
			sqlgraph.To(warehouse.Table, warehouse.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, match.WarehouseTable, match.WarehouseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInstantBookScore queries the instant_book_score edge of a Match.
func (c *MatchClient) QueryInstantBookScore(_m *Match) *InstantBookScoreQuery {
	query := (&InstantBookScoreClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(match.Table, match.FieldID, id),
			sqlgraph.To(instantbookscore.Table, instantbookscore.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, match.InstantBookScoreTable, match.InstantBookScoreColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEngagement queries the engagement edge of a Match.
func (c *MatchClient) QueryEngagement(_m *Match) *EngagementQuery {
	query := (&EngagementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(match.Table, match.FieldID, id),
			sqlgraph.To(engagement.Table, engagement.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, match.EngagementTable, match.EngagementColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MatchClient) Hooks() []Hook {
	return c.hooks.Match
}

// Interceptors returns the client interceptors.
func (c *MatchClient) Interceptors() []Interceptor {
	return c.inters.Match
}

func (c *MatchClient) mutate(ctx context.Context, m *MatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Match mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id string) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id string) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id string) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id string) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Notification mutation op: %q", m.Op())
	}
}

// PaymentRecordClient is a client for the PaymentRecord schema.
type PaymentRecordClient struct {
	config
}

// NewPaymentRecordClient returns a client for the PaymentRecord from the given config.
func NewPaymentRecordClient(c config) *PaymentRecordClient {
	return &PaymentRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paymentrecord.Hooks(f(g(h())))`.
func (c *PaymentRecordClient) Use(hooks ...Hook) {
	c.hooks.PaymentRecord = append(c.hooks.PaymentRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paymentrecord.Intercept(f(g(h())))`.
func (c *PaymentRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.PaymentRecord = append(c.inters.PaymentRecord, interceptors...)
}

// Create returns a builder for creating a PaymentRecord entity.
func (c *PaymentRecordClient) Create() *PaymentRecordCreate {
	mutation := newPaymentRecordMutation(c.config, OpCreate)
	return &PaymentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PaymentRecord entities.
func (c *PaymentRecordClient) CreateBulk(builders ...*PaymentRecordCreate) *PaymentRecordCreateBulk {
	return &PaymentRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaymentRecordClient) MapCreateBulk(slice any, setFunc func(*PaymentRecordCreate, int)) *PaymentRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaymentRecordCreateBulk{err: fmt.Errorf("calling to PaymentRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaymentRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaymentRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PaymentRecord.
func (c *PaymentRecordClient) Update() *PaymentRecordUpdate {
	mutation := newPaymentRecordMutation(c.config, OpUpdate)
	return &PaymentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaymentRecordClient) UpdateOne(_m *PaymentRecord) *PaymentRecordUpdateOne {
	mutation := newPaymentRecordMutation(c.config, OpUpdateOne, withPaymentRecord(_m))
	return &PaymentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaymentRecordClient) UpdateOneID(id string) *PaymentRecordUpdateOne {
	mutation := newPaymentRecordMutation(c.config, OpUpdateOne, withPaymentRecordID(id))
	return &PaymentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PaymentRecord.
func (c *PaymentRecordClient) Delete() *PaymentRecordDelete {
	mutation := newPaymentRecordMutation(c.config, OpDelete)
	return &PaymentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaymentRecordClient) DeleteOne(_m *PaymentRecord) *PaymentRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaymentRecordClient) DeleteOneID(id string) *PaymentRecordDeleteOne {
	builder := c.Delete().Where(paymentrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaymentRecordDeleteOne{builder}
}

// Query returns a query builder for PaymentRecord.
func (c *PaymentRecordClient) Query() *PaymentRecordQuery {
	return &PaymentRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaymentRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a PaymentRecord entity by its id.
func (c *PaymentRecordClient) Get(ctx context.Context, id string) (*PaymentRecord, error) {
	return c.Query().Where(paymentrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaymentRecordClient) GetX(ctx context.Context, id string) *PaymentRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEngagement queries the engagement edge of a PaymentRecord.
func (c *PaymentRecordClient) QueryEngagement(_m *PaymentRecord) *EngagementQuery {
	query := (&EngagementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paymentrecord.Table, paymentrecord.FieldID, id),
			sqlgraph.To(engagement.Table, engagement.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, paymentrecord.EngagementTable, paymentrecord.EngagementColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PaymentRecordClient) Hooks() []Hook {
	return c.hooks.PaymentRecord
}

// Interceptors returns the client interceptors.
func (c *PaymentRecordClient) Interceptors() []Interceptor {
	return c.inters.PaymentRecord
}

func (c *PaymentRecordClient) mutate(ctx context.Context, m *PaymentRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaymentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaymentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaymentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaymentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PaymentRecord mutation op: %q", m.Op())
	}
}

// PropertyKnowledgeClient is a client for the PropertyKnowledge schema.
type PropertyKnowledgeClient struct {
	config
}

// NewPropertyKnowledgeClient returns a client for the PropertyKnowledge from the given config.
func NewPropertyKnowledgeClient(c config) *PropertyKnowledgeClient {
	return &PropertyKnowledgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `propertyknowledge.Hooks(f(g(h())))`.
func (c *PropertyKnowledgeClient) Use(hooks ...Hook) {
	c.hooks.PropertyKnowledge = append(c.hooks.PropertyKnowledge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `propertyknowledge.Intercept(f(g(h())))`.
func (c *PropertyKnowledgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.PropertyKnowledge = append(c.inters.PropertyKnowledge, interceptors...)
}

// Create returns a builder for creating a PropertyKnowledge entity.
func (c *PropertyKnowledgeClient) Create() *PropertyKnowledgeCreate {
	mutation := newPropertyKnowledgeMutation(c.config, OpCreate)
	return &PropertyKnowledgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PropertyKnowledge entities.
func (c *PropertyKnowledgeClient) CreateBulk(builders ...*PropertyKnowledgeCreate) *PropertyKnowledgeCreateBulk {
	return &PropertyKnowledgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PropertyKnowledgeClient) MapCreateBulk(slice any, setFunc func(*PropertyKnowledgeCreate, int)) *PropertyKnowledgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PropertyKnowledgeCreateBulk{err: fmt.Errorf("calling to PropertyKnowledgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PropertyKnowledgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PropertyKnowledgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PropertyKnowledge.
func (c *PropertyKnowledgeClient) Update() *PropertyKnowledgeUpdate {
	mutation := newPropertyKnowledgeMutation(c.config, OpUpdate)
	return &PropertyKnowledgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PropertyKnowledgeClient) UpdateOne(_m *PropertyKnowledge) *PropertyKnowledgeUpdateOne {
	mutation := newPropertyKnowledgeMutation(c.config, OpUpdateOne, withPropertyKnowledge(_m))
	return &PropertyKnowledgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PropertyKnowledgeClient) UpdateOneID(id string) *PropertyKnowledgeUpdateOne {
	mutation := newPropertyKnowledgeMutation(c.config, OpUpdateOne, withPropertyKnowledgeID(id))
	return &PropertyKnowledgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PropertyKnowledge.
func (c *PropertyKnowledgeClient) Delete() *PropertyKnowledgeDelete {
	mutation := newPropertyKnowledgeMutation(c.config, OpDelete)
	return &PropertyKnowledgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PropertyKnowledgeClient) DeleteOne(_m *PropertyKnowledge) *PropertyKnowledgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PropertyKnowledgeClient) DeleteOneID(id string) *PropertyKnowledgeDeleteOne {
	builder := c.Delete().Where(propertyknowledge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PropertyKnowledgeDeleteOne{builder}
}

// Query returns a query builder for PropertyKnowledge.
func (c *PropertyKnowledgeClient) Query() *PropertyKnowledgeQuery {
	return &PropertyKnowledgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePropertyKnowledge},
		inters: c.Interceptors(),
	}
}

// Get returns a PropertyKnowledge entity by its id.
func (c *PropertyKnowledgeClient) Get(ctx context.Context, id string) (*PropertyKnowledge, error) {
	return c.Query().Where(propertyknowledge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PropertyKnowledgeClient) GetX(ctx context.Context, id string) *PropertyKnowledge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWarehouse queries the warehouse edge of a PropertyKnowledge.
func (c *PropertyKnowledgeClient) QueryWarehouse(_m *PropertyKnowledge) *WarehouseQuery {
	query := (&WarehouseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(propertyknowledge.Table, propertyknowledge.FieldID, id),
			sqlgraph.To(warehouse.Table, warehouse.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, propertyknowledge.WarehouseTable, propertyknowledge.WarehouseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PropertyKnowledgeClient) Hooks() []Hook {
	return c.hooks.PropertyKnowledge
}

// Interceptors returns the client interceptors.
func (c *PropertyKnowledgeClient) Interceptors() []Interceptor {
	return c.inters.PropertyKnowledge
}

func (c *PropertyKnowledgeClient) mutate(ctx context.Context, m *PropertyKnowledgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PropertyKnowledgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PropertyKnowledgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PropertyKnowledgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PropertyKnowledgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PropertyKnowledge mutation op: %q", m.Op())
	}
}

// PropertyQuestionClient is a client for the PropertyQuestion schema.
type PropertyQuestionClient struct {
	config
}

// NewPropertyQuestionClient returns a client for the PropertyQuestion from the given config.
func NewPropertyQuestionClient(c config) *PropertyQuestionClient {
	return &PropertyQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `propertyquestion.Hooks(f(g(h())))`.
func (c *PropertyQuestionClient) Use(hooks ...Hook) {
	c.hooks.PropertyQuestion = append(c.hooks.PropertyQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `propertyquestion.Intercept(f(g(h())))`.
func (c *PropertyQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PropertyQuestion = append(c.inters.PropertyQuestion, interceptors...)
}

// Create returns a builder for creating a PropertyQuestion entity.
func (c *PropertyQuestionClient) Create() *PropertyQuestionCreate {
	mutation := newPropertyQuestionMutation(c.config, OpCreate)
	return &PropertyQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PropertyQuestion entities.
func (c *PropertyQuestionClient) CreateBulk(builders ...*PropertyQuestionCreate) *PropertyQuestionCreateBulk {
	return &PropertyQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PropertyQuestionClient) MapCreateBulk(slice any, setFunc func(*PropertyQuestionCreate, int)) *PropertyQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PropertyQuestionCreateBulk{err: fmt.Errorf("calling to PropertyQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PropertyQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PropertyQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PropertyQuestion.
func (c *PropertyQuestionClient) Update() *PropertyQuestionUpdate {
	mutation := newPropertyQuestionMutation(c.config, OpUpdate)
	return &PropertyQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PropertyQuestionClient) UpdateOne(_m *PropertyQuestion) *PropertyQuestionUpdateOne {
	mutation := newPropertyQuestionMutation(c.config, OpUpdateOne, withPropertyQuestion(_m))
	return &PropertyQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PropertyQuestionClient) UpdateOneID(id string) *PropertyQuestionUpdateOne {
	mutation := newPropertyQuestionMutation(c.config, OpUpdateOne, withPropertyQuestionID(id))
	return &PropertyQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PropertyQuestion.
func (c *PropertyQuestionClient) Delete() *PropertyQuestionDelete {
	mutation := newPropertyQuestionMutation(c.config, OpDelete)
	return &PropertyQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PropertyQuestionClient) DeleteOne(_m *PropertyQuestion) *PropertyQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PropertyQuestionClient) DeleteOneID(id string) *PropertyQuestionDeleteOne {
	builder := c.Delete().Where(propertyquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PropertyQuestionDeleteOne{builder}
}

// Query returns a query builder for PropertyQuestion.
func (c *PropertyQuestionClient) Query() *PropertyQuestionQuery {
	return &PropertyQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePropertyQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a PropertyQuestion entity by its id.
func (c *PropertyQuestionClient) Get(ctx context.Context, id string) (*PropertyQuestion, error) {
	return c.Query().Where(propertyquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PropertyQuestionClient) GetX(ctx context.Context, id string) *PropertyQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWarehouse queries the warehouse edge of a PropertyQuestion.
func (c *PropertyQuestionClient) QueryWarehouse(_m *PropertyQuestion) *WarehouseQuery {
	query := (&WarehouseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(propertyquestion.Table, propertyquestion.FieldID, id),
			sqlgraph.To(warehouse.Table, warehouse.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, propertyquestion.WarehouseTable, propertyquestion.WarehouseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PropertyQuestionClient) Hooks() []Hook {
	return c.hooks.PropertyQuestion
}

// Interceptors returns the client interceptors.
func (c *PropertyQuestionClient) Interceptors() []Interceptor {
	return c.inters.PropertyQuestion
}

func (c *PropertyQuestionClient) mutate(ctx context.Context, m *PropertyQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PropertyQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PropertyQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PropertyQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PropertyQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PropertyQuestion mutation op: %q", m.Op())
	}
}

// SearchSessionClient is a client for the SearchSession schema.
type SearchSessionClient struct {
	config
}

// NewSearchSessionClient returns a client for the SearchSession from the given config.
func NewSearchSessionClient(c config) *SearchSessionClient {
	return &SearchSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `searchsession.Hooks(f(g(h())))`.
func (c *SearchSessionClient) Use(hooks ...Hook) {
	c.hooks.SearchSession = append(c.hooks.SearchSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `searchsession.Intercept(f(g(h())))`.
func (c *SearchSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SearchSession = append(c.inters.SearchSession, interceptors...)
}

// Create returns a builder for creating a SearchSession entity.
func (c *SearchSessionClient) Create() *SearchSessionCreate {
	mutation := newSearchSessionMutation(c.config, OpCreate)
	return &SearchSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SearchSession entities.
func (c *SearchSessionClient) CreateBulk(builders ...*SearchSessionCreate) *SearchSessionCreateBulk {
	return &SearchSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SearchSessionClient) MapCreateBulk(slice any, setFunc func(*SearchSessionCreate, int)) *SearchSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SearchSessionCreateBulk{err: fmt.Errorf("calling to SearchSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SearchSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SearchSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SearchSession.
func (c *SearchSessionClient) Update() *SearchSessionUpdate {
	mutation := newSearchSessionMutation(c.config, OpUpdate)
	return &SearchSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SearchSessionClient) UpdateOne(_m *SearchSession) *SearchSessionUpdateOne {
	mutation := newSearchSessionMutation(c.config, OpUpdateOne, withSearchSession(_m))
	return &SearchSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SearchSessionClient) UpdateOneID(id string) *SearchSessionUpdateOne {
	mutation := newSearchSessionMutation(c.config, OpUpdateOne, withSearchSessionID(id))
	return &SearchSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SearchSession.
func (c *SearchSessionClient) Delete() *SearchSessionDelete {
	mutation := newSearchSessionMutation(c.config, OpDelete)
	return &SearchSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SearchSessionClient) DeleteOne(_m *SearchSession) *SearchSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SearchSessionClient) DeleteOneID(id string) *SearchSessionDeleteOne {
	builder := c.Delete().Where(searchsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SearchSessionDeleteOne{builder}
}

// Query returns a query builder for SearchSession.
func (c *SearchSessionClient) Query() *SearchSessionQuery {
	return &SearchSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSearchSession},
		inters: c.Interceptors(),
	}
}

// Get returns a SearchSession entity by its id.
func (c *SearchSessionClient) Get(ctx context.Context, id string) (*SearchSession, error) {
	return c.Query().Where(searchsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SearchSessionClient) GetX(ctx context.Context, id string) *SearchSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SearchSessionClient) Hooks() []Hook {
	return c.hooks.SearchSession
}

// Interceptors returns the client interceptors.
func (c *SearchSessionClient) Interceptors() []Interceptor {
	return c.inters.SearchSession
}

func (c *SearchSessionClient) mutate(ctx context.Context, m *SearchSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SearchSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SearchSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SearchSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SearchSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SearchSession mutation op: %q", m.Op())
	}
}

// SupplierAgreementClient is a client for the SupplierAgreement schema.
type SupplierAgreementClient struct {
	config
}

// NewSupplierAgreementClient returns a client for the SupplierAgreement from the given config.
func NewSupplierAgreementClient(c config) *SupplierAgreementClient {
	return &SupplierAgreementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `supplieragreement.Hooks(f(g(h())))`.
func (c *SupplierAgreementClient) Use(hooks ...Hook) {
	c.hooks.SupplierAgreement = append(c.hooks.SupplierAgreement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `supplieragreement.Intercept(f(g(h())))`.
func (c *SupplierAgreementClient) Intercept(interceptors ...Interceptor) {
	c.inters.SupplierAgreement = append(c.inters.SupplierAgreement, interceptors...)
}

// Create returns a builder for creating a SupplierAgreement entity.
func (c *SupplierAgreementClient) Create() *SupplierAgreementCreate {
	mutation := newSupplierAgreementMutation(c.config, OpCreate)
	return &SupplierAgreementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SupplierAgreement entities.
func (c *SupplierAgreementClient) CreateBulk(builders ...*SupplierAgreementCreate) *SupplierAgreementCreateBulk {
	return &SupplierAgreementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SupplierAgreementClient) MapCreateBulk(slice any, setFunc func(*SupplierAgreementCreate, int)) *SupplierAgreementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SupplierAgreementCreateBulk{err: fmt.Errorf("calling to SupplierAgreementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SupplierAgreementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SupplierAgreementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SupplierAgreement.
func (c *SupplierAgreementClient) Update() *SupplierAgreementUpdate {
	mutation := newSupplierAgreementMutation(c.config, OpUpdate)
	return &SupplierAgreementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SupplierAgreementClient) UpdateOne(_m *SupplierAgreement) *SupplierAgreementUpdateOne {
	mutation := newSupplierAgreementMutation(c.config, OpUpdateOne, withSupplierAgreement(_m))
	return &SupplierAgreementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SupplierAgreementClient) UpdateOneID(id string) *SupplierAgreementUpdateOne {
	mutation := newSupplierAgreementMutation(c.config, OpUpdateOne, withSupplierAgreementID(id))
	return &SupplierAgreementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SupplierAgreement.
func (c *SupplierAgreementClient) Delete() *SupplierAgreementDelete {
	mutation := newSupplierAgreementMutation(c.config, OpDelete)
	return &SupplierAgreementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SupplierAgreementClient) DeleteOne(_m *SupplierAgreement) *SupplierAgreementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SupplierAgreementClient) DeleteOneID(id string) *SupplierAgreementDeleteOne {
	builder := c.Delete().Where(supplieragreement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SupplierAgreementDeleteOne{builder}
}

// Query returns a query builder for SupplierAgreement.
func (c *SupplierAgreementClient) Query() *SupplierAgreementQuery {
	return &SupplierAgreementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSupplierAgreement},
		inters: c.Interceptors(),
	}
}

// Get returns a SupplierAgreement entity by its id.
func (c *SupplierAgreementClient) Get(ctx context.Context, id string) (*SupplierAgreement, error) {
	return c.Query().Where(supplieragreement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SupplierAgreementClient) GetX(ctx context.Context, id string) *SupplierAgreement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWarehouse queries the warehouse edge of a SupplierAgreement.
func (c *SupplierAgreementClient) QueryWarehouse(_m *SupplierAgreement) *WarehouseQuery {
	query := (&WarehouseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(supplieragreement.Table, supplieragreement.FieldID, id),
			sqlgraph.To(warehouse.Table, warehouse.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, supplieragreement.WarehouseTable, supplieragreement.WarehouseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SupplierAgreementClient) Hooks() []Hook {
	return c.hooks.SupplierAgreement
}

// Interceptors returns the client interceptors.
func (c *SupplierAgreementClient) Interceptors() []Interceptor {
	return c.inters.SupplierAgreement
}

func (c *SupplierAgreementClient) mutate(ctx context.Context, m *SupplierAgreementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SupplierAgreementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SupplierAgreementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SupplierAgreementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SupplierAgreementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SupplierAgreement mutation op: %q", m.Op())
	}
}

// ToggleHistoryClient is a client for the ToggleHistory schema.
type ToggleHistoryClient struct {
	config
}

// NewToggleHistoryClient returns a client for the ToggleHistory from the given config.
func NewToggleHistoryClient(c config) *ToggleHistoryClient {
	return &ToggleHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `togglehistory.Hooks(f(g(h())))`.
func (c *ToggleHistoryClient) Use(hooks ...Hook) {
	c.hooks.ToggleHistory = append(c.hooks.ToggleHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `togglehistory.Intercept(f(g(h())))`.
func (c *ToggleHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToggleHistory = append(c.inters.ToggleHistory, interceptors...)
}

// Create returns a builder for creating a ToggleHistory entity.
func (c *ToggleHistoryClient) Create() *ToggleHistoryCreate {
	mutation := newToggleHistoryMutation(c.config, OpCreate)
	return &ToggleHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToggleHistory entities.
func (c *ToggleHistoryClient) CreateBulk(builders ...*ToggleHistoryCreate) *ToggleHistoryCreateBulk {
	return &ToggleHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToggleHistoryClient) MapCreateBulk(slice any, setFunc func(*ToggleHistoryCreate, int)) *ToggleHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToggleHistoryCreateBulk{err: fmt.Errorf("calling to ToggleHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToggleHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToggleHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToggleHistory.
func (c *ToggleHistoryClient) Update() *ToggleHistoryUpdate {
	mutation := newToggleHistoryMutation(c.config, OpUpdate)
	return &ToggleHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToggleHistoryClient) UpdateOne(_m *ToggleHistory) *ToggleHistoryUpdateOne {
	mutation := newToggleHistoryMutation(c.config, OpUpdateOne, withToggleHistory(_m))
	return &ToggleHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToggleHistoryClient) UpdateOneID(id string) *ToggleHistoryUpdateOne {
	mutation := newToggleHistoryMutation(c.config, OpUpdateOne, withToggleHistoryID(id))
	return &ToggleHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToggleHistory.
func (c *ToggleHistoryClient) Delete() *ToggleHistoryDelete {
	mutation := newToggleHistoryMutation(c.config, OpDelete)
	return &ToggleHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToggleHistoryClient) DeleteOne(_m *ToggleHistory) *ToggleHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToggleHistoryClient) DeleteOneID(id string) *ToggleHistoryDeleteOne {
	builder := c.Delete().Where(togglehistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToggleHistoryDeleteOne{builder}
}

// Query returns a query builder for ToggleHistory.
func (c *ToggleHistoryClient) Query() *ToggleHistoryQuery {
	return &ToggleHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToggleHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a ToggleHistory entity by its id.
func (c *ToggleHistoryClient) Get(ctx context.Context, id string) (*ToggleHistory, error) {
	return c.Query().Where(togglehistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToggleHistoryClient) GetX(ctx context.Context, id string) *ToggleHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWarehouse queries the warehouse edge of a ToggleHistory.
func (c *ToggleHistoryClient) QueryWarehouse(_m *ToggleHistory) *WarehouseQuery {
	query := (&WarehouseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(togglehistory.Table, togglehistory.FieldID, id),
			sqlgraph.To(warehouse.Table, warehouse.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, togglehistory.WarehouseTable, togglehistory.WarehouseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ToggleHistoryClient) Hooks() []Hook {
	return c.hooks.ToggleHistory
}

// Interceptors returns the client interceptors.
func (c *ToggleHistoryClient) Interceptors() []Interceptor {
	return c.inters.ToggleHistory
}

func (c *ToggleHistoryClient) mutate(ctx context.Context, m *ToggleHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToggleHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToggleHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToggleHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToggleHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToggleHistory mutation op: %q", m.Op())
	}
}

// TruthCoreClient is a client for the TruthCore schema.
type TruthCoreClient struct {
	config
}

// NewTruthCoreClient returns a client for the TruthCore from the given config.
func NewTruthCoreClient(c config) *TruthCoreClient {
	return &TruthCoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `truthcore.Hooks(f(g(h())))`.
func (c *TruthCoreClient) Use(hooks ...Hook) {
	c.hooks.TruthCore = append(c.hooks.TruthCore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `truthcore.Intercept(f(g(h())))`.
func (c *TruthCoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.TruthCore = append(c.inters.TruthCore, interceptors...)
}

// Create returns a builder for creating a TruthCore entity.
func (c *TruthCoreClient) Create() *TruthCoreCreate {
	mutation := newTruthCoreMutation(c.config, OpCreate)
	return &TruthCoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TruthCore entities.
func (c *TruthCoreClient) CreateBulk(builders ...*TruthCoreCreate) *TruthCoreCreateBulk {
	return &TruthCoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TruthCoreClient) MapCreateBulk(slice any, setFunc func(*TruthCoreCreate, int)) *TruthCoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TruthCoreCreateBulk{err: fmt.Errorf("calling to TruthCoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TruthCoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TruthCoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TruthCore.
func (c *TruthCoreClient) Update() *TruthCoreUpdate {
	mutation := newTruthCoreMutation(c.config, OpUpdate)
	return &TruthCoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TruthCoreClient) UpdateOne(_m *TruthCore) *TruthCoreUpdateOne {
	mutation := newTruthCoreMutation(c.config, OpUpdateOne, withTruthCore(_m))
	return &TruthCoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TruthCoreClient) UpdateOneID(id string) *TruthCoreUpdateOne {
	mutation := newTruthCoreMutation(c.config, OpUpdateOne, withTruthCoreID(id))
	return &TruthCoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TruthCore.
func (c *TruthCoreClient) Delete() *TruthCoreDelete {
	mutation := newTruthCoreMutation(c.config, OpDelete)
	return &TruthCoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TruthCoreClient) DeleteOne(_m *TruthCore) *TruthCoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TruthCoreClient) DeleteOneID(id string) *TruthCoreDeleteOne {
	builder := c.Delete().Where(truthcore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TruthCoreDeleteOne{builder}
}

// Query returns a query builder for TruthCore.
func (c *TruthCoreClient) Query() *TruthCoreQuery {
	return &TruthCoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTruthCore},
		inters: c.Interceptors(),
	}
}

// Get returns a TruthCore entity by its id.
func (c *TruthCoreClient) Get(ctx context.Context, id string) (*TruthCore, error) {
	return c.Query().Where(truthcore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TruthCoreClient) GetX(ctx context.Context, id string) *TruthCore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWarehouse queries the warehouse edge of a TruthCore.
func (c *TruthCoreClient) QueryWarehouse(_m *TruthCore) *WarehouseQuery {
	query := (&WarehouseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(truthcore.Table, truthcore.FieldID, id),
			sqlgraph.To(warehouse.Table, warehouse.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, truthcore.WarehouseTable, truthcore.WarehouseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TruthCoreClient) Hooks() []Hook {
	return c.hooks.TruthCore
}

// Interceptors returns the client interceptors.
func (c *TruthCoreClient) Interceptors() []Interceptor {
	return c.inters.TruthCore
}

func (c *TruthCoreClient) mutate(ctx context.Context, m *TruthCoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TruthCoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TruthCoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TruthCoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TruthCoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TruthCore mutation op: %q", m.Op())
	}
}

// UploadTokenClient is a client for the UploadToken schema.
type UploadTokenClient struct {
	config
}

// NewUploadTokenClient returns a client for the UploadToken from the given config.
func NewUploadTokenClient(c config) *UploadTokenClient {
	return &UploadTokenClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `uploadtoken.Hooks(f(g(h())))`.
func (c *UploadTokenClient) Use(hooks ...Hook) {
	c.hooks.UploadToken = append(c.hooks.UploadToken, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `uploadtoken.Intercept(f(g(h())))`.
func (c *UploadTokenClient) Intercept(interceptors ...Interceptor) {
	c.inters.UploadToken = append(c.inters.UploadToken, interceptors...)
}

// Create returns a builder for creating a UploadToken entity.
func (c *UploadTokenClient) Create() *UploadTokenCreate {
	mutation := newUploadTokenMutation(c.config, OpCreate)
	return &UploadTokenCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UploadToken entities.
func (c *UploadTokenClient) CreateBulk(builders ...*UploadTokenCreate) *UploadTokenCreateBulk {
	return &UploadTokenCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UploadTokenClient) MapCreateBulk(slice any, setFunc func(*UploadTokenCreate, int)) *UploadTokenCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UploadTokenCreateBulk{err: fmt.Errorf("calling to UploadTokenClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UploadTokenCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UploadTokenCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UploadToken.
func (c *UploadTokenClient) Update() *UploadTokenUpdate {
	mutation := newUploadTokenMutation(c.config, OpUpdate)
	return &UploadTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UploadTokenClient) UpdateOne(_m *UploadToken) *UploadTokenUpdateOne {
	mutation := newUploadTokenMutation(c.config, OpUpdateOne, withUploadToken(_m))
	return &UploadTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UploadTokenClient) UpdateOneID(id string) *UploadTokenUpdateOne {
	mutation := newUploadTokenMutation(c.config, OpUpdateOne, withUploadTokenID(id))
	return &UploadTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UploadToken.
func (c *UploadTokenClient) Delete() *UploadTokenDelete {
	mutation := newUploadTokenMutation(c.config, OpDelete)
	return &UploadTokenDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UploadTokenClient) DeleteOne(_m *UploadToken) *UploadTokenDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UploadTokenClient) DeleteOneID(id string) *UploadTokenDeleteOne {
	builder := c.Delete().Where(uploadtoken.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UploadTokenDeleteOne{builder}
}

// Query returns a query builder for UploadToken.
func (c *UploadTokenClient) Query() *UploadTokenQuery {
	return &UploadTokenQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUploadToken},
		inters: c.Interceptors(),
	}
}

// Get returns a UploadToken entity by its id.
func (c *UploadTokenClient) Get(ctx context.Context, id string) (*UploadToken, error) {
	return c.Query().Where(uploadtoken.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UploadTokenClient) GetX(ctx context.Context, id string) *UploadToken {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEngagement queries the engagement edge of a UploadToken.
func (c *UploadTokenClient) QueryEngagement(_m *UploadToken) *EngagementQuery {
	query := (&EngagementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadtoken.Table, uploadtoken.FieldID, id),
			sqlgraph.To(engagement.Table, engagement.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, uploadtoken.EngagementTable, uploadtoken.EngagementColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UploadTokenClient) Hooks() []Hook {
	return c.hooks.UploadToken
}

// Interceptors returns the client interceptors.
func (c *UploadTokenClient) Interceptors() []Interceptor {
	return c.inters.UploadToken
}

func (c *UploadTokenClient) mutate(ctx context.Context, m *UploadTokenMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UploadTokenCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UploadTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UploadTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UploadTokenDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UploadToken mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a User.
func (c *UserClient) QueryCompany(_m *User) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, user.CompanyTable, user.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBuyerNeeds queries the buyer_needs edge of a User.
func (c *UserClient) QueryBuyerNeeds(_m *User) *BuyerNeedQuery {
	query := (&BuyerNeedClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(buyerneed.Table, buyerneed.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.BuyerNeedsTable, user.BuyerNeedsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// WarehouseClient is a client for the Warehouse schema.
type WarehouseClient struct {
	config
}

// NewWarehouseClient returns a client for the Warehouse from the given config.
func NewWarehouseClient(c config) *WarehouseClient {
	return &WarehouseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `warehouse.Hooks(f(g(h())))`.
func (c *WarehouseClient) Use(hooks ...Hook) {
	c.hooks.Warehouse = append(c.hooks.Warehouse, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `warehouse.Intercept(f(g(h())))`.
func (c *WarehouseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Warehouse = append(c.inters.Warehouse, interceptors...)
}

// Create returns a builder for creating a Warehouse entity.
func (c *WarehouseClient) Create() *WarehouseCreate {
	mutation := newWarehouseMutation(c.config, OpCreate)
	return &WarehouseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Warehouse entities.
func (c *WarehouseClient) CreateBulk(builders ...*WarehouseCreate) *WarehouseCreateBulk {
	return &WarehouseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WarehouseClient) MapCreateBulk(slice any, setFunc func(*WarehouseCreate, int)) *WarehouseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WarehouseCreateBulk{err: fmt.Errorf("calling to WarehouseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WarehouseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WarehouseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Warehouse.
func (c *WarehouseClient) Update() *WarehouseUpdate {
	mutation := newWarehouseMutation(c.config, OpUpdate)
	return &WarehouseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WarehouseClient) UpdateOne(_m *Warehouse) *WarehouseUpdateOne {
	mutation := newWarehouseMutation(c.config, OpUpdateOne, withWarehouse(_m))
	return &WarehouseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WarehouseClient) UpdateOneID(id string) *WarehouseUpdateOne {
	mutation := newWarehouseMutation(c.config, OpUpdateOne, withWarehouseID(id))
	return &WarehouseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Warehouse.
func (c *WarehouseClient) Delete() *WarehouseDelete {
	mutation := newWarehouseMutation(c.config, OpDelete)
	return &WarehouseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WarehouseClient) DeleteOne(_m *Warehouse) *WarehouseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WarehouseClient) DeleteOneID(id string) *WarehouseDeleteOne {
	builder := c.Delete().Where(warehouse.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WarehouseDeleteOne{builder}
}

// Query returns a query builder for Warehouse.
func (c *WarehouseClient) Query() *WarehouseQuery {
	return &WarehouseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWarehouse},
		inters: c.Interceptors(),
	}
}

// Get returns a Warehouse entity by its id.
func (c *WarehouseClient) Get(ctx context.Context, id string) (*Warehouse, error) {
	return c.Query().Where(warehouse.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WarehouseClient) GetX(ctx context.Context, id string) *Warehouse {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a Warehouse.
func (c *WarehouseClient) QueryCompany(_m *Warehouse) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, warehouse.CompanyTable, warehouse.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTruthCore queries the truth_core edge of a Warehouse.
func (c *WarehouseClient) QueryTruthCore(_m *Warehouse) *TruthCoreQuery {
	query := (&TruthCoreClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, id),
			sqlgraph.To(truthcore.Table, truthcore.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, warehouse.TruthCoreTable, warehouse.TruthCoreColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMatches queries the matches edge of a Warehouse.
func (c *WarehouseClient) QueryMatches(_m *Warehouse) *MatchQuery {
	query := (&MatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, id),
			sqlgraph.To(match.Table, match.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, warehouse.MatchesTable, warehouse.MatchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMemories queries the memories edge of a Warehouse.
func (c *WarehouseClient) QueryMemories(_m *Warehouse) *ContextualMemoryQuery {
	query := (&ContextualMemoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, id),
			sqlgraph.To(contextualmemory.Table, contextualmemory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, warehouse.MemoriesTable, warehouse.MemoriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestions queries the questions edge of a Warehouse.
func (c *WarehouseClient) QueryQuestions(_m *Warehouse) *PropertyQuestionQuery {
	query := (&PropertyQuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, id),
			sqlgraph.To(propertyquestion.Table, propertyquestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, warehouse.QuestionsTable, warehouse.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryKnowledge queries the knowledge edge of a Warehouse.
func (c *WarehouseClient) QueryKnowledge(_m *Warehouse) *PropertyKnowledgeQuery {
	query := (&PropertyKnowledgeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, id),
			sqlgraph.To(propertyknowledge.Table, propertyknowledge.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, warehouse.KnowledgeTable, warehouse.KnowledgeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDlaTokens queries the dla_tokens edge of a Warehouse.
func (c *WarehouseClient) QueryDlaTokens(_m *Warehouse) *DLATokenQuery {
	query := (&DLATokenClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, id),
			sqlgraph.To(dlatoken.Table, dlatoken.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, warehouse.DlaTokensTable, warehouse.DlaTokensColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToggleHistory queries the toggle_history edge of a Warehouse.
func (c *WarehouseClient) QueryToggleHistory(_m *Warehouse) *ToggleHistoryQuery {
	query := (&ToggleHistoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, id),
			sqlgraph.To(togglehistory.Table, togglehistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, warehouse.ToggleHistoryTable, warehouse.ToggleHistoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySupplierAgreements queries the supplier_agreements edge of a Warehouse.
func (c *WarehouseClient) QuerySupplierAgreements(_m *Warehouse) *SupplierAgreementQuery {
	query := (&SupplierAgreementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, id),
			sqlgraph.To(supplieragreement.Table, supplieragreement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, warehouse.SupplierAgreementsTable, warehouse.SupplierAgreementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WarehouseClient) Hooks() []Hook {
	return c.hooks.Warehouse
}

// Interceptors returns the client interceptors.
func (c *WarehouseClient) Interceptors() []Interceptor {
	return c.inters.Warehouse
}

func (c *WarehouseClient) mutate(ctx context.Context, m *WarehouseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WarehouseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WarehouseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WarehouseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WarehouseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Warehouse mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BuyerNeed, Company, ContextualMemory, Conversation, DLAToken, Engagement,
		EngagementAgreement, EngagementEvent, InboundMessage, InstantBookScore,
		MarketRate, Match, Notification, PaymentRecord, PropertyKnowledge,
		PropertyQuestion, SearchSession, SupplierAgreement, ToggleHistory, TruthCore,
		UploadToken, User, Warehouse []ent.Hook
	}
	inters struct {
		BuyerNeed, Company, ContextualMemory, Conversation, DLAToken, Engagement,
		EngagementAgreement, EngagementEvent, InboundMessage, InstantBookScore,
		MarketRate, Match, Notification, PaymentRecord, PropertyKnowledge,
		PropertyQuestion, SearchSession, SupplierAgreement, ToggleHistory, TruthCore,
		UploadToken, User, Warehouse []ent.Interceptor
	}
)
