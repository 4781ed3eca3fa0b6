// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"sync"

	"entgo.io/ent/dialect"
)

// Tx is a transactional client that is created by calling Client.Tx().
type Tx struct {
	config
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

	// lazily loaded.
	client     *Client
	clientOnce sync.Once
	// ctx lives for the life of the transaction. It is
	// the same context used by the underlying connection.
	ctx context.Context
}

type (
	// Committer is the interface that wraps the Commit method.
	Committer interface {
		Commit(context.Context, *Tx) error
	}

	// The CommitFunc type is an adapter to allow the use of ordinary
	// function as a Committer. If f is a function with the appropriate
	// signature, CommitFunc(f) is a Committer that calls f.
	CommitFunc func(context.Context, *Tx) error

	// CommitHook defines the "commit middleware". A function that gets a Committer
	// and returns a Committer. For example:
	//
	//	hook := func(next ent.Committer) ent.Committer {
	//		return ent.CommitFunc(func(ctx context.Context, tx *ent.Tx) error {
	//			// Do some stuff before.
	//			if err := next.Commit(ctx, tx); err != nil {
	//				return err
	//			}
	//			// Do some stuff after.
	//			return nil
	//		})
	//	}
	//
	CommitHook func(Committer) Committer
)

// Commit calls f(ctx, m).
func (f CommitFunc) Commit(ctx context.Context, tx *Tx) error {
	return f(ctx, tx)
}

// Commit commits the transaction.
func (tx *Tx) Commit() error {
	txDriver := tx.config.driver.(*txDriver)
	var fn Committer = CommitFunc(func(context.Context, *Tx) error {
		return txDriver.tx.Commit()
	})
	txDriver.mu.Lock()
	hooks := append([]CommitHook(nil), txDriver.onCommit...)
	txDriver.mu.Unlock()
	for i := len(hooks) - 1; i >= 0; i-- {
		fn = hooks[i](fn)
	}
	return fn.Commit(tx.ctx, tx)
}

// OnCommit adds a hook to call on commit.
func (tx *Tx) OnCommit(f CommitHook) {
	txDriver := tx.config.driver.(*txDriver)
	txDriver.mu.Lock()
	txDriver.onCommit = append(txDriver.onCommit, f)
	txDriver.mu.Unlock()
}

type (
	// Rollbacker is the interface that wraps the Rollback method.
	Rollbacker interface {
		Rollback(context.Context, *Tx) error
	}

	// The RollbackFunc type is an adapter to allow the use of ordinary
	// function as a Rollbacker. If f is a function with the appropriate
	// signature, RollbackFunc(f) is a Rollbacker that calls f.
	RollbackFunc func(context.Context, *Tx) error

	// RollbackHook defines the "rollback middleware". A function that gets a Rollbacker
	// and returns a Rollbacker. For example:
	//
	//	hook := func(next ent.Rollbacker) ent.Rollbacker {
	//		return ent.RollbackFunc(func(ctx context.Context, tx *ent.Tx) error {
	//			// Do some stuff before.
	//			if err := next.Rollback(ctx, tx); err != nil {
	//				return err
	//			}
	//			// Do some stuff after.
	//			return nil
	//		})
	//	}
	//
	RollbackHook func(Rollbacker) Rollbacker
)

// Rollback calls f(ctx, m).
func (f RollbackFunc) Rollback(ctx context.Context, tx *Tx) error {
	return f(ctx, tx)
}

// Rollback rollbacks the transaction.
func (tx *Tx) Rollback() error {
	txDriver := tx.config.driver.(*txDriver)
	var fn Rollbacker = RollbackFunc(func(context.Context, *Tx) error {
		return txDriver.tx.Rollback()
	})
	txDriver.mu.Lock()
	hooks := append([]RollbackHook(nil), txDriver.onRollback...)
	txDriver.mu.Unlock()
	for i := len(hooks) - 1; i >= 0; i-- {
		fn = hooks[i](fn)
	}
	return fn.Rollback(tx.ctx, tx)
}

// OnRollback adds a hook to call on rollback.
func (tx *Tx) OnRollback(f RollbackHook) {
	txDriver := tx.config.driver.(*txDriver)
	txDriver.mu.Lock()
	txDriver.onRollback = append(txDriver.onRollback, f)
	txDriver.mu.Unlock()
}

// Client returns a Client that binds to current transaction.
func (tx *Tx) Client() *Client {
	tx.clientOnce.Do(func() {
		tx.client = &Client{config: tx.config}
		tx.client.init()
	})
	return tx.client
}

func (tx *Tx) init() {
	tx.BuyerNeed = NewBuyerNeedClient(tx.config)
	tx.Company = NewCompanyClient(tx.config)
	tx.ContextualMemory = NewContextualMemoryClient(tx.config)
	tx.Conversation = NewConversationClient(tx.config)
	tx.DLAToken = NewDLATokenClient(tx.config)
	tx.Engagement = NewEngagementClient(tx.config)
	tx.EngagementAgreement = NewEngagementAgreementClient(tx.config)
	tx.EngagementEvent = NewEngagementEventClient(tx.config)
	tx.InboundMessage = NewInboundMessageClient(tx.config)
	tx.InstantBookScore = NewInstantBookScoreClient(tx.config)
	tx.MarketRate = NewMarketRateClient(tx.config)
	tx.Match = NewMatchClient(tx.config)
	tx.Notification = NewNotificationClient(tx.config)
	tx.PaymentRecord = NewPaymentRecordClient(tx.config)
	tx.PropertyKnowledge = NewPropertyKnowledgeClient(tx.config)
	tx.PropertyQuestion = NewPropertyQuestionClient(tx.config)
	tx.SearchSession = NewSearchSessionClient(tx.config)
	tx.SupplierAgreement = NewSupplierAgreementClient(tx.config)
	tx.ToggleHistory = NewToggleHistoryClient(tx.config)
	tx.TruthCore = NewTruthCoreClient(tx.config)
	tx.UploadToken = NewUploadTokenClient(tx.config)
	tx.User = NewUserClient(tx.config)
	tx.Warehouse = NewWarehouseClient(tx.config)
}

// txDriver wraps the given dialect.Tx with a nop dialect.Driver implementation.
// The idea is to support transactions without adding any extra code to the builders.
// When a builder calls to driver.Tx(), it gets the same dialect.Tx instance.
// Commit and Rollback are nop for the internal builders and the user must call one
// of them in order to commit or rollback the transaction.
//
// If a closed transaction is embedded in one of the generated entities, and the entity
// applies a query, for example: BuyerNeed.QueryXXX(), the query will be executed
// through the driver which created this transaction.
//
// Note that txDriver is not goroutine safe.
type txDriver struct {
	// the driver we started the transaction from.
	drv dialect.Driver
	// tx is the underlying transaction.
	tx dialect.Tx
	// completion hooks.
	mu         sync.Mutex
	onCommit   []CommitHook
	onRollback []RollbackHook
}

// newTx creates a new transactional driver.
func newTx(ctx context.Context, drv dialect.Driver) (*txDriver, error) {
	tx, err := drv.Tx(ctx)
	if err != nil {
		return nil, err
	}
	return &txDriver{tx: tx, drv: drv}, nil
}

// Tx returns the transaction wrapper (txDriver) to avoid Commit or Rollback calls
// from the internal builders. Should be called only by the internal builders.
func (tx *txDriver) Tx(context.Context) (dialect.Tx, error) { return tx, nil }

// Dialect returns the dialect of the driver we started the transaction from.
func (tx *txDriver) Dialect() string { return tx.drv.Dialect() }

// Close is a nop close.
func (*txDriver) Close() error { return nil }

// Commit is a nop commit for the internal builders.
// User must call `Tx.Commit` in order to commit the transaction.
func (*txDriver) Commit() error { return nil }

// Rollback is a nop rollback for the internal builders.
// User must call `Tx.Rollback` in order to rollback the transaction.
func (*txDriver) Rollback() error { return nil }

// Exec calls tx.Exec.
func (tx *txDriver) Exec(ctx context.Context, query string, args, v any) error {
	return tx.tx.Exec(ctx, query, args, v)
}

// Query calls tx.Query.
func (tx *txDriver) Query(ctx context.Context, query string, args, v any) error {
	return tx.tx.Query(ctx, query, args, v)
}

var _ dialect.Driver = (*txDriver)(nil)
