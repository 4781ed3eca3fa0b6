// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/company"
	"github.com/warehouse-exchange/wex/ent/contextualmemory"
	"github.com/warehouse-exchange/wex/ent/dlatoken"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/ent/propertyknowledge"
	"github.com/warehouse-exchange/wex/ent/propertyquestion"
	"github.com/warehouse-exchange/wex/ent/supplieragreement"
	"github.com/warehouse-exchange/wex/ent/togglehistory"
	"github.com/warehouse-exchange/wex/ent/truthcore"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// WarehouseQuery is the builder for querying Warehouse entities.
type WarehouseQuery struct {
	config
	ctx                    *QueryContext
	order                  []warehouse.OrderOption
	inters                 []Interceptor
	predicates             []predicate.Warehouse
	withCompany            *CompanyQuery
	withTruthCore          *TruthCoreQuery
	withMatches            *MatchQuery
	withMemories           *ContextualMemoryQuery
	withQuestions          *PropertyQuestionQuery
	withKnowledge          *PropertyKnowledgeQuery
	withDlaTokens          *DLATokenQuery
	withToggleHistory      *ToggleHistoryQuery
	withSupplierAgreements *SupplierAgreementQuery
	modifiers              []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WarehouseQuery builder.
func (_q *WarehouseQuery) Where(ps ...predicate.Warehouse) *WarehouseQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *WarehouseQuery) Limit(limit int) *WarehouseQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *WarehouseQuery) Offset(offset int) *WarehouseQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *WarehouseQuery) Unique(unique bool) *WarehouseQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *WarehouseQuery) Order(o ...warehouse.OrderOption) *WarehouseQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCompany chains the current query on the "company" edge.
func (_q *WarehouseQuery) QueryCompany() *CompanyQuery {
	query := (&CompanyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, selector),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, warehouse.CompanyTable, warehouse.CompanyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTruthCore chains the current query on the "truth_core" edge.
func (_q *WarehouseQuery) QueryTruthCore() *TruthCoreQuery {
	query := (&TruthCoreClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, selector),
			sqlgraph.To(truthcore.Table, truthcore.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, warehouse.TruthCoreTable, warehouse.TruthCoreColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMatches chains the current query on the "matches" edge.
func (_q *WarehouseQuery) QueryMatches() *MatchQuery {
	query := (&MatchClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, selector),
			sqlgraph.To(match.Table, match.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, warehouse.MatchesTable, warehouse.MatchesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMemories chains the current query on the "memories" edge.
func (_q *WarehouseQuery) QueryMemories() *ContextualMemoryQuery {
	query := (&ContextualMemoryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, selector),
			sqlgraph.To(contextualmemory.Table, contextualmemory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, warehouse.MemoriesTable, warehouse.MemoriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQuestions chains the current query on the "questions" edge.
func (_q *WarehouseQuery) QueryQuestions() *PropertyQuestionQuery {
	query := (&PropertyQuestionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, selector),
			sqlgraph.To(propertyquestion.Table, propertyquestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, warehouse.QuestionsTable, warehouse.QuestionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryKnowledge chains the current query on the "knowledge" edge.
func (_q *WarehouseQuery) QueryKnowledge() *PropertyKnowledgeQuery {
	query := (&PropertyKnowledgeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, selector),
			sqlgraph.To(propertyknowledge.Table, propertyknowledge.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, warehouse.KnowledgeTable, warehouse.KnowledgeColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDlaTokens chains the current query on the "dla_tokens" edge.
func (_q *WarehouseQuery) QueryDlaTokens() *DLATokenQuery {
	query := (&DLATokenClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, selector),
			sqlgraph.To(dlatoken.Table, dlatoken.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, warehouse.DlaTokensTable, warehouse.DlaTokensColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryToggleHistory chains the current query on the "toggle_history" edge.
func (_q *WarehouseQuery) QueryToggleHistory() *ToggleHistoryQuery {
	query := (&ToggleHistoryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, selector),
			sqlgraph.To(togglehistory.Table, togglehistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, warehouse.ToggleHistoryTable, warehouse.ToggleHistoryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySupplierAgreements chains the current query on the "supplier_agreements" edge.
func (_q *WarehouseQuery) QuerySupplierAgreements() *SupplierAgreementQuery {
	query := (&SupplierAgreementClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(warehouse.Table, warehouse.FieldID, selector),
			sqlgraph.To(supplieragreement.Table, supplieragreement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, warehouse.SupplierAgreementsTable, warehouse.SupplierAgreementsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Warehouse entity from the query.
// Returns a *NotFoundError when no Warehouse was found.
func (_q *WarehouseQuery) First(ctx context.Context) (*Warehouse, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{warehouse.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *WarehouseQuery) FirstX(ctx context.Context) *Warehouse {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Warehouse ID from the query.
// Returns a *NotFoundError when no Warehouse ID was found.
func (_q *WarehouseQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{warehouse.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *WarehouseQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Warehouse entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Warehouse entity is found.
// Returns a *NotFoundError when no Warehouse entities are found.
func (_q *WarehouseQuery) Only(ctx context.Context) (*Warehouse, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{warehouse.Label}
	default:
		return nil, &NotSingularError{warehouse.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *WarehouseQuery) OnlyX(ctx context.Context) *Warehouse {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Warehouse ID in the query.
// Returns a *NotSingularError when more than one Warehouse ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *WarehouseQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{warehouse.Label}
	default:
		err = &NotSingularError{warehouse.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *WarehouseQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Warehouses.
func (_q *WarehouseQuery) All(ctx context.Context) ([]*Warehouse, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Warehouse, *WarehouseQuery]()
	return withInterceptors[[]*Warehouse](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *WarehouseQuery) AllX(ctx context.Context) []*Warehouse {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Warehouse IDs.
func (_q *WarehouseQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(warehouse.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *WarehouseQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *WarehouseQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*WarehouseQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *WarehouseQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *WarehouseQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *WarehouseQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WarehouseQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *WarehouseQuery) Clone() *WarehouseQuery {
	if _q == nil {
		return nil
	}
	return &WarehouseQuery{
		config:                 _q.config,
		ctx:                    _q.ctx.Clone(),
		order:                  append([]warehouse.OrderOption{}, _q.order...),
		inters:                 append([]Interceptor{}, _q.inters...),
		predicates:             append([]predicate.Warehouse{}, _q.predicates...),
		withCompany:            _q.withCompany.Clone(),
		withTruthCore:          _q.withTruthCore.Clone(),
		withMatches:            _q.withMatches.Clone(),
		withMemories:           _q.withMemories.Clone(),
		withQuestions:          _q.withQuestions.Clone(),
		withKnowledge:          _q.withKnowledge.Clone(),
		withDlaTokens:          _q.withDlaTokens.Clone(),
		withToggleHistory:      _q.withToggleHistory.Clone(),
		withSupplierAgreements: _q.withSupplierAgreements.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCompany tells the query-builder to eager-load the nodes that are connected to
// the "company" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WarehouseQuery) WithCompany(opts ...func(*CompanyQuery)) *WarehouseQuery {
	query := (&CompanyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCompany = query
	return _q
}

// WithTruthCore tells the query-builder to eager-load the nodes that are connected to
// the "truth_core" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WarehouseQuery) WithTruthCore(opts ...func(*TruthCoreQuery)) *WarehouseQuery {
	query := (&TruthCoreClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTruthCore = query
	return _q
}

// WithMatches tells the query-builder to eager-load the nodes that are connected to
// the "matches" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WarehouseQuery) WithMatches(opts ...func(*MatchQuery)) *WarehouseQuery {
	query := (&MatchClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMatches = query
	return _q
}

// WithMemories tells the query-builder to eager-load the nodes that are connected to
// the "memories" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WarehouseQuery) WithMemories(opts ...func(*ContextualMemoryQuery)) *WarehouseQuery {
	query := (&ContextualMemoryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMemories = query
	return _q
}

// WithQuestions tells the query-builder to eager-load the nodes that are connected to
// the "questions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WarehouseQuery) WithQuestions(opts ...func(*PropertyQuestionQuery)) *WarehouseQuery {
	query := (&PropertyQuestionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQuestions = query
	return _q
}

// WithKnowledge tells the query-builder to eager-load the nodes that are connected to
// the "knowledge" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WarehouseQuery) WithKnowledge(opts ...func(*PropertyKnowledgeQuery)) *WarehouseQuery {
	query := (&PropertyKnowledgeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withKnowledge = query
	return _q
}

// WithDlaTokens tells the query-builder to eager-load the nodes that are connected to
// the "dla_tokens" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WarehouseQuery) WithDlaTokens(opts ...func(*DLATokenQuery)) *WarehouseQuery {
	query := (&DLATokenClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDlaTokens = query
	return _q
}

// WithToggleHistory tells the query-builder to eager-load the nodes that are connected to
// the "toggle_history" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WarehouseQuery) WithToggleHistory(opts ...func(*ToggleHistoryQuery)) *WarehouseQuery {
	query := (&ToggleHistoryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withToggleHistory = query
	return _q
}

// WithSupplierAgreements tells the query-builder to eager-load the nodes that are connected to
// the "supplier_agreements" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WarehouseQuery) WithSupplierAgreements(opts ...func(*SupplierAgreementQuery)) *WarehouseQuery {
	query := (&SupplierAgreementClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSupplierAgreements = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CompanyID string `json:"company_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Warehouse.Query().
//		GroupBy(warehouse.FieldCompanyID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *WarehouseQuery) GroupBy(field string, fields ...string) *WarehouseGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WarehouseGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = warehouse.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CompanyID string `json:"company_id,omitempty"`
//	}
//
//	client.Warehouse.Query().
//		Select(warehouse.FieldCompanyID).
//		Scan(ctx, &v)
func (_q *WarehouseQuery) Select(fields ...string) *WarehouseSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &WarehouseSelect{WarehouseQuery: _q}
	sbuild.label = warehouse.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WarehouseSelect configured with the given aggregations.
func (_q *WarehouseQuery) Aggregate(fns ...AggregateFunc) *WarehouseSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *WarehouseQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !warehouse.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *WarehouseQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Warehouse, error) {
	var (
		nodes       = []*Warehouse{}
		_spec       = _q.querySpec()
		loadedTypes = [9]bool{
			_q.withCompany != nil,
			_q.withTruthCore != nil,
			_q.withMatches != nil,
			_q.withMemories != nil,
			_q.withQuestions != nil,
			_q.withKnowledge != nil,
			_q.withDlaTokens != nil,
			_q.withToggleHistory != nil,
			_q.withSupplierAgreements != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Warehouse).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Warehouse{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withCompany; query != nil {
		if err := _q.loadCompany(ctx, query, nodes, nil,
			func(n *Warehouse, e *Company) { n.Edges.Company = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTruthCore; query != nil {
		if err := _q.loadTruthCore(ctx, query, nodes, nil,
			func(n *Warehouse, e *TruthCore) { n.Edges.TruthCore = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMatches; query != nil {
		if err := _q.loadMatches(ctx, query, nodes,
			func(n *Warehouse) { n.Edges.Matches = []*Match{} },
			func(n *Warehouse, e *Match) { n.Edges.Matches = append(n.Edges.Matches, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMemories; query != nil {
		if err := _q.loadMemories(ctx, query, nodes,
			func(n *Warehouse) { n.Edges.Memories = []*ContextualMemory{} },
			func(n *Warehouse, e *ContextualMemory) { n.Edges.Memories = append(n.Edges.Memories, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withQuestions; query != nil {
		if err := _q.loadQuestions(ctx, query, nodes,
			func(n *Warehouse) { n.Edges.Questions = []*PropertyQuestion{} },
			func(n *Warehouse, e *PropertyQuestion) { n.Edges.Questions = append(n.Edges.Questions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withKnowledge; query != nil {
		if err := _q.loadKnowledge(ctx, query, nodes,
			func(n *Warehouse) { n.Edges.Knowledge = []*PropertyKnowledge{} },
			func(n *Warehouse, e *PropertyKnowledge) { n.Edges.Knowledge = append(n.Edges.Knowledge, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDlaTokens; query != nil {
		if err := _q.loadDlaTokens(ctx, query, nodes,
			func(n *Warehouse) { n.Edges.DlaTokens = []*DLAToken{} },
			func(n *Warehouse, e *DLAToken) { n.Edges.DlaTokens = append(n.Edges.DlaTokens, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withToggleHistory; query != nil {
		if err := _q.loadToggleHistory(ctx, query, nodes,
			func(n *Warehouse) { n.Edges.ToggleHistory = []*ToggleHistory{} },
			func(n *Warehouse, e *ToggleHistory) { n.Edges.ToggleHistory = append(n.Edges.ToggleHistory, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSupplierAgreements; query != nil {
		if err := _q.loadSupplierAgreements(ctx, query, nodes,
			func(n *Warehouse) { n.Edges.SupplierAgreements = []*SupplierAgreement{} },
			func(n *Warehouse, e *SupplierAgreement) {
				n.Edges.SupplierAgreements = append(n.Edges.SupplierAgreements, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *WarehouseQuery) loadCompany(ctx context.Context, query *CompanyQuery, nodes []*Warehouse, init func(*Warehouse), assign func(*Warehouse, *Company)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Warehouse)
	for i := range nodes {
		fk := nodes[i].CompanyID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(company.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "company_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *WarehouseQuery) loadTruthCore(ctx context.Context, query *TruthCoreQuery, nodes []*Warehouse, init func(*Warehouse), assign func(*Warehouse, *TruthCore)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Warehouse)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(truthcore.FieldWarehouseID)
	}
	query.Where(predicate.TruthCore(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(warehouse.TruthCoreColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WarehouseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "warehouse_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WarehouseQuery) loadMatches(ctx context.Context, query *MatchQuery, nodes []*Warehouse, init func(*Warehouse), assign func(*Warehouse, *Match)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Warehouse)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(match.FieldWarehouseID)
	}
	query.Where(predicate.Match(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(warehouse.MatchesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WarehouseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "warehouse_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WarehouseQuery) loadMemories(ctx context.Context, query *ContextualMemoryQuery, nodes []*Warehouse, init func(*Warehouse), assign func(*Warehouse, *ContextualMemory)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Warehouse)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(contextualmemory.FieldWarehouseID)
	}
	query.Where(predicate.ContextualMemory(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(warehouse.MemoriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WarehouseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "warehouse_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WarehouseQuery) loadQuestions(ctx context.Context, query *PropertyQuestionQuery, nodes []*Warehouse, init func(*Warehouse), assign func(*Warehouse, *PropertyQuestion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Warehouse)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(propertyquestion.FieldWarehouseID)
	}
	query.Where(predicate.PropertyQuestion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(warehouse.QuestionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WarehouseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "warehouse_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WarehouseQuery) loadKnowledge(ctx context.Context, query *PropertyKnowledgeQuery, nodes []*Warehouse, init func(*Warehouse), assign func(*Warehouse, *PropertyKnowledge)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Warehouse)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(propertyknowledge.FieldWarehouseID)
	}
	query.Where(predicate.PropertyKnowledge(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(warehouse.KnowledgeColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WarehouseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "warehouse_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WarehouseQuery) loadDlaTokens(ctx context.Context, query *DLATokenQuery, nodes []*Warehouse, init func(*Warehouse), assign func(*Warehouse, *DLAToken)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Warehouse)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(dlatoken.FieldWarehouseID)
	}
	query.Where(predicate.DLAToken(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(warehouse.DlaTokensColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WarehouseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "warehouse_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WarehouseQuery) loadToggleHistory(ctx context.Context, query *ToggleHistoryQuery, nodes []*Warehouse, init func(*Warehouse), assign func(*Warehouse, *ToggleHistory)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Warehouse)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(togglehistory.FieldWarehouseID)
	}
	query.Where(predicate.ToggleHistory(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(warehouse.ToggleHistoryColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WarehouseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "warehouse_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WarehouseQuery) loadSupplierAgreements(ctx context.Context, query *SupplierAgreementQuery, nodes []*Warehouse, init func(*Warehouse), assign func(*Warehouse, *SupplierAgreement)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Warehouse)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(supplieragreement.FieldWarehouseID)
	}
	query.Where(predicate.SupplierAgreement(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(warehouse.SupplierAgreementsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WarehouseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "warehouse_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *WarehouseQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *WarehouseQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(warehouse.Table, warehouse.Columns, sqlgraph.NewFieldSpec(warehouse.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, warehouse.FieldID)
		for i := range fields {
			if fields[i] != warehouse.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCompany != nil {
			_spec.Node.AddColumnOnce(warehouse.FieldCompanyID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *WarehouseQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(warehouse.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = warehouse.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *WarehouseQuery) ForUpdate(opts ...sql.LockOption) *WarehouseQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *WarehouseQuery) ForShare(opts ...sql.LockOption) *WarehouseQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// WarehouseGroupBy is the group-by builder for Warehouse entities.
type WarehouseGroupBy struct {
	selector
	build *WarehouseQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *WarehouseGroupBy) Aggregate(fns ...AggregateFunc) *WarehouseGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *WarehouseGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WarehouseQuery, *WarehouseGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *WarehouseGroupBy) sqlScan(ctx context.Context, root *WarehouseQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WarehouseSelect is the builder for selecting fields of Warehouse entities.
type WarehouseSelect struct {
	*WarehouseQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *WarehouseSelect) Aggregate(fns ...AggregateFunc) *WarehouseSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *WarehouseSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WarehouseQuery, *WarehouseSelect](ctx, _s.WarehouseQuery, _s, _s.inters, v)
}

func (_s *WarehouseSelect) sqlScan(ctx context.Context, root *WarehouseQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
