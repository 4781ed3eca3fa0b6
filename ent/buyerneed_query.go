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
	"github.com/warehouse-exchange/wex/ent/buyerneed"
	"github.com/warehouse-exchange/wex/ent/dlatoken"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/ent/user"
)

// BuyerNeedQuery is the builder for querying BuyerNeed entities.
type BuyerNeedQuery struct {
	config
	ctx           *QueryContext
	order         []buyerneed.OrderOption
	inters        []Interceptor
	predicates    []predicate.BuyerNeed
	withBuyer     *UserQuery
	withMatches   *MatchQuery
	withDlaTokens *DLATokenQuery
	modifiers     []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BuyerNeedQuery builder.
func (_q *BuyerNeedQuery) Where(ps ...predicate.BuyerNeed) *BuyerNeedQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BuyerNeedQuery) Limit(limit int) *BuyerNeedQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BuyerNeedQuery) Offset(offset int) *BuyerNeedQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BuyerNeedQuery) Unique(unique bool) *BuyerNeedQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BuyerNeedQuery) Order(o ...buyerneed.OrderOption) *BuyerNeedQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryBuyer chains the current query on the "buyer" edge.
func (_q *BuyerNeedQuery) QueryBuyer() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(buyerneed.Table, buyerneed.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, buyerneed.BuyerTable, buyerneed.BuyerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMatches chains the current query on the "matches" edge.
func (_q *BuyerNeedQuery) QueryMatches() *MatchQuery {
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
			sqlgraph.From(buyerneed.Table, buyerneed.FieldID, selector),
			sqlgraph.To(match.Table, match.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, buyerneed.MatchesTable, buyerneed.MatchesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDlaTokens chains the current query on the "dla_tokens" edge.
func (_q *BuyerNeedQuery) QueryDlaTokens() *DLATokenQuery {
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
			sqlgraph.From(buyerneed.Table, buyerneed.FieldID, selector),
			sqlgraph.To(dlatoken.Table, dlatoken.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, buyerneed.DlaTokensTable, buyerneed.DlaTokensColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first BuyerNeed entity from the query.
// Returns a *NotFoundError when no BuyerNeed was found.
func (_q *BuyerNeedQuery) First(ctx context.Context) (*BuyerNeed, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{buyerneed.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BuyerNeedQuery) FirstX(ctx context.Context) *BuyerNeed {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BuyerNeed ID from the query.
// Returns a *NotFoundError when no BuyerNeed ID was found.
func (_q *BuyerNeedQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{buyerneed.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BuyerNeedQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BuyerNeed entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BuyerNeed entity is found.
// Returns a *NotFoundError when no BuyerNeed entities are found.
func (_q *BuyerNeedQuery) Only(ctx context.Context) (*BuyerNeed, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{buyerneed.Label}
	default:
		return nil, &NotSingularError{buyerneed.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BuyerNeedQuery) OnlyX(ctx context.Context) *BuyerNeed {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BuyerNeed ID in the query.
// Returns a *NotSingularError when more than one BuyerNeed ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BuyerNeedQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{buyerneed.Label}
	default:
		err = &NotSingularError{buyerneed.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BuyerNeedQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BuyerNeeds.
func (_q *BuyerNeedQuery) All(ctx context.Context) ([]*BuyerNeed, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BuyerNeed, *BuyerNeedQuery]()
	return withInterceptors[[]*BuyerNeed](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BuyerNeedQuery) AllX(ctx context.Context) []*BuyerNeed {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BuyerNeed IDs.
func (_q *BuyerNeedQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(buyerneed.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BuyerNeedQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BuyerNeedQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BuyerNeedQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BuyerNeedQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BuyerNeedQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *BuyerNeedQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BuyerNeedQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BuyerNeedQuery) Clone() *BuyerNeedQuery {
	if _q == nil {
		return nil
	}
	return &BuyerNeedQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]buyerneed.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.BuyerNeed{}, _q.predicates...),
		withBuyer:     _q.withBuyer.Clone(),
		withMatches:   _q.withMatches.Clone(),
		withDlaTokens: _q.withDlaTokens.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithBuyer tells the query-builder to eager-load the nodes that are connected to
// the "buyer" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BuyerNeedQuery) WithBuyer(opts ...func(*UserQuery)) *BuyerNeedQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBuyer = query
	return _q
}

// WithMatches tells the query-builder to eager-load the nodes that are connected to
// the "matches" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BuyerNeedQuery) WithMatches(opts ...func(*MatchQuery)) *BuyerNeedQuery {
	query := (&MatchClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMatches = query
	return _q
}

// WithDlaTokens tells the query-builder to eager-load the nodes that are connected to
// the "dla_tokens" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BuyerNeedQuery) WithDlaTokens(opts ...func(*DLATokenQuery)) *BuyerNeedQuery {
	query := (&DLATokenClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDlaTokens = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		BuyerID string `json:"buyer_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.BuyerNeed.Query().
//		GroupBy(buyerneed.FieldBuyerID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BuyerNeedQuery) GroupBy(field string, fields ...string) *BuyerNeedGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BuyerNeedGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = buyerneed.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		BuyerID string `json:"buyer_id,omitempty"`
//	}
//
//	client.BuyerNeed.Query().
//		Select(buyerneed.FieldBuyerID).
//		Scan(ctx, &v)
func (_q *BuyerNeedQuery) Select(fields ...string) *BuyerNeedSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BuyerNeedSelect{BuyerNeedQuery: _q}
	sbuild.label = buyerneed.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BuyerNeedSelect configured with the given aggregations.
func (_q *BuyerNeedQuery) Aggregate(fns ...AggregateFunc) *BuyerNeedSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BuyerNeedQuery) prepareQuery(ctx context.Context) error {
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
		if !buyerneed.ValidColumn(f) {
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

func (_q *BuyerNeedQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BuyerNeed, error) {
	var (
		nodes       = []*BuyerNeed{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withBuyer != nil,
			_q.withMatches != nil,
			_q.withDlaTokens != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BuyerNeed).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BuyerNeed{config: _q.config}
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
	if query := _q.withBuyer; query != nil {
		if err := _q.loadBuyer(ctx, query, nodes, nil,
			func(n *BuyerNeed, e *User) { n.Edges.Buyer = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMatches; query != nil {
		if err := _q.loadMatches(ctx, query, nodes,
			func(n *BuyerNeed) { n.Edges.Matches = []*Match{} },
			func(n *BuyerNeed, e *Match) { n.Edges.Matches = append(n.Edges.Matches, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDlaTokens; query != nil {
		if err := _q.loadDlaTokens(ctx, query, nodes,
			func(n *BuyerNeed) { n.Edges.DlaTokens = []*DLAToken{} },
			func(n *BuyerNeed, e *DLAToken) { n.Edges.DlaTokens = append(n.Edges.DlaTokens, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BuyerNeedQuery) loadBuyer(ctx context.Context, query *UserQuery, nodes []*BuyerNeed, init func(*BuyerNeed), assign func(*BuyerNeed, *User)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*BuyerNeed)
	for i := range nodes {
		fk := nodes[i].BuyerID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "buyer_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *BuyerNeedQuery) loadMatches(ctx context.Context, query *MatchQuery, nodes []*BuyerNeed, init func(*BuyerNeed), assign func(*BuyerNeed, *Match)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*BuyerNeed)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(match.FieldBuyerNeedID)
	}
	query.Where(predicate.Match(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(buyerneed.MatchesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BuyerNeedID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "buyer_need_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *BuyerNeedQuery) loadDlaTokens(ctx context.Context, query *DLATokenQuery, nodes []*BuyerNeed, init func(*BuyerNeed), assign func(*BuyerNeed, *DLAToken)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*BuyerNeed)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(dlatoken.FieldBuyerNeedID)
	}
	query.Where(predicate.DLAToken(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(buyerneed.DlaTokensColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BuyerNeedID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "buyer_need_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *BuyerNeedQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *BuyerNeedQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(buyerneed.Table, buyerneed.Columns, sqlgraph.NewFieldSpec(buyerneed.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, buyerneed.FieldID)
		for i := range fields {
			if fields[i] != buyerneed.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withBuyer != nil {
			_spec.Node.AddColumnOnce(buyerneed.FieldBuyerID)
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

func (_q *BuyerNeedQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(buyerneed.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = buyerneed.Columns
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
func (_q *BuyerNeedQuery) ForUpdate(opts ...sql.LockOption) *BuyerNeedQuery {
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
func (_q *BuyerNeedQuery) ForShare(opts ...sql.LockOption) *BuyerNeedQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// BuyerNeedGroupBy is the group-by builder for BuyerNeed entities.
type BuyerNeedGroupBy struct {
	selector
	build *BuyerNeedQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BuyerNeedGroupBy) Aggregate(fns ...AggregateFunc) *BuyerNeedGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BuyerNeedGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BuyerNeedQuery, *BuyerNeedGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BuyerNeedGroupBy) sqlScan(ctx context.Context, root *BuyerNeedQuery, v any) error {
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

// BuyerNeedSelect is the builder for selecting fields of BuyerNeed entities.
type BuyerNeedSelect struct {
	*BuyerNeedQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BuyerNeedSelect) Aggregate(fns ...AggregateFunc) *BuyerNeedSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BuyerNeedSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BuyerNeedQuery, *BuyerNeedSelect](ctx, _s.BuyerNeedQuery, _s, _s.inters, v)
}

func (_s *BuyerNeedSelect) sqlScan(ctx context.Context, root *BuyerNeedQuery, v any) error {
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
