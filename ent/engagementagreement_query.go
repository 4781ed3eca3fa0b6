// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementagreement"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// EngagementAgreementQuery is the builder for querying EngagementAgreement entities.
type EngagementAgreementQuery struct {
	config
	ctx            *QueryContext
	order          []engagementagreement.OrderOption
	inters         []Interceptor
	predicates     []predicate.EngagementAgreement
	withEngagement *EngagementQuery
	modifiers      []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EngagementAgreementQuery builder.
func (_q *EngagementAgreementQuery) Where(ps ...predicate.EngagementAgreement) *EngagementAgreementQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *EngagementAgreementQuery) Limit(limit int) *EngagementAgreementQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *EngagementAgreementQuery) Offset(offset int) *EngagementAgreementQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *EngagementAgreementQuery) Unique(unique bool) *EngagementAgreementQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *EngagementAgreementQuery) Order(o ...engagementagreement.OrderOption) *EngagementAgreementQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryEngagement chains the current query on the "engagement" edge.
func (_q *EngagementAgreementQuery) QueryEngagement() *EngagementQuery {
	query := (&EngagementClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(engagementagreement.Table, engagementagreement.FieldID, selector),
			sqlgraph.To(engagement.Table, engagement.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, engagementagreement.EngagementTable, engagementagreement.EngagementColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first EngagementAgreement entity from the query.
// Returns a *NotFoundError when no EngagementAgreement was found.
func (_q *EngagementAgreementQuery) First(ctx context.Context) (*EngagementAgreement, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{engagementagreement.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *EngagementAgreementQuery) FirstX(ctx context.Context) *EngagementAgreement {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first EngagementAgreement ID from the query.
// Returns a *NotFoundError when no EngagementAgreement ID was found.
func (_q *EngagementAgreementQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{engagementagreement.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *EngagementAgreementQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single EngagementAgreement entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one EngagementAgreement entity is found.
// Returns a *NotFoundError when no EngagementAgreement entities are found.
func (_q *EngagementAgreementQuery) Only(ctx context.Context) (*EngagementAgreement, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{engagementagreement.Label}
	default:
		return nil, &NotSingularError{engagementagreement.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *EngagementAgreementQuery) OnlyX(ctx context.Context) *EngagementAgreement {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only EngagementAgreement ID in the query.
// Returns a *NotSingularError when more than one EngagementAgreement ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *EngagementAgreementQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{engagementagreement.Label}
	default:
		err = &NotSingularError{engagementagreement.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *EngagementAgreementQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of EngagementAgreements.
func (_q *EngagementAgreementQuery) All(ctx context.Context) ([]*EngagementAgreement, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*EngagementAgreement, *EngagementAgreementQuery]()
	return withInterceptors[[]*EngagementAgreement](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *EngagementAgreementQuery) AllX(ctx context.Context) []*EngagementAgreement {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of EngagementAgreement IDs.
func (_q *EngagementAgreementQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(engagementagreement.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *EngagementAgreementQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *EngagementAgreementQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*EngagementAgreementQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *EngagementAgreementQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *EngagementAgreementQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *EngagementAgreementQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EngagementAgreementQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *EngagementAgreementQuery) Clone() *EngagementAgreementQuery {
	if _q == nil {
		return nil
	}
	return &EngagementAgreementQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]engagementagreement.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.EngagementAgreement{}, _q.predicates...),
		withEngagement: _q.withEngagement.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithEngagement tells the query-builder to eager-load the nodes that are connected to
// the "engagement" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EngagementAgreementQuery) WithEngagement(opts ...func(*EngagementQuery)) *EngagementAgreementQuery {
	query := (&EngagementClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEngagement = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		EngagementID string `json:"engagement_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.EngagementAgreement.Query().
//		GroupBy(engagementagreement.FieldEngagementID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *EngagementAgreementQuery) GroupBy(field string, fields ...string) *EngagementAgreementGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EngagementAgreementGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = engagementagreement.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		EngagementID string `json:"engagement_id,omitempty"`
//	}
//
//	client.EngagementAgreement.Query().
//		Select(engagementagreement.FieldEngagementID).
//		Scan(ctx, &v)
func (_q *EngagementAgreementQuery) Select(fields ...string) *EngagementAgreementSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &EngagementAgreementSelect{EngagementAgreementQuery: _q}
	sbuild.label = engagementagreement.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EngagementAgreementSelect configured with the given aggregations.
func (_q *EngagementAgreementQuery) Aggregate(fns ...AggregateFunc) *EngagementAgreementSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *EngagementAgreementQuery) prepareQuery(ctx context.Context) error {
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
		if !engagementagreement.ValidColumn(f) {
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

func (_q *EngagementAgreementQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*EngagementAgreement, error) {
	var (
		nodes       = []*EngagementAgreement{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withEngagement != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*EngagementAgreement).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &EngagementAgreement{config: _q.config}
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
	if query := _q.withEngagement; query != nil {
		if err := _q.loadEngagement(ctx, query, nodes, nil,
			func(n *EngagementAgreement, e *Engagement) { n.Edges.Engagement = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *EngagementAgreementQuery) loadEngagement(ctx context.Context, query *EngagementQuery, nodes []*EngagementAgreement, init func(*EngagementAgreement), assign func(*EngagementAgreement, *Engagement)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*EngagementAgreement)
	for i := range nodes {
		fk := nodes[i].EngagementID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(engagement.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "engagement_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *EngagementAgreementQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *EngagementAgreementQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(engagementagreement.Table, engagementagreement.Columns, sqlgraph.NewFieldSpec(engagementagreement.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, engagementagreement.FieldID)
		for i := range fields {
			if fields[i] != engagementagreement.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withEngagement != nil {
			_spec.Node.AddColumnOnce(engagementagreement.FieldEngagementID)
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

func (_q *EngagementAgreementQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(engagementagreement.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = engagementagreement.Columns
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
func (_q *EngagementAgreementQuery) ForUpdate(opts ...sql.LockOption) *EngagementAgreementQuery {
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
func (_q *EngagementAgreementQuery) ForShare(opts ...sql.LockOption) *EngagementAgreementQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// EngagementAgreementGroupBy is the group-by builder for EngagementAgreement entities.
type EngagementAgreementGroupBy struct {
	selector
	build *EngagementAgreementQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *EngagementAgreementGroupBy) Aggregate(fns ...AggregateFunc) *EngagementAgreementGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *EngagementAgreementGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EngagementAgreementQuery, *EngagementAgreementGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *EngagementAgreementGroupBy) sqlScan(ctx context.Context, root *EngagementAgreementQuery, v any) error {
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

// EngagementAgreementSelect is the builder for selecting fields of EngagementAgreement entities.
type EngagementAgreementSelect struct {
	*EngagementAgreementQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *EngagementAgreementSelect) Aggregate(fns ...AggregateFunc) *EngagementAgreementSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *EngagementAgreementSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EngagementAgreementQuery, *EngagementAgreementSelect](ctx, _s.EngagementAgreementQuery, _s, _s.inters, v)
}

func (_s *EngagementAgreementSelect) sqlScan(ctx context.Context, root *EngagementAgreementQuery, v any) error {
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
