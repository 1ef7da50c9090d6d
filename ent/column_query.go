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
	"github.com/rowboat-dev/rowboat/ent/column"
	"github.com/rowboat-dev/rowboat/ent/predicate"
	"github.com/rowboat-dev/rowboat/ent/sheet"
)

// ColumnQuery is the builder for querying Column entities.
type ColumnQuery struct {
	config
	ctx        *QueryContext
	order      []column.OrderOption
	inters     []Interceptor
	predicates []predicate.Column
	withSheet  *SheetQuery
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ColumnQuery builder.
func (_q *ColumnQuery) Where(ps ...predicate.Column) *ColumnQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ColumnQuery) Limit(limit int) *ColumnQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ColumnQuery) Offset(offset int) *ColumnQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ColumnQuery) Unique(unique bool) *ColumnQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ColumnQuery) Order(o ...column.OrderOption) *ColumnQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySheet chains the current query on the "sheet" edge.
func (_q *ColumnQuery) QuerySheet() *SheetQuery {
	query := (&SheetClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(column.Table, column.FieldID, selector),
			sqlgraph.To(sheet.Table, sheet.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, column.SheetTable, column.SheetColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Column entity from the query.
// Returns a *NotFoundError when no Column was found.
func (_q *ColumnQuery) First(ctx context.Context) (*Column, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{column.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ColumnQuery) FirstX(ctx context.Context) *Column {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Column ID from the query.
// Returns a *NotFoundError when no Column ID was found.
func (_q *ColumnQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{column.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ColumnQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Column entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Column entity is found.
// Returns a *NotFoundError when no Column entities are found.
func (_q *ColumnQuery) Only(ctx context.Context) (*Column, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{column.Label}
	default:
		return nil, &NotSingularError{column.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ColumnQuery) OnlyX(ctx context.Context) *Column {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Column ID in the query.
// Returns a *NotSingularError when more than one Column ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ColumnQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{column.Label}
	default:
		err = &NotSingularError{column.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ColumnQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Columns.
func (_q *ColumnQuery) All(ctx context.Context) ([]*Column, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Column, *ColumnQuery]()
	return withInterceptors[[]*Column](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ColumnQuery) AllX(ctx context.Context) []*Column {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Column IDs.
func (_q *ColumnQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(column.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ColumnQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ColumnQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ColumnQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ColumnQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ColumnQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ColumnQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ColumnQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ColumnQuery) Clone() *ColumnQuery {
	if _q == nil {
		return nil
	}
	return &ColumnQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]column.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.Column{}, _q.predicates...),
		withSheet:  _q.withSheet.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSheet tells the query-builder to eager-load the nodes that are connected to
// the "sheet" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ColumnQuery) WithSheet(opts ...func(*SheetQuery)) *ColumnQuery {
	query := (&SheetClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSheet = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SheetID string `json:"sheet_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Column.Query().
//		GroupBy(column.FieldSheetID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ColumnQuery) GroupBy(field string, fields ...string) *ColumnGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ColumnGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = column.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SheetID string `json:"sheet_id,omitempty"`
//	}
//
//	client.Column.Query().
//		Select(column.FieldSheetID).
//		Scan(ctx, &v)
func (_q *ColumnQuery) Select(fields ...string) *ColumnSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ColumnSelect{ColumnQuery: _q}
	sbuild.label = column.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ColumnSelect configured with the given aggregations.
func (_q *ColumnQuery) Aggregate(fns ...AggregateFunc) *ColumnSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ColumnQuery) prepareQuery(ctx context.Context) error {
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
		if !column.ValidColumn(f) {
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

func (_q *ColumnQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Column, error) {
	var (
		nodes       = []*Column{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withSheet != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Column).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Column{config: _q.config}
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
	if query := _q.withSheet; query != nil {
		if err := _q.loadSheet(ctx, query, nodes, nil,
			func(n *Column, e *Sheet) { n.Edges.Sheet = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ColumnQuery) loadSheet(ctx context.Context, query *SheetQuery, nodes []*Column, init func(*Column), assign func(*Column, *Sheet)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Column)
	for i := range nodes {
		fk := nodes[i].SheetID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(sheet.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "sheet_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ColumnQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *ColumnQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(column.Table, column.Columns, sqlgraph.NewFieldSpec(column.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, column.FieldID)
		for i := range fields {
			if fields[i] != column.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSheet != nil {
			_spec.Node.AddColumnOnce(column.FieldSheetID)
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

func (_q *ColumnQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(column.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = column.Columns
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
func (_q *ColumnQuery) ForUpdate(opts ...sql.LockOption) *ColumnQuery {
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
func (_q *ColumnQuery) ForShare(opts ...sql.LockOption) *ColumnQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ColumnGroupBy is the group-by builder for Column entities.
type ColumnGroupBy struct {
	selector
	build *ColumnQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ColumnGroupBy) Aggregate(fns ...AggregateFunc) *ColumnGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ColumnGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ColumnQuery, *ColumnGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ColumnGroupBy) sqlScan(ctx context.Context, root *ColumnQuery, v any) error {
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

// ColumnSelect is the builder for selecting fields of Column entities.
type ColumnSelect struct {
	*ColumnQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ColumnSelect) Aggregate(fns ...AggregateFunc) *ColumnSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ColumnSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ColumnQuery, *ColumnSelect](ctx, _s.ColumnQuery, _s, _s.inters, v)
}

func (_s *ColumnSelect) sqlScan(ctx context.Context, root *ColumnQuery, v any) error {
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
