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
	"github.com/rowboat-dev/rowboat/ent/cell"
	"github.com/rowboat-dev/rowboat/ent/cellstatus"
	"github.com/rowboat-dev/rowboat/ent/column"
	"github.com/rowboat-dev/rowboat/ent/predicate"
	"github.com/rowboat-dev/rowboat/ent/sheet"
)

// SheetQuery is the builder for querying Sheet entities.
type SheetQuery struct {
	config
	ctx              *QueryContext
	order            []sheet.OrderOption
	inters           []Interceptor
	predicates       []predicate.Sheet
	withColumns      *ColumnQuery
	withCells        *CellQuery
	withCellStatuses *CellStatusQuery
	modifiers        []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SheetQuery builder.
func (_q *SheetQuery) Where(ps ...predicate.Sheet) *SheetQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SheetQuery) Limit(limit int) *SheetQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SheetQuery) Offset(offset int) *SheetQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SheetQuery) Unique(unique bool) *SheetQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SheetQuery) Order(o ...sheet.OrderOption) *SheetQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryColumns chains the current query on the "columns" edge.
func (_q *SheetQuery) QueryColumns() *ColumnQuery {
	query := (&ColumnClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sheet.Table, sheet.FieldID, selector),
			sqlgraph.To(column.Table, column.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sheet.ColumnsTable, sheet.ColumnsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCells chains the current query on the "cells" edge.
func (_q *SheetQuery) QueryCells() *CellQuery {
	query := (&CellClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sheet.Table, sheet.FieldID, selector),
			sqlgraph.To(cell.Table, cell.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sheet.CellsTable, sheet.CellsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCellStatuses chains the current query on the "cell_statuses" edge.
func (_q *SheetQuery) QueryCellStatuses() *CellStatusQuery {
	query := (&CellStatusClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sheet.Table, sheet.FieldID, selector),
			sqlgraph.To(cellstatus.Table, cellstatus.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sheet.CellStatusesTable, sheet.CellStatusesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Sheet entity from the query.
// Returns a *NotFoundError when no Sheet was found.
func (_q *SheetQuery) First(ctx context.Context) (*Sheet, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{sheet.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SheetQuery) FirstX(ctx context.Context) *Sheet {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Sheet ID from the query.
// Returns a *NotFoundError when no Sheet ID was found.
func (_q *SheetQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{sheet.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SheetQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Sheet entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Sheet entity is found.
// Returns a *NotFoundError when no Sheet entities are found.
func (_q *SheetQuery) Only(ctx context.Context) (*Sheet, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{sheet.Label}
	default:
		return nil, &NotSingularError{sheet.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SheetQuery) OnlyX(ctx context.Context) *Sheet {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Sheet ID in the query.
// Returns a *NotSingularError when more than one Sheet ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SheetQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{sheet.Label}
	default:
		err = &NotSingularError{sheet.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SheetQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Sheets.
func (_q *SheetQuery) All(ctx context.Context) ([]*Sheet, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Sheet, *SheetQuery]()
	return withInterceptors[[]*Sheet](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SheetQuery) AllX(ctx context.Context) []*Sheet {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Sheet IDs.
func (_q *SheetQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(sheet.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SheetQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SheetQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SheetQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SheetQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SheetQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SheetQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SheetQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SheetQuery) Clone() *SheetQuery {
	if _q == nil {
		return nil
	}
	return &SheetQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]sheet.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.Sheet{}, _q.predicates...),
		withColumns:      _q.withColumns.Clone(),
		withCells:        _q.withCells.Clone(),
		withCellStatuses: _q.withCellStatuses.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithColumns tells the query-builder to eager-load the nodes that are connected to
// the "columns" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SheetQuery) WithColumns(opts ...func(*ColumnQuery)) *SheetQuery {
	query := (&ColumnClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withColumns = query
	return _q
}

// WithCells tells the query-builder to eager-load the nodes that are connected to
// the "cells" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SheetQuery) WithCells(opts ...func(*CellQuery)) *SheetQuery {
	query := (&CellClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCells = query
	return _q
}

// WithCellStatuses tells the query-builder to eager-load the nodes that are connected to
// the "cell_statuses" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SheetQuery) WithCellStatuses(opts ...func(*CellStatusQuery)) *SheetQuery {
	query := (&CellStatusClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCellStatuses = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TemplateType sheet.TemplateType `json:"template_type,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Sheet.Query().
//		GroupBy(sheet.FieldTemplateType).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SheetQuery) GroupBy(field string, fields ...string) *SheetGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SheetGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = sheet.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TemplateType sheet.TemplateType `json:"template_type,omitempty"`
//	}
//
//	client.Sheet.Query().
//		Select(sheet.FieldTemplateType).
//		Scan(ctx, &v)
func (_q *SheetQuery) Select(fields ...string) *SheetSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SheetSelect{SheetQuery: _q}
	sbuild.label = sheet.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SheetSelect configured with the given aggregations.
func (_q *SheetQuery) Aggregate(fns ...AggregateFunc) *SheetSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SheetQuery) prepareQuery(ctx context.Context) error {
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
		if !sheet.ValidColumn(f) {
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

func (_q *SheetQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Sheet, error) {
	var (
		nodes       = []*Sheet{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withColumns != nil,
			_q.withCells != nil,
			_q.withCellStatuses != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Sheet).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Sheet{config: _q.config}
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
	if query := _q.withColumns; query != nil {
		if err := _q.loadColumns(ctx, query, nodes,
			func(n *Sheet) { n.Edges.Columns = []*Column{} },
			func(n *Sheet, e *Column) { n.Edges.Columns = append(n.Edges.Columns, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCells; query != nil {
		if err := _q.loadCells(ctx, query, nodes,
			func(n *Sheet) { n.Edges.Cells = []*Cell{} },
			func(n *Sheet, e *Cell) { n.Edges.Cells = append(n.Edges.Cells, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCellStatuses; query != nil {
		if err := _q.loadCellStatuses(ctx, query, nodes,
			func(n *Sheet) { n.Edges.CellStatuses = []*CellStatus{} },
			func(n *Sheet, e *CellStatus) { n.Edges.CellStatuses = append(n.Edges.CellStatuses, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SheetQuery) loadColumns(ctx context.Context, query *ColumnQuery, nodes []*Sheet, init func(*Sheet), assign func(*Sheet, *Column)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Sheet)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(column.FieldSheetID)
	}
	query.Where(predicate.Column(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(sheet.ColumnsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SheetID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "sheet_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SheetQuery) loadCells(ctx context.Context, query *CellQuery, nodes []*Sheet, init func(*Sheet), assign func(*Sheet, *Cell)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Sheet)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(cell.FieldSheetID)
	}
	query.Where(predicate.Cell(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(sheet.CellsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SheetID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "sheet_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SheetQuery) loadCellStatuses(ctx context.Context, query *CellStatusQuery, nodes []*Sheet, init func(*Sheet), assign func(*Sheet, *CellStatus)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Sheet)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(cellstatus.FieldSheetID)
	}
	query.Where(predicate.CellStatus(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(sheet.CellStatusesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SheetID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "sheet_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SheetQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *SheetQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(sheet.Table, sheet.Columns, sqlgraph.NewFieldSpec(sheet.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sheet.FieldID)
		for i := range fields {
			if fields[i] != sheet.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *SheetQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(sheet.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = sheet.Columns
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
func (_q *SheetQuery) ForUpdate(opts ...sql.LockOption) *SheetQuery {
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
func (_q *SheetQuery) ForShare(opts ...sql.LockOption) *SheetQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// SheetGroupBy is the group-by builder for Sheet entities.
type SheetGroupBy struct {
	selector
	build *SheetQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SheetGroupBy) Aggregate(fns ...AggregateFunc) *SheetGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SheetGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SheetQuery, *SheetGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SheetGroupBy) sqlScan(ctx context.Context, root *SheetQuery, v any) error {
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

// SheetSelect is the builder for selecting fields of Sheet entities.
type SheetSelect struct {
	*SheetQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SheetSelect) Aggregate(fns ...AggregateFunc) *SheetSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SheetSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SheetQuery, *SheetSelect](ctx, _s.SheetQuery, _s, _s.inters, v)
}

func (_s *SheetSelect) sqlScan(ctx context.Context, root *SheetQuery, v any) error {
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
