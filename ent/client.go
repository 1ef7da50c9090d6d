// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/rowboat-dev/rowboat/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rowboat-dev/rowboat/ent/cell"
	"github.com/rowboat-dev/rowboat/ent/cellaudit"
	"github.com/rowboat-dev/rowboat/ent/cellstatus"
	"github.com/rowboat-dev/rowboat/ent/column"
	"github.com/rowboat-dev/rowboat/ent/fillevent"
	"github.com/rowboat-dev/rowboat/ent/sheet"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Cell is the client for interacting with the Cell builders.
	Cell *CellClient
	// CellAudit is the client for interacting with the CellAudit builders.
	CellAudit *CellAuditClient
	// CellStatus is the client for interacting with the CellStatus builders.
	CellStatus *CellStatusClient
	// Column is the client for interacting with the Column builders.
	Column *ColumnClient
	// FillEvent is the client for interacting with the FillEvent builders.
	FillEvent *FillEventClient
	// Sheet is the client for interacting with the Sheet builders.
	Sheet *SheetClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Cell = NewCellClient(c.config)
	c.CellAudit = NewCellAuditClient(c.config)
	c.CellStatus = NewCellStatusClient(c.config)
	c.Column = NewColumnClient(c.config)
	c.FillEvent = NewFillEventClient(c.config)
	c.Sheet = NewSheetClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		Cell:       NewCellClient(cfg),
		CellAudit:  NewCellAuditClient(cfg),
		CellStatus: NewCellStatusClient(cfg),
		Column:     NewColumnClient(cfg),
		FillEvent:  NewFillEventClient(cfg),
		Sheet:      NewSheetClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		Cell:       NewCellClient(cfg),
		CellAudit:  NewCellAuditClient(cfg),
		CellStatus: NewCellStatusClient(cfg),
		Column:     NewColumnClient(cfg),
		FillEvent:  NewFillEventClient(cfg),
		Sheet:      NewSheetClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Cell.
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
		c.Cell, c.CellAudit, c.CellStatus, c.Column, c.FillEvent, c.Sheet,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Cell, c.CellAudit, c.CellStatus, c.Column, c.FillEvent, c.Sheet,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CellMutation:
		return c.Cell.mutate(ctx, m)
	case *CellAuditMutation:
		return c.CellAudit.mutate(ctx, m)
	case *CellStatusMutation:
		return c.CellStatus.mutate(ctx, m)
	case *ColumnMutation:
		return c.Column.mutate(ctx, m)
	case *FillEventMutation:
		return c.FillEvent.mutate(ctx, m)
	case *SheetMutation:
		return c.Sheet.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CellClient is a client for the Cell schema.
type CellClient struct {
	config
}

// NewCellClient returns a client for the Cell from the given config.
func NewCellClient(c config) *CellClient {
	return &CellClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cell.Hooks(f(g(h())))`.
func (c *CellClient) Use(hooks ...Hook) {
	c.hooks.Cell = append(c.hooks.Cell, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cell.Intercept(f(g(h())))`.
func (c *CellClient) Intercept(interceptors ...Interceptor) {
	c.inters.Cell = append(c.inters.Cell, interceptors...)
}

// Create returns a builder for creating a Cell entity.
func (c *CellClient) Create() *CellCreate {
	mutation := newCellMutation(c.config, OpCreate)
	return &CellCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Cell entities.
func (c *CellClient) CreateBulk(builders ...*CellCreate) *CellCreateBulk {
	return &CellCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CellClient) MapCreateBulk(slice any, setFunc func(*CellCreate, int)) *CellCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CellCreateBulk{err: fmt.Errorf("calling to CellClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CellCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CellCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Cell.
func (c *CellClient) Update() *CellUpdate {
	mutation := newCellMutation(c.config, OpUpdate)
	return &CellUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CellClient) UpdateOne(_m *Cell) *CellUpdateOne {
	mutation := newCellMutation(c.config, OpUpdateOne, withCell(_m))
	return &CellUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CellClient) UpdateOneID(id string) *CellUpdateOne {
	mutation := newCellMutation(c.config, OpUpdateOne, withCellID(id))
	return &CellUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Cell.
func (c *CellClient) Delete() *CellDelete {
	mutation := newCellMutation(c.config, OpDelete)
	return &CellDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CellClient) DeleteOne(_m *Cell) *CellDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CellClient) DeleteOneID(id string) *CellDeleteOne {
	builder := c.Delete().Where(cell.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CellDeleteOne{builder}
}

// Query returns a query builder for Cell.
func (c *CellClient) Query() *CellQuery {
	return &CellQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCell},
		inters: c.Interceptors(),
	}
}

// Get returns a Cell entity by its id.
func (c *CellClient) Get(ctx context.Context, id string) (*Cell, error) {
	return c.Query().Where(cell.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CellClient) GetX(ctx context.Context, id string) *Cell {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySheet queries the sheet edge of a Cell.
func (c *CellClient) QuerySheet(_m *Cell) *SheetQuery {
	query := (&SheetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cell.Table, cell.FieldID, id),
			sqlgraph.To(sheet.Table, sheet.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cell.SheetTable, cell.SheetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CellClient) Hooks() []Hook {
	return c.hooks.Cell
}

// Interceptors returns the client interceptors.
func (c *CellClient) Interceptors() []Interceptor {
	return c.inters.Cell
}

func (c *CellClient) mutate(ctx context.Context, m *CellMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CellCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CellUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CellUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CellDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Cell mutation op: %q", m.Op())
	}
}

// CellAuditClient is a client for the CellAudit schema.
type CellAuditClient struct {
	config
}

// NewCellAuditClient returns a client for the CellAudit from the given config.
func NewCellAuditClient(c config) *CellAuditClient {
	return &CellAuditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cellaudit.Hooks(f(g(h())))`.
func (c *CellAuditClient) Use(hooks ...Hook) {
	c.hooks.CellAudit = append(c.hooks.CellAudit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cellaudit.Intercept(f(g(h())))`.
func (c *CellAuditClient) Intercept(interceptors ...Interceptor) {
	c.inters.CellAudit = append(c.inters.CellAudit, interceptors...)
}

// Create returns a builder for creating a CellAudit entity.
func (c *CellAuditClient) Create() *CellAuditCreate {
	mutation := newCellAuditMutation(c.config, OpCreate)
	return &CellAuditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CellAudit entities.
func (c *CellAuditClient) CreateBulk(builders ...*CellAuditCreate) *CellAuditCreateBulk {
	return &CellAuditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CellAuditClient) MapCreateBulk(slice any, setFunc func(*CellAuditCreate, int)) *CellAuditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CellAuditCreateBulk{err: fmt.Errorf("calling to CellAuditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CellAuditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CellAuditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CellAudit.
func (c *CellAuditClient) Update() *CellAuditUpdate {
	mutation := newCellAuditMutation(c.config, OpUpdate)
	return &CellAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CellAuditClient) UpdateOne(_m *CellAudit) *CellAuditUpdateOne {
	mutation := newCellAuditMutation(c.config, OpUpdateOne, withCellAudit(_m))
	return &CellAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CellAuditClient) UpdateOneID(id string) *CellAuditUpdateOne {
	mutation := newCellAuditMutation(c.config, OpUpdateOne, withCellAuditID(id))
	return &CellAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CellAudit.
func (c *CellAuditClient) Delete() *CellAuditDelete {
	mutation := newCellAuditMutation(c.config, OpDelete)
	return &CellAuditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CellAuditClient) DeleteOne(_m *CellAudit) *CellAuditDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CellAuditClient) DeleteOneID(id string) *CellAuditDeleteOne {
	builder := c.Delete().Where(cellaudit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CellAuditDeleteOne{builder}
}

// Query returns a query builder for CellAudit.
func (c *CellAuditClient) Query() *CellAuditQuery {
	return &CellAuditQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCellAudit},
		inters: c.Interceptors(),
	}
}

// Get returns a CellAudit entity by its id.
func (c *CellAuditClient) Get(ctx context.Context, id string) (*CellAudit, error) {
	return c.Query().Where(cellaudit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CellAuditClient) GetX(ctx context.Context, id string) *CellAudit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CellAuditClient) Hooks() []Hook {
	return c.hooks.CellAudit
}

// Interceptors returns the client interceptors.
func (c *CellAuditClient) Interceptors() []Interceptor {
	return c.inters.CellAudit
}

func (c *CellAuditClient) mutate(ctx context.Context, m *CellAuditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CellAuditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CellAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CellAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CellAuditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CellAudit mutation op: %q", m.Op())
	}
}

// CellStatusClient is a client for the CellStatus schema.
type CellStatusClient struct {
	config
}

// NewCellStatusClient returns a client for the CellStatus from the given config.
func NewCellStatusClient(c config) *CellStatusClient {
	return &CellStatusClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cellstatus.Hooks(f(g(h())))`.
func (c *CellStatusClient) Use(hooks ...Hook) {
	c.hooks.CellStatus = append(c.hooks.CellStatus, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cellstatus.Intercept(f(g(h())))`.
func (c *CellStatusClient) Intercept(interceptors ...Interceptor) {
	c.inters.CellStatus = append(c.inters.CellStatus, interceptors...)
}

// Create returns a builder for creating a CellStatus entity.
func (c *CellStatusClient) Create() *CellStatusCreate {
	mutation := newCellStatusMutation(c.config, OpCreate)
	return &CellStatusCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CellStatus entities.
func (c *CellStatusClient) CreateBulk(builders ...*CellStatusCreate) *CellStatusCreateBulk {
	return &CellStatusCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CellStatusClient) MapCreateBulk(slice any, setFunc func(*CellStatusCreate, int)) *CellStatusCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CellStatusCreateBulk{err: fmt.Errorf("calling to CellStatusClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CellStatusCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CellStatusCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CellStatus.
func (c *CellStatusClient) Update() *CellStatusUpdate {
	mutation := newCellStatusMutation(c.config, OpUpdate)
	return &CellStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CellStatusClient) UpdateOne(_m *CellStatus) *CellStatusUpdateOne {
	mutation := newCellStatusMutation(c.config, OpUpdateOne, withCellStatus(_m))
	return &CellStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CellStatusClient) UpdateOneID(id string) *CellStatusUpdateOne {
	mutation := newCellStatusMutation(c.config, OpUpdateOne, withCellStatusID(id))
	return &CellStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CellStatus.
func (c *CellStatusClient) Delete() *CellStatusDelete {
	mutation := newCellStatusMutation(c.config, OpDelete)
	return &CellStatusDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CellStatusClient) DeleteOne(_m *CellStatus) *CellStatusDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CellStatusClient) DeleteOneID(id string) *CellStatusDeleteOne {
	builder := c.Delete().Where(cellstatus.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CellStatusDeleteOne{builder}
}

// Query returns a query builder for CellStatus.
func (c *CellStatusClient) Query() *CellStatusQuery {
	return &CellStatusQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCellStatus},
		inters: c.Interceptors(),
	}
}

// Get returns a CellStatus entity by its id.
func (c *CellStatusClient) Get(ctx context.Context, id string) (*CellStatus, error) {
	return c.Query().Where(cellstatus.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CellStatusClient) GetX(ctx context.Context, id string) *CellStatus {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySheet queries the sheet edge of a CellStatus.
func (c *CellStatusClient) QuerySheet(_m *CellStatus) *SheetQuery {
	query := (&SheetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cellstatus.Table, cellstatus.FieldID, id),
			sqlgraph.To(sheet.Table, sheet.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cellstatus.SheetTable, cellstatus.SheetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CellStatusClient) Hooks() []Hook {
	return c.hooks.CellStatus
}

// Interceptors returns the client interceptors.
func (c *CellStatusClient) Interceptors() []Interceptor {
	return c.inters.CellStatus
}

func (c *CellStatusClient) mutate(ctx context.Context, m *CellStatusMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CellStatusCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CellStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CellStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CellStatusDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CellStatus mutation op: %q", m.Op())
	}
}

// ColumnClient is a client for the Column schema.
type ColumnClient struct {
	config
}

// NewColumnClient returns a client for the Column from the given config.
func NewColumnClient(c config) *ColumnClient {
	return &ColumnClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `column.Hooks(f(g(h())))`.
func (c *ColumnClient) Use(hooks ...Hook) {
	c.hooks.Column = append(c.hooks.Column, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `column.Intercept(f(g(h())))`.
func (c *ColumnClient) Intercept(interceptors ...Interceptor) {
	c.inters.Column = append(c.inters.Column, interceptors...)
}

// Create returns a builder for creating a Column entity.
func (c *ColumnClient) Create() *ColumnCreate {
	mutation := newColumnMutation(c.config, OpCreate)
	return &ColumnCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Column entities.
func (c *ColumnClient) CreateBulk(builders ...*ColumnCreate) *ColumnCreateBulk {
	return &ColumnCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ColumnClient) MapCreateBulk(slice any, setFunc func(*ColumnCreate, int)) *ColumnCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ColumnCreateBulk{err: fmt.Errorf("calling to ColumnClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ColumnCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ColumnCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Column.
func (c *ColumnClient) Update() *ColumnUpdate {
	mutation := newColumnMutation(c.config, OpUpdate)
	return &ColumnUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ColumnClient) UpdateOne(_m *Column) *ColumnUpdateOne {
	mutation := newColumnMutation(c.config, OpUpdateOne, withColumn(_m))
	return &ColumnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ColumnClient) UpdateOneID(id string) *ColumnUpdateOne {
	mutation := newColumnMutation(c.config, OpUpdateOne, withColumnID(id))
	return &ColumnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Column.
func (c *ColumnClient) Delete() *ColumnDelete {
	mutation := newColumnMutation(c.config, OpDelete)
	return &ColumnDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ColumnClient) DeleteOne(_m *Column) *ColumnDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ColumnClient) DeleteOneID(id string) *ColumnDeleteOne {
	builder := c.Delete().Where(column.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ColumnDeleteOne{builder}
}

// Query returns a query builder for Column.
func (c *ColumnClient) Query() *ColumnQuery {
	return &ColumnQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeColumn},
		inters: c.Interceptors(),
	}
}

// Get returns a Column entity by its id.
func (c *ColumnClient) Get(ctx context.Context, id string) (*Column, error) {
	return c.Query().Where(column.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ColumnClient) GetX(ctx context.Context, id string) *Column {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySheet queries the sheet edge of a Column.
func (c *ColumnClient) QuerySheet(_m *Column) *SheetQuery {
	query := (&SheetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(column.Table, column.FieldID, id),
			sqlgraph.To(sheet.Table, sheet.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, column.SheetTable, column.SheetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ColumnClient) Hooks() []Hook {
	return c.hooks.Column
}

// Interceptors returns the client interceptors.
func (c *ColumnClient) Interceptors() []Interceptor {
	return c.inters.Column
}

func (c *ColumnClient) mutate(ctx context.Context, m *ColumnMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ColumnCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ColumnUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ColumnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ColumnDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Column mutation op: %q", m.Op())
	}
}

// FillEventClient is a client for the FillEvent schema.
type FillEventClient struct {
	config
}

// NewFillEventClient returns a client for the FillEvent from the given config.
func NewFillEventClient(c config) *FillEventClient {
	return &FillEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fillevent.Hooks(f(g(h())))`.
func (c *FillEventClient) Use(hooks ...Hook) {
	c.hooks.FillEvent = append(c.hooks.FillEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fillevent.Intercept(f(g(h())))`.
func (c *FillEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.FillEvent = append(c.inters.FillEvent, interceptors...)
}

// Create returns a builder for creating a FillEvent entity.
func (c *FillEventClient) Create() *FillEventCreate {
	mutation := newFillEventMutation(c.config, OpCreate)
	return &FillEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FillEvent entities.
func (c *FillEventClient) CreateBulk(builders ...*FillEventCreate) *FillEventCreateBulk {
	return &FillEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FillEventClient) MapCreateBulk(slice any, setFunc func(*FillEventCreate, int)) *FillEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FillEventCreateBulk{err: fmt.Errorf("calling to FillEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FillEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FillEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FillEvent.
func (c *FillEventClient) Update() *FillEventUpdate {
	mutation := newFillEventMutation(c.config, OpUpdate)
	return &FillEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FillEventClient) UpdateOne(_m *FillEvent) *FillEventUpdateOne {
	mutation := newFillEventMutation(c.config, OpUpdateOne, withFillEvent(_m))
	return &FillEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FillEventClient) UpdateOneID(id string) *FillEventUpdateOne {
	mutation := newFillEventMutation(c.config, OpUpdateOne, withFillEventID(id))
	return &FillEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FillEvent.
func (c *FillEventClient) Delete() *FillEventDelete {
	mutation := newFillEventMutation(c.config, OpDelete)
	return &FillEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FillEventClient) DeleteOne(_m *FillEvent) *FillEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FillEventClient) DeleteOneID(id string) *FillEventDeleteOne {
	builder := c.Delete().Where(fillevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FillEventDeleteOne{builder}
}

// Query returns a query builder for FillEvent.
func (c *FillEventClient) Query() *FillEventQuery {
	return &FillEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFillEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a FillEvent entity by its id.
func (c *FillEventClient) Get(ctx context.Context, id string) (*FillEvent, error) {
	return c.Query().Where(fillevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FillEventClient) GetX(ctx context.Context, id string) *FillEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FillEventClient) Hooks() []Hook {
	return c.hooks.FillEvent
}

// Interceptors returns the client interceptors.
func (c *FillEventClient) Interceptors() []Interceptor {
	return c.inters.FillEvent
}

func (c *FillEventClient) mutate(ctx context.Context, m *FillEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FillEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FillEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FillEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FillEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FillEvent mutation op: %q", m.Op())
	}
}

// SheetClient is a client for the Sheet schema.
type SheetClient struct {
	config
}

// NewSheetClient returns a client for the Sheet from the given config.
func NewSheetClient(c config) *SheetClient {
	return &SheetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sheet.Hooks(f(g(h())))`.
func (c *SheetClient) Use(hooks ...Hook) {
	c.hooks.Sheet = append(c.hooks.Sheet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sheet.Intercept(f(g(h())))`.
func (c *SheetClient) Intercept(interceptors ...Interceptor) {
	c.inters.Sheet = append(c.inters.Sheet, interceptors...)
}

// Create returns a builder for creating a Sheet entity.
func (c *SheetClient) Create() *SheetCreate {
	mutation := newSheetMutation(c.config, OpCreate)
	return &SheetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Sheet entities.
func (c *SheetClient) CreateBulk(builders ...*SheetCreate) *SheetCreateBulk {
	return &SheetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SheetClient) MapCreateBulk(slice any, setFunc func(*SheetCreate, int)) *SheetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SheetCreateBulk{err: fmt.Errorf("calling to SheetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SheetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SheetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Sheet.
func (c *SheetClient) Update() *SheetUpdate {
	mutation := newSheetMutation(c.config, OpUpdate)
	return &SheetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SheetClient) UpdateOne(_m *Sheet) *SheetUpdateOne {
	mutation := newSheetMutation(c.config, OpUpdateOne, withSheet(_m))
	return &SheetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SheetClient) UpdateOneID(id string) *SheetUpdateOne {
	mutation := newSheetMutation(c.config, OpUpdateOne, withSheetID(id))
	return &SheetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Sheet.
func (c *SheetClient) Delete() *SheetDelete {
	mutation := newSheetMutation(c.config, OpDelete)
	return &SheetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SheetClient) DeleteOne(_m *Sheet) *SheetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SheetClient) DeleteOneID(id string) *SheetDeleteOne {
	builder := c.Delete().Where(sheet.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SheetDeleteOne{builder}
}

// Query returns a query builder for Sheet.
func (c *SheetClient) Query() *SheetQuery {
	return &SheetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSheet},
		inters: c.Interceptors(),
	}
}

// Get returns a Sheet entity by its id.
func (c *SheetClient) Get(ctx context.Context, id string) (*Sheet, error) {
	return c.Query().Where(sheet.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SheetClient) GetX(ctx context.Context, id string) *Sheet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryColumns queries the columns edge of a Sheet.
func (c *SheetClient) QueryColumns(_m *Sheet) *ColumnQuery {
	query := (&ColumnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sheet.Table, sheet.FieldID, id),
			sqlgraph.To(column.Table, column.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sheet.ColumnsTable, sheet.ColumnsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCells queries the cells edge of a Sheet.
func (c *SheetClient) QueryCells(_m *Sheet) *CellQuery {
	query := (&CellClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sheet.Table, sheet.FieldID, id),
			sqlgraph.To(cell.Table, cell.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sheet.CellsTable, sheet.CellsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCellStatuses queries the cell_statuses edge of a Sheet.
func (c *SheetClient) QueryCellStatuses(_m *Sheet) *CellStatusQuery {
	query := (&CellStatusClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sheet.Table, sheet.FieldID, id),
			sqlgraph.To(cellstatus.Table, cellstatus.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sheet.CellStatusesTable, sheet.CellStatusesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SheetClient) Hooks() []Hook {
	return c.hooks.Sheet
}

// Interceptors returns the client interceptors.
func (c *SheetClient) Interceptors() []Interceptor {
	return c.inters.Sheet
}

func (c *SheetClient) mutate(ctx context.Context, m *SheetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SheetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SheetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SheetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SheetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Sheet mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Cell, CellAudit, CellStatus, Column, FillEvent, Sheet []ent.Hook
	}
	inters struct {
		Cell, CellAudit, CellStatus, Column, FillEvent, Sheet []ent.Interceptor
	}
)
