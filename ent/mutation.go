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
	"github.com/rowboat-dev/rowboat/ent/cell"
	"github.com/rowboat-dev/rowboat/ent/cellaudit"
	"github.com/rowboat-dev/rowboat/ent/cellstatus"
	"github.com/rowboat-dev/rowboat/ent/column"
	"github.com/rowboat-dev/rowboat/ent/fillevent"
	"github.com/rowboat-dev/rowboat/ent/predicate"
	"github.com/rowboat-dev/rowboat/ent/sheet"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCell       = "Cell"
	TypeCellAudit  = "CellAudit"
	TypeCellStatus = "CellStatus"
	TypeColumn     = "Column"
	TypeFillEvent  = "FillEvent"
	TypeSheet      = "Sheet"
)

// CellMutation represents an operation that mutates the Cell nodes in the graph.
type CellMutation struct {
	config
	op            Op
	typ           string
	id            *string
	row_index     *int
	addrow_index  *int
	col_index     *int
	addcol_index  *int
	content       *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	sheet         *string
	clearedsheet  bool
	done          bool
	oldValue      func(context.Context) (*Cell, error)
	predicates    []predicate.Cell
}

var _ ent.Mutation = (*CellMutation)(nil)

// cellOption allows management of the mutation configuration using functional options.
type cellOption func(*CellMutation)

// newCellMutation creates new mutation for the Cell entity.
func newCellMutation(c config, op Op, opts ...cellOption) *CellMutation {
	m := &CellMutation{
		config:        c,
		op:            op,
		typ:           TypeCell,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCellID sets the ID field of the mutation.
func withCellID(id string) cellOption {
	return func(m *CellMutation) {
		var (
			err   error
			once  sync.Once
			value *Cell
		)
		m.oldValue = func(ctx context.Context) (*Cell, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Cell.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCell sets the old Cell of the mutation.
func withCell(node *Cell) cellOption {
	return func(m *CellMutation) {
		m.oldValue = func(context.Context) (*Cell, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CellMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CellMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Cell entities.
func (m *CellMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CellMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CellMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Cell.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSheetID sets the "sheet_id" field.
func (m *CellMutation) SetSheetID(s string) {
	m.sheet = &s
}

// SheetID returns the value of the "sheet_id" field in the mutation.
func (m *CellMutation) SheetID() (r string, exists bool) {
	v := m.sheet
	if v == nil {
		return
	}
	return *v, true
}

// OldSheetID returns the old "sheet_id" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldSheetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSheetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSheetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSheetID: %w", err)
	}
	return oldValue.SheetID, nil
}

// ResetSheetID resets all changes to the "sheet_id" field.
func (m *CellMutation) ResetSheetID() {
	m.sheet = nil
}

// SetRowIndex sets the "row_index" field.
func (m *CellMutation) SetRowIndex(i int) {
	m.row_index = &i
	m.addrow_index = nil
}

// RowIndex returns the value of the "row_index" field in the mutation.
func (m *CellMutation) RowIndex() (r int, exists bool) {
	v := m.row_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRowIndex returns the old "row_index" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldRowIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowIndex: %w", err)
	}
	return oldValue.RowIndex, nil
}

// AddRowIndex adds i to the "row_index" field.
func (m *CellMutation) AddRowIndex(i int) {
	if m.addrow_index != nil {
		*m.addrow_index += i
	} else {
		m.addrow_index = &i
	}
}

// AddedRowIndex returns the value that was added to the "row_index" field in this mutation.
func (m *CellMutation) AddedRowIndex() (r int, exists bool) {
	v := m.addrow_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowIndex resets all changes to the "row_index" field.
func (m *CellMutation) ResetRowIndex() {
	m.row_index = nil
	m.addrow_index = nil
}

// SetColIndex sets the "col_index" field.
func (m *CellMutation) SetColIndex(i int) {
	m.col_index = &i
	m.addcol_index = nil
}

// ColIndex returns the value of the "col_index" field in the mutation.
func (m *CellMutation) ColIndex() (r int, exists bool) {
	v := m.col_index
	if v == nil {
		return
	}
	return *v, true
}

// OldColIndex returns the old "col_index" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldColIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColIndex: %w", err)
	}
	return oldValue.ColIndex, nil
}

// AddColIndex adds i to the "col_index" field.
func (m *CellMutation) AddColIndex(i int) {
	if m.addcol_index != nil {
		*m.addcol_index += i
	} else {
		m.addcol_index = &i
	}
}

// AddedColIndex returns the value that was added to the "col_index" field in this mutation.
func (m *CellMutation) AddedColIndex() (r int, exists bool) {
	v := m.addcol_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetColIndex resets all changes to the "col_index" field.
func (m *CellMutation) ResetColIndex() {
	m.col_index = nil
	m.addcol_index = nil
}

// SetContent sets the "content" field.
func (m *CellMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CellMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldContent(ctx context.Context) (v string, err error) {
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
func (m *CellMutation) ResetContent() {
	m.content = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CellMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CellMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CellMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSheet clears the "sheet" edge to the Sheet entity.
func (m *CellMutation) ClearSheet() {
	m.clearedsheet = true
	m.clearedFields[cell.FieldSheetID] = struct{}{}
}

// SheetCleared reports if the "sheet" edge to the Sheet entity was cleared.
func (m *CellMutation) SheetCleared() bool {
	return m.clearedsheet
}

// SheetIDs returns the "sheet" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SheetID instead. It exists only for internal usage by the builders.
func (m *CellMutation) SheetIDs() (ids []string) {
	if id := m.sheet; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSheet resets all changes to the "sheet" edge.
func (m *CellMutation) ResetSheet() {
	m.sheet = nil
	m.clearedsheet = false
}

// Where appends a list predicates to the CellMutation builder.
func (m *CellMutation) Where(ps ...predicate.Cell) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CellMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CellMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Cell, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CellMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CellMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Cell).
func (m *CellMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CellMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.sheet != nil {
		fields = append(fields, cell.FieldSheetID)
	}
	if m.row_index != nil {
		fields = append(fields, cell.FieldRowIndex)
	}
	if m.col_index != nil {
		fields = append(fields, cell.FieldColIndex)
	}
	if m.content != nil {
		fields = append(fields, cell.FieldContent)
	}
	if m.updated_at != nil {
		fields = append(fields, cell.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CellMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cell.FieldSheetID:
		return m.SheetID()
	case cell.FieldRowIndex:
		return m.RowIndex()
	case cell.FieldColIndex:
		return m.ColIndex()
	case cell.FieldContent:
		return m.Content()
	case cell.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CellMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cell.FieldSheetID:
		return m.OldSheetID(ctx)
	case cell.FieldRowIndex:
		return m.OldRowIndex(ctx)
	case cell.FieldColIndex:
		return m.OldColIndex(ctx)
	case cell.FieldContent:
		return m.OldContent(ctx)
	case cell.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Cell field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CellMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cell.FieldSheetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSheetID(v)
		return nil
	case cell.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowIndex(v)
		return nil
	case cell.FieldColIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColIndex(v)
		return nil
	case cell.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case cell.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Cell field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CellMutation) AddedFields() []string {
	var fields []string
	if m.addrow_index != nil {
		fields = append(fields, cell.FieldRowIndex)
	}
	if m.addcol_index != nil {
		fields = append(fields, cell.FieldColIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CellMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cell.FieldRowIndex:
		return m.AddedRowIndex()
	case cell.FieldColIndex:
		return m.AddedColIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CellMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cell.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowIndex(v)
		return nil
	case cell.FieldColIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddColIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Cell numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CellMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CellMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CellMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Cell nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CellMutation) ResetField(name string) error {
	switch name {
	case cell.FieldSheetID:
		m.ResetSheetID()
		return nil
	case cell.FieldRowIndex:
		m.ResetRowIndex()
		return nil
	case cell.FieldColIndex:
		m.ResetColIndex()
		return nil
	case cell.FieldContent:
		m.ResetContent()
		return nil
	case cell.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Cell field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CellMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sheet != nil {
		edges = append(edges, cell.EdgeSheet)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CellMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cell.EdgeSheet:
		if id := m.sheet; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CellMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CellMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CellMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsheet {
		edges = append(edges, cell.EdgeSheet)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CellMutation) EdgeCleared(name string) bool {
	switch name {
	case cell.EdgeSheet:
		return m.clearedsheet
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CellMutation) ClearEdge(name string) error {
	switch name {
	case cell.EdgeSheet:
		m.ClearSheet()
		return nil
	}
	return fmt.Errorf("unknown Cell unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CellMutation) ResetEdge(name string) error {
	switch name {
	case cell.EdgeSheet:
		m.ResetSheet()
		return nil
	}
	return fmt.Errorf("unknown Cell edge %s", name)
}

// CellAuditMutation represents an operation that mutates the CellAudit nodes in the graph.
type CellAuditMutation struct {
	config
	op            Op
	typ           string
	id            *string
	sheet_id      *string
	row_index     *int
	addrow_index  *int
	col_index     *int
	addcol_index  *int
	content       *string
	update_type   *string
	applied_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CellAudit, error)
	predicates    []predicate.CellAudit
}

var _ ent.Mutation = (*CellAuditMutation)(nil)

// cellauditOption allows management of the mutation configuration using functional options.
type cellauditOption func(*CellAuditMutation)

// newCellAuditMutation creates new mutation for the CellAudit entity.
func newCellAuditMutation(c config, op Op, opts ...cellauditOption) *CellAuditMutation {
	m := &CellAuditMutation{
		config:        c,
		op:            op,
		typ:           TypeCellAudit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCellAuditID sets the ID field of the mutation.
func withCellAuditID(id string) cellauditOption {
	return func(m *CellAuditMutation) {
		var (
			err   error
			once  sync.Once
			value *CellAudit
		)
		m.oldValue = func(ctx context.Context) (*CellAudit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CellAudit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCellAudit sets the old CellAudit of the mutation.
func withCellAudit(node *CellAudit) cellauditOption {
	return func(m *CellAuditMutation) {
		m.oldValue = func(context.Context) (*CellAudit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CellAuditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CellAuditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CellAudit entities.
func (m *CellAuditMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CellAuditMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CellAuditMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CellAudit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSheetID sets the "sheet_id" field.
func (m *CellAuditMutation) SetSheetID(s string) {
	m.sheet_id = &s
}

// SheetID returns the value of the "sheet_id" field in the mutation.
func (m *CellAuditMutation) SheetID() (r string, exists bool) {
	v := m.sheet_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSheetID returns the old "sheet_id" field's value of the CellAudit entity.
// If the CellAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellAuditMutation) OldSheetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSheetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSheetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSheetID: %w", err)
	}
	return oldValue.SheetID, nil
}

// ResetSheetID resets all changes to the "sheet_id" field.
func (m *CellAuditMutation) ResetSheetID() {
	m.sheet_id = nil
}

// SetRowIndex sets the "row_index" field.
func (m *CellAuditMutation) SetRowIndex(i int) {
	m.row_index = &i
	m.addrow_index = nil
}

// RowIndex returns the value of the "row_index" field in the mutation.
func (m *CellAuditMutation) RowIndex() (r int, exists bool) {
	v := m.row_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRowIndex returns the old "row_index" field's value of the CellAudit entity.
// If the CellAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellAuditMutation) OldRowIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowIndex: %w", err)
	}
	return oldValue.RowIndex, nil
}

// AddRowIndex adds i to the "row_index" field.
func (m *CellAuditMutation) AddRowIndex(i int) {
	if m.addrow_index != nil {
		*m.addrow_index += i
	} else {
		m.addrow_index = &i
	}
}

// AddedRowIndex returns the value that was added to the "row_index" field in this mutation.
func (m *CellAuditMutation) AddedRowIndex() (r int, exists bool) {
	v := m.addrow_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowIndex resets all changes to the "row_index" field.
func (m *CellAuditMutation) ResetRowIndex() {
	m.row_index = nil
	m.addrow_index = nil
}

// SetColIndex sets the "col_index" field.
func (m *CellAuditMutation) SetColIndex(i int) {
	m.col_index = &i
	m.addcol_index = nil
}

// ColIndex returns the value of the "col_index" field in the mutation.
func (m *CellAuditMutation) ColIndex() (r int, exists bool) {
	v := m.col_index
	if v == nil {
		return
	}
	return *v, true
}

// OldColIndex returns the old "col_index" field's value of the CellAudit entity.
// If the CellAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellAuditMutation) OldColIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColIndex: %w", err)
	}
	return oldValue.ColIndex, nil
}

// AddColIndex adds i to the "col_index" field.
func (m *CellAuditMutation) AddColIndex(i int) {
	if m.addcol_index != nil {
		*m.addcol_index += i
	} else {
		m.addcol_index = &i
	}
}

// AddedColIndex returns the value that was added to the "col_index" field in this mutation.
func (m *CellAuditMutation) AddedColIndex() (r int, exists bool) {
	v := m.addcol_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetColIndex resets all changes to the "col_index" field.
func (m *CellAuditMutation) ResetColIndex() {
	m.col_index = nil
	m.addcol_index = nil
}

// SetContent sets the "content" field.
func (m *CellAuditMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CellAuditMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the CellAudit entity.
// If the CellAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellAuditMutation) OldContent(ctx context.Context) (v string, err error) {
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
func (m *CellAuditMutation) ResetContent() {
	m.content = nil
}

// SetUpdateType sets the "update_type" field.
func (m *CellAuditMutation) SetUpdateType(s string) {
	m.update_type = &s
}

// UpdateType returns the value of the "update_type" field in the mutation.
func (m *CellAuditMutation) UpdateType() (r string, exists bool) {
	v := m.update_type
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateType returns the old "update_type" field's value of the CellAudit entity.
// If the CellAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellAuditMutation) OldUpdateType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateType: %w", err)
	}
	return oldValue.UpdateType, nil
}

// ResetUpdateType resets all changes to the "update_type" field.
func (m *CellAuditMutation) ResetUpdateType() {
	m.update_type = nil
}

// SetAppliedAt sets the "applied_at" field.
func (m *CellAuditMutation) SetAppliedAt(t time.Time) {
	m.applied_at = &t
}

// AppliedAt returns the value of the "applied_at" field in the mutation.
func (m *CellAuditMutation) AppliedAt() (r time.Time, exists bool) {
	v := m.applied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedAt returns the old "applied_at" field's value of the CellAudit entity.
// If the CellAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellAuditMutation) OldAppliedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedAt: %w", err)
	}
	return oldValue.AppliedAt, nil
}

// ResetAppliedAt resets all changes to the "applied_at" field.
func (m *CellAuditMutation) ResetAppliedAt() {
	m.applied_at = nil
}

// Where appends a list predicates to the CellAuditMutation builder.
func (m *CellAuditMutation) Where(ps ...predicate.CellAudit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CellAuditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CellAuditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CellAudit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CellAuditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CellAuditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CellAudit).
func (m *CellAuditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CellAuditMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sheet_id != nil {
		fields = append(fields, cellaudit.FieldSheetID)
	}
	if m.row_index != nil {
		fields = append(fields, cellaudit.FieldRowIndex)
	}
	if m.col_index != nil {
		fields = append(fields, cellaudit.FieldColIndex)
	}
	if m.content != nil {
		fields = append(fields, cellaudit.FieldContent)
	}
	if m.update_type != nil {
		fields = append(fields, cellaudit.FieldUpdateType)
	}
	if m.applied_at != nil {
		fields = append(fields, cellaudit.FieldAppliedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CellAuditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cellaudit.FieldSheetID:
		return m.SheetID()
	case cellaudit.FieldRowIndex:
		return m.RowIndex()
	case cellaudit.FieldColIndex:
		return m.ColIndex()
	case cellaudit.FieldContent:
		return m.Content()
	case cellaudit.FieldUpdateType:
		return m.UpdateType()
	case cellaudit.FieldAppliedAt:
		return m.AppliedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CellAuditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cellaudit.FieldSheetID:
		return m.OldSheetID(ctx)
	case cellaudit.FieldRowIndex:
		return m.OldRowIndex(ctx)
	case cellaudit.FieldColIndex:
		return m.OldColIndex(ctx)
	case cellaudit.FieldContent:
		return m.OldContent(ctx)
	case cellaudit.FieldUpdateType:
		return m.OldUpdateType(ctx)
	case cellaudit.FieldAppliedAt:
		return m.OldAppliedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CellAudit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CellAuditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cellaudit.FieldSheetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSheetID(v)
		return nil
	case cellaudit.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowIndex(v)
		return nil
	case cellaudit.FieldColIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColIndex(v)
		return nil
	case cellaudit.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case cellaudit.FieldUpdateType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateType(v)
		return nil
	case cellaudit.FieldAppliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CellAudit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CellAuditMutation) AddedFields() []string {
	var fields []string
	if m.addrow_index != nil {
		fields = append(fields, cellaudit.FieldRowIndex)
	}
	if m.addcol_index != nil {
		fields = append(fields, cellaudit.FieldColIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CellAuditMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cellaudit.FieldRowIndex:
		return m.AddedRowIndex()
	case cellaudit.FieldColIndex:
		return m.AddedColIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CellAuditMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cellaudit.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowIndex(v)
		return nil
	case cellaudit.FieldColIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddColIndex(v)
		return nil
	}
	return fmt.Errorf("unknown CellAudit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CellAuditMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CellAuditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CellAuditMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CellAudit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CellAuditMutation) ResetField(name string) error {
	switch name {
	case cellaudit.FieldSheetID:
		m.ResetSheetID()
		return nil
	case cellaudit.FieldRowIndex:
		m.ResetRowIndex()
		return nil
	case cellaudit.FieldColIndex:
		m.ResetColIndex()
		return nil
	case cellaudit.FieldContent:
		m.ResetContent()
		return nil
	case cellaudit.FieldUpdateType:
		m.ResetUpdateType()
		return nil
	case cellaudit.FieldAppliedAt:
		m.ResetAppliedAt()
		return nil
	}
	return fmt.Errorf("unknown CellAudit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CellAuditMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CellAuditMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CellAuditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CellAuditMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CellAuditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CellAuditMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CellAuditMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CellAudit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CellAuditMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CellAudit edge %s", name)
}

// CellStatusMutation represents an operation that mutates the CellStatus nodes in the graph.
type CellStatusMutation struct {
	config
	op             Op
	typ            string
	id             *string
	row_index      *int
	addrow_index   *int
	col_index      *int
	addcol_index   *int
	status         *cellstatus.Status
	operator_name  *string
	status_message *string
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	sheet          *string
	clearedsheet   bool
	done           bool
	oldValue       func(context.Context) (*CellStatus, error)
	predicates     []predicate.CellStatus
}

var _ ent.Mutation = (*CellStatusMutation)(nil)

// cellstatusOption allows management of the mutation configuration using functional options.
type cellstatusOption func(*CellStatusMutation)

// newCellStatusMutation creates new mutation for the CellStatus entity.
func newCellStatusMutation(c config, op Op, opts ...cellstatusOption) *CellStatusMutation {
	m := &CellStatusMutation{
		config:        c,
		op:            op,
		typ:           TypeCellStatus,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCellStatusID sets the ID field of the mutation.
func withCellStatusID(id string) cellstatusOption {
	return func(m *CellStatusMutation) {
		var (
			err   error
			once  sync.Once
			value *CellStatus
		)
		m.oldValue = func(ctx context.Context) (*CellStatus, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CellStatus.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCellStatus sets the old CellStatus of the mutation.
func withCellStatus(node *CellStatus) cellstatusOption {
	return func(m *CellStatusMutation) {
		m.oldValue = func(context.Context) (*CellStatus, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CellStatusMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CellStatusMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CellStatus entities.
func (m *CellStatusMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CellStatusMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CellStatusMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CellStatus.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSheetID sets the "sheet_id" field.
func (m *CellStatusMutation) SetSheetID(s string) {
	m.sheet = &s
}

// SheetID returns the value of the "sheet_id" field in the mutation.
func (m *CellStatusMutation) SheetID() (r string, exists bool) {
	v := m.sheet
	if v == nil {
		return
	}
	return *v, true
}

// OldSheetID returns the old "sheet_id" field's value of the CellStatus entity.
// If the CellStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStatusMutation) OldSheetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSheetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSheetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSheetID: %w", err)
	}
	return oldValue.SheetID, nil
}

// ResetSheetID resets all changes to the "sheet_id" field.
func (m *CellStatusMutation) ResetSheetID() {
	m.sheet = nil
}

// SetRowIndex sets the "row_index" field.
func (m *CellStatusMutation) SetRowIndex(i int) {
	m.row_index = &i
	m.addrow_index = nil
}

// RowIndex returns the value of the "row_index" field in the mutation.
func (m *CellStatusMutation) RowIndex() (r int, exists bool) {
	v := m.row_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRowIndex returns the old "row_index" field's value of the CellStatus entity.
// If the CellStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStatusMutation) OldRowIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowIndex: %w", err)
	}
	return oldValue.RowIndex, nil
}

// AddRowIndex adds i to the "row_index" field.
func (m *CellStatusMutation) AddRowIndex(i int) {
	if m.addrow_index != nil {
		*m.addrow_index += i
	} else {
		m.addrow_index = &i
	}
}

// AddedRowIndex returns the value that was added to the "row_index" field in this mutation.
func (m *CellStatusMutation) AddedRowIndex() (r int, exists bool) {
	v := m.addrow_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowIndex resets all changes to the "row_index" field.
func (m *CellStatusMutation) ResetRowIndex() {
	m.row_index = nil
	m.addrow_index = nil
}

// SetColIndex sets the "col_index" field.
func (m *CellStatusMutation) SetColIndex(i int) {
	m.col_index = &i
	m.addcol_index = nil
}

// ColIndex returns the value of the "col_index" field in the mutation.
func (m *CellStatusMutation) ColIndex() (r int, exists bool) {
	v := m.col_index
	if v == nil {
		return
	}
	return *v, true
}

// OldColIndex returns the old "col_index" field's value of the CellStatus entity.
// If the CellStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStatusMutation) OldColIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColIndex: %w", err)
	}
	return oldValue.ColIndex, nil
}

// AddColIndex adds i to the "col_index" field.
func (m *CellStatusMutation) AddColIndex(i int) {
	if m.addcol_index != nil {
		*m.addcol_index += i
	} else {
		m.addcol_index = &i
	}
}

// AddedColIndex returns the value that was added to the "col_index" field in this mutation.
func (m *CellStatusMutation) AddedColIndex() (r int, exists bool) {
	v := m.addcol_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetColIndex resets all changes to the "col_index" field.
func (m *CellStatusMutation) ResetColIndex() {
	m.col_index = nil
	m.addcol_index = nil
}

// SetStatus sets the "status" field.
func (m *CellStatusMutation) SetStatus(c cellstatus.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CellStatusMutation) Status() (r cellstatus.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CellStatus entity.
// If the CellStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStatusMutation) OldStatus(ctx context.Context) (v cellstatus.Status, err error) {
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
func (m *CellStatusMutation) ResetStatus() {
	m.status = nil
}

// SetOperatorName sets the "operator_name" field.
func (m *CellStatusMutation) SetOperatorName(s string) {
	m.operator_name = &s
}

// OperatorName returns the value of the "operator_name" field in the mutation.
func (m *CellStatusMutation) OperatorName() (r string, exists bool) {
	v := m.operator_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOperatorName returns the old "operator_name" field's value of the CellStatus entity.
// If the CellStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStatusMutation) OldOperatorName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperatorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperatorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperatorName: %w", err)
	}
	return oldValue.OperatorName, nil
}

// ClearOperatorName clears the value of the "operator_name" field.
func (m *CellStatusMutation) ClearOperatorName() {
	m.operator_name = nil
	m.clearedFields[cellstatus.FieldOperatorName] = struct{}{}
}

// OperatorNameCleared returns if the "operator_name" field was cleared in this mutation.
func (m *CellStatusMutation) OperatorNameCleared() bool {
	_, ok := m.clearedFields[cellstatus.FieldOperatorName]
	return ok
}

// ResetOperatorName resets all changes to the "operator_name" field.
func (m *CellStatusMutation) ResetOperatorName() {
	m.operator_name = nil
	delete(m.clearedFields, cellstatus.FieldOperatorName)
}

// SetStatusMessage sets the "status_message" field.
func (m *CellStatusMutation) SetStatusMessage(s string) {
	m.status_message = &s
}

// StatusMessage returns the value of the "status_message" field in the mutation.
func (m *CellStatusMutation) StatusMessage() (r string, exists bool) {
	v := m.status_message
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusMessage returns the old "status_message" field's value of the CellStatus entity.
// If the CellStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStatusMutation) OldStatusMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusMessage: %w", err)
	}
	return oldValue.StatusMessage, nil
}

// ClearStatusMessage clears the value of the "status_message" field.
func (m *CellStatusMutation) ClearStatusMessage() {
	m.status_message = nil
	m.clearedFields[cellstatus.FieldStatusMessage] = struct{}{}
}

// StatusMessageCleared returns if the "status_message" field was cleared in this mutation.
func (m *CellStatusMutation) StatusMessageCleared() bool {
	_, ok := m.clearedFields[cellstatus.FieldStatusMessage]
	return ok
}

// ResetStatusMessage resets all changes to the "status_message" field.
func (m *CellStatusMutation) ResetStatusMessage() {
	m.status_message = nil
	delete(m.clearedFields, cellstatus.FieldStatusMessage)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CellStatusMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CellStatusMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CellStatus entity.
// If the CellStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStatusMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CellStatusMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSheet clears the "sheet" edge to the Sheet entity.
func (m *CellStatusMutation) ClearSheet() {
	m.clearedsheet = true
	m.clearedFields[cellstatus.FieldSheetID] = struct{}{}
}

// SheetCleared reports if the "sheet" edge to the Sheet entity was cleared.
func (m *CellStatusMutation) SheetCleared() bool {
	return m.clearedsheet
}

// SheetIDs returns the "sheet" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SheetID instead. It exists only for internal usage by the builders.
func (m *CellStatusMutation) SheetIDs() (ids []string) {
	if id := m.sheet; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSheet resets all changes to the "sheet" edge.
func (m *CellStatusMutation) ResetSheet() {
	m.sheet = nil
	m.clearedsheet = false
}

// Where appends a list predicates to the CellStatusMutation builder.
func (m *CellStatusMutation) Where(ps ...predicate.CellStatus) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CellStatusMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CellStatusMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CellStatus, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CellStatusMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CellStatusMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CellStatus).
func (m *CellStatusMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CellStatusMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sheet != nil {
		fields = append(fields, cellstatus.FieldSheetID)
	}
	if m.row_index != nil {
		fields = append(fields, cellstatus.FieldRowIndex)
	}
	if m.col_index != nil {
		fields = append(fields, cellstatus.FieldColIndex)
	}
	if m.status != nil {
		fields = append(fields, cellstatus.FieldStatus)
	}
	if m.operator_name != nil {
		fields = append(fields, cellstatus.FieldOperatorName)
	}
	if m.status_message != nil {
		fields = append(fields, cellstatus.FieldStatusMessage)
	}
	if m.updated_at != nil {
		fields = append(fields, cellstatus.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CellStatusMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cellstatus.FieldSheetID:
		return m.SheetID()
	case cellstatus.FieldRowIndex:
		return m.RowIndex()
	case cellstatus.FieldColIndex:
		return m.ColIndex()
	case cellstatus.FieldStatus:
		return m.Status()
	case cellstatus.FieldOperatorName:
		return m.OperatorName()
	case cellstatus.FieldStatusMessage:
		return m.StatusMessage()
	case cellstatus.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CellStatusMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cellstatus.FieldSheetID:
		return m.OldSheetID(ctx)
	case cellstatus.FieldRowIndex:
		return m.OldRowIndex(ctx)
	case cellstatus.FieldColIndex:
		return m.OldColIndex(ctx)
	case cellstatus.FieldStatus:
		return m.OldStatus(ctx)
	case cellstatus.FieldOperatorName:
		return m.OldOperatorName(ctx)
	case cellstatus.FieldStatusMessage:
		return m.OldStatusMessage(ctx)
	case cellstatus.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CellStatus field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CellStatusMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cellstatus.FieldSheetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSheetID(v)
		return nil
	case cellstatus.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowIndex(v)
		return nil
	case cellstatus.FieldColIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColIndex(v)
		return nil
	case cellstatus.FieldStatus:
		v, ok := value.(cellstatus.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case cellstatus.FieldOperatorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperatorName(v)
		return nil
	case cellstatus.FieldStatusMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusMessage(v)
		return nil
	case cellstatus.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CellStatus field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CellStatusMutation) AddedFields() []string {
	var fields []string
	if m.addrow_index != nil {
		fields = append(fields, cellstatus.FieldRowIndex)
	}
	if m.addcol_index != nil {
		fields = append(fields, cellstatus.FieldColIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CellStatusMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cellstatus.FieldRowIndex:
		return m.AddedRowIndex()
	case cellstatus.FieldColIndex:
		return m.AddedColIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CellStatusMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cellstatus.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowIndex(v)
		return nil
	case cellstatus.FieldColIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddColIndex(v)
		return nil
	}
	return fmt.Errorf("unknown CellStatus numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CellStatusMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cellstatus.FieldOperatorName) {
		fields = append(fields, cellstatus.FieldOperatorName)
	}
	if m.FieldCleared(cellstatus.FieldStatusMessage) {
		fields = append(fields, cellstatus.FieldStatusMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CellStatusMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CellStatusMutation) ClearField(name string) error {
	switch name {
	case cellstatus.FieldOperatorName:
		m.ClearOperatorName()
		return nil
	case cellstatus.FieldStatusMessage:
		m.ClearStatusMessage()
		return nil
	}
	return fmt.Errorf("unknown CellStatus nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CellStatusMutation) ResetField(name string) error {
	switch name {
	case cellstatus.FieldSheetID:
		m.ResetSheetID()
		return nil
	case cellstatus.FieldRowIndex:
		m.ResetRowIndex()
		return nil
	case cellstatus.FieldColIndex:
		m.ResetColIndex()
		return nil
	case cellstatus.FieldStatus:
		m.ResetStatus()
		return nil
	case cellstatus.FieldOperatorName:
		m.ResetOperatorName()
		return nil
	case cellstatus.FieldStatusMessage:
		m.ResetStatusMessage()
		return nil
	case cellstatus.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CellStatus field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CellStatusMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sheet != nil {
		edges = append(edges, cellstatus.EdgeSheet)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CellStatusMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cellstatus.EdgeSheet:
		if id := m.sheet; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CellStatusMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CellStatusMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CellStatusMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsheet {
		edges = append(edges, cellstatus.EdgeSheet)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CellStatusMutation) EdgeCleared(name string) bool {
	switch name {
	case cellstatus.EdgeSheet:
		return m.clearedsheet
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CellStatusMutation) ClearEdge(name string) error {
	switch name {
	case cellstatus.EdgeSheet:
		m.ClearSheet()
		return nil
	}
	return fmt.Errorf("unknown CellStatus unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CellStatusMutation) ResetEdge(name string) error {
	switch name {
	case cellstatus.EdgeSheet:
		m.ResetSheet()
		return nil
	}
	return fmt.Errorf("unknown CellStatus edge %s", name)
}

// ColumnMutation represents an operation that mutates the Column nodes in the graph.
type ColumnMutation struct {
	config
	op              Op
	typ             string
	id              *string
	position        *int
	addposition     *int
	title           *string
	data_type       *column.DataType
	operator_type   *column.OperatorType
	prompt          *string
	operator_config *map[string]interface{}
	max_length      *int
	addmax_length   *int
	min_length      *int
	addmin_length   *int
	examples        *[]string
	appendexamples  []string
	description     *string
	required        *bool
	clearedFields   map[string]struct{}
	sheet           *string
	clearedsheet    bool
	done            bool
	oldValue        func(context.Context) (*Column, error)
	predicates      []predicate.Column
}

var _ ent.Mutation = (*ColumnMutation)(nil)

// columnOption allows management of the mutation configuration using functional options.
type columnOption func(*ColumnMutation)

// newColumnMutation creates new mutation for the Column entity.
func newColumnMutation(c config, op Op, opts ...columnOption) *ColumnMutation {
	m := &ColumnMutation{
		config:        c,
		op:            op,
		typ:           TypeColumn,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withColumnID sets the ID field of the mutation.
func withColumnID(id string) columnOption {
	return func(m *ColumnMutation) {
		var (
			err   error
			once  sync.Once
			value *Column
		)
		m.oldValue = func(ctx context.Context) (*Column, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Column.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withColumn sets the old Column of the mutation.
func withColumn(node *Column) columnOption {
	return func(m *ColumnMutation) {
		m.oldValue = func(context.Context) (*Column, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ColumnMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ColumnMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Column entities.
func (m *ColumnMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ColumnMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ColumnMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Column.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSheetID sets the "sheet_id" field.
func (m *ColumnMutation) SetSheetID(s string) {
	m.sheet = &s
}

// SheetID returns the value of the "sheet_id" field in the mutation.
func (m *ColumnMutation) SheetID() (r string, exists bool) {
	v := m.sheet
	if v == nil {
		return
	}
	return *v, true
}

// OldSheetID returns the old "sheet_id" field's value of the Column entity.
// If the Column object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnMutation) OldSheetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSheetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSheetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSheetID: %w", err)
	}
	return oldValue.SheetID, nil
}

// ResetSheetID resets all changes to the "sheet_id" field.
func (m *ColumnMutation) ResetSheetID() {
	m.sheet = nil
}

// SetPosition sets the "position" field.
func (m *ColumnMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *ColumnMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Column entity.
// If the Column object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *ColumnMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *ColumnMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *ColumnMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetTitle sets the "title" field.
func (m *ColumnMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ColumnMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Column entity.
// If the Column object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ColumnMutation) ResetTitle() {
	m.title = nil
}

// SetDataType sets the "data_type" field.
func (m *ColumnMutation) SetDataType(ct column.DataType) {
	m.data_type = &ct
}

// DataType returns the value of the "data_type" field in the mutation.
func (m *ColumnMutation) DataType() (r column.DataType, exists bool) {
	v := m.data_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDataType returns the old "data_type" field's value of the Column entity.
// If the Column object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnMutation) OldDataType(ctx context.Context) (v column.DataType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataType: %w", err)
	}
	return oldValue.DataType, nil
}

// ResetDataType resets all changes to the "data_type" field.
func (m *ColumnMutation) ResetDataType() {
	m.data_type = nil
}

// SetOperatorType sets the "operator_type" field.
func (m *ColumnMutation) SetOperatorType(ct column.OperatorType) {
	m.operator_type = &ct
}

// OperatorType returns the value of the "operator_type" field in the mutation.
func (m *ColumnMutation) OperatorType() (r column.OperatorType, exists bool) {
	v := m.operator_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOperatorType returns the old "operator_type" field's value of the Column entity.
// If the Column object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnMutation) OldOperatorType(ctx context.Context) (v *column.OperatorType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperatorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperatorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperatorType: %w", err)
	}
	return oldValue.OperatorType, nil
}

// ClearOperatorType clears the value of the "operator_type" field.
func (m *ColumnMutation) ClearOperatorType() {
	m.operator_type = nil
	m.clearedFields[column.FieldOperatorType] = struct{}{}
}

// OperatorTypeCleared returns if the "operator_type" field was cleared in this mutation.
func (m *ColumnMutation) OperatorTypeCleared() bool {
	_, ok := m.clearedFields[column.FieldOperatorType]
	return ok
}

// ResetOperatorType resets all changes to the "operator_type" field.
func (m *ColumnMutation) ResetOperatorType() {
	m.operator_type = nil
	delete(m.clearedFields, column.FieldOperatorType)
}

// SetPrompt sets the "prompt" field.
func (m *ColumnMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *ColumnMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Column entity.
// If the Column object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnMutation) OldPrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ClearPrompt clears the value of the "prompt" field.
func (m *ColumnMutation) ClearPrompt() {
	m.prompt = nil
	m.clearedFields[column.FieldPrompt] = struct{}{}
}

// PromptCleared returns if the "prompt" field was cleared in this mutation.
func (m *ColumnMutation) PromptCleared() bool {
	_, ok := m.clearedFields[column.FieldPrompt]
	return ok
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *ColumnMutation) ResetPrompt() {
	m.prompt = nil
	delete(m.clearedFields, column.FieldPrompt)
}

// SetOperatorConfig sets the "operator_config" field.
func (m *ColumnMutation) SetOperatorConfig(value map[string]interface{}) {
	m.operator_config = &value
}

// OperatorConfig returns the value of the "operator_config" field in the mutation.
func (m *ColumnMutation) OperatorConfig() (r map[string]interface{}, exists bool) {
	v := m.operator_config
	if v == nil {
		return
	}
	return *v, true
}

// OldOperatorConfig returns the old "operator_config" field's value of the Column entity.
// If the Column object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnMutation) OldOperatorConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperatorConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperatorConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperatorConfig: %w", err)
	}
	return oldValue.OperatorConfig, nil
}

// ClearOperatorConfig clears the value of the "operator_config" field.
func (m *ColumnMutation) ClearOperatorConfig() {
	m.operator_config = nil
	m.clearedFields[column.FieldOperatorConfig] = struct{}{}
}

// OperatorConfigCleared returns if the "operator_config" field was cleared in this mutation.
func (m *ColumnMutation) OperatorConfigCleared() bool {
	_, ok := m.clearedFields[column.FieldOperatorConfig]
	return ok
}

// ResetOperatorConfig resets all changes to the "operator_config" field.
func (m *ColumnMutation) ResetOperatorConfig() {
	m.operator_config = nil
	delete(m.clearedFields, column.FieldOperatorConfig)
}

// SetMaxLength sets the "max_length" field.
func (m *ColumnMutation) SetMaxLength(i int) {
	m.max_length = &i
	m.addmax_length = nil
}

// MaxLength returns the value of the "max_length" field in the mutation.
func (m *ColumnMutation) MaxLength() (r int, exists bool) {
	v := m.max_length
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxLength returns the old "max_length" field's value of the Column entity.
// If the Column object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnMutation) OldMaxLength(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxLength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxLength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxLength: %w", err)
	}
	return oldValue.MaxLength, nil
}

// AddMaxLength adds i to the "max_length" field.
func (m *ColumnMutation) AddMaxLength(i int) {
	if m.addmax_length != nil {
		*m.addmax_length += i
	} else {
		m.addmax_length = &i
	}
}

// AddedMaxLength returns the value that was added to the "max_length" field in this mutation.
func (m *ColumnMutation) AddedMaxLength() (r int, exists bool) {
	v := m.addmax_length
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxLength clears the value of the "max_length" field.
func (m *ColumnMutation) ClearMaxLength() {
	m.max_length = nil
	m.addmax_length = nil
	m.clearedFields[column.FieldMaxLength] = struct{}{}
}

// MaxLengthCleared returns if the "max_length" field was cleared in this mutation.
func (m *ColumnMutation) MaxLengthCleared() bool {
	_, ok := m.clearedFields[column.FieldMaxLength]
	return ok
}

// ResetMaxLength resets all changes to the "max_length" field.
func (m *ColumnMutation) ResetMaxLength() {
	m.max_length = nil
	m.addmax_length = nil
	delete(m.clearedFields, column.FieldMaxLength)
}

// SetMinLength sets the "min_length" field.
func (m *ColumnMutation) SetMinLength(i int) {
	m.min_length = &i
	m.addmin_length = nil
}

// MinLength returns the value of the "min_length" field in the mutation.
func (m *ColumnMutation) MinLength() (r int, exists bool) {
	v := m.min_length
	if v == nil {
		return
	}
	return *v, true
}

// OldMinLength returns the old "min_length" field's value of the Column entity.
// If the Column object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnMutation) OldMinLength(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinLength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinLength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinLength: %w", err)
	}
	return oldValue.MinLength, nil
}

// AddMinLength adds i to the "min_length" field.
func (m *ColumnMutation) AddMinLength(i int) {
	if m.addmin_length != nil {
		*m.addmin_length += i
	} else {
		m.addmin_length = &i
	}
}

// AddedMinLength returns the value that was added to the "min_length" field in this mutation.
func (m *ColumnMutation) AddedMinLength() (r int, exists bool) {
	v := m.addmin_length
	if v == nil {
		return
	}
	return *v, true
}

// ClearMinLength clears the value of the "min_length" field.
func (m *ColumnMutation) ClearMinLength() {
	m.min_length = nil
	m.addmin_length = nil
	m.clearedFields[column.FieldMinLength] = struct{}{}
}

// MinLengthCleared returns if the "min_length" field was cleared in this mutation.
func (m *ColumnMutation) MinLengthCleared() bool {
	_, ok := m.clearedFields[column.FieldMinLength]
	return ok
}

// ResetMinLength resets all changes to the "min_length" field.
func (m *ColumnMutation) ResetMinLength() {
	m.min_length = nil
	m.addmin_length = nil
	delete(m.clearedFields, column.FieldMinLength)
}

// SetExamples sets the "examples" field.
func (m *ColumnMutation) SetExamples(s []string) {
	m.examples = &s
	m.appendexamples = nil
}

// Examples returns the value of the "examples" field in the mutation.
func (m *ColumnMutation) Examples() (r []string, exists bool) {
	v := m.examples
	if v == nil {
		return
	}
	return *v, true
}

// OldExamples returns the old "examples" field's value of the Column entity.
// If the Column object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnMutation) OldExamples(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamples is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamples requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamples: %w", err)
	}
	return oldValue.Examples, nil
}

// AppendExamples adds s to the "examples" field.
func (m *ColumnMutation) AppendExamples(s []string) {
	m.appendexamples = append(m.appendexamples, s...)
}

// AppendedExamples returns the list of values that were appended to the "examples" field in this mutation.
func (m *ColumnMutation) AppendedExamples() ([]string, bool) {
	if len(m.appendexamples) == 0 {
		return nil, false
	}
	return m.appendexamples, true
}

// ClearExamples clears the value of the "examples" field.
func (m *ColumnMutation) ClearExamples() {
	m.examples = nil
	m.appendexamples = nil
	m.clearedFields[column.FieldExamples] = struct{}{}
}

// ExamplesCleared returns if the "examples" field was cleared in this mutation.
func (m *ColumnMutation) ExamplesCleared() bool {
	_, ok := m.clearedFields[column.FieldExamples]
	return ok
}

// ResetExamples resets all changes to the "examples" field.
func (m *ColumnMutation) ResetExamples() {
	m.examples = nil
	m.appendexamples = nil
	delete(m.clearedFields, column.FieldExamples)
}

// SetDescription sets the "description" field.
func (m *ColumnMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ColumnMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Column entity.
// If the Column object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ColumnMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[column.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ColumnMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[column.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ColumnMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, column.FieldDescription)
}

// SetRequired sets the "required" field.
func (m *ColumnMutation) SetRequired(b bool) {
	m.required = &b
}

// Required returns the value of the "required" field in the mutation.
func (m *ColumnMutation) Required() (r bool, exists bool) {
	v := m.required
	if v == nil {
		return
	}
	return *v, true
}

// OldRequired returns the old "required" field's value of the Column entity.
// If the Column object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnMutation) OldRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequired: %w", err)
	}
	return oldValue.Required, nil
}

// ResetRequired resets all changes to the "required" field.
func (m *ColumnMutation) ResetRequired() {
	m.required = nil
}

// ClearSheet clears the "sheet" edge to the Sheet entity.
func (m *ColumnMutation) ClearSheet() {
	m.clearedsheet = true
	m.clearedFields[column.FieldSheetID] = struct{}{}
}

// SheetCleared reports if the "sheet" edge to the Sheet entity was cleared.
func (m *ColumnMutation) SheetCleared() bool {
	return m.clearedsheet
}

// SheetIDs returns the "sheet" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SheetID instead. It exists only for internal usage by the builders.
func (m *ColumnMutation) SheetIDs() (ids []string) {
	if id := m.sheet; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSheet resets all changes to the "sheet" edge.
func (m *ColumnMutation) ResetSheet() {
	m.sheet = nil
	m.clearedsheet = false
}

// Where appends a list predicates to the ColumnMutation builder.
func (m *ColumnMutation) Where(ps ...predicate.Column) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ColumnMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ColumnMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Column, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ColumnMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ColumnMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Column).
func (m *ColumnMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ColumnMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sheet != nil {
		fields = append(fields, column.FieldSheetID)
	}
	if m.position != nil {
		fields = append(fields, column.FieldPosition)
	}
	if m.title != nil {
		fields = append(fields, column.FieldTitle)
	}
	if m.data_type != nil {
		fields = append(fields, column.FieldDataType)
	}
	if m.operator_type != nil {
		fields = append(fields, column.FieldOperatorType)
	}
	if m.prompt != nil {
		fields = append(fields, column.FieldPrompt)
	}
	if m.operator_config != nil {
		fields = append(fields, column.FieldOperatorConfig)
	}
	if m.max_length != nil {
		fields = append(fields, column.FieldMaxLength)
	}
	if m.min_length != nil {
		fields = append(fields, column.FieldMinLength)
	}
	if m.examples != nil {
		fields = append(fields, column.FieldExamples)
	}
	if m.description != nil {
		fields = append(fields, column.FieldDescription)
	}
	if m.required != nil {
		fields = append(fields, column.FieldRequired)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ColumnMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case column.FieldSheetID:
		return m.SheetID()
	case column.FieldPosition:
		return m.Position()
	case column.FieldTitle:
		return m.Title()
	case column.FieldDataType:
		return m.DataType()
	case column.FieldOperatorType:
		return m.OperatorType()
	case column.FieldPrompt:
		return m.Prompt()
	case column.FieldOperatorConfig:
		return m.OperatorConfig()
	case column.FieldMaxLength:
		return m.MaxLength()
	case column.FieldMinLength:
		return m.MinLength()
	case column.FieldExamples:
		return m.Examples()
	case column.FieldDescription:
		return m.Description()
	case column.FieldRequired:
		return m.Required()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ColumnMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case column.FieldSheetID:
		return m.OldSheetID(ctx)
	case column.FieldPosition:
		return m.OldPosition(ctx)
	case column.FieldTitle:
		return m.OldTitle(ctx)
	case column.FieldDataType:
		return m.OldDataType(ctx)
	case column.FieldOperatorType:
		return m.OldOperatorType(ctx)
	case column.FieldPrompt:
		return m.OldPrompt(ctx)
	case column.FieldOperatorConfig:
		return m.OldOperatorConfig(ctx)
	case column.FieldMaxLength:
		return m.OldMaxLength(ctx)
	case column.FieldMinLength:
		return m.OldMinLength(ctx)
	case column.FieldExamples:
		return m.OldExamples(ctx)
	case column.FieldDescription:
		return m.OldDescription(ctx)
	case column.FieldRequired:
		return m.OldRequired(ctx)
	}
	return nil, fmt.Errorf("unknown Column field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ColumnMutation) SetField(name string, value ent.Value) error {
	switch name {
	case column.FieldSheetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSheetID(v)
		return nil
	case column.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case column.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case column.FieldDataType:
		v, ok := value.(column.DataType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataType(v)
		return nil
	case column.FieldOperatorType:
		v, ok := value.(column.OperatorType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperatorType(v)
		return nil
	case column.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case column.FieldOperatorConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperatorConfig(v)
		return nil
	case column.FieldMaxLength:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxLength(v)
		return nil
	case column.FieldMinLength:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinLength(v)
		return nil
	case column.FieldExamples:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamples(v)
		return nil
	case column.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case column.FieldRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequired(v)
		return nil
	}
	return fmt.Errorf("unknown Column field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ColumnMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, column.FieldPosition)
	}
	if m.addmax_length != nil {
		fields = append(fields, column.FieldMaxLength)
	}
	if m.addmin_length != nil {
		fields = append(fields, column.FieldMinLength)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ColumnMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case column.FieldPosition:
		return m.AddedPosition()
	case column.FieldMaxLength:
		return m.AddedMaxLength()
	case column.FieldMinLength:
		return m.AddedMinLength()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ColumnMutation) AddField(name string, value ent.Value) error {
	switch name {
	case column.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case column.FieldMaxLength:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxLength(v)
		return nil
	case column.FieldMinLength:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinLength(v)
		return nil
	}
	return fmt.Errorf("unknown Column numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ColumnMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(column.FieldOperatorType) {
		fields = append(fields, column.FieldOperatorType)
	}
	if m.FieldCleared(column.FieldPrompt) {
		fields = append(fields, column.FieldPrompt)
	}
	if m.FieldCleared(column.FieldOperatorConfig) {
		fields = append(fields, column.FieldOperatorConfig)
	}
	if m.FieldCleared(column.FieldMaxLength) {
		fields = append(fields, column.FieldMaxLength)
	}
	if m.FieldCleared(column.FieldMinLength) {
		fields = append(fields, column.FieldMinLength)
	}
	if m.FieldCleared(column.FieldExamples) {
		fields = append(fields, column.FieldExamples)
	}
	if m.FieldCleared(column.FieldDescription) {
		fields = append(fields, column.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ColumnMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ColumnMutation) ClearField(name string) error {
	switch name {
	case column.FieldOperatorType:
		m.ClearOperatorType()
		return nil
	case column.FieldPrompt:
		m.ClearPrompt()
		return nil
	case column.FieldOperatorConfig:
		m.ClearOperatorConfig()
		return nil
	case column.FieldMaxLength:
		m.ClearMaxLength()
		return nil
	case column.FieldMinLength:
		m.ClearMinLength()
		return nil
	case column.FieldExamples:
		m.ClearExamples()
		return nil
	case column.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Column nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ColumnMutation) ResetField(name string) error {
	switch name {
	case column.FieldSheetID:
		m.ResetSheetID()
		return nil
	case column.FieldPosition:
		m.ResetPosition()
		return nil
	case column.FieldTitle:
		m.ResetTitle()
		return nil
	case column.FieldDataType:
		m.ResetDataType()
		return nil
	case column.FieldOperatorType:
		m.ResetOperatorType()
		return nil
	case column.FieldPrompt:
		m.ResetPrompt()
		return nil
	case column.FieldOperatorConfig:
		m.ResetOperatorConfig()
		return nil
	case column.FieldMaxLength:
		m.ResetMaxLength()
		return nil
	case column.FieldMinLength:
		m.ResetMinLength()
		return nil
	case column.FieldExamples:
		m.ResetExamples()
		return nil
	case column.FieldDescription:
		m.ResetDescription()
		return nil
	case column.FieldRequired:
		m.ResetRequired()
		return nil
	}
	return fmt.Errorf("unknown Column field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ColumnMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sheet != nil {
		edges = append(edges, column.EdgeSheet)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ColumnMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case column.EdgeSheet:
		if id := m.sheet; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ColumnMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ColumnMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ColumnMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsheet {
		edges = append(edges, column.EdgeSheet)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ColumnMutation) EdgeCleared(name string) bool {
	switch name {
	case column.EdgeSheet:
		return m.clearedsheet
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ColumnMutation) ClearEdge(name string) error {
	switch name {
	case column.EdgeSheet:
		m.ClearSheet()
		return nil
	}
	return fmt.Errorf("unknown Column unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ColumnMutation) ResetEdge(name string) error {
	switch name {
	case column.EdgeSheet:
		m.ResetSheet()
		return nil
	}
	return fmt.Errorf("unknown Column edge %s", name)
}

// FillEventMutation represents an operation that mutates the FillEvent nodes in the graph.
type FillEventMutation struct {
	config
	op             Op
	typ            string
	id             *string
	sheet_id       *string
	row_index      *int
	addrow_index   *int
	col_index      *int
	addcol_index   *int
	event_type     *fillevent.EventType
	payload        *map[string]interface{}
	status         *fillevent.Status
	retry_count    *int
	addretry_count *int
	last_error     *string
	pod_id         *string
	created_at     *time.Time
	claimed_at     *time.Time
	processed_at   *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*FillEvent, error)
	predicates     []predicate.FillEvent
}

var _ ent.Mutation = (*FillEventMutation)(nil)

// filleventOption allows management of the mutation configuration using functional options.
type filleventOption func(*FillEventMutation)

// newFillEventMutation creates new mutation for the FillEvent entity.
func newFillEventMutation(c config, op Op, opts ...filleventOption) *FillEventMutation {
	m := &FillEventMutation{
		config:        c,
		op:            op,
		typ:           TypeFillEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFillEventID sets the ID field of the mutation.
func withFillEventID(id string) filleventOption {
	return func(m *FillEventMutation) {
		var (
			err   error
			once  sync.Once
			value *FillEvent
		)
		m.oldValue = func(ctx context.Context) (*FillEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FillEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFillEvent sets the old FillEvent of the mutation.
func withFillEvent(node *FillEvent) filleventOption {
	return func(m *FillEventMutation) {
		m.oldValue = func(context.Context) (*FillEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FillEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FillEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FillEvent entities.
func (m *FillEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FillEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FillEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FillEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSheetID sets the "sheet_id" field.
func (m *FillEventMutation) SetSheetID(s string) {
	m.sheet_id = &s
}

// SheetID returns the value of the "sheet_id" field in the mutation.
func (m *FillEventMutation) SheetID() (r string, exists bool) {
	v := m.sheet_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSheetID returns the old "sheet_id" field's value of the FillEvent entity.
// If the FillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FillEventMutation) OldSheetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSheetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSheetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSheetID: %w", err)
	}
	return oldValue.SheetID, nil
}

// ResetSheetID resets all changes to the "sheet_id" field.
func (m *FillEventMutation) ResetSheetID() {
	m.sheet_id = nil
}

// SetRowIndex sets the "row_index" field.
func (m *FillEventMutation) SetRowIndex(i int) {
	m.row_index = &i
	m.addrow_index = nil
}

// RowIndex returns the value of the "row_index" field in the mutation.
func (m *FillEventMutation) RowIndex() (r int, exists bool) {
	v := m.row_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRowIndex returns the old "row_index" field's value of the FillEvent entity.
// If the FillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FillEventMutation) OldRowIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowIndex: %w", err)
	}
	return oldValue.RowIndex, nil
}

// AddRowIndex adds i to the "row_index" field.
func (m *FillEventMutation) AddRowIndex(i int) {
	if m.addrow_index != nil {
		*m.addrow_index += i
	} else {
		m.addrow_index = &i
	}
}

// AddedRowIndex returns the value that was added to the "row_index" field in this mutation.
func (m *FillEventMutation) AddedRowIndex() (r int, exists bool) {
	v := m.addrow_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowIndex resets all changes to the "row_index" field.
func (m *FillEventMutation) ResetRowIndex() {
	m.row_index = nil
	m.addrow_index = nil
}

// SetColIndex sets the "col_index" field.
func (m *FillEventMutation) SetColIndex(i int) {
	m.col_index = &i
	m.addcol_index = nil
}

// ColIndex returns the value of the "col_index" field in the mutation.
func (m *FillEventMutation) ColIndex() (r int, exists bool) {
	v := m.col_index
	if v == nil {
		return
	}
	return *v, true
}

// OldColIndex returns the old "col_index" field's value of the FillEvent entity.
// If the FillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FillEventMutation) OldColIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColIndex: %w", err)
	}
	return oldValue.ColIndex, nil
}

// AddColIndex adds i to the "col_index" field.
func (m *FillEventMutation) AddColIndex(i int) {
	if m.addcol_index != nil {
		*m.addcol_index += i
	} else {
		m.addcol_index = &i
	}
}

// AddedColIndex returns the value that was added to the "col_index" field in this mutation.
func (m *FillEventMutation) AddedColIndex() (r int, exists bool) {
	v := m.addcol_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetColIndex resets all changes to the "col_index" field.
func (m *FillEventMutation) ResetColIndex() {
	m.col_index = nil
	m.addcol_index = nil
}

// SetEventType sets the "event_type" field.
func (m *FillEventMutation) SetEventType(ft fillevent.EventType) {
	m.event_type = &ft
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *FillEventMutation) EventType() (r fillevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the FillEvent entity.
// If the FillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FillEventMutation) OldEventType(ctx context.Context) (v fillevent.EventType, err error) {
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
func (m *FillEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *FillEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *FillEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the FillEvent entity.
// If the FillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FillEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *FillEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[fillevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *FillEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[fillevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *FillEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, fillevent.FieldPayload)
}

// SetStatus sets the "status" field.
func (m *FillEventMutation) SetStatus(f fillevent.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FillEventMutation) Status() (r fillevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FillEvent entity.
// If the FillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FillEventMutation) OldStatus(ctx context.Context) (v fillevent.Status, err error) {
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
func (m *FillEventMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *FillEventMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *FillEventMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the FillEvent entity.
// If the FillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FillEventMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *FillEventMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *FillEventMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *FillEventMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetLastError sets the "last_error" field.
func (m *FillEventMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *FillEventMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the FillEvent entity.
// If the FillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FillEventMutation) OldLastError(ctx context.Context) (v *string, err error) {
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
func (m *FillEventMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[fillevent.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *FillEventMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[fillevent.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *FillEventMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, fillevent.FieldLastError)
}

// SetPodID sets the "pod_id" field.
func (m *FillEventMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *FillEventMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the FillEvent entity.
// If the FillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FillEventMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *FillEventMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[fillevent.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *FillEventMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[fillevent.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *FillEventMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, fillevent.FieldPodID)
}

// SetCreatedAt sets the "created_at" field.
func (m *FillEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FillEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FillEvent entity.
// If the FillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FillEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FillEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetClaimedAt sets the "claimed_at" field.
func (m *FillEventMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *FillEventMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the FillEvent entity.
// If the FillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FillEventMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *FillEventMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[fillevent.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *FillEventMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[fillevent.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *FillEventMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, fillevent.FieldClaimedAt)
}

// SetProcessedAt sets the "processed_at" field.
func (m *FillEventMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *FillEventMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the FillEvent entity.
// If the FillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FillEventMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *FillEventMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[fillevent.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *FillEventMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[fillevent.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *FillEventMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, fillevent.FieldProcessedAt)
}

// Where appends a list predicates to the FillEventMutation builder.
func (m *FillEventMutation) Where(ps ...predicate.FillEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FillEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FillEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FillEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FillEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FillEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FillEvent).
func (m *FillEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FillEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sheet_id != nil {
		fields = append(fields, fillevent.FieldSheetID)
	}
	if m.row_index != nil {
		fields = append(fields, fillevent.FieldRowIndex)
	}
	if m.col_index != nil {
		fields = append(fields, fillevent.FieldColIndex)
	}
	if m.event_type != nil {
		fields = append(fields, fillevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, fillevent.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, fillevent.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, fillevent.FieldRetryCount)
	}
	if m.last_error != nil {
		fields = append(fields, fillevent.FieldLastError)
	}
	if m.pod_id != nil {
		fields = append(fields, fillevent.FieldPodID)
	}
	if m.created_at != nil {
		fields = append(fields, fillevent.FieldCreatedAt)
	}
	if m.claimed_at != nil {
		fields = append(fields, fillevent.FieldClaimedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, fillevent.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FillEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fillevent.FieldSheetID:
		return m.SheetID()
	case fillevent.FieldRowIndex:
		return m.RowIndex()
	case fillevent.FieldColIndex:
		return m.ColIndex()
	case fillevent.FieldEventType:
		return m.EventType()
	case fillevent.FieldPayload:
		return m.Payload()
	case fillevent.FieldStatus:
		return m.Status()
	case fillevent.FieldRetryCount:
		return m.RetryCount()
	case fillevent.FieldLastError:
		return m.LastError()
	case fillevent.FieldPodID:
		return m.PodID()
	case fillevent.FieldCreatedAt:
		return m.CreatedAt()
	case fillevent.FieldClaimedAt:
		return m.ClaimedAt()
	case fillevent.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FillEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fillevent.FieldSheetID:
		return m.OldSheetID(ctx)
	case fillevent.FieldRowIndex:
		return m.OldRowIndex(ctx)
	case fillevent.FieldColIndex:
		return m.OldColIndex(ctx)
	case fillevent.FieldEventType:
		return m.OldEventType(ctx)
	case fillevent.FieldPayload:
		return m.OldPayload(ctx)
	case fillevent.FieldStatus:
		return m.OldStatus(ctx)
	case fillevent.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case fillevent.FieldLastError:
		return m.OldLastError(ctx)
	case fillevent.FieldPodID:
		return m.OldPodID(ctx)
	case fillevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fillevent.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case fillevent.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FillEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FillEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fillevent.FieldSheetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSheetID(v)
		return nil
	case fillevent.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowIndex(v)
		return nil
	case fillevent.FieldColIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColIndex(v)
		return nil
	case fillevent.FieldEventType:
		v, ok := value.(fillevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case fillevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case fillevent.FieldStatus:
		v, ok := value.(fillevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case fillevent.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case fillevent.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case fillevent.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case fillevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fillevent.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case fillevent.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FillEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FillEventMutation) AddedFields() []string {
	var fields []string
	if m.addrow_index != nil {
		fields = append(fields, fillevent.FieldRowIndex)
	}
	if m.addcol_index != nil {
		fields = append(fields, fillevent.FieldColIndex)
	}
	if m.addretry_count != nil {
		fields = append(fields, fillevent.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FillEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fillevent.FieldRowIndex:
		return m.AddedRowIndex()
	case fillevent.FieldColIndex:
		return m.AddedColIndex()
	case fillevent.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FillEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fillevent.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowIndex(v)
		return nil
	case fillevent.FieldColIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddColIndex(v)
		return nil
	case fillevent.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown FillEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FillEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fillevent.FieldPayload) {
		fields = append(fields, fillevent.FieldPayload)
	}
	if m.FieldCleared(fillevent.FieldLastError) {
		fields = append(fields, fillevent.FieldLastError)
	}
	if m.FieldCleared(fillevent.FieldPodID) {
		fields = append(fields, fillevent.FieldPodID)
	}
	if m.FieldCleared(fillevent.FieldClaimedAt) {
		fields = append(fields, fillevent.FieldClaimedAt)
	}
	if m.FieldCleared(fillevent.FieldProcessedAt) {
		fields = append(fields, fillevent.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FillEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FillEventMutation) ClearField(name string) error {
	switch name {
	case fillevent.FieldPayload:
		m.ClearPayload()
		return nil
	case fillevent.FieldLastError:
		m.ClearLastError()
		return nil
	case fillevent.FieldPodID:
		m.ClearPodID()
		return nil
	case fillevent.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case fillevent.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown FillEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FillEventMutation) ResetField(name string) error {
	switch name {
	case fillevent.FieldSheetID:
		m.ResetSheetID()
		return nil
	case fillevent.FieldRowIndex:
		m.ResetRowIndex()
		return nil
	case fillevent.FieldColIndex:
		m.ResetColIndex()
		return nil
	case fillevent.FieldEventType:
		m.ResetEventType()
		return nil
	case fillevent.FieldPayload:
		m.ResetPayload()
		return nil
	case fillevent.FieldStatus:
		m.ResetStatus()
		return nil
	case fillevent.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case fillevent.FieldLastError:
		m.ResetLastError()
		return nil
	case fillevent.FieldPodID:
		m.ResetPodID()
		return nil
	case fillevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fillevent.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case fillevent.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown FillEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FillEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FillEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FillEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FillEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FillEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FillEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FillEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FillEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FillEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FillEvent edge %s", name)
}

// SheetMutation represents an operation that mutates the Sheet nodes in the graph.
type SheetMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	template_type        *sheet.TemplateType
	system_prompt        *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	columns              map[string]struct{}
	removedcolumns       map[string]struct{}
	clearedcolumns       bool
	cells                map[string]struct{}
	removedcells         map[string]struct{}
	clearedcells         bool
	cell_statuses        map[string]struct{}
	removedcell_statuses map[string]struct{}
	clearedcell_statuses bool
	done                 bool
	oldValue             func(context.Context) (*Sheet, error)
	predicates           []predicate.Sheet
}

var _ ent.Mutation = (*SheetMutation)(nil)

// sheetOption allows management of the mutation configuration using functional options.
type sheetOption func(*SheetMutation)

// newSheetMutation creates new mutation for the Sheet entity.
func newSheetMutation(c config, op Op, opts ...sheetOption) *SheetMutation {
	m := &SheetMutation{
		config:        c,
		op:            op,
		typ:           TypeSheet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSheetID sets the ID field of the mutation.
func withSheetID(id string) sheetOption {
	return func(m *SheetMutation) {
		var (
			err   error
			once  sync.Once
			value *Sheet
		)
		m.oldValue = func(ctx context.Context) (*Sheet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Sheet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSheet sets the old Sheet of the mutation.
func withSheet(node *Sheet) sheetOption {
	return func(m *SheetMutation) {
		m.oldValue = func(context.Context) (*Sheet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SheetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SheetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Sheet entities.
func (m *SheetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SheetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SheetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Sheet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTemplateType sets the "template_type" field.
func (m *SheetMutation) SetTemplateType(st sheet.TemplateType) {
	m.template_type = &st
}

// TemplateType returns the value of the "template_type" field in the mutation.
func (m *SheetMutation) TemplateType() (r sheet.TemplateType, exists bool) {
	v := m.template_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateType returns the old "template_type" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldTemplateType(ctx context.Context) (v *sheet.TemplateType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateType: %w", err)
	}
	return oldValue.TemplateType, nil
}

// ClearTemplateType clears the value of the "template_type" field.
func (m *SheetMutation) ClearTemplateType() {
	m.template_type = nil
	m.clearedFields[sheet.FieldTemplateType] = struct{}{}
}

// TemplateTypeCleared returns if the "template_type" field was cleared in this mutation.
func (m *SheetMutation) TemplateTypeCleared() bool {
	_, ok := m.clearedFields[sheet.FieldTemplateType]
	return ok
}

// ResetTemplateType resets all changes to the "template_type" field.
func (m *SheetMutation) ResetTemplateType() {
	m.template_type = nil
	delete(m.clearedFields, sheet.FieldTemplateType)
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *SheetMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *SheetMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldSystemPrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (m *SheetMutation) ClearSystemPrompt() {
	m.system_prompt = nil
	m.clearedFields[sheet.FieldSystemPrompt] = struct{}{}
}

// SystemPromptCleared returns if the "system_prompt" field was cleared in this mutation.
func (m *SheetMutation) SystemPromptCleared() bool {
	_, ok := m.clearedFields[sheet.FieldSystemPrompt]
	return ok
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *SheetMutation) ResetSystemPrompt() {
	m.system_prompt = nil
	delete(m.clearedFields, sheet.FieldSystemPrompt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SheetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SheetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SheetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddColumnIDs adds the "columns" edge to the Column entity by ids.
func (m *SheetMutation) AddColumnIDs(ids ...string) {
	if m.columns == nil {
		m.columns = make(map[string]struct{})
	}
	for i := range ids {
		m.columns[ids[i]] = struct{}{}
	}
}

// ClearColumns clears the "columns" edge to the Column entity.
func (m *SheetMutation) ClearColumns() {
	m.clearedcolumns = true
}

// ColumnsCleared reports if the "columns" edge to the Column entity was cleared.
func (m *SheetMutation) ColumnsCleared() bool {
	return m.clearedcolumns
}

// RemoveColumnIDs removes the "columns" edge to the Column entity by IDs.
func (m *SheetMutation) RemoveColumnIDs(ids ...string) {
	if m.removedcolumns == nil {
		m.removedcolumns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.columns, ids[i])
		m.removedcolumns[ids[i]] = struct{}{}
	}
}

// RemovedColumns returns the removed IDs of the "columns" edge to the Column entity.
func (m *SheetMutation) RemovedColumnsIDs() (ids []string) {
	for id := range m.removedcolumns {
		ids = append(ids, id)
	}
	return
}

// ColumnsIDs returns the "columns" edge IDs in the mutation.
func (m *SheetMutation) ColumnsIDs() (ids []string) {
	for id := range m.columns {
		ids = append(ids, id)
	}
	return
}

// ResetColumns resets all changes to the "columns" edge.
func (m *SheetMutation) ResetColumns() {
	m.columns = nil
	m.clearedcolumns = false
	m.removedcolumns = nil
}

// AddCellIDs adds the "cells" edge to the Cell entity by ids.
func (m *SheetMutation) AddCellIDs(ids ...string) {
	if m.cells == nil {
		m.cells = make(map[string]struct{})
	}
	for i := range ids {
		m.cells[ids[i]] = struct{}{}
	}
}

// ClearCells clears the "cells" edge to the Cell entity.
func (m *SheetMutation) ClearCells() {
	m.clearedcells = true
}

// CellsCleared reports if the "cells" edge to the Cell entity was cleared.
func (m *SheetMutation) CellsCleared() bool {
	return m.clearedcells
}

// RemoveCellIDs removes the "cells" edge to the Cell entity by IDs.
func (m *SheetMutation) RemoveCellIDs(ids ...string) {
	if m.removedcells == nil {
		m.removedcells = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.cells, ids[i])
		m.removedcells[ids[i]] = struct{}{}
	}
}

// RemovedCells returns the removed IDs of the "cells" edge to the Cell entity.
func (m *SheetMutation) RemovedCellsIDs() (ids []string) {
	for id := range m.removedcells {
		ids = append(ids, id)
	}
	return
}

// CellsIDs returns the "cells" edge IDs in the mutation.
func (m *SheetMutation) CellsIDs() (ids []string) {
	for id := range m.cells {
		ids = append(ids, id)
	}
	return
}

// ResetCells resets all changes to the "cells" edge.
func (m *SheetMutation) ResetCells() {
	m.cells = nil
	m.clearedcells = false
	m.removedcells = nil
}

// AddCellStatusIDs adds the "cell_statuses" edge to the CellStatus entity by ids.
func (m *SheetMutation) AddCellStatusIDs(ids ...string) {
	if m.cell_statuses == nil {
		m.cell_statuses = make(map[string]struct{})
	}
	for i := range ids {
		m.cell_statuses[ids[i]] = struct{}{}
	}
}

// ClearCellStatuses clears the "cell_statuses" edge to the CellStatus entity.
func (m *SheetMutation) ClearCellStatuses() {
	m.clearedcell_statuses = true
}

// CellStatusesCleared reports if the "cell_statuses" edge to the CellStatus entity was cleared.
func (m *SheetMutation) CellStatusesCleared() bool {
	return m.clearedcell_statuses
}

// RemoveCellStatusIDs removes the "cell_statuses" edge to the CellStatus entity by IDs.
func (m *SheetMutation) RemoveCellStatusIDs(ids ...string) {
	if m.removedcell_statuses == nil {
		m.removedcell_statuses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.cell_statuses, ids[i])
		m.removedcell_statuses[ids[i]] = struct{}{}
	}
}

// RemovedCellStatuses returns the removed IDs of the "cell_statuses" edge to the CellStatus entity.
func (m *SheetMutation) RemovedCellStatusesIDs() (ids []string) {
	for id := range m.removedcell_statuses {
		ids = append(ids, id)
	}
	return
}

// CellStatusesIDs returns the "cell_statuses" edge IDs in the mutation.
func (m *SheetMutation) CellStatusesIDs() (ids []string) {
	for id := range m.cell_statuses {
		ids = append(ids, id)
	}
	return
}

// ResetCellStatuses resets all changes to the "cell_statuses" edge.
func (m *SheetMutation) ResetCellStatuses() {
	m.cell_statuses = nil
	m.clearedcell_statuses = false
	m.removedcell_statuses = nil
}

// Where appends a list predicates to the SheetMutation builder.
func (m *SheetMutation) Where(ps ...predicate.Sheet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SheetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SheetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Sheet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SheetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SheetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Sheet).
func (m *SheetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SheetMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.template_type != nil {
		fields = append(fields, sheet.FieldTemplateType)
	}
	if m.system_prompt != nil {
		fields = append(fields, sheet.FieldSystemPrompt)
	}
	if m.created_at != nil {
		fields = append(fields, sheet.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SheetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sheet.FieldTemplateType:
		return m.TemplateType()
	case sheet.FieldSystemPrompt:
		return m.SystemPrompt()
	case sheet.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SheetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sheet.FieldTemplateType:
		return m.OldTemplateType(ctx)
	case sheet.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case sheet.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Sheet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SheetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sheet.FieldTemplateType:
		v, ok := value.(sheet.TemplateType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateType(v)
		return nil
	case sheet.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case sheet.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Sheet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SheetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SheetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SheetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Sheet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SheetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sheet.FieldTemplateType) {
		fields = append(fields, sheet.FieldTemplateType)
	}
	if m.FieldCleared(sheet.FieldSystemPrompt) {
		fields = append(fields, sheet.FieldSystemPrompt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SheetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SheetMutation) ClearField(name string) error {
	switch name {
	case sheet.FieldTemplateType:
		m.ClearTemplateType()
		return nil
	case sheet.FieldSystemPrompt:
		m.ClearSystemPrompt()
		return nil
	}
	return fmt.Errorf("unknown Sheet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SheetMutation) ResetField(name string) error {
	switch name {
	case sheet.FieldTemplateType:
		m.ResetTemplateType()
		return nil
	case sheet.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case sheet.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Sheet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SheetMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.columns != nil {
		edges = append(edges, sheet.EdgeColumns)
	}
	if m.cells != nil {
		edges = append(edges, sheet.EdgeCells)
	}
	if m.cell_statuses != nil {
		edges = append(edges, sheet.EdgeCellStatuses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SheetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sheet.EdgeColumns:
		ids := make([]ent.Value, 0, len(m.columns))
		for id := range m.columns {
			ids = append(ids, id)
		}
		return ids
	case sheet.EdgeCells:
		ids := make([]ent.Value, 0, len(m.cells))
		for id := range m.cells {
			ids = append(ids, id)
		}
		return ids
	case sheet.EdgeCellStatuses:
		ids := make([]ent.Value, 0, len(m.cell_statuses))
		for id := range m.cell_statuses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SheetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedcolumns != nil {
		edges = append(edges, sheet.EdgeColumns)
	}
	if m.removedcells != nil {
		edges = append(edges, sheet.EdgeCells)
	}
	if m.removedcell_statuses != nil {
		edges = append(edges, sheet.EdgeCellStatuses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SheetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sheet.EdgeColumns:
		ids := make([]ent.Value, 0, len(m.removedcolumns))
		for id := range m.removedcolumns {
			ids = append(ids, id)
		}
		return ids
	case sheet.EdgeCells:
		ids := make([]ent.Value, 0, len(m.removedcells))
		for id := range m.removedcells {
			ids = append(ids, id)
		}
		return ids
	case sheet.EdgeCellStatuses:
		ids := make([]ent.Value, 0, len(m.removedcell_statuses))
		for id := range m.removedcell_statuses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SheetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcolumns {
		edges = append(edges, sheet.EdgeColumns)
	}
	if m.clearedcells {
		edges = append(edges, sheet.EdgeCells)
	}
	if m.clearedcell_statuses {
		edges = append(edges, sheet.EdgeCellStatuses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SheetMutation) EdgeCleared(name string) bool {
	switch name {
	case sheet.EdgeColumns:
		return m.clearedcolumns
	case sheet.EdgeCells:
		return m.clearedcells
	case sheet.EdgeCellStatuses:
		return m.clearedcell_statuses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SheetMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Sheet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SheetMutation) ResetEdge(name string) error {
	switch name {
	case sheet.EdgeColumns:
		m.ResetColumns()
		return nil
	case sheet.EdgeCells:
		m.ResetCells()
		return nil
	case sheet.EdgeCellStatuses:
		m.ResetCellStatuses()
		return nil
	}
	return fmt.Errorf("unknown Sheet edge %s", name)
}
