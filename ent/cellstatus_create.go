// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rowboat-dev/rowboat/ent/cellstatus"
	"github.com/rowboat-dev/rowboat/ent/sheet"
)

// CellStatusCreate is the builder for creating a CellStatus entity.
type CellStatusCreate struct {
	config
	mutation *CellStatusMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSheetID sets the "sheet_id" field.
func (_c *CellStatusCreate) SetSheetID(v string) *CellStatusCreate {
	_c.mutation.SetSheetID(v)
	return _c
}

// SetRowIndex sets the "row_index" field.
func (_c *CellStatusCreate) SetRowIndex(v int) *CellStatusCreate {
	_c.mutation.SetRowIndex(v)
	return _c
}

// SetColIndex sets the "col_index" field.
func (_c *CellStatusCreate) SetColIndex(v int) *CellStatusCreate {
	_c.mutation.SetColIndex(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CellStatusCreate) SetStatus(v cellstatus.Status) *CellStatusCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CellStatusCreate) SetNillableStatus(v *cellstatus.Status) *CellStatusCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOperatorName sets the "operator_name" field.
func (_c *CellStatusCreate) SetOperatorName(v string) *CellStatusCreate {
	_c.mutation.SetOperatorName(v)
	return _c
}

// SetNillableOperatorName sets the "operator_name" field if the given value is not nil.
func (_c *CellStatusCreate) SetNillableOperatorName(v *string) *CellStatusCreate {
	if v != nil {
		_c.SetOperatorName(*v)
	}
	return _c
}

// SetStatusMessage sets the "status_message" field.
func (_c *CellStatusCreate) SetStatusMessage(v string) *CellStatusCreate {
	_c.mutation.SetStatusMessage(v)
	return _c
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_c *CellStatusCreate) SetNillableStatusMessage(v *string) *CellStatusCreate {
	if v != nil {
		_c.SetStatusMessage(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CellStatusCreate) SetUpdatedAt(v time.Time) *CellStatusCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CellStatusCreate) SetNillableUpdatedAt(v *time.Time) *CellStatusCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CellStatusCreate) SetID(v string) *CellStatusCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSheet sets the "sheet" edge to the Sheet entity.
func (_c *CellStatusCreate) SetSheet(v *Sheet) *CellStatusCreate {
	return _c.SetSheetID(v.ID)
}

// Mutation returns the CellStatusMutation object of the builder.
func (_c *CellStatusCreate) Mutation() *CellStatusMutation {
	return _c.mutation
}

// Save creates the CellStatus in the database.
func (_c *CellStatusCreate) Save(ctx context.Context) (*CellStatus, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CellStatusCreate) SaveX(ctx context.Context) *CellStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CellStatusCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CellStatusCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CellStatusCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := cellstatus.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cellstatus.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CellStatusCreate) check() error {
	if _, ok := _c.mutation.SheetID(); !ok {
		return &ValidationError{Name: "sheet_id", err: errors.New(`ent: missing required field "CellStatus.sheet_id"`)}
	}
	if _, ok := _c.mutation.RowIndex(); !ok {
		return &ValidationError{Name: "row_index", err: errors.New(`ent: missing required field "CellStatus.row_index"`)}
	}
	if _, ok := _c.mutation.ColIndex(); !ok {
		return &ValidationError{Name: "col_index", err: errors.New(`ent: missing required field "CellStatus.col_index"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CellStatus.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := cellstatus.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CellStatus.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CellStatus.updated_at"`)}
	}
	if len(_c.mutation.SheetIDs()) == 0 {
		return &ValidationError{Name: "sheet", err: errors.New(`ent: missing required edge "CellStatus.sheet"`)}
	}
	return nil
}

func (_c *CellStatusCreate) sqlSave(ctx context.Context) (*CellStatus, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CellStatus.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CellStatusCreate) createSpec() (*CellStatus, *sqlgraph.CreateSpec) {
	var (
		_node = &CellStatus{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cellstatus.Table, sqlgraph.NewFieldSpec(cellstatus.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RowIndex(); ok {
		_spec.SetField(cellstatus.FieldRowIndex, field.TypeInt, value)
		_node.RowIndex = value
	}
	if value, ok := _c.mutation.ColIndex(); ok {
		_spec.SetField(cellstatus.FieldColIndex, field.TypeInt, value)
		_node.ColIndex = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(cellstatus.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OperatorName(); ok {
		_spec.SetField(cellstatus.FieldOperatorName, field.TypeString, value)
		_node.OperatorName = &value
	}
	if value, ok := _c.mutation.StatusMessage(); ok {
		_spec.SetField(cellstatus.FieldStatusMessage, field.TypeString, value)
		_node.StatusMessage = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cellstatus.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SheetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cellstatus.SheetTable,
			Columns: []string{cellstatus.SheetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sheet.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SheetID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CellStatus.Create().
//		SetSheetID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CellStatusUpsert) {
//			SetSheetID(v+v).
//		}).
//		Exec(ctx)
func (_c *CellStatusCreate) OnConflict(opts ...sql.ConflictOption) *CellStatusUpsertOne {
	_c.conflict = opts
	return &CellStatusUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CellStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CellStatusCreate) OnConflictColumns(columns ...string) *CellStatusUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CellStatusUpsertOne{
		create: _c,
	}
}

type (
	// CellStatusUpsertOne is the builder for "upsert"-ing
	//  one CellStatus node.
	CellStatusUpsertOne struct {
		create *CellStatusCreate
	}

	// CellStatusUpsert is the "OnConflict" setter.
	CellStatusUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *CellStatusUpsert) SetStatus(v cellstatus.Status) *CellStatusUpsert {
	u.Set(cellstatus.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CellStatusUpsert) UpdateStatus() *CellStatusUpsert {
	u.SetExcluded(cellstatus.FieldStatus)
	return u
}

// SetOperatorName sets the "operator_name" field.
func (u *CellStatusUpsert) SetOperatorName(v string) *CellStatusUpsert {
	u.Set(cellstatus.FieldOperatorName, v)
	return u
}

// UpdateOperatorName sets the "operator_name" field to the value that was provided on create.
func (u *CellStatusUpsert) UpdateOperatorName() *CellStatusUpsert {
	u.SetExcluded(cellstatus.FieldOperatorName)
	return u
}

// ClearOperatorName clears the value of the "operator_name" field.
func (u *CellStatusUpsert) ClearOperatorName() *CellStatusUpsert {
	u.SetNull(cellstatus.FieldOperatorName)
	return u
}

// SetStatusMessage sets the "status_message" field.
func (u *CellStatusUpsert) SetStatusMessage(v string) *CellStatusUpsert {
	u.Set(cellstatus.FieldStatusMessage, v)
	return u
}

// UpdateStatusMessage sets the "status_message" field to the value that was provided on create.
func (u *CellStatusUpsert) UpdateStatusMessage() *CellStatusUpsert {
	u.SetExcluded(cellstatus.FieldStatusMessage)
	return u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (u *CellStatusUpsert) ClearStatusMessage() *CellStatusUpsert {
	u.SetNull(cellstatus.FieldStatusMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CellStatusUpsert) SetUpdatedAt(v time.Time) *CellStatusUpsert {
	u.Set(cellstatus.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CellStatusUpsert) UpdateUpdatedAt() *CellStatusUpsert {
	u.SetExcluded(cellstatus.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CellStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cellstatus.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CellStatusUpsertOne) UpdateNewValues() *CellStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(cellstatus.FieldID)
		}
		if _, exists := u.create.mutation.SheetID(); exists {
			s.SetIgnore(cellstatus.FieldSheetID)
		}
		if _, exists := u.create.mutation.RowIndex(); exists {
			s.SetIgnore(cellstatus.FieldRowIndex)
		}
		if _, exists := u.create.mutation.ColIndex(); exists {
			s.SetIgnore(cellstatus.FieldColIndex)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CellStatus.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CellStatusUpsertOne) Ignore() *CellStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CellStatusUpsertOne) DoNothing() *CellStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CellStatusCreate.OnConflict
// documentation for more info.
func (u *CellStatusUpsertOne) Update(set func(*CellStatusUpsert)) *CellStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CellStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *CellStatusUpsertOne) SetStatus(v cellstatus.Status) *CellStatusUpsertOne {
	return u.Update(func(s *CellStatusUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CellStatusUpsertOne) UpdateStatus() *CellStatusUpsertOne {
	return u.Update(func(s *CellStatusUpsert) {
		s.UpdateStatus()
	})
}

// SetOperatorName sets the "operator_name" field.
func (u *CellStatusUpsertOne) SetOperatorName(v string) *CellStatusUpsertOne {
	return u.Update(func(s *CellStatusUpsert) {
		s.SetOperatorName(v)
	})
}

// UpdateOperatorName sets the "operator_name" field to the value that was provided on create.
func (u *CellStatusUpsertOne) UpdateOperatorName() *CellStatusUpsertOne {
	return u.Update(func(s *CellStatusUpsert) {
		s.UpdateOperatorName()
	})
}

// ClearOperatorName clears the value of the "operator_name" field.
func (u *CellStatusUpsertOne) ClearOperatorName() *CellStatusUpsertOne {
	return u.Update(func(s *CellStatusUpsert) {
		s.ClearOperatorName()
	})
}

// SetStatusMessage sets the "status_message" field.
func (u *CellStatusUpsertOne) SetStatusMessage(v string) *CellStatusUpsertOne {
	return u.Update(func(s *CellStatusUpsert) {
		s.SetStatusMessage(v)
	})
}

// UpdateStatusMessage sets the "status_message" field to the value that was provided on create.
func (u *CellStatusUpsertOne) UpdateStatusMessage() *CellStatusUpsertOne {
	return u.Update(func(s *CellStatusUpsert) {
		s.UpdateStatusMessage()
	})
}

// ClearStatusMessage clears the value of the "status_message" field.
func (u *CellStatusUpsertOne) ClearStatusMessage() *CellStatusUpsertOne {
	return u.Update(func(s *CellStatusUpsert) {
		s.ClearStatusMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CellStatusUpsertOne) SetUpdatedAt(v time.Time) *CellStatusUpsertOne {
	return u.Update(func(s *CellStatusUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CellStatusUpsertOne) UpdateUpdatedAt() *CellStatusUpsertOne {
	return u.Update(func(s *CellStatusUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CellStatusUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CellStatusCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CellStatusUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CellStatusUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CellStatusUpsertOne.ID is not supported by MySQL driver. Use CellStatusUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CellStatusUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CellStatusCreateBulk is the builder for creating many CellStatus entities in bulk.
type CellStatusCreateBulk struct {
	config
	err      error
	builders []*CellStatusCreate
	conflict []sql.ConflictOption
}

// Save creates the CellStatus entities in the database.
func (_c *CellStatusCreateBulk) Save(ctx context.Context) ([]*CellStatus, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CellStatus, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CellStatusMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CellStatusCreateBulk) SaveX(ctx context.Context) []*CellStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CellStatusCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CellStatusCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CellStatus.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CellStatusUpsert) {
//			SetSheetID(v+v).
//		}).
//		Exec(ctx)
func (_c *CellStatusCreateBulk) OnConflict(opts ...sql.ConflictOption) *CellStatusUpsertBulk {
	_c.conflict = opts
	return &CellStatusUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CellStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CellStatusCreateBulk) OnConflictColumns(columns ...string) *CellStatusUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CellStatusUpsertBulk{
		create: _c,
	}
}

// CellStatusUpsertBulk is the builder for "upsert"-ing
// a bulk of CellStatus nodes.
type CellStatusUpsertBulk struct {
	create *CellStatusCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CellStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cellstatus.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CellStatusUpsertBulk) UpdateNewValues() *CellStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(cellstatus.FieldID)
			}
			if _, exists := b.mutation.SheetID(); exists {
				s.SetIgnore(cellstatus.FieldSheetID)
			}
			if _, exists := b.mutation.RowIndex(); exists {
				s.SetIgnore(cellstatus.FieldRowIndex)
			}
			if _, exists := b.mutation.ColIndex(); exists {
				s.SetIgnore(cellstatus.FieldColIndex)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CellStatus.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CellStatusUpsertBulk) Ignore() *CellStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CellStatusUpsertBulk) DoNothing() *CellStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CellStatusCreateBulk.OnConflict
// documentation for more info.
func (u *CellStatusUpsertBulk) Update(set func(*CellStatusUpsert)) *CellStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CellStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *CellStatusUpsertBulk) SetStatus(v cellstatus.Status) *CellStatusUpsertBulk {
	return u.Update(func(s *CellStatusUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CellStatusUpsertBulk) UpdateStatus() *CellStatusUpsertBulk {
	return u.Update(func(s *CellStatusUpsert) {
		s.UpdateStatus()
	})
}

// SetOperatorName sets the "operator_name" field.
func (u *CellStatusUpsertBulk) SetOperatorName(v string) *CellStatusUpsertBulk {
	return u.Update(func(s *CellStatusUpsert) {
		s.SetOperatorName(v)
	})
}

// UpdateOperatorName sets the "operator_name" field to the value that was provided on create.
func (u *CellStatusUpsertBulk) UpdateOperatorName() *CellStatusUpsertBulk {
	return u.Update(func(s *CellStatusUpsert) {
		s.UpdateOperatorName()
	})
}

// ClearOperatorName clears the value of the "operator_name" field.
func (u *CellStatusUpsertBulk) ClearOperatorName() *CellStatusUpsertBulk {
	return u.Update(func(s *CellStatusUpsert) {
		s.ClearOperatorName()
	})
}

// SetStatusMessage sets the "status_message" field.
func (u *CellStatusUpsertBulk) SetStatusMessage(v string) *CellStatusUpsertBulk {
	return u.Update(func(s *CellStatusUpsert) {
		s.SetStatusMessage(v)
	})
}

// UpdateStatusMessage sets the "status_message" field to the value that was provided on create.
func (u *CellStatusUpsertBulk) UpdateStatusMessage() *CellStatusUpsertBulk {
	return u.Update(func(s *CellStatusUpsert) {
		s.UpdateStatusMessage()
	})
}

// ClearStatusMessage clears the value of the "status_message" field.
func (u *CellStatusUpsertBulk) ClearStatusMessage() *CellStatusUpsertBulk {
	return u.Update(func(s *CellStatusUpsert) {
		s.ClearStatusMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CellStatusUpsertBulk) SetUpdatedAt(v time.Time) *CellStatusUpsertBulk {
	return u.Update(func(s *CellStatusUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CellStatusUpsertBulk) UpdateUpdatedAt() *CellStatusUpsertBulk {
	return u.Update(func(s *CellStatusUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CellStatusUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CellStatusCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CellStatusCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CellStatusUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
