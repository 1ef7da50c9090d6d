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
	"github.com/rowboat-dev/rowboat/ent/cell"
	"github.com/rowboat-dev/rowboat/ent/sheet"
)

// CellCreate is the builder for creating a Cell entity.
type CellCreate struct {
	config
	mutation *CellMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSheetID sets the "sheet_id" field.
func (_c *CellCreate) SetSheetID(v string) *CellCreate {
	_c.mutation.SetSheetID(v)
	return _c
}

// SetRowIndex sets the "row_index" field.
func (_c *CellCreate) SetRowIndex(v int) *CellCreate {
	_c.mutation.SetRowIndex(v)
	return _c
}

// SetColIndex sets the "col_index" field.
func (_c *CellCreate) SetColIndex(v int) *CellCreate {
	_c.mutation.SetColIndex(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *CellCreate) SetContent(v string) *CellCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CellCreate) SetUpdatedAt(v time.Time) *CellCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CellCreate) SetNillableUpdatedAt(v *time.Time) *CellCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CellCreate) SetID(v string) *CellCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSheet sets the "sheet" edge to the Sheet entity.
func (_c *CellCreate) SetSheet(v *Sheet) *CellCreate {
	return _c.SetSheetID(v.ID)
}

// Mutation returns the CellMutation object of the builder.
func (_c *CellCreate) Mutation() *CellMutation {
	return _c.mutation
}

// Save creates the Cell in the database.
func (_c *CellCreate) Save(ctx context.Context) (*Cell, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CellCreate) SaveX(ctx context.Context) *Cell {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CellCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CellCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CellCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cell.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CellCreate) check() error {
	if _, ok := _c.mutation.SheetID(); !ok {
		return &ValidationError{Name: "sheet_id", err: errors.New(`ent: missing required field "Cell.sheet_id"`)}
	}
	if _, ok := _c.mutation.RowIndex(); !ok {
		return &ValidationError{Name: "row_index", err: errors.New(`ent: missing required field "Cell.row_index"`)}
	}
	if _, ok := _c.mutation.ColIndex(); !ok {
		return &ValidationError{Name: "col_index", err: errors.New(`ent: missing required field "Cell.col_index"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Cell.content"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Cell.updated_at"`)}
	}
	if len(_c.mutation.SheetIDs()) == 0 {
		return &ValidationError{Name: "sheet", err: errors.New(`ent: missing required edge "Cell.sheet"`)}
	}
	return nil
}

func (_c *CellCreate) sqlSave(ctx context.Context) (*Cell, error) {
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
			return nil, fmt.Errorf("unexpected Cell.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CellCreate) createSpec() (*Cell, *sqlgraph.CreateSpec) {
	var (
		_node = &Cell{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cell.Table, sqlgraph.NewFieldSpec(cell.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RowIndex(); ok {
		_spec.SetField(cell.FieldRowIndex, field.TypeInt, value)
		_node.RowIndex = value
	}
	if value, ok := _c.mutation.ColIndex(); ok {
		_spec.SetField(cell.FieldColIndex, field.TypeInt, value)
		_node.ColIndex = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(cell.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cell.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SheetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cell.SheetTable,
			Columns: []string{cell.SheetColumn},
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
//	client.Cell.Create().
//		SetSheetID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CellUpsert) {
//			SetSheetID(v+v).
//		}).
//		Exec(ctx)
func (_c *CellCreate) OnConflict(opts ...sql.ConflictOption) *CellUpsertOne {
	_c.conflict = opts
	return &CellUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Cell.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CellCreate) OnConflictColumns(columns ...string) *CellUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CellUpsertOne{
		create: _c,
	}
}

type (
	// CellUpsertOne is the builder for "upsert"-ing
	//  one Cell node.
	CellUpsertOne struct {
		create *CellCreate
	}

	// CellUpsert is the "OnConflict" setter.
	CellUpsert struct {
		*sql.UpdateSet
	}
)

// SetContent sets the "content" field.
func (u *CellUpsert) SetContent(v string) *CellUpsert {
	u.Set(cell.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *CellUpsert) UpdateContent() *CellUpsert {
	u.SetExcluded(cell.FieldContent)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CellUpsert) SetUpdatedAt(v time.Time) *CellUpsert {
	u.Set(cell.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CellUpsert) UpdateUpdatedAt() *CellUpsert {
	u.SetExcluded(cell.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Cell.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cell.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CellUpsertOne) UpdateNewValues() *CellUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(cell.FieldID)
		}
		if _, exists := u.create.mutation.SheetID(); exists {
			s.SetIgnore(cell.FieldSheetID)
		}
		if _, exists := u.create.mutation.RowIndex(); exists {
			s.SetIgnore(cell.FieldRowIndex)
		}
		if _, exists := u.create.mutation.ColIndex(); exists {
			s.SetIgnore(cell.FieldColIndex)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Cell.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CellUpsertOne) Ignore() *CellUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CellUpsertOne) DoNothing() *CellUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CellCreate.OnConflict
// documentation for more info.
func (u *CellUpsertOne) Update(set func(*CellUpsert)) *CellUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CellUpsert{UpdateSet: update})
	}))
	return u
}

// SetContent sets the "content" field.
func (u *CellUpsertOne) SetContent(v string) *CellUpsertOne {
	return u.Update(func(s *CellUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *CellUpsertOne) UpdateContent() *CellUpsertOne {
	return u.Update(func(s *CellUpsert) {
		s.UpdateContent()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CellUpsertOne) SetUpdatedAt(v time.Time) *CellUpsertOne {
	return u.Update(func(s *CellUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CellUpsertOne) UpdateUpdatedAt() *CellUpsertOne {
	return u.Update(func(s *CellUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CellUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CellCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CellUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CellUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CellUpsertOne.ID is not supported by MySQL driver. Use CellUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CellUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CellCreateBulk is the builder for creating many Cell entities in bulk.
type CellCreateBulk struct {
	config
	err      error
	builders []*CellCreate
	conflict []sql.ConflictOption
}

// Save creates the Cell entities in the database.
func (_c *CellCreateBulk) Save(ctx context.Context) ([]*Cell, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Cell, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CellMutation)
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
func (_c *CellCreateBulk) SaveX(ctx context.Context) []*Cell {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CellCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CellCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Cell.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CellUpsert) {
//			SetSheetID(v+v).
//		}).
//		Exec(ctx)
func (_c *CellCreateBulk) OnConflict(opts ...sql.ConflictOption) *CellUpsertBulk {
	_c.conflict = opts
	return &CellUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Cell.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CellCreateBulk) OnConflictColumns(columns ...string) *CellUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CellUpsertBulk{
		create: _c,
	}
}

// CellUpsertBulk is the builder for "upsert"-ing
// a bulk of Cell nodes.
type CellUpsertBulk struct {
	create *CellCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Cell.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cell.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CellUpsertBulk) UpdateNewValues() *CellUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(cell.FieldID)
			}
			if _, exists := b.mutation.SheetID(); exists {
				s.SetIgnore(cell.FieldSheetID)
			}
			if _, exists := b.mutation.RowIndex(); exists {
				s.SetIgnore(cell.FieldRowIndex)
			}
			if _, exists := b.mutation.ColIndex(); exists {
				s.SetIgnore(cell.FieldColIndex)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Cell.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CellUpsertBulk) Ignore() *CellUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CellUpsertBulk) DoNothing() *CellUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CellCreateBulk.OnConflict
// documentation for more info.
func (u *CellUpsertBulk) Update(set func(*CellUpsert)) *CellUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CellUpsert{UpdateSet: update})
	}))
	return u
}

// SetContent sets the "content" field.
func (u *CellUpsertBulk) SetContent(v string) *CellUpsertBulk {
	return u.Update(func(s *CellUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *CellUpsertBulk) UpdateContent() *CellUpsertBulk {
	return u.Update(func(s *CellUpsert) {
		s.UpdateContent()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CellUpsertBulk) SetUpdatedAt(v time.Time) *CellUpsertBulk {
	return u.Update(func(s *CellUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CellUpsertBulk) UpdateUpdatedAt() *CellUpsertBulk {
	return u.Update(func(s *CellUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CellUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CellCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CellCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CellUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
