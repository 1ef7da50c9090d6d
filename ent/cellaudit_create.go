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
	"github.com/rowboat-dev/rowboat/ent/cellaudit"
)

// CellAuditCreate is the builder for creating a CellAudit entity.
type CellAuditCreate struct {
	config
	mutation *CellAuditMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSheetID sets the "sheet_id" field.
func (_c *CellAuditCreate) SetSheetID(v string) *CellAuditCreate {
	_c.mutation.SetSheetID(v)
	return _c
}

// SetRowIndex sets the "row_index" field.
func (_c *CellAuditCreate) SetRowIndex(v int) *CellAuditCreate {
	_c.mutation.SetRowIndex(v)
	return _c
}

// SetColIndex sets the "col_index" field.
func (_c *CellAuditCreate) SetColIndex(v int) *CellAuditCreate {
	_c.mutation.SetColIndex(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *CellAuditCreate) SetContent(v string) *CellAuditCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetUpdateType sets the "update_type" field.
func (_c *CellAuditCreate) SetUpdateType(v string) *CellAuditCreate {
	_c.mutation.SetUpdateType(v)
	return _c
}

// SetAppliedAt sets the "applied_at" field.
func (_c *CellAuditCreate) SetAppliedAt(v time.Time) *CellAuditCreate {
	_c.mutation.SetAppliedAt(v)
	return _c
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_c *CellAuditCreate) SetNillableAppliedAt(v *time.Time) *CellAuditCreate {
	if v != nil {
		_c.SetAppliedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CellAuditCreate) SetID(v string) *CellAuditCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CellAuditMutation object of the builder.
func (_c *CellAuditCreate) Mutation() *CellAuditMutation {
	return _c.mutation
}

// Save creates the CellAudit in the database.
func (_c *CellAuditCreate) Save(ctx context.Context) (*CellAudit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CellAuditCreate) SaveX(ctx context.Context) *CellAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CellAuditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CellAuditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CellAuditCreate) defaults() {
	if _, ok := _c.mutation.AppliedAt(); !ok {
		v := cellaudit.DefaultAppliedAt()
		_c.mutation.SetAppliedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CellAuditCreate) check() error {
	if _, ok := _c.mutation.SheetID(); !ok {
		return &ValidationError{Name: "sheet_id", err: errors.New(`ent: missing required field "CellAudit.sheet_id"`)}
	}
	if _, ok := _c.mutation.RowIndex(); !ok {
		return &ValidationError{Name: "row_index", err: errors.New(`ent: missing required field "CellAudit.row_index"`)}
	}
	if _, ok := _c.mutation.ColIndex(); !ok {
		return &ValidationError{Name: "col_index", err: errors.New(`ent: missing required field "CellAudit.col_index"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "CellAudit.content"`)}
	}
	if _, ok := _c.mutation.UpdateType(); !ok {
		return &ValidationError{Name: "update_type", err: errors.New(`ent: missing required field "CellAudit.update_type"`)}
	}
	if _, ok := _c.mutation.AppliedAt(); !ok {
		return &ValidationError{Name: "applied_at", err: errors.New(`ent: missing required field "CellAudit.applied_at"`)}
	}
	return nil
}

func (_c *CellAuditCreate) sqlSave(ctx context.Context) (*CellAudit, error) {
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
			return nil, fmt.Errorf("unexpected CellAudit.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CellAuditCreate) createSpec() (*CellAudit, *sqlgraph.CreateSpec) {
	var (
		_node = &CellAudit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cellaudit.Table, sqlgraph.NewFieldSpec(cellaudit.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SheetID(); ok {
		_spec.SetField(cellaudit.FieldSheetID, field.TypeString, value)
		_node.SheetID = value
	}
	if value, ok := _c.mutation.RowIndex(); ok {
		_spec.SetField(cellaudit.FieldRowIndex, field.TypeInt, value)
		_node.RowIndex = value
	}
	if value, ok := _c.mutation.ColIndex(); ok {
		_spec.SetField(cellaudit.FieldColIndex, field.TypeInt, value)
		_node.ColIndex = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(cellaudit.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.UpdateType(); ok {
		_spec.SetField(cellaudit.FieldUpdateType, field.TypeString, value)
		_node.UpdateType = value
	}
	if value, ok := _c.mutation.AppliedAt(); ok {
		_spec.SetField(cellaudit.FieldAppliedAt, field.TypeTime, value)
		_node.AppliedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CellAudit.Create().
//		SetSheetID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CellAuditUpsert) {
//			SetSheetID(v+v).
//		}).
//		Exec(ctx)
func (_c *CellAuditCreate) OnConflict(opts ...sql.ConflictOption) *CellAuditUpsertOne {
	_c.conflict = opts
	return &CellAuditUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CellAudit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CellAuditCreate) OnConflictColumns(columns ...string) *CellAuditUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CellAuditUpsertOne{
		create: _c,
	}
}

type (
	// CellAuditUpsertOne is the builder for "upsert"-ing
	//  one CellAudit node.
	CellAuditUpsertOne struct {
		create *CellAuditCreate
	}

	// CellAuditUpsert is the "OnConflict" setter.
	CellAuditUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CellAudit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cellaudit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CellAuditUpsertOne) UpdateNewValues() *CellAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(cellaudit.FieldID)
		}
		if _, exists := u.create.mutation.SheetID(); exists {
			s.SetIgnore(cellaudit.FieldSheetID)
		}
		if _, exists := u.create.mutation.RowIndex(); exists {
			s.SetIgnore(cellaudit.FieldRowIndex)
		}
		if _, exists := u.create.mutation.ColIndex(); exists {
			s.SetIgnore(cellaudit.FieldColIndex)
		}
		if _, exists := u.create.mutation.Content(); exists {
			s.SetIgnore(cellaudit.FieldContent)
		}
		if _, exists := u.create.mutation.UpdateType(); exists {
			s.SetIgnore(cellaudit.FieldUpdateType)
		}
		if _, exists := u.create.mutation.AppliedAt(); exists {
			s.SetIgnore(cellaudit.FieldAppliedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CellAudit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CellAuditUpsertOne) Ignore() *CellAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CellAuditUpsertOne) DoNothing() *CellAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CellAuditCreate.OnConflict
// documentation for more info.
func (u *CellAuditUpsertOne) Update(set func(*CellAuditUpsert)) *CellAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CellAuditUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *CellAuditUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CellAuditCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CellAuditUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CellAuditUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CellAuditUpsertOne.ID is not supported by MySQL driver. Use CellAuditUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CellAuditUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CellAuditCreateBulk is the builder for creating many CellAudit entities in bulk.
type CellAuditCreateBulk struct {
	config
	err      error
	builders []*CellAuditCreate
	conflict []sql.ConflictOption
}

// Save creates the CellAudit entities in the database.
func (_c *CellAuditCreateBulk) Save(ctx context.Context) ([]*CellAudit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CellAudit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CellAuditMutation)
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
func (_c *CellAuditCreateBulk) SaveX(ctx context.Context) []*CellAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CellAuditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CellAuditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CellAudit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CellAuditUpsert) {
//			SetSheetID(v+v).
//		}).
//		Exec(ctx)
func (_c *CellAuditCreateBulk) OnConflict(opts ...sql.ConflictOption) *CellAuditUpsertBulk {
	_c.conflict = opts
	return &CellAuditUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CellAudit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CellAuditCreateBulk) OnConflictColumns(columns ...string) *CellAuditUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CellAuditUpsertBulk{
		create: _c,
	}
}

// CellAuditUpsertBulk is the builder for "upsert"-ing
// a bulk of CellAudit nodes.
type CellAuditUpsertBulk struct {
	create *CellAuditCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CellAudit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cellaudit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CellAuditUpsertBulk) UpdateNewValues() *CellAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(cellaudit.FieldID)
			}
			if _, exists := b.mutation.SheetID(); exists {
				s.SetIgnore(cellaudit.FieldSheetID)
			}
			if _, exists := b.mutation.RowIndex(); exists {
				s.SetIgnore(cellaudit.FieldRowIndex)
			}
			if _, exists := b.mutation.ColIndex(); exists {
				s.SetIgnore(cellaudit.FieldColIndex)
			}
			if _, exists := b.mutation.Content(); exists {
				s.SetIgnore(cellaudit.FieldContent)
			}
			if _, exists := b.mutation.UpdateType(); exists {
				s.SetIgnore(cellaudit.FieldUpdateType)
			}
			if _, exists := b.mutation.AppliedAt(); exists {
				s.SetIgnore(cellaudit.FieldAppliedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CellAudit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CellAuditUpsertBulk) Ignore() *CellAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CellAuditUpsertBulk) DoNothing() *CellAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CellAuditCreateBulk.OnConflict
// documentation for more info.
func (u *CellAuditUpsertBulk) Update(set func(*CellAuditUpsert)) *CellAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CellAuditUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *CellAuditUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CellAuditCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CellAuditCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CellAuditUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
