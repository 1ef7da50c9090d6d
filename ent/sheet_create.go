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
	"github.com/rowboat-dev/rowboat/ent/cellstatus"
	"github.com/rowboat-dev/rowboat/ent/column"
	"github.com/rowboat-dev/rowboat/ent/sheet"
)

// SheetCreate is the builder for creating a Sheet entity.
type SheetCreate struct {
	config
	mutation *SheetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTemplateType sets the "template_type" field.
func (_c *SheetCreate) SetTemplateType(v sheet.TemplateType) *SheetCreate {
	_c.mutation.SetTemplateType(v)
	return _c
}

// SetNillableTemplateType sets the "template_type" field if the given value is not nil.
func (_c *SheetCreate) SetNillableTemplateType(v *sheet.TemplateType) *SheetCreate {
	if v != nil {
		_c.SetTemplateType(*v)
	}
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *SheetCreate) SetSystemPrompt(v string) *SheetCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_c *SheetCreate) SetNillableSystemPrompt(v *string) *SheetCreate {
	if v != nil {
		_c.SetSystemPrompt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SheetCreate) SetCreatedAt(v time.Time) *SheetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SheetCreate) SetNillableCreatedAt(v *time.Time) *SheetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SheetCreate) SetID(v string) *SheetCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddColumnIDs adds the "columns" edge to the Column entity by IDs.
func (_c *SheetCreate) AddColumnIDs(ids ...string) *SheetCreate {
	_c.mutation.AddColumnIDs(ids...)
	return _c
}

// AddColumns adds the "columns" edges to the Column entity.
func (_c *SheetCreate) AddColumns(v ...*Column) *SheetCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddColumnIDs(ids...)
}

// AddCellIDs adds the "cells" edge to the Cell entity by IDs.
func (_c *SheetCreate) AddCellIDs(ids ...string) *SheetCreate {
	_c.mutation.AddCellIDs(ids...)
	return _c
}

// AddCells adds the "cells" edges to the Cell entity.
func (_c *SheetCreate) AddCells(v ...*Cell) *SheetCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCellIDs(ids...)
}

// AddCellStatusIDs adds the "cell_statuses" edge to the CellStatus entity by IDs.
func (_c *SheetCreate) AddCellStatusIDs(ids ...string) *SheetCreate {
	_c.mutation.AddCellStatusIDs(ids...)
	return _c
}

// AddCellStatuses adds the "cell_statuses" edges to the CellStatus entity.
func (_c *SheetCreate) AddCellStatuses(v ...*CellStatus) *SheetCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCellStatusIDs(ids...)
}

// Mutation returns the SheetMutation object of the builder.
func (_c *SheetCreate) Mutation() *SheetMutation {
	return _c.mutation
}

// Save creates the Sheet in the database.
func (_c *SheetCreate) Save(ctx context.Context) (*Sheet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SheetCreate) SaveX(ctx context.Context) *Sheet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SheetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SheetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SheetCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sheet.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SheetCreate) check() error {
	if v, ok := _c.mutation.TemplateType(); ok {
		if err := sheet.TemplateTypeValidator(v); err != nil {
			return &ValidationError{Name: "template_type", err: fmt.Errorf(`ent: validator failed for field "Sheet.template_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Sheet.created_at"`)}
	}
	return nil
}

func (_c *SheetCreate) sqlSave(ctx context.Context) (*Sheet, error) {
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
			return nil, fmt.Errorf("unexpected Sheet.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SheetCreate) createSpec() (*Sheet, *sqlgraph.CreateSpec) {
	var (
		_node = &Sheet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sheet.Table, sqlgraph.NewFieldSpec(sheet.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TemplateType(); ok {
		_spec.SetField(sheet.FieldTemplateType, field.TypeEnum, value)
		_node.TemplateType = &value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(sheet.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sheet.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ColumnsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sheet.ColumnsTable,
			Columns: []string{sheet.ColumnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(column.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CellsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sheet.CellsTable,
			Columns: []string{sheet.CellsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cell.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CellStatusesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sheet.CellStatusesTable,
			Columns: []string{sheet.CellStatusesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cellstatus.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Sheet.Create().
//		SetTemplateType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SheetUpsert) {
//			SetTemplateType(v+v).
//		}).
//		Exec(ctx)
func (_c *SheetCreate) OnConflict(opts ...sql.ConflictOption) *SheetUpsertOne {
	_c.conflict = opts
	return &SheetUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Sheet.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SheetCreate) OnConflictColumns(columns ...string) *SheetUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SheetUpsertOne{
		create: _c,
	}
}

type (
	// SheetUpsertOne is the builder for "upsert"-ing
	//  one Sheet node.
	SheetUpsertOne struct {
		create *SheetCreate
	}

	// SheetUpsert is the "OnConflict" setter.
	SheetUpsert struct {
		*sql.UpdateSet
	}
)

// SetTemplateType sets the "template_type" field.
func (u *SheetUpsert) SetTemplateType(v sheet.TemplateType) *SheetUpsert {
	u.Set(sheet.FieldTemplateType, v)
	return u
}

// UpdateTemplateType sets the "template_type" field to the value that was provided on create.
func (u *SheetUpsert) UpdateTemplateType() *SheetUpsert {
	u.SetExcluded(sheet.FieldTemplateType)
	return u
}

// ClearTemplateType clears the value of the "template_type" field.
func (u *SheetUpsert) ClearTemplateType() *SheetUpsert {
	u.SetNull(sheet.FieldTemplateType)
	return u
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *SheetUpsert) SetSystemPrompt(v string) *SheetUpsert {
	u.Set(sheet.FieldSystemPrompt, v)
	return u
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *SheetUpsert) UpdateSystemPrompt() *SheetUpsert {
	u.SetExcluded(sheet.FieldSystemPrompt)
	return u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (u *SheetUpsert) ClearSystemPrompt() *SheetUpsert {
	u.SetNull(sheet.FieldSystemPrompt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Sheet.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sheet.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SheetUpsertOne) UpdateNewValues() *SheetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sheet.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sheet.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Sheet.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SheetUpsertOne) Ignore() *SheetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SheetUpsertOne) DoNothing() *SheetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SheetCreate.OnConflict
// documentation for more info.
func (u *SheetUpsertOne) Update(set func(*SheetUpsert)) *SheetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SheetUpsert{UpdateSet: update})
	}))
	return u
}

// SetTemplateType sets the "template_type" field.
func (u *SheetUpsertOne) SetTemplateType(v sheet.TemplateType) *SheetUpsertOne {
	return u.Update(func(s *SheetUpsert) {
		s.SetTemplateType(v)
	})
}

// UpdateTemplateType sets the "template_type" field to the value that was provided on create.
func (u *SheetUpsertOne) UpdateTemplateType() *SheetUpsertOne {
	return u.Update(func(s *SheetUpsert) {
		s.UpdateTemplateType()
	})
}

// ClearTemplateType clears the value of the "template_type" field.
func (u *SheetUpsertOne) ClearTemplateType() *SheetUpsertOne {
	return u.Update(func(s *SheetUpsert) {
		s.ClearTemplateType()
	})
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *SheetUpsertOne) SetSystemPrompt(v string) *SheetUpsertOne {
	return u.Update(func(s *SheetUpsert) {
		s.SetSystemPrompt(v)
	})
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *SheetUpsertOne) UpdateSystemPrompt() *SheetUpsertOne {
	return u.Update(func(s *SheetUpsert) {
		s.UpdateSystemPrompt()
	})
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (u *SheetUpsertOne) ClearSystemPrompt() *SheetUpsertOne {
	return u.Update(func(s *SheetUpsert) {
		s.ClearSystemPrompt()
	})
}

// Exec executes the query.
func (u *SheetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SheetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SheetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SheetUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SheetUpsertOne.ID is not supported by MySQL driver. Use SheetUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SheetUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SheetCreateBulk is the builder for creating many Sheet entities in bulk.
type SheetCreateBulk struct {
	config
	err      error
	builders []*SheetCreate
	conflict []sql.ConflictOption
}

// Save creates the Sheet entities in the database.
func (_c *SheetCreateBulk) Save(ctx context.Context) ([]*Sheet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Sheet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SheetMutation)
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
func (_c *SheetCreateBulk) SaveX(ctx context.Context) []*Sheet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SheetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SheetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Sheet.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SheetUpsert) {
//			SetTemplateType(v+v).
//		}).
//		Exec(ctx)
func (_c *SheetCreateBulk) OnConflict(opts ...sql.ConflictOption) *SheetUpsertBulk {
	_c.conflict = opts
	return &SheetUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Sheet.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SheetCreateBulk) OnConflictColumns(columns ...string) *SheetUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SheetUpsertBulk{
		create: _c,
	}
}

// SheetUpsertBulk is the builder for "upsert"-ing
// a bulk of Sheet nodes.
type SheetUpsertBulk struct {
	create *SheetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Sheet.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sheet.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SheetUpsertBulk) UpdateNewValues() *SheetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sheet.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sheet.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Sheet.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SheetUpsertBulk) Ignore() *SheetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SheetUpsertBulk) DoNothing() *SheetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SheetCreateBulk.OnConflict
// documentation for more info.
func (u *SheetUpsertBulk) Update(set func(*SheetUpsert)) *SheetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SheetUpsert{UpdateSet: update})
	}))
	return u
}

// SetTemplateType sets the "template_type" field.
func (u *SheetUpsertBulk) SetTemplateType(v sheet.TemplateType) *SheetUpsertBulk {
	return u.Update(func(s *SheetUpsert) {
		s.SetTemplateType(v)
	})
}

// UpdateTemplateType sets the "template_type" field to the value that was provided on create.
func (u *SheetUpsertBulk) UpdateTemplateType() *SheetUpsertBulk {
	return u.Update(func(s *SheetUpsert) {
		s.UpdateTemplateType()
	})
}

// ClearTemplateType clears the value of the "template_type" field.
func (u *SheetUpsertBulk) ClearTemplateType() *SheetUpsertBulk {
	return u.Update(func(s *SheetUpsert) {
		s.ClearTemplateType()
	})
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *SheetUpsertBulk) SetSystemPrompt(v string) *SheetUpsertBulk {
	return u.Update(func(s *SheetUpsert) {
		s.SetSystemPrompt(v)
	})
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *SheetUpsertBulk) UpdateSystemPrompt() *SheetUpsertBulk {
	return u.Update(func(s *SheetUpsert) {
		s.UpdateSystemPrompt()
	})
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (u *SheetUpsertBulk) ClearSystemPrompt() *SheetUpsertBulk {
	return u.Update(func(s *SheetUpsert) {
		s.ClearSystemPrompt()
	})
}

// Exec executes the query.
func (u *SheetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SheetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SheetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SheetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
