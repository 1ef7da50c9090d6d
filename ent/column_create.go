// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rowboat-dev/rowboat/ent/column"
	"github.com/rowboat-dev/rowboat/ent/sheet"
)

// ColumnCreate is the builder for creating a Column entity.
type ColumnCreate struct {
	config
	mutation *ColumnMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSheetID sets the "sheet_id" field.
func (_c *ColumnCreate) SetSheetID(v string) *ColumnCreate {
	_c.mutation.SetSheetID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *ColumnCreate) SetPosition(v int) *ColumnCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ColumnCreate) SetTitle(v string) *ColumnCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDataType sets the "data_type" field.
func (_c *ColumnCreate) SetDataType(v column.DataType) *ColumnCreate {
	_c.mutation.SetDataType(v)
	return _c
}

// SetNillableDataType sets the "data_type" field if the given value is not nil.
func (_c *ColumnCreate) SetNillableDataType(v *column.DataType) *ColumnCreate {
	if v != nil {
		_c.SetDataType(*v)
	}
	return _c
}

// SetOperatorType sets the "operator_type" field.
func (_c *ColumnCreate) SetOperatorType(v column.OperatorType) *ColumnCreate {
	_c.mutation.SetOperatorType(v)
	return _c
}

// SetNillableOperatorType sets the "operator_type" field if the given value is not nil.
func (_c *ColumnCreate) SetNillableOperatorType(v *column.OperatorType) *ColumnCreate {
	if v != nil {
		_c.SetOperatorType(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ColumnCreate) SetPrompt(v string) *ColumnCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_c *ColumnCreate) SetNillablePrompt(v *string) *ColumnCreate {
	if v != nil {
		_c.SetPrompt(*v)
	}
	return _c
}

// SetOperatorConfig sets the "operator_config" field.
func (_c *ColumnCreate) SetOperatorConfig(v map[string]interface{}) *ColumnCreate {
	_c.mutation.SetOperatorConfig(v)
	return _c
}

// SetMaxLength sets the "max_length" field.
func (_c *ColumnCreate) SetMaxLength(v int) *ColumnCreate {
	_c.mutation.SetMaxLength(v)
	return _c
}

// SetNillableMaxLength sets the "max_length" field if the given value is not nil.
func (_c *ColumnCreate) SetNillableMaxLength(v *int) *ColumnCreate {
	if v != nil {
		_c.SetMaxLength(*v)
	}
	return _c
}

// SetMinLength sets the "min_length" field.
func (_c *ColumnCreate) SetMinLength(v int) *ColumnCreate {
	_c.mutation.SetMinLength(v)
	return _c
}

// SetNillableMinLength sets the "min_length" field if the given value is not nil.
func (_c *ColumnCreate) SetNillableMinLength(v *int) *ColumnCreate {
	if v != nil {
		_c.SetMinLength(*v)
	}
	return _c
}

// SetExamples sets the "examples" field.
func (_c *ColumnCreate) SetExamples(v []string) *ColumnCreate {
	_c.mutation.SetExamples(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ColumnCreate) SetDescription(v string) *ColumnCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ColumnCreate) SetNillableDescription(v *string) *ColumnCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRequired sets the "required" field.
func (_c *ColumnCreate) SetRequired(v bool) *ColumnCreate {
	_c.mutation.SetRequired(v)
	return _c
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_c *ColumnCreate) SetNillableRequired(v *bool) *ColumnCreate {
	if v != nil {
		_c.SetRequired(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ColumnCreate) SetID(v string) *ColumnCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSheet sets the "sheet" edge to the Sheet entity.
func (_c *ColumnCreate) SetSheet(v *Sheet) *ColumnCreate {
	return _c.SetSheetID(v.ID)
}

// Mutation returns the ColumnMutation object of the builder.
func (_c *ColumnCreate) Mutation() *ColumnMutation {
	return _c.mutation
}

// Save creates the Column in the database.
func (_c *ColumnCreate) Save(ctx context.Context) (*Column, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ColumnCreate) SaveX(ctx context.Context) *Column {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ColumnCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ColumnCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ColumnCreate) defaults() {
	if _, ok := _c.mutation.DataType(); !ok {
		v := column.DefaultDataType
		_c.mutation.SetDataType(v)
	}
	if _, ok := _c.mutation.Required(); !ok {
		v := column.DefaultRequired
		_c.mutation.SetRequired(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ColumnCreate) check() error {
	if _, ok := _c.mutation.SheetID(); !ok {
		return &ValidationError{Name: "sheet_id", err: errors.New(`ent: missing required field "Column.sheet_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Column.position"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Column.title"`)}
	}
	if _, ok := _c.mutation.DataType(); !ok {
		return &ValidationError{Name: "data_type", err: errors.New(`ent: missing required field "Column.data_type"`)}
	}
	if v, ok := _c.mutation.DataType(); ok {
		if err := column.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "Column.data_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.OperatorType(); ok {
		if err := column.OperatorTypeValidator(v); err != nil {
			return &ValidationError{Name: "operator_type", err: fmt.Errorf(`ent: validator failed for field "Column.operator_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Required(); !ok {
		return &ValidationError{Name: "required", err: errors.New(`ent: missing required field "Column.required"`)}
	}
	if len(_c.mutation.SheetIDs()) == 0 {
		return &ValidationError{Name: "sheet", err: errors.New(`ent: missing required edge "Column.sheet"`)}
	}
	return nil
}

func (_c *ColumnCreate) sqlSave(ctx context.Context) (*Column, error) {
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
			return nil, fmt.Errorf("unexpected Column.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ColumnCreate) createSpec() (*Column, *sqlgraph.CreateSpec) {
	var (
		_node = &Column{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(column.Table, sqlgraph.NewFieldSpec(column.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(column.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(column.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.DataType(); ok {
		_spec.SetField(column.FieldDataType, field.TypeEnum, value)
		_node.DataType = value
	}
	if value, ok := _c.mutation.OperatorType(); ok {
		_spec.SetField(column.FieldOperatorType, field.TypeEnum, value)
		_node.OperatorType = &value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(column.FieldPrompt, field.TypeString, value)
		_node.Prompt = &value
	}
	if value, ok := _c.mutation.OperatorConfig(); ok {
		_spec.SetField(column.FieldOperatorConfig, field.TypeJSON, value)
		_node.OperatorConfig = value
	}
	if value, ok := _c.mutation.MaxLength(); ok {
		_spec.SetField(column.FieldMaxLength, field.TypeInt, value)
		_node.MaxLength = &value
	}
	if value, ok := _c.mutation.MinLength(); ok {
		_spec.SetField(column.FieldMinLength, field.TypeInt, value)
		_node.MinLength = &value
	}
	if value, ok := _c.mutation.Examples(); ok {
		_spec.SetField(column.FieldExamples, field.TypeJSON, value)
		_node.Examples = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(column.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Required(); ok {
		_spec.SetField(column.FieldRequired, field.TypeBool, value)
		_node.Required = value
	}
	if nodes := _c.mutation.SheetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   column.SheetTable,
			Columns: []string{column.SheetColumn},
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
//	client.Column.Create().
//		SetSheetID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ColumnUpsert) {
//			SetSheetID(v+v).
//		}).
//		Exec(ctx)
func (_c *ColumnCreate) OnConflict(opts ...sql.ConflictOption) *ColumnUpsertOne {
	_c.conflict = opts
	return &ColumnUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Column.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ColumnCreate) OnConflictColumns(columns ...string) *ColumnUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ColumnUpsertOne{
		create: _c,
	}
}

type (
	// ColumnUpsertOne is the builder for "upsert"-ing
	//  one Column node.
	ColumnUpsertOne struct {
		create *ColumnCreate
	}

	// ColumnUpsert is the "OnConflict" setter.
	ColumnUpsert struct {
		*sql.UpdateSet
	}
)

// SetPosition sets the "position" field.
func (u *ColumnUpsert) SetPosition(v int) *ColumnUpsert {
	u.Set(column.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ColumnUpsert) UpdatePosition() *ColumnUpsert {
	u.SetExcluded(column.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *ColumnUpsert) AddPosition(v int) *ColumnUpsert {
	u.Add(column.FieldPosition, v)
	return u
}

// SetTitle sets the "title" field.
func (u *ColumnUpsert) SetTitle(v string) *ColumnUpsert {
	u.Set(column.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ColumnUpsert) UpdateTitle() *ColumnUpsert {
	u.SetExcluded(column.FieldTitle)
	return u
}

// SetDataType sets the "data_type" field.
func (u *ColumnUpsert) SetDataType(v column.DataType) *ColumnUpsert {
	u.Set(column.FieldDataType, v)
	return u
}

// UpdateDataType sets the "data_type" field to the value that was provided on create.
func (u *ColumnUpsert) UpdateDataType() *ColumnUpsert {
	u.SetExcluded(column.FieldDataType)
	return u
}

// SetOperatorType sets the "operator_type" field.
func (u *ColumnUpsert) SetOperatorType(v column.OperatorType) *ColumnUpsert {
	u.Set(column.FieldOperatorType, v)
	return u
}

// UpdateOperatorType sets the "operator_type" field to the value that was provided on create.
func (u *ColumnUpsert) UpdateOperatorType() *ColumnUpsert {
	u.SetExcluded(column.FieldOperatorType)
	return u
}

// ClearOperatorType clears the value of the "operator_type" field.
func (u *ColumnUpsert) ClearOperatorType() *ColumnUpsert {
	u.SetNull(column.FieldOperatorType)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *ColumnUpsert) SetPrompt(v string) *ColumnUpsert {
	u.Set(column.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *ColumnUpsert) UpdatePrompt() *ColumnUpsert {
	u.SetExcluded(column.FieldPrompt)
	return u
}

// ClearPrompt clears the value of the "prompt" field.
func (u *ColumnUpsert) ClearPrompt() *ColumnUpsert {
	u.SetNull(column.FieldPrompt)
	return u
}

// SetOperatorConfig sets the "operator_config" field.
func (u *ColumnUpsert) SetOperatorConfig(v map[string]interface{}) *ColumnUpsert {
	u.Set(column.FieldOperatorConfig, v)
	return u
}

// UpdateOperatorConfig sets the "operator_config" field to the value that was provided on create.
func (u *ColumnUpsert) UpdateOperatorConfig() *ColumnUpsert {
	u.SetExcluded(column.FieldOperatorConfig)
	return u
}

// ClearOperatorConfig clears the value of the "operator_config" field.
func (u *ColumnUpsert) ClearOperatorConfig() *ColumnUpsert {
	u.SetNull(column.FieldOperatorConfig)
	return u
}

// SetMaxLength sets the "max_length" field.
func (u *ColumnUpsert) SetMaxLength(v int) *ColumnUpsert {
	u.Set(column.FieldMaxLength, v)
	return u
}

// UpdateMaxLength sets the "max_length" field to the value that was provided on create.
func (u *ColumnUpsert) UpdateMaxLength() *ColumnUpsert {
	u.SetExcluded(column.FieldMaxLength)
	return u
}

// AddMaxLength adds v to the "max_length" field.
func (u *ColumnUpsert) AddMaxLength(v int) *ColumnUpsert {
	u.Add(column.FieldMaxLength, v)
	return u
}

// ClearMaxLength clears the value of the "max_length" field.
func (u *ColumnUpsert) ClearMaxLength() *ColumnUpsert {
	u.SetNull(column.FieldMaxLength)
	return u
}

// SetMinLength sets the "min_length" field.
func (u *ColumnUpsert) SetMinLength(v int) *ColumnUpsert {
	u.Set(column.FieldMinLength, v)
	return u
}

// UpdateMinLength sets the "min_length" field to the value that was provided on create.
func (u *ColumnUpsert) UpdateMinLength() *ColumnUpsert {
	u.SetExcluded(column.FieldMinLength)
	return u
}

// AddMinLength adds v to the "min_length" field.
func (u *ColumnUpsert) AddMinLength(v int) *ColumnUpsert {
	u.Add(column.FieldMinLength, v)
	return u
}

// ClearMinLength clears the value of the "min_length" field.
func (u *ColumnUpsert) ClearMinLength() *ColumnUpsert {
	u.SetNull(column.FieldMinLength)
	return u
}

// SetExamples sets the "examples" field.
func (u *ColumnUpsert) SetExamples(v []string) *ColumnUpsert {
	u.Set(column.FieldExamples, v)
	return u
}

// UpdateExamples sets the "examples" field to the value that was provided on create.
func (u *ColumnUpsert) UpdateExamples() *ColumnUpsert {
	u.SetExcluded(column.FieldExamples)
	return u
}

// ClearExamples clears the value of the "examples" field.
func (u *ColumnUpsert) ClearExamples() *ColumnUpsert {
	u.SetNull(column.FieldExamples)
	return u
}

// SetDescription sets the "description" field.
func (u *ColumnUpsert) SetDescription(v string) *ColumnUpsert {
	u.Set(column.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ColumnUpsert) UpdateDescription() *ColumnUpsert {
	u.SetExcluded(column.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ColumnUpsert) ClearDescription() *ColumnUpsert {
	u.SetNull(column.FieldDescription)
	return u
}

// SetRequired sets the "required" field.
func (u *ColumnUpsert) SetRequired(v bool) *ColumnUpsert {
	u.Set(column.FieldRequired, v)
	return u
}

// UpdateRequired sets the "required" field to the value that was provided on create.
func (u *ColumnUpsert) UpdateRequired() *ColumnUpsert {
	u.SetExcluded(column.FieldRequired)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Column.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(column.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ColumnUpsertOne) UpdateNewValues() *ColumnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(column.FieldID)
		}
		if _, exists := u.create.mutation.SheetID(); exists {
			s.SetIgnore(column.FieldSheetID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Column.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ColumnUpsertOne) Ignore() *ColumnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ColumnUpsertOne) DoNothing() *ColumnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ColumnCreate.OnConflict
// documentation for more info.
func (u *ColumnUpsertOne) Update(set func(*ColumnUpsert)) *ColumnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ColumnUpsert{UpdateSet: update})
	}))
	return u
}

// SetPosition sets the "position" field.
func (u *ColumnUpsertOne) SetPosition(v int) *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *ColumnUpsertOne) AddPosition(v int) *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ColumnUpsertOne) UpdatePosition() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdatePosition()
	})
}

// SetTitle sets the "title" field.
func (u *ColumnUpsertOne) SetTitle(v string) *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ColumnUpsertOne) UpdateTitle() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateTitle()
	})
}

// SetDataType sets the "data_type" field.
func (u *ColumnUpsertOne) SetDataType(v column.DataType) *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.SetDataType(v)
	})
}

// UpdateDataType sets the "data_type" field to the value that was provided on create.
func (u *ColumnUpsertOne) UpdateDataType() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateDataType()
	})
}

// SetOperatorType sets the "operator_type" field.
func (u *ColumnUpsertOne) SetOperatorType(v column.OperatorType) *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.SetOperatorType(v)
	})
}

// UpdateOperatorType sets the "operator_type" field to the value that was provided on create.
func (u *ColumnUpsertOne) UpdateOperatorType() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateOperatorType()
	})
}

// ClearOperatorType clears the value of the "operator_type" field.
func (u *ColumnUpsertOne) ClearOperatorType() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.ClearOperatorType()
	})
}

// SetPrompt sets the "prompt" field.
func (u *ColumnUpsertOne) SetPrompt(v string) *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *ColumnUpsertOne) UpdatePrompt() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdatePrompt()
	})
}

// ClearPrompt clears the value of the "prompt" field.
func (u *ColumnUpsertOne) ClearPrompt() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.ClearPrompt()
	})
}

// SetOperatorConfig sets the "operator_config" field.
func (u *ColumnUpsertOne) SetOperatorConfig(v map[string]interface{}) *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.SetOperatorConfig(v)
	})
}

// UpdateOperatorConfig sets the "operator_config" field to the value that was provided on create.
func (u *ColumnUpsertOne) UpdateOperatorConfig() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateOperatorConfig()
	})
}

// ClearOperatorConfig clears the value of the "operator_config" field.
func (u *ColumnUpsertOne) ClearOperatorConfig() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.ClearOperatorConfig()
	})
}

// SetMaxLength sets the "max_length" field.
func (u *ColumnUpsertOne) SetMaxLength(v int) *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.SetMaxLength(v)
	})
}

// AddMaxLength adds v to the "max_length" field.
func (u *ColumnUpsertOne) AddMaxLength(v int) *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.AddMaxLength(v)
	})
}

// UpdateMaxLength sets the "max_length" field to the value that was provided on create.
func (u *ColumnUpsertOne) UpdateMaxLength() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateMaxLength()
	})
}

// ClearMaxLength clears the value of the "max_length" field.
func (u *ColumnUpsertOne) ClearMaxLength() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.ClearMaxLength()
	})
}

// SetMinLength sets the "min_length" field.
func (u *ColumnUpsertOne) SetMinLength(v int) *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.SetMinLength(v)
	})
}

// AddMinLength adds v to the "min_length" field.
func (u *ColumnUpsertOne) AddMinLength(v int) *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.AddMinLength(v)
	})
}

// UpdateMinLength sets the "min_length" field to the value that was provided on create.
func (u *ColumnUpsertOne) UpdateMinLength() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateMinLength()
	})
}

// ClearMinLength clears the value of the "min_length" field.
func (u *ColumnUpsertOne) ClearMinLength() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.ClearMinLength()
	})
}

// SetExamples sets the "examples" field.
func (u *ColumnUpsertOne) SetExamples(v []string) *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.SetExamples(v)
	})
}

// UpdateExamples sets the "examples" field to the value that was provided on create.
func (u *ColumnUpsertOne) UpdateExamples() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateExamples()
	})
}

// ClearExamples clears the value of the "examples" field.
func (u *ColumnUpsertOne) ClearExamples() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.ClearExamples()
	})
}

// SetDescription sets the "description" field.
func (u *ColumnUpsertOne) SetDescription(v string) *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ColumnUpsertOne) UpdateDescription() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ColumnUpsertOne) ClearDescription() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.ClearDescription()
	})
}

// SetRequired sets the "required" field.
func (u *ColumnUpsertOne) SetRequired(v bool) *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.SetRequired(v)
	})
}

// UpdateRequired sets the "required" field to the value that was provided on create.
func (u *ColumnUpsertOne) UpdateRequired() *ColumnUpsertOne {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateRequired()
	})
}

// Exec executes the query.
func (u *ColumnUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ColumnCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ColumnUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ColumnUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ColumnUpsertOne.ID is not supported by MySQL driver. Use ColumnUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ColumnUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ColumnCreateBulk is the builder for creating many Column entities in bulk.
type ColumnCreateBulk struct {
	config
	err      error
	builders []*ColumnCreate
	conflict []sql.ConflictOption
}

// Save creates the Column entities in the database.
func (_c *ColumnCreateBulk) Save(ctx context.Context) ([]*Column, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Column, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ColumnMutation)
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
func (_c *ColumnCreateBulk) SaveX(ctx context.Context) []*Column {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ColumnCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ColumnCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Column.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ColumnUpsert) {
//			SetSheetID(v+v).
//		}).
//		Exec(ctx)
func (_c *ColumnCreateBulk) OnConflict(opts ...sql.ConflictOption) *ColumnUpsertBulk {
	_c.conflict = opts
	return &ColumnUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Column.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ColumnCreateBulk) OnConflictColumns(columns ...string) *ColumnUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ColumnUpsertBulk{
		create: _c,
	}
}

// ColumnUpsertBulk is the builder for "upsert"-ing
// a bulk of Column nodes.
type ColumnUpsertBulk struct {
	create *ColumnCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Column.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(column.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ColumnUpsertBulk) UpdateNewValues() *ColumnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(column.FieldID)
			}
			if _, exists := b.mutation.SheetID(); exists {
				s.SetIgnore(column.FieldSheetID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Column.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ColumnUpsertBulk) Ignore() *ColumnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ColumnUpsertBulk) DoNothing() *ColumnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ColumnCreateBulk.OnConflict
// documentation for more info.
func (u *ColumnUpsertBulk) Update(set func(*ColumnUpsert)) *ColumnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ColumnUpsert{UpdateSet: update})
	}))
	return u
}

// SetPosition sets the "position" field.
func (u *ColumnUpsertBulk) SetPosition(v int) *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *ColumnUpsertBulk) AddPosition(v int) *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ColumnUpsertBulk) UpdatePosition() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdatePosition()
	})
}

// SetTitle sets the "title" field.
func (u *ColumnUpsertBulk) SetTitle(v string) *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ColumnUpsertBulk) UpdateTitle() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateTitle()
	})
}

// SetDataType sets the "data_type" field.
func (u *ColumnUpsertBulk) SetDataType(v column.DataType) *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.SetDataType(v)
	})
}

// UpdateDataType sets the "data_type" field to the value that was provided on create.
func (u *ColumnUpsertBulk) UpdateDataType() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateDataType()
	})
}

// SetOperatorType sets the "operator_type" field.
func (u *ColumnUpsertBulk) SetOperatorType(v column.OperatorType) *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.SetOperatorType(v)
	})
}

// UpdateOperatorType sets the "operator_type" field to the value that was provided on create.
func (u *ColumnUpsertBulk) UpdateOperatorType() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateOperatorType()
	})
}

// ClearOperatorType clears the value of the "operator_type" field.
func (u *ColumnUpsertBulk) ClearOperatorType() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.ClearOperatorType()
	})
}

// SetPrompt sets the "prompt" field.
func (u *ColumnUpsertBulk) SetPrompt(v string) *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *ColumnUpsertBulk) UpdatePrompt() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdatePrompt()
	})
}

// ClearPrompt clears the value of the "prompt" field.
func (u *ColumnUpsertBulk) ClearPrompt() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.ClearPrompt()
	})
}

// SetOperatorConfig sets the "operator_config" field.
func (u *ColumnUpsertBulk) SetOperatorConfig(v map[string]interface{}) *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.SetOperatorConfig(v)
	})
}

// UpdateOperatorConfig sets the "operator_config" field to the value that was provided on create.
func (u *ColumnUpsertBulk) UpdateOperatorConfig() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateOperatorConfig()
	})
}

// ClearOperatorConfig clears the value of the "operator_config" field.
func (u *ColumnUpsertBulk) ClearOperatorConfig() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.ClearOperatorConfig()
	})
}

// SetMaxLength sets the "max_length" field.
func (u *ColumnUpsertBulk) SetMaxLength(v int) *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.SetMaxLength(v)
	})
}

// AddMaxLength adds v to the "max_length" field.
func (u *ColumnUpsertBulk) AddMaxLength(v int) *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.AddMaxLength(v)
	})
}

// UpdateMaxLength sets the "max_length" field to the value that was provided on create.
func (u *ColumnUpsertBulk) UpdateMaxLength() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateMaxLength()
	})
}

// ClearMaxLength clears the value of the "max_length" field.
func (u *ColumnUpsertBulk) ClearMaxLength() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.ClearMaxLength()
	})
}

// SetMinLength sets the "min_length" field.
func (u *ColumnUpsertBulk) SetMinLength(v int) *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.SetMinLength(v)
	})
}

// AddMinLength adds v to the "min_length" field.
func (u *ColumnUpsertBulk) AddMinLength(v int) *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.AddMinLength(v)
	})
}

// UpdateMinLength sets the "min_length" field to the value that was provided on create.
func (u *ColumnUpsertBulk) UpdateMinLength() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateMinLength()
	})
}

// ClearMinLength clears the value of the "min_length" field.
func (u *ColumnUpsertBulk) ClearMinLength() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.ClearMinLength()
	})
}

// SetExamples sets the "examples" field.
func (u *ColumnUpsertBulk) SetExamples(v []string) *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.SetExamples(v)
	})
}

// UpdateExamples sets the "examples" field to the value that was provided on create.
func (u *ColumnUpsertBulk) UpdateExamples() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateExamples()
	})
}

// ClearExamples clears the value of the "examples" field.
func (u *ColumnUpsertBulk) ClearExamples() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.ClearExamples()
	})
}

// SetDescription sets the "description" field.
func (u *ColumnUpsertBulk) SetDescription(v string) *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ColumnUpsertBulk) UpdateDescription() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ColumnUpsertBulk) ClearDescription() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.ClearDescription()
	})
}

// SetRequired sets the "required" field.
func (u *ColumnUpsertBulk) SetRequired(v bool) *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.SetRequired(v)
	})
}

// UpdateRequired sets the "required" field to the value that was provided on create.
func (u *ColumnUpsertBulk) UpdateRequired() *ColumnUpsertBulk {
	return u.Update(func(s *ColumnUpsert) {
		s.UpdateRequired()
	})
}

// Exec executes the query.
func (u *ColumnUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ColumnCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ColumnCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ColumnUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
