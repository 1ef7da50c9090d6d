// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/rowboat-dev/rowboat/ent/column"
	"github.com/rowboat-dev/rowboat/ent/predicate"
)

// ColumnUpdate is the builder for updating Column entities.
type ColumnUpdate struct {
	config
	hooks    []Hook
	mutation *ColumnMutation
}

// Where appends a list predicates to the ColumnUpdate builder.
func (_u *ColumnUpdate) Where(ps ...predicate.Column) *ColumnUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPosition sets the "position" field.
func (_u *ColumnUpdate) SetPosition(v int) *ColumnUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ColumnUpdate) SetNillablePosition(v *int) *ColumnUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ColumnUpdate) AddPosition(v int) *ColumnUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ColumnUpdate) SetTitle(v string) *ColumnUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ColumnUpdate) SetNillableTitle(v *string) *ColumnUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDataType sets the "data_type" field.
func (_u *ColumnUpdate) SetDataType(v column.DataType) *ColumnUpdate {
	_u.mutation.SetDataType(v)
	return _u
}

// SetNillableDataType sets the "data_type" field if the given value is not nil.
func (_u *ColumnUpdate) SetNillableDataType(v *column.DataType) *ColumnUpdate {
	if v != nil {
		_u.SetDataType(*v)
	}
	return _u
}

// SetOperatorType sets the "operator_type" field.
func (_u *ColumnUpdate) SetOperatorType(v column.OperatorType) *ColumnUpdate {
	_u.mutation.SetOperatorType(v)
	return _u
}

// SetNillableOperatorType sets the "operator_type" field if the given value is not nil.
func (_u *ColumnUpdate) SetNillableOperatorType(v *column.OperatorType) *ColumnUpdate {
	if v != nil {
		_u.SetOperatorType(*v)
	}
	return _u
}

// ClearOperatorType clears the value of the "operator_type" field.
func (_u *ColumnUpdate) ClearOperatorType() *ColumnUpdate {
	_u.mutation.ClearOperatorType()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ColumnUpdate) SetPrompt(v string) *ColumnUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ColumnUpdate) SetNillablePrompt(v *string) *ColumnUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *ColumnUpdate) ClearPrompt() *ColumnUpdate {
	_u.mutation.ClearPrompt()
	return _u
}

// SetOperatorConfig sets the "operator_config" field.
func (_u *ColumnUpdate) SetOperatorConfig(v map[string]interface{}) *ColumnUpdate {
	_u.mutation.SetOperatorConfig(v)
	return _u
}

// ClearOperatorConfig clears the value of the "operator_config" field.
func (_u *ColumnUpdate) ClearOperatorConfig() *ColumnUpdate {
	_u.mutation.ClearOperatorConfig()
	return _u
}

// SetMaxLength sets the "max_length" field.
func (_u *ColumnUpdate) SetMaxLength(v int) *ColumnUpdate {
	_u.mutation.ResetMaxLength()
	_u.mutation.SetMaxLength(v)
	return _u
}

// SetNillableMaxLength sets the "max_length" field if the given value is not nil.
func (_u *ColumnUpdate) SetNillableMaxLength(v *int) *ColumnUpdate {
	if v != nil {
		_u.SetMaxLength(*v)
	}
	return _u
}

// AddMaxLength adds value to the "max_length" field.
func (_u *ColumnUpdate) AddMaxLength(v int) *ColumnUpdate {
	_u.mutation.AddMaxLength(v)
	return _u
}

// ClearMaxLength clears the value of the "max_length" field.
func (_u *ColumnUpdate) ClearMaxLength() *ColumnUpdate {
	_u.mutation.ClearMaxLength()
	return _u
}

// SetMinLength sets the "min_length" field.
func (_u *ColumnUpdate) SetMinLength(v int) *ColumnUpdate {
	_u.mutation.ResetMinLength()
	_u.mutation.SetMinLength(v)
	return _u
}

// SetNillableMinLength sets the "min_length" field if the given value is not nil.
func (_u *ColumnUpdate) SetNillableMinLength(v *int) *ColumnUpdate {
	if v != nil {
		_u.SetMinLength(*v)
	}
	return _u
}

// AddMinLength adds value to the "min_length" field.
func (_u *ColumnUpdate) AddMinLength(v int) *ColumnUpdate {
	_u.mutation.AddMinLength(v)
	return _u
}

// ClearMinLength clears the value of the "min_length" field.
func (_u *ColumnUpdate) ClearMinLength() *ColumnUpdate {
	_u.mutation.ClearMinLength()
	return _u
}

// SetExamples sets the "examples" field.
func (_u *ColumnUpdate) SetExamples(v []string) *ColumnUpdate {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *ColumnUpdate) AppendExamples(v []string) *ColumnUpdate {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *ColumnUpdate) ClearExamples() *ColumnUpdate {
	_u.mutation.ClearExamples()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ColumnUpdate) SetDescription(v string) *ColumnUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ColumnUpdate) SetNillableDescription(v *string) *ColumnUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ColumnUpdate) ClearDescription() *ColumnUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequired sets the "required" field.
func (_u *ColumnUpdate) SetRequired(v bool) *ColumnUpdate {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *ColumnUpdate) SetNillableRequired(v *bool) *ColumnUpdate {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// Mutation returns the ColumnMutation object of the builder.
func (_u *ColumnUpdate) Mutation() *ColumnMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ColumnUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ColumnUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ColumnUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ColumnUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ColumnUpdate) check() error {
	if v, ok := _u.mutation.DataType(); ok {
		if err := column.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "Column.data_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OperatorType(); ok {
		if err := column.OperatorTypeValidator(v); err != nil {
			return &ValidationError{Name: "operator_type", err: fmt.Errorf(`ent: validator failed for field "Column.operator_type": %w`, err)}
		}
	}
	if _u.mutation.SheetCleared() && len(_u.mutation.SheetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Column.sheet"`)
	}
	return nil
}

func (_u *ColumnUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(column.Table, column.Columns, sqlgraph.NewFieldSpec(column.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(column.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(column.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(column.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataType(); ok {
		_spec.SetField(column.FieldDataType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OperatorType(); ok {
		_spec.SetField(column.FieldOperatorType, field.TypeEnum, value)
	}
	if _u.mutation.OperatorTypeCleared() {
		_spec.ClearField(column.FieldOperatorType, field.TypeEnum)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(column.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(column.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.OperatorConfig(); ok {
		_spec.SetField(column.FieldOperatorConfig, field.TypeJSON, value)
	}
	if _u.mutation.OperatorConfigCleared() {
		_spec.ClearField(column.FieldOperatorConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxLength(); ok {
		_spec.SetField(column.FieldMaxLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxLength(); ok {
		_spec.AddField(column.FieldMaxLength, field.TypeInt, value)
	}
	if _u.mutation.MaxLengthCleared() {
		_spec.ClearField(column.FieldMaxLength, field.TypeInt)
	}
	if value, ok := _u.mutation.MinLength(); ok {
		_spec.SetField(column.FieldMinLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinLength(); ok {
		_spec.AddField(column.FieldMinLength, field.TypeInt, value)
	}
	if _u.mutation.MinLengthCleared() {
		_spec.ClearField(column.FieldMinLength, field.TypeInt)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(column.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, column.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(column.FieldExamples, field.TypeJSON)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(column.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(column.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(column.FieldRequired, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{column.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ColumnUpdateOne is the builder for updating a single Column entity.
type ColumnUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ColumnMutation
}

// SetPosition sets the "position" field.
func (_u *ColumnUpdateOne) SetPosition(v int) *ColumnUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ColumnUpdateOne) SetNillablePosition(v *int) *ColumnUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ColumnUpdateOne) AddPosition(v int) *ColumnUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ColumnUpdateOne) SetTitle(v string) *ColumnUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ColumnUpdateOne) SetNillableTitle(v *string) *ColumnUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDataType sets the "data_type" field.
func (_u *ColumnUpdateOne) SetDataType(v column.DataType) *ColumnUpdateOne {
	_u.mutation.SetDataType(v)
	return _u
}

// SetNillableDataType sets the "data_type" field if the given value is not nil.
func (_u *ColumnUpdateOne) SetNillableDataType(v *column.DataType) *ColumnUpdateOne {
	if v != nil {
		_u.SetDataType(*v)
	}
	return _u
}

// SetOperatorType sets the "operator_type" field.
func (_u *ColumnUpdateOne) SetOperatorType(v column.OperatorType) *ColumnUpdateOne {
	_u.mutation.SetOperatorType(v)
	return _u
}

// SetNillableOperatorType sets the "operator_type" field if the given value is not nil.
func (_u *ColumnUpdateOne) SetNillableOperatorType(v *column.OperatorType) *ColumnUpdateOne {
	if v != nil {
		_u.SetOperatorType(*v)
	}
	return _u
}

// ClearOperatorType clears the value of the "operator_type" field.
func (_u *ColumnUpdateOne) ClearOperatorType() *ColumnUpdateOne {
	_u.mutation.ClearOperatorType()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ColumnUpdateOne) SetPrompt(v string) *ColumnUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ColumnUpdateOne) SetNillablePrompt(v *string) *ColumnUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *ColumnUpdateOne) ClearPrompt() *ColumnUpdateOne {
	_u.mutation.ClearPrompt()
	return _u
}

// SetOperatorConfig sets the "operator_config" field.
func (_u *ColumnUpdateOne) SetOperatorConfig(v map[string]interface{}) *ColumnUpdateOne {
	_u.mutation.SetOperatorConfig(v)
	return _u
}

// ClearOperatorConfig clears the value of the "operator_config" field.
func (_u *ColumnUpdateOne) ClearOperatorConfig() *ColumnUpdateOne {
	_u.mutation.ClearOperatorConfig()
	return _u
}

// SetMaxLength sets the "max_length" field.
func (_u *ColumnUpdateOne) SetMaxLength(v int) *ColumnUpdateOne {
	_u.mutation.ResetMaxLength()
	_u.mutation.SetMaxLength(v)
	return _u
}

// SetNillableMaxLength sets the "max_length" field if the given value is not nil.
func (_u *ColumnUpdateOne) SetNillableMaxLength(v *int) *ColumnUpdateOne {
	if v != nil {
		_u.SetMaxLength(*v)
	}
	return _u
}

// AddMaxLength adds value to the "max_length" field.
func (_u *ColumnUpdateOne) AddMaxLength(v int) *ColumnUpdateOne {
	_u.mutation.AddMaxLength(v)
	return _u
}

// ClearMaxLength clears the value of the "max_length" field.
func (_u *ColumnUpdateOne) ClearMaxLength() *ColumnUpdateOne {
	_u.mutation.ClearMaxLength()
	return _u
}

// SetMinLength sets the "min_length" field.
func (_u *ColumnUpdateOne) SetMinLength(v int) *ColumnUpdateOne {
	_u.mutation.ResetMinLength()
	_u.mutation.SetMinLength(v)
	return _u
}

// SetNillableMinLength sets the "min_length" field if the given value is not nil.
func (_u *ColumnUpdateOne) SetNillableMinLength(v *int) *ColumnUpdateOne {
	if v != nil {
		_u.SetMinLength(*v)
	}
	return _u
}

// AddMinLength adds value to the "min_length" field.
func (_u *ColumnUpdateOne) AddMinLength(v int) *ColumnUpdateOne {
	_u.mutation.AddMinLength(v)
	return _u
}

// ClearMinLength clears the value of the "min_length" field.
func (_u *ColumnUpdateOne) ClearMinLength() *ColumnUpdateOne {
	_u.mutation.ClearMinLength()
	return _u
}

// SetExamples sets the "examples" field.
func (_u *ColumnUpdateOne) SetExamples(v []string) *ColumnUpdateOne {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *ColumnUpdateOne) AppendExamples(v []string) *ColumnUpdateOne {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *ColumnUpdateOne) ClearExamples() *ColumnUpdateOne {
	_u.mutation.ClearExamples()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ColumnUpdateOne) SetDescription(v string) *ColumnUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ColumnUpdateOne) SetNillableDescription(v *string) *ColumnUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ColumnUpdateOne) ClearDescription() *ColumnUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequired sets the "required" field.
func (_u *ColumnUpdateOne) SetRequired(v bool) *ColumnUpdateOne {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *ColumnUpdateOne) SetNillableRequired(v *bool) *ColumnUpdateOne {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// Mutation returns the ColumnMutation object of the builder.
func (_u *ColumnUpdateOne) Mutation() *ColumnMutation {
	return _u.mutation
}

// Where appends a list predicates to the ColumnUpdate builder.
func (_u *ColumnUpdateOne) Where(ps ...predicate.Column) *ColumnUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ColumnUpdateOne) Select(field string, fields ...string) *ColumnUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Column entity.
func (_u *ColumnUpdateOne) Save(ctx context.Context) (*Column, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ColumnUpdateOne) SaveX(ctx context.Context) *Column {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ColumnUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ColumnUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ColumnUpdateOne) check() error {
	if v, ok := _u.mutation.DataType(); ok {
		if err := column.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "Column.data_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OperatorType(); ok {
		if err := column.OperatorTypeValidator(v); err != nil {
			return &ValidationError{Name: "operator_type", err: fmt.Errorf(`ent: validator failed for field "Column.operator_type": %w`, err)}
		}
	}
	if _u.mutation.SheetCleared() && len(_u.mutation.SheetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Column.sheet"`)
	}
	return nil
}

func (_u *ColumnUpdateOne) sqlSave(ctx context.Context) (_node *Column, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(column.Table, column.Columns, sqlgraph.NewFieldSpec(column.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Column.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, column.FieldID)
		for _, f := range fields {
			if !column.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != column.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(column.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(column.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(column.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataType(); ok {
		_spec.SetField(column.FieldDataType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OperatorType(); ok {
		_spec.SetField(column.FieldOperatorType, field.TypeEnum, value)
	}
	if _u.mutation.OperatorTypeCleared() {
		_spec.ClearField(column.FieldOperatorType, field.TypeEnum)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(column.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(column.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.OperatorConfig(); ok {
		_spec.SetField(column.FieldOperatorConfig, field.TypeJSON, value)
	}
	if _u.mutation.OperatorConfigCleared() {
		_spec.ClearField(column.FieldOperatorConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxLength(); ok {
		_spec.SetField(column.FieldMaxLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxLength(); ok {
		_spec.AddField(column.FieldMaxLength, field.TypeInt, value)
	}
	if _u.mutation.MaxLengthCleared() {
		_spec.ClearField(column.FieldMaxLength, field.TypeInt)
	}
	if value, ok := _u.mutation.MinLength(); ok {
		_spec.SetField(column.FieldMinLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinLength(); ok {
		_spec.AddField(column.FieldMinLength, field.TypeInt, value)
	}
	if _u.mutation.MinLengthCleared() {
		_spec.ClearField(column.FieldMinLength, field.TypeInt)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(column.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, column.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(column.FieldExamples, field.TypeJSON)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(column.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(column.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(column.FieldRequired, field.TypeBool, value)
	}
	_node = &Column{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{column.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
