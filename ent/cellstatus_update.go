// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rowboat-dev/rowboat/ent/cellstatus"
	"github.com/rowboat-dev/rowboat/ent/predicate"
)

// CellStatusUpdate is the builder for updating CellStatus entities.
type CellStatusUpdate struct {
	config
	hooks    []Hook
	mutation *CellStatusMutation
}

// Where appends a list predicates to the CellStatusUpdate builder.
func (_u *CellStatusUpdate) Where(ps ...predicate.CellStatus) *CellStatusUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CellStatusUpdate) SetStatus(v cellstatus.Status) *CellStatusUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CellStatusUpdate) SetNillableStatus(v *cellstatus.Status) *CellStatusUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOperatorName sets the "operator_name" field.
func (_u *CellStatusUpdate) SetOperatorName(v string) *CellStatusUpdate {
	_u.mutation.SetOperatorName(v)
	return _u
}

// SetNillableOperatorName sets the "operator_name" field if the given value is not nil.
func (_u *CellStatusUpdate) SetNillableOperatorName(v *string) *CellStatusUpdate {
	if v != nil {
		_u.SetOperatorName(*v)
	}
	return _u
}

// ClearOperatorName clears the value of the "operator_name" field.
func (_u *CellStatusUpdate) ClearOperatorName() *CellStatusUpdate {
	_u.mutation.ClearOperatorName()
	return _u
}

// SetStatusMessage sets the "status_message" field.
func (_u *CellStatusUpdate) SetStatusMessage(v string) *CellStatusUpdate {
	_u.mutation.SetStatusMessage(v)
	return _u
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_u *CellStatusUpdate) SetNillableStatusMessage(v *string) *CellStatusUpdate {
	if v != nil {
		_u.SetStatusMessage(*v)
	}
	return _u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (_u *CellStatusUpdate) ClearStatusMessage() *CellStatusUpdate {
	_u.mutation.ClearStatusMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CellStatusUpdate) SetUpdatedAt(v time.Time) *CellStatusUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CellStatusMutation object of the builder.
func (_u *CellStatusUpdate) Mutation() *CellStatusMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CellStatusUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CellStatusUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CellStatusUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CellStatusUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CellStatusUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cellstatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CellStatusUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := cellstatus.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CellStatus.status": %w`, err)}
		}
	}
	if _u.mutation.SheetCleared() && len(_u.mutation.SheetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CellStatus.sheet"`)
	}
	return nil
}

func (_u *CellStatusUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cellstatus.Table, cellstatus.Columns, sqlgraph.NewFieldSpec(cellstatus.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(cellstatus.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OperatorName(); ok {
		_spec.SetField(cellstatus.FieldOperatorName, field.TypeString, value)
	}
	if _u.mutation.OperatorNameCleared() {
		_spec.ClearField(cellstatus.FieldOperatorName, field.TypeString)
	}
	if value, ok := _u.mutation.StatusMessage(); ok {
		_spec.SetField(cellstatus.FieldStatusMessage, field.TypeString, value)
	}
	if _u.mutation.StatusMessageCleared() {
		_spec.ClearField(cellstatus.FieldStatusMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cellstatus.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cellstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CellStatusUpdateOne is the builder for updating a single CellStatus entity.
type CellStatusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CellStatusMutation
}

// SetStatus sets the "status" field.
func (_u *CellStatusUpdateOne) SetStatus(v cellstatus.Status) *CellStatusUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CellStatusUpdateOne) SetNillableStatus(v *cellstatus.Status) *CellStatusUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOperatorName sets the "operator_name" field.
func (_u *CellStatusUpdateOne) SetOperatorName(v string) *CellStatusUpdateOne {
	_u.mutation.SetOperatorName(v)
	return _u
}

// SetNillableOperatorName sets the "operator_name" field if the given value is not nil.
func (_u *CellStatusUpdateOne) SetNillableOperatorName(v *string) *CellStatusUpdateOne {
	if v != nil {
		_u.SetOperatorName(*v)
	}
	return _u
}

// ClearOperatorName clears the value of the "operator_name" field.
func (_u *CellStatusUpdateOne) ClearOperatorName() *CellStatusUpdateOne {
	_u.mutation.ClearOperatorName()
	return _u
}

// SetStatusMessage sets the "status_message" field.
func (_u *CellStatusUpdateOne) SetStatusMessage(v string) *CellStatusUpdateOne {
	_u.mutation.SetStatusMessage(v)
	return _u
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_u *CellStatusUpdateOne) SetNillableStatusMessage(v *string) *CellStatusUpdateOne {
	if v != nil {
		_u.SetStatusMessage(*v)
	}
	return _u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (_u *CellStatusUpdateOne) ClearStatusMessage() *CellStatusUpdateOne {
	_u.mutation.ClearStatusMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CellStatusUpdateOne) SetUpdatedAt(v time.Time) *CellStatusUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CellStatusMutation object of the builder.
func (_u *CellStatusUpdateOne) Mutation() *CellStatusMutation {
	return _u.mutation
}

// Where appends a list predicates to the CellStatusUpdate builder.
func (_u *CellStatusUpdateOne) Where(ps ...predicate.CellStatus) *CellStatusUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CellStatusUpdateOne) Select(field string, fields ...string) *CellStatusUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CellStatus entity.
func (_u *CellStatusUpdateOne) Save(ctx context.Context) (*CellStatus, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CellStatusUpdateOne) SaveX(ctx context.Context) *CellStatus {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CellStatusUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CellStatusUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CellStatusUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cellstatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CellStatusUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := cellstatus.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CellStatus.status": %w`, err)}
		}
	}
	if _u.mutation.SheetCleared() && len(_u.mutation.SheetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CellStatus.sheet"`)
	}
	return nil
}

func (_u *CellStatusUpdateOne) sqlSave(ctx context.Context) (_node *CellStatus, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cellstatus.Table, cellstatus.Columns, sqlgraph.NewFieldSpec(cellstatus.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CellStatus.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cellstatus.FieldID)
		for _, f := range fields {
			if !cellstatus.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cellstatus.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(cellstatus.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OperatorName(); ok {
		_spec.SetField(cellstatus.FieldOperatorName, field.TypeString, value)
	}
	if _u.mutation.OperatorNameCleared() {
		_spec.ClearField(cellstatus.FieldOperatorName, field.TypeString)
	}
	if value, ok := _u.mutation.StatusMessage(); ok {
		_spec.SetField(cellstatus.FieldStatusMessage, field.TypeString, value)
	}
	if _u.mutation.StatusMessageCleared() {
		_spec.ClearField(cellstatus.FieldStatusMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cellstatus.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CellStatus{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cellstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
