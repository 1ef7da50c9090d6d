// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rowboat-dev/rowboat/ent/cell"
	"github.com/rowboat-dev/rowboat/ent/cellstatus"
	"github.com/rowboat-dev/rowboat/ent/column"
	"github.com/rowboat-dev/rowboat/ent/predicate"
	"github.com/rowboat-dev/rowboat/ent/sheet"
)

// SheetUpdate is the builder for updating Sheet entities.
type SheetUpdate struct {
	config
	hooks    []Hook
	mutation *SheetMutation
}

// Where appends a list predicates to the SheetUpdate builder.
func (_u *SheetUpdate) Where(ps ...predicate.Sheet) *SheetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTemplateType sets the "template_type" field.
func (_u *SheetUpdate) SetTemplateType(v sheet.TemplateType) *SheetUpdate {
	_u.mutation.SetTemplateType(v)
	return _u
}

// SetNillableTemplateType sets the "template_type" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableTemplateType(v *sheet.TemplateType) *SheetUpdate {
	if v != nil {
		_u.SetTemplateType(*v)
	}
	return _u
}

// ClearTemplateType clears the value of the "template_type" field.
func (_u *SheetUpdate) ClearTemplateType() *SheetUpdate {
	_u.mutation.ClearTemplateType()
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *SheetUpdate) SetSystemPrompt(v string) *SheetUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableSystemPrompt(v *string) *SheetUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *SheetUpdate) ClearSystemPrompt() *SheetUpdate {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// AddColumnIDs adds the "columns" edge to the Column entity by IDs.
func (_u *SheetUpdate) AddColumnIDs(ids ...string) *SheetUpdate {
	_u.mutation.AddColumnIDs(ids...)
	return _u
}

// AddColumns adds the "columns" edges to the Column entity.
func (_u *SheetUpdate) AddColumns(v ...*Column) *SheetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddColumnIDs(ids...)
}

// AddCellIDs adds the "cells" edge to the Cell entity by IDs.
func (_u *SheetUpdate) AddCellIDs(ids ...string) *SheetUpdate {
	_u.mutation.AddCellIDs(ids...)
	return _u
}

// AddCells adds the "cells" edges to the Cell entity.
func (_u *SheetUpdate) AddCells(v ...*Cell) *SheetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCellIDs(ids...)
}

// AddCellStatusIDs adds the "cell_statuses" edge to the CellStatus entity by IDs.
func (_u *SheetUpdate) AddCellStatusIDs(ids ...string) *SheetUpdate {
	_u.mutation.AddCellStatusIDs(ids...)
	return _u
}

// AddCellStatuses adds the "cell_statuses" edges to the CellStatus entity.
func (_u *SheetUpdate) AddCellStatuses(v ...*CellStatus) *SheetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCellStatusIDs(ids...)
}

// Mutation returns the SheetMutation object of the builder.
func (_u *SheetUpdate) Mutation() *SheetMutation {
	return _u.mutation
}

// ClearColumns clears all "columns" edges to the Column entity.
func (_u *SheetUpdate) ClearColumns() *SheetUpdate {
	_u.mutation.ClearColumns()
	return _u
}

// RemoveColumnIDs removes the "columns" edge to Column entities by IDs.
func (_u *SheetUpdate) RemoveColumnIDs(ids ...string) *SheetUpdate {
	_u.mutation.RemoveColumnIDs(ids...)
	return _u
}

// RemoveColumns removes "columns" edges to Column entities.
func (_u *SheetUpdate) RemoveColumns(v ...*Column) *SheetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveColumnIDs(ids...)
}

// ClearCells clears all "cells" edges to the Cell entity.
func (_u *SheetUpdate) ClearCells() *SheetUpdate {
	_u.mutation.ClearCells()
	return _u
}

// RemoveCellIDs removes the "cells" edge to Cell entities by IDs.
func (_u *SheetUpdate) RemoveCellIDs(ids ...string) *SheetUpdate {
	_u.mutation.RemoveCellIDs(ids...)
	return _u
}

// RemoveCells removes "cells" edges to Cell entities.
func (_u *SheetUpdate) RemoveCells(v ...*Cell) *SheetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCellIDs(ids...)
}

// ClearCellStatuses clears all "cell_statuses" edges to the CellStatus entity.
func (_u *SheetUpdate) ClearCellStatuses() *SheetUpdate {
	_u.mutation.ClearCellStatuses()
	return _u
}

// RemoveCellStatusIDs removes the "cell_statuses" edge to CellStatus entities by IDs.
func (_u *SheetUpdate) RemoveCellStatusIDs(ids ...string) *SheetUpdate {
	_u.mutation.RemoveCellStatusIDs(ids...)
	return _u
}

// RemoveCellStatuses removes "cell_statuses" edges to CellStatus entities.
func (_u *SheetUpdate) RemoveCellStatuses(v ...*CellStatus) *SheetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCellStatusIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SheetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SheetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SheetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SheetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SheetUpdate) check() error {
	if v, ok := _u.mutation.TemplateType(); ok {
		if err := sheet.TemplateTypeValidator(v); err != nil {
			return &ValidationError{Name: "template_type", err: fmt.Errorf(`ent: validator failed for field "Sheet.template_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SheetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sheet.Table, sheet.Columns, sqlgraph.NewFieldSpec(sheet.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TemplateType(); ok {
		_spec.SetField(sheet.FieldTemplateType, field.TypeEnum, value)
	}
	if _u.mutation.TemplateTypeCleared() {
		_spec.ClearField(sheet.FieldTemplateType, field.TypeEnum)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(sheet.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(sheet.FieldSystemPrompt, field.TypeString)
	}
	if _u.mutation.ColumnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedColumnsIDs(); len(nodes) > 0 && !_u.mutation.ColumnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ColumnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CellsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCellsIDs(); len(nodes) > 0 && !_u.mutation.CellsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CellsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CellStatusesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCellStatusesIDs(); len(nodes) > 0 && !_u.mutation.CellStatusesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CellStatusesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sheet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SheetUpdateOne is the builder for updating a single Sheet entity.
type SheetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SheetMutation
}

// SetTemplateType sets the "template_type" field.
func (_u *SheetUpdateOne) SetTemplateType(v sheet.TemplateType) *SheetUpdateOne {
	_u.mutation.SetTemplateType(v)
	return _u
}

// SetNillableTemplateType sets the "template_type" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableTemplateType(v *sheet.TemplateType) *SheetUpdateOne {
	if v != nil {
		_u.SetTemplateType(*v)
	}
	return _u
}

// ClearTemplateType clears the value of the "template_type" field.
func (_u *SheetUpdateOne) ClearTemplateType() *SheetUpdateOne {
	_u.mutation.ClearTemplateType()
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *SheetUpdateOne) SetSystemPrompt(v string) *SheetUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableSystemPrompt(v *string) *SheetUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *SheetUpdateOne) ClearSystemPrompt() *SheetUpdateOne {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// AddColumnIDs adds the "columns" edge to the Column entity by IDs.
func (_u *SheetUpdateOne) AddColumnIDs(ids ...string) *SheetUpdateOne {
	_u.mutation.AddColumnIDs(ids...)
	return _u
}

// AddColumns adds the "columns" edges to the Column entity.
func (_u *SheetUpdateOne) AddColumns(v ...*Column) *SheetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddColumnIDs(ids...)
}

// AddCellIDs adds the "cells" edge to the Cell entity by IDs.
func (_u *SheetUpdateOne) AddCellIDs(ids ...string) *SheetUpdateOne {
	_u.mutation.AddCellIDs(ids...)
	return _u
}

// AddCells adds the "cells" edges to the Cell entity.
func (_u *SheetUpdateOne) AddCells(v ...*Cell) *SheetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCellIDs(ids...)
}

// AddCellStatusIDs adds the "cell_statuses" edge to the CellStatus entity by IDs.
func (_u *SheetUpdateOne) AddCellStatusIDs(ids ...string) *SheetUpdateOne {
	_u.mutation.AddCellStatusIDs(ids...)
	return _u
}

// AddCellStatuses adds the "cell_statuses" edges to the CellStatus entity.
func (_u *SheetUpdateOne) AddCellStatuses(v ...*CellStatus) *SheetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCellStatusIDs(ids...)
}

// Mutation returns the SheetMutation object of the builder.
func (_u *SheetUpdateOne) Mutation() *SheetMutation {
	return _u.mutation
}

// ClearColumns clears all "columns" edges to the Column entity.
func (_u *SheetUpdateOne) ClearColumns() *SheetUpdateOne {
	_u.mutation.ClearColumns()
	return _u
}

// RemoveColumnIDs removes the "columns" edge to Column entities by IDs.
func (_u *SheetUpdateOne) RemoveColumnIDs(ids ...string) *SheetUpdateOne {
	_u.mutation.RemoveColumnIDs(ids...)
	return _u
}

// RemoveColumns removes "columns" edges to Column entities.
func (_u *SheetUpdateOne) RemoveColumns(v ...*Column) *SheetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveColumnIDs(ids...)
}

// ClearCells clears all "cells" edges to the Cell entity.
func (_u *SheetUpdateOne) ClearCells() *SheetUpdateOne {
	_u.mutation.ClearCells()
	return _u
}

// RemoveCellIDs removes the "cells" edge to Cell entities by IDs.
func (_u *SheetUpdateOne) RemoveCellIDs(ids ...string) *SheetUpdateOne {
	_u.mutation.RemoveCellIDs(ids...)
	return _u
}

// RemoveCells removes "cells" edges to Cell entities.
func (_u *SheetUpdateOne) RemoveCells(v ...*Cell) *SheetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCellIDs(ids...)
}

// ClearCellStatuses clears all "cell_statuses" edges to the CellStatus entity.
func (_u *SheetUpdateOne) ClearCellStatuses() *SheetUpdateOne {
	_u.mutation.ClearCellStatuses()
	return _u
}

// RemoveCellStatusIDs removes the "cell_statuses" edge to CellStatus entities by IDs.
func (_u *SheetUpdateOne) RemoveCellStatusIDs(ids ...string) *SheetUpdateOne {
	_u.mutation.RemoveCellStatusIDs(ids...)
	return _u
}

// RemoveCellStatuses removes "cell_statuses" edges to CellStatus entities.
func (_u *SheetUpdateOne) RemoveCellStatuses(v ...*CellStatus) *SheetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCellStatusIDs(ids...)
}

// Where appends a list predicates to the SheetUpdate builder.
func (_u *SheetUpdateOne) Where(ps ...predicate.Sheet) *SheetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SheetUpdateOne) Select(field string, fields ...string) *SheetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Sheet entity.
func (_u *SheetUpdateOne) Save(ctx context.Context) (*Sheet, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SheetUpdateOne) SaveX(ctx context.Context) *Sheet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SheetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SheetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SheetUpdateOne) check() error {
	if v, ok := _u.mutation.TemplateType(); ok {
		if err := sheet.TemplateTypeValidator(v); err != nil {
			return &ValidationError{Name: "template_type", err: fmt.Errorf(`ent: validator failed for field "Sheet.template_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SheetUpdateOne) sqlSave(ctx context.Context) (_node *Sheet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sheet.Table, sheet.Columns, sqlgraph.NewFieldSpec(sheet.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Sheet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sheet.FieldID)
		for _, f := range fields {
			if !sheet.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sheet.FieldID {
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
	if value, ok := _u.mutation.TemplateType(); ok {
		_spec.SetField(sheet.FieldTemplateType, field.TypeEnum, value)
	}
	if _u.mutation.TemplateTypeCleared() {
		_spec.ClearField(sheet.FieldTemplateType, field.TypeEnum)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(sheet.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(sheet.FieldSystemPrompt, field.TypeString)
	}
	if _u.mutation.ColumnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedColumnsIDs(); len(nodes) > 0 && !_u.mutation.ColumnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ColumnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CellsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCellsIDs(); len(nodes) > 0 && !_u.mutation.CellsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CellsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CellStatusesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCellStatusesIDs(); len(nodes) > 0 && !_u.mutation.CellStatusesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CellStatusesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Sheet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sheet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
