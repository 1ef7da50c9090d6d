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
	"github.com/rowboat-dev/rowboat/ent/fillevent"
)

// FillEventCreate is the builder for creating a FillEvent entity.
type FillEventCreate struct {
	config
	mutation *FillEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSheetID sets the "sheet_id" field.
func (_c *FillEventCreate) SetSheetID(v string) *FillEventCreate {
	_c.mutation.SetSheetID(v)
	return _c
}

// SetRowIndex sets the "row_index" field.
func (_c *FillEventCreate) SetRowIndex(v int) *FillEventCreate {
	_c.mutation.SetRowIndex(v)
	return _c
}

// SetColIndex sets the "col_index" field.
func (_c *FillEventCreate) SetColIndex(v int) *FillEventCreate {
	_c.mutation.SetColIndex(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *FillEventCreate) SetEventType(v fillevent.EventType) *FillEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *FillEventCreate) SetPayload(v map[string]interface{}) *FillEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *FillEventCreate) SetStatus(v fillevent.Status) *FillEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FillEventCreate) SetNillableStatus(v *fillevent.Status) *FillEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *FillEventCreate) SetRetryCount(v int) *FillEventCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *FillEventCreate) SetNillableRetryCount(v *int) *FillEventCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *FillEventCreate) SetLastError(v string) *FillEventCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *FillEventCreate) SetNillableLastError(v *string) *FillEventCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *FillEventCreate) SetPodID(v string) *FillEventCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *FillEventCreate) SetNillablePodID(v *string) *FillEventCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FillEventCreate) SetCreatedAt(v time.Time) *FillEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FillEventCreate) SetNillableCreatedAt(v *time.Time) *FillEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *FillEventCreate) SetClaimedAt(v time.Time) *FillEventCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *FillEventCreate) SetNillableClaimedAt(v *time.Time) *FillEventCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *FillEventCreate) SetProcessedAt(v time.Time) *FillEventCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *FillEventCreate) SetNillableProcessedAt(v *time.Time) *FillEventCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FillEventCreate) SetID(v string) *FillEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FillEventMutation object of the builder.
func (_c *FillEventCreate) Mutation() *FillEventMutation {
	return _c.mutation
}

// Save creates the FillEvent in the database.
func (_c *FillEventCreate) Save(ctx context.Context) (*FillEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FillEventCreate) SaveX(ctx context.Context) *FillEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FillEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FillEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FillEventCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := fillevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := fillevent.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fillevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FillEventCreate) check() error {
	if _, ok := _c.mutation.SheetID(); !ok {
		return &ValidationError{Name: "sheet_id", err: errors.New(`ent: missing required field "FillEvent.sheet_id"`)}
	}
	if _, ok := _c.mutation.RowIndex(); !ok {
		return &ValidationError{Name: "row_index", err: errors.New(`ent: missing required field "FillEvent.row_index"`)}
	}
	if _, ok := _c.mutation.ColIndex(); !ok {
		return &ValidationError{Name: "col_index", err: errors.New(`ent: missing required field "FillEvent.col_index"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "FillEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := fillevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "FillEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FillEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := fillevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FillEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "FillEvent.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FillEvent.created_at"`)}
	}
	return nil
}

func (_c *FillEventCreate) sqlSave(ctx context.Context) (*FillEvent, error) {
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
			return nil, fmt.Errorf("unexpected FillEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FillEventCreate) createSpec() (*FillEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &FillEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fillevent.Table, sqlgraph.NewFieldSpec(fillevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SheetID(); ok {
		_spec.SetField(fillevent.FieldSheetID, field.TypeString, value)
		_node.SheetID = value
	}
	if value, ok := _c.mutation.RowIndex(); ok {
		_spec.SetField(fillevent.FieldRowIndex, field.TypeInt, value)
		_node.RowIndex = value
	}
	if value, ok := _c.mutation.ColIndex(); ok {
		_spec.SetField(fillevent.FieldColIndex, field.TypeInt, value)
		_node.ColIndex = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(fillevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(fillevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(fillevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(fillevent.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(fillevent.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(fillevent.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fillevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(fillevent.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(fillevent.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FillEvent.Create().
//		SetSheetID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FillEventUpsert) {
//			SetSheetID(v+v).
//		}).
//		Exec(ctx)
func (_c *FillEventCreate) OnConflict(opts ...sql.ConflictOption) *FillEventUpsertOne {
	_c.conflict = opts
	return &FillEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FillEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FillEventCreate) OnConflictColumns(columns ...string) *FillEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FillEventUpsertOne{
		create: _c,
	}
}

type (
	// FillEventUpsertOne is the builder for "upsert"-ing
	//  one FillEvent node.
	FillEventUpsertOne struct {
		create *FillEventCreate
	}

	// FillEventUpsert is the "OnConflict" setter.
	FillEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventType sets the "event_type" field.
func (u *FillEventUpsert) SetEventType(v fillevent.EventType) *FillEventUpsert {
	u.Set(fillevent.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *FillEventUpsert) UpdateEventType() *FillEventUpsert {
	u.SetExcluded(fillevent.FieldEventType)
	return u
}

// SetPayload sets the "payload" field.
func (u *FillEventUpsert) SetPayload(v map[string]interface{}) *FillEventUpsert {
	u.Set(fillevent.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *FillEventUpsert) UpdatePayload() *FillEventUpsert {
	u.SetExcluded(fillevent.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *FillEventUpsert) ClearPayload() *FillEventUpsert {
	u.SetNull(fillevent.FieldPayload)
	return u
}

// SetStatus sets the "status" field.
func (u *FillEventUpsert) SetStatus(v fillevent.Status) *FillEventUpsert {
	u.Set(fillevent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FillEventUpsert) UpdateStatus() *FillEventUpsert {
	u.SetExcluded(fillevent.FieldStatus)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *FillEventUpsert) SetRetryCount(v int) *FillEventUpsert {
	u.Set(fillevent.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *FillEventUpsert) UpdateRetryCount() *FillEventUpsert {
	u.SetExcluded(fillevent.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *FillEventUpsert) AddRetryCount(v int) *FillEventUpsert {
	u.Add(fillevent.FieldRetryCount, v)
	return u
}

// SetLastError sets the "last_error" field.
func (u *FillEventUpsert) SetLastError(v string) *FillEventUpsert {
	u.Set(fillevent.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *FillEventUpsert) UpdateLastError() *FillEventUpsert {
	u.SetExcluded(fillevent.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *FillEventUpsert) ClearLastError() *FillEventUpsert {
	u.SetNull(fillevent.FieldLastError)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *FillEventUpsert) SetPodID(v string) *FillEventUpsert {
	u.Set(fillevent.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *FillEventUpsert) UpdatePodID() *FillEventUpsert {
	u.SetExcluded(fillevent.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *FillEventUpsert) ClearPodID() *FillEventUpsert {
	u.SetNull(fillevent.FieldPodID)
	return u
}

// SetClaimedAt sets the "claimed_at" field.
func (u *FillEventUpsert) SetClaimedAt(v time.Time) *FillEventUpsert {
	u.Set(fillevent.FieldClaimedAt, v)
	return u
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *FillEventUpsert) UpdateClaimedAt() *FillEventUpsert {
	u.SetExcluded(fillevent.FieldClaimedAt)
	return u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *FillEventUpsert) ClearClaimedAt() *FillEventUpsert {
	u.SetNull(fillevent.FieldClaimedAt)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *FillEventUpsert) SetProcessedAt(v time.Time) *FillEventUpsert {
	u.Set(fillevent.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *FillEventUpsert) UpdateProcessedAt() *FillEventUpsert {
	u.SetExcluded(fillevent.FieldProcessedAt)
	return u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *FillEventUpsert) ClearProcessedAt() *FillEventUpsert {
	u.SetNull(fillevent.FieldProcessedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FillEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fillevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FillEventUpsertOne) UpdateNewValues() *FillEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(fillevent.FieldID)
		}
		if _, exists := u.create.mutation.SheetID(); exists {
			s.SetIgnore(fillevent.FieldSheetID)
		}
		if _, exists := u.create.mutation.RowIndex(); exists {
			s.SetIgnore(fillevent.FieldRowIndex)
		}
		if _, exists := u.create.mutation.ColIndex(); exists {
			s.SetIgnore(fillevent.FieldColIndex)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(fillevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FillEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FillEventUpsertOne) Ignore() *FillEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FillEventUpsertOne) DoNothing() *FillEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FillEventCreate.OnConflict
// documentation for more info.
func (u *FillEventUpsertOne) Update(set func(*FillEventUpsert)) *FillEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FillEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventType sets the "event_type" field.
func (u *FillEventUpsertOne) SetEventType(v fillevent.EventType) *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *FillEventUpsertOne) UpdateEventType() *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdateEventType()
	})
}

// SetPayload sets the "payload" field.
func (u *FillEventUpsertOne) SetPayload(v map[string]interface{}) *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *FillEventUpsertOne) UpdatePayload() *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *FillEventUpsertOne) ClearPayload() *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.ClearPayload()
	})
}

// SetStatus sets the "status" field.
func (u *FillEventUpsertOne) SetStatus(v fillevent.Status) *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FillEventUpsertOne) UpdateStatus() *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdateStatus()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *FillEventUpsertOne) SetRetryCount(v int) *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *FillEventUpsertOne) AddRetryCount(v int) *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *FillEventUpsertOne) UpdateRetryCount() *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdateRetryCount()
	})
}

// SetLastError sets the "last_error" field.
func (u *FillEventUpsertOne) SetLastError(v string) *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *FillEventUpsertOne) UpdateLastError() *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *FillEventUpsertOne) ClearLastError() *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.ClearLastError()
	})
}

// SetPodID sets the "pod_id" field.
func (u *FillEventUpsertOne) SetPodID(v string) *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *FillEventUpsertOne) UpdatePodID() *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *FillEventUpsertOne) ClearPodID() *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.ClearPodID()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *FillEventUpsertOne) SetClaimedAt(v time.Time) *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *FillEventUpsertOne) UpdateClaimedAt() *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *FillEventUpsertOne) ClearClaimedAt() *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.ClearClaimedAt()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *FillEventUpsertOne) SetProcessedAt(v time.Time) *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *FillEventUpsertOne) UpdateProcessedAt() *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *FillEventUpsertOne) ClearProcessedAt() *FillEventUpsertOne {
	return u.Update(func(s *FillEventUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *FillEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FillEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FillEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FillEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FillEventUpsertOne.ID is not supported by MySQL driver. Use FillEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FillEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FillEventCreateBulk is the builder for creating many FillEvent entities in bulk.
type FillEventCreateBulk struct {
	config
	err      error
	builders []*FillEventCreate
	conflict []sql.ConflictOption
}

// Save creates the FillEvent entities in the database.
func (_c *FillEventCreateBulk) Save(ctx context.Context) ([]*FillEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FillEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FillEventMutation)
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
func (_c *FillEventCreateBulk) SaveX(ctx context.Context) []*FillEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FillEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FillEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FillEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FillEventUpsert) {
//			SetSheetID(v+v).
//		}).
//		Exec(ctx)
func (_c *FillEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *FillEventUpsertBulk {
	_c.conflict = opts
	return &FillEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FillEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FillEventCreateBulk) OnConflictColumns(columns ...string) *FillEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FillEventUpsertBulk{
		create: _c,
	}
}

// FillEventUpsertBulk is the builder for "upsert"-ing
// a bulk of FillEvent nodes.
type FillEventUpsertBulk struct {
	create *FillEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FillEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fillevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FillEventUpsertBulk) UpdateNewValues() *FillEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(fillevent.FieldID)
			}
			if _, exists := b.mutation.SheetID(); exists {
				s.SetIgnore(fillevent.FieldSheetID)
			}
			if _, exists := b.mutation.RowIndex(); exists {
				s.SetIgnore(fillevent.FieldRowIndex)
			}
			if _, exists := b.mutation.ColIndex(); exists {
				s.SetIgnore(fillevent.FieldColIndex)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(fillevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FillEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FillEventUpsertBulk) Ignore() *FillEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FillEventUpsertBulk) DoNothing() *FillEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FillEventCreateBulk.OnConflict
// documentation for more info.
func (u *FillEventUpsertBulk) Update(set func(*FillEventUpsert)) *FillEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FillEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventType sets the "event_type" field.
func (u *FillEventUpsertBulk) SetEventType(v fillevent.EventType) *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *FillEventUpsertBulk) UpdateEventType() *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdateEventType()
	})
}

// SetPayload sets the "payload" field.
func (u *FillEventUpsertBulk) SetPayload(v map[string]interface{}) *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *FillEventUpsertBulk) UpdatePayload() *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *FillEventUpsertBulk) ClearPayload() *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.ClearPayload()
	})
}

// SetStatus sets the "status" field.
func (u *FillEventUpsertBulk) SetStatus(v fillevent.Status) *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FillEventUpsertBulk) UpdateStatus() *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdateStatus()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *FillEventUpsertBulk) SetRetryCount(v int) *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *FillEventUpsertBulk) AddRetryCount(v int) *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *FillEventUpsertBulk) UpdateRetryCount() *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdateRetryCount()
	})
}

// SetLastError sets the "last_error" field.
func (u *FillEventUpsertBulk) SetLastError(v string) *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *FillEventUpsertBulk) UpdateLastError() *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *FillEventUpsertBulk) ClearLastError() *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.ClearLastError()
	})
}

// SetPodID sets the "pod_id" field.
func (u *FillEventUpsertBulk) SetPodID(v string) *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *FillEventUpsertBulk) UpdatePodID() *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *FillEventUpsertBulk) ClearPodID() *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.ClearPodID()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *FillEventUpsertBulk) SetClaimedAt(v time.Time) *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *FillEventUpsertBulk) UpdateClaimedAt() *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *FillEventUpsertBulk) ClearClaimedAt() *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.ClearClaimedAt()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *FillEventUpsertBulk) SetProcessedAt(v time.Time) *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *FillEventUpsertBulk) UpdateProcessedAt() *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *FillEventUpsertBulk) ClearProcessedAt() *FillEventUpsertBulk {
	return u.Update(func(s *FillEventUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *FillEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FillEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FillEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FillEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
