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
	"github.com/tutorbay/tutorbay/ent/predicate"
	"github.com/tutorbay/tutorbay/ent/schema"
	"github.com/tutorbay/tutorbay/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *SessionUpdate) SetScheduledAt(v time.Time) *SessionUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableScheduledAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetDurationMins sets the "duration_mins" field.
func (_u *SessionUpdate) SetDurationMins(v int) *SessionUpdate {
	_u.mutation.ResetDurationMins()
	_u.mutation.SetDurationMins(v)
	return _u
}

// SetNillableDurationMins sets the "duration_mins" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDurationMins(v *int) *SessionUpdate {
	if v != nil {
		_u.SetDurationMins(*v)
	}
	return _u
}

// AddDurationMins adds value to the "duration_mins" field.
func (_u *SessionUpdate) AddDurationMins(v int) *SessionUpdate {
	_u.mutation.AddDurationMins(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v string) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *string) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCancelState sets the "cancel_state" field.
func (_u *SessionUpdate) SetCancelState(v string) *SessionUpdate {
	_u.mutation.SetCancelState(v)
	return _u
}

// SetNillableCancelState sets the "cancel_state" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCancelState(v *string) *SessionUpdate {
	if v != nil {
		_u.SetCancelState(*v)
	}
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *SessionUpdate) SetPriceCents(v int) *SessionUpdate {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePriceCents(v *int) *SessionUpdate {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *SessionUpdate) AddPriceCents(v int) *SessionUpdate {
	_u.mutation.AddPriceCents(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SessionUpdate) SetNotes(v string) *SessionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableNotes(v *string) *SessionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetTutorNotes sets the "tutor_notes" field.
func (_u *SessionUpdate) SetTutorNotes(v string) *SessionUpdate {
	_u.mutation.SetTutorNotes(v)
	return _u
}

// SetNillableTutorNotes sets the "tutor_notes" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTutorNotes(v *string) *SessionUpdate {
	if v != nil {
		_u.SetTutorNotes(*v)
	}
	return _u
}

// SetAiSummary sets the "ai_summary" field.
func (_u *SessionUpdate) SetAiSummary(v *schema.SummaryRecord) *SessionUpdate {
	_u.mutation.SetAiSummary(v)
	return _u
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (_u *SessionUpdate) ClearAiSummary() *SessionUpdate {
	_u.mutation.ClearAiSummary()
	return _u
}

// SetVersion sets the "version" field.
func (_u *SessionUpdate) SetVersion(v int64) *SessionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableVersion(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SessionUpdate) AddVersion(v int64) *SessionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.DurationMins(); ok {
		if err := session.DurationMinsValidator(v); err != nil {
			return &ValidationError{Name: "duration_mins", err: fmt.Errorf(`ent: validator failed for field "Session.duration_mins": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(session.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMins(); ok {
		_spec.SetField(session.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMins(); ok {
		_spec.AddField(session.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CancelState(); ok {
		_spec.SetField(session.FieldCancelState, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(session.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(session.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(session.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.TutorNotes(); ok {
		_spec.SetField(session.FieldTutorNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiSummary(); ok {
		_spec.SetField(session.FieldAiSummary, field.TypeJSON, value)
	}
	if _u.mutation.AiSummaryCleared() {
		_spec.ClearField(session.FieldAiSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(session.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(session.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *SessionUpdateOne) SetScheduledAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableScheduledAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetDurationMins sets the "duration_mins" field.
func (_u *SessionUpdateOne) SetDurationMins(v int) *SessionUpdateOne {
	_u.mutation.ResetDurationMins()
	_u.mutation.SetDurationMins(v)
	return _u
}

// SetNillableDurationMins sets the "duration_mins" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDurationMins(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetDurationMins(*v)
	}
	return _u
}

// AddDurationMins adds value to the "duration_mins" field.
func (_u *SessionUpdateOne) AddDurationMins(v int) *SessionUpdateOne {
	_u.mutation.AddDurationMins(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v string) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCancelState sets the "cancel_state" field.
func (_u *SessionUpdateOne) SetCancelState(v string) *SessionUpdateOne {
	_u.mutation.SetCancelState(v)
	return _u
}

// SetNillableCancelState sets the "cancel_state" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCancelState(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetCancelState(*v)
	}
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *SessionUpdateOne) SetPriceCents(v int) *SessionUpdateOne {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePriceCents(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *SessionUpdateOne) AddPriceCents(v int) *SessionUpdateOne {
	_u.mutation.AddPriceCents(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SessionUpdateOne) SetNotes(v string) *SessionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableNotes(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetTutorNotes sets the "tutor_notes" field.
func (_u *SessionUpdateOne) SetTutorNotes(v string) *SessionUpdateOne {
	_u.mutation.SetTutorNotes(v)
	return _u
}

// SetNillableTutorNotes sets the "tutor_notes" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTutorNotes(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetTutorNotes(*v)
	}
	return _u
}

// SetAiSummary sets the "ai_summary" field.
func (_u *SessionUpdateOne) SetAiSummary(v *schema.SummaryRecord) *SessionUpdateOne {
	_u.mutation.SetAiSummary(v)
	return _u
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (_u *SessionUpdateOne) ClearAiSummary() *SessionUpdateOne {
	_u.mutation.ClearAiSummary()
	return _u
}

// SetVersion sets the "version" field.
func (_u *SessionUpdateOne) SetVersion(v int64) *SessionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableVersion(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SessionUpdateOne) AddVersion(v int64) *SessionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.DurationMins(); ok {
		if err := session.DurationMinsValidator(v); err != nil {
			return &ValidationError{Name: "duration_mins", err: fmt.Errorf(`ent: validator failed for field "Session.duration_mins": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(session.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMins(); ok {
		_spec.SetField(session.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMins(); ok {
		_spec.AddField(session.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CancelState(); ok {
		_spec.SetField(session.FieldCancelState, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(session.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(session.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(session.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.TutorNotes(); ok {
		_spec.SetField(session.FieldTutorNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiSummary(); ok {
		_spec.SetField(session.FieldAiSummary, field.TypeJSON, value)
	}
	if _u.mutation.AiSummaryCleared() {
		_spec.ClearField(session.FieldAiSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(session.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(session.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
