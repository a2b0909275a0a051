// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorbay/tutorbay/ent/schema"
	"github.com/tutorbay/tutorbay/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetTutorID sets the "tutor_id" field.
func (_c *SessionCreate) SetTutorID(v string) *SessionCreate {
	_c.mutation.SetTutorID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *SessionCreate) SetStudentID(v string) *SessionCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *SessionCreate) SetSubjectID(v string) *SessionCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *SessionCreate) SetScheduledAt(v time.Time) *SessionCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetDurationMins sets the "duration_mins" field.
func (_c *SessionCreate) SetDurationMins(v int) *SessionCreate {
	_c.mutation.SetDurationMins(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v string) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *string) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCancelState sets the "cancel_state" field.
func (_c *SessionCreate) SetCancelState(v string) *SessionCreate {
	_c.mutation.SetCancelState(v)
	return _c
}

// SetNillableCancelState sets the "cancel_state" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCancelState(v *string) *SessionCreate {
	if v != nil {
		_c.SetCancelState(*v)
	}
	return _c
}

// SetPriceCents sets the "price_cents" field.
func (_c *SessionCreate) SetPriceCents(v int) *SessionCreate {
	_c.mutation.SetPriceCents(v)
	return _c
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_c *SessionCreate) SetNillablePriceCents(v *int) *SessionCreate {
	if v != nil {
		_c.SetPriceCents(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *SessionCreate) SetNotes(v string) *SessionCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *SessionCreate) SetNillableNotes(v *string) *SessionCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetTutorNotes sets the "tutor_notes" field.
func (_c *SessionCreate) SetTutorNotes(v string) *SessionCreate {
	_c.mutation.SetTutorNotes(v)
	return _c
}

// SetNillableTutorNotes sets the "tutor_notes" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTutorNotes(v *string) *SessionCreate {
	if v != nil {
		_c.SetTutorNotes(*v)
	}
	return _c
}

// SetAiSummary sets the "ai_summary" field.
func (_c *SessionCreate) SetAiSummary(v *schema.SummaryRecord) *SessionCreate {
	_c.mutation.SetAiSummary(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *SessionCreate) SetVersion(v int64) *SessionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *SessionCreate) SetNillableVersion(v *int64) *SessionCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CancelState(); !ok {
		v := session.DefaultCancelState
		_c.mutation.SetCancelState(v)
	}
	if _, ok := _c.mutation.PriceCents(); !ok {
		v := session.DefaultPriceCents
		_c.mutation.SetPriceCents(v)
	}
	if _, ok := _c.mutation.Notes(); !ok {
		v := session.DefaultNotes
		_c.mutation.SetNotes(v)
	}
	if _, ok := _c.mutation.TutorNotes(); !ok {
		v := session.DefaultTutorNotes
		_c.mutation.SetTutorNotes(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := session.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.TutorID(); !ok {
		return &ValidationError{Name: "tutor_id", err: errors.New(`ent: missing required field "Session.tutor_id"`)}
	}
	if v, ok := _c.mutation.TutorID(); ok {
		if err := session.TutorIDValidator(v); err != nil {
			return &ValidationError{Name: "tutor_id", err: fmt.Errorf(`ent: validator failed for field "Session.tutor_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Session.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := session.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "Session.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "Session.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := session.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "Session.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		return &ValidationError{Name: "scheduled_at", err: errors.New(`ent: missing required field "Session.scheduled_at"`)}
	}
	if _, ok := _c.mutation.DurationMins(); !ok {
		return &ValidationError{Name: "duration_mins", err: errors.New(`ent: missing required field "Session.duration_mins"`)}
	}
	if v, ok := _c.mutation.DurationMins(); ok {
		if err := session.DurationMinsValidator(v); err != nil {
			return &ValidationError{Name: "duration_mins", err: fmt.Errorf(`ent: validator failed for field "Session.duration_mins": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Session.status"`)}
	}
	if _, ok := _c.mutation.CancelState(); !ok {
		return &ValidationError{Name: "cancel_state", err: errors.New(`ent: missing required field "Session.cancel_state"`)}
	}
	if _, ok := _c.mutation.PriceCents(); !ok {
		return &ValidationError{Name: "price_cents", err: errors.New(`ent: missing required field "Session.price_cents"`)}
	}
	if _, ok := _c.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "Session.notes"`)}
	}
	if _, ok := _c.mutation.TutorNotes(); !ok {
		return &ValidationError{Name: "tutor_notes", err: errors.New(`ent: missing required field "Session.tutor_notes"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Session.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Session.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := session.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Session.id": %w`, err)}
		}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TutorID(); ok {
		_spec.SetField(session.FieldTutorID, field.TypeString, value)
		_node.TutorID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(session.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(session.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(session.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = value
	}
	if value, ok := _c.mutation.DurationMins(); ok {
		_spec.SetField(session.FieldDurationMins, field.TypeInt, value)
		_node.DurationMins = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CancelState(); ok {
		_spec.SetField(session.FieldCancelState, field.TypeString, value)
		_node.CancelState = value
	}
	if value, ok := _c.mutation.PriceCents(); ok {
		_spec.SetField(session.FieldPriceCents, field.TypeInt, value)
		_node.PriceCents = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(session.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.TutorNotes(); ok {
		_spec.SetField(session.FieldTutorNotes, field.TypeString, value)
		_node.TutorNotes = value
	}
	if value, ok := _c.mutation.AiSummary(); ok {
		_spec.SetField(session.FieldAiSummary, field.TypeJSON, value)
		_node.AiSummary = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(session.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
