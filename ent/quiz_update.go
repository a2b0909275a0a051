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
	"github.com/tutorbay/tutorbay/ent/predicate"
	"github.com/tutorbay/tutorbay/ent/quiz"
	"github.com/tutorbay/tutorbay/ent/schema"
)

// QuizUpdate is the builder for updating Quiz entities.
type QuizUpdate struct {
	config
	hooks    []Hook
	mutation *QuizMutation
}

// Where appends a list predicates to the QuizUpdate builder.
func (_u *QuizUpdate) Where(ps ...predicate.Quiz) *QuizUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuizUpdate) SetSessionID(v string) *QuizUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableSessionID(v *string) *QuizUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuizUpdate) SetQuestions(v []schema.QuestionRecord) *QuizUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuizUpdate) AppendQuestions(v []schema.QuestionRecord) *QuizUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetFocusAreas sets the "focus_areas" field.
func (_u *QuizUpdate) SetFocusAreas(v []string) *QuizUpdate {
	_u.mutation.SetFocusAreas(v)
	return _u
}

// AppendFocusAreas appends value to the "focus_areas" field.
func (_u *QuizUpdate) AppendFocusAreas(v []string) *QuizUpdate {
	_u.mutation.AppendFocusAreas(v)
	return _u
}

// ClearFocusAreas clears the value of the "focus_areas" field.
func (_u *QuizUpdate) ClearFocusAreas() *QuizUpdate {
	_u.mutation.ClearFocusAreas()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizUpdate) SetDifficulty(v string) *QuizUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableDifficulty(v *string) *QuizUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// Mutation returns the QuizMutation object of the builder.
func (_u *QuizUpdate) Mutation() *QuizMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quiz.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Quiz.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quiz.Table, quiz.Columns, sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quiz.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(quiz.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quiz.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.FocusAreas(); ok {
		_spec.SetField(quiz.FieldFocusAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFocusAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quiz.FieldFocusAreas, value)
		})
	}
	if _u.mutation.FocusAreasCleared() {
		_spec.ClearField(quiz.FieldFocusAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quiz.FieldDifficulty, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizUpdateOne is the builder for updating a single Quiz entity.
type QuizUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuizUpdateOne) SetSessionID(v string) *QuizUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableSessionID(v *string) *QuizUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuizUpdateOne) SetQuestions(v []schema.QuestionRecord) *QuizUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuizUpdateOne) AppendQuestions(v []schema.QuestionRecord) *QuizUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetFocusAreas sets the "focus_areas" field.
func (_u *QuizUpdateOne) SetFocusAreas(v []string) *QuizUpdateOne {
	_u.mutation.SetFocusAreas(v)
	return _u
}

// AppendFocusAreas appends value to the "focus_areas" field.
func (_u *QuizUpdateOne) AppendFocusAreas(v []string) *QuizUpdateOne {
	_u.mutation.AppendFocusAreas(v)
	return _u
}

// ClearFocusAreas clears the value of the "focus_areas" field.
func (_u *QuizUpdateOne) ClearFocusAreas() *QuizUpdateOne {
	_u.mutation.ClearFocusAreas()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizUpdateOne) SetDifficulty(v string) *QuizUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableDifficulty(v *string) *QuizUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// Mutation returns the QuizMutation object of the builder.
func (_u *QuizUpdateOne) Mutation() *QuizMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizUpdate builder.
func (_u *QuizUpdateOne) Where(ps ...predicate.Quiz) *QuizUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizUpdateOne) Select(field string, fields ...string) *QuizUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Quiz entity.
func (_u *QuizUpdateOne) Save(ctx context.Context) (*Quiz, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizUpdateOne) SaveX(ctx context.Context) *Quiz {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quiz.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Quiz.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizUpdateOne) sqlSave(ctx context.Context) (_node *Quiz, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quiz.Table, quiz.Columns, sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Quiz.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quiz.FieldID)
		for _, f := range fields {
			if !quiz.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quiz.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quiz.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(quiz.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quiz.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.FocusAreas(); ok {
		_spec.SetField(quiz.FieldFocusAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFocusAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quiz.FieldFocusAreas, value)
		})
	}
	if _u.mutation.FocusAreasCleared() {
		_spec.ClearField(quiz.FieldFocusAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quiz.FieldDifficulty, field.TypeString, value)
	}
	_node = &Quiz{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
