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
	"github.com/abhisek/escriba/ent/answerevent"
	"github.com/abhisek/escriba/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoundID sets the "round_id" field.
func (_u *AnswerEventUpdate) SetRoundID(v string) *AnswerEventUpdate {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableRoundID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetPromptText sets the "prompt_text" field.
func (_u *AnswerEventUpdate) SetPromptText(v string) *AnswerEventUpdate {
	_u.mutation.SetPromptText(v)
	return _u
}

// SetNillablePromptText sets the "prompt_text" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillablePromptText(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetPromptText(*v)
	}
	return _u
}

// SetBadge sets the "badge" field.
func (_u *AnswerEventUpdate) SetBadge(v string) *AnswerEventUpdate {
	_u.mutation.SetBadge(v)
	return _u
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableBadge(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetBadge(*v)
	}
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *AnswerEventUpdate) SetAnswerText(v string) *AnswerEventUpdate {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAnswerText(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// SetOk sets the "ok" field.
func (_u *AnswerEventUpdate) SetOk(v bool) *AnswerEventUpdate {
	_u.mutation.SetOk(v)
	return _u
}

// SetNillableOk sets the "ok" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableOk(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetOk(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AnswerEventUpdate) SetReason(v string) *AnswerEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableReason(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *AnswerEventUpdate) SetTags(v []string) *AnswerEventUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *AnswerEventUpdate) AppendTags(v []string) *AnswerEventUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *AnswerEventUpdate) ClearTags() *AnswerEventUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetSuggestion sets the "suggestion" field.
func (_u *AnswerEventUpdate) SetSuggestion(v string) *AnswerEventUpdate {
	_u.mutation.SetSuggestion(v)
	return _u
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSuggestion(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSuggestion(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.RoundID(); ok {
		if err := answerevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.round_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptText(); ok {
		if err := answerevent.PromptTextValidator(v); err != nil {
			return &ValidationError{Name: "prompt_text", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.prompt_text": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(answerevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptText(); ok {
		_spec.SetField(answerevent.FieldPromptText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Badge(); ok {
		_spec.SetField(answerevent.FieldBadge, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(answerevent.FieldAnswerText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ok(); ok {
		_spec.SetField(answerevent.FieldOk, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(answerevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(answerevent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answerevent.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(answerevent.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Suggestion(); ok {
		_spec.SetField(answerevent.FieldSuggestion, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetRoundID sets the "round_id" field.
func (_u *AnswerEventUpdateOne) SetRoundID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableRoundID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetPromptText sets the "prompt_text" field.
func (_u *AnswerEventUpdateOne) SetPromptText(v string) *AnswerEventUpdateOne {
	_u.mutation.SetPromptText(v)
	return _u
}

// SetNillablePromptText sets the "prompt_text" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillablePromptText(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetPromptText(*v)
	}
	return _u
}

// SetBadge sets the "badge" field.
func (_u *AnswerEventUpdateOne) SetBadge(v string) *AnswerEventUpdateOne {
	_u.mutation.SetBadge(v)
	return _u
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableBadge(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetBadge(*v)
	}
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *AnswerEventUpdateOne) SetAnswerText(v string) *AnswerEventUpdateOne {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAnswerText(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// SetOk sets the "ok" field.
func (_u *AnswerEventUpdateOne) SetOk(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetOk(v)
	return _u
}

// SetNillableOk sets the "ok" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableOk(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetOk(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AnswerEventUpdateOne) SetReason(v string) *AnswerEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableReason(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *AnswerEventUpdateOne) SetTags(v []string) *AnswerEventUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *AnswerEventUpdateOne) AppendTags(v []string) *AnswerEventUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *AnswerEventUpdateOne) ClearTags() *AnswerEventUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetSuggestion sets the "suggestion" field.
func (_u *AnswerEventUpdateOne) SetSuggestion(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSuggestion(v)
	return _u
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSuggestion(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSuggestion(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.RoundID(); ok {
		if err := answerevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.round_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptText(); ok {
		if err := answerevent.PromptTextValidator(v); err != nil {
			return &ValidationError{Name: "prompt_text", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.prompt_text": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(answerevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptText(); ok {
		_spec.SetField(answerevent.FieldPromptText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Badge(); ok {
		_spec.SetField(answerevent.FieldBadge, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(answerevent.FieldAnswerText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ok(); ok {
		_spec.SetField(answerevent.FieldOk, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(answerevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(answerevent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answerevent.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(answerevent.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Suggestion(); ok {
		_spec.SetField(answerevent.FieldSuggestion, field.TypeString, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
