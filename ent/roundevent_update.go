// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/escriba/ent/predicate"
	"github.com/abhisek/escriba/ent/roundevent"
)

// RoundEventUpdate is the builder for updating RoundEvent entities.
type RoundEventUpdate struct {
	config
	hooks    []Hook
	mutation *RoundEventMutation
}

// Where appends a list predicates to the RoundEventUpdate builder.
func (_u *RoundEventUpdate) Where(ps ...predicate.RoundEvent) *RoundEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoundID sets the "round_id" field.
func (_u *RoundEventUpdate) SetRoundID(v string) *RoundEventUpdate {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableRoundID(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetLang sets the "lang" field.
func (_u *RoundEventUpdate) SetLang(v string) *RoundEventUpdate {
	_u.mutation.SetLang(v)
	return _u
}

// SetNillableLang sets the "lang" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableLang(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetLang(*v)
	}
	return _u
}

// SetTheme sets the "theme" field.
func (_u *RoundEventUpdate) SetTheme(v string) *RoundEventUpdate {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableTheme(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *RoundEventUpdate) SetLevel(v int) *RoundEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableLevel(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *RoundEventUpdate) AddLevel(v int) *RoundEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetWrongCount sets the "wrong_count" field.
func (_u *RoundEventUpdate) SetWrongCount(v int) *RoundEventUpdate {
	_u.mutation.ResetWrongCount()
	_u.mutation.SetWrongCount(v)
	return _u
}

// SetNillableWrongCount sets the "wrong_count" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableWrongCount(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetWrongCount(*v)
	}
	return _u
}

// AddWrongCount adds value to the "wrong_count" field.
func (_u *RoundEventUpdate) AddWrongCount(v int) *RoundEventUpdate {
	_u.mutation.AddWrongCount(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *RoundEventUpdate) SetScore(v int) *RoundEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableScore(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RoundEventUpdate) AddScore(v int) *RoundEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetFocusTag sets the "focus_tag" field.
func (_u *RoundEventUpdate) SetFocusTag(v string) *RoundEventUpdate {
	_u.mutation.SetFocusTag(v)
	return _u
}

// SetNillableFocusTag sets the "focus_tag" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableFocusTag(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetFocusTag(*v)
	}
	return _u
}

// SetUsedFallback sets the "used_fallback" field.
func (_u *RoundEventUpdate) SetUsedFallback(v bool) *RoundEventUpdate {
	_u.mutation.SetUsedFallback(v)
	return _u
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableUsedFallback(v *bool) *RoundEventUpdate {
	if v != nil {
		_u.SetUsedFallback(*v)
	}
	return _u
}

// SetElapsedSecs sets the "elapsed_secs" field.
func (_u *RoundEventUpdate) SetElapsedSecs(v int) *RoundEventUpdate {
	_u.mutation.ResetElapsedSecs()
	_u.mutation.SetElapsedSecs(v)
	return _u
}

// SetNillableElapsedSecs sets the "elapsed_secs" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableElapsedSecs(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetElapsedSecs(*v)
	}
	return _u
}

// AddElapsedSecs adds value to the "elapsed_secs" field.
func (_u *RoundEventUpdate) AddElapsedSecs(v int) *RoundEventUpdate {
	_u.mutation.AddElapsedSecs(v)
	return _u
}

// Mutation returns the RoundEventMutation object of the builder.
func (_u *RoundEventUpdate) Mutation() *RoundEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoundEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoundEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundEventUpdate) check() error {
	if v, ok := _u.mutation.RoundID(); ok {
		if err := roundevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Lang(); ok {
		if err := roundevent.LangValidator(v); err != nil {
			return &ValidationError{Name: "lang", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.lang": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Theme(); ok {
		if err := roundevent.ThemeValidator(v); err != nil {
			return &ValidationError{Name: "theme", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.theme": %w`, err)}
		}
	}
	return nil
}

func (_u *RoundEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundevent.Table, roundevent.Columns, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(roundevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lang(); ok {
		_spec.SetField(roundevent.FieldLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(roundevent.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(roundevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(roundevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WrongCount(); ok {
		_spec.SetField(roundevent.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongCount(); ok {
		_spec.AddField(roundevent.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FocusTag(); ok {
		_spec.SetField(roundevent.FieldFocusTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.UsedFallback(); ok {
		_spec.SetField(roundevent.FieldUsedFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ElapsedSecs(); ok {
		_spec.SetField(roundevent.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedSecs(); ok {
		_spec.AddField(roundevent.FieldElapsedSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoundEventUpdateOne is the builder for updating a single RoundEvent entity.
type RoundEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoundEventMutation
}

// SetRoundID sets the "round_id" field.
func (_u *RoundEventUpdateOne) SetRoundID(v string) *RoundEventUpdateOne {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableRoundID(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetLang sets the "lang" field.
func (_u *RoundEventUpdateOne) SetLang(v string) *RoundEventUpdateOne {
	_u.mutation.SetLang(v)
	return _u
}

// SetNillableLang sets the "lang" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableLang(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetLang(*v)
	}
	return _u
}

// SetTheme sets the "theme" field.
func (_u *RoundEventUpdateOne) SetTheme(v string) *RoundEventUpdateOne {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableTheme(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *RoundEventUpdateOne) SetLevel(v int) *RoundEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableLevel(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *RoundEventUpdateOne) AddLevel(v int) *RoundEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetWrongCount sets the "wrong_count" field.
func (_u *RoundEventUpdateOne) SetWrongCount(v int) *RoundEventUpdateOne {
	_u.mutation.ResetWrongCount()
	_u.mutation.SetWrongCount(v)
	return _u
}

// SetNillableWrongCount sets the "wrong_count" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableWrongCount(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetWrongCount(*v)
	}
	return _u
}

// AddWrongCount adds value to the "wrong_count" field.
func (_u *RoundEventUpdateOne) AddWrongCount(v int) *RoundEventUpdateOne {
	_u.mutation.AddWrongCount(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *RoundEventUpdateOne) SetScore(v int) *RoundEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableScore(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RoundEventUpdateOne) AddScore(v int) *RoundEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetFocusTag sets the "focus_tag" field.
func (_u *RoundEventUpdateOne) SetFocusTag(v string) *RoundEventUpdateOne {
	_u.mutation.SetFocusTag(v)
	return _u
}

// SetNillableFocusTag sets the "focus_tag" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableFocusTag(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetFocusTag(*v)
	}
	return _u
}

// SetUsedFallback sets the "used_fallback" field.
func (_u *RoundEventUpdateOne) SetUsedFallback(v bool) *RoundEventUpdateOne {
	_u.mutation.SetUsedFallback(v)
	return _u
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableUsedFallback(v *bool) *RoundEventUpdateOne {
	if v != nil {
		_u.SetUsedFallback(*v)
	}
	return _u
}

// SetElapsedSecs sets the "elapsed_secs" field.
func (_u *RoundEventUpdateOne) SetElapsedSecs(v int) *RoundEventUpdateOne {
	_u.mutation.ResetElapsedSecs()
	_u.mutation.SetElapsedSecs(v)
	return _u
}

// SetNillableElapsedSecs sets the "elapsed_secs" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableElapsedSecs(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetElapsedSecs(*v)
	}
	return _u
}

// AddElapsedSecs adds value to the "elapsed_secs" field.
func (_u *RoundEventUpdateOne) AddElapsedSecs(v int) *RoundEventUpdateOne {
	_u.mutation.AddElapsedSecs(v)
	return _u
}

// Mutation returns the RoundEventMutation object of the builder.
func (_u *RoundEventUpdateOne) Mutation() *RoundEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoundEventUpdate builder.
func (_u *RoundEventUpdateOne) Where(ps ...predicate.RoundEvent) *RoundEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoundEventUpdateOne) Select(field string, fields ...string) *RoundEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoundEvent entity.
func (_u *RoundEventUpdateOne) Save(ctx context.Context) (*RoundEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundEventUpdateOne) SaveX(ctx context.Context) *RoundEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoundEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundEventUpdateOne) check() error {
	if v, ok := _u.mutation.RoundID(); ok {
		if err := roundevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Lang(); ok {
		if err := roundevent.LangValidator(v); err != nil {
			return &ValidationError{Name: "lang", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.lang": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Theme(); ok {
		if err := roundevent.ThemeValidator(v); err != nil {
			return &ValidationError{Name: "theme", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.theme": %w`, err)}
		}
	}
	return nil
}

func (_u *RoundEventUpdateOne) sqlSave(ctx context.Context) (_node *RoundEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundevent.Table, roundevent.Columns, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoundEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roundevent.FieldID)
		for _, f := range fields {
			if !roundevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roundevent.FieldID {
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
		_spec.SetField(roundevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lang(); ok {
		_spec.SetField(roundevent.FieldLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(roundevent.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(roundevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(roundevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WrongCount(); ok {
		_spec.SetField(roundevent.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongCount(); ok {
		_spec.AddField(roundevent.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FocusTag(); ok {
		_spec.SetField(roundevent.FieldFocusTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.UsedFallback(); ok {
		_spec.SetField(roundevent.FieldUsedFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ElapsedSecs(); ok {
		_spec.SetField(roundevent.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedSecs(); ok {
		_spec.AddField(roundevent.FieldElapsedSecs, field.TypeInt, value)
	}
	_node = &RoundEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
