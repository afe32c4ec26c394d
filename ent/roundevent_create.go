// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/escriba/ent/roundevent"
)

// RoundEventCreate is the builder for creating a RoundEvent entity.
type RoundEventCreate struct {
	config
	mutation *RoundEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RoundEventCreate) SetSequence(v int64) *RoundEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RoundEventCreate) SetTimestamp(v time.Time) *RoundEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableTimestamp(v *time.Time) *RoundEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRoundID sets the "round_id" field.
func (_c *RoundEventCreate) SetRoundID(v string) *RoundEventCreate {
	_c.mutation.SetRoundID(v)
	return _c
}

// SetLang sets the "lang" field.
func (_c *RoundEventCreate) SetLang(v string) *RoundEventCreate {
	_c.mutation.SetLang(v)
	return _c
}

// SetTheme sets the "theme" field.
func (_c *RoundEventCreate) SetTheme(v string) *RoundEventCreate {
	_c.mutation.SetTheme(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *RoundEventCreate) SetLevel(v int) *RoundEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetWrongCount sets the "wrong_count" field.
func (_c *RoundEventCreate) SetWrongCount(v int) *RoundEventCreate {
	_c.mutation.SetWrongCount(v)
	return _c
}

// SetNillableWrongCount sets the "wrong_count" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableWrongCount(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetWrongCount(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *RoundEventCreate) SetScore(v int) *RoundEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableScore(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetFocusTag sets the "focus_tag" field.
func (_c *RoundEventCreate) SetFocusTag(v string) *RoundEventCreate {
	_c.mutation.SetFocusTag(v)
	return _c
}

// SetNillableFocusTag sets the "focus_tag" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableFocusTag(v *string) *RoundEventCreate {
	if v != nil {
		_c.SetFocusTag(*v)
	}
	return _c
}

// SetUsedFallback sets the "used_fallback" field.
func (_c *RoundEventCreate) SetUsedFallback(v bool) *RoundEventCreate {
	_c.mutation.SetUsedFallback(v)
	return _c
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableUsedFallback(v *bool) *RoundEventCreate {
	if v != nil {
		_c.SetUsedFallback(*v)
	}
	return _c
}

// SetElapsedSecs sets the "elapsed_secs" field.
func (_c *RoundEventCreate) SetElapsedSecs(v int) *RoundEventCreate {
	_c.mutation.SetElapsedSecs(v)
	return _c
}

// SetNillableElapsedSecs sets the "elapsed_secs" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableElapsedSecs(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetElapsedSecs(*v)
	}
	return _c
}

// Mutation returns the RoundEventMutation object of the builder.
func (_c *RoundEventCreate) Mutation() *RoundEventMutation {
	return _c.mutation
}

// Save creates the RoundEvent in the database.
func (_c *RoundEventCreate) Save(ctx context.Context) (*RoundEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoundEventCreate) SaveX(ctx context.Context) *RoundEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoundEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := roundevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.WrongCount(); !ok {
		v := roundevent.DefaultWrongCount
		_c.mutation.SetWrongCount(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := roundevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.FocusTag(); !ok {
		v := roundevent.DefaultFocusTag
		_c.mutation.SetFocusTag(v)
	}
	if _, ok := _c.mutation.UsedFallback(); !ok {
		v := roundevent.DefaultUsedFallback
		_c.mutation.SetUsedFallback(v)
	}
	if _, ok := _c.mutation.ElapsedSecs(); !ok {
		v := roundevent.DefaultElapsedSecs
		_c.mutation.SetElapsedSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoundEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RoundEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RoundEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RoundID(); !ok {
		return &ValidationError{Name: "round_id", err: errors.New(`ent: missing required field "RoundEvent.round_id"`)}
	}
	if v, ok := _c.mutation.RoundID(); ok {
		if err := roundevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Lang(); !ok {
		return &ValidationError{Name: "lang", err: errors.New(`ent: missing required field "RoundEvent.lang"`)}
	}
	if v, ok := _c.mutation.Lang(); ok {
		if err := roundevent.LangValidator(v); err != nil {
			return &ValidationError{Name: "lang", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.lang": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Theme(); !ok {
		return &ValidationError{Name: "theme", err: errors.New(`ent: missing required field "RoundEvent.theme"`)}
	}
	if v, ok := _c.mutation.Theme(); ok {
		if err := roundevent.ThemeValidator(v); err != nil {
			return &ValidationError{Name: "theme", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.theme": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "RoundEvent.level"`)}
	}
	if _, ok := _c.mutation.WrongCount(); !ok {
		return &ValidationError{Name: "wrong_count", err: errors.New(`ent: missing required field "RoundEvent.wrong_count"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "RoundEvent.score"`)}
	}
	if _, ok := _c.mutation.FocusTag(); !ok {
		return &ValidationError{Name: "focus_tag", err: errors.New(`ent: missing required field "RoundEvent.focus_tag"`)}
	}
	if _, ok := _c.mutation.UsedFallback(); !ok {
		return &ValidationError{Name: "used_fallback", err: errors.New(`ent: missing required field "RoundEvent.used_fallback"`)}
	}
	if _, ok := _c.mutation.ElapsedSecs(); !ok {
		return &ValidationError{Name: "elapsed_secs", err: errors.New(`ent: missing required field "RoundEvent.elapsed_secs"`)}
	}
	return nil
}

func (_c *RoundEventCreate) sqlSave(ctx context.Context) (*RoundEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoundEventCreate) createSpec() (*RoundEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RoundEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roundevent.Table, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(roundevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(roundevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RoundID(); ok {
		_spec.SetField(roundevent.FieldRoundID, field.TypeString, value)
		_node.RoundID = value
	}
	if value, ok := _c.mutation.Lang(); ok {
		_spec.SetField(roundevent.FieldLang, field.TypeString, value)
		_node.Lang = value
	}
	if value, ok := _c.mutation.Theme(); ok {
		_spec.SetField(roundevent.FieldTheme, field.TypeString, value)
		_node.Theme = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(roundevent.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.WrongCount(); ok {
		_spec.SetField(roundevent.FieldWrongCount, field.TypeInt, value)
		_node.WrongCount = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(roundevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.FocusTag(); ok {
		_spec.SetField(roundevent.FieldFocusTag, field.TypeString, value)
		_node.FocusTag = value
	}
	if value, ok := _c.mutation.UsedFallback(); ok {
		_spec.SetField(roundevent.FieldUsedFallback, field.TypeBool, value)
		_node.UsedFallback = value
	}
	if value, ok := _c.mutation.ElapsedSecs(); ok {
		_spec.SetField(roundevent.FieldElapsedSecs, field.TypeInt, value)
		_node.ElapsedSecs = value
	}
	return _node, _spec
}

// RoundEventCreateBulk is the builder for creating many RoundEvent entities in bulk.
type RoundEventCreateBulk struct {
	config
	err      error
	builders []*RoundEventCreate
}

// Save creates the RoundEvent entities in the database.
func (_c *RoundEventCreateBulk) Save(ctx context.Context) ([]*RoundEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoundEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoundEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *RoundEventCreateBulk) SaveX(ctx context.Context) []*RoundEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
