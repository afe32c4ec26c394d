// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/escriba/ent/answerevent"
)

// AnswerEventCreate is the builder for creating a AnswerEvent entity.
type AnswerEventCreate struct {
	config
	mutation *AnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnswerEventCreate) SetSequence(v int64) *AnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnswerEventCreate) SetTimestamp(v time.Time) *AnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimestamp(v *time.Time) *AnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRoundID sets the "round_id" field.
func (_c *AnswerEventCreate) SetRoundID(v string) *AnswerEventCreate {
	_c.mutation.SetRoundID(v)
	return _c
}

// SetPromptText sets the "prompt_text" field.
func (_c *AnswerEventCreate) SetPromptText(v string) *AnswerEventCreate {
	_c.mutation.SetPromptText(v)
	return _c
}

// SetBadge sets the "badge" field.
func (_c *AnswerEventCreate) SetBadge(v string) *AnswerEventCreate {
	_c.mutation.SetBadge(v)
	return _c
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableBadge(v *string) *AnswerEventCreate {
	if v != nil {
		_c.SetBadge(*v)
	}
	return _c
}

// SetAnswerText sets the "answer_text" field.
func (_c *AnswerEventCreate) SetAnswerText(v string) *AnswerEventCreate {
	_c.mutation.SetAnswerText(v)
	return _c
}

// SetOk sets the "ok" field.
func (_c *AnswerEventCreate) SetOk(v bool) *AnswerEventCreate {
	_c.mutation.SetOk(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *AnswerEventCreate) SetReason(v string) *AnswerEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableReason(v *string) *AnswerEventCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *AnswerEventCreate) SetTags(v []string) *AnswerEventCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetSuggestion sets the "suggestion" field.
func (_c *AnswerEventCreate) SetSuggestion(v string) *AnswerEventCreate {
	_c.mutation.SetSuggestion(v)
	return _c
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableSuggestion(v *string) *AnswerEventCreate {
	if v != nil {
		_c.SetSuggestion(*v)
	}
	return _c
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_c *AnswerEventCreate) Mutation() *AnswerEventMutation {
	return _c.mutation
}

// Save creates the AnswerEvent in the database.
func (_c *AnswerEventCreate) Save(ctx context.Context) (*AnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerEventCreate) SaveX(ctx context.Context) *AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := answerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Badge(); !ok {
		v := answerevent.DefaultBadge
		_c.mutation.SetBadge(v)
	}
	if _, ok := _c.mutation.Reason(); !ok {
		v := answerevent.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.Suggestion(); !ok {
		v := answerevent.DefaultSuggestion
		_c.mutation.SetSuggestion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RoundID(); !ok {
		return &ValidationError{Name: "round_id", err: errors.New(`ent: missing required field "AnswerEvent.round_id"`)}
	}
	if v, ok := _c.mutation.RoundID(); ok {
		if err := answerevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.round_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptText(); !ok {
		return &ValidationError{Name: "prompt_text", err: errors.New(`ent: missing required field "AnswerEvent.prompt_text"`)}
	}
	if v, ok := _c.mutation.PromptText(); ok {
		if err := answerevent.PromptTextValidator(v); err != nil {
			return &ValidationError{Name: "prompt_text", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.prompt_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Badge(); !ok {
		return &ValidationError{Name: "badge", err: errors.New(`ent: missing required field "AnswerEvent.badge"`)}
	}
	if _, ok := _c.mutation.AnswerText(); !ok {
		return &ValidationError{Name: "answer_text", err: errors.New(`ent: missing required field "AnswerEvent.answer_text"`)}
	}
	if _, ok := _c.mutation.Ok(); !ok {
		return &ValidationError{Name: "ok", err: errors.New(`ent: missing required field "AnswerEvent.ok"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "AnswerEvent.reason"`)}
	}
	if _, ok := _c.mutation.Suggestion(); !ok {
		return &ValidationError{Name: "suggestion", err: errors.New(`ent: missing required field "AnswerEvent.suggestion"`)}
	}
	return nil
}

func (_c *AnswerEventCreate) sqlSave(ctx context.Context) (*AnswerEvent, error) {
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

func (_c *AnswerEventCreate) createSpec() (*AnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerevent.Table, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(answerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(answerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RoundID(); ok {
		_spec.SetField(answerevent.FieldRoundID, field.TypeString, value)
		_node.RoundID = value
	}
	if value, ok := _c.mutation.PromptText(); ok {
		_spec.SetField(answerevent.FieldPromptText, field.TypeString, value)
		_node.PromptText = value
	}
	if value, ok := _c.mutation.Badge(); ok {
		_spec.SetField(answerevent.FieldBadge, field.TypeString, value)
		_node.Badge = value
	}
	if value, ok := _c.mutation.AnswerText(); ok {
		_spec.SetField(answerevent.FieldAnswerText, field.TypeString, value)
		_node.AnswerText = value
	}
	if value, ok := _c.mutation.Ok(); ok {
		_spec.SetField(answerevent.FieldOk, field.TypeBool, value)
		_node.Ok = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(answerevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(answerevent.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Suggestion(); ok {
		_spec.SetField(answerevent.FieldSuggestion, field.TypeString, value)
		_node.Suggestion = value
	}
	return _node, _spec
}

// AnswerEventCreateBulk is the builder for creating many AnswerEvent entities in bulk.
type AnswerEventCreateBulk struct {
	config
	err      error
	builders []*AnswerEventCreate
}

// Save creates the AnswerEvent entities in the database.
func (_c *AnswerEventCreateBulk) Save(ctx context.Context) ([]*AnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerEventMutation)
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
func (_c *AnswerEventCreateBulk) SaveX(ctx context.Context) []*AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
