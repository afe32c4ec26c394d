package store

import (
	"context"
	"fmt"

	"github.com/abhisek/escriba/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetRoundID(data.RoundID).
		SetPromptText(data.PromptText).
		SetBadge(data.Badge).
		SetAnswerText(data.AnswerText).
		SetOk(data.OK).
		SetReason(data.Reason).
		SetSuggestion(data.Suggestion)

	if len(data.Tags) > 0 {
		builder = builder.SetTags(data.Tags)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) TagCounts(ctx context.Context) (map[string]int, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	counts := make(map[string]int)
	for _, e := range events {
		for _, tag := range e.Tags {
			counts[tag]++
		}
	}
	return counts, nil
}
