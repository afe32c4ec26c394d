package store

import (
	"context"
	"fmt"

	"github.com/abhisek/escriba/ent"
	"github.com/abhisek/escriba/ent/roundevent"
)

func (r *eventRepo) AppendRound(ctx context.Context, data RoundEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RoundEvent.Create().
		SetSequence(seqNum).
		SetRoundID(data.RoundID).
		SetLang(data.Lang).
		SetTheme(data.Theme).
		SetLevel(data.Level).
		SetWrongCount(data.WrongCount).
		SetScore(data.Score).
		SetFocusTag(data.FocusTag).
		SetUsedFallback(data.UsedFallback).
		SetElapsedSecs(data.ElapsedSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save round event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentRounds(ctx context.Context, limit int) ([]RoundSummary, error) {
	q := r.client.RoundEvent.Query().
		Order(ent.Desc(roundevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query round events: %w", err)
	}

	summaries := make([]RoundSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, RoundSummary{
			RoundID:   e.RoundID,
			Timestamp: e.Timestamp,
			Theme:     e.Theme,
			Level:     e.Level,
			Score:     e.Score,
			Wrong:     e.WrongCount,
			FocusTag:  e.FocusTag,
		})
	}
	return summaries, nil
}
