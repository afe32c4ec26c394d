package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendDrill(ctx context.Context, data DrillEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DrillEvent.Create().
		SetSequence(seqNum).
		SetRoundID(data.RoundID).
		SetKind(data.Kind).
		SetVariant(data.Variant).
		SetPrompt(data.Prompt).
		SetResponse(data.Response).
		SetCorrect(data.Correct).
		SetStreakAfter(data.StreakAfter).
		SetTarget(data.Target).
		SetCleared(data.Cleared).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save drill event: %w", err)
	}
	return nil
}
