package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetQuestionID(data.QuestionID).
		SetMode(data.Mode).
		SetUserAnswer(data.UserAnswer).
		SetCorrectAnswer(data.CorrectAnswer).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerStatsByMode(ctx context.Context) (map[string]AnswerStats, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	stats := make(map[string]AnswerStats)
	for _, e := range events {
		s := stats[e.Mode]
		s.Total++
		if e.Correct {
			s.Correct++
		}
		stats[e.Mode] = s
	}
	return stats, nil
}
