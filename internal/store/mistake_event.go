package store

import (
	"context"
	"fmt"

	"github.com/patenteapp/patente/ent"
	"github.com/patenteapp/patente/ent/mistakeevent"
)

func (r *eventRepo) AppendMistakeEvent(ctx context.Context, data MistakeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.MistakeEvent.Create().
		SetSequence(seqNum).
		SetQuestionID(data.QuestionID).
		SetAction(data.Action).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save mistake event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryMistakeEvents(ctx context.Context, opts QueryOpts) ([]MistakeEventRecord, error) {
	q := r.client.MistakeEvent.Query().
		Order(ent.Asc(mistakeevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(mistakeevent.SequenceGT(opts.After))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mistake events: %w", err)
	}

	records := make([]MistakeEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, MistakeEventRecord{
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
			QuestionID: e.QuestionID,
			Action:     e.Action,
		})
	}
	return records, nil
}
