package store

import (
	"context"
	"fmt"

	"github.com/patenteapp/patente/ent"
	"github.com/patenteapp/patente/ent/lessonevent"
)

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LessonEvent.Create().
		SetSequence(seqNum).
		SetLessonID(data.LessonID).
		SetAction(data.Action).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLessonEvents(ctx context.Context, opts QueryOpts) ([]LessonEventRecord, error) {
	q := r.client.LessonEvent.Query().
		Order(ent.Asc(lessonevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(lessonevent.SequenceGT(opts.After))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lesson events: %w", err)
	}

	records := make([]LessonEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, LessonEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			LessonID:  e.LessonID,
			Action:    e.Action,
		})
	}
	return records, nil
}
