package store

import (
	"context"
	"fmt"

	"github.com/patenteapp/patente/ent"
	"github.com/patenteapp/patente/ent/examevent"
	entschema "github.com/patenteapp/patente/ent/schema"
)

func (r *eventRepo) AppendExamResult(ctx context.Context, data ExamResultData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	answers := make([]entschema.ExamAnswer, 0, len(data.Answers))
	for _, a := range data.Answers {
		answers = append(answers, entschema.ExamAnswer{
			QuestionID: a.QuestionID,
			UserAnswer: a.UserAnswer,
			Correct:    a.Correct,
		})
	}

	_, err = r.client.ExamEvent.Create().
		SetSequence(seqNum).
		SetExamID(data.ExamID).
		SetUserID(data.UserID).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetPassed(data.Passed).
		SetTimeSpentSecs(data.TimeSpentSecs).
		SetAnswers(answers).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exam event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryExamResults(ctx context.Context, opts QueryOpts) ([]ExamResultRecord, error) {
	q := r.client.ExamEvent.Query().
		Order(ent.Asc(examevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(examevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		q = q.Where(examevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(examevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exam events: %w", err)
	}

	records := make([]ExamResultRecord, 0, len(events))
	for _, e := range events {
		rec := ExamResultRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ExamResultData: ExamResultData{
				ExamID:        e.ExamID,
				UserID:        e.UserID,
				Score:         e.Score,
				Total:         e.Total,
				Passed:        e.Passed,
				TimeSpentSecs: e.TimeSpentSecs,
			},
		}
		for _, a := range e.Answers {
			rec.Answers = append(rec.Answers, ExamAnswerData{
				QuestionID: a.QuestionID,
				UserAnswer: a.UserAnswer,
				Correct:    a.Correct,
			})
		}
		records = append(records, rec)
	}
	return records, nil
}
