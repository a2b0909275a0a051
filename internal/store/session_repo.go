package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tutorbay/tutorbay/ent"
	entsession "github.com/tutorbay/tutorbay/ent/session"
	entschema "github.com/tutorbay/tutorbay/ent/schema"
	"github.com/tutorbay/tutorbay/internal/session"
)

// SessionRepo implements session.Repo on ent. Update is compare-and-set on
// the version column: the write predicate includes the version the caller
// read, so a concurrent writer makes the update match zero rows.
type SessionRepo struct {
	client *ent.Client
}

var _ session.Repo = (*SessionRepo)(nil)

func (r *SessionRepo) Create(ctx context.Context, s *session.Session) error {
	builder := r.client.Session.Create().
		SetID(s.ID).
		SetTutorID(s.TutorID).
		SetStudentID(s.StudentID).
		SetSubjectID(s.SubjectID).
		SetScheduledAt(s.ScheduledAt).
		SetDurationMins(int(s.Duration.Minutes())).
		SetStatus(string(s.Status)).
		SetCancelState(string(s.Cancel)).
		SetPriceCents(s.PriceCents).
		SetNotes(s.Notes).
		SetTutorNotes(s.TutorNotes).
		SetVersion(s.Version).
		SetCreatedAt(s.CreatedAt).
		SetUpdatedAt(s.UpdatedAt)

	if s.AISummary != nil {
		builder = builder.SetAiSummary(summaryToRecord(s.AISummary))
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepo) Get(ctx context.Context, id string) (*session.Session, error) {
	row, err := r.client.Session.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %s: %w", id, session.ErrNotFound)
		}
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return sessionFromRow(row), nil
}

func (r *SessionRepo) List(ctx context.Context, limit int) ([]*session.Session, error) {
	q := r.client.Session.Query().
		Order(ent.Desc(entsession.FieldScheduledAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]*session.Session, len(rows))
	for i, row := range rows {
		out[i] = sessionFromRow(row)
	}
	return out, nil
}

func (r *SessionRepo) Update(ctx context.Context, s *session.Session) error {
	builder := r.client.Session.Update().
		Where(
			entsession.ID(s.ID),
			entsession.Version(s.Version),
		).
		SetScheduledAt(s.ScheduledAt).
		SetDurationMins(int(s.Duration.Minutes())).
		SetStatus(string(s.Status)).
		SetCancelState(string(s.Cancel)).
		SetPriceCents(s.PriceCents).
		SetNotes(s.Notes).
		SetTutorNotes(s.TutorNotes).
		SetVersion(s.Version + 1).
		SetUpdatedAt(s.UpdatedAt)

	if s.AISummary != nil {
		builder = builder.SetAiSummary(summaryToRecord(s.AISummary))
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("update session %s: %w", s.ID, err)
	}
	if n == 0 {
		exists, err := r.client.Session.Query().Where(entsession.ID(s.ID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("update session %s: %w", s.ID, err)
		}
		if !exists {
			return fmt.Errorf("session %s: %w", s.ID, session.ErrNotFound)
		}
		return fmt.Errorf("session %s at version %d: %w", s.ID, s.Version, session.ErrVersionConflict)
	}

	s.Version++
	return nil
}

func sessionFromRow(row *ent.Session) *session.Session {
	s := &session.Session{
		ID:          row.ID,
		TutorID:     row.TutorID,
		StudentID:   row.StudentID,
		SubjectID:   row.SubjectID,
		ScheduledAt: row.ScheduledAt,
		Duration:    time.Duration(row.DurationMins) * time.Minute,
		Status:      session.Status(row.Status),
		Cancel:      session.CancelState(row.CancelState),
		PriceCents:  row.PriceCents,
		Notes:       row.Notes,
		TutorNotes:  row.TutorNotes,
		Version:     row.Version,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.AiSummary != nil {
		s.AISummary = &session.Summary{
			WhatWasLearned: row.AiSummary.WhatWasLearned,
			Mistakes:       row.AiSummary.Mistakes,
			Strengths:      row.AiSummary.Strengths,
			PracticeTasks:  row.AiSummary.PracticeTasks,
		}
	}
	return s
}

func summaryToRecord(sum *session.Summary) *entschema.SummaryRecord {
	return &entschema.SummaryRecord{
		WhatWasLearned: sum.WhatWasLearned,
		Mistakes:       sum.Mistakes,
		Strengths:      sum.Strengths,
		PracticeTasks:  sum.PracticeTasks,
	}
}
