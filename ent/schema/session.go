package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is a tutoring meeting between one tutor and one student.
// Status and cancellation state are mutated only through the lifecycle
// service; the version column backs its optimistic compare-and-set writes.
type Session struct {
	ent.Schema
}

// SummaryRecord is the serialized form of an attached lesson summary.
type SummaryRecord struct {
	WhatWasLearned string `json:"what_was_learned"`
	Mistakes       string `json:"mistakes"`
	Strengths      string `json:"strengths"`
	PracticeTasks  string `json:"practice_tasks"`
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Unique().
			Comment("UUID assigned at booking time"),
		field.String("tutor_id").
			NotEmpty().
			Immutable(),
		field.String("student_id").
			NotEmpty().
			Immutable(),
		field.String("subject_id").
			NotEmpty().
			Immutable(),
		field.Time("scheduled_at"),
		field.Int("duration_mins").
			Positive(),
		field.String("status").
			Default("pending").
			Comment("pending, scheduled, in_progress, completed, cancelled"),
		field.String("cancel_state").
			Default("none").
			Comment("none, tutor, student; both-requested is unrepresentable"),
		field.Int("price_cents").
			Default(0),
		field.Text("notes").
			Default(""),
		field.Text("tutor_notes").
			Default(""),
		field.JSON("ai_summary", &SummaryRecord{}).
			Optional().
			Comment("Attached at most once, immutable thereafter"),
		field.Int64("version").
			Default(1).
			Comment("Optimistic-lock counter, bumped on every write"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tutor_id"),
		index.Fields("student_id"),
		index.Fields("status"),
		index.Fields("scheduled_at"),
	}
}
