package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Quiz is an AI-authored question set derived from a session's lesson
// summary. At most one live quiz exists per session; regeneration replaces
// the row wholesale until the first attempt freezes it.
type Quiz struct {
	ent.Schema
}

// QuestionRecord is the serialized form of a single quiz question.
type QuestionRecord struct {
	Text          string   `json:"text"`
	Type          string   `json:"type"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Topic         string   `json:"topic"`
}

func (Quiz) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Unique(),
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("1:1 with the session the quiz was generated for"),
		field.JSON("questions", []QuestionRecord{}).
			Comment("Ordered question list, validated before persistence"),
		field.JSON("focus_areas", []string{}).
			Optional(),
		field.String("difficulty").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Quiz) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
