package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tutorbay/tutorbay/internal/llm"
	"github.com/tutorbay/tutorbay/internal/session"
)

// Service generates lesson summaries for completed sessions.
type Service struct {
	provider llm.Provider
	sessions *session.Service
	dir      Directory
	cfg      Config
}

// NewService creates a summary generation service.
func NewService(provider llm.Provider, sessions *session.Service, dir Directory, cfg Config) *Service {
	return &Service{provider: provider, sessions: sessions, dir: dir, cfg: cfg}
}

// summaryOutput is the raw generator response before validation.
type summaryOutput struct {
	WhatWasLearned string `json:"what_was_learned"`
	Mistakes       string `json:"mistakes"`
	Strengths      string `json:"strengths"`
	PracticeTasks  string `json:"practice_tasks"`
}

// Generate produces and attaches the lesson summary for the session.
// Preconditions: status completed, non-empty tutor notes, no summary
// attached yet. The result is validated atomically: a missing or empty
// field rejects the whole payload and the session stays exactly as it was,
// so a failed call is safely retryable by the caller.
func (s *Service) Generate(ctx context.Context, sessionID string) (*session.Summary, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	if sess.Status != session.StatusCompleted {
		return nil, &session.StateError{Op: "generate-summary", SessionID: sessionID, Status: sess.Status, Reason: session.ErrNotCompleted}
	}
	if strings.TrimSpace(sess.TutorNotes) == "" {
		return nil, &session.StateError{Op: "generate-summary", SessionID: sessionID, Status: sess.Status, Reason: session.ErrMissingNotes}
	}
	if sess.AISummary != nil {
		return nil, &session.StateError{Op: "generate-summary", SessionID: sessionID, Status: sess.Status, Reason: session.ErrSummaryExists}
	}

	in, err := s.resolvePrompt(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	sum, err := s.generate(ctx, sessionID, in)
	if err != nil {
		return nil, err
	}

	// Attach via CAS. AttachSummary re-checks the attach-once invariant
	// against the current record, so a concurrent attach loses cleanly.
	if _, err := s.sessions.AttachSummary(ctx, sessionID, *sum); err != nil {
		return nil, err
	}
	return sum, nil
}

func (s *Service) resolvePrompt(ctx context.Context, sess *session.Session) (promptInput, error) {
	subject, err := s.dir.SubjectName(ctx, sess.SubjectID)
	if err != nil {
		return promptInput{}, fmt.Errorf("resolve subject %s: %w", sess.SubjectID, err)
	}
	student, err := s.dir.StudentName(ctx, sess.StudentID)
	if err != nil {
		return promptInput{}, fmt.Errorf("resolve student %s: %w", sess.StudentID, err)
	}
	return promptInput{
		Subject:     subject,
		StudentName: student,
		Duration:    sess.Duration,
		TutorNotes:  sess.TutorNotes,
	}, nil
}

func (s *Service) generate(ctx context.Context, sessionID string, in promptInput) (*session.Summary, error) {
	ctx = llm.WithPurpose(ctx, "summary")
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System:      systemPrompt,
		User:        buildUserMessage(in),
		Schema:      Schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationFailed{SessionID: sessionID, Err: err}
	}

	var out summaryOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &GenerationFailed{SessionID: sessionID, Err: fmt.Errorf("parse response: %w", err)}
	}

	sum := &session.Summary{
		WhatWasLearned: strings.TrimSpace(out.WhatWasLearned),
		Mistakes:       strings.TrimSpace(out.Mistakes),
		Strengths:      strings.TrimSpace(out.Strengths),
		PracticeTasks:  strings.TrimSpace(out.PracticeTasks),
	}

	// All four fields or nothing: a partially filled summary is rejected
	// wholesale rather than written with blanks.
	for field, v := range map[string]string{
		"what_was_learned": sum.WhatWasLearned,
		"mistakes":         sum.Mistakes,
		"strengths":        sum.Strengths,
		"practice_tasks":   sum.PracticeTasks,
	} {
		if v == "" {
			return nil, &GenerationFailed{SessionID: sessionID, Err: fmt.Errorf("field %s is empty", field)}
		}
	}

	return sum, nil
}
