package session

import (
	"context"
	"errors"
	"time"
)

// Status is a session's position in its lifecycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Terminal reports whether no further status transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Role identifies which party of a session performs an operation.
type Role string

const (
	RoleTutor   Role = "tutor"
	RoleStudent Role = "student"
)

// Counterparty returns the other party of the session.
func (r Role) Counterparty() Role {
	if r == RoleTutor {
		return RoleStudent
	}
	return RoleTutor
}

// Decision is a party's answer to a pending cancellation request.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// Summary is the AI-authored recap of a completed session. All four fields
// are non-empty by construction; a summary is attached to a session at most
// once and is immutable thereafter.
type Summary struct {
	WhatWasLearned string
	Mistakes       string
	Strengths      string
	PracticeTasks  string
}

// Session is one tutoring meeting between a tutor and a student.
// Status and Cancel are mutated only through Service operations; Version
// backs the repository's optimistic compare-and-set writes.
type Session struct {
	ID          string
	TutorID     string
	StudentID   string
	SubjectID   string
	ScheduledAt time.Time
	Duration    time.Duration
	Status      Status
	Cancel      CancelState
	PriceCents  int
	Notes       string
	TutorNotes  string
	AISummary   *Summary
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CancelRequestedByTutor reports the tutor side of the negotiation in the
// original two-boolean shape.
func (s *Session) CancelRequestedByTutor() bool { return s.Cancel == CancelRequestedByTutor }

// CancelRequestedByStudent reports the student side of the negotiation in
// the original two-boolean shape.
func (s *Session) CancelRequestedByStudent() bool { return s.Cancel == CancelRequestedByStudent }

// Clone returns a deep copy. Service operations mutate a clone and persist
// it via compare-and-set, so a failed write never dirties the caller's view.
func (s *Session) Clone() *Session {
	c := *s
	if s.AISummary != nil {
		sum := *s.AISummary
		c.AISummary = &sum
	}
	return &c
}

// ErrNotFound is returned by repositories when no session has the given ID.
var ErrNotFound = errors.New("session not found")

// ErrVersionConflict is returned by Repo.Update when the stored version no
// longer matches the version the write was based on.
var ErrVersionConflict = errors.New("session version conflict")

// Repo is the persistence contract for sessions. Update must write the
// record only if the stored version equals the version carried by the given
// session, bump the version, and return ErrVersionConflict otherwise.
type Repo interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	List(ctx context.Context, limit int) ([]*Session, error)
	Update(ctx context.Context, s *Session) error
}
