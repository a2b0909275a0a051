package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// memRepo is an in-memory Repo with real compare-and-set semantics.
// beforeUpdate, when set, runs under the lock just before the version check
// so tests can interleave a competing write.
type memRepo struct {
	mu           sync.Mutex
	sessions     map[string]*Session
	beforeUpdate func(stored *Session)
}

func newMemRepo() *memRepo {
	return &memRepo{sessions: make(map[string]*Session)}
}

func (r *memRepo) Create(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s.Clone()
	return nil
}

func (r *memRepo) Get(_ context.Context, id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.Clone(), nil
}

func (r *memRepo) List(_ context.Context, limit int) ([]*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s.Clone())
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memRepo) Update(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.sessions[s.ID]
	if !ok {
		return ErrNotFound
	}
	if hook := r.beforeUpdate; hook != nil {
		r.beforeUpdate = nil
		hook(stored)
	}
	if stored.Version != s.Version {
		return ErrVersionConflict
	}
	next := s.Clone()
	next.Version++
	r.sessions[s.ID] = next
	s.Version = next.Version
	return nil
}

// recordingNotifier captures published event types.
type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) Publish(eventType string, _ any) error {
	n.events = append(n.events, eventType)
	return nil
}

func newTestService(t *testing.T) (*Service, *memRepo, *recordingNotifier) {
	t.Helper()
	repo := newMemRepo()
	notifier := &recordingNotifier{}
	return NewService(repo, notifier), repo, notifier
}

func createScheduled(t *testing.T, svc *Service) *Session {
	t.Helper()
	ctx := context.Background()
	sess, err := svc.Create(ctx, CreateParams{
		TutorID:     "tutor-1",
		StudentID:   "student-1",
		SubjectID:   "algebra",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Duration:    time.Hour,
		PriceCents:  4500,
	})
	if err != nil {
		t.Fatal(err)
	}
	sess, err = svc.Schedule(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

func createCompleted(t *testing.T, svc *Service) *Session {
	t.Helper()
	ctx := context.Background()
	sess := createScheduled(t, svc)
	if _, err := svc.Start(ctx, sess.ID); err != nil {
		t.Fatal(err)
	}
	sess, err := svc.Complete(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

func TestCreateStartsPending(t *testing.T) {
	svc, _, _ := newTestService(t)

	sess, err := svc.Create(context.Background(), CreateParams{
		TutorID:   "tutor-1",
		StudentID: "student-1",
		SubjectID: "algebra",
	})
	if err != nil {
		t.Fatal(err)
	}
	if sess.Status != StatusPending {
		t.Errorf("status = %s, want %s", sess.Status, StatusPending)
	}
	if sess.Cancel != CancelNone {
		t.Errorf("cancel state = %s, want %s", sess.Cancel, CancelNone)
	}
	if sess.ID == "" {
		t.Error("session ID is empty")
	}
}

func TestCompletePublishesEvent(t *testing.T) {
	svc, _, notifier := newTestService(t)
	createCompleted(t, svc)

	found := false
	for _, ev := range notifier.events {
		if ev == "session.completed" {
			found = true
		}
	}
	if !found {
		t.Errorf("session.completed not published, got %v", notifier.events)
	}
}

func TestRequestCancelOnNonScheduled(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Create(ctx, CreateParams{TutorID: "t", StudentID: "s", SubjectID: "x"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.RequestCancel(ctx, sess.ID, RoleTutor)
	if !errors.Is(err, ErrNotScheduled) {
		t.Fatalf("err = %v, want ErrNotScheduled", err)
	}
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected StateError, got %T", err)
	}
	if stateErr.Status != StatusPending {
		t.Errorf("StateError.Status = %s, want %s", stateErr.Status, StatusPending)
	}
}

func TestRequestThenAccept(t *testing.T) {
	svc, _, notifier := newTestService(t)
	ctx := context.Background()
	sess := createScheduled(t, svc)

	got, err := svc.RequestCancel(ctx, sess.ID, RoleTutor)
	if err != nil {
		t.Fatal(err)
	}
	if !got.CancelRequestedByTutor() {
		t.Error("tutor request not recorded")
	}
	if got.Status != StatusScheduled {
		t.Errorf("status = %s, want %s", got.Status, StatusScheduled)
	}

	got, err = svc.RespondToCancel(ctx, sess.ID, RoleStudent, DecisionAccept)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusCancelled {
		t.Errorf("status = %s, want %s", got.Status, StatusCancelled)
	}
	if got.CancelRequestedByTutor() || got.CancelRequestedByStudent() {
		t.Error("cancel flags not cleared on terminal session")
	}

	found := false
	for _, ev := range notifier.events {
		if ev == "session.cancelled" {
			found = true
		}
	}
	if !found {
		t.Errorf("session.cancelled not published, got %v", notifier.events)
	}
}

func TestRequestThenReject(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	sess := createScheduled(t, svc)

	if _, err := svc.RequestCancel(ctx, sess.ID, RoleStudent); err != nil {
		t.Fatal(err)
	}
	got, err := svc.RespondToCancel(ctx, sess.ID, RoleTutor, DecisionReject)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusScheduled {
		t.Errorf("status = %s, want %s", got.Status, StatusScheduled)
	}
	if got.Cancel != CancelNone {
		t.Errorf("cancel state = %s, want %s", got.Cancel, CancelNone)
	}

	// The request is cleared, so the same party may ask again.
	got, err = svc.RequestCancel(ctx, sess.ID, RoleStudent)
	if err != nil {
		t.Fatalf("re-request after reject: %v", err)
	}
	if !got.CancelRequestedByStudent() {
		t.Error("student re-request not recorded")
	}
}

func TestDuplicateRequest(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	sess := createScheduled(t, svc)

	if _, err := svc.RequestCancel(ctx, sess.ID, RoleTutor); err != nil {
		t.Fatal(err)
	}
	_, err := svc.RequestCancel(ctx, sess.ID, RoleTutor)
	if !errors.Is(err, ErrAlreadyRequested) {
		t.Fatalf("err = %v, want ErrAlreadyRequested", err)
	}
}

func TestRespondWithoutPendingRequest(t *testing.T) {
	svc, _, _ := newTestService(t)
	sess := createScheduled(t, svc)

	_, err := svc.RespondToCancel(context.Background(), sess.ID, RoleStudent, DecisionAccept)
	if !errors.Is(err, ErrNoPendingRequest) {
		t.Fatalf("err = %v, want ErrNoPendingRequest", err)
	}
}

func TestRespondToOwnRequest(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	sess := createScheduled(t, svc)

	if _, err := svc.RequestCancel(ctx, sess.ID, RoleTutor); err != nil {
		t.Fatal(err)
	}
	_, err := svc.RespondToCancel(ctx, sess.ID, RoleTutor, DecisionAccept)
	if !errors.Is(err, ErrSelfRequestConflict) {
		t.Fatalf("err = %v, want ErrSelfRequestConflict", err)
	}
}

func TestMutualRequestCancels(t *testing.T) {
	orders := []struct {
		name          string
		first, second Role
	}{
		{"tutor then student", RoleTutor, RoleStudent},
		{"student then tutor", RoleStudent, RoleTutor},
	}

	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(t)
			ctx := context.Background()
			sess := createScheduled(t, svc)

			if _, err := svc.RequestCancel(ctx, sess.ID, tt.first); err != nil {
				t.Fatal(err)
			}
			got, err := svc.RequestCancel(ctx, sess.ID, tt.second)
			if err != nil {
				t.Fatal(err)
			}
			if got.Status != StatusCancelled {
				t.Errorf("status = %s, want %s", got.Status, StatusCancelled)
			}
			if got.Cancel != CancelNone {
				t.Errorf("cancel state = %s, want %s", got.Cancel, CancelNone)
			}
		})
	}
}

// A request that loses the write race re-reads the record, sees the
// counterparty's concurrent request, and collapses to cancelled.
func TestConcurrentRequestsConverge(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	sess := createScheduled(t, svc)

	repo.beforeUpdate = func(stored *Session) {
		// The student's request commits between the tutor's read and write.
		stored.Cancel = CancelRequestedByStudent
		stored.Version++
	}

	got, err := svc.RequestCancel(ctx, sess.ID, RoleTutor)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusCancelled {
		t.Errorf("status = %s, want %s", got.Status, StatusCancelled)
	}
	if got.Cancel != CancelNone {
		t.Errorf("cancel state = %s, want %s", got.Cancel, CancelNone)
	}
}

func TestSecondConflictIsRaceError(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	sess := createScheduled(t, svc)

	bump := func(stored *Session) { stored.Version++ }
	repo.beforeUpdate = func(stored *Session) {
		bump(stored)
		repo.beforeUpdate = func(stored *Session) { bump(stored) }
	}

	_, err := svc.RequestCancel(ctx, sess.ID, RoleTutor)
	var raceErr *RaceError
	if !errors.As(err, &raceErr) {
		t.Fatalf("expected RaceError, got %v", err)
	}
	if raceErr.Op != "request-cancel" {
		t.Errorf("RaceError.Op = %q, want %q", raceErr.Op, "request-cancel")
	}
	if !errors.Is(err, ErrVersionConflict) {
		t.Error("RaceError does not unwrap to ErrVersionConflict")
	}
}

func TestAttachTutorNotes(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	sess := createCompleted(t, svc)

	got, err := svc.AttachTutorNotes(ctx, sess.ID, "covered quadratic factoring")
	if err != nil {
		t.Fatal(err)
	}
	if got.TutorNotes != "covered quadratic factoring" {
		t.Errorf("notes = %q", got.TutorNotes)
	}

	_, err = svc.AttachTutorNotes(ctx, sess.ID, "second write")
	if !errors.Is(err, ErrNotesExist) {
		t.Fatalf("err = %v, want ErrNotesExist", err)
	}
}

func TestAttachTutorNotesRequiresCompleted(t *testing.T) {
	svc, _, _ := newTestService(t)
	sess := createScheduled(t, svc)

	_, err := svc.AttachTutorNotes(context.Background(), sess.ID, "too early")
	if !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("err = %v, want ErrNotCompleted", err)
	}
}

func TestAttachTutorNotesRejectsEmpty(t *testing.T) {
	svc, _, _ := newTestService(t)
	sess := createCompleted(t, svc)

	_, err := svc.AttachTutorNotes(context.Background(), sess.ID, "   ")
	if !errors.Is(err, ErrMissingNotes) {
		t.Fatalf("err = %v, want ErrMissingNotes", err)
	}
}

func TestAttachSummaryOnce(t *testing.T) {
	svc, _, notifier := newTestService(t)
	ctx := context.Background()
	sess := createCompleted(t, svc)

	sum := Summary{
		WhatWasLearned: "factoring trinomials",
		Mistakes:       "sign errors in the middle term",
		Strengths:      "quick at recognizing perfect squares",
		PracticeTasks:  "ten mixed factoring problems",
	}
	got, err := svc.AttachSummary(ctx, sess.ID, sum)
	if err != nil {
		t.Fatal(err)
	}
	if got.AISummary == nil || *got.AISummary != sum {
		t.Errorf("summary = %+v, want %+v", got.AISummary, sum)
	}

	_, err = svc.AttachSummary(ctx, sess.ID, sum)
	if !errors.Is(err, ErrSummaryExists) {
		t.Fatalf("err = %v, want ErrSummaryExists", err)
	}

	found := false
	for _, ev := range notifier.events {
		if ev == "session.summary.ready" {
			found = true
		}
	}
	if !found {
		t.Errorf("session.summary.ready not published, got %v", notifier.events)
	}
}

func TestAttachSummaryRequiresCompleted(t *testing.T) {
	svc, _, _ := newTestService(t)
	sess := createScheduled(t, svc)

	_, err := svc.AttachSummary(context.Background(), sess.ID, Summary{
		WhatWasLearned: "x", Mistakes: "y", Strengths: "z", PracticeTasks: "w",
	})
	if !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("err = %v, want ErrNotCompleted", err)
	}
}

func TestMutateUnknownSession(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Schedule(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
