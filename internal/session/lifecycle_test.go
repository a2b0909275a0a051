package session

import (
	"errors"
	"testing"
)

var allStatuses = []Status{
	StatusPending,
	StatusScheduled,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

func TestCanTransitionTable(t *testing.T) {
	valid := map[[2]Status]bool{
		{StatusPending, StatusScheduled}:     true,
		{StatusScheduled, StatusInProgress}:  true,
		{StatusInProgress, StatusCompleted}:  true,
		{StatusScheduled, StatusCancelled}:   true,
		{StatusInProgress, StatusCancelled}:  true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := valid[[2]Status{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTransitionRejectsInvalidEdge(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			if CanTransition(from, to) {
				continue
			}
			s := &Session{ID: "s1", Status: from}
			err := Transition(s, to)
			if err == nil {
				t.Errorf("Transition(%s, %s): expected error", from, to)
				continue
			}

			var stateErr *StateError
			if !errors.As(err, &stateErr) {
				t.Errorf("Transition(%s, %s): expected StateError, got %T", from, to, err)
			}
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("Transition(%s, %s): expected ErrInvalidTransition, got %v", from, to, err)
			}
			if s.Status != from {
				t.Errorf("Transition(%s, %s): status mutated to %s on rejection", from, to, s.Status)
			}
		}
	}
}

func TestTransitionValidEdge(t *testing.T) {
	s := &Session{ID: "s1", Status: StatusPending}

	for _, next := range []Status{StatusScheduled, StatusInProgress, StatusCompleted} {
		if err := Transition(s, next); err != nil {
			t.Fatalf("Transition to %s: %v", next, err)
		}
		if s.Status != next {
			t.Fatalf("status = %s, want %s", s.Status, next)
		}
	}
}

func TestTerminalStatusesAreFrozen(t *testing.T) {
	for _, terminal := range []Status{StatusCompleted, StatusCancelled} {
		if !terminal.Terminal() {
			t.Errorf("%s.Terminal() = false", terminal)
		}
		for _, to := range allStatuses {
			if CanTransition(terminal, to) {
				t.Errorf("terminal status %s allows transition to %s", terminal, to)
			}
		}
	}
}
