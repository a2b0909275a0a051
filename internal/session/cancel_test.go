package session

import (
	"errors"
	"testing"
)

func TestRequestCancel(t *testing.T) {
	tests := []struct {
		name     string
		state    CancelState
		actor    Role
		want     CancelState
		wantDone bool
		wantErr  error
	}{
		{"tutor asks first", CancelNone, RoleTutor, CancelRequestedByTutor, false, nil},
		{"student asks first", CancelNone, RoleStudent, CancelRequestedByStudent, false, nil},
		{"tutor asks twice", CancelRequestedByTutor, RoleTutor, CancelRequestedByTutor, false, ErrAlreadyRequested},
		{"student asks twice", CancelRequestedByStudent, RoleStudent, CancelRequestedByStudent, false, ErrAlreadyRequested},
		{"student joins tutor request", CancelRequestedByTutor, RoleStudent, CancelNone, true, nil},
		{"tutor joins student request", CancelRequestedByStudent, RoleTutor, CancelNone, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, done, err := requestCancel(tt.state, tt.actor)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("state = %s, want %s", got, tt.want)
			}
			if done != tt.wantDone {
				t.Errorf("done = %v, want %v", done, tt.wantDone)
			}
		})
	}
}

func TestRespondToCancel(t *testing.T) {
	tests := []struct {
		name     string
		state    CancelState
		actor    Role
		decision Decision
		want     CancelState
		wantDone bool
		wantErr  error
	}{
		{"accept tutor request", CancelRequestedByTutor, RoleStudent, DecisionAccept, CancelNone, true, nil},
		{"accept student request", CancelRequestedByStudent, RoleTutor, DecisionAccept, CancelNone, true, nil},
		{"reject tutor request", CancelRequestedByTutor, RoleStudent, DecisionReject, CancelNone, false, nil},
		{"reject student request", CancelRequestedByStudent, RoleTutor, DecisionReject, CancelNone, false, nil},
		{"no pending request", CancelNone, RoleStudent, DecisionAccept, CancelNone, false, ErrNoPendingRequest},
		{"tutor answers own request", CancelRequestedByTutor, RoleTutor, DecisionAccept, CancelRequestedByTutor, false, ErrSelfRequestConflict},
		{"student answers own request", CancelRequestedByStudent, RoleStudent, DecisionReject, CancelRequestedByStudent, false, ErrSelfRequestConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, done, err := respondToCancel(tt.state, tt.actor, tt.decision)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("state = %s, want %s", got, tt.want)
			}
			if done != tt.wantDone {
				t.Errorf("done = %v, want %v", done, tt.wantDone)
			}
		})
	}
}

// A rejected request clears the slate: the same party can ask again and a
// later mutual agreement still cancels.
func TestRejectThenReRequest(t *testing.T) {
	state, done, err := requestCancel(CancelNone, RoleTutor)
	if err != nil || done {
		t.Fatalf("first request: state=%s done=%v err=%v", state, done, err)
	}

	state, done, err = respondToCancel(state, RoleStudent, DecisionReject)
	if err != nil || done || state != CancelNone {
		t.Fatalf("reject: state=%s done=%v err=%v", state, done, err)
	}

	state, _, err = requestCancel(state, RoleTutor)
	if err != nil {
		t.Fatalf("re-request after reject: %v", err)
	}
	if state != CancelRequestedByTutor {
		t.Fatalf("state = %s, want %s", state, CancelRequestedByTutor)
	}

	_, done, err = requestCancel(state, RoleStudent)
	if err != nil || !done {
		t.Fatalf("mutual after reject: done=%v err=%v", done, err)
	}
}
