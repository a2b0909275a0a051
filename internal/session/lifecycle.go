package session

// validTransitions is the complete lifecycle edge table. Anything absent
// here is rejected.
var validTransitions = map[Status][]Status{
	StatusPending:    {StatusScheduled},
	StatusScheduled:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether from → to is a valid lifecycle edge.
func CanTransition(from, to Status) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves the session to the next status, or returns a StateError
// (ErrInvalidTransition) leaving the session unchanged.
func Transition(s *Session, next Status) error {
	if !CanTransition(s.Status, next) {
		return &StateError{
			Op:        "transition",
			SessionID: s.ID,
			Status:    s.Status,
			Reason:    ErrInvalidTransition,
		}
	}
	s.Status = next
	return nil
}
