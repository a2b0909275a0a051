package session

// CancelState is the tagged encoding of the cancellation negotiation.
// It replaces the two independent request booleans: the mutual-request
// combination collapses immediately to a cancelled session with CancelNone,
// so "both requested" is unrepresentable at rest.
type CancelState string

const (
	CancelNone               CancelState = "none"
	CancelRequestedByTutor   CancelState = "tutor"
	CancelRequestedByStudent CancelState = "student"
)

// requestedBy returns the state recording a pending request from the role.
func requestedBy(r Role) CancelState {
	if r == RoleTutor {
		return CancelRequestedByTutor
	}
	return CancelRequestedByStudent
}

// requestCancel is the pure transition for a party asking to cancel.
// It returns the next cancel state and whether the session must move to
// cancelled (mutual agreement). The returned error is the sentinel reason;
// the service wraps it in a StateError with session context.
func requestCancel(state CancelState, actor Role) (CancelState, bool, error) {
	switch state {
	case requestedBy(actor):
		return state, false, ErrAlreadyRequested
	case requestedBy(actor.Counterparty()):
		// The counterparty already asked: both parties agree, cancel now.
		// The collapse is deterministic regardless of arrival order.
		return CancelNone, true, nil
	default:
		return requestedBy(actor), false, nil
	}
}

// respondToCancel is the pure transition for a party answering a pending
// request from the counterparty.
func respondToCancel(state CancelState, actor Role, d Decision) (CancelState, bool, error) {
	switch state {
	case CancelNone:
		return state, false, ErrNoPendingRequest
	case requestedBy(actor):
		return state, false, ErrSelfRequestConflict
	}
	if d == DecisionAccept {
		return CancelNone, true, nil
	}
	// Reject clears the request; the counterparty may ask again later.
	return CancelNone, false, nil
}
