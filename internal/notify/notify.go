// Package notify publishes domain events to interested collaborators
// (chat, payments, the student's dashboard). Publication is fire-and-forget:
// services log a failed publish and carry on, so a broker outage never fails
// a lifecycle or grading operation.
package notify

// Event types used as routing keys on the topic exchange.
const (
	EventSessionCompleted = "session.completed"
	EventSessionCancelled = "session.cancelled"
	EventSummaryReady     = "session.summary.ready"
	EventQuizReady        = "quiz.ready"
	EventAttemptGraded    = "quiz.attempt.graded"
)

// Notifier dispatches one domain event with a JSON-serializable payload.
type Notifier interface {
	Publish(eventType string, payload any) error
}

// Noop is a Notifier that discards everything. Used when no broker is
// configured (local CLI runs, tests that don't assert on events).
type Noop struct{}

func (Noop) Publish(string, any) error { return nil }
