// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tutorbay/tutorbay/ent/llmrequestevent"
	"github.com/tutorbay/tutorbay/ent/quiz"
	"github.com/tutorbay/tutorbay/ent/quizattempt"
	"github.com/tutorbay/tutorbay/ent/schema"
	"github.com/tutorbay/tutorbay/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizFields := schema.Quiz{}.Fields()
	_ = quizFields
	// quizDescSessionID is the schema descriptor for session_id field.
	quizDescSessionID := quizFields[1].Descriptor()
	// quiz.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quiz.SessionIDValidator = quizDescSessionID.Validators[0].(func(string) error)
	// quizDescDifficulty is the schema descriptor for difficulty field.
	quizDescDifficulty := quizFields[4].Descriptor()
	// quiz.DefaultDifficulty holds the default value on creation for the difficulty field.
	quiz.DefaultDifficulty = quizDescDifficulty.Default.(string)
	// quizDescCreatedAt is the schema descriptor for created_at field.
	quizDescCreatedAt := quizFields[5].Descriptor()
	// quiz.DefaultCreatedAt holds the default value on creation for the created_at field.
	quiz.DefaultCreatedAt = quizDescCreatedAt.Default.(func() time.Time)
	// quizDescID is the schema descriptor for id field.
	quizDescID := quizFields[0].Descriptor()
	// quiz.IDValidator is a validator for the "id" field. It is called by the builders before save.
	quiz.IDValidator = quizDescID.Validators[0].(func(string) error)
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescQuizID is the schema descriptor for quiz_id field.
	quizattemptDescQuizID := quizattemptFields[1].Descriptor()
	// quizattempt.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	quizattempt.QuizIDValidator = quizattemptDescQuizID.Validators[0].(func(string) error)
	// quizattemptDescSessionID is the schema descriptor for session_id field.
	quizattemptDescSessionID := quizattemptFields[2].Descriptor()
	// quizattempt.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizattempt.SessionIDValidator = quizattemptDescSessionID.Validators[0].(func(string) error)
	// quizattemptDescStudentID is the schema descriptor for student_id field.
	quizattemptDescStudentID := quizattemptFields[3].Descriptor()
	// quizattempt.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	quizattempt.StudentIDValidator = quizattemptDescStudentID.Validators[0].(func(string) error)
	// quizattemptDescCompletedAt is the schema descriptor for completed_at field.
	quizattemptDescCompletedAt := quizattemptFields[9].Descriptor()
	// quizattempt.DefaultCompletedAt holds the default value on creation for the completed_at field.
	quizattempt.DefaultCompletedAt = quizattemptDescCompletedAt.Default.(func() time.Time)
	// quizattemptDescID is the schema descriptor for id field.
	quizattemptDescID := quizattemptFields[0].Descriptor()
	// quizattempt.IDValidator is a validator for the "id" field. It is called by the builders before save.
	quizattempt.IDValidator = quizattemptDescID.Validators[0].(func(string) error)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescTutorID is the schema descriptor for tutor_id field.
	sessionDescTutorID := sessionFields[1].Descriptor()
	// session.TutorIDValidator is a validator for the "tutor_id" field. It is called by the builders before save.
	session.TutorIDValidator = sessionDescTutorID.Validators[0].(func(string) error)
	// sessionDescStudentID is the schema descriptor for student_id field.
	sessionDescStudentID := sessionFields[2].Descriptor()
	// session.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	session.StudentIDValidator = sessionDescStudentID.Validators[0].(func(string) error)
	// sessionDescSubjectID is the schema descriptor for subject_id field.
	sessionDescSubjectID := sessionFields[3].Descriptor()
	// session.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	session.SubjectIDValidator = sessionDescSubjectID.Validators[0].(func(string) error)
	// sessionDescDurationMins is the schema descriptor for duration_mins field.
	sessionDescDurationMins := sessionFields[5].Descriptor()
	// session.DurationMinsValidator is a validator for the "duration_mins" field. It is called by the builders before save.
	session.DurationMinsValidator = sessionDescDurationMins.Validators[0].(func(int) error)
	// sessionDescStatus is the schema descriptor for status field.
	sessionDescStatus := sessionFields[6].Descriptor()
	// session.DefaultStatus holds the default value on creation for the status field.
	session.DefaultStatus = sessionDescStatus.Default.(string)
	// sessionDescCancelState is the schema descriptor for cancel_state field.
	sessionDescCancelState := sessionFields[7].Descriptor()
	// session.DefaultCancelState holds the default value on creation for the cancel_state field.
	session.DefaultCancelState = sessionDescCancelState.Default.(string)
	// sessionDescPriceCents is the schema descriptor for price_cents field.
	sessionDescPriceCents := sessionFields[8].Descriptor()
	// session.DefaultPriceCents holds the default value on creation for the price_cents field.
	session.DefaultPriceCents = sessionDescPriceCents.Default.(int)
	// sessionDescNotes is the schema descriptor for notes field.
	sessionDescNotes := sessionFields[9].Descriptor()
	// session.DefaultNotes holds the default value on creation for the notes field.
	session.DefaultNotes = sessionDescNotes.Default.(string)
	// sessionDescTutorNotes is the schema descriptor for tutor_notes field.
	sessionDescTutorNotes := sessionFields[10].Descriptor()
	// session.DefaultTutorNotes holds the default value on creation for the tutor_notes field.
	session.DefaultTutorNotes = sessionDescTutorNotes.Default.(string)
	// sessionDescVersion is the schema descriptor for version field.
	sessionDescVersion := sessionFields[12].Descriptor()
	// session.DefaultVersion holds the default value on creation for the version field.
	session.DefaultVersion = sessionDescVersion.Default.(int64)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[13].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[14].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.IDValidator is a validator for the "id" field. It is called by the builders before save.
	session.IDValidator = sessionDescID.Validators[0].(func(string) error)
}
