// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tutorbay/tutorbay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// TutorID applies equality check predicate on the "tutor_id" field. It's identical to TutorIDEQ.
func TutorID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTutorID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStudentID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSubjectID, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldScheduledAt, v))
}

// DurationMins applies equality check predicate on the "duration_mins" field. It's identical to DurationMinsEQ.
func DurationMins(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDurationMins, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// CancelState applies equality check predicate on the "cancel_state" field. It's identical to CancelStateEQ.
func CancelState(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCancelState, v))
}

// PriceCents applies equality check predicate on the "price_cents" field. It's identical to PriceCentsEQ.
func PriceCents(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPriceCents, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldNotes, v))
}

// TutorNotes applies equality check predicate on the "tutor_notes" field. It's identical to TutorNotesEQ.
func TutorNotes(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTutorNotes, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// TutorIDEQ applies the EQ predicate on the "tutor_id" field.
func TutorIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTutorID, v))
}

// TutorIDNEQ applies the NEQ predicate on the "tutor_id" field.
func TutorIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTutorID, v))
}

// TutorIDIn applies the In predicate on the "tutor_id" field.
func TutorIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTutorID, vs...))
}

// TutorIDNotIn applies the NotIn predicate on the "tutor_id" field.
func TutorIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTutorID, vs...))
}

// TutorIDGT applies the GT predicate on the "tutor_id" field.
func TutorIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTutorID, v))
}

// TutorIDGTE applies the GTE predicate on the "tutor_id" field.
func TutorIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTutorID, v))
}

// TutorIDLT applies the LT predicate on the "tutor_id" field.
func TutorIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTutorID, v))
}

// TutorIDLTE applies the LTE predicate on the "tutor_id" field.
func TutorIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTutorID, v))
}

// TutorIDContains applies the Contains predicate on the "tutor_id" field.
func TutorIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTutorID, v))
}

// TutorIDHasPrefix applies the HasPrefix predicate on the "tutor_id" field.
func TutorIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTutorID, v))
}

// TutorIDHasSuffix applies the HasSuffix predicate on the "tutor_id" field.
func TutorIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTutorID, v))
}

// TutorIDEqualFold applies the EqualFold predicate on the "tutor_id" field.
func TutorIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTutorID, v))
}

// TutorIDContainsFold applies the ContainsFold predicate on the "tutor_id" field.
func TutorIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTutorID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldStudentID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSubjectID, v))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldScheduledAt, v))
}

// DurationMinsEQ applies the EQ predicate on the "duration_mins" field.
func DurationMinsEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDurationMins, v))
}

// DurationMinsNEQ applies the NEQ predicate on the "duration_mins" field.
func DurationMinsNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldDurationMins, v))
}

// DurationMinsIn applies the In predicate on the "duration_mins" field.
func DurationMinsIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldDurationMins, vs...))
}

// DurationMinsNotIn applies the NotIn predicate on the "duration_mins" field.
func DurationMinsNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldDurationMins, vs...))
}

// DurationMinsGT applies the GT predicate on the "duration_mins" field.
func DurationMinsGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldDurationMins, v))
}

// DurationMinsGTE applies the GTE predicate on the "duration_mins" field.
func DurationMinsGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldDurationMins, v))
}

// DurationMinsLT applies the LT predicate on the "duration_mins" field.
func DurationMinsLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldDurationMins, v))
}

// DurationMinsLTE applies the LTE predicate on the "duration_mins" field.
func DurationMinsLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldDurationMins, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldStatus, v))
}

// CancelStateEQ applies the EQ predicate on the "cancel_state" field.
func CancelStateEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCancelState, v))
}

// CancelStateNEQ applies the NEQ predicate on the "cancel_state" field.
func CancelStateNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCancelState, v))
}

// CancelStateIn applies the In predicate on the "cancel_state" field.
func CancelStateIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCancelState, vs...))
}

// CancelStateNotIn applies the NotIn predicate on the "cancel_state" field.
func CancelStateNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCancelState, vs...))
}

// CancelStateGT applies the GT predicate on the "cancel_state" field.
func CancelStateGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCancelState, v))
}

// CancelStateGTE applies the GTE predicate on the "cancel_state" field.
func CancelStateGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCancelState, v))
}

// CancelStateLT applies the LT predicate on the "cancel_state" field.
func CancelStateLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCancelState, v))
}

// CancelStateLTE applies the LTE predicate on the "cancel_state" field.
func CancelStateLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCancelState, v))
}

// CancelStateContains applies the Contains predicate on the "cancel_state" field.
func CancelStateContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldCancelState, v))
}

// CancelStateHasPrefix applies the HasPrefix predicate on the "cancel_state" field.
func CancelStateHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldCancelState, v))
}

// CancelStateHasSuffix applies the HasSuffix predicate on the "cancel_state" field.
func CancelStateHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldCancelState, v))
}

// CancelStateEqualFold applies the EqualFold predicate on the "cancel_state" field.
func CancelStateEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldCancelState, v))
}

// CancelStateContainsFold applies the ContainsFold predicate on the "cancel_state" field.
func CancelStateContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldCancelState, v))
}

// PriceCentsEQ applies the EQ predicate on the "price_cents" field.
func PriceCentsEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPriceCents, v))
}

// PriceCentsNEQ applies the NEQ predicate on the "price_cents" field.
func PriceCentsNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPriceCents, v))
}

// PriceCentsIn applies the In predicate on the "price_cents" field.
func PriceCentsIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPriceCents, vs...))
}

// PriceCentsNotIn applies the NotIn predicate on the "price_cents" field.
func PriceCentsNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPriceCents, vs...))
}

// PriceCentsGT applies the GT predicate on the "price_cents" field.
func PriceCentsGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPriceCents, v))
}

// PriceCentsGTE applies the GTE predicate on the "price_cents" field.
func PriceCentsGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPriceCents, v))
}

// PriceCentsLT applies the LT predicate on the "price_cents" field.
func PriceCentsLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPriceCents, v))
}

// PriceCentsLTE applies the LTE predicate on the "price_cents" field.
func PriceCentsLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPriceCents, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldNotes, v))
}

// TutorNotesEQ applies the EQ predicate on the "tutor_notes" field.
func TutorNotesEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTutorNotes, v))
}

// TutorNotesNEQ applies the NEQ predicate on the "tutor_notes" field.
func TutorNotesNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTutorNotes, v))
}

// TutorNotesIn applies the In predicate on the "tutor_notes" field.
func TutorNotesIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTutorNotes, vs...))
}

// TutorNotesNotIn applies the NotIn predicate on the "tutor_notes" field.
func TutorNotesNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTutorNotes, vs...))
}

// TutorNotesGT applies the GT predicate on the "tutor_notes" field.
func TutorNotesGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTutorNotes, v))
}

// TutorNotesGTE applies the GTE predicate on the "tutor_notes" field.
func TutorNotesGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTutorNotes, v))
}

// TutorNotesLT applies the LT predicate on the "tutor_notes" field.
func TutorNotesLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTutorNotes, v))
}

// TutorNotesLTE applies the LTE predicate on the "tutor_notes" field.
func TutorNotesLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTutorNotes, v))
}

// TutorNotesContains applies the Contains predicate on the "tutor_notes" field.
func TutorNotesContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTutorNotes, v))
}

// TutorNotesHasPrefix applies the HasPrefix predicate on the "tutor_notes" field.
func TutorNotesHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTutorNotes, v))
}

// TutorNotesHasSuffix applies the HasSuffix predicate on the "tutor_notes" field.
func TutorNotesHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTutorNotes, v))
}

// TutorNotesEqualFold applies the EqualFold predicate on the "tutor_notes" field.
func TutorNotesEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTutorNotes, v))
}

// TutorNotesContainsFold applies the ContainsFold predicate on the "tutor_notes" field.
func TutorNotesContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTutorNotes, v))
}

// AiSummaryIsNil applies the IsNil predicate on the "ai_summary" field.
func AiSummaryIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldAiSummary))
}

// AiSummaryNotNil applies the NotNil predicate on the "ai_summary" field.
func AiSummaryNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldAiSummary))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
