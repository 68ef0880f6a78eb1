// Code generated by ent, DO NOT EDIT.

package fetchjob

import (
	"mediafetch/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLTE(FieldID, id))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldURL, v))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldPlatform, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldStatus, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldTitle, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ResultPath applies equality check predicate on the "result_path" field. It's identical to ResultPathEQ.
func ResultPath(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldResultPath, v))
}

// ResultBytes applies equality check predicate on the "result_bytes" field. It's identical to ResultBytesEQ.
func ResultBytes(v int64) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldResultBytes, v))
}

// VideoDone applies equality check predicate on the "video_done" field. It's identical to VideoDoneEQ.
func VideoDone(v bool) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldVideoDone, v))
}

// AudioDone applies equality check predicate on the "audio_done" field. It's identical to AudioDoneEQ.
func AudioDone(v bool) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldAudioDone, v))
}

// MergeDone applies equality check predicate on the "merge_done" field. It's identical to MergeDoneEQ.
func MergeDone(v bool) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldMergeDone, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldCreatedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldFinishedAt, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldContainsFold(FieldURL, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldContainsFold(FieldPlatform, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldContainsFold(FieldStatus, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldContainsFold(FieldTitle, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldContainsFold(FieldErrorKind, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ResultPathEQ applies the EQ predicate on the "result_path" field.
func ResultPathEQ(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldResultPath, v))
}

// ResultPathNEQ applies the NEQ predicate on the "result_path" field.
func ResultPathNEQ(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNEQ(FieldResultPath, v))
}

// ResultPathIn applies the In predicate on the "result_path" field.
func ResultPathIn(vs ...string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIn(FieldResultPath, vs...))
}

// ResultPathNotIn applies the NotIn predicate on the "result_path" field.
func ResultPathNotIn(vs ...string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotIn(FieldResultPath, vs...))
}

// ResultPathGT applies the GT predicate on the "result_path" field.
func ResultPathGT(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGT(FieldResultPath, v))
}

// ResultPathGTE applies the GTE predicate on the "result_path" field.
func ResultPathGTE(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGTE(FieldResultPath, v))
}

// ResultPathLT applies the LT predicate on the "result_path" field.
func ResultPathLT(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLT(FieldResultPath, v))
}

// ResultPathLTE applies the LTE predicate on the "result_path" field.
func ResultPathLTE(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLTE(FieldResultPath, v))
}

// ResultPathContains applies the Contains predicate on the "result_path" field.
func ResultPathContains(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldContains(FieldResultPath, v))
}

// ResultPathHasPrefix applies the HasPrefix predicate on the "result_path" field.
func ResultPathHasPrefix(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldHasPrefix(FieldResultPath, v))
}

// ResultPathHasSuffix applies the HasSuffix predicate on the "result_path" field.
func ResultPathHasSuffix(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldHasSuffix(FieldResultPath, v))
}

// ResultPathIsNil applies the IsNil predicate on the "result_path" field.
func ResultPathIsNil() predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIsNull(FieldResultPath))
}

// ResultPathNotNil applies the NotNil predicate on the "result_path" field.
func ResultPathNotNil() predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotNull(FieldResultPath))
}

// ResultPathEqualFold applies the EqualFold predicate on the "result_path" field.
func ResultPathEqualFold(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEqualFold(FieldResultPath, v))
}

// ResultPathContainsFold applies the ContainsFold predicate on the "result_path" field.
func ResultPathContainsFold(v string) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldContainsFold(FieldResultPath, v))
}

// ResultBytesEQ applies the EQ predicate on the "result_bytes" field.
func ResultBytesEQ(v int64) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldResultBytes, v))
}

// ResultBytesNEQ applies the NEQ predicate on the "result_bytes" field.
func ResultBytesNEQ(v int64) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNEQ(FieldResultBytes, v))
}

// ResultBytesIn applies the In predicate on the "result_bytes" field.
func ResultBytesIn(vs ...int64) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIn(FieldResultBytes, vs...))
}

// ResultBytesNotIn applies the NotIn predicate on the "result_bytes" field.
func ResultBytesNotIn(vs ...int64) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotIn(FieldResultBytes, vs...))
}

// ResultBytesGT applies the GT predicate on the "result_bytes" field.
func ResultBytesGT(v int64) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGT(FieldResultBytes, v))
}

// ResultBytesGTE applies the GTE predicate on the "result_bytes" field.
func ResultBytesGTE(v int64) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGTE(FieldResultBytes, v))
}

// ResultBytesLT applies the LT predicate on the "result_bytes" field.
func ResultBytesLT(v int64) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLT(FieldResultBytes, v))
}

// ResultBytesLTE applies the LTE predicate on the "result_bytes" field.
func ResultBytesLTE(v int64) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLTE(FieldResultBytes, v))
}

// VideoDoneEQ applies the EQ predicate on the "video_done" field.
func VideoDoneEQ(v bool) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldVideoDone, v))
}

// VideoDoneNEQ applies the NEQ predicate on the "video_done" field.
func VideoDoneNEQ(v bool) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNEQ(FieldVideoDone, v))
}

// AudioDoneEQ applies the EQ predicate on the "audio_done" field.
func AudioDoneEQ(v bool) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldAudioDone, v))
}

// AudioDoneNEQ applies the NEQ predicate on the "audio_done" field.
func AudioDoneNEQ(v bool) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNEQ(FieldAudioDone, v))
}

// MergeDoneEQ applies the EQ predicate on the "merge_done" field.
func MergeDoneEQ(v bool) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldMergeDone, v))
}

// MergeDoneNEQ applies the NEQ predicate on the "merge_done" field.
func MergeDoneNEQ(v bool) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNEQ(FieldMergeDone, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLTE(FieldCreatedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.FetchJob {
	return predicate.FetchJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.FetchJob {
	return predicate.FetchJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.FetchJob {
	return predicate.FetchJob(sql.FieldNotNull(FieldFinishedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FetchJob) predicate.FetchJob {
	return predicate.FetchJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FetchJob) predicate.FetchJob {
	return predicate.FetchJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FetchJob) predicate.FetchJob {
	return predicate.FetchJob(sql.NotPredicates(p))
}
