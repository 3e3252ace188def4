// Code generated by ent, DO NOT EDIT.

package voterupload

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/davidolu/elector-registry/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldContainsFold(FieldID, id))
}

// AdminID applies equality check predicate on the "admin_id" field. It's identical to AdminIDEQ.
func AdminID(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldAdminID, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldFilePath, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldFileExt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldStatus, v))
}

// TotalRecords applies equality check predicate on the "total_records" field. It's identical to TotalRecordsEQ.
func TotalRecords(v int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldTotalRecords, v))
}

// ProcessedRecords applies equality check predicate on the "processed_records" field. It's identical to ProcessedRecordsEQ.
func ProcessedRecords(v int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldProcessedRecords, v))
}

// FailureCode applies equality check predicate on the "failure_code" field. It's identical to FailureCodeEQ.
func FailureCode(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldFailureCode, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldUpdatedAt, v))
}

// AdminIDEQ applies the EQ predicate on the "admin_id" field.
func AdminIDEQ(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldAdminID, v))
}

// AdminIDNEQ applies the NEQ predicate on the "admin_id" field.
func AdminIDNEQ(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNEQ(FieldAdminID, v))
}

// AdminIDIn applies the In predicate on the "admin_id" field.
func AdminIDIn(vs ...string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldIn(FieldAdminID, vs...))
}

// AdminIDNotIn applies the NotIn predicate on the "admin_id" field.
func AdminIDNotIn(vs ...string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNotIn(FieldAdminID, vs...))
}

// AdminIDGT applies the GT predicate on the "admin_id" field.
func AdminIDGT(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGT(FieldAdminID, v))
}

// AdminIDGTE applies the GTE predicate on the "admin_id" field.
func AdminIDGTE(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGTE(FieldAdminID, v))
}

// AdminIDLT applies the LT predicate on the "admin_id" field.
func AdminIDLT(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLT(FieldAdminID, v))
}

// AdminIDLTE applies the LTE predicate on the "admin_id" field.
func AdminIDLTE(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLTE(FieldAdminID, v))
}

// AdminIDContains applies the Contains predicate on the "admin_id" field.
func AdminIDContains(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldContains(FieldAdminID, v))
}

// AdminIDHasPrefix applies the HasPrefix predicate on the "admin_id" field.
func AdminIDHasPrefix(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldHasPrefix(FieldAdminID, v))
}

// AdminIDHasSuffix applies the HasSuffix predicate on the "admin_id" field.
func AdminIDHasSuffix(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldHasSuffix(FieldAdminID, v))
}

// AdminIDEqualFold applies the EqualFold predicate on the "admin_id" field.
func AdminIDEqualFold(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEqualFold(FieldAdminID, v))
}

// AdminIDContainsFold applies the ContainsFold predicate on the "admin_id" field.
func AdminIDContainsFold(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldContainsFold(FieldAdminID, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldContainsFold(FieldFilePath, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldContainsFold(FieldFileExt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldContainsFold(FieldStatus, v))
}

// TotalRecordsEQ applies the EQ predicate on the "total_records" field.
func TotalRecordsEQ(v int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldTotalRecords, v))
}

// TotalRecordsNEQ applies the NEQ predicate on the "total_records" field.
func TotalRecordsNEQ(v int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNEQ(FieldTotalRecords, v))
}

// TotalRecordsIn applies the In predicate on the "total_records" field.
func TotalRecordsIn(vs ...int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldIn(FieldTotalRecords, vs...))
}

// TotalRecordsNotIn applies the NotIn predicate on the "total_records" field.
func TotalRecordsNotIn(vs ...int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNotIn(FieldTotalRecords, vs...))
}

// TotalRecordsGT applies the GT predicate on the "total_records" field.
func TotalRecordsGT(v int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGT(FieldTotalRecords, v))
}

// TotalRecordsGTE applies the GTE predicate on the "total_records" field.
func TotalRecordsGTE(v int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGTE(FieldTotalRecords, v))
}

// TotalRecordsLT applies the LT predicate on the "total_records" field.
func TotalRecordsLT(v int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLT(FieldTotalRecords, v))
}

// TotalRecordsLTE applies the LTE predicate on the "total_records" field.
func TotalRecordsLTE(v int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLTE(FieldTotalRecords, v))
}

// TotalRecordsIsNil applies the IsNil predicate on the "total_records" field.
func TotalRecordsIsNil() predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldIsNull(FieldTotalRecords))
}

// TotalRecordsNotNil applies the NotNil predicate on the "total_records" field.
func TotalRecordsNotNil() predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNotNull(FieldTotalRecords))
}

// ProcessedRecordsEQ applies the EQ predicate on the "processed_records" field.
func ProcessedRecordsEQ(v int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldProcessedRecords, v))
}

// ProcessedRecordsNEQ applies the NEQ predicate on the "processed_records" field.
func ProcessedRecordsNEQ(v int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNEQ(FieldProcessedRecords, v))
}

// ProcessedRecordsIn applies the In predicate on the "processed_records" field.
func ProcessedRecordsIn(vs ...int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldIn(FieldProcessedRecords, vs...))
}

// ProcessedRecordsNotIn applies the NotIn predicate on the "processed_records" field.
func ProcessedRecordsNotIn(vs ...int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNotIn(FieldProcessedRecords, vs...))
}

// ProcessedRecordsGT applies the GT predicate on the "processed_records" field.
func ProcessedRecordsGT(v int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGT(FieldProcessedRecords, v))
}

// ProcessedRecordsGTE applies the GTE predicate on the "processed_records" field.
func ProcessedRecordsGTE(v int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGTE(FieldProcessedRecords, v))
}

// ProcessedRecordsLT applies the LT predicate on the "processed_records" field.
func ProcessedRecordsLT(v int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLT(FieldProcessedRecords, v))
}

// ProcessedRecordsLTE applies the LTE predicate on the "processed_records" field.
func ProcessedRecordsLTE(v int) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLTE(FieldProcessedRecords, v))
}

// FailureCodeEQ applies the EQ predicate on the "failure_code" field.
func FailureCodeEQ(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldFailureCode, v))
}

// FailureCodeNEQ applies the NEQ predicate on the "failure_code" field.
func FailureCodeNEQ(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNEQ(FieldFailureCode, v))
}

// FailureCodeIn applies the In predicate on the "failure_code" field.
func FailureCodeIn(vs ...string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldIn(FieldFailureCode, vs...))
}

// FailureCodeNotIn applies the NotIn predicate on the "failure_code" field.
func FailureCodeNotIn(vs ...string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNotIn(FieldFailureCode, vs...))
}

// FailureCodeGT applies the GT predicate on the "failure_code" field.
func FailureCodeGT(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGT(FieldFailureCode, v))
}

// FailureCodeGTE applies the GTE predicate on the "failure_code" field.
func FailureCodeGTE(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGTE(FieldFailureCode, v))
}

// FailureCodeLT applies the LT predicate on the "failure_code" field.
func FailureCodeLT(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLT(FieldFailureCode, v))
}

// FailureCodeLTE applies the LTE predicate on the "failure_code" field.
func FailureCodeLTE(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLTE(FieldFailureCode, v))
}

// FailureCodeContains applies the Contains predicate on the "failure_code" field.
func FailureCodeContains(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldContains(FieldFailureCode, v))
}

// FailureCodeHasPrefix applies the HasPrefix predicate on the "failure_code" field.
func FailureCodeHasPrefix(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldHasPrefix(FieldFailureCode, v))
}

// FailureCodeHasSuffix applies the HasSuffix predicate on the "failure_code" field.
func FailureCodeHasSuffix(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldHasSuffix(FieldFailureCode, v))
}

// FailureCodeIsNil applies the IsNil predicate on the "failure_code" field.
func FailureCodeIsNil() predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldIsNull(FieldFailureCode))
}

// FailureCodeNotNil applies the NotNil predicate on the "failure_code" field.
func FailureCodeNotNil() predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNotNull(FieldFailureCode))
}

// FailureCodeEqualFold applies the EqualFold predicate on the "failure_code" field.
func FailureCodeEqualFold(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEqualFold(FieldFailureCode, v))
}

// FailureCodeContainsFold applies the ContainsFold predicate on the "failure_code" field.
func FailureCodeContainsFold(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldContainsFold(FieldFailureCode, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.VoterUpload {
	return predicate.VoterUpload(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAdmin applies the HasEdge predicate on the "admin" edge.
func HasAdmin() predicate.VoterUpload {
	return predicate.VoterUpload(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AdminTable, AdminColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAdminWith applies the HasEdge predicate on the "admin" edge with a given conditions (other predicates).
func HasAdminWith(preds ...predicate.Admin) predicate.VoterUpload {
	return predicate.VoterUpload(func(s *sql.Selector) {
		step := newAdminStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VoterUpload) predicate.VoterUpload {
	return predicate.VoterUpload(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VoterUpload) predicate.VoterUpload {
	return predicate.VoterUpload(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VoterUpload) predicate.VoterUpload {
	return predicate.VoterUpload(sql.NotPredicates(p))
}
