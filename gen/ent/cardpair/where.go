// Code generated by ent, DO NOT EDIT.

package cardpair

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/slabworks/cardscan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldLTE(FieldID, id))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldBatchID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldOwnerID, v))
}

// FrontUploadID applies equality check predicate on the "front_upload_id" field. It's identical to FrontUploadIDEQ.
func FrontUploadID(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldFrontUploadID, v))
}

// BackUploadID applies equality check predicate on the "back_upload_id" field. It's identical to BackUploadIDEQ.
func BackUploadID(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldBackUploadID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldStatus, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldMethod, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldConfidence, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldProvider, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldExtractedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldCreatedAt, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldNotIn(FieldBatchID, vs...))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldLTE(FieldOwnerID, v))
}

// FrontUploadIDEQ applies the EQ predicate on the "front_upload_id" field.
func FrontUploadIDEQ(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldFrontUploadID, v))
}

// FrontUploadIDNEQ applies the NEQ predicate on the "front_upload_id" field.
func FrontUploadIDNEQ(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldNEQ(FieldFrontUploadID, v))
}

// FrontUploadIDIn applies the In predicate on the "front_upload_id" field.
func FrontUploadIDIn(vs ...uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldIn(FieldFrontUploadID, vs...))
}

// FrontUploadIDNotIn applies the NotIn predicate on the "front_upload_id" field.
func FrontUploadIDNotIn(vs ...uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldNotIn(FieldFrontUploadID, vs...))
}

// FrontUploadIDGT applies the GT predicate on the "front_upload_id" field.
func FrontUploadIDGT(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldGT(FieldFrontUploadID, v))
}

// FrontUploadIDGTE applies the GTE predicate on the "front_upload_id" field.
func FrontUploadIDGTE(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldGTE(FieldFrontUploadID, v))
}

// FrontUploadIDLT applies the LT predicate on the "front_upload_id" field.
func FrontUploadIDLT(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldLT(FieldFrontUploadID, v))
}

// FrontUploadIDLTE applies the LTE predicate on the "front_upload_id" field.
func FrontUploadIDLTE(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldLTE(FieldFrontUploadID, v))
}

// BackUploadIDEQ applies the EQ predicate on the "back_upload_id" field.
func BackUploadIDEQ(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldBackUploadID, v))
}

// BackUploadIDNEQ applies the NEQ predicate on the "back_upload_id" field.
func BackUploadIDNEQ(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldNEQ(FieldBackUploadID, v))
}

// BackUploadIDIn applies the In predicate on the "back_upload_id" field.
func BackUploadIDIn(vs ...uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldIn(FieldBackUploadID, vs...))
}

// BackUploadIDNotIn applies the NotIn predicate on the "back_upload_id" field.
func BackUploadIDNotIn(vs ...uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldNotIn(FieldBackUploadID, vs...))
}

// BackUploadIDGT applies the GT predicate on the "back_upload_id" field.
func BackUploadIDGT(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldGT(FieldBackUploadID, v))
}

// BackUploadIDGTE applies the GTE predicate on the "back_upload_id" field.
func BackUploadIDGTE(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldGTE(FieldBackUploadID, v))
}

// BackUploadIDLT applies the LT predicate on the "back_upload_id" field.
func BackUploadIDLT(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldLT(FieldBackUploadID, v))
}

// BackUploadIDLTE applies the LTE predicate on the "back_upload_id" field.
func BackUploadIDLTE(v uuid.UUID) predicate.CardPair {
	return predicate.CardPair(sql.FieldLTE(FieldBackUploadID, v))
}

// BackUploadIDIsNil applies the IsNil predicate on the "back_upload_id" field.
func BackUploadIDIsNil() predicate.CardPair {
	return predicate.CardPair(sql.FieldIsNull(FieldBackUploadID))
}

// BackUploadIDNotNil applies the NotNil predicate on the "back_upload_id" field.
func BackUploadIDNotNil() predicate.CardPair {
	return predicate.CardPair(sql.FieldNotNull(FieldBackUploadID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CardPair {
	return predicate.CardPair(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CardPair {
	return predicate.CardPair(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldContainsFold(FieldStatus, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.CardPair {
	return predicate.CardPair(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.CardPair {
	return predicate.CardPair(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldContainsFold(FieldMethod, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.CardPair {
	return predicate.CardPair(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.CardPair {
	return predicate.CardPair(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.CardPair {
	return predicate.CardPair(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.CardPair {
	return predicate.CardPair(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.CardPair {
	return predicate.CardPair(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.CardPair {
	return predicate.CardPair(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.CardPair {
	return predicate.CardPair(sql.FieldLTE(FieldConfidence, v))
}

// ExtractedFieldsIsNil applies the IsNil predicate on the "extracted_fields" field.
func ExtractedFieldsIsNil() predicate.CardPair {
	return predicate.CardPair(sql.FieldIsNull(FieldExtractedFields))
}

// ExtractedFieldsNotNil applies the NotNil predicate on the "extracted_fields" field.
func ExtractedFieldsNotNil() predicate.CardPair {
	return predicate.CardPair(sql.FieldNotNull(FieldExtractedFields))
}

// FieldConfidenceIsNil applies the IsNil predicate on the "field_confidence" field.
func FieldConfidenceIsNil() predicate.CardPair {
	return predicate.CardPair(sql.FieldIsNull(FieldFieldConfidence))
}

// FieldConfidenceNotNil applies the NotNil predicate on the "field_confidence" field.
func FieldConfidenceNotNil() predicate.CardPair {
	return predicate.CardPair(sql.FieldNotNull(FieldFieldConfidence))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.CardPair {
	return predicate.CardPair(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.CardPair {
	return predicate.CardPair(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderIsNil applies the IsNil predicate on the "provider" field.
func ProviderIsNil() predicate.CardPair {
	return predicate.CardPair(sql.FieldIsNull(FieldProvider))
}

// ProviderNotNil applies the NotNil predicate on the "provider" field.
func ProviderNotNil() predicate.CardPair {
	return predicate.CardPair(sql.FieldNotNull(FieldProvider))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.CardPair {
	return predicate.CardPair(sql.FieldContainsFold(FieldProvider, v))
}

// TokenUsageIsNil applies the IsNil predicate on the "token_usage" field.
func TokenUsageIsNil() predicate.CardPair {
	return predicate.CardPair(sql.FieldIsNull(FieldTokenUsage))
}

// TokenUsageNotNil applies the NotNil predicate on the "token_usage" field.
func TokenUsageNotNil() predicate.CardPair {
	return predicate.CardPair(sql.FieldNotNull(FieldTokenUsage))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldLTE(FieldExtractedAt, v))
}

// ExtractedAtIsNil applies the IsNil predicate on the "extracted_at" field.
func ExtractedAtIsNil() predicate.CardPair {
	return predicate.CardPair(sql.FieldIsNull(FieldExtractedAt))
}

// ExtractedAtNotNil applies the NotNil predicate on the "extracted_at" field.
func ExtractedAtNotNil() predicate.CardPair {
	return predicate.CardPair(sql.FieldNotNull(FieldExtractedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CardPair {
	return predicate.CardPair(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBatch applies the HasEdge predicate on the "batch" edge.
func HasBatch() predicate.CardPair {
	return predicate.CardPair(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchWith applies the HasEdge predicate on the "batch" edge with a given conditions (other predicates).
func HasBatchWith(preds ...predicate.Batch) predicate.CardPair {
	return predicate.CardPair(func(s *sql.Selector) {
		step := newBatchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CardPair) predicate.CardPair {
	return predicate.CardPair(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CardPair) predicate.CardPair {
	return predicate.CardPair(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CardPair) predicate.CardPair {
	return predicate.CardPair(sql.NotPredicates(p))
}
