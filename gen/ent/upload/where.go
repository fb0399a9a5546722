// Code generated by ent, DO NOT EDIT.

package upload

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/slabworks/cardscan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldID, id))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldBatchID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldOwnerID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldFilename, v))
}

// SequenceIndex applies equality check predicate on the "sequence_index" field. It's identical to SequenceIndexEQ.
func SequenceIndex(v int) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldSequenceIndex, v))
}

// StorageKey applies equality check predicate on the "storage_key" field. It's identical to StorageKeyEQ.
func StorageKey(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldStorageKey, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldStatus, v))
}

// OrphanReason applies equality check predicate on the "orphan_reason" field. It's identical to OrphanReasonEQ.
func OrphanReason(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldOrphanReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldCreatedAt, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldBatchID, vs...))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldOwnerID, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldFilename, v))
}

// SequenceIndexEQ applies the EQ predicate on the "sequence_index" field.
func SequenceIndexEQ(v int) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldSequenceIndex, v))
}

// SequenceIndexNEQ applies the NEQ predicate on the "sequence_index" field.
func SequenceIndexNEQ(v int) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldSequenceIndex, v))
}

// SequenceIndexIn applies the In predicate on the "sequence_index" field.
func SequenceIndexIn(vs ...int) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldSequenceIndex, vs...))
}

// SequenceIndexNotIn applies the NotIn predicate on the "sequence_index" field.
func SequenceIndexNotIn(vs ...int) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldSequenceIndex, vs...))
}

// SequenceIndexGT applies the GT predicate on the "sequence_index" field.
func SequenceIndexGT(v int) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldSequenceIndex, v))
}

// SequenceIndexGTE applies the GTE predicate on the "sequence_index" field.
func SequenceIndexGTE(v int) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldSequenceIndex, v))
}

// SequenceIndexLT applies the LT predicate on the "sequence_index" field.
func SequenceIndexLT(v int) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldSequenceIndex, v))
}

// SequenceIndexLTE applies the LTE predicate on the "sequence_index" field.
func SequenceIndexLTE(v int) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldSequenceIndex, v))
}

// StorageKeyEQ applies the EQ predicate on the "storage_key" field.
func StorageKeyEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldStorageKey, v))
}

// StorageKeyNEQ applies the NEQ predicate on the "storage_key" field.
func StorageKeyNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldStorageKey, v))
}

// StorageKeyIn applies the In predicate on the "storage_key" field.
func StorageKeyIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldStorageKey, vs...))
}

// StorageKeyNotIn applies the NotIn predicate on the "storage_key" field.
func StorageKeyNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldStorageKey, vs...))
}

// StorageKeyGT applies the GT predicate on the "storage_key" field.
func StorageKeyGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldStorageKey, v))
}

// StorageKeyGTE applies the GTE predicate on the "storage_key" field.
func StorageKeyGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldStorageKey, v))
}

// StorageKeyLT applies the LT predicate on the "storage_key" field.
func StorageKeyLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldStorageKey, v))
}

// StorageKeyLTE applies the LTE predicate on the "storage_key" field.
func StorageKeyLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldStorageKey, v))
}

// StorageKeyContains applies the Contains predicate on the "storage_key" field.
func StorageKeyContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldStorageKey, v))
}

// StorageKeyHasPrefix applies the HasPrefix predicate on the "storage_key" field.
func StorageKeyHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldStorageKey, v))
}

// StorageKeyHasSuffix applies the HasSuffix predicate on the "storage_key" field.
func StorageKeyHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldStorageKey, v))
}

// StorageKeyEqualFold applies the EqualFold predicate on the "storage_key" field.
func StorageKeyEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldStorageKey, v))
}

// StorageKeyContainsFold applies the ContainsFold predicate on the "storage_key" field.
func StorageKeyContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldStorageKey, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldStatus, v))
}

// OrphanReasonEQ applies the EQ predicate on the "orphan_reason" field.
func OrphanReasonEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldOrphanReason, v))
}

// OrphanReasonNEQ applies the NEQ predicate on the "orphan_reason" field.
func OrphanReasonNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldOrphanReason, v))
}

// OrphanReasonIn applies the In predicate on the "orphan_reason" field.
func OrphanReasonIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldOrphanReason, vs...))
}

// OrphanReasonNotIn applies the NotIn predicate on the "orphan_reason" field.
func OrphanReasonNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldOrphanReason, vs...))
}

// OrphanReasonGT applies the GT predicate on the "orphan_reason" field.
func OrphanReasonGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldOrphanReason, v))
}

// OrphanReasonGTE applies the GTE predicate on the "orphan_reason" field.
func OrphanReasonGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldOrphanReason, v))
}

// OrphanReasonLT applies the LT predicate on the "orphan_reason" field.
func OrphanReasonLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldOrphanReason, v))
}

// OrphanReasonLTE applies the LTE predicate on the "orphan_reason" field.
func OrphanReasonLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldOrphanReason, v))
}

// OrphanReasonContains applies the Contains predicate on the "orphan_reason" field.
func OrphanReasonContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldOrphanReason, v))
}

// OrphanReasonHasPrefix applies the HasPrefix predicate on the "orphan_reason" field.
func OrphanReasonHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldOrphanReason, v))
}

// OrphanReasonHasSuffix applies the HasSuffix predicate on the "orphan_reason" field.
func OrphanReasonHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldOrphanReason, v))
}

// OrphanReasonIsNil applies the IsNil predicate on the "orphan_reason" field.
func OrphanReasonIsNil() predicate.Upload {
	return predicate.Upload(sql.FieldIsNull(FieldOrphanReason))
}

// OrphanReasonNotNil applies the NotNil predicate on the "orphan_reason" field.
func OrphanReasonNotNil() predicate.Upload {
	return predicate.Upload(sql.FieldNotNull(FieldOrphanReason))
}

// OrphanReasonEqualFold applies the EqualFold predicate on the "orphan_reason" field.
func OrphanReasonEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldOrphanReason, v))
}

// OrphanReasonContainsFold applies the ContainsFold predicate on the "orphan_reason" field.
func OrphanReasonContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldOrphanReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBatch applies the HasEdge predicate on the "batch" edge.
func HasBatch() predicate.Upload {
	return predicate.Upload(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchWith applies the HasEdge predicate on the "batch" edge with a given conditions (other predicates).
func HasBatchWith(preds ...predicate.Batch) predicate.Upload {
	return predicate.Upload(func(s *sql.Selector) {
		step := newBatchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Upload) predicate.Upload {
	return predicate.Upload(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Upload) predicate.Upload {
	return predicate.Upload(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Upload) predicate.Upload {
	return predicate.Upload(sql.NotPredicates(p))
}
