// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/slabworks/cardscan/gen/ent/batch"
	"github.com/slabworks/cardscan/gen/ent/cardpair"
	"github.com/slabworks/cardscan/gen/ent/predicate"
)

// CardPairUpdate is the builder for updating CardPair entities.
type CardPairUpdate struct {
	config
	hooks    []Hook
	mutation *CardPairMutation
}

// Where appends a list predicates to the CardPairUpdate builder.
func (_u *CardPairUpdate) Where(ps ...predicate.CardPair) *CardPairUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *CardPairUpdate) SetBatchID(v uuid.UUID) *CardPairUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *CardPairUpdate) SetNillableBatchID(v *uuid.UUID) *CardPairUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *CardPairUpdate) SetOwnerID(v uuid.UUID) *CardPairUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *CardPairUpdate) SetNillableOwnerID(v *uuid.UUID) *CardPairUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetFrontUploadID sets the "front_upload_id" field.
func (_u *CardPairUpdate) SetFrontUploadID(v uuid.UUID) *CardPairUpdate {
	_u.mutation.SetFrontUploadID(v)
	return _u
}

// SetNillableFrontUploadID sets the "front_upload_id" field if the given value is not nil.
func (_u *CardPairUpdate) SetNillableFrontUploadID(v *uuid.UUID) *CardPairUpdate {
	if v != nil {
		_u.SetFrontUploadID(*v)
	}
	return _u
}

// SetBackUploadID sets the "back_upload_id" field.
func (_u *CardPairUpdate) SetBackUploadID(v uuid.UUID) *CardPairUpdate {
	_u.mutation.SetBackUploadID(v)
	return _u
}

// SetNillableBackUploadID sets the "back_upload_id" field if the given value is not nil.
func (_u *CardPairUpdate) SetNillableBackUploadID(v *uuid.UUID) *CardPairUpdate {
	if v != nil {
		_u.SetBackUploadID(*v)
	}
	return _u
}

// ClearBackUploadID clears the value of the "back_upload_id" field.
func (_u *CardPairUpdate) ClearBackUploadID() *CardPairUpdate {
	_u.mutation.ClearBackUploadID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CardPairUpdate) SetStatus(v string) *CardPairUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CardPairUpdate) SetNillableStatus(v *string) *CardPairUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *CardPairUpdate) SetMethod(v string) *CardPairUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *CardPairUpdate) SetNillableMethod(v *string) *CardPairUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CardPairUpdate) SetConfidence(v float32) *CardPairUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CardPairUpdate) SetNillableConfidence(v *float32) *CardPairUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CardPairUpdate) AddConfidence(v float32) *CardPairUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *CardPairUpdate) SetExtractedFields(v json.RawMessage) *CardPairUpdate {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// AppendExtractedFields appends value to the "extracted_fields" field.
func (_u *CardPairUpdate) AppendExtractedFields(v json.RawMessage) *CardPairUpdate {
	_u.mutation.AppendExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *CardPairUpdate) ClearExtractedFields() *CardPairUpdate {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetFieldConfidence sets the "field_confidence" field.
func (_u *CardPairUpdate) SetFieldConfidence(v json.RawMessage) *CardPairUpdate {
	_u.mutation.SetFieldConfidence(v)
	return _u
}

// AppendFieldConfidence appends value to the "field_confidence" field.
func (_u *CardPairUpdate) AppendFieldConfidence(v json.RawMessage) *CardPairUpdate {
	_u.mutation.AppendFieldConfidence(v)
	return _u
}

// ClearFieldConfidence clears the value of the "field_confidence" field.
func (_u *CardPairUpdate) ClearFieldConfidence() *CardPairUpdate {
	_u.mutation.ClearFieldConfidence()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CardPairUpdate) SetProvider(v string) *CardPairUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CardPairUpdate) SetNillableProvider(v *string) *CardPairUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *CardPairUpdate) ClearProvider() *CardPairUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetTokenUsage sets the "token_usage" field.
func (_u *CardPairUpdate) SetTokenUsage(v json.RawMessage) *CardPairUpdate {
	_u.mutation.SetTokenUsage(v)
	return _u
}

// AppendTokenUsage appends value to the "token_usage" field.
func (_u *CardPairUpdate) AppendTokenUsage(v json.RawMessage) *CardPairUpdate {
	_u.mutation.AppendTokenUsage(v)
	return _u
}

// ClearTokenUsage clears the value of the "token_usage" field.
func (_u *CardPairUpdate) ClearTokenUsage() *CardPairUpdate {
	_u.mutation.ClearTokenUsage()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *CardPairUpdate) SetExtractedAt(v time.Time) *CardPairUpdate {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *CardPairUpdate) SetNillableExtractedAt(v *time.Time) *CardPairUpdate {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// ClearExtractedAt clears the value of the "extracted_at" field.
func (_u *CardPairUpdate) ClearExtractedAt() *CardPairUpdate {
	_u.mutation.ClearExtractedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CardPairUpdate) SetCreatedAt(v time.Time) *CardPairUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CardPairUpdate) SetNillableCreatedAt(v *time.Time) *CardPairUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *CardPairUpdate) SetBatch(v *Batch) *CardPairUpdate {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the CardPairMutation object of the builder.
func (_u *CardPairUpdate) Mutation() *CardPairMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *CardPairUpdate) ClearBatch() *CardPairUpdate {
	_u.mutation.ClearBatch()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardPairUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardPairUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardPairUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardPairUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardPairUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := cardpair.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CardPair.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := cardpair.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "CardPair.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := cardpair.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "CardPair.confidence": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CardPair.batch"`)
	}
	return nil
}

func (_u *CardPairUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardpair.Table, cardpair.Columns, sqlgraph.NewFieldSpec(cardpair.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(cardpair.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FrontUploadID(); ok {
		_spec.SetField(cardpair.FieldFrontUploadID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BackUploadID(); ok {
		_spec.SetField(cardpair.FieldBackUploadID, field.TypeUUID, value)
	}
	if _u.mutation.BackUploadIDCleared() {
		_spec.ClearField(cardpair.FieldBackUploadID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(cardpair.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(cardpair.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(cardpair.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(cardpair.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(cardpair.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cardpair.FieldExtractedFields, value)
		})
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(cardpair.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.FieldConfidence(); ok {
		_spec.SetField(cardpair.FieldFieldConfidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFieldConfidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cardpair.FieldFieldConfidence, value)
		})
	}
	if _u.mutation.FieldConfidenceCleared() {
		_spec.ClearField(cardpair.FieldFieldConfidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(cardpair.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(cardpair.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.TokenUsage(); ok {
		_spec.SetField(cardpair.FieldTokenUsage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTokenUsage(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cardpair.FieldTokenUsage, value)
		})
	}
	if _u.mutation.TokenUsageCleared() {
		_spec.ClearField(cardpair.FieldTokenUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(cardpair.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractedAtCleared() {
		_spec.ClearField(cardpair.FieldExtractedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cardpair.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardpair.BatchTable,
			Columns: []string{cardpair.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardpair.BatchTable,
			Columns: []string{cardpair.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardpair.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardPairUpdateOne is the builder for updating a single CardPair entity.
type CardPairUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardPairMutation
}

// SetBatchID sets the "batch_id" field.
func (_u *CardPairUpdateOne) SetBatchID(v uuid.UUID) *CardPairUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *CardPairUpdateOne) SetNillableBatchID(v *uuid.UUID) *CardPairUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *CardPairUpdateOne) SetOwnerID(v uuid.UUID) *CardPairUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *CardPairUpdateOne) SetNillableOwnerID(v *uuid.UUID) *CardPairUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetFrontUploadID sets the "front_upload_id" field.
func (_u *CardPairUpdateOne) SetFrontUploadID(v uuid.UUID) *CardPairUpdateOne {
	_u.mutation.SetFrontUploadID(v)
	return _u
}

// SetNillableFrontUploadID sets the "front_upload_id" field if the given value is not nil.
func (_u *CardPairUpdateOne) SetNillableFrontUploadID(v *uuid.UUID) *CardPairUpdateOne {
	if v != nil {
		_u.SetFrontUploadID(*v)
	}
	return _u
}

// SetBackUploadID sets the "back_upload_id" field.
func (_u *CardPairUpdateOne) SetBackUploadID(v uuid.UUID) *CardPairUpdateOne {
	_u.mutation.SetBackUploadID(v)
	return _u
}

// SetNillableBackUploadID sets the "back_upload_id" field if the given value is not nil.
func (_u *CardPairUpdateOne) SetNillableBackUploadID(v *uuid.UUID) *CardPairUpdateOne {
	if v != nil {
		_u.SetBackUploadID(*v)
	}
	return _u
}

// ClearBackUploadID clears the value of the "back_upload_id" field.
func (_u *CardPairUpdateOne) ClearBackUploadID() *CardPairUpdateOne {
	_u.mutation.ClearBackUploadID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CardPairUpdateOne) SetStatus(v string) *CardPairUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CardPairUpdateOne) SetNillableStatus(v *string) *CardPairUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *CardPairUpdateOne) SetMethod(v string) *CardPairUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *CardPairUpdateOne) SetNillableMethod(v *string) *CardPairUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CardPairUpdateOne) SetConfidence(v float32) *CardPairUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CardPairUpdateOne) SetNillableConfidence(v *float32) *CardPairUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CardPairUpdateOne) AddConfidence(v float32) *CardPairUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *CardPairUpdateOne) SetExtractedFields(v json.RawMessage) *CardPairUpdateOne {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// AppendExtractedFields appends value to the "extracted_fields" field.
func (_u *CardPairUpdateOne) AppendExtractedFields(v json.RawMessage) *CardPairUpdateOne {
	_u.mutation.AppendExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *CardPairUpdateOne) ClearExtractedFields() *CardPairUpdateOne {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetFieldConfidence sets the "field_confidence" field.
func (_u *CardPairUpdateOne) SetFieldConfidence(v json.RawMessage) *CardPairUpdateOne {
	_u.mutation.SetFieldConfidence(v)
	return _u
}

// AppendFieldConfidence appends value to the "field_confidence" field.
func (_u *CardPairUpdateOne) AppendFieldConfidence(v json.RawMessage) *CardPairUpdateOne {
	_u.mutation.AppendFieldConfidence(v)
	return _u
}

// ClearFieldConfidence clears the value of the "field_confidence" field.
func (_u *CardPairUpdateOne) ClearFieldConfidence() *CardPairUpdateOne {
	_u.mutation.ClearFieldConfidence()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CardPairUpdateOne) SetProvider(v string) *CardPairUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CardPairUpdateOne) SetNillableProvider(v *string) *CardPairUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *CardPairUpdateOne) ClearProvider() *CardPairUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetTokenUsage sets the "token_usage" field.
func (_u *CardPairUpdateOne) SetTokenUsage(v json.RawMessage) *CardPairUpdateOne {
	_u.mutation.SetTokenUsage(v)
	return _u
}

// AppendTokenUsage appends value to the "token_usage" field.
func (_u *CardPairUpdateOne) AppendTokenUsage(v json.RawMessage) *CardPairUpdateOne {
	_u.mutation.AppendTokenUsage(v)
	return _u
}

// ClearTokenUsage clears the value of the "token_usage" field.
func (_u *CardPairUpdateOne) ClearTokenUsage() *CardPairUpdateOne {
	_u.mutation.ClearTokenUsage()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *CardPairUpdateOne) SetExtractedAt(v time.Time) *CardPairUpdateOne {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *CardPairUpdateOne) SetNillableExtractedAt(v *time.Time) *CardPairUpdateOne {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// ClearExtractedAt clears the value of the "extracted_at" field.
func (_u *CardPairUpdateOne) ClearExtractedAt() *CardPairUpdateOne {
	_u.mutation.ClearExtractedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CardPairUpdateOne) SetCreatedAt(v time.Time) *CardPairUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CardPairUpdateOne) SetNillableCreatedAt(v *time.Time) *CardPairUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *CardPairUpdateOne) SetBatch(v *Batch) *CardPairUpdateOne {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the CardPairMutation object of the builder.
func (_u *CardPairUpdateOne) Mutation() *CardPairMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *CardPairUpdateOne) ClearBatch() *CardPairUpdateOne {
	_u.mutation.ClearBatch()
	return _u
}

// Where appends a list predicates to the CardPairUpdate builder.
func (_u *CardPairUpdateOne) Where(ps ...predicate.CardPair) *CardPairUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardPairUpdateOne) Select(field string, fields ...string) *CardPairUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CardPair entity.
func (_u *CardPairUpdateOne) Save(ctx context.Context) (*CardPair, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardPairUpdateOne) SaveX(ctx context.Context) *CardPair {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardPairUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardPairUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardPairUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := cardpair.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CardPair.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := cardpair.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "CardPair.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := cardpair.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "CardPair.confidence": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CardPair.batch"`)
	}
	return nil
}

func (_u *CardPairUpdateOne) sqlSave(ctx context.Context) (_node *CardPair, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardpair.Table, cardpair.Columns, sqlgraph.NewFieldSpec(cardpair.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CardPair.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cardpair.FieldID)
		for _, f := range fields {
			if !cardpair.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cardpair.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(cardpair.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FrontUploadID(); ok {
		_spec.SetField(cardpair.FieldFrontUploadID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BackUploadID(); ok {
		_spec.SetField(cardpair.FieldBackUploadID, field.TypeUUID, value)
	}
	if _u.mutation.BackUploadIDCleared() {
		_spec.ClearField(cardpair.FieldBackUploadID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(cardpair.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(cardpair.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(cardpair.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(cardpair.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(cardpair.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cardpair.FieldExtractedFields, value)
		})
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(cardpair.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.FieldConfidence(); ok {
		_spec.SetField(cardpair.FieldFieldConfidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFieldConfidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cardpair.FieldFieldConfidence, value)
		})
	}
	if _u.mutation.FieldConfidenceCleared() {
		_spec.ClearField(cardpair.FieldFieldConfidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(cardpair.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(cardpair.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.TokenUsage(); ok {
		_spec.SetField(cardpair.FieldTokenUsage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTokenUsage(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cardpair.FieldTokenUsage, value)
		})
	}
	if _u.mutation.TokenUsageCleared() {
		_spec.ClearField(cardpair.FieldTokenUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(cardpair.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractedAtCleared() {
		_spec.ClearField(cardpair.FieldExtractedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cardpair.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardpair.BatchTable,
			Columns: []string{cardpair.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardpair.BatchTable,
			Columns: []string{cardpair.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CardPair{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardpair.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
