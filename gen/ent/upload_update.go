// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/slabworks/cardscan/gen/ent/batch"
	"github.com/slabworks/cardscan/gen/ent/predicate"
	"github.com/slabworks/cardscan/gen/ent/upload"
)

// UploadUpdate is the builder for updating Upload entities.
type UploadUpdate struct {
	config
	hooks    []Hook
	mutation *UploadMutation
}

// Where appends a list predicates to the UploadUpdate builder.
func (_u *UploadUpdate) Where(ps ...predicate.Upload) *UploadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *UploadUpdate) SetBatchID(v uuid.UUID) *UploadUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableBatchID(v *uuid.UUID) *UploadUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *UploadUpdate) SetOwnerID(v uuid.UUID) *UploadUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableOwnerID(v *uuid.UUID) *UploadUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *UploadUpdate) SetFilename(v string) *UploadUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableFilename(v *string) *UploadUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSequenceIndex sets the "sequence_index" field.
func (_u *UploadUpdate) SetSequenceIndex(v int) *UploadUpdate {
	_u.mutation.ResetSequenceIndex()
	_u.mutation.SetSequenceIndex(v)
	return _u
}

// SetNillableSequenceIndex sets the "sequence_index" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableSequenceIndex(v *int) *UploadUpdate {
	if v != nil {
		_u.SetSequenceIndex(*v)
	}
	return _u
}

// AddSequenceIndex adds value to the "sequence_index" field.
func (_u *UploadUpdate) AddSequenceIndex(v int) *UploadUpdate {
	_u.mutation.AddSequenceIndex(v)
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *UploadUpdate) SetStorageKey(v string) *UploadUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableStorageKey(v *string) *UploadUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UploadUpdate) SetStatus(v string) *UploadUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableStatus(v *string) *UploadUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOrphanReason sets the "orphan_reason" field.
func (_u *UploadUpdate) SetOrphanReason(v string) *UploadUpdate {
	_u.mutation.SetOrphanReason(v)
	return _u
}

// SetNillableOrphanReason sets the "orphan_reason" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableOrphanReason(v *string) *UploadUpdate {
	if v != nil {
		_u.SetOrphanReason(*v)
	}
	return _u
}

// ClearOrphanReason clears the value of the "orphan_reason" field.
func (_u *UploadUpdate) ClearOrphanReason() *UploadUpdate {
	_u.mutation.ClearOrphanReason()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UploadUpdate) SetCreatedAt(v time.Time) *UploadUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableCreatedAt(v *time.Time) *UploadUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *UploadUpdate) SetBatch(v *Batch) *UploadUpdate {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the UploadMutation object of the builder.
func (_u *UploadUpdate) Mutation() *UploadMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *UploadUpdate) ClearBatch() *UploadUpdate {
	_u.mutation.ClearBatch()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UploadUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UploadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := upload.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Upload.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SequenceIndex(); ok {
		if err := upload.SequenceIndexValidator(v); err != nil {
			return &ValidationError{Name: "sequence_index", err: fmt.Errorf(`ent: validator failed for field "Upload.sequence_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := upload.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "Upload.storage_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := upload.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Upload.status": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Upload.batch"`)
	}
	return nil
}

func (_u *UploadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upload.Table, upload.Columns, sqlgraph.NewFieldSpec(upload.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(upload.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(upload.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SequenceIndex(); ok {
		_spec.SetField(upload.FieldSequenceIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceIndex(); ok {
		_spec.AddField(upload.FieldSequenceIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(upload.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(upload.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrphanReason(); ok {
		_spec.SetField(upload.FieldOrphanReason, field.TypeString, value)
	}
	if _u.mutation.OrphanReasonCleared() {
		_spec.ClearField(upload.FieldOrphanReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(upload.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   upload.BatchTable,
			Columns: []string{upload.BatchColumn},
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
			Table:   upload.BatchTable,
			Columns: []string{upload.BatchColumn},
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
			err = &NotFoundError{upload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UploadUpdateOne is the builder for updating a single Upload entity.
type UploadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadMutation
}

// SetBatchID sets the "batch_id" field.
func (_u *UploadUpdateOne) SetBatchID(v uuid.UUID) *UploadUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableBatchID(v *uuid.UUID) *UploadUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *UploadUpdateOne) SetOwnerID(v uuid.UUID) *UploadUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableOwnerID(v *uuid.UUID) *UploadUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *UploadUpdateOne) SetFilename(v string) *UploadUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableFilename(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSequenceIndex sets the "sequence_index" field.
func (_u *UploadUpdateOne) SetSequenceIndex(v int) *UploadUpdateOne {
	_u.mutation.ResetSequenceIndex()
	_u.mutation.SetSequenceIndex(v)
	return _u
}

// SetNillableSequenceIndex sets the "sequence_index" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableSequenceIndex(v *int) *UploadUpdateOne {
	if v != nil {
		_u.SetSequenceIndex(*v)
	}
	return _u
}

// AddSequenceIndex adds value to the "sequence_index" field.
func (_u *UploadUpdateOne) AddSequenceIndex(v int) *UploadUpdateOne {
	_u.mutation.AddSequenceIndex(v)
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *UploadUpdateOne) SetStorageKey(v string) *UploadUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableStorageKey(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UploadUpdateOne) SetStatus(v string) *UploadUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableStatus(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOrphanReason sets the "orphan_reason" field.
func (_u *UploadUpdateOne) SetOrphanReason(v string) *UploadUpdateOne {
	_u.mutation.SetOrphanReason(v)
	return _u
}

// SetNillableOrphanReason sets the "orphan_reason" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableOrphanReason(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetOrphanReason(*v)
	}
	return _u
}

// ClearOrphanReason clears the value of the "orphan_reason" field.
func (_u *UploadUpdateOne) ClearOrphanReason() *UploadUpdateOne {
	_u.mutation.ClearOrphanReason()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UploadUpdateOne) SetCreatedAt(v time.Time) *UploadUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableCreatedAt(v *time.Time) *UploadUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *UploadUpdateOne) SetBatch(v *Batch) *UploadUpdateOne {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the UploadMutation object of the builder.
func (_u *UploadUpdateOne) Mutation() *UploadMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *UploadUpdateOne) ClearBatch() *UploadUpdateOne {
	_u.mutation.ClearBatch()
	return _u
}

// Where appends a list predicates to the UploadUpdate builder.
func (_u *UploadUpdateOne) Where(ps ...predicate.Upload) *UploadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UploadUpdateOne) Select(field string, fields ...string) *UploadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Upload entity.
func (_u *UploadUpdateOne) Save(ctx context.Context) (*Upload, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadUpdateOne) SaveX(ctx context.Context) *Upload {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UploadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := upload.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Upload.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SequenceIndex(); ok {
		if err := upload.SequenceIndexValidator(v); err != nil {
			return &ValidationError{Name: "sequence_index", err: fmt.Errorf(`ent: validator failed for field "Upload.sequence_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := upload.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "Upload.storage_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := upload.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Upload.status": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Upload.batch"`)
	}
	return nil
}

func (_u *UploadUpdateOne) sqlSave(ctx context.Context) (_node *Upload, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upload.Table, upload.Columns, sqlgraph.NewFieldSpec(upload.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Upload.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, upload.FieldID)
		for _, f := range fields {
			if !upload.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != upload.FieldID {
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
		_spec.SetField(upload.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(upload.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SequenceIndex(); ok {
		_spec.SetField(upload.FieldSequenceIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceIndex(); ok {
		_spec.AddField(upload.FieldSequenceIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(upload.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(upload.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrphanReason(); ok {
		_spec.SetField(upload.FieldOrphanReason, field.TypeString, value)
	}
	if _u.mutation.OrphanReasonCleared() {
		_spec.ClearField(upload.FieldOrphanReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(upload.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   upload.BatchTable,
			Columns: []string{upload.BatchColumn},
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
			Table:   upload.BatchTable,
			Columns: []string{upload.BatchColumn},
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
	_node = &Upload{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{upload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
