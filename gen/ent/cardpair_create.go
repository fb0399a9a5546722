// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/slabworks/cardscan/gen/ent/batch"
	"github.com/slabworks/cardscan/gen/ent/cardpair"
)

// CardPairCreate is the builder for creating a CardPair entity.
type CardPairCreate struct {
	config
	mutation *CardPairMutation
	hooks    []Hook
}

// SetBatchID sets the "batch_id" field.
func (_c *CardPairCreate) SetBatchID(v uuid.UUID) *CardPairCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *CardPairCreate) SetOwnerID(v uuid.UUID) *CardPairCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetFrontUploadID sets the "front_upload_id" field.
func (_c *CardPairCreate) SetFrontUploadID(v uuid.UUID) *CardPairCreate {
	_c.mutation.SetFrontUploadID(v)
	return _c
}

// SetBackUploadID sets the "back_upload_id" field.
func (_c *CardPairCreate) SetBackUploadID(v uuid.UUID) *CardPairCreate {
	_c.mutation.SetBackUploadID(v)
	return _c
}

// SetNillableBackUploadID sets the "back_upload_id" field if the given value is not nil.
func (_c *CardPairCreate) SetNillableBackUploadID(v *uuid.UUID) *CardPairCreate {
	if v != nil {
		_c.SetBackUploadID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CardPairCreate) SetStatus(v string) *CardPairCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CardPairCreate) SetNillableStatus(v *string) *CardPairCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMethod sets the "method" field.
func (_c *CardPairCreate) SetMethod(v string) *CardPairCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *CardPairCreate) SetConfidence(v float32) *CardPairCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetExtractedFields sets the "extracted_fields" field.
func (_c *CardPairCreate) SetExtractedFields(v json.RawMessage) *CardPairCreate {
	_c.mutation.SetExtractedFields(v)
	return _c
}

// SetFieldConfidence sets the "field_confidence" field.
func (_c *CardPairCreate) SetFieldConfidence(v json.RawMessage) *CardPairCreate {
	_c.mutation.SetFieldConfidence(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *CardPairCreate) SetProvider(v string) *CardPairCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *CardPairCreate) SetNillableProvider(v *string) *CardPairCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetTokenUsage sets the "token_usage" field.
func (_c *CardPairCreate) SetTokenUsage(v json.RawMessage) *CardPairCreate {
	_c.mutation.SetTokenUsage(v)
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *CardPairCreate) SetExtractedAt(v time.Time) *CardPairCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *CardPairCreate) SetNillableExtractedAt(v *time.Time) *CardPairCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CardPairCreate) SetCreatedAt(v time.Time) *CardPairCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CardPairCreate) SetNillableCreatedAt(v *time.Time) *CardPairCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CardPairCreate) SetID(v uuid.UUID) *CardPairCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CardPairCreate) SetNillableID(v *uuid.UUID) *CardPairCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_c *CardPairCreate) SetBatch(v *Batch) *CardPairCreate {
	return _c.SetBatchID(v.ID)
}

// Mutation returns the CardPairMutation object of the builder.
func (_c *CardPairCreate) Mutation() *CardPairMutation {
	return _c.mutation
}

// Save creates the CardPair in the database.
func (_c *CardPairCreate) Save(ctx context.Context) (*CardPair, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardPairCreate) SaveX(ctx context.Context) *CardPair {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardPairCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardPairCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardPairCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := cardpair.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cardpair.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := cardpair.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardPairCreate) check() error {
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "CardPair.batch_id"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "CardPair.owner_id"`)}
	}
	if _, ok := _c.mutation.FrontUploadID(); !ok {
		return &ValidationError{Name: "front_upload_id", err: errors.New(`ent: missing required field "CardPair.front_upload_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CardPair.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := cardpair.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CardPair.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "CardPair.method"`)}
	}
	if v, ok := _c.mutation.Method(); ok {
		if err := cardpair.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "CardPair.method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "CardPair.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := cardpair.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "CardPair.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CardPair.created_at"`)}
	}
	if len(_c.mutation.BatchIDs()) == 0 {
		return &ValidationError{Name: "batch", err: errors.New(`ent: missing required edge "CardPair.batch"`)}
	}
	return nil
}

func (_c *CardPairCreate) sqlSave(ctx context.Context) (*CardPair, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CardPairCreate) createSpec() (*CardPair, *sqlgraph.CreateSpec) {
	var (
		_node = &CardPair{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cardpair.Table, sqlgraph.NewFieldSpec(cardpair.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(cardpair.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.FrontUploadID(); ok {
		_spec.SetField(cardpair.FieldFrontUploadID, field.TypeUUID, value)
		_node.FrontUploadID = value
	}
	if value, ok := _c.mutation.BackUploadID(); ok {
		_spec.SetField(cardpair.FieldBackUploadID, field.TypeUUID, value)
		_node.BackUploadID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(cardpair.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(cardpair.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(cardpair.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ExtractedFields(); ok {
		_spec.SetField(cardpair.FieldExtractedFields, field.TypeJSON, value)
		_node.ExtractedFields = value
	}
	if value, ok := _c.mutation.FieldConfidence(); ok {
		_spec.SetField(cardpair.FieldFieldConfidence, field.TypeJSON, value)
		_node.FieldConfidence = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(cardpair.FieldProvider, field.TypeString, value)
		_node.Provider = &value
	}
	if value, ok := _c.mutation.TokenUsage(); ok {
		_spec.SetField(cardpair.FieldTokenUsage, field.TypeJSON, value)
		_node.TokenUsage = value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(cardpair.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cardpair.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BatchIDs(); len(nodes) > 0 {
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
		_node.BatchID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CardPairCreateBulk is the builder for creating many CardPair entities in bulk.
type CardPairCreateBulk struct {
	config
	err      error
	builders []*CardPairCreate
}

// Save creates the CardPair entities in the database.
func (_c *CardPairCreateBulk) Save(ctx context.Context) ([]*CardPair, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CardPair, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardPairMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CardPairCreateBulk) SaveX(ctx context.Context) []*CardPair {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardPairCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardPairCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
