// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/slabworks/cardscan/gen/ent/batch"
	"github.com/slabworks/cardscan/gen/ent/cardpair"
)

// CardPair is the model entity for the CardPair schema.
type CardPair struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID uuid.UUID `json:"batch_id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// FrontUploadID holds the value of the "front_upload_id" field.
	FrontUploadID uuid.UUID `json:"front_upload_id,omitempty"`
	// BackUploadID holds the value of the "back_upload_id" field.
	BackUploadID *uuid.UUID `json:"back_upload_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Method holds the value of the "method" field.
	Method string `json:"method,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// ExtractedFields holds the value of the "extracted_fields" field.
	ExtractedFields json.RawMessage `json:"extracted_fields,omitempty"`
	// FieldConfidence holds the value of the "field_confidence" field.
	FieldConfidence json.RawMessage `json:"field_confidence,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider *string `json:"provider,omitempty"`
	// TokenUsage holds the value of the "token_usage" field.
	TokenUsage json.RawMessage `json:"token_usage,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt *time.Time `json:"extracted_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CardPairQuery when eager-loading is set.
	Edges        CardPairEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CardPairEdges holds the relations/edges for other nodes in the graph.
type CardPairEdges struct {
	// Batch holds the value of the batch edge.
	Batch *Batch `json:"batch,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BatchOrErr returns the Batch value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CardPairEdges) BatchOrErr() (*Batch, error) {
	if e.Batch != nil {
		return e.Batch, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: batch.Label}
	}
	return nil, &NotLoadedError{edge: "batch"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CardPair) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cardpair.FieldBackUploadID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case cardpair.FieldExtractedFields, cardpair.FieldFieldConfidence, cardpair.FieldTokenUsage:
			values[i] = new([]byte)
		case cardpair.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case cardpair.FieldStatus, cardpair.FieldMethod, cardpair.FieldProvider:
			values[i] = new(sql.NullString)
		case cardpair.FieldExtractedAt, cardpair.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case cardpair.FieldID, cardpair.FieldBatchID, cardpair.FieldOwnerID, cardpair.FieldFrontUploadID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CardPair fields.
func (_m *CardPair) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cardpair.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case cardpair.FieldBatchID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value != nil {
				_m.BatchID = *value
			}
		case cardpair.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case cardpair.FieldFrontUploadID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field front_upload_id", values[i])
			} else if value != nil {
				_m.FrontUploadID = *value
			}
		case cardpair.FieldBackUploadID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field back_upload_id", values[i])
			} else if value.Valid {
				_m.BackUploadID = new(uuid.UUID)
				*_m.BackUploadID = *value.S.(*uuid.UUID)
			}
		case cardpair.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case cardpair.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = value.String
			}
		case cardpair.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = float32(value.Float64)
			}
		case cardpair.FieldExtractedFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedFields); err != nil {
					return fmt.Errorf("unmarshal field extracted_fields: %w", err)
				}
			}
		case cardpair.FieldFieldConfidence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field field_confidence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FieldConfidence); err != nil {
					return fmt.Errorf("unmarshal field field_confidence: %w", err)
				}
			}
		case cardpair.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = new(string)
				*_m.Provider = value.String
			}
		case cardpair.FieldTokenUsage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field token_usage", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TokenUsage); err != nil {
					return fmt.Errorf("unmarshal field token_usage: %w", err)
				}
			}
		case cardpair.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = new(time.Time)
				*_m.ExtractedAt = value.Time
			}
		case cardpair.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CardPair.
// This includes values selected through modifiers, order, etc.
func (_m *CardPair) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBatch queries the "batch" edge of the CardPair entity.
func (_m *CardPair) QueryBatch() *BatchQuery {
	return NewCardPairClient(_m.config).QueryBatch(_m)
}

// Update returns a builder for updating this CardPair.
// Note that you need to call CardPair.Unwrap() before calling this method if this CardPair
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CardPair) Update() *CardPairUpdateOne {
	return NewCardPairClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CardPair entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CardPair) Unwrap() *CardPair {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CardPair is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CardPair) String() string {
	var builder strings.Builder
	builder.WriteString("CardPair(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("batch_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatchID))
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("front_upload_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FrontUploadID))
	builder.WriteString(", ")
	if v := _m.BackUploadID; v != nil {
		builder.WriteString("back_upload_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("method=")
	builder.WriteString(_m.Method)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("extracted_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedFields))
	builder.WriteString(", ")
	builder.WriteString("field_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldConfidence))
	builder.WriteString(", ")
	if v := _m.Provider; v != nil {
		builder.WriteString("provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("token_usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenUsage))
	builder.WriteString(", ")
	if v := _m.ExtractedAt; v != nil {
		builder.WriteString("extracted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CardPairs is a parsable slice of CardPair.
type CardPairs []*CardPair
