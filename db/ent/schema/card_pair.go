package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/db/ent/schema/utils"

	"github.com/google/uuid"
)

type CardPair struct{ ent.Schema }

func (CardPair) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "card_pairs"},
	}
}

func (CardPair) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("batch_id", uuid.UUID{}),
		field.UUID("owner_id", uuid.UUID{}),
		field.UUID("front_upload_id", uuid.UUID{}),
		// a card may be single-sided
		field.UUID("back_upload_id", uuid.UUID{}).Optional().Nillable(),
		field.String("status").
			Default(string(constants.PairStatusPaired)).
			Validate(utils.EnumValidator(
				string(constants.PairStatusPaired),
				string(constants.PairStatusVoided),
			)),
		field.String("method").
			Validate(utils.EnumValidator(
				string(constants.PairMethodAuto),
				string(constants.PairMethodManual),
			)),
		field.Float32("confidence").Min(0).Max(1),
		// extraction output, attached once an OCR job completes for this pair
		field.JSON("extracted_fields", json.RawMessage{}).Optional(),
		field.JSON("field_confidence", json.RawMessage{}).Optional(),
		field.String("provider").Optional().Nillable(),
		field.JSON("token_usage", json.RawMessage{}).Optional(),
		field.Time("extracted_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (CardPair) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("batch", Batch.Type).
			Ref("pairs").
			Field("batch_id").
			Unique().
			Required(),
	}
}

func (CardPair) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id", "status"),
		index.Fields("front_upload_id"),
		index.Fields("back_upload_id"),
	}
}
