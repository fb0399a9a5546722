package schema

import (
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

type Upload struct{ ent.Schema }

func (Upload) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "uploads"},
	}
}

func (Upload) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define composite indexes
		field.UUID("batch_id", uuid.UUID{}),
		field.UUID("owner_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		// position within the original upload order; parity drives the pairing fallback
		field.Int("sequence_index").NonNegative(),
		field.String("storage_key").NotEmpty(),
		field.String("status").
			Default(string(constants.UploadStatusUnassigned)).
			Validate(utils.EnumValidator(
				string(constants.UploadStatusUnassigned),
				string(constants.UploadStatusPaired),
				string(constants.UploadStatusOrphaned),
			)),
		field.String("orphan_reason").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Upload) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("batch", Batch.Type).
			Ref("uploads").
			Field("batch_id").
			Unique().
			Required(),
	}
}

func (Upload) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id", "sequence_index"),
		index.Fields("owner_id"),
	}
}
