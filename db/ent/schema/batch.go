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

type Batch struct{ ent.Schema }

func (Batch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batches"},
	}
}

func (Batch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// owner lives in an external auth system; we only keep the scoping key
		field.UUID("owner_id", uuid.UUID{}),
		field.String("status").
			Default(string(constants.BatchStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.BatchStatusPending),
				string(constants.BatchStatusNeedsPairing),
				string(constants.BatchStatusPaired),
			)),
		field.Int("total_files").NonNegative().Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Batch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("uploads", Upload.Type),
		edge.To("pairs", CardPair.Type),
		edge.To("jobs", Job.Type),
	}
}

func (Batch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
	}
}
