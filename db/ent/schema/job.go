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

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("batch_id", uuid.UUID{}),
		field.UUID("owner_id", uuid.UUID{}),
		field.String("type").NotEmpty().
			Validate(utils.EnumValidator(constants.JobTypes...)),
		field.String("status").
			Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(
				string(constants.JobStatusQueued),
				string(constants.JobStatusProcessing),
				string(constants.JobStatusCompleted),
				string(constants.JobStatusFailed),
				string(constants.JobStatusCancelled),
			)),
		field.JSON("payload", json.RawMessage{}).Optional(),
		field.JSON("result", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("started_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("batch", Batch.Type).
			Ref("jobs").
			Field("batch_id").
			Unique().
			Required(),
		edge.To("events", JobEvent.Type),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		// claim scans: oldest queued first
		index.Fields("status", "created_at"),
		index.Fields("batch_id", "type", "status"),
		// at most one live job per (batch, type); concurrent enqueues race to
		// this index and the loser resolves to the winner's row
		index.Fields("batch_id", "type").
			Unique().
			Annotations(entsql.IndexWhere("status IN ('QUEUED', 'PROCESSING')")),
	}
}
