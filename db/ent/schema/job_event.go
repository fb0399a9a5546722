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

// JobEvent rows are append-only; nothing in the application updates or deletes them.
type JobEvent struct{ ent.Schema }

func (JobEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_events"},
	}
}

func (JobEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}).Immutable(),
		field.String("kind").NotEmpty().Immutable().
			Validate(utils.EnumValidator(
				string(constants.EventStarted),
				string(constants.EventPairCompleted),
				string(constants.EventPairFailed),
				string(constants.EventCompleted),
				string(constants.EventFailed),
				string(constants.EventCancelled),
				string(constants.EventTimeout),
			)),
		field.String("detail").Optional().Immutable(),
		// strictly ordered per job; assigned by the dispatcher, never reused
		field.Int("seq").NonNegative().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (JobEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("events").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (JobEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "seq").Unique(),
	}
}
