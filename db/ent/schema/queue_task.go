package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// QueueTask is the durable queue entry. Lease state is the pair
// (locked_by, locked_until); an elapsed locked_until makes the row
// claimable again. Terminal tasks are deleted, not kept.
type QueueTask struct{ ent.Schema }

func (QueueTask) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "queue_tasks"},
	}
}

func (QueueTask) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}).Unique(),
		field.String("lane").NotEmpty(),
		field.Int("priority").Default(0),
		field.JSON("payload", json.RawMessage{}),
		field.Int("attempts").Default(0).NonNegative(),
		field.Int("max_attempts").Default(3).Positive(),
		field.Int64("backoff_ms").Default(30_000).NonNegative(),
		field.Time("available_at").Default(time.Now),
		field.String("locked_by").Optional().Nillable(),
		field.Time("locked_until").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (QueueTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lane", "available_at"),
		index.Fields("job_id").Unique(),
	}
}
