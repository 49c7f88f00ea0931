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

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/db/ent/schema/utils"
)

type JobRecord struct{ ent.Schema }

func (JobRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_records"},
	}
}

func (JobRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("job_type").NotEmpty(),
		field.String("status").
			Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.JobStatusPending),
				string(constants.JobStatusProcessing),
				string(constants.JobStatusCompleted),
				string(constants.JobStatusFailed),
			)),
		field.Int("total_records").Default(0).NonNegative(),
		field.Int("processed_records").Default(0).NonNegative(),
		field.Int("failed_records").Default(0).NonNegative(),
		// ownership is immutable after creation
		field.UUID("user_id", uuid.UUID{}).Immutable(),
		field.UUID("institution_id", uuid.UUID{}).Optional().Nillable(),
		field.JSON("payload", json.RawMessage{}).Optional(),
		field.JSON("errors", []string{}).Optional(),
		field.JSON("result", json.RawMessage{}).Optional(),
		field.Bool("cancel_requested").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (JobRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("job_type", "status"),
	}
}
