package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/db/ent/schema/utils"
)

type Application struct{ ent.Schema }

func (Application) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "applications"},
	}
}

func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("institution_id", uuid.UUID{}),
		field.String("full_name").NotEmpty(),
		field.String("email").NotEmpty(),
		field.String("student_number").Optional(),
		field.String("status").
			Default(string(constants.ApplicationPending)).
			Validate(utils.EnumValidator(
				string(constants.ApplicationPending),
				string(constants.ApplicationApproved),
				string(constants.ApplicationRejected),
			)),
		field.Time("deleted_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE application -> at most ONE pass
		edge.To("pass", Pass.Type).Unique(),
	}
}

func (Application) Indexes() []ent.Index {
	return []ent.Index{
		// natural key for import deduplication
		index.Fields("institution_id", "email").Unique(),
		index.Fields("institution_id", "created_at"),
		index.Fields("status"),
	}
}
