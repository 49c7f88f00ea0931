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

type Pass struct{ ent.Schema }

func (Pass) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "passes"},
	}
}

func (Pass) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("application_id", uuid.UUID{}).Unique(),
		field.String("serial").NotEmpty().Unique(),
		field.String("status").
			Default(string(constants.PassActive)).
			Validate(utils.EnumValidator(
				string(constants.PassActive),
				string(constants.PassExpired),
				string(constants.PassRevoked),
			)),
		field.Time("issued_at").Default(time.Now),
		field.Time("expires_at"),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Pass) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("application", Application.Type).
			Ref("pass").
			Field("application_id").
			Unique().
			Required(),
	}
}

func (Pass) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "expires_at"),
	}
}
