package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/davidolu/elector-registry/constants"
)

type Admin struct{ ent.Schema }

func (Admin) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "admins"},
	}
}

func (Admin) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(constants.NewAdminID).
			Immutable().
			NotEmpty(),
		field.String("email").NotEmpty().Unique(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Admin) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE admin -> MANY uploads / electors
		edge.To("uploads", VoterUpload.Type),
		edge.To("electors", Elector.Type),
	}
}
