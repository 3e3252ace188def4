package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/davidolu/elector-registry/constants"
)

type Elector struct{ ent.Schema }

func (Elector) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "electors"},
	}
}

func (Elector) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(constants.NewElectorID).
			Immutable().
			NotEmpty(),
		// explicit FK
		field.String("admin_id").NotEmpty(),
		field.String("email").NotEmpty().Unique(),
		field.String("matriculation_number").NotEmpty().Unique(),
		field.String("full_name").NotEmpty(),
		field.String("gender").NotEmpty().MaxLen(1),
		field.String("department").NotEmpty(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Elector) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("admin", Admin.Type).
			Ref("electors").
			Field("admin_id").
			Unique().
			Required(),
	}
}

func (Elector) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("admin_id"),
	}
}
