package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/davidolu/elector-registry/constants"
	"github.com/davidolu/elector-registry/db/ent/schema/utils"
)

type VoterUpload struct{ ent.Schema }

func (VoterUpload) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "voter_uploads"},
	}
}

func (VoterUpload) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(constants.NewUploadID).
			Immutable().
			NotEmpty(),
		// explicit FK
		field.String("admin_id").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.String("status").
			Default(string(constants.UploadStatusPending)).
			Validate(utils.EnumValidator(constants.UploadStatuses...)),
		field.Int("total_records").Optional().Nillable(),
		field.Int("processed_records").Default(0).NonNegative(),
		field.String("failure_code").Optional().Nillable(),
		// only populated when status is failed
		field.String("reason").Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (VoterUpload) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("admin", Admin.Type).
			Ref("uploads").
			Field("admin_id").
			Unique().
			Required(),
	}
}

func (VoterUpload) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("admin_id", "created_at"),
	}
}
