package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// FetchJob archives terminal pipeline jobs so history survives restarts and
// feeds exports. Live jobs exist only in the in-memory registry.
type FetchJob struct{ ent.Schema }

func (FetchJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "fetch_job"},
	}
}

func (FetchJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Immutable(),
		field.String("url").NotEmpty(),
		field.String("platform").NotEmpty(),
		field.String("status").NotEmpty(),
		field.String("title").Optional().Nillable(),
		field.String("error_kind").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.String("result_path").Optional().Nillable(),
		field.Int64("result_bytes").Default(0),
		field.Bool("video_done").Default(false),
		field.Bool("audio_done").Default(false),
		field.Bool("merge_done").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (FetchJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "finished_at"),
		index.Fields("platform"),
	}
}
