// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIKeyColumns holds the columns for the "api_key" table.
	APIKeyColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// APIKeyTable holds the schema information for the "api_key" table.
	APIKeyTable = &schema.Table{
		Name:       "api_key",
		Columns:    APIKeyColumns,
		PrimaryKey: []*schema.Column{APIKeyColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apikey_key",
				Unique:  false,
				Columns: []*schema.Column{APIKeyColumns[1]},
			},
		},
	}
	// FetchJobColumns holds the columns for the "fetch_job" table.
	FetchJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "url", Type: field.TypeString},
		{Name: "platform", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "result_path", Type: field.TypeString, Nullable: true},
		{Name: "result_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "video_done", Type: field.TypeBool, Default: false},
		{Name: "audio_done", Type: field.TypeBool, Default: false},
		{Name: "merge_done", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// FetchJobTable holds the schema information for the "fetch_job" table.
	FetchJobTable = &schema.Table{
		Name:       "fetch_job",
		Columns:    FetchJobColumns,
		PrimaryKey: []*schema.Column{FetchJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fetchjob_status_finished_at",
				Unique:  false,
				Columns: []*schema.Column{FetchJobColumns[3], FetchJobColumns[13]},
			},
			{
				Name:    "fetchjob_platform",
				Unique:  false,
				Columns: []*schema.Column{FetchJobColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIKeyTable,
		FetchJobTable,
	}
)

func init() {
	APIKeyTable.Annotation = &entsql.Annotation{
		Table: "api_key",
	}
	FetchJobTable.Annotation = &entsql.Annotation{
		Table: "fetch_job",
	}
}
