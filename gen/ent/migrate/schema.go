// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdminsColumns holds the columns for the "admins" table.
	AdminsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AdminsTable holds the schema information for the "admins" table.
	AdminsTable = &schema.Table{
		Name:       "admins",
		Columns:    AdminsColumns,
		PrimaryKey: []*schema.Column{AdminsColumns[0]},
	}
	// ElectorsColumns holds the columns for the "electors" table.
	ElectorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "matriculation_number", Type: field.TypeString, Unique: true},
		{Name: "full_name", Type: field.TypeString},
		{Name: "gender", Type: field.TypeString, Size: 1},
		{Name: "department", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "admin_id", Type: field.TypeString},
	}
	// ElectorsTable holds the schema information for the "electors" table.
	ElectorsTable = &schema.Table{
		Name:       "electors",
		Columns:    ElectorsColumns,
		PrimaryKey: []*schema.Column{ElectorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "electors_admins_electors",
				Columns:    []*schema.Column{ElectorsColumns[7]},
				RefColumns: []*schema.Column{AdminsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "elector_admin_id",
				Unique:  false,
				Columns: []*schema.Column{ElectorsColumns[7]},
			},
		},
	}
	// VoterUploadsColumns holds the columns for the "voter_uploads" table.
	VoterUploadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "total_records", Type: field.TypeInt, Nullable: true},
		{Name: "processed_records", Type: field.TypeInt, Default: 0},
		{Name: "failure_code", Type: field.TypeString, Nullable: true},
		{Name: "reason", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "admin_id", Type: field.TypeString},
	}
	// VoterUploadsTable holds the schema information for the "voter_uploads" table.
	VoterUploadsTable = &schema.Table{
		Name:       "voter_uploads",
		Columns:    VoterUploadsColumns,
		PrimaryKey: []*schema.Column{VoterUploadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "voter_uploads_admins_uploads",
				Columns:    []*schema.Column{VoterUploadsColumns[10]},
				RefColumns: []*schema.Column{AdminsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "voterupload_status",
				Unique:  false,
				Columns: []*schema.Column{VoterUploadsColumns[3]},
			},
			{
				Name:    "voterupload_admin_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{VoterUploadsColumns[10], VoterUploadsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdminsTable,
		ElectorsTable,
		VoterUploadsTable,
	}
)

func init() {
	AdminsTable.Annotation = &entsql.Annotation{
		Table: "admins",
	}
	ElectorsTable.ForeignKeys[0].RefTable = AdminsTable
	ElectorsTable.Annotation = &entsql.Annotation{
		Table: "electors",
	}
	VoterUploadsTable.ForeignKeys[0].RefTable = AdminsTable
	VoterUploadsTable.Annotation = &entsql.Annotation{
		Table: "voter_uploads",
	}
}
