// Code generated by ent, DO NOT EDIT.

package admin

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the admin type in the database.
	Label = "admin"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUploads holds the string denoting the uploads edge name in mutations.
	EdgeUploads = "uploads"
	// EdgeElectors holds the string denoting the electors edge name in mutations.
	EdgeElectors = "electors"
	// Table holds the table name of the admin in the database.
	Table = "admins"
	// UploadsTable is the table that holds the uploads relation/edge.
	UploadsTable = "voter_uploads"
	// UploadsInverseTable is the table name for the VoterUpload entity.
	// It exists in this package in order to avoid circular dependency with the "voterupload" package.
	UploadsInverseTable = "voter_uploads"
	// UploadsColumn is the table column denoting the uploads relation/edge.
	UploadsColumn = "admin_id"
	// ElectorsTable is the table that holds the electors relation/edge.
	ElectorsTable = "electors"
	// ElectorsInverseTable is the table name for the Elector entity.
	// It exists in this package in order to avoid circular dependency with the "elector" package.
	ElectorsInverseTable = "electors"
	// ElectorsColumn is the table column denoting the electors relation/edge.
	ElectorsColumn = "admin_id"
)

// Columns holds all SQL columns for admin fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Admin queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUploadsCount orders the results by uploads count.
func ByUploadsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUploadsStep(), opts...)
	}
}

// ByUploads orders the results by uploads terms.
func ByUploads(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUploadsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByElectorsCount orders the results by electors count.
func ByElectorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newElectorsStep(), opts...)
	}
}

// ByElectors orders the results by electors terms.
func ByElectors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newElectorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUploadsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UploadsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UploadsTable, UploadsColumn),
	)
}
func newElectorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ElectorsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ElectorsTable, ElectorsColumn),
	)
}
