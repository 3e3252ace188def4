// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Admin is the predicate function for admin builders.
type Admin func(*sql.Selector)

// Elector is the predicate function for elector builders.
type Elector func(*sql.Selector)

// VoterUpload is the predicate function for voterupload builders.
type VoterUpload func(*sql.Selector)
