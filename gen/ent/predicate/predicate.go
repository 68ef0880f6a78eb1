// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIKey is the predicate function for apikey builders.
type APIKey func(*sql.Selector)

// FetchJob is the predicate function for fetchjob builders.
type FetchJob func(*sql.Selector)
