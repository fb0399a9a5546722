// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Batch is the predicate function for batch builders.
type Batch func(*sql.Selector)

// CardPair is the predicate function for cardpair builders.
type CardPair func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobEvent is the predicate function for jobevent builders.
type JobEvent func(*sql.Selector)

// Upload is the predicate function for upload builders.
type Upload func(*sql.Selector)
