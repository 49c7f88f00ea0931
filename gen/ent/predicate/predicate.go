// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Application is the predicate function for application builders.
type Application func(*sql.Selector)

// JobRecord is the predicate function for jobrecord builders.
type JobRecord func(*sql.Selector)

// Pass is the predicate function for pass builders.
type Pass func(*sql.Selector)

// QueueTask is the predicate function for queuetask builders.
type QueueTask func(*sql.Selector)
