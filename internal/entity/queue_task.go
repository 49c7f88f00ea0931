package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// QueueTask is one durable queue entry. A task references its job record by
// JobID; its payload is the JSON-encoded task envelope. Lease state lives in
// LockedBy/LockedUntil; an elapsed lease makes the task claimable again
// (queue-level redelivery), bounded by MaxAttempts.
type QueueTask struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	Lane        string
	Priority    int
	Payload     json.RawMessage
	Attempts    int
	MaxAttempts int
	Backoff     time.Duration
	AvailableAt time.Time
	LockedBy    *string
	LockedUntil *time.Time
	CreatedAt   time.Time
}
