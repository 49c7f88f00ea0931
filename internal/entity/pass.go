package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
)

// Pass is the artifact issued for an approved application. At most one pass
// exists per application; generation re-checks that before creating.
type Pass struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	Serial        string
	Status        constants.PassStatus
	IssuedAt      time.Time
	ExpiresAt     time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
