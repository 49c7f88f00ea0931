package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
)

// Application is a student's request for a pass. The natural key is
// (institution_id, email); imports deduplicate on it.
type Application struct {
	ID            uuid.UUID
	InstitutionID uuid.UUID
	FullName      string
	Email         string
	StudentNumber string
	Status        constants.ApplicationStatus
	DeletedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ApplicationFilter narrows application queries for export and cleanup.
// Nil bounds mean unbounded; soft-deleted rows are excluded unless
// IncludeDeleted is set.
type ApplicationFilter struct {
	InstitutionID  *uuid.UUID
	From           *time.Time
	To             *time.Time
	IncludeDeleted bool
}
