// Package bulk implements the five chunked background operations: import,
// export, pass generation, status update, and cleanup. Each handler walks
// its input in bounded chunks, records per-item failures without aborting
// the batch, and reports progress once per chunk.
package bulk

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/entity"
)

// ApplicationStore is the handler-facing slice of the applications
// repository.
type ApplicationStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)
	FindByNaturalKey(ctx context.Context, institutionID uuid.UUID, email string) (*entity.Application, error)
	Create(ctx context.Context, app *entity.Application) error
	Update(ctx context.Context, app *entity.Application) error
	Count(ctx context.Context, filter entity.ApplicationFilter) (int, error)
	List(ctx context.Context, filter entity.ApplicationFilter) ([]*entity.Application, error)
	PurgeRejectedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// PassStore is the handler-facing slice of the passes repository.
type PassStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Pass, error)
	ExistsForApplication(ctx context.Context, applicationID uuid.UUID) (bool, error)
	Create(ctx context.Context, pass *entity.Pass) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.PassStatus) error
	ListDueForExpiry(ctx context.Context, asOf time.Time) ([]uuid.UUID, error)
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int, error)
}
