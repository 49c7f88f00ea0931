package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/gen/ent"
	"github.com/campuspass/campuspass/gen/ent/application"
	"github.com/campuspass/campuspass/gen/ent/predicate"
	"github.com/campuspass/campuspass/internal/bulk"
	"github.com/campuspass/campuspass/internal/entity"
)

type applicationRepo struct {
	ent *ent.Client
	log *slog.Logger
}

// NewApplicationRepository returns the Ent-backed application store.
func NewApplicationRepository(entc *ent.Client, log *slog.Logger) bulk.ApplicationStore {
	return &applicationRepo{ent: entc, log: log}
}

func (r *applicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	row, err := r.ent.Application.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toApplication(row), nil
}

func (r *applicationRepo) FindByNaturalKey(ctx context.Context, institutionID uuid.UUID, email string) (*entity.Application, error) {
	row, err := r.ent.Application.
		Query().
		Where(
			application.InstitutionIDEQ(institutionID),
			application.EmailEQ(email),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toApplication(row), nil
}

func (r *applicationRepo) Create(ctx context.Context, app *entity.Application) error {
	b := r.ent.Application.
		Create().
		SetInstitutionID(app.InstitutionID).
		SetFullName(app.FullName).
		SetEmail(app.Email).
		SetStatus(string(app.Status))
	if app.ID != uuid.Nil {
		b.SetID(app.ID)
	}
	if app.StudentNumber != "" {
		b.SetStudentNumber(app.StudentNumber)
	}
	row, err := b.Save(ctx)
	if err != nil {
		r.log.Error("application create failed", "institution_id", app.InstitutionID, "email", app.Email, "err", err)
		return err
	}
	app.ID = row.ID
	app.CreatedAt = row.CreatedAt
	app.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *applicationRepo) Update(ctx context.Context, app *entity.Application) error {
	_, err := r.ent.Application.
		UpdateOneID(app.ID).
		SetFullName(app.FullName).
		SetStudentNumber(app.StudentNumber).
		SetStatus(string(app.Status)).
		Save(ctx)
	if err != nil {
		r.log.Error("application update failed", "application_id", app.ID, "err", err)
	}
	return err
}

func (r *applicationRepo) Count(ctx context.Context, filter entity.ApplicationFilter) (int, error) {
	return r.ent.Application.
		Query().
		Where(filterPredicates(filter)...).
		Count(ctx)
}

func (r *applicationRepo) List(ctx context.Context, filter entity.ApplicationFilter) ([]*entity.Application, error) {
	rows, err := r.ent.Application.
		Query().
		Where(filterPredicates(filter)...).
		Order(ent.Asc(application.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Application, 0, len(rows))
	for _, row := range rows {
		out = append(out, toApplication(row))
	}
	return out, nil
}

func (r *applicationRepo) PurgeRejectedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := r.ent.Application.
		Delete().
		Where(
			application.StatusEQ(string(constants.ApplicationRejected)),
			application.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		r.log.Error("application purge failed", "cutoff", cutoff, "err", err)
		return 0, err
	}
	if n > 0 {
		r.log.Info("applications purged", "count", n, "cutoff", cutoff)
	}
	return n, nil
}

func filterPredicates(filter entity.ApplicationFilter) []predicate.Application {
	var ps []predicate.Application
	if filter.InstitutionID != nil {
		ps = append(ps, application.InstitutionIDEQ(*filter.InstitutionID))
	}
	if filter.From != nil {
		ps = append(ps, application.CreatedAtGTE(*filter.From))
	}
	if filter.To != nil {
		ps = append(ps, application.CreatedAtLTE(*filter.To))
	}
	if !filter.IncludeDeleted {
		ps = append(ps, application.DeletedAtIsNil())
	}
	return ps
}

func toApplication(row *ent.Application) *entity.Application {
	return &entity.Application{
		ID:            row.ID,
		InstitutionID: row.InstitutionID,
		FullName:      row.FullName,
		Email:         row.Email,
		StudentNumber: row.StudentNumber,
		Status:        constants.ApplicationStatus(row.Status),
		DeletedAt:     row.DeletedAt,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
