package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/gen/ent"
	"github.com/campuspass/campuspass/gen/ent/pass"
	"github.com/campuspass/campuspass/internal/bulk"
	"github.com/campuspass/campuspass/internal/entity"
)

type passRepo struct {
	ent *ent.Client
	log *slog.Logger
}

// NewPassRepository returns the Ent-backed pass store.
func NewPassRepository(entc *ent.Client, log *slog.Logger) bulk.PassStore {
	return &passRepo{ent: entc, log: log}
}

func (r *passRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Pass, error) {
	row, err := r.ent.Pass.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toPass(row), nil
}

func (r *passRepo) ExistsForApplication(ctx context.Context, applicationID uuid.UUID) (bool, error) {
	return r.ent.Pass.
		Query().
		Where(pass.ApplicationIDEQ(applicationID)).
		Exist(ctx)
}

func (r *passRepo) Create(ctx context.Context, p *entity.Pass) error {
	b := r.ent.Pass.
		Create().
		SetApplicationID(p.ApplicationID).
		SetSerial(p.Serial).
		SetStatus(string(p.Status)).
		SetIssuedAt(p.IssuedAt).
		SetExpiresAt(p.ExpiresAt)
	if p.ID != uuid.Nil {
		b.SetID(p.ID)
	}
	row, err := b.Save(ctx)
	if err != nil {
		r.log.Error("pass create failed", "application_id", p.ApplicationID, "err", err)
		return err
	}
	p.ID = row.ID
	p.CreatedAt = row.CreatedAt
	p.UpdatedAt = row.UpdatedAt
	r.log.Info("pass issued", "pass_id", p.ID, "application_id", p.ApplicationID, "serial", p.Serial)
	return nil
}

func (r *passRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.PassStatus) error {
	_, err := r.ent.Pass.
		UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.log.Error("pass status update failed", "pass_id", id, "status", status, "err", err)
		return err
	}
	r.log.Info("pass status updated", "pass_id", id, "status", status)
	return nil
}

func (r *passRepo) ListDueForExpiry(ctx context.Context, asOf time.Time) ([]uuid.UUID, error) {
	return r.ent.Pass.
		Query().
		Where(
			pass.StatusEQ(string(constants.PassActive)),
			pass.ExpiresAtLT(asOf),
		).
		IDs(ctx)
}

func (r *passRepo) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := r.ent.Pass.
		Delete().
		Where(
			pass.StatusEQ(string(constants.PassExpired)),
			pass.ExpiresAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		r.log.Error("pass cleanup failed", "cutoff", cutoff, "err", err)
		return 0, err
	}
	if n > 0 {
		r.log.Info("expired passes deleted", "count", n, "cutoff", cutoff)
	}
	return n, nil
}

func toPass(row *ent.Pass) *entity.Pass {
	return &entity.Pass{
		ID:            row.ID,
		ApplicationID: row.ApplicationID,
		Serial:        row.Serial,
		Status:        constants.PassStatus(row.Status),
		IssuedAt:      row.IssuedAt,
		ExpiresAt:     row.ExpiresAt,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
