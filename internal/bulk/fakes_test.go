package bulk

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/jobs"
)

// recStore is a single-record jobs.JobStore, just enough to back an
// Execution in handler tests.
type recStore struct {
	total     int
	processed int
	failed    int
	errs      []string
	cancelled bool
}

func (s *recStore) Create(context.Context, *entity.JobRecord) error         { return nil }
func (s *recStore) MarkProcessing(context.Context, uuid.UUID) error         { return nil }
func (s *recStore) SetTotal(_ context.Context, _ uuid.UUID, total int) error {
	s.total = total
	return nil
}
func (s *recStore) Progress(_ context.Context, _ uuid.UUID, processed, failed int, errs []string) error {
	s.processed, s.failed, s.errs = processed, failed, errs
	return nil
}
func (s *recStore) Complete(context.Context, uuid.UUID, int, int, []string, *entity.JobResult) error {
	return nil
}
func (s *recStore) Fail(context.Context, uuid.UUID, int, int, []string) error { return nil }
func (s *recStore) Get(context.Context, uuid.UUID) (*entity.JobRecord, error) { return nil, nil }
func (s *recStore) ListByUser(context.Context, uuid.UUID, int) ([]*entity.JobRecord, error) {
	return nil, nil
}
func (s *recStore) RequestCancel(context.Context, uuid.UUID) error { return nil }
func (s *recStore) CancelRequested(context.Context, uuid.UUID) (bool, error) {
	return s.cancelled, nil
}
func (s *recStore) CountByTypeAndStatus(context.Context, string, constants.JobStatus) (int, error) {
	return 0, nil
}

// testExecution builds an Execution over a recStore with no throttling.
func testExecution(t *testing.T, store *recStore, instID *uuid.UUID) *jobs.Execution {
	t.Helper()
	return jobs.NewExecution(uuid.New(), uuid.New(), instID, store, nil, 0, slog.Default())
}

// memApps is an in-memory ApplicationStore keyed by id and natural key.
type memApps struct {
	byID    map[uuid.UUID]*entity.Application
	updates int
	purged  int
}

func newMemApps() *memApps {
	return &memApps{byID: make(map[uuid.UUID]*entity.Application)}
}

func (m *memApps) add(app *entity.Application) *entity.Application {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	m.byID[app.ID] = app
	return app
}

func (m *memApps) GetByID(_ context.Context, id uuid.UUID) (*entity.Application, error) {
	app, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *app
	return &cp, nil
}

func (m *memApps) FindByNaturalKey(_ context.Context, institutionID uuid.UUID, email string) (*entity.Application, error) {
	for _, app := range m.byID {
		if app.InstitutionID == institutionID && app.Email == email {
			cp := *app
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memApps) Create(_ context.Context, app *entity.Application) error {
	if existing, _ := m.FindByNaturalKey(context.Background(), app.InstitutionID, app.Email); existing != nil {
		return fmt.Errorf("duplicate key (institution_id, email)")
	}
	cp := *app
	m.byID[app.ID] = &cp
	return nil
}

func (m *memApps) Update(_ context.Context, app *entity.Application) error {
	if _, ok := m.byID[app.ID]; !ok {
		return fmt.Errorf("application not found")
	}
	cp := *app
	m.byID[app.ID] = &cp
	m.updates++
	return nil
}

func (m *memApps) Count(ctx context.Context, filter entity.ApplicationFilter) (int, error) {
	apps, err := m.List(ctx, filter)
	return len(apps), err
}

func (m *memApps) List(_ context.Context, filter entity.ApplicationFilter) ([]*entity.Application, error) {
	var out []*entity.Application
	for _, app := range m.byID {
		if filter.InstitutionID != nil && app.InstitutionID != *filter.InstitutionID {
			continue
		}
		if !filter.IncludeDeleted && app.DeletedAt != nil {
			continue
		}
		if filter.From != nil && app.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && app.CreatedAt.After(*filter.To) {
			continue
		}
		cp := *app
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memApps) PurgeRejectedBefore(_ context.Context, cutoff time.Time) (int, error) {
	n := 0
	for id, app := range m.byID {
		if app.Status == constants.ApplicationRejected && app.UpdatedAt.Before(cutoff) {
			delete(m.byID, id)
			n++
		}
	}
	m.purged += n
	return n, nil
}

// memPasses is an in-memory PassStore.
type memPasses struct {
	byID    map[uuid.UUID]*entity.Pass
	created int
}

func newMemPasses() *memPasses {
	return &memPasses{byID: make(map[uuid.UUID]*entity.Pass)}
}

func (m *memPasses) add(p *entity.Pass) *entity.Pass {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.byID[p.ID] = p
	return p
}

func (m *memPasses) GetByID(_ context.Context, id uuid.UUID) (*entity.Pass, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memPasses) ExistsForApplication(_ context.Context, applicationID uuid.UUID) (bool, error) {
	for _, p := range m.byID {
		if p.ApplicationID == applicationID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memPasses) Create(_ context.Context, p *entity.Pass) error {
	cp := *p
	m.byID[p.ID] = &cp
	m.created++
	return nil
}

func (m *memPasses) UpdateStatus(_ context.Context, id uuid.UUID, status constants.PassStatus) error {
	p, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("pass not found")
	}
	p.Status = status
	return nil
}

func (m *memPasses) ListDueForExpiry(_ context.Context, asOf time.Time) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for id, p := range m.byID {
		if p.Status == constants.PassActive && p.ExpiresAt.Before(asOf) {
			out = append(out, id)
		}
	}
	return out, nil
}

func (m *memPasses) DeleteExpiredBefore(_ context.Context, cutoff time.Time) (int, error) {
	n := 0
	for id, p := range m.byID {
		if p.Status == constants.PassExpired && p.ExpiresAt.Before(cutoff) {
			delete(m.byID, id)
			n++
		}
	}
	return n, nil
}

// memArtifacts is an in-memory artifact.Store.
type memArtifacts struct {
	objects map[string][]byte
}

func newMemArtifacts() *memArtifacts {
	return &memArtifacts{objects: make(map[string][]byte)}
}

func (m *memArtifacts) Write(_ context.Context, data []byte, suggestedName string) (string, error) {
	ref := "jobs/" + suggestedName
	m.objects[ref] = data
	return ref, nil
}

func (m *memArtifacts) Read(_ context.Context, ref string) ([]byte, error) {
	data, ok := m.objects[ref]
	if !ok {
		return nil, fmt.Errorf("artifact %q not found", ref)
	}
	return data, nil
}
