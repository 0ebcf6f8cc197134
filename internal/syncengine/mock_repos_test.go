package syncengine

import (
	"context"
	"time"

	"hubdispatch/backend/internal/model"
	"hubdispatch/backend/internal/repository"
)

// fakeFlightRepo is an in-memory stand-in for repository.FlightRepository,
// mirroring the teacher's hand-rolled map-backed fakes rather than a SQL
// mock.
type fakeFlightRepo struct {
	rows map[string]*model.Flight
}

func newFakeFlightRepo(seed ...*model.Flight) *fakeFlightRepo {
	r := &fakeFlightRepo{rows: make(map[string]*model.Flight)}
	for _, f := range seed {
		r.rows[f.Key] = f
	}
	return r
}

func (r *fakeFlightRepo) ListAll(ctx context.Context) ([]model.Flight, error) {
	out := make([]model.Flight, 0, len(r.rows))
	for _, f := range r.rows {
		out = append(out, *f)
	}
	return out, nil
}

func (r *fakeFlightRepo) ListByTimeRange(ctx context.Context, start, end time.Time) ([]model.Flight, error) {
	var out []model.Flight
	for _, f := range r.rows {
		if !f.EstUTC.Before(start) && !f.EstUTC.After(end) {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFlightRepo) GetByKey(ctx context.Context, key string) (*model.Flight, error) {
	f, ok := r.rows[key]
	if !ok {
		return nil, errNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFlightRepo) BatchInsert(ctx context.Context, flights []*model.Flight) error {
	for _, f := range flights {
		cp := *f
		r.rows[f.Key] = &cp
	}
	return nil
}

func (r *fakeFlightRepo) BatchUpdate(ctx context.Context, flights []*model.Flight) error {
	for _, f := range flights {
		cp := *f
		r.rows[f.Key] = &cp
	}
	return nil
}

func (r *fakeFlightRepo) UpdateFields(ctx context.Context, key string, fields map[string]any) error {
	f, ok := r.rows[key]
	if !ok {
		return errNotFound
	}
	_ = fields
	_ = f
	return nil
}

func (r *fakeFlightRepo) DeleteByKeys(ctx context.Context, keys []string) error {
	for _, k := range keys {
		delete(r.rows, k)
	}
	return nil
}

type fakeZoneOverrideRepo struct {
	rows []model.ZoneOverride
}

func (r *fakeZoneOverrideRepo) ListAll(ctx context.Context) ([]model.ZoneOverride, error) {
	return r.rows, nil
}

type fakeUSAirportRepo struct {
	codes []model.USAirportCode
}

func (r *fakeUSAirportRepo) ListAll(ctx context.Context) ([]model.USAirportCode, error) {
	return r.codes, nil
}

type stubError string

func (e stubError) Error() string { return string(e) }

const errNotFound = stubError("not found")

// newTestRepo builds a Repository whose Flight/ZoneOverride/USAirport
// fields are the fakes above, leaving User/Archive nil since the Sync
// Engine never touches them.
func newTestRepo(flights *fakeFlightRepo, overrides *fakeZoneOverrideRepo, usCodes *fakeUSAirportRepo) *repository.Repository {
	return &repository.Repository{
		Flight:       flights,
		ZoneOverride: overrides,
		USAirport:    usCodes,
	}
}
