package service

import (
	"context"
	"time"

	"hubdispatch/backend/internal/model"
	"hubdispatch/backend/internal/repository"
)

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
	return r.BatchInsert(ctx, flights)
}

func (r *fakeFlightRepo) UpdateFields(ctx context.Context, key string, fields map[string]any) error {
	f, ok := r.rows[key]
	if !ok {
		return errNotFound
	}
	for k, v := range fields {
		switch k {
		case "wchr":
			f.Wchr = v.(int)
		case "wchc":
			f.Wchc = v.(int)
		case "prev_wchr":
			n := v.(int)
			f.PrevWchr = &n
		case "prev_wchc":
			n := v.(int)
			f.PrevWchc = &n
		case "comment":
			f.Comment = v.(string)
		case "assignment":
			f.Assignment = v.(string)
		case "assign_edited_by":
			f.AssignEditedBy = v.(string)
		case "assign_edited_at":
			t := v.(time.Time)
			f.AssignEditedAt = &t
		case "pax_assisted":
			f.PaxAssisted = v.(int)
		case "watchlist":
			f.Watchlist = v.(string)
		case "dispatch_ack":
			f.DispatchAck = v.(bool)
		case "piera_ack":
			f.PieraAck = v.(bool)
		case "tb_ack":
			f.TbAck = v.(bool)
		case "t1_ack":
			f.T1Ack = v.(bool)
		case "gates_ack":
			f.GatesAck = v.(bool)
		case "unassigned_ack":
			f.UnassignedAck = v.(bool)
		case "zone_prev":
			f.ZonePrev = v.(string)
		}
	}
	return nil
}

func (r *fakeFlightRepo) DeleteByKeys(ctx context.Context, keys []string) error {
	for _, k := range keys {
		delete(r.rows, k)
	}
	return nil
}

type stubError string

func (e stubError) Error() string { return string(e) }

const errNotFound = stubError("not found")

func newTestRepo(flights *fakeFlightRepo) *repository.Repository {
	return &repository.Repository{Flight: flights}
}
