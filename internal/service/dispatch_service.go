package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hubdispatch/backend/internal/apperr"
	"hubdispatch/backend/internal/model"
	"hubdispatch/backend/internal/opswindow"
	"hubdispatch/backend/internal/patchoverlay"
	"hubdispatch/backend/internal/repository"
)

// DispatchUpdate is the partial-update body for PATCH /dispatch/update
// (spec §6, §4.9).
type DispatchUpdate struct {
	Wchr    *int
	Wchc    *int
	Comment *string
}

// DispatchService backs the Dispatch board's reads and writes.
type DispatchService interface {
	Rows(ctx context.Context, now time.Time, params opswindow.QueryParams) ([]model.Flight, error)
	Update(ctx context.Context, key string, upd DispatchUpdate) error
	Ack(ctx context.Context, key string) error
}

type dispatchService struct {
	repo    *repository.Repository
	overlay *patchoverlay.Overlay
	loc     *time.Location
}

// NewDispatchService builds a DispatchService.
func NewDispatchService(repo *repository.Repository, overlay *patchoverlay.Overlay, loc *time.Location) DispatchService {
	return &dispatchService{repo: repo, overlay: overlay, loc: loc}
}

func (s *dispatchService) Rows(ctx context.Context, now time.Time, params opswindow.QueryParams) ([]model.Flight, error) {
	window, err := opswindow.QueryWindow(now, s.loc, params)
	if err != nil {
		return nil, apperr.BadRequest(err.Error())
	}

	flights, err := s.repo.Flight.ListByTimeRange(ctx, window.Start, window.End)
	if err != nil {
		return nil, apperr.Internal(err.Error())
	}

	rows := make([]model.Flight, len(flights))
	for i, f := range flights {
		if patch, ok := s.overlay.Get(f.Key); ok {
			f = applyPatch(f, patch)
		}
		rows[i] = blankAckedAlert(f)
	}
	return rows, nil
}

func (s *dispatchService) Update(ctx context.Context, key string, upd DispatchUpdate) error {
	existing, err := s.repo.Flight.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("flight not found")
		}
		return apperr.Internal(err.Error())
	}

	fields := map[string]any{}
	patch := map[string]any{}

	if upd.Wchr != nil && *upd.Wchr != existing.Wchr {
		fields["prev_wchr"] = existing.Wchr
		fields["wchr"] = *upd.Wchr
		patch["prevWchr"] = existing.Wchr
		patch["wchr"] = *upd.Wchr
	}
	if upd.Wchc != nil && *upd.Wchc != existing.Wchc {
		fields["prev_wchc"] = existing.Wchc
		fields["wchc"] = *upd.Wchc
		patch["prevWchc"] = existing.Wchc
		patch["wchc"] = *upd.Wchc
	}
	if upd.Comment != nil {
		fields["comment"] = *upd.Comment
		patch["comment"] = *upd.Comment
	}

	if len(fields) == 0 {
		return nil
	}

	if err := s.repo.Flight.UpdateFields(ctx, key, fields); err != nil {
		return apperr.Internal(err.Error())
	}
	s.overlay.Put(key, patch)
	return nil
}

func (s *dispatchService) Ack(ctx context.Context, key string) error {
	if _, err := s.repo.Flight.GetByKey(ctx, key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("flight not found")
		}
		return apperr.Internal(err.Error())
	}

	if err := s.repo.Flight.UpdateFields(ctx, key, map[string]any{"dispatch_ack": true}); err != nil {
		return apperr.Internal(err.Error())
	}
	s.overlay.Put(key, map[string]any{"dispatchAck": true})
	return nil
}
