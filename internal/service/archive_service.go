package service

import (
	"context"
	"encoding/json"

	"hubdispatch/backend/internal/apperr"
	"hubdispatch/backend/internal/model"
	"hubdispatch/backend/internal/repository"
)

// ArchiveService backs the Mgmt-only archive reads (spec §4.9).
type ArchiveService interface {
	Dates(ctx context.Context) ([]repository.DateCount, error)
	Rows(ctx context.Context, opsDate string) ([]model.Flight, error)
}

type archiveService struct {
	repo *repository.Repository
}

// NewArchiveService builds an ArchiveService.
func NewArchiveService(repo *repository.Repository) ArchiveService {
	return &archiveService{repo: repo}
}

func (s *archiveService) Dates(ctx context.Context) ([]repository.DateCount, error) {
	dates, err := s.repo.Archive.ListDates(ctx)
	if err != nil {
		return nil, apperr.Internal(err.Error())
	}
	return dates, nil
}

func (s *archiveService) Rows(ctx context.Context, opsDate string) ([]model.Flight, error) {
	archived, err := s.repo.Archive.ListByOpsDate(ctx, opsDate)
	if err != nil {
		return nil, apperr.Internal(err.Error())
	}

	// Archive rows carry a JSON snapshot of the Flight row as it existed at
	// archive time (spec §3) — consumers expect the same field shape as
	// live flights, so deserialize back into model.Flight here rather than
	// exposing the raw envelope.
	rows := make([]model.Flight, 0, len(archived))
	for _, a := range archived {
		var f model.Flight
		if err := json.Unmarshal([]byte(a.FlightData), &f); err != nil {
			return nil, apperr.Internal("corrupt archive row: " + err.Error())
		}
		rows = append(rows, f)
	}
	return rows, nil
}
