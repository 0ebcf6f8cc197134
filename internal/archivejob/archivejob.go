// Package archivejob implements the nightly move of a completed ops day's
// flights from the live table into the archive table (spec §4.7).
package archivejob

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hubdispatch/backend/internal/model"
	"hubdispatch/backend/internal/opswindow"
	"hubdispatch/backend/internal/repository"
)

// Job runs the nightly archive.
type Job struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
	now    func() time.Time
}

// New builds an archive Job.
func New(repo *repository.Repository, loc *time.Location, logger *zap.Logger) *Job {
	return &Job{repo: repo, loc: loc, logger: logger, now: time.Now}
}

// Result reports how many rows the run archived.
type Result struct {
	OpsDate string
	Flights int
}

// Run archives the ops day that just ended — now's ops day minus one
// (spec §4.7). It is idempotent: rerunning for the same ops date leaves
// both tables identical to a single run, because it always deletes any
// existing archive rows for that date before re-inserting.
func (j *Job) Run(ctx context.Context) (Result, error) {
	now := j.now()
	window := opswindow.PreviousOpsDay(now, j.loc)
	opsDate := opswindow.OpsDateString(window.Start, j.loc)

	flights, err := j.repo.Flight.ListByTimeRange(ctx, window.Start, window.End)
	if err != nil {
		return Result{}, fmt.Errorf("archivejob: listing flights: %w", err)
	}

	if len(flights) == 0 {
		j.logger.Info("archive job: nothing to archive", zap.String("opsDate", opsDate))
		return Result{OpsDate: opsDate, Flights: 0}, nil
	}

	if err := j.repo.Archive.DeleteByOpsDate(ctx, opsDate); err != nil {
		return Result{}, fmt.Errorf("archivejob: clearing prior archive rows: %w", err)
	}

	rows := make([]*model.ArchiveRow, 0, len(flights))
	keys := make([]string, 0, len(flights))
	archivedAt := now.UTC()
	for i := range flights {
		data, err := json.Marshal(flights[i])
		if err != nil {
			return Result{}, fmt.Errorf("archivejob: marshaling flight %s: %w", flights[i].Key, err)
		}
		rows = append(rows, &model.ArchiveRow{
			OpsDate:    opsDate,
			ArchivedAt: archivedAt,
			FlightData: string(data),
		})
		keys = append(keys, flights[i].Key)
	}

	if err := j.repo.Archive.BatchInsert(ctx, rows); err != nil {
		return Result{}, fmt.Errorf("archivejob: inserting archive rows: %w", err)
	}
	if err := j.repo.Flight.DeleteByKeys(ctx, keys); err != nil {
		return Result{}, fmt.Errorf("archivejob: deleting live rows: %w", err)
	}

	j.logger.Info("archive job: archived ops day",
		zap.String("opsDate", opsDate), zap.Int("flights", len(rows)))
	return Result{OpsDate: opsDate, Flights: len(rows)}, nil
}
