package repository

import (
	"context"

	"gorm.io/gorm"

	"hubdispatch/backend/internal/model"
)

// DateCount is one row of the archive-dates summary (spec §6).
type DateCount struct {
	OpsDate string `json:"date"`
	Flights int64  `json:"flights"`
}

// ArchiveRepository is the data-access interface for archived flight
// snapshots.
type ArchiveRepository interface {
	// DeleteByOpsDate removes any existing archive rows for a date, making
	// the archive job's insert idempotent on rerun (spec §4.7).
	DeleteByOpsDate(ctx context.Context, opsDate string) error

	// BatchInsert inserts archive rows in chunks of batchSize.
	BatchInsert(ctx context.Context, rows []*model.ArchiveRow) error

	// ListDates returns every distinct ops_date with its row count,
	// ordered most recent first.
	ListDates(ctx context.Context) ([]DateCount, error)

	// ListByOpsDate returns every archived row for one ops date.
	ListByOpsDate(ctx context.Context, opsDate string) ([]model.ArchiveRow, error)
}

type archiveRepo struct {
	db *gorm.DB
}

// NewArchiveRepo creates an ArchiveRepository backed by GORM.
func NewArchiveRepo(db *gorm.DB) ArchiveRepository {
	return &archiveRepo{db: db}
}

func (r *archiveRepo) DeleteByOpsDate(ctx context.Context, opsDate string) error {
	return r.db.WithContext(ctx).Where("ops_date = ?", opsDate).Delete(&model.ArchiveRow{}).Error
}

func (r *archiveRepo) BatchInsert(ctx context.Context, rows []*model.ArchiveRow) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, batchSize).Error
}

func (r *archiveRepo) ListDates(ctx context.Context) ([]DateCount, error) {
	var dates []DateCount
	err := r.db.WithContext(ctx).
		Model(&model.ArchiveRow{}).
		Select("ops_date, count(*) as flights").
		Group("ops_date").
		Order("ops_date DESC").
		Scan(&dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *archiveRepo) ListByOpsDate(ctx context.Context, opsDate string) ([]model.ArchiveRow, error) {
	var rows []model.ArchiveRow
	err := r.db.WithContext(ctx).Where("ops_date = ?", opsDate).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
