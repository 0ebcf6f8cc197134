package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hubdispatch/backend/internal/model"
)

// batchSize bounds every insert/update/delete batch, per spec §4.4 and
// §4.7.
const batchSize = 100

// FlightRepository is the data-access interface for the live flights
// table.
type FlightRepository interface {
	// ListAll reads every live flight in one consistent pass, the "start
	// of run" snapshot the Sync Engine diffs against (spec §4.4, §5).
	ListAll(ctx context.Context) ([]model.Flight, error)

	// ListByTimeRange returns flights whose est_utc falls in [start, end],
	// ordered ascending — the single range query every read endpoint uses
	// (spec §4.6).
	ListByTimeRange(ctx context.Context, start, end time.Time) ([]model.Flight, error)

	// GetByKey fetches one flight by its composite key.
	GetByKey(ctx context.Context, key string) (*model.Flight, error)

	// BatchInsert inserts new flights in chunks of batchSize.
	BatchInsert(ctx context.Context, flights []*model.Flight) error

	// BatchUpdate saves existing flights in chunks of batchSize.
	BatchUpdate(ctx context.Context, flights []*model.Flight) error

	// UpdateFields applies a partial column update to one row by key.
	UpdateFields(ctx context.Context, key string, fields map[string]any) error

	// DeleteByKeys removes rows by key in chunks of batchSize, used by the
	// archive job once rows have been copied out (spec §4.7).
	DeleteByKeys(ctx context.Context, keys []string) error
}

type flightRepo struct {
	db *gorm.DB
}

// NewFlightRepo creates a FlightRepository backed by GORM.
func NewFlightRepo(db *gorm.DB) FlightRepository {
	return &flightRepo{db: db}
}

func (r *flightRepo) ListAll(ctx context.Context) ([]model.Flight, error) {
	var flights []model.Flight
	if err := r.db.WithContext(ctx).Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *flightRepo) ListByTimeRange(ctx context.Context, start, end time.Time) ([]model.Flight, error) {
	var flights []model.Flight
	err := r.db.WithContext(ctx).
		Where("est_utc BETWEEN ? AND ?", start, end).
		Order("est_utc ASC").
		Find(&flights).Error
	if err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *flightRepo) GetByKey(ctx context.Context, key string) (*model.Flight, error) {
	var flight model.Flight
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&flight).Error; err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *flightRepo) BatchInsert(ctx context.Context, flights []*model.Flight) error {
	if len(flights) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(flights, batchSize).Error
}

func (r *flightRepo) BatchUpdate(ctx context.Context, flights []*model.Flight) error {
	for start := 0; start < len(flights); start += batchSize {
		end := start + batchSize
		if end > len(flights) {
			end = len(flights)
		}
		chunk := flights[start:end]
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, f := range chunk {
				if err := tx.Save(f).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *flightRepo) UpdateFields(ctx context.Context, key string, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&model.Flight{}).
		Where("key = ?", key).
		Updates(fields).Error
}

func (r *flightRepo) DeleteByKeys(ctx context.Context, keys []string) error {
	for start := 0; start < len(keys); start += batchSize {
		end := start + batchSize
		if end > len(keys) {
			end = len(keys)
		}
		chunk := keys[start:end]
		if err := r.db.WithContext(ctx).Where("key IN ?", chunk).Delete(&model.Flight{}).Error; err != nil {
			return err
		}
	}
	return nil
}
