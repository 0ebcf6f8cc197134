package repository

import (
	"context"

	"gorm.io/gorm"

	"hubdispatch/backend/internal/model"
)

// ZoneOverrideRepository is the data-access interface for gate→zone
// overrides.
type ZoneOverrideRepository interface {
	ListAll(ctx context.Context) ([]model.ZoneOverride, error)
}

type zoneOverrideRepo struct {
	db *gorm.DB
}

// NewZoneOverrideRepo creates a ZoneOverrideRepository backed by GORM.
func NewZoneOverrideRepo(db *gorm.DB) ZoneOverrideRepository {
	return &zoneOverrideRepo{db: db}
}

func (r *zoneOverrideRepo) ListAll(ctx context.Context) ([]model.ZoneOverride, error) {
	var overrides []model.ZoneOverride
	if err := r.db.WithContext(ctx).Find(&overrides).Error; err != nil {
		return nil, err
	}
	return overrides, nil
}

// USAirportRepository is the data-access interface for the US-airport
// region lookup table.
type USAirportRepository interface {
	ListAll(ctx context.Context) ([]model.USAirportCode, error)
}

type usAirportRepo struct {
	db *gorm.DB
}

// NewUSAirportRepo creates a USAirportRepository backed by GORM.
func NewUSAirportRepo(db *gorm.DB) USAirportRepository {
	return &usAirportRepo{db: db}
}

func (r *usAirportRepo) ListAll(ctx context.Context) ([]model.USAirportCode, error) {
	var codes []model.USAirportCode
	if err := r.db.WithContext(ctx).Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}
