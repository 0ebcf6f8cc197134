package repository

import "gorm.io/gorm"

// Repository aggregates every table's data-access interface behind one
// struct, following the teacher's aggregation pattern.
type Repository struct {
	Flight       FlightRepository
	User         UserRepository
	ZoneOverride ZoneOverrideRepository
	USAirport    USAirportRepository
	Archive      ArchiveRepository
}

// NewRepository wires concrete GORM-backed repositories.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Flight:       NewFlightRepo(db),
		User:         NewUserRepo(db),
		ZoneOverride: NewZoneOverrideRepo(db),
		USAirport:    NewUSAirportRepo(db),
		Archive:      NewArchiveRepo(db),
	}
}
