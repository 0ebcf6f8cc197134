package model

import "time"

// ArchiveRow is one archived flight snapshot. FlightData embeds the full
// Flight row as it existed at archive time, serialized to JSON — consumers
// of archive rows expect the same field shape as live flights (spec §6).
type ArchiveRow struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OpsDate    string    `gorm:"type:varchar(10);not null;index" json:"opsDate"` // YYYY-MM-DD local
	ArchivedAt time.Time `gorm:"not null"                        json:"archivedAt"`
	FlightData string    `gorm:"type:text;not null"              json:"flightData"` // JSON-serialized Flight
}

// TableName pins the GORM table name.
func (ArchiveRow) TableName() string { return "archive" }
