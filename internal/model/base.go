package model

import "time"

// BaseModel is the audit-timestamp pair every table in this service embeds.
// The teacher's VersionedModel adds soft-delete and optimistic-lock columns
// on top of this; neither applies here — spec explicitly rules out
// fine-grained row locking and flights are deleted outright by the archive
// job rather than soft-deleted, so only the timestamp pair is kept.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
