package model

// ZoneOverride maps a normalized gate string to a target zone. The target
// may be a literal zone name, or one of the two special tokens the Zone
// Classifier resolves specially (see internal/zone): "SwingDoor" and
// "Unassigned".
type ZoneOverride struct {
	GateNormalized string `gorm:"type:varchar(32);primaryKey" json:"gate"`
	TargetZone     string `gorm:"type:varchar(32);not null"   json:"targetZone"`

	BaseModel
}

// TableName pins the GORM table name.
func (ZoneOverride) TableName() string { return "zone_overrides" }

// USAirportCode is one IATA code considered a US airport for region lookup.
type USAirportCode struct {
	Code string `gorm:"type:varchar(3);primaryKey" json:"code"`
}

// TableName pins the GORM table name.
func (USAirportCode) TableName() string { return "us_airport_codes" }
