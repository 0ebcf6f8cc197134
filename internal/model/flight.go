package model

import "time"

// FlightType distinguishes arrivals from departures.
type FlightType string

const (
	FlightArrival   FlightType = "ARR"
	FlightDeparture FlightType = "DEP"
)

// Zone is the canonical terminal-zone label a flight is classified into.
type Zone string

const (
	ZonePierA      Zone = "Pier A"
	ZoneTB         Zone = "TB"
	ZoneGates      Zone = "Gates"
	ZoneT1         Zone = "T1"
	ZoneUnassigned Zone = "Unassigned"
)

// Flight is the central entity: one row per (ops-date, type, flight-no,
// scheduled-HH:MM) tuple, per spec §3. The key is immutable once inserted;
// the Sync Engine only ever inserts new rows or updates FIDS/derived/ACK
// columns on existing ones, never the manual fields below.
type Flight struct {
	Key string `gorm:"type:varchar(64);primaryKey" json:"key"`

	// ── FIDS-sourced ──
	Type       FlightType `gorm:"type:varchar(3);not null;index" json:"type"`
	FlightNo   string     `gorm:"type:varchar(16);not null"      json:"flightNo"`
	SchedUTC   time.Time  `gorm:"not null;index"                 json:"schedUTC"`
	EstUTC     time.Time  `gorm:"not null;index"                 json:"estUTC"`
	OriginDest string     `gorm:"type:varchar(8)"                json:"originDest"`
	Gate       string     `gorm:"type:varchar(16)"               json:"gate"`
	Terminal   string     `gorm:"type:varchar(8)"                json:"terminal"`

	// ── Derived ──
	ZoneCurrent Zone   `gorm:"type:varchar(16);not null;index" json:"zoneCurrent"`
	ZoneInitial Zone   `gorm:"type:varchar(16);not null"       json:"zoneInitial"`
	ZonePrev    string `gorm:"type:varchar(16)"                json:"zonePrev"` // empty when no carry-over is owed

	// ── Change tracking: gate ──
	GateChanged     bool       `gorm:"not null;default:false" json:"gateChanged"`
	GateChgFromGate string     `gorm:"type:varchar(16)"       json:"gateChgFromGate,omitempty"`
	GateChgToGate   string     `gorm:"type:varchar(16)"       json:"gateChgToGate,omitempty"`
	GateChgFromZone string     `gorm:"type:varchar(16)"       json:"gateChgFromZone,omitempty"`
	GateChgToZone   string     `gorm:"type:varchar(16)"       json:"gateChgToZone,omitempty"`
	GateChgAt       *time.Time `json:"gateChgAt,omitempty"`

	// ── Change tracking: zone ──
	ZoneChanged bool       `gorm:"not null;default:false" json:"zoneChanged"`
	ZoneChgFrom string     `gorm:"type:varchar(16)"       json:"zoneChgFrom,omitempty"`
	ZoneChgTo   string     `gorm:"type:varchar(16)"       json:"zoneChgTo,omitempty"`
	ZoneChgAt   *time.Time `json:"zoneChgAt,omitempty"`

	// ── Change tracking: time ──
	TimeChanged  bool       `gorm:"not null;default:false" json:"timeChanged"`
	TimePrevEst  *time.Time `json:"timePrevEst,omitempty"`
	TimeDeltaMin *int       `json:"timeDeltaMin,omitempty"`
	TimeChgAt    *time.Time `json:"timeChgAt,omitempty"`

	// ── Alert text: pure function of the three change triples above ──
	AlertText string `gorm:"type:varchar(500)" json:"alertText"`

	// ── Manual fields — never written by the Sync Engine ──
	Wchr           int        `gorm:"not null;default:0" json:"wchr"`
	Wchc           int        `gorm:"not null;default:0" json:"wchc"`
	PrevWchr       *int       `json:"prevWchr,omitempty"`
	PrevWchc       *int       `json:"prevWchc,omitempty"`
	Comment        string     `gorm:"type:varchar(1000)" json:"comment"`
	Assignment     string     `gorm:"type:varchar(200)"  json:"assignment"`
	PaxAssisted    int        `gorm:"not null;default:0" json:"paxAssisted"`
	Watchlist      string     `gorm:"type:varchar(32)"   json:"watchlist"` // opaque; see spec open question
	AssignEditedBy string     `gorm:"type:varchar(64)"   json:"assignEditedBy,omitempty"`
	AssignEditedAt *time.Time `json:"assignEditedAt,omitempty"`

	// ── Per-board ACK flags ──
	DispatchAck   bool `gorm:"not null;default:false" json:"dispatchAck"`
	PieraAck      bool `gorm:"not null;default:false" json:"pieraAck"`
	TbAck         bool `gorm:"not null;default:false" json:"tbAck"`
	T1Ack         bool `gorm:"not null;default:false" json:"t1Ack"`
	UnassignedAck bool `gorm:"not null;default:false" json:"unassignedAck"`
	GatesAck      bool `gorm:"not null;default:false" json:"gatesAck"`

	BaseModel
}

// TableName pins the GORM table name.
func (Flight) TableName() string { return "flights" }

// Board names the six ACK columns. Dispatch is the global board; the other
// five mirror the five zones.
type Board string

const (
	BoardDispatch   Board = "DISPATCH"
	BoardPierA      Board = "PIERA"
	BoardTB         Board = "TB"
	BoardT1         Board = "T1"
	BoardUnassigned Board = "UNASSIGNED"
	BoardGates      Board = "GATES"
)

// BoardForZone maps a zone to its ACK board, per spec §4.5.
func BoardForZone(z Zone) Board {
	switch z {
	case ZonePierA:
		return BoardPierA
	case ZoneTB:
		return BoardTB
	case ZoneGates:
		return BoardGates
	case ZoneT1:
		return BoardT1
	default:
		return BoardUnassigned
	}
}

// AckForBoard reads the ACK flag for the given board.
func (f *Flight) AckForBoard(b Board) bool {
	switch b {
	case BoardDispatch:
		return f.DispatchAck
	case BoardPierA:
		return f.PieraAck
	case BoardTB:
		return f.TbAck
	case BoardT1:
		return f.T1Ack
	case BoardGates:
		return f.GatesAck
	default:
		return f.UnassignedAck
	}
}

// SetAckForBoard writes the ACK flag for the given board.
func (f *Flight) SetAckForBoard(b Board, ack bool) {
	switch b {
	case BoardDispatch:
		f.DispatchAck = ack
	case BoardPierA:
		f.PieraAck = ack
	case BoardTB:
		f.TbAck = ack
	case BoardT1:
		f.T1Ack = ack
	case BoardGates:
		f.GatesAck = ack
	default:
		f.UnassignedAck = ack
	}
}

// ResetAllAcks clears every board's ACK flag, per the Sync Engine's
// change-triggered reset rule (spec §4.4).
func (f *Flight) ResetAllAcks() {
	f.DispatchAck = false
	f.PieraAck = false
	f.TbAck = false
	f.T1Ack = false
	f.UnassignedAck = false
	f.GatesAck = false
}
