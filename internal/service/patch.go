package service

import (
	"time"

	"hubdispatch/backend/internal/model"
)

// applyPatch merges a write-through patch (spec §4.6) onto a copy of a
// flight row. Keys match the row's own JSON field names so a patch built
// for a write is directly usable to project a read.
func applyPatch(f model.Flight, patch map[string]any) model.Flight {
	for k, v := range patch {
		switch k {
		case "wchr":
			if n, ok := v.(int); ok {
				f.Wchr = n
			}
		case "wchc":
			if n, ok := v.(int); ok {
				f.Wchc = n
			}
		case "prevWchr":
			if n, ok := v.(int); ok {
				f.PrevWchr = &n
			}
		case "prevWchc":
			if n, ok := v.(int); ok {
				f.PrevWchc = &n
			}
		case "comment":
			if s, ok := v.(string); ok {
				f.Comment = s
			}
		case "assignment":
			if s, ok := v.(string); ok {
				f.Assignment = s
			}
		case "paxAssisted":
			if n, ok := v.(int); ok {
				f.PaxAssisted = n
			}
		case "watchlist":
			if s, ok := v.(string); ok {
				f.Watchlist = s
			}
		case "assignEditedBy":
			if s, ok := v.(string); ok {
				f.AssignEditedBy = s
			}
		case "assignEditedAt":
			if t, ok := v.(time.Time); ok {
				f.AssignEditedAt = &t
			}
		case "dispatchAck":
			if b, ok := v.(bool); ok {
				f.DispatchAck = b
			}
		case "pieraAck":
			if b, ok := v.(bool); ok {
				f.PieraAck = b
			}
		case "tbAck":
			if b, ok := v.(bool); ok {
				f.TbAck = b
			}
		case "t1Ack":
			if b, ok := v.(bool); ok {
				f.T1Ack = b
			}
		case "unassignedAck":
			if b, ok := v.(bool); ok {
				f.UnassignedAck = b
			}
		case "gatesAck":
			if b, ok := v.(bool); ok {
				f.GatesAck = b
			}
		case "zonePrev":
			if s, ok := v.(string); ok {
				f.ZonePrev = s
			}
		}
	}
	return f
}

// blankAckedAlert implements the Dispatch-rows projection rule (spec
// §4.9): once dispatch_ack is set, the alert text and the three change
// flags (with their delta) are hidden from the response because the
// dispatcher has already seen this change. The stored row is untouched —
// this only affects the copy being returned.
func blankAckedAlert(f model.Flight) model.Flight {
	if !f.DispatchAck {
		return f
	}
	f.AlertText = ""
	f.GateChanged = false
	f.ZoneChanged = false
	f.TimeChanged = false
	f.TimeDeltaMin = nil
	return f
}
