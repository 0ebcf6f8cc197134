package syncengine

import (
	"fmt"
	"strings"

	"hubdispatch/backend/internal/model"
)

// BuildAlertText rebuilds alert_text as a pure function of the current
// change-flag triples (spec §4.4). Re-running it on an unchanged row
// always produces the same string (spec §8, "alert-text purity").
func BuildAlertText(f *model.Flight) string {
	var parts []string

	if f.GateChanged && (f.GateChgFromGate != "" || f.GateChgToGate != "") {
		parts = append(parts, fmt.Sprintf("Gate: %s -> %s", f.GateChgFromGate, f.GateChgToGate))
	}
	if f.ZoneChanged && (f.ZoneChgFrom != "" || f.ZoneChgTo != "") {
		parts = append(parts, fmt.Sprintf("Zone: %s -> %s", f.ZoneChgFrom, f.ZoneChgTo))
	}
	if f.TimeChanged && f.TimeDeltaMin != nil {
		parts = append(parts, fmt.Sprintf("TimeDelta: %d min", *f.TimeDeltaMin))
	}

	return strings.Join(parts, " | ")
}
