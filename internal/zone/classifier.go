// Package zone implements the pure gate/terminal/region → zone
// classification described in spec §4.2. Nothing here touches the
// database or the clock — it is a deterministic function of its inputs,
// which is what makes it safe to call from both the Sync Engine and the
// API read path without any shared state.
package zone

import "strings"

// FlightType mirrors model.FlightType without importing the model package,
// keeping this package dependency-free (pure function, per spec §4.2).
type FlightType string

const (
	Arrival   FlightType = "ARR"
	Departure FlightType = "DEP"
)

// Region is the coarse geography bucket a flight's origin/destination
// falls into.
type Region string

const (
	RegionDOM  Region = "DOM"
	RegionUS   Region = "US"
	RegionIntl Region = "INTL"
	RegionNone Region = ""
)

const (
	PierA      = "Pier A"
	TB         = "TB"
	Gates      = "Gates"
	T1         = "T1"
	Unassigned = "Unassigned"
)

var pierAGates = map[string]bool{
	"B2A": true, "B2C": true, "B3": true, "B4": true, "B5": true, "B20": true, "B22": true,
}

// isTBGate reports whether a normalized gate is in the A6..A15 named set.
func isTBGate(gate string) bool {
	if !strings.HasPrefix(gate, "A") {
		return false
	}
	n, ok := parseInt(gate[1:])
	return ok && n >= 6 && n <= 15
}

// NormalizeGate uppercases, strips a leading "GATE " prefix, and removes
// whitespace and hyphens — spec §4.2.
func NormalizeGate(raw string) string {
	g := strings.ToUpper(strings.TrimSpace(raw))
	g = strings.TrimPrefix(g, "GATE ")
	g = strings.ReplaceAll(g, " ", "")
	g = strings.ReplaceAll(g, "-", "")
	return g
}

// collapse uppercases and strips whitespace, used to compare override
// target values against the special tokens SWINGDOOR / UNASSIGNED.
func collapse(s string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), " ", "")
}

// Classify maps (type, raw gate, raw terminal, region, overrides) to a
// canonical zone label, applying the precedence rules of spec §4.2 in
// order: override, no-gate, named gate set, numeric gate range, terminal
// fallback.
func Classify(ftype FlightType, rawGate, rawTerminal string, region Region, overrides map[string]string) string {
	gate := NormalizeGate(rawGate)

	if gate != "" {
		if target, ok := overrides[gate]; ok {
			switch collapse(target) {
			case "SWINGDOOR":
				return ResolveSwingDoor(ftype, region)
			case "UNASSIGNED":
				return Unassigned
			default:
				return target
			}
		}
	}

	if gate == "" {
		if isTerminal1(rawTerminal) {
			return T1
		}
		return Unassigned
	}

	if pierAGates[gate] {
		return PierA
	}
	if isTBGate(gate) {
		return TB
	}

	if n, ok := gateNumber(gate); ok {
		switch {
		case n >= 23 && n <= 41:
			return Gates
		case n >= 15 && n <= 19:
			return ResolveSwingDoor(ftype, region)
		}
	}

	if isTerminal1(rawTerminal) {
		return T1
	}
	return Unassigned
}

// ResolveSwingDoor implements the (type, region) → zone table for gates
// that straddle Pier A and TB.
func ResolveSwingDoor(ftype FlightType, region Region) string {
	switch region {
	case RegionUS:
		return TB
	case RegionIntl:
		if ftype == Arrival {
			return TB
		}
		return PierA
	case RegionDOM:
		return PierA
	default:
		return TB
	}
}

// RegionForCode classifies an IATA origin/destination code into a region.
func RegionForCode(code string, usAirports map[string]bool) Region {
	if code == "" {
		return RegionNone
	}
	if usAirports[strings.ToUpper(code)] {
		return RegionUS
	}
	if strings.HasPrefix(strings.ToUpper(code), "Y") {
		return RegionDOM
	}
	return RegionIntl
}

func isTerminal1(terminal string) bool {
	t := strings.ToUpper(strings.TrimSpace(terminal))
	return t == "1" || t == "T1"
}

// gateNumber extracts the leading numeric portion of a normalized gate
// string, e.g. "B23A" -> 23, "A8" -> 8.
func gateNumber(gate string) (int, bool) {
	start := -1
	end := -1
	for i, r := range gate {
		if r >= '0' && r <= '9' {
			if start == -1 {
				start = i
			}
			end = i + 1
		} else if start != -1 {
			break
		}
	}
	if start == -1 {
		return 0, false
	}
	return parseInt(gate[start:end])
}

func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
