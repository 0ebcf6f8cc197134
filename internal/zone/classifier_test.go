package zone

import "testing"

func TestNormalizeGate(t *testing.T) {
	cases := map[string]string{
		"gate b2a":  "B2A",
		"B-22":      "B22",
		" a8 ":      "A8",
		"GATE 25":   "25",
		"":          "",
	}
	for in, want := range cases {
		if got := NormalizeGate(in); got != want {
			t.Errorf("NormalizeGate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClassify_NamedGateSets(t *testing.T) {
	cases := []struct {
		gate string
		want string
	}{
		{"B2A", PierA},
		{"B2C", PierA},
		{"B3", PierA},
		{"B20", PierA},
		{"B22", PierA},
		{"A6", TB},
		{"A15", TB},
	}
	for _, c := range cases {
		got := Classify(Arrival, c.gate, "", RegionUS, nil)
		if got != c.want {
			t.Errorf("Classify(%q) = %q, want %q", c.gate, got, c.want)
		}
	}
}

func TestClassify_NumericRanges(t *testing.T) {
	if got := Classify(Departure, "B23", "", RegionUS, nil); got != Gates {
		t.Errorf("gate 23 = %q, want %q", got, Gates)
	}
	if got := Classify(Departure, "B41", "", RegionUS, nil); got != Gates {
		t.Errorf("gate 41 = %q, want %q", got, Gates)
	}
	if got := Classify(Departure, "B15", "", RegionUS, nil); got != TB {
		t.Errorf("swing gate 15 for US dep = %q, want %q", got, TB)
	}
	if got := Classify(Departure, "B19", "", RegionDOM, nil); got != PierA {
		t.Errorf("swing gate 19 for DOM dep = %q, want %q", got, PierA)
	}
}

func TestClassify_NoGateFallsBackToTerminalOrUnassigned(t *testing.T) {
	if got := Classify(Arrival, "", "T1", RegionUS, nil); got != T1 {
		t.Errorf("no gate, terminal T1 = %q, want %q", got, T1)
	}
	if got := Classify(Arrival, "", "2", RegionUS, nil); got != Unassigned {
		t.Errorf("no gate, terminal 2 = %q, want %q", got, Unassigned)
	}
}

func TestClassify_TerminalFallbackWhenGateUnmatched(t *testing.T) {
	if got := Classify(Arrival, "C99", "T1", RegionUS, nil); got != T1 {
		t.Errorf("unmatched gate with T1 terminal = %q, want %q", got, T1)
	}
	if got := Classify(Arrival, "C99", "2", RegionUS, nil); got != Unassigned {
		t.Errorf("unmatched gate with non-T1 terminal = %q, want %q", got, Unassigned)
	}
}

func TestClassify_OverridePrecedence(t *testing.T) {
	overrides := map[string]string{"B23": "Pier A"}
	// Override wins even though B23 would normally classify as Gates.
	if got := Classify(Departure, "B23", "", RegionUS, overrides); got != PierA {
		t.Errorf("override = %q, want %q", got, PierA)
	}
}

func TestClassify_OverrideSpecialTokens(t *testing.T) {
	swingOverride := map[string]string{"B99": "SwingDoor"}
	if got := Classify(Arrival, "B99", "", RegionUS, swingOverride); got != TB {
		t.Errorf("override SwingDoor (US arr) = %q, want %q", got, TB)
	}

	unassignedOverride := map[string]string{"B99": "Unassigned"}
	if got := Classify(Arrival, "B99", "", RegionUS, unassignedOverride); got != Unassigned {
		t.Errorf("override Unassigned = %q, want %q", got, Unassigned)
	}
}

func TestResolveSwingDoor(t *testing.T) {
	cases := []struct {
		ftype  FlightType
		region Region
		want   string
	}{
		{Arrival, RegionUS, TB},
		{Departure, RegionUS, TB},
		{Arrival, RegionIntl, TB},
		{Departure, RegionIntl, PierA},
		{Arrival, RegionDOM, PierA},
		{Departure, RegionDOM, PierA},
		{Arrival, RegionNone, TB},
	}
	for _, c := range cases {
		got := ResolveSwingDoor(c.ftype, c.region)
		if got != c.want {
			t.Errorf("ResolveSwingDoor(%v, %v) = %q, want %q", c.ftype, c.region, got, c.want)
		}
	}
}

func TestRegionForCode(t *testing.T) {
	us := map[string]bool{"JFK": true, "LAX": true}
	if got := RegionForCode("JFK", us); got != RegionUS {
		t.Errorf("JFK = %q, want %q", got, RegionUS)
	}
	if got := RegionForCode("YYC", us); got != RegionDOM {
		t.Errorf("YYC = %q, want %q", got, RegionDOM)
	}
	if got := RegionForCode("LHR", us); got != RegionIntl {
		t.Errorf("LHR = %q, want %q", got, RegionIntl)
	}
	if got := RegionForCode("", us); got != RegionNone {
		t.Errorf("empty code = %q, want %q", got, RegionNone)
	}
}
