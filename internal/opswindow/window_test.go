package opswindow

import (
	"testing"
	"time"
)

func mustLoc(t *testing.T) *time.Location {
	loc, err := LoadLocation("America/Toronto")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	return loc
}

func TestCurrentOpsDay_BeforeAndAfter0300(t *testing.T) {
	loc := mustLoc(t)

	// 2025-02-25 02:00 local is still the 2025-02-24 ops day.
	before := time.Date(2025, 2, 25, 2, 0, 0, 0, loc)
	w := CurrentOpsDay(before, loc)
	if got := OpsDateString(before, loc); got != "2025-02-24" {
		t.Errorf("OpsDateString before 03:00 = %s, want 2025-02-24", got)
	}
	wantStart := time.Date(2025, 2, 24, 3, 0, 0, 0, loc).UTC()
	if !w.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", w.Start, wantStart)
	}

	// 2025-02-25 04:00 local belongs to the 2025-02-25 ops day.
	after := time.Date(2025, 2, 25, 4, 0, 0, 0, loc)
	if got := OpsDateString(after, loc); got != "2025-02-25" {
		t.Errorf("OpsDateString after 03:00 = %s, want 2025-02-25", got)
	}
}

func TestCurrentOpsDay_EndBoundary(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 2, 24, 10, 0, 0, 0, loc)
	w := CurrentOpsDay(now, loc)
	wantEnd := time.Date(2025, 2, 25, 2, 59, 59, 999_000_000, loc).UTC()
	if !w.End.Equal(wantEnd) {
		t.Errorf("End = %v, want %v", w.End, wantEnd)
	}
}

func TestQueryWindow_LookbackCap(t *testing.T) {
	loc := mustLoc(t)
	// now is 09:00 local, well after the 03:00 ops-day start; default
	// start should be capped to now-1h, not the ops-day start.
	now := time.Date(2025, 2, 24, 9, 0, 0, 0, loc)
	w, err := QueryWindow(now, loc, QueryParams{})
	if err != nil {
		t.Fatalf("QueryWindow: %v", err)
	}
	wantStart := now.Add(-1 * time.Hour).UTC()
	if !w.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v (lookback cap)", w.Start, wantStart)
	}
}

func TestQueryWindow_NoLookbackCapForNextOpsDay(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 2, 24, 9, 0, 0, 0, loc)
	w, err := QueryWindow(now, loc, QueryParams{OpsDay: "next"})
	if err != nil {
		t.Fatalf("QueryWindow: %v", err)
	}
	wantStart := time.Date(2025, 2, 25, 3, 0, 0, 0, loc).UTC()
	if !w.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", w.Start, wantStart)
	}
}

func TestQueryWindow_FromTimeBefore0300RollsToNextDay(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 2, 24, 9, 0, 0, 0, loc)
	w, err := QueryWindow(now, loc, QueryParams{FromTime: "02:00"})
	if err != nil {
		t.Fatalf("QueryWindow: %v", err)
	}
	// 02:00 is before the 03:00 ops-day boundary, so it belongs to the
	// ops day's second calendar date: 2025-02-25.
	want := time.Date(2025, 2, 25, 2, 0, 0, 0, loc).UTC()
	if !w.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", w.Start, want)
	}
}

func TestQueryWindow_ToTimeAddsTrailingSecond(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 2, 24, 9, 0, 0, 0, loc)
	w, err := QueryWindow(now, loc, QueryParams{ToTime: "14:30"})
	if err != nil {
		t.Fatalf("QueryWindow: %v", err)
	}
	want := time.Date(2025, 2, 24, 14, 30, 59, 999_000_000, loc).UTC()
	if !w.End.Equal(want) {
		t.Errorf("End = %v, want %v", w.End, want)
	}
}

func TestFullSyncWindow_PreloadsNextOpsDay(t *testing.T) {
	loc := mustLoc(t)
	// Local hour 13 (>=12) should extend through the following ops day.
	now := time.Date(2025, 2, 24, 13, 0, 0, 0, loc)
	w := FullSyncWindow(now, loc)
	wantEnd := time.Date(2025, 2, 26, 2, 59, 59, 999_000_000, loc).UTC()
	if !w.End.Equal(wantEnd) {
		t.Errorf("End = %v, want %v", w.End, wantEnd)
	}

	// Local hour 9 (< 12, >= 3) should NOT extend.
	now2 := time.Date(2025, 2, 24, 9, 0, 0, 0, loc)
	w2 := FullSyncWindow(now2, loc)
	wantEnd2 := time.Date(2025, 2, 25, 2, 59, 59, 999_000_000, loc).UTC()
	if !w2.End.Equal(wantEnd2) {
		t.Errorf("End = %v, want %v", w2.End, wantEnd2)
	}
}

func TestSegments12h(t *testing.T) {
	loc := mustLoc(t)
	start := time.Date(2025, 2, 24, 3, 0, 0, 0, loc).UTC()
	end := start.Add(23 * time.Hour)
	segs := Segments12h(Window{Start: start, End: end})
	if len(segs) != 2 {
		t.Fatalf("len(segs) = %d, want 2", len(segs))
	}
	if !segs[0].Start.Equal(start) || !segs[len(segs)-1].End.Equal(end) {
		t.Errorf("segments don't cover the full window: %+v", segs)
	}
	for i := 0; i < len(segs)-1; i++ {
		if !segs[i].End.Equal(segs[i+1].Start) {
			t.Errorf("segments not back-to-back at %d: %v vs %v", i, segs[i].End, segs[i+1].Start)
		}
	}
}

func TestPreviousOpsDay(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 2, 25, 3, 30, 0, 0, loc)
	w := PreviousOpsDay(now, loc)
	wantStart := time.Date(2025, 2, 24, 3, 0, 0, 0, loc).UTC()
	wantEnd := time.Date(2025, 2, 25, 2, 59, 59, 999_000_000, loc).UTC()
	if !w.Start.Equal(wantStart) || !w.End.Equal(wantEnd) {
		t.Errorf("PreviousOpsDay = %+v, want [%v, %v]", w, wantStart, wantEnd)
	}
}
