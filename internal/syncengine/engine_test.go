package syncengine

import (
	"context"
	"testing"
	"time"

	"hubdispatch/backend/internal/fids"
	"hubdispatch/backend/internal/model"
)

func toronto(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	return loc
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// Scenario 1: new flight insertion (spec §8).
func TestSync_NewFlightInsertion(t *testing.T) {
	loc := toronto(t)
	flights := newFakeFlightRepo()
	overrides := &fakeZoneOverrideRepo{}
	usCodes := &fakeUSAirportRepo{}

	e := NewEngine(newTestRepo(flights, overrides, usCodes), loc)
	e.now = fixedClock(time.Date(2025, 2, 25, 6, 0, 0, 0, time.UTC))

	sched := time.Date(2025, 2, 25, 11, 30, 0, 0, time.UTC)
	result, err := e.Sync(context.Background(), fids.Result{
		Arrivals: []fids.Flight{{
			Number:     "WS 816",
			SchedUTC:   sched,
			EstUTC:     sched,
			OriginDest: "YEG",
			Gate:       "B3",
			Terminal:   "1",
		}},
	})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if result.Inserted != 1 || result.Updated != 0 {
		t.Fatalf("result = %+v, want {Inserted:1 Updated:0}", result)
	}

	row, ok := flights.rows["2025-02-25|ARR|WS 816|06:30"]
	if !ok {
		t.Fatal("expected row at key 2025-02-25|ARR|WS 816|06:30")
	}
	if row.ZoneCurrent != model.ZonePierA || row.ZoneInitial != model.ZonePierA {
		t.Errorf("zones = %q/%q, want Pier A/Pier A", row.ZoneCurrent, row.ZoneInitial)
	}
	if row.AlertText != "" {
		t.Errorf("AlertText = %q, want empty", row.AlertText)
	}
	if row.DispatchAck || row.PieraAck || row.TbAck || row.T1Ack || row.UnassignedAck || row.GatesAck {
		t.Error("expected all ACKs false on insert")
	}
}

// Scenario 2: gate change with ACK reset (spec §8).
func TestSync_GateChangeResetsAcks(t *testing.T) {
	loc := toronto(t)
	sched := time.Date(2025, 2, 25, 11, 30, 0, 0, time.UTC)
	key := BuildKey(model.FlightArrival, "WS 816", sched, loc)

	existing := &model.Flight{
		Key:         key,
		Type:        model.FlightArrival,
		FlightNo:    "WS 816",
		SchedUTC:    sched,
		EstUTC:      sched,
		OriginDest:  "YEG",
		Gate:        "B3",
		Terminal:    "1",
		ZoneCurrent: model.ZonePierA,
		ZoneInitial: model.ZonePierA,
	}
	existing.DispatchAck = true
	existing.PieraAck = true

	flights := newFakeFlightRepo(existing)
	e := NewEngine(newTestRepo(flights, &fakeZoneOverrideRepo{}, &fakeUSAirportRepo{}), loc)
	e.now = fixedClock(time.Date(2025, 2, 25, 7, 0, 0, 0, time.UTC))

	result, err := e.Sync(context.Background(), fids.Result{
		Arrivals: []fids.Flight{{
			Number:     "WS 816",
			SchedUTC:   sched,
			EstUTC:     sched,
			OriginDest: "YEG",
			Gate:       "B20",
			Terminal:   "1",
		}},
	})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if result.Updated != 1 {
		t.Fatalf("Updated = %d, want 1", result.Updated)
	}

	row := flights.rows[key]
	if !row.GateChanged {
		t.Error("expected GateChanged=true")
	}
	if row.GateChgFromGate != "B3" || row.GateChgToGate != "B20" {
		t.Errorf("gate change = %s -> %s, want B3 -> B20", row.GateChgFromGate, row.GateChgToGate)
	}
	if row.GateChgFromZone != "Pier A" || row.GateChgToZone != "Pier A" {
		t.Errorf("gate change zones = %s -> %s, want Pier A -> Pier A", row.GateChgFromZone, row.GateChgToZone)
	}
	if row.ZoneCurrent != model.ZonePierA {
		t.Errorf("ZoneCurrent = %q, want Pier A", row.ZoneCurrent)
	}
	if row.DispatchAck || row.PieraAck {
		t.Error("expected ACKs reset to false")
	}
	if row.AlertText != "Gate: B3 -> B20" {
		t.Errorf("AlertText = %q, want %q", row.AlertText, "Gate: B3 -> B20")
	}
}

// Scenario 3 (write side only — the ACK clearing half is covered by
// TestLeadAck_ClearsCarryOverWhenOwingBoardAcks in internal/service):
// zone change with carry-over.
func TestSync_ZoneChangeCarriesOverPreviousZone(t *testing.T) {
	loc := toronto(t)
	sched := time.Date(2025, 2, 25, 11, 30, 0, 0, time.UTC)
	key := BuildKey(model.FlightArrival, "WS 816", sched, loc)

	existing := &model.Flight{
		Key:         key,
		Type:        model.FlightArrival,
		FlightNo:    "WS 816",
		SchedUTC:    sched,
		EstUTC:      sched,
		OriginDest:  "YEG",
		Gate:        "A6",
		Terminal:    "1",
		ZoneCurrent: model.ZoneTB,
		ZoneInitial: model.ZoneTB,
	}

	flights := newFakeFlightRepo(existing)
	e := NewEngine(newTestRepo(flights, &fakeZoneOverrideRepo{}, &fakeUSAirportRepo{}), loc)
	e.now = fixedClock(time.Date(2025, 2, 25, 7, 0, 0, 0, time.UTC))

	_, err := e.Sync(context.Background(), fids.Result{
		Arrivals: []fids.Flight{{
			Number:     "WS 816",
			SchedUTC:   sched,
			EstUTC:     sched,
			OriginDest: "YEG",
			Gate:       "B3",
			Terminal:   "1",
		}},
	})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}

	row := flights.rows[key]
	if row.ZoneCurrent != model.ZonePierA {
		t.Errorf("ZoneCurrent = %q, want Pier A", row.ZoneCurrent)
	}
	if row.ZonePrev != string(model.ZoneTB) {
		t.Errorf("ZonePrev = %q, want TB", row.ZonePrev)
	}
	if !row.ZoneChanged {
		t.Error("expected ZoneChanged=true")
	}
}

// Scenario 4: time change below threshold is ignored (spec §8).
func TestSync_TimeChangeBelowThresholdIgnored(t *testing.T) {
	loc := toronto(t)
	sched := time.Date(2025, 2, 25, 11, 30, 0, 0, time.UTC)
	key := BuildKey(model.FlightArrival, "WS 816", sched, loc)

	existing := &model.Flight{
		Key: key, Type: model.FlightArrival, FlightNo: "WS 816",
		SchedUTC: sched, EstUTC: sched, OriginDest: "YEG", Gate: "B3", Terminal: "1",
		ZoneCurrent: model.ZonePierA, ZoneInitial: model.ZonePierA,
	}
	flights := newFakeFlightRepo(existing)
	e := NewEngine(newTestRepo(flights, &fakeZoneOverrideRepo{}, &fakeUSAirportRepo{}), loc)
	e.now = fixedClock(time.Date(2025, 2, 25, 7, 0, 0, 0, time.UTC))

	newEst := sched.Add(15 * time.Minute)
	_, err := e.Sync(context.Background(), fids.Result{
		Arrivals: []fids.Flight{{
			Number: "WS 816", SchedUTC: sched, EstUTC: newEst,
			OriginDest: "YEG", Gate: "B3", Terminal: "1",
		}},
	})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}

	row := flights.rows[key]
	if row.TimeChanged {
		t.Error("expected TimeChanged=false for a 15 minute drift")
	}
	if !row.EstUTC.Equal(newEst) {
		t.Errorf("EstUTC = %v, want %v (FIDS fields always refresh)", row.EstUTC, newEst)
	}
	if row.DispatchAck {
		t.Error("no ACK column should be touched without a tracked change")
	}
}

// Scenario 5: time change at threshold triggers (spec §8).
func TestSync_TimeChangeAtThresholdTriggers(t *testing.T) {
	loc := toronto(t)
	sched := time.Date(2025, 2, 25, 11, 30, 0, 0, time.UTC)
	key := BuildKey(model.FlightArrival, "WS 816", sched, loc)

	existing := &model.Flight{
		Key: key, Type: model.FlightArrival, FlightNo: "WS 816",
		SchedUTC: sched, EstUTC: sched, OriginDest: "YEG", Gate: "B3", Terminal: "1",
		ZoneCurrent: model.ZonePierA, ZoneInitial: model.ZonePierA,
	}
	existing.DispatchAck = true
	flights := newFakeFlightRepo(existing)
	e := NewEngine(newTestRepo(flights, &fakeZoneOverrideRepo{}, &fakeUSAirportRepo{}), loc)
	e.now = fixedClock(time.Date(2025, 2, 25, 7, 0, 0, 0, time.UTC))

	newEst := sched.Add(20 * time.Minute)
	_, err := e.Sync(context.Background(), fids.Result{
		Arrivals: []fids.Flight{{
			Number: "WS 816", SchedUTC: sched, EstUTC: newEst,
			OriginDest: "YEG", Gate: "B3", Terminal: "1",
		}},
	})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}

	row := flights.rows[key]
	if !row.TimeChanged {
		t.Fatal("expected TimeChanged=true for a 20 minute drift")
	}
	if row.TimeDeltaMin == nil || *row.TimeDeltaMin != 20 {
		t.Errorf("TimeDeltaMin = %v, want 20", row.TimeDeltaMin)
	}
	if row.TimePrevEst == nil || !row.TimePrevEst.Equal(sched) {
		t.Errorf("TimePrevEst = %v, want %v", row.TimePrevEst, sched)
	}
	if row.AlertText != "TimeDelta: 20 min" {
		t.Errorf("AlertText = %q, want %q", row.AlertText, "TimeDelta: 20 min")
	}
	if row.DispatchAck {
		t.Error("expected DispatchAck reset to false")
	}
}
