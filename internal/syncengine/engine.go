// Package syncengine reconciles a freshly fetched FIDS window against the
// existing flight table: inserting new flights, diffing existing ones for
// gate/zone/time changes, resetting ACKs on change, and rebuilding alert
// text (spec §4.4).
package syncengine

import (
	"context"
	"math"
	"time"

	"hubdispatch/backend/internal/fids"
	"hubdispatch/backend/internal/model"
	"hubdispatch/backend/internal/repository"
	"hubdispatch/backend/internal/zone"
)

// timeChangeThresholdMin is the minimum absolute delta, in minutes, that
// promotes an estimated-time drift into a tracked change (spec §4.4).
const timeChangeThresholdMin = 20

// Engine is the Sync Engine. It holds no per-run state between calls.
type Engine struct {
	repo *repository.Repository
	loc  *time.Location
	now  func() time.Time
}

// NewEngine builds a Sync Engine against the given repository and
// timezone.
func NewEngine(repo *repository.Repository, loc *time.Location) *Engine {
	return &Engine{repo: repo, loc: loc, now: time.Now}
}

// Result reports how many rows a sync run inserted and updated.
type Result struct {
	Inserted int
	Updated  int
}

// Sync reconciles the given arrivals and departures against the existing
// flight table in one run (spec §4.4, §5: "all diffs are computed from one
// consistent read of the flights table at the start of the run").
func (e *Engine) Sync(ctx context.Context, fetched fids.Result) (Result, error) {
	existing, err := e.repo.Flight.ListAll(ctx)
	if err != nil {
		return Result{}, err
	}
	byKey := make(map[string]*model.Flight, len(existing))
	for i := range existing {
		byKey[existing[i].Key] = &existing[i]
	}

	overrideRows, err := e.repo.ZoneOverride.ListAll(ctx)
	if err != nil {
		return Result{}, err
	}
	overrides := make(map[string]string, len(overrideRows))
	for _, o := range overrideRows {
		overrides[o.GateNormalized] = o.TargetZone
	}

	usRows, err := e.repo.USAirport.ListAll(ctx)
	if err != nil {
		return Result{}, err
	}
	usCodes := make(map[string]bool, len(usRows))
	for _, c := range usRows {
		usCodes[c.Code] = true
	}

	now := e.now()

	var toInsert []*model.Flight
	var toUpdate []*model.Flight

	process := func(ftype model.FlightType, fl fids.Flight) {
		if fl.Number == "" || fl.SchedUTC.IsZero() {
			return
		}
		key := BuildKey(ftype, fl.Number, fl.SchedUTC, e.loc)
		region := zone.RegionForCode(fl.OriginDest, usCodes)
		newZone := model.Zone(zone.Classify(zone.FlightType(ftype), fl.Gate, fl.Terminal, region, overrides))

		if existingFlight, ok := byKey[key]; ok {
			e.applyUpdate(existingFlight, fl, newZone, now)
			toUpdate = append(toUpdate, existingFlight)
			return
		}

		row := &model.Flight{
			Key:         key,
			Type:        ftype,
			FlightNo:    fl.Number,
			SchedUTC:    fl.SchedUTC,
			EstUTC:      fl.EstUTC,
			OriginDest:  fl.OriginDest,
			Gate:        fl.Gate,
			Terminal:    fl.Terminal,
			ZoneCurrent: newZone,
			ZoneInitial: newZone,
		}
		row.CreatedAt = now
		row.UpdatedAt = now
		byKey[key] = row
		toInsert = append(toInsert, row)
	}

	for _, fl := range fetched.Arrivals {
		process(model.FlightArrival, fl)
	}
	for _, fl := range fetched.Departures {
		process(model.FlightDeparture, fl)
	}

	if err := e.repo.Flight.BatchInsert(ctx, toInsert); err != nil {
		return Result{}, err
	}
	if err := e.repo.Flight.BatchUpdate(ctx, toUpdate); err != nil {
		return Result{}, err
	}

	return Result{Inserted: len(toInsert), Updated: len(toUpdate)}, nil
}

// applyUpdate mutates an existing row in place, applying the gate/zone/time
// detectors in order (spec §4.4).
func (e *Engine) applyUpdate(f *model.Flight, fl fids.Flight, newZone model.Zone, now time.Time) {
	anyNewChange := false

	oldGate := zone.NormalizeGate(f.Gate)
	newGate := zone.NormalizeGate(fl.Gate)
	if oldGate != "" && newGate != "" && oldGate != newGate {
		f.GateChanged = true
		f.GateChgFromGate = f.Gate
		f.GateChgToGate = fl.Gate
		f.GateChgFromZone = string(f.ZoneCurrent)
		t := now
		f.GateChgAt = &t
		anyNewChange = true
	}

	oldZone := f.ZoneCurrent
	if oldZone != "" && newZone != "" && oldZone != newZone {
		owingBoard := model.BoardForZone(model.Zone(f.ZonePrev))
		if f.ZonePrev == "" || f.AckForBoard(owingBoard) {
			f.ZonePrev = string(oldZone)
		}
		f.ZoneCurrent = newZone
		f.ZoneChanged = true
		f.ZoneChgFrom = string(oldZone)
		f.ZoneChgTo = string(newZone)
		t := now
		f.ZoneChgAt = &t
		anyNewChange = true
	}

	if f.GateChanged {
		f.GateChgToZone = string(f.ZoneCurrent)
	}

	diffMin := int(math.Round(fl.EstUTC.Sub(f.EstUTC).Minutes()))
	if absInt(diffMin) >= timeChangeThresholdMin {
		prevEst := f.EstUTC
		f.TimePrevEst = &prevEst
		f.TimeChanged = true
		d := diffMin
		f.TimeDeltaMin = &d
		t := now
		f.TimeChgAt = &t
		anyNewChange = true
	}

	if anyNewChange {
		f.ResetAllAcks()
	}

	f.AlertText = BuildAlertText(f)

	f.FlightNo = fl.Number
	f.SchedUTC = fl.SchedUTC
	f.EstUTC = fl.EstUTC
	f.OriginDest = fl.OriginDest
	f.Gate = fl.Gate
	f.Terminal = fl.Terminal
	f.UpdatedAt = now
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
