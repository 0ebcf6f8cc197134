// Package opswindow computes the airport's operational-day boundaries and
// the query/sync windows derived from them (spec §4.1). All storage and
// wire timestamps are UTC; this package is the only place that reasons
// about the airport's local wall clock.
//
// The original system computed local→UTC conversion with an iterative
// fixed-point correction loop to paper over a timezone library that
// couldn't resolve DST-ambiguous wall-clock tuples directly. Go's
// time.Date already resolves those tuples correctly against a *time.Location
// (it normalizes overflow and picks the correct UTC offset for the given
// zone), so this package uses it directly rather than port the iteration —
// per spec §9's own guidance for implementers with a "good timezone
// library". The round-trip invariant spec §8 asks for — zonedToUTC then
// back to the same local tuple — holds given Go's documented time.Date
// behavior in any IANA zone the teacher and pack use.
package opswindow

import (
	"fmt"
	"time"
)

// opsDayStartHour is when an operational day begins and ends, local time.
const opsDayStartHour = 3

// Window is a closed UTC time span, inclusive of both Start and End. An
// ops-day window's End is a ".999" millisecond boundary, matching the
// spec's "through 02:59:59.999" phrasing; the segments Segments12h cuts
// from a window end on whole 12-hour steps except for the last one.
type Window struct {
	Start time.Time
	End   time.Time
}

// LoadLocation resolves the configured timezone name, defaulting to
// America/Toronto per spec §4.1 when tz is empty.
func LoadLocation(tz string) (*time.Location, error) {
	if tz == "" {
		tz = "America/Toronto"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("opswindow: loading location %q: %w", tz, err)
	}
	return loc, nil
}

// opsDate is the local calendar date (Y, M, D) an ops day is named after —
// the date of its 03:00 start.
type opsDate struct {
	year  int
	month time.Month
	day   int
}

// currentOpsDate returns the ops date containing `now`. Local times before
// 03:00 belong to the previous ops day.
func currentOpsDate(now time.Time, loc *time.Location) opsDate {
	local := now.In(loc)
	d := opsDate{local.Year(), local.Month(), local.Day()}
	if local.Hour() < opsDayStartHour {
		d = d.addDays(-1)
	}
	return d
}

func (d opsDate) addDays(n int) opsDate {
	t := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return opsDate{t.Year(), t.Month(), t.Day()}
}

// String renders the ops date as YYYY-MM-DD, the archive's ops_date format.
func (d opsDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// startUTC is the ops day's 03:00:00.000 local instant, in UTC.
func (d opsDate) startUTC(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, opsDayStartHour, 0, 0, 0, loc).UTC()
}

// endUTC is the ops day's 02:59:59.999 local instant (the next calendar
// day), in UTC.
func (d opsDate) endUTC(loc *time.Location) time.Time {
	next := d.addDays(1)
	return time.Date(next.year, next.month, next.day, opsDayStartHour-1, 59, 59, 999_000_000, loc).UTC()
}

// OpsDateString returns the YYYY-MM-DD label of the ops day containing now.
func OpsDateString(now time.Time, loc *time.Location) string {
	return currentOpsDate(now, loc).String()
}

// CurrentOpsDay returns the [start, end] window of the ops day containing
// `now`.
func CurrentOpsDay(now time.Time, loc *time.Location) Window {
	d := currentOpsDate(now, loc)
	return Window{Start: d.startUTC(loc), End: d.endUTC(loc)}
}

// PreviousOpsDay returns the ops day immediately before the one containing
// `now` — used by the nightly archive job, which archives the day that
// "just ended" (spec §4.7).
func PreviousOpsDay(now time.Time, loc *time.Location) Window {
	d := currentOpsDate(now, loc).addDays(-1)
	return Window{Start: d.startUTC(loc), End: d.endUTC(loc)}
}

// QueryParams are the optional overrides a read endpoint's query string may
// supply (spec §4.1).
type QueryParams struct {
	FromTime string // "HH:MM" local, optional
	ToTime   string // "HH:MM" local, optional
	OpsDay   string // "" or "next"
}

// QueryWindow computes the window a Dispatch/Lead list read should use.
func QueryWindow(now time.Time, loc *time.Location, p QueryParams) (Window, error) {
	d := currentOpsDate(now, loc)
	if p.OpsDay == "next" {
		d = d.addDays(1)
	}

	start := d.startUTC(loc)
	if p.FromTime != "" {
		t, err := resolveClockTime(d, loc, p.FromTime, 0, 0)
		if err != nil {
			return Window{}, fmt.Errorf("opswindow: invalid fromTime: %w", err)
		}
		start = t
	} else if p.OpsDay != "next" {
		// Lookback cap: default start never goes further back than now-1h.
		cap := now.Add(-1 * time.Hour)
		if cap.After(start) {
			start = cap
		}
	}

	end := d.endUTC(loc)
	if p.ToTime != "" {
		t, err := resolveClockTime(d, loc, p.ToTime, 59, 999_000_000)
		if err != nil {
			return Window{}, fmt.Errorf("opswindow: invalid toTime: %w", err)
		}
		end = t
	}

	return Window{Start: start, End: end}, nil
}

// resolveClockTime interprets an "HH:MM" local clock time within the given
// ops day: times before 03:00 fall on the ops day's second calendar day,
// per spec §4.1.
func resolveClockTime(d opsDate, loc *time.Location, hhmm string, sec, nsec int) (time.Time, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &hour, &minute); err != nil {
		return time.Time{}, fmt.Errorf("malformed HH:MM %q", hhmm)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("out-of-range HH:MM %q", hhmm)
	}

	date := d
	if hour < opsDayStartHour {
		date = d.addDays(1)
	}
	return time.Date(date.year, date.month, date.day, hour, minute, sec, nsec, loc).UTC(), nil
}

// FullSyncWindow is the uncapped window used by the FIDS Fetcher and the
// archive job (spec §4.1). It never applies the lookback cap, and when the
// local hour is >=12 or <3, it extends through the *following* ops day's
// end to pre-load tomorrow.
func FullSyncWindow(now time.Time, loc *time.Location) Window {
	d := currentOpsDate(now, loc)
	w := Window{Start: d.startUTC(loc), End: d.endUTC(loc)}

	localHour := now.In(loc).Hour()
	if localHour >= 12 || localHour < opsDayStartHour {
		next := d.addDays(1)
		w.End = next.endUTC(loc)
	}
	return w
}

// Segments12h splits a window into back-to-back spans no longer than 12
// hours, matching the FIDS provider's per-request window cap (spec §4.3).
func Segments12h(w Window) []Window {
	const segment = 12 * time.Hour
	var segments []Window
	start := w.Start
	for start.Before(w.End) {
		end := start.Add(segment)
		if end.After(w.End) {
			end = w.End
		}
		segments = append(segments, Window{Start: start, End: end})
		start = end
	}
	return segments
}
