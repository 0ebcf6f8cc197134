package fids

import (
	"context"
	"strings"
	"time"

	"hubdispatch/backend/internal/opswindow"
)

const (
	pageLimit    = 300
	maxPages     = 4
	keptCap      = 500
	pageTimeout  = 20 * time.Second
)

// Flight is one reshaped FIDS record, ready for the Sync Engine (spec
// §4.3). Sched/Est are UTC; the local-vs-UTC preference the provider
// offers is resolved here so downstream code only ever sees UTC.
type Flight struct {
	Number     string
	OriginDest string
	SchedUTC   time.Time
	EstUTC     time.Time
	Terminal   string
	Gate       string
}

// Result holds the fetched and filtered arrivals and departures for one
// sync run.
type Result struct {
	Arrivals   []Flight
	Departures []Flight
}

var watchedAirlines = map[string]bool{
	"AF": true, "BG": true, "2T": true, "BW": true, "CA": true, "MU": true,
	"HU": true, "AU": true, "DL": true, "LH": true, "EY": true, "BR": true,
	"F8": true, "AZ": true, "KL": true, "PR": true, "PD": true, "S4": true,
	"SV": true, "LX": true, "TK": true, "TS": true, "VS": true, "WS": true,
}

// Fetcher drives the Client across the windowed, paged retrieval spec §4.3
// describes and applies the watched-airline filter, codeshare filter, and
// dedupe.
type Fetcher struct {
	client *Client
}

// NewFetcher wraps a Client.
func NewFetcher(client *Client) *Fetcher {
	return &Fetcher{client: client}
}

// FetchWindow retrieves and reshapes all watched flights across the given
// window, splitting it into 12-hour provider segments and paging each.
func (f *Fetcher) FetchWindow(ctx context.Context, window opswindow.Window) (Result, error) {
	var arrivals, departures []Flight

	for _, seg := range opswindow.Segments12h(window) {
		segArr, segDep, err := f.fetchSegment(ctx, seg)
		if err != nil {
			return Result{}, err
		}
		arrivals = append(arrivals, segArr...)
		departures = append(departures, segDep...)
	}

	arrivals = dedupe(arrivals)
	departures = dedupe(departures)

	return Result{Arrivals: arrivals, Departures: departures}, nil
}

// fetchSegment pages through one 12-hour segment, stopping early per the
// rules in spec §4.3.
func (f *Fetcher) fetchSegment(ctx context.Context, seg opswindow.Window) ([]Flight, []Flight, error) {
	var arrivals, departures []Flight
	kept := 0

	for page := 0; page < maxPages; page++ {
		pctx, cancel := context.WithTimeout(ctx, pageTimeout)
		raw, err := f.client.fetchPage(pctx, seg.Start, seg.End, page*pageLimit, pageLimit)
		cancel()
		if err != nil {
			return nil, nil, err
		}

		for _, r := range raw.Arrivals {
			if fl, ok := reshape(r, true); ok {
				arrivals = append(arrivals, fl)
				kept++
			}
		}
		for _, r := range raw.Departures {
			if fl, ok := reshape(r, false); ok {
				departures = append(departures, fl)
				kept++
			}
		}

		combined := len(raw.Arrivals) + len(raw.Departures)
		if combined < pageLimit || kept >= keptCap {
			break
		}
	}

	return arrivals, departures, nil
}

// reshape applies the watched-airline and codeshare filters and converts
// one raw provider record into a Flight, preferring the provider's local
// time fields and falling back to UTC, and falling est back to scheduled
// when absent.
func reshape(r rawFlight, arrival bool) (Flight, bool) {
	number := normalizeFlightNo(r.Number)
	if number == "" || len(number) < 2 || !watchedAirlines[strings.ToUpper(number[:2])] {
		return Flight{}, false
	}
	if strings.Contains(strings.ToLower(r.CodeshareStatus), "codeshared") {
		return Flight{}, false
	}

	leg := r.Departure
	if arrival {
		leg = r.Arrival
	}

	sched, ok := parseLegTime(leg.ScheduledTime)
	if !ok {
		return Flight{}, false
	}
	est, ok := parseLegTime(leg.RevisedTime)
	if !ok {
		est = sched
	}

	return Flight{
		Number:     number,
		OriginDest: strings.ToUpper(leg.Airport.IATA),
		SchedUTC:   sched,
		EstUTC:     est,
		Terminal:   leg.Terminal,
		Gate:       leg.Gate,
	}, true
}

// normalizeFlightNo upper-cases and inserts a single space between the
// carrier code and flight digits, e.g. "ws816" -> "WS 816".
func normalizeFlightNo(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return ""
	}
	split := len(s)
	for i, r := range s {
		if r >= '0' && r <= '9' {
			split = i
			break
		}
	}
	if split == 0 || split == len(s) {
		return s
	}
	return s[:split] + " " + s[split:]
}

// parseLegTime prefers the local timestamp (already a wall-clock value
// the provider asserts is correct for the airport), falling back to UTC
// when local is absent or unparseable, per spec §4.3.
func parseLegTime(t rawTime) (time.Time, bool) {
	if t.Local != "" {
		if parsed, err := time.Parse("2006-01-02T15:04-07:00", t.Local); err == nil {
			return parsed.UTC(), true
		}
		if parsed, err := time.Parse(time.RFC3339, t.Local); err == nil {
			return parsed.UTC(), true
		}
	}
	if t.UTC != "" {
		if parsed, err := time.Parse(time.RFC3339, t.UTC); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}

// dedupe keeps the first occurrence of each (normalized flight number,
// scheduled time) pair, per spec §4.3.
func dedupe(flights []Flight) []Flight {
	seen := make(map[string]bool, len(flights))
	out := make([]Flight, 0, len(flights))
	for _, fl := range flights {
		key := fl.Number + "|" + fl.SchedUTC.Format(time.RFC3339)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, fl)
	}
	return out
}
