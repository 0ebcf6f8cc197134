// Package fids retrieves flight schedules from the external Flight
// Information Display System provider (AeroDataBox) and reshapes them
// into the form the Sync Engine consumes (spec §4.3).
package fids

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hubdispatch/backend/internal/apperr"
)

// Client talks to the AeroDataBox "flights by airport" endpoint. It is a
// thin wrapper with no caching of its own — windowing, paging, and
// filtering live in Fetcher.
type Client struct {
	http        *http.Client
	baseURL     string
	apiKey      string
	airportCode string
}

// NewClient builds a provider client with the given per-request timeout.
// Spec §5 requires outbound fetch calls to carry a timeout between 5s and
// 30s; callers should pass a context deadline within that range per call,
// this one bounds the underlying transport as a backstop.
func NewClient(baseURL, apiKey, airportCode string, timeout time.Duration) *Client {
	return &Client{
		http:        &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		apiKey:      apiKey,
		airportCode: airportCode,
	}
}

// rawTime is the provider's {local, utc} timestamp pair.
type rawTime struct {
	Local string `json:"local"`
	UTC   string `json:"utc"`
}

// rawLeg is the provider's departure/arrival sub-object.
type rawLeg struct {
	Airport struct {
		IATA string `json:"iata"`
	} `json:"airport"`
	ScheduledTime rawTime `json:"scheduledTime"`
	RevisedTime   rawTime `json:"revisedTime"`
	Terminal      string  `json:"terminal"`
	Gate          string  `json:"gate"`
}

// rawFlight is one entry in the provider's arrivals/departures array.
type rawFlight struct {
	Number          string `json:"number"`
	CodeshareStatus string `json:"codeshareStatus"`
	Departure       rawLeg `json:"departure"`
	Arrival         rawLeg `json:"arrival"`
}

// rawPage is the provider's page response shape.
type rawPage struct {
	Departures []rawFlight `json:"departures"`
	Arrivals   []rawFlight `json:"arrivals"`
}

// fetchPage requests one page of the provider's flights-by-airport
// endpoint for the given UTC window, offset, and limit.
func (c *Client) fetchPage(ctx context.Context, start, end time.Time, offset, limit int) (rawPage, error) {
	url := fmt.Sprintf(
		"%s/flights/airports/iata/%s/%s/%s?direction=Both&withCancelled=true&offset=%d&limit=%d",
		c.baseURL, c.airportCode,
		start.UTC().Format("2006-01-02T15:04"),
		end.UTC().Format("2006-01-02T15:04"),
		offset, limit,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return rawPage{}, fmt.Errorf("fids: building request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return rawPage{}, fmt.Errorf("%w: %v", apperr.ErrProviderHTTP, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return rawPage{}, fmt.Errorf("%w: status %d: %s", apperr.ErrProviderHTTP, resp.StatusCode, body)
	}

	var page rawPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return rawPage{}, fmt.Errorf("%w: %v", apperr.ErrProviderHTTP, err)
	}
	return page, nil
}
