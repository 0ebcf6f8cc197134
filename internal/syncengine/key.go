package syncengine

import (
	"time"

	"hubdispatch/backend/internal/model"
)

// BuildKey derives a flight's composite key from its scheduled UTC instant
// projected into the airport's local timezone: YYYY-MM-DD|TYPE|FLIGHT|HH:mm
// (spec §4.4). The key uses the scheduled time's own local calendar date,
// not the ops-day date — a flight scheduled at 01:00 local keys to that
// calendar day even though it belongs to the previous ops day.
func BuildKey(ftype model.FlightType, flightNo string, schedUTC time.Time, loc *time.Location) string {
	local := schedUTC.In(loc)
	return local.Format("2006-01-02") + "|" + string(ftype) + "|" + flightNo + "|" + local.Format("15:04")
}
