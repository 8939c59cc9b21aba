// Package interval models the half-open time range an appointment occupies.
//
// Every overlap decision in the system reduces to Overlaps; the persisted
// conflict check in the appointment repository mirrors the same predicate
// in SQL so both layers agree on what "taken" means.
package interval

import (
	"fmt"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/timezone"
	"time"
)

// Interval is a half-open time range [Start, End). Start < End always holds
// for values produced by FromDateAndClock.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect. Touching
// boundaries (a.End == b.Start) do not overlap, which is what allows
// back-to-back appointments.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// FromDateAndClock builds an interval from the client wire format
// ("31.01.2025", "12:00") and a total duration in minutes. The date and
// clock are parsed in the application timezone.
func FromDateAndClock(dateStr, timeStr string, durationMinutes int) (Interval, error) {
	if durationMinutes <= 0 {
		return Interval{}, failure.BadRequestFromString(fmt.Sprintf("invalid appointment duration: %d minutes", durationMinutes))
	}

	start, err := timezone.Parse(constant.DateFormat+" "+constant.ClockFormat, dateStr+" "+timeStr)
	if err != nil {
		return Interval{}, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err))
	}

	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

// Duration returns the length of the interval.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Date formats the start day in the client wire format.
func (i Interval) Date() string {
	return timezone.Format(i.Start, constant.DateFormat)
}

// StartClock formats the start wall-clock time in the client wire format.
func (i Interval) StartClock() string {
	return timezone.Format(i.Start, constant.ClockFormat)
}

// EndClock formats the end wall-clock time in the client wire format.
func (i Interval) EndClock() string {
	return timezone.Format(i.End, constant.ClockFormat)
}
