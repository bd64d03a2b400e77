package planning

import (
	"time"

	"github.com/teambition/rrule-go"
)

// Expansion sizes mirror the planner UI: a daily plan fills the visible
// week, a weekly plan fills a month of weeks.
const (
	dailyOccurrences  = 7
	weeklyOccurrences = 4
)

// FloorEnd normalizes an end time against the one-hour minimum: any end
// yielding a span below MinDuration becomes start + MinDuration. This is
// a defined normalization, never an error.
func FloorEnd(start, end time.Time) time.Time {
	if end.Sub(start) < MinDuration {
		return start.Add(MinDuration)
	}
	return end
}

// Normalized returns the occurrence with its end floored.
func (o Occurrence) Normalized() Occurrence {
	return Occurrence{StartsAt: o.StartsAt, EndsAt: FloorEnd(o.StartsAt, o.EndsAt)}
}

// Expand materializes the policy into the ordered occurrences to persist.
// Every occurrence keeps the base start's time of day and the base
// duration (floored to MinDuration):
//
//	NONE   → 1 occurrence
//	DAILY  → 7 occurrences, one per consecutive day
//	WEEKLY → 4 occurrences, one per week on the base weekday
//
// Any other kind is rejected with ErrInvalidRecurrence.
func (p RecurrencePolicy) Expand() ([]Occurrence, error) {
	base := p.Base.Normalized()
	duration := base.Duration()

	var freq rrule.Frequency
	var count int
	switch p.Kind {
	case RecurrenceNone:
		return []Occurrence{base}, nil
	case RecurrenceDaily:
		freq, count = rrule.DAILY, dailyOccurrences
	case RecurrenceWeekly:
		freq, count = rrule.WEEKLY, weeklyOccurrences
	default:
		return nil, ErrInvalidRecurrence
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    freq,
		Count:   count,
		Dtstart: base.StartsAt,
	})
	if err != nil {
		return nil, err
	}

	starts := rule.All()
	occurrences := make([]Occurrence, 0, len(starts))
	for _, start := range starts {
		occurrences = append(occurrences, Occurrence{
			StartsAt: start,
			EndsAt:   start.Add(duration),
		})
	}
	return occurrences, nil
}
