package planning

import (
	"time"

	"dayplanner/pkg/calmath"
)

// ResolveDrop computes the new occurrence for a drag that ended on target,
// relative to the week starting at weekStart. The current duration is
// always preserved (floored to MinDuration), never recomputed from the
// target:
//
//	TIME_SLOT → start at weekStart + DayIndex days, (Hour, 0)
//	DAY_ONLY  → change only the calendar day, keep the time of day
func ResolveDrop(weekStart time.Time, target DropTarget, current Occurrence) (Occurrence, error) {
	duration := current.Duration()
	if duration < MinDuration {
		duration = MinDuration
	}

	var start time.Time
	switch target.Kind {
	case DropTimeSlot:
		start = calmath.DateFromWeekSlot(weekStart, target.DayIndex, target.Hour)
	case DropDayOnly:
		day := calmath.AddDays(weekStart, target.DayIndex)
		start = time.Date(
			day.Year(), day.Month(), day.Day(),
			current.StartsAt.Hour(), current.StartsAt.Minute(),
			current.StartsAt.Second(), current.StartsAt.Nanosecond(),
			day.Location(),
		)
	default:
		return Occurrence{}, ErrInvalidDropTarget
	}

	return Occurrence{StartsAt: start, EndsAt: start.Add(duration)}, nil
}
