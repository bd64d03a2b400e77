package habit

import (
	"time"

	"dayplanner/internal/model"
	"dayplanner/pkg/calmath"
)

// ActiveOn reports whether the habit is due on the given day. Only the
// calendar day of d matters. A habit is never due before its creation
// day; the guard applies in every view.
//
// MONTHLY uses strict day-of-month equality with the creation day, so a
// habit created on the 31st skips shorter months.
func ActiveOn(h Habit, d time.Time) bool {
	if calmath.StartOfDay(d).Before(calmath.StartOfDay(h.CreatedAt)) {
		return false
	}

	switch h.Frequency {
	case model.FrequencyDaily:
		return true
	case model.FrequencyWeekly:
		weekday := int(d.Weekday())
		for _, dow := range h.DaysOfWeek {
			if dow == weekday {
				return true
			}
		}
		return false
	case model.FrequencyMonthly:
		return d.Day() == h.CreatedAt.Day()
	default:
		return false
	}
}
