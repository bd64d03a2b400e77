package habit

import "errors"

var (
	ErrHabitNotFound    = errors.New("habit not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrInvalidWeekdays  = errors.New("weekday numbers must be within 0..6")
)
