package planning

import "errors"

var (
	ErrEntryNotFound     = errors.New("planning entry not found")
	ErrTitleRequired     = errors.New("title is required")
	ErrInvalidRecurrence = errors.New("invalid recurrence kind")
	ErrInvalidDropTarget = errors.New("invalid drop target")

	// ErrMirrorConflict means the store holds more than one entry for the
	// same source todo. The uniqueness constraint makes this unreachable;
	// it is a programming error, not a user-facing condition.
	ErrMirrorConflict = errors.New("multiple planning entries for one source todo")
)
