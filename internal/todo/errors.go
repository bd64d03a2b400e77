package todo

import "errors"

var (
	ErrTodoNotFound      = errors.New("todo not found")
	ErrTitleRequired     = errors.New("title is required")
	ErrInvalidImportance = errors.New("invalid importance")
)
