package postgre

import (
	"fmt"
	"strings"

	repo "dayplanner/internal/todo/repository"
)

// buildConditions collects the shared filter conditions for listing and
// counting todos.
func buildConditions(opt repo.ListTodosOptions, idx *int) ([]string, []any) {
	var conditions []string
	var args []any

	if opt.OwnerID != "" {
		conditions = append(conditions, fmt.Sprintf("owner_id = $%d", *idx))
		args = append(args, opt.OwnerID)
		(*idx)++
	}
	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", *idx))
		args = append(args, opt.Status)
		(*idx)++
	}
	if opt.OpenOnly {
		conditions = append(conditions, "status <> 'DONE'")
	}
	if !opt.DueBefore.IsZero() {
		conditions = append(conditions, fmt.Sprintf("due_at IS NOT NULL AND due_at < $%d", *idx))
		args = append(args, opt.DueBefore)
		(*idx)++
	}
	if !opt.DueFrom.IsZero() {
		conditions = append(conditions, fmt.Sprintf("due_at >= $%d", *idx))
		args = append(args, opt.DueFrom)
		(*idx)++
	}
	if !opt.DueTo.IsZero() {
		conditions = append(conditions, fmt.Sprintf("due_at < $%d", *idx))
		args = append(args, opt.DueTo)
		(*idx)++
	}

	return conditions, args
}

// buildCountQuery builds WHERE clause + args for CountTodos.
func (r *implRepository) buildCountQuery(opt repo.ListTodosOptions) (string, []any) {
	idx := 1
	conditions, args := buildConditions(opt, &idx)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT clause for
// ListTodos.
func (r *implRepository) buildListQuery(opt repo.ListTodosOptions) (string, []any) {
	var parts []string
	idx := 1

	conditions, args := buildConditions(opt, &idx)
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
	}

	return strings.Join(parts, " "), args
}
