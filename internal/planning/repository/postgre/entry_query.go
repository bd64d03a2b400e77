package postgre

import (
	"fmt"
	"strings"

	repo "dayplanner/internal/planning/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneEntry.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneEntryOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.OwnerID != "" {
		conditions = append(conditions, fmt.Sprintf("owner_id = $%d", idx))
		args = append(args, opt.OwnerID)
		idx++
	}
	if opt.SourceTodoID != "" {
		conditions = append(conditions, fmt.Sprintf("source_todo_id = $%d", idx))
		args = append(args, opt.SourceTodoID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildConditions collects the shared filter conditions for listing and
// counting entries.
func buildConditions(opt repo.ListEntriesOptions, idx *int) ([]string, []any) {
	var conditions []string
	var args []any

	if opt.OwnerID != "" {
		conditions = append(conditions, fmt.Sprintf("owner_id = $%d", *idx))
		args = append(args, opt.OwnerID)
		(*idx)++
	}
	if !opt.From.IsZero() {
		conditions = append(conditions, fmt.Sprintf("starts_at >= $%d", *idx))
		args = append(args, opt.From)
		(*idx)++
	}
	if !opt.To.IsZero() {
		conditions = append(conditions, fmt.Sprintf("starts_at < $%d", *idx))
		args = append(args, opt.To)
		(*idx)++
	}
	if opt.CompletedOnly {
		conditions = append(conditions, "completed = TRUE")
	}
	if opt.OpenOnly {
		conditions = append(conditions, "completed = FALSE")
	}

	return conditions, args
}

// buildCountQuery builds WHERE clause + args for CountEntries.
func (r *implRepository) buildCountQuery(opt repo.ListEntriesOptions) (string, []any) {
	idx := 1
	conditions, args := buildConditions(opt, &idx)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT clause for
// ListEntries.
func (r *implRepository) buildListQuery(opt repo.ListEntriesOptions) (string, []any) {
	var parts []string
	idx := 1

	conditions, args := buildConditions(opt, &idx)
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "starts_at ASC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
	}

	return strings.Join(parts, " "), args
}
