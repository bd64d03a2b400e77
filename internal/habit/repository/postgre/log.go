package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dayplanner/internal/habit"
	repo "dayplanner/internal/habit/repository"
)

const logColumns = `id, habit_id, owner_id, day, value, done, created_at, updated_at`

func scanLog(row interface{ Scan(...any) error }) (habit.Log, error) {
	var l habit.Log
	err := row.Scan(
		&l.ID, &l.HabitID, &l.OwnerID, &l.Day, &l.Value, &l.Done,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return habit.Log{}, err
	}
	return l, nil
}

// GetLog returns the log for (habit, day). Zero value when none, not an
// error.
func (r *implRepository) GetLog(ctx context.Context, ownerID, habitID string, day time.Time) (habit.Log, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM habit_logs WHERE owner_id = $1 AND habit_id = $2 AND day = $3 LIMIT 1`, logColumns)

	l, err := scanLog(r.db.QueryRowContext(ctx, query, ownerID, habitID, day))
	if err == sql.ErrNoRows {
		return habit.Log{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetLog"), err)
		return habit.Log{}, repo.ErrFailedToGet
	}
	return l, nil
}

// ListLogsForDay returns every log of the owner on the given day.
func (r *implRepository) ListLogsForDay(ctx context.Context, ownerID string, day time.Time) ([]habit.Log, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM habit_logs WHERE owner_id = $1 AND day = $2`, logColumns)

	rows, err := r.db.QueryContext(ctx, query, ownerID, day)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLogsForDay"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var logs []habit.Log
	for rows.Next() {
		l, scanErr := scanLog(rows)
		if scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		logs = append(logs, l)
	}
	return logs, nil
}

// UpsertLog writes one day's progress, keyed by the unique (habit, day)
// pair.
func (r *implRepository) UpsertLog(ctx context.Context, opt repo.UpsertLogOptions) (habit.Log, error) {
	query := fmt.Sprintf(`
		INSERT INTO habit_logs (%s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (habit_id, day)
		DO UPDATE SET value = EXCLUDED.value, done = EXCLUDED.done, updated_at = NOW()
		RETURNING %s`, logColumns, logColumns)

	l, err := scanLog(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.HabitID, opt.OwnerID, opt.Day, opt.Value, opt.Done,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertLog"), err)
		return habit.Log{}, repo.ErrFailedToInsert
	}
	return l, nil
}

// DeleteLogsForHabit removes all logs of a habit.
func (r *implRepository) DeleteLogsForHabit(ctx context.Context, ownerID, habitID string) error {
	const query = `DELETE FROM habit_logs WHERE owner_id = $1 AND habit_id = $2`
	if _, err := r.db.ExecContext(ctx, query, ownerID, habitID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteLogsForHabit"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
