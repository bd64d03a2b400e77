package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"dayplanner/internal/habit"
	repo "dayplanner/internal/habit/repository"
)

const habitColumns = `id, owner_id, title, description, frequency, days_of_week, habit_type, target_per_period, is_archived, created_at, updated_at`

// scanHabit scans one row into a Habit. days_of_week is an integer[]
// column read through pq.Int64Array.
func scanHabit(row interface{ Scan(...any) error }) (habit.Habit, error) {
	var h habit.Habit
	var description sql.NullString
	var days pq.Int64Array
	err := row.Scan(
		&h.ID, &h.OwnerID, &h.Title, &description, &h.Frequency, &days,
		&h.Type, &h.TargetPerPeriod, &h.IsArchived, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return habit.Habit{}, err
	}
	h.Description = description.String
	h.DaysOfWeek = make([]int, len(days))
	for i, d := range days {
		h.DaysOfWeek[i] = int(d)
	}
	return h, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func weekdayArray(days []int) pq.Int64Array {
	arr := make(pq.Int64Array, len(days))
	for i, d := range days {
		arr[i] = int64(d)
	}
	return arr
}

// CreateHabit inserts a new habit and returns the created row.
func (r *implRepository) CreateHabit(ctx context.Context, opt repo.CreateHabitOptions) (habit.Habit, error) {
	query := fmt.Sprintf(`
		INSERT INTO habits (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, NOW(), NOW())
		RETURNING %s`, habitColumns, habitColumns)

	h, err := scanHabit(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.OwnerID, opt.Title, nullable(opt.Description),
		opt.Frequency, weekdayArray(opt.DaysOfWeek), opt.Type, opt.TargetPerPeriod,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateHabit"), err)
		return habit.Habit{}, repo.ErrFailedToInsert
	}
	return h, nil
}

// GetOneHabit retrieves a single habit by ID and owner. Returns
// zero-value Habit when not found, not an error.
func (r *implRepository) GetOneHabit(ctx context.Context, opt repo.GetOneHabitOptions) (habit.Habit, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM habits WHERE id = $1 AND owner_id = $2 LIMIT 1`, habitColumns)

	h, err := scanHabit(r.db.QueryRowContext(ctx, query, opt.ID, opt.OwnerID))
	if err == sql.ErrNoRows {
		return habit.Habit{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneHabit"), err)
		return habit.Habit{}, repo.ErrFailedToGet
	}
	return h, nil
}

// ListHabits returns the owner's habits, oldest first. Archived habits
// are excluded unless requested.
func (r *implRepository) ListHabits(ctx context.Context, opt repo.ListHabitsOptions) ([]habit.Habit, error) {
	query := fmt.Sprintf(`SELECT %s FROM habits WHERE owner_id = $1`, habitColumns)
	if !opt.IncludeArchived {
		query += ` AND is_archived = FALSE`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.OwnerID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListHabits"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var habits []habit.Habit
	for rows.Next() {
		h, scanErr := scanHabit(rows)
		if scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		habits = append(habits, h)
	}
	return habits, nil
}

// UpdateHabit updates a habit by ID and owner and returns the updated
// row. Returns zero-value Habit when the row does not exist.
func (r *implRepository) UpdateHabit(ctx context.Context, opt repo.UpdateHabitOptions) (habit.Habit, error) {
	query := fmt.Sprintf(`
		UPDATE habits
		SET title = $1, description = $2, frequency = $3, days_of_week = $4,
		    target_per_period = $5, is_archived = $6, updated_at = $7
		WHERE id = $8 AND owner_id = $9
		RETURNING %s`, habitColumns)

	h, err := scanHabit(r.db.QueryRowContext(ctx, query,
		opt.Title, nullable(opt.Description), opt.Frequency, weekdayArray(opt.DaysOfWeek),
		opt.TargetPerPeriod, opt.IsArchived, time.Now(), opt.ID, opt.OwnerID,
	))
	if err == sql.ErrNoRows {
		return habit.Habit{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateHabit"), err)
		return habit.Habit{}, repo.ErrFailedToUpdate
	}
	return h, nil
}

// DeleteHabit removes a habit by ID, scoped to its owner.
func (r *implRepository) DeleteHabit(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM habits WHERE id = $1 AND owner_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteHabit"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
