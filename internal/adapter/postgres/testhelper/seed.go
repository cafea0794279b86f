package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
)

// SeedTask inserts a task owned by userID.
func SeedTask(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string) domain.Task {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	task := domain.Task{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Priority:  domain.TaskPriorityNone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tasks (id, user_id, title, priority, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		task.ID, task.UserID, task.Title, string(task.Priority), task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask: %v", err)
	}

	return task
}

// SeedHabitWithLogs inserts a daily habit plus one log per day, starting at
// firstDay. completed[i] is the state of day i.
func SeedHabitWithLogs(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, firstDay time.Time, completed ...bool) (domain.Habit, []domain.HabitLog) {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	habit := domain.Habit{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            "Habit " + uuid.NewString()[:8],
		Frequency:       domain.HabitFrequencyDaily,
		TargetPerPeriod: 1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO habits (id, user_id, name, frequency, target_per_period, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		habit.ID, habit.UserID, habit.Name, string(habit.Frequency), habit.TargetPerPeriod, habit.CreatedAt, habit.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHabitWithLogs insert habit: %v", err)
	}

	logs := make([]domain.HabitLog, len(completed))
	for i, done := range completed {
		l := domain.HabitLog{
			ID:        uuid.New(),
			HabitID:   habit.ID,
			Date:      domain.LogDate(firstDay).AddDate(0, 0, i),
			Completed: done,
			CreatedAt: now,
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO habit_logs (id, habit_id, log_date, completed, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			l.ID, l.HabitID, l.Date, l.Completed, l.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedHabitWithLogs insert log[%d]: %v", i, err)
		}
		logs[i] = l
	}

	return habit, logs
}
