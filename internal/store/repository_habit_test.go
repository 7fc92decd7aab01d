package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/models"
)

func newTestHabitRepo(t *testing.T) (*habitRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &habitRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func habitColumns() []string {
	return []string{"id", "user_id", "name", "frequency", "created_at", "updated_at"}
}

func TestCreateHabit_Success(t *testing.T) {
	repo, mock, db := newTestHabitRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	habit := models.Habit{UserID: 1, Name: "Run", Frequency: models.Daily}

	rows := sqlmock.
		NewRows(habitColumns()).
		AddRow(7, habit.UserID, habit.Name, habit.Frequency, now, now)

	mock.ExpectQuery("INSERT INTO habits").
		WithArgs(habit.UserID, habit.Name, habit.Frequency).
		WillReturnRows(rows)

	created, err := repo.CreateHabit(ctx, habit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("expected ID=7, got %d", created.ID)
	}
	if created.Frequency != models.Daily {
		t.Errorf("expected frequency daily, got %s", created.Frequency)
	}
}

func TestListHabitsByUser_ReturnsInCreationOrder(t *testing.T) {
	repo, mock, db := newTestHabitRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(habitColumns()).
		AddRow(1, 1, "Run", models.Daily, now, now).
		AddRow(2, 1, "Read", models.Weekly, now, now)

	mock.ExpectQuery("SELECT id, user_id, name, frequency, created_at, updated_at FROM habits").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	habits, err := repo.ListHabitsByUser(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(habits) != 2 {
		t.Fatalf("expected 2 habits, got %d", len(habits))
	}
	if habits[0].ID != 1 || habits[1].ID != 2 {
		t.Errorf("habits out of creation order: %+v", habits)
	}
}

func TestListHabitsByUser_Empty(t *testing.T) {
	repo, mock, db := newTestHabitRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, user_id, name, frequency, created_at, updated_at FROM habits").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(habitColumns()))

	habits, err := repo.ListHabitsByUser(ctx, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if habits == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(habits) != 0 {
		t.Errorf("expected no habits, got %d", len(habits))
	}
}

func TestListHabitsByUser_QueryError(t *testing.T) {
	repo, mock, db := newTestHabitRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, user_id, name, frequency, created_at, updated_at FROM habits").
		WillReturnError(errors.New("db down"))

	_, err := repo.ListHabitsByUser(ctx, 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindHabitByIDForUser_Success(t *testing.T) {
	repo, mock, db := newTestHabitRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(habitColumns()).
		AddRow(7, 1, "Run", models.Daily, now, now)

	mock.ExpectQuery("SELECT id, user_id, name, frequency, created_at, updated_at").
		WithArgs(int64(7), int64(1)).
		WillReturnRows(rows)

	habit, err := repo.FindHabitByIDForUser(ctx, 7, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if habit.Name != "Run" {
		t.Errorf("expected name Run, got %s", habit.Name)
	}
}

func TestFindHabitByIDForUser_WrongOwnerIsNotFound(t *testing.T) {
	repo, mock, db := newTestHabitRepo(t)
	defer db.Close()

	ctx := context.Background()

	// habit 7 exists but belongs to user 1; user 2 sees an empty result
	mock.ExpectQuery("SELECT id, user_id, name, frequency, created_at, updated_at").
		WithArgs(int64(7), int64(2)).
		WillReturnRows(sqlmock.NewRows(habitColumns()))

	_, err := repo.FindHabitByIDForUser(ctx, 7, 2)
	if !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestUpdateHabit_Success(t *testing.T) {
	repo, mock, db := newTestHabitRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	name := "Swim"

	rows := sqlmock.
		NewRows(habitColumns()).
		AddRow(7, 1, name, models.Daily, now, now)

	mock.ExpectQuery("UPDATE habits SET").
		WithArgs(name, int64(7), int64(1)).
		WillReturnRows(rows)

	updated, err := repo.UpdateHabit(ctx, models.HabitUpdate{ID: 7, UserID: 1, Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != name {
		t.Errorf("expected name %s, got %s", name, updated.Name)
	}
}

func TestUpdateHabit_NotFound(t *testing.T) {
	repo, mock, db := newTestHabitRepo(t)
	defer db.Close()

	ctx := context.Background()
	name := "Swim"

	mock.ExpectQuery("UPDATE habits SET").
		WillReturnRows(sqlmock.NewRows(habitColumns()))

	_, err := repo.UpdateHabit(ctx, models.HabitUpdate{ID: 404, UserID: 1, Name: &name})
	if !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestDeleteHabit_Success(t *testing.T) {
	repo, mock, db := newTestHabitRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM habits").
		WithArgs(int64(7), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteHabit(ctx, 7, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteHabit_SecondDeleteIsNotFound(t *testing.T) {
	repo, mock, db := newTestHabitRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM habits").
		WithArgs(int64(7), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteHabit(ctx, 7, 1)
	if !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}
