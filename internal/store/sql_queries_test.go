package store

import (
	"testing"

	"github.com/aleksmv/go-habit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListHabitsQuery(t *testing.T) {
	query, args, err := buildListHabitsQuery(42)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, user_id, name, frequency, created_at, updated_at FROM habits WHERE user_id = $1 ORDER BY id ASC",
		query)
	assert.Equal(t, []any{int64(42)}, args)
}

func TestBuildUpdateHabitQuery_AllFields(t *testing.T) {
	name := "Swim"
	freq := models.Weekly

	query, args, err := buildUpdateHabitQuery(models.HabitUpdate{
		ID:        7,
		UserID:    1,
		Name:      &name,
		Frequency: &freq,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE habits SET updated_at = NOW()")
	assert.Contains(t, query, "name = $1")
	assert.Contains(t, query, "frequency = $2")
	assert.Contains(t, query, "RETURNING id, user_id, name, frequency, created_at, updated_at")
	assert.Equal(t, []any{"Swim", models.Weekly, int64(7), int64(1)}, args)
}

func TestBuildUpdateHabitQuery_NameOnly(t *testing.T) {
	name := "Swim"

	query, args, err := buildUpdateHabitQuery(models.HabitUpdate{ID: 7, UserID: 1, Name: &name})
	require.NoError(t, err)

	assert.Contains(t, query, "name = $1")
	assert.NotContains(t, query, "frequency =")
	assert.Equal(t, []any{"Swim", int64(7), int64(1)}, args)
}

func TestBuildUpdateHabitQuery_NoFieldsStillTouchesUpdatedAt(t *testing.T) {
	query, args, err := buildUpdateHabitQuery(models.HabitUpdate{ID: 7, UserID: 1})
	require.NoError(t, err)

	assert.Contains(t, query, "SET updated_at = NOW()")
	assert.Equal(t, []any{int64(7), int64(1)}, args)
}

func TestBuildUpdateHabitQuery_ScopesByOwner(t *testing.T) {
	query, _, err := buildUpdateHabitQuery(models.HabitUpdate{ID: 7, UserID: 1})
	require.NoError(t, err)

	assert.Contains(t, query, "id = $")
	assert.Contains(t, query, "user_id = $")
}
