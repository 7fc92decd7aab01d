package models

import "time"

// Habit is a single tracked habit belonging to exactly one user.
// Habits are only visible and mutable through endpoints authenticated as the
// owning user; a foreign habit id is reported as not found, never forbidden.
type Habit struct {
	// ID is the unique identifier of the habit.
	ID int64 `json:"id"`

	// UserID is the owning user reference. Never null.
	UserID int64 `json:"user_id"`

	// Name is the habit title shown to the user.
	Name string `json:"name"`

	// Frequency is how often the habit repeats (daily, weekly, monthly).
	Frequency Frequency `json:"frequency"`

	// FrequencyLabel is the human-readable form of Frequency,
	// populated for display only.
	FrequencyLabel string `json:"frequency_label,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Habit model.
func (h Habit) TableName() string {
	return "habits"
}

// HabitUpdate carries a partial habit mutation. Only non-nil fields are
// applied; everything else keeps its stored value.
type HabitUpdate struct {
	// ID is the unique identifier of the habit to update. Required.
	ID int64 `json:"id"`

	// UserID is the owner of the habit. Required for data isolation.
	UserID int64 `json:"user_id"`

	// Name replaces the habit name when non-nil.
	Name *string `json:"name,omitempty"`

	// Frequency replaces the habit frequency when non-nil.
	Frequency *Frequency `json:"frequency,omitempty"`
}
