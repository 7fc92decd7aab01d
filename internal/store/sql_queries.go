package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/aleksmv/go-habit-tracker/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	saveToken = `INSERT INTO auth_tokens (user_id, token_hash, issued_at)
    VALUES ($1, $2, $3)
    RETURNING token_id, user_id, token_hash, issued_at;`

	findUserByTokenHash = `SELECT u.user_id, u.name, u.email, u.password_hash, u.created_at,
       t.token_id, t.token_hash, t.issued_at
    FROM auth_tokens t
    JOIN users u ON u.user_id = t.user_id
    WHERE t.token_hash = $1;`

	deleteTokenByHash = `DELETE FROM auth_tokens WHERE token_hash = $1;`

	createHabit = `INSERT INTO habits (user_id, name, frequency)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, name, frequency, created_at, updated_at;`

	findHabitByIDForUser = `SELECT id, user_id, name, frequency, created_at, updated_at
    FROM habits
    WHERE id = $1 AND user_id = $2;`

	deleteHabit = `DELETE FROM habits WHERE id = $1 AND user_id = $2;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListHabitsQuery builds the SELECT returning all habits of one user in
// creation order.
func buildListHabitsQuery(userID int64) (string, []any, error) {
	return psql.
		Select("id", "user_id", "name", "frequency", "created_at", "updated_at").
		From("habits").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
}

// buildUpdateHabitQuery builds a partial UPDATE applying only the non-nil
// fields of update. updated_at is always touched; id and user_id scope the
// statement so a foreign habit can never be modified.
func buildUpdateHabitQuery(update models.HabitUpdate) (string, []any, error) {
	builder := psql.
		Update("habits").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Frequency != nil {
		builder = builder.Set("frequency", *update.Frequency)
	}

	return builder.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING id, user_id, name, frequency, created_at, updated_at").
		ToSql()
}
