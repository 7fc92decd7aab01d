package clientstore

const (
	createSessionTable = `
		CREATE TABLE IF NOT EXISTS session (
			id       INTEGER PRIMARY KEY CHECK (id = 1),
			token    TEXT NOT NULL,
			base_url TEXT NOT NULL DEFAULT '',
			saved_at TIMESTAMP NOT NULL
		);`

	saveSession = `
		INSERT INTO session (id, token, base_url, saved_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			token    = excluded.token,
			base_url = excluded.base_url,
			saved_at = excluded.saved_at;`

	getSession = `
		SELECT
			token,
			base_url,
			saved_at
		FROM session
		WHERE id = 1;`

	deleteSession = `
		DELETE FROM session
		WHERE id = 1;`
)
