package models

import "time"

// AuthToken is the persisted binding between an opaque bearer token and the
// user it authenticates. Only a SHA-256 digest of the token is stored; the
// plaintext value is returned to the client exactly once at issuance and
// cannot be recovered from the row.
//
// A user may hold any number of concurrent tokens (one per login), each with
// an independent lifetime. Logout revokes a single token by value and leaves
// the user's other sessions intact.
type AuthToken struct {
	// TokenID is the internal unique identifier of the token row.
	TokenID int64 `json:"-"`

	// UserID is the owning user reference.
	UserID int64 `json:"-"`

	// TokenHash is the hex-encoded SHA-256 digest of the plaintext token.
	// Unique across all active tokens.
	TokenHash string `json:"-"`

	// IssuedAt is the timestamp of issuance. When a token TTL is configured,
	// tokens older than IssuedAt+TTL no longer validate.
	IssuedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the AuthToken model.
func (t AuthToken) TableName() string {
	return "auth_tokens"
}
