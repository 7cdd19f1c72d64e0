package models

import "time"

// User represents a registered account.
//
// PasswordHash holds the bcrypt digest of the user's password and is never
// serialized to clients. ID and CreatedAt are assigned by the database.
type User struct {
	// ID is the server-generated identifier of the account. Immutable.
	ID int64 `json:"id" db:"id"`

	// Username is unique across all accounts, at most 50 characters.
	Username string `json:"username" db:"username"`

	// Email is unique across all accounts, at most 255 characters.
	Email string `json:"email" db:"email"`

	// PasswordHash is the bcrypt digest stored in the "password" column.
	PasswordHash string `json:"-" db:"password"`

	// CreatedAt is set once when the account is inserted.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
