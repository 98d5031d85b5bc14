package models

// User represents an account entity used for authentication and as the owner
// of videos.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer
	// and as the subject of issued tokens.
	UserID int64 `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique address the user logs in with.
	Email string `json:"email"`

	// Password is the plaintext password received at registration. It is
	// accepted on input only, never persisted and cleared before the user
	// leaves the service layer.
	Password string `json:"password,omitempty"`

	// PasswordHash is the salted one-way hash stored in the users table.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
