package models

// User represents the account entity produced by the authentication flow.
// Once a login succeeds the value is handed to the session controller and
// stays immutable for the rest of the process lifetime.
type User struct {
	// UserID is the unique identifier of the user. Assigned randomly at
	// account creation; math.MaxUint32 is reserved as a sentinel and is
	// never issued.
	UserID uint32

	// Username is the unique login name of the user.
	Username string

	// Password is the credential checked at login.
	Password string
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Rename replaces the username. Unused by the interactive session flow.
func (u *User) Rename(username string) {
	u.Username = username
}

// ChangePassword replaces the password. Unused by the interactive session flow.
func (u *User) ChangePassword(password string) {
	u.Password = password
}
