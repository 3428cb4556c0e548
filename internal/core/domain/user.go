package domain

// User is the single site owner. Exactly one row is expected to exist;
// lookups always take the first row rather than filtering by username.
type User struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"` // bcrypt hashed, never the plaintext
}

func NewUser(name, username, passwordHash string) *User {
	return &User{
		Name:         name,
		Username:     username,
		PasswordHash: passwordHash,
	}
}
