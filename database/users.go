package database

import (
	"database/sql"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// EnsureUser provisions (or re-provisions) a login row with a bcrypt
// password hash. Used at startup to make sure the author can sign in.
func EnsureUser(db *sql.DB, username, password, email string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	_, err = db.Exec(`
		INSERT INTO user (username, password_hash, email) VALUES (?, ?, ?)
		ON CONFLICT (username) DO UPDATE SET
			password_hash = excluded.password_hash,
			email = excluded.email`,
		username,
		string(hash),
		email,
	)
	return errors.Wrap(err, "ensure user")
}
