package database

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/socratmhamad/quiz-socfix/log"
)

//go:embed migrations
var migrationFiles embed.FS

// migrateDB brings the schema up to the latest embedded migration.
func migrateDB(db *sql.DB) error {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return err
	}

	dst, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}

	migrator, err := migrate.NewWithInstance("iofs", src, "sqlite3", dst)
	if err != nil {
		return err
	}

	err = migrator.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Debug("db.migrate: schema up to date")
	case err != nil:
		return err
	default:
		log.Info("db.migrate: schema updated")
	}
	return nil
}
