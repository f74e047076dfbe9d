package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const (
	DefaultMigrationDir = "file://db/migration"

	maxOpenConns = 50
	maxIdleConns = 10
	connMaxLife  = time.Minute * 15

	pingTimeout  = time.Second * 5
	databaseName = "battleship_solo"
)

// Migrate applies every pending migration from migrationDir and
// returns the schema version the database ends up on.
func Migrate(db *sql.DB, migrationDir string) (uint, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{DatabaseName: databaseName})
	if err != nil {
		return 0, fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationDir, databaseName, driver)
	if err != nil {
		return 0, fmt.Errorf("migration source %s: %w", migrationDir, err)
	}

	_, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, err
	}
	if dirty {
		return 0, errors.New("database is dirty, fix the last failed migration by hand")
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, err
	}

	version, _, err := m.Version()
	if err != nil {
		return 0, err
	}
	return version, nil
}

// Connect opens the postgres pool and makes sure the server answers.
func Connect(psqlUrl string) (*sql.DB, error) {
	// Open may just validate its arguments without creating a connection to the database
	db, err := sql.Open("postgres", psqlUrl)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLife)
	return db, nil
}

func MustMigrate(db *sql.DB, migrationDir string) {
	version, err := Migrate(db, migrationDir)
	if err != nil {
		panic(err)
	}
	log.Println("migration version:", version)
}

func MustConnectToDb(psqlUrl, migrationDir string) *sql.DB {
	db, err := Connect(psqlUrl)
	if err != nil {
		panic(err)
	}

	MustMigrate(db, migrationDir)
	return db
}
