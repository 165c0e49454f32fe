package database

import (
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"
	"vincit.fi/camera-remote/common/logger"
)

type Database struct {
	instance db.Session
}

func NewDatabase(file string) *Database {
	logger.Info.Printf("Initializing database %s", file)
	var settings = sqlite.ConnectionURL{
		Database: file,
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		logger.Error.Fatal("Error opening database", err)
	}

	return &Database{
		instance: session,
	}
}

func NewInMemoryDatabase() *Database {
	logger.Info.Print("Initializing in-memory database")
	var settings = sqlite.ConnectionURL{
		Database: "memory.db",
		Options: map[string]string{
			"mode": "memory",
		},
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		logger.Error.Fatal("Error opening database", err)
	}

	return &Database{
		instance: session,
	}
}

func (s *Database) Session() db.Session {
	return s.instance
}

func (s *Database) Close() {
	if err := s.instance.Close(); err != nil {
		logger.Error.Print("Error closing database", err)
	}
}

func (s *Database) Migrate() {
	logger.Info.Print("Running migrations")
	if s.tableExists("referral_code") {
		logger.Info.Print("Tables exist, nothing to migrate")
		return
	}

	_, err := s.instance.SQL().Exec(`
		CREATE TABLE referral_code (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			code TEXT UNIQUE NOT NULL,
			description TEXT NOT NULL,
			active INTEGER NOT NULL DEFAULT 1,
			created TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		logger.Error.Fatal("Error while creating referral_code table", err)
	}
	logger.Info.Print("All migrations done")
}

func (s *Database) tableExists(name string) bool {
	rows, err := s.instance.SQL().Query(`
		SELECT name FROM sqlite_master WHERE type='table' AND name = ?
	`, name)

	if err != nil {
		return false
	}

	defer rows.Close()
	return rows.Next()
}
