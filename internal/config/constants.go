package config

const (
	// DefaultDatabasePath is the default path for the SQLite database
	DefaultDatabasePath = "./flashcards.db"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)
