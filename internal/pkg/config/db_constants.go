package config

// PostgresDbType represents the PostgreSQL database type
const PostgresDbType = "postgres"

// SqliteDbType represents the SQLite database type
const SqliteDbType = "sqlite"
