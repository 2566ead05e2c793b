// internal/db/db.go
package db

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/unclebandit/customer-service/internal/config"
	"github.com/unclebandit/customer-service/internal/model"
)

// gormConfig logs warnings and slow queries to w. Lookups of absent ids are
// an expected client error and are not logged.
func gormConfig(w logger.Writer) *gorm.Config {
	return &gorm.Config{
		// AddressID is a plain reference, not a constraint.
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger: logger.New(w, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// Open connects to the configured database and verifies the connection.
func Open(cfg config.Database) (*gorm.DB, error) {
	switch cfg.Driver {
	case "sqlite":
		return OpenSQLite(cfg.SQLitePath)
	case "postgres":
		return OpenPostgres(cfg)
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// OpenPostgres opens a lib/pq connection and hands it to gorm.
func OpenPostgres(cfg config.Database) (*gorm.DB, error) {
	log.Println("DB_USER:", cfg.User)
	log.Println("DB_NAME:", cfg.Name)
	log.Println("DB_HOST:", cfg.Host)

	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	if err = sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig(log.Default()))
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	log.Println("✅ Connected to database")
	return gdb, nil
}

// OpenSQLite opens (or creates) a sqlite database file. ":memory:" gives a
// private in-memory database; the pool is pinned to one connection so every
// query sees the same data.
func OpenSQLite(path string) (*gorm.DB, error) {
	return openSQLite(path, log.Default())
}

func openSQLite(path string, w logger.Writer) (*gorm.DB, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if path == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
	}
	if err = sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	gdb, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, gormConfig(w))
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	return gdb, nil
}

// Migrate creates or updates the tables of every model.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(model.All()...)
}

// Close releases the underlying connection pool.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
