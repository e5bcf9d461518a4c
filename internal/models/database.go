package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type BudgetContext string

const (
	DBContextURL BudgetContext = "budget-backend-url"
)

// Connect opens the SQLite database, migrates the schema and
// configures the connection pool.
//
// Foreign keys are deliberately not enabled: deleting an envelope
// leaves its transactions untouched.
func Connect(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// One handle for the whole process. This also prevents SQLITE_BUSY errors
	// and keeps :memory: databases alive, as every new connection would
	// open a new, empty database.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func registerCallbacks(db *gorm.DB) error {
	err := db.Callback().Query().After("*").Register("budget:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("budget:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Row().After("*").Register("budget:after_row_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("budget:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("budget:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	return db.Callback().Delete().After("*").Register("budget:after_delete_general", generalCallback)
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and remove the plural "s"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// generalCallback handles unspecified errors.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	db.Error = DatabaseError(db.Error)
}

// DatabaseError replaces errors the user cannot act on with ErrGeneral.
//
// The original error is kept and can be retrieved with Cause for logging.
// All other errors are returned unchanged.
func DatabaseError(err error) error {
	if err == nil || errors.Is(err, ErrGeneral) {
		return err
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	var sqliteErr *go_sqlite.Error
	if err.Error() == "sql: database is closed" || errors.As(err, &sqliteErr) {
		return generalError{cause: err}
	}

	return err
}

// Close closes the connection pool of the database.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// migrate creates all tables that do not exist yet.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Envelope{}, Transaction{}, User{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
