package db

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrelms/comercio-api/internal/models"
)

// Connect opens the database behind the DSN and brings the schema up to date.
// Postgres URLs and key=value DSNs get the postgres driver; anything else is
// treated as a sqlite path or URI, which is what local development and the
// test suite use.
func Connect(dsn string) (*gorm.DB, error) {
	dsn = strings.TrimSpace(strings.Trim(dsn, "\"'"))
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is empty; set DATABASE_DSN")
	}
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	}

	dialector, isPostgres := dialectorFor(dsn)
	var conn *gorm.DB
	var err error
	attempts := 1
	if isPostgres {
		// Postgres may still be starting when we are (compose startup).
		attempts = 10
	}
	for i := 0; i < attempts; i++ {
		conn, err = gorm.Open(dialector, cfg)
		if err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if pingErr := conn.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	if migrationsRequested() {
		if !isPostgres {
			return nil, fmt.Errorf("MIGRATIONS=1 requires a postgres DSN")
		}
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
		return conn, nil
	}
	if err := AutoMigrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// AutoMigrate creates or updates the tables for all six entities.
func AutoMigrate(conn *gorm.DB) error {
	entities := []interface{}{
		&models.Address{},
		&models.Customer{},
		&models.Supplier{},
		&models.Product{},
		&models.Sale{},
		&models.SaleItem{},
	}
	for _, e := range entities {
		if err := conn.AutoMigrate(e); err != nil {
			return fmt.Errorf("automigrate %T: %w", e, err)
		}
	}
	return nil
}

func dialectorFor(dsn string) (gorm.Dialector, bool) {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") || strings.Contains(lower, "host=") {
		return postgres.Open(dsn), true
	}
	return sqlite.Open(dsn), false
}

func migrationsRequested() bool {
	v := strings.ToLower(os.Getenv("MIGRATIONS"))
	return v == "1" || v == "true" || v == "yes"
}
