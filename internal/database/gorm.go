package database

import (
	"fmt"
	stdlog "log"
	"time"

	"cli-contacts/internal/config"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds the PostgreSQL connection string from the DB_* settings
func DSN(cfg *config.Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
}

// Open connects to the SQL backend named by cfg.StoreDriver and migrates the
// contact tables.
func Open(cfg *config.Config, log *logrus.Entry) (*gorm.DB, error) {
	log = log.WithFields(logrus.Fields{
		"type":   "database",
		"driver": cfg.StoreDriver,
	})

	var dialector gorm.Dialector
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DBPath)
	case config.DriverPostgres:
		dialector = postgres.Open(DSN(cfg))
	default:
		return nil, errors.Errorf("unsupported sql driver %q", cfg.StoreDriver)
	}

	logLevel := logger.Silent
	if cfg.Verbose {
		logLevel = logger.Info
	}

	// SQL traces share the logrus output so they stay off the console
	sqlLogger := logger.New(stdlog.New(log.Logger.Out, "", stdlog.LstdFlags), logger.Config{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      logLevel,
	})

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: sqlLogger,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", cfg.StoreDriver)
	}
	log.Debug("connected to database")

	err = db.AutoMigrate(
		&contactRow{},
		&messageRow{},
	)
	if err != nil {
		Close(db)
		return nil, errors.Wrap(err, "failed to run auto-migration")
	}
	log.Debug("database migration completed")

	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SyncSequences moves the postgres message id sequence past the highest row
// id. Saves let the sequence assign row ids, so this only repairs tables that
// were written outside this package. Other dialects have nothing to sync.
func SyncSequences(db *gorm.DB, log *logrus.Entry) error {
	if db.Dialector.Name() != config.DriverPostgres {
		return nil
	}

	tables := []string{
		messageRow{}.TableName(),
	}

	for _, table := range tables {
		query := "SELECT setval(pg_get_serial_sequence('" + table + "', 'row_id'), coalesce(max(row_id), 0) + 1, false) FROM " + table
		if err := db.Exec(query).Error; err != nil {
			return errors.Wrapf(err, "failed to sync sequence for %s", table)
		}
		log.WithField("table", table).Debug("synced sequence")
	}
	return nil
}
