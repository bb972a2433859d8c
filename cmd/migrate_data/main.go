package main

import (
	"context"
	"os"

	"cli-contacts/internal/config"
	"cli-contacts/internal/database"
	"cli-contacts/internal/store/jsonfile"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetLevel(logrus.DebugLevel)
	log := logrus.StandardLogger().WithField("type", "cmd/migrate_data")

	if err := migrate(context.Background(), config.LoadConfig(), log); err != nil {
		log.WithError(err).Error("migration failed")
		os.Exit(1)
	}
	log.Info("migration completed")
}

// migrate copies the JSON contacts file into the SQL backend named by
// STORE_DRIVER, replacing whatever the tables held.
func migrate(ctx context.Context, cfg *config.Config, log *logrus.Entry) error {
	if cfg.StoreDriver != config.DriverSQLite && cfg.StoreDriver != config.DriverPostgres {
		return errors.Errorf("STORE_DRIVER must be %s or %s, got %q", config.DriverSQLite, config.DriverPostgres, cfg.StoreDriver)
	}

	// 1. Read the JSON file (source)
	source := jsonfile.New(cfg.ContactsFile, log)
	book, err := source.Load(ctx)
	if err != nil {
		// An empty fallback book would wipe the destination
		return errors.Wrap(err, "failed to read source")
	}
	log.WithField("path", cfg.ContactsFile).Infof("read %d contacts", book.Len())

	// 2. Connect to the SQL backend (destination)
	db, err := database.Open(cfg, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	// 3. Copy in one transaction
	if err := database.NewStore(db, log).Save(ctx, book); err != nil {
		return errors.Wrap(err, "failed to write destination")
	}
	log.WithField("driver", cfg.StoreDriver).Infof("wrote %d contacts, %d messages", book.Len(), len(book.Messages()))

	// 4. Postgres sequences lag behind a bulk insert
	return database.SyncSequences(db, log)
}
