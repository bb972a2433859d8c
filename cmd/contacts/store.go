package main

import (
	"cli-contacts/internal/config"
	"cli-contacts/internal/database"
	"cli-contacts/internal/store"
	"cli-contacts/internal/store/jsonfile"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// openStore returns the backend named by cfg.StoreDriver and a func releasing it
func openStore(cfg *config.Config, log *logrus.Entry) (store.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverJSON:
		return jsonfile.New(cfg.ContactsFile, log), func() {}, nil
	case config.DriverSQLite, config.DriverPostgres:
		db, err := database.Open(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if err := database.Close(db); err != nil {
				log.WithError(err).Warn("failed to close database")
			}
		}
		return database.NewStore(db, log), closeDB, nil
	default:
		return nil, nil, errors.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
