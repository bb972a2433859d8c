package database

import (
	"context"

	"cli-contacts/internal/contacts"
	"cli-contacts/internal/models"
	"cli-contacts/internal/store"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type sqlStore struct {
	db  *gorm.DB
	log *logrus.Entry
}

// NewStore returns a store.Store backed by the contacts and messages tables
func NewStore(db *gorm.DB, log *logrus.Entry) store.Store {
	return &sqlStore{
		db:  db,
		log: log.WithField("type", "store/database"),
	}
}

// Load implements store.Store.Load
func (s *sqlStore) Load(ctx context.Context) (*contacts.Book, error) {
	log := s.log.WithField("method", "Load")

	var rows []contactRow
	err := s.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query contacts")
	}

	list := make([]*models.Contact, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toModel())
	}

	book := store.NewBook(list, log)
	log.Debugf("loaded %d contacts", book.Len())
	return book, nil
}

// Save implements store.Store.Save. The tables are replaced in a single
// transaction, so a failed save leaves the previous contents.
func (s *sqlStore) Save(ctx context.Context, book *contacts.Book) error {
	log := s.log.WithField("method", "Save")

	rows := make([]contactRow, 0, book.Len())
	for i, c := range book.Contacts() {
		rows = append(rows, toRow(c, i))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})

		// SQLite does not enforce the cascade unless foreign keys are enabled
		if err := wipe.Delete(&messageRow{}).Error; err != nil {
			return err
		}
		if err := wipe.Delete(&contactRow{}).Error; err != nil {
			return err
		}

		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to save contacts")
	}

	log.Debugf("saved %d contacts", len(rows))
	return nil
}

func (s *sqlStore) reset() {
	wipe := s.db.Session(&gorm.Session{AllowGlobalUpdate: true})
	wipe.Delete(&messageRow{})
	wipe.Delete(&contactRow{})
}
