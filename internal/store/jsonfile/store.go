package jsonfile

import (
	"context"
	"encoding/json"
	"os"

	"cli-contacts/internal/contacts"
	"cli-contacts/internal/models"
	"cli-contacts/internal/store"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const emptyCollection = "[]"

type jsonStore struct {
	path string
	log  *logrus.Entry
}

// New returns a store.Store backed by a single JSON file at path
func New(path string, log *logrus.Entry) store.Store {
	return &jsonStore{
		path: path,
		log:  log.WithField("type", "store/jsonfile"),
	}
}

// Load implements store.Store.Load. A missing file is created holding an empty
// array. Content that does not parse yields an empty book together with an
// error wrapping store.ErrMalformed; the file itself is not touched.
func (s *jsonStore) Load(ctx context.Context) (*contacts.Book, error) {
	log := s.log.WithFields(logrus.Fields{
		"method": "Load",
		"path":   s.path,
	})

	_, err := os.Stat(s.path)
	if os.IsNotExist(err) {
		log.Debug("no contacts file exists, creating one")
		if err := os.WriteFile(s.path, []byte(emptyCollection), 0o644); err != nil {
			return nil, errors.Wrapf(err, "failed to create %s", s.path)
		}
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %s", s.path)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", s.path)
	}

	var list []*models.Contact
	if err := json.Unmarshal(data, &list); err != nil {
		log.WithError(err).Debug("contacts file does not parse")
		return contacts.NewBook(), errors.Wrapf(store.ErrMalformed, "%s: %v", s.path, err)
	}

	book := store.NewBook(list, log)
	log.Debugf("loaded %d contacts", book.Len())
	return book, nil
}

// Save implements store.Store.Save by overwriting the whole file
func (s *jsonStore) Save(ctx context.Context, book *contacts.Book) error {
	log := s.log.WithFields(logrus.Fields{
		"method": "Save",
		"path":   s.path,
	})

	data, err := json.MarshalIndent(book.Contacts(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode contacts")
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", s.path)
	}

	log.Debugf("saved %d contacts", book.Len())
	return nil
}

func (s *jsonStore) reset() {
	os.Remove(s.path)
}
