package store

import (
	"context"
	"errors"

	"cli-contacts/internal/contacts"
	"cli-contacts/internal/models"

	"github.com/sirupsen/logrus"
)

// ErrMalformed is returned by Load when the persisted data cannot be parsed.
// The accompanying book is empty and usable.
var ErrMalformed = errors.New("persisted contacts are malformed")

type Store interface {
	// Load reads the full contact collection. A backend with nothing persisted
	// yet returns an empty book.
	Load(ctx context.Context) (*contacts.Book, error)

	// Save replaces everything persisted with the given book.
	Save(ctx context.Context, book *contacts.Book) error
}

// NewBook builds a book from loaded contacts. Nil entries are skipped, and of
// two contacts sharing a name only the first is kept.
func NewBook(list []*models.Contact, log *logrus.Entry) *contacts.Book {
	book := contacts.NewBook()
	for _, c := range list {
		if c == nil {
			log.Warn("skipping empty contact entry")
			continue
		}
		if err := book.Add(c); err != nil {
			log.WithError(err).WithField("name", c.Name).Warn("dropping duplicate contact")
		}
	}
	return book
}
