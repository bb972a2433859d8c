package contacts

import (
	"errors"

	"cli-contacts/internal/models"
)

var (
	ErrDuplicateName = errors.New("contact with that name already exists")
	ErrEmptyName     = errors.New("contact name can't be empty")
	ErrInvalidInfo   = errors.New("expected name, email and phone separated by commas")
)

// Book is the in-memory contact collection. Contacts are keyed by name and
// listed in insertion order.
type Book struct {
	byName map[string]*models.Contact
	order  []*models.Contact
}

func NewBook() *Book {
	return &Book{
		byName: make(map[string]*models.Contact),
	}
}

func (b *Book) Len() int {
	return len(b.order)
}

// Contacts returns the contacts in display order. The slice is a copy, the
// contacts are not.
func (b *Book) Contacts() []*models.Contact {
	out := make([]*models.Contact, len(b.order))
	copy(out, b.order)
	return out
}

// Get returns the contact with exactly this name, or nil
func (b *Book) Get(name string) *models.Contact {
	return b.byName[name]
}

// Add appends the contact. Names are unique.
func (b *Book) Add(c *models.Contact) error {
	return b.Insert(len(b.order), c)
}

// Insert places the contact at index, clamped to the valid range. It is used
// to put a removed contact back where it was.
func (b *Book) Insert(index int, c *models.Contact) error {
	if _, exists := b.byName[c.Name]; exists {
		return ErrDuplicateName
	}
	if c.Messages == nil {
		c.Messages = []models.Message{}
	}

	if index < 0 {
		index = 0
	}
	if index > len(b.order) {
		index = len(b.order)
	}

	b.order = append(b.order, nil)
	copy(b.order[index+1:], b.order[index:])
	b.order[index] = c
	b.byName[c.Name] = c
	return nil
}

// Remove deletes the contact with c's name and returns the position it held.
func (b *Book) Remove(c *models.Contact) (int, bool) {
	if _, exists := b.byName[c.Name]; !exists {
		return -1, false
	}

	for i, existing := range b.order {
		if existing.Name == c.Name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			delete(b.byName, c.Name)
			return i, true
		}
	}
	return -1, false
}
