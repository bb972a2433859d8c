package contacts

import (
	"cli-contacts/internal/models"
)

// FindOne returns the first contact, in display order, whose name or phone is
// exactly query.
func (b *Book) FindOne(query string) *models.Contact {
	for _, c := range b.order {
		if c.Matches(query) {
			return c
		}
	}
	return nil
}

// FindAll returns every contact whose name or phone is exactly query.
func (b *Book) FindAll(query string) []*models.Contact {
	found := []*models.Contact{}
	for _, c := range b.order {
		if c.Matches(query) {
			found = append(found, c)
		}
	}
	return found
}
