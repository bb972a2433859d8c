package contacts

import (
	"strings"

	"cli-contacts/internal/models"
)

// ParseContact reads a "name, email, phone" line. Each field is trimmed and
// anything after the third field is ignored. The name must not be empty.
func ParseContact(line string) (*models.Contact, error) {
	info := strings.Split(line, ",")
	if len(info) < 3 {
		return nil, ErrInvalidInfo
	}

	name := strings.TrimSpace(info[0])
	if name == "" {
		return nil, ErrEmptyName
	}

	return models.NewContact(name, strings.TrimSpace(info[1]), strings.TrimSpace(info[2])), nil
}
