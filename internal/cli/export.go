package cli

import (
	"encoding/csv"
	"io"
	"strconv"

	"cli-contacts/internal/contacts"

	"github.com/pkg/errors"
)

var exportHeader = []string{"Name", "Email", "Phone", "Messages"}

// ExportContacts writes the book as CSV, one row per contact in display order
func ExportContacts(w io.Writer, book *contacts.Book) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}

	for _, c := range book.Contacts() {
		record := []string{c.Name, c.Email, c.Phone, strconv.Itoa(len(c.Messages))}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "failed to write csv row for %s", c.Name)
		}
	}

	writer.Flush()
	return writer.Error()
}
