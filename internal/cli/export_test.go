package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cli-contacts/internal/contacts"
	"cli-contacts/internal/models"
)

func TestExportContacts(t *testing.T) {
	alice := models.NewContact("Alice", "a@x.com", "555")
	book := bookWith(t,
		alice,
		models.NewContact("Smith, Bob", "b@x.com", "556"),
	)
	book.Send(alice, "hi")
	book.Send(alice, "there")

	out := &bytes.Buffer{}
	require.NoError(t, ExportContacts(out, book))
	assert.Equal(t, "Name,Email,Phone,Messages\n"+
		"Alice,a@x.com,555,2\n"+
		"\"Smith, Bob\",b@x.com,556,0\n", out.String())
}

func TestExportContactsEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, ExportContacts(out, contacts.NewBook()))
	assert.Equal(t, "Name,Email,Phone,Messages\n", out.String())
}
