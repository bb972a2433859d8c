package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cli-contacts/internal/config"
	"cli-contacts/internal/contacts"
	"cli-contacts/internal/models"
	"cli-contacts/internal/store/tests"
)

func TestShowMessages(t *testing.T) {
	app, out := newTestApp(&config.Config{}, &memoryStore{}, contacts.NewBook(), "")
	app.ShowMessages()
	assert.Equal(t, "No messages found!\n", out.String())

	alice := models.NewContact("Alice", "", "555")
	bob := models.NewContact("Bob", "", "556")
	same := models.Message{Text: "hi", Recipient: "Alice", ID: 0}
	alice.Messages = []models.Message{same}
	bob.Messages = []models.Message{same}

	app, out = newTestApp(&config.Config{}, &memoryStore{}, bookWith(t, alice, bob), "")
	app.ShowMessages()
	assert.Equal(t, "Found 2 messages: \n"+
		"1. Contact Name: Alice\n   Message: 'hi'\n\n"+
		"2. Contact Name: Alice\n   Message: 'hi'\n\n", out.String())
}

func TestSendMessage(t *testing.T) {
	st := &memoryStore{}
	book := bookWith(t,
		models.NewContact("Alice", "a@x.com", "555"),
		models.NewContact("Bob", "b@x.com", "556"),
	)

	app, out := newTestApp(&config.Config{}, st, book, "556\nhello there\n")
	require.NoError(t, app.SendMessage(context.Background()))
	assert.Equal(t, "Enter recipient name or phone number\n> Enter message to send\n> Message sent successfully!\n", out.String())

	app, _ = newTestApp(&config.Config{}, st, book, "Bob\nagain\n")
	require.NoError(t, app.SendMessage(context.Background()))

	assert.Equal(t, []models.Message{
		{Text: "hello there", Recipient: "Bob", ID: 0},
		{Text: "again", Recipient: "Bob", ID: 1},
	}, book.Get("Bob").Messages)
	assert.Empty(t, book.Get("Alice").Messages)
	assert.Equal(t, 2, st.saves)
	assert.Equal(t, tests.Snapshot(book), st.saved)
}

func TestSendLongMessage(t *testing.T) {
	st := &memoryStore{}
	book := bookWith(t, models.NewContact("Alice", "a@x.com", "555"))
	text := strings.Repeat("a", 70000)

	app, out := newTestApp(&config.Config{}, st, book, "2\n2\nAlice\n"+text+"\n3\n3\n")
	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Message sent successfully!")

	require.Len(t, book.Get("Alice").Messages, 1)
	assert.Equal(t, text, book.Get("Alice").Messages[0].Text)
	assert.Equal(t, 1, st.saves)
}

func TestSendMessageUnknownRecipient(t *testing.T) {
	st := &memoryStore{}
	book := bookWith(t, models.NewContact("Alice", "a@x.com", "555"))
	before := tests.Snapshot(book)

	app, out := newTestApp(&config.Config{}, st, book, "Nobody\n")
	require.NoError(t, app.SendMessage(context.Background()))
	assert.Contains(t, out.String(), "No contacts found.")
	assert.NotContains(t, out.String(), "Enter message to send")
	assert.Equal(t, before, tests.Snapshot(book))
	assert.Zero(t, st.saves)
}

func TestSendMessageRollsBackOnSaveFailure(t *testing.T) {
	st := &memoryStore{saveErr: errors.New("read-only")}
	alice := models.NewContact("Alice", "a@x.com", "555")
	alice.Messages = []models.Message{{Text: "old", Recipient: "Alice", ID: 0}}
	book := bookWith(t, alice)

	app, out := newTestApp(&config.Config{}, st, book, "Alice\nnew\n")
	require.NoError(t, app.SendMessage(context.Background()))
	assert.Contains(t, out.String(), "ERR couldn't save contacts")
	assert.NotContains(t, out.String(), "Message sent successfully!")
	assert.Equal(t, []models.Message{{Text: "old", Recipient: "Alice", ID: 0}}, book.Get("Alice").Messages)
}
