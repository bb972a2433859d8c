package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cli-contacts/internal/contacts"
	"cli-contacts/internal/models"
	"cli-contacts/internal/store"
)

func RunTests(t *testing.T, s store.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s store.Store){
		testEmptyLoad,
		testRoundTrip,
		testSaveOverwrites,
		testSaveEmptyBook,
		testMessageAppendPersists,
	} {
		tf(t, s)
		teardown()
	}
}

func testEmptyLoad(t *testing.T, s store.Store) {
	t.Run("testEmptyLoad", func(t *testing.T) {
		book, err := s.Load(context.Background())
		require.NoError(t, err)
		require.NotNil(t, book)
		assert.Equal(t, 0, book.Len())
	})
}

func testRoundTrip(t *testing.T, s store.Store) {
	t.Run("testRoundTrip", func(t *testing.T) {
		ctx := context.Background()

		book := contacts.NewBook()
		alice := models.NewContact("Alice", "a@x.com", "555")
		bob := models.NewContact("Bob", "", "556")
		zed := models.NewContact("Zed", "z@x.com", "")
		require.NoError(t, book.Add(zed))
		require.NoError(t, book.Add(alice))
		require.NoError(t, book.Add(bob))
		book.Send(alice, "hi")
		book.Send(alice, "hi")
		book.Send(bob, "it's, \"quoted\"")

		require.NoError(t, s.Save(ctx, book))

		loaded, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, Snapshot(book), Snapshot(loaded))
	})
}

func testSaveOverwrites(t *testing.T, s store.Store) {
	t.Run("testSaveOverwrites", func(t *testing.T) {
		ctx := context.Background()

		book := contacts.NewBook()
		require.NoError(t, book.Add(models.NewContact("Alice", "a@x.com", "555")))
		require.NoError(t, book.Add(models.NewContact("Bob", "b@x.com", "556")))
		require.NoError(t, s.Save(ctx, book))

		_, ok := book.Remove(book.Get("Alice"))
		require.True(t, ok)
		require.NoError(t, book.Add(models.NewContact("Carol", "c@x.com", "557")))
		require.NoError(t, s.Save(ctx, book))

		loaded, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, Snapshot(book), Snapshot(loaded))
		assert.Nil(t, loaded.Get("Alice"))
	})
}

func testSaveEmptyBook(t *testing.T, s store.Store) {
	t.Run("testSaveEmptyBook", func(t *testing.T) {
		ctx := context.Background()

		book := contacts.NewBook()
		require.NoError(t, book.Add(models.NewContact("Alice", "a@x.com", "555")))
		require.NoError(t, s.Save(ctx, book))
		require.NoError(t, s.Save(ctx, contacts.NewBook()))

		loaded, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, loaded.Len())
	})
}

func testMessageAppendPersists(t *testing.T, s store.Store) {
	t.Run("testMessageAppendPersists", func(t *testing.T) {
		ctx := context.Background()

		book := contacts.NewBook()
		require.NoError(t, book.Add(models.NewContact("Alice", "a@x.com", "555")))
		require.NoError(t, s.Save(ctx, book))

		loaded, err := s.Load(ctx)
		require.NoError(t, err)
		alice := loaded.FindOne("555")
		require.NotNil(t, alice)
		loaded.Send(alice, "first")
		loaded.Send(alice, "second")
		require.NoError(t, s.Save(ctx, loaded))

		reloaded, err := s.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, reloaded.Get("Alice"))
		assert.Equal(t, []models.Message{
			{Text: "first", Recipient: "Alice", ID: 0},
			{Text: "second", Recipient: "Alice", ID: 1},
		}, reloaded.Get("Alice").Messages)
	})
}

// Snapshot copies the book's contacts by value, in display order.
func Snapshot(book *contacts.Book) []models.Contact {
	out := []models.Contact{}
	for _, c := range book.Contacts() {
		copied := *c
		copied.Messages = append([]models.Message{}, c.Messages...)
		out = append(out, copied)
	}
	return out
}
