package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cli-contacts/internal/models"
)

func TestFindOne(t *testing.T) {
	b := newTestBook(t)

	for _, tc := range []struct {
		query    string
		expected string
	}{
		{"Alice", "Alice"},
		{"556", "Bob"},
		{"Carol", "Carol"},
	} {
		found := b.FindOne(tc.query)
		require.NotNil(t, found, tc.query)
		assert.Equal(t, tc.expected, found.Name)
	}

	for _, query := range []string{"alice", "Ali", "55", "a@x.com", "", " Alice"} {
		assert.Nil(t, b.FindOne(query), query)
	}
}

func TestFindOneReturnsFirstInOrder(t *testing.T) {
	b := NewBook()
	require.NoError(t, b.Add(models.NewContact("Alice", "", "100")))
	require.NoError(t, b.Add(models.NewContact("Bob", "", "Alice")))

	found := b.FindOne("Alice")
	require.NotNil(t, found)
	assert.Equal(t, "Alice", found.Name)
}

func TestFindAll(t *testing.T) {
	b := NewBook()
	require.NoError(t, b.Add(models.NewContact("Alice", "", "100")))
	require.NoError(t, b.Add(models.NewContact("Bob", "", "100")))
	require.NoError(t, b.Add(models.NewContact("Carol", "", "200")))

	assert.Equal(t, []string{"Alice", "Bob"}, names(b.FindAll("100")))
	assert.Equal(t, []string{"Carol"}, names(b.FindAll("Carol")))

	none := b.FindAll("300")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestLookupOnEmptyBook(t *testing.T) {
	b := NewBook()
	assert.Nil(t, b.FindOne("Alice"))
	assert.Empty(t, b.FindAll("Alice"))
}
