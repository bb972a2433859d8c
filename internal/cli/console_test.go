package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolePrompt(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("  Alice \r\n"), out)

	input, err := c.Prompt("Who?")
	require.NoError(t, err)
	assert.Equal(t, "Alice", input)
	assert.Equal(t, "Who?\n> ", out.String())

	_, err = c.Prompt("Again?")
	assert.ErrorIs(t, err, io.EOF)
}

func TestConsoleChoose(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("2\n"), out)

	input, err := c.Choose("One", "Two")
	require.NoError(t, err)
	assert.Equal(t, "2", input)
	assert.Equal(t, "\n1. One\n2. Two\n> ", out.String())
}

func TestConsoleLastLineWithoutNewline(t *testing.T) {
	c := NewConsole(strings.NewReader("first\nlast"), &bytes.Buffer{})

	input, err := c.Prompt("")
	require.NoError(t, err)
	assert.Equal(t, "first", input)

	input, err = c.Prompt("")
	require.NoError(t, err)
	assert.Equal(t, "last", input)
}

func TestConsoleLongLine(t *testing.T) {
	long := strings.Repeat("x", 70000)
	c := NewConsole(strings.NewReader(long+"\nnext\n"), &bytes.Buffer{})

	input, err := c.Prompt("")
	require.NoError(t, err)
	assert.Equal(t, long, input)

	input, err = c.Prompt("")
	require.NoError(t, err)
	assert.Equal(t, "next", input)
}
