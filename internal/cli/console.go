package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const promptMarker = "> "

// Console implements the prompt protocol: a message, the "> " marker, then
// one trimmed line of input.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Prompt prints msg and reads the answer
func (c *Console) Prompt(msg string) (string, error) {
	c.Println(msg)
	return c.readLine()
}

// Choose prints the numbered choices, starting at 1, and reads the selection.
// The selection is returned as typed; mapping it is up to the caller.
func (c *Console) Choose(choices ...string) (string, error) {
	c.Println()
	for i, choice := range choices {
		c.Printf("%d. %s\n", i+1, choice)
	}
	return c.readLine()
}

// readLine returns io.EOF once input is exhausted. Lines have no length limit.
func (c *Console) readLine() (string, error) {
	fmt.Fprint(c.out, promptMarker)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
