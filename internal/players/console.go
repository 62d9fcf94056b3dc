// Package players provides the move sources that stand in for the people
// and programs sitting at a game.
package players

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/boardwalk/internal/engine"
)

// DefaultPrompt is written before every console read
const DefaultPrompt = "Your move: "

// Console reads one move per line from a reader, typically stdin
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	prompt string
}

// NewConsole creates a Console that prompts on out and reads from in
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
		prompt: DefaultPrompt,
	}
}

// WithPrompt replaces the prompt text
func (c *Console) WithPrompt(prompt string) *Console {
	c.prompt = prompt
	return c
}

// NextMove prompts and blocks until a line is read. Lines of any length are
// returned whole, and a final line without a newline still counts. The read
// itself cannot be interrupted; ctx is only checked before prompting.
func (c *Console) NextMove(ctx context.Context, turn engine.Turn) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(c.out, c.prompt)

	line, err := c.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("read move: %w", err)
	}
	return strings.TrimSpace(line), nil
}

var _ engine.MoveSource = (*Console)(nil)
