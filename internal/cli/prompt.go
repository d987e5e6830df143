package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user for a single line of input.
type Prompter interface {
	Prompt(label string) (string, error)
}

// LinePrompter prints the label and reads one line from a plain reader.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.out, label)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %w", ErrInputRead, err)
		}
	}
	return strings.TrimRight(input, "\r\n"), nil
}

// newPrompter picks the interactive prompter when in is a terminal.
func newPrompter(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return &TerminalPrompter{in: in, out: out}
	}
	return NewLinePrompter(in, out)
}
