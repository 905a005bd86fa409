package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxLineBytes is the longest answer the prompter accepts.
const MaxLineBytes = 1 << 20

// ErrInputUnreadable means no further answer can be read, for example after
// a line longer than MaxLineBytes.
var ErrInputUnreadable = errors.New("input unreadable")

// Prompter reads one answer per line from in and echoes labels to out.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineBytes)

	return &Prompter{
		in:  scanner,
		out: out,
	}
}

// Writer is where handlers render their results.
func (p *Prompter) Writer() io.Writer {
	return p.out
}

// Ask prints label and returns the trimmed answer. io.EOF means input is
// closed; ErrInputUnreadable means the scanner gave up and every later call
// fails the same way.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", ErrInputUnreadable, err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) AskInt(label string) (int, error) {
	answer, err := p.Ask(label)
	if err != nil {
		return 0, err
	}
	return ParseInt(answer)
}

func (p *Prompter) AskID(label string) (int64, error) {
	answer, err := p.Ask(label)
	if err != nil {
		return 0, err
	}
	return ParseID(answer)
}

// InputClosed reports whether err means no more answers can be read.
func InputClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, ErrInputUnreadable)
}
