package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/cush-shell/cush/core/vos"
)

// LineReader is the front end that gets raw lines from the user.
type LineReader interface {
	// ReadLine shows prompt, if it's not empty, and reads one line without its
	// trailing newline. It returns io.EOF when input is exhausted.
	ReadLine(prompt string) (string, error)

	// Remember offers a recorded line to the front end's own recall buffer.
	Remember(line string)
}

// ReadlineReader reads from a terminal with line editing.
type ReadlineReader struct {
	Instance *readline.Instance
}

var _ LineReader = (*ReadlineReader)(nil)

// NewReadlineReader creates a terminal line editor on vio. Readline only
// recalls lines the shell actually recorded, so "!!" is never offered back
// verbatim.
func NewReadlineReader(vio vos.VIO) (*ReadlineReader, error) {
	cfg := &readline.Config{
		Stdin:                  readline.NewCancelableStdin(vio.Stdin()),
		Stdout:                 vio.Stdout(),
		Stderr:                 vio.Stderr(),
		DisableAutoSaveHistory: true,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &ReadlineReader{Instance: rl}, nil
}

// ReadLine implements LineReader.ReadLine.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.Instance.SetPrompt(prompt)
	return r.Instance.Readline()
}

// Remember implements LineReader.Remember.
func (r *ReadlineReader) Remember(line string) {
	// Recall is a convenience, a failure here doesn't affect the shell.
	_ = r.Instance.SaveHistory(line)
}

// Close releases the terminal.
func (r *ReadlineReader) Close() error {
	return r.Instance.Close()
}

// BufferedReader reads newline separated lines from a plain stream such as
// a pipe or a -c argument.
type BufferedReader struct {
	in  *bufio.Reader
	out io.Writer
}

var _ LineReader = (*BufferedReader)(nil)

// NewBufferedReader reads lines from in, prompts are written to out. A nil
// out discards prompts.
func NewBufferedReader(in io.Reader, out io.Writer) *BufferedReader {
	if out == nil {
		out = io.Discard
	}
	return &BufferedReader{in: bufio.NewReader(in), out: out}
}

// ReadLine implements LineReader.ReadLine.
func (b *BufferedReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(b.out, prompt)
	}

	line, err := b.in.ReadString('\n')
	switch {
	case err == io.EOF && line != "":
		// Final line without a newline, EOF comes on the next call.
	case err != nil:
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Remember implements LineReader.Remember.
func (*BufferedReader) Remember(string) {}
