package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// SecretPrompter reads secret values from the user. When the input is a
// terminal, typing is hidden; otherwise one line is read per prompt, which
// lets secrets be piped in.
type SecretPrompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// NewSecretPrompter returns a prompter reading from in and writing prompts to out.
func NewSecretPrompter(in io.Reader, out io.Writer) *SecretPrompter {
	return &SecretPrompter{in: in, out: out, reader: bufio.NewReader(in)}
}

// Prompt writes prompt and returns the value entered, without its line ending.
func (p *SecretPrompter) Prompt(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	if fd, ok := terminalFd(p.in); ok {
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out) // Add newline after hidden input
		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}
		return string(secret), nil
	}

	line, err := ReadLine(p.reader)
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return line, nil
}

// terminalFd returns the descriptor of in when it is an interactive terminal.
func terminalFd(in io.Reader) (int, bool) {
	f, ok := in.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}
