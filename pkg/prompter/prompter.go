// Package prompter reads interactive input for commands that compose
// posts, comments and credentials.
package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// Prompter reads user input from in and writes prompts to out.
type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	terminal bool
}

// New returns a prompter bound to stdin and stdout.
func New() *Prompter {
	return &Prompter{in: bufio.NewReader(os.Stdin), out: os.Stdout, terminal: true}
}

// NewWithStreams returns a prompter bound to the given streams.
// Passwords are read as plain lines since in is not a terminal.
func NewWithStreams(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// String prompts for a single line of input.
func (p *Prompter) String(label string) (string, error) {
	fmt.Fprint(p.out, label)
	input, err := p.in.ReadString('\n')
	if err != nil && input == "" {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// Password prompts for a password without echoing. Falls back to a
// plain line read when stdin is not a terminal.
func (p *Prompter) Password(label string) (string, error) {
	fmt.Fprint(p.out, label)

	if p.terminal && term.IsTerminal(int(syscall.Stdin)) {
		bytepw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(bytepw), nil
	}

	input, err := p.in.ReadString('\n')
	if err != nil && input == "" {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// Confirm prompts for a yes/no answer.
func (p *Prompter) Confirm(label string) (bool, error) {
	fmt.Fprint(p.out, label+" (y/n) ")
	input, err := p.in.ReadString('\n')
	if err != nil && input == "" {
		return false, err
	}
	response := strings.TrimSpace(strings.ToLower(input))
	return response == "y" || response == "yes", nil
}

// Select prompts the user to pick one of options, returning its index.
func (p *Prompter) Select(label string, options []string) (int, error) {
	fmt.Fprintln(p.out, label)
	for i, opt := range options {
		fmt.Fprintf(p.out, "%d) %s\n", i+1, opt)
	}
	fmt.Fprint(p.out, "Select option: ")

	input, err := p.in.ReadString('\n')
	if err != nil && input == "" {
		return -1, err
	}

	var selection int
	if _, err := fmt.Sscanf(strings.TrimSpace(input), "%d", &selection); err != nil {
		return -1, err
	}
	if selection < 1 || selection > len(options) {
		return -1, fmt.Errorf("invalid selection")
	}
	return selection - 1, nil
}

// Multiline prompts for input terminated by an empty line.
func (p *Prompter) Multiline(label string) (string, error) {
	fmt.Fprintf(p.out, "%s (finish with an empty line):\n", label)

	var lines []string
	for {
		line, err := p.in.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "" {
			break
		}
		lines = append(lines, trimmed)
		if err != nil {
			break
		}
	}

	return strings.Join(lines, "\n"), nil
}
