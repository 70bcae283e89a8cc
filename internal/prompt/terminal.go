package prompt

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

// KeyReader delivers single keystrokes without waiting for enter.
// The terminal implementation below puts stdin in raw mode per read;
// tests use scripted fakes.
type KeyReader interface {
	ReadKey() (rune, error)
}

// TerminalKeyReader reads keystrokes from a terminal file in raw mode
type TerminalKeyReader struct {
	in *os.File
}

// NewTerminalKeyReader reads from stdin
func NewTerminalKeyReader() *TerminalKeyReader {
	return &TerminalKeyReader{in: os.Stdin}
}

// ReadKey switches the terminal to raw mode, reads one keystroke and
// restores the previous mode before returning
func (r *TerminalKeyReader) ReadKey() (rune, error) {
	fd := int(r.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return 0, fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 4)
	n, err := r.in.Read(buf)
	if err != nil {
		return 0, fmt.Errorf("reading key: %w", err)
	}
	key, _ := utf8.DecodeRune(buf[:n])
	return key, nil
}
