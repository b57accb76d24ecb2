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

// readPassword is swapped in tests; the real one needs a TTY.
var readPassword = term.ReadPassword

// readLine returns one line without its line ending. A final line that is
// not newline-terminated still counts; io.EOF is returned only when
// nothing was read.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

// GetSimpleText shows prompt followed by a "> " marker on the next line and
// reads one trimmed answer.
func GetSimpleText(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n> ", prompt); err != nil {
		return "", err
	}
	line, err := readLine(r)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a secret from stdin with echo off. Wipe the result
// after use.
func GetPassword(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprintf(w, "%s: ", prompt); err != nil {
		return nil, err
	}
	secret, err := readPassword(int(os.Stdin.Fd()))
	_, _ = fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return secret, nil
}

// GetMultiline collects lines until a blank one or EOF.
func GetMultiline(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n(finish with an empty line)\n", prompt); err != nil {
		return "", err
	}
	var b strings.Builder
	for {
		line, err := readLine(r)
		if err != nil || line == "" {
			break
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return strings.TrimSpace(b.String()), nil
}
