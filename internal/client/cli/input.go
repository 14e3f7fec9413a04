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

// termReadPassword reads without echo; tests replace it.
var termReadPassword = term.ReadPassword

const blockHint = "(finish with an empty line)"

// ReadField asks for one value, such as an email or an idea title, and
// returns the answer with surrounding blanks removed. A last line without a
// newline still counts as an answer.
func ReadField(reader *bufio.Reader, label string, w io.Writer) (string, error) {
	fmt.Fprintf(w, "%s: ", label)

	line, err := reader.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	default:
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadSecret asks for the account password on the terminal. The caller
// wipes the returned slice once it has been sent.
func ReadSecret(w io.Writer) ([]byte, error) {
	fmt.Fprint(w, "Password: ")
	pw, err := termReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return pw, nil
}

// ReadText collects a free-form block, an idea description or a progress
// note, and joins its lines with '\n'.
func ReadText(reader *bufio.Reader, label string, w io.Writer) (string, error) {
	lines, err := readBlock(reader, label, w)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// ReadFields collects profile lines in "name=value" form. Lines are returned
// as typed, parseProfile validates them.
func ReadFields(reader *bufio.Reader, label string, w io.Writer) ([]string, error) {
	return readBlock(reader, label, w)
}

// readBlock reads lines until an empty one or the end of input. Only line
// endings are stripped.
func readBlock(reader *bufio.Reader, label string, w io.Writer) ([]string, error) {
	fmt.Fprintf(w, "%s %s\n", label, blockHint)

	lines := []string{}
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			lines = append(lines, line)
		}
		if err != nil || line == "" {
			return lines, nil
		}
	}
}
