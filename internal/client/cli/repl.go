package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Exec(ctx context.Context, name string, args []string) error
}

// runREPL starts a simple read–eval–print loop for the founderhub CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches it through a.Exec. "help" lists the commands available in the
// current state; "exit" and "quit" leave the loop, as do EOF and the end of
// ctx. Errors returned by commands are printed as "error: ..." and the loop
// keeps running.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for ctx.Err() == nil {
		fmt.Fprintf(w, "founderhub %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			fmt.Fprint(w, helpText(a.isLoggedIn()))

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			if err := a.Exec(ctx, cmd, parts[1:]); err != nil {
				if errors.Is(err, errUnknownCommand) {
					fmt.Fprintln(w, "Unknown command:", cmd)
					continue
				}
				fmt.Fprintln(w, "error:", err)
			}
		}
	}
}

// helpText lists the commands usable in the given state.
func helpText(loggedIn bool) string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, c := range commands {
		if c.auth != loggedIn && !c.always {
			continue
		}
		fmt.Fprintf(&b, "  %-32s %s\n", c.usage, c.summary)
	}
	fmt.Fprintf(&b, "  %-32s %s\n", "help", "show this list")
	fmt.Fprintf(&b, "  %-32s %s\n", "exit | quit", "leave the program")
	return b.String()
}
