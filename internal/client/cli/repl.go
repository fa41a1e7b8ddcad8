package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Home(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Storage(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on a. The loop exits on EOF or when the user types
// "exit" or "quit".
//
//	Signed out:
//	  - help               show available commands
//	  - login              sign in
//	  - signup | register  create an account
//	  - storage            show the persisted session
//	  - exit | quit        leave the program
//
//	Signed in:
//	  - help, home, dashboard, storage, logout, exit | quit
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "authflow (%s)> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
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
			if a.isLoggedIn(ctx) {
				fmt.Fprintln(w, "Available commands: home, dashboard, storage, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, signup, storage, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup", "register":
			_ = a.Signup(ctx)

		case "home":
			_ = a.Home(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "storage":
			_ = a.Storage(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
