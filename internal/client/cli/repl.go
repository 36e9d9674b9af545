package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL drives. App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Forgot(ctx context.Context) error
	Reset(ctx context.Context) error
	Login(ctx context.Context) error
	Change(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a.
// It returns on EOF, on "exit"/"quit", or when ctx is cancelled.
// Handler errors are already reported to the user and are not fatal.
//
//	Not logged in: help, forgot, reset, login, exit
//	Logged in:     help, change, logout, forgot, reset, exit
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(w, "gp%s> ", statusFn())
		line, err := r.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: change, logout, forgot, reset, exit")
			} else {
				fmt.Fprintln(w, "Available commands: forgot, reset, login, exit")
			}
		case "forgot":
			_ = a.Forgot(ctx)
		case "reset":
			_ = a.Reset(ctx)
		case "login":
			_ = a.Login(ctx)
		case "change":
			_ = a.Change(ctx)
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
