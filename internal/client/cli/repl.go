package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bookapp/internal/client/router"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Go(ctx context.Context, path string) error
	Status(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from reader until EOF or "exit"/"quit".
//
// Screen commands navigate through the router, so protected screens are
// guarded the same way however they are reached:
//
//	home | books | l | list   home screen (book list when logged in)
//	login                      login form
//	signup | register          registration form
//	profile                    user profile (protected)
//	addbook                    add a book (protected)
//	go <path>                  navigate to any path
//	status                     session details
//	logout                     end the session (asks first)
//	help                       show available commands
//	exit | quit                leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("book %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, (l)ist, profile, addbook, status, go <path>, logout, exit")
			} else {
				printlnFn("Available commands: home, login, signup, status, go <path>, exit")
			}
			printlnFn(screensLine())

		case "home", "books", "l", "list":
			_ = a.Go(ctx, "/")

		case "login":
			_ = a.Go(ctx, "/login")

		case "signup", "register":
			_ = a.Go(ctx, "/signup")

		case "profile":
			_ = a.Go(ctx, "/profile")

		case "addbook":
			_ = a.Go(ctx, "/books/new")

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <path>")
				continue
			}
			_ = a.Go(ctx, args[0])

		case "status":
			_ = a.Status(ctx)

		case "logout":
			if !a.isLoggedIn() {
				printlnFn("Not logged in.")
				continue
			}
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// screensLine lists the paths accepted by "go". Protected screens are marked.
func screensLine() string {
	var b strings.Builder
	b.WriteString("Screens:")
	for _, r := range router.Routes() {
		fmt.Fprintf(&b, " %s (%s", r.Path, r.Title)
		if r.Protected {
			b.WriteString(", login required")
		}
		b.WriteString(")")
	}
	return b.String()
}
