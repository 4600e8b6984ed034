package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Go(_ context.Context, path string) error {
	f.calls = append(f.calls, "go "+path)
	if path == "/login" {
		f.loggedIn = true
	}
	return nil
}
func (f *fakeExec) Status(context.Context) error { f.calls = append(f.calls, "status"); return nil }
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

// capturePrintln replaces printlnFn and returns everything printed.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, strings.TrimSpace(toString(a)))
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func TestRunREPL_DispatchesScreens(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"logout",
		"login",
		"profile",
		"l",
		"books",
		"addbook",
		"signup",
		"register",
		"go /books/new",
		"status",
		"logout",
		"exit",
		"home",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	assert.Equal(t, []string{
		"go /login",
		"go /profile",
		"go /",
		"go /",
		"go /books/new",
		"go /signup",
		"go /signup",
		"go /books/new",
		"status",
		"logout",
	}, exec.calls, "logout while anonymous is refused and nothing runs after exit")
}

func TestRunREPL_UsageUnknownAndEOF(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "[Home] Profile | logout" }, rdr("go\nfoobar\n\n"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Usage: go <path>")
	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "book [Home] Profile | logout >")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := capturePrintln(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, rdr("help\nquit\n"))
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "" }, rdr("help\nquit\n"))

	var help []string
	for _, l := range *lines {
		if strings.HasPrefix(l, "Available commands:") {
			help = append(help, l)
		}
	}
	if assert.Len(t, help, 2) {
		assert.Contains(t, help[0], "signup")
		assert.NotContains(t, help[0], "logout")
		assert.Contains(t, help[1], "logout")
	}
	assert.Contains(t, *lines, "Bye!")
}

func TestRunREPL_HelpListsScreens(t *testing.T) {
	lines := capturePrintln(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, rdr("help\nquit\n"))

	want := "Screens: / (Home) /login (Login) /signup (Sign Up) /profile (Profile, login required) /books/new (Add Book, login required)"
	assert.Contains(t, *lines, want)
}
