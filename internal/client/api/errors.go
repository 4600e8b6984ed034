package api

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrijs2005/bookapp/internal/common"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrUnexpected  = errors.New("unexpected server response")
)

// Error is a normalized backend failure.
type Error struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string {
	msgs := e.Messages()
	if len(msgs) == 0 {
		return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api: %d: %s", e.Status, strings.Join(msgs, "; "))
}

// Is matches ErrUnexpected when the payload carried nothing usable and
// common.ErrUnauthorized on 401.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnexpected:
		return e.Message == "" && len(e.Fields) == 0
	case common.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	}
	return false
}

// Messages flattens the payload: Message first, then field messages ordered
// by field name.
func (e *Error) Messages() []string {
	var out []string
	if e.Message != "" {
		out = append(out, e.Message)
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		out = append(out, e.Fields[k]...)
	}
	return out
}

// messageKeys hold the top-level message; every other key is a field.
var messageKeys = []string{"error", "detail"}

// newError builds an *Error from a decoded JSON object. Values that are
// neither a string nor a list of strings are ignored.
func newError(status int, payload map[string]any) *Error {
	e := &Error{Status: status}
	for key, raw := range payload {
		msgs := stringsOf(raw)
		if len(msgs) == 0 {
			continue
		}
		if slices.Contains(messageKeys, key) {
			if e.Message == "" || key == "error" {
				e.Message = strings.Join(msgs, " ")
			}
			continue
		}
		if e.Fields == nil {
			e.Fields = make(map[string][]string)
		}
		e.Fields[key] = msgs
	}
	return e
}

func stringsOf(v any) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		var out []string
		for _, item := range t {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
