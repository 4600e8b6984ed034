package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/dmitrijs2005/bookapp/internal/client/session"
)

// getStatus renders the navigation bar for the prompt, e.g.
// "[Home] Profile | logout".
func (a *App) getStatus() string {
	st := a.navState()
	parts := make([]string, 0, len(st.Tabs))
	for _, t := range st.Tabs {
		if t.Path == st.Active {
			parts = append(parts, "["+t.Label+"]")
		} else {
			parts = append(parts, t.Label)
		}
	}
	s := strings.Join(parts, " ")
	if st.ShowLogout {
		s += " | logout"
	}
	return s
}

// Status prints session details. Token claims are decoded without
// verification and are informational only.
func (a *App) Status(ctx context.Context) error {
	a.printf("Backend: %s (%s)\n", a.config.BaseURL(), a.config.Env)
	a.printf("Screen:  %s\n", a.router.Current().Path)

	if !a.isLoggedIn() {
		a.println("Session: not logged in")
		return nil
	}
	a.println("Session: logged in")

	claims, err := a.sess.Claims(ctx)
	switch {
	case errors.Is(err, session.ErrOpaqueToken):
		a.println("Token:   opaque")
		return nil
	case err != nil:
		return err
	}
	if claims.Subject != "" {
		a.printf("User:    %s\n", claims.Subject)
	}
	if !claims.ExpiresAt.IsZero() {
		state := "valid"
		if claims.Expired(time.Now()) {
			state = "expired, will refresh on next call"
		}
		a.printf("Expires: %s (%s)\n", claims.ExpiresAt.Local().Format(time.RFC3339), state)
	}
	return nil
}

func (a *App) printBanner() {
	a.println(figure.NewFigure("BookApp", "cybermedium", true).String())
}
