package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/bookapp/internal/client/api"
	"github.com/dmitrijs2005/bookapp/internal/client/models"
	"github.com/dmitrijs2005/bookapp/internal/client/router"
	"github.com/dmitrijs2005/bookapp/internal/client/validation"
	"github.com/dmitrijs2005/bookapp/internal/common"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

const (
	msgLoginFailed  = "Login failed. Please check your credentials."
	msgSignupOK     = "Registration successful! Please proceed to login."
	msgSignupFailed = "Registration failed:"
	msgUnexpected   = "An unexpected error occurred."
	msgLogoutAsk    = "Are you sure you want to logout?"
)

// Login prompts for email and password. On success the session begins and
// the profile screen is shown.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if email == "" || len(password) == 0 {
		a.println("Email and password are required.")
		return common.ErrEmptyInput
	}

	pair, err := a.api.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		a.logger.Debug(ctx, "login failed", "error", err)
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			a.println(apiErr.Message)
		} else {
			a.println(msgLoginFailed)
		}
		return err
	}

	if err := a.sess.Begin(ctx, *pair); err != nil {
		a.logger.Error(ctx, "storing tokens", "error", err)
		a.println(msgUnexpected)
		return err
	}

	a.println("Login successful")
	return a.Go(ctx, router.PathProfile)
}

// Signup collects a registration, checks it locally and submits it.
func (a *App) Signup(ctx context.Context) error {
	var reg models.Registration
	var err error

	if reg.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if reg.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if reg.MobileNumber, err = getSimpleText(a.reader, "Enter mobile number (10 digits)", a.out); err != nil {
		return err
	}
	a.hint("mobile_no", reg.MobileNumber)

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	reg.Password = string(password)
	a.hint("password", reg.Password)

	if fe := validation.ValidateRegistration(reg); len(fe) > 0 {
		a.println(msgSignupFailed)
		a.println(fe.Error())
		return fe
	}

	if _, err := a.api.Register(ctx, reg); err != nil {
		a.logger.Debug(ctx, "registration failed", "error", err)
		var apiErr *api.Error
		if errors.As(err, &apiErr) && len(apiErr.Messages()) > 0 {
			a.println(msgSignupFailed)
			a.println(strings.Join(apiErr.Messages(), "\n"))
		} else {
			a.println(msgUnexpected)
		}
		return err
	}

	a.println(msgSignupOK)
	a.redirect(ctx, router.PathLogin)
	return nil
}

// hint shows a field's rule right after it is entered, before the form is
// submitted.
func (a *App) hint(field, value string) {
	if msg := validation.ValidateField(field, value); msg != "" {
		a.println("  " + msg)
	}
}

// Logout asks for confirmation, tells the backend to blacklist the refresh
// token and always ends the local session.
func (a *App) Logout(ctx context.Context) error {
	ok, err := getConfirmation(a.reader, msgLogoutAsk, a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if refresh, present, err := a.sess.RefreshToken(ctx); err != nil {
		a.logger.Error(ctx, "reading refresh token", "error", err)
	} else if present {
		if err := a.api.Logout(ctx, refresh); err != nil {
			a.logger.Error(ctx, "Logout failed", "error", err)
		}
	}

	err = a.sess.End(ctx)
	if err != nil {
		a.logger.Error(ctx, "clearing tokens", "error", err)
	}
	a.println("Logged out.")
	a.redirect(ctx, router.PathLogin)
	return err
}

// handleAuthError turns an authorization failure into a forced logout. It
// reports whether err was one.
func (a *App) handleAuthError(ctx context.Context, err error) bool {
	if !errors.Is(err, common.ErrUnauthorized) {
		return false
	}
	if a.sess.IsAuthenticated(ctx) {
		if endErr := a.sess.End(ctx); endErr != nil {
			a.logger.Error(ctx, "clearing tokens", "error", endErr)
		}
	}
	a.redirect(ctx, router.PathLogin)
	return true
}
