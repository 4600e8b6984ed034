package cli

import (
	"context"

	"github.com/dmitrijs2005/bookapp/internal/client/router"
)

// Go navigates to path and renders the resulting screen. Protected screens
// redirect to the login screen when there is no session.
func (a *App) Go(ctx context.Context, path string) error {
	nav := a.router.Navigate(ctx, path)
	a.setNav(router.DeriveNav(a.sess.IsAuthenticated(ctx), nav.Route.Path))
	if nav.Redirected {
		a.printf("%s requires login.\n", nav.Requested)
	}
	return a.render(ctx, nav.Route)
}

// redirect moves to path without rendering it.
func (a *App) redirect(ctx context.Context, path string) {
	nav := a.router.Navigate(ctx, path)
	a.setNav(router.DeriveNav(a.sess.IsAuthenticated(ctx), nav.Route.Path))
}

func (a *App) render(ctx context.Context, route router.Route) error {
	switch route.Path {
	case router.PathLogin:
		return a.Login(ctx)
	case router.PathSignup:
		return a.Signup(ctx)
	case router.PathProfile:
		return a.Profile(ctx)
	case router.PathAddBook:
		return a.AddBook(ctx)
	default:
		return a.Home(ctx)
	}
}

func (a *App) Home(ctx context.Context) error {
	if router.HomeVariant(a.isLoggedIn()) == router.HomeBookList {
		return a.Books(ctx)
	}
	a.println(welcomeText)
	return nil
}

const welcomeText = `Welcome to Book App
Discover, manage, and explore your favorite books with our amazing platform!

What you can do:
  - Browse Books:  explore our extensive collection of books
  - Rate & Review: share your thoughts and rate your favorite books
  - Manage Lists:  create reading lists and track your progress
  - Connect:       connect with other book lovers

Type 'login' or 'signup' to get started.`
