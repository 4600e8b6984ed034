package cli

import (
	"context"
)

const msgProfileFailed = "Failed to fetch profile. Please try logging in again."

func (a *App) Profile(ctx context.Context) error {
	p, err := a.api.Profile(ctx)
	if err != nil {
		a.logger.Debug(ctx, "fetching profile", "error", err)
		a.println(msgProfileFailed)
		a.handleAuthError(ctx, err)
		return err
	}

	a.println("User Profile")
	a.printf("  Name:   %s\n", p.Name)
	a.printf("  Email:  %s\n", p.Email)
	a.printf("  Mobile: %s\n", p.MobileNumber)
	a.printf("  City:   %s\n", p.CityOrDefault())
	a.printf("  Age:    %s\n", p.AgeOrDefault())
	return nil
}
