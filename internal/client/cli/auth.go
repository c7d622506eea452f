package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/llmpid-console/internal/client/guard"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for credentials and opens a session. The last username is
// offered as the default.
func (a *App) Login(ctx context.Context) error {
	if a.store.Authenticated() {
		a.printf("Already logged in as %s. Type 'logout' first.\n", a.auth.Identity().Username)
		return nil
	}
	a.nav.Navigate(guard.Login)

	prompt := "Username"
	last := a.lastUsername(ctx)
	if last != "" {
		prompt = fmt.Sprintf("Username [%s]", last)
	}
	username, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if username == "" {
		username = last
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, username, password); err != nil {
		a.println("Login error:", loginReason(err))
		return err
	}

	name := a.auth.Identity().Username
	if name == "" {
		name = username
	}
	a.printf("Welcome, %s!\n", name)
	a.nav.Navigate(guard.Dashboard)
	return nil
}

// Logout ends the session. Local state is cleared even when the API cannot
// be reached.
func (a *App) Logout(ctx context.Context) error {
	if !a.store.Authenticated() {
		a.println("Not logged in")
		return nil
	}

	a.loggingOut.Store(true)
	err := a.auth.Logout(ctx)
	a.loggingOut.Store(false)

	if err != nil {
		a.println("Logged out locally; the server could not be notified:", reason(err))
	} else {
		a.println("Logged out")
	}
	a.nav.Navigate(guard.Login)
	return err
}

// ChangePassword runs the change-password view.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.enter(guard.Change) {
		return nil
	}

	username := a.auth.Identity().Username
	if username == "" {
		var err error
		if username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
			return err
		}
	}

	oldPassword, err := getPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}
	newPassword, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	repeat, err := getPassword(a.reader, "Repeat new password", a.out)
	if err != nil {
		return err
	}
	if newPassword != repeat {
		a.println("Passwords do not match")
		return nil
	}

	if err := a.auth.ChangePassword(ctx, username, oldPassword, newPassword); err != nil {
		a.println("Failed to change password:", reason(err))
		return err
	}
	a.println("Password changed")
	a.nav.Navigate(guard.Dashboard)
	return nil
}

// WhoAmI prints the identity decoded from the held credential. It is for
// display only.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.store.Authenticated() {
		a.println("Not logged in")
		return nil
	}
	id := a.auth.Identity()
	if id.IsZero() {
		a.println("Logged in (identity unavailable)")
		return nil
	}
	a.printf("User:    %s\n", id.Username)
	if id.Subject != "" {
		a.printf("Subject: %s\n", id.Subject)
	}
	if id.SessionID != "" {
		a.printf("Session: %s\n", id.SessionID)
	}
	if !id.ExpiresAt.IsZero() {
		a.printf("Expires: %s\n", id.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}
