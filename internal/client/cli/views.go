package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/llmpid-console/internal/client/guard"
)

// enter navigates to r and reports whether r is now the current view.
func (a *App) enter(r guard.Route) bool {
	d := a.nav.Navigate(r)
	if d.Route != r {
		a.println("Please log in first (type 'login')")
		return false
	}
	return true
}

func (a *App) Help() string {
	if !a.store.Authenticated() {
		return "Available commands: login, whoami, go <route>, back, stats, exit"
	}
	return strings.Join([]string{
		"Available commands:",
		"  dashboard: classify <text>, logs, next, prev, limit <n>, sort <time|source> <asc|desc>, refresh",
		"  systems:   systems, addsystem [name], delsystem <name>",
		"  account:   passwd, whoami, logout",
		"  other:     go <dashboard|systems|change|login>, back, stats, exit",
	}, "\n")
}

// Go moves to a named view and shows it.
func (a *App) Go(ctx context.Context, target string) error {
	r, err := guard.ParseRoute(target)
	if err != nil {
		a.println(err)
		return err
	}
	d := a.nav.Navigate(r)
	if d.Redirected && d.Route == guard.Login && r != guard.Login {
		a.println("Please log in first (type 'login')")
		return nil
	}
	a.println("Now at", d.Route)
	return a.show(ctx, d.Route)
}

// Back returns to the previous view, subject to the guard.
func (a *App) Back(ctx context.Context) error {
	d, ok := a.nav.Back()
	if !ok {
		a.println("Nothing to go back to")
		return nil
	}
	a.println("Now at", d.Route)
	return nil
}

func (a *App) show(ctx context.Context, r guard.Route) error {
	switch r {
	case guard.Dashboard:
		return a.Refresh(ctx)
	case guard.Systems:
		return a.Systems(ctx)
	case guard.Change:
		a.println("Type 'passwd' to change your password")
	case guard.Login:
		a.println("Type 'login' to sign in")
	}
	return nil
}
