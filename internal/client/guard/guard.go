// Package guard decides which console view an operator may enter. Every
// decision reads session.Store at the moment it is made, and the Navigator
// re-checks the current view whenever the store changes, so a credential
// dropped by a 401 mid-view moves the operator to the login view at once.
package guard

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/llmpid-console/internal/client/session"
)

// Route names a console view.
type Route string

const (
	Root      Route = "/"
	Login     Route = "/login"
	Dashboard Route = "/dashboard"
	Change    Route = "/change"
	Systems   Route = "/systems"
)

// Routes lists every known route in display order.
var Routes = []Route{Dashboard, Systems, Change, Login}

var protected = map[Route]bool{
	Dashboard: true,
	Change:    true,
	Systems:   true,
}

// Protected reports whether r needs a credential.
func (r Route) Protected() bool { return protected[r] }

// ParseRoute accepts "dashboard", "/dashboard" and the like.
func ParseRoute(s string) (Route, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	r := Route(strings.TrimRight(s, "/"))
	if r == "" {
		r = Root
	}
	switch r {
	case Root, Login, Dashboard, Change, Systems:
		return r, nil
	}
	return "", fmt.Errorf("unknown route %q", s)
}

// Decision is the outcome of resolving a navigation target.
type Decision struct {
	Route Route
	// Redirected is set when Route differs from what was asked for because
	// of an alias or missing credential.
	Redirected bool
}

// AuthState is the part of session.Store the guard reads.
type AuthState interface {
	Authenticated() bool
}

var _ AuthState = (*session.Store)(nil)

// Guard is stateless apart from the store it reads.
type Guard struct {
	auth AuthState
}

func New(auth AuthState) *Guard {
	return &Guard{auth: auth}
}

// Resolve maps a requested route to the one that is rendered.
func (g *Guard) Resolve(r Route) Decision {
	if r == Root {
		d := g.Resolve(Dashboard)
		d.Redirected = true
		return d
	}
	if r.Protected() && !g.auth.Authenticated() {
		return Decision{Route: Login, Redirected: true}
	}
	return Decision{Route: r}
}
