package guard

import (
	"sync"

	"github.com/dmitrijs2005/llmpid-console/internal/client/session"
)

// Navigator keeps the view history of one console. Navigate pushes the
// route the guard resolved (never the refused one). When a re-check refuses
// the current or previous view, the refused entry is replaced instead, so
// Back never returns to a view the guard refused.
type Navigator struct {
	guard *Guard

	mu        sync.Mutex
	history   []Route
	listeners []func(Route, Decision)

	unsubscribe func()
}

// NewNavigator starts at the resolution of start.
func NewNavigator(g *Guard, start Route) *Navigator {
	n := &Navigator{guard: g}
	d := g.Resolve(start)
	n.history = []Route{d.Route}
	return n
}

// Current is the route on top of the history.
func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.history[len(n.history)-1]
}

// History returns a copy of the history, oldest first.
func (n *Navigator) History() []Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Route(nil), n.history...)
}

// OnChange registers fn to be called after every change of Current. It
// receives the route that was left and the decision that was applied.
func (n *Navigator) OnChange(fn func(from Route, d Decision)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

// Navigate resolves r through the guard and applies the result.
func (n *Navigator) Navigate(r Route) Decision {
	d := n.guard.Resolve(r)
	n.apply(d, false)
	return d
}

// Back pops the current entry and re-checks the one below it, which may
// itself be redirected if the session ended meanwhile. It reports false
// when there is nothing to go back to.
func (n *Navigator) Back() (Decision, bool) {
	n.mu.Lock()
	if len(n.history) < 2 {
		n.mu.Unlock()
		return Decision{}, false
	}
	from := n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	prev := n.history[len(n.history)-1]
	n.mu.Unlock()

	d := n.guard.Resolve(prev)
	if d.Route != prev {
		n.apply(d, true)
		return d, true
	}
	n.notify(from, d)
	return d, true
}

// Recheck resolves the current route again and replaces it if the guard
// now refuses it.
func (n *Navigator) Recheck() Decision {
	cur := n.Current()
	d := n.guard.Resolve(cur)
	if d.Route != cur {
		n.apply(d, true)
	}
	return d
}

// Attach subscribes the navigator to store so that losing the credential
// while a protected view is current redirects to the login view.
func (n *Navigator) Attach(store *session.Store) {
	n.Detach()
	unsub := store.Subscribe(func(c session.Change) {
		if c.Cleared() {
			n.Recheck()
		}
	})
	n.mu.Lock()
	n.unsubscribe = unsub
	n.mu.Unlock()
}

// Detach undoes Attach.
func (n *Navigator) Detach() {
	n.mu.Lock()
	unsub := n.unsubscribe
	n.unsubscribe = nil
	n.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

func (n *Navigator) apply(d Decision, replace bool) {
	n.mu.Lock()
	top := len(n.history) - 1
	from := n.history[top]
	switch {
	case replace:
		n.history[top] = d.Route
	case from != d.Route:
		n.history = append(n.history, d.Route)
	default:
		n.mu.Unlock()
		return
	}
	n.mu.Unlock()
	n.notify(from, d)
}

func (n *Navigator) notify(from Route, d Decision) {
	n.mu.Lock()
	ls := append([]func(Route, Decision)(nil), n.listeners...)
	n.mu.Unlock()
	for _, fn := range ls {
		fn(from, d)
	}
}
