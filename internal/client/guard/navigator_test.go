package guard

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/llmpid-console/internal/client/session"
)

type transition struct {
	From Route
	To   Route
}

func newNav(t *testing.T, start Route) (*Navigator, *session.Store, *[]transition) {
	t.Helper()
	store := session.NewStore()
	n := NewNavigator(New(store), start)
	var seen []transition
	n.OnChange(func(from Route, d Decision) { seen = append(seen, transition{from, d.Route}) })
	n.Attach(store)
	t.Cleanup(n.Detach)
	return n, store, &seen
}

func TestNavigator_StartsOnLoginWhenAnonymous(t *testing.T) {
	n, _, _ := newNav(t, Root)
	assert.Equal(t, Login, n.Current())
	assert.Equal(t, []Route{Login}, n.History())
}

func TestNavigator_RefusedNavigationIsNotPushed(t *testing.T) {
	n, _, seen := newNav(t, Login)

	d := n.Navigate(Dashboard)
	assert.Equal(t, Decision{Route: Login, Redirected: true}, d)
	assert.Equal(t, []Route{Login}, n.History())
	assert.Empty(t, *seen)
}

func TestNavigator_PushesPermittedRoutes(t *testing.T) {
	n, store, seen := newNav(t, Login)
	store.Set("T1")

	n.Navigate(Root)
	n.Navigate(Systems)
	n.Navigate(Systems)

	assert.Equal(t, []Route{Login, Dashboard, Systems}, n.History())
	assert.Equal(t, []transition{{Login, Dashboard}, {Dashboard, Systems}}, *seen)
}

func TestNavigator_ClearWhileMountedRedirects(t *testing.T) {
	n, store, seen := newNav(t, Login)
	store.Set("T1")
	n.Navigate(Dashboard)
	n.Navigate(Change)

	store.Clear()

	assert.Equal(t, Login, n.Current())
	assert.Equal(t, []Route{Login, Dashboard, Login}, n.History())
	assert.Equal(t, transition{Change, Login}, (*seen)[len(*seen)-1])
}

func TestNavigator_BackCannotReenterGuardedView(t *testing.T) {
	n, store, _ := newNav(t, Login)
	store.Set("T1")
	n.Navigate(Dashboard)
	n.Navigate(Systems)
	store.Clear()

	d, ok := n.Back()
	require.True(t, ok)
	assert.Equal(t, Login, d.Route)
	assert.True(t, d.Redirected)
	assert.Equal(t, []Route{Login, Login}, n.History())

	d, ok = n.Back()
	require.True(t, ok)
	assert.Equal(t, Decision{Route: Login}, d)

	_, ok = n.Back()
	assert.False(t, ok)
}

func TestNavigator_BackWhileAuthenticated(t *testing.T) {
	n, store, seen := newNav(t, Login)
	store.Set("T1")
	n.Navigate(Dashboard)
	n.Navigate(Systems)

	d, ok := n.Back()
	require.True(t, ok)
	assert.Equal(t, Decision{Route: Dashboard}, d)
	assert.Equal(t, transition{Systems, Dashboard}, (*seen)[len(*seen)-1])
}

func TestNavigator_RotationDoesNotRedirect(t *testing.T) {
	n, store, _ := newNav(t, Login)
	store.Set("T1")
	n.Navigate(Change)

	store.Set("T2")
	assert.Equal(t, Change, n.Current())
}

func TestNavigator_DetachStopsReacting(t *testing.T) {
	n, store, _ := newNav(t, Login)
	store.Set("T1")
	n.Navigate(Dashboard)

	n.Detach()
	store.Clear()
	assert.Equal(t, Dashboard, n.Current())

	assert.Equal(t, Decision{Route: Login, Redirected: true}, n.Recheck())
	assert.Equal(t, Login, n.Current())
}

func TestNavigator_ConcurrentClearsRedirectOnce(t *testing.T) {
	n, store, seen := newNav(t, Login)
	store.Set("T1")
	n.Navigate(Dashboard)
	before := len(*seen)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.ClearIf("T1")
		}()
	}
	wg.Wait()

	assert.Equal(t, Login, n.Current())
	assert.Len(t, *seen, before+1)
}
