package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/llmpid-console/internal/client/session"
)

func TestParseRoute(t *testing.T) {
	cases := map[string]Route{
		"dashboard":   Dashboard,
		"/dashboard":  Dashboard,
		"/systems/":   Systems,
		" change ":    Change,
		"login":       Login,
		"/":           Root,
		"":            Root,
	}
	for in, want := range cases {
		got, err := ParseRoute(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRoute("/admin")
	require.Error(t, err)
}

func TestRoute_Protected(t *testing.T) {
	assert.True(t, Dashboard.Protected())
	assert.True(t, Change.Protected())
	assert.True(t, Systems.Protected())
	assert.False(t, Login.Protected())
	assert.False(t, Root.Protected())
}

func TestResolve_ReadsStoreEveryTime(t *testing.T) {
	store := session.NewStore()
	g := New(store)

	assert.Equal(t, Decision{Route: Login, Redirected: true}, g.Resolve(Dashboard))
	assert.Equal(t, Decision{Route: Login}, g.Resolve(Login))
	assert.Equal(t, Decision{Route: Login, Redirected: true}, g.Resolve(Root))

	store.Set("T1")
	assert.Equal(t, Decision{Route: Dashboard}, g.Resolve(Dashboard))
	assert.Equal(t, Decision{Route: Dashboard, Redirected: true}, g.Resolve(Root))

	store.Clear()
	assert.Equal(t, Decision{Route: Login, Redirected: true}, g.Resolve(Systems))
}
