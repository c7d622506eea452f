package api

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/llmpid-console/internal/client/client"
	"github.com/dmitrijs2005/llmpid-console/internal/client/gateway"
	"github.com/dmitrijs2005/llmpid-console/internal/client/models"
	consolesvc "github.com/dmitrijs2005/llmpid-console/internal/client/services"
	"github.com/dmitrijs2005/llmpid-console/internal/client/session"
	"github.com/dmitrijs2005/llmpid-console/internal/common"
	"github.com/dmitrijs2005/llmpid-console/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type consoleStack struct {
	store    *session.Store
	auth     consolesvc.AuthService
	systems  consolesvc.ExternalSystemService
	history  consolesvc.ClassificationService
	overview consolesvc.OverviewService
	cleared  atomic.Int32
}

func newConsole(t *testing.T, baseURL string) *consoleStack {
	t.Helper()
	store := session.NewStore()
	hc := gateway.New(gateway.Options{Store: store, Timeout: 5 * time.Second})
	c, err := client.NewHTTPClient(baseURL+"/api", hc)
	require.NoError(t, err)

	cs := &consoleStack{
		store:   store,
		auth:    consolesvc.NewAuthService(c, store, nil, logging.Discard()),
		systems: consolesvc.NewExternalSystemService(c),
		history: consolesvc.NewClassificationService(c),
	}
	cs.overview = consolesvc.NewOverviewService(cs.auth, cs.history, cs.systems)
	unsubscribe := store.Subscribe(func(ch session.Change) {
		if ch.Cleared() {
			cs.cleared.Add(1)
		}
	})
	t.Cleanup(unsubscribe)
	return cs
}

func (cs *consoleStack) token(t *testing.T) string {
	t.Helper()
	cred, ok := cs.store.Get()
	require.True(t, ok)
	return string(cred)
}

func TestConsoleAgainstAPI_LoginRotateLogout(t *testing.T) {
	ts := newTestAPI(t)
	cs := newConsole(t, ts.URL)
	ctx := context.Background()

	require.ErrorIs(t, cs.auth.Login(ctx, adminName, "wrong-pass"), common.ErrAuthentication)
	assert.False(t, cs.store.Authenticated())

	require.NoError(t, cs.auth.Login(ctx, adminName, adminPass))
	assert.Equal(t, adminName, cs.auth.Identity().Username)
	t1 := cs.token(t)

	require.NoError(t, cs.auth.ChangePassword(ctx, adminName, adminPass, "rotated-pass"))
	t2 := cs.token(t)
	assert.NotEqual(t, t1, t2)
	assert.Equal(t, http.StatusUnauthorized, call(t, ts, http.MethodGet, "/api/system/external", t1, nil).status)

	_, err := cs.systems.List(ctx)
	require.NoError(t, err, "the rotated token is attached to later calls")

	require.NoError(t, cs.auth.Logout(ctx))
	assert.False(t, cs.store.Authenticated())
	assert.Equal(t, http.StatusUnauthorized, call(t, ts, http.MethodGet, "/api/system/external", t2, nil).status)
	assert.EqualValues(t, 1, cs.cleared.Load())
}

func TestConsoleAgainstAPI_RevokedSessionClearsOnce(t *testing.T) {
	ts := newTestAPI(t)
	cs := newConsole(t, ts.URL)
	ctx := context.Background()

	require.NoError(t, cs.auth.Login(ctx, adminName, adminPass))
	other := login(t, ts, adminName, adminPass)

	// another device logs out everywhere
	require.Equal(t, http.StatusOK, call(t, ts, http.MethodPut, "/api/user/auth/logout?all", other, nil).status)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cs.systems.List(ctx)
			assert.ErrorIs(t, err, client.ErrUnauthorized)
		}()
	}
	wg.Wait()

	assert.False(t, cs.store.Authenticated())
	assert.EqualValues(t, 1, cs.cleared.Load())

	_, err := cs.overview.Load(ctx, models.DefaultListQuery())
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.EqualValues(t, 1, cs.cleared.Load())
}

func TestConsoleAgainstAPI_SystemsAndHistory(t *testing.T) {
	ts := newTestAPI(t)
	cs := newConsole(t, ts.URL)
	ctx := context.Background()

	require.NoError(t, cs.auth.Login(ctx, adminName, adminPass))

	reg, err := cs.systems.Add(ctx, "  svc-A ")
	require.NoError(t, err)
	assert.Equal(t, "svc-A", reg.Name)
	assert.NotEmpty(t, reg.AccessKey)
	_, err = cs.systems.Add(ctx, "svc-B")
	require.NoError(t, err)

	require.NoError(t, cs.systems.Delete(ctx, "svc-A"))
	list, err := cs.systems.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ExternalSystem{{Name: "svc-B"}}, list)

	_, err = cs.systems.Add(ctx, "svc-B")
	require.ErrorIs(t, err, client.ErrRemote)
	assert.True(t, cs.store.Authenticated(), "a conflict is not a session failure")

	for _, text := range []string{"one", "two", "three"} {
		res, err := cs.history.Classify(ctx, text)
		require.NoError(t, err)
		assert.Equal(t, models.ResultDemo, res.Result)
	}

	q := models.DefaultListQuery().WithLimit(2)
	ov, err := cs.overview.Load(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, adminName, ov.Identity.Username)
	require.Len(t, ov.Classifications, 2)
	assert.Equal(t, "three", ov.Classifications[0].Text)
	assert.Equal(t, []models.ExternalSystem{{Name: "svc-B"}}, ov.Systems)

	asc := q.WithSort(models.Sort{Key: models.SortByTime, Direction: models.Asc})
	page, err := cs.history.List(ctx, asc)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "one", page[0].Text)
}

func TestConsoleAgainstAPI_DeleteAwkwardNames(t *testing.T) {
	ts := newTestAPI(t)
	cs := newConsole(t, ts.URL)
	ctx := context.Background()

	require.NoError(t, cs.auth.Login(ctx, adminName, adminPass))

	for _, name := range []string{"svc%A", "100%-ok", "a b c", "svc/A"} {
		_, err := cs.systems.Add(ctx, name)
		require.NoError(t, err, name)
		require.NoError(t, cs.systems.Delete(ctx, name), name)
	}

	list, err := cs.systems.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
