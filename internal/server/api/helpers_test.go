package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/llmpid-console/internal/logging"
	"github.com/dmitrijs2005/llmpid-console/internal/server/config"
	"github.com/dmitrijs2005/llmpid-console/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/llmpid-console/internal/server/services"
	"github.com/stretchr/testify/require"
)

const (
	adminName = "llmpid_admin"
	adminPass = "initial-pass"
)

func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{SecretKey: "test-secret", AccessTokenValidityDuration: time.Hour}
	rm := repomanager.NewInMemoryRepositoryManager()

	us := services.NewUserService(rm, cfg)
	require.NoError(t, us.EnsureAdmin(context.Background(), adminName, adminPass))

	s := NewHTTPServer(":0", logging.Discard(), us, services.NewClassificationService(rm), services.NewSystemService(rm))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

type reply struct {
	status int
	body   []byte
}

func (r reply) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.body, v), string(r.body))
}

func call(t *testing.T, ts *httptest.Server, method, path, token string, in any) reply {
	t.Helper()
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return reply{status: resp.StatusCode, body: b}
}

func login(t *testing.T, ts *httptest.Server, username, password string) string {
	t.Helper()
	r := call(t, ts, http.MethodPost, "/api/user/auth/login", "", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, r.status, string(r.body))
	var out tokenResponse
	r.decode(t, &out)
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken
}
