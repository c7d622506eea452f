// Package gateway builds the single *http.Client every console API call goes
// through. The client is a chain of RoundTripper stages; two of them enforce
// the session model:
//
//   - BearerAuth reads the session store on every request and attaches the
//     credential, or strips any Authorization header when none is held.
//   - DeauthOnUnauthorized drops the held credential when the API answers 401
//     to a request that carried it, before the caller sees the response.
//
// No other package interprets 401 responses for session purposes.
package gateway

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/llmpid-console/internal/client/session"
	"github.com/dmitrijs2005/llmpid-console/internal/logging"
)

// Stage wraps a RoundTripper with one cross-cutting concern.
type Stage func(next http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// Chain wraps base with stages; stages[0] is the outermost.
func Chain(base http.RoundTripper, stages ...Stage) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	rt := base
	for i := len(stages) - 1; i >= 0; i-- {
		if stages[i] != nil {
			rt = stages[i](rt)
		}
	}
	return rt
}

// CredentialSource is read before every request.
type CredentialSource interface {
	Get() (session.Credential, bool)
}

// CredentialRevoker drops a credential the server rejected.
type CredentialRevoker interface {
	ClearIf(c session.Credential) bool
}

// Recorder receives request outcomes. *metrics.Metrics implements it.
type Recorder interface {
	ObserveRequest(method string, code int, d time.Duration)
	IncrementTransportErrors()
	IncrementUnauthorized()
}

// Store is what New needs from the session store.
type Store interface {
	CredentialSource
	CredentialRevoker
}

// Options configures New.
type Options struct {
	Store     Store
	Transport http.RoundTripper
	Timeout   time.Duration
	Logger    logging.Logger
	Metrics   Recorder
}

// New returns the configured API client. Stage order, outermost first:
// request id, logging, metrics, bearer auth, 401 observer.
func New(opts Options) *http.Client {
	stages := []Stage{RequestID()}
	if opts.Logger != nil {
		stages = append(stages, Logging(opts.Logger.With("module", "gateway")))
	}
	if opts.Metrics != nil {
		stages = append(stages, Instrument(opts.Metrics))
	}

	var deauthLog logging.Logger = logging.Discard()
	if opts.Logger != nil {
		deauthLog = opts.Logger.With("module", "gateway")
	}
	stages = append(stages,
		BearerAuth(opts.Store),
		DeauthOnUnauthorized(opts.Store, deauthLog),
	)

	return &http.Client{
		Transport: Chain(opts.Transport, stages...),
		Timeout:   opts.Timeout,
	}
}
