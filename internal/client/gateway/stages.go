package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/llmpid-console/internal/client/session"
	"github.com/dmitrijs2005/llmpid-console/internal/common"
	"github.com/dmitrijs2005/llmpid-console/internal/logging"
)

type attachedKey struct{}

// attached returns the credential BearerAuth put on req, exactly as it was
// read from the store.
func attached(req *http.Request) (session.Credential, bool) {
	c, ok := req.Context().Value(attachedKey{}).(session.Credential)
	return c, ok
}

// BearerAuth attaches the current credential as "Authorization: Bearer ...".
// The store is consulted on every call; nothing is cached.
func BearerAuth(src CredentialSource) Stage {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			cred, ok := src.Get()
			if !ok {
				out := req.Clone(req.Context())
				out.Header.Del(common.AuthorizationHeader)
				return next.RoundTrip(out)
			}
			out := req.Clone(context.WithValue(req.Context(), attachedKey{}, cred))
			out.Header.Set(common.AuthorizationHeader, common.BearerHeader(string(cred)))
			return next.RoundTrip(out)
		})
	}
}

// DeauthOnUnauthorized clears the credential a request carried when the
// response is 401. That is the value BearerAuth attached, compared byte for
// byte; requests that bypass BearerAuth fall back to their header. The clear
// completes before the response is handed back, so anything the caller sends
// afterwards goes out without the stale token. The response itself is
// passed through untouched and nothing is retried.
func DeauthOnUnauthorized(store CredentialRevoker, log logging.Logger) Stage {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(req)
			if err != nil || resp.StatusCode != http.StatusUnauthorized {
				return resp, err
			}

			sent, ok := attached(req)
			if !ok {
				h, found := common.ParseBearer(req.Header.Get(common.AuthorizationHeader))
				if !found {
					return resp, nil
				}
				sent = session.Credential(h)
			}
			if store.ClearIf(sent) {
				log.Warn(req.Context(), "credential rejected, session cleared",
					"method", req.Method, "path", req.URL.Path)
			}
			return resp, nil
		})
	}
}

// RequestID sets X-Request-ID to a fresh UUID unless the caller set one.
func RequestID() Stage {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get(common.RequestIDHeader) != "" {
				return next.RoundTrip(req)
			}
			out := req.Clone(req.Context())
			out.Header.Set(common.RequestIDHeader, uuid.NewString())
			return next.RoundTrip(out)
		})
	}
}

// Instrument records every request outcome on rec.
func Instrument(rec Recorder) Stage {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)
			if err != nil {
				rec.IncrementTransportErrors()
				return resp, err
			}
			rec.ObserveRequest(req.Method, resp.StatusCode, time.Since(start))
			if resp.StatusCode == http.StatusUnauthorized {
				rec.IncrementUnauthorized()
			}
			return resp, nil
		})
	}
}

// Logging writes one line per request. Credentials are never logged.
func Logging(log logging.Logger) Stage {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)
			args := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"request_id", req.Header.Get(common.RequestIDHeader),
				"duration", time.Since(start),
			}
			if err != nil {
				log.Error(req.Context(), "api request failed", append(args, "error", err)...)
				return resp, err
			}
			log.Debug(req.Context(), "api request", append(args, "status", resp.StatusCode)...)
			return resp, nil
		})
	}
}
