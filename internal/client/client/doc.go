// Package client talks to the LLMPID REST API and bootstraps the console's
// local database.
//
// # Overview
//
//  1. Client is the transport-agnostic contract for the operations the
//     console needs: login, password change, logout, classification submit
//     and history, external-system list/add/delete.
//  2. HTTPClient implements it over JSON/HTTP. It is built on the gateway
//     *http.Client, which attaches the bearer credential and drops it on 401;
//     HTTPClient itself never touches session state.
//  3. InitDatabase and RunMigrations open the local sqlite database and
//     apply the embedded goose migrations.
//
// # Error Handling
//
// Failures are reported with sentinel errors matched via errors.Is:
// ErrUnavailable (no response), ErrUnauthorized (401) and ErrRemote (other
// non-2xx). Non-2xx answers are *APIError values carrying status and message.
//
// All operations accept context.Context and honor cancellation and timeouts.
// HTTPClient is safe for concurrent use.
package client
