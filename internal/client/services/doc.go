// Package services holds the console's application logic between the REPL and
// the API client: the session lifecycle (login, change-password, logout),
// classification history, external system management, local preferences and
// the dashboard overview.
//
// Services validate input before any remote call and wrap failures with the
// sentinel errors from internal/common and internal/client/client so callers
// can classify them with errors.Is.
package services
