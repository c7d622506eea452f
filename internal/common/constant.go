// Package common contains constants, sentinel errors and small helpers shared
// by the console and the stand-in API.
package common

const (
	// AuthorizationHeader carries the bearer credential on outbound requests.
	AuthorizationHeader = "Authorization"

	// BearerScheme is the auth scheme prefix used in AuthorizationHeader.
	BearerScheme = "Bearer"

	// RequestIDHeader correlates console log lines with API log lines.
	RequestIDHeader = "X-Request-ID"
)
