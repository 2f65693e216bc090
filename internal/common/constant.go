// Package common contains constants and small helpers shared by the blog
// client packages.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the access token in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName correlates client log lines with backend logs.
	RequestIDHeaderName = "X-Request-ID"
)
