// Package common contains shared constants and sentinel errors used across
// GrandV client components.
package common

const (
	// AuthHeaderName is the HTTP header that carries the bearer token on
	// authenticated requests.
	AuthHeaderName = "Authorization"

	// AuthScheme is the token scheme the backend expects, i.e.
	// "Authorization: Token <token>".
	AuthScheme = "Token"

	// RequestIDHeaderName carries a client-generated request id for
	// correlation in backend logs.
	RequestIDHeaderName = "X-Request-Id"
)
