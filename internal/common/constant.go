// Package common contains shared constants and sentinel errors used across
// BookApp client components.
package common

// Keys under which the session tokens are persisted. They match the names the
// backend uses in its login response.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// HTTP header names used on outbound requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	ContentTypeHeaderName   = "Content-Type"
)

// ContentTypeJSON is sent with every request that carries a body.
const ContentTypeJSON = "application/json"
