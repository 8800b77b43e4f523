// Package utils provides general-purpose helpers shared by the client and
// the in-memory remote: context keys, HMAC hashing, HTTP response writing,
// the resty client wrapper, JWT helpers and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey stores the authenticated remote username in a context.
//
//	ctx := context.WithValue(ctx, utils.UsernameCtxKey, "alice")
var UsernameCtxKey = contextKey("username")

// GetUsernameFromContext returns the username stored under [UsernameCtxKey].
// ok is false when the value is missing, empty or not a string.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
