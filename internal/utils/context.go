// Package utils provides small helpers shared by the API process and the
// command-line client: request context keys, JSON response writing, the
// resty-based HTTP client, trace id generation and password hashing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the id of the user on whose behalf a favorite request
// runs. The HTTP layer resolves it from the user_id query parameter.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID under [UserIDCtxKey].
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the user id stored by [WithUserID].
// ok is false when the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
