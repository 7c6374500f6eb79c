// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("username already taken")
	ErrInvalidSession     = errors.New("invalid session")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidUsername    = errors.New("username must be 3-64 letters, digits, dots, dashes or underscores")
)

type userKey struct{}

// WithUser returns a context carrying the signed-in username
func WithUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, userKey{}, username)
}

// UserFromContext returns the signed-in username, if any
func UserFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(userKey{}).(string)
	return username, ok && username != ""
}

// NewRequestID returns a random identifier for error pages and logs
func NewRequestID() string {
	return uuid.NewString()
}
