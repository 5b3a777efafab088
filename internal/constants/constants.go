package constants

import "time"

// Context keys shared between middleware and handlers
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// TokenTTL is the lifetime of an issued access token.
const TokenTTL = time.Hour

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// Pagination limits
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
