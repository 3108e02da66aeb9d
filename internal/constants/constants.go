package constants

import "time"

// Context keys
const (
	ContextKeyIdentity = "identity"
)

// Authentication
const (
	BearerScheme    = "Bearer"
	DefaultTokenTTL = time.Hour
	BcryptCost      = 10
)

// Server
const (
	RootMessage = "Backend is running!"
)
