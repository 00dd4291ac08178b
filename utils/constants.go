// File: utils/constants.go
package utils

// Key prefixes for per-client state in the durable key-value store.
const (
	CartKeyPrefix        = "barbershop-cart:"
	DraftKeyPrefix       = "barbershop-draft:"
	PreferencesKeyPrefix = "barbershop-preferences:"
)

// Gin context keys set by middleware.
const (
	ClientIDKey            = "clientID"
	IdentityKey            = "identity"
	IdentityUnavailableKey = "identityUnavailable"
)

// UnavailableAdvisory is shown while sign-in or order storage is not configured.
const UnavailableAdvisory = "Sign-in or order storage is not configured; bookings cannot be confirmed."

// ClientIDHeader carries the opaque client session id in both directions.
const ClientIDHeader = "X-Client-ID"
