package models

// Identity is the signed-in user as reported by the identity provider.
type Identity struct {
	UID           string `json:"uid"`
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"emailVerified"`
}
