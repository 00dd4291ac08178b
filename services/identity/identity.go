package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"barbershop/models"

	"firebase.google.com/go/v4/auth"
)

var (
	ErrInvalidToken  = errors.New("identity: invalid or expired token")
	ErrNotConfigured = errors.New("identity: provider is not configured")
)

// Provider turns a bearer token into the signed-in user. Configured is false
// when no identity backend is set up and every Verify would fail.
type Provider interface {
	Configured() bool
	Verify(ctx context.Context, token string) (*models.Identity, error)
}

// tokenVerifier is the part of *auth.Client the provider uses.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseProvider verifies Firebase ID tokens.
type FirebaseProvider struct {
	verifier tokenVerifier
}

// NewFirebaseProvider wraps client. A nil client yields a provider that
// rejects every token with ErrNotConfigured.
func NewFirebaseProvider(client *auth.Client) *FirebaseProvider {
	if client == nil {
		return &FirebaseProvider{}
	}
	return &FirebaseProvider{verifier: client}
}

func (p *FirebaseProvider) Configured() bool {
	return p.verifier != nil
}

func (p *FirebaseProvider) Verify(ctx context.Context, token string) (*models.Identity, error) {
	if p.verifier == nil {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidToken
	}
	tok, err := p.verifier.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return fromToken(tok), nil
}

func fromToken(tok *auth.Token) *models.Identity {
	id := &models.Identity{UID: tok.UID}
	if email, ok := tok.Claims["email"].(string); ok {
		id.Email = email
	}
	if verified, ok := tok.Claims["email_verified"].(bool); ok {
		id.EmailVerified = verified
	}
	return id
}

// IsAdmin reports whether identity may read the admin listings: its email
// must be verified and match adminEmail, case-insensitively.
func IsAdmin(identity *models.Identity, adminEmail string) bool {
	adminEmail = strings.TrimSpace(adminEmail)
	if identity == nil || adminEmail == "" || !identity.EmailVerified {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(identity.Email), adminEmail)
}
