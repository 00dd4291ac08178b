package identity

import (
	"context"
	"errors"
	"testing"

	"barbershop/models"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	token *auth.Token
	err   error
}

func (s stubVerifier) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return s.token, s.err
}

func TestVerify(t *testing.T) {
	p := &FirebaseProvider{verifier: stubVerifier{token: &auth.Token{
		UID:    "uid-1",
		Claims: map[string]interface{}{"email": "owner@example.com", "email_verified": true},
	}}}

	id, err := p.Verify(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, &models.Identity{UID: "uid-1", Email: "owner@example.com", EmailVerified: true}, id)

	_, err = p.Verify(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Rejected(t *testing.T) {
	p := &FirebaseProvider{verifier: stubVerifier{err: errors.New("expired")}}
	_, err := p.Verify(context.Background(), "token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_NotConfigured(t *testing.T) {
	p := NewFirebaseProvider(nil)
	assert.False(t, p.Configured())
	_, err := p.Verify(context.Background(), "token")
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.True(t, (&FirebaseProvider{verifier: stubVerifier{}}).Configured())
}

func TestIsAdmin(t *testing.T) {
	owner := &models.Identity{UID: "u", Email: "Owner@Example.com", EmailVerified: true}

	assert.True(t, IsAdmin(owner, "owner@example.com"))
	assert.False(t, IsAdmin(owner, ""))
	assert.False(t, IsAdmin(nil, "owner@example.com"))
	assert.False(t, IsAdmin(&models.Identity{Email: "owner@example.com"}, "owner@example.com"), "unverified email")
	assert.False(t, IsAdmin(&models.Identity{Email: "other@example.com", EmailVerified: true}, "owner@example.com"))
}
