package service

import (
	"context"
	"testing"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/quorumhq/rollcall/pkg/cryptox"
	"github.com/quorumhq/rollcall/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSigner("test-key", pemKey)
	require.NoError(t, err)

	return &AuthService{
		Store:  newTestStore(t),
		Signer: signer,
		Issuer: "rollcall-test",
	}
}

func TestAuthRegister(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	t.Run("creates a member with a valid token", func(t *testing.T) {
		user, token, err := svc.Register(ctx, "Alice@Example.com", "Alice", "secret123")
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", user.Email)
		require.Equal(t, domain.RoleMember, user.Role)
		require.NotEmpty(t, user.ID)

		verifier := jwtx.NewVerifier(svc.Signer.PublicKey(), svc.Issuer)
		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
		require.Equal(t, string(domain.RoleMember), claims.Role)
	})

	t.Run("rejects duplicate emails", func(t *testing.T) {
		_, _, err := svc.Register(ctx, "alice@example.com", "Alice Again", "secret123")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("rejects incomplete input", func(t *testing.T) {
		_, _, err := svc.Register(ctx, "", "Bob", "secret123")
		require.ErrorIs(t, err, ErrInvalidRegistration)

		_, _, err = svc.Register(ctx, "bob@example.com", "Bob", "")
		require.ErrorIs(t, err, ErrInvalidRegistration)
	})
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	registered, _, err := svc.Register(ctx, "alice@example.com", "Alice", "secret123")
	require.NoError(t, err)

	t.Run("valid credentials return the user and a token", func(t *testing.T) {
		user, token, err := svc.Login(ctx, "alice@example.com", "secret123")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
		require.NotEmpty(t, token)
	})

	t.Run("wrong password and unknown email look identical", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "alice@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = svc.Login(ctx, "nobody@example.com", "secret123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
