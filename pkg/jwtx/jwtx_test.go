package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quorumhq/rollcall/pkg/cryptox"
)

func newTestSigner(t *testing.T) *Signer {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := NewSigner("test-key", pemKey)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())

	return signer
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t)
	verifier := NewVerifier(signer.PublicKey(), "rollcall")

	claims := NewAccessClaims(
		"01ARZ3NDEKTSV4RRFFQ69G5FAV",
		"ADMIN", "amelia@example.com", "Amelia",
		time.Hour, "rollcall", time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", got.Subject)
	require.Equal(t, "ADMIN", got.Role)
	require.Equal(t, "amelia@example.com", got.Email)
	require.Equal(t, "Amelia", got.Name)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t)
	verifier := NewVerifier(signer.PublicKey(), "rollcall")

	claims := NewAccessClaims("user", "MEMBER", "", "", time.Hour, "someone-else", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t)
	verifier := NewVerifier(signer.PublicKey(), "rollcall")

	claims := NewAccessClaims("user", "MEMBER", "", "", time.Hour, "rollcall", time.Now().UTC().Add(-2*time.Hour))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t)
	other := newTestSigner(t)
	verifier := NewVerifier(other.PublicKey(), "rollcall")

	claims := NewAccessClaims("user", "MEMBER", "", "", time.Hour, "rollcall", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}
