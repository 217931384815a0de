package jwtx

import (
	"crypto/ed25519"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quorumhq/rollcall/pkg/cryptox"
)

// Signer signs access-token claims into compact JWTs using Ed25519.
type Signer struct {
	kid string
	key ed25519.PrivateKey
	pub ed25519.PublicKey
}

// NewSigner loads an Ed25519 private key from PEM bytes (PKCS8).
func NewSigner(kid string, pemKey []byte) (*Signer, error) {
	key, err := cryptox.ParseEd25519Key(pemKey)
	if err != nil {
		return nil, err
	}

	return &Signer{
		kid: kid,
		key: key,
		pub: key.Public().(ed25519.PublicKey),
	}, nil
}

func (s *Signer) Alg() string { return jwt.SigningMethodEdDSA.Alg() }
func (s *Signer) KID() string { return s.kid }

// PublicKey returns the verification half of the signing key.
func (s *Signer) PublicKey() ed25519.PublicKey { return s.pub }

// Sign takes your claims and turns them into a signed JWT string.
func (s *Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// Validate does a quick sanity check to make sure we actually have keys.
func (s *Signer) Validate() error {
	if s.key == nil || s.pub == nil {
		return errors.New("jwtx: nil Ed25519 key")
	}
	if len(s.key) != ed25519.PrivateKeySize {
		return errors.New("jwtx: invalid Ed25519 private key size")
	}
	if len(s.pub) != ed25519.PublicKeySize {
		return errors.New("jwtx: invalid Ed25519 public key size")
	}
	return nil
}
