package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/quorumhq/rollcall/pkg/cryptox"
	"github.com/quorumhq/rollcall/pkg/idx"
	"github.com/quorumhq/rollcall/pkg/jwtx"
)

// InitSigningKey builds the token signer from the configured key file, or
// generates an ephemeral key when no file is configured.
//
// When a key file path is set but the file does not exist yet, a fresh key is
// generated and written there (0600), so a first boot self-provisions. Without
// a key file all tokens are invalidated on every restart.
func InitSigningKey(cfg Config, logger *slog.Logger) (*jwtx.Signer, error) {
	kid := idx.New().String()

	if cfg.SigningKey == "" {
		pemKey, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("failed to generate signing key: %w", err)
		}

		logger.Warn("using ephemeral signing key, all existing tokens are now invalid")
		return jwtx.NewSigner(kid, pemKey)
	}

	pemKey, err := os.ReadFile(cfg.SigningKey)
	if errors.Is(err, os.ErrNotExist) {
		pemKey, err = cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("failed to generate signing key: %w", err)
		}

		if err := os.WriteFile(cfg.SigningKey, pemKey, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write signing key file: %w", err)
		}

		logger.Info("generated new signing key", "path", cfg.SigningKey)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read signing key file: %w", err)
	} else {
		logger.Info("loaded signing key", "path", cfg.SigningKey)
	}

	return jwtx.NewSigner(kid, pemKey)
}
