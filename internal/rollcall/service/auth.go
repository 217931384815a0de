package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/quorumhq/rollcall/internal/rollcall/store"
	"github.com/quorumhq/rollcall/pkg/cryptox"
	"github.com/quorumhq/rollcall/pkg/idx"
	"github.com/quorumhq/rollcall/pkg/jwtx"
	"github.com/quorumhq/rollcall/pkg/slogx"
)

var (
	ErrInvalidRegistration = errors.New("email, name and password are required")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

type AuthService struct {
	Store     store.Store
	Signer    *jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

// Register creates a MEMBER account and returns the user with a fresh access
// token. Role escalation is not part of registration.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || name == "" || password == "" {
		return domain.User{}, "", ErrInvalidRegistration
	}

	// 2. Hash the password before touching the store.
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, "", err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RoleMember,
	}

	// 3. Insert; the unique email index is the duplicate gate.
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration with taken email", slog.String("email", email))
			return domain.User{}, "", ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, "", err
	}

	// 4. Re-read for store-populated timestamps, then mint a token.
	created, err := s.Store.Users().GetUserByID(ctx, user.ID)
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.mintToken(created)
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("user registered", slog.String("user_id", created.ID))
	return created, token, nil
}

// Login verifies credentials and returns the user with a fresh access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("failed login attempt", slog.String("user_id", user.ID))
			return domain.User{}, "", ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return domain.User{}, "", err
	}

	token, err := s.mintToken(user)
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Debug("user logged in", slog.String("user_id", user.ID))
	return user, token, nil
}

// SeedAdmin provisions an ADMIN account at startup. Role changes are not
// exposed over the API, so the first admin has to come from configuration.
// If the email is already registered the call is a no-op.
func (s *AuthService) SeedAdmin(ctx context.Context, email, name, password string) error {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || name == "" || password == "" {
		return ErrInvalidRegistration
	}

	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		log.Debug("admin account already present", slog.String("email", email))
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent registration; the account exists.
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil
		}
		return err
	}

	log.Info("admin account seeded", slog.String("user_id", user.ID))
	return nil
}

// GetUserByID resolves a user, used by the identity middleware.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

func (s *AuthService) mintToken(u domain.User) (string, error) {
	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	claims := jwtx.NewAccessClaims(u.ID, string(u.Role), u.Email, u.Name, ttl, s.Issuer, time.Now())
	return s.Signer.Sign(claims)
}
