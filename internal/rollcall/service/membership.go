package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/quorumhq/rollcall/internal/rollcall/store"
	"github.com/quorumhq/rollcall/pkg/idx"
	"github.com/quorumhq/rollcall/pkg/slogx"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrAlreadyMember     = errors.New("user is already an active member")
	ErrMembershipMissing = errors.New("user is not an active member of this committee")
)

type MembershipService struct {
	Store store.Store
}

// AddMemberResult reports whether an existing row was reactivated rather than
// a new one inserted, so the handler can pick 200 vs 201.
type AddMemberResult struct {
	Membership  domain.Membership
	Reactivated bool
}

// AddMember enrols a user into a committee. A previously deactivated row is
// reactivated in place; a live row is a conflict. The lookup and write run in
// one transaction so concurrent enrolments cannot both succeed.
func (s *MembershipService) AddMember(ctx context.Context, committeeID, userID string) (AddMemberResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Both sides must exist.
	if _, err := s.Store.Committees().GetCommitteeByID(ctx, committeeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AddMemberResult{}, ErrCommitteeNotFound
		}
		return AddMemberResult{}, err
	}
	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AddMemberResult{}, ErrUserNotFound
		}
		return AddMemberResult{}, err
	}

	var result AddMemberResult
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Members().GetMember(ctx, userID, committeeID)
		switch {
		case err == nil && existing.IsActive:
			return ErrAlreadyMember

		case err == nil:
			// 2a. Row exists but inactive: reactivate it with a fresh join date.
			now := time.Now().UTC()
			if err := tx.Members().SetMemberActive(ctx, existing.ID, true, now); err != nil {
				return err
			}
			reactivated, err := tx.Members().GetMember(ctx, userID, committeeID)
			if err != nil {
				return err
			}
			result = AddMemberResult{Membership: reactivated, Reactivated: true}
			return nil

		case errors.Is(err, store.ErrNotFound):
			// 2b. First enrolment: insert a fresh row.
			membership := domain.Membership{
				ID:          idx.New().String(),
				UserID:      userID,
				CommitteeID: committeeID,
				IsActive:    true,
				JoinedAt:    time.Now().UTC(),
			}
			if err := tx.Members().CreateMember(ctx, membership); err != nil {
				if errors.Is(err, store.ErrAlreadyExists) {
					return ErrAlreadyMember
				}
				return err
			}
			created, err := tx.Members().GetMember(ctx, userID, committeeID)
			if err != nil {
				return err
			}
			result = AddMemberResult{Membership: created}
			return nil

		default:
			return err
		}
	})
	if err != nil {
		return AddMemberResult{}, err
	}

	log.Info("member added",
		slog.String("committee_id", committeeID),
		slog.String("user_id", userID),
		slog.Bool("reactivated", result.Reactivated),
	)
	return result, nil
}

// RemoveMember soft-deletes an active membership. The row is retained so a
// later AddMember reactivates it instead of inserting.
func (s *MembershipService) RemoveMember(ctx context.Context, committeeID, userID string) error {
	log := slogx.FromContext(ctx)

	membership, err := s.Store.Members().GetActiveMember(ctx, userID, committeeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMembershipMissing
		}
		return err
	}

	if err := s.Store.Members().SetMemberActive(ctx, membership.ID, false, time.Time{}); err != nil {
		log.Error("failed to deactivate membership",
			slog.String("membership_id", membership.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("member removed",
		slog.String("committee_id", committeeID),
		slog.String("user_id", userID),
	)
	return nil
}

// IsActiveMember reports whether the user currently belongs to the committee.
func (s *MembershipService) IsActiveMember(ctx context.Context, userID, committeeID string) (bool, error) {
	_, err := s.Store.Members().GetActiveMember(ctx, userID, committeeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
