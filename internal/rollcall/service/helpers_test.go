package service

import (
	"context"
	"testing"
	"time"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/quorumhq/rollcall/internal/rollcall/store"
	"github.com/quorumhq/rollcall/internal/rollcall/store/drivers/sqlite"
	"github.com/quorumhq/rollcall/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s store.Store, name string, role domain.Role) domain.User {
	t.Helper()

	user := domain.User{
		ID:           idx.New().String(),
		Email:        name + "@example.com",
		Name:         name,
		PasswordHash: "hash",
		Role:         role,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), user))
	return user
}

func seedCommittee(t *testing.T, s store.Store, name string) domain.Committee {
	t.Helper()

	committee := domain.Committee{
		ID:          idx.New().String(),
		Name:        name,
		MeetingDay:  "Tuesday",
		MeetingTime: "18:30",
		IsActive:    true,
	}
	require.NoError(t, s.Committees().CreateCommittee(context.Background(), committee))
	return committee
}

func seedMember(t *testing.T, s store.Store, userID, committeeID string) domain.Membership {
	t.Helper()

	membership := domain.Membership{
		ID:          idx.New().String(),
		UserID:      userID,
		CommitteeID: committeeID,
		IsActive:    true,
		JoinedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.Members().CreateMember(context.Background(), membership))
	return membership
}

func seedMeeting(t *testing.T, s store.Store, committeeID string, date time.Time, status domain.MeetingStatus) domain.Meeting {
	t.Helper()

	meeting := domain.Meeting{
		ID:          idx.New().String(),
		CommitteeID: committeeID,
		Date:        date,
		Status:      status,
		Notes:       "weekly sync",
	}
	require.NoError(t, s.Meetings().CreateMeeting(context.Background(), meeting))
	return meeting
}
