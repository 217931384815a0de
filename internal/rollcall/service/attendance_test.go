package service

import (
	"context"
	"testing"
	"time"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRecord(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, status domain.MeetingStatus) (*AttendanceService, domain.User, domain.Meeting) {
		s := newTestStore(t)
		user := seedUser(t, s, "alice", domain.RoleMember)
		committee := seedCommittee(t, s, "Finance")
		seedMember(t, s, user.ID, committee.ID)
		meeting := seedMeeting(t, s, committee.ID, time.Now().UTC(), status)
		return &AttendanceService{Store: s}, user, meeting
	}

	t.Run("creates a record during an ongoing meeting", func(t *testing.T) {
		svc, user, meeting := setup(t, domain.MeetingOngoing)

		result, err := svc.Record(ctx, user.ID, meeting.ID, domain.AttendancePresent)
		require.NoError(t, err)
		require.True(t, result.Created)
		require.Equal(t, domain.AttendancePresent, result.Attendance.Status)
		require.Equal(t, 0, result.Attendance.UpdateCount)
	})

	t.Run("rejects creation when meeting is not ongoing", func(t *testing.T) {
		for _, status := range []domain.MeetingStatus{
			domain.MeetingScheduled, domain.MeetingCompleted, domain.MeetingCancelled,
		} {
			svc, user, meeting := setup(t, status)

			_, err := svc.Record(ctx, user.ID, meeting.ID, domain.AttendancePresent)
			require.ErrorIs(t, err, ErrMeetingNotOpen, "status %s", status)
		}
	})

	t.Run("allows exactly one correction", func(t *testing.T) {
		svc, user, meeting := setup(t, domain.MeetingOngoing)

		_, err := svc.Record(ctx, user.ID, meeting.ID, domain.AttendancePresent)
		require.NoError(t, err)

		result, err := svc.Record(ctx, user.ID, meeting.ID, domain.AttendanceLate)
		require.NoError(t, err)
		require.False(t, result.Created)
		require.Equal(t, domain.AttendanceLate, result.Attendance.Status)
		require.Equal(t, 1, result.Attendance.UpdateCount)

		_, err = svc.Record(ctx, user.ID, meeting.ID, domain.AttendanceLeave)
		require.ErrorIs(t, err, ErrAttendanceFinalized)
	})

	t.Run("correction is not re-gated on meeting status", func(t *testing.T) {
		svc, user, meeting := setup(t, domain.MeetingOngoing)

		_, err := svc.Record(ctx, user.ID, meeting.ID, domain.AttendanceAbsent)
		require.NoError(t, err)

		// Close the meeting; the single edit must still go through.
		require.NoError(t, svc.Store.Meetings().UpdateMeetingStatus(ctx, meeting.ID, domain.MeetingCompleted))

		result, err := svc.Record(ctx, user.ID, meeting.ID, domain.AttendanceLegalLate)
		require.NoError(t, err)
		require.Equal(t, domain.AttendanceLegalLate, result.Attendance.Status)
		require.Equal(t, 1, result.Attendance.UpdateCount)
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		svc, user, meeting := setup(t, domain.MeetingOngoing)

		_, err := svc.Record(ctx, user.ID, meeting.ID, domain.AttendanceStatus("SLEEPING"))
		require.ErrorIs(t, err, ErrInvalidAttendanceStatus)
	})
}

func TestAttendanceRecordMembershipGate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	member := seedUser(t, s, "alice", domain.RoleMember)
	outsider := seedUser(t, s, "bob", domain.RoleMember)
	committee := seedCommittee(t, s, "Finance")
	seedMember(t, s, member.ID, committee.ID)
	meeting := seedMeeting(t, s, committee.ID, time.Now().UTC(), domain.MeetingOngoing)

	svc := &AttendanceService{Store: s}

	_, err := svc.Record(ctx, outsider.ID, meeting.ID, domain.AttendancePresent)
	require.ErrorIs(t, err, ErrNotCommitteeMember)

	// A soft-deleted membership is no membership at all.
	membership, err := s.Members().GetMember(ctx, member.ID, committee.ID)
	require.NoError(t, err)
	require.NoError(t, s.Members().SetMemberActive(ctx, membership.ID, false, time.Time{}))

	_, err = svc.Record(ctx, member.ID, meeting.ID, domain.AttendancePresent)
	require.ErrorIs(t, err, ErrNotCommitteeMember)
}

func TestAttendanceRecordMissingMeeting(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	user := seedUser(t, s, "alice", domain.RoleMember)

	svc := &AttendanceService{Store: s}

	_, err := svc.Record(ctx, user.ID, "01JMISSING", domain.AttendancePresent)
	require.ErrorIs(t, err, ErrMeetingNotFound)
}

func TestAttendanceGetOwn(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	user := seedUser(t, s, "alice", domain.RoleMember)
	committee := seedCommittee(t, s, "Finance")
	seedMember(t, s, user.ID, committee.ID)
	meeting := seedMeeting(t, s, committee.ID, time.Now().UTC(), domain.MeetingOngoing)

	svc := &AttendanceService{Store: s}

	_, err := svc.GetOwn(ctx, user.ID, meeting.ID)
	require.ErrorIs(t, err, ErrAttendanceNotFound)

	_, err = svc.Record(ctx, user.ID, meeting.ID, domain.AttendanceLeave)
	require.NoError(t, err)

	own, err := svc.GetOwn(ctx, user.ID, meeting.ID)
	require.NoError(t, err)
	require.Equal(t, domain.AttendanceLeave, own.Attendance.Status)
	require.Equal(t, meeting.ID, own.Meeting.ID)
	require.Equal(t, committee.Name, own.Meeting.Committee.Name)
}

func TestAttendanceRoster(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	alice := seedUser(t, s, "alice", domain.RoleMember)
	bob := seedUser(t, s, "bob", domain.RoleMember)
	carol := seedUser(t, s, "carol", domain.RoleMember)
	outsider := seedUser(t, s, "dave", domain.RoleMember)
	admin := seedUser(t, s, "erin", domain.RoleAdmin)

	committee := seedCommittee(t, s, "Finance")
	for _, u := range []domain.User{alice, bob, carol} {
		seedMember(t, s, u.ID, committee.ID)
	}
	meeting := seedMeeting(t, s, committee.ID, time.Now().UTC(), domain.MeetingOngoing)

	svc := &AttendanceService{Store: s}

	_, err := svc.Record(ctx, bob.ID, meeting.ID, domain.AttendancePresent)
	require.NoError(t, err)

	t.Run("members see every active member with gaps as nil", func(t *testing.T) {
		_, entries, err := svc.Roster(ctx, alice.ID, domain.RoleMember, meeting.ID)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		// Ordered by name: alice, bob, carol.
		require.Equal(t, "alice", entries[0].User.Name)
		require.Nil(t, entries[0].Attendance)
		require.Equal(t, "bob", entries[1].User.Name)
		require.NotNil(t, entries[1].Attendance)
		require.Equal(t, domain.AttendancePresent, entries[1].Attendance.Status)
		require.Nil(t, entries[2].Attendance)
	})

	t.Run("outsiders are rejected, admins are not", func(t *testing.T) {
		_, _, err := svc.Roster(ctx, outsider.ID, domain.RoleMember, meeting.ID)
		require.ErrorIs(t, err, ErrNotCommitteeMember)

		_, entries, err := svc.Roster(ctx, admin.ID, domain.RoleAdmin, meeting.ID)
		require.NoError(t, err)
		require.Len(t, entries, 3)
	})
}
