package service

import (
	"context"
	"testing"
	"time"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/stretchr/testify/require"
)

func reportWindow() domain.DateRange {
	return domain.DateRange{
		Start: time.Now().UTC().Add(-30 * 24 * time.Hour),
		End:   time.Now().UTC().Add(24 * time.Hour),
	}
}

func mark(t *testing.T, s *AttendanceService, userID, meetingID string, status domain.AttendanceStatus) {
	t.Helper()
	_, err := s.Record(context.Background(), userID, meetingID, status)
	require.NoError(t, err)
}

func TestCommitteeReport(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	alice := seedUser(t, s, "alice", domain.RoleMember)
	bob := seedUser(t, s, "bob", domain.RoleMember)
	committee := seedCommittee(t, s, "Finance")
	seedMember(t, s, alice.ID, committee.ID)
	seedMember(t, s, bob.ID, committee.ID)

	now := time.Now().UTC()
	m1 := seedMeeting(t, s, committee.ID, now.Add(-72*time.Hour), domain.MeetingOngoing)
	m2 := seedMeeting(t, s, committee.ID, now.Add(-48*time.Hour), domain.MeetingOngoing)
	m3 := seedMeeting(t, s, committee.ID, now.Add(-24*time.Hour), domain.MeetingOngoing)
	// Cancelled and scheduled meetings never count towards reports.
	seedMeeting(t, s, committee.ID, now.Add(-12*time.Hour), domain.MeetingCancelled)
	seedMeeting(t, s, committee.ID, now.Add(12*time.Hour), domain.MeetingScheduled)

	attendance := &AttendanceService{Store: s}
	mark(t, attendance, alice.ID, m1.ID, domain.AttendancePresent)
	mark(t, attendance, alice.ID, m2.ID, domain.AttendanceLegalLate)
	// Alice has no row for m3: counted ABSENT.
	mark(t, attendance, bob.ID, m1.ID, domain.AttendanceLate)

	for _, id := range []string{m1.ID, m2.ID, m3.ID} {
		require.NoError(t, s.Meetings().UpdateMeetingStatus(ctx, id, domain.MeetingCompleted))
	}

	svc := &ReportService{Store: s}

	report, err := svc.CommitteeReport(ctx, alice.ID, domain.RoleMember, committee.ID, reportWindow())
	require.NoError(t, err)
	require.Equal(t, committee.ID, report.Committee.ID)
	require.Equal(t, 3, report.TotalMeetings)
	require.Len(t, report.Members, 2)

	byName := map[string]domain.CommitteeReportMember{}
	for _, member := range report.Members {
		byName[member.User.Name] = member
	}

	// (1 present + 1 legal late) / 3 meetings.
	aliceBlock := byName["alice"]
	require.Equal(t, 1, aliceBlock.Statistics.Counts.Present)
	require.Equal(t, 1, aliceBlock.Statistics.Counts.LegalLate)
	require.Equal(t, 1, aliceBlock.Statistics.Counts.Absent)
	require.Equal(t, 3, aliceBlock.Statistics.TotalMeetings)
	require.Equal(t, "66.67%", aliceBlock.Statistics.Counts.Rate())
	require.Len(t, aliceBlock.Records, 3)
	require.False(t, aliceBlock.Records[2].Recorded)
	require.Equal(t, domain.AttendanceAbsent, aliceBlock.Records[2].Status)

	// LATE does not count towards the rate.
	bobBlock := byName["bob"]
	require.Equal(t, 1, bobBlock.Statistics.Counts.Late)
	require.Equal(t, 2, bobBlock.Statistics.Counts.Absent)
	require.Equal(t, "0.00%", bobBlock.Statistics.Counts.Rate())
}

func TestCommitteeReportAccess(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	member := seedUser(t, s, "alice", domain.RoleMember)
	outsider := seedUser(t, s, "bob", domain.RoleMember)
	admin := seedUser(t, s, "carol", domain.RoleAdmin)
	committee := seedCommittee(t, s, "Finance")
	seedMember(t, s, member.ID, committee.ID)

	svc := &ReportService{Store: s}
	window := reportWindow()

	_, err := svc.CommitteeReport(ctx, outsider.ID, domain.RoleMember, committee.ID, window)
	require.ErrorIs(t, err, ErrReportForbidden)

	// The membership gate fires before existence disclosure.
	_, err = svc.CommitteeReport(ctx, outsider.ID, domain.RoleMember, "01JNOSUCH", window)
	require.ErrorIs(t, err, ErrReportForbidden)

	_, err = svc.CommitteeReport(ctx, admin.ID, domain.RoleAdmin, committee.ID, window)
	require.NoError(t, err)

	_, err = svc.CommitteeReport(ctx, admin.ID, domain.RoleAdmin, "01JNOSUCH", window)
	require.ErrorIs(t, err, ErrCommitteeNotFound)
}

func TestCommitteeReportEmptyWindow(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	alice := seedUser(t, s, "alice", domain.RoleMember)
	committee := seedCommittee(t, s, "Finance")
	seedMember(t, s, alice.ID, committee.ID)

	svc := &ReportService{Store: s}

	report, err := svc.CommitteeReport(ctx, alice.ID, domain.RoleMember, committee.ID, reportWindow())
	require.NoError(t, err)
	require.Equal(t, 0, report.TotalMeetings)
	require.Len(t, report.Members, 1)
	require.Equal(t, "0%", report.Members[0].Statistics.Counts.Rate())
	require.Empty(t, report.Members[0].Records)
}

func TestMemberReport(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	alice := seedUser(t, s, "alice", domain.RoleMember)
	admin := seedUser(t, s, "carol", domain.RoleAdmin)

	finance := seedCommittee(t, s, "Finance")
	audit := seedCommittee(t, s, "Audit")
	seedMember(t, s, alice.ID, finance.ID)
	seedMember(t, s, alice.ID, audit.ID)

	now := time.Now().UTC()
	f1 := seedMeeting(t, s, finance.ID, now.Add(-48*time.Hour), domain.MeetingOngoing)
	a1 := seedMeeting(t, s, audit.ID, now.Add(-24*time.Hour), domain.MeetingOngoing)

	attendance := &AttendanceService{Store: s}
	mark(t, attendance, alice.ID, f1.ID, domain.AttendancePresent)
	// No row for a1: ABSENT in the audit block.

	require.NoError(t, s.Meetings().UpdateMeetingStatus(ctx, f1.ID, domain.MeetingCompleted))
	require.NoError(t, s.Meetings().UpdateMeetingStatus(ctx, a1.ID, domain.MeetingCompleted))

	svc := &ReportService{Store: s}
	window := reportWindow()

	t.Run("folds per-committee counts into overall", func(t *testing.T) {
		report, err := svc.MemberReport(ctx, alice.ID, domain.RoleMember, alice.ID, "", window)
		require.NoError(t, err)
		require.Len(t, report.Committees, 2)
		require.Equal(t, 1, report.Overall.Counts.Present)
		require.Equal(t, 1, report.Overall.Counts.Absent)
		require.Equal(t, 2, report.Overall.TotalMeetings)
		require.Equal(t, "50.00%", report.Overall.Counts.Rate())
	})

	t.Run("committee filter narrows the report", func(t *testing.T) {
		report, err := svc.MemberReport(ctx, alice.ID, domain.RoleMember, alice.ID, finance.ID, window)
		require.NoError(t, err)
		require.Len(t, report.Committees, 1)
		require.Equal(t, finance.ID, report.Committees[0].Committee.ID)
		require.Equal(t, "100.00%", report.Overall.Counts.Rate())
	})

	t.Run("members cannot read other members' reports", func(t *testing.T) {
		_, err := svc.MemberReport(ctx, alice.ID, domain.RoleMember, admin.ID, "", window)
		require.ErrorIs(t, err, ErrReportForbidden)
	})

	t.Run("admins can read anyone's report", func(t *testing.T) {
		report, err := svc.MemberReport(ctx, admin.ID, domain.RoleAdmin, alice.ID, "", window)
		require.NoError(t, err)
		require.Equal(t, alice.ID, report.User.ID)
	})

	t.Run("unknown subject is not found", func(t *testing.T) {
		_, err := svc.MemberReport(ctx, admin.ID, domain.RoleAdmin, "01JNOSUCH", "", window)
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
