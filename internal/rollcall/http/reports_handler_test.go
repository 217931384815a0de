package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/quorumhq/rollcall/pkg/rollcallsdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitteeReportEndpoint(t *testing.T) {
	baseURL := newTestServer(t)
	admin := adminClient(t, baseURL)
	alice, aliceID := memberClient(t, baseURL, "alice@example.com", "Alice")
	_, bobID := memberClient(t, baseURL, "bob@example.com", "Bob")

	committee := newCommittee(t, admin, "Finance Committee")
	_, err := admin.AddMember(t.Context(), committee.ID, aliceID)
	require.NoError(t, err)
	_, err = admin.AddMember(t.Context(), committee.ID, bobID)
	require.NoError(t, err)

	// Alice attends two meetings; Bob never marks anything.
	for range 2 {
		meeting := newMeeting(t, admin, committee.ID, "ONGOING")
		_, err = alice.MarkAttendance(t.Context(), meeting.ID, "PRESENT")
		require.NoError(t, err)
		_, err = admin.UpdateMeetingStatus(t.Context(), meeting.ID, "COMPLETED")
		require.NoError(t, err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	report, err := alice.CommitteeReport(t.Context(), committee.ID, today, today)
	require.NoError(t, err)
	assert.Equal(t, committee.ID, report.Committee.ID)
	assert.Equal(t, today, report.DateRange.Start)
	assert.Equal(t, today, report.DateRange.End)
	assert.Equal(t, 2, report.TotalMeetings)
	require.Len(t, report.Members, 2)

	byID := map[string]rollcallsdk.CommitteeReportMember{}
	for _, m := range report.Members {
		byID[m.User.ID] = m
	}

	assert.Equal(t, 2, byID[aliceID].Statistics.Present)
	assert.Equal(t, "100.00%", byID[aliceID].Statistics.AttendanceRate)
	require.Len(t, byID[aliceID].Attendances, 2)

	// Missing rows count as absences on the timeline.
	assert.Equal(t, 2, byID[bobID].Statistics.Absent)
	assert.Equal(t, "0.00%", byID[bobID].Statistics.AttendanceRate)
	require.Len(t, byID[bobID].Attendances, 2)
	assert.Equal(t, "ABSENT", byID[bobID].Attendances[0].Status)
}

func TestCommitteeReportAccess(t *testing.T) {
	baseURL := newTestServer(t)
	admin := adminClient(t, baseURL)
	outsider, _ := memberClient(t, baseURL, "mallory@example.com", "Mallory")

	committee := newCommittee(t, admin, "Audit Committee")
	today := time.Now().UTC().Format("2006-01-02")

	// Non-members get a 403 whether or not the committee exists.
	_, err := outsider.CommitteeReport(t.Context(), committee.ID, today, today)
	requireAPIError(t, err, http.StatusForbidden, rollcallsdk.ErrorCodeForbidden)

	_, err = outsider.CommitteeReport(t.Context(), "01K00000000000000000000000", today, today)
	requireAPIError(t, err, http.StatusForbidden, rollcallsdk.ErrorCodeForbidden)

	// Admins bypass the membership gate and see real 404s.
	_, err = admin.CommitteeReport(t.Context(), "01K00000000000000000000000", today, today)
	requireAPIError(t, err, http.StatusNotFound, rollcallsdk.ErrorCodeNotFound)
}

func TestMemberReportEndpoint(t *testing.T) {
	baseURL := newTestServer(t)
	admin := adminClient(t, baseURL)
	alice, aliceID := memberClient(t, baseURL, "alice@example.com", "Alice")
	bob, _ := memberClient(t, baseURL, "bob@example.com", "Bob")

	committee := newCommittee(t, admin, "Strategy Committee")
	_, err := admin.AddMember(t.Context(), committee.ID, aliceID)
	require.NoError(t, err)

	meeting := newMeeting(t, admin, committee.ID, "ONGOING")
	_, err = alice.MarkAttendance(t.Context(), meeting.ID, "PRESENT")
	require.NoError(t, err)
	_, err = admin.UpdateMeetingStatus(t.Context(), meeting.ID, "COMPLETED")
	require.NoError(t, err)

	today := time.Now().UTC().Format("2006-01-02")

	// Self access.
	report, err := alice.MemberReport(t.Context(), aliceID, today, today, "")
	require.NoError(t, err)
	assert.Equal(t, aliceID, report.User.ID)
	require.Len(t, report.Committees, 1)
	assert.Equal(t, committee.ID, report.Committees[0].Committee.ID)
	assert.Equal(t, "100.00%", report.OverallStatistics.AttendanceRate)

	// Committee filter.
	report, err = alice.MemberReport(t.Context(), aliceID, today, today, committee.ID)
	require.NoError(t, err)
	require.Len(t, report.Committees, 1)

	// Another member is forbidden; an admin is not.
	_, err = bob.MemberReport(t.Context(), aliceID, today, today, "")
	requireAPIError(t, err, http.StatusForbidden, rollcallsdk.ErrorCodeForbidden)

	_, err = admin.MemberReport(t.Context(), aliceID, today, today, "")
	require.NoError(t, err)

	// Unknown subject is a 404 for admins.
	_, err = admin.MemberReport(t.Context(), "01K00000000000000000000000", today, today, "")
	requireAPIError(t, err, http.StatusNotFound, rollcallsdk.ErrorCodeNotFound)
}

func TestReportWindowValidation(t *testing.T) {
	baseURL := newTestServer(t)
	admin := adminClient(t, baseURL)

	committee := newCommittee(t, admin, "Events Committee")

	_, err := admin.CommitteeReport(t.Context(), committee.ID, "", "")
	requireAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeBadRequest)

	_, err = admin.CommitteeReport(t.Context(), committee.ID, "2026-02-01", "2026-01-01")
	requireAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeBadRequest)

	_, err = admin.CommitteeReport(t.Context(), committee.ID, "February 1st", "2026-02-10")
	requireAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeBadRequest)
}
