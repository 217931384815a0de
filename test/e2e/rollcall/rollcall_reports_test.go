package rollcall_test

import (
	"testing"
	"time"

	"github.com/quorumhq/rollcall/pkg/rollcallsdk"
	"github.com/stretchr/testify/require"
)

// TestCommitteeReportFlow marks attendance across two meetings, completes
// them, and verifies the committee report aggregates correctly. Members with
// no row for a completed meeting count as absent.
func TestCommitteeReportFlow(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t)
	defer cleanup()

	admin := loginAdmin(t, baseURL)
	alice, aliceID := registerMember(t, baseURL, "alice@example.com", "Alice")
	_, bobID := registerMember(t, baseURL, "bob@example.com", "Bob")

	committee := createCommittee(t, admin, "Finance Committee")

	_, err := admin.AddMember(t.Context(), committee.ID, aliceID)
	require.NoError(t, err)
	_, err = admin.AddMember(t.Context(), committee.ID, bobID)
	require.NoError(t, err)

	// Two meetings; Alice attends both, Bob attends neither.
	for range 2 {
		meeting := createOngoingMeeting(t, admin, committee.ID)

		_, err = alice.MarkAttendance(t.Context(), meeting.ID, "PRESENT")
		require.NoError(t, err)

		_, err = admin.UpdateMeetingStatus(t.Context(), meeting.ID, "COMPLETED")
		require.NoError(t, err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	report, err := alice.CommitteeReport(t.Context(), committee.ID, today, today)
	require.NoError(t, err)
	require.Equal(t, committee.ID, report.Committee.ID)
	require.Equal(t, 2, report.TotalMeetings)
	require.Len(t, report.Members, 2)

	byID := map[string]rollcallsdk.CommitteeReportMember{}
	for _, m := range report.Members {
		byID[m.User.ID] = m
	}

	require.Equal(t, 2, byID[aliceID].Statistics.Present)
	require.Equal(t, "100.00%", byID[aliceID].Statistics.AttendanceRate)

	require.Equal(t, 2, byID[bobID].Statistics.Absent)
	require.Equal(t, "0.00%", byID[bobID].Statistics.AttendanceRate)

	t.Logf("Committee report aggregated %d meetings", report.TotalMeetings)
}

// TestReportAccessControl verifies the privacy gates: outsiders cannot read a
// committee report and members cannot read each other's member reports.
func TestReportAccessControl(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t)
	defer cleanup()

	admin := loginAdmin(t, baseURL)
	_, aliceID := registerMember(t, baseURL, "alice@example.com", "Alice")
	outsider, _ := registerMember(t, baseURL, "mallory@example.com", "Mallory")

	committee := createCommittee(t, admin, "Audit Committee")
	_, err := admin.AddMember(t.Context(), committee.ID, aliceID)
	require.NoError(t, err)

	today := time.Now().UTC().Format("2006-01-02")

	_, err = outsider.CommitteeReport(t.Context(), committee.ID, today, today)
	assertAPIError(t, err, rollcallsdk.ErrorCodeForbidden, "Outsider committee report should fail")

	_, err = outsider.MemberReport(t.Context(), aliceID, today, today, "")
	assertAPIError(t, err, rollcallsdk.ErrorCodeForbidden, "Cross-member report should fail")

	// Admin can read anyone's report.
	report, err := admin.MemberReport(t.Context(), aliceID, today, today, "")
	require.NoError(t, err)
	require.Equal(t, aliceID, report.User.ID)
}

// TestReportValidation verifies the date window requirements.
func TestReportValidation(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t)
	defer cleanup()

	admin := loginAdmin(t, baseURL)
	committee := createCommittee(t, admin, "Strategy Committee")

	// Missing window parameters.
	_, err := admin.CommitteeReport(t.Context(), committee.ID, "", "")
	assertAPIError(t, err, rollcallsdk.ErrorCodeBadRequest, "Missing dates should fail")

	// End before start.
	_, err = admin.CommitteeReport(t.Context(), committee.ID, "2026-02-01", "2026-01-01")
	assertAPIError(t, err, rollcallsdk.ErrorCodeBadRequest, "Inverted window should fail")
}
