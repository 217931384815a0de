package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/quorumhq/rollcall/pkg/rollcallsdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingLifecycle(t *testing.T) {
	baseURL := newTestServer(t)
	admin := adminClient(t, baseURL)

	committee := newCommittee(t, admin, "Finance Committee")

	created, err := admin.CreateMeeting(t.Context(), rollcallsdk.CreateMeetingRequest{
		CommitteeID: committee.ID,
		Date:        "2026-09-01",
		Notes:       "quarterly budget review",
	})
	require.NoError(t, err)
	assert.Equal(t, "SCHEDULED", created.Meeting.Status)
	assert.Equal(t, committee.ID, created.Meeting.CommitteeID)
	assert.Equal(t, committee.Name, created.Meeting.Committee.Name)

	updated, err := admin.UpdateMeetingStatus(t.Context(), created.Meeting.ID, "ONGOING")
	require.NoError(t, err)
	assert.Equal(t, "ONGOING", updated.Meeting.Status)

	// Any of the four values may be set, including going back.
	updated, err = admin.UpdateMeetingStatus(t.Context(), created.Meeting.ID, "SCHEDULED")
	require.NoError(t, err)
	assert.Equal(t, "SCHEDULED", updated.Meeting.Status)

	_, err = admin.UpdateMeetingStatus(t.Context(), created.Meeting.ID, "PAUSED")
	requireAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeBadRequest)
}

func TestMeetingValidation(t *testing.T) {
	baseURL := newTestServer(t)
	admin := adminClient(t, baseURL)

	// Missing committee and date.
	_, err := admin.CreateMeeting(t.Context(), rollcallsdk.CreateMeetingRequest{})
	requireAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeBadRequest)

	// Malformed date.
	committee := newCommittee(t, admin, "Audit Committee")
	_, err = admin.CreateMeeting(t.Context(), rollcallsdk.CreateMeetingRequest{
		CommitteeID: committee.ID,
		Date:        "next tuesday",
	})
	requireAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeBadRequest)

	// Unknown committee.
	_, err = admin.CreateMeeting(t.Context(), rollcallsdk.CreateMeetingRequest{
		CommitteeID: "01K00000000000000000000000",
		Date:        "2026-09-01",
	})
	requireAPIError(t, err, http.StatusNotFound, rollcallsdk.ErrorCodeNotFound)
}

func TestMeetingListPagination(t *testing.T) {
	baseURL := newTestServer(t)
	admin := adminClient(t, baseURL)

	committee := newCommittee(t, admin, "Events Committee")
	for day := 1; day <= 5; day++ {
		_, err := admin.CreateMeeting(t.Context(), rollcallsdk.CreateMeetingRequest{
			CommitteeID: committee.ID,
			Date:        time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
		})
		require.NoError(t, err)
	}

	page, err := admin.ListCommitteeMeetings(t.Context(), committee.ID, "", 3, 0)
	require.NoError(t, err)
	assert.Len(t, page.Meetings, 3)
	assert.EqualValues(t, 5, page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.Limit)
	assert.Equal(t, committee.Name, page.Meetings[0].Committee.Name)

	// Newest first.
	assert.True(t, page.Meetings[0].Date.After(page.Meetings[1].Date))

	rest, err := admin.ListCommitteeMeetings(t.Context(), committee.ID, "", 3, 3)
	require.NoError(t, err)
	assert.Len(t, rest.Meetings, 2)

	// Status filter.
	filtered, err := admin.ListCommitteeMeetings(t.Context(), committee.ID, "COMPLETED", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, filtered.Meetings)
	assert.EqualValues(t, 0, filtered.Pagination.Total)
}

func TestMeetingDetailVisibility(t *testing.T) {
	baseURL := newTestServer(t)
	admin := adminClient(t, baseURL)
	member, memberID := memberClient(t, baseURL, "alice@example.com", "Alice")
	outsider, _ := memberClient(t, baseURL, "mallory@example.com", "Mallory")

	committee := newCommittee(t, admin, "Strategy Committee")
	_, err := admin.AddMember(t.Context(), committee.ID, memberID)
	require.NoError(t, err)

	meeting := newMeeting(t, admin, committee.ID, "ONGOING")

	_, err = member.MarkAttendance(t.Context(), meeting.ID, "PRESENT")
	require.NoError(t, err)

	// Members see the attendance rows.
	detail, err := member.GetMeeting(t.Context(), meeting.ID)
	require.NoError(t, err)
	require.Len(t, detail.Attendances, 1)
	assert.Equal(t, "PRESENT", detail.Attendances[0].Status)
	assert.Equal(t, "Alice", detail.Attendances[0].User.Name)

	// Outsiders see the meeting but not the rows.
	detail, err = outsider.GetMeeting(t.Context(), meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, meeting.ID, detail.ID)
	assert.Empty(t, detail.Attendances)
}

func TestMyUpcomingMeetings(t *testing.T) {
	baseURL := newTestServer(t)
	admin := adminClient(t, baseURL)
	member, memberID := memberClient(t, baseURL, "bob@example.com", "Bob")

	committee := newCommittee(t, admin, "Finance Committee")
	other := newCommittee(t, admin, "Audit Committee")
	_, err := admin.AddMember(t.Context(), committee.ID, memberID)
	require.NoError(t, err)

	tomorrow := time.Now().UTC().Add(24 * time.Hour).Format("2006-01-02")

	created, err := admin.CreateMeeting(t.Context(), rollcallsdk.CreateMeetingRequest{
		CommitteeID: committee.ID,
		Date:        tomorrow,
	})
	require.NoError(t, err)
	mine, err := admin.UpdateMeetingStatus(t.Context(), created.Meeting.ID, "ONGOING")
	require.NoError(t, err)

	// A meeting in another committee never shows up on the member's calendar.
	otherCreated, err := admin.CreateMeeting(t.Context(), rollcallsdk.CreateMeetingRequest{
		CommitteeID: other.ID,
		Date:        tomorrow,
	})
	require.NoError(t, err)
	_, err = admin.UpdateMeetingStatus(t.Context(), otherCreated.Meeting.ID, "ONGOING")
	require.NoError(t, err)

	_, err = member.MarkAttendance(t.Context(), mine.Meeting.ID, "PRESENT")
	require.NoError(t, err)

	upcoming, err := member.MyUpcomingMeetings(t.Context())
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, mine.Meeting.ID, upcoming[0].ID)
	assert.Equal(t, committee.Name, upcoming[0].Committee.Name)
	assert.Equal(t, "Tuesday", upcoming[0].Committee.MeetingDay)
	require.NotNil(t, upcoming[0].MyAttendance)
	assert.Equal(t, "PRESENT", upcoming[0].MyAttendance.Status)
}
