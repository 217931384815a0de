package rollcallsdk

import "time"

// ============================================================================
// Auth
// ============================================================================

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest exchanges credentials for an access token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the public projection of a user account. The password hash never
// leaves the server.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// UserSummary is the compact user projection embedded in rosters and reports.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// ============================================================================
// Committees & membership
// ============================================================================

type Committee struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	MeetingDay  string    `json:"meetingDay"`
	MeetingTime string    `json:"meetingTime"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CommitteeRef is the compact committee projection embedded in meetings,
// attendance payloads and reports.
type CommitteeRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CommitteeSummary is a committee plus its membership/meeting counts, used by
// the listing endpoints.
type CommitteeSummary struct {
	Committee

	MemberCount  int64 `json:"memberCount"`
	MeetingCount int64 `json:"meetingCount"`
}

type CreateCommitteeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MeetingDay  string `json:"meetingDay"`
	MeetingTime string `json:"meetingTime"`
}

type CommitteeResponse struct {
	Message   string    `json:"message"`
	Committee Committee `json:"committee"`
}

// CommitteeMember is a membership row. Rows are never deleted; leaving a
// committee flips IsActive to false and re-joining flips it back.
type CommitteeMember struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	CommitteeID string    `json:"committeeId"`
	IsActive    bool      `json:"isActive"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// MemberWithUser pairs a membership row with the member's user summary.
type MemberWithUser struct {
	CommitteeMember

	User UserSummary `json:"user"`
}

// CommitteeDetail is the full committee view: active members and the most
// recent meetings.
type CommitteeDetail struct {
	Committee

	Members  []MemberWithUser `json:"members"`
	Meetings []Meeting        `json:"meetings"`
}

type AddMemberRequest struct {
	UserID string `json:"userId"`
}

type MemberResponse struct {
	Message string          `json:"message"`
	Member  CommitteeMember `json:"member"`
}

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Meetings
// ============================================================================

type Meeting struct {
	ID          string    `json:"id"`
	CommitteeID string    `json:"committeeId"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateMeetingRequest struct {
	CommitteeID string `json:"committeeId"`
	// Date accepts RFC 3339 or plain YYYY-MM-DD.
	Date  string `json:"date"`
	Notes string `json:"notes,omitempty"`
}

type UpdateMeetingStatusRequest struct {
	Status string `json:"status"`
}

// MeetingWithCommittee embeds the owning committee's summary.
type MeetingWithCommittee struct {
	Meeting

	Committee CommitteeRef `json:"committee"`
}

type MeetingResponse struct {
	Message string               `json:"message"`
	Meeting MeetingWithCommittee `json:"meeting"`
}

// MeetingListItem is a meeting plus how many attendance rows it has.
type MeetingListItem struct {
	Meeting

	Committee       CommitteeRef `json:"committee"`
	AttendanceCount int64        `json:"attendanceCount"`
}

type Pagination struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

type MeetingListResponse struct {
	Meetings   []MeetingListItem `json:"meetings"`
	Pagination Pagination        `json:"pagination"`
}

// UpcomingMeeting is a meeting on the caller's calendar with their own
// attendance row, if they have marked one.
type UpcomingMeeting struct {
	Meeting

	Committee    UpcomingCommitteeRef `json:"committee"`
	MyAttendance *Attendance          `json:"myAttendance,omitempty"`
}

// UpcomingCommitteeRef carries the schedule fields so clients can render
// "every Tuesday 18:00" without a second round trip.
type UpcomingCommitteeRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MeetingDay  string `json:"meetingDay"`
	MeetingTime string `json:"meetingTime"`
}

// MeetingDetail is the full meeting view for committee members and admins.
// Non-members receive the same type with Attendances omitted.
type MeetingDetail struct {
	Meeting

	Committee   CommitteeRef         `json:"committee"`
	Attendances []AttendanceWithUser `json:"attendances,omitempty"`
}

// ============================================================================
// Attendance
// ============================================================================

type Attendance struct {
	ID          string    `json:"id"`
	MeetingID   string    `json:"meetingId"`
	UserID      string    `json:"userId"`
	Status      string    `json:"status"`
	UpdateCount int       `json:"updateCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MarkAttendanceRequest struct {
	MeetingID string `json:"meetingId"`
	Status    string `json:"status"`
}

type AttendanceResponse struct {
	Message    string     `json:"message"`
	Attendance Attendance `json:"attendance"`
}

// AttendanceDetail is the caller's own attendance row with meeting context.
type AttendanceDetail struct {
	Attendance

	Meeting MeetingWithCommittee `json:"meeting"`
}

type AttendanceWithUser struct {
	Attendance

	User UserSummary `json:"user"`
}

// RosterEntry pairs an active committee member with their attendance row for
// one meeting. Attendance is null for members who have not marked anything.
type RosterEntry struct {
	User       UserSummary `json:"user"`
	Attendance *Attendance `json:"attendance"`
}

// MeetingRosterResponse is the full roster view of one meeting.
type MeetingRosterResponse struct {
	Meeting          MeetingWithCommittee `json:"meeting"`
	MemberAttendance []RosterEntry        `json:"memberAttendance"`
}

// ============================================================================
// Reports
// ============================================================================

// DateRange echoes the requested reporting window.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Statistics is one aggregate block. The sum of the five status counts always
// equals Total, and AttendanceRate is a formatted percentage string such as
// "66.67%" (or "0%" when Total is zero).
type Statistics struct {
	Present        int    `json:"present"`
	LegalLate      int    `json:"legalLate"`
	Late           int    `json:"late"`
	Leave          int    `json:"leave"`
	Absent         int    `json:"absent"`
	Total          int    `json:"total"`
	AttendanceRate string `json:"attendanceRate"`
}

// AttendanceRecord is one meeting on a member's timeline. Status is the
// recorded value or ABSENT when no row exists.
type AttendanceRecord struct {
	MeetingID string    `json:"meetingId"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
}

// CommitteeReportMember is one member's block in a committee report.
type CommitteeReportMember struct {
	User        UserSummary        `json:"user"`
	Attendances []AttendanceRecord `json:"attendances"`
	Statistics  Statistics         `json:"statistics"`
}

type CommitteeReportCommittee struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CommitteeReport struct {
	Committee     CommitteeReportCommittee `json:"committee"`
	DateRange     DateRange                `json:"dateRange"`
	TotalMeetings int                      `json:"totalMeetings"`
	Members       []CommitteeReportMember  `json:"members"`
}

// MemberCommitteeReport is one committee's block in a member report.
type MemberCommitteeReport struct {
	Committee  CommitteeRef       `json:"committee"`
	Meetings   []AttendanceRecord `json:"meetings"`
	Statistics Statistics         `json:"statistics"`
}

type MemberReport struct {
	User              UserSummary             `json:"user"`
	DateRange         DateRange               `json:"dateRange"`
	Committees        []MemberCommitteeReport `json:"committees"`
	OverallStatistics Statistics              `json:"overallStatistics"`
}

// ============================================================================
// Health
// ============================================================================

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
