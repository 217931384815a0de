package domain

import "time"

// DateRange bounds a report window, inclusive of both endpoints.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// AttendanceRecord is a single meeting's outcome inside a report. Recorded is
// false when the member had no row and was counted ABSENT.
type AttendanceRecord struct {
	MeetingID   string
	MeetingDate time.Time
	Status      AttendanceStatus
	Recorded    bool
}

type MemberStatistics struct {
	Counts        StatusCounts
	TotalMeetings int
}

// CommitteeReport aggregates attendance for every active member of a
// committee across the meetings held in the window.
type CommitteeReport struct {
	Committee     Committee
	Range         DateRange
	TotalMeetings int
	Members       []CommitteeReportMember
}

type CommitteeReportMember struct {
	User       UserSummary
	Statistics MemberStatistics
	Records    []AttendanceRecord
}

// MemberReport aggregates one user's attendance, grouped by committee, with
// the per-committee counts folded into an overall block.
type MemberReport struct {
	User       UserSummary
	Range      DateRange
	Committees []MemberCommitteeReport
	Overall    MemberStatistics
}

type MemberCommitteeReport struct {
	Committee  Committee
	Statistics MemberStatistics
	Records    []AttendanceRecord
}
