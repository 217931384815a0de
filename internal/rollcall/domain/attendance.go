package domain

import (
	"fmt"
	"time"
)

// AttendanceStatus is the recorded state of a member at a meeting.
type AttendanceStatus string

const (
	AttendancePresent   AttendanceStatus = "PRESENT"
	AttendanceLegalLate AttendanceStatus = "LEGAL_LATE"
	AttendanceLate      AttendanceStatus = "LATE"
	AttendanceLeave     AttendanceStatus = "LEAVE"
	AttendanceAbsent    AttendanceStatus = "ABSENT"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceLegalLate, AttendanceLate, AttendanceLeave, AttendanceAbsent:
		return true
	}
	return false
}

// Attendance is a member's record for one meeting. UpdateCount enforces the
// single-edit rule: a record created at 0 may be corrected exactly once.
type Attendance struct {
	ID          string
	MeetingID   string
	UserID      string
	Status      AttendanceStatus
	UpdateCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Finalized reports whether the record has consumed its one allowed edit.
func (a Attendance) Finalized() bool { return a.UpdateCount >= 1 }

type AttendanceWithUser struct {
	Attendance
	User UserSummary
}

// StatusCounts accumulates per-status tallies for reporting.
type StatusCounts struct {
	Present   int
	LegalLate int
	Late      int
	Leave     int
	Absent    int
}

func (c *StatusCounts) Add(status AttendanceStatus) {
	switch status {
	case AttendancePresent:
		c.Present++
	case AttendanceLegalLate:
		c.LegalLate++
	case AttendanceLate:
		c.Late++
	case AttendanceLeave:
		c.Leave++
	case AttendanceAbsent:
		c.Absent++
	}
}

func (c StatusCounts) Total() int {
	return c.Present + c.LegalLate + c.Late + c.Leave + c.Absent
}

// Rate formats the attendance rate as a percentage string. PRESENT and
// LEGAL_LATE count as attended; an empty window reports "0%".
func (c StatusCounts) Rate() string {
	total := c.Total()
	if total == 0 {
		return "0%"
	}
	rate := float64(c.Present+c.LegalLate) / float64(total) * 100
	return fmt.Sprintf("%.2f%%", rate)
}
