package domain

import "time"

// MeetingStatus is the lifecycle state of a meeting. Any status may be set
// from any other; attendance recording is only open while ONGOING.
type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "SCHEDULED"
	MeetingOngoing   MeetingStatus = "ONGOING"
	MeetingCompleted MeetingStatus = "COMPLETED"
	MeetingCancelled MeetingStatus = "CANCELLED"
)

func (s MeetingStatus) Valid() bool {
	switch s {
	case MeetingScheduled, MeetingOngoing, MeetingCompleted, MeetingCancelled:
		return true
	}
	return false
}

type Meeting struct {
	ID          string
	CommitteeID string
	Date        time.Time
	Status      MeetingStatus
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MeetingWithCommittee struct {
	Meeting
	Committee Committee
}

// MeetingWithAttendanceCount backs committee meeting listings.
type MeetingWithAttendanceCount struct {
	Meeting
	AttendanceCount int
}
