package http

import (
	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/quorumhq/rollcall/internal/rollcall/service"
	"github.com/quorumhq/rollcall/pkg/rollcallsdk"
)

// Wire mappers. Services speak domain types; everything crossing the HTTP
// boundary goes through these.

func toUser(u domain.User) rollcallsdk.User {
	return rollcallsdk.User{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}

func toUserSummary(u domain.UserSummary) rollcallsdk.UserSummary {
	return rollcallsdk.UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toCommittee(c domain.Committee) rollcallsdk.Committee {
	return rollcallsdk.Committee{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		MeetingDay:  c.MeetingDay,
		MeetingTime: c.MeetingTime,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

func toCommitteeRef(c domain.Committee) rollcallsdk.CommitteeRef {
	return rollcallsdk.CommitteeRef{ID: c.ID, Name: c.Name}
}

func toCommitteeSummaries(in []domain.CommitteeSummary) []rollcallsdk.CommitteeSummary {
	out := make([]rollcallsdk.CommitteeSummary, 0, len(in))
	for _, s := range in {
		out = append(out, rollcallsdk.CommitteeSummary{
			Committee:    toCommittee(s.Committee),
			MemberCount:  int64(s.MemberCount),
			MeetingCount: int64(s.MeetingCount),
		})
	}
	return out
}

func toMember(m domain.Membership) rollcallsdk.CommitteeMember {
	return rollcallsdk.CommitteeMember{
		ID:          m.ID,
		UserID:      m.UserID,
		CommitteeID: m.CommitteeID,
		IsActive:    m.IsActive,
		JoinedAt:    m.JoinedAt,
	}
}

func toMeeting(m domain.Meeting) rollcallsdk.Meeting {
	return rollcallsdk.Meeting{
		ID:          m.ID,
		CommitteeID: m.CommitteeID,
		Date:        m.Date,
		Status:      string(m.Status),
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}

func toMeetingWithCommittee(m domain.MeetingWithCommittee) rollcallsdk.MeetingWithCommittee {
	return rollcallsdk.MeetingWithCommittee{
		Meeting:   toMeeting(m.Meeting),
		Committee: toCommitteeRef(m.Committee),
	}
}

func toAttendance(a domain.Attendance) rollcallsdk.Attendance {
	return rollcallsdk.Attendance{
		ID:          a.ID,
		MeetingID:   a.MeetingID,
		UserID:      a.UserID,
		Status:      string(a.Status),
		UpdateCount: a.UpdateCount,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toRosterEntries(in []service.RosterEntry) []rollcallsdk.RosterEntry {
	out := make([]rollcallsdk.RosterEntry, 0, len(in))
	for _, entry := range in {
		wire := rollcallsdk.RosterEntry{User: toUserSummary(entry.User)}
		if entry.Attendance != nil {
			attendance := toAttendance(*entry.Attendance)
			wire.Attendance = &attendance
		}
		out = append(out, wire)
	}
	return out
}

func toStatistics(s domain.MemberStatistics) rollcallsdk.Statistics {
	return rollcallsdk.Statistics{
		Present:        s.Counts.Present,
		LegalLate:      s.Counts.LegalLate,
		Late:           s.Counts.Late,
		Leave:          s.Counts.Leave,
		Absent:         s.Counts.Absent,
		Total:          s.TotalMeetings,
		AttendanceRate: s.Counts.Rate(),
	}
}

func toAttendanceRecords(in []domain.AttendanceRecord) []rollcallsdk.AttendanceRecord {
	out := make([]rollcallsdk.AttendanceRecord, 0, len(in))
	for _, record := range in {
		out = append(out, rollcallsdk.AttendanceRecord{
			MeetingID: record.MeetingID,
			Date:      record.MeetingDate,
			Status:    string(record.Status),
		})
	}
	return out
}
