package service

import (
	"context"
	"errors"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/quorumhq/rollcall/internal/rollcall/store"
)

var (
	ErrReportForbidden = errors.New("caller may not view this report")
)

type ReportService struct {
	Store store.Store
}

// CommitteeReport aggregates attendance across a committee's COMPLETED and
// ONGOING meetings in the window. Members with no row for a meeting count as
// ABSENT. The membership gate runs before the committee lookup, so outsiders
// learn nothing about which committees exist.
func (s *ReportService) CommitteeReport(ctx context.Context, callerID string, callerRole domain.Role, committeeID string, window domain.DateRange) (domain.CommitteeReport, error) {
	// 1. Membership gate first.
	if callerRole != domain.RoleAdmin {
		_, err := s.Store.Members().GetActiveMember(ctx, callerID, committeeID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.CommitteeReport{}, ErrReportForbidden
			}
			return domain.CommitteeReport{}, err
		}
	}

	committee, err := s.Store.Committees().GetCommitteeByID(ctx, committeeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.CommitteeReport{}, ErrCommitteeNotFound
		}
		return domain.CommitteeReport{}, err
	}

	meetings, err := s.Store.Meetings().ListInRange(ctx, committeeID, window.Start, window.End)
	if err != nil {
		return domain.CommitteeReport{}, err
	}

	members, err := s.Store.Members().ListActiveMembers(ctx, committeeID)
	if err != nil {
		return domain.CommitteeReport{}, err
	}

	recorded, err := s.attendanceByMeetingAndUser(ctx, meetings)
	if err != nil {
		return domain.CommitteeReport{}, err
	}

	report := domain.CommitteeReport{
		Committee:     committee,
		Range:         window,
		TotalMeetings: len(meetings),
		Members:       make([]domain.CommitteeReportMember, 0, len(members)),
	}

	for _, member := range members {
		records, stats := buildTimeline(meetings, recorded, member.UserID)
		report.Members = append(report.Members, domain.CommitteeReportMember{
			User:       member.User,
			Statistics: stats,
			Records:    records,
		})
	}
	return report, nil
}

// MemberReport aggregates one user's attendance across their active
// committees, or a single committee when committeeID is non-empty. Members
// may only view their own report; admins may view anyone's.
func (s *ReportService) MemberReport(ctx context.Context, callerID string, callerRole domain.Role, userID, committeeID string, window domain.DateRange) (domain.MemberReport, error) {
	if callerRole != domain.RoleAdmin && callerID != userID {
		return domain.MemberReport{}, ErrReportForbidden
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MemberReport{}, ErrUserNotFound
		}
		return domain.MemberReport{}, err
	}

	memberships, err := s.Store.Members().ListMembershipsForUser(ctx, userID)
	if err != nil {
		return domain.MemberReport{}, err
	}

	report := domain.MemberReport{
		User:       user.Summary(),
		Range:      window,
		Committees: []domain.MemberCommitteeReport{},
	}

	for _, membership := range memberships {
		if committeeID != "" && membership.CommitteeID != committeeID {
			continue
		}

		meetings, err := s.Store.Meetings().ListInRange(ctx, membership.CommitteeID, window.Start, window.End)
		if err != nil {
			return domain.MemberReport{}, err
		}

		recorded, err := s.attendanceByMeetingAndUser(ctx, meetings)
		if err != nil {
			return domain.MemberReport{}, err
		}

		records, stats := buildTimeline(meetings, recorded, userID)

		report.Committees = append(report.Committees, domain.MemberCommitteeReport{
			Committee:  membership.Committee,
			Statistics: stats,
			Records:    records,
		})

		report.Overall.Counts.Present += stats.Counts.Present
		report.Overall.Counts.LegalLate += stats.Counts.LegalLate
		report.Overall.Counts.Late += stats.Counts.Late
		report.Overall.Counts.Leave += stats.Counts.Leave
		report.Overall.Counts.Absent += stats.Counts.Absent
		report.Overall.TotalMeetings += stats.TotalMeetings
	}
	return report, nil
}

type attendanceKey struct {
	meetingID string
	userID    string
}

func (s *ReportService) attendanceByMeetingAndUser(ctx context.Context, meetings []domain.Meeting) (map[attendanceKey]domain.Attendance, error) {
	ids := make([]string, len(meetings))
	for i, meeting := range meetings {
		ids[i] = meeting.ID
	}

	records, err := s.Store.Attendance().ListByMeetingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make(map[attendanceKey]domain.Attendance, len(records))
	for _, record := range records {
		out[attendanceKey{record.MeetingID, record.UserID}] = record
	}
	return out, nil
}

// buildTimeline walks the in-scope meetings oldest first and fills the gaps
// with ABSENT entries.
func buildTimeline(meetings []domain.Meeting, recorded map[attendanceKey]domain.Attendance, userID string) ([]domain.AttendanceRecord, domain.MemberStatistics) {
	records := make([]domain.AttendanceRecord, 0, len(meetings))
	var counts domain.StatusCounts

	for _, meeting := range meetings {
		entry := domain.AttendanceRecord{
			MeetingID:   meeting.ID,
			MeetingDate: meeting.Date,
			Status:      domain.AttendanceAbsent,
		}
		if row, ok := recorded[attendanceKey{meeting.ID, userID}]; ok {
			entry.Status = row.Status
			entry.Recorded = true
		}
		counts.Add(entry.Status)
		records = append(records, entry)
	}

	return records, domain.MemberStatistics{
		Counts:        counts,
		TotalMeetings: len(meetings),
	}
}
