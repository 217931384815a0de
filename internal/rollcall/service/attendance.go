package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/quorumhq/rollcall/internal/rollcall/store"
	"github.com/quorumhq/rollcall/pkg/idx"
	"github.com/quorumhq/rollcall/pkg/slogx"
)

var (
	ErrInvalidAttendanceStatus = errors.New("invalid attendance status")
	ErrNotCommitteeMember      = errors.New("caller is not an active member of the meeting's committee")
	ErrMeetingNotOpen          = errors.New("meeting is not open for attendance")
	ErrAttendanceFinalized     = errors.New("attendance already finalized")
	ErrAttendanceNotFound      = errors.New("attendance not found")
)

type AttendanceService struct {
	Store store.Store
}

// RecordResult carries the written row and whether it was freshly created
// (201) as opposed to corrected (200).
type RecordResult struct {
	Attendance domain.Attendance
	Meeting    domain.MeetingWithCommittee
	Created    bool
}

// RosterEntry pairs an active member with their attendance row, nil when the
// member has not marked this meeting.
type RosterEntry struct {
	User       domain.UserSummary
	Attendance *domain.Attendance
}

// OwnAttendance is the caller's row joined with the meeting it belongs to.
type OwnAttendance struct {
	Attendance domain.Attendance
	Meeting    domain.MeetingWithCommittee
}

// Record marks or corrects the caller's attendance for a meeting.
//
// First write requires the meeting to be ONGOING and creates the row with
// updateCount 0. A second write is the one allowed correction and is not
// re-checked against the meeting status, so a member can still fix a mistake
// after the chair closes the meeting. Any further write fails.
func (s *AttendanceService) Record(ctx context.Context, userID, meetingID string, status domain.AttendanceStatus) (RecordResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Status must be one of the five closed values.
	if !status.Valid() {
		return RecordResult{}, ErrInvalidAttendanceStatus
	}

	// 2. The meeting must exist.
	meeting, err := s.Store.Meetings().GetMeetingByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RecordResult{}, ErrMeetingNotFound
		}
		return RecordResult{}, err
	}

	// 3. Only active members of the committee may mark themselves.
	if _, err := s.Store.Members().GetActiveMember(ctx, userID, meeting.CommitteeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("attendance attempt by non-member",
				slog.String("user_id", userID),
				slog.String("meeting_id", meetingID),
			)
			return RecordResult{}, ErrNotCommitteeMember
		}
		return RecordResult{}, err
	}

	var result RecordResult
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Attendance().GetAttendance(ctx, meetingID, userID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			// 4a. First write: only open while the meeting is running.
			if meeting.Status != domain.MeetingOngoing {
				return ErrMeetingNotOpen
			}

			attendance := domain.Attendance{
				ID:        idx.New().String(),
				MeetingID: meetingID,
				UserID:    userID,
				Status:    status,
			}
			if err := tx.Attendance().CreateAttendance(ctx, attendance); err != nil {
				if errors.Is(err, store.ErrAlreadyExists) {
					// Lost a create race; the row is now finalizable only once.
					return ErrAttendanceFinalized
				}
				return err
			}

			created, err := tx.Attendance().GetAttendance(ctx, meetingID, userID)
			if err != nil {
				return err
			}
			result = RecordResult{Attendance: created, Meeting: meeting, Created: true}
			return nil

		case err != nil:
			return err

		default:
			// 4b. The one allowed correction. The conditional update only
			// succeeds while updateCount is still 0.
			ok, err := tx.Attendance().FinalizeAttendance(ctx, existing.ID, status)
			if err != nil {
				return err
			}
			if !ok {
				return ErrAttendanceFinalized
			}

			updated, err := tx.Attendance().GetAttendance(ctx, meetingID, userID)
			if err != nil {
				return err
			}
			result = RecordResult{Attendance: updated, Meeting: meeting}
			return nil
		}
	})
	if err != nil {
		return RecordResult{}, err
	}

	log.Info("attendance recorded",
		slog.String("user_id", userID),
		slog.String("meeting_id", meetingID),
		slog.String("status", string(result.Attendance.Status)),
		slog.Bool("created", result.Created),
	)
	return result, nil
}

// GetOwn returns the caller's attendance row for a meeting.
func (s *AttendanceService) GetOwn(ctx context.Context, userID, meetingID string) (OwnAttendance, error) {
	meeting, err := s.Store.Meetings().GetMeetingByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return OwnAttendance{}, ErrMeetingNotFound
		}
		return OwnAttendance{}, err
	}

	attendance, err := s.Store.Attendance().GetAttendance(ctx, meetingID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return OwnAttendance{}, ErrAttendanceNotFound
		}
		return OwnAttendance{}, err
	}

	return OwnAttendance{Attendance: attendance, Meeting: meeting}, nil
}

// ListForMeeting returns the recorded rows for a meeting with user details.
// Access control is the caller's problem.
func (s *AttendanceService) ListForMeeting(ctx context.Context, meetingID string) ([]domain.AttendanceWithUser, error) {
	return s.Store.Attendance().ListByMeetingWithUsers(ctx, meetingID)
}

// Roster returns every active member of the meeting's committee paired with
// their attendance row or nil, ordered by member name. The caller must be an
// active member themselves or an admin.
func (s *AttendanceService) Roster(ctx context.Context, callerID string, callerRole domain.Role, meetingID string) (domain.MeetingWithCommittee, []RosterEntry, error) {
	meeting, err := s.Store.Meetings().GetMeetingByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MeetingWithCommittee{}, nil, ErrMeetingNotFound
		}
		return domain.MeetingWithCommittee{}, nil, err
	}

	if callerRole != domain.RoleAdmin {
		if _, err := s.Store.Members().GetActiveMember(ctx, callerID, meeting.CommitteeID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.MeetingWithCommittee{}, nil, ErrNotCommitteeMember
			}
			return domain.MeetingWithCommittee{}, nil, err
		}
	}

	members, err := s.Store.Members().ListActiveMembers(ctx, meeting.CommitteeID)
	if err != nil {
		return domain.MeetingWithCommittee{}, nil, err
	}

	records, err := s.Store.Attendance().ListByMeeting(ctx, meetingID)
	if err != nil {
		return domain.MeetingWithCommittee{}, nil, err
	}

	byUser := make(map[string]domain.Attendance, len(records))
	for _, record := range records {
		byUser[record.UserID] = record
	}

	entries := make([]RosterEntry, 0, len(members))
	for _, member := range members {
		entry := RosterEntry{User: member.User}
		if record, ok := byUser[member.UserID]; ok {
			attendance := record
			entry.Attendance = &attendance
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].User.Name < entries[j].User.Name
	})
	return meeting, entries, nil
}
