package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/quorumhq/rollcall/internal/rollcall/store"
	"github.com/quorumhq/rollcall/pkg/idx"
	"github.com/quorumhq/rollcall/pkg/slogx"
)

var (
	ErrInvalidMeeting       = errors.New("committee id and date are required")
	ErrInvalidMeetingStatus = errors.New("invalid meeting status")
	ErrMeetingNotFound      = errors.New("meeting not found")
)

const upcomingMeetingLimit = 10

type MeetingService struct {
	Store store.Store
}

// MeetingPage is one page of a committee's meetings plus the unfiltered total
// for the same status filter.
type MeetingPage struct {
	Committee domain.Committee
	Meetings  []domain.MeetingWithAttendanceCount
	Total     int
	Limit     int
	Offset    int
}

// UpcomingMeeting pairs a meeting with the caller's own attendance row, when
// one exists.
type UpcomingMeeting struct {
	Meeting    domain.MeetingWithCommittee
	Attendance *domain.Attendance
}

// Create schedules a meeting for a committee. Status defaults to SCHEDULED
// when empty.
func (s *MeetingService) Create(ctx context.Context, committeeID, notes string, date time.Time, status domain.MeetingStatus) (domain.MeetingWithCommittee, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if committeeID == "" || date.IsZero() {
		return domain.MeetingWithCommittee{}, ErrInvalidMeeting
	}
	if status == "" {
		status = domain.MeetingScheduled
	}
	if !status.Valid() {
		return domain.MeetingWithCommittee{}, ErrInvalidMeetingStatus
	}

	// 2. The committee must exist.
	if _, err := s.Store.Committees().GetCommitteeByID(ctx, committeeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MeetingWithCommittee{}, ErrCommitteeNotFound
		}
		return domain.MeetingWithCommittee{}, err
	}

	meeting := domain.Meeting{
		ID:          idx.New().String(),
		CommitteeID: committeeID,
		Date:        date.UTC(),
		Status:      status,
		Notes:       notes,
	}

	if err := s.Store.Meetings().CreateMeeting(ctx, meeting); err != nil {
		log.Error("failed to create meeting", slog.Any("error", err))
		return domain.MeetingWithCommittee{}, err
	}

	created, err := s.Store.Meetings().GetMeetingByID(ctx, meeting.ID)
	if err != nil {
		return domain.MeetingWithCommittee{}, err
	}

	log.Info("meeting created",
		slog.String("meeting_id", created.ID),
		slog.String("committee_id", committeeID),
	)
	return created, nil
}

// UpdateStatus moves a meeting to any of the four statuses. There is no
// transition graph; COMPLETED back to ONGOING is allowed.
func (s *MeetingService) UpdateStatus(ctx context.Context, meetingID string, status domain.MeetingStatus) (domain.MeetingWithCommittee, error) {
	log := slogx.FromContext(ctx)

	if !status.Valid() {
		return domain.MeetingWithCommittee{}, ErrInvalidMeetingStatus
	}

	if err := s.Store.Meetings().UpdateMeetingStatus(ctx, meetingID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MeetingWithCommittee{}, ErrMeetingNotFound
		}
		log.Error("failed to update meeting status", slog.Any("error", err))
		return domain.MeetingWithCommittee{}, err
	}

	updated, err := s.Store.Meetings().GetMeetingByID(ctx, meetingID)
	if err != nil {
		return domain.MeetingWithCommittee{}, err
	}

	log.Info("meeting status updated",
		slog.String("meeting_id", meetingID),
		slog.String("status", string(status)),
	)
	return updated, nil
}

// ListForCommittee pages a committee's meetings newest first, optionally
// filtered by status.
func (s *MeetingService) ListForCommittee(ctx context.Context, committeeID string, status domain.MeetingStatus, limit, offset int) (MeetingPage, error) {
	if status != "" && !status.Valid() {
		return MeetingPage{}, ErrInvalidMeetingStatus
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	committee, err := s.Store.Committees().GetCommitteeByID(ctx, committeeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return MeetingPage{}, ErrCommitteeNotFound
		}
		return MeetingPage{}, err
	}

	meetings, err := s.Store.Meetings().ListByCommittee(ctx, committeeID, status, limit, offset)
	if err != nil {
		return MeetingPage{}, err
	}

	total, err := s.Store.Meetings().CountByCommittee(ctx, committeeID, status)
	if err != nil {
		return MeetingPage{}, err
	}

	return MeetingPage{
		Committee: committee,
		Meetings:  meetings,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

// Upcoming returns the caller's next meetings across all their committees,
// soonest first, each with the caller's own attendance row if recorded.
func (s *MeetingService) Upcoming(ctx context.Context, userID string) ([]UpcomingMeeting, error) {
	meetings, err := s.Store.Meetings().ListUpcoming(ctx, userID, time.Now().UTC(), upcomingMeetingLimit)
	if err != nil {
		return nil, err
	}

	out := make([]UpcomingMeeting, 0, len(meetings))
	for _, meeting := range meetings {
		entry := UpcomingMeeting{Meeting: meeting}

		attendance, err := s.Store.Attendance().GetAttendance(ctx, meeting.ID, userID)
		switch {
		case err == nil:
			entry.Attendance = &attendance
		case !errors.Is(err, store.ErrNotFound):
			return nil, err
		}

		out = append(out, entry)
	}
	return out, nil
}

// Get returns the meeting with its committee. Visibility trimming for
// non-members happens at the HTTP layer.
func (s *MeetingService) Get(ctx context.Context, meetingID string) (domain.MeetingWithCommittee, error) {
	meeting, err := s.Store.Meetings().GetMeetingByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MeetingWithCommittee{}, ErrMeetingNotFound
		}
		return domain.MeetingWithCommittee{}, err
	}
	return meeting, nil
}
