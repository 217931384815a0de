package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/quorumhq/rollcall/internal/rollcall/store"
	"github.com/quorumhq/rollcall/pkg/idx"
	"github.com/quorumhq/rollcall/pkg/slogx"
)

var (
	ErrInvalidCommittee  = errors.New("name, meeting day and meeting time are required")
	ErrCommitteeNotFound = errors.New("committee not found")
)

type CommitteeService struct {
	Store store.Store
}

// CommitteeDetail is a committee with its active roster and recent meetings.
type CommitteeDetail struct {
	Committee domain.Committee
	Members   []domain.MemberWithUser
	Meetings  []domain.MeetingWithAttendanceCount
}

// Create registers a new committee. Admin gating happens at the HTTP layer.
func (s *CommitteeService) Create(ctx context.Context, name, description, meetingDay, meetingTime string) (domain.Committee, error) {
	log := slogx.FromContext(ctx)

	if name == "" || meetingDay == "" || meetingTime == "" {
		return domain.Committee{}, ErrInvalidCommittee
	}

	committee := domain.Committee{
		ID:          idx.New().String(),
		Name:        name,
		Description: description,
		MeetingDay:  meetingDay,
		MeetingTime: meetingTime,
		IsActive:    true,
	}

	if err := s.Store.Committees().CreateCommittee(ctx, committee); err != nil {
		log.Error("failed to create committee", slog.Any("error", err))
		return domain.Committee{}, err
	}

	created, err := s.Store.Committees().GetCommitteeByID(ctx, committee.ID)
	if err != nil {
		return domain.Committee{}, err
	}

	log.Info("committee created",
		slog.String("committee_id", created.ID),
		slog.String("name", created.Name),
	)
	return created, nil
}

// ListActive returns all active committees with member and meeting counts.
func (s *CommitteeService) ListActive(ctx context.Context) ([]domain.CommitteeSummary, error) {
	return s.Store.Committees().ListActiveCommittees(ctx)
}

// ListForUser returns the active committees the user belongs to.
func (s *CommitteeService) ListForUser(ctx context.Context, userID string) ([]domain.CommitteeSummary, error) {
	return s.Store.Committees().ListCommitteesForUser(ctx, userID)
}

// Get returns the committee with its active members and ten most recent
// meetings.
func (s *CommitteeService) Get(ctx context.Context, committeeID string) (CommitteeDetail, error) {
	committee, err := s.Store.Committees().GetCommitteeByID(ctx, committeeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CommitteeDetail{}, ErrCommitteeNotFound
		}
		return CommitteeDetail{}, err
	}

	members, err := s.Store.Members().ListActiveMembers(ctx, committeeID)
	if err != nil {
		return CommitteeDetail{}, err
	}

	meetings, err := s.Store.Meetings().ListByCommittee(ctx, committeeID, "", 10, 0)
	if err != nil {
		return CommitteeDetail{}, err
	}

	return CommitteeDetail{
		Committee: committee,
		Members:   members,
		Meetings:  meetings,
	}, nil
}
