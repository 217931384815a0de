package store

import (
	"context"
	"errors"
	"time"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories to keep concerns tidy and testable, and to
// actively stop callers from accidentally nesting transactions.
type Store interface {
	Users() Users
	Committees() Committees
	Members() Members
	Meetings() Meetings
	Attendance() Attendance

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing on nil and rolling
	// back on error. This is the recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and duplicate checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type Committees interface {
	// CreateCommittee inserts a new committee (id is ULID, active by default).
	CreateCommittee(ctx context.Context, c domain.Committee) error

	// GetCommitteeByID returns a committee regardless of active flag.
	GetCommitteeByID(ctx context.Context, id string) (domain.Committee, error)

	// ListActiveCommittees returns active committees with member and meeting
	// counts, ordered by name.
	ListActiveCommittees(ctx context.Context) ([]domain.CommitteeSummary, error)

	// ListCommitteesForUser returns active committees the user is an active
	// member of, with counts, ordered by name.
	ListCommitteesForUser(ctx context.Context, userID string) ([]domain.CommitteeSummary, error)
}

type Members interface {
	// CreateMember inserts a membership row. A row per (user, committee) pair
	// is retained for life; rejoining reactivates instead of inserting.
	CreateMember(ctx context.Context, m domain.Membership) error

	// GetMember returns the membership row for the pair, active or not.
	GetMember(ctx context.Context, userID, committeeID string) (domain.Membership, error)

	// GetActiveMember returns the membership only when it is active.
	GetActiveMember(ctx context.Context, userID, committeeID string) (domain.Membership, error)

	// SetMemberActive flips is_active, refreshes joined_at on reactivation,
	// and bumps updated_at.
	SetMemberActive(ctx context.Context, id string, active bool, joinedAt time.Time) error

	// ListActiveMembers returns active members of a committee with their user
	// details, ordered by join date.
	ListActiveMembers(ctx context.Context, committeeID string) ([]domain.MemberWithUser, error)

	// ListMembershipsForUser returns the user's active memberships joined with
	// their committees.
	ListMembershipsForUser(ctx context.Context, userID string) ([]domain.MembershipWithCommittee, error)
}

type Meetings interface {
	// CreateMeeting inserts a new meeting (id is ULID).
	CreateMeeting(ctx context.Context, m domain.Meeting) error

	// GetMeetingByID returns a meeting joined with its committee.
	GetMeetingByID(ctx context.Context, id string) (domain.MeetingWithCommittee, error)

	// UpdateMeetingStatus sets the status and bumps updated_at.
	UpdateMeetingStatus(ctx context.Context, id string, status domain.MeetingStatus) error

	// ListByCommittee pages a committee's meetings newest first, optionally
	// filtered by status (empty = all).
	ListByCommittee(ctx context.Context, committeeID string, status domain.MeetingStatus, limit, offset int) ([]domain.MeetingWithAttendanceCount, error)

	// CountByCommittee returns the total for the same filter, for pagination.
	CountByCommittee(ctx context.Context, committeeID string, status domain.MeetingStatus) (int, error)

	// ListUpcoming returns the next meetings (SCHEDULED or ONGOING, date >= now)
	// across the user's active committees, soonest first.
	ListUpcoming(ctx context.Context, userID string, now time.Time, limit int) ([]domain.MeetingWithCommittee, error)

	// ListInRange returns a committee's COMPLETED and ONGOING meetings with
	// dates inside [start, end], oldest first. Used by reports.
	ListInRange(ctx context.Context, committeeID string, start, end time.Time) ([]domain.Meeting, error)
}

type Attendance interface {
	// CreateAttendance inserts a fresh record with update_count 0.
	CreateAttendance(ctx context.Context, a domain.Attendance) error

	// GetAttendance returns the record for a (meeting, user) pair.
	GetAttendance(ctx context.Context, meetingID, userID string) (domain.Attendance, error)

	// FinalizeAttendance applies the single allowed correction: it sets the
	// status and bumps update_count to 1, but only when update_count is still
	// 0. Returns false when the record was already finalized.
	FinalizeAttendance(ctx context.Context, id string, status domain.AttendanceStatus) (bool, error)

	// ListByMeeting returns all records for one meeting.
	ListByMeeting(ctx context.Context, meetingID string) ([]domain.Attendance, error)

	// ListByMeetingIDs returns records across several meetings for report
	// aggregation. The slice may be empty.
	ListByMeetingIDs(ctx context.Context, meetingIDs []string) ([]domain.Attendance, error)

	// ListByMeetingWithUsers returns records for a meeting with user details,
	// ordered by user name.
	ListByMeetingWithUsers(ctx context.Context, meetingID string) ([]domain.AttendanceWithUser, error)
}
