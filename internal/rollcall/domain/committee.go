package domain

import "time"

type Committee struct {
	ID          string
	Name        string
	Description string
	MeetingDay  string // e.g. "Tuesday"
	MeetingTime string // e.g. "18:30"
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CommitteeSummary is a committee plus the counts shown in listings.
type CommitteeSummary struct {
	Committee
	MemberCount  int
	MeetingCount int
}

// Membership ties a user to a committee. A deactivated row is retained and
// reactivated in place if the user rejoins.
type Membership struct {
	ID          string
	UserID      string
	CommitteeID string
	IsActive    bool
	JoinedAt    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MemberWithUser struct {
	Membership
	User UserSummary
}

// MembershipWithCommittee is a user's membership joined with its committee,
// used when resolving which committees a user belongs to.
type MembershipWithCommittee struct {
	Membership
	Committee Committee
}
