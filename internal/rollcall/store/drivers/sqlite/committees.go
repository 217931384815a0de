package sqlite

import (
	"context"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
)

type committeesRepo struct {
	db dbtx
}

const committeeColumns = `id, name, description, meeting_day, meeting_time, is_active, created_at, updated_at`

// committeeSummaryQuery joins member and meeting counts onto each committee.
// Member count only includes active memberships.
const committeeSummaryQuery = `
	SELECT c.id, c.name, c.description, c.meeting_day, c.meeting_time, c.is_active, c.created_at, c.updated_at,
	       (SELECT COUNT(*) FROM committee_members cm
	        WHERE cm.committee_id = c.id AND cm.is_active = 1) AS member_count,
	       (SELECT COUNT(*) FROM meetings m
	        WHERE m.committee_id = c.id) AS meeting_count
	FROM committees c`

func (r *committeesRepo) CreateCommittee(ctx context.Context, c domain.Committee) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO committees (id, name, description, meeting_day, meeting_time, is_active)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Description, c.MeetingDay, c.MeetingTime, c.IsActive,
	)
	return err
}

func (r *committeesRepo) GetCommitteeByID(ctx context.Context, id string) (domain.Committee, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+committeeColumns+` FROM committees WHERE id = ?`, id)

	var c domain.Committee
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.MeetingDay, &c.MeetingTime,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Committee{}, mapNotFound(err)
	}
	return c, nil
}

func (r *committeesRepo) ListActiveCommittees(ctx context.Context) ([]domain.CommitteeSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		committeeSummaryQuery+` WHERE c.is_active = 1 ORDER BY c.name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanCommitteeSummaries(rows)
}

func (r *committeesRepo) ListCommitteesForUser(ctx context.Context, userID string) ([]domain.CommitteeSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		committeeSummaryQuery+`
		WHERE c.is_active = 1
		  AND EXISTS (SELECT 1 FROM committee_members cm
		              WHERE cm.committee_id = c.id AND cm.user_id = ? AND cm.is_active = 1)
		ORDER BY c.name`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanCommitteeSummaries(rows)
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanCommitteeSummaries(rows rowsScanner) ([]domain.CommitteeSummary, error) {
	out := []domain.CommitteeSummary{}
	for rows.Next() {
		var s domain.CommitteeSummary
		err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.MeetingDay, &s.MeetingTime,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt, &s.MemberCount, &s.MeetingCount)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
