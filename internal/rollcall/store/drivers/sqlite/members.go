package sqlite

import (
	"context"
	"time"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
)

type membersRepo struct {
	db dbtx
}

const memberColumns = `id, user_id, committee_id, is_active, joined_at, created_at, updated_at`

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Membership) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO committee_members (id, user_id, committee_id, is_active, joined_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.CommitteeID, m.IsActive, m.JoinedAt,
	)
	return mapConstraint(err)
}

func (r *membersRepo) GetMember(ctx context.Context, userID, committeeID string) (domain.Membership, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+` FROM committee_members
		WHERE user_id = ? AND committee_id = ?`, userID, committeeID)
	return scanMembership(row)
}

func (r *membersRepo) GetActiveMember(ctx context.Context, userID, committeeID string) (domain.Membership, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+` FROM committee_members
		WHERE user_id = ? AND committee_id = ? AND is_active = 1`, userID, committeeID)
	return scanMembership(row)
}

func (r *membersRepo) SetMemberActive(ctx context.Context, id string, active bool, joinedAt time.Time) error {
	if active {
		_, err := r.db.ExecContext(ctx, `
			UPDATE committee_members
			SET is_active = 1, joined_at = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?`, joinedAt, id)
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE committee_members
		SET is_active = 0, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, id)
	return err
}

func (r *membersRepo) ListActiveMembers(ctx context.Context, committeeID string) ([]domain.MemberWithUser, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT cm.id, cm.user_id, cm.committee_id, cm.is_active, cm.joined_at,
		       cm.created_at, cm.updated_at,
		       u.id, u.email, u.name
		FROM committee_members cm
		JOIN users u ON u.id = cm.user_id
		WHERE cm.committee_id = ? AND cm.is_active = 1
		ORDER BY cm.joined_at`, committeeID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []domain.MemberWithUser{}
	for rows.Next() {
		var m domain.MemberWithUser
		err := rows.Scan(&m.ID, &m.UserID, &m.CommitteeID, &m.IsActive, &m.JoinedAt,
			&m.CreatedAt, &m.UpdatedAt,
			&m.User.ID, &m.User.Email, &m.User.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *membersRepo) ListMembershipsForUser(ctx context.Context, userID string) ([]domain.MembershipWithCommittee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT cm.id, cm.user_id, cm.committee_id, cm.is_active, cm.joined_at,
		       cm.created_at, cm.updated_at,
		       c.id, c.name, c.description, c.meeting_day, c.meeting_time,
		       c.is_active, c.created_at, c.updated_at
		FROM committee_members cm
		JOIN committees c ON c.id = cm.committee_id
		WHERE cm.user_id = ? AND cm.is_active = 1 AND c.is_active = 1
		ORDER BY c.name`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []domain.MembershipWithCommittee{}
	for rows.Next() {
		var m domain.MembershipWithCommittee
		err := rows.Scan(&m.ID, &m.UserID, &m.CommitteeID, &m.IsActive, &m.JoinedAt,
			&m.CreatedAt, &m.UpdatedAt,
			&m.Committee.ID, &m.Committee.Name, &m.Committee.Description,
			&m.Committee.MeetingDay, &m.Committee.MeetingTime,
			&m.Committee.IsActive, &m.Committee.CreatedAt, &m.Committee.UpdatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMembership(row rowScanner) (domain.Membership, error) {
	var m domain.Membership
	err := row.Scan(&m.ID, &m.UserID, &m.CommitteeID, &m.IsActive, &m.JoinedAt,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}
