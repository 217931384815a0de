package sqlite

import (
	"context"
	"time"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/quorumhq/rollcall/internal/rollcall/store"
)

type meetingsRepo struct {
	db dbtx
}

const meetingColumns = `id, committee_id, date, status, notes, created_at, updated_at`

func (r *meetingsRepo) CreateMeeting(ctx context.Context, m domain.Meeting) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO meetings (id, committee_id, date, status, notes)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.CommitteeID, m.Date, string(m.Status), m.Notes,
	)
	return err
}

func (r *meetingsRepo) GetMeetingByID(ctx context.Context, id string) (domain.MeetingWithCommittee, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT m.id, m.committee_id, m.date, m.status, m.notes, m.created_at, m.updated_at,
		       c.id, c.name, c.description, c.meeting_day, c.meeting_time,
		       c.is_active, c.created_at, c.updated_at
		FROM meetings m
		JOIN committees c ON c.id = m.committee_id
		WHERE m.id = ?`, id)

	var m domain.MeetingWithCommittee
	var status string
	err := row.Scan(&m.ID, &m.CommitteeID, &m.Date, &status, &m.Notes,
		&m.CreatedAt, &m.UpdatedAt,
		&m.Committee.ID, &m.Committee.Name, &m.Committee.Description,
		&m.Committee.MeetingDay, &m.Committee.MeetingTime,
		&m.Committee.IsActive, &m.Committee.CreatedAt, &m.Committee.UpdatedAt)
	if err != nil {
		return domain.MeetingWithCommittee{}, mapNotFound(err)
	}
	m.Status = domain.MeetingStatus(status)
	return m, nil
}

func (r *meetingsRepo) UpdateMeetingStatus(ctx context.Context, id string, status domain.MeetingStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE meetings
		SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, string(status), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *meetingsRepo) ListByCommittee(ctx context.Context, committeeID string, status domain.MeetingStatus, limit, offset int) ([]domain.MeetingWithAttendanceCount, error) {
	query := `
		SELECT m.id, m.committee_id, m.date, m.status, m.notes, m.created_at, m.updated_at,
		       (SELECT COUNT(*) FROM attendances a WHERE a.meeting_id = m.id) AS attendance_count
		FROM meetings m
		WHERE m.committee_id = ?`
	args := []any{committeeID}
	if status != "" {
		query += ` AND m.status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY m.date DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []domain.MeetingWithAttendanceCount{}
	for rows.Next() {
		var m domain.MeetingWithAttendanceCount
		var st string
		err := rows.Scan(&m.ID, &m.CommitteeID, &m.Date, &st, &m.Notes,
			&m.CreatedAt, &m.UpdatedAt, &m.AttendanceCount)
		if err != nil {
			return nil, err
		}
		m.Status = domain.MeetingStatus(st)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *meetingsRepo) CountByCommittee(ctx context.Context, committeeID string, status domain.MeetingStatus) (int, error) {
	query := `SELECT COUNT(*) FROM meetings WHERE committee_id = ?`
	args := []any{committeeID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, string(status))
	}

	var count int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *meetingsRepo) ListUpcoming(ctx context.Context, userID string, now time.Time, limit int) ([]domain.MeetingWithCommittee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.id, m.committee_id, m.date, m.status, m.notes, m.created_at, m.updated_at,
		       c.id, c.name, c.description, c.meeting_day, c.meeting_time,
		       c.is_active, c.created_at, c.updated_at
		FROM meetings m
		JOIN committees c ON c.id = m.committee_id
		JOIN committee_members cm ON cm.committee_id = m.committee_id
		WHERE cm.user_id = ? AND cm.is_active = 1
		  AND m.status IN ('SCHEDULED', 'ONGOING')
		  AND m.date >= ?
		ORDER BY m.date
		LIMIT ?`, userID, now, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []domain.MeetingWithCommittee{}
	for rows.Next() {
		var m domain.MeetingWithCommittee
		var st string
		err := rows.Scan(&m.ID, &m.CommitteeID, &m.Date, &st, &m.Notes,
			&m.CreatedAt, &m.UpdatedAt,
			&m.Committee.ID, &m.Committee.Name, &m.Committee.Description,
			&m.Committee.MeetingDay, &m.Committee.MeetingTime,
			&m.Committee.IsActive, &m.Committee.CreatedAt, &m.Committee.UpdatedAt)
		if err != nil {
			return nil, err
		}
		m.Status = domain.MeetingStatus(st)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *meetingsRepo) ListInRange(ctx context.Context, committeeID string, start, end time.Time) ([]domain.Meeting, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+meetingColumns+`
		FROM meetings
		WHERE committee_id = ?
		  AND status IN ('COMPLETED', 'ONGOING')
		  AND date >= ? AND date <= ?
		ORDER BY date`, committeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []domain.Meeting{}
	for rows.Next() {
		var m domain.Meeting
		var st string
		err := rows.Scan(&m.ID, &m.CommitteeID, &m.Date, &st, &m.Notes,
			&m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, err
		}
		m.Status = domain.MeetingStatus(st)
		out = append(out, m)
	}
	return out, rows.Err()
}
