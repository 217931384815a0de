package sqlite

import (
	"context"
	"strings"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
)

type attendanceRepo struct {
	db dbtx
}

const attendanceColumns = `id, meeting_id, user_id, status, update_count, created_at, updated_at`

func (r *attendanceRepo) CreateAttendance(ctx context.Context, a domain.Attendance) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attendances (id, meeting_id, user_id, status, update_count)
		VALUES (?, ?, ?, ?, 0)`,
		a.ID, a.MeetingID, a.UserID, string(a.Status),
	)
	return mapConstraint(err)
}

func (r *attendanceRepo) GetAttendance(ctx context.Context, meetingID, userID string) (domain.Attendance, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+attendanceColumns+` FROM attendances
		WHERE meeting_id = ? AND user_id = ?`, meetingID, userID)
	return scanAttendance(row)
}

// FinalizeAttendance is the single-edit gate. The WHERE clause only matches
// while update_count is 0, so a concurrent second edit loses the race and
// reports false.
func (r *attendanceRepo) FinalizeAttendance(ctx context.Context, id string, status domain.AttendanceStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE attendances
		SET status = ?, update_count = update_count + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND update_count = 0`, string(status), id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *attendanceRepo) ListByMeeting(ctx context.Context, meetingID string) ([]domain.Attendance, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+attendanceColumns+` FROM attendances WHERE meeting_id = ?`, meetingID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []domain.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *attendanceRepo) ListByMeetingIDs(ctx context.Context, meetingIDs []string) ([]domain.Attendance, error) {
	if len(meetingIDs) == 0 {
		return []domain.Attendance{}, nil
	}

	placeholders := strings.Repeat("?,", len(meetingIDs))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(meetingIDs))
	for i, id := range meetingIDs {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+attendanceColumns+` FROM attendances
		WHERE meeting_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []domain.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *attendanceRepo) ListByMeetingWithUsers(ctx context.Context, meetingID string) ([]domain.AttendanceWithUser, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.meeting_id, a.user_id, a.status, a.update_count,
		       a.created_at, a.updated_at,
		       u.id, u.email, u.name
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.meeting_id = ?
		ORDER BY u.name`, meetingID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []domain.AttendanceWithUser{}
	for rows.Next() {
		var a domain.AttendanceWithUser
		var status string
		err := rows.Scan(&a.ID, &a.MeetingID, &a.UserID, &status, &a.UpdateCount,
			&a.CreatedAt, &a.UpdatedAt,
			&a.User.ID, &a.User.Email, &a.User.Name)
		if err != nil {
			return nil, err
		}
		a.Status = domain.AttendanceStatus(status)
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAttendance(row rowScanner) (domain.Attendance, error) {
	var a domain.Attendance
	var status string
	err := row.Scan(&a.ID, &a.MeetingID, &a.UserID, &status, &a.UpdateCount,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Attendance{}, mapNotFound(err)
	}
	a.Status = domain.AttendanceStatus(status)
	return a, nil
}
