package repository

import (
	"context"

	"hr360/internal/database"
	"hr360/internal/domain/leave"

	"github.com/google/uuid"
)

type PostgresLeaveRepository struct {
	db database.DB
}

func NewPostgresLeaveRepository(db database.DB) *PostgresLeaveRepository {
	return &PostgresLeaveRepository{db: db}
}

const leaveColumns = `id, user_id, type, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
	reason, status, approved_by, to_char(applied_at, 'YYYY-MM-DD')`

func (r *PostgresLeaveRepository) Create(ctx context.Context, req leave.Request) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO leaves (id, user_id, type, start_date, end_date, reason, status, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		req.ID, req.UserID, string(req.Type), req.StartDate, req.EndDate, req.Reason, string(req.Status), req.AppliedAt,
	)
	return err
}

func (r *PostgresLeaveRepository) GetByID(ctx context.Context, id uuid.UUID) (leave.Request, error) {
	row := r.db.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leaves WHERE id = $1`, id)
	return scanLeave(row)
}

func (r *PostgresLeaveRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]leave.Request, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+leaveColumns+` FROM leaves WHERE user_id = $1 ORDER BY applied_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return collectLeaves(rows)
}

func (r *PostgresLeaveRepository) ListAll(ctx context.Context) ([]leave.Request, error) {
	rows, err := r.db.Query(ctx, `SELECT `+leaveColumns+` FROM leaves ORDER BY applied_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectLeaves(rows)
}

func (r *PostgresLeaveRepository) SetStatus(ctx context.Context, id uuid.UUID, status leave.Status, approvedBy uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE leaves SET status = $1, approved_by = $2 WHERE id = $3`,
		string(status), approvedBy, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return leave.ErrNotFound
	}
	return nil
}

func (r *PostgresLeaveRepository) CountByStatus(ctx context.Context, status leave.Status) (int, error) {
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM leaves WHERE status = $1`, string(status))
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func collectLeaves(rows database.Rows) ([]leave.Request, error) {
	defer rows.Close()

	out := make([]leave.Request, 0)
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanLeave(row database.Row) (leave.Request, error) {
	var req leave.Request
	var typ, status string
	err := row.Scan(&req.ID, &req.UserID, &typ, &req.StartDate, &req.EndDate, &req.Reason, &status, &req.ApprovedBy, &req.AppliedAt)
	if err != nil {
		if isNoRows(err) {
			return leave.Request{}, leave.ErrNotFound
		}
		return leave.Request{}, err
	}
	req.Type = leave.Type(typ)
	req.Status = leave.Status(status)
	return req, nil
}
