package repository

import (
	"context"

	"hr360/internal/database"
	"hr360/internal/domain/attendance"

	"github.com/google/uuid"
)

type PostgresAttendanceRepository struct {
	db database.DB
}

func NewPostgresAttendanceRepository(db database.DB) *PostgresAttendanceRepository {
	return &PostgresAttendanceRepository{db: db}
}

const attendanceColumns = `id, user_id, to_char(date, 'YYYY-MM-DD'), clock_in, clock_out, hours_worked, status`

func (r *PostgresAttendanceRepository) Create(ctx context.Context, rec attendance.Record) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO attendance (id, user_id, date, clock_in, clock_out, hours_worked, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.UserID, rec.Date, rec.ClockIn, rec.ClockOut, rec.HoursWorked, string(rec.Status),
	)
	return err
}

func (r *PostgresAttendanceRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (attendance.Record, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE user_id = $1 AND date = $2`,
		userID, date,
	)
	return scanAttendance(row)
}

func (r *PostgresAttendanceRepository) SetClockOut(ctx context.Context, id uuid.UUID, clockOut string, hoursWorked float64) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE attendance SET clock_out = $1, hours_worked = $2 WHERE id = $3`,
		clockOut, hoursWorked, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return attendance.ErrNotFound
	}
	return nil
}

func (r *PostgresAttendanceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]attendance.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE user_id = $1 ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return collectAttendance(rows)
}

func (r *PostgresAttendanceRepository) ListAll(ctx context.Context) ([]attendance.Record, error) {
	rows, err := r.db.Query(ctx, `SELECT `+attendanceColumns+` FROM attendance ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	return collectAttendance(rows)
}

func (r *PostgresAttendanceRepository) CountByDateAndStatus(ctx context.Context, date string, status attendance.Status) (int, error) {
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE date = $1 AND status = $2`,
		date, string(status),
	)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func collectAttendance(rows database.Rows) ([]attendance.Record, error) {
	defer rows.Close()

	out := make([]attendance.Record, 0)
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanAttendance(row database.Row) (attendance.Record, error) {
	var rec attendance.Record
	var status string
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Date, &rec.ClockIn, &rec.ClockOut, &rec.HoursWorked, &status)
	if err != nil {
		if isNoRows(err) {
			return attendance.Record{}, attendance.ErrNotFound
		}
		return attendance.Record{}, err
	}
	rec.Status = attendance.Status(status)
	return rec, nil
}
