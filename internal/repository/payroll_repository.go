package repository

import (
	"context"

	"hr360/internal/database"
	"hr360/internal/domain/payroll"

	"github.com/google/uuid"
)

type PostgresPayrollRepository struct {
	db database.DB
}

func NewPostgresPayrollRepository(db database.DB) *PostgresPayrollRepository {
	return &PostgresPayrollRepository{db: db}
}

const payrollColumns = `id, user_id, month, year, base_salary, allowances, deductions, net_salary, status`

func (r *PostgresPayrollRepository) Create(ctx context.Context, rec payroll.Record) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO payroll (id, user_id, month, year, base_salary, allowances, deductions, net_salary, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.UserID, rec.Month, rec.Year, rec.BaseSalary, rec.Allowances, rec.Deductions, rec.NetSalary, string(rec.Status),
	)
	return err
}

func (r *PostgresPayrollRepository) GetByID(ctx context.Context, id uuid.UUID) (payroll.Record, error) {
	row := r.db.QueryRow(ctx, `SELECT `+payrollColumns+` FROM payroll WHERE id = $1`, id)
	return scanPayroll(row)
}

func (r *PostgresPayrollRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]payroll.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+payrollColumns+` FROM payroll WHERE user_id = $1 ORDER BY year DESC, month DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return collectPayroll(rows)
}

func (r *PostgresPayrollRepository) ListAll(ctx context.Context) ([]payroll.Record, error) {
	rows, err := r.db.Query(ctx, `SELECT `+payrollColumns+` FROM payroll ORDER BY year DESC, month DESC`)
	if err != nil {
		return nil, err
	}
	return collectPayroll(rows)
}

func (r *PostgresPayrollRepository) SetStatus(ctx context.Context, id uuid.UUID, status payroll.Status) error {
	affected, err := r.db.Exec(ctx, `UPDATE payroll SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return payroll.ErrNotFound
	}
	return nil
}

func (r *PostgresPayrollRepository) SumNetByStatus(ctx context.Context, status payroll.Status) (float64, error) {
	row := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(net_salary), 0) FROM payroll WHERE status = $1`, string(status))
	var sum float64
	if err := row.Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

func collectPayroll(rows database.Rows) ([]payroll.Record, error) {
	defer rows.Close()

	out := make([]payroll.Record, 0)
	for rows.Next() {
		rec, err := scanPayroll(rows)
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

func scanPayroll(row database.Row) (payroll.Record, error) {
	var rec payroll.Record
	var status string
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Month, &rec.Year, &rec.BaseSalary, &rec.Allowances, &rec.Deductions, &rec.NetSalary, &status)
	if err != nil {
		if isNoRows(err) {
			return payroll.Record{}, payroll.ErrNotFound
		}
		return payroll.Record{}, err
	}
	rec.Status = payroll.Status(status)
	return rec, nil
}
