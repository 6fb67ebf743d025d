package repository

import (
	"context"

	"hr360/internal/database"
	"hr360/internal/domain/hiring"

	"github.com/google/uuid"
)

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `id, first_name, last_name, email, phone, position, resume_url, status,
	to_char(applied_at, 'YYYY-MM-DD'), ai_score, skills, experience, education`

func (r *PostgresCandidateRepository) Create(ctx context.Context, c hiring.Candidate) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidates (id, first_name, last_name, email, phone, position, resume_url, status, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Position, c.ResumeURL, string(c.Status), c.AppliedAt,
	)
	return err
}

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (hiring.Candidate, error) {
	row := r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	return scanCandidate(row)
}

func (r *PostgresCandidateRepository) List(ctx context.Context) ([]hiring.Candidate, error) {
	rows, err := r.db.Query(ctx, `SELECT `+candidateColumns+` FROM candidates ORDER BY applied_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectCandidates(rows)
}

func (r *PostgresCandidateRepository) ListByStatus(ctx context.Context, status hiring.CandidateStatus) ([]hiring.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE status = $1 ORDER BY applied_at DESC`,
		string(status),
	)
	if err != nil {
		return nil, err
	}
	return collectCandidates(rows)
}

func (r *PostgresCandidateRepository) SetStatus(ctx context.Context, id uuid.UUID, status hiring.CandidateStatus) error {
	affected, err := r.db.Exec(ctx, `UPDATE candidates SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return hiring.ErrCandidateNotFound
	}
	return nil
}

func (r *PostgresCandidateRepository) SetAnalysis(ctx context.Context, id uuid.UUID, f hiring.AnalysisFields) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE candidates SET skills = $1, experience = $2, education = $3, ai_score = $4 WHERE id = $5`,
		f.Skills, f.Experience, f.Education, f.AIScore, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return hiring.ErrCandidateNotFound
	}
	return nil
}

func (r *PostgresCandidateRepository) CountByStatus(ctx context.Context, status hiring.CandidateStatus) (int, error) {
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM candidates WHERE status = $1`, string(status))
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func collectCandidates(rows database.Rows) ([]hiring.Candidate, error) {
	defer rows.Close()

	out := make([]hiring.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCandidate(row database.Row) (hiring.Candidate, error) {
	var c hiring.Candidate
	var status string
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Position,
		&c.ResumeURL, &status, &c.AppliedAt, &c.AIScore, &c.Skills, &c.Experience, &c.Education,
	)
	if err != nil {
		if isNoRows(err) {
			return hiring.Candidate{}, hiring.ErrCandidateNotFound
		}
		return hiring.Candidate{}, err
	}
	c.Status = hiring.CandidateStatus(status)
	return c, nil
}
