package repository

import (
	"context"

	"hr360/internal/database"
	"hr360/internal/domain/performance"

	"github.com/google/uuid"
)

type PostgresPerformanceRepository struct {
	db database.DB
}

func NewPostgresPerformanceRepository(db database.DB) *PostgresPerformanceRepository {
	return &PostgresPerformanceRepository{db: db}
}

const performanceColumns = `id, user_id, reviewer_id, period, score, feedback, goals, achievements, created_at`

func (r *PostgresPerformanceRepository) Create(ctx context.Context, rev performance.Review) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO performance (id, user_id, reviewer_id, period, score, feedback, goals, achievements, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rev.ID, rev.UserID, rev.ReviewerID, rev.Period, rev.Score, rev.Feedback, rev.Goals, rev.Achievements, rev.CreatedAt,
	)
	return err
}

func (r *PostgresPerformanceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]performance.Review, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+performanceColumns+` FROM performance WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return collectPerformance(rows)
}

func (r *PostgresPerformanceRepository) ListAll(ctx context.Context) ([]performance.Review, error) {
	rows, err := r.db.Query(ctx, `SELECT `+performanceColumns+` FROM performance ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectPerformance(rows)
}

func collectPerformance(rows database.Rows) ([]performance.Review, error) {
	defer rows.Close()

	out := make([]performance.Review, 0)
	for rows.Next() {
		var rev performance.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.ReviewerID, &rev.Period, &rev.Score, &rev.Feedback, &rev.Goals, &rev.Achievements, &rev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
