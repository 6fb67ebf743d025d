package repository

import (
	"context"

	"hr360/internal/database"
	"hr360/internal/domain/hiring"

	"github.com/google/uuid"
)

type PostgresInterviewRepository struct {
	db database.DB
}

func NewPostgresInterviewRepository(db database.DB) *PostgresInterviewRepository {
	return &PostgresInterviewRepository{db: db}
}

const interviewColumns = `id, candidate_id, interviewer_id, position, scheduled_at, status, feedback, rating, meeting_link`

func (r *PostgresInterviewRepository) Create(ctx context.Context, iv hiring.Interview) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO interviews (id, candidate_id, interviewer_id, position, scheduled_at, status, meeting_link)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		iv.ID, iv.CandidateID, iv.InterviewerID, iv.Position, iv.ScheduledAt, string(iv.Status), iv.MeetingLink,
	)
	return err
}

func (r *PostgresInterviewRepository) GetByID(ctx context.Context, id uuid.UUID) (hiring.Interview, error) {
	row := r.db.QueryRow(ctx, `SELECT `+interviewColumns+` FROM interviews WHERE id = $1`, id)
	return scanInterview(row)
}

func (r *PostgresInterviewRepository) ListAll(ctx context.Context) ([]hiring.Interview, error) {
	rows, err := r.db.Query(ctx, `SELECT `+interviewColumns+` FROM interviews ORDER BY scheduled_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectInterviews(rows)
}

func (r *PostgresInterviewRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]hiring.Interview, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE candidate_id = $1 ORDER BY scheduled_at DESC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	return collectInterviews(rows)
}

func (r *PostgresInterviewRepository) Complete(ctx context.Context, id uuid.UUID, feedback string, rating int) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE interviews SET status = $1, feedback = $2, rating = $3 WHERE id = $4`,
		string(hiring.InterviewCompleted), feedback, rating, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return hiring.ErrInterviewNotFound
	}
	return nil
}

func (r *PostgresInterviewRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE interviews SET status = $1 WHERE id = $2`,
		string(hiring.InterviewCancelled), id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return hiring.ErrInterviewNotFound
	}
	return nil
}

func collectInterviews(rows database.Rows) ([]hiring.Interview, error) {
	defer rows.Close()

	out := make([]hiring.Interview, 0)
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanInterview(row database.Row) (hiring.Interview, error) {
	var iv hiring.Interview
	var status string
	err := row.Scan(&iv.ID, &iv.CandidateID, &iv.InterviewerID, &iv.Position, &iv.ScheduledAt, &status, &iv.Feedback, &iv.Rating, &iv.MeetingLink)
	if err != nil {
		if isNoRows(err) {
			return hiring.Interview{}, hiring.ErrInterviewNotFound
		}
		return hiring.Interview{}, err
	}
	iv.Status = hiring.InterviewStatus(status)
	return iv, nil
}
