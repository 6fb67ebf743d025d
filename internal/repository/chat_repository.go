package repository

import (
	"context"

	"hr360/internal/database"
	"hr360/internal/domain/chat"

	"github.com/google/uuid"
)

type PostgresChatRepository struct {
	db database.DB
}

func NewPostgresChatRepository(db database.DB) *PostgresChatRepository {
	return &PostgresChatRepository{db: db}
}

func (r *PostgresChatRepository) Append(ctx context.Context, m chat.Message) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO chat_messages (id, user_id, message, response, timestamp)
		 VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.UserID, m.Message, m.Response, m.Timestamp,
	)
	return err
}

func (r *PostgresChatRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]chat.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, message, response, timestamp
		 FROM chat_messages WHERE user_id = $1 ORDER BY timestamp`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]chat.Message, 0)
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.Message, &m.Response, &m.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
