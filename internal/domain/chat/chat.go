package chat

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Message is an append-only log entry: one inbound message and the canned
// response computed for it. Never mutated or deleted.
type Message struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

type Repository interface {
	Append(ctx context.Context, m Message) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Message, error)
}
