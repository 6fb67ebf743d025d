package usecase

import (
	"context"
	"time"

	"hr360/internal/domain/chat"
	"hr360/internal/domain/chatbot"

	"github.com/google/uuid"
)

const chatHistoryTTL = 5 * time.Minute

type ChatUsecase interface {
	Send(ctx context.Context, userID uuid.UUID, message string) (chat.Message, error)
	History(ctx context.Context, userID uuid.UUID) ([]chat.Message, error)
}

type Chat struct {
	repo  chat.Repository
	cache Cache
	now   func() time.Time
}

func NewChatUsecase(repo chat.Repository, cache Cache) *Chat {
	return &Chat{repo: repo, cache: cache, now: time.Now}
}

func (s *Chat) Send(ctx context.Context, userID uuid.UUID, message string) (chat.Message, error) {
	if message == "" {
		return chat.Message{}, ErrInvalidInput
	}

	m := chat.Message{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		Response:  chatbot.Respond(message),
		Timestamp: s.now().UTC(),
	}
	if err := s.repo.Append(ctx, m); err != nil {
		return chat.Message{}, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, chatHistoryKey(userID))
	}

	return m, nil
}

func (s *Chat) History(ctx context.Context, userID uuid.UUID) ([]chat.Message, error) {
	key := chatHistoryKey(userID)

	if s.cache != nil {
		var cached []chat.Message
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	msgs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, msgs, chatHistoryTTL)
	}

	return msgs, nil
}

func chatHistoryKey(userID uuid.UUID) string {
	return "chat:history:" + userID.String()
}
