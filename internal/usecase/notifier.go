package usecase

import (
	"context"
	"log"
	"time"

	"hr360/internal/domain/notification"

	"github.com/google/uuid"
)

// Pusher is the live-delivery side of a notification; the hub implements it.
type Pusher interface {
	NotifyUser(userID uuid.UUID, title, message, level string)
}

// Notifier persists a notification and pushes it to connected clients.
// Sends are fire-and-forget: failures are logged and never propagated to the
// operation that triggered them.
type Notifier struct {
	repo   notification.Repository
	pusher Pusher
	logger *log.Logger
	now    func() time.Time
}

func NewNotifier(repo notification.Repository, pusher Pusher, logger *log.Logger) *Notifier {
	if logger == nil {
		logger = log.Default()
	}
	return &Notifier{repo: repo, pusher: pusher, logger: logger, now: time.Now}
}

func (n *Notifier) Notify(ctx context.Context, userID uuid.UUID, title, message string, typ notification.Type) {
	if n == nil {
		return
	}

	if n.repo != nil {
		rec := notification.Notification{
			ID:        uuid.New(),
			UserID:    userID,
			Title:     title,
			Message:   message,
			Type:      typ,
			IsRead:    false,
			CreatedAt: n.now().UTC(),
		}
		if err := n.repo.Create(ctx, rec); err != nil {
			n.logger.Printf("notify | persist failed user=%s title=%q error=%v", userID, title, err)
		}
	}

	if n.pusher != nil {
		n.pusher.NotifyUser(userID, title, message, string(typ))
	}
}
