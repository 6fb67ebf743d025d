package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationEvent struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Level     string `json:"level"`
	Timestamp string `json:"timestamp"`
}

// NotifyUser pushes a notification event to every open socket of the user.
func (h *Hub) NotifyUser(userID uuid.UUID, title, message, level string) {
	if h == nil {
		return
	}

	evt := NotificationEvent{
		Type:      "notification",
		Title:     title,
		Message:   message,
		Level:     level,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Send(userID, b)
}
