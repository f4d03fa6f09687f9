package notify

import (
	"context"
)

// Notifier forwards a qualifying contract address downstream.
// Delivery failures are handled inside the implementation and never surface.
type Notifier interface {
	Notify(ctx context.Context, ca string)
}

// Message telegram sendMessage 请求体
type Message struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}
