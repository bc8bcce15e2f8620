package chat

import (
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is an immutable chat entry.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func newMessage(sender Sender, content string, now time.Time) Message {
	return Message{
		ID:        uuid.New().String(),
		Sender:    sender,
		Content:   content,
		Timestamp: now,
	}
}

