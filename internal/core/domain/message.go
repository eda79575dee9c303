package domain

import "time"

// Message is an immutable direct message between two users. SenderID and
// ReceiverID are plain references; neither is checked on write.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
