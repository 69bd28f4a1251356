package models

import (
	"time"
)

// Message is a directed text from one user to another. Only the sender
// may delete it; only the receiver may mark it read.
type Message struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"sender_id" db:"sender_id"`
	ReceiverID int64     `json:"receiver_id" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	IsRead     bool      `json:"is_read" db:"is_read"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	// Denormalized for responses, populated by joins
	SenderName   string `json:"sender_name,omitempty" db:"-"`
	ReceiverName string `json:"receiver_name,omitempty" db:"-"`
}
