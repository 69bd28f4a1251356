package models

import (
	"time"
)

// Conversation pairs two users, at most one row per unordered pair.
// The pair is canonicalized (lower id first) before every lookup and
// insert so the unique constraint on (user1_id, user2_id) can hold.
type Conversation struct {
	ID            int64     `json:"id" db:"id"`
	User1ID       int64     `json:"user1_id" db:"user1_id"`
	User2ID       int64     `json:"user2_id" db:"user2_id"`
	LastMessageAt time.Time `json:"last_message_at" db:"last_message_at"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// OtherUserID resolves the participant that is not userID
func (c *Conversation) OtherUserID(userID int64) int64 {
	if c.User1ID == userID {
		return c.User2ID
	}
	return c.User1ID
}

// CanonicalPair orders two user IDs so the lower one comes first
func CanonicalPair(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}
