package dto

import (
	"time"

	"github.com/Anurg29/Aluminiconnect/internal/app/models"
)

// SendMessageRequest carries a direct message
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// SendMessageResponse wraps the created message
type SendMessageResponse struct {
	Message string          `json:"message"`
	Data    *models.Message `json:"data"`
}

// ConversationSummary is one entry of the conversation listing: the
// other participant, the newest message between the pair, and how many
// of their messages the caller has not read yet.
type ConversationSummary struct {
	ConversationID int64           `json:"conversation_id"`
	OtherUser      *UserProfile    `json:"other_user"`
	LastMessage    *models.Message `json:"last_message"`
	UnreadCount    int64           `json:"unread_count"`
	LastMessageAt  time.Time       `json:"last_message_at"`
}

// ConversationListResponse is the body of the conversation listing
type ConversationListResponse struct {
	Count         int                    `json:"count"`
	Conversations []*ConversationSummary `json:"conversations"`
}

// MessageListResponse is the body of a thread fetch. Returning it has
// the side effect of acknowledging every unread message from the other
// user.
type MessageListResponse struct {
	Count     int               `json:"count"`
	Messages  []*models.Message `json:"messages"`
	OtherUser *UserProfile      `json:"other_user"`
}

// UnreadCountResponse is the total unread count for the caller
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}
