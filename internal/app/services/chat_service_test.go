package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	appauth "github.com/Anurg29/Aluminiconnect/internal/app/auth"
	"github.com/Anurg29/Aluminiconnect/internal/app/models"
	"github.com/Anurg29/Aluminiconnect/internal/app/models/dto"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/apperrors"
)

func newChatService(messageRepo MessageStore, conversationRepo ConversationStore, userRepo UserStore) ChatService {
	authz := appauth.NewAuthorizationService([]string{"admin@alumniconnect.com"})
	return NewChatService(messageRepo, conversationRepo, userRepo, authz, zerolog.Nop())
}

func visibleUser(id int64, name string) *models.User {
	return &models.User{
		ID:         id,
		FullName:   name,
		UserType:   models.UserTypeAlumni,
		IsVerified: true,
		IsActive:   true,
	}
}

func TestChatService_SendMessage(t *testing.T) {
	t.Run("successful send", func(t *testing.T) {
		mockMessages := new(MockMessageStore)
		mockMessages.On("Send", mock.Anything, mock.MatchedBy(func(m *models.Message) bool {
			return m.SenderID == 1 && m.ReceiverID == 2 && m.Content == "hello"
		})).Return(nil)

		mockUsers := new(MockUserStore)
		mockUsers.On("GetByID", mock.Anything, int64(2)).Return(visibleUser(2, "Rahul Verma"), nil)
		mockUsers.On("GetByID", mock.Anything, int64(1)).Return(visibleUser(1, "Priya Sharma"), nil)

		service := newChatService(mockMessages, new(MockConversationStore), mockUsers)
		message, err := service.SendMessage(context.Background(), 1, &dto.SendMessageRequest{
			ReceiverID: 2,
			Content:    "hello",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Rahul Verma", message.ReceiverName)
		assert.Equal(t, "Priya Sharma", message.SenderName)
		mockMessages.AssertExpectations(t)
	})

	t.Run("self message is rejected", func(t *testing.T) {
		service := newChatService(new(MockMessageStore), new(MockConversationStore), new(MockUserStore))
		message, err := service.SendMessage(context.Background(), 1, &dto.SendMessageRequest{
			ReceiverID: 1,
			Content:    "note to self",
		})

		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		assert.Nil(t, message)
	})

	t.Run("hidden receiver reads as not found", func(t *testing.T) {
		receiver := visibleUser(2, "Rahul Verma")
		receiver.IsVerified = false

		mockUsers := new(MockUserStore)
		mockUsers.On("GetByID", mock.Anything, int64(2)).Return(receiver, nil)

		service := newChatService(new(MockMessageStore), new(MockConversationStore), mockUsers)
		_, err := service.SendMessage(context.Background(), 1, &dto.SendMessageRequest{
			ReceiverID: 2,
			Content:    "hello",
		})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestChatService_GetThread(t *testing.T) {
	thread := []*models.Message{
		{ID: 1, SenderID: 2, ReceiverID: 1, Content: "hi", IsRead: false},
		{ID: 2, SenderID: 1, ReceiverID: 2, Content: "hello", IsRead: false},
	}

	mockMessages := new(MockMessageStore)
	mockMessages.On("ListBetween", mock.Anything, int64(1), int64(2)).Return(thread, nil)
	mockMessages.On("MarkAllFromSenderRead", mock.Anything, int64(2), int64(1)).Return(nil)

	mockUsers := new(MockUserStore)
	mockUsers.On("GetByID", mock.Anything, int64(2)).Return(visibleUser(2, "Rahul Verma"), nil)

	service := newChatService(mockMessages, new(MockConversationStore), mockUsers)
	resp, err := service.GetThread(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "Rahul Verma", resp.OtherUser.FullName)
	// Incoming messages come back acknowledged, outgoing ones untouched
	assert.True(t, resp.Messages[0].IsRead)
	assert.False(t, resp.Messages[1].IsRead)
	mockMessages.AssertExpectations(t)
}

func TestChatService_ListConversations(t *testing.T) {
	now := time.Now()
	conversations := []*models.Conversation{
		{ID: 5, User1ID: 1, User2ID: 2, LastMessageAt: now},
		{ID: 6, User1ID: 1, User2ID: 3, LastMessageAt: now.Add(-time.Hour)},
	}
	lastMessage := &models.Message{ID: 9, SenderID: 2, ReceiverID: 1, Content: "latest"}

	mockConversations := new(MockConversationStore)
	mockConversations.On("ListByUser", mock.Anything, int64(1)).Return(conversations, nil)

	mockUsers := new(MockUserStore)
	mockUsers.On("GetByID", mock.Anything, int64(2)).Return(visibleUser(2, "Rahul Verma"), nil)
	// The counterpart of the second conversation was deleted
	mockUsers.On("GetByID", mock.Anything, int64(3)).Return(nil, apperrors.ErrUserNotFound)

	mockMessages := new(MockMessageStore)
	mockMessages.On("LastBetween", mock.Anything, int64(1), int64(2)).Return(lastMessage, nil)
	mockMessages.On("CountUnreadFrom", mock.Anything, int64(2), int64(1)).Return(int64(3), nil)

	service := newChatService(mockMessages, mockConversations, mockUsers)
	resp, err := service.ListConversations(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, int64(5), resp.Conversations[0].ConversationID)
	assert.Equal(t, int64(3), resp.Conversations[0].UnreadCount)
	assert.Equal(t, "latest", resp.Conversations[0].LastMessage.Content)
	mockMessages.AssertExpectations(t)
}

func TestChatService_MarkMessageRead(t *testing.T) {
	message := &models.Message{ID: 9, SenderID: 2, ReceiverID: 1}

	t.Run("receiver acknowledges", func(t *testing.T) {
		mockMessages := new(MockMessageStore)
		mockMessages.On("GetByID", mock.Anything, int64(9)).Return(message, nil)
		mockMessages.On("MarkRead", mock.Anything, int64(9)).Return(nil)

		service := newChatService(mockMessages, new(MockConversationStore), new(MockUserStore))
		assert.NoError(t, service.MarkMessageRead(context.Background(), 1, 9))
		mockMessages.AssertExpectations(t)
	})

	t.Run("sender cannot acknowledge", func(t *testing.T) {
		mockMessages := new(MockMessageStore)
		mockMessages.On("GetByID", mock.Anything, int64(9)).Return(message, nil)

		service := newChatService(mockMessages, new(MockConversationStore), new(MockUserStore))
		err := service.MarkMessageRead(context.Background(), 2, 9)

		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestChatService_DeleteMessage(t *testing.T) {
	message := &models.Message{ID: 9, SenderID: 2, ReceiverID: 1}

	t.Run("sender deletes", func(t *testing.T) {
		mockMessages := new(MockMessageStore)
		mockMessages.On("GetByID", mock.Anything, int64(9)).Return(message, nil)
		mockMessages.On("Delete", mock.Anything, int64(9)).Return(nil)

		service := newChatService(mockMessages, new(MockConversationStore), new(MockUserStore))
		assert.NoError(t, service.DeleteMessage(context.Background(), 2, 9))
		mockMessages.AssertExpectations(t)
	})

	t.Run("receiver cannot delete", func(t *testing.T) {
		mockMessages := new(MockMessageStore)
		mockMessages.On("GetByID", mock.Anything, int64(9)).Return(message, nil)

		service := newChatService(mockMessages, new(MockConversationStore), new(MockUserStore))
		err := service.DeleteMessage(context.Background(), 1, 9)

		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestChatService_GetThread_EmptyThreadSerializesAsArray(t *testing.T) {
	mockMessages := new(MockMessageStore)
	mockMessages.On("ListBetween", mock.Anything, int64(1), int64(2)).Return(nil, nil)
	mockMessages.On("MarkAllFromSenderRead", mock.Anything, int64(2), int64(1)).Return(nil)

	mockUsers := new(MockUserStore)
	mockUsers.On("GetByID", mock.Anything, int64(2)).Return(visibleUser(2, "Rahul Verma"), nil)

	service := newChatService(mockMessages, new(MockConversationStore), mockUsers)
	resp, err := service.GetThread(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Messages)

	payload, err := json.Marshal(resp)
	assert.NoError(t, err)
	assert.Contains(t, string(payload), `"messages":[]`)
}
