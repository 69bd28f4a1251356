package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Anurg29/Aluminiconnect/internal/app/auth"
	"github.com/Anurg29/Aluminiconnect/internal/app/models"
	"github.com/Anurg29/Aluminiconnect/internal/app/models/dto"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/apperrors"
)

// ChatService defines the interface for direct messaging
type ChatService interface {
	SendMessage(ctx context.Context, senderID int64, req *dto.SendMessageRequest) (*models.Message, error)
	GetThread(ctx context.Context, actorID, otherUserID int64) (*dto.MessageListResponse, error)
	ListConversations(ctx context.Context, actorID int64) (*dto.ConversationListResponse, error)
	GetUnreadCount(ctx context.Context, actorID int64) (*dto.UnreadCountResponse, error)
	MarkMessageRead(ctx context.Context, actorID, messageID int64) error
	DeleteMessage(ctx context.Context, actorID, messageID int64) error
}

// chatServiceImpl implements ChatService
type chatServiceImpl struct {
	messageRepo      MessageStore
	conversationRepo ConversationStore
	userRepo         UserStore
	authz            *auth.AuthorizationService
	logger           zerolog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(
	messageRepo MessageStore,
	conversationRepo ConversationStore,
	userRepo UserStore,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) ChatService {
	return &chatServiceImpl{
		messageRepo:      messageRepo,
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
		authz:            authz,
		logger:           logger,
	}
}

// SendMessage delivers a text to another member. The receiver must
// exist and be a visible account; self-messaging is rejected.
func (s *chatServiceImpl) SendMessage(ctx context.Context, senderID int64, req *dto.SendMessageRequest) (*models.Message, error) {
	if req.ReceiverID == senderID {
		return nil, apperrors.NewBadRequestError("Cannot send a message to yourself")
	}

	receiver, err := s.userRepo.GetByID(ctx, req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !receiver.IsVerified || !receiver.IsActive {
		return nil, apperrors.ErrUserNotFound
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}

	if err := s.messageRepo.Send(ctx, message); err != nil {
		s.logger.Error().Err(err).
			Int64("senderID", senderID).
			Int64("receiverID", req.ReceiverID).
			Msg("Failed to send message")
		return nil, err
	}

	message.ReceiverName = receiver.FullName
	if sender, err := s.userRepo.GetByID(ctx, senderID); err == nil {
		message.SenderName = sender.FullName
	}

	return message, nil
}

// GetThread returns the full thread with another member in
// chronological order. Fetching it marks every unread message from the
// other side as read.
func (s *chatServiceImpl) GetThread(ctx context.Context, actorID, otherUserID int64) (*dto.MessageListResponse, error) {
	otherUser, err := s.userRepo.GetByID(ctx, otherUserID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.ListBetween(ctx, actorID, otherUserID)
	if err != nil {
		s.logger.Error().Err(err).
			Int64("actorID", actorID).
			Int64("otherUserID", otherUserID).
			Msg("Failed to list thread")
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	if messages == nil {
		// An empty thread serializes as [] rather than null
		messages = []*models.Message{}
	}

	if err := s.messageRepo.MarkAllFromSenderRead(ctx, otherUserID, actorID); err != nil {
		s.logger.Error().Err(err).
			Int64("actorID", actorID).
			Int64("otherUserID", otherUserID).
			Msg("Failed to mark thread read")
		return nil, err
	}

	// Reflect the acknowledgement in the returned payload
	for _, m := range messages {
		if m.SenderID == otherUserID {
			m.IsRead = true
		}
	}

	return &dto.MessageListResponse{
		Count:     len(messages),
		Messages:  messages,
		OtherUser: dto.NewUserProfile(otherUser),
	}, nil
}

// ListConversations summarizes the caller's conversations, most
// recently active first
func (s *chatServiceImpl) ListConversations(ctx context.Context, actorID int64) (*dto.ConversationListResponse, error) {
	conversations, err := s.conversationRepo.ListByUser(ctx, actorID)
	if err != nil {
		s.logger.Error().Err(err).Int64("actorID", actorID).Msg("Failed to list conversations")
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}

	summaries := make([]*dto.ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		otherUserID := conversation.OtherUserID(actorID)

		otherUser, err := s.userRepo.GetByID(ctx, otherUserID)
		if err != nil {
			// The counterpart account was deleted; skip the stale row
			continue
		}

		lastMessage, err := s.messageRepo.LastBetween(ctx, actorID, otherUserID)
		if err != nil {
			return nil, fmt.Errorf("error loading last message: %w", err)
		}

		unread, err := s.messageRepo.CountUnreadFrom(ctx, otherUserID, actorID)
		if err != nil {
			return nil, fmt.Errorf("error counting unread messages: %w", err)
		}

		summaries = append(summaries, &dto.ConversationSummary{
			ConversationID: conversation.ID,
			OtherUser:      dto.NewUserProfile(otherUser),
			LastMessage:    lastMessage,
			UnreadCount:    unread,
			LastMessageAt:  conversation.LastMessageAt,
		})
	}

	return &dto.ConversationListResponse{Count: len(summaries), Conversations: summaries}, nil
}

// GetUnreadCount totals the caller's unread messages
func (s *chatServiceImpl) GetUnreadCount(ctx context.Context, actorID int64) (*dto.UnreadCountResponse, error) {
	count, err := s.messageRepo.CountUnread(ctx, actorID)
	if err != nil {
		s.logger.Error().Err(err).Int64("actorID", actorID).Msg("Failed to count unread messages")
		return nil, fmt.Errorf("error counting unread messages: %w", err)
	}
	return &dto.UnreadCountResponse{UnreadCount: count}, nil
}

// MarkMessageRead acknowledges one message. Only its receiver may.
func (s *chatServiceImpl) MarkMessageRead(ctx context.Context, actorID, messageID int64) error {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	if !s.authz.IsReceiver(actorID, message) {
		return apperrors.NewForbiddenError("Only the receiver can mark a message as read")
	}

	return s.messageRepo.MarkRead(ctx, messageID)
}

// DeleteMessage removes one message. Only its sender may.
func (s *chatServiceImpl) DeleteMessage(ctx context.Context, actorID, messageID int64) error {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	if !s.authz.IsSender(actorID, message) {
		return apperrors.NewForbiddenError("Only the sender can delete a message")
	}

	if err := s.messageRepo.Delete(ctx, messageID); err != nil {
		s.logger.Error().Err(err).Int64("messageID", messageID).Msg("Failed to delete message")
		return err
	}

	return nil
}
