package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Anurg29/Aluminiconnect/internal/app/models/dto"
	"github.com/Anurg29/Aluminiconnect/internal/app/services"
	"github.com/Anurg29/Aluminiconnect/internal/middleware"
)

// ChatController handles direct messaging
type ChatController struct {
	chatService services.ChatService
}

// NewChatController creates a new chat controller
func NewChatController(chatService services.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

// SendMessage delivers a text to another member
// @Summary Send a message
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Receiver and content"
// @Success 201 {object} dto.SendMessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /chat/send [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	message, err := c.chatService.SendMessage(ctx.Request.Context(), middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SendMessageResponse{Message: "Message sent", Data: message})
}

// GetThread returns the thread with another member
// @Summary Get a conversation thread
// @Description Returns every message with the other member in chronological order and marks their unread messages as read.
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Other user ID"
// @Success 200 {object} dto.MessageListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /chat/messages/{userId} [get]
func (c *ChatController) GetThread(ctx *gin.Context) {
	otherUserID, ok := pathID(ctx, "userId")
	if !ok {
		return
	}

	resp, err := c.chatService.GetThread(ctx.Request.Context(), middleware.GetUserID(ctx), otherUserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListConversations summarizes the caller's conversations
// @Summary List conversations
// @Description Most recently active first, each with the counterpart, the newest message and the unread count.
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ConversationListResponse
// @Router /chat/conversations [get]
func (c *ChatController) ListConversations(ctx *gin.Context) {
	resp, err := c.chatService.ListConversations(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetUnreadCount totals the caller's unread messages
// @Summary Unread message count
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UnreadCountResponse
// @Router /chat/unread-count [get]
func (c *ChatController) GetUnreadCount(ctx *gin.Context) {
	resp, err := c.chatService.GetUnreadCount(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// MarkMessageRead acknowledges one message
// @Summary Mark a message read
// @Description Only the message's receiver may acknowledge it.
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /chat/mark-read/{id} [put]
func (c *ChatController) MarkMessageRead(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.chatService.MarkMessageRead(ctx.Request.Context(), middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Message marked as read"})
}

// DeleteMessage removes one message
// @Summary Delete a message
// @Description Only the message's sender may delete it.
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /chat/delete/{id} [delete]
func (c *ChatController) DeleteMessage(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.chatService.DeleteMessage(ctx.Request.Context(), middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Message deleted"})
}
