package handlers

import (
	"errors"
	"log"
	"net/http"

	request "chatorder/internal/adapter/http/dto/request"
	response "chatorder/internal/adapter/http/dto/response"
	"chatorder/internal/usecase"
	"chatorder/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidChatPayload = pkg.NewDomainErrorSimple("INVALID_CHAT_INPUT", "Invalid chat payload", http.StatusBadRequest)
)

// ChatHandler handles the webhook endpoints of the conversational core.

type ChatHandler struct {
	usecase usecase.IConversationUseCase
}

func NewChatHandler(uc usecase.IConversationUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

// HandleMessage processes one free-text user message and returns the
// assistant's reply.
func (h *ChatHandler) HandleMessage(c *gin.Context) {
	var payload request.ChatMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	userID := payload.ResolveUserID()
	log.Printf("[chat][handler] message start user_id=%s", userID)

	reply, err := h.usecase.HandleMessage(c.Request.Context(), userID, payload.Text)
	if err != nil {
		log.Printf("[chat][handler] message failed user_id=%s err=%v", userID, err)
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[chat][handler] message success user_id=%s reply_len=%d choices=%d", userID, len(reply.Text), len(reply.Choices))

	c.JSON(http.StatusOK, response.FromReply(reply))
}

// HandleAction processes a button press (confirm or cancel).
func (h *ChatHandler) HandleAction(c *gin.Context) {
	var payload request.ChatActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	userID := payload.ResolveUserID()
	log.Printf("[chat][handler] action start user_id=%s action=%s", userID, payload.Action)

	reply, err := h.usecase.HandleAction(c.Request.Context(), userID, payload.Action)
	if err != nil {
		log.Printf("[chat][handler] action failed user_id=%s err=%v", userID, err)
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[chat][handler] action success user_id=%s reply_len=%d", userID, len(reply.Text))

	c.JSON(http.StatusOK, response.FromReply(reply))
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAction):
		return pkg.NewDomainErrorSimple("INVALID_ACTION", "Unknown action", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
