package request

import "strings"

// ChatMessageRequest is the webhook payload for a free-text user message.
type ChatMessageRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// ChatActionRequest is the webhook payload for a button press.
type ChatActionRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Action string `json:"action" binding:"required"`
}

func (r ChatMessageRequest) ResolveUserID() string {
	return strings.TrimSpace(r.UserID)
}

func (r ChatActionRequest) ResolveUserID() string {
	return strings.TrimSpace(r.UserID)
}
