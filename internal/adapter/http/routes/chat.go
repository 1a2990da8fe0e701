package routes

import (
	"chatorder/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChat = "/chat"
)

func addChatRoutes(rg *gin.RouterGroup, chatHandler *handlers.ChatHandler) {
	chat := rg.Group(PathChat)
	{
		chat.POST("/message", chatHandler.HandleMessage)
		chat.POST("/action", chatHandler.HandleAction)
	}
}
