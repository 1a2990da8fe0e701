package routes

import (
	"chatorder/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderLogHandler *handlers.OrderLogHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("/guest/:phone", orderLogHandler.ListByGuestPhone)
	}
}
