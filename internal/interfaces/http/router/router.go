package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Samuel-ncu/goshopsync/internal/interfaces/http/handler"
)

func RegisterRoutes(r *gin.Engine, orderHandler *handler.OrderHandler, salesHandler *handler.SalesHandler) {
	api := r.Group("/api")
	{
		api.GET("/orders/:code", orderHandler.GetOrder)
		api.GET("/sales/summary", salesHandler.GetSummary)
	}
}
