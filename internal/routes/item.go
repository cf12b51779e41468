package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/MarvMa/arpas-backend/internal/handlers"
)

type ItemRoutes struct {
	handler *handlers.ItemHandler
}

func NewItemRoutes(handler *handlers.ItemHandler) *ItemRoutes {
	return &ItemRoutes{handler: handler}
}

func (r *ItemRoutes) RegisterRoutes(router *gin.RouterGroup) {
	items := router.Group("/items")
	{
		items.POST("", r.handler.CreateItem)
		items.GET("", r.handler.ListItems)
		items.GET("/:id", r.handler.GetItem)
		items.PUT("/:id", r.handler.UpdateItem)
		items.DELETE("/:id", r.handler.DeleteItem)

		items.POST("/:id/model", r.handler.UploadModel)
		items.GET("/:id/model", r.handler.DownloadModel)
		items.DELETE("/:id/model", r.handler.DeleteModel)
	}
}
