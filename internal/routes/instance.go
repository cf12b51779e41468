package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/MarvMa/arpas-backend/internal/handlers"
)

type InstanceRoutes struct {
	handler *handlers.InstanceHandler
}

func NewInstanceRoutes(handler *handlers.InstanceHandler) *InstanceRoutes {
	return &InstanceRoutes{handler: handler}
}

func (r *InstanceRoutes) RegisterRoutes(router *gin.RouterGroup) {
	instances := router.Group("/instances")
	{
		instances.POST("", r.handler.CreateInstance)
		instances.GET("", r.handler.ListInstances)
		instances.GET("/:id", r.handler.GetInstance)
		instances.PUT("/:id", r.handler.UpdateInstance)
		instances.DELETE("/:id", r.handler.DeleteInstance)
	}
}
