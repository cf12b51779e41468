package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/MarvMa/arpas-backend/internal/handlers"
)

type ProjectRoutes struct {
	handler *handlers.ProjectHandler
}

func NewProjectRoutes(handler *handlers.ProjectHandler) *ProjectRoutes {
	return &ProjectRoutes{handler: handler}
}

func (r *ProjectRoutes) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.POST("", r.handler.CreateProject)
		projects.GET("", r.handler.ListProjects)
		projects.GET("/:id", r.handler.GetProject)
		projects.PUT("/:id", r.handler.UpdateProject)
		projects.DELETE("/:id", r.handler.DeleteProject)
		projects.GET("/:id/instances", r.handler.ListProjectInstances)
	}
}
