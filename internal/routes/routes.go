package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MarvMa/arpas-backend/internal/handlers"
)

// RegisterRoutes mounts every resource at the root path. The empty group
// keeps the per-resource registration signatures uniform.
func RegisterRoutes(router *gin.Engine, projectHandler *handlers.ProjectHandler, itemHandler *handlers.ItemHandler, instanceHandler *handlers.InstanceHandler) {
	root := router.Group("")

	projectRoutes := NewProjectRoutes(projectHandler)
	projectRoutes.RegisterRoutes(root)

	itemRoutes := NewItemRoutes(itemHandler)
	itemRoutes.RegisterRoutes(root)

	instanceRoutes := NewInstanceRoutes(instanceHandler)
	instanceRoutes.RegisterRoutes(root)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
