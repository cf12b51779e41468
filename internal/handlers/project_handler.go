package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MarvMa/arpas-backend/internal/responses"
	"github.com/MarvMa/arpas-backend/internal/services"
	"github.com/MarvMa/arpas-backend/internal/utils"
)

type ProjectHandler struct {
	projectService  *services.ProjectService
	instanceService *services.InstanceService
}

func NewProjectHandler(projectService *services.ProjectService, instanceService *services.InstanceService) *ProjectHandler {
	return &ProjectHandler{
		projectService:  projectService,
		instanceService: instanceService,
	}
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, bindingDetail(err))
		return
	}

	project, err := h.projectService.CreateProject(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.GetAllProjects()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	project, err := h.projectService.GetProject(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject handles PUT /projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	var req services.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, bindingDetail(err))
		return
	}

	project, err := h.projectService.UpdateProject(id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	if err := h.projectService.DeleteProject(id); err != nil {
		handleServiceError(c, err)
		return
	}

	responses.Message(c, http.StatusOK, "Project deleted successfully")
}

// ListProjectInstances handles GET /projects/:id/instances
func (h *ProjectHandler) ListProjectInstances(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	instances, err := h.instanceService.GetInstancesByProject(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, instances)
}
