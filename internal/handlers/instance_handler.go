package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MarvMa/arpas-backend/internal/responses"
	"github.com/MarvMa/arpas-backend/internal/services"
	"github.com/MarvMa/arpas-backend/internal/utils"
)

type InstanceHandler struct {
	instanceService *services.InstanceService
}

func NewInstanceHandler(instanceService *services.InstanceService) *InstanceHandler {
	return &InstanceHandler{
		instanceService: instanceService,
	}
}

// CreateInstance handles POST /instances. Both referenced rows must exist
// before anything is written; a 404 here means nothing was persisted.
func (h *InstanceHandler) CreateInstance(c *gin.Context) {
	var req services.CreateInstanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, bindingDetail(err))
		return
	}

	instance, err := h.instanceService.CreateInstance(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, instance)
}

// ListInstances handles GET /instances
func (h *InstanceHandler) ListInstances(c *gin.Context) {
	instances, err := h.instanceService.GetAllInstances()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, instances)
}

// GetInstance handles GET /instances/:id
func (h *InstanceHandler) GetInstance(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	instance, err := h.instanceService.GetInstance(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, instance)
}

// UpdateInstance handles PUT /instances/:id
func (h *InstanceHandler) UpdateInstance(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	var req services.UpdateInstanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, bindingDetail(err))
		return
	}

	instance, err := h.instanceService.UpdateInstance(id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, instance)
}

// DeleteInstance handles DELETE /instances/:id
func (h *InstanceHandler) DeleteInstance(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	if err := h.instanceService.DeleteInstance(id); err != nil {
		handleServiceError(c, err)
		return
	}

	responses.Message(c, http.StatusOK, "Instance deleted successfully")
}
