package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MarvMa/arpas-backend/internal/responses"
	"github.com/MarvMa/arpas-backend/internal/services"
	"github.com/MarvMa/arpas-backend/internal/utils"
)

type ItemHandler struct {
	itemService *services.ItemService
}

func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// CreateItem handles POST /items
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req services.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, bindingDetail(err))
		return
	}

	item, err := h.itemService.CreateItem(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListItems handles GET /items
func (h *ItemHandler) ListItems(c *gin.Context) {
	items, err := h.itemService.GetAllItems()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetItem handles GET /items/:id
func (h *ItemHandler) GetItem(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	item, err := h.itemService.GetItem(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateItem handles PUT /items/:id
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	var req services.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, bindingDetail(err))
		return
	}

	item, err := h.itemService.UpdateItem(id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /items/:id
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	if err := h.itemService.DeleteItem(id); err != nil {
		handleServiceError(c, err)
		return
	}

	responses.Message(c, http.StatusOK, "Item deleted successfully")
}

// UploadModel handles POST /items/:id/model. The payload arrives as a
// multipart form with the file under the "file" field and is stored as
// opaque bytes.
func (h *ItemHandler) UploadModel(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Model file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	item, err := h.itemService.UploadModel(id, data)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DownloadModel handles GET /items/:id/model, streaming the stored bytes
// back as a file attachment.
func (h *ItemHandler) DownloadModel(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	data, err := h.itemService.DownloadModel(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"item_%d_model\"", id))
	c.Data(http.StatusOK, "application/octet-stream", data)
}

// DeleteModel handles DELETE /items/:id/model
func (h *ItemHandler) DeleteModel(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	item, err := h.itemService.DeleteModel(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}
