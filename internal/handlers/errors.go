package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MarvMa/arpas-backend/internal/logger"
	"github.com/MarvMa/arpas-backend/internal/responses"
	"github.com/MarvMa/arpas-backend/internal/services"
)

// handleServiceError maps the service sentinels onto 404 responses and
// treats everything else as a storage fault: logged, answered with a
// generic 500 so no driver detail leaks to clients.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		responses.Error(c, http.StatusNotFound, "Project not found")
	case errors.Is(err, services.ErrItemNotFound):
		responses.Error(c, http.StatusNotFound, "Item not found")
	case errors.Is(err, services.ErrInstanceNotFound):
		responses.Error(c, http.StatusNotFound, "Instance not found")
	case errors.Is(err, services.ErrItemModelNotFound):
		responses.Error(c, http.StatusNotFound, "Item has no model data")
	default:
		logger.FromContext(c.Request.Context()).Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		responses.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
