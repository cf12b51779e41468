package responses

import "github.com/gin-gonic/gin"

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse confirms a completed delete.
type MessageResponse struct {
	Message string `json:"message"`
}

func Error(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, ErrorResponse{Detail: detail})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}
