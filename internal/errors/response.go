package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope every endpoint returns. Mobile and
// panel clients read the "detail" key; do not rename it.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func respond(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Detail: message})
}

func BadRequest(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	respond(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	respond(c, http.StatusInternalServerError, message)
}
