package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeremi16/synify-be/apperror"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func JSON200(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func JSON201(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func JSON400(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

func JSON401(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Error: message})
}

func JSON403(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, ErrorBody{Error: message})
}

func JSON404(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: message})
}

func JSON409(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorBody{Error: message})
}

func JSON500(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: message})
}

// JSONError maps a taxonomy error to its status code and body. Errors outside
// the taxonomy become opaque 500s.
func JSONError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	body := ErrorBody{Error: "internal server error"}
	if appErr, ok := apperror.As(err); ok {
		body.Error = appErr.Message
		body.Details = appErr.Details
	}
	c.JSON(status, body)
}
