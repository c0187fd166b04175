package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/tassuhoiva/booking-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError maps an application error onto an HTTP status. Not-found gets
// its own status so the admin UI can prompt a list refresh instead of
// offering a doomed retry.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if apperrors.IsNotFound(err) {
		status = http.StatusNotFound
	}
	c.JSON(status, NewErrorResponse(err.Error()))
}
