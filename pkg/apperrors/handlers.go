package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// envelope is the error half of the uniform {success, ...} response shape.
type envelope struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Code    ErrorCode   `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError renders err as the JSON error envelope with the proper status.
// Anything that is not an *AppError becomes an InternalError.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	c.JSON(appErr.HTTPCode, envelope{
		Success: false,
		Error:   appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}

// AsAppError unwraps err into an *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// MethodNotAllowedHandler is installed as the Gin NoMethod handler so every
// endpoint answers wrong verbs with the same envelope.
func MethodNotAllowedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleError(c, NewMethodNotAllowedError())
	}
}

// NotFoundHandler answers unknown routes with the envelope instead of Gin's
// plain 404 page.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, envelope{
			Success: false,
			Error:   "Route not found",
			Code:    CodeNotFound,
		})
	}
}
