package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/sma-adp-api/pkg/errors"
)

// errorBody is the literal shape documented for every non-2xx response: the
// error code, a human message, and whatever structured diagnostics the
// failing *appErrors.Error carries.
type errorBody struct {
	Error       string         `json:"error"`
	Message     string         `json:"message"`
	Diagnostics map[string]any `json:"diagnostics,omitempty"`
}

// JSON sends a success response with no envelope: callers pass exactly the
// body the external interface documents.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error converts err to an *appErrors.Error and writes its documented body
// at its mapped HTTP status. Unknown errors become 500s with the message
// preserved.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, errorBody{
		Error:       appErr.Code,
		Message:     appErr.Message,
		Diagnostics: appErr.Diagnostics,
	})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
