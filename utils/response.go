package utils

import (
	"github.com/gin-gonic/gin"
)

// The bid API wraps every payload in a small envelope so clients can read
// the outcome without inspecting the HTTP status line.
type successEnvelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type errorEnvelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// JSONResponse sends data wrapped in the standard success envelope.
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, successEnvelope{Status: status, Message: message, Data: data})
}

// JSONError sends the failure envelope carrying the error text.
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, errorEnvelope{Status: status, Message: message, Error: err.Error()})
}
