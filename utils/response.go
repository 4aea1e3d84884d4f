package utils

import "github.com/gin-gonic/gin"

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// ErrorResponse aborts the request with a JSON error body.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{StatusCode: statusCode, Message: message})
}

// ListResponse writes a bare JSON array. A nil slice is written as [] so
// clients never have to special-case null.
func ListResponse[T any](c *gin.Context, statusCode int, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(statusCode, items)
}
