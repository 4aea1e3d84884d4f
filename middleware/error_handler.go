package middleware

import (
	"net/http"

	"BudgetPilot/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware renders the last error a handler attached with
// c.Error. CustomErrors keep their status; anything else becomes a 500.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if customErr, ok := utils.AsCustomError(err); ok {
			utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
			return
		}

		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
