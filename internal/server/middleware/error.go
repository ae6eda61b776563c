package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/driftlabs/model-resolver-api/pkg/api"
)

// ErrorHandler converts errors attached by handlers into RFC 9457 responses.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		// first, we need to check if it's a custom error
		if problem, ok := err.(*api.Problem); ok {
			// if there is an internal log attached, log it
			if problem.Log != nil {
				logger.Error("Internal error", zap.Error(problem.Log))
			}

			// RFC 9457 dictates the json is at the root
			c.JSON(problem.Status, problem)
			c.Abort()
			return
		}

		if apiErr, ok := err.(*api.Error); ok {
			if apiErr.Log != nil {
				logger.Error("Internal error", zap.Error(apiErr.Log))
			}
			c.JSON(apiErr.Code, api.NewProblem(apiErr.Code, http.StatusText(apiErr.Code), apiErr.Message))
			c.Abort()
			return
		}

		// at this point it's an unknown error.
		// we just should to 500 for catch-all server error
		logger.Error("Unhandled error", zap.Error(err))

		c.JSON(http.StatusInternalServerError, api.NewProblem(
			http.StatusInternalServerError,
			"Internal Server Error",
			"An unexpected error occurred.",
		))

		c.Abort()
	}
}
