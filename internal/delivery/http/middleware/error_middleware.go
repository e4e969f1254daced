package middleware

import (
	"errors"
	"net/http"

	"go-mentorship-backend/internal/delivery/http/response"
	"go-mentorship-backend/pkg/apperror"
	"go-mentorship-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					logger.Log.Error("request failed", "error", appErr.Err, "path", c.FullPath(), "status", appErr.Code)
				}
				prior, _ := appErr.Details.(*response.PriorRequest)
				response.Error(c, appErr.Code, appErr.Message, prior)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side, send a generic message out.
				logger.Log.Error("unhandled internal error", "error", err, "path", c.FullPath())
				response.Error(c, http.StatusInternalServerError, "Ocurrió un error inesperado. Intentá nuevamente más tarde.", nil)
			}
		}
	}
}
