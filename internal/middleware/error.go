package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

// ErrorHandler renders the last error a handler attached with c.Error.
// AppErrors keep their status and code; anything else becomes
// INTERNAL_ERROR. Internal causes are logged with the request ID and never
// written to the client. Responses already written are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := toAppError(c, c.Errors.Last().Err)
		abortWithAppError(c, appErr)
	}
}

func toAppError(c *gin.Context, err error) *apperrors.AppError {
	log := logger.Named("http").With(
		"request_id", c.GetString(requestIDKey),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		log.Errorw("unexpected error", "error", err)
		return apperrors.ErrInternalServer
	}
	if appErr.Internal != nil {
		log.Errorw("app error", "code", appErr.Code, "internal", appErr.Internal.Error())
	}
	return appErr
}

// abortWithAppError writes the {"error":{"code","message"}} envelope.
func abortWithAppError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{"code": appErr.Code, "message": appErr.Message},
	})
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	abortWithAppError(c, apperrors.ErrInvalidToken)
}
