package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-userreg/internal/shared/apperror"
	"go-userreg/internal/shared/contextutil"
	"go-userreg/internal/shared/response"
)

// ErrorHandler is the outermost stage: one failure boundary around the
// whole chain. It recovers panics, drains errors attached via c.Error,
// maps them to the status/category taxonomy, and writes the structured
// error body. It must never fail itself; if writing the body is not
// possible the response degrades to a bare 500.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	l := logger.Named("errors")

	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rec)
				}
				writeFailure(c, l, err)
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			writeFailure(c, l, c.Errors.Last().Err)
		}
	}
}

func writeFailure(c *gin.Context, l *zap.Logger, err error) {
	if c.Writer.Written() {
		return
	}

	rid := contextutil.GetRequestID(c.Request.Context())
	if rid == "" {
		rid = "Unknown"
	}

	appErr := apperror.From(err)

	fields := []zap.Field{
		zap.String("request_id", rid),
		zap.String("code", appErr.Code),
		zap.String("message", appErr.Message),
	}
	if appErr.Code == apperror.CodeInternalError {
		// unmapped kind: keep the full diagnostic in the log,
		// never in the response
		fields = append(fields, zap.Error(err))
	}
	l.Error("request failed", fields...)

	defer func() {
		// the failure boundary must always produce a response,
		// even if serialization itself blows up
		if rec := recover(); rec != nil {
			l.Error("error response serialization failed", zap.Any("panic", rec))
			c.AbortWithStatus(http.StatusInternalServerError)
		}
	}()

	response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message)
	c.Abort()
}
