package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-userreg/internal/shared/contextutil"
)

// HeaderRequestID carries the server-generated request id back to the
// client, distinct from the client-owned X-Correlation-ID.
const HeaderRequestID = "X-Request-ID"

// CtxRequestID is the gin context key for the generated request id.
const CtxRequestID = "request_id"

// RequestLogger generates the request id, emits the before/after log
// pair, and times the inner chain. It owns the request id exclusively:
// no later stage may overwrite it. Panics from the inner chain are
// logged here and re-raised unchanged for the error-handling stage.
func RequestLogger(logger *zap.Logger, slowThreshold time.Duration) gin.HandlerFunc {
	l := logger.Named("http")
	if slowThreshold <= 0 {
		slowThreshold = time.Second
	}

	return func(c *gin.Context) {
		rid := uuid.New().String()[:8]

		c.Set(CtxRequestID, rid)
		c.Header(HeaderRequestID, rid)

		reqLogger := l.With(zap.String("request_id", rid))
		if uid := c.GetString(CtxUserID); uid != "" {
			reqLogger = reqLogger.With(zap.String("user_id", uid))
		}

		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		method := c.Request.Method
		path := c.Request.URL.Path

		reqLogger.Info("request started",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("client_ip", c.ClientIP()),
		)

		start := time.Now()
		defer func() {
			elapsed := time.Since(start)

			rec := recover()
			if rec != nil {
				// observe and forward: the error-handling stage
				// owns the translation to a response
				reqLogger.Error("request panicked",
					zap.String("method", method),
					zap.String("path", path),
					zap.Duration("elapsed", elapsed),
					zap.Any("panic", rec),
				)
			}

			reqLogger.Info("request completed",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("status", c.Writer.Status()),
				zap.Duration("elapsed", elapsed),
			)

			if elapsed > slowThreshold {
				reqLogger.Warn("slow request",
					zap.String("method", method),
					zap.String("path", path),
					zap.Duration("elapsed", elapsed),
					zap.Duration("threshold", slowThreshold),
				)
			}

			if rec != nil {
				panic(rec)
			}
		}()

		c.Next()
	}
}
