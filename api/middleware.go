package api

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs each request in key=value form once the handler has finished.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("method=%s path=%s status=%d bytes=%d dur=%dms errs=%q",
			c.Request.Method,
			c.Request.URL.RequestURI(),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).Milliseconds(),
			c.Errors.String(),
		)
	}
}

type ctxKey string

// RequestIDKey carries the request ID in the request context.
const RequestIDKey ctxKey = "req_id"

// RequestID copies the X-Request-ID header into the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader("X-Request-ID"); id != "" {
			c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), RequestIDKey, id))
		}
		c.Next()
	}
}

// Timed logs how long the named operation took. Use as:
//
//	defer Timed(ctx, "route.booth")(&err)
func Timed(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)
		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
