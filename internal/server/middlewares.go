package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kubev2v/taskpool/pkg/pool"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID tags every request with an id, reusing the one sent by the client if any.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// PoolLimiter runs the rest of the handler chain as one unit of work on p and
// waits for it, so no more than p.Size() requests are handled concurrently.
// A panic raised by a handler is re-raised with the same value on the request
// goroutine, where the recovery middleware deals with it.
func PoolLimiter(p *pool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := make(chan struct{})
		var panicked any

		err := p.Submit(func() {
			defer close(done)
			defer func() {
				panicked = recover()
			}()
			c.Next()
		})
		if err != nil {
			zap.S().Named("http").Warnw("request rejected", "path", c.Request.URL.Path, requestIDKey, c.GetString(requestIDKey), "error", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "server is shutting down"})
			return
		}

		<-done
		if panicked != nil {
			panic(panicked)
		}
	}
}
