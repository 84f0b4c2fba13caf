package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CorrelationIDHeader carries the request correlation id on the wire
	CorrelationIDHeader = "X-Correlation-ID"

	// CorrelationIDKey is the gin context key the id is stored under
	CorrelationIDKey = "correlation_id"
)

// CorrelationID tags every request with a correlation id. A client-supplied
// X-Correlation-ID is honored so the SPA can correlate its own calls;
// otherwise one is generated. The id is echoed back on the response and made
// available to handlers and the request logger through the context.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CorrelationIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Header(CorrelationIDHeader, id)
		c.Set(CorrelationIDKey, id)

		c.Next()
	}
}

// GetCorrelationID returns the request's correlation id, or "" when the
// middleware did not run
func GetCorrelationID(c *gin.Context) string {
	raw, ok := c.Get(CorrelationIDKey)
	if !ok {
		return ""
	}
	id, _ := raw.(string)
	return id
}
