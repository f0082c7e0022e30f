package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.jetify.com/typeid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

type requestPrefix struct{}

func (requestPrefix) Prefix() string { return "req" }

// RequestID is a typeid with the "req" prefix.
type RequestID struct {
	typeid.TypeID[requestPrefix]
}

// RequestIDs tags each request with an id, reusing a well-formed incoming
// X-Request-ID header.
func RequestIDs() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := typeid.Parse[RequestID](id); err != nil {
			rid, err := typeid.New[RequestID]()
			if err != nil {
				slog.Error("generating request id", "err", err)
			}
			id = rid.String()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestIDs.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Logger logs one line per request.
func Logger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", GetRequestID(c),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		switch {
		case c.Writer.Status() >= 500:
			log.ErrorContext(c.Request.Context(), "request", attrs...)
		case c.Writer.Status() >= 400:
			log.WarnContext(c.Request.Context(), "request", attrs...)
		default:
			log.InfoContext(c.Request.Context(), "request", attrs...)
		}
	}
}
