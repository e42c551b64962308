package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is the type of keys stored in request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	clientIDKey  = contextKey("clientID")
)

// WithLogger returns a copy of ctx carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It falls back to the default logger outside of a request.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

// WithClientID returns a copy of ctx carrying the authenticated client id.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}

// GetClientIDFromCtx retrieves the authenticated client id from a standard context.
func GetClientIDFromCtx(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	clientID, ok := ctx.Value(clientIDKey).(string)
	return clientID, ok && clientID != ""
}

// GetClientIDFromContext retrieves the authenticated client id from the Gin context.
func GetClientIDFromContext(c *gin.Context) (string, bool) {
	if clientIDVal, exists := c.Get(string(clientIDKey)); exists {
		if clientID, ok := clientIDVal.(string); ok && clientID != "" {
			return clientID, true
		}
	}
	return GetClientIDFromCtx(c.Request.Context())
}
