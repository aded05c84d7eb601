package utils

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(RequestIDKey)
	if val == nil {
		return "", false
	}

	requestID, ok := val.(string)
	return requestID, ok && requestID != ""
}

// LoggerFromContext scopes log with the request id carried by ctx, if any.
func LoggerFromContext(ctx context.Context, log *zap.Logger) *zap.Logger {
	if requestID, ok := GetRequestIDFromContext(ctx); ok {
		return log.With(zap.String("request_id", requestID))
	}
	return log
}
