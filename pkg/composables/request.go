package composables

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/churnai/churnai/pkg/constants"
)

var ErrNoLogger = errors.New("logger not found")

// UseLogger returns the request-scoped logger entry from the context.
// Panics if the logging middleware did not run.
func UseLogger(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(constants.LoggerKey)
	if logger == nil {
		panic("logger not found")
	}
	return logger.(*logrus.Entry)
}

func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, entry)
}

// UseRequestID returns the request id assigned by the logging middleware,
// or an empty string outside a request.
func UseRequestID(ctx context.Context) string {
	id, _ := ctx.Value(constants.RequestIDKey).(string)
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, constants.RequestIDKey, id)
}
