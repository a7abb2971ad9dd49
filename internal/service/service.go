// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, runs one store operation
// through a repository and classifies the result into an Outcome the
// handler can render without looking at store details.
package service

import (
	"context"

	"github.com/rs/zerolog"
)

// requestLogger returns the request-scoped logger stored in ctx by the
// HTTP middleware, or fallback when ctx carries none.
func requestLogger(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if log := zerolog.Ctx(ctx); log.GetLevel() != zerolog.Disabled {
		return log
	}
	return fallback
}
