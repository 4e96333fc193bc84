// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"
)

// FactFetcher retrieves a trivia string about a number from an external source.
// Implementations must be safe for concurrent use.
type FactFetcher interface {
	Fact(ctx context.Context, number int64) (string, error)
}

// FactFunc adapts an ordinary function to the FactFetcher interface.
type FactFunc func(ctx context.Context, number int64) (string, error)

// Fact calls f(ctx, number).
func (f FactFunc) Fact(ctx context.Context, number int64) (string, error) {
	return f(ctx, number)
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
