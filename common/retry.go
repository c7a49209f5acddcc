package common

import (
	"context"
	"fmt"
	"time"

	"github.com/0xPolygon/obridge/config/types"
)

// RetryHandler paces the retries of an operation that failed with a transient error
type RetryHandler struct {
	RetryAfterErrorPeriod types.Duration `mapstructure:"RetryAfterErrorPeriod"`
	// MaxRetryAttemptsAfterError -1 means unlimited
	MaxRetryAttemptsAfterError int `mapstructure:"MaxRetryAttemptsAfterError"`
}

// Handle waits before the next attempt. It returns an error once the attempts are exhausted
// or the context is done.
func (h *RetryHandler) Handle(ctx context.Context, funcName string, attempts int) error {
	if h.MaxRetryAttemptsAfterError > -1 && attempts >= h.MaxRetryAttemptsAfterError {
		return fmt.Errorf("%s failed too many times (%d)", funcName, h.MaxRetryAttemptsAfterError)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(h.RetryAfterErrorPeriod.Duration):
		return nil
	}
}
