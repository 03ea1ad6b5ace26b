package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/heithemdev/rime-couture-sub001/internal/domain/catalog"
)

// retryPolicy bounds the catalog fetch retries.
type retryPolicy struct {
	maxAttempts int
	baseDelay   time.Duration
}

var defaultRetryPolicy = retryPolicy{maxAttempts: 3, baseDelay: 200 * time.Millisecond}

// transientPatterns identify fetch errors worth retrying: dropped
// connections, timeouts, and pool exhaustion.
var transientPatterns = []string{
	"connection refused",
	"connection reset",
	"connection terminated",
	"timeout",
	"timed out",
	"i/o timeout",
	"pool exhausted",
	"too many connections",
	"broken pipe",
	"unexpected eof",
}

// isTransient reports whether the error message matches a known
// transient failure pattern.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range transientPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// fetchWithRetry calls the catalog source, retrying transient failures
// with exponential backoff (baseDelay * 2^(attempt-1)). Non-transient
// errors and exhausted attempts propagate immediately.
func (s *Service) fetchWithRetry(ctx context.Context) ([]catalog.Product, error) {
	var lastErr error
	for attempt := 1; attempt <= s.retry.maxAttempts; attempt++ {
		products, err := s.source.FetchCandidates(ctx)
		if err == nil {
			return products, nil
		}
		if !isTransient(err) {
			return nil, fmt.Errorf("fetch candidates: %w", err)
		}

		lastErr = err
		s.countFetchRetry()
		s.logger.Warn("transient catalog fetch failure",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", s.retry.maxAttempts),
			zap.Error(err),
		)

		if attempt == s.retry.maxAttempts {
			break
		}

		delay := s.retry.baseDelay * (1 << (attempt - 1))
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("fetch candidates: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("fetch candidates after %d attempts: %w", s.retry.maxAttempts, lastErr)
}
