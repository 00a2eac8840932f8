package docengine

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrEngineUnavailable = errors.New("document engine unavailable")
	ErrTimeout           = errors.New("document engine timed out")
)

// Engine extracts plain text from a legacy binary Word document.
type Engine interface {
	Name() string
	Extract(ctx context.Context, path string) (string, error)
}

type Options struct {
	AntiwordPath    string
	LibreOfficePath string
	Timeout         time.Duration
}

type ExtractionError struct {
	Engine string
	Path   string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s could not extract text from %s: %s", e.Engine, e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// commandError classifies a failed engine run, preferring the context error
// over the exit status the killed process reports.
func commandError(ctx context.Context, err error, stderr string) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
	}
	if stderr != "" {
		return fmt.Errorf("%w, stderr: %s", err, stderr)
	}
	return err
}
