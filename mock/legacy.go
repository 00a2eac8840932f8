package mock

import (
	"context"

	"github.com/meghashyamc/wordseek/services/search"
)

var _ search.LegacyTextExtractor = (*LegacyExtractor)(nil)

// LegacyExtractor is a mock implementation of search.LegacyTextExtractor.
// Paths records every path it was asked to read.
type LegacyExtractor struct {
	ExtractFn func(ctx context.Context, path string) (string, error)
	Paths     []string
}

func (e *LegacyExtractor) Extract(ctx context.Context, path string) (string, error) {
	e.Paths = append(e.Paths, path)
	return e.ExtractFn(ctx, path)
}
