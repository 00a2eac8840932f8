package docengine

import (
	"context"
	"errors"
	"strings"

	"github.com/meghashyamc/wordseek/logger"
)

// Fallback tries each engine in order and returns the first non-empty text.
type Fallback struct {
	engines []Engine
	logger  logger.Logger
}

func NewFallback(logger logger.Logger, engines ...Engine) *Fallback {
	return &Fallback{engines: engines, logger: logger}
}

func (f *Fallback) Extract(ctx context.Context, path string) (string, error) {
	var errs []error
	emptyDocument := false

	for _, engine := range f.engines {
		text, err := engine.Extract(ctx, path)
		if err != nil {
			f.logger.Debug("legacy engine failed", "engine", engine.Name(), "path", path, "err", err.Error())
			errs = append(errs, err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			f.logger.Debug("legacy engine returned no text", "engine", engine.Name(), "path", path)
			emptyDocument = true
			continue
		}
		return text, nil
	}

	if emptyDocument {
		return "", nil
	}
	if len(errs) == 0 {
		return "", &ExtractionError{Engine: "fallback", Path: path, Err: ErrEngineUnavailable}
	}

	return "", &ExtractionError{Engine: "fallback", Path: path, Err: errors.Join(errs...)}
}
