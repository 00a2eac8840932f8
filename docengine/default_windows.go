//go:build windows

package docengine

import "github.com/meghashyamc/wordseek/logger"

// Default returns the engines available on this platform, most accurate first.
func Default(logger logger.Logger, opts Options) *Fallback {
	return NewFallback(logger,
		NewWord(logger, opts.Timeout),
		NewLibreOffice(logger, opts.LibreOfficePath, opts.Timeout),
	)
}
