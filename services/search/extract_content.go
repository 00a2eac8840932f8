package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/meghashyamc/wordseek/docengine"
)

// LegacyTextExtractor reads the plain text of a legacy binary Word document.
// Implementations report failures as *docengine.ExtractionError.
type LegacyTextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// extractContent never fails: unreadable documents are logged and treated as
// empty so that one bad file cannot abort a scan.
func (s *Service) extractContent(ctx context.Context, file CandidateFile) (content string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("recovered from panic while reading document, treating it as empty", "path", file.Path, "panic", fmt.Sprint(r))
			content = ""
		}
	}()

	var err error
	switch file.Format {
	case FormatModernDocx:
		content, err = readDocxText(file.Path)
	case FormatLegacyDoc:
		content, err = s.extractLegacy(ctx, file.Path)
	default:
		err = fmt.Errorf("unsupported document format %q", file.Format)
	}

	if err != nil {
		if errors.Is(err, docengine.ErrEngineUnavailable) {
			s.logger.Warn("no document engine could read legacy document, treating it as empty", "path", file.Path, "err", err.Error())
		} else {
			s.logger.Warn("could not read document, treating it as empty", "path", file.Path, "format", file.Format.String(), "err", err.Error())
		}
		return ""
	}

	return content
}

func (s *Service) extractLegacy(ctx context.Context, path string) (string, error) {
	if s.legacy == nil {
		return "", &docengine.ExtractionError{Engine: "none", Path: path, Err: docengine.ErrEngineUnavailable}
	}
	return s.legacy.Extract(ctx, path)
}
