package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/meghashyamc/wordseek/logger"
)

const (
	MinKeywordLength        = 3
	defaultProgressInterval = 5
)

var (
	ErrKeywordTooShort = fmt.Errorf("keyword must be at least %d characters long", MinKeywordLength)
	ErrFolderRequired  = errors.New("folder path is required")
)

type Request struct {
	Folder  string
	Keyword string
}

type Match struct {
	FileName string
	FilePath string
}

// ProgressReporter receives the progress of a running search.
type ProgressReporter interface {
	Found(total int)
	Progress(processed int, total int)
	Completed(processed int)
}

type Service struct {
	logger           logger.Logger
	legacy           LegacyTextExtractor
	progress         ProgressReporter
	progressInterval int
}

func New(logger logger.Logger, legacy LegacyTextExtractor, progress ProgressReporter, progressInterval int) *Service {
	if progress == nil {
		progress = nopReporter{}
	}
	if progressInterval <= 0 {
		progressInterval = defaultProgressInterval
	}

	return &Service{
		logger:           logger,
		legacy:           legacy,
		progress:         progress,
		progressInterval: progressInterval,
	}
}

func ValidKeyword(keyword string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(keyword)) >= MinKeywordLength
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.Folder) == "" {
		return ErrFolderRequired
	}
	if !ValidKeyword(r.Keyword) {
		return ErrKeywordTooShort
	}
	return nil
}

// Search scans every Word document under the request folder and returns, in
// traversal order, those whose text contains the keyword. Files are counted
// in a first pass so the total can be reported before any document is read.
func (s *Service) Search(ctx context.Context, request Request) ([]Match, error) {
	if err := request.Validate(); err != nil {
		s.logger.Warn("rejected search request", "folder", request.Folder, "err", err.Error())
		return nil, err
	}

	scanID := uuid.New().String()
	keyword := normalizeKeyword(request.Keyword)
	s.logger.Info("starting search", "scan_id", scanID, "folder", request.Folder)

	total := s.countFiles(request.Folder)
	s.progress.Found(total)

	matches := make([]Match, 0)
	processed := 0
	for file := range s.DiscoverFiles(request.Folder) {
		content := s.extractContent(ctx, file)
		processed++

		if containsKeyword(content, keyword) {
			s.logger.Debug("keyword found", "scan_id", scanID, "path", file.Path)
			matches = append(matches, Match{FileName: file.Name, FilePath: file.Path})
		}

		if processed%s.progressInterval == 0 {
			s.progress.Progress(processed, total)
		}
	}

	s.progress.Completed(processed)
	s.logger.Info("finished search", "scan_id", scanID, "processed", processed, "matches", len(matches))

	return matches, nil
}

func (s *Service) countFiles(rootPath string) int {
	count := 0
	for range s.DiscoverFiles(rootPath) {
		count++
	}
	return count
}

type nopReporter struct{}

func (nopReporter) Found(int) {}

func (nopReporter) Progress(int, int) {}

func (nopReporter) Completed(int) {}
