package search

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Word creates "~$"-prefixed owner files next to documents that are open.
const lockFilePrefix = "~$"

type Format int

const (
	FormatLegacyDoc Format = iota + 1
	FormatModernDocx
)

func (f Format) String() string {
	switch f {
	case FormatLegacyDoc:
		return "doc"
	case FormatModernDocx:
		return "docx"
	default:
		return "unknown"
	}
}

type CandidateFile struct {
	Name   string
	Path   string
	Format Format
}

// DiscoverFiles lazily walks rootPath and yields every Word document in it.
// Each call starts a fresh walk. Subtrees that cannot be read are logged and
// skipped.
func (s *Service) DiscoverFiles(rootPath string) iter.Seq[CandidateFile] {
	return func(yield func(CandidateFile) bool) {
		err := filepath.WalkDir(rootPath, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				s.logger.Warn("could not walk through file or directory, skipping it", "path", path, "err", err.Error())
				if entry != nil && entry.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if entry.IsDir() {
				return nil
			}

			format, ok := formatOf(entry.Name())
			if !ok {
				return nil
			}

			if !yield(CandidateFile{Name: entry.Name(), Path: path, Format: format}) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			s.logger.Error("failed to walk folder", "path", rootPath, "err", err.Error())
		}
	}
}

func formatOf(name string) (Format, bool) {
	if strings.HasPrefix(name, lockFilePrefix) {
		return 0, false
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".doc":
		return FormatLegacyDoc, true
	case ".docx":
		return FormatModernDocx, true
	default:
		return 0, false
	}
}
