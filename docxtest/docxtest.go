// Package docxtest writes Word documents for tests.
package docxtest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gingfrederik/docx"
)

// Write saves a .docx file at path with one paragraph per entry, creating
// parent directories as needed.
func Write(t testing.TB, path string, paragraphs ...string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("could not create directory for %s: %s", path, err)
	}

	f := docx.NewFile()
	for _, paragraph := range paragraphs {
		f.AddParagraph().AddText(paragraph)
	}

	if err := f.Save(path); err != nil {
		t.Fatalf("could not save docx %s: %s", path, err)
	}
}

// WriteRaw writes arbitrary bytes at path, for corrupt or non-document files.
func WriteRaw(t testing.TB, path string, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("could not create directory for %s: %s", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("could not write %s: %s", path, err)
	}
}
