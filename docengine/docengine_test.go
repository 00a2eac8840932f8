package docengine

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/meghashyamc/wordseek/logger"
	"github.com/stretchr/testify/require"
)

func newTestLogger() logger.Logger {
	opts := &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}

type stubEngine struct {
	name  string
	text  string
	err   error
	calls int
}

func (s *stubEngine) Name() string {
	return s.name
}

func (s *stubEngine) Extract(ctx context.Context, path string) (string, error) {
	s.calls++
	return s.text, s.err
}

// writeScript writes an executable shell script standing in for an
// external engine binary.
func writeScript(t *testing.T, assert *require.Assertions, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script engines are not supported on windows")
	}
	scriptPath := filepath.Join(t.TempDir(), "engine.sh")
	err := os.WriteFile(scriptPath, []byte("#!/bin/sh\n"+body+"\n"), 0o755)
	assert.NoError(err, "could not write engine script")
	return scriptPath
}

func TestFallbackReturnsFirstNonEmptyText(t *testing.T) {
	assert := require.New(t)
	failing := &stubEngine{name: "failing", err: &ExtractionError{Engine: "failing", Path: "a.doc", Err: ErrEngineUnavailable}}
	working := &stubEngine{name: "working", text: "quarterly budget"}
	unused := &stubEngine{name: "unused", text: "never read"}

	text, err := NewFallback(newTestLogger(), failing, working, unused).Extract(context.Background(), "a.doc")

	assert.NoError(err)
	assert.Equal("quarterly budget", text)
	assert.Equal(1, failing.calls)
	assert.Equal(1, working.calls)
	assert.Equal(0, unused.calls, "engines after the first success should not run")
}

func TestFallbackJoinsErrorsWhenEveryEngineFails(t *testing.T) {
	assert := require.New(t)
	unavailable := &stubEngine{name: "first", err: &ExtractionError{Engine: "first", Path: "a.doc", Err: ErrEngineUnavailable}}
	timedOut := &stubEngine{name: "second", err: &ExtractionError{Engine: "second", Path: "a.doc", Err: ErrTimeout}}

	text, err := NewFallback(newTestLogger(), unavailable, timedOut).Extract(context.Background(), "a.doc")

	assert.Error(err)
	assert.Empty(text)
	var extractionErr *ExtractionError
	assert.True(errors.As(err, &extractionErr))
	assert.Equal("a.doc", extractionErr.Path)
	assert.ErrorIs(err, ErrEngineUnavailable)
	assert.ErrorIs(err, ErrTimeout)
}

func TestFallbackWithoutEnginesIsUnavailable(t *testing.T) {
	assert := require.New(t)

	_, err := NewFallback(newTestLogger()).Extract(context.Background(), "a.doc")

	assert.ErrorIs(err, ErrEngineUnavailable)
}

func TestFallbackAcceptsEmptyDocument(t *testing.T) {
	assert := require.New(t)
	empty := &stubEngine{name: "empty", text: "\r\n"}
	failing := &stubEngine{name: "failing", err: errors.New("boom")}

	text, err := NewFallback(newTestLogger(), empty, failing).Extract(context.Background(), "empty.doc")

	assert.NoError(err, "an engine that read the document successfully should win over later failures")
	assert.Empty(text)
	assert.Equal(1, failing.calls)
}

func TestAntiwordMissingBinaryIsUnavailable(t *testing.T) {
	assert := require.New(t)
	missing := filepath.Join(t.TempDir(), "antiword")

	_, err := NewAntiword(newTestLogger(), missing, time.Second).Extract(context.Background(), "a.doc")

	assert.ErrorIs(err, ErrEngineUnavailable)
	var extractionErr *ExtractionError
	assert.True(errors.As(err, &extractionErr))
	assert.Equal("antiword", extractionErr.Engine)
}

func TestAntiwordReturnsCommandOutput(t *testing.T) {
	assert := require.New(t)
	script := writeScript(t, assert, `echo "Budget Report Q3 for $3"`)

	text, err := NewAntiword(newTestLogger(), script, 5*time.Second).Extract(context.Background(), "/docs/report.doc")

	assert.NoError(err)
	assert.Equal("Budget Report Q3 for /docs/report.doc\n", text)
}

func TestAntiwordReportsFailure(t *testing.T) {
	assert := require.New(t)
	script := writeScript(t, assert, `echo "not a Word document" >&2; exit 1`)

	_, err := NewAntiword(newTestLogger(), script, 5*time.Second).Extract(context.Background(), "corrupt.doc")

	assert.Error(err)
	assert.Contains(err.Error(), "not a Word document")
	assert.NotErrorIs(err, ErrEngineUnavailable)
}

func TestAntiwordTimesOut(t *testing.T) {
	assert := require.New(t)
	script := writeScript(t, assert, `exec sleep 5`)

	start := time.Now()
	_, err := NewAntiword(newTestLogger(), script, 100*time.Millisecond).Extract(context.Background(), "slow.doc")

	assert.ErrorIs(err, ErrTimeout)
	assert.Less(time.Since(start), 4*time.Second)
}

// fakeSoffice mimics `soffice --convert-to txt --outdir DIR FILE` by writing
// DIR/<basename>.txt.
const fakeSoffice = `
while [ $# -gt 0 ]; do
  case "$1" in
    --outdir) out="$2"; shift ;;
  esac
  last="$1"
  shift
done
base=$(basename "$last")
printf '%s' "$CONTENT" > "$out/${base%.*}.txt"
`

func TestLibreOfficeReadsConvertedText(t *testing.T) {
	assert := require.New(t)
	script := writeScript(t, assert, fakeSoffice)
	t.Setenv("CONTENT", "Minutes of the budget meeting")

	text, err := NewLibreOffice(newTestLogger(), script, 5*time.Second).Extract(context.Background(), filepath.Join(t.TempDir(), "minutes.doc"))

	assert.NoError(err)
	assert.Equal("Minutes of the budget meeting", text)
}

func TestLibreOfficeWithoutOutputFails(t *testing.T) {
	assert := require.New(t)
	script := writeScript(t, assert, `exit 0`)

	_, err := NewLibreOffice(newTestLogger(), script, 5*time.Second).Extract(context.Background(), filepath.Join(t.TempDir(), "broken.doc"))

	assert.Error(err)
	assert.Contains(err.Error(), "no output")
}

func TestDecodeText(t *testing.T) {
	testCases := []struct {
		name     string
		input    []byte
		expected string
	}{
		{name: "Plain UTF-8", input: []byte("budget"), expected: "budget"},
		{name: "UTF-8 with BOM", input: []byte("\xEF\xBB\xBFbudget"), expected: "budget"},
		{name: "UTF-16 little endian with BOM", input: []byte{0xFF, 0xFE, 'o', 0, 'k', 0}, expected: "ok"},
		{name: "UTF-16 big endian with BOM", input: []byte{0xFE, 0xFF, 0, 'o', 0, 'k'}, expected: "ok"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			text, err := decodeText(bytes.NewReader(testCase.input))
			assert.NoError(err)
			assert.Equal(testCase.expected, text)
		})
	}
}

func TestFileURL(t *testing.T) {
	assert := require.New(t)
	if runtime.GOOS == "windows" {
		t.Skip("unix paths only")
	}

	assert.Equal("file:///tmp/wordseek/profile", fileURL("/tmp/wordseek/profile"))
}
