package docengine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/meghashyamc/wordseek/logger"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var libreOfficeBinaries = []string{"soffice", "libreoffice", "loffice"}

var libreOfficeInstallPaths = []string{
	`C:\Program Files\LibreOffice\program\soffice.exe`,
	`C:\Program Files (x86)\LibreOffice\program\soffice.exe`,
	"/Applications/LibreOffice.app/Contents/MacOS/soffice",
	"/usr/bin/soffice",
	"/opt/libreoffice/program/soffice",
}

// LibreOffice converts documents to text with a headless LibreOffice
// instance. Every call starts its own instance with a throwaway profile so
// that a desktop session of LibreOffice does not swallow the conversion.
type LibreOffice struct {
	binary  string
	timeout time.Duration
	logger  logger.Logger
}

func NewLibreOffice(logger logger.Logger, binary string, timeout time.Duration) *LibreOffice {
	return &LibreOffice{binary: binary, timeout: timeout, logger: logger}
}

func (l *LibreOffice) Name() string {
	return "libreoffice"
}

func (l *LibreOffice) Extract(ctx context.Context, path string) (string, error) {
	binary := l.findBinary()
	if binary == "" {
		return "", &ExtractionError{Engine: l.Name(), Path: path, Err: ErrEngineUnavailable}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", &ExtractionError{Engine: l.Name(), Path: path, Err: fmt.Errorf("failed to get absolute path: %w", err)}
	}

	workDir, err := os.MkdirTemp("", "wordseek-soffice-")
	if err != nil {
		return "", &ExtractionError{Engine: l.Name(), Path: path, Err: fmt.Errorf("failed to create work directory: %w", err)}
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			l.logger.Warn("failed to remove libreoffice work directory", "path", workDir, "err", err.Error())
		}
	}()

	outDir := filepath.Join(workDir, "out")
	if err := os.Mkdir(outDir, 0o700); err != nil {
		return "", &ExtractionError{Engine: l.Name(), Path: path, Err: fmt.Errorf("failed to create output directory: %w", err)}
	}

	ctx, cancel := withTimeout(ctx, l.timeout)
	defer cancel()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary,
		"-env:UserInstallation="+fileURL(filepath.Join(workDir, "profile")),
		"--headless",
		"--norestore",
		"--convert-to", "txt:Text (encoded):UTF8",
		"--outdir", outDir,
		absPath,
	)
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	l.logger.Debug("running libreoffice conversion", "path", absPath, "binary", binary)
	if err := cmd.Run(); err != nil {
		return "", &ExtractionError{Engine: l.Name(), Path: path, Err: commandError(ctx, err, strings.TrimSpace(stderr.String()))}
	}

	baseName := strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath))
	file, err := os.Open(filepath.Join(outDir, baseName+".txt"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = fmt.Errorf("conversion produced no output, stderr: %s", strings.TrimSpace(stderr.String()))
		}
		return "", &ExtractionError{Engine: l.Name(), Path: path, Err: err}
	}
	defer file.Close()

	text, err := decodeText(file)
	if err != nil {
		return "", &ExtractionError{Engine: l.Name(), Path: path, Err: fmt.Errorf("failed to read conversion output: %w", err)}
	}

	return text, nil
}

func (l *LibreOffice) findBinary() string {
	if l.binary != "" {
		if resolved, err := exec.LookPath(l.binary); err == nil {
			return resolved
		}
		l.logger.Warn("configured libreoffice binary not found, searching defaults", "binary", l.binary)
	}

	for _, name := range libreOfficeBinaries {
		if resolved, err := exec.LookPath(name); err == nil {
			return resolved
		}
	}

	for _, installPath := range libreOfficeInstallPaths {
		if _, err := os.Stat(installPath); err == nil {
			return installPath
		}
	}

	return ""
}

// decodeText honours a UTF-8 or UTF-16 byte order mark and assumes UTF-8
// otherwise.
func decodeText(r io.Reader) (string, error) {
	decoded, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func fileURL(path string) string {
	slashed := filepath.ToSlash(path)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	return (&url.URL{Scheme: "file", Path: slashed}).String()
}
