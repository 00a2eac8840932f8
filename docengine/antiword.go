package docengine

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/meghashyamc/wordseek/logger"
)

const defaultAntiwordBinary = "antiword"

type Antiword struct {
	binary  string
	timeout time.Duration
	logger  logger.Logger
}

func NewAntiword(logger logger.Logger, binary string, timeout time.Duration) *Antiword {
	if binary == "" {
		binary = defaultAntiwordBinary
	}
	return &Antiword{binary: binary, timeout: timeout, logger: logger}
}

func (a *Antiword) Name() string {
	return "antiword"
}

func (a *Antiword) Extract(ctx context.Context, path string) (string, error) {
	binary, err := exec.LookPath(a.binary)
	if err != nil {
		return "", &ExtractionError{Engine: a.Name(), Path: path, Err: fmt.Errorf("%w: %w", ErrEngineUnavailable, err)}
	}

	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, "-m", "UTF-8.txt", path)
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	a.logger.Debug("running antiword", "path", path, "binary", binary)
	output, err := cmd.Output()
	if err != nil {
		return "", &ExtractionError{Engine: a.Name(), Path: path, Err: commandError(ctx, err, strings.TrimSpace(stderr.String()))}
	}

	return string(output), nil
}
