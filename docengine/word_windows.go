//go:build windows

package docengine

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/meghashyamc/wordseek/logger"
)

const (
	sFalse             = 1
	wdDoNotSaveChanges = 0
	wdAlertsNone       = 0
	// Opening with a wrong password makes protected documents fail instead
	// of waiting on a hidden password dialog.
	placeholderPassword = "wordseek"
)

// Word drives a Microsoft Word instance over COM automation. Each call starts
// a hidden instance and quits it before returning.
type Word struct {
	timeout time.Duration
	logger  logger.Logger
}

func NewWord(logger logger.Logger, timeout time.Duration) *Word {
	return &Word{timeout: timeout, logger: logger}
}

func (w *Word) Name() string {
	return "word"
}

func (w *Word) Extract(ctx context.Context, path string) (string, error) {
	ctx, cancel := withTimeout(ctx, w.timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := w.extract(path)
		done <- result{text: text, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return "", &ExtractionError{Engine: w.Name(), Path: path, Err: r.err}
		}
		return r.text, nil
	case <-ctx.Done():
		// The automation goroutine still closes and quits Word once the
		// blocked call returns.
		return "", &ExtractionError{Engine: w.Name(), Path: path, Err: fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())}
	}
}

func (w *Word) extract(path string) (string, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil && !isAlreadyInitialized(err) {
		return "", fmt.Errorf("failed to initialize COM: %w", err)
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("Word.Application")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEngineUnavailable, err)
	}
	defer unknown.Release()

	word, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEngineUnavailable, err)
	}
	defer word.Release()
	defer func() {
		result, err := oleutil.CallMethod(word, "Quit", wdDoNotSaveChanges)
		if err != nil {
			w.logger.Warn("failed to quit word", "path", path, "err", err.Error())
			return
		}
		result.Clear()
	}()

	visibleVariant, err := oleutil.PutProperty(word, "Visible", false)
	if err != nil {
		return "", fmt.Errorf("failed to hide word: %w", err)
	}
	visibleVariant.Clear()
	alertsVariant, err := oleutil.PutProperty(word, "DisplayAlerts", wdAlertsNone)
	if err != nil {
		return "", fmt.Errorf("failed to disable word alerts: %w", err)
	}
	alertsVariant.Clear()

	documentsVariant, err := oleutil.GetProperty(word, "Documents")
	if err != nil {
		return "", fmt.Errorf("failed to get documents collection: %w", err)
	}
	defer documentsVariant.Clear()
	documents := documentsVariant.ToIDispatch()

	// FileName, ConfirmConversions, ReadOnly, AddToRecentFiles, PasswordDocument
	documentVariant, err := oleutil.CallMethod(documents, "Open", path, false, true, false, placeholderPassword)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	// Clearing a variant releases the dispatch it holds.
	defer documentVariant.Clear()
	document := documentVariant.ToIDispatch()
	defer func() {
		result, err := oleutil.CallMethod(document, "Close", wdDoNotSaveChanges)
		if err != nil {
			w.logger.Warn("failed to close document", "path", path, "err", err.Error())
			return
		}
		result.Clear()
	}()

	contentVariant, err := oleutil.GetProperty(document, "Content")
	if err != nil {
		return "", fmt.Errorf("failed to get document content: %w", err)
	}
	defer contentVariant.Clear()
	content := contentVariant.ToIDispatch()

	textVariant, err := oleutil.GetProperty(content, "Text")
	if err != nil {
		return "", fmt.Errorf("failed to read document text: %w", err)
	}
	defer textVariant.Clear()

	return textVariant.ToString(), nil
}

func isAlreadyInitialized(err error) bool {
	var oleErr *ole.OleError
	return errors.As(err, &oleErr) && oleErr.Code() == sFalse
}
