package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/meghashyamc/wordseek/config"
	"github.com/meghashyamc/wordseek/docengine"
	"github.com/meghashyamc/wordseek/logger"
	"github.com/meghashyamc/wordseek/services/search"
	"github.com/meghashyamc/wordseek/validation"
)

var ErrInputClosed = errors.New("input closed")

// Options carries values given on the command line. A valid Folder or
// Keyword skips the matching prompt.
type Options struct {
	Folder  string
	Keyword string
	NoWait  bool
}

// SearchInput is the confirmed folder and keyword of a session.
type SearchInput struct {
	Folder  string `json:"folder" validate:"required,folder_exists,is_folder,writable_folder"`
	Keyword string `json:"keyword" validate:"required,valid_keyword"`
}

type Console struct {
	in               *bufio.Reader
	out              io.Writer
	logger           logger.Logger
	validator        *validation.Validator
	legacy           search.LegacyTextExtractor
	progressInterval int
	isElevated       func() bool
}

// Run wires the console to the terminal and runs one interactive search.
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	log := logger.New(cfg.GetLogLevel())

	validator, err := validation.New(log)
	if err != nil {
		log.Error("error creating validator", "err", err.Error())
		return err
	}

	legacy := docengine.Default(log, docengine.Options{
		AntiwordPath:    cfg.GetAntiwordPath(),
		LibreOfficePath: cfg.GetLibreOfficePath(),
		Timeout:         cfg.GetLegacyTimeout(),
	})

	c := New(os.Stdin, os.Stdout, log, validator, legacy, cfg.GetProgressInterval())
	return c.Run(ctx, opts)
}

func New(in io.Reader, out io.Writer, logger logger.Logger, validator *validation.Validator, legacy search.LegacyTextExtractor, progressInterval int) *Console {
	return &Console{
		in:               bufio.NewReader(in),
		out:              out,
		logger:           logger,
		validator:        validator,
		legacy:           legacy,
		progressInterval: progressInterval,
		isElevated:       isElevated,
	}
}

func (c *Console) Run(ctx context.Context, opts Options) error {
	c.printBanner()

	if !c.isElevated() {
		fmt.Fprintln(c.out, "Note: not running with administrator privileges, some system folders may be inaccessible")
		fmt.Fprintln(c.out)
	}

	folder, err := c.promptFolder(opts.Folder)
	if err != nil {
		return err
	}

	keyword, err := c.promptKeyword(opts.Keyword)
	if err != nil {
		return err
	}

	input := SearchInput{Folder: folder, Keyword: keyword}
	if err := c.validator.Validate(input); err != nil {
		fmt.Fprintf(c.out, "Error: %s\n", err)
	} else {
		c.search(ctx, input)
	}

	if !opts.NoWait {
		c.waitForKeypress()
	}

	return nil
}

func (c *Console) search(ctx context.Context, input SearchInput) {
	service := search.New(c.logger, c.legacy, newProgressPrinter(c.out), c.progressInterval)
	matches, err := service.Search(ctx, search.Request{Folder: input.Folder, Keyword: input.Keyword})
	if err != nil {
		fmt.Fprintf(c.out, "Error: %s\n", err)
		return
	}
	c.printReport(input.Keyword, matches)
}
