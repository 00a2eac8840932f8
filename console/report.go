package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/meghashyamc/wordseek/services/search"
)

const reportWidth = 50

var (
	heavyRule = strings.Repeat("=", reportWidth)
	lightRule = strings.Repeat("-", reportWidth)
)

func (c *Console) printBanner() {
	fmt.Fprintln(c.out, heavyRule)
	fmt.Fprintln(c.out, "      Word document keyword search      ")
	fmt.Fprintln(c.out, heavyRule)
}

func (c *Console) printReport(keyword string, matches []search.Match) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, heavyRule)
	if len(matches) == 0 {
		fmt.Fprintf(c.out, "No Word documents containing keyword '%s' were found\n", keyword)
		fmt.Fprintln(c.out, heavyRule)
		return
	}

	fmt.Fprintf(c.out, "Found %d file(s) containing keyword '%s':\n", len(matches), keyword)
	fmt.Fprintln(c.out, lightRule)
	for i, match := range matches {
		fmt.Fprintf(c.out, "%d. File name: %s\n", i+1, match.FileName)
		fmt.Fprintf(c.out, "   Path: %s\n", match.FilePath)
		fmt.Fprintln(c.out, lightRule)
	}
	fmt.Fprintln(c.out, heavyRule)
}

// progressPrinter rewrites a single terminal line while documents are read.
type progressPrinter struct {
	out io.Writer
}

func newProgressPrinter(out io.Writer) *progressPrinter {
	return &progressPrinter{out: out}
}

func (p *progressPrinter) Found(total int) {
	fmt.Fprintf(p.out, "%d files found, searching...\n", total)
}

func (p *progressPrinter) Progress(processed int, total int) {
	fmt.Fprintf(p.out, "\rProcessed %d/%d files", processed, total)
}

func (p *progressPrinter) Completed(processed int) {
	fmt.Fprintf(p.out, "\rSearch complete, processed %d files\n", processed)
}
