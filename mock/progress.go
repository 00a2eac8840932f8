package mock

import (
	"fmt"

	"github.com/meghashyamc/wordseek/services/search"
)

var _ search.ProgressReporter = (*ProgressReporter)(nil)

// ProgressReporter records the progress events of a search as strings such
// as "found 3", "progress 5/12" and "completed 12".
type ProgressReporter struct {
	Events []string
}

func (r *ProgressReporter) Found(total int) {
	r.Events = append(r.Events, fmt.Sprintf("found %d", total))
}

func (r *ProgressReporter) Progress(processed int, total int) {
	r.Events = append(r.Events, fmt.Sprintf("progress %d/%d", processed, total))
}

func (r *ProgressReporter) Completed(processed int) {
	r.Events = append(r.Events, fmt.Sprintf("completed %d", processed))
}
