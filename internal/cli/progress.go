package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
)

// cellProgressReporter renders a progress bar over cell analysis. It
// implements deps.ProgressReporter and stays silent in quiet mode.
type cellProgressReporter struct {
	quiet bool
	bar   *progressbar.ProgressBar
}

func newCellProgressReporter(quiet bool) *cellProgressReporter {
	return &cellProgressReporter{quiet: quiet}
}

func (r *cellProgressReporter) OnCellAnalyzed(processed, total int) {
	if r.quiet {
		return
	}

	if r.bar == nil {
		r.bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription("Analyzing cells"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("cells/s"),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)
	}
	r.bar.Add(1)
}
