package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go-folder-cleanup/internal/domain/models"
)

// maxErrorLines is how many per-entry failures are printed under a
// cycle summary.
const maxErrorLines = 5

// Printer renders cycle banners and summaries for a human watching
// the terminal. It is a display collaborator only; the engine never
// depends on it.
type Printer struct {
	out   io.Writer
	title string
}

func NewPrinter(out io.Writer, title string) *Printer {
	return &Printer{
		out:   out,
		title: title,
	}
}

// Banner prints the title block that precedes each cycle.
func (p *Printer) Banner() {
	bar := strings.Repeat("=", len(p.title)+10)
	fmt.Fprintf(p.out, "\n%s\n%s\n%s\n%s\n",
		bar,
		p.title,
		time.Now().Format("2006-01-02 15:04:05"),
		bar)
}

// Summary prints one line of counts plus the first few error details.
func (p *Printer) Summary(report *models.DeletionReport) {
	fmt.Fprintf(p.out, "Deleted %d, Skipped %d, Errors %d.\n",
		len(report.Deleted), len(report.Skipped), len(report.Errors))

	n := len(report.Errors)
	if n > maxErrorLines {
		n = maxErrorLines
	}
	for _, e := range report.Errors[:n] {
		fmt.Fprintf(p.out, " - %s: %s\n", e.Name, e.Reason)
	}
}
