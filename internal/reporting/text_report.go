package reporting

import (
	"fmt"
	"io"
	"strings"

	"click-rate/internal/models"

	"github.com/dustin/go-humanize"
)

const (
	rateDigits     = 6
	intervalDigits = 6
)

// Options controls the text report.
type Options struct {
	// PrintTimestamps appends every absolute timestamp, which can be large.
	PrintTimestamps bool
}

// WriteText renders a rate report for humans. timeline is optional; without it the counts
// per window and the timestamp dump are omitted.
func WriteText(w io.Writer, report *models.RateReport, timeline *models.AbsoluteTimeline, opts Options) error {
	p := &printer{w: w}

	p.printf("Run: %s\n", report.RunID)
	p.printf("Window length: %s\n", humanize.SIWithDigits(report.WindowLengthSeconds, intervalDigits, "s"))
	p.printf("Windows: %s\n", humanize.Comma(int64(report.WindowCount)))
	p.printf("Total time: %s\n", humanize.SIWithDigits(report.TotalElapsedSeconds, intervalDigits, "s"))
	if timeline != nil {
		p.printf("Counts per window: [%s]\n", joinInts(timeline.Counts))
	}
	p.printf("Rates per window (Hz): [%s]\n", joinFloats(report.PerWindowRates))
	p.printf("Total events: %s\n", humanize.Comma(report.TotalEvents))

	if report.AggregateRate != nil {
		p.printf("Overall rate: %s\n", humanize.SIWithDigits(*report.AggregateRate, rateDigits, "Hz"))
	} else {
		p.printf("Overall rate: undefined (no windows)\n")
	}

	if s := report.Intervals; s != nil {
		p.printf("Median inter-click interval: %s\n", humanize.SIWithDigits(s.Median, intervalDigits, "s"))
		p.printf("Mean inter-click interval:   %s\n", humanize.SIWithDigits(s.Mean, intervalDigits, "s"))
		if s.MedianInstantaneousRate != nil {
			p.printf("Median instantaneous rate:   %s\n", humanize.SIWithDigits(*s.MedianInstantaneousRate, rateDigits, "Hz"))
		} else {
			p.printf("Median instantaneous rate:   undefined (coincident tags)\n")
		}
	} else {
		p.printf("Not enough timestamps to compute inter-click intervals.\n")
	}

	if opts.PrintTimestamps && timeline != nil {
		p.printf("All absolute timestamps (ns): %v\n", timeline.Timestamps)
	}

	if p.err != nil {
		return fmt.Errorf("write text report: %w", p.err)
	}
	return nil
}

// printer keeps the first write error and skips later writes.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func joinInts(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = humanize.Comma(v)
	}
	return strings.Join(parts, ", ")
}

func joinFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = humanize.FtoaWithDigits(v, rateDigits)
	}
	return strings.Join(parts, ", ")
}
