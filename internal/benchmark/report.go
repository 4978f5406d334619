package benchmark

import (
	"fmt"
	"io"
)

// Reporter receives results as they are produced.
type Reporter interface {
	Report(Result) error
}

// LineReporter writes one "<name>: <seconds> seconds" line per result.
type LineReporter struct {
	w io.Writer
}

func NewLineReporter(w io.Writer) *LineReporter {
	return &LineReporter{w: w}
}

func (l *LineReporter) Report(res Result) error {
	_, err := fmt.Fprintf(l.w, "%s: %f seconds\n", res.Name, res.Seconds())
	return err
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Result) error

func (f ReporterFunc) Report(res Result) error {
	return f(res)
}
