package benchmark

import "time"

// Result is the measurement of a single workload invocation.
type Result struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration"`
}

// Seconds returns the measured duration in seconds.
func (r Result) Seconds() float64 {
	return r.Duration.Seconds()
}

// Workload is a unit of work whose execution time is measured.
// A workload terminates abnormally by returning an error or panicking.
type Workload func() error

// Named pairs a workload with the label it is reported under.
type Named struct {
	Name string
	Work Workload
}
