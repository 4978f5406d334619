package benchmark

import (
	"errors"
	"fmt"
)

// ErrNilWorkload is the cause recorded when Run is handed a nil workload.
var ErrNilWorkload = errors.New("nil workload")

// WorkloadFailure reports a workload that did not run to completion.
type WorkloadFailure struct {
	Name  string
	Cause error
}

func (e *WorkloadFailure) Error() string {
	return fmt.Sprintf("workload %q failed: %v", e.Name, e.Cause)
}

func (e *WorkloadFailure) Unwrap() error {
	return e.Cause
}
