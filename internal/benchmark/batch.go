package benchmark

import (
	"errors"
)

// RunAll times each workload in order and hands every result to rep as soon
// as it is measured.
//
// By default the batch stops at the first WorkloadFailure and returns the
// results obtained so far together with that failure. With continueOnFailure
// the remaining workloads still run and the first failure is returned at the
// end. A reporter error always aborts the batch.
func RunAll(r Runner, workloads []Named, rep Reporter, continueOnFailure bool) ([]Result, error) {
	results := make([]Result, 0, len(workloads))
	var firstFailure error

	for _, w := range workloads {
		res, err := r.Run(w.Name, w.Work)
		if err != nil {
			var failure *WorkloadFailure
			if !errors.As(err, &failure) {
				return results, err
			}
			if firstFailure == nil {
				firstFailure = err
			}
			if !continueOnFailure {
				return results, firstFailure
			}
			continue
		}

		results = append(results, res)
		if rep != nil {
			if err := rep.Report(res); err != nil {
				return results, err
			}
		}
	}

	return results, firstFailure
}
