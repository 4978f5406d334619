// Package workloads holds the sample workloads timed by greenbench.
//
// Each inefficient workload has an efficient counterpart computing the same
// kind of result, so the two suites can be read side by side.
package workloads

import (
	"strings"

	"greenbench/internal/benchmark"
)

// Suite is an ordered group of workloads run together.
type Suite struct {
	Name        string
	Description string
	Workloads   []benchmark.Named
}

// Sink keeps workload results reachable so the compiler cannot drop the loops.
var Sink any

// Catalog returns every suite with loop bounds multiplied by scale.
// A scale below 1 is treated as 1.
func Catalog(scale int) []Suite {
	if scale < 1 {
		scale = 1
	}
	return []Suite{
		{
			Name:        "inefficient",
			Description: "Quadratic loops, per-iteration allocation and repeated work",
			Workloads:   inefficient(scale),
		},
		{
			Name:        "efficient",
			Description: "Counterparts of the inefficient suite",
			Workloads:   efficient(scale),
		},
		{
			Name:        "sample",
			Description: "Short inefficient/efficient pair",
			Workloads:   sample(scale),
		},
	}
}

// Lookup finds a suite by name.
func Lookup(suites []Suite, name string) (Suite, bool) {
	for _, s := range suites {
		if s.Name == name {
			return s, true
		}
	}
	return Suite{}, false
}

// Resolve turns CLI selectors into an ordered workload list. A selector is a
// suite name or "suite/workload". No selectors selects every suite.
// Workloads are labelled "suite/workload" so names stay unique.
func Resolve(suites []Suite, selectors []string) ([]benchmark.Named, error) {
	if len(selectors) == 0 {
		for _, s := range suites {
			selectors = append(selectors, s.Name)
		}
	}

	var out []benchmark.Named
	for _, sel := range selectors {
		suiteName, workloadName, single := strings.Cut(sel, "/")
		s, ok := Lookup(suites, suiteName)
		if !ok {
			return nil, &UnknownError{Selector: sel}
		}
		if !single {
			for _, w := range s.Workloads {
				out = append(out, qualify(s.Name, w))
			}
			continue
		}
		w, ok := find(s, workloadName)
		if !ok {
			return nil, &UnknownError{Selector: sel}
		}
		out = append(out, qualify(s.Name, w))
	}
	return out, nil
}

// UnknownError is returned by Resolve for a selector matching nothing.
type UnknownError struct {
	Selector string
}

func (e *UnknownError) Error() string {
	return "unknown suite or workload: " + e.Selector
}

func find(s Suite, name string) (benchmark.Named, bool) {
	for _, w := range s.Workloads {
		if w.Name == name {
			return w, true
		}
	}
	return benchmark.Named{}, false
}

func qualify(suite string, w benchmark.Named) benchmark.Named {
	return benchmark.Named{Name: suite + "/" + w.Name, Work: w.Work}
}
