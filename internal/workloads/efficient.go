package workloads

import (
	"strings"

	"greenbench/internal/benchmark"
)

func efficient(scale int) []benchmark.Named {
	return []benchmark.Named{
		{Name: "closed-form-sum", Work: func() error {
			Sink = residueModSum(10000*scale, 10000)
			return nil
		}},
		{Name: "preallocated-buffer", Work: func() error {
			Sink = reuseBuffer(5000*scale, 100)
			return nil
		}},
		{Name: "hoisted-invariant", Work: func() error {
			Sink = hoistedInvariant(1000000 * scale)
			return nil
		}},
		{Name: "string-builder", Work: func() error {
			Sink = buildString(5000*scale, "word ")
			return nil
		}},
		{Name: "range-iteration", Work: func() error {
			Sink = doubleByRange(sequence(50000 * scale))
			return nil
		}},
		{Name: "formula-sum", Work: func() error {
			Sink = formulaSum(100000 * scale)
			return nil
		}},
		{Name: "set-filter", Work: func() error {
			Sink = setIntersect(sequence(1000*scale), sequence(1000))
			return nil
		}},
		{Name: "unboxed-sum", Work: func() error {
			Sink = plainSum(100000 * scale)
			return nil
		}},
	}
}

// residueModSum returns the same value as nestedModSum in O(outer+inner):
// (i*j)%5 only depends on i%5 and j%5.
func residueModSum(outer, inner int) int64 {
	var counts [5]int64
	for j := 0; j < inner; j++ {
		counts[j%5]++
	}
	var perResidue [5]int64
	for a := 0; a < 5; a++ {
		for b := 0; b < 5; b++ {
			perResidue[a] += counts[b] * int64((a*b)%5)
		}
	}
	var sum int64
	for i := 0; i < outer; i++ {
		sum += perResidue[i%5]
	}
	return sum
}

func reuseBuffer(iterations, size int) int {
	buf := make([]int, size)
	total := 0
	for i := 0; i < iterations; i++ {
		for k := range buf {
			buf[k] = k
		}
		total += buf[size-1]
	}
	return total
}

func hoistedInvariant(n int) float64 {
	invariant := factorA * factorB / factorC
	result := 0.0
	for i := 0; i < n; i++ {
		result += float64(i) * invariant
	}
	return result
}

func buildString(n int, word string) string {
	var b strings.Builder
	b.Grow(n * len(word))
	for i := 0; i < n; i++ {
		b.WriteString(word)
	}
	return b.String()
}

func doubleByRange(items []int) []int {
	out := make([]int, 0, len(items))
	for _, v := range items {
		out = append(out, v*2)
	}
	return out
}

// formulaSum is the sum of 0..n-1.
func formulaSum(n int) int {
	return n * (n - 1) / 2
}

func setIntersect(a, b []int) []int {
	seen := make(map[int]struct{}, len(b))
	for _, y := range b {
		seen[y] = struct{}{}
	}
	var out []int
	for _, x := range a {
		if _, ok := seen[x]; ok {
			out = append(out, x)
		}
	}
	return out
}

func plainSum(n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += i
	}
	return sum
}
