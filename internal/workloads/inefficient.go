package workloads

import "greenbench/internal/benchmark"

// Factors of the loop-invariant product. Package variables keep the
// compiler from folding the product into a constant.
var (
	factorA = 3.14159
	factorB = 2.71828
	factorC = 1.414
)

func inefficient(scale int) []benchmark.Named {
	return []benchmark.Named{
		{Name: "nested-loops", Work: func() error {
			Sink = nestedModSum(10000*scale, 10000)
			return nil
		}},
		{Name: "alloc-in-loop", Work: func() error {
			Sink = allocPerIteration(5000*scale, 100)
			return nil
		}},
		{Name: "invariant-in-loop", Work: func() error {
			Sink = invariantInLoop(1000000 * scale)
			return nil
		}},
		{Name: "string-concat", Work: func() error {
			Sink = concatLoop(5000*scale, "word ")
			return nil
		}},
		{Name: "index-iteration", Work: func() error {
			Sink = doubleByIndex(sequence(50000 * scale))
			return nil
		}},
		{Name: "manual-sum", Work: func() error {
			Sink = manualSum(sequence(100000 * scale))
			return nil
		}},
		{Name: "nested-filter", Work: func() error {
			Sink = nestedIntersect(sequence(1000*scale), sequence(1000))
			return nil
		}},
		{Name: "boxed-sum", Work: func() error {
			Sink = boxedSum(100000 * scale)
			return nil
		}},
	}
}

// nestedModSum sums (i*j)%5 over an outer x inner grid.
func nestedModSum(outer, inner int) int64 {
	var sum int64
	for i := 0; i < outer; i++ {
		for j := 0; j < inner; j++ {
			sum += int64((i * j) % 5)
		}
	}
	return sum
}

// allocPerIteration allocates a fresh buffer on every pass.
func allocPerIteration(iterations, size int) int {
	total := 0
	for i := 0; i < iterations; i++ {
		buf := make([]int, size)
		for k := range buf {
			buf[k] = k
		}
		total += buf[size-1]
	}
	return total
}

func invariantInLoop(n int) float64 {
	result := 0.0
	for i := 0; i < n; i++ {
		invariant := factorA * factorB / factorC
		result += float64(i) * invariant
	}
	return result
}

func concatLoop(n int, word string) string {
	s := ""
	for i := 0; i < n; i++ {
		s += word
	}
	return s
}

func doubleByIndex(items []int) []int {
	var out []int
	for i := 0; i < len(items); i++ {
		val := items[i]
		out = append(out, val*2)
	}
	return out
}

func manualSum(numbers []int) int {
	total := 0
	for i := 0; i < len(numbers); i++ {
		total = total + numbers[i]
	}
	return total
}

// nestedIntersect keeps values of a also present in b with an O(n*m) scan.
func nestedIntersect(a, b []int) []int {
	var out []int
	for _, x := range a {
		for _, y := range b {
			if x == y {
				out = append(out, x)
			}
		}
	}
	return out
}

// boxedSum accumulates through an interface value, allocating on most steps.
func boxedSum(n int) int {
	var sum any = 0
	for i := 0; i < n; i++ {
		sum = sum.(int) + i
	}
	return sum.(int)
}

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
