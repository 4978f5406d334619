package workloads

import "greenbench/internal/benchmark"

func sample(scale int) []benchmark.Named {
	return []benchmark.Named{
		{Name: "inefficient-code", Work: func() error {
			Sink = pairProductSum(100000*scale, 100) + singleAllocs(1000*scale)
			return nil
		}},
		{Name: "efficient-code", Work: func() error {
			Sink = pairProductFormula(100000*scale, 100) + stackBuffer()
			return nil
		}},
	}
}

func pairProductSum(outer, inner int) int64 {
	var sum int64
	for i := 0; i < outer; i++ {
		for j := 0; j < inner; j++ {
			sum += int64(i * j)
		}
	}
	return sum
}

// pairProductFormula replaces the inner loop with the sum of 0..inner-1.
func pairProductFormula(outer, inner int) int64 {
	innerSum := int64(inner * (inner - 1) / 2)
	var sum int64
	for i := 0; i < outer; i++ {
		sum += int64(i) * innerSum
	}
	return sum
}

var allocSink *int

func singleAllocs(n int) int64 {
	var total int64
	for i := 0; i < n; i++ {
		p := new(int)
		*p = i
		allocSink = p
		total += int64(*p)
	}
	return total
}

func stackBuffer() int64 {
	var buf [1000]int
	for i := range buf {
		buf[i] = i
	}
	var total int64
	for _, v := range buf {
		total += int64(v)
	}
	return total
}
