package artifacts

import "sort"

// binEdges returns start, start+step, ... strictly below stop.
func binEdges(start, stop, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	var edges []float64
	for i := 0; ; i++ {
		edge := start + float64(i)*step
		if edge >= stop {
			break
		}
		edges = append(edges, edge)
	}
	return edges
}

// searchGE returns the first index whose time is >= v.
func searchGE(times []float64, v float64) int {
	return sort.SearchFloat64s(times, v)
}

// searchGT returns the first index whose time is > v.
func searchGT(times []float64, v float64) int {
	return sort.Search(len(times), func(i int) bool { return times[i] > v })
}

// markWindow flags every spike whose timestamp lies in the closed interval
// [left, right]. times must be sorted ascending.
func markWindow(mask []bool, times []float64, left, right float64) {
	lo := searchGE(times, left)
	hi := searchGT(times, right)
	for i := lo; i < hi; i++ {
		mask[i] = true
	}
}
