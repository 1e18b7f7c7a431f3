// Package percentile computes rank-based percentiles for a metric across a
// batch of items. Pure: no side effects, no shared state.
package percentile

import (
	"sort"
)

// Rank returns one percentile in [0,100] per item for the metric extracted
// by fn. Items are ranked ascending; the percentile is rank/(n-1)*100, and
// tied items share the midpoint of their tied rank range so the result is
// stable under input reordering. A single item is defined as percentile 100
// (no peer to compare against). Empty input returns nil.
func Rank[T any](items []T, fn func(T) float64) []float64 {
	n := len(items)
	if n == 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = 100
		return out
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return fn(items[idx[a]]) < fn(items[idx[b]])
	})

	// Walk runs of equal values; every member of a run receives the
	// percentile of the run's midpoint rank.
	for lo := 0; lo < n; {
		hi := lo
		v := fn(items[idx[lo]])
		for hi+1 < n && fn(items[idx[hi+1]]) == v {
			hi++
		}
		pct := (float64(lo+hi) / 2) / float64(n-1) * 100
		for k := lo; k <= hi; k++ {
			out[idx[k]] = pct
		}
		lo = hi + 1
	}

	return out
}
