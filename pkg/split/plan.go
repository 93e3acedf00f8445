package split

import "math"

// tolerance absorbs float error when comparing against the one-record bound.
const tolerance = 1e-9

// blockSizes splits n records into k unique block sizes. The first n mod k
// blocks get one extra record (largest remainder, ties broken by curator
// order).
func blockSizes(n, k int) []int {
	q, r := n/k, n%k
	sizes := make([]int, k)
	for i := range sizes {
		sizes[i] = q
		if i < r {
			sizes[i]++
		}
	}
	return sizes
}

// planBoundaries returns c, where c[i] is the number of records at the tail
// of block i that successor (i+1) mod k copies.
//
// Curator i then holds u[i]+c[i-1] records of which c[i-1]+c[i] are shared,
// and the share error is e[i] = (1-p)*c[i-1] + c[i] - p*u[i]. c is built by
// a recurrence that drives each e[i] towards zero; the only free choice is
// the seed value c[k-1], and the candidate with the smallest worst error is
// kept (ties go to the smaller seed).
func planBoundaries(u []int, overlapPct float64) []int {
	k := len(u)
	c := make([]int, k)
	if k < 2 || overlapPct == 0 {
		return c
	}

	p := overlapPct / 100
	total := 0
	for _, n := range u {
		total += n
	}
	ideal := p * (float64(total) / float64(k)) / (2 - p)

	var (
		best    []int
		bestErr = math.Inf(1)
	)
	lo := max(0, int(math.Floor(ideal))-1)
	hi := int(math.Ceil(ideal)) + 1
	for seed := lo; seed <= hi; seed++ {
		if seed > u[k-1] {
			break
		}
		cand := recurrence(u, p, seed)
		if worst := worstShareError(u, cand, p); worst < bestErr-tolerance {
			best, bestErr = cand, worst
		}
	}
	if best == nil {
		return c
	}
	return best
}

// recurrence fixes c[k-1] = seed and derives c[0..k-2] so that
// e[0..k-2] are each rounded to the nearest whole record.
func recurrence(u []int, p float64, seed int) []int {
	k := len(u)
	c := make([]int, k)
	c[k-1] = seed
	prev := seed
	for i := 0; i < k-1; i++ {
		v := int(math.Round(p*float64(u[i]) - (1-p)*float64(prev)))
		v = min(max(v, 0), u[i])
		c[i] = v
		prev = v
	}
	return c
}

// shareError returns shared-minus-target for curator i.
func shareError(u, c []int, p float64, i int) float64 {
	k := len(u)
	prev := c[(i-1+k)%k]
	return (1-p)*float64(prev) + float64(c[i]) - p*float64(u[i])
}

func worstShareError(u, c []int, p float64) float64 {
	worst := 0.0
	for i := range u {
		worst = math.Max(worst, math.Abs(shareError(u, c, p, i)))
	}
	return worst
}
