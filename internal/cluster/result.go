package cluster

import "sort"

// Result is the terminal state of one clustering run.
type Result struct {
	// Centroids holds exactly K entries in seed order, each flagged
	// populated or empty and carrying its final member count.
	Centroids []Centroid

	// Iterations is the number of refinement passes performed.
	Iterations int

	// Converged reports whether total centroid movement fell to the
	// configured tolerance before the iteration cap. When false the
	// centroids are still the best found, but the caller may want to
	// treat them with less confidence.
	Converged bool
}

// Ranked returns the centroids sorted by descending population. The
// sort is stable, so clusters with equal counts keep their seed order.
// The receiver is not modified.
func (r Result) Ranked() []Centroid {
	ranked := make([]Centroid, len(r.Centroids))
	copy(ranked, r.Centroids)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// Top returns up to n populated centroids in rank order. Empty clusters
// produce no output, so fewer than n entries may come back.
func (r Result) Top(n int) []Centroid {
	top := make([]Centroid, 0, n)
	for _, c := range r.Ranked() {
		if len(top) == n {
			break
		}
		if !c.Populated {
			continue
		}
		top = append(top, c)
	}
	return top
}
