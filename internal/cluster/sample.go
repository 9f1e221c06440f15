// Package cluster implements k-means clustering over colour samples.
package cluster

import "math"

// maxChannel is the upper bound of the canonical channel range.
// All samples entering the engine use [0, 255] for every channel;
// conversion from other representations happens once at the boundary.
const maxChannel = 255.0

// maxDistance is the largest possible Euclidean distance between two
// samples in the canonical channel range: sqrt(4 * 255^2).
var maxDistance = math.Sqrt(4 * maxChannel * maxChannel)

// Sample is one 4-channel colour reading, the unit of clustering input.
// Channels are in the canonical [0, 255] range. Samples are immutable;
// the engine only ever reads them.
type Sample struct {
	R, G, B, A float64
}

// Distance returns the Euclidean distance between two samples across
// all four channels. It is symmetric and zero exactly when the samples
// are channel-wise identical.
func (s Sample) Distance(other Sample) float64 {
	dr := s.R - other.R
	dg := s.G - other.G
	db := s.B - other.B
	da := s.A - other.A
	return math.Sqrt(dr*dr + dg*dg + db*db + da*da)
}

// Accumulator is the mutable running sum used during one assignment
// pass. Samples are added as they are assigned; Finalize turns the sums
// into the next centroid.
type Accumulator struct {
	r, g, b, a float64
	count      int
}

// Add accumulates one sample.
func (ac *Accumulator) Add(s Sample) {
	ac.r += s.R
	ac.g += s.G
	ac.b += s.B
	ac.a += s.A
	ac.count++
}

// Count returns the number of samples accumulated so far.
func (ac *Accumulator) Count() int {
	return ac.count
}

// Finalize produces the centroid for the completed pass. An accumulator
// with no members never divides: the previous centroid's position is
// carried forward and the result is flagged unpopulated, so assignment
// in the next iteration still has a position to compare against.
func (ac *Accumulator) Finalize(prev Centroid) Centroid {
	if ac.count == 0 {
		return Centroid{Sample: prev.Sample, Count: 0, Populated: false}
	}
	n := float64(ac.count)
	return Centroid{
		Sample: Sample{
			R: ac.r / n,
			G: ac.g / n,
			B: ac.b / n,
			A: ac.a / n,
		},
		Count:     ac.count,
		Populated: true,
	}
}

// Centroid is the finalized average colour of one cluster together with
// its population. A freshly seeded centroid carries a position but has
// Count == 0 and Populated == false until samples are assigned to it.
type Centroid struct {
	Sample
	Count     int
	Populated bool
}

// movement returns the distance a cluster's centroid travelled between
// two consecutive iterations. A cluster that loses all of its members
// contributes the maximal distance so that emptiness is never mistaken
// for convergence; a cluster that stays empty contributes nothing,
// which keeps perpetually empty clusters from blocking termination.
func movement(prev, next Centroid) float64 {
	if !next.Populated {
		if prev.Populated {
			return maxDistance
		}
		return 0
	}
	return prev.Sample.Distance(next.Sample)
}
