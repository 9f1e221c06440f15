package cluster

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Seeding selects how the engine picks its initial centroids.
type Seeding string

const (
	// SeedingStratified partitions the sample index range into K
	// contiguous bands and draws one random index per band. This
	// reduces the chance that every seed lands in one region of the
	// image.
	SeedingStratified Seeding = "stratified"

	// SeedingUniform draws K random indices over the whole range, with
	// no distinctness guarantee.
	SeedingUniform Seeding = "uniform"
)

// IsValidSeeding checks if the given seeding strategy is recognised.
func IsValidSeeding(s Seeding) bool {
	return s == SeedingStratified || s == SeedingUniform
}

// Config holds the tunables of a clustering run.
type Config struct {
	// Clusters is K, the number of centroids to produce.
	Clusters int

	// Tolerance is the total centroid movement, summed across all
	// clusters, at or below which the run is considered converged.
	// Distances are measured in the canonical [0, 255] channel range.
	Tolerance float64

	// MaxIterations caps the refinement loop. Exhausting the cap is not
	// an error; the result is returned with Converged == false.
	MaxIterations int

	// Seeding selects the initial-centroid strategy.
	Seeding Seeding

	// Seed initialises the engine's random source so runs are
	// reproducible. A negative seed selects a time-based one.
	Seed int64
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Clusters:      3,
		Tolerance:     2.55,
		MaxIterations: 256,
		Seeding:       SeedingStratified,
		Seed:          -1,
	}
}

// Validate validates the engine configuration.
func (c Config) Validate() error {
	if c.Clusters < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidClusterCount, c.Clusters)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %v", c.Tolerance)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("max iterations must be at least 1, got %d", c.MaxIterations)
	}
	if !IsValidSeeding(c.Seeding) {
		return fmt.Errorf("unknown seeding strategy: %s (valid: %s, %s)",
			c.Seeding, SeedingStratified, SeedingUniform)
	}
	return nil
}

// Engine owns the iterative k-means loop: seeding, assignment,
// recomputation and convergence detection. An engine holds no state
// between runs; concurrent runs over different inputs are independent.
type Engine struct {
	cfg Config
	rng *rand.Rand
}

// New creates an Engine from the given configuration.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	seed := cfg.Seed
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)), // #nosec G404 - clustering seeds need reproducibility, not secrecy
	}, nil
}

// Run clusters the given samples into the configured number of
// centroids. Samples are borrowed read-only for the duration of the
// run. Cancellation is checked once per iteration; a cancelled run
// returns the context error.
func (e *Engine) Run(ctx context.Context, samples []Sample) (Result, error) {
	k := e.cfg.Clusters
	if len(samples) == 0 {
		return Result{}, ErrNoSamples
	}
	if len(samples) < k {
		return Result{}, fmt.Errorf("%w: %d samples, %d clusters",
			ErrInsufficientSamples, len(samples), k)
	}

	centroids := e.seed(samples, k)

	var iterations int
	converged := false
	for iterations < e.cfg.MaxIterations {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		iterations++

		next := refine(samples, centroids)

		total := 0.0
		for i := range centroids {
			total += movement(centroids[i], next[i])
		}
		centroids = next

		if total <= e.cfg.Tolerance {
			converged = true
			break
		}
	}

	return Result{
		Centroids:  centroids,
		Iterations: iterations,
		Converged:  converged,
	}, nil
}

// Outcome carries the result of an asynchronous run.
type Outcome struct {
	Result Result
	Err    error
}

// Go runs the engine on its own goroutine and delivers the outcome on
// the returned channel. The engine touches no state shared with the
// caller while running, so the caller's goroutine is free until the
// result arrives.
func (e *Engine) Go(ctx context.Context, samples []Sample) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		res, err := e.Run(ctx, samples)
		ch <- Outcome{Result: res, Err: err}
	}()
	return ch
}

// seed picks the initial centroids by sampling input positions. Seeds
// start unpopulated: they carry a position but no members until the
// first assignment pass.
func (e *Engine) seed(samples []Sample, k int) []Centroid {
	centroids := make([]Centroid, k)
	switch e.cfg.Seeding {
	case SeedingUniform:
		for i := range centroids {
			centroids[i] = Centroid{Sample: samples[e.rng.Intn(len(samples))]}
		}
	default: // stratified
		n := len(samples)
		for i := range centroids {
			lo := i * n / k
			hi := (i + 1) * n / k
			if hi <= lo {
				hi = lo + 1
			}
			centroids[i] = Centroid{Sample: samples[lo+e.rng.Intn(hi-lo)]}
		}
	}
	return centroids
}

// refine performs one assignment pass followed by recomputation,
// producing the next centroid set. Every sample lands in exactly one
// accumulator, so the finalized counts always sum to len(samples).
func refine(samples []Sample, centroids []Centroid) []Centroid {
	accs := make([]Accumulator, len(centroids))
	for _, s := range samples {
		accs[nearest(s, centroids)].Add(s)
	}

	next := make([]Centroid, len(centroids))
	for i := range accs {
		next[i] = accs[i].Finalize(centroids[i])
	}
	return next
}

// nearest returns the index of the centroid closest to the sample.
// Ties go to the lowest index: the scan uses strict less-than in
// centroid order.
func nearest(s Sample, centroids []Centroid) int {
	best := 0
	minDist := s.Distance(centroids[0].Sample)
	for i := 1; i < len(centroids); i++ {
		if d := s.Distance(centroids[i].Sample); d < minDist {
			minDist = d
			best = i
		}
	}
	return best
}
