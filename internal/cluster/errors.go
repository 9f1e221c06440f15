package cluster

import "errors"

var (
	// ErrInvalidClusterCount is returned when the requested cluster
	// count is less than one.
	ErrInvalidClusterCount = errors.New("cluster count must be at least 1")

	// ErrNoSamples is returned when the input contains no samples.
	ErrNoSamples = errors.New("no samples to cluster")

	// ErrInsufficientSamples is returned when fewer samples than
	// clusters are supplied. The caller decides whether to retry with a
	// smaller cluster count or abort.
	ErrInsufficientSamples = errors.New("fewer samples than requested clusters")
)
