package cluster

import "testing"

func TestResultRanked(t *testing.T) {
	res := Result{
		Centroids: []Centroid{
			{Sample: Sample{R: 1}, Count: 5, Populated: true},
			{Sample: Sample{R: 2}, Count: 20, Populated: true},
			{Sample: Sample{R: 3}, Count: 0},
			{Sample: Sample{R: 4}, Count: 11, Populated: true},
		},
	}

	ranked := res.Ranked()
	wantCounts := []int{20, 11, 5, 0}
	for i, c := range ranked {
		if c.Count != wantCounts[i] {
			t.Errorf("ranked[%d].Count = %d, want %d", i, c.Count, wantCounts[i])
		}
	}

	// Receiver order must be untouched.
	if res.Centroids[0].Count != 5 {
		t.Error("Ranked() mutated the receiver")
	}
}

func TestResultRankedStable(t *testing.T) {
	// Equal counts keep seed order.
	res := Result{
		Centroids: []Centroid{
			{Sample: Sample{R: 1}, Count: 7, Populated: true},
			{Sample: Sample{R: 2}, Count: 9, Populated: true},
			{Sample: Sample{R: 3}, Count: 7, Populated: true},
		},
	}

	ranked := res.Ranked()
	if ranked[0].Sample.R != 2 {
		t.Errorf("ranked[0].R = %v, want 2", ranked[0].Sample.R)
	}
	if ranked[1].Sample.R != 1 || ranked[2].Sample.R != 3 {
		t.Errorf("equal counts reordered: got R=%v then R=%v, want 1 then 3",
			ranked[1].Sample.R, ranked[2].Sample.R)
	}
}

func TestResultTop(t *testing.T) {
	res := Result{
		Centroids: []Centroid{
			{Sample: Sample{R: 1}, Count: 3, Populated: true},
			{Sample: Sample{R: 2}, Count: 0},
			{Sample: Sample{R: 3}, Count: 8, Populated: true},
		},
	}

	tests := []struct {
		name string
		n    int
		want []float64
	}{
		{name: "empty clusters produce no output", n: 3, want: []float64{3, 1}},
		{name: "truncates to requested arity", n: 1, want: []float64{3}},
		{name: "zero arity", n: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top := res.Top(tt.n)
			if len(top) != len(tt.want) {
				t.Fatalf("Top(%d) returned %d centroids, want %d", tt.n, len(top), len(tt.want))
			}
			for i, c := range top {
				if c.Sample.R != tt.want[i] {
					t.Errorf("top[%d].R = %v, want %v", i, c.Sample.R, tt.want[i])
				}
			}
		})
	}
}
