package main

import (
	"slices"
	"time"
)

// TickRecorder tracks the frame rate of a session as the median of the last
// samples and reports a drop below a threshold once until it recovers.
type TickRecorder struct {
	samples   []float64
	keep      int
	threshold float64
	median    float64
	low       bool
	onLow     func(fps float64)
}

// NewTickRecorder keeps the last keep frame rates and treats a median under
// threshold frames per second as low.
func NewTickRecorder(keep int, threshold float64) *TickRecorder {
	return &TickRecorder{keep: keep, threshold: threshold}
}

// OnLowRate registers the handler called when the rate turns low.
func (r *TickRecorder) OnLowRate(fn func(fps float64)) {
	r.onLow = fn
}

// Record adds the duration of one frame.
func (r *TickRecorder) Record(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	r.samples = append(r.samples, 1/elapsed.Seconds())
	if over := len(r.samples) - r.keep; over > 0 {
		r.samples = r.samples[over:]
	}
	r.median = median(r.samples)
	r.notify()
}

// Median returns the median frame rate over the kept samples.
func (r *TickRecorder) Median() float64 {
	return r.median
}

// Ready reports whether enough samples were recorded to judge the rate.
func (r *TickRecorder) Ready() bool {
	return len(r.samples) >= r.keep
}

// Low reports whether the rate is currently considered low.
func (r *TickRecorder) Low() bool {
	return r.low
}

func (r *TickRecorder) notify() {
	if !r.Ready() {
		return
	}
	if r.median >= r.threshold {
		r.low = false
		return
	}
	if r.low {
		return
	}
	r.low = true
	if r.onLow != nil {
		r.onLow(r.median)
	}
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
