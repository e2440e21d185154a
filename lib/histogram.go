package lib

import "fmt"
import "math"
import "strconv"

// HistogramInt64 accumulate int64 samples, like tree depth, into fixed
// width buckets along with running min, max, mean and variance.
type HistogramInt64 struct {
	// stats
	n      int64
	minval int64
	maxval int64
	sum    int64
	sumsq  float64
	// buckets[0] count samples below `from`, buckets[len-1] count
	// samples at or above `till`.
	buckets []int64
	// setup
	from  int64
	till  int64
	width int64
}

// NewhistogramInt64 return a new histogram, bucketing samples
// between [from, till) in steps of width.
func NewhistogramInt64(from, till, width int64) *HistogramInt64 {
	if width <= 0 {
		panic(fmt.Errorf("NewhistogramInt64(): invalid width %v", width))
	}
	from, till = (from/width)*width, (till/width)*width
	if till < from {
		panic(fmt.Errorf("NewhistogramInt64(): till %v < from %v", till, from))
	}
	h := &HistogramInt64{from: from, till: till, width: width}
	h.buckets = make([]int64, ((till-from)/width)+2)
	return h
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	if h.n == 0 || sample < h.minval {
		h.minval = sample
	}
	if h.n == 0 || sample > h.maxval {
		h.maxval = sample
	}
	h.n++
	h.sum += sample
	f := float64(sample)
	h.sumsq += f * f
	h.buckets[h.bucket(sample)]++
}

func (h *HistogramInt64) bucket(sample int64) int {
	if sample < h.from {
		return 0
	} else if sample >= h.till {
		return len(h.buckets) - 1
	}
	return int((sample-h.from)/h.width) + 1
}

// Min return minimum value from sample.
func (h *HistogramInt64) Min() int64 {
	return h.minval
}

// Max return maximum value from sample.
func (h *HistogramInt64) Max() int64 {
	return h.maxval
}

// Samples return total number of samples in the set.
func (h *HistogramInt64) Samples() int64 {
	return h.n
}

// Sum return the sum of all sample values.
func (h *HistogramInt64) Sum() int64 {
	return h.sum
}

// Mean return the average value of all samples.
func (h *HistogramInt64) Mean() float64 {
	if h.n == 0 {
		return 0
	}
	return float64(h.sum) / float64(h.n)
}

// Variance return the squared deviation of samples from their mean.
func (h *HistogramInt64) Variance() float64 {
	if h.n == 0 {
		return 0
	}
	mean := h.Mean()
	if v := (h.sumsq / float64(h.n)) - (mean * mean); v > 0 {
		return v
	}
	return 0
}

// SD return the standard deviation of samples.
func (h *HistogramInt64) SD() float64 {
	return math.Sqrt(h.Variance())
}

// Clone copies the entire instance.
func (h *HistogramInt64) Clone() *HistogramInt64 {
	newh := *h
	newh.buckets = make([]int64, len(h.buckets))
	copy(newh.buckets, h.buckets)
	return &newh
}

// Stats return count of samples for each non-empty bucket, keyed by the
// bucket's lower bound. Key "-" count samples below the histogram range
// and "+" count samples at or beyond it.
func (h *HistogramInt64) Stats() map[string]int64 {
	m := make(map[string]int64)
	last := len(h.buckets) - 1
	for i, count := range h.buckets {
		if count == 0 {
			continue
		}
		switch i {
		case 0:
			m["-"] = count
		case last:
			m["+"] = count
		default:
			m[strconv.Itoa(int(h.from+(int64(i-1)*h.width)))] = count
		}
	}
	return m
}

// Fullstats includes mean, variance and standard deviation in Stats().
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	hmap := make(map[string]interface{})
	for k, v := range h.Stats() {
		hmap[k] = v
	}
	return map[string]interface{}{
		"samples":     h.Samples(),
		"min":         h.Min(),
		"max":         h.Max(),
		"mean":        h.Mean(),
		"variance":    h.Variance(),
		"stddeviance": h.SD(),
		"histogram":   hmap,
	}
}
