package ratings

import "github.com/riskibarqy/fc-player-dashboard/internal/domain/player"

const DefaultHistogramBins = 20

// Bucket is one equal-width bin of the Ovr distribution. Lower is inclusive;
// Upper is exclusive except for the last bucket.
type Bucket struct {
	Lower float64
	Upper float64
	Count int
}

// Histogram partitions the Ovr range of the view into bins equal-width buckets.
// An empty view (or one without rated records) yields bins zero-count buckets.
func Histogram(view player.View, bins int) []Bucket {
	if bins <= 0 {
		return []Bucket{}
	}

	values := make([]float64, 0, view.Len())
	for _, r := range view.Records() {
		if v, ok := r.Overall(); ok {
			values = append(values, v)
		}
	}

	buckets := make([]Bucket, bins)
	if len(values) == 0 {
		return buckets
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	width := (hi - lo) / float64(bins)
	if width == 0 {
		// single distinct rating: give the range a unit span
		width = 1 / float64(bins)
		hi = lo + 1
	}

	for i := range buckets {
		buckets[i].Lower = lo + float64(i)*width
		buckets[i].Upper = lo + float64(i+1)*width
	}
	buckets[bins-1].Upper = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		// settle on the bucket whose stored bounds hold v
		for idx+1 < bins && v >= buckets[idx+1].Lower {
			idx++
		}
		for idx > 0 && v < buckets[idx].Lower {
			idx--
		}
		buckets[idx].Count++
	}

	return buckets
}
