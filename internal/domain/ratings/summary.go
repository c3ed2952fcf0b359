package ratings

import (
	"math"
	"strconv"

	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
)

// UnavailableMarker is shown in place of a metric that cannot be computed.
const UnavailableMarker = "N/A"

// Metric is an aggregate that degrades to unavailable when its column is
// absent or holds no numeric values.
type Metric struct {
	Value     float64
	Available bool
}

func (m Metric) String() string {
	if !m.Available {
		return UnavailableMarker
	}
	return strconv.FormatFloat(m.Value, 'f', -1, 64)
}

// Summary is the headline metric triple of a view.
type Summary struct {
	Players        int
	AverageOverall Metric
	AverageAge     Metric
}

func Summarize(view player.View) Summary {
	out := Summary{Players: view.Len()}

	if avg, ok := mean(view, player.FieldOverall); ok {
		out.AverageOverall = Metric{Value: round(avg, 2), Available: true}
	}
	if avg, ok := mean(view, player.FieldAge); ok {
		out.AverageAge = Metric{Value: round(avg, 0), Available: true}
	}

	return out
}

// mean averages the numeric cells of field, skipping blanks.
func mean(view player.View, field string) (float64, bool) {
	if !view.HasColumn(field) {
		return 0, false
	}

	var (
		sum float64
		n   int
	)
	for _, r := range view.Records() {
		v, ok := r.Number(field)
		if !ok {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// round uses half-to-even so displayed averages match the reference dashboard.
func round(v float64, places int) float64 {
	if places <= 0 {
		return math.RoundToEven(v)
	}
	p := math.Pow10(places)
	return math.RoundToEven(v*p) / p
}
