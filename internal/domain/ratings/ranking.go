package ratings

import (
	"sort"

	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
)

const (
	DefaultTopN        = 10
	DefaultNationLimit = 10
)

// RankedPlayer is one bar of the Top-N chart.
type RankedPlayer struct {
	Rank    int
	Overall float64
	Record  player.Record
}

// TopPlayers returns up to n records with the highest Ovr. Ties keep their
// original row order. Records without a numeric Ovr are not ranked.
func TopPlayers(view player.View, n int) []RankedPlayer {
	if n <= 0 {
		return []RankedPlayer{}
	}

	rated := make([]RankedPlayer, 0, view.Len())
	for _, r := range view.Records() {
		ovr, ok := r.Overall()
		if !ok {
			continue
		}
		rated = append(rated, RankedPlayer{Overall: ovr, Record: r})
	}

	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].Overall > rated[j].Overall
	})

	if len(rated) > n {
		rated = rated[:n]
	}
	for i := range rated {
		rated[i].Rank = i + 1
	}

	return rated
}

// NationRating is the rounded mean Ovr of one nation's players.
type NationRating struct {
	Nation         string
	AverageOverall float64
	Players        int
}

// NationRanking groups the view by Nation, averages Ovr per group, and returns
// the top limit groups by rounded mean. Nations without any rated player in
// the view are absent.
func NationRanking(view player.View, limit int) []NationRating {
	if limit <= 0 || !view.HasColumn(player.FieldNation) {
		return []NationRating{}
	}

	type acc struct {
		sum float64
		n   int
	}
	groups := make(map[string]*acc)
	for _, r := range view.Records() {
		nation := r.Nation()
		if nation == "" {
			continue
		}
		ovr, ok := r.Overall()
		if !ok {
			continue
		}
		g, exists := groups[nation]
		if !exists {
			g = &acc{}
			groups[nation] = g
		}
		g.sum += ovr
		g.n++
	}

	out := make([]NationRating, 0, len(groups))
	for nation, g := range groups {
		out = append(out, NationRating{
			Nation:         nation,
			AverageOverall: round(g.sum/float64(g.n), 0),
			Players:        g.n,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AverageOverall != out[j].AverageOverall {
			return out[i].AverageOverall > out[j].AverageOverall
		}
		return out[i].Nation < out[j].Nation
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
