package httpapi

import (
	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
	"github.com/riskibarqy/fc-player-dashboard/internal/domain/ratings"
	"github.com/riskibarqy/fc-player-dashboard/internal/usecase"
)

type filterOptionsDTO struct {
	Leagues   []string `json:"leagues"`
	Positions []string `json:"positions"`
	Teams     []string `json:"teams"`
}

type playerTableDTO struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Count   int        `json:"count"`
}

// metricDTO carries a nil value and the unavailable marker when the metric
// cannot be computed.
type metricDTO struct {
	Value     *float64 `json:"value"`
	Available bool     `json:"available"`
	Display   string   `json:"display"`
}

type summaryDTO struct {
	Players        int       `json:"players"`
	AverageOverall metricDTO `json:"average_overall"`
	AverageAge     metricDTO `json:"average_age"`
}

type rankedPlayerDTO struct {
	Rank    int      `json:"rank"`
	Name    string   `json:"name"`
	Team    string   `json:"team"`
	Age     *float64 `json:"age"`
	Nation  string   `json:"nation"`
	Overall float64  `json:"overall"`
}

type bucketDTO struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

type nationRatingDTO struct {
	Nation         string  `json:"nation"`
	AverageOverall float64 `json:"average_overall"`
	Players        int     `json:"players"`
}

type dashboardDTO struct {
	Summary      summaryDTO        `json:"summary"`
	TopPlayers   []rankedPlayerDTO `json:"top_players"`
	Distribution []bucketDTO       `json:"distribution"`
	Nations      []nationRatingDTO `json:"nations"`
}

type playerSelectionDTO struct {
	Names  []string `json:"names"`
	First  string   `json:"first"`
	Second string   `json:"second"`
}

type comparedPlayerDTO struct {
	Name    string   `json:"name"`
	Team    string   `json:"team"`
	Nation  string   `json:"nation"`
	Overall *float64 `json:"overall"`
}

type attributeComparisonDTO struct {
	Attribute string  `json:"attribute"`
	First     float64 `json:"first"`
	Second    float64 `json:"second"`
}

type scoreDTO struct {
	Player    string  `json:"player"`
	Attribute string  `json:"attribute"`
	Value     float64 `json:"value"`
}

type comparisonDTO struct {
	First      comparedPlayerDTO        `json:"first"`
	Second     comparedPlayerDTO        `json:"second"`
	Attributes []attributeComparisonDTO `json:"attributes"`
	Scores     []scoreDTO               `json:"scores"`
}

func filterOptionsToDTO(opts ratings.FilterOptions) filterOptionsDTO {
	return filterOptionsDTO{
		Leagues:   nonNil(opts.Leagues),
		Positions: nonNil(opts.Positions),
		Teams:     nonNil(opts.Teams),
	}
}

func viewToDTO(view player.View) playerTableDTO {
	return playerTableDTO{
		Columns: view.Columns(),
		Rows:    view.Rows(),
		Count:   view.Len(),
	}
}

func metricToDTO(m ratings.Metric) metricDTO {
	out := metricDTO{Available: m.Available, Display: m.String()}
	if m.Available {
		v := m.Value
		out.Value = &v
	}
	return out
}

func summaryToDTO(s ratings.Summary) summaryDTO {
	return summaryDTO{
		Players:        s.Players,
		AverageOverall: metricToDTO(s.AverageOverall),
		AverageAge:     metricToDTO(s.AverageAge),
	}
}

func rankedPlayersToDTO(items []ratings.RankedPlayer) []rankedPlayerDTO {
	out := make([]rankedPlayerDTO, 0, len(items))
	for _, p := range items {
		item := rankedPlayerDTO{
			Rank:    p.Rank,
			Name:    p.Record.Name(),
			Team:    p.Record.Team(),
			Nation:  p.Record.Nation(),
			Overall: p.Overall,
		}
		if age, ok := p.Record.Age(); ok {
			item.Age = &age
		}
		out = append(out, item)
	}
	return out
}

func bucketsToDTO(items []ratings.Bucket) []bucketDTO {
	out := make([]bucketDTO, 0, len(items))
	for _, b := range items {
		out = append(out, bucketDTO{Lower: b.Lower, Upper: b.Upper, Count: b.Count})
	}
	return out
}

func nationRatingsToDTO(items []ratings.NationRating) []nationRatingDTO {
	out := make([]nationRatingDTO, 0, len(items))
	for _, n := range items {
		out = append(out, nationRatingDTO{Nation: n.Nation, AverageOverall: n.AverageOverall, Players: n.Players})
	}
	return out
}

func dashboardToDTO(d usecase.Dashboard) dashboardDTO {
	return dashboardDTO{
		Summary:      summaryToDTO(d.Summary),
		TopPlayers:   rankedPlayersToDTO(d.TopPlayers),
		Distribution: bucketsToDTO(d.Distribution),
		Nations:      nationRatingsToDTO(d.Nations),
	}
}

func selectionToDTO(s ratings.PlayerSelection) playerSelectionDTO {
	return playerSelectionDTO{Names: nonNil(s.Names), First: s.First, Second: s.Second}
}

func comparedPlayerToDTO(r player.Record) comparedPlayerDTO {
	out := comparedPlayerDTO{Name: r.Name(), Team: r.Team(), Nation: r.Nation()}
	if ovr, ok := r.Overall(); ok {
		out.Overall = &ovr
	}
	return out
}

func comparisonToDTO(c ratings.Comparison) comparisonDTO {
	attrs := make([]attributeComparisonDTO, 0, len(c.Rows))
	for _, row := range c.Rows {
		attrs = append(attrs, attributeComparisonDTO{Attribute: row.Attribute, First: row.First, Second: row.Second})
	}
	scores := make([]scoreDTO, 0, len(c.Rows)*2)
	for _, s := range c.Scores() {
		scores = append(scores, scoreDTO{Player: s.Player, Attribute: s.Attribute, Value: s.Value})
	}
	return comparisonDTO{
		First:      comparedPlayerToDTO(c.First),
		Second:     comparedPlayerToDTO(c.Second),
		Attributes: attrs,
		Scores:     scores,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
