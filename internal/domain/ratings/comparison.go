package ratings

import (
	"fmt"

	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
)

// Attribute is a compared skill: a display label and the column holding it.
type Attribute struct {
	Label string
	Field string
}

// ComparisonAttributes is the fixed radar axis order.
var ComparisonAttributes = []Attribute{
	{Label: "Pace", Field: player.FieldPace},
	{Label: "Passing", Field: player.FieldPassing},
	{Label: "Dribbling", Field: player.FieldDribbling},
	{Label: "Defense", Field: player.FieldDefense},
	{Label: "Physical", Field: player.FieldPhysical},
}

type AttributeComparison struct {
	Attribute string
	First     float64
	Second    float64
}

// Comparison pairs two players and their attribute values.
type Comparison struct {
	First  player.Record
	Second player.Record
	Rows   []AttributeComparison
}

// Score is one point of the long-form radar dataset.
type Score struct {
	Player    string
	Attribute string
	Value     float64
}

// Scores reshapes the comparison into one row per player and attribute, first
// player first.
func (c Comparison) Scores() []Score {
	out := make([]Score, 0, len(c.Rows)*2)
	for _, row := range c.Rows {
		out = append(out, Score{Player: c.First.Name(), Attribute: row.Attribute, Value: row.First})
	}
	for _, row := range c.Rows {
		out = append(out, Score{Player: c.Second.Name(), Attribute: row.Attribute, Value: row.Second})
	}
	return out
}

// Compare looks up the first record named first and the first record named
// second (exact, case-sensitive) and lines up their attributes. An attribute
// the record lacks is reported as 0.
func Compare(view player.View, first, second string) (Comparison, error) {
	if !view.HasColumn(player.FieldName) {
		return Comparison{}, fmt.Errorf("%w: %s", player.ErrMissingColumn, player.FieldName)
	}

	a, ok := findByName(view, first)
	if !ok {
		return Comparison{}, fmt.Errorf("%w: %q", player.ErrPlayerNotFound, first)
	}
	b, ok := findByName(view, second)
	if !ok {
		return Comparison{}, fmt.Errorf("%w: %q", player.ErrPlayerNotFound, second)
	}

	rows := make([]AttributeComparison, 0, len(ComparisonAttributes))
	for _, attr := range ComparisonAttributes {
		rows = append(rows, AttributeComparison{
			Attribute: attr.Label,
			First:     attributeValue(a, attr.Field),
			Second:    attributeValue(b, attr.Field),
		})
	}

	return Comparison{First: a, Second: b, Rows: rows}, nil
}

func findByName(view player.View, name string) (player.Record, bool) {
	for _, r := range view.Records() {
		if v, ok := r.Value(player.FieldName); ok && v == name {
			return r, true
		}
	}
	return player.Record{}, false
}

func attributeValue(r player.Record, field string) float64 {
	v, ok := r.Number(field)
	if !ok {
		return 0
	}
	return v
}
