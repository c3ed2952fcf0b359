package ratings

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
)

// FilterOptions are the selectable values for each filterable column.
type FilterOptions struct {
	Leagues   []string
	Positions []string
	Teams     []string
}

// Options lists the distinct non-blank League, Position and Team values of
// the whole table, sorted.
func Options(table player.Table) (FilterOptions, error) {
	columns := make(map[string]struct{}, len(table.Columns()))
	for _, c := range table.Columns() {
		columns[c] = struct{}{}
	}
	for _, field := range player.FilterableFields {
		if _, ok := columns[field]; !ok {
			return FilterOptions{}, fmt.Errorf("%w: %s", player.ErrMissingColumn, field)
		}
	}

	records := table.Records()
	return FilterOptions{
		Leagues:   distinctSorted(records, player.FieldLeague),
		Positions: distinctSorted(records, player.FieldPosition),
		Teams:     distinctSorted(records, player.FieldTeam),
	}, nil
}

// PlayerSelection feeds the two comparison selectors.
type PlayerSelection struct {
	Names  []string
	First  string
	Second string
}

// SelectablePlayers lists the distinct names in the view. The default pair is
// the first name and, when there is more than one, the second.
func SelectablePlayers(view player.View) (PlayerSelection, error) {
	if !view.HasColumn(player.FieldName) {
		return PlayerSelection{}, fmt.Errorf("%w: %s", player.ErrMissingColumn, player.FieldName)
	}

	names := distinctSorted(view.Records(), player.FieldName)
	out := PlayerSelection{Names: names}
	if len(names) > 0 {
		out.First = names[0]
		out.Second = names[0]
	}
	if len(names) > 1 {
		out.Second = names[1]
	}
	return out, nil
}

func distinctSorted(records []player.Record, field string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		v, ok := r.Value(field)
		if !ok || v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
