package ratings

import (
	"fmt"

	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
)

// Filter drops the leading identifier columns of table and then narrows the
// remaining view with criteria.
func Filter(table player.Table, identifierColumns int, criteria player.Criteria) (player.View, error) {
	return Apply(table.BaseView(identifierColumns), criteria)
}

// Apply keeps the records whose value for every restricted column is one of
// the selected values. Columns are AND-combined, values within a column are
// OR-combined, and row order is preserved. An empty result is not an error.
func Apply(view player.View, criteria player.Criteria) (player.View, error) {
	for _, sel := range criteria.Selections() {
		if len(sel.Values) == 0 {
			continue
		}
		if !view.HasColumn(sel.Field) {
			return player.View{}, fmt.Errorf("%w: %s", player.ErrMissingColumn, sel.Field)
		}

		allowed := make(map[string]struct{}, len(sel.Values))
		for _, v := range sel.Values {
			allowed[v] = struct{}{}
		}

		field := sel.Field
		view = view.Where(func(r player.Record) bool {
			v, ok := r.Value(field)
			if !ok {
				return false
			}
			_, hit := allowed[v]
			return hit
		})
	}

	return view, nil
}
