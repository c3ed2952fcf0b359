package ratings

import (
	"fmt"
	"testing"

	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopPlayers_FilteredScenario(t *testing.T) {
	view, err := Filter(scenarioTable(t), player.DefaultIdentifierColumns, player.Criteria{Teams: []string{"X"}})
	require.NoError(t, err)

	got := TopPlayers(view, 2)

	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Record.Name())
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, 80.0, got[0].Overall)
	assert.Equal(t, "C", got[1].Record.Name())
	assert.Equal(t, 2, got[1].Rank)
}

func TestTopPlayers_SizeAndOrdering(t *testing.T) {
	rows := make([][]string, 0, 15)
	for i := 0; i < 15; i++ {
		ovr := 60 + (i*7)%30
		rows = append(rows, []string{fmt.Sprint(i), fmt.Sprint(i + 1), fmt.Sprintf("P%02d", i), fmt.Sprint(ovr)})
	}
	table := newTable(t, []string{"Idx", "Rank", "Name", "Ovr"}, rows...)
	view := table.BaseView(player.DefaultIdentifierColumns)

	got := TopPlayers(view, DefaultTopN)
	require.Len(t, got, DefaultTopN)

	included := make(map[string]struct{}, len(got))
	minIncluded := got[0].Overall
	for i, p := range got {
		included[p.Record.Name()] = struct{}{}
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].Overall, p.Overall)
		}
		if p.Overall < minIncluded {
			minIncluded = p.Overall
		}
	}
	for _, r := range view.Records() {
		if _, ok := included[r.Name()]; ok {
			continue
		}
		ovr, _ := r.Overall()
		assert.LessOrEqual(t, ovr, minIncluded, "excluded %s outranks an included row", r.Name())
	}

	few := TopPlayers(view, 100)
	assert.Len(t, few, view.Len())
}

func TestTopPlayers_TiesKeepRowOrder(t *testing.T) {
	table := newTable(t, []string{"Idx", "Rank", "Name", "Ovr"},
		[]string{"0", "1", "first", "85"},
		[]string{"1", "2", "top", "90"},
		[]string{"2", "3", "second", "85"},
		[]string{"3", "4", "third", "85"},
	)

	got := TopPlayers(table.BaseView(player.DefaultIdentifierColumns), 3)

	require.Len(t, got, 3)
	assert.Equal(t, "top", got[0].Record.Name())
	assert.Equal(t, "first", got[1].Record.Name())
	assert.Equal(t, "second", got[2].Record.Name())
}

func TestTopPlayers_EmptyView(t *testing.T) {
	view := player.NewView([]string{player.FieldName, player.FieldOverall}, nil)

	got := TopPlayers(view, DefaultTopN)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNationRanking(t *testing.T) {
	table := newTable(t, []string{"Idx", "Rank", "Name", "Nation", "Ovr"},
		[]string{"0", "1", "a", "Brazil", "88"},
		[]string{"1", "2", "b", "Brazil", "85"},
		[]string{"2", "3", "c", "France", "91"},
		[]string{"3", "4", "d", "Japan", "77"},
		[]string{"4", "5", "e", "", "99"},
		[]string{"5", "6", "f", "Ghana", ""},
	)

	got := NationRanking(table.BaseView(player.DefaultIdentifierColumns), DefaultNationLimit)

	require.Len(t, got, 3)
	assert.Equal(t, NationRating{Nation: "France", AverageOverall: 91, Players: 1}, got[0])
	// 86.5 rounds half to even
	assert.Equal(t, NationRating{Nation: "Brazil", AverageOverall: 86, Players: 2}, got[1])
	assert.Equal(t, NationRating{Nation: "Japan", AverageOverall: 77, Players: 1}, got[2])
}

func TestNationRanking_SortedAndLimited(t *testing.T) {
	rows := make([][]string, 0, 30)
	for i := 0; i < 30; i++ {
		rows = append(rows, []string{fmt.Sprint(i), fmt.Sprint(i), fmt.Sprintf("p%d", i), fmt.Sprintf("N%02d", i%15), fmt.Sprint(60 + (i*11)%35)})
	}
	table := newTable(t, []string{"Idx", "Rank", "Name", "Nation", "Ovr"}, rows...)

	got := NationRanking(table.BaseView(player.DefaultIdentifierColumns), DefaultNationLimit)

	require.LessOrEqual(t, len(got), DefaultNationLimit)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].AverageOverall, got[i].AverageOverall)
	}
}

func TestNationRanking_EmptyView(t *testing.T) {
	view, err := Filter(scenarioTable(t), player.DefaultIdentifierColumns, player.Criteria{Teams: []string{"nobody"}})
	require.NoError(t, err)

	got := NationRanking(view, DefaultNationLimit)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
