package ratings

import (
	"testing"

	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
)

var sampleHeader = []string{"Idx", "Rank", "Name", "League", "Position", "Team", "Nation", "Ovr", "Age", "Pac", "Pas", "Dri", "Def", "Phy"}

func newTable(t *testing.T, header []string, rows ...[]string) player.Table {
	t.Helper()

	table, err := player.NewTable(header, rows)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	return table
}

// scenarioTable is the three-row table A/B/C used across the pipeline tests.
func scenarioTable(t *testing.T) player.Table {
	t.Helper()

	return newTable(t, sampleHeader,
		[]string{"0", "1", "A", "Premier League", "ST", "X", "France", "80", "24", "90", "70", "85", "40", "75"},
		[]string{"1", "2", "B", "LaLiga", "CM", "Y", "Spain", "90", "28", "75", "92", "88", "70", "72"},
		[]string{"2", "3", "C", "Premier League", "CB", "X", "England", "70", "31", "60", "65", "58", "86", "84"},
	)
}

func names(view player.View) []string {
	out := make([]string, 0, view.Len())
	for _, r := range view.Records() {
		out = append(out, r.Name())
	}
	return out
}
