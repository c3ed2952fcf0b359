package ratings

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	got, err := Options(scenarioTable(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"LaLiga", "Premier League"}, got.Leagues)
	assert.Equal(t, []string{"CB", "CM", "ST"}, got.Positions)
	assert.Equal(t, []string{"X", "Y"}, got.Teams)
}

func TestOptions_MissingColumn(t *testing.T) {
	table := newTable(t, []string{"Idx", "Rank", "Name", "League", "Team"},
		[]string{"0", "1", "A", "L", "T"},
	)

	_, err := Options(table)
	if !errors.Is(err, player.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestSelectablePlayers(t *testing.T) {
	t.Run("defaults to first two names", func(t *testing.T) {
		got, err := SelectablePlayers(scenarioTable(t).BaseView(player.DefaultIdentifierColumns))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, got.Names)
		assert.Equal(t, "A", got.First)
		assert.Equal(t, "B", got.Second)
	})

	t.Run("single player fills both selectors", func(t *testing.T) {
		view, err := Filter(scenarioTable(t), player.DefaultIdentifierColumns, player.Criteria{Teams: []string{"Y"}})
		require.NoError(t, err)

		got, err := SelectablePlayers(view)
		require.NoError(t, err)
		assert.Equal(t, "B", got.First)
		assert.Equal(t, "B", got.Second)
	})

	t.Run("empty view", func(t *testing.T) {
		view, err := Filter(scenarioTable(t), player.DefaultIdentifierColumns, player.Criteria{Teams: []string{"Z"}})
		require.NoError(t, err)

		got, err := SelectablePlayers(view)
		require.NoError(t, err)
		assert.Empty(t, got.Names)
		assert.Empty(t, got.First)
	})
}
