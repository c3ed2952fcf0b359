package usecase

import (
	"context"
	"errors"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
	"github.com/riskibarqy/fc-player-dashboard/internal/domain/ratings"
	playermock "github.com/riskibarqy/fc-player-dashboard/internal/mocks/domain/player"
	"github.com/riskibarqy/fc-player-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fc-player-dashboard/internal/platform/resilience"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dashboardTable(t *testing.T) player.Table {
	t.Helper()

	table, err := player.NewTable(
		[]string{"", "Rank", "Name", "League", "Position", "Team", "Nation", "Ovr", "Age", "Pac", "Pas", "Dri", "Def", "Phy"},
		[][]string{
			{"0", "1", "A", "Premier League", "ST", "X", "France", "80", "24", "90", "70", "85", "40", "75"},
			{"1", "2", "B", "LaLiga", "CM", "Y", "Spain", "90", "28", "75", "92", "88", "70", "72"},
			{"2", "3", "C", "Premier League", "CB", "X", "England", "70", "31", "60", "65", "58", "86", "84"},
		},
	)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	return table
}

func newSource(t *testing.T, table player.Table, err error) *playermock.Source {
	t.Helper()

	src := playermock.NewSource(t)
	src.On("Load", mock.Anything).Return(table, err)
	src.On("CacheKey").Return("csv:testdata/players.csv").Maybe()
	return src
}

func TestDashboardService_Dashboard(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(newSource(t, dashboardTable(t), nil), DefaultDashboardOptions(), logging.NewNop())

	got, err := svc.Dashboard(context.Background(), player.Criteria{Teams: []string{"X"}})
	require.NoError(t, err)

	assert.Equal(t, 2, got.Summary.Players)
	assert.Equal(t, ratings.Metric{Value: 75, Available: true}, got.Summary.AverageOverall)

	require.Len(t, got.TopPlayers, 2)
	assert.Equal(t, "A", got.TopPlayers[0].Record.Name())
	assert.Equal(t, "C", got.TopPlayers[1].Record.Name())

	assert.Len(t, got.Distribution, ratings.DefaultHistogramBins)
	require.Len(t, got.Nations, 2)
	assert.Equal(t, "France", got.Nations[0].Nation)
}

func TestDashboardService_EmptyView(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(newSource(t, dashboardTable(t), nil), DefaultDashboardOptions(), logging.NewNop())

	got, err := svc.Dashboard(context.Background(), player.Criteria{Leagues: []string{"Serie A"}})
	require.NoError(t, err)

	assert.Equal(t, 0, got.Summary.Players)
	assert.False(t, got.Summary.AverageOverall.Available)
	assert.Empty(t, got.TopPlayers)
	assert.Empty(t, got.Nations)
	require.Len(t, got.Distribution, ratings.DefaultHistogramBins)
	for _, b := range got.Distribution {
		assert.Zero(t, b.Count)
	}
}

func TestDashboardService_BlankSelectionsArePassThrough(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(newSource(t, dashboardTable(t), nil), DefaultDashboardOptions(), logging.NewNop())

	view, err := svc.View(context.Background(), player.Criteria{Teams: []string{"", "  "}, Leagues: []string{"LaLiga", "LaLiga"}})
	require.NoError(t, err)

	require.Equal(t, 1, view.Len())
	assert.Equal(t, "B", view.Record(0).Name())
	assert.Equal(t, []string{"Name", "League", "Position", "Team", "Nation", "Ovr", "Age", "Pac", "Pas", "Dri", "Def", "Phy"}, view.Columns())
}

func TestDashboardService_SelectionsAreTrimmed(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(newSource(t, dashboardTable(t), nil), DefaultDashboardOptions(), logging.NewNop())

	view, err := svc.View(context.Background(), player.Criteria{Teams: []string{" X", "X "}, Positions: []string{"\tCB\n"}})
	require.NoError(t, err)

	require.Equal(t, 1, view.Len())
	assert.Equal(t, "C", view.Record(0).Name())
}

func TestDashboardService_OptionsOverrides(t *testing.T) {
	t.Parallel()

	opts := DashboardOptions{IdentifierColumns: 2, TopN: 1, HistogramBins: 5, NationLimit: 1}
	svc := NewDashboardService(newSource(t, dashboardTable(t), nil), opts, logging.NewNop())

	got, err := svc.Dashboard(context.Background(), player.Criteria{})
	require.NoError(t, err)

	require.Len(t, got.TopPlayers, 1)
	assert.Equal(t, "B", got.TopPlayers[0].Record.Name())
	assert.Len(t, got.Distribution, 5)
	assert.Len(t, got.Nations, 1)
}

func TestDashboardService_Compare(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(newSource(t, dashboardTable(t), nil), DefaultDashboardOptions(), logging.NewNop())
	ctx := context.Background()

	t.Run("both present", func(t *testing.T) {
		got, err := svc.Compare(ctx, CompareInput{First: "A", Second: "B"})
		require.NoError(t, err)
		assert.Equal(t, 90.0, got.Rows[0].First)
		assert.Equal(t, 75.0, got.Rows[0].Second)
	})

	t.Run("filtered out", func(t *testing.T) {
		_, err := svc.Compare(ctx, CompareInput{Criteria: player.Criteria{Teams: []string{"X"}}, First: "A", Second: "B"})
		if !errors.Is(err, player.ErrPlayerNotFound) {
			t.Fatalf("expected ErrPlayerNotFound, got %v", err)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.Compare(ctx, CompareInput{First: "A", Second: " "})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestDashboardService_FilterOptionsAndSelection(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(newSource(t, dashboardTable(t), nil), DefaultDashboardOptions(), logging.NewNop())

	opts, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, opts.Teams)

	sel, err := svc.SelectablePlayers(context.Background(), player.Criteria{Teams: []string{"X"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, sel.Names)
	assert.Equal(t, "C", sel.Second)
}

func TestDashboardService_LoadFailures(t *testing.T) {
	t.Parallel()

	t.Run("data load error keeps its mark", func(t *testing.T) {
		loadErr := crerr.Mark(crerr.New("open players.csv: no such file"), player.ErrDataLoad)
		svc := NewDashboardService(newSource(t, player.Table{}, loadErr), DefaultDashboardOptions(), logging.NewNop())

		err := svc.Warm(context.Background())
		if !crerr.Is(err, player.ErrDataLoad) {
			t.Fatalf("expected ErrDataLoad, got %v", err)
		}
	})

	t.Run("open circuit is a dependency failure", func(t *testing.T) {
		loadErr := crerr.Mark(resilience.ErrCircuitOpen, player.ErrDataLoad)
		svc := NewDashboardService(newSource(t, player.Table{}, loadErr), DefaultDashboardOptions(), logging.NewNop())

		_, err := svc.Summary(context.Background(), player.Criteria{})
		if !errors.Is(err, ErrDependencyUnavailable) {
			t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
		}
	})
}

func TestDashboardService_MissingFilterColumn(t *testing.T) {
	t.Parallel()

	table, err := player.NewTable([]string{"Idx", "Rank", "Name", "Ovr"}, [][]string{{"0", "1", "A", "80"}})
	require.NoError(t, err)
	svc := NewDashboardService(newSource(t, table, nil), DefaultDashboardOptions(), logging.NewNop())

	_, err = svc.TopPlayers(context.Background(), player.Criteria{Positions: []string{"ST"}})
	if !errors.Is(err, player.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}

	top, err := svc.TopPlayers(context.Background(), player.Criteria{})
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestDashboardService_Warm(t *testing.T) {
	t.Parallel()

	src := playermock.NewSource(t)
	src.On("Load", mock.Anything).Return(dashboardTable(t), nil).Once()
	src.On("CacheKey").Return("csv:players.csv").Once()

	svc := NewDashboardService(src, DefaultDashboardOptions(), logging.NewNop())
	require.NoError(t, svc.Warm(context.Background()))
}
