package cache

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
	playermock "github.com/riskibarqy/fc-player-dashboard/internal/mocks/domain/player"
	basecache "github.com/riskibarqy/fc-player-dashboard/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func sampleTable(t *testing.T) player.Table {
	t.Helper()
	table, err := player.NewTable([]string{"Idx", "Rank", "Name", "Ovr"}, [][]string{{"0", "1", "A", "80"}})
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	return table
}

func TestPlayerTableSource_LoadsOnce(t *testing.T) {
	t.Parallel()

	next := playermock.NewSource(t)
	next.On("CacheKey").Return("csv:players.csv")
	next.On("Load", mock.Anything).Return(sampleTable(t), nil).Once()

	src := NewPlayerTableSource(next, basecache.NewStore[player.Table](0))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			table, err := src.Load(context.Background())
			if err != nil {
				t.Errorf("load: %v", err)
				return
			}
			if table.Len() != 1 {
				t.Errorf("rows=%d want=1", table.Len())
			}
		}()
	}
	wg.Wait()

	if _, err := src.Load(context.Background()); err != nil {
		t.Fatalf("cached load: %v", err)
	}
}

func TestPlayerTableSource_RetriesAfterFailure(t *testing.T) {
	t.Parallel()

	loadErr := errors.New("file locked")
	next := playermock.NewSource(t)
	next.On("CacheKey").Return("csv:players.csv")
	next.On("Load", mock.Anything).Return(player.Table{}, loadErr).Once()
	next.On("Load", mock.Anything).Return(sampleTable(t), nil).Once()

	src := NewPlayerTableSource(next, basecache.NewStore[player.Table](0))

	if _, err := src.Load(context.Background()); !errors.Is(err, loadErr) {
		t.Fatalf("expected load error, got %v", err)
	}
	table, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("retry load: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("rows=%d want=1", table.Len())
	}
}

func TestPlayerTableSource_KeysByUnderlyingSource(t *testing.T) {
	t.Parallel()

	store := basecache.NewStore[player.Table](0)

	csv := playermock.NewSource(t)
	csv.On("CacheKey").Return("csv:players.csv")
	csv.On("Load", mock.Anything).Return(sampleTable(t), nil).Once()

	pg := playermock.NewSource(t)
	pg.On("CacheKey").Return("postgres:player_ratings")
	pg.On("Load", mock.Anything).Return(player.Table{}, nil).Once()

	if _, err := NewPlayerTableSource(csv, store).Load(context.Background()); err != nil {
		t.Fatalf("csv load: %v", err)
	}
	table, err := NewPlayerTableSource(pg, store).Load(context.Background())
	if err != nil {
		t.Fatalf("postgres load: %v", err)
	}
	if table.Len() != 0 {
		t.Fatalf("postgres source served the csv table")
	}
	if store.Len() != 2 {
		t.Fatalf("entries=%d want=2", store.Len())
	}
}
