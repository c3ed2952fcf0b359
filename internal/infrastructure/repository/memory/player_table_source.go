package memory

import (
	"context"

	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
)

// PlayerTableSource serves a table held in memory. It backs DATA_SOURCE=memory
// for local runs without a data file.
type PlayerTableSource struct {
	name  string
	table player.Table
}

func NewPlayerTableSource(name string, table player.Table) *PlayerTableSource {
	return &PlayerTableSource{name: name, table: table}
}

func (s *PlayerTableSource) CacheKey() string {
	return "memory:" + s.name
}

func (s *PlayerTableSource) Load(ctx context.Context) (player.Table, error) {
	if err := ctx.Err(); err != nil {
		return player.Table{}, err
	}
	return s.table, nil
}
