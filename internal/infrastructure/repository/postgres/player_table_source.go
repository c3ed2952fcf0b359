package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
	qb "github.com/riskibarqy/fc-player-dashboard/internal/platform/querybuilder"
	"github.com/riskibarqy/fc-player-dashboard/internal/platform/resilience"
)

// PlayerTableSourceConfig names the relation holding the player table.
type PlayerTableSourceConfig struct {
	Table   string
	OrderBy string
	// RowLimit caps the rows read; zero reads everything.
	RowLimit       int
	CircuitBreaker resilience.CircuitBreakerConfig
}

// PlayerTableSource reads the whole player table from Postgres. Column names
// of the relation become the table header, in declaration order.
type PlayerTableSource struct {
	db      *sqlx.DB
	cfg     PlayerTableSourceConfig
	breaker *resilience.CircuitBreaker
}

func NewPlayerTableSource(db *sqlx.DB, cfg PlayerTableSourceConfig) *PlayerTableSource {
	return &PlayerTableSource{
		db:      db,
		cfg:     cfg,
		breaker: resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

func (s *PlayerTableSource) CacheKey() string {
	return "postgres:" + s.cfg.Table
}

func (s *PlayerTableSource) Load(ctx context.Context) (player.Table, error) {
	query, err := qb.Select("*").
		From(s.cfg.Table).
		OrderBy(s.cfg.OrderBy).
		Limit(s.cfg.RowLimit).
		ToSQL()
	if err != nil {
		return player.Table{}, crerr.Mark(crerr.Wrap(err, "build select player table query"), player.ErrDataLoad)
	}

	var table player.Table
	err = s.breaker.Execute(func() error {
		rows, err := s.db.QueryxContext(ctx, query)
		if err != nil {
			return crerr.Wrapf(err, "select player table %s%s", s.cfg.Table, sqlState(err))
		}
		defer rows.Close()

		table, err = readTable(rows)
		return err
	})
	if err != nil {
		return player.Table{}, crerr.Mark(err, player.ErrDataLoad)
	}

	return table, nil
}

type tableRows interface {
	Columns() ([]string, error)
	Next() bool
	SliceScan() ([]any, error)
	Err() error
}

func readTable(rows tableRows) (player.Table, error) {
	header, err := rows.Columns()
	if err != nil {
		return player.Table{}, crerr.Wrap(err, "read player table columns")
	}

	out := make([][]string, 0, 1024)
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return player.Table{}, crerr.Wrapf(err, "scan player table row %d", len(out)+1)
		}
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = cellText(v)
		}
		out = append(out, cells)
	}
	if err := rows.Err(); err != nil {
		return player.Table{}, crerr.Wrap(err, "iterate player table rows")
	}

	return player.NewTable(header, out)
}

// cellText renders a scanned column value the way it would appear in the
// exported CSV. NULL becomes the empty string.
func cellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
