package csvfile

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
)

// Loader reads the player table from a comma separated file whose first line
// is the header.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: filepath.Clean(path)}
}

func (l *Loader) CacheKey() string {
	return "csv:" + l.path
}

func (l *Loader) Load(ctx context.Context) (player.Table, error) {
	if err := ctx.Err(); err != nil {
		return player.Table{}, crerr.Mark(crerr.Wrap(err, "load player csv"), player.ErrDataLoad)
	}

	f, err := os.Open(l.path)
	if err != nil {
		return player.Table{}, crerr.Mark(crerr.Wrapf(err, "open player csv %s", l.path), player.ErrDataLoad)
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return player.Table{}, crerr.Wrapf(err, "read player csv %s", l.path)
	}
	return table, nil
}

// Read parses a whole CSV document into a table. Any malformed content fails
// the load; no partial table is returned.
func Read(r io.Reader) (player.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return player.Table{}, crerr.Mark(crerr.New("player csv is empty"), player.ErrDataLoad)
	}
	if err != nil {
		return player.Table{}, crerr.Mark(crerr.Wrap(err, "parse csv header"), player.ErrDataLoad)
	}

	rows := make([][]string, 0, 1024)
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return player.Table{}, crerr.Mark(crerr.Wrap(err, "parse csv row"), player.ErrDataLoad)
		}
		rows = append(rows, rec)
	}

	table, err := player.NewTable(header, rows)
	if err != nil {
		return player.Table{}, crerr.Mark(err, player.ErrDataLoad)
	}
	return table, nil
}
