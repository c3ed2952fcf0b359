package postgres

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
	qb "github.com/riskibarqy/fc-player-dashboard/internal/platform/querybuilder"
)

type ratingColumn struct {
	name    string
	label   string
	numeric bool
}

// ratingColumns are the player_ratings columns after the two identifier
// columns, with the header label each one is filled from.
var ratingColumns = []ratingColumn{
	{name: "name", label: player.FieldName},
	{name: "league", label: player.FieldLeague},
	{name: "position", label: player.FieldPosition},
	{name: "team", label: player.FieldTeam},
	{name: "nation", label: player.FieldNation},
	{name: "ovr", label: player.FieldOverall, numeric: true},
	{name: "age", label: player.FieldAge, numeric: true},
	{name: "pac", label: player.FieldPace, numeric: true},
	{name: "pas", label: player.FieldPassing, numeric: true},
	{name: "dri", label: player.FieldDribbling, numeric: true},
	{name: "def", label: player.FieldDefense, numeric: true},
	{name: "phy", label: player.FieldPhysical, numeric: true},
}

// ImportColumns lists the insert columns in order.
func ImportColumns() []string {
	out := make([]string, 0, len(ratingColumns)+2)
	out = append(out, "idx", "rank")
	for _, c := range ratingColumns {
		out = append(out, c.name)
	}
	return out
}

// ImportRows converts table records into COPY rows matching ImportColumns.
// Blank or non-numeric rating cells become NULL. Rows without an idx value
// take their ordinal.
func ImportRows(table player.Table) [][]any {
	columns := table.Columns()
	idxLabel, rankLabel := "", ""
	if len(columns) > 0 {
		idxLabel = columns[0]
	}
	if len(columns) > 1 {
		rankLabel = columns[1]
	}

	out := make([][]any, 0, table.Len())
	for i, r := range table.Records() {
		row := make([]any, 0, len(ratingColumns)+2)

		if v, ok := r.Number(idxLabel); ok {
			row = append(row, int64(v))
		} else {
			row = append(row, int64(i))
		}
		if v, ok := r.Number(rankLabel); ok {
			row = append(row, int64(v))
		} else {
			row = append(row, nil)
		}

		for _, c := range ratingColumns {
			if c.numeric {
				if v, ok := r.Number(c.label); ok {
					row = append(row, v)
				} else {
					row = append(row, nil)
				}
				continue
			}
			v, _ := r.Value(c.label)
			row = append(row, v)
		}
		out = append(out, row)
	}
	return out
}

// ImportPlayerTable replaces the contents of relation with table in a single
// transaction using COPY.
func ImportPlayerTable(ctx context.Context, db *sqlx.DB, relation string, table player.Table) (int, error) {
	quoted, err := qb.QuoteIdentifier(relation)
	if err != nil {
		return 0, crerr.Wrap(err, "import player table")
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, crerr.Wrapf(err, "begin import%s", sqlState(err))
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "TRUNCATE "+quoted); err != nil {
		return 0, crerr.Wrapf(err, "truncate %s%s", relation, sqlState(err))
	}

	stmt, err := tx.PrepareContext(ctx, copyIn(relation, ImportColumns()))
	if err != nil {
		return 0, crerr.Wrapf(err, "prepare copy into %s%s", relation, sqlState(err))
	}

	rows := ImportRows(table)
	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			_ = stmt.Close()
			return 0, crerr.Wrapf(err, "copy row %d%s", i+1, sqlState(err))
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return 0, crerr.Wrapf(err, "flush copy%s", sqlState(err))
	}
	if err := stmt.Close(); err != nil {
		return 0, crerr.Wrap(err, "close copy statement")
	}

	if err := tx.Commit(); err != nil {
		return 0, crerr.Wrapf(err, "commit import%s", sqlState(err))
	}
	return len(rows), nil
}

func copyIn(relation string, columns []string) string {
	if schema, name, ok := strings.Cut(relation, "."); ok {
		return pq.CopyInSchema(strings.Trim(schema, `"`), strings.Trim(name, `"`), columns...)
	}
	return pq.CopyIn(strings.Trim(relation, `"`), columns...)
}
