package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
	"github.com/riskibarqy/fc-player-dashboard/internal/domain/ratings"
	"github.com/riskibarqy/fc-player-dashboard/internal/usecase"
)

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", title)
}

func renderDashboard(w io.Writer, d usecase.Dashboard) {
	section(w, "Summary")
	summary := tablewriter.NewWriter(w)
	summary.SetHeader([]string{"Players", "Average Ovr", "Average Age"})
	summary.Append([]string{
		strconv.Itoa(d.Summary.Players),
		d.Summary.AverageOverall.String(),
		d.Summary.AverageAge.String(),
	})
	summary.Render()

	section(w, "Top players by Ovr")
	top := tablewriter.NewWriter(w)
	top.SetHeader([]string{"Rank", "Name", "Team", "Age", "Ovr"})
	for _, p := range d.TopPlayers {
		age := "-"
		if v, ok := p.Record.Age(); ok {
			age = formatNumber(v)
		}
		top.Append([]string{strconv.Itoa(p.Rank), p.Record.Name(), p.Record.Team(), age, formatNumber(p.Overall)})
	}
	top.Render()

	section(w, "Ovr distribution")
	dist := tablewriter.NewWriter(w)
	dist.SetHeader([]string{"From", "To", "Players"})
	for _, b := range d.Distribution {
		dist.Append([]string{strconv.FormatFloat(b.Lower, 'f', 1, 64), strconv.FormatFloat(b.Upper, 'f', 1, 64), strconv.Itoa(b.Count)})
	}
	dist.Render()

	section(w, "Nations by average Ovr")
	nations := tablewriter.NewWriter(w)
	nations.SetHeader([]string{"Nation", "Average Ovr", "Players"})
	for _, n := range d.Nations {
		nations.Append([]string{n.Nation, formatNumber(n.AverageOverall), strconv.Itoa(n.Players)})
	}
	nations.Render()
}

func renderRows(w io.Writer, view player.View, limit int) {
	section(w, fmt.Sprintf("Players (%d of %d)", min(limit, view.Len()), view.Len()))
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(view.Columns())
	rows := view.Rows()
	if len(rows) > limit {
		rows = rows[:limit]
	}
	table.AppendBulk(rows)
	table.Render()
}

func renderComparison(w io.Writer, cmp ratings.Comparison) {
	section(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Attribute", cmp.First.Name(), cmp.Second.Name()})
	for _, row := range cmp.Rows {
		table.Append([]string{row.Attribute, formatNumber(row.First), formatNumber(row.Second)})
	}
	table.Render()
}
