package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeColumn(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  OVR ", want: "Ovr"},
		{in: "ovr", want: "Ovr"},
		{in: "name", want: "Name"},
		{in: "\ufeffRank", want: "Rank"},
		{in: "play style", want: "Play Style"},
		{in: "play_style", want: "Play_Style"},
		{in: "pac2x", want: "Pac2X"},
		{in: "WEAK-FOOT", want: "Weak-Foot"},
		{in: "ovr%", want: "Ovr%"},
		{in: "2024", want: "2024"},
		{in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeColumn(tt.in); got != tt.want {
				t.Fatalf("NormalizeColumn(%q)=%q want=%q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewTable_NormalizesHeader(t *testing.T) {
	table, err := NewTable(
		[]string{"", "rank", " name ", "OVR"},
		[][]string{{"0", "1", "Mbappe", "91"}},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"Unnamed: 0", "Rank", "Name", "Ovr"}, table.Columns())
	require.Equal(t, 1, table.Len())

	rec := table.Records()[0]
	assert.Equal(t, "Mbappe", rec.Name())
	ovr, ok := rec.Overall()
	assert.True(t, ok)
	assert.Equal(t, 91.0, ovr)
}

func TestNewTable_Rejects(t *testing.T) {
	t.Run("empty header", func(t *testing.T) {
		_, err := NewTable(nil, nil)
		assert.Error(t, err)
	})

	t.Run("duplicate after normalization", func(t *testing.T) {
		_, err := NewTable([]string{"Name", "name "}, nil)
		assert.Error(t, err)
	})

	t.Run("blank label collides with named column", func(t *testing.T) {
		_, err := NewTable([]string{"", "Unnamed: 0"}, nil)
		assert.Error(t, err)
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := NewTable([]string{"Name", "Ovr"}, [][]string{{"A"}})
		assert.Error(t, err)
	})
}

func TestTable_BaseViewDropsIdentifierColumns(t *testing.T) {
	table, err := NewTable(
		[]string{"Idx", "Rank", "Name", "Ovr"},
		[][]string{
			{"0", "1", "A", "80"},
			{"1", "2", "B", "90"},
		},
	)
	require.NoError(t, err)

	view := table.BaseView(DefaultIdentifierColumns)
	assert.Equal(t, []string{"Name", "Ovr"}, view.Columns())
	assert.Equal(t, 2, view.Len())
	assert.False(t, view.HasColumn("Idx"))

	_, ok := view.Record(0).Value("Rank")
	assert.False(t, ok, "identifier cells must not leak into the view")

	assert.Equal(t, [][]string{{"A", "80"}, {"B", "90"}}, view.Rows())

	all := table.BaseView(10)
	assert.Empty(t, all.Columns())
	assert.Equal(t, 2, all.Len())
}

func TestRecord_Number(t *testing.T) {
	rec := NewRecord(map[string]string{
		FieldOverall: " 87 ",
		FieldAge:     "",
		FieldPace:    "fast",
	})

	v, ok := rec.Number(FieldOverall)
	assert.True(t, ok)
	assert.Equal(t, 87.0, v)

	_, ok = rec.Number(FieldAge)
	assert.False(t, ok)
	_, ok = rec.Number(FieldPace)
	assert.False(t, ok)
	_, ok = rec.Number(FieldPhysical)
	assert.False(t, ok)
}

func TestView_WhereKeepsOrder(t *testing.T) {
	records := []Record{
		NewRecord(map[string]string{FieldName: "A", FieldTeam: "X"}),
		NewRecord(map[string]string{FieldName: "B", FieldTeam: "Y"}),
		NewRecord(map[string]string{FieldName: "C", FieldTeam: "X"}),
	}
	view := NewView([]string{FieldName, FieldTeam}, records)

	got := view.Where(func(r Record) bool { return r.Team() == "X" })
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "A", got.Record(0).Name())
	assert.Equal(t, "C", got.Record(1).Name())
	assert.Equal(t, 3, view.Len(), "source view must be untouched")
}

func TestCriteria_IsEmpty(t *testing.T) {
	assert.True(t, Criteria{}.IsEmpty())
	assert.False(t, Criteria{Teams: []string{"X"}}.IsEmpty())

	sels := Criteria{Leagues: []string{"LaLiga"}}.Selections()
	require.Len(t, sels, 3)
	assert.Equal(t, FieldLeague, sels[0].Field)
	assert.Equal(t, FieldPosition, sels[1].Field)
	assert.Equal(t, FieldTeam, sels[2].Field)
}
