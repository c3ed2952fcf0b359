package memory

import "github.com/riskibarqy/fc-player-dashboard/internal/domain/player"

const SeedName = "seed"

var seedHeader = []string{"", "Rank", "Name", "League", "Position", "Team", "Nation", "Ovr", "Age", "Pac", "Pas", "Dri", "Def", "Phy"}

var seedRows = [][]string{
	{"0", "1", "Rodri", "Premier League", "CDM", "Manchester City", "Spain", "91", "28", "66", "86", "84", "87", "85"},
	{"1", "2", "Kylian Mbappé", "LaLiga", "ST", "Real Madrid", "France", "91", "25", "97", "80", "92", "36", "78"},
	{"2", "3", "Erling Haaland", "Premier League", "ST", "Manchester City", "Norway", "91", "24", "88", "70", "80", "45", "88"},
	{"3", "4", "Jude Bellingham", "LaLiga", "CAM", "Real Madrid", "England", "90", "21", "80", "83", "88", "78", "83"},
	{"4", "5", "Vini Jr.", "LaLiga", "LW", "Real Madrid", "Brazil", "90", "24", "95", "81", "91", "29", "69"},
	{"5", "6", "Kevin De Bruyne", "Premier League", "CM", "Manchester City", "Belgium", "90", "33", "67", "94", "86", "65", "78"},
	{"6", "7", "Harry Kane", "Bundesliga", "ST", "FC Bayern München", "England", "90", "31", "65", "84", "83", "49", "83"},
	{"7", "8", "Virgil van Dijk", "Premier League", "CB", "Liverpool", "Netherlands", "89", "33", "73", "71", "72", "89", "86"},
	{"8", "9", "Mohamed Salah", "Premier League", "RW", "Liverpool", "Egypt", "89", "32", "89", "82", "87", "45", "76"},
	{"9", "10", "Lautaro Martínez", "Serie A", "ST", "Inter", "Argentina", "89", "27", "84", "75", "86", "55", "82"},
	{"10", "11", "Thibaut Courtois", "LaLiga", "GK", "Real Madrid", "Belgium", "89", "32", "", "", "", "", ""},
	{"11", "12", "Martin Ødegaard", "Premier League", "CM", "Arsenal", "Norway", "89", "25", "75", "90", "89", "61", "69"},
}

// SeedPlayerTable is a small sample of the ratings table.
func SeedPlayerTable() player.Table {
	rows := make([][]string, len(seedRows))
	for i, r := range seedRows {
		rows[i] = append([]string(nil), r...)
	}
	table, err := player.NewTable(seedHeader, rows)
	if err != nil {
		panic("memory: invalid seed table: " + err.Error())
	}
	return table
}
