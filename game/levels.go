package game

// Level bundles a maze layout with the ghost spawn cells that belong to it.
type Level struct {
	Name       string
	rows       []string
	GhostHomes [NumGhosts]Position
}

// NewLevel builds a level from raw maze rows, for callers that bring their
// own layout.
func NewLevel(name string, rows []string, homes [NumGhosts]Position) Level {
	return Level{Name: name, rows: rows, GhostHomes: homes}
}

// NewBoard parses a fresh board for the level. Each call returns an
// independent copy, so concurrent games never share pellet state.
func (l Level) NewBoard() (*Board, error) {
	return ParseBoard(l.rows)
}

// ClassicLevel returns the standard maze: a walled 30x30 with a central
// ghost house, four power pellets in the corner loops and 391 pellets in
// total. The agent starts on the 'O' cell near the bottom.
func ClassicLevel() Level {
	return Level{
		Name: "classic",
		rows: classicRows,
		GhostHomes: [NumGhosts]Position{
			{X: 12, Y: 13},
			{X: 12, Y: 16},
		},
	}
}

var classicRows = []string{
	"##############################",
	"#.............##.............#",
	"#.####.######.##.######.####.#",
	"#*####.######.##.######.####*#",
	"#............................#",
	"#.####.#######..#######.####.#",
	"#.####....####..####....####.#",
	"#.####.##.####..####.##.####.#",
	"#......##............##......#",
	"######.##.##########.##.######",
	"#......##............##......#",
	"#.####.##.####  ####.##.####.#",
	"#.........#        #.........#",
	"#.####.##.##########.##.####.#",
	"#......##............##......#",
	"######.##.##########.##.######",
	"#......##............##......#",
	"#.####.##.##.#..#.##.##.####.#",
	"#.####.#####.####.#####.####.#",
	"#*...#.....#......#.....#...*#",
	"#.####.######.##.######.####.#",
	"#.......#............#.......#",
	"####.##.######..######.##.####",
	"#....##....##....##....##....#",
	"#.##########.#O.#.##########.#",
	"#.####.#####.####.#####.####.#",
	"#......##....####....##......#",
	"#.####.##.####..####.##.####.#",
	"#............................#",
	"##############################",
}
