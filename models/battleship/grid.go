package battleship

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

const (
	DefaultGridSize int = 10

	// One letter per column, A to Z
	MaxGridSize int = 26
)

type TileState uint8

const (
	TileStateUnknown TileState = iota
	TileStateEmpty
	TileStateHit
	TileStateSunk
)

func (ts TileState) String() string {
	switch ts {
	case TileStateEmpty:
		return "empty"
	case TileStateHit:
		return "hit"
	case TileStateSunk:
		return "sunk"
	default:
		return "unknown"
	}
}

// X is the column and Y is the row.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// ColumnLabel gives the letter used for column x.
func ColumnLabel(x int) string {
	return string(rune('A' + x))
}

// Label form, e.g. "B3"
func (c Coordinates) String() string {
	if c.X < 0 || c.X >= MaxGridSize {
		return "?" + strconv.Itoa(c.Y)
	}
	return ColumnLabel(c.X) + strconv.Itoa(c.Y)
}

func (c Coordinates) InBounds(gridSize int) bool {
	return c.X >= 0 && c.X < gridSize && c.Y >= 0 && c.Y < gridSize
}

// ParseCoordinates accepts the label form produced by String,
// column letters are case-insensitive.
func ParseCoordinates(raw string) (Coordinates, error) {
	s := strings.TrimSpace(raw)
	if len(s) < 2 {
		return Coordinates{}, cerr.ErrMalformedCoordinate(raw)
	}

	col := strings.ToUpper(s[:1])[0]
	if col < 'A' || col > 'Z' {
		return Coordinates{}, cerr.ErrMalformedCoordinate(raw)
	}

	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 0 {
		return Coordinates{}, cerr.ErrMalformedCoordinate(raw)
	}

	return NewCoordinates(int(col-'A'), row), nil
}

type Grid [][]TileState

// Creates a new default grid
// All indexes are zero/TileStateUnknown
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]TileState, gridSize)
	}
	return grid
}

func (g Grid) at(c Coordinates) TileState {
	return g[c.Y][c.X]
}

func (g Grid) set(c Coordinates, state TileState) {
	g[c.Y][c.X] = state
}

func (g Grid) clone() Grid {
	cp := make(Grid, len(g))
	for i := range g {
		cp[i] = make([]TileState, len(g[i]))
		copy(cp[i], g[i])
	}
	return cp
}
