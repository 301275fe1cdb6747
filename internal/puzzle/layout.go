package puzzle

import "fmt"

// Line is one winning lane: a column that must hold Kind over the layout's
// row range.
type Line struct {
	Col  int
	Kind Kind
}

// Layout is the level data a round is built from.
type Layout struct {
	Tiles      [][]Tile
	Background [][]int // cosmetic decoration codes, never consulted for blocking
	Border     bool    // outer ring is wall and off limits to the cursor
	Lines      []Line
	RowFrom    int // first row of the win range, inclusive
	RowTo      int // last row of the win range, inclusive
	StartCol   int
	StartRow   int
}

// Background decoration codes used by the built-in level.
const (
	DecorPlain      = 0
	DecorCorner     = 1
	DecorEdgeTop    = 2
	DecorEdgeLeft   = 3
	DecorRedSign    = 4
	DecorGreenSign  = 5
	DecorBlueSign   = 6
	DecorSignSpacer = 7
	DecorationCount = 8
)

var defaultTiles = [][]Tile{
	{10, 10, 10, 10, 10, 10, 10},
	{10, 21, 10, 22, 10, 23, 10},
	{10, 21, 21, 22, 22, 23, 10},
	{10, 0, 10, 22, 10, 23, 10},
	{10, 21, 0, 22, 0, 23, 10},
	{10, 21, 10, 0, 10, 23, 10},
	{10, 10, 10, 10, 10, 10, 10},
}

var defaultBackground = [][]int{
	{0, 4, 7, 5, 7, 6, 0},
	{0, 1, 2, 2, 2, 2, 2},
	{0, 3, 0, 0, 0, 0, 0},
	{0, 3, 0, 0, 0, 0, 0},
	{0, 3, 0, 0, 0, 0, 0},
	{0, 3, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

// DefaultLayout returns a fresh copy of the built-in level.
func DefaultLayout() Layout {
	return Layout{
		Tiles:      cloneTiles(defaultTiles),
		Background: cloneInts(defaultBackground),
		Border:     true,
		Lines: []Line{
			{Col: 1, Kind: KindRed},
			{Col: 3, Kind: KindGreen},
			{Col: 5, Kind: KindBlue},
		},
		RowFrom:  1,
		RowTo:    5,
		StartCol: 1,
		StartRow: 4,
	}
}

// Size is the side length of the square matrix.
func (l Layout) Size() int { return len(l.Tiles) }

// Interior returns the cells the cursor may roam.
func (l Layout) Interior() Bounds {
	n := l.Size()
	if l.Border {
		return Bounds{MinCol: 1, MinRow: 1, MaxCol: n - 2, MaxRow: n - 2}
	}
	return Bounds{MinCol: 0, MinRow: 0, MaxCol: n - 1, MaxRow: n - 1}
}

// Validate checks the layout can build a grid and a round.
func (l Layout) Validate() error {
	n := l.Size()
	if n == 0 {
		return fmt.Errorf("empty tile matrix: %w", ErrInvalidLayout)
	}
	if l.Border && n < 3 {
		return fmt.Errorf("bordered layout needs at least 3x3, got %d: %w", n, ErrInvalidLayout)
	}
	for r, row := range l.Tiles {
		if len(row) != n {
			return fmt.Errorf("tile row %d has %d cells, want %d: %w", r, len(row), n, ErrInvalidLayout)
		}
		for c, t := range row {
			switch t.Family() {
			case FamilyGround, FamilyWall:
			case FamilyPiece:
				if _, err := KindOf(t); err != nil {
					return fmt.Errorf("cell (%d,%d): %w", c, r, err)
				}
			default:
				return fmt.Errorf("cell (%d,%d) holds unknown code %d: %w", c, r, t, ErrInvalidLayout)
			}
		}
	}
	if l.Background != nil {
		if len(l.Background) != n {
			return fmt.Errorf("background has %d rows, want %d: %w", len(l.Background), n, ErrInvalidLayout)
		}
		for r, row := range l.Background {
			if len(row) != n {
				return fmt.Errorf("background row %d has %d cells, want %d: %w", r, len(row), n, ErrInvalidLayout)
			}
		}
	}
	if len(l.Lines) == 0 {
		return fmt.Errorf("no win lines: %w", ErrInvalidLayout)
	}
	for _, ln := range l.Lines {
		if ln.Col < 0 || ln.Col >= n {
			return fmt.Errorf("win column %d outside grid: %w", ln.Col, ErrInvalidLayout)
		}
		if !ln.Kind.Valid() {
			return fmt.Errorf("win column %d: %w", ln.Col, ErrUnknownKind)
		}
	}
	if l.RowFrom < 0 || l.RowTo >= n || l.RowFrom > l.RowTo {
		return fmt.Errorf("win rows %d..%d outside grid: %w", l.RowFrom, l.RowTo, ErrInvalidLayout)
	}
	if !l.Interior().Contains(l.StartCol, l.StartRow) {
		return fmt.Errorf("cursor start (%d,%d) outside interior: %w", l.StartCol, l.StartRow, ErrInvalidLayout)
	}
	return nil
}

func cloneTiles(src [][]Tile) [][]Tile {
	out := make([][]Tile, len(src))
	for i, row := range src {
		out[i] = append([]Tile(nil), row...)
	}
	return out
}

func cloneInts(src [][]int) [][]int {
	out := make([][]int, len(src))
	for i, row := range src {
		out[i] = append([]int(nil), row...)
	}
	return out
}
