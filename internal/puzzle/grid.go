package puzzle

import (
	"fmt"
	"strings"
)

// Grid is the occupancy matrix of a round plus its cosmetic background layer.
// It is pure data: every cell holds exactly one tile code and the grid does no
// conflict detection of its own. Coordinates are (col, row), row 0 on top.
type Grid struct {
	size       int
	tiles      [][]Tile
	background [][]int
	blocked    [10]bool // indexed by tile family
	lines      []Line
	rowFrom    int
	rowTo      int
}

// GridOption configures a Grid at construction.
type GridOption func(*Grid)

// WithBlockedFamilies replaces the set of tile families IsBlocked reports.
// The default is walls and pieces.
func WithBlockedFamilies(families ...int) GridOption {
	return func(g *Grid) {
		g.blocked = [10]bool{}
		for _, f := range families {
			if f >= 0 && f < len(g.blocked) {
				g.blocked[f] = true
			}
		}
	}
}

// NewGrid builds a grid from a validated copy of the layout tables.
func NewGrid(layout Layout, opts ...GridOption) (*Grid, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	n := layout.Size()
	g := &Grid{
		size:    n,
		tiles:   cloneTiles(layout.Tiles),
		lines:   append([]Line(nil), layout.Lines...),
		rowFrom: layout.RowFrom,
		rowTo:   layout.RowTo,
	}
	if layout.Background != nil {
		g.background = cloneInts(layout.Background)
	} else {
		g.background = make([][]int, n)
		for r := range g.background {
			g.background[r] = make([]int, n)
		}
	}
	g.blocked[FamilyWall] = true
	g.blocked[FamilyPiece] = true
	for _, o := range opts {
		o(g)
	}
	return g, nil
}

// Size is the side length of the matrix.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (col,row) addresses a cell.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.size && row >= 0 && row < g.size
}

func (g *Grid) mustBeInBounds(op string, col, row int) {
	if !g.InBounds(col, row) {
		panic(&BoundsError{Op: op, Col: col, Row: row, Size: g.size})
	}
}

// Tile returns the code at (col,row). It panics with a *BoundsError outside
// the grid.
func (g *Grid) Tile(col, row int) Tile {
	g.mustBeInBounds("Tile", col, row)
	return g.tiles[row][col]
}

// BackgroundTile returns the decoration code at (col,row).
func (g *Grid) BackgroundTile(col, row int) int {
	g.mustBeInBounds("BackgroundTile", col, row)
	return g.background[row][col]
}

// UpdateField overwrites the code at (col,row). The caller owns occupancy
// correctness.
func (g *Grid) UpdateField(col, row int, t Tile) {
	g.mustBeInBounds("UpdateField", col, row)
	g.tiles[row][col] = t
}

// IsBlocked reports whether the cell's family is in the blocked set. All
// movement legality goes through here.
func (g *Grid) IsBlocked(col, row int) bool {
	g.mustBeInBounds("IsBlocked", col, row)
	f := g.tiles[row][col].Family()
	return f >= 0 && f < len(g.blocked) && g.blocked[f]
}

// CheckVerticalLines reports whether every win column holds its kind over the
// whole row range. A column fails on its first mismatching cell.
func (g *Grid) CheckVerticalLines() bool {
	for _, ln := range g.lines {
		want := ln.Kind.Tile()
		for row := g.rowFrom; row <= g.rowTo; row++ {
			if g.tiles[row][ln.Col] != want {
				return false
			}
		}
	}
	return true
}

// PieceCount returns the number of cells holding a piece.
func (g *Grid) PieceCount() int {
	n := 0
	for _, row := range g.tiles {
		for _, t := range row {
			if t.IsPiece() {
				n++
			}
		}
	}
	return n
}

// String renders the matrix one row per line with two-digit codes.
func (g *Grid) String() string {
	var sb strings.Builder
	for r, row := range g.tiles {
		for c, t := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%02d", int(t))
		}
		if r < len(g.tiles)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
