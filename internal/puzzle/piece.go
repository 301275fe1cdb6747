package puzzle

import "fmt"

// Piece is a movable grid occupant. It holds a non-owning reference to the
// round's grid and writes its own occupancy there on every committed move.
type Piece struct {
	kind     Kind
	motion   Motion
	grid     *Grid
	selected bool
}

// NewPiece places a piece of kind k on (col,row). It does not write the grid;
// the factory builds pieces from cells that already hold them.
func NewPiece(k Kind, col, row int, grid *Grid, geom Geometry, speed float64) *Piece {
	return &Piece{
		kind:   k,
		motion: NewMotion(col, row, geom, speed),
		grid:   grid,
	}
}

// CreatePieces walks every cell and builds a piece for each piece code. An
// unknown kind is invalid level data and aborts construction.
func CreatePieces(grid *Grid, geom Geometry, speed float64) ([]*Piece, error) {
	var pieces []*Piece
	for row := 0; row < grid.Size(); row++ {
		for col := 0; col < grid.Size(); col++ {
			t := grid.Tile(col, row)
			if !t.IsPiece() {
				continue
			}
			k, err := KindOf(t)
			if err != nil {
				return nil, fmt.Errorf("create piece at (%d,%d): %w", col, row, err)
			}
			pieces = append(pieces, NewPiece(k, col, row, grid, geom, speed))
		}
	}
	return pieces, nil
}

// Move slides the piece one cell. A blocked or off-grid destination, or a
// move already in flight, makes it a silent no-op. On success the grid is
// written at once: the source becomes ground and the destination this
// piece's tile, while the position animates behind.
func (p *Piece) Move(d Direction) bool {
	if p.motion.IsMoving() {
		return false
	}
	col, row := p.motion.Cell()
	dc, dr := d.Offset()
	nc, nr := col+dc, row+dr
	if !p.grid.InBounds(nc, nr) || p.grid.IsBlocked(nc, nr) {
		return false
	}
	if !p.motion.Move(d) {
		return false
	}
	p.grid.UpdateField(col, row, TileGround)
	p.grid.UpdateField(nc, nr, p.kind.Tile())
	return true
}

// Advance steps the slide animation.
func (p *Piece) Advance(dt float64) { p.motion.Advance(dt) }

func (p *Piece) Kind() Kind { return p.kind }
func (p *Piece) Cell() (int, int) { return p.motion.Cell() }
func (p *Piece) Position() (float64, float64) { return p.motion.Position() }
func (p *Piece) IsMoving() bool { return p.motion.IsMoving() }

// SetSelected toggles the selected appearance.
func (p *Piece) SetSelected(v bool) { p.selected = v }

// Selected reports whether the cursor currently holds the piece.
func (p *Piece) Selected() bool { return p.selected }

// Label is a short subject string, e.g. "G@3,4".
func (p *Piece) Label() string {
	col, row := p.Cell()
	return fmt.Sprintf("%s@%d,%d", p.kind.Letter(), col, row)
}

func (p *Piece) String() string {
	col, row := p.Cell()
	x, y := p.Position()
	return fmt.Sprintf("<Piece %s col=%d row=%d x=%.1f y=%.1f>", p.kind, col, row, x, y)
}
