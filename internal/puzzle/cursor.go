package puzzle

import "fmt"

// Cursor is the player's selection cursor. It is either free, roaming the
// interior on its own motion, or possessing a piece, in which case every move
// is forwarded to that piece and the cursor's own cell stays frozen until
// Drop.
type Cursor struct {
	motion Motion
	bounds Bounds
	held   *Piece
}

// NewCursor returns a free cursor resting on (col,row) and confined to bounds.
func NewCursor(col, row int, bounds Bounds, geom Geometry, speed float64) *Cursor {
	return &Cursor{
		motion: NewMotion(col, row, geom, speed),
		bounds: bounds,
	}
}

// Active reports whether the cursor possesses a piece.
func (c *Cursor) Active() bool { return c.held != nil }

// Held returns the possessed piece, or nil when free.
func (c *Cursor) Held() *Piece { return c.held }

// Select possesses p. It only succeeds from the free state with the cursor
// resting on p's cell.
func (c *Cursor) Select(p *Piece) bool {
	if c.held != nil || p == nil {
		return false
	}
	pc, pr := p.Cell()
	cc, cr := c.motion.Cell()
	if pc != cc || pr != cr {
		return false
	}
	c.held = p
	p.SetSelected(true)
	return true
}

// Drop releases the held piece and moves the cursor onto the piece's cell.
// It refuses while the piece is still sliding.
func (c *Cursor) Drop() bool {
	if c.held == nil || c.held.IsMoving() {
		return false
	}
	col, row := c.held.Cell()
	c.motion.Place(col, row)
	c.motion.x, c.motion.y = c.held.Position()
	c.held.SetSelected(false)
	c.held = nil
	return true
}

// Move forwards to the held piece, or moves the free cursor one cell inside
// its bounds.
func (c *Cursor) Move(d Direction) bool {
	if c.held != nil {
		return c.held.Move(d)
	}
	if c.motion.IsMoving() {
		return false
	}
	col, row := c.motion.Cell()
	dc, dr := d.Offset()
	if !c.bounds.Contains(col+dc, row+dr) {
		return false
	}
	return c.motion.Move(d)
}

// Advance steps whichever motion is live.
func (c *Cursor) Advance(dt float64) {
	if c.held != nil {
		c.held.Advance(dt)
		return
	}
	c.motion.Advance(dt)
}

// IsMoving reports whether the live motion is in flight.
func (c *Cursor) IsMoving() bool {
	if c.held != nil {
		return c.held.IsMoving()
	}
	return c.motion.IsMoving()
}

// Cell returns the cursor's own cell, frozen while possessing.
func (c *Cursor) Cell() (int, int) { return c.motion.Cell() }

// Position returns the cursor's own logical pixel position.
func (c *Cursor) Position() (float64, float64) { return c.motion.Position() }

func (c *Cursor) String() string {
	col, row := c.Cell()
	if c.held != nil {
		return fmt.Sprintf("cursor (%d,%d) holding %s", col, row, c.held.Label())
	}
	return fmt.Sprintf("cursor (%d,%d) free", col, row)
}
