package puzzle

// DefaultSpeed is the slide speed in logical pixels per second.
const DefaultSpeed = 200.0

// Geometry maps grid cells onto logical pixels. Logical y grows downwards
// with the row index.
type Geometry struct {
	OffsetX, OffsetY float64
	TileSize         float64
	WindowWidth      float64
	WindowHeight     float64
}

// DefaultGeometry is a 7x7 board of 64px tiles inset one tile into a 576px
// square window.
func DefaultGeometry() Geometry {
	return Geometry{
		OffsetX:      64,
		OffsetY:      64,
		TileSize:     64,
		WindowWidth:  576,
		WindowHeight: 576,
	}
}

// Pixel returns the logical top-left pixel of a cell.
func (g Geometry) Pixel(col, row int) (float64, float64) {
	return g.OffsetX + float64(col)*g.TileSize, g.OffsetY + float64(row)*g.TileSize
}

// DeviceY converts a logical y into the y of a bottom-up device.
func (g Geometry) DeviceY(y float64) float64 {
	return g.WindowHeight - g.TileSize - y
}

// Motion interpolates a continuous position towards a discrete target cell.
// The target cell changes as soon as a move starts; the position follows at
// a fixed speed and is clamped onto the target when it gets there.
type Motion struct {
	geom   Geometry
	speed  float64
	col    int
	row    int
	x, y   float64
	dx, dy float64
	moving bool
}

// NewMotion returns a motion resting on (col,row).
func NewMotion(col, row int, geom Geometry, speed float64) Motion {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	m := Motion{geom: geom, speed: speed}
	m.Place(col, row)
	return m
}

// Move retargets one cell in direction d. It is a no-op while a move is in
// flight.
func (m *Motion) Move(d Direction) bool {
	if m.moving {
		return false
	}
	dc, dr := d.Offset()
	if dc == 0 && dr == 0 {
		return false
	}
	m.col += dc
	m.row += dr
	m.dx = float64(dc) * m.speed
	m.dy = float64(dr) * m.speed
	m.moving = true
	return true
}

// Advance integrates the position by dt seconds. Once the position reaches or
// passes the target along the axis of travel it is set exactly onto the
// target and the motion stops.
func (m *Motion) Advance(dt float64) {
	if !m.moving || dt <= 0 {
		return
	}
	m.x += m.dx * dt
	m.y += m.dy * dt
	tx, ty := m.geom.Pixel(m.col, m.row)
	switch {
	case m.dx != 0:
		if (tx-m.x)*m.dx <= 0 {
			m.x = tx
			m.stop()
		}
	case m.dy != 0:
		if (ty-m.y)*m.dy <= 0 {
			m.y = ty
			m.stop()
		}
	default:
		m.stop()
	}
}

// Place snaps the motion onto (col,row) and cancels any velocity.
func (m *Motion) Place(col, row int) {
	m.col, m.row = col, row
	m.x, m.y = m.geom.Pixel(col, row)
	m.stop()
}

func (m *Motion) stop() {
	m.dx, m.dy = 0, 0
	m.moving = false
}

// IsMoving reports whether a move is in flight.
func (m *Motion) IsMoving() bool { return m.moving }

// Cell returns the target cell, which is the resting cell when idle.
func (m *Motion) Cell() (int, int) { return m.col, m.row }

// Position returns the current logical pixel position.
func (m *Motion) Position() (float64, float64) { return m.x, m.y }

// Velocity returns the current per-second displacement.
func (m *Motion) Velocity() (float64, float64) { return m.dx, m.dy }
