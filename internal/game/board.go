package game

import (
	"github.com/Garsondee/Lanes/internal/puzzle"
)

// BoardView mirrors a round onto a canvas: static ground and walls once,
// pieces and cursor every frame.
type BoardView struct {
	canvas *Canvas
	round  *puzzle.Round
	static []Handle
	pieces map[*puzzle.Piece]Handle
	cursor Handle
}

// NewBoardView creates the drawables for r.
func NewBoardView(c *Canvas, r *puzzle.Round) *BoardView {
	b := &BoardView{
		canvas: c,
		round:  r,
		pieces: make(map[*puzzle.Piece]Handle, len(r.Pieces())),
	}
	b.buildEnvironment()
	for _, p := range r.Pieces() {
		x, y := p.Position()
		b.pieces[p] = c.Create(PieceSprite(p.Kind(), p.Selected()), x, y, LayerForeground)
	}
	x, y := r.Cursor().Position()
	b.cursor = c.Create(SpriteCursor, x, y, LayerSelection)
	return b
}

// buildEnvironment lays ground under every interior cell plus the sign row
// above it, and blocks over interior walls.
func (b *BoardView) buildEnvironment() {
	grid := b.round.Grid()
	geom := b.round.Geometry()
	in := b.round.Layout().Interior()

	for row := in.MinRow; row <= in.MaxRow; row++ {
		for col := in.MinCol; col <= in.MaxCol; col++ {
			x, y := geom.Pixel(col, row)
			b.static = append(b.static, b.canvas.Create(GroundSprite(grid.BackgroundTile(col, row)), x, y, LayerBackground))
			if t := grid.Tile(col, row); t.Family() == puzzle.FamilyWall {
				b.static = append(b.static, b.canvas.Create(WallSprite(t), x, y, LayerForeground))
			}
		}
	}
	if sign := in.MinRow - 1; sign >= 0 {
		for col := in.MinCol; col <= in.MaxCol; col++ {
			x, y := geom.Pixel(col, sign)
			b.static = append(b.static, b.canvas.Create(GroundSprite(grid.BackgroundTile(col, sign)), x, y, LayerBackground))
		}
	}
}

// Sync copies piece and cursor positions and the selected look.
func (b *BoardView) Sync() {
	for p, h := range b.pieces {
		x, y := p.Position()
		b.canvas.SetPosition(h, x, y)
		b.canvas.SetSprite(h, PieceSprite(p.Kind(), p.Selected()))
	}
	cur := b.round.Cursor()
	x, y := cur.Position()
	if held := cur.Held(); held != nil {
		x, y = held.Position()
	}
	b.canvas.SetPosition(b.cursor, x, y)
}

// Destroy removes every drawable the view created.
func (b *BoardView) Destroy() {
	for _, h := range b.static {
		b.canvas.Destroy(h)
	}
	for _, h := range b.pieces {
		b.canvas.Destroy(h)
	}
	b.canvas.Destroy(b.cursor)
	b.static = nil
	b.pieces = map[*puzzle.Piece]Handle{}
}

// CurtainView is the banded curtain over the board. Even bands slide out to
// the left and odd bands to the right.
type CurtainView struct {
	canvas *Canvas
	bands  []Handle
	width  float64
}

// NewCurtainView creates a covering curtain of tile-high bands.
func NewCurtainView(c *Canvas, width, height, tile int) *CurtainView {
	n := (height + tile - 1) / tile
	v := &CurtainView{canvas: c, width: float64(width)}
	for i := 0; i < n; i++ {
		v.bands = append(v.bands, c.Create(SpriteStripe, 0, float64(i*tile), LayerCurtain))
	}
	return v
}

// Sync places the bands for open in [0,1], 0 covering and 1 gone.
func (v *CurtainView) Sync(open float64) {
	open = min(max(open, 0), 1)
	for i, h := range v.bands {
		_, y, _ := v.canvas.Position(h)
		dx := open * v.width
		if i%2 == 0 {
			dx = -dx
		}
		v.canvas.SetPosition(h, dx, y)
		v.canvas.SetHidden(h, open >= 1)
	}
}

// Destroy removes the bands.
func (v *CurtainView) Destroy() {
	for _, h := range v.bands {
		v.canvas.Destroy(h)
	}
	v.bands = nil
}
