package game

import (
	"io"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Lanes/internal/puzzle"
)

const tickDt = 1.0 / 120

func quietEntry() *log.Entry {
	l := log.New()
	l.SetOutput(io.Discard)
	return log.NewEntry(l)
}

func newRound(t *testing.T) *puzzle.Round {
	t.Helper()
	r, err := puzzle.NewRound(puzzle.DefaultLayout(), puzzle.WithLogger(quietEntry()))
	require.NoError(t, err)
	return r
}

func TestBoardView_CreatesDrawables(t *testing.T) {
	c := NewCanvas()
	b := NewBoardView(c, newRound(t))

	// 25 interior + 5 sign-row grounds, 6 interior walls, 15 pieces, 1 cursor
	assert.Equal(t, 52, c.Len())
	assert.Len(t, b.pieces, 15)

	x, y, ok := c.Position(b.cursor)
	require.True(t, ok)
	assert.Equal(t, [2]float64{128, 320}, [2]float64{x, y})

	b.Destroy()
	assert.Zero(t, c.Len())
}

func TestBoardView_SyncFollowsRound(t *testing.T) {
	c := NewCanvas()
	r := newRound(t)
	b := NewBoardView(c, r)

	r.Step(tickDt, puzzle.ActionConfirm)
	p := r.Cursor().Held()
	require.NotNil(t, p)
	r.Step(tickDt, puzzle.ActionUp)
	b.Sync()

	h := b.pieces[p]
	s, _ := c.Sprite(h)
	assert.Equal(t, PieceSprite(puzzle.KindRed, true), s)

	px, py := p.Position()
	x, y, _ := c.Position(h)
	assert.Equal(t, [2]float64{px, py}, [2]float64{x, y})
	cx, cy, _ := c.Position(b.cursor)
	assert.Equal(t, [2]float64{px, py}, [2]float64{cx, cy}, "cursor rides the held piece")

	for r.IsMoving() {
		r.Advance(tickDt)
	}
	r.Step(tickDt, puzzle.ActionConfirm)
	b.Sync()
	s, _ = c.Sprite(h)
	assert.Equal(t, PieceSprite(puzzle.KindRed, false), s)
	_, y, _ = c.Position(h)
	assert.Equal(t, 64.0+3*64, y)
}

func TestCurtainView_Sync(t *testing.T) {
	c := NewCanvas()
	v := NewCurtainView(c, ScreenWidth, ScreenHeight, 64)
	require.Len(t, v.bands, 9)

	v.Sync(0.5)
	x0, y0, _ := c.Position(v.bands[0])
	x1, y1, _ := c.Position(v.bands[1])
	assert.Equal(t, -288.0, x0)
	assert.Equal(t, 288.0, x1)
	assert.Equal(t, 0.0, y0)
	assert.Equal(t, 64.0, y1)
	assert.False(t, c.items[v.bands[0]].hidden)

	v.Sync(2)
	assert.True(t, c.items[v.bands[4]].hidden)
	v.Destroy()
	assert.Zero(t, c.Len())
}

func TestScene_FollowsMachine(t *testing.T) {
	m, err := puzzle.NewMachine(puzzle.DefaultLayout(), puzzle.WithMachineLogger(quietEntry()))
	require.NoError(t, err)
	c := NewCanvas()
	s := NewScene(c, m)

	// 9 backdrop bands and 4 labels
	assert.Equal(t, 13, c.Len())
	assert.Nil(t, s.Board())
	require.NoError(t, m.Update(tickDt, nil))
	s.Sync()
	assert.Equal(t, m.PromptAlpha(), c.items[s.prompt].alpha)

	require.NoError(t, m.Update(tickDt, []puzzle.Action{puzzle.ActionConfirm}))
	s.Sync()
	require.NotNil(t, s.Board())
	assert.Equal(t, 52+9, c.Len())

	for i := 0; i < 120; i++ {
		require.NoError(t, m.Update(tickDt, nil))
		s.Sync()
	}
	for _, h := range s.curtain.bands {
		assert.True(t, c.items[h].hidden, "curtain fully open")
	}
}

func TestActionFor(t *testing.T) {
	a, ok := ActionFor(ebiten.KeySpace)
	require.True(t, ok)
	assert.Equal(t, puzzle.ActionConfirm, a)
	_, ok = ActionFor(ebiten.KeyEscape)
	assert.False(t, ok, "escape quits, it is not a player action")
}
