package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	actions, err := ParseScript("uR e\n\tDl")
	require.NoError(t, err)
	assert.Equal(t, []Action{ActionUp, ActionRight, ActionConfirm, ActionDown, ActionLeft}, actions)

	actions, err = ParseScript("   ")
	require.NoError(t, err)
	assert.Empty(t, actions)

	_, err = ParseScript("UUX")
	assert.ErrorIs(t, err, ErrBadScript)
	assert.Contains(t, err.Error(), "offset 2")
}

func TestReplay_SolutionSolvesDefaultLayout(t *testing.T) {
	actions, err := ParseScript(SolutionScript)
	require.NoError(t, err)

	r := newTestRound(DefaultLayout())
	won, err := Replay(r, actions, tickDt, 200)
	require.NoError(t, err)
	assert.True(t, won)
	assert.True(t, r.Grid().CheckVerticalLines())
	assert.Equal(t, 1, r.Events().Count(CatRound, KeyComplete))
}

func TestReplay_PiecesStayConsistent(t *testing.T) {
	actions, err := ParseScript(SolutionScript)
	require.NoError(t, err)
	r := newTestRound(DefaultLayout())

	for i, a := range actions {
		r.Step(tickDt, a)
		settle(t, r)

		g := r.Grid()
		require.Equal(t, 15, g.PieceCount(), "action %d", i)
		for _, p := range r.Pieces() {
			col, row := p.Cell()
			require.Equal(t, p.Kind().Tile(), g.Tile(col, row), "action %d piece %s", i, p.Label())
			got, ok := r.PieceAt(col, row)
			require.True(t, ok)
			require.Same(t, p, got)

			x, y := p.Position()
			px, py := r.Geometry().Pixel(col, row)
			require.Equal(t, [2]float64{px, py}, [2]float64{x, y}, "resting pieces sit on their cell")
		}
	}
	assert.True(t, r.Complete())
}

func TestReplay_ReportsUnsettledMotion(t *testing.T) {
	r := newTestRound(DefaultLayout())
	_, err := Replay(r, []Action{ActionRight}, tickDt, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "still moving")
}
