package game

import (
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Lanes/internal/puzzle"
)

func newTestGame(t *testing.T) (*Game, *logtest.Hook) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	m, err := puzzle.NewMachine(puzzle.DefaultLayout(), puzzle.WithMachineLogger(log.NewEntry(logger)))
	require.NoError(t, err)
	return &Game{cfg: DefaultConfig(), log: log.NewEntry(logger), machine: m}, hook
}

func TestScreenMatchesGeometry(t *testing.T) {
	g := puzzle.DefaultGeometry()
	assert.Equal(t, float64(ScreenWidth), g.WindowWidth)
	assert.Equal(t, float64(ScreenHeight), g.WindowHeight)
}

func TestGame_Layout(t *testing.T) {
	g, _ := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 576, w)
	assert.Equal(t, 576, h)
}

func TestGame_SnapshotIncludesBoardOnceRoundStarts(t *testing.T) {
	g, _ := newTestGame(t)
	s := g.Snapshot()
	assert.Contains(t, s, "state=intro")
	assert.NotContains(t, s, "cursor")

	require.NoError(t, g.machine.Update(tickDt, []puzzle.Action{puzzle.ActionConfirm}))
	s = g.Snapshot()
	assert.Contains(t, s, "state=playing")
	assert.Contains(t, s, "10 21 10 22 10 23 10")
	assert.Contains(t, s, "cursor (1,4) free")
	assert.Contains(t, s, "intro → playing")
}

func TestGame_CopySnapshot(t *testing.T) {
	g, hook := newTestGame(t)
	var got string
	g.copyText = func(s string) error { got = s; return nil }
	g.copySnapshot()
	assert.Equal(t, g.Snapshot(), got)
	assert.Equal(t, "snapshot copied to clipboard", hook.LastEntry().Message)

	g.copyText = func(string) error { return errors.New("no clipboard") }
	g.copySnapshot()
	assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)
}
