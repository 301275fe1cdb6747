package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T, l Layout) *Machine {
	t.Helper()
	m, err := NewMachine(l, WithMachineLogger(quietLogger()))
	require.NoError(t, err)
	return m
}

func tickMachine(t *testing.T, m *Machine, actions ...Action) {
	t.Helper()
	require.NoError(t, m.Update(tickDt, actions))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StateIntro, StatePlaying))
	assert.True(t, CanTransition(StatePlaying, StateEnd))
	assert.False(t, CanTransition(StateIntro, StateEnd))
	assert.False(t, CanTransition(StatePlaying, StateIntro))
	for _, s := range []State{StateIntro, StatePlaying, StateEnd} {
		assert.False(t, CanTransition(StateEnd, s), "end is terminal")
	}
}

func TestNewMachine_RejectsInvalidLayout(t *testing.T) {
	l := DefaultLayout()
	l.StartCol = 0
	_, err := NewMachine(l)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestMachine_IntroWaitsForConfirm(t *testing.T) {
	m := newTestMachine(t, DefaultLayout())
	assert.Equal(t, StateIntro, m.State())
	assert.Nil(t, m.Round())
	assert.Zero(t, m.CurtainOpen())

	tickMachine(t, m, ActionUp, ActionLeft, ActionRight, ActionDown)
	assert.Equal(t, StateIntro, m.State())

	tickMachine(t, m, ActionConfirm)
	assert.Equal(t, StatePlaying, m.State())
	require.NotNil(t, m.Round())
	assert.True(t, m.Events().Has(CatState, KeyTransition, "intro → playing"))

	// the confirm that left the intro must not select a piece
	assert.False(t, m.Round().Cursor().Active())
}

func TestMachine_PromptPulses(t *testing.T) {
	m := newTestMachine(t, DefaultLayout())
	assert.Equal(t, 1.0, m.PromptAlpha())

	lo, hi := 1.0, 0.0
	for i := 0; i < 240; i++ {
		tickMachine(t, m)
		a := m.PromptAlpha()
		require.GreaterOrEqual(t, a, 0.0)
		require.LessOrEqual(t, a, 1.0)
		lo = min(lo, a)
		hi = max(hi, a)
	}
	assert.Less(t, lo, 0.05)
	assert.Greater(t, hi, 0.95)
	assert.Equal(t, StateIntro, m.State())
}

func TestMachine_CurtainOpens(t *testing.T) {
	m := newTestMachine(t, DefaultLayout())
	tickMachine(t, m, ActionConfirm)
	assert.Less(t, m.CurtainOpen(), 0.1)

	for i := 0; i < 60; i++ {
		tickMachine(t, m)
	}
	assert.Equal(t, 1.0, m.CurtainOpen())
}

func TestMachine_WinClosesToEnd(t *testing.T) {
	m := newTestMachine(t, nearlyWonLayout())
	tickMachine(t, m, ActionConfirm)
	tickMachine(t, m, ActionConfirm)
	tickMachine(t, m, ActionLeft)
	require.True(t, m.Round().Complete())
	assert.Equal(t, StatePlaying, m.State(), "hold before closing")

	ticks := 0
	for !m.Terminal() {
		tickMachine(t, m)
		ticks++
		require.Less(t, ticks, 300, "curtain never closed")
	}
	// hold then close: about 0.9s of ticks
	assert.GreaterOrEqual(t, ticks, int((CurtainHold+CurtainDuration)/tickDt)-2)
	assert.Equal(t, StateEnd, m.State())
	assert.Zero(t, m.CurtainOpen())
	assert.True(t, m.Events().Has(CatState, KeyTransition, "playing → end"))
	assert.Equal(t, 1, m.Events().Count(CatRound, KeyComplete))
}

func TestMachine_EndIgnoresInput(t *testing.T) {
	m := newTestMachine(t, nearlyWonLayout())
	tickMachine(t, m, ActionConfirm)
	tickMachine(t, m, ActionConfirm)
	tickMachine(t, m, ActionLeft)
	for i := 0; i < 300 && !m.Terminal(); i++ {
		tickMachine(t, m)
	}
	require.True(t, m.Terminal())

	n := m.Events().Len()
	for i := 0; i < 10; i++ {
		tickMachine(t, m, ActionConfirm, ActionUp)
	}
	assert.Equal(t, StateEnd, m.State())
	assert.Equal(t, n, m.Events().Len())
}

func TestMachine_IllegalTransition(t *testing.T) {
	m := newTestMachine(t, DefaultLayout())
	err := m.transition(StateEnd)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StateIntro, m.State())
	assert.Zero(t, m.Events().Len())
}
