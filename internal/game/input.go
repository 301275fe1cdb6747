package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Lanes/internal/puzzle"
)

// keyActions maps edge-triggered keys to player actions, in poll order.
var keyActions = []struct {
	key    ebiten.Key
	action puzzle.Action
}{
	{ebiten.KeyArrowUp, puzzle.ActionUp},
	{ebiten.KeyArrowDown, puzzle.ActionDown},
	{ebiten.KeyArrowLeft, puzzle.ActionLeft},
	{ebiten.KeyArrowRight, puzzle.ActionRight},
	{ebiten.KeyEnter, puzzle.ActionConfirm},
	{ebiten.KeyNumpadEnter, puzzle.ActionConfirm},
	{ebiten.KeySpace, puzzle.ActionConfirm},
}

// ActionFor returns the action bound to k.
func ActionFor(k ebiten.Key) (puzzle.Action, bool) {
	for _, ka := range keyActions {
		if ka.key == k {
			return ka.action, true
		}
	}
	return puzzle.ActionNone, false
}

// inputFrame is what one tick of polling produced.
type inputFrame struct {
	actions  []puzzle.Action
	quit     bool
	snapshot bool
	debugKey bool
}

// pollInput reads the keys pressed since the previous tick. Holding a key
// never repeats it.
func pollInput(buf []puzzle.Action) inputFrame {
	f := inputFrame{actions: buf[:0]}
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			f.actions = append(f.actions, ka.action)
		}
	}
	f.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	f.snapshot = inpututil.IsKeyJustPressed(ebiten.KeyF9)
	f.debugKey = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	return f
}
