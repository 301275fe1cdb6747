package game

import (
	"image/color"

	"github.com/Garsondee/Lanes/internal/puzzle"
)

// Screen text.
const (
	TitleText    = "LANES"
	HelpSelect   = "<ENTER> or <SPACE> to select pieces"
	HelpMove     = "<ARROWS> to move piece"
	ContinueText = "Press <ENTER> to continue"
	EndText      = "THE END"
)

var textColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Scene keeps the canvas in step with the state machine. It rebuilds the
// drawables whenever the machine changes screen and syncs them every tick.
type Scene struct {
	canvas  *Canvas
	machine *puzzle.Machine
	built   puzzle.State
	fresh   bool

	screen  []Handle // intro or end backdrop and labels
	prompt  Handle
	board   *BoardView
	curtain *CurtainView
}

// NewScene builds the drawables of the machine's current screen.
func NewScene(c *Canvas, m *puzzle.Machine) *Scene {
	s := &Scene{canvas: c, machine: m, fresh: true}
	s.Sync()
	return s
}

// Sync rebuilds on a screen change, then updates the animated drawables.
func (s *Scene) Sync() {
	if st := s.machine.State(); s.fresh || st != s.built {
		s.teardown()
		s.build(st)
		s.built, s.fresh = st, false
	}
	switch s.built {
	case puzzle.StateIntro:
		s.canvas.SetAlpha(s.prompt, s.machine.PromptAlpha())
	case puzzle.StatePlaying:
		s.board.Sync()
		s.curtain.Sync(s.machine.CurtainOpen())
	}
}

// Board returns the live board view, nil outside the playing screen.
func (s *Scene) Board() *BoardView { return s.board }

func (s *Scene) build(st puzzle.State) {
	cx, cy := float64(ScreenWidth)/2, float64(ScreenHeight)/2
	switch st {
	case puzzle.StateIntro:
		s.backdrop()
		s.label(TitleText, FaceTitle, cx, cy-64)
		s.label(HelpSelect, FaceBody, cx, cy)
		s.label(HelpMove, FaceBody, cx, cy+32)
		s.prompt = s.label(ContinueText, FaceBody, cx, cy+128)
	case puzzle.StatePlaying:
		s.board = NewBoardView(s.canvas, s.machine.Round())
		s.curtain = NewCurtainView(s.canvas, ScreenWidth, ScreenHeight, int(s.machine.Round().Geometry().TileSize))
	case puzzle.StateEnd:
		s.backdrop()
		s.label(EndText, FaceTitle, cx, cy-64)
	}
}

func (s *Scene) backdrop() {
	tile := int(puzzle.DefaultGeometry().TileSize)
	for y := 0; y < ScreenHeight; y += tile {
		s.screen = append(s.screen, s.canvas.Create(SpriteStripe, 0, float64(y), LayerCurtain))
	}
}

func (s *Scene) label(text string, face FaceID, x, y float64) Handle {
	h := s.canvas.CreateText(text, face, x, y, textColor)
	s.screen = append(s.screen, h)
	return h
}

func (s *Scene) teardown() {
	for _, h := range s.screen {
		s.canvas.Destroy(h)
	}
	s.screen = nil
	s.prompt = 0
	if s.board != nil {
		s.board.Destroy()
		s.board = nil
	}
	if s.curtain != nil {
		s.curtain.Destroy()
		s.curtain = nil
	}
}
