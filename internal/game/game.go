package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	log "github.com/sirupsen/logrus"

	"github.com/Garsondee/Lanes/internal/puzzle"
)

// Logical screen size.
const (
	ScreenWidth  = 576
	ScreenHeight = 576
)

// snapshotEvents is how many trailing events F9 copies with the board.
const snapshotEvents = 20

var backgroundColor = color.RGBA{R: 8, G: 8, B: 10, A: 255}

// Game implements ebiten.Game around a puzzle state machine.
type Game struct {
	cfg     Config
	log     *log.Entry
	assets  *AssetRegistry
	canvas  *Canvas
	machine *puzzle.Machine
	scene   *Scene
	debug   bool
	actions []puzzle.Action

	copyText func(string) error
}

// New loads the assets and starts the machine on the intro screen.
func New(cfg Config, logger *log.Entry) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger = logger.WithField("component", "game")
	layout := puzzle.DefaultLayout()
	m, err := puzzle.NewMachine(layout, puzzle.WithMachineLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("new machine: %w", err)
	}
	assets, err := NewAssetRegistry(int(puzzle.DefaultGeometry().TileSize))
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	g := &Game{
		cfg:      cfg,
		log:      logger,
		assets:   assets,
		canvas:   NewCanvas(),
		machine:  m,
		debug:    cfg.Debug,
		copyText: clipboard.WriteAll,
	}
	g.scene = NewScene(g.canvas, m)
	logger.WithField("tps", cfg.TPS).Info("game ready")
	return g, nil
}

// Update runs one fixed tick: input, then the machine, then the scene.
func (g *Game) Update() error {
	in := pollInput(g.actions)
	g.actions = in.actions
	if in.quit {
		return ebiten.Termination
	}
	if in.debugKey {
		g.debug = !g.debug
	}
	if in.snapshot {
		g.copySnapshot()
	}
	if err := g.machine.Update(g.cfg.Dt(), in.actions); err != nil {
		return err
	}
	g.scene.Sync()
	return nil
}

// Snapshot is the text F9 places on the clipboard.
func (g *Game) Snapshot() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "state=%s\n", g.machine.State())
	if r := g.machine.Round(); r != nil {
		sb.WriteString(r.Snapshot())
	}
	entries := g.machine.Events().Entries()
	if len(entries) > snapshotEvents {
		entries = entries[len(entries)-snapshotEvents:]
	}
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Game) copySnapshot() {
	if err := g.copyText(g.Snapshot()); err != nil {
		g.log.WithError(err).Warn("copy snapshot")
		return
	}
	g.log.Info("snapshot copied to clipboard")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.canvas.Draw(screen, g.assets)
	if g.debug {
		msg := fmt.Sprintf("state=%s events=%d", g.machine.State(), g.machine.Events().Len())
		if r := g.machine.Round(); r != nil {
			msg += fmt.Sprintf("\ntick=%d %s", r.Tick(), r.Cursor())
		}
		ebitenutil.DebugPrintAt(screen, msg, 4, 4)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}
