package puzzle

import (
	"fmt"
	"strings"

	"github.com/kamstrup/intmap"
	log "github.com/sirupsen/logrus"
)

// Round owns the grid, the pieces and the cursor of one play-through and
// evaluates the win condition once per tick.
type Round struct {
	layout   Layout
	geom     Geometry
	speed    float64
	grid     *Grid
	pieces   []*Piece
	byCell   *intmap.Map[int, *Piece] // cell index -> resting or target piece
	cursor   *Cursor
	events   *EventLog
	log      *log.Entry
	tick     int
	complete bool
}

// RoundOption configures a Round at construction.
type RoundOption func(*Round)

// WithLogger sets the logger entry the round logs through.
func WithLogger(e *log.Entry) RoundOption {
	return func(r *Round) { r.log = e }
}

// WithEventLog records round events into l instead of a private log.
func WithEventLog(l *EventLog) RoundOption {
	return func(r *Round) { r.events = l }
}

// WithSpeed sets the slide speed of pieces and cursor in pixels per second.
func WithSpeed(speed float64) RoundOption {
	return func(r *Round) { r.speed = speed }
}

// WithGeometry sets the cell to pixel mapping.
func WithGeometry(g Geometry) RoundOption {
	return func(r *Round) { r.geom = g }
}

// NewRound builds the grid from layout, runs the piece factory over it and
// places a free cursor on the layout's start cell.
func NewRound(layout Layout, opts ...RoundOption) (*Round, error) {
	r := &Round{
		layout: layout,
		geom:   DefaultGeometry(),
		speed:  DefaultSpeed,
		events: NewEventLog(),
		log:    log.NewEntry(log.StandardLogger()),
	}
	for _, o := range opts {
		o(r)
	}
	r.log = r.log.WithField("component", "round")

	grid, err := NewGrid(layout)
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}
	pieces, err := CreatePieces(grid, r.geom, r.speed)
	if err != nil {
		return nil, err
	}
	r.grid = grid
	r.pieces = pieces
	r.byCell = intmap.New[int, *Piece](len(pieces))
	for _, p := range pieces {
		r.byCell.Put(r.cellKey(p.Cell()), p)
	}
	r.cursor = NewCursor(layout.StartCol, layout.StartRow, layout.Interior(), r.geom, r.speed)

	r.log.WithFields(log.Fields{
		"size":   grid.Size(),
		"pieces": len(pieces),
		"start":  fmt.Sprintf("(%d,%d)", layout.StartCol, layout.StartRow),
	}).Info("round ready")
	return r, nil
}

func (r *Round) cellKey(col, row int) int { return row*r.grid.Size() + col }

// HandleInput applies one player action. Input after completion is ignored.
func (r *Round) HandleInput(a Action) {
	if r.complete {
		return
	}
	if d, ok := a.Direction(); ok {
		r.move(d)
		return
	}
	if a == ActionConfirm {
		r.confirm()
	}
}

func (r *Round) move(d Direction) {
	if held := r.cursor.Held(); held != nil {
		if held.IsMoving() {
			return
		}
		fc, fr := held.Cell()
		label := held.Label()
		if !r.cursor.Move(d) {
			r.events.Add(r.tick, label, CatPiece, KeyBlocked, d.String())
			return
		}
		tc, tr := held.Cell()
		r.byCell.Del(r.cellKey(fc, fr))
		r.byCell.Put(r.cellKey(tc, tr), held)
		r.events.Add(r.tick, label, CatPiece, KeyMove, fmt.Sprintf("(%d,%d) → (%d,%d)", fc, fr, tc, tr))
		r.log.WithFields(log.Fields{"piece": held.Kind().String(), "dir": d.String()}).Debugf("piece moved to (%d,%d)", tc, tr)
		return
	}
	if r.cursor.IsMoving() {
		return
	}
	fc, fr := r.cursor.Cell()
	if !r.cursor.Move(d) {
		r.events.Add(r.tick, "cursor", CatCursor, KeyBump, d.String())
		return
	}
	tc, tr := r.cursor.Cell()
	r.events.Add(r.tick, "cursor", CatCursor, KeyMove, fmt.Sprintf("(%d,%d) → (%d,%d)", fc, fr, tc, tr))
}

// confirm drops a resting held piece, or selects the piece under a free
// cursor. Anything else is a no-op.
func (r *Round) confirm() {
	if r.cursor.Active() {
		if r.cursor.IsMoving() {
			return
		}
		held := r.cursor.Held()
		if r.cursor.Drop() {
			r.events.Add(r.tick, held.Label(), CatPiece, KeyDrop, "")
			r.log.WithField("piece", held.Label()).Debug("piece dropped")
		}
		return
	}
	p, ok := r.PieceAt(r.cursor.Cell())
	if !ok {
		return
	}
	if r.cursor.Select(p) {
		r.events.Add(r.tick, p.Label(), CatPiece, KeySelect, "")
		r.log.WithField("piece", p.Label()).Debug("piece selected")
	}
}

// Advance steps the live motion by dt seconds and then checks the vertical
// lines. It returns true once the round is complete.
func (r *Round) Advance(dt float64) bool {
	r.tick++
	r.cursor.Advance(dt)
	if !r.complete && r.grid.CheckVerticalLines() {
		r.complete = true
		r.events.Add(r.tick, "--", CatRound, KeyComplete, fmt.Sprintf("%d lines", len(r.layout.Lines)))
		r.log.WithField("tick", r.tick).Info("all lines complete")
	}
	return r.complete
}

// Step runs one tick in order: input, then motion, then the win check.
func (r *Round) Step(dt float64, actions ...Action) bool {
	for _, a := range actions {
		r.HandleInput(a)
	}
	return r.Advance(dt)
}

// PieceAt returns the piece occupying (col,row), if any.
func (r *Round) PieceAt(col, row int) (*Piece, bool) {
	if !r.grid.InBounds(col, row) {
		return nil, false
	}
	return r.byCell.Get(r.cellKey(col, row))
}

// IsMoving reports whether the cursor or its held piece is sliding.
func (r *Round) IsMoving() bool { return r.cursor.IsMoving() }

func (r *Round) Complete() bool { return r.complete }
func (r *Round) Grid() *Grid { return r.grid }
func (r *Round) Pieces() []*Piece { return r.pieces }
func (r *Round) Cursor() *Cursor { return r.cursor }
func (r *Round) Layout() Layout { return r.layout }
func (r *Round) Geometry() Geometry { return r.geom }
func (r *Round) Events() *EventLog { return r.events }
func (r *Round) Tick() int { return r.tick }

// Snapshot renders the grid, the cursor and the completion flag as text.
func (r *Round) Snapshot() string {
	var sb strings.Builder
	sb.WriteString(r.grid.String())
	sb.WriteByte('\n')
	sb.WriteString(r.cursor.String())
	fmt.Fprintf(&sb, "\ntick %d complete=%v\n", r.tick, r.complete)
	return sb.String()
}
